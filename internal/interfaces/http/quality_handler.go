package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sppg-mbg/inventaris-api/internal/application/dto"
	"github.com/sppg-mbg/inventaris-api/internal/application/usecase"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
)

// QualityHandler menangani monitoring kualitas gudang.
type QualityHandler struct {
	uc *usecase.QualityUseCase
}

// NewQualityHandler membangun handler monitoring.
func NewQualityHandler(uc *usecase.QualityUseCase) *QualityHandler {
	return &QualityHandler{uc: uc}
}

// Create godoc
// @Summary      Catat inspeksi kualitas
// @Tags         quality
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQualityCheckRequest  true  "bahan_id, kondisi, petugas"
// @Success      201   {object}  dto.QualityCheckDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quality-checks [post]
func (h *QualityHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQualityCheckRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Daftar catatan monitoring kualitas
// @Tags         quality
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        bahan_id    query  string  false  "filter bahan"
// @Success      200  {array}  dto.QualityCheckDTO
// @Router       /api/quality-checks [get]
func (h *QualityHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	out, err := h.uc.List(repository.QualityFilter{
		StartDate:  parseDateQuery(c.Query("start_date")),
		EndDate:    parseDateQuery(c.Query("end_date")),
		MaterialID: c.Query("bahan_id"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
