package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sppg-mbg/inventaris-api/internal/application/dto"
	"github.com/sppg-mbg/inventaris-api/internal/application/usecase"
	"github.com/sppg-mbg/inventaris-api/internal/domain"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
)

// MaterialHandler menangani CRUD bahan (dilindungi, role admin/gudang).
type MaterialHandler struct {
	uc *usecase.MaterialUseCase
}

// NewMaterialHandler membangun handler bahan.
func NewMaterialHandler(uc *usecase.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// Create godoc
// @Summary      Daftarkan bahan baru
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaterialRequest  true  "kode, nama, kategori_id, satuan_id, ambang stok"
// @Success      201   {object}  dto.MaterialDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/materials [post]
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
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
// @Summary      Daftar bahan aktif plus stok berjalan
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        q            query  string  false  "kata kunci kode/nama"
// @Param        kategori_id  query  string  false  "filter kategori"
// @Param        limit        query  int     false  "batas halaman"
// @Param        offset       query  int     false  "offset halaman"
// @Success      200  {object}  dto.MaterialListDTO
// @Router       /api/materials [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	out, err := h.uc.List(c.Context(), repository.MaterialFilter{
		Keyword:    c.Query("q"),
		KategoriID: c.Query("kategori_id"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detail bahan
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID bahan"
// @Success      200  {object}  dto.MaterialDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [get]
func (h *MaterialHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// UpdateThresholds godoc
// @Summary      Ubah ambang stok bahan
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID bahan"
// @Param        body  body  dto.UpdateThresholdsRequest  true  "stok_minimum, stok_maksimum, keterangan"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/thresholds [put]
func (h *MaterialHandler) UpdateThresholds(c *fiber.Ctx) error {
	var in dto.UpdateThresholdsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	if err := h.uc.UpdateThresholds(c.Params("id"), in); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "ambang stok diperbarui"})
}

// Deactivate godoc
// @Summary      Nonaktifkan bahan (soft delete)
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID bahan"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [delete]
func (h *MaterialHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "bahan dinonaktifkan"})
}

// mapDomainError memetakan sentinel error domain ke kode HTTP. Satu
// tempat supaya semua handler konsisten.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "jumlah harus lebih dari nol"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrMaterialInactive):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MATERIAL_INACTIVE", Message: "bahan sudah nonaktif"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "tidak terautentikasi"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "akses ditolak"})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "data tidak ditemukan"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stok tidak mencukupi"})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrUsernameTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
