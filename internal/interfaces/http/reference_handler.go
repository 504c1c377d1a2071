package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sppg-mbg/inventaris-api/internal/application/dto"
	"github.com/sppg-mbg/inventaris-api/internal/application/usecase"
)

// ReferenceHandler menangani lookup kategori dan satuan.
type ReferenceHandler struct {
	uc *usecase.ReferenceUseCase
}

// NewReferenceHandler membangun handler referensi.
func NewReferenceHandler(uc *usecase.ReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

type createCategoryRequest struct {
	Nama       string `json:"nama"`
	Keterangan string `json:"keterangan"`
}

type createUnitRequest struct {
	Nama string `json:"nama"`
}

// ListCategories godoc
// @Summary      Daftar kategori bahan
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Category
// @Router       /api/categories [get]
func (h *ReferenceHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories()
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// CreateCategory godoc
// @Summary      Daftarkan kategori bahan baru
// @Tags         references
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  entity.Category
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *ReferenceHandler) CreateCategory(c *fiber.Ctx) error {
	var in createCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	out, err := h.uc.CreateCategory(in.Nama, in.Keterangan)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListUnits godoc
// @Summary      Daftar satuan
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Unit
// @Router       /api/units [get]
func (h *ReferenceHandler) ListUnits(c *fiber.Ctx) error {
	out, err := h.uc.ListUnits()
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// CreateUnit godoc
// @Summary      Daftarkan satuan baru
// @Tags         references
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  entity.Unit
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/units [post]
func (h *ReferenceHandler) CreateUnit(c *fiber.Ctx) error {
	var in createUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	out, err := h.uc.CreateUnit(in.Nama)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
