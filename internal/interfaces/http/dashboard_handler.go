package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sppg-mbg/inventaris-api/internal/application/analytics"
)

// DashboardHandler menangani ringkasan dan grafik dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler membangun handler dashboard.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Ringkasan dashboard gudang
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// StokPerKategori godoc
// @Summary      Data grafik stok per kategori
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ChartDataDTO
// @Router       /api/dashboard/charts/stok-per-kategori [get]
func (h *DashboardHandler) StokPerKategori(c *fiber.Ctx) error {
	out, err := h.uc.StokPerKategoriChart(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// PenerimaanPerBulan godoc
// @Summary      Data grafik penerimaan per bulan tahun berjalan
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ChartDataDTO
// @Router       /api/dashboard/charts/penerimaan-per-bulan [get]
func (h *DashboardHandler) PenerimaanPerBulan(c *fiber.Ctx) error {
	out, err := h.uc.PenerimaanPerBulanChart(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
