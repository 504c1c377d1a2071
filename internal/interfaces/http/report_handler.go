package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sppg-mbg/inventaris-api/internal/application/report"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
	"github.com/sppg-mbg/inventaris-api/internal/infrastructure/export/excel"
	"github.com/sppg-mbg/inventaris-api/internal/infrastructure/export/pdf"
)

// ReportHandler menangani laporan JSON dan export PDF/Excel.
type ReportHandler struct {
	stockUC        *report.StockReportUseCase
	distributionUC *report.DistributionReportUseCase
	pdfGen         *pdf.StockReportGenerator
	excelGen       *excel.DistributionReportGenerator
}

// NewReportHandler membangun handler laporan.
func NewReportHandler(
	stockUC *report.StockReportUseCase,
	distributionUC *report.DistributionReportUseCase,
	pdfGen *pdf.StockReportGenerator,
	excelGen *excel.DistributionReportGenerator,
) *ReportHandler {
	return &ReportHandler{
		stockUC:        stockUC,
		distributionUC: distributionUC,
		pdfGen:         pdfGen,
		excelGen:       excelGen,
	}
}

func stockFilterFromQuery(c *fiber.Ctx) repository.StockReportFilter {
	return repository.StockReportFilter{
		KategoriID:   c.Query("kategori_id"),
		OnlyBelowMin: c.QueryBool("below_min"),
	}
}

func distributionFilterFromQuery(c *fiber.Ctx) repository.DistributionReportFilter {
	return repository.DistributionReportFilter{
		StartDate:   parseDateQuery(c.Query("start_date")),
		EndDate:     parseDateQuery(c.Query("end_date")),
		JenisTujuan: c.Query("jenis_tujuan"),
	}
}

// StockReport godoc
// @Summary      Laporan stok dengan klasifikasi kritis/rendah/aman
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        kategori_id  query  string  false  "filter kategori"
// @Param        below_min    query  bool    false  "hanya stok <= minimum"
// @Success      200  {object}  dto.StockReportDTO
// @Router       /api/reports/stock [get]
func (h *ReportHandler) StockReport(c *fiber.Ctx) error {
	out, err := h.stockUC.Get(c.Context(), stockFilterFromQuery(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// DistributionReport godoc
// @Summary      Laporan distribusi per jenis tujuan
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date    query  string  false  "YYYY-MM-DD"
// @Param        end_date      query  string  false  "YYYY-MM-DD"
// @Param        jenis_tujuan  query  string  false  "filter jenis tujuan"
// @Success      200  {object}  dto.DistributionReportDTO
// @Router       /api/reports/distribution [get]
func (h *ReportHandler) DistributionReport(c *fiber.Ctx) error {
	out, err := h.distributionUC.Get(c.Context(), distributionFilterFromQuery(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// StockReportPDF godoc
// @Summary      Export laporan stok sebagai PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/stock/pdf [get]
func (h *ReportHandler) StockReportPDF(c *fiber.Ctx) error {
	rep, err := h.stockUC.Get(c.Context(), stockFilterFromQuery(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	now := time.Now()
	data, err := h.pdfGen.Generate(rep, now)
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="laporan_stok_%s.pdf"`, now.Format("20060102")))
	return c.Send(data)
}

// DistributionReportExcel godoc
// @Summary      Export laporan distribusi sebagai Excel
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {file}  binary
// @Router       /api/reports/distribution/excel [get]
func (h *ReportHandler) DistributionReportExcel(c *fiber.Ctx) error {
	filter := distributionFilterFromQuery(c)
	rep, err := h.distributionUC.Get(c.Context(), filter)
	if err != nil {
		return mapDomainError(c, err)
	}
	now := time.Now()
	data, err := h.excelGen.Generate(rep, periodeLabel(filter), now)
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="laporan_distribusi_%s.xlsx"`, now.Format("20060102")))
	return c.Send(data)
}

// periodeLabel label periode filter untuk header workbook.
func periodeLabel(filter repository.DistributionReportFilter) string {
	const layout = "02/01/2006"
	switch {
	case filter.StartDate != nil && filter.EndDate != nil:
		return filter.StartDate.Format(layout) + " - " + filter.EndDate.Format(layout)
	case filter.StartDate != nil:
		return "sejak " + filter.StartDate.Format(layout)
	case filter.EndDate != nil:
		return "sampai " + filter.EndDate.Format(layout)
	}
	return "semua waktu"
}
