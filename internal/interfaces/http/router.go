package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sppg-mbg/inventaris-api/internal/application/analytics"
	"github.com/sppg-mbg/inventaris-api/internal/application/auth"
	"github.com/sppg-mbg/inventaris-api/internal/application/ledger"
	"github.com/sppg-mbg/inventaris-api/internal/application/report"
	"github.com/sppg-mbg/inventaris-api/internal/application/usecase"
	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
	"github.com/sppg-mbg/inventaris-api/internal/infrastructure/export/excel"
	"github.com/sppg-mbg/inventaris-api/internal/infrastructure/export/pdf"
)

// RouterDeps dependensi router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	MaterialUC     *usecase.MaterialUseCase
	QualityUC      *usecase.QualityUseCase
	ReferenceUC    *usecase.ReferenceUseCase
	LedgerUC       *ledger.LedgerUseCase
	LedgerQueryUC  *ledger.QueryUseCase
	DashboardUC    *analytics.DashboardUseCase
	StockReportUC  *report.StockReportUseCase
	DistributionUC *report.DistributionReportUseCase
	PDFGen         *pdf.StockReportGenerator
	ExcelGen       *excel.DistributionReportGenerator
	JWTSecret      string
}

// Router mendaftarkan rute API. Pembagian role:
//   - master bahan, penerimaan, monitoring: admin + gudang
//   - pengeluaran: admin + gudang + distribusi
//   - dashboard, laporan, export: semua pengguna terautentikasi
//   - registrasi pengguna: admin saja
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin),
		authHandler.Register,
	)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	gudangOnly := RequireRole(entity.RoleAdmin, entity.RoleGudang)
	allRoles := RequireRole(entity.RoleAdmin, entity.RoleGudang, entity.RoleDistribusi)

	// Master bahan
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials := protected.Group("/materials", gudangOnly)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id/thresholds", materialHandler.UpdateThresholds)
	materials.Delete("/:id", materialHandler.Deactivate)

	// Referensi
	referenceHandler := NewReferenceHandler(deps.ReferenceUC)
	protected.Get("/categories", allRoles, referenceHandler.ListCategories)
	protected.Post("/categories", gudangOnly, referenceHandler.CreateCategory)
	protected.Get("/units", allRoles, referenceHandler.ListUnits)
	protected.Post("/units", gudangOnly, referenceHandler.CreateUnit)

	// Ledger
	ledgerHandler := NewLedgerHandler(deps.LedgerUC, deps.LedgerQueryUC)
	receipts := protected.Group("/receipts", gudangOnly)
	receipts.Post("/", ledgerHandler.CreateReceipt)
	receipts.Get("/", ledgerHandler.ListReceipts)
	receipts.Get("/next-number", ledgerHandler.NextReceiptNumber)
	receipts.Get("/:id", ledgerHandler.GetReceipt)

	issues := protected.Group("/issues", allRoles)
	issues.Post("/", ledgerHandler.CreateIssue)
	issues.Get("/", ledgerHandler.ListIssues)
	issues.Get("/next-number", ledgerHandler.NextIssueNumber)
	issues.Get("/:id", ledgerHandler.GetIssue)

	// Monitoring kualitas
	qualityHandler := NewQualityHandler(deps.QualityUC)
	quality := protected.Group("/quality-checks", gudangOnly)
	quality.Post("/", qualityHandler.Create)
	quality.Get("/", qualityHandler.List)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard := protected.Group("/dashboard", allRoles)
	dashboard.Get("/", dashboardHandler.Summary)
	dashboard.Get("/charts/stok-per-kategori", dashboardHandler.StokPerKategori)
	dashboard.Get("/charts/penerimaan-per-bulan", dashboardHandler.PenerimaanPerBulan)

	// Laporan + export
	reportHandler := NewReportHandler(deps.StockReportUC, deps.DistributionUC, deps.PDFGen, deps.ExcelGen)
	reports := protected.Group("/reports", allRoles)
	reports.Get("/stock", reportHandler.StockReport)
	reports.Get("/stock/pdf", reportHandler.StockReportPDF)
	reports.Get("/distribution", reportHandler.DistributionReport)
	reports.Get("/distribution/excel", reportHandler.DistributionReportExcel)
}
