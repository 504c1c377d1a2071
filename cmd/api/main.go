package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/sppg-mbg/inventaris-api/internal/application/analytics"
	"github.com/sppg-mbg/inventaris-api/internal/application/auth"
	"github.com/sppg-mbg/inventaris-api/internal/application/ledger"
	"github.com/sppg-mbg/inventaris-api/internal/application/report"
	"github.com/sppg-mbg/inventaris-api/internal/application/usecase"
	"github.com/sppg-mbg/inventaris-api/internal/infrastructure/export/excel"
	"github.com/sppg-mbg/inventaris-api/internal/infrastructure/export/pdf"
	"github.com/sppg-mbg/inventaris-api/internal/infrastructure/postgres"
	httpRouter "github.com/sppg-mbg/inventaris-api/internal/interfaces/http"
	"github.com/sppg-mbg/inventaris-api/pkg/config"
	"github.com/sppg-mbg/inventaris-api/pkg/logger"
)

// runMigrations menjalankan migrasi goose lewat driver pgx (database/sql).
func runMigrations(cfg config.DBConfig) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", cfg.ConnectionString())
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, cfg.MigrationsDir)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("muat konfigurasi: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("memulai aplikasi")

	if cfg.DB.MigrateOnStart {
		if err := runMigrations(cfg.DB); err != nil {
			log.Fatal().Err(err).Msg("migrasi database")
		}
		log.Info().Msg("migrasi database selesai")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("koneksi PostgreSQL")
	}
	defer pool.Close()

	materialRepo := postgres.NewMaterialRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	issueRepo := postgres.NewIssueRepository(pool)
	qualityRepo := postgres.NewQualityRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	materialUC := usecase.NewMaterialUseCase(materialRepo, stockRepo, reportRepo)
	qualityUC := usecase.NewQualityUseCase(qualityRepo, materialRepo)
	referenceUC := usecase.NewReferenceUseCase(categoryRepo, unitRepo)
	ledgerUC := ledger.NewLedgerUseCase(txRunner, materialRepo)
	ledgerQueryUC := ledger.NewQueryUseCase(receiptRepo, issueRepo)
	dashboardUC := analytics.NewDashboardUseCase(reportRepo, receiptRepo, qualityRepo)
	stockReportUC := report.NewStockReportUseCase(reportRepo)
	distributionUC := report.NewDistributionReportUseCase(reportRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI lokal: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventaris SPPG API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		MaterialUC:     materialUC,
		QualityUC:      qualityUC,
		ReferenceUC:    referenceUC,
		LedgerUC:       ledgerUC,
		LedgerQueryUC:  ledgerQueryUC,
		DashboardUC:    dashboardUC,
		StockReportUC:  stockReportUC,
		DistributionUC: distributionUC,
		PDFGen:         pdf.NewStockReportGenerator(),
		ExcelGen:       excel.NewDistributionReportGenerator(),
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("server HTTP berhenti")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("server HTTP berjalan")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinyal shutdown diterima, menutup server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown server")
	}
	log.Info().Msg("server berhenti")
}
