package main

import (
	"fmt"
	"log/slog"

	"github.com/ahernandezc/bdpr-api/internal/dataset"
	"github.com/ahernandezc/bdpr-api/internal/domain/catalog"
	cataloghandler "github.com/ahernandezc/bdpr-api/internal/domain/catalog/handler"
	"github.com/ahernandezc/bdpr-api/internal/domain/export"
	exporthandler "github.com/ahernandezc/bdpr-api/internal/domain/export/handler"
	"github.com/ahernandezc/bdpr-api/internal/domain/pricing"
	pricinghandler "github.com/ahernandezc/bdpr-api/internal/domain/pricing/handler"
	"github.com/ahernandezc/bdpr-api/pkg/config"
	"github.com/ahernandezc/bdpr-api/pkg/cron"
	"github.com/ahernandezc/bdpr-api/pkg/metrics"
	"github.com/ahernandezc/bdpr-api/pkg/storage"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics

	// Reference data
	Contratos []pricing.ContractLine
	Factores  *pricing.FactorTable

	// Services
	PricingService *pricing.Service
	CatalogService *catalog.Service
	ExportService  *export.Service
	JobStore       *export.JobStore
	FileStorage    storage.Storage
	Scheduler      *cron.Scheduler

	// Handlers
	PricingHandler *pricinghandler.PricingHandler
	CatalogHandler *cataloghandler.CatalogHandler
	ExportHandler  *exporthandler.ExportHandler
}

// InitDependencies initializes all application dependencies
func InitDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.New(),
	}

	deps.initDataset()

	if err := deps.initServices(); err != nil {
		return nil, fmt.Errorf("failed to init services: %w", err)
	}

	deps.initHandlers()

	logger.Info("all dependencies initialized successfully")

	return deps, nil
}

// initDataset builds the in-memory reference data.
func (d *Dependencies) initDataset() {
	d.Contratos = dataset.Contratos(d.Config.Dataset.Seed)
	d.Factores = pricing.NewFactorTable(dataset.Factores())

	d.Logger.Info("reference data loaded",
		slog.Int("contratos", len(d.Contratos)),
		slog.Int("factores", d.Factores.Len()),
	)
}

// initServices initializes all service layer dependencies
func (d *Dependencies) initServices() error {
	files, err := storage.NewLocal(d.Config.Export.Dir)
	if err != nil {
		return err
	}
	d.FileStorage = files

	d.PricingService = pricing.NewService(d.Contratos, d.Factores, d.Logger)
	d.CatalogService = catalog.NewService(d.Contratos, d.Logger)

	d.JobStore = export.NewJobStore(d.Config.Export.JobTTL)
	d.ExportService = export.NewService(d.PricingService, d.JobStore, d.FileStorage, d.Logger)

	d.Scheduler = cron.NewScheduler(d.FileStorage, d.Config.Export.ArtifactMaxAge, d.Logger)

	d.Logger.Info("services initialized")
	return nil
}

// initHandlers initializes all handler layer dependencies
func (d *Dependencies) initHandlers() {
	d.PricingHandler = pricinghandler.NewPricingHandler(d.PricingService, d.Metrics, d.Logger)
	d.CatalogHandler = cataloghandler.NewCatalogHandler(d.CatalogService, d.Logger)
	d.ExportHandler = exporthandler.NewExportHandler(d.ExportService, d.FileStorage, d.Metrics, d.Logger)

	d.Logger.Info("handlers initialized")
}
