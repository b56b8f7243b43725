// Package app provides service initialization.
package app

import (
	"fmt"

	"github.com/guttosm/catalog-service/config"
	"github.com/guttosm/catalog-service/internal/catalog"
	"github.com/guttosm/catalog-service/internal/export"
	"github.com/guttosm/catalog-service/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalog *catalog.Catalog
	Orders  *service.OrderServiceImpl
}

// InitializeServices loads the catalog and builds the order service.
// exportLog may be nil when MongoDB is disabled.
func InitializeServices(cfg config.Config, exportLog service.ExportLogService) (*ServiceComponents, error) {
	cat, err := catalog.Load(cfg.Catalog.File)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	source := "built-in"
	if cfg.Catalog.File != "" {
		source = cfg.Catalog.File
	}
	log.Info().Str("source", source).Int("products", cat.Len()).Msg("Catalog loaded")

	opts := []service.Option{
		service.WithExporter(export.NewExporter(export.WithPhone(cfg.Catalog.WhatsAppPhone))),
		service.WithMinimumPurchase(cfg.Catalog.MinimumPurchase),
		service.WithSessionLimits(cfg.Session.Capacity, cfg.Session.TTL),
		service.WithExportLogTimeout(cfg.Database.ExportLogTimeout),
	}
	if exportLog != nil {
		opts = append(opts, service.WithExportLog(exportLog))
	}

	return &ServiceComponents{
		Catalog: cat,
		Orders:  service.NewOrderService(cat, opts...),
	}, nil
}
