// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/catalog-service/config"
	"github.com/guttosm/catalog-service/internal/circuitbreaker"
	"github.com/guttosm/catalog-service/internal/metrics"
	"github.com/guttosm/catalog-service/internal/repository"
	"github.com/guttosm/catalog-service/internal/service"
	"github.com/rs/zerolog/log"
)

const exportLogBreakerName = "mongodb-exports"

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                    *repository.MongoDB
	ExportLog             service.ExportLogService
	ExportsCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the export log.
// Returns nil if the database is disabled or the connection fails; the
// storefront works without it.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without export log")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")
	return newDatabaseComponents(db, cfg)
}

func newDatabaseComponents(db *repository.MongoDB, cfg config.DatabaseConfig) *DatabaseComponents {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.SetExportsTTL(ctx, cfg.ExportsTTLDays); err != nil {
		log.Warn().Err(err).Int("days", cfg.ExportsTTLDays).Msg("Failed to set exports TTL index")
	}

	cb := newExportsCircuitBreaker(cfg)
	repo := repository.NewExportsRepositoryWithCircuitBreaker(repository.NewExportsRepository(db), cb)

	return &DatabaseComponents{
		DB:                    db,
		ExportLog:             service.NewExportLogService(repo),
		ExportsCircuitBreaker: cb,
	}
}

func newExportsCircuitBreaker(cfg config.DatabaseConfig) *circuitbreaker.CircuitBreaker {
	metrics.UpdateCircuitBreakerState(exportLogBreakerName, int(circuitbreaker.StateClosed))

	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             exportLogBreakerName,
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("Circuit breaker state changed")
			metrics.UpdateCircuitBreakerState(name, int(to))
		},
	})
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}
