// Package app provides router configuration.
package app

import (
	"github.com/guttosm/catalog-service/config"
	"github.com/guttosm/catalog-service/internal/http"
	"github.com/guttosm/catalog-service/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	RateLimiter   *middleware.RateLimiter
	Idempotency   *middleware.IdempotencyStore
	Config        http.RouterConfig
}

// InitializeRouter builds the health handler and router configuration.
// dbComponents may be nil.
func InitializeRouter(services *ServiceComponents, dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	healthHandler.SetSessionStats(services.Orders)

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		APIKeys:        cfg.Server.APIKeys,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		OrderService:   services.Orders,
		Idempotency:    middleware.NewIdempotencyStore(cfg.Server.IdempotencyTTL),
	}

	if dbComponents != nil {
		healthHandler.RegisterChecker("mongodb", dbComponents.DB)
		healthHandler.RegisterCircuitBreaker("mongodb_exports", dbComponents.ExportsCircuitBreaker)
		routerCfg.ExportLog = dbComponents.ExportLog
	}

	var limiter *middleware.RateLimiter
	if cfg.Server.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
		routerCfg.RateLimiter = limiter
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		RateLimiter:   limiter,
		Idempotency:   routerCfg.Idempotency,
		Config:        routerCfg,
	}
}
