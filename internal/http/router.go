package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/catalog-service/internal/domain/dto"
	"github.com/guttosm/catalog-service/internal/i18n"
	"github.com/guttosm/catalog-service/internal/metrics"
	"github.com/guttosm/catalog-service/internal/middleware"
	"github.com/guttosm/catalog-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// quietPaths are only logged when they fail.
var quietPaths = []string{"/healthz", "/readyz", "/metrics"}

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	APIKeys        []string
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	OrderService   service.OrderService
	ExportLog      service.ExportLogService
	RateLimiter    *middleware.RateLimiter
	Idempotency    *middleware.IdempotencyStore
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: 10 * time.Second,
	}
}

// NewRouter creates and configures the Gin router for the catalog service.
// When cfg.RateLimit is set and cfg.RateLimiter is nil a limiter is created;
// callers that need to stop it on shutdown should pass their own.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	if cfg.OrderService != nil {
		NewOrderRoutes(cfg.OrderService, cfg.Idempotency).RegisterPublicRoutes(api)
	}
	NewExportRoutes(cfg.ExportLog).RegisterProtectedRoutes(api, &cfg)

	router.NoRoute(notFound)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(
		middleware.RequestID(),
		middleware.CORS(cfg.CORSOrigins),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression("/metrics"),
		middleware.RequestLogger(quietPaths...),
		middleware.ErrorHandler(errorMappings()...),
	)

	if cfg.RateLimit > 0 {
		if cfg.RateLimiter == nil {
			cfg.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		}
		router.Use(cfg.RateLimiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

func notFound(c *gin.Context) {
	message := i18n.GetTranslator().Translate(i18n.ErrKeyNotFound, i18n.GetLocale(c))
	c.JSON(http.StatusNotFound, dto.NewError(dto.ErrCodeNotFound, message).WithRequestID(middleware.GetRequestID(c)))
}
