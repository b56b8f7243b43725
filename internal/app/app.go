// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/catalog-service/config"
	"github.com/guttosm/catalog-service/internal/http"
	"github.com/guttosm/catalog-service/internal/service"
)

// App is the wired application.
type App struct {
	Router   *gin.Engine
	Services *ServiceComponents
	Database *DatabaseComponents
	router   *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	dbComponents := InitializeDatabase(cfg.Database)

	var exportLog service.ExportLogService
	if dbComponents != nil {
		exportLog = dbComponents.ExportLog
	}

	services, err := InitializeServices(cfg, exportLog)
	if err != nil {
		_ = dbComponents.Close(context.Background())
		return nil, err
	}

	routerComponents := InitializeRouter(services, dbComponents, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.HealthHandler, routerComponents.Config),
		Services: services,
		Database: dbComponents,
		router:   routerComponents,
	}, nil
}

// Close releases background workers and the database connection.
func (a *App) Close(ctx context.Context) error {
	if a.router.RateLimiter != nil {
		a.router.RateLimiter.Stop()
	}
	a.router.Idempotency.Stop()
	a.Services.Orders.Close()
	return a.Database.Close(ctx)
}
