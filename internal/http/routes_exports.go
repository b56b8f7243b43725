package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/catalog-service/internal/middleware"
	"github.com/guttosm/catalog-service/internal/service"
)

// ExportRoutes registers the export log routes.
type ExportRoutes struct {
	handler *ExportsHandler
}

// NewExportRoutes creates a new ExportRoutes instance.
func NewExportRoutes(log service.ExportLogService) *ExportRoutes {
	return &ExportRoutes{handler: NewExportsHandler(log)}
}

// RegisterProtectedRoutes registers the export log behind API key auth.
func (r *ExportRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.GET("/exports", middleware.APIKeyAuth(cfg.APIKeys), r.handler.ListExports)
}

var _ ProtectedRouteGroup = (*ExportRoutes)(nil)
