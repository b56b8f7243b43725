package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/catalog-service/internal/middleware"
	"github.com/guttosm/catalog-service/internal/service"
)

// OrderRoutes registers the storefront catalog and order routes.
type OrderRoutes struct {
	handler     *Handler
	idempotency *middleware.IdempotencyStore
}

// NewOrderRoutes creates a new OrderRoutes instance. A non-nil store lets
// clients retry order creation with an Idempotency-Key.
func NewOrderRoutes(orders service.OrderService, idempotency *middleware.IdempotencyStore) *OrderRoutes {
	return &OrderRoutes{handler: NewHandler(orders), idempotency: idempotency}
}

// RegisterPublicRoutes registers catalog and order endpoints.
func (r *OrderRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog", r.handler.ListCatalog)
	rg.GET("/conditions", r.handler.GetConditions)
	rg.GET("/contact", r.handler.GetContact)

	orders := rg.Group("/orders")
	orders.POST("", middleware.Idempotency(r.idempotency), r.handler.CreateOrder)
	orders.GET("/:id", r.handler.GetOrder)
	orders.PUT("/:id/items/:productId", r.handler.SetQuantity)
	orders.DELETE("/:id/items", r.handler.ResetOrder)
	orders.GET("/:id/export/csv", r.handler.ExportCSV)
	orders.GET("/:id/export/whatsapp", r.handler.ExportWhatsApp)
}

var _ PublicRouteGroup = (*OrderRoutes)(nil)
