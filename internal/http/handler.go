package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/catalog-service/internal/domain/dto"
	"github.com/guttosm/catalog-service/internal/i18n"
	"github.com/guttosm/catalog-service/internal/service"
)

// Handler serves the catalog and order routes.
type Handler struct {
	orders service.OrderService
}

// NewHandler creates a new Handler instance.
func NewHandler(orders service.OrderService) *Handler {
	return &Handler{orders: orders}
}

// ListCatalog handles GET /api/catalog requests.
//
// @Summary      List catalog products
// @Description  Returns the wholesale catalog. The optional q parameter keeps products whose name, SKU or collection contains it, case-insensitively.
// @Tags         Catalog
// @Produce      json
// @Param        q query string false "Search filter" example(nórdica)
// @Success      200 {object} dto.SuccessResponse{data=[]dto.ProductResponse} "Matching products"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Router       /api/catalog [get]
func (h *Handler) ListCatalog(c *gin.Context) {
	products := h.orders.Catalog(c.Query("q"))
	NewResponseBuilder(c).SuccessOK(dto.NewProductList(products))
}

// GetConditions handles GET /api/conditions requests.
//
// @Summary      Purchase conditions
// @Description  Returns the minimum order value and the minimum quantity per product.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.ConditionsResponse} "Purchase conditions"
// @Router       /api/conditions [get]
func (h *Handler) GetConditions(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.NewConditionsResponse(h.orders.Conditions()))
}

// GetContact handles GET /api/contact requests.
//
// @Summary      Contact link
// @Description  Returns the WhatsApp link used for catalog enquiries.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.ContactResponse} "Contact link"
// @Router       /api/contact [get]
func (h *Handler) GetContact(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.ContactResponse{URL: h.orders.ContactLink()})
}

// CreateOrder handles POST /api/orders requests.
//
// @Summary      Create order
// @Description  Starts an empty order session. Sessions expire after a period without activity.
// @Tags         Orders
// @Produce      json
// @Success      201 {object} dto.SuccessResponse{data=dto.OrderViewResponse} "New empty order"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/orders [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	session, err := h.orders.CreateOrder(c.Request.Context())
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessCreated(dto.NewOrderViewResponse(session.ID, "", session.View(""), h.orders.Conditions()))
}

// GetOrder handles GET /api/orders/{id} requests.
//
// @Summary      Get order
// @Description  Aggregates the order over the products matching the optional filter. Totals cover the filtered products only.
// @Tags         Orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Param        q query string false "Search filter"
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderViewResponse} "Order view"
// @Failure      404 {object} dto.ErrorResponse "Order not found or expired"
// @Router       /api/orders/{id} [get]
func (h *Handler) GetOrder(c *gin.Context) {
	h.renderView(c, http.StatusOK, c.Param("id"), c.Query("q"))
}

// SetQuantity handles PUT /api/orders/{id}/items/{productId} requests.
//
// @Summary      Set product quantity
// @Description  Stores the quantity typed for one product. Input is parsed leniently: non-numeric text and values below 5 are stored as 0.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID"
// @Param        productId path string true "Product ID"
// @Param        q query string false "Search filter for the returned view"
// @Param        request body dto.SetQuantityRequest true "Quantity as typed"
// @Success      200 {object} dto.SuccessResponse{data=dto.QuantityUpdateResponse} "Stored quantity and updated order"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid body"
// @Failure      404 {object} dto.ErrorResponse "Order or product not found"
// @Router       /api/orders/{id}/items/{productId} [put]
func (h *Handler) SetQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindJSONAndValidate[dto.SetQuantityRequest](c)
	if err != nil {
		builder.Fail(err)
		return
	}

	ctx := c.Request.Context()
	orderID, productID, filter := c.Param("id"), c.Param("productId"), c.Query("q")

	stored, err := h.orders.SetQuantity(ctx, orderID, productID, req.Raw())
	if err != nil {
		builder.Fail(err)
		return
	}

	view, err := h.orders.View(ctx, orderID, filter)
	if err != nil {
		builder.Fail(err)
		return
	}

	messageKey := i18n.SuccessKeyQuantityUpdated
	if stored == 0 {
		messageKey = i18n.SuccessKeyQuantityCleared
	}

	builder.SuccessOK(dto.QuantityUpdateResponse{
		ProductID: productID,
		Quantity:  stored,
		Message:   builder.Translate(messageKey),
		Order:     dto.NewOrderViewResponse(orderID, filter, view, h.orders.Conditions()),
	})
}

// ResetOrder handles DELETE /api/orders/{id}/items requests.
//
// @Summary      Clear order
// @Description  Sets every quantity of the order back to 0.
// @Tags         Orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderViewResponse} "Empty order"
// @Failure      404 {object} dto.ErrorResponse "Order not found or expired"
// @Router       /api/orders/{id}/items [delete]
func (h *Handler) ResetOrder(c *gin.Context) {
	orderID := c.Param("id")
	if err := h.orders.ResetOrder(c.Request.Context(), orderID); err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	h.renderView(c, http.StatusOK, orderID, "")
}

// ExportCSV handles GET /api/orders/{id}/export/csv requests.
//
// @Summary      Download order CSV
// @Description  Downloads the ordered lines of the filtered order as pedido_YYYY-MM-DD.csv. An order without items yields the header row only.
// @Tags         Exports
// @Produce      text/csv
// @Param        id path string true "Order ID"
// @Param        q query string false "Search filter"
// @Success      200 {file} file "CSV attachment"
// @Failure      404 {object} dto.ErrorResponse "Order not found or expired"
// @Failure      500 {object} dto.ErrorResponse "Export could not be delivered"
// @Router       /api/orders/{id}/export/csv [get]
func (h *Handler) ExportCSV(c *gin.Context) {
	sink := newResponseSink(c)
	if _, err := h.orders.ExportCSV(c.Request.Context(), c.Param("id"), c.Query("q"), sink); err != nil {
		NewResponseBuilder(c).Fail(err)
	}
}

// ExportWhatsApp handles GET /api/orders/{id}/export/whatsapp requests.
//
// @Summary      WhatsApp order link
// @Description  Builds the order message and its wa.me deep link. With redirect=true the response is a 302 to the link.
// @Tags         Exports
// @Produce      json
// @Param        id path string true "Order ID"
// @Param        q query string false "Search filter"
// @Param        redirect query bool false "Redirect to the deep link"
// @Success      200 {object} dto.SuccessResponse{data=export.MessageResult} "Message and deep link"
// @Success      302 "Redirect to the deep link"
// @Failure      404 {object} dto.ErrorResponse "Order not found or expired"
// @Router       /api/orders/{id}/export/whatsapp [get]
func (h *Handler) ExportWhatsApp(c *gin.Context) {
	builder := NewResponseBuilder(c)

	query, err := BindQueryAndValidate[dto.WhatsAppExportQuery](c)
	if err != nil {
		builder.Fail(err)
		return
	}

	sink := newResponseSink(c)
	result, err := h.orders.ExportWhatsApp(c.Request.Context(), c.Param("id"), query.Filter, sink)
	if err != nil {
		builder.Fail(err)
		return
	}

	if query.ShouldRedirect() {
		c.Redirect(http.StatusFound, sink.URL())
		return
	}
	builder.SuccessOK(result)
}

func (h *Handler) renderView(c *gin.Context, status int, orderID, filter string) {
	builder := NewResponseBuilder(c)

	view, err := h.orders.View(c.Request.Context(), orderID, filter)
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.Success(status, dto.NewOrderViewResponse(orderID, filter, view, h.orders.Conditions()))
}
