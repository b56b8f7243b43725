package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/catalog-service/internal/domain/model"
	"github.com/guttosm/catalog-service/internal/pricing"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeNotFound indicates a route was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeOrderNotFound indicates an unknown or expired order.
	ErrCodeOrderNotFound = "order_not_found"
	// ErrCodeProductNotFound indicates a product id outside the catalog.
	ErrCodeProductNotFound = "product_not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeUnavailable indicates a disabled or failing dependency.
	ErrCodeUnavailable = "service_unavailable"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the endpoint payload
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"order_not_found"`
	Message string `json:"message,omitempty" example:"Order not found or expired"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetail adds one detail entry.
func (e ErrorResponse) WithDetail(key, value string) ErrorResponse {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the generic error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// ProductResponse is one catalog entry.
// @Description Catalog product with display prices
type ProductResponse struct {
	ID                          string  `json:"id" example:"1"`
	Name                        string  `json:"name" example:"Lámpara Colgante Nórdica"`
	Collection                  string  `json:"collection" example:"Nórdica"`
	SKU                         string  `json:"sku" example:"LC-NOR-01"`
	Finish                      string  `json:"finish" example:"Negro mate"`
	UnitVolume                  float64 `json:"unit_volume" example:"0.06"`
	UnitWeight                  float64 `json:"unit_weight" example:"1.4"`
	WholesalePrice              string  `json:"wholesale_price" example:"1290.00"`
	WholesalePriceDisplay       string  `json:"wholesale_price_display" example:"$1.290"`
	SuggestedRetailPrice        string  `json:"suggested_retail_price" example:"2490.00"`
	SuggestedRetailPriceDisplay string  `json:"suggested_retail_price_display" example:"$2.490"`
	GrossMarginPct              float64 `json:"gross_margin_pct" example:"48.19"`
	GrossMarginDisplay          string  `json:"gross_margin_display" example:"48.2%"`
	MarginTier                  string  `json:"margin_tier" example:"good"`
	ImageRef                    string  `json:"image_ref,omitempty" example:"/images/lc-nor-01.jpg"`
} // @name ProductResponse

// NewProductResponse renders a product.
func NewProductResponse(p model.Product) ProductResponse {
	margin := p.GrossMarginPct()
	return ProductResponse{
		ID:                          p.ID,
		Name:                        p.Name,
		Collection:                  p.Collection,
		SKU:                         p.SKU,
		Finish:                      p.Finish,
		UnitVolume:                  p.UnitVolume,
		UnitWeight:                  p.UnitWeight,
		WholesalePrice:              p.WholesalePrice.StringFixed(2),
		WholesalePriceDisplay:       pricing.FormatPrice(p.WholesalePrice),
		SuggestedRetailPrice:        p.SuggestedRetailPrice.StringFixed(2),
		SuggestedRetailPriceDisplay: pricing.FormatPrice(p.SuggestedRetailPrice),
		GrossMarginPct:              margin,
		GrossMarginDisplay:          pricing.FormatPercent(margin),
		MarginTier:                  string(model.MarginTierFor(margin)),
		ImageRef:                    p.ImageRef,
	}
}

// NewProductList renders a product list.
func NewProductList(products []model.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = NewProductResponse(p)
	}
	return out
}

// LineResponse is one order line.
// @Description Order line with per-line totals
type LineResponse struct {
	ProductResponse
	Quantity         int     `json:"quantity" example:"10"`
	TotalVolume      float64 `json:"total_volume" example:"0.6"`
	TotalWeight      float64 `json:"total_weight" example:"14"`
	TotalCost        string  `json:"total_cost" example:"12900.00"`
	TotalCostDisplay string  `json:"total_cost_display" example:"$12.900"`
} // @name LineResponse

// TotalsResponse is the order summary.
// @Description Order totals
type TotalsResponse struct {
	DistinctProducts          int     `json:"distinct_products" example:"1"`
	TotalItems                int     `json:"total_items" example:"10"`
	TotalVolume               float64 `json:"total_volume" example:"0.6"`
	TotalVolumeDisplay        string  `json:"total_volume_display" example:"0.60"`
	TotalWeight               float64 `json:"total_weight" example:"14"`
	TotalCost                 string  `json:"total_cost" example:"12900.00"`
	TotalCostDisplay          string  `json:"total_cost_display" example:"$12.900"`
	TotalRetailValue          string  `json:"total_retail_value" example:"24900.00"`
	TotalRetailValueDisplay   string  `json:"total_retail_value_display" example:"$24.900"`
	EstimatedProfit           string  `json:"estimated_profit" example:"12000.00"`
	EstimatedProfitDisplay    string  `json:"estimated_profit_display" example:"$12.000"`
	AverageGrossMarginPct     float64 `json:"average_gross_margin_pct" example:"48.19"`
	AverageGrossMarginDisplay string  `json:"average_gross_margin_display" example:"48.2%"`
	MarginTier                string  `json:"margin_tier" example:"good"`
	MeetsMinimumPurchase      bool    `json:"meets_minimum_purchase" example:"false"`
} // @name TotalsResponse

// OrderViewResponse is an aggregated order.
// @Description Aggregated order view
type OrderViewResponse struct {
	OrderID string         `json:"order_id" example:"2f1c7c1e-6f0e-4b8e-9d7a-2f7d7d1c0a11"`
	Filter  string         `json:"filter,omitempty" example:"nórdica"`
	Lines   []LineResponse `json:"lines"`
	Totals  TotalsResponse `json:"totals"`
} // @name OrderViewResponse

// NewOrderViewResponse renders an order view under the given conditions.
func NewOrderViewResponse(orderID, filter string, view model.OrderView, conditions model.PurchaseConditions) OrderViewResponse {
	lines := make([]LineResponse, len(view.Lines))
	for i, l := range view.Lines {
		lines[i] = LineResponse{
			ProductResponse:  NewProductResponse(l.Product),
			Quantity:         l.Quantity,
			TotalVolume:      l.TotalVolume,
			TotalWeight:      l.TotalWeight,
			TotalCost:        l.TotalCost.StringFixed(2),
			TotalCostDisplay: pricing.FormatPrice(l.TotalCost),
		}
	}

	t := view.Totals
	marginDisplay := "-"
	if t.TotalItems > 0 {
		marginDisplay = pricing.FormatPercent(t.AverageGrossMarginPct)
	}

	return OrderViewResponse{
		OrderID: orderID,
		Filter:  filter,
		Lines:   lines,
		Totals: TotalsResponse{
			DistinctProducts:          t.DistinctProducts,
			TotalItems:                t.TotalItems,
			TotalVolume:               t.TotalVolume,
			TotalVolumeDisplay:        pricing.FormatVolume(t.TotalVolume),
			TotalWeight:               t.TotalWeight,
			TotalCost:                 t.TotalCost.StringFixed(2),
			TotalCostDisplay:          pricing.FormatPrice(t.TotalCost),
			TotalRetailValue:          t.TotalRetailValue.StringFixed(2),
			TotalRetailValueDisplay:   pricing.FormatPrice(t.TotalRetailValue),
			EstimatedProfit:           t.EstimatedProfit.StringFixed(2),
			EstimatedProfitDisplay:    pricing.FormatPrice(t.EstimatedProfit),
			AverageGrossMarginPct:     t.AverageGrossMarginPct,
			AverageGrossMarginDisplay: marginDisplay,
			MarginTier:                string(t.MarginTier),
			MeetsMinimumPurchase:      conditions.Met(t),
		},
	}
}

// QuantityUpdateResponse is returned after a quantity change.
// @Description Result of a quantity update
type QuantityUpdateResponse struct {
	ProductID string            `json:"product_id" example:"1"`
	Quantity  int               `json:"quantity" example:"10"`
	Message   string            `json:"message" example:"Quantity updated"`
	Order     OrderViewResponse `json:"order"`
} // @name QuantityUpdateResponse

// ConditionsResponse lists the wholesale purchase conditions.
// @Description Wholesale purchase conditions
type ConditionsResponse struct {
	MinimumPurchase        string `json:"minimum_purchase" example:"20000.00"`
	MinimumPurchaseDisplay string `json:"minimum_purchase_display" example:"$20.000"`
	MinimumQuantity        int    `json:"minimum_quantity" example:"5"`
} // @name ConditionsResponse

// NewConditionsResponse renders purchase conditions.
func NewConditionsResponse(c model.PurchaseConditions) ConditionsResponse {
	return ConditionsResponse{
		MinimumPurchase:        c.MinimumPurchase.StringFixed(2),
		MinimumPurchaseDisplay: pricing.FormatPrice(c.MinimumPurchase),
		MinimumQuantity:        c.MinimumQuantity,
	}
}

// ContactResponse carries the enquiry deep link.
// @Description WhatsApp contact link
type ContactResponse struct {
	URL string `json:"url" example:"https://wa.me/59891284128?text=Hola%20Pablo%2C%20tengo%20una%20duda%20sobre%20el%20catalogo"`
} // @name ContactResponse

// ExportListResponse is a page of the export log.
// @Description Page of recorded exports
type ExportListResponse struct {
	Exports []model.ExportRecord `json:"exports"`
	Total   int64                `json:"total" example:"42"`
	Limit   int                  `json:"limit" example:"50"`
	Skip    int                  `json:"skip" example:"0"`
} // @name ExportListResponse
