package model

import "github.com/shopspring/decimal"

// DefaultMinimumPurchase is the minimum order value when none is configured.
var DefaultMinimumPurchase = decimal.NewFromInt(20000)

// PurchaseConditions are the wholesale terms shown alongside the catalog.
//
// @Description Wholesale purchase conditions
type PurchaseConditions struct {
	MinimumPurchase decimal.Decimal `json:"minimum_purchase" swaggertype:"string" example:"20000"`
	MinimumQuantity int             `json:"minimum_quantity" example:"5"`
} // @name PurchaseConditions

// Met reports whether an order with the given totals satisfies the minimum
// order value.
func (c PurchaseConditions) Met(totals OrderTotals) bool {
	return totals.TotalItems > 0 && totals.TotalCost.GreaterThanOrEqual(c.MinimumPurchase)
}
