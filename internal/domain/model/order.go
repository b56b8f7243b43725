package model

import "github.com/shopspring/decimal"

// LineTotal is one product row of an order view with its quantity-derived totals.
//
// @Description Product line with quantity and derived totals
type LineTotal struct {
	Product
	Quantity    int     `json:"quantity" example:"10"`
	TotalVolume float64 `json:"total_volume" example:"0.5"`
	TotalWeight float64 `json:"total_weight" example:"12"`
	// TotalCost is WholesalePrice × Quantity.
	TotalCost decimal.Decimal `json:"total_cost" swaggertype:"string" example:"12900"`
	// GrossMarginPct is a per-unit ratio and does not depend on Quantity.
	GrossMarginPct float64 `json:"gross_margin_pct" example:"48.2"`
} // @name LineTotal

// RetailValue returns SuggestedRetailPrice × Quantity.
func (l LineTotal) RetailValue() decimal.Decimal {
	return l.SuggestedRetailPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// MarginTier buckets an average gross margin for display.
type MarginTier string

const (
	MarginTierNone      MarginTier = "none"
	MarginTierLow       MarginTier = "low"
	MarginTierFair      MarginTier = "fair"
	MarginTierGood      MarginTier = "good"
	MarginTierHigh      MarginTier = "high"
	MarginTierExcellent MarginTier = "excellent"
)

// MarginTierFor returns the tier for the given margin percentage.
func MarginTierFor(pct float64) MarginTier {
	switch {
	case pct >= 50:
		return MarginTierExcellent
	case pct >= 40:
		return MarginTierHigh
	case pct >= 30:
		return MarginTierGood
	case pct >= 20:
		return MarginTierFair
	default:
		return MarginTierLow
	}
}

// OrderTotals holds the order-level sums over the lines of a view.
//
// @Description Order-level totals across the lines currently in view
type OrderTotals struct {
	TotalVolume      float64         `json:"total_volume" example:"1.25"`
	TotalWeight      float64         `json:"total_weight" example:"30"`
	TotalCost        decimal.Decimal `json:"total_cost" swaggertype:"string" example:"25800"`
	TotalItems       int             `json:"total_items" example:"20"`
	TotalRetailValue decimal.Decimal `json:"total_retail_value" swaggertype:"string" example:"49800"`
	// AverageGrossMarginPct is 0 when TotalCost is 0.
	AverageGrossMarginPct float64         `json:"average_gross_margin_pct" example:"48.2"`
	EstimatedProfit       decimal.Decimal `json:"estimated_profit" swaggertype:"string" example:"24000"`
	// DistinctProducts counts lines with a positive quantity.
	DistinctProducts int        `json:"distinct_products" example:"2"`
	MarginTier       MarginTier `json:"margin_tier" example:"high"`
} // @name OrderTotals

// OrderView is the read-only snapshot rendered by the presentation layer.
//
// @Description Filtered order lines and their totals
type OrderView struct {
	Lines  []LineTotal `json:"lines"`
	Totals OrderTotals `json:"totals"`
} // @name OrderView

// OrderedLines returns the lines with a positive quantity, preserving order.
func (v OrderView) OrderedLines() []LineTotal {
	return OrderedLines(v.Lines)
}

// OrderedLines filters lines down to those with a positive quantity.
func OrderedLines(lines []LineTotal) []LineTotal {
	out := make([]LineTotal, 0, len(lines))
	for _, l := range lines {
		if l.Quantity > 0 {
			out = append(out, l)
		}
	}
	return out
}
