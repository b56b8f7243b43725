// Package model defines the core domain entities for the catalog service.
package model

import "github.com/shopspring/decimal"

// Product is a single catalog entry. Products are loaded once and never mutated.
//
// @Description Catalog product with wholesale and suggested retail prices
type Product struct {
	// ID uniquely identifies the product within the catalog.
	ID         string `json:"id" example:"lc-001"`
	Name       string `json:"name" example:"Lámpara Colgante Nórdica"`
	Collection string `json:"collection" example:"Nórdica"`
	SKU        string `json:"sku" example:"LC-NOR-001"`
	Finish     string `json:"finish" example:"Negro mate"`
	// UnitVolume is the shipping volume of one unit in cubic meters (CBM).
	UnitVolume float64 `json:"unit_volume" example:"0.05"`
	// UnitWeight is the weight of one unit in kilograms.
	UnitWeight float64 `json:"unit_weight" example:"1.2"`
	// WholesalePrice is the per-unit cost charged to the buyer.
	WholesalePrice decimal.Decimal `json:"wholesale_price" swaggertype:"string" example:"1290"`
	// SuggestedRetailPrice is the reference resale price used for margins.
	SuggestedRetailPrice decimal.Decimal `json:"suggested_retail_price" swaggertype:"string" example:"2490"`
	ImageRef             string          `json:"image_ref,omitempty" example:"/images/lc-001.jpg"`
} // @name Product

// GrossMarginPct returns the per-unit gross margin as a percentage of the
// suggested retail price. A zero retail price yields 0.
func (p Product) GrossMarginPct() float64 {
	if !p.SuggestedRetailPrice.IsPositive() {
		return 0
	}
	return p.SuggestedRetailPrice.Sub(p.WholesalePrice).
		Div(p.SuggestedRetailPrice).
		Mul(decimal.NewFromInt(100)).
		InexactFloat64()
}
