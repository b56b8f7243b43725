package order

import (
	"github.com/guttosm/catalog-service/internal/catalog"
	"github.com/guttosm/catalog-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// Aggregate derives the order view for the products matching filter.
//
// Totals are computed over the filtered lines only, so searching changes the
// displayed totals. Products missing from quantities count as 0. Aggregate has
// no side effects and returns identical output for identical inputs.
func Aggregate(products []model.Product, quantities map[string]int, filter string) model.OrderView {
	lines := make([]model.LineTotal, 0, len(products))
	for _, p := range products {
		if !catalog.Matches(p, filter) {
			continue
		}
		lines = append(lines, NewLineTotal(p, quantities[p.ID]))
	}

	return model.OrderView{
		Lines:  lines,
		Totals: Totals(lines),
	}
}

// NewLineTotal computes the derived totals of one product at quantity.
func NewLineTotal(p model.Product, quantity int) model.LineTotal {
	q := float64(quantity)
	return model.LineTotal{
		Product:        p,
		Quantity:       quantity,
		TotalVolume:    p.UnitVolume * q,
		TotalWeight:    p.UnitWeight * q,
		TotalCost:      p.WholesalePrice.Mul(decimal.NewFromInt(int64(quantity))),
		GrossMarginPct: p.GrossMarginPct(),
	}
}

// Totals sums lines into order-level totals.
func Totals(lines []model.LineTotal) model.OrderTotals {
	t := model.OrderTotals{
		TotalCost:        decimal.Zero,
		TotalRetailValue: decimal.Zero,
	}

	for _, l := range lines {
		t.TotalVolume += l.TotalVolume
		t.TotalWeight += l.TotalWeight
		t.TotalCost = t.TotalCost.Add(l.TotalCost)
		t.TotalItems += l.Quantity
		t.TotalRetailValue = t.TotalRetailValue.Add(l.RetailValue())
		if l.Quantity > 0 {
			t.DistinctProducts++
		}
	}

	if t.TotalCost.IsPositive() && t.TotalRetailValue.IsPositive() {
		t.AverageGrossMarginPct = t.TotalRetailValue.Sub(t.TotalCost).
			Div(t.TotalRetailValue).
			Mul(decimal.NewFromInt(100)).
			InexactFloat64()
	}
	t.EstimatedProfit = t.TotalRetailValue.Sub(t.TotalCost)

	t.MarginTier = model.MarginTierNone
	if t.TotalItems > 0 {
		t.MarginTier = model.MarginTierFor(t.AverageGrossMarginPct)
	}

	return t
}
