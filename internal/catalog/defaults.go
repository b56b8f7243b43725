package catalog

import (
	"github.com/guttosm/catalog-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// defaultProducts is the built-in catalog served when no CATALOG_FILE is set.
var defaultProducts = []model.Product{
	{
		ID: "1", Name: "Lámpara Colgante Nórdica", Collection: "Nórdica", SKU: "LC-NOR-01",
		Finish: "Negro mate", UnitVolume: 0.06, UnitWeight: 1.4,
		WholesalePrice: decimal.NewFromInt(1290), SuggestedRetailPrice: decimal.NewFromInt(2490),
		ImageRef: "/images/lc-nor-01.jpg",
	},
	{
		ID: "2", Name: "Lámpara Colgante Nórdica", Collection: "Nórdica", SKU: "LC-NOR-02",
		Finish: "Blanco", UnitVolume: 0.06, UnitWeight: 1.4,
		WholesalePrice: decimal.NewFromInt(1290), SuggestedRetailPrice: decimal.NewFromInt(2490),
		ImageRef: "/images/lc-nor-02.jpg",
	},
	{
		ID: "3", Name: "Velador Madera", Collection: "Natural", SKU: "VM-NAT-01",
		Finish: "Madera clara", UnitVolume: 0.03, UnitWeight: 0.9,
		WholesalePrice: decimal.NewFromInt(890), SuggestedRetailPrice: decimal.NewFromInt(1690),
		ImageRef: "/images/vm-nat-01.jpg",
	},
	{
		ID: "4", Name: "Aplique de Pared Industrial", Collection: "Industrial", SKU: "AP-IND-01",
		Finish: "Óxido", UnitVolume: 0.02, UnitWeight: 0.7,
		WholesalePrice: decimal.NewFromInt(750), SuggestedRetailPrice: decimal.NewFromInt(1390),
		ImageRef: "/images/ap-ind-01.jpg",
	},
	{
		ID: "5", Name: "Lámpara de Pie Arco", Collection: "Moderna", SKU: "LP-MOD-01",
		Finish: "Dorado", UnitVolume: 0.18, UnitWeight: 5.2,
		WholesalePrice: decimal.NewFromInt(4590), SuggestedRetailPrice: decimal.NewFromInt(8990),
		ImageRef: "/images/lp-mod-01.jpg",
	},
	{
		ID: "6", Name: "Plafón LED Redondo", Collection: "Moderna", SKU: "PL-MOD-02",
		Finish: "Blanco", UnitVolume: 0.04, UnitWeight: 1.1,
		WholesalePrice: decimal.RequireFromString("1149.50"), SuggestedRetailPrice: decimal.NewFromInt(1990),
		ImageRef: "/images/pl-mod-02.jpg",
	},
	{
		ID: "7", Name: "Colgante Ratán", Collection: "Natural", SKU: "CR-NAT-02",
		Finish: "Ratán natural", UnitVolume: 0.09, UnitWeight: 0.8,
		WholesalePrice: decimal.NewFromInt(1590), SuggestedRetailPrice: decimal.NewFromInt(3290),
		ImageRef: "/images/cr-nat-02.jpg",
	},
	{
		ID: "8", Name: "Spot Orientable Triple", Collection: "Industrial", SKU: "SP-IND-03",
		Finish: "Negro mate", UnitVolume: 0.025, UnitWeight: 0.6,
		WholesalePrice: decimal.NewFromInt(990), SuggestedRetailPrice: decimal.NewFromInt(1790),
		ImageRef: "/images/sp-ind-03.jpg",
	},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultProducts)
	if err != nil {
		panic("catalog: invalid built-in catalog: " + err.Error())
	}
	return c
}
