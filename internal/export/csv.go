// Package export serializes an order for the external hand-off channels:
// a CSV file and a WhatsApp deep-link message.
package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/catalog-service/internal/domain/model"
	"github.com/guttosm/catalog-service/internal/pricing"
)

// CSVContentType is the MIME type of the exported order file.
const CSVContentType = "text/csv;charset=utf-8"

var csvHeader = []string{
	"Descripción",
	"Precio mayorista",
	"Precio sugerido",
	"Margen bruto",
	"Terminación",
	"SKU",
	"Volumen (CBM)",
	"Cantidad",
	"Total CBM",
	"Total",
}

// ToCSV renders the ordered lines (quantity > 0) as comma-separated text with
// a header row. Text fields are quoted but not escaped.
func ToCSV(lines []model.LineTotal) string {
	ordered := model.OrderedLines(lines)

	rows := make([]string, 0, len(ordered)+1)
	rows = append(rows, strings.Join(csvHeader, ","))
	for _, l := range ordered {
		rows = append(rows, csvRow(l))
	}
	return strings.Join(rows, "\n")
}

func csvRow(l model.LineTotal) string {
	return strings.Join([]string{
		quote(l.Name),
		pricing.PlainAmount(l.WholesalePrice),
		pricing.PlainAmount(l.SuggestedRetailPrice),
		pricing.FormatPercent(l.GrossMarginPct),
		quote(l.Finish),
		quote(l.SKU),
		pricing.FormatVolume(l.UnitVolume),
		strconv.Itoa(l.Quantity),
		pricing.FormatVolume(l.TotalVolume),
		pricing.PlainAmount(l.TotalCost),
	}, ",")
}

func quote(s string) string {
	return `"` + s + `"`
}

// FileName returns the exported file name for the UTC date of now.
func FileName(now time.Time) string {
	return "pedido_" + now.UTC().Format("2006-01-02") + ".csv"
}
