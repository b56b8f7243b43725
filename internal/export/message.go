package export

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/guttosm/catalog-service/internal/domain/model"
	"github.com/guttosm/catalog-service/internal/pricing"
)

const (
	// DefaultPhone is the sales agent's WhatsApp number (E.164 digits, no plus).
	DefaultPhone = "59891284128"

	deepLinkBase   = "https://wa.me/"
	contactMessage = "Hola Pablo, tengo una duda sobre el catalogo"
)

// ToOrderMessage renders the order as a human-readable WhatsApp message.
// Only lines with a positive quantity are listed.
func ToOrderMessage(lines []model.LineTotal, totals model.OrderTotals) string {
	var b strings.Builder

	b.WriteString("¡Hola! Me gustaría hacer un pedido con los siguientes detalles:\n\n")

	b.WriteString("*Resumen del Pedido:*\n")
	fmt.Fprintf(&b, "• Total de productos: %d\n", totals.DistinctProducts)
	fmt.Fprintf(&b, "• Total de unidades: %d\n", totals.TotalItems)
	fmt.Fprintf(&b, "• Volumen total: %s CBM\n", pricing.FormatVolume(totals.TotalVolume))
	fmt.Fprintf(&b, "• Costo total: %s\n\n", pricing.FormatPrice(totals.TotalCost))

	b.WriteString("*Productos solicitados:*\n")
	for _, l := range model.OrderedLines(lines) {
		fmt.Fprintf(&b, "• %s (%s)\n", l.Name, l.SKU)
		fmt.Fprintf(&b, "  Cantidad: %d\n", l.Quantity)
		fmt.Fprintf(&b, "  Precio unitario: %s\n", pricing.FormatPrice(l.WholesalePrice))
		fmt.Fprintf(&b, "  Subtotal: %s\n\n", pricing.FormatPrice(l.TotalCost))
	}

	return b.String()
}

// DeepLink builds the wa.me link that opens a chat with phone prefilled with message.
func DeepLink(phone, message string) string {
	return deepLinkBase + phone + "?text=" + EncodeURIComponent(message)
}

// ContactLink builds the general enquiry link shown next to the catalog.
func ContactLink(phone string) string {
	return DeepLink(phone, contactMessage)
}

// uriComponentUnescapes restores the marks that URI components leave as-is but
// url.QueryEscape encodes.
var uriComponentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent percent-encodes s leaving only A-Z a-z 0-9 - _ . ! ~ * ' ( )
// unescaped, with spaces as %20.
func EncodeURIComponent(s string) string {
	return uriComponentUnescapes.Replace(url.QueryEscape(s))
}
