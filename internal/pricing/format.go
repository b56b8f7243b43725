// Package pricing formats monetary amounts for display and export.
//
// Prices are rendered with "." as the thousands separator and "," as the
// decimal separator, and the decimal part is omitted when it is zero:
//
//	FormatPrice(1000)   -> "$1.000"
//	FormatPrice(1234.5) -> "$1.234,50"
package pricing

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	currencySymbol     = "$"
	thousandsSeparator = "."
	decimalSeparator   = ","
)

// FormatPrice rounds amount to two decimals and renders it in the storefront
// currency convention.
func FormatPrice(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	integerPart, decimalPart, _ := strings.Cut(fixed, ".")
	grouped := groupThousands(integerPart)

	if decimalPart == "00" {
		return currencySymbol + sign + grouped
	}
	return currencySymbol + sign + grouped + decimalSeparator + decimalPart
}

// PlainAmount renders amount as a plain decimal number suitable for CSV cells:
// the formatted price without currency symbol or thousands separators, using
// "." for decimals ("$1.234,50" -> "1234.50").
func PlainAmount(amount decimal.Decimal) string {
	s := FormatPrice(amount)
	s = strings.TrimPrefix(s, currencySymbol)
	s = strings.ReplaceAll(s, thousandsSeparator, "")
	return strings.Replace(s, decimalSeparator, ".", 1)
}

// FormatPercent renders pct with one decimal and a trailing percent sign.
func FormatPercent(pct float64) string {
	return fixedFloat(pct, 1) + "%"
}

// FormatVolume renders a CBM measure with two decimals.
func FormatVolume(cbm float64) string {
	return fixedFloat(cbm, 2)
}

// fixedFloat rounds the exact binary value of x to places decimals, with
// ties going away from zero.
func fixedFloat(x float64, places int32) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', int(places), 64)
	}
	return decimal.NewFromFloatWithExponent(x, -20).StringFixed(places)
}

// groupThousands inserts the thousands separator every three digits from the right.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)

	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(thousandsSeparator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
