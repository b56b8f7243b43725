// Package order holds the per-order quantity state and the pure aggregation
// that derives line and order totals from it.
package order

import (
	"strconv"
	"strings"
	"unicode"
)

// MinimumQuantity is the smallest positive quantity that can be ordered for a
// product. Positive inputs below it are stored as 0.
const MinimumQuantity = 5

// ParseQuantity parses user-entered quantity text leniently: leading spaces
// and an optional sign are accepted, parsing stops at the first non-digit, and
// input without leading digits (or out of int range) yields 0.
func ParseQuantity(raw string) int {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	q, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return q
}

// Normalize applies the minimum-quantity rule: negative values and values in
// [1, MinimumQuantity) become 0, everything else is kept as is.
func Normalize(q int) int {
	if q < MinimumQuantity {
		return 0
	}
	return q
}
