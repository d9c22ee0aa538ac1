// Package money parses human-formatted currency strings into exact decimals.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var thousand = decimal.NewFromInt(1000)

// ParseAmount converts strings such as "$95,000", "95000.50" or "95k" into a
// decimal. Surrounding whitespace, a leading currency symbol and thousands
// separators are ignored.
func ParseAmount(value string) (decimal.Decimal, error) {
	s := strings.TrimSpace(value)
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = strings.TrimSpace(s[1:])
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	multiplier := decimal.NewFromInt(1)
	if strings.HasSuffix(s, "k") || strings.HasSuffix(s, "K") {
		multiplier = thousand
		s = s[:len(s)-1]
	}
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount %q", value)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	d = d.Mul(multiplier)
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// PositiveOr parses value and returns it when it is strictly positive,
// otherwise fallback. The second result reports whether value was used.
func PositiveOr(value string, fallback decimal.Decimal) (decimal.Decimal, bool) {
	d, err := ParseAmount(value)
	if err != nil || !d.IsPositive() {
		return fallback, false
	}
	return d, true
}

// Percent returns part/whole*100 as a float64, or 0 when whole is zero.
func Percent(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100)).InexactFloat64()
}
