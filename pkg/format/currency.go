// Package format renders money and percentages for display.
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	if rounded.IsNegative() {
		return "-$" + NumericCurrency(rounded.Abs())
	}
	return "$" + NumericCurrency(rounded)
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	if rounded.IsNegative() {
		return "-" + groupThousands(rounded.Abs().StringFixed(2))
	}
	return groupThousands(rounded.StringFixed(2))
}

// Plain returns the amount rounded to cents without separators, for machine-readable output.
func Plain(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// Percent returns a percentage with one decimal place (e.g., "86.5%").
func Percent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

func groupThousands(fixed string) string {
	parts := strings.SplitN(fixed, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
