package format

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
		numeric  string
	}{
		{"0", "$0.00", "0.00"},
		{"15750", "$15,750.00", "15,750.00"},
		{"1826.923076923", "$1,826.92", "1,826.92"},
		{"-536000", "-$536,000.00", "-536,000.00"},
		{"999.995", "$1,000.00", "1,000.00"},
		{"-0.001", "$0.00", "0.00"},
		{"1234567.8", "$1,234,567.80", "1,234,567.80"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			d := decimal.RequireFromString(tt.amount)
			if got := Currency(d); got != tt.expected {
				t.Errorf("Currency(%s) = %s, expected %s", tt.amount, got, tt.expected)
			}
			if got := NumericCurrency(d); got != tt.numeric {
				t.Errorf("NumericCurrency(%s) = %s, expected %s", tt.amount, got, tt.numeric)
			}
		})
	}
}

func TestPlainAndPercent(t *testing.T) {
	if got := Plain(decimal.RequireFromString("2126.923")); got != "2126.92" {
		t.Errorf("Plain() = %s, expected 2126.92", got)
	}
	if got := Percent(86.4953); got != "86.5%" {
		t.Errorf("Percent() = %s, expected 86.5%%", got)
	}
}
