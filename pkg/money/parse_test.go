package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  string
		wantError bool
	}{
		{"Plain integer", "95000", "95000", false},
		{"Dollar sign and separators", "$95,000", "95000", false},
		{"Cents", "$1,234.56", "1234.56", false},
		{"Whitespace", "  72000 ", "72000", false},
		{"Thousands suffix", "$85k", "85000", false},
		{"Negative", "-$1,000", "-1000", false},
		{"Empty", "", "", true},
		{"Only symbol", "$", "", true},
		{"Words", "competitive", "", true},
		{"Trailing text", "95000 per year", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseAmount(tt.input)
			if tt.wantError {
				if err == nil {
					t.Errorf("ParseAmount(%q) expected error but got %s", tt.input, result)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) error = %v", tt.input, err)
			}
			if !result.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("ParseAmount(%q) = %s, expected %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestPositiveOr(t *testing.T) {
	fallback := decimal.NewFromInt(75)
	tests := []struct {
		name     string
		input    string
		expected string
		used     bool
	}{
		{"Parseable", "$95,000", "95000", true},
		{"Unparseable", "TBD", "75", false},
		{"Zero", "0", "75", false},
		{"Negative", "-5", "75", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, used := PositiveOr(tt.input, fallback)
			if used != tt.used {
				t.Errorf("PositiveOr(%q) used = %v, expected %v", tt.input, used, tt.used)
			}
			if !result.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("PositiveOr(%q) = %s, expected %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	if p := Percent(decimal.NewFromInt(1), decimal.Zero); p != 0 {
		t.Errorf("Percent with zero whole = %v, expected 0", p)
	}
	if p := Percent(decimal.NewFromInt(1), decimal.NewFromInt(4)); p != 25 {
		t.Errorf("Percent(1, 4) = %v, expected 25", p)
	}
}
