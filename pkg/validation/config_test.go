package validation

import (
	"strings"
	"testing"
)

func TestValidateBudgetCategories(t *testing.T) {
	known := []string{"Revenue", "Salaries", "Travel"}

	tests := []struct {
		name       string
		categories []string
		expected   int
		contains   string
	}{
		{
			name:       "All known",
			categories: []string{"Revenue", "Travel"},
			expected:   0,
		},
		{
			name:       "Unknown category",
			categories: []string{"Catering"},
			expected:   1,
			contains:   "'Catering' does not match any category",
		},
		{
			name:       "Category names are case sensitive",
			categories: []string{"travel"},
			expected:   1,
			contains:   "'travel'",
		},
		{
			name:       "Duplicate override",
			categories: []string{"Salaries", "Salaries"},
			expected:   1,
			contains:   "more than once",
		},
		{
			name:       "No overrides",
			categories: nil,
			expected:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateBudgetCategories(tt.categories, known)
			if len(warnings) != tt.expected {
				t.Fatalf("ValidateBudgetCategories() = %v, expected %d warnings", warnings, tt.expected)
			}
			if tt.contains != "" && !strings.Contains(warnings[0], tt.contains) {
				t.Errorf("warning %q does not contain %q", warnings[0], tt.contains)
			}
		})
	}
}

func TestValidateUniqueNames(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		expected []string
	}{
		{
			name:     "Unique",
			names:    []string{"Hire", "Upsell"},
			expected: nil,
		},
		{
			name:     "Repeated",
			names:    []string{"Hire", "Upsell", "Hire"},
			expected: []string{"Duplicate scenario name 'Hire'"},
		},
		{
			name:     "Empty name",
			names:    []string{"Hire", ""},
			expected: []string{"Scenario #2 has no name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateUniqueNames("Scenario", tt.names)
			if len(warnings) != len(tt.expected) {
				t.Fatalf("ValidateUniqueNames() = %v, expected %v", warnings, tt.expected)
			}
			for i := range warnings {
				if warnings[i] != tt.expected[i] {
					t.Errorf("warning %d = %q, expected %q", i, warnings[i], tt.expected[i])
				}
			}
		})
	}
}
