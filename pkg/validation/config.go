// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
	"strings"
)

// ValidateBudgetCategories flags overrides that name no known category or
// name the same category twice.
func ValidateBudgetCategories(categories, known []string) []string {
	var warnings []string

	valid := make(map[string]bool, len(known))
	for _, k := range known {
		valid[k] = true
	}

	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		if !valid[c] {
			warnings = append(warnings, fmt.Sprintf("Budget override for '%s' does not match any category (%s) and will be ignored",
				c, strings.Join(known, ", ")))
			continue
		}
		if seen[c] {
			warnings = append(warnings, fmt.Sprintf("Budget category '%s' is overridden more than once, the last value wins", c))
		}
		seen[c] = true
	}

	return warnings
}

// ValidateUniqueNames flags empty and repeated names of the given kind.
func ValidateUniqueNames(kind string, names []string) []string {
	var warnings []string
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		if name == "" {
			warnings = append(warnings, fmt.Sprintf("%s #%d has no name", kind, i+1))
			continue
		}
		if seen[name] {
			warnings = append(warnings, fmt.Sprintf("Duplicate %s name '%s'", strings.ToLower(kind), name))
		}
		seen[name] = true
	}
	return warnings
}
