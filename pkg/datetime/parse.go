// Package datetime provides date and time utility functions.
package datetime

import (
	"fmt"
	"time"

	"github.com/iwvelando/agency-analytics/pkg/constants"
)

const (
	// DateLayout is the day-granular format expected in config files.
	DateLayout = constants.DateLayout

	// MonthLayout is the month-granular format expected in config files.
	MonthLayout = constants.MonthLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate accepts either a day-granular or a month-granular date string.
// Month-granular values resolve to the first day of that month.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(MonthLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q, expected %s or %s", value, DateLayout, MonthLayout)
	}
	return t, nil
}

// StartOfMonth returns midnight UTC on the first day of the month containing t.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// StartOfDay returns midnight UTC on the calendar day of t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// OffsetMonth returns the first day of the month that is the given number of
// months away from the month containing t.
func OffsetMonth(t time.Time, months int) time.Time {
	return StartOfMonth(t).AddDate(0, months, 0)
}

// SameMonth reports whether a and b fall in the same calendar month and year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// MonthOnOrAfter reports whether the month containing a is the same as or later
// than the month containing b.
func MonthOnOrAfter(a, b time.Time) bool {
	return MonthIndex(a) >= MonthIndex(b)
}

// MonthIndex returns a monotonically increasing month ordinal for t.
func MonthIndex(t time.Time) int {
	return t.Year()*constants.MonthsPerYear + int(t.Month()) - 1
}

// MonthLabel formats t as a forecast bucket label, e.g. "Jan 2026".
func MonthLabel(t time.Time) string {
	return t.Format(constants.MonthLabelLayout)
}
