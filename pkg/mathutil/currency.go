// Package mathutil provides guarded float helpers for score arithmetic.
package mathutil

import "math"

// Clamp bounds val to the closed interval [lo, hi]. NaN collapses to lo.
func Clamp(val, lo, hi float64) float64 {
	if math.IsNaN(val) {
		return lo
	}
	return max(lo, min(val, hi))
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * 100
}

// Ratio returns value/total, or 0 when total is zero.
func Ratio(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return value / total
}
