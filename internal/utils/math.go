// internal/utils/math.go
package utils

import "math"

// Clamp ограничивает v диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1 for negative values and 1 otherwise. Zero counts as positive,
// so a degenerate extent still has a direction to inset towards.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// Distance returns the Euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(math.Abs(x2-x1), math.Abs(y2-y1))
}
