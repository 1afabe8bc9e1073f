// Package numeric converts between fixed-point integer and float
// representations by scaling with powers of ten.
package numeric

import "math"

// ToInteger scales value by 10^precision and truncates toward zero.
// Scaled results within one part in 10^12 of an integer snap to it, so
// values produced by ToFloat convert back exactly despite binary float
// representation error (0.29 * 100 is 28.999999999999996).
func ToInteger(value float64, precision int) int64 {
	scaled := value * math.Pow10(precision)
	rounded := math.Round(scaled)
	if math.Abs(scaled-rounded) <= 1e-12*math.Max(1, math.Abs(scaled)) {
		return int64(rounded)
	}
	return int64(math.Trunc(scaled))
}

// ToFloat divides value by 10^precision.
//
// ToInteger(ToFloat(x, p), p) == x holds; the reverse composition may lose
// fractional digits beyond the precision to truncation.
func ToFloat(value int64, precision int) float64 {
	return float64(value) / math.Pow10(precision)
}
