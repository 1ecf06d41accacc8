// Package score holds the arithmetic shared by every pipeline stage.
package score

import "math"

// #region rounding

// Round rounds half toward positive infinity so that x.5 always goes up,
// including for negative values (-2.5 rounds to -2).
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// RoundTo rounds v to the given number of decimal places using Round.
// Values too large to scale are already whole and come back unchanged.
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	scaled := v * p
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return v
	}
	return Round(scaled) / p
}

// #endregion rounding

// #region clamp

// Clamp rounds v and bounds it to [0,100]. NaN yields 0 and infinities
// saturate to the nearest bound.
func Clamp(v float64) int {
	return ClampRange(v, 0, 100)
}

// ClampRange rounds v and bounds it to [lo,hi]. NaN yields lo and
// infinities saturate to the nearest bound.
func ClampRange(v float64, lo, hi int) int {
	if math.IsNaN(v) {
		return lo
	}
	r := Round(v)
	if r < float64(lo) {
		return lo
	}
	if r > float64(hi) {
		return hi
	}
	return int(r)
}

// #endregion clamp

// #region sanitize

// Sanitize replaces NaN and infinities with 0 so malformed input degrades
// into a low score instead of poisoning every downstream stage.
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Finite returns v, or fallback when v is NaN or infinite.
func Finite(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// Bound saturates infinities to the largest finite float of the same sign
// and maps NaN to 0, keeping derived ratios encodable.
func Bound(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}

// Mean returns the arithmetic mean of vals, or 0 for an empty slice.
func Mean(vals ...int) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum int
	for _, v := range vals {
		sum += v
	}
	return float64(sum) / float64(len(vals))
}

// #endregion sanitize
