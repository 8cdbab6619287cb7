package calc

import (
	"math"
	"strconv"
)

// fracScale rounds results to at most 10 fractional decimal digits.
const fracScale = 1e10

// FormatResult renders an evaluation result for display. Mathematical
// integers render without a decimal point; everything else is rounded to
// at most 10 fractional digits and printed as the shortest equivalent
// decimal string with trailing zeros stripped.
func FormatResult(v float64) string {
	if math.Trunc(v) == v {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	scaled := math.Round(v * fracScale)
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(scaled/fracScale, 'f', -1, 64)
}
