// Package numfmt renders evaluation results for display.
package numfmt

import (
	"math"
	"strconv"
)

const (
	// MaxExactInteger is the magnitude below which integral values are
	// printed in full, without a decimal point.
	MaxExactInteger = 1e15
	// SignificantDigits bounds the precision of every other value.
	SignificantDigits = 12
)

// Format renders v the way results and trace operands are displayed.
//
// Integral values below MaxExactInteger in magnitude print as plain integers.
// Anything else is rounded to SignificantDigits significant digits with
// trailing zeros trimmed; very large or very small magnitudes fall back to
// exponent notation.
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		// -0 prints as 0
		return "0"
	}

	if v == math.Trunc(v) && math.Abs(v) < MaxExactInteger {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	// strconv drops trailing zeros for 'g' on its own.
	return strconv.FormatFloat(v, 'g', SignificantDigits, 64)
}
