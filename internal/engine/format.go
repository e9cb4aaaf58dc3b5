package engine

import (
	"math"
	"strconv"
	"strings"
)

// Formatting thresholds for decimal results.
const (
	zeroThreshold     = 1e-10
	largeThreshold    = 1e15
	smallThreshold    = 1e-6
	significantDigits = 12
	exponentDigits    = 6
)

// FormatNumber renders a decimal result for display.
//
// Values with magnitude below 1e-10 render as "0". Values at or above 1e15,
// or below 1e-6, use exponential notation with six fractional digits
// ("1.234568e+20"). Everything else is rounded to twelve significant digits
// with trailing zeros removed.
func FormatNumber(x float64) string {
	a := math.Abs(x)
	if a < zeroThreshold {
		return "0"
	}
	if a >= largeThreshold || a < smallThreshold {
		return formatExponential(x)
	}

	rounded, err := strconv.ParseFloat(strconv.FormatFloat(x, 'g', significantDigits, 64), 64)
	if err != nil {
		rounded = x
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// formatExponential writes x as d.dddddde±N without exponent zero padding.
func formatExponential(x float64) string {
	s := strconv.FormatFloat(x, 'e', exponentDigits, 64)
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok || len(exp) < 2 {
		return s
	}
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
