package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// WordBits is the width of two's-complement words in Programming mode.
const WordBits = 32

// ParseInBase parses a numeral written in base into a WordBits-wide word.
//
// A leading "-" denotes a negative magnitude of at most 2^31. Without a sign,
// decimal numerals must fit a signed word, while binary, octal and hex
// numerals may use the full unsigned word and are read as two's complement,
// so RenderInBase(ParseInBase(s)) round-trips for negative binary values.
// Wider numerals fail with strconv.ErrRange. Hex digits are accepted in
// either case.
func ParseInBase(s string, base Base) (int64, error) {
	if !base.Valid() {
		return 0, fmt.Errorf("parse %q: unsupported base %d", s, int(base))
	}

	digits, neg := strings.CutPrefix(s, "-")
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return 0, fmt.Errorf("parse %q in base %d: not a numeral", s, int(base))
	}

	u, err := strconv.ParseUint(digits, int(base), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q in base %d: %w", s, int(base), err)
	}

	limit := uint64(math.MaxUint32)
	switch {
	case neg:
		limit = -math.MinInt32
	case base == Base10:
		limit = math.MaxInt32
	}
	if u > limit {
		return 0, fmt.Errorf("parse %q in base %d: %w", s, int(base), strconv.ErrRange)
	}

	if neg {
		return -int64(u), nil
	}
	return WrapWord(int64(u)), nil
}

// RenderInBase renders v, wrapped to a word, in base.
//
// Negative values render as 32-bit two's complement in base 2 and as a
// "-" followed by the magnitude in the other bases. Hex digits are upper case.
func RenderInBase(v int64, base Base) string {
	v = WrapWord(v)
	if v < 0 && base == Base2 {
		return strconv.FormatUint(uint64(uint32(v)), 2)
	}

	mag := uint64(v)
	sign := ""
	if v < 0 {
		mag = uint64(-v)
		sign = "-"
	}
	return sign + strings.ToUpper(strconv.FormatUint(mag, int(base)))
}

// WrapWord reduces v to a WordBits-wide two's-complement word.
func WrapWord(v int64) int64 {
	return int64(int32(v))
}

// toInteger truncates x toward zero. It fails for values outside int64.
func toInteger(x float64) (int64, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	t := math.Trunc(x)
	if t >= math.MaxInt64 || t < math.MinInt64 {
		return 0, false
	}
	return int64(t), true
}

// digitValue returns the value of a 0-9/A-F digit, or -1.
func digitValue(d rune) int {
	switch {
	case d >= '0' && d <= '9':
		return int(d - '0')
	case d >= 'A' && d <= 'F':
		return int(d-'A') + 10
	case d >= 'a' && d <= 'f':
		return int(d-'a') + 10
	}
	return -1
}
