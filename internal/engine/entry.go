package engine

import (
	"strings"
	"unicode"
)

// MaxDigits is the longest entry digit input can produce. Longer input is
// truncated rather than rejected.
const MaxDigits = 15

// InputDigit enters one digit.
//
// Outside Programming mode only 0-9 are accepted; in Programming mode the
// digit's value must be below the active base and the entry must still fit
// a 32-bit word. An invalid digit leaves the state unchanged. In the Error
// phase the calculation is cleared first.
func (e *Engine) InputDigit(d rune) error {
	d = unicode.ToUpper(d)
	base := e.displayBase()
	if v := digitValue(d); v < 0 || v >= int(base) {
		return e.fail(newInvalidDigitError(d, base))
	}

	if e.errored {
		e.resetCalculation()
	}

	next := e.current + string(d)
	if e.waiting || e.current == "0" {
		next = string(d)
	}
	if len(next) > MaxDigits {
		next = next[:MaxDigits]
	}
	if e.mode == ModeProgramming {
		// Digits that would overflow the word are dropped.
		if _, err := ParseInBase(next, e.base); err != nil {
			e.logger.Debug("digit dropped", "digit", string(d), "current", e.current)
			return nil
		}
	}
	e.current = next
	e.waiting = false

	e.logger.Debug("digit", "digit", string(d), "current", e.current)
	return nil
}

// InputDecimalPoint starts the fractional part of the entry.
// A second point in the same entry is ignored.
func (e *Engine) InputDecimalPoint() error {
	if e.mode == ModeProgramming {
		return e.fail(newUnsupportedError("Decimal point", e.mode))
	}

	if e.errored {
		e.resetCalculation()
	}

	switch {
	case e.waiting:
		e.current = "0."
		e.waiting = false
	case strings.Contains(e.current, "."):
		return nil
	case len(e.current) < MaxDigits:
		e.current += "."
	}
	return nil
}

// Backspace removes the last character of the entry, leaving "0" when
// nothing meaningful remains. In the Error phase it behaves like ClearEntry.
func (e *Engine) Backspace() error {
	if e.errored {
		return e.ClearEntry()
	}

	cur := e.current
	if len(cur) > 1 {
		cur = cur[:len(cur)-1]
	} else {
		cur = "0"
	}
	// Do not leave a dangling sign or exponent marker behind.
	cur = strings.TrimRight(cur, "e+")
	if strings.HasSuffix(cur, "e-") {
		cur = strings.TrimSuffix(cur, "e-")
	}
	if cur == "" || cur == "-" {
		cur = "0"
	}

	e.current = cur
	e.waiting = false
	return nil
}

// ClearEntry resets the entry to "0" and clears the error flag.
// The pending operator and its operand are kept.
func (e *Engine) ClearEntry() error {
	e.current = "0"
	e.waiting = false
	e.errored = false
	e.errMsg = ""
	e.notify(SeverityInfo, "Entry cleared")
	return nil
}

// ClearAll resets the calculation to the initial Ready state.
// Memory and history are kept.
func (e *Engine) ClearAll() error {
	e.resetCalculation()
	e.notify(SeverityInfo, "Calculator cleared")
	return nil
}
