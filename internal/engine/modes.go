package engine

import "fmt"

// ChangeBase re-renders the current value in b and makes b the active base.
// Only available in Programming mode.
func (e *Engine) ChangeBase(b Base) error {
	if !b.Valid() {
		return e.fail(newInvalidBaseError(b))
	}
	if e.mode != ModeProgramming {
		return e.fail(newUnsupportedError("Base change", e.mode))
	}
	if e.errored {
		return e.fail(newErrorPendingError())
	}

	v, err := ParseInBase(e.current, e.base)
	if err != nil {
		return e.enterError(newBaseConversionError(e.current, e.base, err))
	}

	e.current = RenderInBase(v, b)
	e.base = b
	e.supplied = e.operandEntered()
	e.waiting = true
	e.notify(SeverityInfo, fmt.Sprintf("Base changed to %s", b.Label()))
	return nil
}

// SwitchMode changes the calculator mode, converting the current value
// between decimal text and Programming-mode numerals. A pending operator
// is kept.
func (e *Engine) SwitchMode(m Mode) error {
	if !m.Valid() {
		return e.fail(&CalcError{Code: ErrCodeUnsupported, Message: fmt.Sprintf("unknown mode %d", int(m))})
	}

	if !e.errored {
		value, err := e.currentValue()
		if err != nil {
			return e.enterError(err)
		}
		prev := e.mode
		e.mode = m
		text, err := e.render(value)
		if err != nil {
			e.mode = prev
			return e.enterError(err)
		}
		e.current = text
	} else {
		e.mode = m
	}

	e.supplied = e.operandEntered()
	e.waiting = true
	e.notify(SeveritySuccess, fmt.Sprintf("Switched to %s mode", m))
	return nil
}

// SetAngleMode sets how trigonometric functions interpret angles.
func (e *Engine) SetAngleMode(a AngleMode) error {
	if !a.Valid() {
		return e.fail(&CalcError{Code: ErrCodeUnsupported, Message: fmt.Sprintf("unknown angle mode %d", int(a))})
	}
	e.angle = a
	e.notify(SeverityInfo, fmt.Sprintf("Angle mode set to %s", a))
	return nil
}
