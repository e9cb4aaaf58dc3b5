package engine

import (
	"errors"
	"strings"
)

// keyActions maps key names (lower case) to operations. It covers the
// keyboard shortcuts of the calculator plus the names of the buttons that
// have no single-key shortcut.
//
// Keywords win over numerals: "dec" selects base 10 rather than entering
// the hex digits D, E, C.
var keyActions = map[string]func(*Engine) error{
	"+":   pressOp(OpAdd),
	"-":   pressOp(OpSubtract),
	"−":   pressOp(OpSubtract),
	"*":   pressOp(OpMultiply),
	"×":   pressOp(OpMultiply),
	"/":   pressOp(OpDivide),
	"÷":   pressOp(OpDivide),
	"and": pressOp(OpAnd),
	"or":  pressOp(OpOr),
	"xor": pressOp(OpXor),
	"<<":  pressOp(OpShiftLeft),
	">>":  pressOp(OpShiftRight),

	"=":         (*Engine).Evaluate,
	"enter":     (*Engine).Evaluate,
	".":         (*Engine).InputDecimalPoint,
	"escape":    (*Engine).ClearAll,
	"esc":       (*Engine).ClearAll,
	"clear":     (*Engine).ClearAll,
	"delete":    (*Engine).ClearEntry,
	"del":       (*Engine).ClearEntry,
	"backspace": (*Engine).Backspace,
	"bs":        (*Engine).Backspace,

	"sin":   pressFn(FnSin),
	"cos":   pressFn(FnCos),
	"tan":   pressFn(FnTan),
	"asin":  pressFn(FnAsin),
	"acos":  pressFn(FnAcos),
	"atan":  pressFn(FnAtan),
	"log":   pressFn(FnLog10),
	"ln":    pressFn(FnLn),
	"sqr":   pressFn(FnSquare),
	"x²":    pressFn(FnSquare),
	"cube":  pressFn(FnCube),
	"x³":    pressFn(FnCube),
	"sqrt":  pressFn(FnSqrt),
	"√":     pressFn(FnSqrt),
	"fact":  pressFn(FnFactorial),
	"!":     pressFn(FnFactorial),
	"not":   pressFn(FnBitwiseNot),
	"%":     pressFn(FnPercent),
	"pi":    pressFn(FnPi),
	"π":     pressFn(FnPi),
	"euler": pressFn(FnE),

	"mc": pressMem(MemClear),
	"mr": pressMem(MemRecall),
	"ms": pressMem(MemStore),
	"m+": pressMem(MemAdd),
	"m-": pressMem(MemSubtract),

	"standard":    pressMode(ModeStandard),
	"scientific":  pressMode(ModeScientific),
	"programming": pressMode(ModeProgramming),
	"deg":         pressAngle(AngleDegrees),
	"rad":         pressAngle(AngleRadians),
	"grad":        pressAngle(AngleGradians),
	"bin":         pressBase(Base2),
	"oct":         pressBase(Base8),
	"dec":         pressBase(Base10),
	"hex":         pressBase(Base16),
}

func pressOp(o Operator) func(*Engine) error {
	return func(e *Engine) error { return e.ApplyOperator(o) }
}

func pressFn(f Function) func(*Engine) error {
	return func(e *Engine) error { return e.ApplyFunction(f) }
}

func pressMem(m MemoryOp) func(*Engine) error {
	return func(e *Engine) error { return e.Memory(m) }
}

func pressMode(m Mode) func(*Engine) error {
	return func(e *Engine) error { return e.SwitchMode(m) }
}

func pressAngle(a AngleMode) func(*Engine) error {
	return func(e *Engine) error { return e.SetAngleMode(a) }
}

func pressBase(b Base) func(*Engine) error {
	return func(e *Engine) error { return e.ChangeBase(b) }
}

// Press performs the operation bound to key.
//
// A key is either a name from the key map ("+", "Enter", "sin", "m+",
// "hex", ...) or a numeral made of digits and decimal points, which is
// entered one character at a time. Unknown keys are reported and ignored.
func (e *Engine) Press(key string) error {
	if action, ok := keyActions[strings.ToLower(key)]; ok {
		return action(e)
	}
	if !isNumeral(key) {
		return e.fail(newUnknownKeyError(key))
	}

	for _, r := range key {
		var err error
		if r == '.' {
			err = e.InputDecimalPoint()
		} else {
			err = e.InputDigit(r)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// PressAll presses every whitespace-separated key in input, in order.
// It keeps going after a failed key, like a keypad would, and returns the
// failures joined.
func (e *Engine) PressAll(input string) error {
	var errs []error
	for _, key := range strings.Fields(input) {
		if err := e.Press(key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func isNumeral(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if r != '.' && digitValue(r) < 0 {
			return false
		}
	}
	return true
}
