package engine

import (
	"fmt"
	"strings"
)

// Mode selects which operations are available.
type Mode int

const (
	ModeStandard Mode = iota
	ModeScientific
	ModeProgramming
)

var modeNames = map[Mode]string{
	ModeStandard:    "standard",
	ModeScientific:  "scientific",
	ModeProgramming: "programming",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// ParseMode parses a mode name, ignoring case.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// AngleMode controls how trigonometric functions interpret their input.
type AngleMode int

const (
	AngleDegrees AngleMode = iota
	AngleRadians
	AngleGradians
)

func (a AngleMode) String() string {
	switch a {
	case AngleDegrees:
		return "DEG"
	case AngleRadians:
		return "RAD"
	case AngleGradians:
		return "GRAD"
	}
	return fmt.Sprintf("AngleMode(%d)", int(a))
}

// Valid reports whether a is a known angle mode.
func (a AngleMode) Valid() bool {
	return a >= AngleDegrees && a <= AngleGradians
}

// ParseAngleMode accepts "deg", "rad", "grad" and their long forms.
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(s) {
	case "deg", "degree", "degrees":
		return AngleDegrees, nil
	case "rad", "radian", "radians":
		return AngleRadians, nil
	case "grad", "gradian", "gradians":
		return AngleGradians, nil
	}
	return 0, fmt.Errorf("unknown angle mode %q", s)
}

// Base is a numeric base supported in Programming mode.
type Base int

const (
	Base2  Base = 2
	Base8  Base = 8
	Base10 Base = 10
	Base16 Base = 16
)

// Bases lists the supported bases in display order.
var Bases = []Base{Base10, Base16, Base8, Base2}

// Valid reports whether b is one of 2, 8, 10 or 16.
func (b Base) Valid() bool {
	switch b {
	case Base2, Base8, Base10, Base16:
		return true
	}
	return false
}

// Label returns the short display label (BIN, OCT, DEC, HEX).
func (b Base) Label() string {
	switch b {
	case Base2:
		return "BIN"
	case Base8:
		return "OCT"
	case Base10:
		return "DEC"
	case Base16:
		return "HEX"
	}
	return fmt.Sprintf("BASE%d", int(b))
}

// ParseBase accepts "2", "8", "10", "16" or a label such as "hex".
func ParseBase(s string) (Base, error) {
	switch strings.ToLower(s) {
	case "2", "bin":
		return Base2, nil
	case "8", "oct":
		return Base8, nil
	case "10", "dec":
		return Base10, nil
	case "16", "hex":
		return Base16, nil
	}
	return 0, fmt.Errorf("unknown base %q", s)
}

// Operator is a binary operator. OpNone marks the absence of a pending operator.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpAnd
	OpOr
	OpXor
	OpShiftLeft
	OpShiftRight
)

var operatorInfo = map[Operator]struct {
	name   string
	symbol string
}{
	OpAdd:        {"add", "+"},
	OpSubtract:   {"subtract", "−"},
	OpMultiply:   {"multiply", "×"},
	OpDivide:     {"divide", "÷"},
	OpAnd:        {"and", "AND"},
	OpOr:         {"or", "OR"},
	OpXor:        {"xor", "XOR"},
	OpShiftLeft:  {"lshift", "<<"},
	OpShiftRight: {"rshift", ">>"},
}

func (op Operator) String() string {
	if info, ok := operatorInfo[op]; ok {
		return info.name
	}
	if op == OpNone {
		return "none"
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// Symbol returns the symbol shown in expressions and the secondary display.
func (op Operator) Symbol() string {
	if info, ok := operatorInfo[op]; ok {
		return info.symbol
	}
	return op.String()
}

// Valid reports whether op is a real operator (not OpNone).
func (op Operator) Valid() bool {
	_, ok := operatorInfo[op]
	return ok
}

// Bitwise reports whether op is only available in Programming mode.
func (op Operator) Bitwise() bool {
	return op >= OpAnd && op <= OpShiftRight
}

// Function is a unary function applied to the current value.
type Function int

const (
	FnSin Function = iota
	FnCos
	FnTan
	FnAsin
	FnAcos
	FnAtan
	FnLog10
	FnLn
	FnSquare
	FnCube
	FnSqrt
	FnFactorial
	FnBitwiseNot
	FnPercent
	FnPi
	FnE
)

var functionNames = map[Function]string{
	FnSin:        "sin",
	FnCos:        "cos",
	FnTan:        "tan",
	FnAsin:       "asin",
	FnAcos:       "acos",
	FnAtan:       "atan",
	FnLog10:      "log",
	FnLn:         "ln",
	FnSquare:     "square",
	FnCube:       "cube",
	FnSqrt:       "sqrt",
	FnFactorial:  "factorial",
	FnBitwiseNot: "not",
	FnPercent:    "percent",
	FnPi:         "pi",
	FnE:          "e",
}

func (fn Function) String() string {
	if name, ok := functionNames[fn]; ok {
		return name
	}
	return fmt.Sprintf("Function(%d)", int(fn))
}

// Valid reports whether fn is a known function.
func (fn Function) Valid() bool {
	_, ok := functionNames[fn]
	return ok
}

// AllowedIn reports whether fn may be applied in mode m.
//
// Standard mode offers percent, square and square root; Scientific mode
// offers every function except bitwise NOT, which is Programming-only.
func (fn Function) AllowedIn(m Mode) bool {
	switch m {
	case ModeStandard:
		return fn == FnPercent || fn == FnSquare || fn == FnSqrt
	case ModeScientific:
		return fn.Valid() && fn != FnBitwiseNot
	case ModeProgramming:
		return fn == FnBitwiseNot
	}
	return false
}

// MemoryOp is an operation on the memory register.
type MemoryOp int

const (
	MemClear MemoryOp = iota
	MemRecall
	MemStore
	MemAdd
	MemSubtract
)

func (op MemoryOp) String() string {
	switch op {
	case MemClear:
		return "MC"
	case MemRecall:
		return "MR"
	case MemStore:
		return "MS"
	case MemAdd:
		return "M+"
	case MemSubtract:
		return "M-"
	}
	return fmt.Sprintf("MemoryOp(%d)", int(op))
}

// Phase is the state machine position of the engine.
type Phase int

const (
	PhaseReady Phase = iota
	PhaseOperatorPending
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseOperatorPending:
		return "operator_pending"
	case PhaseError:
		return "error"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}
