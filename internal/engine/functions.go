package engine

import (
	"fmt"
	"math"
)

// maxFactorial is the largest n whose factorial fits in a float64.
const maxFactorial = 170

// ApplyFunction applies fn to the current value in place.
//
// Domain errors (negative square root, logarithm of a non-positive number,
// factorial of a negative, fractional or too large number, non-finite
// results) move the engine to the Error phase and return a domain error.
func (e *Engine) ApplyFunction(fn Function) error {
	if !fn.Valid() {
		return e.fail(&CalcError{Code: ErrCodeUnsupported, Message: fmt.Sprintf("unknown function %d", int(fn))})
	}
	if !fn.AllowedIn(e.mode) {
		return e.fail(newUnsupportedError(fn.String(), e.mode))
	}
	if e.errored {
		return e.fail(newErrorPendingError())
	}

	x, err := e.currentValue()
	if err != nil {
		return e.enterError(err)
	}

	result, err := e.evalFunction(fn, x)
	if err != nil {
		return e.enterError(err)
	}
	text, err := e.render(result)
	if err != nil {
		return e.enterError(err)
	}

	e.current = text
	e.waiting = true
	e.supplied = true
	e.logger.Debug("function", "fn", fn.String(), "input", x, "result", text)
	return nil
}

func (e *Engine) evalFunction(fn Function, x float64) (float64, error) {
	var r float64
	switch fn {
	case FnSin:
		r = math.Sin(e.toRadians(x))
	case FnCos:
		r = math.Cos(e.toRadians(x))
	case FnTan:
		r = math.Tan(e.toRadians(x))
	case FnAsin:
		r = e.fromRadians(math.Asin(x))
	case FnAcos:
		r = e.fromRadians(math.Acos(x))
	case FnAtan:
		r = e.fromRadians(math.Atan(x))
	case FnLog10:
		if x <= 0 {
			return 0, newDomainError(DomainNonPositiveLog)
		}
		r = math.Log10(x)
	case FnLn:
		if x <= 0 {
			return 0, newDomainError(DomainNonPositiveLog)
		}
		r = math.Log(x)
	case FnSquare:
		r = x * x
	case FnCube:
		r = x * x * x
	case FnSqrt:
		if x < 0 {
			return 0, newDomainError(DomainNegativeSqrt)
		}
		r = math.Sqrt(x)
	case FnFactorial:
		f, err := factorial(x)
		if err != nil {
			return 0, err
		}
		r = f
	case FnBitwiseNot:
		v, ok := toInteger(x)
		if !ok {
			return 0, newDomainError(DomainInvalidResult)
		}
		r = float64(^int32(v))
	case FnPercent:
		r = x / 100
	case FnPi:
		r = math.Pi
	case FnE:
		r = math.E
	}

	if !isFinite(r) {
		return 0, newDomainError(DomainInvalidResult)
	}
	return r, nil
}

func factorial(x float64) (float64, error) {
	if x < 0 || x != math.Trunc(x) {
		return 0, newDomainError(DomainFactorialArgument)
	}
	if x > maxFactorial {
		return 0, newDomainError(DomainFactorialOverflow)
	}
	r := 1.0
	for i := 2.0; i <= x; i++ {
		r *= i
	}
	return r, nil
}

func (e *Engine) toRadians(x float64) float64 {
	switch e.angle {
	case AngleRadians:
		return x
	case AngleGradians:
		return x * math.Pi / 200
	}
	return x * math.Pi / 180
}

func (e *Engine) fromRadians(x float64) float64 {
	switch e.angle {
	case AngleRadians:
		return x
	case AngleGradians:
		return x * 200 / math.Pi
	}
	return x * 180 / math.Pi
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
