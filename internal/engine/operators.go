package engine

import (
	"fmt"

	"github.com/roach88/calc/internal/history"
)

// ApplyOperator stores op as the pending operator.
//
// With no operator pending the current value becomes the left operand.
// With an operator pending and a new operand entered, the pending operation
// is folded first and its result displayed, so "5 + 3 + 2 =" evaluates
// left to right. If no operand was entered since the last operator, op
// simply replaces the pending one.
func (e *Engine) ApplyOperator(op Operator) error {
	if !op.Valid() {
		return e.fail(&CalcError{Code: ErrCodeUnsupported, Message: fmt.Sprintf("unknown operator %d", int(op))})
	}
	if op.Bitwise() && e.mode != ModeProgramming {
		return e.fail(newUnsupportedError(op.Symbol(), e.mode))
	}
	if e.errored {
		return e.fail(newErrorPendingError())
	}

	value, err := e.currentValue()
	if err != nil {
		return e.enterError(err)
	}

	switch {
	case e.pending == OpNone:
		e.previous = value
	case e.operandEntered():
		result, err := e.compute(e.pending, e.previous, value)
		if err != nil {
			return e.enterError(err)
		}
		text, err := e.render(result)
		if err != nil {
			return e.enterError(err)
		}
		e.current = text
		e.previous = result
	}

	e.pending = op
	e.waiting = true
	e.supplied = false
	e.logger.Debug("operator", "op", op.String(), "previous", e.previous)
	return nil
}

// Evaluate completes the pending operation and records it in history.
// It is a no-op when no operator is pending or no operand has been entered.
func (e *Engine) Evaluate() error {
	if e.errored {
		return e.fail(newErrorPendingError())
	}
	if e.pending == OpNone || !e.operandEntered() {
		return nil
	}

	value, err := e.currentValue()
	if err != nil {
		return e.enterError(err)
	}
	result, err := e.compute(e.pending, e.previous, value)
	if err != nil {
		return e.enterError(err)
	}
	text, err := e.render(result)
	if err != nil {
		return e.enterError(err)
	}

	expression := fmt.Sprintf("%s %s %s", e.renderOperand(e.previous), e.pending.Symbol(), e.current)

	e.current = text
	e.previous = 0
	e.pending = OpNone
	e.waiting = true
	e.supplied = false

	e.history.Add(history.Record{
		ID:         e.ids.Generate(),
		Expression: expression,
		Result:     text,
		Timestamp:  e.now(),
		Mode:       e.mode.String(),
		Base:       int(e.displayBase()),
	})
	e.persist()

	e.logger.Debug("evaluated", "expression", expression, "result", text)
	e.notify(SeveritySuccess, expression+" = "+text)
	return nil
}

// renderOperand renders a stored operand the way it was displayed.
func (e *Engine) renderOperand(x float64) string {
	if text, err := e.render(x); err == nil {
		return text
	}
	return FormatNumber(x)
}

// compute applies op to a and b. Programming mode and bitwise operators
// use integer arithmetic; everything else uses float64.
func (e *Engine) compute(op Operator, a, b float64) (float64, error) {
	if e.mode == ModeProgramming || op.Bitwise() {
		return computeInteger(op, a, b)
	}
	return computeDecimal(op, a, b)
}

func computeDecimal(op Operator, a, b float64) (float64, error) {
	var r float64
	switch op {
	case OpAdd:
		r = a + b
	case OpSubtract:
		r = a - b
	case OpMultiply:
		r = a * b
	case OpDivide:
		if b == 0 {
			return 0, newDivisionByZeroError()
		}
		r = a / b
	default:
		return 0, &CalcError{Code: ErrCodeUnsupported, Message: fmt.Sprintf("%s is not a decimal operator", op)}
	}
	if !isFinite(r) {
		return 0, newDomainError(DomainInvalidResult)
	}
	return r, nil
}

// computeInteger implements Programming-mode arithmetic on 32-bit
// two's-complement words. Operands are wrapped to a word, results wrap on
// overflow and divide floors toward negative infinity. Shift counts are
// taken modulo 32.
func computeInteger(op Operator, a, b float64) (float64, error) {
	x, okX := toInteger(a)
	y, okY := toInteger(b)
	if !okX || !okY {
		return 0, newDomainError(DomainInvalidResult)
	}
	x, y = WrapWord(x), WrapWord(y)

	var r int64
	switch op {
	case OpAdd:
		r = x + y
	case OpSubtract:
		r = x - y
	case OpMultiply:
		r = x * y
	case OpDivide:
		if y == 0 {
			return 0, newDivisionByZeroError()
		}
		r = floorDiv(x, y)
	case OpAnd:
		r = x & y
	case OpOr:
		r = x | y
	case OpXor:
		r = x ^ y
	case OpShiftLeft:
		r = x << (uint32(y) % WordBits)
	case OpShiftRight:
		r = x >> (uint32(y) % WordBits)
	default:
		return 0, &CalcError{Code: ErrCodeUnsupported, Message: fmt.Sprintf("unknown operator %d", int(op))}
	}
	return float64(WrapWord(r)), nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
