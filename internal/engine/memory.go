package engine

import "fmt"

// Memory applies op to the memory register using the decimal-normalised
// current value. Recall replaces the entry and waits for a new operand.
// Memory survives ClearAll.
func (e *Engine) Memory(op MemoryOp) error {
	if op == MemClear {
		e.memory = 0
		e.notify(SeverityInfo, "Memory cleared")
		return nil
	}
	if op < MemClear || op > MemSubtract {
		return e.fail(&CalcError{Code: ErrCodeUnsupported, Message: fmt.Sprintf("unknown memory operation %d", int(op))})
	}
	if e.errored {
		return e.fail(newErrorPendingError())
	}

	if op == MemRecall {
		text, err := e.render(e.memory)
		if err != nil {
			return e.enterError(err)
		}
		e.current = text
		e.waiting = true
		e.supplied = true
		e.notify(SeverityInfo, "Memory recalled")
		return nil
	}

	value, err := e.currentValue()
	if err != nil {
		return e.enterError(err)
	}

	switch op {
	case MemStore:
		e.memory = value
		e.notify(SeveritySuccess, "Value stored in memory")
	case MemAdd:
		e.memory += value
		e.notify(SeveritySuccess, "Value added to memory")
	case MemSubtract:
		e.memory -= value
		e.notify(SeveritySuccess, "Value subtracted from memory")
	}
	e.logger.Debug("memory", "op", op.String(), "memory", e.memory)
	return nil
}
