// Package engine implements the calculator state machine.
//
// An Engine owns a single calculator state: the value being entered, a
// pending operator with its left operand, the memory register, the angle
// mode, the numeric base and the bounded history log. Callers drive it with
// discrete operations (InputDigit, ApplyOperator, Evaluate, ...) and read
// the result back through Display.
//
// ARCHITECTURE:
//
// Single-Threaded, Run-To-Completion:
// Every operation runs synchronously and never suspends. An Engine is not
// safe for concurrent use; the caller serialises input events.
//
// Three Phases:
//   - Ready: no operator pending
//   - OperatorPending: an operator and its left operand are stored
//   - Error: a calculation failed; only digit entry or a clear leaves it
//
// Numbers:
// Operands are kept decimal-normalised as float64. In Programming mode the
// entry is a numeral in the active base; ParseInBase and RenderInBase are
// the only places numerals are converted. Every Programming-mode value is a
// 32-bit two's-complement word: entry stops at the word width, arithmetic
// and bitwise results wrap, and the binary rendering of negatives is the
// same word, so a value has exactly one numeral per base.
//
// Errors:
// Calculation and input errors are returned as *CalcError and reported to
// the Notifier. Calculation errors also move the engine to the Error phase.
// History persistence failures are reported as warnings only; they never
// touch the calculation state.
package engine
