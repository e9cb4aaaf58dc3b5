package engine

import (
	"errors"
	"fmt"
)

// CalcError is an error reported by an engine operation.
//
// Calculation errors (division by zero, domain errors, base conversion)
// move the engine into the Error phase. Input errors (invalid digit,
// unsupported operation, unknown key) leave the state unchanged. Storage
// errors are only ever delivered as warnings through the Notifier.
type CalcError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is the human-readable text shown on the secondary display.
	Message string

	// Domain refines ErrCodeDomain errors.
	Domain DomainKind

	// Details contains additional context.
	Details map[string]string

	// Err is the underlying cause, if any.
	Err error
}

// ErrorCode categorizes engine errors.
type ErrorCode string

const (
	// ErrCodeInvalidDigit indicates a digit that is not valid in the current base.
	ErrCodeInvalidDigit ErrorCode = "INVALID_DIGIT_FOR_BASE"

	// ErrCodeDivisionByZero indicates a divide with a zero right operand.
	ErrCodeDivisionByZero ErrorCode = "DIVISION_BY_ZERO"

	// ErrCodeDomain indicates a function applied outside its domain.
	ErrCodeDomain ErrorCode = "DOMAIN_ERROR"

	// ErrCodeBaseConversion indicates the current value is not a numeral in the current base.
	ErrCodeBaseConversion ErrorCode = "BASE_CONVERSION_ERROR"

	// ErrCodeStorage indicates history persistence failed.
	ErrCodeStorage ErrorCode = "STORAGE_ERROR"

	// ErrCodeUnsupported indicates an operation not available in the current mode.
	ErrCodeUnsupported ErrorCode = "UNSUPPORTED_IN_MODE"

	// ErrCodeInvalidBase indicates a base other than 2, 8, 10 or 16.
	ErrCodeInvalidBase ErrorCode = "INVALID_BASE"

	// ErrCodeErrorPending indicates an operation refused while the error flag is set.
	ErrCodeErrorPending ErrorCode = "ERROR_PENDING"

	// ErrCodeUnknownKey indicates a keystroke with no mapping.
	ErrCodeUnknownKey ErrorCode = "UNKNOWN_KEY"

	// ErrCodeHistoryNotFound indicates a history ID that is not in the log.
	ErrCodeHistoryNotFound ErrorCode = "HISTORY_NOT_FOUND"
)

// DomainKind refines a domain error.
type DomainKind string

const (
	DomainNegativeSqrt      DomainKind = "NEGATIVE_SQRT"
	DomainNonPositiveLog    DomainKind = "NON_POSITIVE_LOG"
	DomainFactorialArgument DomainKind = "NEGATIVE_OR_NON_INTEGER_FACTORIAL"
	DomainFactorialOverflow DomainKind = "FACTORIAL_OVERFLOW"
	DomainInvalidResult     DomainKind = "INVALID_RESULT"
)

// Error implements the error interface.
func (e *CalcError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Domain != "" {
		msg = fmt.Sprintf("%s(%s): %s", e.Code, e.Domain, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *CalcError) Unwrap() error {
	return e.Err
}

// Severity returns the notification severity for the error.
func (e *CalcError) Severity() Severity {
	switch e.Code {
	case ErrCodeInvalidDigit, ErrCodeDivisionByZero, ErrCodeDomain, ErrCodeBaseConversion:
		return SeverityError
	}
	return SeverityWarning
}

// setsErrorFlag reports whether the error moves the engine to the Error phase.
func (e *CalcError) setsErrorFlag() bool {
	switch e.Code {
	case ErrCodeDivisionByZero, ErrCodeDomain, ErrCodeBaseConversion:
		return true
	}
	return false
}

// CodeOf returns the ErrorCode of err, or "" if err is not a CalcError.
// Uses errors.As to handle wrapped errors.
func CodeOf(err error) ErrorCode {
	var ce *CalcError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// IsDivisionByZero returns true if err is a division by zero.
func IsDivisionByZero(err error) bool {
	return CodeOf(err) == ErrCodeDivisionByZero
}

// IsDomainError returns true if err is a domain error of the given kind.
// With no kinds, any domain error matches.
func IsDomainError(err error, kinds ...DomainKind) bool {
	var ce *CalcError
	if !errors.As(err, &ce) || ce.Code != ErrCodeDomain {
		return false
	}
	if len(kinds) == 0 {
		return true
	}
	for _, k := range kinds {
		if ce.Domain == k {
			return true
		}
	}
	return false
}

// IsStorageError returns true if err is a history persistence failure.
func IsStorageError(err error) bool {
	return CodeOf(err) == ErrCodeStorage
}

func newInvalidDigitError(d rune, base Base) *CalcError {
	return &CalcError{
		Code:    ErrCodeInvalidDigit,
		Message: fmt.Sprintf("%c is not valid in base %d", d, int(base)),
		Details: map[string]string{"digit": string(d), "base": fmt.Sprintf("%d", int(base))},
	}
}

func newDivisionByZeroError() *CalcError {
	return &CalcError{Code: ErrCodeDivisionByZero, Message: "Cannot divide by zero"}
}

var domainMessages = map[DomainKind]string{
	DomainNegativeSqrt:      "Cannot take square root of negative number",
	DomainNonPositiveLog:    "Invalid input for logarithm",
	DomainFactorialArgument: "Factorial is only defined for non-negative integers",
	DomainFactorialOverflow: "Number too large for factorial",
	DomainInvalidResult:     "Invalid result",
}

func newDomainError(kind DomainKind) *CalcError {
	return &CalcError{Code: ErrCodeDomain, Domain: kind, Message: domainMessages[kind]}
}

func newBaseConversionError(value string, base Base, cause error) *CalcError {
	return &CalcError{
		Code:    ErrCodeBaseConversion,
		Message: "Invalid number for base conversion",
		Details: map[string]string{"value": value, "base": fmt.Sprintf("%d", int(base))},
		Err:     cause,
	}
}

func newStorageError(cause error) *CalcError {
	return &CalcError{Code: ErrCodeStorage, Message: "Failed to save history", Err: cause}
}

func newUnsupportedError(what string, m Mode) *CalcError {
	return &CalcError{
		Code:    ErrCodeUnsupported,
		Message: fmt.Sprintf("%s not available in %s mode", what, m),
	}
}

func newInvalidBaseError(b Base) *CalcError {
	return &CalcError{Code: ErrCodeInvalidBase, Message: fmt.Sprintf("unsupported base %d", int(b))}
}

func newErrorPendingError() *CalcError {
	return &CalcError{Code: ErrCodeErrorPending, Message: "Clear the error before continuing"}
}

func newUnknownKeyError(key string) *CalcError {
	return &CalcError{Code: ErrCodeUnknownKey, Message: fmt.Sprintf("unknown key %q", key)}
}

func newHistoryNotFoundError(id string) *CalcError {
	return &CalcError{Code: ErrCodeHistoryNotFound, Message: fmt.Sprintf("history entry %q not found", id)}
}
