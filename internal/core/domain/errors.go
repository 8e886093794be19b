package domain

import "errors"

// Domain errors represent calculator input and arithmetic failures.
// The engine itself never returns them to callers; they are used by the
// adapters when translating raw input and for diagnostics.
var (
	// ErrDivideByZero is the only arithmetic failure the engine models.
	// It is surfaced to the user as the ErrorDisplay sentinel.
	ErrDivideByZero = errors.New("division by zero")

	// ErrInvalidDigit indicates a digit outside "0".."9".
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrUnknownOperator indicates an operator token outside the fixed set.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrUnknownAction indicates an action kind or button token that is not recognised.
	ErrUnknownAction = errors.New("unknown action")

	// ErrInvalidSetting indicates a configuration value out of range.
	ErrInvalidSetting = errors.New("invalid setting")
)
