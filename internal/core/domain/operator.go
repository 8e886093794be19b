package domain

import (
	"fmt"
	"math"
)

// Operator is a pending binary operation.
// The zero value OperatorNone means no operator is pending.
type Operator int

// Available operators.
const (
	// OperatorNone means no binary operation is pending.
	OperatorNone Operator = iota
	// OperatorAdd is a + b.
	OperatorAdd
	// OperatorSubtract is a - b.
	OperatorSubtract
	// OperatorMultiply is a * b.
	OperatorMultiply
	// OperatorDivide is a / b.
	OperatorDivide
	// OperatorPower is a raised to b.
	OperatorPower
)

// Operators lists every real operator in keypad order.
func Operators() []Operator {
	return []Operator{OperatorAdd, OperatorSubtract, OperatorMultiply, OperatorDivide, OperatorPower}
}

// ParseOperator converts an operator token (add, subtract, multiply, divide, pow).
func ParseOperator(token string) (Operator, error) {
	switch token {
	case "add":
		return OperatorAdd, nil
	case "subtract":
		return OperatorSubtract, nil
	case "multiply":
		return OperatorMultiply, nil
	case "divide":
		return OperatorDivide, nil
	case "pow":
		return OperatorPower, nil
	default:
		return OperatorNone, fmt.Errorf("%w: %q", ErrUnknownOperator, token)
	}
}

// IsValid returns true for the five real operators.
func (o Operator) IsValid() bool {
	switch o {
	case OperatorAdd, OperatorSubtract, OperatorMultiply, OperatorDivide, OperatorPower:
		return true
	case OperatorNone:
		return false
	}
	return false
}

// String returns the operator token.
func (o Operator) String() string {
	switch o {
	case OperatorAdd:
		return "add"
	case OperatorSubtract:
		return "subtract"
	case OperatorMultiply:
		return "multiply"
	case OperatorDivide:
		return "divide"
	case OperatorPower:
		return "pow"
	case OperatorNone:
		return "none"
	}
	return "unknown"
}

// Symbol returns the key a user types for the operator.
func (o Operator) Symbol() string {
	switch o {
	case OperatorAdd:
		return "+"
	case OperatorSubtract:
		return "-"
	case OperatorMultiply:
		return "*"
	case OperatorDivide:
		return "/"
	case OperatorPower:
		return "^"
	case OperatorNone:
		return ""
	}
	return ""
}

// Apply evaluates a <op> b with IEEE 754 semantics.
// Division by zero is reported as ErrDivideByZero instead of an infinity.
func (o Operator) Apply(a, b float64) (float64, error) {
	switch o {
	case OperatorAdd:
		return a + b, nil
	case OperatorSubtract:
		return a - b, nil
	case OperatorMultiply:
		return a * b, nil
	case OperatorDivide:
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	case OperatorPower:
		return math.Pow(a, b), nil
	case OperatorNone:
		return 0, ErrUnknownOperator
	}
	return 0, ErrUnknownOperator
}
