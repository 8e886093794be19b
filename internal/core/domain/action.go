package domain

import "fmt"

// ActionKind identifies one of the engine operations a user can trigger.
type ActionKind int

// Available action kinds.
const (
	// ActionDigit enters a single digit.
	ActionDigit ActionKind = iota + 1
	// ActionDecimal enters a decimal point.
	ActionDecimal
	// ActionOperator selects a pending binary operator.
	ActionOperator
	// ActionCompute evaluates the pending operation.
	ActionCompute
	// ActionClear returns the calculator to its empty state.
	ActionClear
	// ActionBackspace removes the last input character.
	ActionBackspace
	// ActionSqrt replaces the input with its square root.
	ActionSqrt
	// ActionPercent divides the input by 100.
	ActionPercent
	// ActionPow raises the pending operand to the input without going through Compute.
	ActionPow
)

// String returns the string representation of the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionDigit:
		return "digit"
	case ActionDecimal:
		return "decimal"
	case ActionOperator:
		return "operator"
	case ActionCompute:
		return "compute"
	case ActionClear:
		return "clear"
	case ActionBackspace:
		return "backspace"
	case ActionSqrt:
		return "sqrt"
	case ActionPercent:
		return "percent"
	case ActionPow:
		return "pow"
	}
	return "unknown"
}

// Action is one logical user action. Digit is set only for ActionDigit and
// Operator only for ActionOperator.
type Action struct {
	Kind     ActionKind
	Digit    string
	Operator Operator
}

// DigitAction returns the action for entering d.
func DigitAction(d string) (Action, error) {
	if !IsDigit(d) {
		return Action{}, fmt.Errorf("%w: %q", ErrInvalidDigit, d)
	}
	return Action{Kind: ActionDigit, Digit: d}, nil
}

// OperatorAction returns the action for selecting op.
func OperatorAction(op Operator) (Action, error) {
	if !op.IsValid() {
		return Action{}, fmt.Errorf("%w: %d", ErrUnknownOperator, int(op))
	}
	return Action{Kind: ActionOperator, Operator: op}, nil
}

// Simple returns an action that carries no parameter.
func Simple(kind ActionKind) Action {
	return Action{Kind: kind}
}

// String renders the action for logs, e.g. "digit(7)" or "operator(add)".
func (a Action) String() string {
	switch a.Kind {
	case ActionDigit:
		return fmt.Sprintf("digit(%s)", a.Digit)
	case ActionOperator:
		return fmt.Sprintf("operator(%s)", a.Operator)
	case ActionDecimal, ActionCompute, ActionClear, ActionBackspace,
		ActionSqrt, ActionPercent, ActionPow:
		return a.Kind.String()
	}
	return "unknown"
}

// Validate checks the action carries the parameter its kind needs.
func (a Action) Validate() error {
	switch a.Kind {
	case ActionDigit:
		if !IsDigit(a.Digit) {
			return fmt.Errorf("%w: %q", ErrInvalidDigit, a.Digit)
		}
	case ActionOperator:
		if !a.Operator.IsValid() {
			return fmt.Errorf("%w: %d", ErrUnknownOperator, int(a.Operator))
		}
	case ActionDecimal, ActionCompute, ActionClear, ActionBackspace,
		ActionSqrt, ActionPercent, ActionPow:
	default:
		return fmt.Errorf("%w: kind %d", ErrUnknownAction, int(a.Kind))
	}
	return nil
}

// IsDigit reports whether d is exactly one character in "0".."9".
func IsDigit(d string) bool {
	return len(d) == 1 && d[0] >= '0' && d[0] <= '9'
}
