package driving

import (
	"github.com/custodia-labs/keycalc/internal/core/domain"
	"github.com/custodia-labs/keycalc/internal/core/ports/driven"
)

// Calculator is the input/state/compute engine behind one calculator display.
// Every method runs to completion and never fails; invalid input is a no-op.
// A Calculator is not safe for concurrent use.
type Calculator interface {
	// InputDigit enters a digit "0".."9" into the input buffer.
	InputDigit(d string)

	// InputDecimal enters a decimal point.
	InputDecimal()

	// InputOperator selects the pending binary operator, computing any
	// operation already pending first.
	InputOperator(op domain.Operator)

	// Compute evaluates the pending operation.
	Compute()

	// Clear returns the calculator to its empty state.
	Clear()

	// Backspace removes the last input character.
	Backspace()

	// Sqrt replaces the input with its square root.
	Sqrt()

	// Pow raises the pending operand to the input.
	Pow()

	// Percent divides the input by 100.
	Percent()

	// Dispatch applies a single action.
	Dispatch(action domain.Action)

	// Display returns the last value emitted on the display channel.
	Display() string

	// State returns a snapshot of the engine state.
	State() domain.State

	// Subscribe registers a sink for display updates.
	// The returned func removes the subscription.
	Subscribe(sink driven.DisplaySink) func()
}
