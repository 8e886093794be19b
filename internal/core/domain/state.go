package domain

// ErrorDisplay is the sentinel shown after a division by zero.
const ErrorDisplay = "Error"

// DefaultMaxInputLength is the digit-entry limit for the input buffer.
const DefaultMaxInputLength = 12

// Phase is the implicit state of the calculator state machine.
type Phase string

// Calculator phases.
const (
	PhaseEmpty    Phase = "empty"
	PhaseEntering Phase = "entering"
	PhasePending  Phase = "pending"
	PhaseError    Phase = "error"
)

// State is a snapshot of a calculator engine.
// Current and Operand are kept as the text the user typed; they are only
// parsed when an operation runs.
type State struct {
	// Current is the in-progress input buffer. Empty means no input yet.
	Current string `json:"current"`

	// Operator is the pending binary operation, OperatorNone if none.
	Operator Operator `json:"-"`

	// Operand is the left-hand value captured when the operator was chosen.
	Operand string `json:"operand"`

	// HasOperand distinguishes a captured empty operand from no operand.
	HasOperand bool `json:"has_operand"`

	// Display is the last value emitted on the display channel.
	Display string `json:"display"`
}

// Phase derives the state machine phase from the snapshot.
func (s State) Phase() Phase {
	switch {
	case s.Current == "" && !s.HasOperand && s.Display == ErrorDisplay:
		return PhaseError
	case s.Operator != OperatorNone:
		return PhasePending
	case s.Current != "":
		return PhaseEntering
	default:
		return PhaseEmpty
	}
}

// OperatorToken returns the pending operator token, or "" when none is pending.
func (s State) OperatorToken() string {
	if s.Operator == OperatorNone {
		return ""
	}
	return s.Operator.String()
}
