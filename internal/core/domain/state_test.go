package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Phase(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Phase
	}{
		{"empty", State{}, PhaseEmpty},
		{"entering", State{Current: "12", Display: "12"}, PhaseEntering},
		{"pending", State{Operator: OperatorAdd, Operand: "3", HasOperand: true}, PhasePending},
		{"pending with input", State{Current: "4", Operator: OperatorAdd, Operand: "3", HasOperand: true}, PhasePending},
		{"error", State{Display: ErrorDisplay}, PhaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Phase())
		})
	}
}

func TestState_OperatorToken(t *testing.T) {
	assert.Empty(t, State{}.OperatorToken())
	assert.Equal(t, "divide", State{Operator: OperatorDivide}.OperatorToken())
}
