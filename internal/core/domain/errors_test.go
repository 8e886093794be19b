package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrDivideByZero", ErrDivideByZero},
		{"ErrInvalidDigit", ErrInvalidDigit},
		{"ErrUnknownOperator", ErrUnknownOperator},
		{"ErrUnknownAction", ErrUnknownAction},
		{"ErrInvalidSetting", ErrInvalidSetting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_AreDistinct(t *testing.T) {
	errs := []error{ErrDivideByZero, ErrInvalidDigit, ErrUnknownOperator, ErrUnknownAction, ErrInvalidSetting}

	for i := range errs {
		for j := range errs {
			if i != j {
				assert.False(t, errors.Is(errs[i], errs[j]))
			}
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("parsing %q: %w", "x", ErrInvalidDigit)

	assert.ErrorIs(t, wrapped, ErrInvalidDigit)
}
