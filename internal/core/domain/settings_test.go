package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, 12, s.Engine.MaxInputLength)
	assert.True(t, s.TUI.ShowKeypad)
	assert.False(t, s.TUI.ShowState)
	assert.False(t, s.Log.Verbose)
	assert.NoError(t, s.Validate())
}

func TestAppSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{"minimum", MinInputLength, false},
		{"maximum", MaxInputLength, false},
		{"zero", 0, true},
		{"too long", MaxInputLength + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultAppSettings()
			s.Engine.MaxInputLength = tt.length

			err := s.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSetting)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
