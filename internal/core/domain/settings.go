package domain

import "fmt"

// Limits for the configurable input length.
const (
	MinInputLength = 1
	MaxInputLength = 64
)

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Engine EngineSettings `json:"engine"`
	TUI    TUISettings    `json:"tui"`
	Log    LogSettings    `json:"log"`
}

// EngineSettings configures the calculator engine.
type EngineSettings struct {
	// MaxInputLength caps digit entry into the input buffer.
	MaxInputLength int `json:"max_input_length"`
}

// TUISettings configures the terminal front end.
type TUISettings struct {
	// ShowKeypad renders the clickable keypad under the display.
	ShowKeypad bool `json:"show_keypad"`

	// ShowState renders the pending operand and operator above the display.
	ShowState bool `json:"show_state"`
}

// LogSettings configures diagnostic output.
type LogSettings struct {
	Verbose bool `json:"verbose"`
}

// DefaultAppSettings returns sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Engine: EngineSettings{MaxInputLength: DefaultMaxInputLength},
		TUI:    TUISettings{ShowKeypad: true},
	}
}

// Validate checks the settings are usable.
func (s *AppSettings) Validate() error {
	if s.Engine.MaxInputLength < MinInputLength || s.Engine.MaxInputLength > MaxInputLength {
		return fmt.Errorf("%w: engine.max_input_length must be between %d and %d, got %d",
			ErrInvalidSetting, MinInputLength, MaxInputLength, s.Engine.MaxInputLength)
	}
	return nil
}
