// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

// ButtonPressed is sent when a keypad button is activated by the
// keyboard or the mouse.
type ButtonPressed struct {
	Token string
	Label string
}

// ErrorOccurred is sent when an error occurs.
type ErrorOccurred struct {
	Err error
}
