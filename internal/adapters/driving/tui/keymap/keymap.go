// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/custodia-labs/keycalc/internal/core/domain"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Digit enters 0-9.
	Digit key.Binding

	// Decimal enters a decimal point.
	Decimal key.Binding

	// Add, Subtract, Multiply, Divide and Power select an operator.
	Add      key.Binding
	Subtract key.Binding
	Multiply key.Binding
	Divide   key.Binding
	Power    key.Binding

	// Percent divides the input by 100.
	Percent key.Binding

	// Equals computes the pending operation.
	Equals key.Binding

	// Backspace removes the last character.
	Backspace key.Binding

	// Clear resets the calculator.
	Clear key.Binding

	// Sqrt takes the square root of the input.
	Sqrt key.Binding

	// Pow raises the pending operand to the input.
	Pow key.Binding

	// Up, Down, Left and Right move keypad focus.
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Press activates the focused keypad button.
	Press key.Binding

	// Help toggles the help view.
	Help key.Binding

	// Quit exits the application.
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "digit"),
		),
		Decimal: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "decimal"),
		),
		Add: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "add"),
		),
		Subtract: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "subtract"),
		),
		Multiply: key.NewBinding(
			key.WithKeys("*"),
			key.WithHelp("*", "multiply"),
		),
		Divide: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "divide"),
		),
		Power: key.NewBinding(
			key.WithKeys("^"),
			key.WithHelp("^", "power"),
		),
		Percent: key.NewBinding(
			key.WithKeys("%"),
			key.WithHelp("%", "percent"),
		),
		Equals: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter", "equals"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "backspace"),
		),
		Clear: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "clear"),
		),
		Sqrt: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "square root"),
		),
		Pow: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "raise operand"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Press: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "press button"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equals, k.Clear, k.Help, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digit, k.Decimal, k.Backspace, k.Clear},
		{k.Add, k.Subtract, k.Multiply, k.Divide, k.Power},
		{k.Equals, k.Percent, k.Sqrt, k.Pow},
		{k.Up, k.Down, k.Left, k.Right, k.Press},
		{k.Help, k.Quit},
	}
}

// ActionFor resolves a key string to a calculator action.
// Navigation, help and quit keys are not calculator actions.
func (k *KeyMap) ActionFor(keyStr string) (domain.Action, bool) {
	if Matches(keyStr, k.Digit) {
		a, err := domain.DigitAction(keyStr)
		return a, err == nil
	}

	operators := []struct {
		binding key.Binding
		op      domain.Operator
	}{
		{k.Add, domain.OperatorAdd},
		{k.Subtract, domain.OperatorSubtract},
		{k.Multiply, domain.OperatorMultiply},
		{k.Divide, domain.OperatorDivide},
		{k.Power, domain.OperatorPower},
	}
	for _, o := range operators {
		if Matches(keyStr, o.binding) {
			return domain.Action{Kind: domain.ActionOperator, Operator: o.op}, true
		}
	}

	simple := []struct {
		binding key.Binding
		kind    domain.ActionKind
	}{
		{k.Decimal, domain.ActionDecimal},
		{k.Percent, domain.ActionPercent},
		{k.Equals, domain.ActionCompute},
		{k.Backspace, domain.ActionBackspace},
		{k.Clear, domain.ActionClear},
		{k.Sqrt, domain.ActionSqrt},
		{k.Pow, domain.ActionPow},
	}
	for _, s := range simple {
		if Matches(keyStr, s.binding) {
			return domain.Simple(s.kind), true
		}
	}
	return domain.Action{}, false
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
