// Package keypad provides the on-screen calculator keypad for the TUI.
package keypad

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/keycalc/internal/adapters/driving/keys"
	"github.com/custodia-labs/keycalc/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/keycalc/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/keycalc/internal/core/domain"
)

// DefaultCellWidth is the rendered width of one button.
const DefaultCellWidth = 6

// Button is a single keypad button.
type Button struct {
	// Label is the text shown on the button. Digit buttons carry their digit here.
	Label string

	// Token identifies the button for keys.FromButton.
	Token string
}

// IsOperator reports whether the button selects a binary operator.
func (b Button) IsOperator() bool {
	_, err := domain.ParseOperator(b.Token)
	return err == nil
}

// DefaultLayout returns the standard calculator button grid.
func DefaultLayout() [][]Button {
	digit := func(d string) Button { return Button{Label: d, Token: keys.ButtonDigit} }

	return [][]Button{
		{
			{Label: "C", Token: keys.ButtonClear},
			{Label: "⌫", Token: keys.ButtonBackspace},
			{Label: "%", Token: keys.ButtonPercent},
			{Label: "√", Token: keys.ButtonSqrt},
		},
		{digit("7"), digit("8"), digit("9"), {Label: "÷", Token: "divide"}},
		{digit("4"), digit("5"), digit("6"), {Label: "×", Token: "multiply"}},
		{digit("1"), digit("2"), digit("3"), {Label: "−", Token: "subtract"}},
		{digit("0"), {Label: ".", Token: keys.ButtonDecimal}, {Label: "=", Token: keys.ButtonEquals}, {Label: "+", Token: "add"}},
		{{Label: "^", Token: "pow"}, {Label: "xʸ", Token: keys.ButtonPower}},
	}
}

// Keypad renders a grid of buttons with one focused button.
type Keypad struct {
	rows      [][]Button
	row       int
	col       int
	styles    *styles.Styles
	cellWidth int
	originX   int
	originY   int
}

// New creates a keypad with the default layout.
func New(s *styles.Styles) *Keypad {
	return NewWithLayout(s, DefaultLayout())
}

// NewWithLayout creates a keypad with a custom button grid.
func NewWithLayout(s *styles.Styles, rows [][]Button) *Keypad {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Keypad{
		rows:      rows,
		styles:    s,
		cellWidth: DefaultCellWidth,
	}
}

// Init initialises the keypad.
func (k *Keypad) Init() tea.Cmd {
	return nil
}

// Update handles focus movement, presses and mouse clicks.
func (k *Keypad) Update(msg tea.Msg) (*Keypad, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		//nolint:exhaustive // handling only navigation keys
		switch msg.Type {
		case tea.KeyUp:
			k.Move(0, -1)
		case tea.KeyDown:
			k.Move(0, 1)
		case tea.KeyLeft:
			k.Move(-1, 0)
		case tea.KeyRight:
			k.Move(1, 0)
		case tea.KeySpace:
			return k, k.Press()
		default:
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return k, nil
		}
		row, col, ok := k.ButtonAt(msg.X-k.originX, msg.Y-k.originY)
		if !ok {
			return k, nil
		}
		k.row, k.col = row, col
		return k, k.Press()
	}
	return k, nil
}

// View renders the keypad grid.
func (k *Keypad) View() string {
	lines := make([]string, 0, len(k.rows))
	for r, row := range k.rows {
		var b strings.Builder
		for c, btn := range row {
			style := k.styles.Button
			switch {
			case r == k.row && c == k.col:
				style = k.styles.FocusedButton
			case btn.IsOperator():
				style = k.styles.OperatorButton
			}
			b.WriteString(style.Width(k.cellWidth).Render(btn.Label))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// Move shifts focus by dx columns and dy rows, clamped to the grid.
func (k *Keypad) Move(dx, dy int) {
	if len(k.rows) == 0 {
		return
	}
	k.row = clamp(k.row+dy, 0, len(k.rows)-1)
	k.col = clamp(k.col+dx, 0, len(k.rows[k.row])-1)
}

// Press returns a command emitting the focused button.
func (k *Keypad) Press() tea.Cmd {
	btn, ok := k.Focused()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return messages.ButtonPressed{Token: btn.Token, Label: btn.Label}
	}
}

// Focused returns the button under focus.
func (k *Keypad) Focused() (Button, bool) {
	if k.row >= len(k.rows) || k.col >= len(k.rows[k.row]) {
		return Button{}, false
	}
	return k.rows[k.row][k.col], true
}

// FocusedPosition returns the row and column under focus.
func (k *Keypad) FocusedPosition() (row, col int) {
	return k.row, k.col
}

// ButtonAt maps a cell position relative to the keypad origin to a button.
func (k *Keypad) ButtonAt(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 || y >= len(k.rows) {
		return 0, 0, false
	}
	col = x / k.cellWidth
	if col >= len(k.rows[y]) {
		return 0, 0, false
	}
	return y, col, true
}

// SetOrigin records where the keypad is drawn on screen for mouse hits.
func (k *Keypad) SetOrigin(x, y int) {
	k.originX = x
	k.originY = y
}

// Width returns the rendered width of the widest row.
func (k *Keypad) Width() int {
	widest := 0
	for _, row := range k.rows {
		if len(row) > widest {
			widest = len(row)
		}
	}
	return widest * k.cellWidth
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
