package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/keycalc/internal/adapters/driving/keys"
	"github.com/custodia-labs/keycalc/internal/adapters/driving/tui/components/keypad"
	"github.com/custodia-labs/keycalc/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/keycalc/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/keycalc/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/keycalc/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/keycalc/internal/core/domain"
	"github.com/custodia-labs/keycalc/internal/core/ports/driven"
	"github.com/custodia-labs/keycalc/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	styles    *styles.Styles
	keymap    *keymap.KeyMap
	keypad    *keypad.Keypad
	statusBar *status.Bar
	help      help.Model

	// display mirrors the calculator's display channel.
	display string

	// unsubscribe detaches the display sink.
	unsubscribe func()

	showKeypad bool
	showState  bool
	showHelp   bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	settings := domain.DefaultAppSettings()
	if ports.Settings != nil {
		loaded, err := ports.Settings.Get()
		if err != nil {
			logger.Warn("tui: using default settings: %v", err)
		} else {
			settings = *loaded
		}
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:      ports,
		styles:     s,
		keymap:     km,
		keypad:     keypad.New(s),
		statusBar:  status.NewBar(s, km),
		help:       help.New(),
		display:    ports.Calculator.Display(),
		showKeypad: settings.TUI.ShowKeypad,
		showState:  settings.TUI.ShowState,
	}
	a.help.ShowAll = true
	a.unsubscribe = ports.Calculator.Subscribe(driven.DisplayFunc(func(value string) {
		a.display = value
	}))
	a.statusBar.SetCalculatorState(ports.Calculator.State())

	return a, nil
}

// Close detaches the app from the calculator's display channel.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("keycalc")
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		if !a.showKeypad || a.showHelp {
			return a, nil
		}
		a.keypad.SetOrigin(0, a.keypadTop())
		a.keypad, cmd = a.keypad.Update(msg)
		return a, cmd

	case messages.ButtonPressed:
		action, err := keys.FromButton(msg.Token, msg.Label)
		if err != nil {
			return a, func() tea.Msg { return messages.ErrorOccurred{Err: err} }
		}
		a.dispatch(action)
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return a, tea.Quit
	case keymap.Matches(k, a.keymap.Help):
		a.showHelp = !a.showHelp
		if a.showHelp {
			a.statusBar.SetState(status.StateHelp)
		} else {
			a.statusBar.SetCalculatorState(a.ports.Calculator.State())
		}
		return a, nil
	}

	if a.showHelp {
		return a, nil
	}

	if action, ok := a.keymap.ActionFor(k); ok {
		a.dispatch(action)
		return a, nil
	}

	if !a.showKeypad {
		return a, nil
	}
	var cmd tea.Cmd
	a.keypad, cmd = a.keypad.Update(msg)
	return a, cmd
}

// dispatch applies an action and refreshes the status bar.
func (a *App) dispatch(action domain.Action) {
	a.err = nil
	logger.Debug("tui: %s", action)
	a.ports.Calculator.Dispatch(action)
	a.statusBar.SetCalculatorState(a.ports.Calculator.State())
}

// View implements tea.Model.
func (a *App) View() string {
	if a.showHelp {
		return strings.Join([]string{
			a.styles.Title.Render("keycalc help"),
			a.help.View(a.keymap),
			a.statusBar.View(),
		}, "\n\n")
	}

	sections := a.header()
	if a.showKeypad {
		sections = append(sections, a.keypad.View())
	}
	sections = append(sections, a.statusBar.View())
	return strings.Join(sections, "\n")
}

// header renders everything drawn above the keypad, one entry per section.
func (a *App) header() []string {
	display := a.styles.Display
	if a.display == domain.ErrorDisplay {
		display = display.Foreground(a.styles.Theme().Error)
	}
	width := a.keypad.Width() - display.GetHorizontalBorderSize()

	sections := []string{
		a.styles.Title.Render("keycalc"),
		display.Width(width).Render(a.display),
	}
	if a.showState {
		sections = append(sections, a.styles.Muted.Render(stateLine(a.ports.Calculator.State())))
	}
	return sections
}

// keypadTop returns the screen row the keypad starts on.
func (a *App) keypadTop() int {
	top := 0
	for _, s := range a.header() {
		top += lipgloss.Height(s)
	}
	return top
}

func stateLine(st domain.State) string {
	return fmt.Sprintf("current=%q operator=%s operand=%q", st.Current, st.OperatorToken(), st.Operand)
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.statusBar.SetWidth(width)
	a.help.Width = width
}

// Display returns the value currently shown.
func (a *App) Display() string {
	return a.display
}

// HelpVisible reports whether the help view is open.
func (a *App) HelpVisible() bool {
	return a.showHelp
}

// KeypadVisible reports whether the keypad is drawn.
func (a *App) KeypadVisible() bool {
	return a.showKeypad
}

// Err returns the last error.
func (a *App) Err() error {
	return a.err
}

// Ready reports whether the app has received its first window size.
func (a *App) Ready() bool {
	return a.ready
}
