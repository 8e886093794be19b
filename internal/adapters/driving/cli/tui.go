package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/keycalc/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator",
	Long: `Launch the interactive terminal calculator.

Type keys directly or drive the on-screen keypad with the arrows, space and
the mouse.

Controls:
  0-9 .          - Enter digits
  + - * / ^      - Select operator
  Enter / =      - Equals
  Backspace      - Delete last character
  Delete         - Clear
  s / p / %      - Square root / Power / Percent
  ←↑↓→, space    - Move and press keypad buttons
  ?              - Toggle help
  q, Esc         - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := newTUIApp()
	if err != nil {
		return err
	}
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// newTUIApp builds the TUI model from the configured services.
func newTUIApp() (*tui.App, error) {
	if newCalculator == nil {
		return nil, errors.New("calculator not configured")
	}
	calc, err := newCalculator()
	if err != nil {
		return nil, fmt.Errorf("creating calculator: %w", err)
	}

	app, err := tui.NewApp(tui.NewPorts(calc, settingsService))
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}
	return app, nil
}
