package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/keycalc/internal/adapters/driven/display"
	"github.com/custodia-labs/keycalc/internal/adapters/driving/keys"
	"github.com/custodia-labs/keycalc/internal/core/domain"
)

// ErrNoKeys is returned when eval has nothing to press.
var ErrNoKeys = errors.New("no keys given")

// stdinIsTerminal is swapped out by tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var evalCmd = &cobra.Command{
	Use:   "eval [keys...]",
	Short: "Press keys on a fresh calculator and print the display",
	Long: `Press keys on a fresh calculator and print the final display.

Each argument is one key: 0-9 . + - * / ^ % = enter backspace delete, or a
button name (clear, sqrt, percent, power, add, subtract, multiply, divide,
pow). A run of digits such as 12.5 presses one key per character.

With no arguments and input piped in, keys are read from stdin separated by
whitespace.

Examples:
  keycalc eval 2 + 3 '*' 4 =        # 20
  keycalc eval 9 sqrt               # 3
  keycalc eval --trace 1 / 0 =      # Error
  echo "12 + 30 =" | keycalc eval`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().Bool("trace", false, "print every display update")
	evalCmd.Flags().Bool("state", false, "print the final internal state")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	if newCalculator == nil {
		return errors.New("calculator not configured")
	}

	trace, err := cmd.Flags().GetBool("trace")
	if err != nil {
		return fmt.Errorf("getting trace flag: %w", err)
	}
	showState, err := cmd.Flags().GetBool("state")
	if err != nil {
		return fmt.Errorf("getting state flag: %w", err)
	}

	tokens := args
	if len(tokens) == 0 && !stdinIsTerminal() {
		tokens, err = readTokens(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}
	if len(tokens) == 0 {
		return ErrNoKeys
	}

	actions, err := keys.ParseAll(tokens)
	if err != nil {
		return fmt.Errorf("parsing keys: %w", err)
	}

	calc, err := newCalculator()
	if err != nil {
		return fmt.Errorf("creating calculator: %w", err)
	}

	out := cmd.OutOrStdout()
	var sink *display.WriterSink
	if trace {
		sink = display.NewWriterSink(out, "  ")
		defer calc.Subscribe(sink)()
	}

	for _, a := range actions {
		calc.Dispatch(a)
	}

	if sink != nil && sink.Err() != nil {
		return fmt.Errorf("writing trace: %w", sink.Err())
	}

	fmt.Fprintln(out, calc.Display())
	if showState {
		fmt.Fprintln(out, formatState(calc.State()))
	}
	return nil
}

// readTokens splits r into whitespace separated tokens.
func readTokens(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	return tokens, scanner.Err()
}

func formatState(st domain.State) string {
	op := st.OperatorToken()
	if op == "" {
		op = "none"
	}
	return fmt.Sprintf("current=%q operator=%s operand=%q has_operand=%t phase=%s",
		st.Current, op, st.Operand, st.HasOperand, st.Phase())
}
