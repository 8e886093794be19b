// Package keys translates raw input from the driving adapters into
// calculator actions. It owns no calculator logic.
//
// Three vocabularies are supported:
//
//   - Keyboard key names: 0-9 . + - * / ^ % Enter Backspace Delete
//   - Keypad button tokens: digit decimal equals clear backspace sqrt
//     percent add subtract multiply divide pow power
//   - CLI/MCP tokens: either of the above, "=" for equals, or a run of
//     digits and dots such as "12.5" that expands to one action per character
package keys

import (
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/keycalc/internal/core/domain"
)

// ErrUnknownKey is returned for input that maps to no action.
var ErrUnknownKey = errors.New("keys: unknown key")

// Keypad button tokens that are not operators.
const (
	ButtonDigit     = "digit"
	ButtonDecimal   = "decimal"
	ButtonEquals    = "equals"
	ButtonClear     = "clear"
	ButtonBackspace = "backspace"
	ButtonSqrt      = "sqrt"
	ButtonPercent   = "percent"
	// ButtonPower invokes the standalone pow entry point rather than the pow operator.
	ButtonPower = "power"
)

var keyOperators = map[string]domain.Operator{
	"+": domain.OperatorAdd,
	"-": domain.OperatorSubtract,
	"*": domain.OperatorMultiply,
	"/": domain.OperatorDivide,
	"^": domain.OperatorPower,
}

// FromKey maps a keyboard key name to an action.
// Named keys (Enter, Backspace, Delete) match case-insensitively.
func FromKey(name string) (domain.Action, error) {
	if domain.IsDigit(name) {
		return domain.DigitAction(name)
	}
	if op, ok := keyOperators[name]; ok {
		return domain.OperatorAction(op)
	}

	switch strings.ToLower(name) {
	case ".":
		return domain.Simple(domain.ActionDecimal), nil
	case "%":
		return domain.Simple(domain.ActionPercent), nil
	case "enter":
		return domain.Simple(domain.ActionCompute), nil
	case "backspace":
		return domain.Simple(domain.ActionBackspace), nil
	case "delete":
		return domain.Simple(domain.ActionClear), nil
	}
	return domain.Action{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// FromButton maps a keypad button token to an action. Digit buttons carry
// their digit in label.
func FromButton(token, label string) (domain.Action, error) {
	switch token {
	case ButtonDigit:
		return domain.DigitAction(label)
	case ButtonDecimal:
		return domain.Simple(domain.ActionDecimal), nil
	case ButtonEquals:
		return domain.Simple(domain.ActionCompute), nil
	case ButtonClear:
		return domain.Simple(domain.ActionClear), nil
	case ButtonBackspace:
		return domain.Simple(domain.ActionBackspace), nil
	case ButtonSqrt:
		return domain.Simple(domain.ActionSqrt), nil
	case ButtonPercent:
		return domain.Simple(domain.ActionPercent), nil
	case ButtonPower:
		return domain.Simple(domain.ActionPow), nil
	}

	op, err := domain.ParseOperator(token)
	if err != nil {
		return domain.Action{}, fmt.Errorf("%w: button %q", ErrUnknownKey, token)
	}
	return domain.OperatorAction(op)
}

// Parse maps one CLI or MCP token to its actions.
func Parse(token string) ([]domain.Action, error) {
	if isNumberRun(token) {
		actions := make([]domain.Action, 0, len(token))
		for _, r := range token {
			a, err := FromKey(string(r))
			if err != nil {
				return nil, err
			}
			actions = append(actions, a)
		}
		return actions, nil
	}

	if token == "=" {
		return []domain.Action{domain.Simple(domain.ActionCompute)}, nil
	}
	if a, err := FromKey(token); err == nil {
		return []domain.Action{a}, nil
	}
	if token != ButtonDigit {
		if a, err := FromButton(strings.ToLower(token), ""); err == nil {
			return []domain.Action{a}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKey, token)
}

// ParseAll maps tokens in order, stopping at the first unknown token.
func ParseAll(tokens []string) ([]domain.Action, error) {
	var actions []domain.Action
	for _, tok := range tokens {
		parsed, err := Parse(tok)
		if err != nil {
			return nil, err
		}
		actions = append(actions, parsed...)
	}
	return actions, nil
}

// isNumberRun reports whether s is two or more characters of digits and dots.
func isNumberRun(s string) bool {
	if len(s) < 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if (s[i] < '0' || s[i] > '9') && s[i] != '.' {
			return false
		}
	}
	return true
}
