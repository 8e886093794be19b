package services

import (
	"math"
	"strings"

	"github.com/custodia-labs/keycalc/internal/core/domain"
	"github.com/custodia-labs/keycalc/internal/core/ports/driven"
	"github.com/custodia-labs/keycalc/internal/core/ports/driving"
	"github.com/custodia-labs/keycalc/internal/logger"
)

// Ensure Engine implements the interface.
var _ driving.Calculator = (*Engine)(nil)

// Engine is the calculator state machine. It accumulates digit and decimal
// entry, tracks a pending operator and operand, and emits display updates.
// Operand and current input are kept as text and parsed only when an
// operation runs. An Engine must be confined to one goroutine.
type Engine struct {
	current    string
	operator   domain.Operator
	operand    string
	hasOperand bool

	maxInput int
	display  string
	sinks    map[int]driven.DisplaySink
	nextSink int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithMaxInputLength sets the digit-entry limit. Values below 1 are ignored.
func WithMaxInputLength(n int) EngineOption {
	return func(e *Engine) {
		if n >= domain.MinInputLength {
			e.maxInput = n
		}
	}
}

// WithDisplay subscribes sink to display updates from construction.
func WithDisplay(sink driven.DisplaySink) EngineOption {
	return func(e *Engine) {
		e.Subscribe(sink)
	}
}

// NewEngine creates an engine in the empty state.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		maxInput: domain.DefaultMaxInputLength,
		sinks:    make(map[int]driven.DisplaySink),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reset clears input, operator and operand without a display update.
func (e *Engine) Reset() {
	e.current = ""
	e.operator = domain.OperatorNone
	e.operand = ""
	e.hasOperand = false
}

// InputDigit enters d. Input past the length limit is dropped silently.
func (e *Engine) InputDigit(d string) {
	if !domain.IsDigit(d) {
		logger.Debug("ignoring non-digit %q", d)
		return
	}
	switch {
	case e.current == "" || e.current == domain.ErrorDisplay:
		e.current = d
	case len(e.current) < e.maxInput:
		e.current += d
	default:
		logger.Debug("input limit %d reached, dropping %s", e.maxInput, d)
	}
	e.emit(e.current)
}

// InputDecimal enters a decimal point, starting at "0." on empty input.
func (e *Engine) InputDecimal() {
	switch {
	case e.current == "" || e.current == domain.ErrorDisplay:
		e.current = "0."
	case !strings.Contains(e.current, "."):
		e.current += "."
	}
	e.emit(e.current)
}

// InputOperator captures the input as the operand of op. A pending
// operation with input is computed first, so "3 + 4 +" continues from 7.
// The display is left as it was.
func (e *Engine) InputOperator(op domain.Operator) {
	if !op.IsValid() {
		logger.Debug("ignoring invalid operator %d", int(op))
		return
	}
	if e.operator != domain.OperatorNone && e.current != "" {
		e.Compute()
	}
	e.operand = e.current
	e.hasOperand = true
	e.operator = op
	e.current = ""
}

// Compute evaluates operand <operator> current.
// Division by zero shows the error sentinel and resets all state.
func (e *Engine) Compute() {
	if e.operator == domain.OperatorNone || e.operand == "" || e.current == "" {
		logger.Debug("compute skipped: operator=%s operand=%q current=%q", e.operator, e.operand, e.current)
		return
	}

	a := domain.ParseNumber(e.operand)
	b := domain.ParseNumber(e.current)
	result, err := e.operator.Apply(a, b)
	if err != nil {
		logger.Debug("compute %s %s %s: %v", e.operand, e.operator.Symbol(), e.current, err)
		e.Reset()
		e.emit(domain.ErrorDisplay)
		return
	}

	e.finish(result)
}

// Clear resets all state and blanks the display.
func (e *Engine) Clear() {
	e.Reset()
	e.emit("")
}

// Backspace removes the last input character. Empty input is left alone.
func (e *Engine) Backspace() {
	if e.current == "" {
		return
	}
	e.current = e.current[:len(e.current)-1]
	e.emit(e.current)
}

// Sqrt replaces the input with its square root. Non-numeric and negative
// input is left alone.
func (e *Engine) Sqrt() {
	v := domain.ParseNumber(e.current)
	if math.IsNaN(v) || v < 0 {
		logger.Debug("sqrt skipped for %q", e.current)
		return
	}
	e.current = domain.FormatNumber(math.Sqrt(v))
	e.emit(e.current)
}

// Pow raises the pending operand to the input, regardless of which
// operator is pending. With no operand captured the base is NaN, so the
// result is NaN unless the exponent is zero.
func (e *Engine) Pow() {
	if (e.hasOperand && e.operand == "") || e.current == "" {
		logger.Debug("pow skipped: operand=%q current=%q", e.operand, e.current)
		return
	}
	base := math.NaN()
	if e.hasOperand {
		base = domain.ParseNumber(e.operand)
	}
	exponent := domain.ParseNumber(e.current)
	e.finish(math.Pow(base, exponent))
}

// Percent divides the input by 100.
func (e *Engine) Percent() {
	v := domain.ParseNumber(e.current)
	if math.IsNaN(v) {
		logger.Debug("percent skipped for %q", e.current)
		return
	}
	e.current = domain.FormatNumber(v / 100)
	e.emit(e.current)
}

// Dispatch applies a single action.
func (e *Engine) Dispatch(action domain.Action) {
	logger.Debug("dispatch %s", action)
	switch action.Kind {
	case domain.ActionDigit:
		e.InputDigit(action.Digit)
	case domain.ActionDecimal:
		e.InputDecimal()
	case domain.ActionOperator:
		e.InputOperator(action.Operator)
	case domain.ActionCompute:
		e.Compute()
	case domain.ActionClear:
		e.Clear()
	case domain.ActionBackspace:
		e.Backspace()
	case domain.ActionSqrt:
		e.Sqrt()
	case domain.ActionPercent:
		e.Percent()
	case domain.ActionPow:
		e.Pow()
	default:
		logger.Debug("ignoring unknown action kind %d", int(action.Kind))
	}
}

// Display returns the last emitted display value.
func (e *Engine) Display() string {
	return e.display
}

// State returns a snapshot of the engine.
func (e *Engine) State() domain.State {
	return domain.State{
		Current:    e.current,
		Operator:   e.operator,
		Operand:    e.operand,
		HasOperand: e.hasOperand,
		Display:    e.display,
	}
}

// Subscribe registers sink for display updates.
func (e *Engine) Subscribe(sink driven.DisplaySink) func() {
	if sink == nil {
		return func() {}
	}
	id := e.nextSink
	e.nextSink++
	e.sinks[id] = sink
	return func() {
		delete(e.sinks, id)
	}
}

// MaxInputLength returns the digit-entry limit.
func (e *Engine) MaxInputLength() int {
	return e.maxInput
}

// finish stores a successful result and clears the pending operation.
func (e *Engine) finish(result float64) {
	e.current = domain.FormatNumber(result)
	e.operator = domain.OperatorNone
	e.operand = ""
	e.hasOperand = false
	e.emit(e.current)
}

func (e *Engine) emit(value string) {
	e.display = value
	for i := 0; i < e.nextSink; i++ {
		if sink, ok := e.sinks[i]; ok {
			sink.Show(value)
		}
	}
}
