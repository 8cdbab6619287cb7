// Package calc implements the calculator input state machine.
//
// An Accumulator owns the display state and turns a stream of digit,
// operator, percent, backspace, clear, and evaluate actions into a
// well-formed arithmetic expression, delegating actual computation to
// the eval package.
package calc

import (
	"strings"

	"gitlab.com/tinyland/lab/deskcalc/pkg/eval"
)

// State is the display state of the calculator.
type State struct {
	// Current is the value being typed: a valid numeric literal fragment
	// (digits, at most one '.'), never empty, "0" at rest.
	Current string

	// History is the committed prefix of the expression: zero or more
	// "<number><operator>" segments, or "<expr> =" after an evaluation.
	History string

	// JustEvaluated is set after a successful evaluation and cleared by
	// the next digit or operator input. It governs whether new input
	// starts fresh or chains off the result.
	JustEvaluated bool
}

// NewState returns the initial state.
func NewState() State {
	return State{Current: "0"}
}

// Signal reports the display effect of a transition.
type Signal int

const (
	// SignalNone means refresh the display, nothing transient.
	SignalNone Signal = iota

	// SignalSuccess means an evaluation succeeded; pulse the display.
	SignalSuccess

	// SignalError means an evaluation failed; flash "Err" and then call
	// FinishErrorFlash once the flash window closes.
	SignalError
)

// Accumulator applies input transitions to a State. It is not safe for
// concurrent use; the event loop mutates it synchronously.
type Accumulator struct {
	state State
}

// New returns an Accumulator at the initial state.
func New() *Accumulator {
	return &Accumulator{state: NewState()}
}

// State returns a copy of the current state.
func (a *Accumulator) State() State {
	return a.state
}

// AppendDigit handles a digit key, '0' through '9' or '.'. Anything else
// is ignored.
func (a *Accumulator) AppendDigit(d byte) {
	if !(d >= '0' && d <= '9' || d == '.') {
		return
	}

	switch {
	case a.state.JustEvaluated:
		// Start a new number. History keeps showing the finished
		// expression until the next operator or evaluation replaces
		// it; that is long-standing observed behavior, do not "fix".
		if d == '.' {
			a.state.Current = "0."
		} else {
			a.state.Current = string(d)
		}
		a.state.JustEvaluated = false
	case a.state.Current == "0" && d != '.':
		a.state.Current = string(d)
	case d == '.' && strings.ContainsRune(a.state.Current, '.'):
		// Reject a second decimal point.
	default:
		a.state.Current += string(d)
	}
}

// ApplyOperator handles one of '+', '-', '*', '/'. Anything else is
// ignored; '%' goes through Percent instead.
func (a *Accumulator) ApplyOperator(op byte) {
	if !strings.ContainsRune("+-*/", rune(op)) {
		return
	}

	switch {
	case a.state.JustEvaluated:
		// Chain off the previous result.
		a.state.History = a.state.Current + string(op)
		a.state.Current = "0"
		a.state.JustEvaluated = false
	case endsWithOperator(a.state.History):
		// Last operator wins; lets the user correct a mistyped
		// operator without inserting an operand.
		a.state.History = a.state.History[:len(a.state.History)-1] + string(op)
	default:
		a.state.History += a.state.Current + string(op)
		a.state.Current = "0"
	}
}

// Percent evaluates Current alone and divides it by 100. On failure the
// caller shows the error flash and later calls FinishErrorFlash.
func (a *Accumulator) Percent() (Signal, error) {
	v, err := eval.Evaluate(NormalizeSymbols(a.state.Current))
	if err != nil {
		return SignalError, err
	}
	a.state.Current = FormatResult(v / 100)
	return SignalNone, nil
}

// Backspace drops the last character of Current. Right after a result it
// clears to "0" instead of editing the result string.
func (a *Accumulator) Backspace() {
	if a.state.JustEvaluated {
		a.state.Current = "0"
		a.state.JustEvaluated = false
		return
	}
	if len(a.state.Current) > 1 {
		a.state.Current = a.state.Current[:len(a.state.Current)-1]
		return
	}
	a.state.Current = "0"
}

// Clear resets everything to the initial state.
func (a *Accumulator) Clear() {
	a.state = NewState()
}

// Evaluate computes History+Current. On success History becomes
// "<expr> =", Current the formatted result, and JustEvaluated is set. On
// failure the state is left untouched; the caller shows the "Err" flash
// and calls FinishErrorFlash when it expires.
func (a *Accumulator) Evaluate() (Signal, error) {
	expr := NormalizeSymbols(a.state.History + a.state.Current)
	if expr == "" {
		return SignalNone, nil
	}

	v, err := eval.Evaluate(expr)
	if err != nil {
		return SignalError, err
	}

	a.state.History = expr + " ="
	a.state.Current = FormatResult(v)
	a.state.JustEvaluated = true
	return SignalSuccess, nil
}

// FinishErrorFlash reverts Current to "0" after the transient "Err"
// display. History is preserved so the failing context stays visible.
func (a *Accumulator) FinishErrorFlash() {
	a.state.Current = "0"
}

// endsWithOperator reports whether s ends with an operator character.
func endsWithOperator(s string) bool {
	if s == "" {
		return false
	}
	return strings.ContainsRune("+-*/%", rune(s[len(s)-1]))
}
