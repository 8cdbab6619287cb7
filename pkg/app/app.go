// Package app holds the bubbletea model driving the calculator UI.
package app

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/deskcalc/pkg/calc"
	"gitlab.com/tinyland/lab/deskcalc/pkg/config"
	"gitlab.com/tinyland/lab/deskcalc/pkg/eval"
	"gitlab.com/tinyland/lab/deskcalc/pkg/keypad"
	"gitlab.com/tinyland/lab/deskcalc/pkg/tape"
)

// Model is the top-level UI state.
type Model struct {
	acc  *calc.Accumulator
	tape *tape.Tape

	keys keyMap
	help help.Model

	cfg config.Config
	log *slog.Logger

	width    int
	height   int
	showTape bool

	// flashGen increments on every input so timers scheduled for an
	// earlier flash can be recognized as stale and dropped.
	flash    flashKind
	flashGen int
}

// New builds the initial model from a validated configuration.
func New(cfg config.Config, logger *slog.Logger) Model {
	return Model{
		acc:      calc.New(),
		tape:     tape.New(cfg.Display.TapeLines),
		keys:     newKeyMap(),
		help:     help.New(),
		cfg:      cfg,
		log:      logger,
		showTape: cfg.Display.ShowTape,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case flashExpiredMsg:
		if msg.Gen != m.flashGen {
			// A newer input already cancelled this flash.
			return m, nil
		}
		if msg.Kind == flashError {
			m.acc.FinishErrorFlash()
		}
		m.flash = flashNone
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		b, ok := keypad.Hit(msg)
		if !ok {
			return m, nil
		}
		return m.press(b)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes a keyboard event.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.log.Debug("quit requested")
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tape):
		m.showTape = !m.showTape
		return m, nil
	case key.Matches(msg, m.keys.Evaluate):
		return m.press(keypad.Button{Action: keypad.ActionEvaluate})
	case key.Matches(msg, m.keys.Backspace):
		return m.press(keypad.Button{Action: keypad.ActionBackspace})
	case key.Matches(msg, m.keys.Clear):
		return m.press(keypad.Button{Action: keypad.ActionClear})
	case key.Matches(msg, m.keys.Percent):
		return m.press(keypad.Button{Action: keypad.ActionPercent})
	}

	s := msg.String()
	if len(s) != 1 {
		return m, nil
	}
	c := s[0]
	switch {
	case c >= '0' && c <= '9', c == '.':
		return m.press(keypad.Button{Action: keypad.ActionDigit, Rune: c})
	case strings.ContainsRune("+-*/", rune(c)):
		return m.press(keypad.Button{Action: keypad.ActionOperator, Rune: c})
	}
	return m, nil
}

// press applies a button action to the accumulator. All input funnels
// through here, from the keyboard and from mouse zones alike.
func (m Model) press(b keypad.Button) (tea.Model, tea.Cmd) {
	m = m.cancelFlash()

	switch b.Action {
	case keypad.ActionDigit:
		m.acc.AppendDigit(b.Rune)
	case keypad.ActionOperator:
		m.acc.ApplyOperator(b.Rune)
	case keypad.ActionBackspace:
		m.acc.Backspace()
	case keypad.ActionClear:
		m.acc.Clear()
	case keypad.ActionPercent:
		sig, err := m.acc.Percent()
		return m.applySignal(sig, err)
	case keypad.ActionEvaluate:
		sig, err := m.acc.Evaluate()
		if sig == calc.SignalSuccess {
			st := m.acc.State()
			m.tape.Push(strings.TrimSuffix(st.History, " ="), st.Current)
		}
		return m.applySignal(sig, err)
	}
	return m, nil
}

// cancelFlash ends any flash in progress before new input is applied.
// Bumping the generation invalidates the pending timer message.
func (m Model) cancelFlash() Model {
	m.flashGen++
	if m.flash == flashError {
		m.acc.FinishErrorFlash()
	}
	m.flash = flashNone
	return m
}

// applySignal starts the flash matching an evaluation outcome.
func (m Model) applySignal(sig calc.Signal, err error) (tea.Model, tea.Cmd) {
	switch sig {
	case calc.SignalSuccess:
		m.log.Debug("evaluated", "result", m.acc.State().Current)
		m.flash = flashSuccess
		return m, flashCmd(flashSuccess, m.flashGen, m.cfg.Display.SuccessPulse.Duration)
	case calc.SignalError:
		m.log.Warn("evaluation failed", "kind", eval.KindOf(err).String(), "err", err)
		m.flash = flashError
		return m, flashCmd(flashError, m.flashGen, m.cfg.Display.ErrorFlash.Duration)
	}
	return m, nil
}
