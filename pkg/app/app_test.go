package app

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/deskcalc/pkg/config"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	m.Run()
}

func newTestModel() Model {
	cfg := *config.Default()
	return New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// update unwraps the tea.Model interface so assertions stay readable.
func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// typeKeys feeds each character of s as a key press.
func typeKeys(m Model, s string) Model {
	for _, r := range s {
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestTypeAndEvaluate(t *testing.T) {
	m := typeKeys(newTestModel(), "2+3")
	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEnter})

	st := m.acc.State()
	if st.Current != "5" {
		t.Errorf("Current = %q, want 5", st.Current)
	}
	if st.History != "2+3 =" {
		t.Errorf("History = %q, want \"2+3 =\"", st.History)
	}
	if m.flash != flashSuccess {
		t.Errorf("flash = %d, want flashSuccess", m.flash)
	}
	if cmd == nil {
		t.Error("expected a flash expiry command")
	}
}

func TestEvaluatePushesTape(t *testing.T) {
	m := typeKeys(newTestModel(), "7*6")
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})

	entries := m.tape.Entries()
	if len(entries) != 1 {
		t.Fatalf("tape has %d entries, want 1", len(entries))
	}
	if entries[0].Expr != "7*6" || entries[0].Result != "42" {
		t.Errorf("tape entry = %+v, want 7*6 = 42", entries[0])
	}
}

func TestErrorFlashThenExpiry(t *testing.T) {
	m := typeKeys(newTestModel(), "5/0")
	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.flash != flashError {
		t.Fatalf("flash = %d, want flashError", m.flash)
	}
	if cmd == nil {
		t.Fatal("expected a flash expiry command")
	}
	if got := m.acc.State().History; got != "5/" {
		t.Errorf("History = %q, want untouched \"5/\"", got)
	}

	m, _ = update(m, flashExpiredMsg{Kind: flashError, Gen: m.flashGen})
	if m.flash != flashNone {
		t.Errorf("flash = %d after expiry, want flashNone", m.flash)
	}
	if got := m.acc.State().Current; got != "0" {
		t.Errorf("Current = %q after expiry, want 0", got)
	}
}

func TestStaleFlashExpiryIgnored(t *testing.T) {
	m := typeKeys(newTestModel(), "5/0")
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	staleGen := m.flashGen

	// New input cancels the flash and bumps the generation.
	m = typeKeys(m, "7")
	if m.flash != flashNone {
		t.Fatalf("flash = %d after new input, want flashNone", m.flash)
	}

	m, _ = update(m, flashExpiredMsg{Kind: flashError, Gen: staleGen})
	if got := m.acc.State().Current; got != "7" {
		t.Errorf("Current = %q, want 7 (stale expiry must not reset)", got)
	}
}

func TestInputDuringErrorFlashRevertsFirst(t *testing.T) {
	m := typeKeys(newTestModel(), "5/0")
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})

	m = typeKeys(m, "8")
	if got := m.acc.State().Current; got != "8" {
		t.Errorf("Current = %q, want 8 (flash cancel reverts to 0, then digit)", got)
	}
}

func TestSuccessFlashExpiry(t *testing.T) {
	m := typeKeys(newTestModel(), "1+1")
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(m, flashExpiredMsg{Kind: flashSuccess, Gen: m.flashGen})
	if m.flash != flashNone {
		t.Errorf("flash = %d after expiry, want flashNone", m.flash)
	}
	if got := m.acc.State().Current; got != "2" {
		t.Errorf("Current = %q, want 2 (success expiry keeps the result)", got)
	}
}

func TestBackspaceAndClearKeys(t *testing.T) {
	m := typeKeys(newTestModel(), "123")
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.acc.State().Current; got != "12" {
		t.Errorf("Current = %q after backspace, want 12", got)
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEscape})
	st := m.acc.State()
	if st.Current != "0" || st.History != "" {
		t.Errorf("state after esc = %+v, want initial", st)
	}
}

func TestPercentKey(t *testing.T) {
	m := typeKeys(newTestModel(), "50%")
	if got := m.acc.State().Current; got != "0.5" {
		t.Errorf("Current = %q, want 0.5", got)
	}
}

func TestTapeToggle(t *testing.T) {
	m := newTestModel()
	shown := m.showTape
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if m.showTape == shown {
		t.Error("t did not toggle the tape")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel()
	_, cmd := update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("cmd() = %v, want tea.QuitMsg", msg)
	}
}

func TestViewShowsErrDuringFlash(t *testing.T) {
	m := typeKeys(newTestModel(), "5/0")
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})

	if out := m.View(); !strings.Contains(out, "Err") {
		t.Error("view does not show Err during the error flash")
	}
}

func TestViewShowsCurrentValue(t *testing.T) {
	m := typeKeys(newTestModel(), "3.14")
	if out := m.View(); !strings.Contains(out, "3.14") {
		t.Error("view does not show the value being typed")
	}
}

func TestIgnoredKeysLeaveStateAlone(t *testing.T) {
	m := typeKeys(newTestModel(), "42")
	before := m.acc.State()
	m = typeKeys(m, "x(#")
	if got := m.acc.State(); got != before {
		t.Errorf("state changed by ignored keys: %+v -> %+v", before, got)
	}
}
