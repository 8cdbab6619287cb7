package app

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the calculator key bindings. Digits and operators are
// matched by their literal rune in Update; the Digits and Operators
// bindings exist so the help view can describe them.
type keyMap struct {
	Evaluate  key.Binding
	Percent   key.Binding
	Backspace key.Binding
	Clear     key.Binding
	Tape      key.Binding
	Quit      key.Binding

	Digits    key.Binding
	Operators key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Evaluate: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter/=", "evaluate"),
		),
		Percent: key.NewBinding(
			key.WithKeys("%"),
			key.WithHelp("%", "percent"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Tape: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tape"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."),
			key.WithHelp("0-9 .", "digits"),
		),
		Operators: key.NewBinding(
			key.WithKeys("+", "-", "*", "/"),
			key.WithHelp("+-*/", "operators"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Evaluate, k.Clear, k.Tape, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.Operators, k.Percent},
		{k.Evaluate, k.Backspace, k.Clear},
		{k.Tape, k.Quit},
	}
}
