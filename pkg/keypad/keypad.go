// Package keypad defines the calculator button grid and renders it with
// clickable mouse zones.
package keypad

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/deskcalc/pkg/theme"
)

// Action identifies the calculator operation a button triggers.
type Action int

const (
	ActionDigit Action = iota
	ActionOperator
	ActionPercent
	ActionBackspace
	ActionClear
	ActionEvaluate
)

// Button is one key on the pad. Label is the glyph shown on screen; Rune
// is the canonical ASCII byte fed to the accumulator for digit and
// operator buttons (zero otherwise).
type Button struct {
	Label  string
	Action Action
	Rune   byte
	Wide   bool
}

// keyWidth is the rendered cell width of a normal button; a wide button
// spans two cells plus the gap between them.
const keyWidth = 5

// grid is the standard calculator layout, top row first.
var grid = [][]Button{
	{
		{Label: "C", Action: ActionClear},
		{Label: "⌫", Action: ActionBackspace},
		{Label: "%", Action: ActionPercent},
		{Label: "÷", Action: ActionOperator, Rune: '/'},
	},
	{
		{Label: "7", Action: ActionDigit, Rune: '7'},
		{Label: "8", Action: ActionDigit, Rune: '8'},
		{Label: "9", Action: ActionDigit, Rune: '9'},
		{Label: "×", Action: ActionOperator, Rune: '*'},
	},
	{
		{Label: "4", Action: ActionDigit, Rune: '4'},
		{Label: "5", Action: ActionDigit, Rune: '5'},
		{Label: "6", Action: ActionDigit, Rune: '6'},
		{Label: "−", Action: ActionOperator, Rune: '-'},
	},
	{
		{Label: "1", Action: ActionDigit, Rune: '1'},
		{Label: "2", Action: ActionDigit, Rune: '2'},
		{Label: "3", Action: ActionDigit, Rune: '3'},
		{Label: "+", Action: ActionOperator, Rune: '+'},
	},
	{
		{Label: "0", Action: ActionDigit, Rune: '0', Wide: true},
		{Label: ".", Action: ActionDigit, Rune: '.'},
		{Label: "=", Action: ActionEvaluate},
	},
}

// Grid returns the button layout, top row first.
func Grid() [][]Button {
	return grid
}

// ZoneID returns the bubblezone mark id for a button.
func ZoneID(b Button) string {
	return "keypad/" + b.Label
}

// Render draws the full keypad. When pulse is set the equals key is
// highlighted for the success animation.
func Render(t theme.Theme, pulse bool) string {
	rows := make([]string, 0, len(grid))
	for _, row := range grid {
		keys := make([]string, 0, len(row))
		for _, b := range row {
			keys = append(keys, zone.Mark(ZoneID(b), renderKey(b, t, pulse)))
		}
		rows = append(rows, strings.Join(keys, " "))
	}
	return strings.Join(rows, "\n")
}

// Width returns the rendered width of the keypad in terminal cells.
func Width() int {
	cols := len(grid[0])
	return cols*keyWidth + (cols - 1)
}

// Hit resolves a mouse event to the button whose zone contains it.
func Hit(msg tea.MouseMsg) (Button, bool) {
	for _, row := range grid {
		for _, b := range row {
			if z := zone.Get(ZoneID(b)); z != nil && z.InBounds(msg) {
				return b, true
			}
		}
	}
	return Button{}, false
}

// renderKey styles a single button according to its action.
func renderKey(b Button, t theme.Theme, pulse bool) string {
	w := keyWidth
	if b.Wide {
		w = keyWidth*2 + 1
	}

	style := lipgloss.NewStyle().
		Width(w).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color(t.KeyText))

	switch b.Action {
	case ActionDigit:
		style = style.Background(lipgloss.Color(t.KeyDigitBg))
	case ActionOperator:
		style = style.Background(lipgloss.Color(t.KeyOperator))
	case ActionEvaluate:
		bg := t.KeyEqualsBg
		if pulse {
			bg = t.Accent
		}
		style = style.Background(lipgloss.Color(bg)).Bold(true)
	default:
		style = style.Background(lipgloss.Color(t.KeyControlBg))
	}

	return style.Render(b.Label)
}

// visibleWidth is a test seam for measuring rendered rows.
func visibleWidth(s string) int {
	return ansi.StringWidth(s)
}
