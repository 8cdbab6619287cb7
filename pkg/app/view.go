package app

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/deskcalc/pkg/keypad"
	"gitlab.com/tinyland/lab/deskcalc/pkg/theme"
)

// View implements tea.Model.
func (m Model) View() string {
	th := theme.Current
	w := keypad.Width()

	sections := []string{
		m.viewDisplay(th, w),
		keypad.Render(th, m.flash == flashSuccess),
	}
	if m.showTape {
		sections = append(sections, m.viewTape(th, w))
	}
	sections = append(sections, m.help.View(m.keys))

	out := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width > 0 {
		out = lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Render(out)
	}
	return zone.Scan(out)
}

// viewDisplay renders the two-line display panel: the committed history
// above, the value being typed below.
func (m Model) viewDisplay(th theme.Theme, w int) string {
	history := m.acc.State().History
	if cut := ansi.StringWidth(history) - w; cut > 0 {
		// Keep the tail visible; the user cares about recent input.
		history = ansi.TruncateLeft(history, cut+1, "…")
	}

	exprStyle := lipgloss.NewStyle().
		Width(w).
		Align(lipgloss.Right).
		Foreground(lipgloss.Color(th.DisplayExpr))

	valueStyle := lipgloss.NewStyle().
		Width(w).
		Align(lipgloss.Right).
		Bold(true).
		Foreground(lipgloss.Color(th.DisplayValue))

	value := m.acc.State().Current
	switch m.flash {
	case flashError:
		value = "Err"
		valueStyle = valueStyle.Foreground(lipgloss.Color(th.ErrorText))
	case flashSuccess:
		valueStyle = valueStyle.Background(lipgloss.Color(th.SuccessPulse))
	}
	if cut := ansi.StringWidth(value) - w; cut > 0 {
		value = ansi.TruncateLeft(value, cut+1, "…")
	}

	panel := lipgloss.JoinVertical(lipgloss.Right,
		exprStyle.Render(history),
		valueStyle.Render(value),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(th.DisplayBorder)).
		Padding(0, 1).
		Render(panel)
}

// viewTape renders the session tape under a dim rule.
func (m Model) viewTape(th theme.Theme, w int) string {
	rule := lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.Dim)).
		Render("── tape ──")
	return lipgloss.JoinVertical(lipgloss.Left, rule, m.tape.Render(th, w))
}
