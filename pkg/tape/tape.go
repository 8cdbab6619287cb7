// Package tape keeps a rolling record of evaluated expressions for the
// current session.
package tape

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/deskcalc/pkg/theme"
)

// Entry is one completed calculation.
type Entry struct {
	Expr   string
	Result string
}

// Tape holds the most recent entries up to a fixed cap. The zero value
// is unusable; construct with New.
type Tape struct {
	entries []Entry
	max     int
}

// New returns a tape that retains at most max entries.
func New(max int) *Tape {
	if max < 1 {
		max = 1
	}
	return &Tape{max: max}
}

// Push records a calculation, dropping the oldest entry once the tape
// is full.
func (t *Tape) Push(expr, result string) {
	t.entries = append(t.entries, Entry{Expr: expr, Result: result})
	if len(t.entries) > t.max {
		t.entries = t.entries[len(t.entries)-t.max:]
	}
}

// Entries returns the retained entries, oldest first.
func (t *Tape) Entries() []Entry {
	return t.entries
}

// Len reports how many entries the tape currently holds.
func (t *Tape) Len() int {
	return len(t.entries)
}

// Clear drops all entries.
func (t *Tape) Clear() {
	t.entries = nil
}

// Render draws the tape as a column of "expr = result" lines, newest
// last, truncated to width cells.
func (t *Tape) Render(th theme.Theme, width int) string {
	if len(t.entries) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(th.Dim)).
			Render("(no history)")
	}

	exprStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.TapeExpr))
	resultStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.TapeResult))

	lines := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		expr := e.Expr
		// Leave room for " = " and the result.
		budget := width - ansi.StringWidth(e.Result) - 3
		if budget > 0 && ansi.StringWidth(expr) > budget {
			expr = ansi.Truncate(expr, budget, "…")
		}
		lines = append(lines, exprStyle.Render(expr)+exprStyle.Render(" = ")+resultStyle.Render(e.Result))
	}
	return strings.Join(lines, "\n")
}
