package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// flashKind identifies the transient display effect in progress.
type flashKind int

const (
	flashNone flashKind = iota
	flashError
	flashSuccess
)

// flashExpiredMsg fires when a flash window closes. Gen ties the message
// to the flash that scheduled it; a stale generation means the flash was
// cancelled by newer input and the message must be ignored.
type flashExpiredMsg struct {
	Kind flashKind
	Gen  int
}

// flashCmd schedules the end of a flash window.
func flashCmd(kind flashKind, gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return flashExpiredMsg{Kind: kind, Gen: gen}
	})
}
