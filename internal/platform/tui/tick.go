// Package tui provides the Bubble Tea front end for battleship.
// It handles the terminal UI loop, coordinate entry, and match orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// AIMoveMsg is sent when the automated side may take its next shot.
// Deal identifies the match that scheduled it; ticks left over from an
// earlier match are dropped.
type AIMoveMsg struct {
	Deal int
	At   time.Time
}

// aiMoveCmd schedules the next automated shot of match deal after delay.
func aiMoveCmd(deal int, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return AIMoveMsg{Deal: deal, At: time.Now()} }
	}
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return AIMoveMsg{Deal: deal, At: t}
	})
}
