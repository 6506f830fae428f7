// Package tui provides the Bubble Tea front-end for the cansat game.
// It handles the terminal UI loop, input mapping, rendering and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cansat-drop/internal/cansat"
)

// TickMsg is sent to trigger a simulation tick.
// It carries the loop token of the run that scheduled it.
type TickMsg struct {
	Token cansat.Token
	Time  time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick for the given run.
// The model schedules the next tick only after handling this one, so a run
// has at most one pending tick.
func tickCmd(tickRate int, tok cansat.Token) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Token: tok, Time: t}
	})
}
