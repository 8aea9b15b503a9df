// Package tui is the Bubble Tea front end: the map window, the terminal line
// with live completions, the job editor and the records table.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to drive the game clock.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickInterval converts a rate in ticks per second, falling back to 20.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 20
	}
	return time.Second / time.Duration(tickRate)
}
