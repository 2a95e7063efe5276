// Package tui provides the Bubble Tea frontend for Space Defender: the setup
// menu, the game view, the high-score table and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Session tags the game model that scheduled it, so a tick still in flight
// when a session ends never drives the next one.
type TickMsg struct {
	Time    time.Time
	Session uint64
}

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
func tickCmd(interval time.Duration, session uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Session: session}
	})
}
