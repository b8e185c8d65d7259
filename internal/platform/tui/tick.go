// Package tui provides the Bubble Tea frontend.
// It handles the terminal UI loop and input mapping; game logic stays in the session.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
// The interval is re-read every frame since it shrinks as the level rises.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
