// Package tui provides the Bubble Tea integration for colortrap.
// It handles the terminal UI loop, input mapping and rendering; all game
// rules live in internal/game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to sample the timer driver while a level is running.
type TickMsg time.Time

// tickCmd returns a command that delivers the next timer sample after the
// configured interval. The model only re-issues it while the session is
// active, which cancels the chain the moment play stops.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
