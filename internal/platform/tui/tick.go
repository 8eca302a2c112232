// Package tui provides the Bubble Tea integration for the arcade platform.
// It presents the emulated panel in the terminal, maps keys to buttons and
// paces the game by the delay each step asks for.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// minTick keeps a zero delay from spinning the event loop.
const minTick = time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after d.
func tickCmd(d time.Duration) tea.Cmd {
	if d < minTick {
		d = minTick
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
