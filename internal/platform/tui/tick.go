// Package tui provides the Bubble Tea integration for quadpong.
// It hosts the simulation in a terminal: the refresh loop, input mapping,
// drawing and the visual stand-ins for the browser effects.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent on every host refresh.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after a refresh
// interval. The handler re-arms it, so the loop runs until the program quits.
func tickCmd(refreshRate int) tea.Cmd {
	interval := time.Second / time.Duration(refreshRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
