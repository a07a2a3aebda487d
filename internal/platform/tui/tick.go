// Package tui provides the Bubble Tea integration for twinlane.
// It handles the terminal UI loop, input mapping, and rendering; the
// simulation itself only ever sees input actions and frame timestamps.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the frame timestamp that drives the variable-delta
// simulation step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
