// Package tui provides the Bubble Tea integration for the flashfall game.
// It handles the terminal UI loop, the answer input field, and rendering
// of the falling-card board.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. It carries the wall-clock
// time the tick fired so the model can compute the real elapsed delta.
type TickMsg time.Time

// maxTickDelta caps the per-tick delta in seconds. A suspended or stalled
// terminal otherwise delivers one huge delta that teleports every card
// past the flip line at once.
const maxTickDelta = 0.25

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
