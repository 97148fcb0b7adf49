// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arenablitz/arcade/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	Elapsed time.Duration // Actual time since the previous tick
}

// tickCmd returns a command that blocks on the frame clock and then sends
// a tick. Only one is outstanding at a time, so the clock is never shared.
func tickCmd(clock *core.FrameClock, tickRate int) tea.Cmd {
	return func() tea.Msg {
		return TickMsg{Elapsed: clock.Tick(tickRate)}
	}
}
