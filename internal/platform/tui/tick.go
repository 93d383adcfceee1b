// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances a timed game by one step. Gen identifies the arming
// that scheduled it; ticks from an older arming are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd schedules one TickMsg after d.
func tickCmd(d time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// backMsg asks the App to leave the current screen.
type backMsg struct{}

func back() tea.Msg { return backMsg{} }
