// Package tui hosts the platformer in a Bubble Tea program.
// The simulation runs on its own loop goroutine; this package feeds it
// pointer input and displays the frames it sends back.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// frameMsg carries a rendered frame from the loop goroutine.
type frameMsg struct {
	view  string
	state core.GameState
}

// releaseMsg ends a synthetic key touch unless a newer key press replaced it.
type releaseMsg struct {
	seq uint64
}

// lifecycleMsg reports the outcome of a loop Start or Stop run as a command.
type lifecycleMsg struct {
	running bool
	err     error
}

// faultMsg reports a loop fault.
type faultMsg struct {
	err error
}

// releaseCmd schedules the release of key touch seq after d.
func releaseCmd(d time.Duration, seq uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return releaseMsg{seq: seq}
	})
}
