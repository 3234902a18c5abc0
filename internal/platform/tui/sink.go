package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ErrNotAttached is returned when a frame is presented before a program is attached.
var ErrNotAttached = errors.New("tui: frame sink has no program")

// Renderer draws the simulation into a screen buffer.
type Renderer interface {
	Render(dst *core.Screen)
}

// Sizer reports the current play area in cells.
type Sizer interface {
	Size() (w, h int)
}

// FrameSink renders the world after every tick, on the loop goroutine, and
// hands the styled frame to the Bubble Tea program.
type FrameSink struct {
	game   Renderer
	size   Sizer
	screen *core.Screen
	send   func(tea.Msg)
}

// NewFrameSink creates a sink drawing game at the size reported by size.
func NewFrameSink(game Renderer, size Sizer) *FrameSink {
	w, h := size.Size()
	return &FrameSink{
		game:   game,
		size:   size,
		screen: core.NewScreen(max(w, 0), max(h, 0)),
	}
}

// Attach sets the function frames are delivered through, usually Program.Send.
func (s *FrameSink) Attach(send func(tea.Msg)) {
	s.send = send
}

// Present implements loop.Sink.
func (s *FrameSink) Present(res core.StepResult) error {
	if s.send == nil {
		return ErrNotAttached
	}

	w, h := s.size.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	s.screen.Resize(w, h)
	s.game.Render(s.screen)

	s.send(frameMsg{view: RenderScreen(s.screen), state: res.State})
	return nil
}
