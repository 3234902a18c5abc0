package input

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Mapper evaluates the touch zones against a pointer sample.
type Mapper struct {
	moveLeft  Zone
	moveRight Zone
	jump      Zones
	fire      Zones
}

// NewMapper creates a mapper from the configured zones.
func NewMapper(cfg config.InputConfig) *Mapper {
	m := &Mapper{
		moveLeft:  ZoneFrom(cfg.MoveLeft),
		moveRight: ZoneFrom(cfg.MoveRight),
	}
	for _, z := range cfg.Jump {
		m.jump = append(m.jump, ZoneFrom(z))
	}
	for _, z := range cfg.Fire {
		m.fire = append(m.fire, ZoneFrom(z))
	}
	return m
}

// Map returns the actions held by a sample on a w×h screen.
// An inactive sample holds nothing.
func (m *Mapper) Map(s Sample, active bool, w, h int) core.InputFrame {
	f := core.NewInputFrame()
	if !active {
		return f
	}

	if m.moveRight.Contains(s.X, s.Y, w, h) {
		f.Set(core.ActionMoveRight)
	}
	if m.moveLeft.Contains(s.X, s.Y, w, h) {
		f.Set(core.ActionMoveLeft)
	}
	if m.jump.Contains(s.X, s.Y, w, h) {
		f.Set(core.ActionJump)
	}
	// Fire zones never overlap the move zones
	if m.fire.Contains(s.X, s.Y, w, h) &&
		!m.moveLeft.Contains(s.X, s.Y, w, h) &&
		!m.moveRight.Contains(s.X, s.Y, w, h) {
		f.Set(core.ActionFire)
	}

	return f
}

// Target returns a cell that triggers the action on a w×h screen.
// For jump and fire it is the center of the first zone.
func (m *Mapper) Target(a core.Action, w, h int) (x, y int, ok bool) {
	var z Zone
	switch a {
	case core.ActionMoveLeft:
		z = m.moveLeft
	case core.ActionMoveRight:
		z = m.moveRight
	case core.ActionJump:
		if len(m.jump) == 0 {
			return 0, 0, false
		}
		z = m.jump[0]
	case core.ActionFire:
		if len(m.fire) == 0 {
			return 0, 0, false
		}
		z = m.fire[0]
	default:
		return 0, 0, false
	}

	x, y = z.Center(w, h)
	return x, y, true
}
