package input

import (
	"sync/atomic"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Controller combines the pointer, the zone mapper and the current screen
// size. It is the simulation loop's input source.
type Controller struct {
	pointer Pointer
	mapper  *Mapper
	size    atomic.Uint64 // width<<32 | height
}

// NewController creates a controller for a w×h screen.
func NewController(m *Mapper, w, h int) *Controller {
	c := &Controller{mapper: m}
	c.SetSize(w, h)
	return c
}

// Pointer returns the pointer the host writes touches to.
func (c *Controller) Pointer() *Pointer {
	return &c.pointer
}

// Mapper returns the zone mapper.
func (c *Controller) Mapper() *Mapper {
	return c.mapper
}

// SetSize updates the screen dimensions used for zone evaluation.
func (c *Controller) SetSize(w, h int) {
	c.size.Store(uint64(uint32(w))<<32 | uint64(uint32(h))) //#nosec G115 -- terminal sizes fit in 32 bits
}

// Size returns the screen dimensions.
func (c *Controller) Size() (w, h int) {
	v := c.size.Load()
	return int(uint32(v >> 32)), int(uint32(v))
}

// Frame maps the latest sample to this tick's actions.
func (c *Controller) Frame() core.InputFrame {
	s, active := c.pointer.Load()
	w, h := c.Size()
	return c.mapper.Map(s, active, w, h)
}

// Press touches the zone that triggers the action.
func (c *Controller) Press(a core.Action) bool {
	w, h := c.Size()
	x, y, ok := c.mapper.Target(a, w, h)
	if ok {
		c.pointer.Down(x, y)
	}
	return ok
}

// Release lifts the touch.
func (c *Controller) Release() {
	c.pointer.Up()
}
