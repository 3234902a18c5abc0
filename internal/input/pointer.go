// Package input maps a single pointer sample onto the platformer's touch zones.
//
// The host writes touch events into a Pointer from its own goroutine; the
// simulation loop reads the latest sample once per tick through a Controller.
package input

import "sync/atomic"

// Sample is a pointer position in screen cells.
type Sample struct {
	X, Y int
}

// Pointer holds the latest single-touch sample.
// A new touch-down overwrites any prior sample; touch-up clears it.
// It is safe for one writer and any number of readers.
type Pointer struct {
	cur atomic.Pointer[Sample]
}

// Down records a touch at (x, y).
func (p *Pointer) Down(x, y int) {
	p.cur.Store(&Sample{X: x, Y: y})
}

// Up releases the touch.
func (p *Pointer) Up() {
	p.cur.Store(nil)
}

// Load returns the latest sample and whether a touch is active.
func (p *Pointer) Load() (Sample, bool) {
	s := p.cur.Load()
	if s == nil {
		return Sample{}, false
	}
	return *s, true
}
