package input

import "github.com/vovakirdan/tui-platformer/internal/config"

// Zone is a screen region in fractions of the screen size.
// Bounds are half-open: [Min, Max).
type Zone struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// ZoneFrom converts a configured zone.
func ZoneFrom(z config.Zone) Zone {
	return Zone{MinX: z.MinX, MaxX: z.MaxX, MinY: z.MinY, MaxY: z.MaxY}
}

// Contains reports whether the cell (x, y) lies in the zone on a w×h screen.
// A cell is tested at its center, so the result does not depend on which
// edge of a boundary cell a fraction falls on.
func (z Zone) Contains(x, y, w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	fx := (float64(x) + 0.5) / float64(w)
	fy := (float64(y) + 0.5) / float64(h)
	return fx >= z.MinX && fx < z.MaxX && fy >= z.MinY && fy < z.MaxY
}

// Center returns the cell closest to the middle of the zone on a w×h screen.
func (z Zone) Center(w, h int) (x, y int) {
	x = int((z.MinX + z.MaxX) / 2 * float64(w))
	y = int((z.MinY + z.MaxY) / 2 * float64(h))
	return min(max(x, 0), w-1), min(max(y, 0), h-1)
}

// Zones is a set of regions that trigger the same action.
type Zones []Zone

// Contains reports whether any zone contains the cell.
func (zs Zones) Contains(x, y, w, h int) bool {
	for _, z := range zs {
		if z.Contains(x, y, w, h) {
			return true
		}
	}
	return false
}
