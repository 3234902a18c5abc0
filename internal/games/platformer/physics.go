package platformer

// Collides reports whether two bodies touch or overlap.
// Overlap fails only if one body is entirely left, right, above or below the other,
// so bodies sharing an edge collide. The predicate is symmetric.
func Collides(a, b *Body) bool {
	if a.Right() < b.X || a.X > b.Right() {
		return false
	}
	if a.Bottom() < b.Y || a.Y > b.Bottom() {
		return false
	}
	return true
}

// fall integrates ground-clamped gravity for one tick.
// If the next step would pass through the ground the body snaps onto it;
// above ground the velocity grows by gravity; on the ground it is zeroed.
// The velocity is then added to the vertical position.
func fall(b *Body, velY *float64, ground int, gravity float64) {
	gap := float64(ground) - b.Bottom()
	switch {
	case gap < *velY:
		b.Y = float64(ground - b.H)
		*velY = 0
	case gap > 0:
		*velY += gravity
	default:
		*velY = 0
	}
	b.Y += *velY
}
