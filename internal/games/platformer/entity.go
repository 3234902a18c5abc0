// Package platformer implements the side-scrolling platformer simulation:
// a player with multi-charge jumps, patrolling enemies, static obstacles and
// bouncing projectiles, advanced one fixed tick at a time by a World.
package platformer

// Kind identifies an entity variant.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindEnemy
	KindProjectile
	KindObstacle
)

// String returns the lowercase variant name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Facing is the horizontal orientation of an entity.
type Facing int8

const (
	FacingRight Facing = 1
	FacingLeft  Facing = -1
)

// Sign returns +1 for right and -1 for left.
func (f Facing) Sign() int {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// Flip returns the opposite orientation.
func (f Facing) Flip() Facing {
	if f == FacingLeft {
		return FacingRight
	}
	return FacingLeft
}

// String returns "left" or "right".
func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Body is the geometry and flags shared by every entity.
// X is integral (steps and camera scroll are whole units); Y is fractional so
// gravity can accumulate sub-unit velocity.
type Body struct {
	X      int
	Y      float64
	W, H   int
	Facing Facing

	removed bool
}

// Base returns the shared body. It is the common accessor behind Entity.
func (b *Body) Base() *Body {
	return b
}

// Removed reports whether the entity is marked for deletion.
func (b *Body) Removed() bool {
	return b.removed
}

// Right returns the x-coordinate of the right edge.
func (b *Body) Right() int {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b *Body) Bottom() float64 {
	return b.Y + float64(b.H)
}

// Entity is one of *Player, *Enemy, *Projectile or *Obstacle.
// The set is closed: code dispatches over it with a type switch.
type Entity interface {
	Kind() Kind
	Base() *Body
	isEntity()
}

// Obstacle is static geometry. It never changes after construction.
type Obstacle struct {
	Body
}

// NewObstacle creates an obstacle with its top-left corner at (x, y).
func NewObstacle(x, y, w, h int) *Obstacle {
	return &Obstacle{Body: Body{X: x, Y: float64(y), W: w, H: h, Facing: FacingRight}}
}

// Kind returns KindObstacle.
func (*Obstacle) Kind() Kind { return KindObstacle }
func (*Obstacle) isEntity()  {}
