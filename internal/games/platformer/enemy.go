package platformer

import "github.com/vovakirdan/tui-platformer/internal/config"

// Enemy patrols horizontally, turns around at obstacles and dies when hit by a projectile.
type Enemy struct {
	Body

	VelY      float64
	Dying     bool // Set once on hit, never cleared
	Countdown int  // Ticks left before removal while dying

	step       int
	deathTicks int
	gravity    float64
}

// NewEnemy creates a live enemy at (x, y) facing the given direction.
func NewEnemy(x, y int, facing Facing, cfg config.EnemyConfig, physics config.PhysicsConfig) *Enemy {
	return &Enemy{
		Body: Body{
			X:      x,
			Y:      float64(y),
			W:      cfg.Width,
			H:      cfg.Height,
			Facing: facing,
		},
		step:       cfg.Step,
		deathTicks: cfg.DeathTicks,
		gravity:    physics.Gravity,
	}
}

// Kind returns KindEnemy.
func (*Enemy) Kind() Kind { return KindEnemy }
func (*Enemy) isEntity()  {}

func (e *Enemy) update(ctx *Context) {
	if e.Dying {
		e.Countdown--
		if e.Countdown <= 0 {
			ctx.Remove(e)
		}
	} else {
		e.X += e.step * e.Facing.Sign()
		e.collide(ctx)
	}

	fall(&e.Body, &e.VelY, ctx.Ground(), e.gravity)
}

// collide reacts to projectiles and obstacles touched this tick.
func (e *Enemy) collide(ctx *Context) {
	for other := range ctx.Live() {
		switch o := other.(type) {
		case *Projectile:
			if !e.Dying && Collides(&e.Body, &o.Body) {
				e.Dying = true
				e.Countdown = e.deathTicks
				ctx.Remove(o)
			}
		case *Obstacle:
			if !e.Dying && Collides(&e.Body, &o.Body) {
				e.Facing = e.Facing.Flip()
			}
		}
	}
}
