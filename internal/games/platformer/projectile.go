package platformer

import "github.com/vovakirdan/tui-platformer/internal/config"

// Projectile flies at a constant horizontal speed and bounces on the ground without losing energy.
type Projectile struct {
	Body

	VelY float64

	speed         int // Fixed at spawn
	gravity       float64
	despawnMargin int
}

func newProjectile(x int, y float64, facing Facing, cfg config.ProjectileConfig, physics config.PhysicsConfig) *Projectile {
	return &Projectile{
		Body: Body{
			X:      x,
			Y:      y,
			W:      cfg.Width,
			H:      cfg.Height,
			Facing: facing,
		},
		speed:         cfg.Speed,
		gravity:       physics.ProjectileGravity,
		despawnMargin: cfg.DespawnMargin,
	}
}

// Kind returns KindProjectile.
func (*Projectile) Kind() Kind { return KindProjectile }
func (*Projectile) isEntity()  {}

func (p *Projectile) update(ctx *Context) {
	p.X += p.speed * p.Facing.Sign()

	ground := float64(ctx.Ground())
	if p.Bottom() < ground {
		p.VelY += p.gravity
	}
	p.Y += p.VelY

	if p.Bottom() > ground {
		p.Y = ground - float64(p.H)
		p.VelY = -p.VelY
	}

	left, right := ctx.Camera()
	if p.Right() < left-p.despawnMargin || p.X > right+p.despawnMargin {
		ctx.Remove(p)
	}
}
