package platformer

import "github.com/vovakirdan/tui-platformer/internal/config"

// Player is the user-controlled character.
type Player struct {
	Body

	VelY  float64 // Vertical velocity, negative is up
	Frame int     // Walk animation frame

	// Jump charge pool
	JumpRequested     bool
	Cooldown          int // Grounded ticks counted toward a refill
	CooldownThreshold int
	Charges           int
	MaxCharges        int

	FireReady bool // Cleared on fire, restored when the fire zone is released

	// Position at the end of the previous tick, used to tell how a collision was approached
	PrevX int
	PrevY float64

	tuning playerTuning
}

type playerTuning struct {
	gravity     float64
	jumpImpulse float64
	moveStep    int
	frames      int
	fireFront   float64
	fireBack    float64
	fireHeight  float64
}

// NewPlayer creates a player at the configured spawn point with a full charge pool.
func NewPlayer(cfg config.PlayerConfig, physics config.PhysicsConfig) *Player {
	return &Player{
		Body: Body{
			X:      cfg.X,
			Y:      float64(cfg.Y),
			W:      cfg.Width,
			H:      cfg.Height,
			Facing: FacingRight,
		},
		CooldownThreshold: cfg.JumpCooldown,
		Charges:           cfg.JumpCharges,
		MaxCharges:        cfg.JumpCharges,
		FireReady:         true,
		PrevX:             cfg.X,
		PrevY:             float64(cfg.Y),
		tuning: playerTuning{
			gravity:     physics.Gravity,
			jumpImpulse: cfg.JumpImpulse,
			moveStep:    cfg.MoveStep,
			frames:      cfg.AnimationFrames,
			fireFront:   cfg.FireFront,
			fireBack:    cfg.FireBack,
			fireHeight:  cfg.FireHeight,
		},
	}
}

// Kind returns KindPlayer.
func (*Player) Kind() Kind { return KindPlayer }
func (*Player) isEntity()  {}

// canJump reports whether a jump impulse applies this tick.
// Holding the jump zone spends one charge per tick while rising; a falling
// player cannot start a jump.
func (p *Player) canJump() bool {
	return p.JumpRequested &&
		p.Cooldown == p.CooldownThreshold &&
		p.Charges > 0 &&
		p.VelY <= 0
}

func (p *Player) update(ctx *Context) {
	if p.canJump() {
		p.VelY = -p.tuning.jumpImpulse
		p.Charges--
		p.Y += p.VelY
	} else {
		fall(&p.Body, &p.VelY, ctx.Ground(), p.tuning.gravity)
	}

	// Refill the pool once the cooldown has elapsed and the jump zone is released
	if !p.JumpRequested && p.Charges < p.MaxCharges && p.Cooldown == p.CooldownThreshold {
		p.Cooldown = 0
		p.Charges = p.MaxCharges
	}

	for other := range ctx.Live() {
		if ob, ok := other.(*Obstacle); ok && Collides(&p.Body, &ob.Body) {
			p.resolve(ctx, ob)
		}
	}

	// Reset before increment, so a saturated counter cannot block the next jump
	if p.VelY == 0 {
		if p.Cooldown == p.CooldownThreshold {
			p.Cooldown = 0
		}
		if p.Cooldown < p.CooldownThreshold {
			p.Cooldown++
		}
	}

	p.PrevX = p.X
	p.PrevY = p.Y
}

// resolve pushes the player out of an obstacle along the axis it came from.
// Side corrections shift the camera by the same amount so the player does not
// move on screen.
func (p *Player) resolve(ctx *Context, ob *Obstacle) {
	if p.PrevY+float64(p.H) < ob.Y {
		p.Y = ob.Y - float64(p.H) - 1
		p.VelY = 0
		return
	}

	before := p.X
	if p.PrevX > ob.Right() {
		p.X = ob.Right() + 1
	} else {
		p.X = ob.X - p.W - 1
	}
	ctx.Scroll(p.X - before)
}

// walk moves the player one step and scrolls the camera with it.
func (p *Player) walk(ctx *Context, dir Facing) {
	step := p.tuning.moveStep * dir.Sign()
	p.X += step
	p.Frame = (p.Frame + 1) % p.tuning.frames
	p.Facing = dir
	ctx.Scroll(step)
}

// fire launches a projectile in front of the player.
func (p *Player) fire(ctx *Context) {
	y := p.Y + float64(int(float64(p.H)*p.tuning.fireHeight))
	x := p.X + int(float64(p.W)*p.tuning.fireFront)
	if p.Facing == FacingLeft {
		x = p.X - int(float64(p.W)*p.tuning.fireBack)
	}
	ctx.Spawn(ctx.world.newProjectile(x, y, p.Facing))
}

// Grounded reports whether the player is resting (zero vertical velocity).
func (p *Player) Grounded() bool {
	return p.VelY == 0
}
