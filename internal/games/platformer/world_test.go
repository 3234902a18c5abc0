package platformer

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// groundedConfig starts the player resting on the ground.
func groundedConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Player.Y = cfg.World.Ground - cfg.Player.Height
	return cfg
}

func TestFirstTickAppliesGravity(t *testing.T) {
	cfg := config.DefaultConfig()
	w := NewWorld(cfg, registry.Layout{})
	p := w.Player()

	w.Step(frame())

	if d := p.Y - 200; math.Abs(d-1.4) > 1e-9 {
		t.Errorf("Player.Y moved by %v, want 1.4", d)
	}
	if p.X != 500 {
		t.Errorf("Player.X = %d, want 500", p.X)
	}
	if w.Scroll() != 0 {
		t.Errorf("Scroll = %d, want 0", w.Scroll())
	}
	if p.Charges != cfg.Player.JumpCharges {
		t.Errorf("Charges = %d, want %d", p.Charges, cfg.Player.JumpCharges)
	}
	if w.Tick() != 1 {
		t.Errorf("Tick = %d, want 1", w.Tick())
	}
}

func TestWalkRightScrollsAndAnimates(t *testing.T) {
	w := NewWorld(config.DefaultConfig(), registry.Layout{})
	p := w.Player()

	var frames []int
	for range 5 {
		frames = append(frames, p.Frame)
		w.Step(frame(core.ActionMoveRight))
	}

	if p.X != 590 {
		t.Errorf("Player.X = %d, want 590", p.X)
	}
	if w.Scroll() != 90 {
		t.Errorf("Scroll = %d, want 90", w.Scroll())
	}
	want := []int{0, 1, 2, 3, 4}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("frames = %v, want %v", frames, want)
		}
	}
	if p.Frame != 0 {
		t.Errorf("frame after five steps = %d, want 0 (wrapped)", p.Frame)
	}
	if p.Facing != FacingRight {
		t.Errorf("Facing = %v, want right", p.Facing)
	}
}

func TestMoveRightWinsOverMoveLeft(t *testing.T) {
	w := NewWorld(config.DefaultConfig(), registry.Layout{})
	w.Step(frame(core.ActionMoveLeft, core.ActionMoveRight))

	if w.Player().X != 518 {
		t.Errorf("Player.X = %d, want 518", w.Player().X)
	}
}

func TestOpposedEnemiesMoveSymmetrically(t *testing.T) {
	cfg := config.DefaultConfig()
	y := cfg.World.Ground - cfg.Enemy.Height
	layout := registry.Layout{
		Enemies: []registry.EnemySpawn{
			{Point: registry.Point{X: 1000, Y: y}, Facing: registry.FacingLeft},
			{Point: registry.Point{X: 1000, Y: y}, Facing: registry.FacingRight},
		},
	}
	w := NewWorld(cfg, layout)

	var enemies []*Enemy
	for _, e := range w.Entities() {
		if en, ok := e.(*Enemy); ok {
			enemies = append(enemies, en)
		}
	}
	if len(enemies) != 2 {
		t.Fatalf("got %d enemies, want 2", len(enemies))
	}

	const n = 30
	for range n {
		w.Step(frame())
	}

	left := enemies[0].X - 1000
	right := enemies[1].X - 1000
	if left != -right || left == 0 {
		t.Errorf("displacements %d and %d are not opposite", left, right)
	}
	if right != n*cfg.Enemy.Step {
		t.Errorf("displacement = %d, want %d", right, n*cfg.Enemy.Step)
	}
}

func TestEnemyTurnsAtObstacle(t *testing.T) {
	cfg := config.DefaultConfig()
	g := cfg.World.Ground
	layout := registry.Layout{
		Obstacles: []registry.Point{{X: 800, Y: g - cfg.Obstacle.Height}},
		Enemies: []registry.EnemySpawn{
			{Point: registry.Point{X: 1000, Y: g - cfg.Enemy.Height}, Facing: registry.FacingLeft},
		},
	}
	w := NewWorld(cfg, layout)
	en := w.Entities()[2].(*Enemy)

	for range 20 {
		w.Step(frame())
	}

	if en.Facing != FacingRight {
		t.Errorf("enemy facing %v after reaching obstacle, want right", en.Facing)
	}
	if en.X <= 800+cfg.Obstacle.Width-cfg.Enemy.Step {
		t.Errorf("enemy X = %d, walked into obstacle", en.X)
	}
}

func TestEnemyDiesEightTicksAfterHit(t *testing.T) {
	cfg := config.DefaultConfig()
	g := cfg.World.Ground
	layout := registry.Layout{
		Enemies: []registry.EnemySpawn{
			{Point: registry.Point{X: 1000, Y: g - cfg.Enemy.Height}, Facing: registry.FacingLeft},
		},
	}
	w := NewWorld(cfg, layout)
	en := w.Entities()[1].(*Enemy)

	// Place a resting projectile where the enemy steps on the first tick
	pr := w.newProjectile(990, float64(g-cfg.Projectile.Height), FacingRight)
	w.entities = append(w.entities, pr)

	w.Step(frame())
	if !en.Dying {
		t.Fatal("enemy not dying after projectile hit")
	}
	if w.Count(KindProjectile) != 0 {
		t.Error("projectile not consumed by hit")
	}
	hitX := en.X

	for i := 1; i < cfg.Enemy.DeathTicks; i++ {
		w.Step(frame())
		if w.Count(KindEnemy) != 1 {
			t.Fatalf("enemy removed %d ticks after hit, want %d", i, cfg.Enemy.DeathTicks)
		}
		if !en.Dying {
			t.Fatal("dying flag reverted")
		}
		if en.X != hitX {
			t.Fatalf("dying enemy moved from %d to %d", hitX, en.X)
		}
	}

	w.Step(frame())
	if w.Count(KindEnemy) != 0 {
		t.Errorf("enemy still present %d ticks after hit", cfg.Enemy.DeathTicks)
	}
	if !en.Dying {
		t.Error("dying flag reverted on removal")
	}
	if w.Defeated() != 1 {
		t.Errorf("Defeated = %d, want 1", w.Defeated())
	}
}

func TestJumpChargesStayInBounds(t *testing.T) {
	cfg := groundedConfig()
	w := NewWorld(cfg, registry.Layout{})
	p := w.Player()
	maxCharges := cfg.Player.JumpCharges

	jumps := 0
	for i := range 400 {
		// Hold for a while, release, repeat
		in := frame()
		if i%60 < 40 {
			in = frame(core.ActionJump)
		}

		before := p.Charges
		w.Step(in)

		if p.Charges < 0 || p.Charges > maxCharges {
			t.Fatalf("tick %d: charges %d out of [0,%d]", i, p.Charges, maxCharges)
		}
		if p.Charges < before {
			if before-p.Charges != 1 {
				t.Fatalf("tick %d: jump spent %d charges", i, before-p.Charges)
			}
			if p.VelY != -cfg.Player.JumpImpulse {
				t.Fatalf("tick %d: VelY = %v after jump", i, p.VelY)
			}
			jumps++
		}
	}

	if jumps < maxCharges {
		t.Errorf("only %d jumps happened", jumps)
	}
}

func TestJumpNeedsCooldown(t *testing.T) {
	w := NewWorld(groundedConfig(), registry.Layout{})
	p := w.Player()

	// Cooldown starts at zero; it fills one step per grounded tick
	for i := range p.CooldownThreshold {
		w.Step(frame(core.ActionJump))
		if p.Charges != p.MaxCharges {
			t.Fatalf("jumped on tick %d before cooldown elapsed", i)
		}
	}

	w.Step(frame(core.ActionJump))
	if p.Charges != p.MaxCharges-1 {
		t.Errorf("Charges = %d, want %d", p.Charges, p.MaxCharges-1)
	}
}

func TestSideCorrectionKeepsScreenPosition(t *testing.T) {
	tests := []struct {
		name     string
		obstacle int
		move     core.Action
		wantX    int
	}{
		{"approach from left", 600, core.ActionMoveRight, 600 - 60 - 1},
		{"approach from right", 300, core.ActionMoveLeft, 300 + 110 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := groundedConfig()
			g := cfg.World.Ground
			layout := registry.Layout{
				Obstacles: []registry.Point{{X: tt.obstacle, Y: g - cfg.Obstacle.Height}},
			}
			w := NewWorld(cfg, layout)
			p := w.Player()

			for i := range 10 {
				screenX := p.X - w.Scroll()
				w.Step(frame(tt.move))
				if got := p.X - w.Scroll(); got != screenX {
					t.Fatalf("step %d: screen x %d -> %d", i, screenX, got)
				}
			}

			if p.X != tt.wantX {
				t.Errorf("Player.X = %d, want %d", p.X, tt.wantX)
			}
		})
	}
}

func TestLandingOnObstacle(t *testing.T) {
	cfg := config.DefaultConfig()
	g := cfg.World.Ground
	top := g - cfg.Obstacle.Height
	layout := registry.Layout{
		Obstacles: []registry.Point{{X: 480, Y: top}},
	}
	w := NewWorld(cfg, layout)
	p := w.Player()

	for range 100 {
		w.Step(frame())
	}

	want := float64(top - cfg.Player.Height - 1)
	if p.Y > want+cfg.Physics.Gravity || p.Y < want {
		t.Errorf("Player.Y = %v, want resting near %v", p.Y, want)
	}
	if p.X != cfg.Player.X {
		t.Errorf("Player.X = %d, landing changed x", p.X)
	}
}

func TestProjectileBounceIsLossless(t *testing.T) {
	cfg := config.DefaultConfig()
	w := NewWorld(cfg, registry.Layout{})
	pr := w.newProjectile(500, 700, FacingRight)
	w.entities = append(w.entities, pr)

	ground := float64(cfg.World.Ground)
	bounces := 0
	for range 60 {
		before := pr.VelY
		airborne := pr.Bottom() < ground
		w.Step(frame())

		if before >= 0 && pr.VelY < 0 {
			want := before
			if airborne {
				want += cfg.Physics.ProjectileGravity
			}
			if pr.VelY != -want {
				t.Fatalf("bounce velocity %v, want %v", pr.VelY, -want)
			}
			if pr.Bottom() != ground {
				t.Fatalf("bounce left projectile at bottom %v", pr.Bottom())
			}
			bounces++
		}
	}

	if bounces < 2 {
		t.Errorf("observed %d bounces, want at least 2", bounces)
	}
}

func TestFireIsEdgeTriggered(t *testing.T) {
	w := NewWorld(groundedConfig(), registry.Layout{})

	for range 10 {
		w.Step(frame(core.ActionFire))
	}
	if n := w.Count(KindProjectile); n != 1 {
		t.Fatalf("held fire produced %d projectiles, want 1", n)
	}

	w.Step(frame())
	w.Step(frame(core.ActionFire))
	if n := w.Count(KindProjectile); n != 2 {
		t.Errorf("second press produced %d projectiles total, want 2", n)
	}
}

func TestSpawnIsDeferred(t *testing.T) {
	cfg := config.DefaultConfig()
	w := NewWorld(cfg, registry.Layout{})

	w.Step(frame(core.ActionFire))

	var pr *Projectile
	for _, e := range w.Entities() {
		if p, ok := e.(*Projectile); ok {
			pr = p
		}
	}
	if pr == nil {
		t.Fatal("no projectile after fire")
	}

	wantX := cfg.Player.X + int(float64(cfg.Player.Width)*cfg.Player.FireFront)
	wantY := float64(cfg.Player.Y + int(float64(cfg.Player.Height)*cfg.Player.FireHeight))
	if pr.X != wantX || pr.Y != wantY {
		t.Fatalf("projectile at (%d,%v), want unmoved spawn (%d,%v)", pr.X, pr.Y, wantX, wantY)
	}

	w.Step(frame())
	if pr.X != wantX+cfg.Projectile.Speed {
		t.Errorf("projectile X = %d after first update, want %d", pr.X, wantX+cfg.Projectile.Speed)
	}
}

func TestFireLeftSpawnsBehind(t *testing.T) {
	cfg := groundedConfig()
	w := NewWorld(cfg, registry.Layout{})

	w.Step(frame(core.ActionMoveLeft))
	x := w.Player().X
	w.Step(frame(core.ActionFire))

	for _, e := range w.Entities() {
		if pr, ok := e.(*Projectile); ok {
			want := x - int(float64(cfg.Player.Width)*cfg.Player.FireBack)
			if pr.X != want || pr.Facing != FacingLeft {
				t.Errorf("projectile x=%d facing=%v, want x=%d facing=left", pr.X, pr.Facing, want)
			}
			return
		}
	}
	t.Fatal("no projectile after fire")
}

func TestProjectileDespawnsOffCamera(t *testing.T) {
	cfg := groundedConfig()
	w := NewWorld(cfg, registry.Layout{})

	w.Step(frame(core.ActionFire))
	if w.Count(KindProjectile) != 1 {
		t.Fatal("no projectile after fire")
	}

	// Camera stays at scroll 0, so the far edge is view width plus margin
	limit := cfg.World.ViewWidth + cfg.Projectile.DespawnMargin
	ticks := (limit-cfg.Player.X)/cfg.Projectile.Speed + 2

	for range ticks {
		w.Step(frame())
	}
	if n := w.Count(KindProjectile); n != 0 {
		t.Errorf("%d projectiles remain far outside the camera", n)
	}
}

func TestVisibleWidthWidensCamera(t *testing.T) {
	cfg := groundedConfig()
	w := NewWorld(cfg, registry.Layout{})

	w.SetVisibleWidth(100)
	if got := w.ViewWidth(); got != cfg.World.ViewWidth {
		t.Fatalf("ViewWidth = %d, want configured %d for a narrow screen", got, cfg.World.ViewWidth)
	}

	w.SetVisibleWidth(4000)
	if got := w.ViewWidth(); got != 4000 {
		t.Fatalf("ViewWidth = %d, want 4000", got)
	}

	w.Step(frame(core.ActionFire))
	narrowLimit := cfg.World.ViewWidth + cfg.Projectile.DespawnMargin
	for range (narrowLimit-cfg.Player.X)/cfg.Projectile.Speed + 4 {
		w.Step(frame())
	}
	if w.Count(KindProjectile) != 1 {
		t.Fatal("projectile removed while inside the widened camera")
	}
}

func TestPlayerCannotBeRemoved(t *testing.T) {
	w := NewWorld(config.DefaultConfig(), registry.Layout{})
	ctx := &Context{world: w, live: w.entities}

	ctx.Remove(w.Player())
	w.Step(frame())

	if w.Count(KindPlayer) != 1 || w.Player().Removed() {
		t.Error("player was removed")
	}
}

func TestExactlyOnePlayer(t *testing.T) {
	lvl, err := registry.Create("classic")
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	w := NewWorld(cfg, lvl.Layout(cfg.World.Ground))

	script := []core.InputFrame{
		frame(core.ActionMoveRight),
		frame(core.ActionMoveRight, core.ActionFire),
		frame(core.ActionJump),
		frame(core.ActionMoveLeft, core.ActionJump),
		frame(),
		frame(core.ActionFire),
	}
	for i := range 1000 {
		w.Step(script[(i/7)%len(script)])
		if n := w.Count(KindPlayer); n != 1 {
			t.Fatalf("tick %d: %d players", i, n)
		}
		if w.Entities()[0] != Entity(w.Player()) {
			t.Fatalf("tick %d: player is not first in draw order", i)
		}
	}
}
