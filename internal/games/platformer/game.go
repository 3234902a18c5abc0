package platformer

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Game wraps a World built from a registered level.
// It is driven by a single goroutine: Step and Render must not run concurrently.
type Game struct {
	cfg      config.Config
	level    registry.Level
	world    *World
	renderer *Renderer
}

// New creates a game for the level named in cfg.World.Level.
func New(cfg config.Config) (*Game, error) {
	level, err := registry.Create(cfg.World.Level)
	if err != nil {
		return nil, fmt.Errorf("platformer: %w", err)
	}

	g := &Game{
		cfg:      cfg,
		level:    level,
		renderer: NewRenderer(cfg),
	}
	g.Reset()
	return g, nil
}

// ID returns the level identifier.
func (g *Game) ID() string {
	return g.level.ID()
}

// Title returns the level display name.
func (g *Game) Title() string {
	return g.level.Title()
}

// Reset rebuilds the world from the level layout.
func (g *Game) Reset() {
	g.world = NewWorld(g.cfg, g.level.Layout(g.cfg.World.Ground))
}

// World exposes the simulated world for inspection.
func (g *Game) World() *World {
	return g.world
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.world.Step(in)
	return core.StepResult{State: g.State()}
}

// Render draws the current world to the screen. The screen width also
// becomes the camera window used by later ticks.
func (g *Game) Render(dst *core.Screen) {
	g.world.SetVisibleWidth(g.renderer.VisibleWidth(dst))
	g.renderer.Draw(dst, g.world)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Tick:        g.world.Tick(),
		Defeated:    g.world.Defeated(),
		Projectiles: g.world.Count(KindProjectile),
		Charges:     g.world.Player().Charges,
	}
}
