package platformer

import (
	"fmt"
	"iter"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// World owns every entity, the ground line and the camera scroll offset.
//
// Entities are kept in insertion order, which is also draw order. During a
// tick the entity slice is never reordered: removals only set a flag, and new
// entities wait in a pending list. Both are applied once the tick finishes.
type World struct {
	cfg      config.Config
	entities []Entity
	pending  []Entity
	player   *Player
	ground   int
	scroll   int
	visible  int // Width shown by the host in world units, 0 when headless
	tick     uint64
	defeated int
}

// NewWorld builds a world with the player first, followed by the layout's
// obstacles and enemies.
func NewWorld(cfg config.Config, layout registry.Layout) *World {
	w := &World{
		cfg:    cfg,
		ground: cfg.World.Ground,
	}

	w.player = NewPlayer(cfg.Player, cfg.Physics)
	w.entities = append(w.entities, w.player)

	for _, pt := range layout.Obstacles {
		w.entities = append(w.entities, NewObstacle(pt.X, pt.Y, cfg.Obstacle.Width, cfg.Obstacle.Height))
	}
	for _, sp := range layout.Enemies {
		facing := FacingLeft
		if sp.Facing == registry.FacingRight {
			facing = FacingRight
		}
		w.entities = append(w.entities, NewEnemy(sp.X, sp.Y, facing, cfg.Enemy, cfg.Physics))
	}

	return w
}

// Player returns the single player entity.
func (w *World) Player() *Player {
	return w.player
}

// Entities returns the entities in draw order. The slice must not be modified.
func (w *World) Entities() []Entity {
	return w.entities
}

// Ground returns the y-coordinate of the top of the terrain.
func (w *World) Ground() int {
	return w.ground
}

// Scroll returns the camera offset: screen x = world x - scroll.
func (w *World) Scroll() int {
	return w.scroll
}

// SetVisibleWidth records how many world units the host currently displays.
// The camera window is never narrower than the configured view width.
func (w *World) SetVisibleWidth(units int) {
	w.visible = max(units, 0)
}

// ViewWidth returns the camera window width in world units.
func (w *World) ViewWidth() int {
	return max(w.cfg.World.ViewWidth, w.visible)
}

// Tick returns the number of completed ticks.
func (w *World) Tick() uint64 {
	return w.tick
}

// Defeated returns how many enemies have been removed after a hit.
func (w *World) Defeated() int {
	return w.defeated
}

// Count returns the number of entities of the given kind.
func (w *World) Count(k Kind) int {
	n := 0
	for _, e := range w.entities {
		if e.Kind() == k {
			n++
		}
	}
	return n
}

// Step advances the world by one tick: input is applied to the player, then
// every live entity updates in insertion order.
func (w *World) Step(in core.InputFrame) {
	ctx := &Context{world: w, live: w.entities}

	w.applyInput(ctx, in)

	for _, e := range ctx.live {
		if e.Base().Removed() {
			continue
		}
		switch e := e.(type) {
		case *Player:
			e.update(ctx)
		case *Enemy:
			e.update(ctx)
		case *Projectile:
			e.update(ctx)
		case *Obstacle:
			// static
		default:
			panic(fmt.Sprintf("platformer: unknown entity type %T", e))
		}
	}

	w.compact()
	w.entities = append(w.entities, w.pending...)
	clear(w.pending)
	w.pending = w.pending[:0]
	w.tick++
}

// applyInput turns the tick's action flags into player movement, jump intent and fire.
func (w *World) applyInput(ctx *Context, in core.InputFrame) {
	p := w.player

	switch {
	case in.Has(core.ActionMoveRight):
		p.walk(ctx, FacingRight)
	case in.Has(core.ActionMoveLeft):
		p.walk(ctx, FacingLeft)
	}

	p.JumpRequested = in.Has(core.ActionJump)

	// One projectile per press: the zone must be released before firing again
	if in.Has(core.ActionFire) {
		if p.FireReady {
			p.fire(ctx)
			p.FireReady = false
		}
	} else {
		p.FireReady = true
	}
}

// compact drops entities marked for removal, preserving order.
func (w *World) compact() {
	kept := w.entities[:0]
	for _, e := range w.entities {
		if !e.Base().Removed() {
			kept = append(kept, e)
			continue
		}
		if en, ok := e.(*Enemy); ok && en.Dying {
			w.defeated++
		}
	}
	clear(w.entities[len(kept):])
	w.entities = kept
}

func (w *World) newProjectile(x int, y float64, facing Facing) *Projectile {
	return newProjectile(x, y, facing, w.cfg.Projectile, w.cfg.Physics)
}

// Context is handed to each entity update. It gives read access to the
// entities that were present when the tick began and a narrow channel for
// changing the world: spawning, removal and camera scroll.
//
// An update may only remove itself or an entity it collided with this tick.
type Context struct {
	world *World
	live  []Entity
}

// Ground returns the ground line.
func (c *Context) Ground() int {
	return c.world.ground
}

// Camera returns the visible world range [left, right].
func (c *Context) Camera() (left, right int) {
	return c.world.scroll, c.world.scroll + c.world.ViewWidth()
}

// Live iterates the tick's entities that are not marked for removal.
func (c *Context) Live() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, e := range c.live {
			if e.Base().Removed() {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Spawn queues an entity. It joins the world after the current tick and is
// first updated on the next one.
func (c *Context) Spawn(e Entity) {
	c.world.pending = append(c.world.pending, e)
}

// Remove marks an entity for removal. The player cannot be removed.
func (c *Context) Remove(e Entity) {
	if e.Kind() == KindPlayer {
		return
	}
	e.Base().removed = true
}

// Scroll shifts the camera offset by dx.
func (c *Context) Scroll(dx int) {
	c.world.scroll += dx
}
