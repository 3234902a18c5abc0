package platformer

import "github.com/vovakirdan/tui-platformer/internal/registry"

// level is a static layout expressed relative to the ground line.
type level struct {
	id, title string
	obstacles []registry.Point // Y is height of the top edge above ground
	enemies   []registry.EnemySpawn
}

func (l *level) ID() string    { return l.id }
func (l *level) Title() string { return l.title }

func (l *level) Layout(ground int) registry.Layout {
	out := registry.Layout{
		Obstacles: make([]registry.Point, len(l.obstacles)),
		Enemies:   make([]registry.EnemySpawn, len(l.enemies)),
	}
	for i, o := range l.obstacles {
		out.Obstacles[i] = registry.Point{X: o.X, Y: ground - o.Y}
	}
	for i, e := range l.enemies {
		out.Enemies[i] = registry.EnemySpawn{
			Point:  registry.Point{X: e.X, Y: ground - e.Y},
			Facing: e.Facing,
		}
	}
	return out
}

// Levels shipped with the game.
var levels = []*level{
	{
		id:    "classic",
		title: "Classic",
		obstacles: []registry.Point{
			{X: 100, Y: 400},
			{X: 1100, Y: 300},
			{X: 1700, Y: 600},
		},
		enemies: []registry.EnemySpawn{
			{Point: registry.Point{X: 1400, Y: 450}, Facing: registry.FacingLeft},
			{Point: registry.Point{X: 1500, Y: 450}, Facing: registry.FacingLeft},
			{Point: registry.Point{X: 500, Y: 450}, Facing: registry.FacingLeft},
			{Point: registry.Point{X: 1600, Y: 450}, Facing: registry.FacingLeft},
		},
	},
	{
		id:    "flat",
		title: "Flatlands",
		enemies: []registry.EnemySpawn{
			{Point: registry.Point{X: 1200, Y: 60}, Facing: registry.FacingLeft},
			{Point: registry.Point{X: 2200, Y: 60}, Facing: registry.FacingLeft},
		},
	},
	{
		id:    "pipes",
		title: "Pipe Run",
		obstacles: []registry.Point{
			{X: 100, Y: 400},
			{X: 1000, Y: 250},
			{X: 1800, Y: 400},
			{X: 2600, Y: 250},
			{X: 3400, Y: 400},
		},
		enemies: []registry.EnemySpawn{
			{Point: registry.Point{X: 1400, Y: 60}, Facing: registry.FacingLeft},
			{Point: registry.Point{X: 2200, Y: 60}, Facing: registry.FacingRight},
			{Point: registry.Point{X: 3000, Y: 60}, Facing: registry.FacingLeft},
		},
	},
}

func init() {
	for _, l := range levels {
		registry.Register(l.id, func() registry.Level { return l })
	}
}
