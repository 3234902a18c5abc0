package platformer

// Snapshot is a plain-data copy of the world after a tick.
// It shares no memory with the World and is safe to encode or compare.
type Snapshot struct {
	Level    string           `yaml:"level"`
	Tick     uint64           `yaml:"tick"`
	Ground   int              `yaml:"ground"`
	Scroll   int              `yaml:"scroll"`
	Defeated int              `yaml:"defeated"`
	Player   PlayerSnapshot   `yaml:"player"`
	Entities []EntitySnapshot `yaml:"entities"` // Draw order, player included
}

// PlayerSnapshot holds the player's state machine fields.
type PlayerSnapshot struct {
	X         int     `yaml:"x"`
	Y         float64 `yaml:"y"`
	VelY      float64 `yaml:"vel_y"`
	Facing    string  `yaml:"facing"`
	Frame     int     `yaml:"frame"`
	Charges   int     `yaml:"charges"`
	Cooldown  int     `yaml:"cooldown"`
	FireReady bool    `yaml:"fire_ready"`
}

// EntitySnapshot is the shared geometry of one entity.
type EntitySnapshot struct {
	Kind   string  `yaml:"kind"`
	X      int     `yaml:"x"`
	Y      float64 `yaml:"y"`
	W      int     `yaml:"w"`
	H      int     `yaml:"h"`
	Facing string  `yaml:"facing"`
	Dying  bool    `yaml:"dying,omitempty"`
}

// Snapshot returns the current state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := g.world.Snapshot()
	snap.Level = g.level.ID()
	return snap
}

// Snapshot copies the world state. Level is left empty.
func (w *World) Snapshot() Snapshot {
	p := w.player
	snap := Snapshot{
		Tick:     w.tick,
		Ground:   w.ground,
		Scroll:   w.scroll,
		Defeated: w.defeated,
		Player: PlayerSnapshot{
			X:         p.X,
			Y:         p.Y,
			VelY:      p.VelY,
			Facing:    p.Facing.String(),
			Frame:     p.Frame,
			Charges:   p.Charges,
			Cooldown:  p.Cooldown,
			FireReady: p.FireReady,
		},
		Entities: make([]EntitySnapshot, 0, len(w.entities)),
	}

	for _, e := range w.entities {
		b := e.Base()
		es := EntitySnapshot{
			Kind:   e.Kind().String(),
			X:      b.X,
			Y:      b.Y,
			W:      b.W,
			H:      b.H,
			Facing: b.Facing.String(),
		}
		if en, ok := e.(*Enemy); ok {
			es.Dying = en.Dying
		}
		snap.Entities = append(snap.Entities, es)
	}

	return snap
}
