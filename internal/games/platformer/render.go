package platformer

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar     = '█'
	PlayerLegA     = '╱'
	PlayerLegB     = '╲'
	EnemyChar      = '▓'
	EnemyFlatChar  = '▂'
	ProjectileChar = '●'
	ObstacleChar   = '▒'
	GroundTopChar  = '▀'
	GroundChar     = '░'
	GroundMarkChar = '▞'
)

// Renderer projects the world onto a terminal screen.
// World x maps to columns relative to the camera scroll offset; the ground
// line is pinned two rows above the bottom edge.
type Renderer struct {
	unitsPerCol int
	unitsPerRow int
	maxCharges  int
	cooldown    int
	showZones   bool
	controls    []control
}

// control is an on-screen touch zone label.
type control struct {
	zone  config.Zone
	label string
}

// NewRenderer creates a renderer for the given configuration.
func NewRenderer(cfg config.Config) *Renderer {
	r := &Renderer{
		unitsPerCol: cfg.Render.UnitsPerCol,
		unitsPerRow: cfg.Render.UnitsPerRow,
		maxCharges:  cfg.Player.JumpCharges,
		cooldown:    cfg.Player.JumpCooldown,
		showZones:   cfg.Render.ShowZones,
	}

	r.controls = append(r.controls,
		control{zone: cfg.Input.MoveLeft, label: "◀"},
		control{zone: cfg.Input.MoveRight, label: "▶"},
	)
	for _, z := range cfg.Input.Jump {
		r.controls = append(r.controls, control{zone: z, label: "JUMP"})
	}
	for _, z := range cfg.Input.Fire {
		r.controls = append(r.controls, control{zone: z, label: "FIRE"})
	}

	return r
}

// VisibleWidth returns how many world units fit across dst.
func (r *Renderer) VisibleWidth(dst *core.Screen) int {
	return dst.Width() * r.unitsPerCol
}

// Draw renders background, terrain, controls, entities and HUD, in that order.
func (r *Renderer) Draw(dst *core.Screen, w *World) {
	dst.Clear()

	groundRow := core.Max(dst.Height()-2, 1)
	r.drawGround(dst, w, groundRow)

	if r.showZones {
		r.drawControls(dst)
	}

	for _, e := range w.Entities() {
		cell := r.project(e.Base(), w, groundRow)
		switch e := e.(type) {
		case *Obstacle:
			drawObstacle(dst, cell)
		case *Enemy:
			drawEnemy(dst, cell, e)
		case *Projectile:
			drawProjectile(dst, cell)
		case *Player:
			drawPlayer(dst, cell, e)
		}
	}

	r.drawHUD(dst, w)
}

// project converts a body to a screen rectangle of at least one cell.
func (r *Renderer) project(b *Body, w *World, groundRow int) core.Rect {
	x0 := core.FloorDiv(b.X-w.Scroll(), r.unitsPerCol)
	x1 := core.CeilDiv(b.Right()-w.Scroll(), r.unitsPerCol)
	y0 := groundRow + core.FloorDiv(int(b.Y)-w.Ground(), r.unitsPerRow)
	y1 := groundRow + core.CeilDiv(int(b.Bottom())-w.Ground(), r.unitsPerRow)
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func (r *Renderer) drawGround(dst *core.Screen, w *World, groundRow int) {
	dst.DrawHLine(0, groundRow, dst.Width(), GroundTopChar, core.ColorBrown)

	// Texture moves with the camera so walking reads as motion
	offset := core.FloorDiv(w.Scroll(), r.unitsPerCol)
	for y := groundRow + 1; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			ch := GroundChar
			if (x+offset)%6 == 0 {
				ch = GroundMarkChar
			}
			dst.SetColored(x, y, ch, core.ColorBrown)
		}
	}
}

func (r *Renderer) drawControls(dst *core.Screen) {
	w, h := float64(dst.Width()), float64(dst.Height())
	for _, c := range r.controls {
		cx := int((c.zone.MinX + c.zone.MaxX) / 2 * w)
		cy := int((c.zone.MinY + c.zone.MaxY) / 2 * h)
		n := len([]rune(c.label))
		dst.DrawTextColored(cx-n/2, cy, c.label, core.ColorGray)
	}
}

func drawObstacle(dst *core.Screen, cell core.Rect) {
	dst.DrawRect(cell, ObstacleChar, core.ColorGreen)
	if cell.W > 1 && cell.H > 1 {
		dst.DrawBox(cell, core.ColorBrightGreen)
	}
}

func drawEnemy(dst *core.Screen, cell core.Rect, e *Enemy) {
	if e.Dying {
		dst.DrawHLine(cell.X, cell.Bottom()-1, cell.W, EnemyFlatChar, core.ColorGray)
		return
	}

	dst.DrawRect(cell, EnemyChar, core.ColorBrown)
	eye := cell.X
	if e.Facing == FacingRight {
		eye = cell.Right() - 1
	}
	dst.SetColored(eye, cell.Y, '•', core.ColorWhite)
}

func drawProjectile(dst *core.Screen, cell core.Rect) {
	cx, cy := cell.Center()
	dst.SetColored(cx, cy, ProjectileChar, core.ColorOrange)
}

func drawPlayer(dst *core.Screen, cell core.Rect, p *Player) {
	dst.DrawRect(cell, PlayerChar, core.ColorRed)

	head := '▶'
	front := cell.Right() - 1
	if p.Facing == FacingLeft {
		head = '◀'
		front = cell.X
	}
	dst.SetColored(front, cell.Y, head, core.ColorYellow)

	if cell.H < 2 {
		return
	}

	// Legs alternate with the walk animation frame; tucked while airborne
	legs := cell.Bottom() - 1
	for x := cell.X; x < cell.Right(); x++ {
		ch := PlayerLegA
		if (x-cell.X+p.Frame)%2 == 1 {
			ch = PlayerLegB
		}
		if !p.Grounded() {
			ch = '▄'
		}
		dst.SetColored(x, legs, ch, core.ColorBlue)
	}
}

func (r *Renderer) drawHUD(dst *core.Screen, w *World) {
	p := w.Player()
	hud := fmt.Sprintf(" Jumps: %d/%d  Cooldown: %d/%d  Defeated: %d ",
		p.Charges, r.maxCharges, p.Cooldown, r.cooldown, w.Defeated())
	dst.DrawTextColored(1, 0, hud, core.ColorWhite)

	tick := fmt.Sprintf(" Tick %d ", w.Tick())
	dst.DrawTextColored(dst.Width()-len(tick)-1, 0, tick, core.ColorGray)
}
