package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/noodles/camera"
	"github.com/pthm-cable/noodles/components"
	"github.com/pthm-cable/noodles/game"
	"github.com/pthm-cable/noodles/systems"
	"github.com/pthm-cable/noodles/ui"
)

// gridStep is the spacing of the grid overlay in arena units.
const gridStep = 50

// ArenaRenderer draws the arena, trails and sparks.
type ArenaRenderer struct {
	theme  ui.Theme
	radius float32
}

// NewArenaRenderer creates a renderer for noodles of the given radius.
func NewArenaRenderer(theme ui.Theme, radius float64) *ArenaRenderer {
	return &ArenaRenderer{theme: theme, radius: float32(radius)}
}

func screen(cam *camera.Camera, p components.Point) rl.Vector2 {
	x, y := cam.WorldToScreen(float32(p.X), float32(p.Y))
	return rl.Vector2{X: x, Y: y}
}

// Draw renders the arena floor, every trail and head, and the enabled overlays.
func (a *ArenaRenderer) Draw(v *game.View, cam *camera.Camera, overlays *ui.OverlayRegistry) {
	x, y, w, h := cam.ArenaRect()
	rl.DrawRectangleV(rl.Vector2{X: x, Y: y}, rl.Vector2{X: w, Y: h}, a.theme.ArenaBg)

	if overlays.IsEnabled(ui.OverlayGrid) {
		size := float32(v.ArenaSize)
		for g := float32(gridStep); g < size; g += gridStep {
			gx, _ := cam.WorldToScreen(g, 0)
			_, gy := cam.WorldToScreen(0, g)
			rl.DrawLineV(rl.Vector2{X: gx, Y: y}, rl.Vector2{X: gx, Y: y + h}, a.theme.GridLine)
			rl.DrawLineV(rl.Vector2{X: x, Y: gy}, rl.Vector2{X: x + w, Y: gy}, a.theme.GridLine)
		}
	}
	rl.DrawRectangleLinesEx(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, 2, a.theme.ArenaBorder)

	thick := max(cam.Length(a.radius), 1)
	for i := range v.Noodles {
		a.drawNoodle(&v.Noodles[i], cam, thick, overlays)
	}
}

func (a *ArenaRenderer) drawNoodle(n *game.NoodleView, cam *camera.Camera, thick float32, overlays *ui.OverlayRegistry) {
	color := ui.Color(n.Color)
	if !n.Alive {
		color = ui.Dim(color, a.theme.DeadDim)
	}

	prev := screen(cam, n.Trail[0])
	for _, p := range n.Trail[1:] {
		cur := screen(cam, p)
		rl.DrawLineEx(prev, cur, thick, color)
		prev = cur
	}

	head := screen(cam, n.Head())
	rl.DrawCircleV(head, cam.Length(a.radius), color)
	if n.Alive {
		rl.DrawCircleV(head, cam.Length(a.radius)*0.45, rl.White)
	}

	if overlays.IsEnabled(ui.OverlayContact) {
		rl.DrawCircleLines(int32(head.X), int32(head.Y), cam.Length(2*a.radius), rl.Red)
	}
	if overlays.IsEnabled(ui.OverlayHeading) && n.Alive {
		tip := n.Head().Add(components.Direction(n.Heading).Scale(float64(4 * a.radius)))
		rl.DrawLineV(head, screen(cam, tip), rl.Yellow)
	}
}

// DrawSparks renders crash sparks fading with their remaining life.
func (a *ArenaRenderer) DrawSparks(sparks []systems.Spark, cam *camera.Camera) {
	for i := range sparks {
		s := &sparks[i]
		fade := s.Fade()
		color := ui.Dim(ui.Color(s.Color), uint8(fade*230))
		rl.DrawCircleV(screen(cam, s.P), max(cam.Length(float32(s.Size*fade)), 0.5), color)
	}
}
