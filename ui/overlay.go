package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/noodles/game"
)

// RoundOverlay draws the round-over banner with its acknowledgment button.
type RoundOverlay struct {
	renderer   *Renderer
	advanceKey string
}

// NewRoundOverlay creates the overlay. advanceKey is shown in the hint.
func NewRoundOverlay(r *Renderer, advanceKey string) *RoundOverlay {
	return &RoundOverlay{renderer: r, advanceKey: advanceKey}
}

// Draw renders the banner centered on (cx, cy) while the round is over and
// reports whether the button was clicked.
func (o *RoundOverlay) Draw(v *game.View, cx, cy int32) bool {
	title, hint := Banner(v, o.advanceKey)
	if title == "" {
		return false
	}

	t := o.renderer.Theme
	w := max(rl.MeasureText(title, t.TitleFontSize)+4*t.Padding, 360)
	h := int32(150)
	x, y := cx-w/2, cy-h/2
	o.renderer.DrawPanel(x, y, w, h)

	color := t.ValueColor
	if n, ok := v.Noodle(v.State.Winner); ok {
		color = Color(n.Color)
	}
	o.renderer.DrawCentered(title, cx, y+t.Padding*2, t.TitleFontSize, color)
	o.renderer.DrawCentered(hint, cx, y+t.Padding*2+t.TitleFontSize+8, t.FontSize, t.LabelColor)

	bw, bh := float32(140), float32(32)
	return gui.Button(rl.Rectangle{
		X:      float32(cx) - bw/2,
		Y:      float32(y+h) - bh - float32(t.Padding),
		Width:  bw,
		Height: bh,
	}, ButtonLabel(v))
}

// ControlsPanel lists the overlay toggles.
type ControlsPanel struct {
	renderer *Renderer
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(r *Renderer) *ControlsPanel {
	return &ControlsPanel{renderer: r}
}

// Draw renders the overlay legend with its top-left corner at (x, y).
func (c *ControlsPanel) Draw(overlays *OverlayRegistry, x, y int32) {
	t := c.renderer.Theme
	all := overlays.All()
	width := int32(190)
	height := int32(len(all))*t.LineHeight + 2*t.Padding
	c.renderer.DrawPanel(x, y, width, height)

	y += t.Padding
	for _, d := range all {
		color := t.LabelColor
		if overlays.IsEnabled(d.ID) {
			color = t.SectionHeader
		}
		rl.DrawText(d.Key+"  "+d.Name, x+t.Padding, y, t.FontSize-4, color)
		y += t.LineHeight
	}
}
