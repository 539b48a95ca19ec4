// Package inspector shows the details of a selected noodle in the window.
package inspector

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/noodles/game"
)

// Panel dimensions
const (
	PanelWidth   = 260
	PanelPadding = 10
	HeaderHeight = 30
	closeSize    = 20
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorCloseBtn    = rl.Color{R: 180, G: 80, B: 80, A: 255}
)

// Inspector tracks the selected noodle and draws its panel.
type Inspector struct {
	selected    uint32
	hasSelected bool
	panelX      int32
	panelY      int32
	panelH      int32
}

// NewInspector places the panel with its right edge at right, below top.
func NewInspector(right, top int32) *Inspector {
	ins := &Inspector{}
	ins.Place(right, top)
	return ins
}

// Place moves the panel, e.g. after a window resize.
func (ins *Inspector) Place(right, top int32) {
	ins.panelX = right - PanelWidth - 10
	ins.panelY = top + 10
}

// Select selects noodle id.
func (ins *Inspector) Select(id uint32) {
	ins.selected = id
	ins.hasSelected = true
}

// Deselect clears the selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns the selected noodle.
func (ins *Inspector) Selected() (uint32, bool) {
	return ins.selected, ins.hasSelected
}

// InPanel reports whether a screen point is over the open panel.
func (ins *Inspector) InPanel(sx, sy float32) bool {
	if !ins.hasSelected {
		return false
	}
	return sx >= float32(ins.panelX) && sx <= float32(ins.panelX+PanelWidth) &&
		sy >= float32(ins.panelY) && sy <= float32(ins.panelY+ins.panelH)
}

// HandleClick updates the selection for a left click. (sx, sy) is the
// screen position and (wx, wy) the same point in arena units. A click on
// the close button or on empty arena clears the selection.
func (ins *Inspector) HandleClick(v *game.View, sx, sy, wx, wy, tolerance float64) {
	if ins.hasSelected {
		cx := float64(ins.panelX + PanelWidth - closeSize - 5)
		cy := float64(ins.panelY + 5)
		if sx >= cx && sx <= cx+closeSize && sy >= cy && sy <= cy+closeSize {
			ins.Deselect()
			return
		}
		if ins.InPanel(float32(sx), float32(sy)) {
			return
		}
	}
	if id, ok := Pick(v, wx, wy, tolerance); ok {
		ins.Select(id)
		return
	}
	ins.Deselect()
}

// Draw renders the panel for the selected noodle, if any.
func (ins *Inspector) Draw(v *game.View) {
	if !ins.hasSelected {
		return
	}
	d, ok := Describe(v, ins.selected)
	if !ok {
		ins.Deselect()
		return
	}

	fields := ExtractFields(d)
	h := int32(HeaderHeight + 2*PanelPadding + 22)
	for _, f := range fields {
		h += FieldHeight(f)
	}
	ins.panelH = h

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, h, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: float32(h)},
		1,
		ColorPanelBorder,
	)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText("INSPECTOR", ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	closeX := ins.panelX + PanelWidth - closeSize - 5
	closeY := ins.panelY + 5
	rl.DrawRectangle(closeX, closeY, closeSize, closeSize, ColorCloseBtn)
	rl.DrawText("X", closeX+6, closeY+3, 14, rl.White)

	x := ins.panelX + PanelPadding
	y := ins.panelY + HeaderHeight + PanelPadding

	if n, ok := v.Noodle(d.ID); ok {
		c := rl.Color{R: n.Color.R, G: n.Color.G, B: n.Color.B, A: 255}
		rl.DrawRectangle(x, y+2, 12, 12, c)
	}
	rl.DrawText(fmt.Sprintf("#%d %s", d.ID, d.Name), x+18, y, 16, ColorHeaderText)
	y += 22

	for _, f := range fields {
		y += DrawField(x, y, f)
	}
}
