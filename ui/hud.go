package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/noodles/game"
)

// HUDHeight is the height of the top bar in pixels.
const HUDHeight = 60

// HUD renders the top bar and the scoreboard.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD(r *Renderer) *HUD {
	return &HUD{renderer: r}
}

// Draw renders the HUD across the top of a screen of the given width.
func (h *HUD) Draw(v *game.View, screenW int32, fps int32) {
	t := h.renderer.Theme
	rl.DrawRectangle(0, 0, screenW, HUDHeight, t.PanelBg)
	rl.DrawLine(0, HUDHeight, screenW, HUDHeight, t.PanelBorder)

	rl.DrawText("NOODLES", t.Padding, t.Padding, t.TitleFontSize, t.ValueColor)
	rl.DrawText(StatusLine(v), t.Padding, t.Padding+t.TitleFontSize+4, t.FontSize-2, t.LabelColor)

	// Scoreboard entries run right to left from the screen edge.
	x := screenW - t.Padding
	rows := Scoreboard(v)
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		text := fmt.Sprintf("%s %d", row.Name, row.Score)
		w := rl.MeasureText(text, t.FontSize)
		x -= w
		color := Color(row.Color)
		if !row.Alive && row.Status != "winner" {
			color = Dim(color, t.DeadDim)
		}
		rl.DrawText(text, x, t.Padding, t.FontSize, color)
		if row.Leader {
			rl.DrawRectangle(x, t.Padding+t.FontSize+2, w, 2, color)
		}
		rl.DrawText(row.Status, x, t.Padding+t.FontSize+8, t.FontSize-4, t.LabelColor)
		x -= 2 * t.Padding
	}

	if fps > 0 {
		rl.DrawText(fmt.Sprintf("FPS: %d", fps), t.Padding+140, t.Padding+6, t.FontSize-4, t.LabelColor)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, h.renderer.Theme.Padding, screenHeight-22, 14, rl.Gray)
}
