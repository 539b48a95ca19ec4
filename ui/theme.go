// Package ui draws the HUD and round overlays in the raylib window.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/noodles/config"
)

// Theme holds UI styling constants.
type Theme struct {
	Background    rl.Color
	ArenaBg       rl.Color
	ArenaBorder   rl.Color
	GridLine      rl.Color
	PanelBg       rl.Color
	PanelBorder   rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	DeadDim       uint8 // alpha for dead noodles' trails
	Padding       int32
	LineHeight    int32
	FontSize      int32
	TitleFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		Background:    rl.Color{R: 12, G: 14, B: 18, A: 255},
		ArenaBg:       rl.Color{R: 20, G: 24, B: 30, A: 255},
		ArenaBorder:   rl.Color{R: 90, G: 100, B: 115, A: 255},
		GridLine:      rl.Color{R: 35, G: 40, B: 48, A: 255},
		PanelBg:       rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder:   rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader: rl.Yellow,
		LabelColor:    rl.LightGray,
		ValueColor:    rl.White,
		DeadDim:       110,
		Padding:       10,
		LineHeight:    18,
		FontSize:      16,
		TitleFontSize: 24,
	}
}

// Color converts a player color.
func Color(c config.RGB) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// Dim returns c with alpha a.
func Dim(c rl.Color, a uint8) rl.Color {
	c.A = a
	return c
}

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawCentered draws text horizontally centered on cx.
func (r *Renderer) DrawCentered(text string, cx, y, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, cx-w/2, y, size, color)
}
