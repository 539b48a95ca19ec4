// Package renderer draws the arena in a raylib window and reads its keyboard.
package renderer

import (
	"context"
	"fmt"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/noodles/camera"
	"github.com/pthm-cable/noodles/config"
	"github.com/pthm-cable/noodles/game"
	"github.com/pthm-cable/noodles/inspector"
	"github.com/pthm-cable/noodles/systems"
	"github.com/pthm-cable/noodles/telemetry"
	"github.com/pthm-cable/noodles/ui"
)

// Window presents frames in a raylib window. It must be created after
// rl.InitWindow and used on the window's goroutine.
type Window struct {
	cfg  *config.Config
	game *game.Game

	cam      *camera.Camera
	ui       *ui.Renderer
	hud      *ui.HUD
	banner   *ui.RoundOverlay
	controls *ui.ControlsPanel
	overlays *ui.OverlayRegistry
	inspect  *inspector.Inspector
	arena    *ArenaRenderer
	sparks   *systems.ParticleSystem
	keyboard *Keyboard

	screenW, screenH float32
}

// NewWindow creates the window sink and registers it with g.
func NewWindow(cfg *config.Config, g *game.Game, seed int64) (*Window, error) {
	kb, err := NewKeyboard(g.Bindings().Keys())
	if err != nil {
		return nil, err
	}

	r := ui.NewRenderer()
	w := &Window{
		cfg:      cfg,
		game:     g,
		ui:       r,
		hud:      ui.NewHUD(r),
		banner:   ui.NewRoundOverlay(r, cfg.Keys.Advance),
		controls: ui.NewControlsPanel(r),
		overlays: ui.NewOverlayRegistry(),
		inspect:  inspector.NewInspector(int32(cfg.Derived.ScreenW32)-210, ui.HUDHeight),
		arena:    NewArenaRenderer(r.Theme, cfg.Noodle.Radius),
		sparks:   systems.NewParticleSystem(rand.New(rand.NewSource(seed)), 600),
		keyboard: kb,
		screenW:  cfg.Derived.ScreenW32,
		screenH:  cfg.Derived.ScreenH32,
	}
	w.cam = camera.New(0, ui.HUDHeight, w.screenW, w.screenH-ui.HUDHeight, cfg.Derived.ArenaSize32)

	// Quit goes through the game so shutdown is logged.
	rl.SetExitKey(0)

	g.AddSink(w)
	return w, nil
}

// Run drives the game from the raylib frame loop until the window closes,
// the game quits, or ctx is cancelled.
func (w *Window) Run(ctx context.Context) error {
	for !rl.WindowShouldClose() && !w.game.Quit() {
		if ctx.Err() != nil {
			return nil
		}
		w.handleInput()
		w.game.Update(float64(rl.GetFrameTime()))
		w.game.RecordFrame()
	}
	w.game.Keys().Release()
	return nil
}

// handleInput polls keys and the camera controls.
func (w *Window) handleInput() {
	w.handleResize()
	w.keyboard.Poll(w.game.Keys())

	for _, key := range Pressed(w.overlays.Keys()) {
		w.overlays.HandleKey(key)
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		m := rl.GetMousePosition()
		wx, wy := w.cam.ScreenToWorld(m.X, m.Y)
		v := w.game.View()
		// 12 pixels, but never less than the head itself.
		tolerance := max(float64(12/w.cam.Zoom), 3*w.cfg.Noodle.Radius)
		w.inspect.HandleClick(&v, float64(m.X), float64(m.Y), float64(wx), float64(wy), tolerance)
	}
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		w.cam.Pan(-d.X, -d.Y)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		w.cam.ZoomBy(1 + wheel*0.1)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		w.cam.Reset()
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (w *Window) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	sw := float32(rl.GetScreenWidth())
	sh := float32(rl.GetScreenHeight())
	if sw == w.screenW && sh == w.screenH {
		return
	}
	w.screenW, w.screenH = sw, sh
	w.cam.Resize(sw, sh-ui.HUDHeight)
	w.inspect.Place(int32(sw)-210, ui.HUDHeight)
}

// Present draws one frame.
func (w *Window) Present(f game.Frame) {
	for _, d := range f.Deaths {
		if n, ok := f.View.Noodle(d.ID); ok {
			w.sparks.EmitCrash(d.At, n.Color)
		}
	}
	if f.Has(game.NextRound) || f.Has(game.MatchReset) {
		w.sparks.Clear()
	}
	w.sparks.Update(f.Delta)

	rl.BeginDrawing()
	rl.ClearBackground(w.ui.Theme.Background)

	w.arena.Draw(&f.View, w.cam, w.overlays)
	w.arena.DrawSparks(w.sparks.Sparks, w.cam)

	sw, sh := int32(w.screenW), int32(w.screenH)
	w.hud.Draw(&f.View, sw, rl.GetFPS())
	w.hud.DrawControls(sh, w.legend())

	if w.overlays.IsEnabled(ui.OverlayPerf) {
		w.drawPerf(sw)
	}
	w.controls.Draw(w.overlays, sw-200, ui.HUDHeight+10)
	w.inspect.Draw(&f.View)

	cx := sw / 2
	cy := ui.HUDHeight + (sh-ui.HUDHeight)/2
	if w.banner.Draw(&f.View, cx, cy) {
		w.game.RequestAdvance()
	}

	rl.EndDrawing()
}

func (w *Window) legend() string {
	s := ""
	for _, p := range w.cfg.Players {
		s += fmt.Sprintf("%s: %s/%s   ", p.Name, p.Left, p.Right)
	}
	return s + fmt.Sprintf("%s: next   %s: quit", w.cfg.Keys.Advance, w.cfg.Keys.Quit)
}

func (w *Window) drawPerf(sw int32) {
	stats := w.game.PerfStats()
	t := w.ui.Theme
	x, y := sw-200, int32(ui.HUDHeight+120)
	w.ui.DrawPanel(x, y, 190, 90)
	lines := []string{
		fmt.Sprintf("frame: %dus", stats.AvgFrame.Microseconds()),
		fmt.Sprintf("engine: %.1f%%", stats.PhasePct[telemetry.PhaseEngine]),
		fmt.Sprintf("present: %.1f%%", stats.PhasePct[telemetry.PhasePresent]),
		fmt.Sprintf("tick: %d", w.game.Engine().Tick()),
	}
	for i, l := range lines {
		rl.DrawText(l, x+t.Padding, y+t.Padding+int32(i)*t.LineHeight, t.FontSize-4, t.LabelColor)
	}
}
