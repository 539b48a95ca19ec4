// Package terminal presents the arena in a text terminal using tcell.
package terminal

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/noodles/camera"
	"github.com/pthm-cable/noodles/components"
	"github.com/pthm-cable/noodles/config"
	"github.com/pthm-cable/noodles/game"
	"github.com/pthm-cable/noodles/systems"
	"github.com/pthm-cable/noodles/ui"
)

// DefaultHold is how long a key reads as held after a terminal key event.
// Terminals report presses and auto-repeat but never releases.
const DefaultHold = 250 * time.Millisecond

// hudRows is the number of rows above the arena: status, banner and the
// top wall.
const hudRows = 3

// Frontend draws frames into a tcell screen and feeds its key events into
// the game's KeyState.
type Frontend struct {
	screen tcell.Screen
	game   *game.Game
	cfg    *config.Config
	cam    *camera.Camera
	sparks *systems.ParticleSystem
	hold   time.Duration

	cols, rows int
}

// New creates a frontend on an initialized screen and registers it with g.
func New(screen tcell.Screen, cfg *config.Config, g *game.Game, seed int64) *Frontend {
	f := &Frontend{
		screen: screen,
		game:   g,
		cfg:    cfg,
		sparks: systems.NewParticleSystem(rand.New(rand.NewSource(seed)), 200),
		hold:   DefaultHold,
	}
	f.resize()
	g.AddSink(f)
	return f
}

// SetHold changes how long a key event reads as held.
func (f *Frontend) SetHold(d time.Duration) { f.hold = d }

// resize fits the camera to the screen. One cell is two arena rows tall.
func (f *Frontend) resize() {
	cols, rows := f.screen.Size()
	if cols == f.cols && rows == f.rows && f.cam != nil {
		return
	}
	f.cols, f.rows = cols, rows
	h := max(rows-hudRows-1, 1) // one row for the bottom wall
	if f.cam == nil {
		f.cam = camera.New(0, 0, float32(max(cols, 1)), float32(2*h), f.cfg.Derived.ArenaSize32)
		return
	}
	f.cam.Resize(float32(max(cols, 1)), float32(2*h))
	f.cam.Reset()
}

// HandleEvent applies one tcell event. It is safe to call from the event
// goroutine because it only touches the KeyState.
func (f *Frontend) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	if key.Key() == tcell.KeyCtrlC {
		f.game.Keys().Tap(f.game.Bindings().Quit(), f.hold)
		return
	}
	if name, ok := KeyName(key); ok {
		f.game.Keys().Tap(name, f.hold)
	}
}

// Run pumps screen events and drives the game from a ticker until ctx is
// cancelled or the game quits. Close the screen afterwards to stop the pump.
func (f *Frontend) Run(ctx context.Context) error {
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			f.HandleEvent(ev)
		}
	}()
	return game.NewLoop(f.game, f.cfg.Timing.TickHz).Run(ctx)
}

// Close restores the terminal.
func (f *Frontend) Close() {
	f.game.Keys().Release()
	f.screen.Fini()
}

func style(c config.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// cell maps an arena point to a screen cell.
func (f *Frontend) cell(p components.Point) (int, int) {
	x, y := f.cam.WorldToScreen(float32(p.X), float32(p.Y))
	return int(x), hudRows + int(y/2)
}

// Present draws one frame.
func (f *Frontend) Present(fr game.Frame) {
	f.resize()
	for _, d := range fr.Deaths {
		if n, ok := fr.View.Noodle(d.ID); ok {
			f.sparks.EmitCrash(d.At, n.Color)
		}
	}
	if fr.Has(game.NextRound) || fr.Has(game.MatchReset) {
		f.sparks.Clear()
	}
	f.sparks.Update(fr.Delta)

	f.screen.Clear()
	v := &fr.View

	f.drawBorder()
	for i := range v.Noodles {
		n := &v.Noodles[i]
		st := style(n.Color)
		if !n.Alive {
			st = st.Dim(true)
		}
		for _, p := range n.Trail {
			x, y := f.cell(p)
			f.screen.SetContent(x, y, '█', nil, st)
		}
		x, y := f.cell(n.Head())
		head := '@'
		if !n.Alive {
			head = 'x'
		}
		f.screen.SetContent(x, y, head, nil, st.Bold(true).Reverse(true))
	}
	for i := range f.sparks.Sparks {
		s := &f.sparks.Sparks[i]
		x, y := f.cell(s.P)
		f.screen.SetContent(x, y, '*', nil, style(s.Color))
	}

	f.drawHUD(v)
	f.screen.Show()
}

func (f *Frontend) drawBorder() {
	st := tcell.StyleDefault.Foreground(tcell.ColorGray)
	x0, y0 := f.cell(components.Point{})
	size := float64(f.cfg.Arena.Size)
	x1, y1 := f.cell(components.Point{X: size, Y: size})
	x0, y0 = x0-1, y0-1
	for x := x0 + 1; x < x1; x++ {
		f.screen.SetContent(x, y0, '─', nil, st)
		f.screen.SetContent(x, y1, '─', nil, st)
	}
	for y := y0 + 1; y < y1; y++ {
		f.screen.SetContent(x0, y, '│', nil, st)
		f.screen.SetContent(x1, y, '│', nil, st)
	}
	f.screen.SetContent(x0, y0, '┌', nil, st)
	f.screen.SetContent(x1, y0, '┐', nil, st)
	f.screen.SetContent(x0, y1, '└', nil, st)
	f.screen.SetContent(x1, y1, '┘', nil, st)
}

func (f *Frontend) drawHUD(v *game.View) {
	x := f.print(0, 0, ui.StatusLine(v), tcell.StyleDefault.Bold(true))
	for _, row := range ui.Scoreboard(v) {
		x = f.print(x+3, 0, fmt.Sprintf("%s %d", row.Name, row.Score), style(row.Color))
	}

	title, hint := ui.Banner(v, f.cfg.Keys.Advance)
	if title != "" {
		x = f.print(0, 1, title, tcell.StyleDefault.Foreground(tcell.ColorYellow))
		f.print(x+3, 1, hint, tcell.StyleDefault)
	}
}

// print writes s at (x, y) and returns the column after it.
func (f *Frontend) print(x, y int, s string, st tcell.Style) int {
	for _, r := range s {
		f.screen.SetContent(x, y, r, nil, st)
		x++
	}
	return x
}
