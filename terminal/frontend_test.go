package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/noodles/config"
	"github.com/pthm-cable/noodles/game"
)

func newTestFrontend(t *testing.T) (tcell.SimulationScreen, *Frontend, *game.Game, *config.Config) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	g := game.NewGame(cfg, game.Options{Seed: 1})
	return screen, New(screen, cfg, g, 1), g, cfg
}

func rowText(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
		ok   bool
	}{
		{"letter", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), "a", true},
		{"upper letter", tcell.NewEventKey(tcell.KeyRune, 'J', tcell.ModShift), "j", true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "space", true},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "left", true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "escape", true},
		{"f5", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "f5", true},
		{"unmapped", tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyName(tt.ev)
			if got != tt.want || ok != tt.ok {
				t.Errorf("KeyName = %q, %v; want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestHandleEvent_Taps(t *testing.T) {
	_, f, g, cfg := newTestFrontend(t)

	f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	f.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	f.HandleEvent(tcell.NewEventResize(100, 40))

	snap := g.Keys().Snapshot()
	if !snap.IsDown("a") {
		t.Error("tapped key should read as held")
	}
	if !snap.WasPressed(cfg.Keys.Quit) {
		t.Error("ctrl-c should press the quit key")
	}
}

func TestHandleEvent_HoldExpires(t *testing.T) {
	_, f, g, _ := newTestFrontend(t)
	now := time.Unix(100, 0)
	g.Keys().SetClock(func() time.Time { return now })
	f.SetHold(50 * time.Millisecond)

	f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	now = now.Add(40 * time.Millisecond)
	if !g.Keys().Snapshot().IsDown("d") {
		t.Fatal("key should still be held inside the hold window")
	}
	now = now.Add(20 * time.Millisecond)
	if g.Keys().Snapshot().IsDown("d") {
		t.Error("key should be released once the hold window passes")
	}
}

func TestPresent_DrawsHUDAndNoodles(t *testing.T) {
	screen, _, g, cfg := newTestFrontend(t)

	g.Update(0.05)

	top := rowText(screen, 0)
	if !strings.Contains(top, "Round 1/5") {
		t.Errorf("status row = %q", top)
	}
	for _, p := range cfg.Players {
		if !strings.Contains(top, p.Name) {
			t.Errorf("status row missing %s: %q", p.Name, top)
		}
	}

	heads := 0
	w, h := screen.Size()
	for y := hudRows; y < h; y++ {
		for x := 0; x < w; x++ {
			if r, _, _, _ := screen.GetContent(x, y); r == '@' {
				heads++
			}
		}
	}
	if heads != len(cfg.Players) {
		t.Errorf("heads drawn = %d, want %d", heads, len(cfg.Players))
	}
}

func TestPresent_Banner(t *testing.T) {
	screen, _, g, _ := newTestFrontend(t)

	// Two noodles straight into the east wall.
	for _, id := range g.Noodles().IDs()[1:] {
		ident, h, trail, _, _ := g.Noodles().Get(id)
		trail.Points[0].X = 799
		trail.Points[0].Y = float64(100 * ident.Slot)
		h.Angle = 0
	}
	_, h, trail, _, _ := g.Noodles().Get(1)
	trail.Points[0].X, trail.Points[0].Y, h.Angle = 400, 400, 0
	g.Engine().Reindex()

	g.Update(0.05)

	banner := rowText(screen, 1)
	if !strings.Contains(banner, "Marinara wins round 1") {
		t.Errorf("banner row = %q", banner)
	}
	if !strings.Contains(banner, "Press SPACE for round 2") {
		t.Errorf("banner row = %q", banner)
	}
}
