package ui

import (
	"strings"
	"testing"

	"github.com/pthm-cable/noodles/components"
	"github.com/pthm-cable/noodles/game"
)

func testView() game.View {
	return game.View{
		ArenaSize: 800,
		State: game.RoundState{
			Round:     2,
			MaxRounds: 3,
			Phase:     game.Running,
			Scores:    map[uint32]int{1: 0, 2: 1, 3: 1},
		},
		Leaders: []uint32{2, 3},
		Noodles: []game.NoodleView{
			{ID: 1, Name: "Marinara", Alive: true, Score: 0},
			{ID: 2, Name: "Pesto", Alive: false, Cause: components.CauseWall, Score: 1},
			{ID: 3, Name: "Alfredo", Alive: true, Score: 1},
		},
	}
}

func TestScoreboard(t *testing.T) {
	v := testView()
	rows := Scoreboard(&v)

	wantOrder := []uint32{2, 3, 1}
	for i, id := range wantOrder {
		if rows[i].ID != id {
			t.Fatalf("row %d = %d, want %d", i, rows[i].ID, id)
		}
	}
	if rows[0].Status != "wall" || rows[1].Status != "racing" {
		t.Errorf("statuses = %q, %q", rows[0].Status, rows[1].Status)
	}
	if !rows[0].Leader || !rows[1].Leader || rows[2].Leader {
		t.Errorf("leaders = %v %v %v", rows[0].Leader, rows[1].Leader, rows[2].Leader)
	}
}

func TestStatusLine(t *testing.T) {
	v := testView()
	if got, want := StatusLine(&v), "Round 2/3 | Alive: 2/3"; got != want {
		t.Errorf("StatusLine = %q, want %q", got, want)
	}
}

func TestBanner(t *testing.T) {
	tests := []struct {
		name      string
		phase     game.Phase
		winner    uint32
		matchOver bool
		title     string
		hint      string
		button    string
	}{
		{"running", game.Running, 0, false, "", "", "Next round"},
		{"winner", game.AwaitingAdvance, 3, false, "Alfredo wins round 2", "Press SPACE for round 3", "Next round"},
		{"draw", game.AwaitingAdvance, game.NoWinner, false, "Round 2: no survivors", "Press SPACE for round 3", "Next round"},
		{"match over", game.AwaitingAdvance, 3, true, "Alfredo wins round 2 | Match: Pesto, Alfredo", "Press SPACE for a new match", "New match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := testView()
			v.State.Phase = tt.phase
			v.State.Winner = tt.winner
			v.MatchOver = tt.matchOver

			title, hint := Banner(&v, "space")
			if title != tt.title {
				t.Errorf("title = %q, want %q", title, tt.title)
			}
			if hint != tt.hint {
				t.Errorf("hint = %q, want %q", hint, tt.hint)
			}
			if got := ButtonLabel(&v); got != tt.button {
				t.Errorf("button = %q, want %q", got, tt.button)
			}
		})
	}
}

func TestScoreboard_WinnerStatus(t *testing.T) {
	v := testView()
	v.State.Phase = game.AwaitingAdvance
	v.State.Winner = 3
	for _, r := range Scoreboard(&v) {
		if r.ID == 3 && r.Status != "winner" {
			t.Errorf("winner status = %q", r.Status)
		}
		if strings.TrimSpace(r.Status) == "" {
			t.Errorf("row %d has empty status", r.ID)
		}
	}
}

func TestOverlayRegistry(t *testing.T) {
	reg := NewOverlayRegistry()

	id, on, ok := reg.HandleKey("f2")
	if !ok || id != OverlayContact || !on {
		t.Fatalf("HandleKey(f2) = %v, %v, %v", id, on, ok)
	}
	if !reg.IsEnabled(OverlayContact) {
		t.Error("contact overlay should be enabled")
	}
	if _, _, ok := reg.HandleKey("a"); ok {
		t.Error("unbound key toggled an overlay")
	}
	if reg.Toggle(OverlayContact) {
		t.Error("second toggle should disable")
	}

	reg.Register(OverlayDescriptor{ID: "solo", Key: "f9", Exclusive: []OverlayID{OverlayGrid}})
	reg.SetEnabled(OverlayGrid, true)
	reg.SetEnabled("solo", true)
	if reg.IsEnabled(OverlayGrid) {
		t.Error("exclusive overlay not disabled")
	}
	if got := len(reg.Keys()); got != 5 {
		t.Errorf("keys = %d, want 5", got)
	}
}
