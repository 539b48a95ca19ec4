package telemetry

import (
	"log/slog"
	"math"
	"testing"

	"github.com/pthm-cable/noodles/components"
)

func TestCollector_Round(t *testing.T) {
	c := NewCollector()
	c.StartRound(2)
	for i := 0; i < 30; i++ {
		c.RecordTick(0.1)
	}
	c.RecordDeath(components.CauseWall)
	c.RecordDeath(components.CauseHeadOn)
	c.RecordDeath(components.CauseHeadOn)

	s := c.EndRound(3, "Pesto")

	if s.Round != 2 || s.Ticks != 30 {
		t.Errorf("round/ticks = %d/%d, want 2/30", s.Round, s.Ticks)
	}
	if math.Abs(s.SimTimeSec-3.0) > 1e-9 {
		t.Errorf("sim time = %v, want 3.0", s.SimTimeSec)
	}
	if s.WallDeaths != 1 || s.HeadOnDeaths != 2 || s.Deaths() != 3 {
		t.Errorf("deaths = %+v", s)
	}
	if s.Drawn() {
		t.Error("round with a winner reported as drawn")
	}

	c.StartRound(3)
	s = c.EndRound(0, "")
	if s.Ticks != 0 || s.Deaths() != 0 {
		t.Errorf("counters not reset: %+v", s)
	}
	if !s.Drawn() {
		t.Error("round without winner should be drawn")
	}
	if c.RoundsPlayed() != 2 {
		t.Errorf("rounds played = %d, want 2", c.RoundsPlayed())
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		lengths []float64
		winners []uint32
		mean    float64
		p50     float64
		max     float64
		draws   int
	}{
		{"empty", nil, nil, 0, 0, 0, 0},
		{"single", []float64{4}, []uint32{1}, 4, 4, 4, 0},
		{"mixed", []float64{5, 1, 3}, []uint32{1, 0, 2}, 3, 3, 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rounds := make([]RoundStats, len(tt.lengths))
			for i, l := range tt.lengths {
				rounds[i] = RoundStats{Round: i + 1, SimTimeSec: l, Winner: tt.winners[i]}
			}
			s := Summarize(rounds)
			if s.Rounds != len(tt.lengths) {
				t.Errorf("rounds = %d", s.Rounds)
			}
			if math.Abs(s.MeanSec-tt.mean) > 1e-9 {
				t.Errorf("mean = %v, want %v", s.MeanSec, tt.mean)
			}
			if math.Abs(s.P50Sec-tt.p50) > 1e-9 {
				t.Errorf("p50 = %v, want %v", s.P50Sec, tt.p50)
			}
			if s.MaxSec != tt.max {
				t.Errorf("max = %v, want %v", s.MaxSec, tt.max)
			}
			if s.Draws != tt.draws {
				t.Errorf("draws = %d, want %d", s.Draws, tt.draws)
			}
		})
	}
}

func TestRoundStats_LogValue(t *testing.T) {
	v := RoundStats{Round: 1, Winner: 2, WinnerName: "Pesto", SelfDeaths: 1}.LogValue()
	if v.Kind() != slog.KindGroup {
		t.Fatalf("kind = %v, want group", v.Kind())
	}
	got := map[string]slog.Value{}
	for _, a := range v.Group() {
		got[a.Key] = a.Value
	}
	if got["winner_name"].String() != "Pesto" {
		t.Errorf("winner_name = %v", got["winner_name"])
	}
	if got["self"].Int64() != 1 {
		t.Errorf("self = %v", got["self"])
	}
}

func TestWins(t *testing.T) {
	c := NewCollector()
	for _, w := range []struct {
		id   uint32
		name string
	}{{1, "Marinara"}, {0, ""}, {2, "Pesto"}, {1, "Marinara"}} {
		c.EndRound(w.id, w.name)
	}

	wins := Wins(c.History())
	if len(c.History()) != 4 {
		t.Fatalf("history = %d rounds, want 4", len(c.History()))
	}
	if wins["Marinara"] != 2 || wins["Pesto"] != 1 || len(wins) != 2 {
		t.Errorf("wins = %v", wins)
	}
}
