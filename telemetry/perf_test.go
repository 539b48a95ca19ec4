package telemetry

import (
	"log/slog"
	"math"
	"testing"
	"time"
)

// fakeClock advances only when told to.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time            { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestPerf(window int) (*PerfCollector, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	p := NewPerfCollector(window)
	p.SetClock(clock.now)
	return p, clock
}

// frame records one frame with the given engine and present durations.
func frame(p *PerfCollector, c *fakeClock, engine, present time.Duration) {
	p.StartTick()
	p.StartPhase(PhaseEngine)
	c.advance(engine)
	p.StartPhase(PhasePresent)
	c.advance(present)
	p.EndTick()
}

func TestPerfCollector_PhaseShares(t *testing.T) {
	p, c := newTestPerf(10)
	for i := 0; i < 4; i++ {
		frame(p, c, 3*time.Millisecond, time.Millisecond)
	}

	s := p.Stats()
	if s.Frames != 4 {
		t.Errorf("Frames = %d, want 4", s.Frames)
	}
	if s.AvgFrame != 4*time.Millisecond {
		t.Errorf("AvgFrame = %v, want 4ms", s.AvgFrame)
	}
	if s.PhaseAvg[PhaseEngine] != 3*time.Millisecond {
		t.Errorf("engine avg = %v, want 3ms", s.PhaseAvg[PhaseEngine])
	}
	if math.Abs(s.PhasePct[PhaseEngine]-75) > 1e-9 || math.Abs(s.PhasePct[PhasePresent]-25) > 1e-9 {
		t.Errorf("shares = %v", s.PhasePct)
	}
	if s.PhasePct[PhaseInput] != 0 {
		t.Errorf("untimed phase share = %f", s.PhasePct[PhaseInput])
	}
}

func TestPerfCollector_RingKeepsNewest(t *testing.T) {
	p, c := newTestPerf(3)
	frame(p, c, 10*time.Millisecond, 0)
	for i := 0; i < 3; i++ {
		frame(p, c, time.Millisecond, 0)
	}

	s := p.Stats()
	if s.Frames != 3 {
		t.Errorf("Frames = %d, want 3", s.Frames)
	}
	if s.MaxFrame != time.Millisecond || s.MinFrame != time.Millisecond {
		t.Errorf("min/max = %v/%v, oldest frame should be gone", s.MinFrame, s.MaxFrame)
	}
}

func TestPerfCollector_Empty(t *testing.T) {
	p, _ := newTestPerf(10)
	s := p.Stats()
	if s.Frames != 0 || s.AvgFrame != 0 || s.FPS != 0 {
		t.Errorf("empty stats = %+v", s)
	}
}

func TestPerfCollector_FPS(t *testing.T) {
	p, c := newTestPerf(10)
	p.RecordFrame()
	c.advance(20 * time.Millisecond)
	p.RecordFrame()

	s := p.Stats()
	if s.WallFrame != 20*time.Millisecond {
		t.Errorf("WallFrame = %v", s.WallFrame)
	}
	if math.Abs(s.FPS-50) > 1e-9 {
		t.Errorf("FPS = %f, want 50", s.FPS)
	}
}

func TestPerfCollector_WindowFull(t *testing.T) {
	p, c := newTestPerf(3)
	for i := 0; i < 2; i++ {
		frame(p, c, 0, 0)
		if p.WindowFull() {
			t.Fatalf("window full after %d frames", i+1)
		}
	}
	frame(p, c, 0, 0)
	if !p.WindowFull() {
		t.Fatal("window should be full after 3 frames")
	}
	if p.WindowFull() {
		t.Error("WindowFull should fire once per window")
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseEngine.String() != "engine" || Phase(42).String() != "unknown" {
		t.Errorf("names = %q, %q", PhaseEngine, Phase(42))
	}
}

func TestPerfStats_LogValue(t *testing.T) {
	var s PerfStats
	s.AvgFrame = 2 * time.Millisecond
	s.PhasePct[PhaseEngine] = 75

	v := s.LogValue()
	if v.Kind() != slog.KindGroup {
		t.Fatalf("kind = %v, want group", v.Kind())
	}
	got := map[string]slog.Value{}
	for _, a := range v.Group() {
		got[a.Key] = a.Value
	}
	if got["avg_frame_us"].Int64() != 2000 {
		t.Errorf("avg_frame_us = %v", got["avg_frame_us"])
	}
	if got["engine_pct"].Float64() != 75 {
		t.Errorf("engine_pct = %v", got["engine_pct"])
	}
	if _, ok := got["fps"]; ok {
		t.Error("fps should be omitted when unknown")
	}
}
