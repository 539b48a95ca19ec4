package telemetry

import (
	"log/slog"
	"time"
)

// Phase is one timed section of a game frame.
type Phase int

const (
	PhaseInput Phase = iota
	PhaseEngine
	PhaseMatch
	PhasePresent
	numPhases
)

var phaseNames = [numPhases]string{"input", "engine", "match", "present"}

func (p Phase) String() string {
	if p >= 0 && p < numPhases {
		return phaseNames[p]
	}
	return "unknown"
}

// frameSample is the timing of one frame.
type frameSample struct {
	total  time.Duration
	phases [numPhases]time.Duration
}

// PerfCollector times frame phases over a ring of the last window frames.
type PerfCollector struct {
	now    func() time.Time
	ring   []frameSample
	next   int
	filled int
	since  int // frames since WindowFull last fired

	cur        frameSample
	frameStart time.Time
	phaseStart time.Time
	phase      Phase
	inPhase    bool

	lastPresent time.Time
	wallFrame   time.Duration
}

// NewPerfCollector creates a collector over window frames.
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{
		now:  time.Now,
		ring: make([]frameSample, window),
	}
}

// SetClock replaces the time source.
func (p *PerfCollector) SetClock(now func() time.Time) { p.now = now }

// StartTick begins a frame.
func (p *PerfCollector) StartTick() {
	p.cur = frameSample{}
	p.frameStart = p.now()
	p.inPhase = false
}

// StartPhase closes the open phase and opens ph.
func (p *PerfCollector) StartPhase(ph Phase) {
	t := p.now()
	p.closePhase(t)
	p.phase, p.phaseStart, p.inPhase = ph, t, true
}

func (p *PerfCollector) closePhase(t time.Time) {
	if p.inPhase {
		p.cur.phases[p.phase] += t.Sub(p.phaseStart)
	}
}

// EndTick closes the frame and stores it in the ring.
func (p *PerfCollector) EndTick() {
	t := p.now()
	p.closePhase(t)
	p.inPhase = false
	p.cur.total = t.Sub(p.frameStart)

	p.ring[p.next] = p.cur
	p.next = (p.next + 1) % len(p.ring)
	p.filled = min(p.filled+1, len(p.ring))
	p.since++
}

// WindowFull returns true once per window frames.
func (p *PerfCollector) WindowFull() bool {
	if p.since < len(p.ring) {
		return false
	}
	p.since = 0
	return true
}

// RecordFrame marks the end of a presented frame, for wall-clock FPS.
func (p *PerfCollector) RecordFrame() {
	t := p.now()
	if !p.lastPresent.IsZero() {
		p.wallFrame = t.Sub(p.lastPresent)
	}
	p.lastPresent = t
}

// PerfStats summarizes the frames in the ring.
type PerfStats struct {
	Frames   int
	AvgFrame time.Duration
	MinFrame time.Duration
	MaxFrame time.Duration

	PhaseAvg [numPhases]time.Duration
	PhasePct [numPhases]float64 // share of AvgFrame

	WallFrame time.Duration // last presented frame interval
	FPS       float64
}

// Stats aggregates the current ring.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{Frames: p.filled, WallFrame: p.wallFrame}
	if p.wallFrame > 0 {
		s.FPS = float64(time.Second) / float64(p.wallFrame)
	}
	if p.filled == 0 {
		return s
	}

	var total time.Duration
	var sums [numPhases]time.Duration
	for i, f := range p.ring[:p.filled] {
		total += f.total
		if i == 0 || f.total < s.MinFrame {
			s.MinFrame = f.total
		}
		s.MaxFrame = max(s.MaxFrame, f.total)
		for ph, d := range f.phases {
			sums[ph] += d
		}
	}

	n := time.Duration(p.filled)
	s.AvgFrame = total / n
	for ph := range sums {
		s.PhaseAvg[ph] = sums[ph] / n
		if total > 0 {
			s.PhasePct[ph] = float64(sums[ph]) / float64(total) * 100
		}
	}
	return s
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("frames", s.Frames),
		slog.Int64("avg_frame_us", s.AvgFrame.Microseconds()),
		slog.Int64("min_frame_us", s.MinFrame.Microseconds()),
		slog.Int64("max_frame_us", s.MaxFrame.Microseconds()),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for ph := PhaseInput; ph < numPhases; ph++ {
		attrs = append(attrs, slog.Float64(ph.String()+"_pct", s.PhasePct[ph]))
	}
	return slog.GroupValue(attrs...)
}

// LogStats logs the stats at info level.
func (s PerfStats) LogStats(tick int) {
	slog.Info("perf", "tick", tick, "stats", s)
}
