// Package game runs the noodle arena: the engine, the round controller and
// the frame orchestration around them.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/noodles/components"
	"github.com/pthm-cable/noodles/config"
	"github.com/pthm-cable/noodles/input"
	"github.com/pthm-cable/noodles/systems"
	"github.com/pthm-cable/noodles/telemetry"
)

// Options holds runtime settings that are not part of the config file.
type Options struct {
	Seed        int64
	Autopilot   bool    // drive every noodle with input.Autopilot
	AutoAdvance float64 // seconds to wait before acknowledging a finished round; 0 = wait for input
	LogPerf     bool
}

// Game holds the complete arena state. It is owned by a single goroutine;
// only the KeyState may be written from elsewhere.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	noodles *Noodles
	engine  *Engine
	match   *Match

	bindings *input.Bindings
	keys     *input.KeyState
	pilot    *input.Autopilot
	delta    DeltaPolicy

	sinks []Sink
	perf  *telemetry.PerfCollector
	stats *telemetry.Collector

	autoAdvance float64
	waited      float64
	advanceReq  bool
	quit        bool
	logPerf     bool
}

// NewGame creates the match described by cfg and starts round 1.
func NewGame(cfg *config.Config, opts Options) *Game {
	g := &Game{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		noodles:  NewNoodles(),
		bindings: input.NewBindings(cfg.Keys.Advance, cfg.Keys.Quit),
		keys:     input.NewKeyState(),
		delta: DeltaPolicy{
			MaxFrame: cfg.Timing.MaxFrameDelta,
			MaxStep:  cfg.Timing.MaxStep,
		},
		perf:        telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		stats:       telemetry.NewCollector(),
		autoAdvance: opts.AutoAdvance,
		logPerf:     opts.LogPerf,
	}

	for i, p := range cfg.Players {
		start := systems.SpawnPosition(i, cfg.Spawn.SlotSpacing, cfg.Spawn.GridWidth)
		id := g.noodles.Spawn(p.Name, cfg.Derived.PlayerColors[i], components.Controls{Left: p.Left, Right: p.Right}, start, 0)
		g.bindings.Bind(p.Left, id, input.TurnLeft)
		g.bindings.Bind(p.Right, id, input.TurnRight)
	}

	g.engine = NewEngine(ParamsFromConfig(cfg), g.noodles)
	g.match = NewMatch(g.noodles, g.engine, Spawn{
		SlotSpacing: cfg.Spawn.SlotSpacing,
		GridWidth:   cfg.Spawn.GridWidth,
	}, cfg.Match.Rounds, g.rng)

	if opts.Autopilot {
		g.pilot = input.NewAutopilot(g.rng, g.bindings, cfg.Arena.Size)
	}

	slog.Info("match started",
		"noodles", g.noodles.Len(),
		"rounds", cfg.Match.Rounds,
		"seed", opts.Seed,
	)
	return g
}

// Keys returns the key state input sources write into.
func (g *Game) Keys() *input.KeyState { return g.keys }

// Bindings returns the key bindings.
func (g *Game) Bindings() *input.Bindings { return g.bindings }

// Match returns the round controller.
func (g *Game) Match() *Match { return g.match }

// Engine returns the simulation engine.
func (g *Game) Engine() *Engine { return g.engine }

// Noodles returns the noodle arena.
func (g *Game) Noodles() *Noodles { return g.noodles }

// Stats returns the round telemetry.
func (g *Game) Stats() *telemetry.Collector { return g.stats }

// AddSink registers a sink that receives every frame.
func (g *Game) AddSink(s Sink) { g.sinks = append(g.sinks, s) }

// RequestAdvance acknowledges the round on the next frame, as if the advance
// key had been pressed.
func (g *Game) RequestAdvance() { g.advanceReq = true }

// RequestQuit makes Quit report true.
func (g *Game) RequestQuit() { g.quit = true }

// Quit reports whether the quit key was pressed or quit was requested.
func (g *Game) Quit() bool { return g.quit }

// Update runs one frame: it reads input, advances the engine by frameDelta
// in sub-steps while the round is running, or waits for acknowledgment
// while it is not, then presents the result to every sink.
func (g *Game) Update(frameDelta float64) {
	g.perf.StartTick()
	g.perf.StartPhase(telemetry.PhaseInput)

	steps, step := g.delta.Steps(frameDelta)
	if g.pilot != nil && steps > 0 {
		g.pilot.Drive(g.keys, g.noodles.Poses(), float64(steps)*step)
	}

	snap := g.keys.Snapshot()
	if snap.WasPressed(g.bindings.Quit()) {
		g.quit = true
	}
	intents := g.bindings.Resolve(snap)
	advance := g.advanceReq || snap.WasPressed(g.bindings.Advance())
	g.advanceReq = false

	frame := Frame{Delta: frameDelta}

	if g.match.Phase() == AwaitingAdvance {
		g.perf.StartPhase(telemetry.PhaseMatch)
		if g.autoAdvance > 0 && steps > 0 {
			g.waited += float64(steps) * step
			if g.waited >= g.autoAdvance {
				advance = true
			}
		}
		if advance {
			g.acknowledge(&frame)
		}
	} else {
		for i := 0; i < steps; i++ {
			g.perf.StartPhase(telemetry.PhaseEngine)
			deaths := g.engine.Advance(intents, step)
			g.stats.RecordTick(step)

			g.perf.StartPhase(telemetry.PhaseMatch)
			if len(deaths) == 0 {
				continue
			}
			for _, d := range deaths {
				g.stats.RecordDeath(d.Cause)
				slog.Debug("noodle died", "id", d.ID, "cause", d.Cause.String(), "tick", g.engine.Tick())
			}
			frame.Deaths = append(frame.Deaths, deaths...)

			if t := g.match.Observe(deaths); t != NoTransition {
				frame.Transitions = append(frame.Transitions, t)
				g.endRound()
				break
			}
		}
	}

	g.perf.StartPhase(telemetry.PhasePresent)
	if len(g.sinks) > 0 {
		frame.View = g.View()
		for _, s := range g.sinks {
			s.Present(frame)
		}
	}
	g.perf.EndTick()

	if g.logPerf && g.perf.WindowFull() {
		g.perf.Stats().LogStats(g.engine.Tick())
	}
}

// PerfStats returns frame timing over the current window.
func (g *Game) PerfStats() telemetry.PerfStats { return g.perf.Stats() }

// RecordFrame feeds wall-clock frame timing to the perf collector.
func (g *Game) RecordFrame() { g.perf.RecordFrame() }

func (g *Game) endRound() {
	winner := g.match.Winner()
	name := ""
	if ident, _, _, _, ok := g.noodles.Get(winner); ok {
		name = ident.Name
	}
	g.stats.EndRound(winner, name).LogStats()
	g.waited = 0
}

func (g *Game) acknowledge(frame *Frame) {
	t := g.match.Acknowledge()
	if t == NoTransition {
		return
	}
	frame.Transitions = append(frame.Transitions, t)
	if t == MatchReset {
		slog.Info("match over", "run", g.stats.Summary())
	}
	g.stats.StartRound(g.match.Round())
	g.waited = 0
	slog.Info("round started", "round", g.match.Round(), "transition", t.String())
}
