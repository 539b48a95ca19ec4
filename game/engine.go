package game

import (
	"math"
	"sort"

	"github.com/pthm-cable/noodles/components"
	"github.com/pthm-cable/noodles/config"
	"github.com/pthm-cable/noodles/input"
	"github.com/pthm-cable/noodles/systems"
)

// minGridCell keeps the trail grid from degenerating for tiny radii.
const minGridCell = 16.0

// Params holds the movement and collision parameters of the engine.
type Params struct {
	ArenaSize     float64
	Speed         float64
	TurnRate      float64
	Radius        float64
	GraceWindow   int
	MinSelfLength int
}

// ParamsFromConfig extracts engine parameters from cfg.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		ArenaSize:     cfg.Arena.Size,
		Speed:         cfg.Noodle.Speed,
		TurnRate:      cfg.Noodle.TurnRate,
		Radius:        cfg.Noodle.Radius,
		GraceWindow:   cfg.Collision.GraceWindow,
		MinSelfLength: cfg.Collision.MinSelfLength,
	}
}

// ContactDist returns the center distance below which two heads touch.
func (p Params) ContactDist() float64 {
	return 2 * p.Radius
}

// Death reports a noodle that died during a tick.
type Death struct {
	ID    uint32
	Cause components.DeathCause
	At    components.Point // last committed head
}

// Engine advances every noodle by one tick and resolves collisions.
type Engine struct {
	params    Params
	contactSq float64
	noodles   *Noodles
	grid      *systems.TrailGrid
	frozen    bool
	tick      int

	// Per-tick scratch, reused across ticks.
	cands   []systems.Candidate
	commits []systems.Candidate
	dying   systems.Dying
	solid   map[uint32]bool
}

// NewEngine creates an engine over the given noodles and indexes their
// current trails.
func NewEngine(p Params, noodles *Noodles) *Engine {
	contact := p.ContactDist()
	e := &Engine{
		params:    p,
		contactSq: contact * contact,
		noodles:   noodles,
		grid:      systems.NewTrailGrid(p.ArenaSize, math.Max(contact, minGridCell)),
		dying:     make(systems.Dying),
		solid:     make(map[uint32]bool),
	}
	e.Reindex()
	return e
}

// Params returns the engine parameters.
func (e *Engine) Params() Params { return e.params }

// Tick returns the number of ticks advanced so far.
func (e *Engine) Tick() int { return e.tick }

// Freeze stops Advance from doing anything until Thaw.
func (e *Engine) Freeze() { e.frozen = true }

// Thaw re-enables Advance.
func (e *Engine) Thaw() { e.frozen = false }

// Frozen reports whether Advance is currently a no-op.
func (e *Engine) Frozen() bool { return e.frozen }

// Reindex rebuilds the trail grid from the current trails. Call it after
// trails are replaced outside Advance (round reset).
func (e *Engine) Reindex() {
	e.grid.Clear()
	for _, id := range e.noodles.IDs() {
		_, _, trail, _, _ := e.noodles.Get(id)
		for i, p := range trail.Points {
			e.grid.Insert(id, i, p)
		}
	}
}

// Advance moves every living noodle forward by dt using the given intents and
// returns the noodles that died, ordered by ID. Every collision check sees the
// world as it was before the tick; surviving heads are committed together at
// the end. Intents for unknown IDs are ignored. Advance does nothing while
// the engine is frozen or when dt is not a positive finite number.
func (e *Engine) Advance(intents input.Intents, dt float64) []Death {
	if e.frozen || !(dt > 0) || math.IsInf(dt, 1) {
		return nil
	}
	e.tick++
	p := e.params

	clear(e.solid)
	clear(e.dying)
	e.cands = e.cands[:0]
	e.commits = e.commits[:0]

	// Turn and project. Trails are not touched yet.
	for _, id := range e.noodles.IDs() {
		_, heading, trail, life, _ := e.noodles.Get(id)
		if !life.Alive {
			continue
		}
		e.solid[id] = true
		systems.Turn(heading, intents[id], p.TurnRate, dt)
		e.cands = append(e.cands, systems.Candidate{
			ID: id,
			P:  systems.Project(trail.Head(), heading.Angle, p.Speed, dt),
		})
	}

	systems.HeadOn(e.cands, e.contactSq, e.dying)

	solid := func(owner uint32) bool { return e.solid[owner] }
	for _, c := range e.cands {
		if _, ok := e.dying[c.ID]; ok {
			continue
		}
		if !c.P.In(p.ArenaSize) {
			e.dying.Mark(c.ID, components.CauseWall)
			continue
		}
		_, _, trail, _, _ := e.noodles.Get(c.ID)
		limit := systems.SelfLimit(trail.Len(), p.GraceWindow, p.MinSelfLength)
		if cause := e.grid.Probe(c.P, e.contactSq, c.ID, limit, solid); cause != components.CauseNone {
			e.dying.Mark(c.ID, cause)
			continue
		}
		e.commits = append(e.commits, c)
	}

	for _, c := range e.commits {
		_, _, trail, _, _ := e.noodles.Get(c.ID)
		trail.Points = append(trail.Points, c.P)
		e.grid.Insert(c.ID, len(trail.Points)-1, c.P)
	}

	if len(e.dying) == 0 {
		return nil
	}
	deaths := make([]Death, 0, len(e.dying))
	for id, cause := range e.dying {
		_, _, trail, life, _ := e.noodles.Get(id)
		life.Alive = false
		life.Cause = cause
		life.Tick = e.tick
		deaths = append(deaths, Death{ID: id, Cause: cause, At: trail.Head()})
	}
	sort.Slice(deaths, func(i, j int) bool { return deaths[i].ID < deaths[j].ID })
	return deaths
}
