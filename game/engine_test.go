package game

import (
	"math"
	"testing"

	"github.com/pthm-cable/noodles/components"
	"github.com/pthm-cable/noodles/config"
	"github.com/pthm-cable/noodles/input"
)

func testParams() Params {
	return Params{
		ArenaSize:     800,
		Speed:         40,
		TurnRate:      3,
		Radius:        5,
		GraceWindow:   10,
		MinSelfLength: 20,
	}
}

type placement struct {
	start components.Point
	angle float64
}

// newTestEngine spawns one noodle per placement, IDs in order starting at 1.
func newTestEngine(p Params, ps ...placement) (*Engine, *Noodles) {
	n := NewNoodles()
	for i, pl := range ps {
		n.Spawn("n", config.RGB{}, components.Controls{Left: string(rune('a' + 2*i)), Right: string(rune('b' + 2*i))}, pl.start, pl.angle)
	}
	return NewEngine(p, n), n
}

// setTrail replaces a trail and reindexes the engine.
func setTrail(e *Engine, n *Noodles, id uint32, pts ...components.Point) {
	_, _, trail, _, _ := n.Get(id)
	trail.Points = append([]components.Point(nil), pts...)
	e.Reindex()
}

func TestAdvance_Straight(t *testing.T) {
	e, n := newTestEngine(testParams(), placement{components.Point{X: 100, Y: 100}, 0})

	for i := 0; i < 10; i++ {
		if deaths := e.Advance(nil, 0.1); deaths != nil {
			t.Fatalf("tick %d: unexpected deaths %v", i, deaths)
		}
	}

	_, _, trail, _, _ := n.Get(1)
	if trail.Len() != 11 {
		t.Fatalf("trail len = %d, want 11", trail.Len())
	}
	head := trail.Head()
	if math.Abs(head.X-140) > 1e-9 || math.Abs(head.Y-100) > 1e-9 {
		t.Errorf("head = %+v, want (140, 100)", head)
	}
	if e.Tick() != 10 {
		t.Errorf("tick = %d, want 10", e.Tick())
	}
}

func TestAdvance_Turn(t *testing.T) {
	tests := []struct {
		name   string
		intent input.Intent
		want   float64
	}{
		{"none", input.Intent{}, 0},
		{"left", input.Intent{Left: true}, -0.3},
		{"right", input.Intent{Right: true}, 0.3},
		{"both", input.Intent{Left: true, Right: true}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, n := newTestEngine(testParams(), placement{components.Point{X: 400, Y: 400}, 0})
			e.Advance(input.Intents{1: tt.intent}, 0.1)
			_, h, _, _, _ := n.Get(1)
			if math.Abs(h.Angle-tt.want) > 1e-9 {
				t.Errorf("heading = %v, want %v", h.Angle, tt.want)
			}
		})
	}
}

func TestAdvance_UnknownIntentIgnored(t *testing.T) {
	e, n := newTestEngine(testParams(), placement{components.Point{X: 400, Y: 400}, 1})
	e.Advance(input.Intents{99: {Left: true}}, 0.1)

	_, h, trail, life, _ := n.Get(1)
	if h.Angle != 1 {
		t.Errorf("heading changed to %v", h.Angle)
	}
	if !life.Alive || trail.Len() != 2 {
		t.Errorf("alive=%v len=%d, want alive with 2 points", life.Alive, trail.Len())
	}
}

func TestAdvance_WallDeathNotAppended(t *testing.T) {
	e, n := newTestEngine(testParams(), placement{components.Point{X: 798, Y: 400}, 0})

	deaths := e.Advance(nil, 0.1)
	if len(deaths) != 1 || deaths[0].ID != 1 || deaths[0].Cause != components.CauseWall {
		t.Fatalf("deaths = %+v, want one wall death", deaths)
	}
	if deaths[0].At != (components.Point{X: 798, Y: 400}) {
		t.Errorf("death at %+v, want last committed head", deaths[0].At)
	}

	_, _, trail, life, _ := n.Get(1)
	if life.Alive || life.Cause != components.CauseWall || life.Tick != 1 {
		t.Errorf("life = %+v", *life)
	}
	if trail.Len() != 1 {
		t.Errorf("trail len = %d, want 1 (candidate must not be appended)", trail.Len())
	}
}

func TestAdvance_WallBoundsHalfOpen(t *testing.T) {
	// Moving toward -x from just inside the origin edge.
	e, _ := newTestEngine(testParams(), placement{components.Point{X: 3, Y: 400}, math.Pi})
	deaths := e.Advance(nil, 0.1)
	if len(deaths) != 1 || deaths[0].Cause != components.CauseWall {
		t.Fatalf("deaths = %+v, want wall death below 0", deaths)
	}
}

func TestAdvance_DeadNoodleFrozen(t *testing.T) {
	e, n := newTestEngine(testParams(),
		placement{components.Point{X: 798, Y: 400}, 0},
		placement{components.Point{X: 100, Y: 100}, 0},
	)
	e.Advance(nil, 0.1)

	_, h, trail, _, _ := n.Get(1)
	before := append([]components.Point(nil), trail.Points...)
	angle := h.Angle

	for i := 0; i < 5; i++ {
		if deaths := e.Advance(input.Intents{1: {Left: true}}, 0.1); deaths != nil {
			t.Fatalf("dead noodle reported again: %+v", deaths)
		}
	}

	_, h, trail, life, _ := n.Get(1)
	if life.Alive {
		t.Fatal("dead noodle came back")
	}
	if h.Angle != angle {
		t.Errorf("heading changed after death: %v -> %v", angle, h.Angle)
	}
	if len(trail.Points) != len(before) {
		t.Fatalf("trail grew after death: %d -> %d", len(before), len(trail.Points))
	}
	for i := range before {
		if trail.Points[i] != before[i] {
			t.Errorf("point %d changed after death", i)
		}
	}
}

func TestAdvance_HeadOnEndToEnd(t *testing.T) {
	e, n := newTestEngine(testParams(),
		placement{components.Point{X: 200, Y: 400}, 0},
		placement{components.Point{X: 600, Y: 400}, math.Pi},
	)

	var deaths []Death
	ticks := 0
	for deaths == nil && ticks < 100 {
		deaths = e.Advance(nil, 0.1)
		ticks++
	}

	if len(deaths) != 2 {
		t.Fatalf("deaths = %+v, want both noodles", deaths)
	}
	for i, d := range deaths {
		if d.ID != uint32(i+1) {
			t.Errorf("deaths not sorted by id: %+v", deaths)
		}
		if d.Cause != components.CauseHeadOn {
			t.Errorf("noodle %d cause = %v, want head-on", d.ID, d.Cause)
		}
	}
	// Distance closes 8 per tick from 400; contact is below 10.
	if ticks != 49 {
		t.Errorf("died on tick %d, want 49", ticks)
	}
	if n.AliveCount() != 0 {
		t.Errorf("alive = %d, want 0", n.AliveCount())
	}
}

func TestAdvance_HeadOnOrderIndependent(t *testing.T) {
	a := placement{components.Point{X: 396, Y: 400}, 0}
	b := placement{components.Point{X: 404, Y: 400}, math.Pi}
	c := placement{components.Point{X: 100, Y: 100}, 0}

	for _, order := range [][]placement{{a, b, c}, {b, a, c}, {c, b, a}} {
		e, _ := newTestEngine(testParams(), order...)
		deaths := e.Advance(nil, 0.1)
		if len(deaths) != 2 {
			t.Fatalf("order %v: deaths = %+v, want 2", order, deaths)
		}
		for _, d := range deaths {
			if d.Cause != components.CauseHeadOn {
				t.Errorf("order %v: cause = %v", order, d.Cause)
			}
		}
	}
}

func TestAdvance_ExactContactIsSafe(t *testing.T) {
	// Candidates end exactly 2*radius apart.
	e, _ := newTestEngine(testParams(),
		placement{components.Point{X: 391, Y: 400}, 0},
		placement{components.Point{X: 409, Y: 400}, math.Pi},
	)
	if deaths := e.Advance(nil, 0.1); deaths != nil {
		t.Errorf("deaths = %+v, want none at exact contact distance", deaths)
	}
}

func TestAdvance_TrailCollision(t *testing.T) {
	e, n := newTestEngine(testParams(),
		placement{components.Point{X: 300, Y: 390}, math.Pi / 2},
		placement{components.Point{X: 320, Y: 400}, 0},
	)
	setTrail(e, n, 2,
		components.Point{X: 280, Y: 400},
		components.Point{X: 290, Y: 400},
		components.Point{X: 300, Y: 400},
		components.Point{X: 310, Y: 400},
		components.Point{X: 320, Y: 400},
	)

	deaths := e.Advance(nil, 0.1)
	if len(deaths) != 1 || deaths[0].ID != 1 || deaths[0].Cause != components.CauseTrail {
		t.Fatalf("deaths = %+v, want noodle 1 on trail", deaths)
	}

	_, _, trail, life, _ := n.Get(2)
	if !life.Alive || trail.Len() != 6 {
		t.Errorf("noodle 2 alive=%v len=%d, want alive with 6 points", life.Alive, trail.Len())
	}
}

func TestAdvance_DeadTrailNotSolid(t *testing.T) {
	e, n := newTestEngine(testParams(),
		placement{components.Point{X: 300, Y: 390}, math.Pi / 2},
		placement{components.Point{X: 320, Y: 400}, 0},
	)
	setTrail(e, n, 2,
		components.Point{X: 300, Y: 400},
		components.Point{X: 320, Y: 400},
	)
	_, _, _, life, _ := n.Get(2)
	life.Alive = false

	if deaths := e.Advance(nil, 0.1); deaths != nil {
		t.Errorf("deaths = %+v, dead trails must not kill", deaths)
	}
}

func TestAdvance_SelfCollision(t *testing.T) {
	loop := []components.Point{
		{X: 100, Y: 100},
		{X: 100, Y: 130},
		{X: 130, Y: 130},
		{X: 130, Y: 100},
	}

	tests := []struct {
		name   string
		head   components.Point
		grace  int
		minLen int
		dies   bool
	}{
		{"below min length", components.Point{X: 110, Y: 100}, 2, 20, false},
		// 4 units per tick lands the head exactly on the first loop point.
		{"below min length on trail point", components.Point{X: 104, Y: 100}, 2, 20, false},
		{"oldest point eligible", components.Point{X: 110, Y: 100}, 2, 0, true},
		{"exact trail point eligible", components.Point{X: 104, Y: 100}, 2, 0, true},
		{"grace covers whole trail", components.Point{X: 110, Y: 100}, 5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams()
			p.GraceWindow = tt.grace
			p.MinSelfLength = tt.minLen
			e, n := newTestEngine(p, placement{tt.head, math.Pi})
			setTrail(e, n, 1, append(append([]components.Point(nil), loop...), tt.head)...)

			deaths := e.Advance(nil, 0.1)
			if tt.dies {
				if len(deaths) != 1 || deaths[0].Cause != components.CauseSelf {
					t.Fatalf("deaths = %+v, want self", deaths)
				}
				return
			}
			if deaths != nil {
				t.Fatalf("deaths = %+v, want none", deaths)
			}
		})
	}
}

func TestAdvance_FrozenAndBadDelta(t *testing.T) {
	e, n := newTestEngine(testParams(), placement{components.Point{X: 400, Y: 400}, 0})

	e.Freeze()
	e.Advance(nil, 0.1)
	if !e.Frozen() || e.Tick() != 0 {
		t.Fatalf("frozen engine advanced to tick %d", e.Tick())
	}
	e.Thaw()

	for _, dt := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		e.Advance(nil, dt)
	}
	_, _, trail, _, _ := n.Get(1)
	if trail.Len() != 1 || e.Tick() != 0 {
		t.Errorf("bad deltas advanced the engine: len=%d tick=%d", trail.Len(), e.Tick())
	}
}
