package game

import (
	"github.com/pthm-cable/noodles/components"
	"github.com/pthm-cable/noodles/config"
)

// NoodleView is a read-only copy of one noodle for presentation.
type NoodleView struct {
	ID      uint32
	Name    string
	Color   config.RGB
	Trail   []components.Point // capped: appending never touches engine state
	Heading float64
	Alive   bool
	Cause   components.DeathCause
	Score   int
}

// Head returns the newest trail point.
func (v NoodleView) Head() components.Point {
	return v.Trail[len(v.Trail)-1]
}

// View is what sinks may read about the arena.
type View struct {
	ArenaSize float64
	Tick      int
	State     RoundState
	MatchOver bool
	Leaders   []uint32
	Noodles   []NoodleView // ascending ID
}

// Noodle returns the view of id.
func (v *View) Noodle(id uint32) (NoodleView, bool) {
	for _, n := range v.Noodles {
		if n.ID == id {
			return n, true
		}
	}
	return NoodleView{}, false
}

// Frame is handed to every sink once per game frame.
type Frame struct {
	View        View
	Deaths      []Death      // this frame, all sub-steps
	Transitions []Transition // controller changes this frame
	Delta       float64      // wall-clock seconds since the previous frame
}

// Has reports whether t happened this frame.
func (f *Frame) Has(t Transition) bool {
	for _, x := range f.Transitions {
		if x == t {
			return true
		}
	}
	return false
}

// Sink presents frames. Present is called on the loop goroutine and must not
// retain the frame's slices past the call unless it copies them.
type Sink interface {
	Present(frame Frame)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(frame Frame)

// Present calls f.
func (f SinkFunc) Present(frame Frame) { f(frame) }

// View builds a presentation view of the current state.
func (g *Game) View() View {
	state := g.match.State()
	v := View{
		ArenaSize: g.engine.Params().ArenaSize,
		Tick:      g.engine.Tick(),
		State:     state,
		MatchOver: g.match.MatchOver(),
		Leaders:   g.match.Leaders(),
		Noodles:   make([]NoodleView, 0, g.noodles.Len()),
	}
	for _, id := range g.noodles.IDs() {
		ident, heading, trail, life, _ := g.noodles.Get(id)
		n := len(trail.Points)
		v.Noodles = append(v.Noodles, NoodleView{
			ID:      id,
			Name:    ident.Name,
			Color:   ident.Color,
			Trail:   trail.Points[:n:n],
			Heading: heading.Angle,
			Alive:   life.Alive,
			Cause:   life.Cause,
			Score:   state.Scores[id],
		})
	}
	return v
}
