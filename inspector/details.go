package inspector

import (
	"fmt"
	"math"

	"github.com/pthm-cable/noodles/components"
	"github.com/pthm-cable/noodles/game"
)

// Details is what the panel shows about one noodle.
type Details struct {
	ID       uint32  `inspect:"skip"`
	Name     string  `inspect:"skip"`
	Head     string  `inspect:"label"`
	Heading  float64 `inspect:"angle"`
	TrailLen int     `inspect:"label,name:Trail"`
	Alive    bool
	Status   string  `inspect:"label"`
	Score    int     `inspect:"label,name:Wins"`
	Share    float64 `inspect:"bar,name:Win share"`
}

// Describe collects the details of noodle id from v.
func Describe(v *game.View, id uint32) (Details, bool) {
	n, ok := v.Noodle(id)
	if !ok {
		return Details{}, false
	}
	head := n.Head()
	d := Details{
		ID:       n.ID,
		Name:     n.Name,
		Head:     fmt.Sprintf("(%.0f, %.0f)", head.X, head.Y),
		Heading:  math.Mod(n.Heading, 2*math.Pi),
		TrailLen: len(n.Trail),
		Alive:    n.Alive,
		Status:   "racing",
		Score:    n.Score,
	}
	if d.Heading < 0 {
		d.Heading += 2 * math.Pi
	}
	switch {
	case v.State.Phase == game.AwaitingAdvance && v.State.Winner == id:
		d.Status = "winner"
	case !n.Alive:
		d.Status = n.Cause.String()
	}
	if v.State.Round > 0 {
		d.Share = float64(n.Score) / float64(v.State.Round)
	}
	return d, true
}

// Pick returns the noodle whose head is nearest to (x, y) in arena units,
// if it lies within tolerance.
func Pick(v *game.View, x, y, tolerance float64) (uint32, bool) {
	best := tolerance
	at := components.Point{X: x, Y: y}
	var id uint32
	found := false
	for i := range v.Noodles {
		n := &v.Noodles[i]
		if d := components.Distance(n.Head(), at); d <= best {
			best = d
			id = n.ID
			found = true
		}
	}
	return id, found
}
