// Package components defines ECS components for noodles.
package components

import "github.com/pthm-cable/noodles/config"

// Identity holds per-match display metadata. ID 0 is never assigned.
type Identity struct {
	ID    uint32
	Name  string
	Color config.RGB
	Slot  int // roster order; also the spawn grid index
}

// Controls names the keys bound to a noodle's turn intents.
type Controls struct {
	Left, Right string
}

// Heading is the direction of travel in radians. It is not wrapped.
type Heading struct {
	Angle float64
}

// Trail is the ordered position history since the last round reset.
// The last point is the head.
type Trail struct {
	Points []Point
}

// Head returns the newest point. The trail must be non-empty.
func (t *Trail) Head() Point {
	return t.Points[len(t.Points)-1]
}

// Len returns the number of points.
func (t *Trail) Len() int {
	return len(t.Points)
}

// Life tracks whether a noodle is still racing this round.
type Life struct {
	Alive bool
	Cause DeathCause
	Tick  int // engine tick of death; 0 while alive
}

// DeathCause describes why a noodle died.
type DeathCause uint8

const (
	CauseNone DeathCause = iota
	CauseWall
	CauseHeadOn
	CauseTrail
	CauseSelf
)

var causeNames = [...]string{"none", "wall", "head-on", "trail", "self"}

// String returns the log name of the cause.
func (c DeathCause) String() string {
	if int(c) < len(causeNames) {
		return causeNames[c]
	}
	return "unknown"
}
