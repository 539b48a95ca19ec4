package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/noodles/components"
)

// SpawnPosition returns the start point for the index-th noodle. Noodles fill
// a grid of gridWidth columns, one slotSpacing apart, offset one slot from the
// arena origin so no start point sits on a wall.
func SpawnPosition(index int, slotSpacing float64, gridWidth int) components.Point {
	if gridWidth < 1 {
		gridWidth = 1
	}
	col := index % gridWidth
	row := index / gridWidth
	return components.Point{
		X: float64(col+1) * slotSpacing,
		Y: float64(row+1) * slotSpacing,
	}
}

// RandomHeading returns a uniformly distributed angle in [0, 2π).
func RandomHeading(rng *rand.Rand) float64 {
	return rng.Float64() * 2 * math.Pi
}

// ResetForRound puts a noodle back on the start line.
func ResetForRound(trail *components.Trail, heading *components.Heading, life *components.Life, start components.Point, angle float64) {
	// Fresh backing array: views handed out last round keep their points.
	trail.Points = make([]components.Point, 1, 256)
	trail.Points[0] = start
	heading.Angle = angle
	*life = components.Life{Alive: true}
}
