package systems

import (
	"github.com/pthm-cable/noodles/components"
	"github.com/pthm-cable/noodles/input"
)

// Turn applies the tick's turn intent. Left is applied before right, so
// pressing both leaves the heading where it was.
func Turn(h *components.Heading, in input.Intent, rate, dt float64) {
	if in.Left {
		h.Angle -= rate * dt
	}
	if in.Right {
		h.Angle += rate * dt
	}
}

// Project returns where a head moving along angle ends up after dt.
func Project(head components.Point, angle, speed, dt float64) components.Point {
	return head.Add(components.Direction(angle).Scale(speed * dt))
}
