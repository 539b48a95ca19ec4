// Package systems provides the per-tick building blocks of the simulation.
package systems

import "github.com/pthm-cable/noodles/components"

// TrailRef is one committed trail point in the grid.
type TrailRef struct {
	Owner uint32
	Index int32 // position in the owner's trail
	P     components.Point
}

// TrailGrid buckets committed trail points so collision probes only visit
// nearby cells. Trails are append-only within a round, so points are inserted
// as they are committed and the grid is cleared on round reset.
type TrailGrid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]TrailRef
}

// NewTrailGrid creates a grid covering a square arena. cellSize must be at
// least the contact distance so a probe only needs the 3x3 neighborhood.
func NewTrailGrid(arenaSize, cellSize float64) *TrailGrid {
	cols := int(arenaSize/cellSize) + 1
	cells := make([][]TrailRef, cols*cols)
	for i := range cells {
		cells[i] = make([]TrailRef, 0, 8)
	}
	return &TrailGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     cols,
		cells:    cells,
	}
}

// Clear removes all points from the grid.
func (g *TrailGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds the owner's trail point at index.
func (g *TrailGrid) Insert(owner uint32, index int, p components.Point) {
	idx := g.cellIndex(p)
	g.cells[idx] = append(g.cells[idx], TrailRef{Owner: owner, Index: int32(index), P: p})
}

// Len returns the number of indexed points.
func (g *TrailGrid) Len() int {
	n := 0
	for _, c := range g.cells {
		n += len(c)
	}
	return n
}

// Probe reports what p collides with, if anything. Points owned by self count
// only when their index is below selfLimit; points of other owners count only
// when solid(owner) is true. A hit on another trail takes precedence over a
// self hit so the result does not depend on cell iteration order.
func (g *TrailGrid) Probe(p components.Point, contactSq float64, self uint32, selfLimit int, solid func(owner uint32) bool) components.DeathCause {
	centerCol := int(p.X / g.cellSize)
	centerRow := int(p.Y / g.cellSize)

	hitSelf := false
	for dr := -1; dr <= 1; dr++ {
		row := centerRow + dr
		if row < 0 || row >= g.rows {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			col := centerCol + dc
			if col < 0 || col >= g.cols {
				continue
			}
			for _, ref := range g.cells[row*g.cols+col] {
				if components.DistanceSq(p, ref.P) >= contactSq {
					continue
				}
				if ref.Owner == self {
					if int(ref.Index) < selfLimit {
						hitSelf = true
					}
					continue
				}
				if solid(ref.Owner) {
					return components.CauseTrail
				}
			}
		}
	}

	if hitSelf {
		return components.CauseSelf
	}
	return components.CauseNone
}

// cellIndex returns the flat index for an arena position.
func (g *TrailGrid) cellIndex(p components.Point) int {
	col := int(p.X / g.cellSize)
	row := int(p.Y / g.cellSize)

	// Clamp to valid range
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return row*g.cols + col
}
