package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/noodles/components"
	"github.com/pthm-cable/noodles/config"
	"github.com/pthm-cable/noodles/input"
)

// Noodles owns the ECS world holding every noodle of the match.
// Noodles are created once per match and never removed; a round only resets
// their components.
type Noodles struct {
	world *ecs.World

	mapper *ecs.Map5[
		components.Identity,
		components.Controls,
		components.Heading,
		components.Trail,
		components.Life,
	]
	filter *ecs.Filter5[
		components.Identity,
		components.Controls,
		components.Heading,
		components.Trail,
		components.Life,
	]
	lifeMap *ecs.Map1[components.Life]

	byID   map[uint32]ecs.Entity
	order  []uint32 // ascending ID
	nextID uint32
}

// NewNoodles creates an empty arena world.
func NewNoodles() *Noodles {
	world := ecs.NewWorld()
	return &Noodles{
		world: world,
		mapper: ecs.NewMap5[
			components.Identity,
			components.Controls,
			components.Heading,
			components.Trail,
			components.Life,
		](world),
		filter: ecs.NewFilter5[
			components.Identity,
			components.Controls,
			components.Heading,
			components.Trail,
			components.Life,
		](world),
		lifeMap: ecs.NewMap1[components.Life](world),
		byID:    make(map[uint32]ecs.Entity),
		nextID:  1,
	}
}

// Spawn creates a noodle at start facing angle and returns its ID.
// IDs start at 1 and increase in spawn order.
func (n *Noodles) Spawn(name string, color config.RGB, controls components.Controls, start components.Point, angle float64) uint32 {
	id := n.nextID
	n.nextID++

	ident := components.Identity{ID: id, Name: name, Color: color, Slot: len(n.order)}
	heading := components.Heading{Angle: angle}
	trail := components.Trail{Points: []components.Point{start}}
	life := components.Life{Alive: true}

	e := n.mapper.NewEntity(&ident, &controls, &heading, &trail, &life)
	n.byID[id] = e
	n.order = append(n.order, id)
	return id
}

// Get returns the components of the noodle with the given ID.
// ok is false for unknown IDs.
func (n *Noodles) Get(id uint32) (ident *components.Identity, heading *components.Heading, trail *components.Trail, life *components.Life, ok bool) {
	e, found := n.byID[id]
	if !found || !n.world.Alive(e) {
		return nil, nil, nil, nil, false
	}
	ident, _, heading, trail, life = n.mapper.Get(e)
	return ident, heading, trail, life, true
}

// Controls returns the key names bound to the noodle's turns.
func (n *Noodles) Controls(id uint32) (components.Controls, bool) {
	e, found := n.byID[id]
	if !found {
		return components.Controls{}, false
	}
	_, ctl, _, _, _ := n.mapper.Get(e)
	return *ctl, true
}

// IDs returns every noodle ID in ascending order. The slice must not be modified.
func (n *Noodles) IDs() []uint32 {
	return n.order
}

// Len returns the number of noodles.
func (n *Noodles) Len() int {
	return len(n.order)
}

// AliveIDs returns the IDs of living noodles in ascending order.
func (n *Noodles) AliveIDs() []uint32 {
	var out []uint32
	for _, id := range n.order {
		if n.lifeMap.Get(n.byID[id]).Alive {
			out = append(out, id)
		}
	}
	return out
}

// AliveCount returns the number of living noodles.
func (n *Noodles) AliveCount() int {
	count := 0
	query := n.filter.Query()
	for query.Next() {
		_, _, _, _, life := query.Get()
		if life.Alive {
			count++
		}
	}
	return count
}

// Poses returns what autopilots see of every noodle, ordered by ID.
func (n *Noodles) Poses() []input.Pose {
	out := make([]input.Pose, 0, len(n.order))
	for _, id := range n.order {
		_, _, heading, trail, life := n.mapper.Get(n.byID[id])
		out = append(out, input.Pose{
			ID:      id,
			Head:    trail.Head(),
			Heading: heading.Angle,
			Alive:   life.Alive,
		})
	}
	return out
}
