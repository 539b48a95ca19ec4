package input

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/noodles/components"
)

// Pose is what a pilot can see of its own noodle.
type Pose struct {
	ID      uint32
	Head    components.Point
	Heading float64
	Alive   bool
}

type pilotState struct {
	intent Intent
	hold   float64 // seconds until a new random choice
}

// Autopilot drives noodles in headless runs by pressing their bound keys.
// It wanders randomly and steers toward the arena center when a wall is near.
type Autopilot struct {
	rng      *rand.Rand
	bindings *Bindings
	size     float64
	margin   float64
	pilots   map[uint32]*pilotState
}

// NewAutopilot creates an autopilot for an arena of the given size.
func NewAutopilot(rng *rand.Rand, b *Bindings, arenaSize float64) *Autopilot {
	return &Autopilot{
		rng:      rng,
		bindings: b,
		size:     arenaSize,
		margin:   arenaSize * 0.12,
		pilots:   make(map[uint32]*pilotState),
	}
}

// Drive updates ks for every live pose. dt is the elapsed time since the last call.
func (a *Autopilot) Drive(ks *KeyState, poses []Pose, dt float64) {
	for _, p := range poses {
		left, right := a.bindings.KeysFor(p.ID)
		if !p.Alive {
			ks.Set(left, false)
			ks.Set(right, false)
			continue
		}

		st, ok := a.pilots[p.ID]
		if !ok {
			st = &pilotState{}
			a.pilots[p.ID] = st
		}

		if a.nearWall(p.Head) {
			st.intent = a.steerToCenter(p)
			st.hold = 0
		} else {
			st.hold -= dt
			if st.hold <= 0 {
				st.intent = a.randomIntent()
				st.hold = 0.2 + a.rng.Float64()*0.8
			}
		}

		ks.Set(left, st.intent.Left)
		ks.Set(right, st.intent.Right)
	}
}

func (a *Autopilot) nearWall(p components.Point) bool {
	return p.X < a.margin || p.Y < a.margin || p.X > a.size-a.margin || p.Y > a.size-a.margin
}

func (a *Autopilot) randomIntent() Intent {
	switch a.rng.Intn(4) {
	case 0:
		return Intent{Left: true}
	case 1:
		return Intent{Right: true}
	default:
		return Intent{}
	}
}

// steerToCenter picks the turn that reduces the angle to the arena center.
func (a *Autopilot) steerToCenter(p Pose) Intent {
	want := math.Atan2(a.size/2-p.Head.Y, a.size/2-p.Head.X)
	diff := math.Remainder(want-p.Heading, 2*math.Pi)
	if math.Abs(diff) < 0.1 {
		return Intent{}
	}
	if diff < 0 {
		return Intent{Left: true}
	}
	return Intent{Right: true}
}
