package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/noodles/components"
	"github.com/pthm-cable/noodles/config"
)

// Spark is one crash particle in arena coordinates.
type Spark struct {
	P       components.Point
	Vel     components.Point // units per second
	Life    float64          // seconds left
	MaxLife float64
	Color   config.RGB
	Size    float64
}

// Fade returns the remaining life as a fraction in (0, 1].
func (s *Spark) Fade() float64 {
	return s.Life / s.MaxLife
}

// ParticleSystem manages crash sparks for visual feedback.
type ParticleSystem struct {
	Sparks       []Spark
	maxParticles int
	rng          *rand.Rand
}

// NewParticleSystem creates a particle system holding at most max sparks.
func NewParticleSystem(rng *rand.Rand, max int) *ParticleSystem {
	return &ParticleSystem{
		Sparks:       make([]Spark, 0, max),
		maxParticles: max,
		rng:          rng,
	}
}

// Update ages and moves every spark, dropping expired ones.
func (s *ParticleSystem) Update(dt float64) {
	if !(dt > 0) {
		return
	}
	drag := math.Exp(-3 * dt)
	alive := 0
	for i := range s.Sparks {
		p := &s.Sparks[i]
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.Vel = p.Vel.Scale(drag)
		p.P = p.P.Add(p.Vel.Scale(dt))

		s.Sparks[alive] = *p
		alive++
	}
	s.Sparks = s.Sparks[:alive]
}

// EmitCrash emits a burst of 12-19 sparks at p.
func (s *ParticleSystem) EmitCrash(p components.Point, color config.RGB) {
	count := 12 + s.rng.Intn(8)
	for i := 0; i < count && len(s.Sparks) < s.maxParticles; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := 40 + s.rng.Float64()*80
		life := 0.4 + s.rng.Float64()*0.5
		s.Sparks = append(s.Sparks, Spark{
			P:       p,
			Vel:     components.Direction(angle).Scale(speed),
			Life:    life,
			MaxLife: life,
			Color:   color,
			Size:    1.5 + s.rng.Float64()*1.5,
		})
	}
}

// Clear removes every spark.
func (s *ParticleSystem) Clear() {
	s.Sparks = s.Sparks[:0]
}
