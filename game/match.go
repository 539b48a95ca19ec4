package game

import (
	"math/rand"

	"github.com/pthm-cable/noodles/components"
	"github.com/pthm-cable/noodles/systems"
)

// NoWinner is the Winner of a round nobody survived. Noodle IDs start at 1.
const NoWinner uint32 = 0

// Phase is the controller state.
type Phase uint8

const (
	Running Phase = iota
	AwaitingAdvance
)

func (p Phase) String() string {
	if p == AwaitingAdvance {
		return "awaiting-advance"
	}
	return "running"
}

// Transition describes what a controller call changed.
type Transition uint8

const (
	NoTransition Transition = iota
	RoundWon                // one survivor, round over
	RoundDrawn              // nobody survived
	NextRound               // acknowledged, next round started
	MatchReset              // acknowledged after the last round, scores reset
)

var transitionNames = [...]string{"none", "round-won", "round-drawn", "next-round", "new-match"}

func (t Transition) String() string {
	if int(t) < len(transitionNames) {
		return transitionNames[t]
	}
	return "unknown"
}

// RoundState is a copy of the controller's public state.
type RoundState struct {
	Round     int
	MaxRounds int
	Phase     Phase
	Winner    uint32 // only meaningful while AwaitingAdvance
	Scores    map[uint32]int
}

// Spawn holds the start grid layout.
type Spawn struct {
	SlotSpacing float64
	GridWidth   int
}

// Match runs the round and match lifecycle on top of an engine.
type Match struct {
	noodles *Noodles
	engine  *Engine
	spawn   Spawn
	rng     *rand.Rand

	round     int
	maxRounds int
	phase     Phase
	winner    uint32
	scores    map[uint32]int
}

// NewMatch starts round 1 of a new match. Every noodle is reset onto its
// start slot.
func NewMatch(noodles *Noodles, engine *Engine, spawn Spawn, maxRounds int, rng *rand.Rand) *Match {
	if maxRounds < 1 {
		maxRounds = 1
	}
	m := &Match{
		noodles:   noodles,
		engine:    engine,
		spawn:     spawn,
		rng:       rng,
		maxRounds: maxRounds,
		scores:    make(map[uint32]int),
	}
	m.resetMatch()
	return m
}

// Phase returns the current phase.
func (m *Match) Phase() Phase { return m.phase }

// Round returns the current round number, starting at 1.
func (m *Match) Round() int { return m.round }

// Winner returns the last round's winner, or NoWinner.
func (m *Match) Winner() uint32 { return m.winner }

// Score returns the number of rounds id has won this match.
func (m *Match) Score(id uint32) int { return m.scores[id] }

// State returns a copy of the controller state.
func (m *Match) State() RoundState {
	scores := make(map[uint32]int, len(m.scores))
	for id, s := range m.scores {
		scores[id] = s
	}
	return RoundState{
		Round:     m.round,
		MaxRounds: m.maxRounds,
		Phase:     m.phase,
		Winner:    m.winner,
		Scores:    scores,
	}
}

// MatchOver reports whether the final round has ended and the next
// acknowledgment starts a new match.
func (m *Match) MatchOver() bool {
	return m.phase == AwaitingAdvance && m.round >= m.maxRounds
}

// Leaders returns the IDs sharing the top score, ascending. It is empty
// while nobody has scored.
func (m *Match) Leaders() []uint32 {
	best := 0
	for _, s := range m.scores {
		best = max(best, s)
	}
	if best == 0 {
		return nil
	}
	var out []uint32
	for _, id := range m.noodles.IDs() {
		if m.scores[id] == best {
			out = append(out, id)
		}
	}
	return out
}

// Observe checks whether the round ended after a tick that produced deaths.
// With one noodle left it wins the round and its trail collapses to its
// head; with none left the round is drawn.
func (m *Match) Observe(deaths []Death) Transition {
	if m.phase != Running || len(deaths) == 0 {
		return NoTransition
	}

	alive := m.noodles.AliveCount()
	switch {
	case alive == 1 && m.noodles.Len() > 1:
		id := m.noodles.AliveIDs()[0]
		m.scores[id]++
		_, _, trail, _, _ := m.noodles.Get(id)
		trail.Points = []components.Point{trail.Head()}
		m.finishRound(id)
		return RoundWon
	case alive == 0:
		m.finishRound(NoWinner)
		return RoundDrawn
	default:
		return NoTransition
	}
}

// Acknowledge starts the next round, or a new match after the last round.
// It does nothing while a round is running.
func (m *Match) Acknowledge() Transition {
	if m.phase != AwaitingAdvance {
		return NoTransition
	}
	if m.round < m.maxRounds {
		m.round++
		m.startRound()
		return NextRound
	}
	m.resetMatch()
	return MatchReset
}

func (m *Match) finishRound(winner uint32) {
	m.winner = winner
	m.phase = AwaitingAdvance
	m.engine.Freeze()
}

func (m *Match) resetMatch() {
	clear(m.scores)
	for _, id := range m.noodles.IDs() {
		m.scores[id] = 0
	}
	m.round = 1
	m.startRound()
}

func (m *Match) startRound() {
	for _, id := range m.noodles.IDs() {
		ident, heading, trail, life, _ := m.noodles.Get(id)
		start := systems.SpawnPosition(ident.Slot, m.spawn.SlotSpacing, m.spawn.GridWidth)
		systems.ResetForRound(trail, heading, life, start, systems.RandomHeading(m.rng))
	}
	m.winner = NoWinner
	m.phase = Running
	m.engine.Reindex()
	m.engine.Thaw()
}
