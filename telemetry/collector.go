// Package telemetry collects round outcomes and frame timing.
package telemetry

import "github.com/pthm-cable/noodles/components"

// Collector accumulates events within a round and produces RoundStats.
type Collector struct {
	round   int
	ticks   int
	simTime float64
	causes  map[components.DeathCause]int
	history []RoundStats
}

// NewCollector creates a collector for round 1.
func NewCollector() *Collector {
	return &Collector{
		round:  1,
		causes: make(map[components.DeathCause]int),
	}
}

// StartRound resets the counters for a new round.
func (c *Collector) StartRound(round int) {
	c.round = round
	c.ticks = 0
	c.simTime = 0
	clear(c.causes)
}

// RecordTick records one engine tick of dt seconds.
func (c *Collector) RecordTick(dt float64) {
	c.ticks++
	c.simTime += dt
}

// RecordDeath records a death event.
func (c *Collector) RecordDeath(cause components.DeathCause) {
	c.causes[cause]++
}

// EndRound produces the stats for the current round and keeps them in the
// run history.
func (c *Collector) EndRound(winner uint32, winnerName string) RoundStats {
	stats := RoundStats{
		Round:        c.round,
		Ticks:        c.ticks,
		SimTimeSec:   c.simTime,
		Winner:       winner,
		WinnerName:   winnerName,
		WallDeaths:   c.causes[components.CauseWall],
		HeadOnDeaths: c.causes[components.CauseHeadOn],
		TrailDeaths:  c.causes[components.CauseTrail],
		SelfDeaths:   c.causes[components.CauseSelf],
	}
	c.history = append(c.history, stats)
	return stats
}

// RoundsPlayed returns the number of finished rounds.
func (c *Collector) RoundsPlayed() int {
	return len(c.history)
}

// History returns every finished round in order.
func (c *Collector) History() []RoundStats {
	return c.history
}

// Summary aggregates every finished round.
func (c *Collector) Summary() Summary {
	return Summarize(c.history)
}
