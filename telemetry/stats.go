package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// RoundStats holds the outcome of one round.
type RoundStats struct {
	Round      int
	Ticks      int
	SimTimeSec float64
	Winner     uint32 // 0 when nobody survived
	WinnerName string

	// Deaths by cause
	WallDeaths   int
	HeadOnDeaths int
	TrailDeaths  int
	SelfDeaths   int
}

// Deaths returns the total number of deaths in the round.
func (s RoundStats) Deaths() int {
	return s.WallDeaths + s.HeadOnDeaths + s.TrailDeaths + s.SelfDeaths
}

// Drawn reports whether the round ended without a survivor.
func (s RoundStats) Drawn() bool {
	return s.Winner == 0
}

// LogValue implements slog.LogValuer for structured logging.
func (s RoundStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("round", s.Round),
		slog.Int("ticks", s.Ticks),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Any("winner", s.Winner),
		slog.String("winner_name", s.WinnerName),
		slog.Int("wall", s.WallDeaths),
		slog.Int("head_on", s.HeadOnDeaths),
		slog.Int("trail", s.TrailDeaths),
		slog.Int("self", s.SelfDeaths),
	)
}

// LogStats logs the round stats using slog.
func (s RoundStats) LogStats() {
	slog.Info("round", "stats", s)
}

// Wins counts won rounds per winner name. Drawn rounds are not counted.
func Wins(history []RoundStats) map[string]int {
	wins := make(map[string]int)
	for _, s := range history {
		if !s.Drawn() {
			wins[s.WinnerName]++
		}
	}
	return wins
}

// Summary aggregates round lengths over a run.
type Summary struct {
	Rounds  int
	Draws   int
	MeanSec float64
	StdSec  float64
	P50Sec  float64
	P90Sec  float64
	MaxSec  float64
}

// Summarize computes length statistics over the given rounds.
func Summarize(rounds []RoundStats) Summary {
	s := Summary{Rounds: len(rounds)}
	if len(rounds) == 0 {
		return s
	}

	lengths := make([]float64, len(rounds))
	for i, r := range rounds {
		lengths[i] = r.SimTimeSec
		if r.Drawn() {
			s.Draws++
		}
	}
	sort.Float64s(lengths)

	s.MeanSec, s.StdSec = stat.MeanStdDev(lengths, nil)
	if len(lengths) < 2 {
		s.StdSec = 0
	}
	s.P50Sec = stat.Quantile(0.5, stat.Empirical, lengths, nil)
	s.P90Sec = stat.Quantile(0.9, stat.Empirical, lengths, nil)
	s.MaxSec = lengths[len(lengths)-1]
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("rounds", s.Rounds),
		slog.Int("draws", s.Draws),
		slog.Float64("mean_sec", s.MeanSec),
		slog.Float64("std_sec", s.StdSec),
		slog.Float64("p50_sec", s.P50Sec),
		slog.Float64("p90_sec", s.P90Sec),
		slog.Float64("max_sec", s.MaxSec),
	)
}
