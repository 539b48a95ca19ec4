package game

import "math"

// DeltaPolicy turns a wall-clock frame delta into engine sub-steps.
type DeltaPolicy struct {
	MaxFrame float64 // larger deltas are clamped (stalls, debugger pauses)
	MaxStep  float64 // longest single engine step
}

// Steps returns how many equal steps of length step cover delta. It returns
// n == 0 for deltas that are not positive finite numbers.
func (p DeltaPolicy) Steps(delta float64) (n int, step float64) {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta <= 0 {
		return 0, 0
	}
	if p.MaxFrame > 0 && delta > p.MaxFrame {
		delta = p.MaxFrame
	}
	if p.MaxStep <= 0 || delta <= p.MaxStep {
		return 1, delta
	}
	n = int(math.Ceil(delta / p.MaxStep))
	return n, delta / float64(n)
}
