package systems

import "github.com/pthm-cable/noodles/components"

// Candidate is a noodle's projected head for the current tick.
type Candidate struct {
	ID uint32
	P  components.Point
}

// Dying is the set of noodles that die this tick. A noodle is recorded at most
// once; the first cause wins.
type Dying map[uint32]components.DeathCause

// Mark records id with cause unless it is already dying.
func (d Dying) Mark(id uint32, cause components.DeathCause) {
	if _, ok := d[id]; !ok {
		d[id] = cause
	}
}

// HeadOn marks both members of every candidate pair closer than contact.
// Every pair is tested, so the result is independent of candidate order.
func HeadOn(cands []Candidate, contactSq float64, dying Dying) {
	for i := 0; i < len(cands); i++ {
		for j := i + 1; j < len(cands); j++ {
			if cands[i].ID == cands[j].ID {
				continue
			}
			if components.DistanceSq(cands[i].P, cands[j].P) < contactSq {
				dying.Mark(cands[i].ID, components.CauseHeadOn)
				dying.Mark(cands[j].ID, components.CauseHeadOn)
			}
		}
	}
}

// SelfLimit returns how many of a noodle's own oldest trail points are
// eligible for self-collision: none while the trail is shorter than minLen,
// otherwise everything except the newest grace points.
func SelfLimit(trailLen, grace, minLen int) int {
	if trailLen < minLen {
		return 0
	}
	limit := trailLen - grace
	if limit < 0 {
		return 0
	}
	return limit
}
