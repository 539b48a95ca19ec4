package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Tone streams a sine sweep from one frequency to another with a short
// attack and a linear release.
type Tone struct {
	sr       beep.SampleRate
	from, to float64 // Hz
	gain     float64
	total    int
	pos      int
	phase    float64
}

// NewTone creates a tone of the given length.
func NewTone(sr beep.SampleRate, from, to float64, d time.Duration, gain float64) *Tone {
	return &Tone{
		sr:    sr,
		from:  from,
		to:    to,
		gain:  gain,
		total: max(sr.N(d), 1),
	}
}

// Stream fills samples until the tone ends.
func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	attack := float64(t.sr.N(5 * time.Millisecond))
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		frac := float64(t.pos) / float64(t.total)
		freq := t.from + (t.to-t.from)*frac
		t.phase += 2 * math.Pi * freq / float64(t.sr)

		env := 1 - frac
		if a := float64(t.pos) / attack; a < 1 {
			env *= a
		}
		s := t.gain * env * math.Sin(t.phase)
		samples[i][0] = s
		samples[i][1] = s
		t.pos++
		n++
	}
	return n, true
}

// Err always returns nil.
func (t *Tone) Err() error {
	return nil
}

// Crash is the sound of one noodle dying: a falling sweep.
func Crash(sr beep.SampleRate) beep.Streamer {
	return NewTone(sr, 420, 90, 220*time.Millisecond, 0.35)
}

// Chime is the round-over sound: two rising notes, lower for a draw.
func Chime(sr beep.SampleRate, drawn bool) beep.Streamer {
	base := 523.25
	if drawn {
		base = 261.63
	}
	return beep.Seq(
		NewTone(sr, base, base, 120*time.Millisecond, 0.3),
		NewTone(sr, base*1.5, base*1.5, 240*time.Millisecond, 0.3),
	)
}
