package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/pthm-cable/noodles/game"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				panic("sample out of range")
			}
		}
		if !ok {
			return total
		}
	}
}

func TestTone_Length(t *testing.T) {
	rate := beep.SampleRate(44100)
	tone := NewTone(rate, 440, 220, 100*time.Millisecond, 0.5)

	if got, want := drain(tone), rate.N(100*time.Millisecond); got != want {
		t.Errorf("streamed %d samples, want %d", got, want)
	}
	if tone.Err() != nil {
		t.Errorf("Err = %v", tone.Err())
	}

	n, ok := tone.Stream(make([][2]float64, 10))
	if n != 0 || ok {
		t.Errorf("finished tone streamed n=%d ok=%v", n, ok)
	}
}

func TestTone_Envelope(t *testing.T) {
	rate := beep.SampleRate(8000)
	tone := NewTone(rate, 1000, 1000, 50*time.Millisecond, 0.5)

	buf := make([][2]float64, rate.N(50*time.Millisecond))
	n, _ := tone.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want silent attack start", buf[0][0])
	}
	for i := 0; i < n; i++ {
		if buf[i][0] > 0.5 || buf[i][0] < -0.5 {
			t.Fatalf("sample %d = %f exceeds gain", i, buf[i][0])
		}
		if buf[i][0] != buf[i][1] {
			t.Fatalf("sample %d is not mono", i)
		}
	}
}

func TestChime_LongerThanCrash(t *testing.T) {
	rate := beep.SampleRate(8000)
	if drain(Chime(rate, false)) <= drain(Crash(rate)) {
		t.Error("chime should outlast a crash")
	}
}

func TestNewVolume(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		silent bool
		volume float64
	}{
		{"muted", 0, true, 0},
		{"half", 0.5, false, -3},
		{"full", 1, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vol := newVolume(&beep.Mixer{}, tt.v)
			if vol.Silent != tt.silent || vol.Volume != tt.volume {
				t.Errorf("got silent=%v volume=%f", vol.Silent, vol.Volume)
			}
		})
	}
}

func TestPresent_UninitializedIsSilent(t *testing.T) {
	sm := NewSoundManager(0.5)
	sm.Present(game.Frame{
		Deaths:      []game.Death{{ID: 1}, {ID: 2}},
		Transitions: []game.Transition{game.RoundDrawn},
	})
	if sm.Pending() != 0 {
		t.Errorf("Pending = %d before Initialize", sm.Pending())
	}
	sm.Cleanup()
}
