// Package audio plays sound effects for arena events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/noodles/game"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager turns frames into sound effects. It is a game.Sink.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
}

// NewSoundManager creates a sound manager at the given volume in [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		volume: newVolume(mixer, volume),
	}
}

// newVolume maps a linear 0..1 volume onto beep's base-2 gain.
func newVolume(s beep.Streamer, v float64) *effects.Volume {
	vol := &effects.Volume{Streamer: s, Base: 2}
	switch {
	case v <= 0:
		vol.Silent = true
	case v < 1:
		vol.Volume = -(1 - v) * 6
	}
	return vol
}

// Initialize opens the speaker. The manager stays silent until it succeeds.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Cleanup silences everything that is still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Pending returns the number of sounds queued or playing.
func (sm *SoundManager) Pending() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return sm.mixer.Len()
}

// Present plays a crash for every death and a chime when a round ends.
func (sm *SoundManager) Present(f game.Frame) {
	var queue []beep.Streamer
	for range f.Deaths {
		queue = append(queue, Crash(sampleRate))
	}
	switch {
	case f.Has(game.RoundWon):
		queue = append(queue, Chime(sampleRate, false))
	case f.Has(game.RoundDrawn):
		queue = append(queue, Chime(sampleRate, true))
	}
	if len(queue) == 0 {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(queue...)
	speaker.Unlock()
}
