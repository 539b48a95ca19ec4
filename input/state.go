package input

import (
	"sync"
	"time"
)

// Snapshot is an atomic copy of the key state taken at the start of a tick.
type Snapshot struct {
	Down    map[string]bool
	Pressed map[string]int // press edges since the previous snapshot
}

// IsDown reports whether key was held.
func (s Snapshot) IsDown(key string) bool {
	return s.Down[Normalize(key)]
}

// WasPressed reports whether key saw at least one press edge.
func (s Snapshot) WasPressed(key string) bool {
	return s.Pressed[Normalize(key)] > 0
}

// KeyState records the latest state of every key. It is written by input
// producers on any goroutine and read once per tick by the loop owner.
// Intermediate states between two snapshots are lost.
type KeyState struct {
	mu      sync.Mutex
	down    map[string]bool
	until   map[string]time.Time
	pressed map[string]int
	now     func() time.Time
}

// NewKeyState creates an empty key state.
func NewKeyState() *KeyState {
	return &KeyState{
		down:    make(map[string]bool),
		until:   make(map[string]time.Time),
		pressed: make(map[string]int),
		now:     time.Now,
	}
}

// SetClock replaces the time source used for Tap expiry.
func (k *KeyState) SetClock(now func() time.Time) {
	k.mu.Lock()
	k.now = now
	k.mu.Unlock()
}

// Set records a key-down or key-up transition.
func (k *KeyState) Set(key string, down bool) {
	key = Normalize(key)
	k.mu.Lock()
	defer k.mu.Unlock()
	if down && !k.down[key] {
		k.pressed[key]++
	}
	k.down[key] = down
	delete(k.until, key)
}

// Tap records a press for a source that never reports releases (terminals).
// The key reads as held until hold has elapsed; repeated taps extend it.
func (k *KeyState) Tap(key string, hold time.Duration) {
	key = Normalize(key)
	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.down[key] {
		k.pressed[key]++
	}
	k.down[key] = true
	k.until[key] = k.now().Add(hold)
}

// Release clears every key. Used when a source loses focus or closes.
func (k *KeyState) Release() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.down)
	clear(k.until)
}

// Snapshot returns the current state and resets press edges.
func (k *KeyState) Snapshot() Snapshot {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	for key, t := range k.until {
		if !now.Before(t) {
			k.down[key] = false
			delete(k.until, key)
		}
	}

	s := Snapshot{
		Down:    make(map[string]bool, len(k.down)),
		Pressed: make(map[string]int, len(k.pressed)),
	}
	for key, d := range k.down {
		if d {
			s.Down[key] = true
		}
	}
	for key, n := range k.pressed {
		s.Pressed[key] = n
	}
	clear(k.pressed)
	return s
}
