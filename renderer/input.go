package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/noodles/input"
)

// Keyboard polls raylib for the keys a match uses and writes them into a
// KeyState. raylib reports releases, so keys are tracked with Set.
type Keyboard struct {
	names []string
	codes []int32
}

// NewKeyboard resolves every key name to a raylib code.
func NewKeyboard(keys []string) (*Keyboard, error) {
	k := &Keyboard{}
	for _, name := range keys {
		code, ok := KeyCode(name)
		if !ok {
			return nil, fmt.Errorf("renderer: no raylib key for %q", name)
		}
		k.names = append(k.names, name)
		k.codes = append(k.codes, code)
	}
	return k, nil
}

// Poll records the current state of every tracked key.
func (k *Keyboard) Poll(ks *input.KeyState) {
	for i, code := range k.codes {
		ks.Set(k.names[i], rl.IsKeyDown(code))
	}
}

// Pressed returns the tracked names among keys that were pressed this frame.
func Pressed(keys []string) []string {
	var out []string
	for _, name := range keys {
		if code, ok := KeyCode(name); ok && rl.IsKeyPressed(code) {
			out = append(out, name)
		}
	}
	return out
}
