// Package input maps raw key state to per-player turn intents.
package input

import (
	"sort"
	"strings"
)

// Action is a logical control a key can be bound to.
type Action uint8

const (
	TurnLeft Action = iota
	TurnRight
)

// Intent is one player's turn state for a tick.
type Intent struct {
	Left, Right bool
}

// Intents is the per-tick snapshot keyed by noodle ID.
type Intents map[uint32]Intent

// Binding ties a key to a player's action.
type Binding struct {
	Player uint32
	Action Action
}

// Bindings resolves key snapshots into intents.
// Key names are case-insensitive.
type Bindings struct {
	keys    map[string]Binding
	advance string
	quit    string
}

// NewBindings creates bindings with the global advance and quit keys.
func NewBindings(advance, quit string) *Bindings {
	return &Bindings{
		keys:    make(map[string]Binding),
		advance: Normalize(advance),
		quit:    Normalize(quit),
	}
}

// Normalize returns the canonical form of a key name.
func Normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Bind binds key to the player's action, replacing any previous binding of key.
func (b *Bindings) Bind(key string, player uint32, a Action) {
	b.keys[Normalize(key)] = Binding{Player: player, Action: a}
}

// Advance returns the round-advance key.
func (b *Bindings) Advance() string { return b.advance }

// Quit returns the quit key.
func (b *Bindings) Quit() string { return b.quit }

// Keys returns every bound key (player keys plus advance and quit), sorted.
func (b *Bindings) Keys() []string {
	out := make([]string, 0, len(b.keys)+2)
	for k := range b.keys {
		out = append(out, k)
	}
	out = append(out, b.advance, b.quit)
	sort.Strings(out)
	return out
}

// KeysFor returns the keys bound to the player's left and right actions.
func (b *Bindings) KeysFor(player uint32) (left, right string) {
	for k, bind := range b.keys {
		if bind.Player != player {
			continue
		}
		switch bind.Action {
		case TurnLeft:
			left = k
		case TurnRight:
			right = k
		}
	}
	return left, right
}

// Resolve converts a key snapshot into intents. Players with no keys down
// are omitted; a missing entry means no turn.
func (b *Bindings) Resolve(s Snapshot) Intents {
	out := make(Intents)
	for key := range s.Down {
		bind, ok := b.keys[key]
		if !ok {
			continue
		}
		in := out[bind.Player]
		switch bind.Action {
		case TurnLeft:
			in.Left = true
		case TurnRight:
			in.Right = true
		}
		out[bind.Player] = in
	}
	return out
}
