package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyCodes maps config key names to raylib key codes.
var keyCodes = map[string]int32{
	"space":     rl.KeySpace,
	"escape":    rl.KeyEscape,
	"enter":     rl.KeyEnter,
	"tab":       rl.KeyTab,
	"backspace": rl.KeyBackspace,
	"left":      rl.KeyLeft,
	"right":     rl.KeyRight,
	"up":        rl.KeyUp,
	"down":      rl.KeyDown,
	"home":      rl.KeyHome,
	"end":       rl.KeyEnd,
	"pageup":    rl.KeyPageUp,
	"pagedown":  rl.KeyPageDown,
	"insert":    rl.KeyInsert,
	"delete":    rl.KeyDelete,
	",":         rl.KeyComma,
	".":         rl.KeyPeriod,
	"/":         rl.KeySlash,
	";":         rl.KeySemicolon,
	"'":         rl.KeyApostrophe,
	"[":         rl.KeyLeftBracket,
	"]":         rl.KeyRightBracket,
	"-":         rl.KeyMinus,
	"=":         rl.KeyEqual,
	"`":         rl.KeyGrave,
	"\\":        rl.KeyBackSlash,
}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		keyCodes[string(c)] = rl.KeyA + int32(c-'a')
	}
	for c := '0'; c <= '9'; c++ {
		keyCodes[string(c)] = rl.KeyZero + int32(c-'0')
	}
	for i := 1; i <= 12; i++ {
		keyCodes[fmt.Sprintf("f%d", i)] = rl.KeyF1 + int32(i-1)
	}
}

// KeyCode returns the raylib key code for a config key name.
func KeyCode(name string) (int32, bool) {
	code, ok := keyCodes[name]
	return code, ok
}
