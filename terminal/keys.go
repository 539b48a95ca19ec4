package terminal

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

var specialKeys = map[tcell.Key]string{
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyEscape:     "escape",
	tcell.KeyEnter:      "enter",
	tcell.KeyTab:        "tab",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pageup",
	tcell.KeyPgDn:       "pagedown",
	tcell.KeyInsert:     "insert",
	tcell.KeyDelete:     "delete",
}

func init() {
	for i := 0; i < 12; i++ {
		specialKeys[tcell.KeyF1+tcell.Key(i)] = fmt.Sprintf("f%d", i+1)
	}
}

// KeyName returns the config key name for a tcell key event.
func KeyName(ev *tcell.EventKey) (string, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return "space", true
		}
		if !unicode.IsPrint(r) {
			return "", false
		}
		return string(unicode.ToLower(r)), true
	}
	name, ok := specialKeys[ev.Key()]
	return name, ok
}
