package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/inputmap/input"
)

// specialKeys maps tcell named keys to input keys
var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyInsert:     input.KeyInsert,

	tcell.KeyUp:    input.KeyArrowUp,
	tcell.KeyDown:  input.KeyArrowDown,
	tcell.KeyLeft:  input.KeyArrowLeft,
	tcell.KeyRight: input.KeyArrowRight,
	tcell.KeyHome:  input.KeyHome,
	tcell.KeyEnd:   input.KeyEnd,
	tcell.KeyPgUp:  input.KeyPageUp,
	tcell.KeyPgDn:  input.KeyPageDown,

	tcell.KeyF1:  input.KeyF1,
	tcell.KeyF2:  input.KeyF2,
	tcell.KeyF3:  input.KeyF3,
	tcell.KeyF4:  input.KeyF4,
	tcell.KeyF5:  input.KeyF5,
	tcell.KeyF6:  input.KeyF6,
	tcell.KeyF7:  input.KeyF7,
	tcell.KeyF8:  input.KeyF8,
	tcell.KeyF9:  input.KeyF9,
	tcell.KeyF10: input.KeyF10,
	tcell.KeyF11: input.KeyF11,
	tcell.KeyF12: input.KeyF12,
}

// keyFor resolves the physical key behind a tcell key event.
// ctrl is set for control characters, which tcell reports without ModCtrl
// on some terminals.
func keyFor(e *tcell.EventKey) (k input.Key, ctrl bool) {
	switch key := e.Key(); {
	case key == tcell.KeyRune:
		k, _ = input.KeyForRune(e.Rune())
		return k, false
	case key == tcell.KeyBacktab:
		// Shift+Tab arrives as its own key
		return input.KeyTab, false
	default:
		if k, ok := specialKeys[key]; ok {
			return k, false
		}
		if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
			return input.KeyA + input.Key(key-tcell.KeyCtrlA), true
		}
	}
	return input.KeyNone, false
}
