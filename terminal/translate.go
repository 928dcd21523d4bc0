package terminal

import (
	"time"
	"unicode"

	"github.com/benbjohnson/clock"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/inputmap/input"
)

// translator turns tcell events into input events and tracks the state the
// terminal does not report: which keys are held and which buttons were down
type translator struct {
	clock   clock.Clock
	timeout time.Duration
	device  input.DeviceID

	held map[input.Key]time.Time // Key -> last press or repeat

	buttons   tcell.ButtonMask
	x, y      int
	hasPos    bool
	interrupt bool
}

func newTranslator(c clock.Clock, timeout time.Duration, device input.DeviceID) *translator {
	return &translator{
		clock:   c,
		timeout: timeout,
		device:  device,
		held:    make(map[input.Key]time.Time),
	}
}

// translate appends the input events for one tcell event
func (t *translator) translate(out []input.Event, ev tcell.Event) []input.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return t.key(out, e)
	case *tcell.EventMouse:
		return t.mouse(out, e)
	case *tcell.EventFocus:
		if !e.Focused {
			return t.releaseAll(out)
		}
	}
	return out
}

func (t *translator) key(out []input.Event, e *tcell.EventKey) []input.Event {
	k, ctrl := keyFor(e)
	mods := e.Modifiers()
	if e.Key() == tcell.KeyCtrlC || (k == input.KeyC && mods&tcell.ModCtrl != 0) {
		t.interrupt = true
	}

	if ctrl || mods&tcell.ModCtrl != 0 {
		out = t.hold(out, input.KeyControlLeft)
	}
	if mods&tcell.ModAlt != 0 {
		out = t.hold(out, input.KeyAltLeft)
	}
	if mods&tcell.ModShift != 0 {
		out = t.hold(out, input.KeyShiftLeft)
	}
	if k != input.KeyNone {
		out = t.hold(out, k)
	}

	if e.Key() == tcell.KeyRune && !ctrl && mods&(tcell.ModCtrl|tcell.ModAlt) == 0 {
		if r := e.Rune(); unicode.IsPrint(r) {
			out = append(out, input.TextEvent{Text: string(r)})
		}
	}
	return out
}

// hold presses a key on first sight and refreshes its timer on repeats
func (t *translator) hold(out []input.Event, k input.Key) []input.Event {
	if _, down := t.held[k]; !down {
		out = append(out, input.KeyEvent{Key: k, Pressed: true, Device: t.device})
	}
	t.held[k] = t.clock.Now()
	return out
}

// expire releases keys that saw no repeat within the timeout
func (t *translator) expire(out []input.Event) []input.Event {
	now := t.clock.Now()
	for k, last := range t.held {
		if now.Sub(last) >= t.timeout {
			delete(t.held, k)
			out = append(out, input.KeyEvent{Key: k, Pressed: false, Device: t.device})
		}
	}
	return out
}

// releaseAll lets go of every held key and button
func (t *translator) releaseAll(out []input.Event) []input.Event {
	for k := range t.held {
		out = append(out, input.KeyEvent{Key: k, Pressed: false, Device: t.device})
	}
	clear(t.held)
	for _, mb := range mouseButtons {
		if t.buttons&mb.mask != 0 {
			out = append(out, input.MouseButtonEvent{Button: mb.button, Pressed: false, Device: t.device})
		}
	}
	t.buttons = 0
	return out
}

// mouseButtons pairs tcell masks with buttons; wheel masks are handled apart
var mouseButtons = [...]struct {
	mask   tcell.ButtonMask
	button input.MouseButton
}{
	{tcell.ButtonPrimary, input.MouseButtonLeft},
	{tcell.ButtonSecondary, input.MouseButtonRight},
	{tcell.ButtonMiddle, input.MouseButtonMiddle},
	{tcell.Button4, input.MouseButtonBack},
	{tcell.Button5, input.MouseButtonForward},
}

func (t *translator) mouse(out []input.Event, e *tcell.EventMouse) []input.Event {
	x, y := e.Position()
	out = append(out, input.CursorEvent{X: float32(x), Y: float32(y)})
	if t.hasPos && (x != t.x || y != t.y) {
		out = append(out, input.MouseMoveEvent{
			DX:     float32(x - t.x),
			DY:     float32(y - t.y),
			Device: t.device,
		})
	}
	t.x, t.y, t.hasPos = x, y, true

	mask := e.Buttons()
	for _, mb := range mouseButtons {
		now := mask&mb.mask != 0
		was := t.buttons&mb.mask != 0
		if now != was {
			out = append(out, input.MouseButtonEvent{Button: mb.button, Pressed: now, Device: t.device})
		}
	}
	t.buttons = mask &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)

	var dx, dy float32
	if mask&tcell.WheelUp != 0 {
		dy++
	}
	if mask&tcell.WheelDown != 0 {
		dy--
	}
	if mask&tcell.WheelRight != 0 {
		dx++
	}
	if mask&tcell.WheelLeft != 0 {
		dx--
	}
	if dx != 0 || dy != 0 {
		out = append(out, input.ScrollEvent{DX: dx, DY: dy, Device: t.device})
	}
	return out
}
