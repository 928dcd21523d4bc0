// Package window adapts ebiten's per-frame input polling to input events.
//
// Call Source.Poll from the game's Update, before querying the map. Keyboard
// and mouse events carry AnyDevice; each ebiten gamepad becomes DeviceID
// (ebiten id + 1). Only gamepads with the standard layout are read.
package window

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/lixenwraith/inputmap/input"
)

type options struct {
	logger *zap.Logger
}

// Option configures a Source
type Option func(*options)

// WithLogger sets the logger for gamepad connect messages
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// padState remembers the last reported analog values of one gamepad
type padState struct {
	axes     [len(gamepadAxes)]float32
	triggers [len(gamepadTriggers)]float32
}

// Source reads ebiten input state once per frame
type Source struct {
	log *zap.Logger

	x, y   int
	hasPos bool

	pads  map[ebiten.GamepadID]*padState
	ids   []ebiten.GamepadID
	chars []rune
}

// NewSource creates a source; it reads nothing until Poll
func NewSource(opts ...Option) *Source {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Source{
		log:  o.logger,
		pads: make(map[ebiten.GamepadID]*padState),
	}
}

// Poll returns the input changes ebiten saw since the previous tick
func (s *Source) Poll() []input.Event {
	var out []input.Event

	for _, kp := range keyPairs {
		if inpututil.IsKeyJustPressed(kp.ebiten) {
			out = append(out, input.KeyEvent{Key: kp.key, Pressed: true})
		} else if inpututil.IsKeyJustReleased(kp.ebiten) {
			out = append(out, input.KeyEvent{Key: kp.key, Pressed: false})
		}
	}

	for _, mp := range mousePairs {
		if inpututil.IsMouseButtonJustPressed(mp.ebiten) {
			out = append(out, input.MouseButtonEvent{Button: mp.button, Pressed: true})
		} else if inpututil.IsMouseButtonJustReleased(mp.ebiten) {
			out = append(out, input.MouseButtonEvent{Button: mp.button, Pressed: false})
		}
	}

	out = s.pollCursor(out)

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		out = append(out, input.ScrollEvent{DX: float32(wx), DY: float32(wy)})
	}

	s.chars = ebiten.AppendInputChars(s.chars[:0])
	if len(s.chars) > 0 {
		out = append(out, input.TextEvent{Text: string(s.chars)})
	}

	return s.pollGamepads(out)
}

func (s *Source) pollCursor(out []input.Event) []input.Event {
	x, y := ebiten.CursorPosition()
	if s.hasPos && (x != s.x || y != s.y) {
		out = append(out, input.MouseMoveEvent{DX: float32(x - s.x), DY: float32(y - s.y)})
	}
	if !s.hasPos || x != s.x || y != s.y {
		out = append(out, input.CursorEvent{X: float32(x), Y: float32(y)})
	}
	s.x, s.y, s.hasPos = x, y, true
	return out
}

func (s *Source) pollGamepads(out []input.Event) []input.Event {
	for id := range s.pads {
		if inpututil.IsGamepadJustDisconnected(id) {
			delete(s.pads, id)
			out = append(out, input.GamepadDisconnectEvent{Device: deviceID(id)})
			s.log.Info("gamepad disconnected", zap.Int("gamepad", int(id)))
		}
	}

	s.ids = ebiten.AppendGamepadIDs(s.ids[:0])
	for _, id := range s.ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		st, ok := s.pads[id]
		if !ok {
			st = &padState{}
			s.pads[id] = st
			s.log.Info("gamepad connected", zap.Int("gamepad", int(id)), zap.String("name", ebiten.GamepadName(id)))
		}
		dev := deviceID(id)

		for _, gp := range gamepadPairs {
			if inpututil.IsStandardGamepadButtonJustPressed(id, gp.ebiten) {
				out = append(out, input.GamepadButtonEvent{Button: gp.button, Device: dev, Pressed: true})
			} else if inpututil.IsStandardGamepadButtonJustReleased(id, gp.ebiten) {
				out = append(out, input.GamepadButtonEvent{Button: gp.button, Device: dev, Pressed: false})
			}
		}

		for i, ga := range gamepadAxes {
			v := float32(ebiten.StandardGamepadAxisValue(id, ga.ebiten))
			if ga.invert {
				v = -v
			}
			if changed(st.axes[i], v) {
				st.axes[i] = v
				out = append(out, input.GamepadAxisEvent{Axis: ga.axis, Device: dev, Value: v})
			}
		}

		for i, gt := range gamepadTriggers {
			v := float32(ebiten.StandardGamepadButtonValue(id, gt.ebiten))
			if changed(st.triggers[i], v) {
				st.triggers[i] = v
				out = append(out, input.GamepadAxisEvent{Axis: gt.axis, Device: dev, Value: v})
			}
		}
	}
	return out
}

// RecenterCursor captures the cursor so motion keeps arriving past the
// window edge. Implements input.Recenterer.
func (s *Source) RecenterCursor() {
	if ebiten.CursorMode() != ebiten.CursorModeCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
}

// ReleaseCursor returns the cursor to normal visible mode
func (s *Source) ReleaseCursor() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

func deviceID(id ebiten.GamepadID) input.DeviceID {
	return input.DeviceID(id) + 1
}

func changed(old, v float32) bool {
	return math.Abs(float64(old-v)) > 1e-4
}
