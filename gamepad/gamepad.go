// Package gamepad reads Linux evdev gamepads and emits normalized input events.
//
// Each device gets its own DeviceID, starting at 1, and its own reader
// goroutine. Poll drains everything read since the previous call. Sticks are
// scaled to [-1,1] with the device's flat region as deadzone and Y pointing
// up; analog triggers are scaled to [0,1]; the hat switch becomes DPad
// buttons. A device that fails to read emits GamepadDisconnectEvent.
//
// Other platforms compile, but Scan returns ErrUnsupported.
package gamepad

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lixenwraith/inputmap/input"
)

// ErrUnsupported is returned by Scan on platforms without evdev
var ErrUnsupported = errors.New("gamepad: unsupported platform")

// eventBuffer is the capacity of the shared reader channel
const eventBuffer = 1024

// Info describes one opened gamepad
type Info struct {
	ID   input.DeviceID
	Name string
	Path string
}

type options struct {
	logger   *zap.Logger
	deadzone float32
}

// Option configures a Manager
type Option func(*options)

// WithLogger sets the logger for connect and disconnect messages
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDeadzone sets a minimum stick deadzone as a fraction of the half range,
// applied when the device reports a smaller flat region
func WithDeadzone(d float32) Option {
	return func(o *options) {
		if d >= 0 && d < 1 {
			o.deadzone = d
		}
	}
}

func defaultOptions() options {
	return options{logger: zap.NewNop()}
}

// axisRange is the raw span of an absolute axis
type axisRange struct {
	min, max int32
	flat     int32 // Half-width of the rest region around center
}

// stick maps a raw value to [-1,1]. Values inside the flat region read 0 and
// the rest of the range is rescaled so output starts at 0 past the edge.
func (r axisRange) stick(v int32, deadzone float32) float32 {
	if r.max <= r.min {
		return 0
	}
	center := (float32(r.min) + float32(r.max)) / 2
	half := (float32(r.max) - float32(r.min)) / 2
	flat := float32(r.flat)
	if dz := deadzone * half; dz > flat {
		flat = dz
	}
	if flat >= half {
		return 0
	}

	off := float32(v) - center
	sign := float32(1)
	if off < 0 {
		sign, off = -1, -off
	}
	if off <= flat {
		return 0
	}
	n := (off - flat) / (half - flat)
	if n > 1 {
		n = 1
	}
	return sign * n
}

// trigger maps a raw value to [0,1] from the minimum, ignoring the flat region
func (r axisRange) trigger(v int32) float32 {
	span := float32(r.max) - float32(r.min)
	if span <= 0 {
		return 0
	}
	off := float32(v) - float32(r.min)
	flat := float32(r.flat)
	if off <= flat {
		return 0
	}
	n := (off - flat) / (span - flat)
	if n > 1 {
		n = 1
	}
	return n
}

// hatEvents emits DPad transitions for a hat axis; pair is {negative, positive}
func hatEvents(out []input.Event, id input.DeviceID, pair [2]input.GamepadButton, prev, v int32) []input.Event {
	if prev == v {
		return out
	}
	if prev < 0 {
		out = append(out, input.GamepadButtonEvent{Button: pair[0], Device: id, Pressed: false})
	}
	if prev > 0 {
		out = append(out, input.GamepadButtonEvent{Button: pair[1], Device: id, Pressed: false})
	}
	if v < 0 {
		out = append(out, input.GamepadButtonEvent{Button: pair[0], Device: id, Pressed: true})
	}
	if v > 0 {
		out = append(out, input.GamepadButtonEvent{Button: pair[1], Device: id, Pressed: true})
	}
	return out
}

var (
	hatX = [2]input.GamepadButton{input.GamepadDPadLeft, input.GamepadDPadRight}
	hatY = [2]input.GamepadButton{input.GamepadDPadUp, input.GamepadDPadDown}
)
