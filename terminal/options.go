package terminal

import (
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/lixenwraith/inputmap/input"
)

// DefaultHoldTimeout covers the typical initial key-repeat delay
const DefaultHoldTimeout = 500 * time.Millisecond

// eventBuffer is the capacity of the poll goroutine's channel
const eventBuffer = 256

type options struct {
	holdTimeout time.Duration
	clock       clock.Clock
	logger      *zap.Logger
	mouse       bool
	device      input.DeviceID
}

func defaultOptions() options {
	return options{
		holdTimeout: DefaultHoldTimeout,
		clock:       clock.New(),
		logger:      zap.NewNop(),
		mouse:       true,
	}
}

// Option configures a Source
type Option func(*options)

// WithHoldTimeout sets how long a key stays down without a repeat
func WithHoldTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.holdTimeout = d
		}
	}
}

// WithClock replaces the wall clock, mainly for tests
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithLogger sets the logger for lifecycle messages
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMouse controls whether Start enables mouse reporting on the screen
func WithMouse(enabled bool) Option {
	return func(o *options) {
		o.mouse = enabled
	}
}

// WithDevice tags every emitted event with a device id
func WithDevice(id input.DeviceID) Option {
	return func(o *options) {
		o.device = id
	}
}
