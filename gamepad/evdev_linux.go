//go:build linux

package gamepad

import (
	"slices"
	"sync"

	"github.com/holoplot/go-evdev"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/lixenwraith/inputmap/input"
)

var buttonMap = map[evdev.EvCode]input.GamepadButton{
	evdev.BTN_SOUTH:      input.GamepadSouth,
	evdev.BTN_EAST:       input.GamepadEast,
	evdev.BTN_NORTH:      input.GamepadNorth,
	evdev.BTN_WEST:       input.GamepadWest,
	evdev.BTN_TL:         input.GamepadLeftBumper,
	evdev.BTN_TR:         input.GamepadRightBumper,
	evdev.BTN_TL2:        input.GamepadLeftTrigger,
	evdev.BTN_TR2:        input.GamepadRightTrigger,
	evdev.BTN_SELECT:     input.GamepadSelect,
	evdev.BTN_START:      input.GamepadStart,
	evdev.BTN_MODE:       input.GamepadMode,
	evdev.BTN_THUMBL:     input.GamepadLeftStickPress,
	evdev.BTN_THUMBR:     input.GamepadRightStickPress,
	evdev.BTN_DPAD_UP:    input.GamepadDPadUp,
	evdev.BTN_DPAD_DOWN:  input.GamepadDPadDown,
	evdev.BTN_DPAD_LEFT:  input.GamepadDPadLeft,
	evdev.BTN_DPAD_RIGHT: input.GamepadDPadRight,
}

type axisKind uint8

const (
	axisStick axisKind = iota
	axisStickInverted
	axisTrigger
)

var axisMap = map[evdev.EvCode]struct {
	axis input.GamepadAxis
	kind axisKind
}{
	evdev.ABS_X:  {input.GamepadLeftStickX, axisStick},
	evdev.ABS_Y:  {input.GamepadLeftStickY, axisStickInverted},
	evdev.ABS_RX: {input.GamepadRightStickX, axisStick},
	evdev.ABS_RY: {input.GamepadRightStickY, axisStickInverted},
	evdev.ABS_Z:  {input.GamepadLeftZ, axisTrigger},
	evdev.ABS_RZ: {input.GamepadRightZ, axisTrigger},
}

// pad is the per-device translation state
type pad struct {
	id       input.DeviceID
	info     Info
	dev      *evdev.InputDevice
	ranges   map[evdev.EvCode]axisRange
	deadzone float32
	hat      [2]int32 // Last HAT0X, HAT0Y
}

// translate appends the input events for one raw evdev event
func (p *pad) translate(out []input.Event, ev *evdev.InputEvent) []input.Event {
	switch ev.Type {
	case evdev.EV_KEY:
		b, ok := buttonMap[ev.Code]
		if !ok {
			if ev.Code < evdev.BTN_MISC || ev.Code > evdev.BTN_THUMBR {
				return out
			}
			b = input.GamepadButtonOther
		}
		// Value 2 is autorepeat
		return append(out, input.GamepadButtonEvent{Button: b, Device: p.id, Pressed: ev.Value != 0})

	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_HAT0X:
			out = hatEvents(out, p.id, hatX, p.hat[0], ev.Value)
			p.hat[0] = ev.Value
			return out
		case evdev.ABS_HAT0Y:
			out = hatEvents(out, p.id, hatY, p.hat[1], ev.Value)
			p.hat[1] = ev.Value
			return out
		}

		m, ok := axisMap[ev.Code]
		if !ok {
			return out
		}
		r, ok := p.ranges[ev.Code]
		if !ok {
			return out
		}
		var v float32
		switch m.kind {
		case axisStick:
			v = r.stick(ev.Value, p.deadzone)
		case axisStickInverted:
			v = -r.stick(ev.Value, p.deadzone)
		case axisTrigger:
			v = r.trigger(ev.Value)
		}
		return append(out, input.GamepadAxisEvent{Axis: m.axis, Device: p.id, Value: v})
	}
	return out
}

// Manager owns the opened gamepads and their reader goroutines
type Manager struct {
	opts options
	log  *zap.Logger

	events chan input.Event

	mu      sync.Mutex
	pads    map[input.DeviceID]*pad
	nextID  input.DeviceID
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// Scan opens every connected gamepad. A machine with no gamepads is not an
// error: the manager stays empty until Rescan finds one.
func Scan(opts ...Option) (*Manager, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	m := &Manager{
		opts:    o,
		log:     o.logger,
		events:  make(chan input.Event, eventBuffer),
		pads:    make(map[input.DeviceID]*pad),
		nextID:  1,
		closeCh: make(chan struct{}),
	}
	if err := m.Rescan(); err != nil {
		m.Close()
		return nil, err
	}
	return m, nil
}

// Rescan opens gamepads connected since the last scan
func (m *Manager) Rescan() error {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return errors.Wrap(err, "gamepad list devices")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}

	known := make(map[string]bool, len(m.pads))
	for _, p := range m.pads {
		known[p.info.Path] = true
	}

	for _, ip := range paths {
		if known[ip.Path] {
			continue
		}
		dev, err := evdev.Open(ip.Path)
		if err != nil {
			// Most event nodes are not readable without permissions; only log
			m.log.Debug("skip input device", zap.String("path", ip.Path), zap.Error(err))
			continue
		}
		if !isGamepad(dev) {
			dev.Close()
			continue
		}

		p, err := m.open(dev, ip)
		if err != nil {
			m.log.Warn("gamepad open failed", zap.String("path", ip.Path), zap.Error(err))
			dev.Close()
			continue
		}
		m.pads[p.id] = p
		m.wg.Add(1)
		go m.readLoop(p)
		m.log.Info("gamepad connected",
			zap.Uint32("device", uint32(p.id)),
			zap.String("name", p.info.Name),
			zap.String("path", p.info.Path))
	}
	return nil
}

// open reads axis ranges and assigns an id; caller holds mu
func (m *Manager) open(dev *evdev.InputDevice, ip evdev.InputPath) (*pad, error) {
	infos, err := dev.AbsInfos()
	if err != nil {
		return nil, errors.Wrap(err, "abs info")
	}
	ranges := make(map[evdev.EvCode]axisRange, len(infos))
	for code, ai := range infos {
		ranges[code] = axisRange{min: ai.Minimum, max: ai.Maximum, flat: ai.Flat}
	}

	name, err := dev.Name()
	if err != nil {
		name = ip.Name
	}

	id := m.nextID
	m.nextID++
	return &pad{
		id:       id,
		info:     Info{ID: id, Name: name, Path: ip.Path},
		dev:      dev,
		ranges:   ranges,
		deadzone: m.opts.deadzone,
	}, nil
}

// isGamepad requires a gamepad button block plus absolute axes
func isGamepad(dev *evdev.InputDevice) bool {
	if !slices.Contains(dev.CapableTypes(), evdev.EV_ABS) {
		return false
	}
	return slices.Contains(dev.CapableEvents(evdev.EV_KEY), evdev.BTN_SOUTH)
}

func (m *Manager) readLoop(p *pad) {
	defer m.wg.Done()

	var buf []input.Event
	for {
		ev, err := p.dev.ReadOne()
		if err != nil {
			m.disconnect(p, err)
			return
		}
		buf = p.translate(buf[:0], ev)
		for _, e := range buf {
			select {
			case m.events <- e:
			case <-m.closeCh:
				return
			}
		}
	}
}

// disconnect drops a failed device and tells the frame loop to release it
func (m *Manager) disconnect(p *pad, cause error) {
	m.mu.Lock()
	closed := m.closed
	delete(m.pads, p.id)
	m.mu.Unlock()

	// Close owns the devices once shutdown has begun
	if closed {
		return
	}
	p.dev.Close()

	m.log.Info("gamepad disconnected", zap.Uint32("device", uint32(p.id)), zap.Error(cause))
	select {
	case m.events <- input.GamepadDisconnectEvent{Device: p.id}:
	case <-m.closeCh:
	}
}

// Poll drains events read since the previous call without blocking
func (m *Manager) Poll() []input.Event {
	var out []input.Event
	for {
		select {
		case ev := <-m.events:
			out = append(out, ev)
		default:
			return out
		}
	}
}

// Devices lists the open gamepads ordered by id
func (m *Manager) Devices() []Info {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := make([]Info, 0, len(m.pads))
	for _, p := range m.pads {
		list = append(list, p.info)
	}
	slices.SortFunc(list, func(a, b Info) int { return int(a.ID) - int(b.ID) })
	return list
}

// Close closes every device and waits for the readers to exit
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	close(m.closeCh)
	pads := make([]*pad, 0, len(m.pads))
	for _, p := range m.pads {
		pads = append(pads, p)
	}
	m.mu.Unlock()

	var err error
	for _, p := range pads {
		err = multierr.Append(err, p.dev.Close())
	}
	m.wg.Wait()
	return err
}
