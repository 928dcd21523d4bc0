package input

// Handle folds one normalized event into the raw state
func (m *Map[A]) Handle(ev Event) {
	switch e := ev.(type) {
	case KeyEvent:
		m.HandleKey(e)
	case MouseButtonEvent:
		m.HandleMouseButton(e)
	case MouseMoveEvent:
		m.HandleMouseMove(e)
	case ScrollEvent:
		m.HandleScroll(e)
	case CursorEvent:
		m.HandleCursor(e)
	case TextEvent:
		m.HandleText(e)
	case GamepadButtonEvent:
		m.HandleGamepadButton(e)
	case GamepadAxisEvent:
		m.HandleGamepadAxis(e)
	case GamepadDisconnectEvent:
		m.HandleGamepadDisconnect(e)
	}
}

// Poll drains each source once, in order, and handles its events
func (m *Map[A]) Poll(sources ...Source) {
	for _, src := range sources {
		for _, ev := range src.Poll() {
			m.Handle(ev)
		}
	}
}

// HandleKey sets a key down or up
func (m *Map[A]) HandleKey(ev KeyEvent) {
	m.SetDigital(KeyCode(ev.Key).WithDevice(ev.Device), ev.Pressed)
}

// HandleMouseButton sets a mouse button down or up
func (m *Map[A]) HandleMouseButton(ev MouseButtonEvent) {
	m.SetDigital(MouseButtonCode(ev.Button).WithDevice(ev.Device), ev.Pressed)
}

// HandleMouseMove accumulates scaled motion into the four mouse-move halves
func (m *Map[A]) HandleMouseMove(ev MouseMoveEvent) {
	scale := m.settings.MouseScale
	m.accumulatePair(MouseMoveCode(AxisX, SignPos).WithDevice(ev.Device), ev.DX*scale)
	m.accumulatePair(MouseMoveCode(AxisY, SignPos).WithDevice(ev.Device), ev.DY*scale)
}

// HandleScroll accumulates scaled wheel motion into the four scroll halves
func (m *Map[A]) HandleScroll(ev ScrollEvent) {
	scale := m.settings.ScrollScale
	m.accumulatePair(ScrollCode(AxisX, SignPos).WithDevice(ev.Device), ev.DX*scale)
	m.accumulatePair(ScrollCode(AxisY, SignPos).WithDevice(ev.Device), ev.DY*scale)
}

// HandleCursor records the absolute pointer position
func (m *Map[A]) HandleCursor(ev CursorEvent) {
	m.mouseX, m.mouseY = ev.X, ev.Y
}

// HandleText appends typed text for this frame
func (m *Map[A]) HandleText(ev TextEvent) {
	m.text.WriteString(ev.Text)
}

// HandleGamepadButton sets a gamepad button down or up
func (m *Map[A]) HandleGamepadButton(ev GamepadButtonEvent) {
	m.SetDigital(GamepadButtonCode(ev.Button).WithDevice(ev.Device), ev.Pressed)
}

// HandleGamepadAxis splits an axis position into its two halves
func (m *Map[A]) HandleGamepadAxis(ev GamepadAxisEvent) {
	pos, neg := Split(ev.Value)
	m.SetAnalog(GamepadAxisCode(ev.Axis, SignPos).WithDevice(ev.Device), pos)
	m.SetAnalog(GamepadAxisCode(ev.Axis, SignNeg).WithDevice(ev.Device), neg)
}

// HandleGamepadDisconnect releases everything the device was holding
func (m *Map[A]) HandleGamepadDisconnect(ev GamepadDisconnectEvent) {
	m.state.ReleaseDevice(ev.Device)
}

// SetDigital sets a code to 1 or 0
func (m *Map[A]) SetDigital(code Code, down bool) {
	m.track(code, m.state.store(code, digital(down)))
}

// SetAnalog sets a code to a magnitude, see RawState.SetAnalog
func (m *Map[A]) SetAnalog(code Code, magnitude float32) {
	m.track(code, m.state.store(code, magnitude))
}

// AccumulateAnalog adds to a code's magnitude, see RawState.AccumulateAnalog
func (m *Map[A]) AccumulateAnalog(code Code, delta float32) {
	m.track(code, m.state.add(code, delta))
}

// accumulatePair routes a signed delta to the positive code or its negative twin
func (m *Map[A]) accumulatePair(pos Code, v float32) {
	p, n := Split(v)
	if p > 0 {
		m.AccumulateAnalog(pos, p)
	}
	if n > 0 {
		neg := pos
		neg.Sign = SignNeg
		m.AccumulateAnalog(neg, n)
	}
}

// track notes codes that just left zero
func (m *Map[A]) track(code Code, old float32) {
	if old == 0 && m.state.entries[code].current > 0 {
		m.recent = code
		m.hasRecent = true
	}
}
