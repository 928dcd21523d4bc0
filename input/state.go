package input

import "math"

// rawEntry holds one code's strength now and at the start of the frame
type rawEntry struct {
	current  float32
	previous float32 // Only written by advance
}

// RawState maps codes to their current strength and the strength held at the
// start of the frame. Entries are created on first observation and never
// removed; unknown codes read as zero.
type RawState struct {
	entries map[Code]*rawEntry

	// AnyDevice form -> device-qualified codes observed for it
	variants map[Code][]Code
}

// NewRawState creates an empty raw state
func NewRawState() *RawState {
	return &RawState{
		entries:  make(map[Code]*rawEntry),
		variants: make(map[Code][]Code),
	}
}

// SetDigital sets a code fully down (1) or up (0)
func (s *RawState) SetDigital(code Code, down bool) {
	s.store(code, digital(down))
}

// SetAnalog sets a code to a magnitude. Held codes clamp to [0,1]; delta codes
// are only floored at 0 since fast motion legitimately exceeds 1.
func (s *RawState) SetAnalog(code Code, magnitude float32) {
	s.store(code, magnitude)
}

// AccumulateAnalog adds to a code's strength instead of overwriting it.
// Used for motion and scroll, which arrive as several increments per frame.
func (s *RawState) AccumulateAnalog(code Code, delta float32) {
	s.add(code, delta)
}

// Current returns the code's strength this frame. An AnyDevice code reads the
// maximum over every device that reported the same input.
func (s *RawState) Current(code Code) float32 {
	return s.read(code, false)
}

// Previous returns the code's strength at the start of this frame
func (s *RawState) Previous(code Code) float32 {
	return s.read(code, true)
}

// ReleaseDevice drops every code reported by one device to zero.
// Previous values are kept so Released fires on the next query.
func (s *RawState) ReleaseDevice(id DeviceID) {
	if id == AnyDevice {
		return
	}
	for code, e := range s.entries {
		if code.Device == id {
			e.current = 0
		}
	}
}

// Reset forgets all observed codes
func (s *RawState) Reset() {
	clear(s.entries)
	clear(s.variants)
}

// store overwrites a code's strength and returns the value it replaced
func (s *RawState) store(code Code, v float32) float32 {
	e := s.slot(code)
	old := e.current
	e.current = normalize(code, v)
	return old
}

// add accumulates into a code's strength and returns the value it replaced
func (s *RawState) add(code Code, delta float32) float32 {
	e := s.slot(code)
	old := e.current
	e.current = normalize(code, e.current+delta)
	return old
}

func (s *RawState) slot(code Code) *rawEntry {
	e, ok := s.entries[code]
	if !ok {
		e = &rawEntry{}
		s.entries[code] = e
		if code.Device != AnyDevice {
			anyCode := code.AnyDevice()
			s.variants[anyCode] = append(s.variants[anyCode], code)
		}
	}
	return e
}

func (s *RawState) read(code Code, previous bool) float32 {
	var v float32
	if e, ok := s.entries[code]; ok {
		v = e.value(previous)
	}
	if code.Device != AnyDevice {
		return v
	}
	for _, qualified := range s.variants[code] {
		if w := s.entries[qualified].value(previous); w > v {
			v = w
		}
	}
	return v
}

// advance moves the frame boundary: previous takes current, delta codes restart at zero
func (s *RawState) advance() {
	for code, e := range s.entries {
		e.previous = e.current
		if code.IsDelta() {
			e.current = 0
		}
	}
}

func (e *rawEntry) value(previous bool) float32 {
	if previous {
		return e.previous
	}
	return e.current
}

func digital(down bool) float32 {
	if down {
		return 1
	}
	return 0
}

// normalize enforces the strength range for the code's kind
func normalize(code Code, v float32) float32 {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) || v < 0 {
		return 0
	}
	if v > 1 && !code.IsDelta() {
		return 1
	}
	return v
}
