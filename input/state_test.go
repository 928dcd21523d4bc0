package input

import (
	"math"
	"testing"
)

func TestRawStateUnknownCodeReadsZero(t *testing.T) {
	s := NewRawState()
	if s.Current(KeyCode(KeyA)) != 0 || s.Previous(KeyCode(KeyA)) != 0 {
		t.Error("Expected unobserved code to read zero")
	}
}

func TestRawStateNormalize(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name string
		code Code
		in   float32
		want float32
	}{
		{"Held in range", LeftStickRight, 0.25, 0.25},
		{"Held above one", LeftStickRight, 1.5, 1},
		{"Held negative", LeftStickRight, -0.5, 0},
		{"Held NaN", LeftStickRight, nan, 0},
		{"Held Inf", LeftStickRight, inf, 0},
		{"Delta above one", MouseMoveRight, 3, 3},
		{"Delta negative", ScrollUp, -1, 0},
		{"Delta NaN", ScrollUp, nan, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRawState()
			s.SetAnalog(tt.code, tt.in)
			if got := s.Current(tt.code); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRawStateAdvance(t *testing.T) {
	s := NewRawState()
	key := KeyCode(KeyW)
	s.SetDigital(key, true)
	s.AccumulateAnalog(MouseMoveUp, 0.5)
	s.AccumulateAnalog(MouseMoveUp, 0.75)

	if got := s.Current(MouseMoveUp); got != 1.25 {
		t.Errorf("Expected accumulated 1.25, got %v", got)
	}

	s.advance()

	if s.Current(key) != 1 || s.Previous(key) != 1 {
		t.Error("Expected held key to keep current and copy to previous")
	}
	if s.Current(MouseMoveUp) != 0 {
		t.Error("Expected delta code zeroed")
	}
	if s.Previous(MouseMoveUp) != 1.25 {
		t.Errorf("Expected delta previous 1.25, got %v", s.Previous(MouseMoveUp))
	}
}

func TestRawStateAnyDeviceReadsMax(t *testing.T) {
	s := NewRawState()
	south := GamepadButtonCode(GamepadSouth)
	s.SetAnalog(LeftStickUp.WithDevice(1), 0.2)
	s.SetAnalog(LeftStickUp.WithDevice(2), 0.6)
	s.SetDigital(south.WithDevice(4), true)

	if got := s.Current(LeftStickUp); got != 0.6 {
		t.Errorf("Expected max over devices 0.6, got %v", got)
	}
	if got := s.Current(LeftStickUp.WithDevice(1)); got != 0.2 {
		t.Errorf("Expected device 1 value 0.2, got %v", got)
	}
	if got := s.Current(south.WithDevice(5)); got != 0 {
		t.Errorf("Expected other device 0, got %v", got)
	}
}

func TestRawStateReleaseDevice(t *testing.T) {
	s := NewRawState()
	a := GamepadButtonCode(GamepadEast).WithDevice(1)
	b := GamepadButtonCode(GamepadEast).WithDevice(2)
	s.SetDigital(a, true)
	s.SetDigital(b, true)
	s.advance()

	s.ReleaseDevice(1)
	if s.Current(a) != 0 || s.Previous(a) != 1 {
		t.Error("Expected device 1 released with previous kept")
	}
	if s.Current(b) != 1 {
		t.Error("Expected device 2 untouched")
	}
}

func TestRawStateReset(t *testing.T) {
	s := NewRawState()
	s.SetDigital(KeyCode(KeyA).WithDevice(1), true)
	s.advance()
	s.Reset()

	if s.Current(KeyCode(KeyA)) != 0 || s.Previous(KeyCode(KeyA)) != 0 {
		t.Error("Expected reset state to read zero")
	}
}
