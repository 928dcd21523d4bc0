package input

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		in   string
		want Code
	}{
		{"space", KeyCode(KeySpace)},
		{"SPACE", KeyCode(KeySpace)},
		{" key_w ", KeyCode(KeyW)},
		{"w", KeyCode(KeyW)},
		{"7", KeyCode(KeyDigit7)},
		{"f11", KeyCode(KeyF11)},
		{"esc", KeyCode(KeyEscape)},
		{"mouse_left", MouseButtonCode(MouseButtonLeft)},
		{"mouse_move_up", MouseMoveUp},
		{"scroll_down", ScrollDown},
		{"south", GamepadButtonCode(GamepadSouth)},
		{"left_stick_left", LeftStickLeft},
		{"right_trigger_axis", RightTriggerAxis},
		{"south@2", GamepadButtonCode(GamepadSouth).WithDevice(2)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCode(tt.in)
			if err != nil {
				t.Fatalf("ParseCode(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseCodeUnknown(t *testing.T) {
	for _, in := range []string{"", "hyperspace", "south@", "south@x", "@1"} {
		_, err := ParseCode(in)
		if errors.Cause(err) != ErrUnknownCode {
			t.Errorf("ParseCode(%q): expected ErrUnknownCode, got %v", in, err)
		}
	}
}

func TestCodeStringRoundTrip(t *testing.T) {
	for code, name := range codeToName {
		if err := code.Validate(); err != nil {
			t.Errorf("Named code %s invalid: %v", name, err)
		}
		back, err := ParseCode(code.String())
		if err != nil || back != code {
			t.Errorf("Round trip of %s gave %v, %v", name, back, err)
		}
	}

	dev := LeftStickUp.WithDevice(9)
	if got := dev.String(); got != "left_stick_up@9" {
		t.Errorf("Expected left_stick_up@9, got %s", got)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		v, pos, neg float32
	}{
		{0.5, 0.5, 0},
		{-0.25, 0, 0.25},
		{0, 0, 0},
	}
	for _, tt := range tests {
		pos, neg := Split(tt.v)
		if pos != tt.pos || neg != tt.neg {
			t.Errorf("Split(%v) = (%v,%v), expected (%v,%v)", tt.v, pos, neg, tt.pos, tt.neg)
		}
	}
}

func TestKeyForRune(t *testing.T) {
	if k, ok := KeyForRune('q'); !ok || k != KeyQ {
		t.Errorf("Expected KeyQ, got %v %v", k, ok)
	}
	if k, ok := KeyForRune('Q'); !ok || k != KeyQ {
		t.Errorf("Expected shifted rune to map to KeyQ, got %v %v", k, ok)
	}
	if _, ok := KeyForRune('é'); ok {
		t.Error("Expected no key for a non-US rune")
	}
}
