package input

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind discriminates the raw source family of a Code
type Kind uint8

const (
	KindInvalid Kind = iota // Zero value, never valid in a binding
	KindKey
	KindMouseButton
	KindMouseMove // Delta state, one signed half of a mouse axis
	KindScroll    // Delta state, one signed half of a scroll axis
	KindGamepadButton
	KindGamepadAxis // Held state, one signed half of an analog axis
)

// String returns human-readable kind name
func (k Kind) String() string {
	switch k {
	case KindKey:
		return "Key"
	case KindMouseButton:
		return "MouseButton"
	case KindMouseMove:
		return "MouseMove"
	case KindScroll:
		return "Scroll"
	case KindGamepadButton:
		return "GamepadButton"
	case KindGamepadAxis:
		return "GamepadAxis"
	default:
		return "Invalid"
	}
}

// directional kinds split one signed source into two non-negative codes
func (k Kind) directional() bool {
	return k == KindMouseMove || k == KindScroll || k == KindGamepadAxis
}

// Code identifies one raw input source. It is a plain comparable value:
// two codes are equal iff every field matches, so it works as a map key.
//
// ID holds the Key, MouseButton, Axis, GamepadButton or GamepadAxis depending
// on Kind. Sign is set only for directional kinds.
type Code struct {
	Kind   Kind
	ID     uint16
	Sign   Sign
	Device DeviceID
}

// KeyCode returns the code for a keyboard key on any device
func KeyCode(k Key) Code {
	return Code{Kind: KindKey, ID: uint16(k)}
}

// MouseButtonCode returns the code for a mouse button on any device
func MouseButtonCode(b MouseButton) Code {
	return Code{Kind: KindMouseButton, ID: uint16(b)}
}

// MouseMoveCode returns one signed half of a mouse motion axis
func MouseMoveCode(a Axis, s Sign) Code {
	return Code{Kind: KindMouseMove, ID: uint16(a), Sign: s}
}

// ScrollCode returns one signed half of a scroll axis
func ScrollCode(a Axis, s Sign) Code {
	return Code{Kind: KindScroll, ID: uint16(a), Sign: s}
}

// GamepadButtonCode returns the code for a gamepad button on any gamepad
func GamepadButtonCode(b GamepadButton) Code {
	return Code{Kind: KindGamepadButton, ID: uint16(b)}
}

// GamepadAxisCode returns one signed half of a gamepad axis on any gamepad
func GamepadAxisCode(a GamepadAxis, s Sign) Code {
	return Code{Kind: KindGamepadAxis, ID: uint16(a), Sign: s}
}

// MouseMovePair returns the positive and negative halves of a mouse axis
func MouseMovePair(a Axis) (pos, neg Code) {
	return MouseMoveCode(a, SignPos), MouseMoveCode(a, SignNeg)
}

// ScrollPair returns the positive and negative halves of a scroll axis
func ScrollPair(a Axis) (pos, neg Code) {
	return ScrollCode(a, SignPos), ScrollCode(a, SignNeg)
}

// GamepadAxisPair returns the positive and negative halves of a gamepad axis
func GamepadAxisPair(a GamepadAxis) (pos, neg Code) {
	return GamepadAxisCode(a, SignPos), GamepadAxisCode(a, SignNeg)
}

// Split divides a signed value into its non-negative halves:
// pos = max(v,0), neg = max(-v,0)
func Split(v float32) (pos, neg float32) {
	if v > 0 {
		return v, 0
	}
	if v < 0 {
		return 0, -v
	}
	return 0, 0
}

// Named directional codes. Mouse Y grows downward as on screen;
// scroll and stick Y grow upward.
var (
	MouseMoveRight = MouseMoveCode(AxisX, SignPos)
	MouseMoveLeft  = MouseMoveCode(AxisX, SignNeg)
	MouseMoveDown  = MouseMoveCode(AxisY, SignPos)
	MouseMoveUp    = MouseMoveCode(AxisY, SignNeg)

	ScrollRight = ScrollCode(AxisX, SignPos)
	ScrollLeft  = ScrollCode(AxisX, SignNeg)
	ScrollUp    = ScrollCode(AxisY, SignPos)
	ScrollDown  = ScrollCode(AxisY, SignNeg)

	LeftStickRight  = GamepadAxisCode(GamepadLeftStickX, SignPos)
	LeftStickLeft   = GamepadAxisCode(GamepadLeftStickX, SignNeg)
	LeftStickUp     = GamepadAxisCode(GamepadLeftStickY, SignPos)
	LeftStickDown   = GamepadAxisCode(GamepadLeftStickY, SignNeg)
	RightStickRight = GamepadAxisCode(GamepadRightStickX, SignPos)
	RightStickLeft  = GamepadAxisCode(GamepadRightStickX, SignNeg)
	RightStickUp    = GamepadAxisCode(GamepadRightStickY, SignPos)
	RightStickDown  = GamepadAxisCode(GamepadRightStickY, SignNeg)

	LeftTriggerAxis  = GamepadAxisCode(GamepadLeftZ, SignPos)
	RightTriggerAxis = GamepadAxisCode(GamepadRightZ, SignPos)
)

// WithDevice returns the code restricted to one device
func (c Code) WithDevice(id DeviceID) Code {
	c.Device = id
	return c
}

// AnyDevice returns the code with its device qualifier cleared
func (c Code) AnyDevice() Code {
	c.Device = AnyDevice
	return c
}

// IsDelta reports whether the code carries per-frame movement rather than
// held physical state. Delta codes are zeroed by ResetFrame.
func (c Code) IsDelta() bool {
	return c.Kind == KindMouseMove || c.Kind == KindScroll
}

// Validate reports whether the code can appear in a binding table
func (c Code) Validate() error {
	var limit uint16
	switch c.Kind {
	case KindKey:
		limit = uint16(keyCount)
	case KindMouseButton:
		limit = uint16(mouseButtonCount)
	case KindMouseMove, KindScroll:
		if c.ID > uint16(AxisY) {
			return errors.Wrapf(ErrInvalidCode, "%s axis %d out of range", c.Kind, c.ID)
		}
	case KindGamepadButton:
		limit = uint16(gamepadButtonCount)
	case KindGamepadAxis:
		limit = uint16(gamepadAxisCount)
	default:
		return errors.Wrapf(ErrInvalidCode, "unknown kind %d", c.Kind)
	}

	if limit != 0 && (c.ID == 0 || c.ID >= limit) {
		return errors.Wrapf(ErrInvalidCode, "%s id %d out of range", c.Kind, c.ID)
	}

	if c.Kind.directional() {
		if c.Sign != SignPos && c.Sign != SignNeg {
			return errors.Wrapf(ErrInvalidCode, "%s %d requires a sign", c.Kind, c.ID)
		}
	} else if c.Sign != SignNone {
		return errors.Wrapf(ErrInvalidCode, "%s %d cannot carry a sign", c.Kind, c.ID)
	}
	return nil
}

// String returns the config name of the code, with an "@device" suffix when
// the code is restricted to one device
func (c Code) String() string {
	name, ok := codeToName[c.AnyDevice()]
	if !ok {
		name = fmt.Sprintf("%s(%d%s)", c.Kind, c.ID, c.Sign)
	}
	if c.Device != AnyDevice {
		return fmt.Sprintf("%s@%d", name, c.Device)
	}
	return name
}
