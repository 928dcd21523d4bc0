package input

// MouseButton identifies a mouse button
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonBack    // Button 4 (if supported)
	MouseButtonForward // Button 5 (if supported)

	mouseButtonCount
)

// Axis selects the horizontal or vertical component of mouse motion or scroll
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Sign selects one half of a signed continuous source
type Sign uint8

const (
	SignNone Sign = iota // Non-directional codes
	SignPos
	SignNeg
)

// String returns "+", "-" or ""
func (s Sign) String() string {
	switch s {
	case SignPos:
		return "+"
	case SignNeg:
		return "-"
	default:
		return ""
	}
}

// GamepadButton identifies a gamepad button using the standard layout.
// Face buttons are named by position: South is A on Xbox pads, Cross on PlayStation.
type GamepadButton uint8

const (
	GamepadButtonNone GamepadButton = iota
	GamepadSouth
	GamepadEast
	GamepadNorth
	GamepadWest
	GamepadLeftBumper
	GamepadRightBumper
	GamepadLeftTrigger
	GamepadRightTrigger
	GamepadSelect
	GamepadStart
	GamepadMode
	GamepadLeftStickPress
	GamepadRightStickPress
	GamepadDPadUp
	GamepadDPadDown
	GamepadDPadLeft
	GamepadDPadRight
	GamepadButtonOther // Anything the backend cannot name

	gamepadButtonCount
)

// GamepadAxis identifies an analog gamepad axis.
// Stick Y grows upward; triggers (LeftZ/RightZ) report in [0,1] on the positive half.
type GamepadAxis uint8

const (
	GamepadAxisNone GamepadAxis = iota
	GamepadLeftStickX
	GamepadLeftStickY
	GamepadRightStickX
	GamepadRightStickY
	GamepadLeftZ
	GamepadRightZ
	GamepadAxisOther

	gamepadAxisCount
)

// DeviceID distinguishes physical devices of the same kind.
// AnyDevice in a binding matches input from every device.
type DeviceID uint32

const AnyDevice DeviceID = 0
