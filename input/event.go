package input

// Event is a normalized raw input event. Backends translate their native
// events into these shapes; Map.Handle folds them into the raw state.
type Event interface {
	isEvent()
}

// KeyEvent reports a key going down or up
type KeyEvent struct {
	Key     Key
	Pressed bool
	Device  DeviceID // AnyDevice when the backend cannot tell keyboards apart
}

// MouseButtonEvent reports a mouse button going down or up
type MouseButtonEvent struct {
	Button  MouseButton
	Pressed bool
	Device  DeviceID
}

// MouseMoveEvent reports relative pointer motion since the previous event.
// Several may arrive per frame; they accumulate.
type MouseMoveEvent struct {
	DX, DY float32
	Device DeviceID
}

// ScrollEvent reports wheel motion. Positive DY scrolls up, positive DX right.
type ScrollEvent struct {
	DX, DY float32
	Device DeviceID
}

// CursorEvent reports the absolute pointer position in window coordinates
type CursorEvent struct {
	X, Y float32
}

// TextEvent carries characters typed this frame, after layout and IME
type TextEvent struct {
	Text string
}

// GamepadButtonEvent reports a gamepad button going down or up
type GamepadButtonEvent struct {
	Button  GamepadButton
	Device  DeviceID
	Pressed bool
}

// GamepadAxisEvent reports the absolute position of an analog axis.
// Sticks report [-1,1] with Y up positive; triggers report [0,1].
type GamepadAxisEvent struct {
	Axis   GamepadAxis
	Device DeviceID
	Value  float32
}

// GamepadDisconnectEvent reports that a device is gone; its inputs read as released
type GamepadDisconnectEvent struct {
	Device DeviceID
}

func (KeyEvent) isEvent()               {}
func (MouseButtonEvent) isEvent()       {}
func (MouseMoveEvent) isEvent()         {}
func (ScrollEvent) isEvent()            {}
func (CursorEvent) isEvent()            {}
func (TextEvent) isEvent()              {}
func (GamepadButtonEvent) isEvent()     {}
func (GamepadAxisEvent) isEvent()       {}
func (GamepadDisconnectEvent) isEvent() {}

// Source is a collaborator that yields the events gathered since its last
// Poll. Poll is called from the frame loop and must not block.
type Source interface {
	Poll() []Event
}

// Recenterer is a window collaborator that can pin the cursor for
// relative-look controls
type Recenterer interface {
	RecenterCursor()
}
