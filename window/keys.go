package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/inputmap/input"
)

type keyPair struct {
	ebiten ebiten.Key
	key    input.Key
}

// keyPairs lists every ebiten key with an input counterpart
var keyPairs = []keyPair{
	{ebiten.KeyEscape, input.KeyEscape},
	{ebiten.KeyEnter, input.KeyEnter},
	{ebiten.KeyTab, input.KeyTab},
	{ebiten.KeyBackspace, input.KeyBackspace},
	{ebiten.KeyDelete, input.KeyDelete},
	{ebiten.KeySpace, input.KeySpace},
	{ebiten.KeyInsert, input.KeyInsert},

	{ebiten.KeyArrowUp, input.KeyArrowUp},
	{ebiten.KeyArrowDown, input.KeyArrowDown},
	{ebiten.KeyArrowLeft, input.KeyArrowLeft},
	{ebiten.KeyArrowRight, input.KeyArrowRight},
	{ebiten.KeyHome, input.KeyHome},
	{ebiten.KeyEnd, input.KeyEnd},
	{ebiten.KeyPageUp, input.KeyPageUp},
	{ebiten.KeyPageDown, input.KeyPageDown},

	{ebiten.KeyShiftLeft, input.KeyShiftLeft},
	{ebiten.KeyShiftRight, input.KeyShiftRight},
	{ebiten.KeyControlLeft, input.KeyControlLeft},
	{ebiten.KeyControlRight, input.KeyControlRight},
	{ebiten.KeyAltLeft, input.KeyAltLeft},
	{ebiten.KeyAltRight, input.KeyAltRight},
	{ebiten.KeyMetaLeft, input.KeySuperLeft},
	{ebiten.KeyMetaRight, input.KeySuperRight},
	{ebiten.KeyCapsLock, input.KeyCapsLock},

	{ebiten.KeyMinus, input.KeyMinus},
	{ebiten.KeyEqual, input.KeyEqual},
	{ebiten.KeyBracketLeft, input.KeyBracketLeft},
	{ebiten.KeyBracketRight, input.KeyBracketRight},
	{ebiten.KeyBackslash, input.KeyBackslash},
	{ebiten.KeySemicolon, input.KeySemicolon},
	{ebiten.KeyQuote, input.KeyQuote},
	{ebiten.KeyBackquote, input.KeyBackquote},
	{ebiten.KeyComma, input.KeyComma},
	{ebiten.KeyPeriod, input.KeyPeriod},
	{ebiten.KeySlash, input.KeySlash},

	{ebiten.KeyA, input.KeyA},
	{ebiten.KeyB, input.KeyB},
	{ebiten.KeyC, input.KeyC},
	{ebiten.KeyD, input.KeyD},
	{ebiten.KeyE, input.KeyE},
	{ebiten.KeyF, input.KeyF},
	{ebiten.KeyG, input.KeyG},
	{ebiten.KeyH, input.KeyH},
	{ebiten.KeyI, input.KeyI},
	{ebiten.KeyJ, input.KeyJ},
	{ebiten.KeyK, input.KeyK},
	{ebiten.KeyL, input.KeyL},
	{ebiten.KeyM, input.KeyM},
	{ebiten.KeyN, input.KeyN},
	{ebiten.KeyO, input.KeyO},
	{ebiten.KeyP, input.KeyP},
	{ebiten.KeyQ, input.KeyQ},
	{ebiten.KeyR, input.KeyR},
	{ebiten.KeyS, input.KeyS},
	{ebiten.KeyT, input.KeyT},
	{ebiten.KeyU, input.KeyU},
	{ebiten.KeyV, input.KeyV},
	{ebiten.KeyW, input.KeyW},
	{ebiten.KeyX, input.KeyX},
	{ebiten.KeyY, input.KeyY},
	{ebiten.KeyZ, input.KeyZ},
	{ebiten.KeyDigit0, input.KeyDigit0},
	{ebiten.KeyDigit1, input.KeyDigit1},
	{ebiten.KeyDigit2, input.KeyDigit2},
	{ebiten.KeyDigit3, input.KeyDigit3},
	{ebiten.KeyDigit4, input.KeyDigit4},
	{ebiten.KeyDigit5, input.KeyDigit5},
	{ebiten.KeyDigit6, input.KeyDigit6},
	{ebiten.KeyDigit7, input.KeyDigit7},
	{ebiten.KeyDigit8, input.KeyDigit8},
	{ebiten.KeyDigit9, input.KeyDigit9},
	{ebiten.KeyF1, input.KeyF1},
	{ebiten.KeyF2, input.KeyF2},
	{ebiten.KeyF3, input.KeyF3},
	{ebiten.KeyF4, input.KeyF4},
	{ebiten.KeyF5, input.KeyF5},
	{ebiten.KeyF6, input.KeyF6},
	{ebiten.KeyF7, input.KeyF7},
	{ebiten.KeyF8, input.KeyF8},
	{ebiten.KeyF9, input.KeyF9},
	{ebiten.KeyF10, input.KeyF10},
	{ebiten.KeyF11, input.KeyF11},
	{ebiten.KeyF12, input.KeyF12},
}

var mousePairs = [...]struct {
	ebiten ebiten.MouseButton
	button input.MouseButton
}{
	{ebiten.MouseButtonLeft, input.MouseButtonLeft},
	{ebiten.MouseButtonRight, input.MouseButtonRight},
	{ebiten.MouseButtonMiddle, input.MouseButtonMiddle},
	{ebiten.MouseButton3, input.MouseButtonBack},
	{ebiten.MouseButton4, input.MouseButtonForward},
}

var gamepadPairs = [...]struct {
	ebiten ebiten.StandardGamepadButton
	button input.GamepadButton
}{
	{ebiten.StandardGamepadButtonRightBottom, input.GamepadSouth},
	{ebiten.StandardGamepadButtonRightRight, input.GamepadEast},
	{ebiten.StandardGamepadButtonRightTop, input.GamepadNorth},
	{ebiten.StandardGamepadButtonRightLeft, input.GamepadWest},
	{ebiten.StandardGamepadButtonFrontTopLeft, input.GamepadLeftBumper},
	{ebiten.StandardGamepadButtonFrontTopRight, input.GamepadRightBumper},
	{ebiten.StandardGamepadButtonFrontBottomLeft, input.GamepadLeftTrigger},
	{ebiten.StandardGamepadButtonFrontBottomRight, input.GamepadRightTrigger},
	{ebiten.StandardGamepadButtonCenterLeft, input.GamepadSelect},
	{ebiten.StandardGamepadButtonCenterRight, input.GamepadStart},
	{ebiten.StandardGamepadButtonCenterCenter, input.GamepadMode},
	{ebiten.StandardGamepadButtonLeftStick, input.GamepadLeftStickPress},
	{ebiten.StandardGamepadButtonRightStick, input.GamepadRightStickPress},
	{ebiten.StandardGamepadButtonLeftTop, input.GamepadDPadUp},
	{ebiten.StandardGamepadButtonLeftBottom, input.GamepadDPadDown},
	{ebiten.StandardGamepadButtonLeftLeft, input.GamepadDPadLeft},
	{ebiten.StandardGamepadButtonLeftRight, input.GamepadDPadRight},
}

// gamepadAxes lists stick axes; invert flips screen-down to up-positive
var gamepadAxes = [...]struct {
	ebiten ebiten.StandardGamepadAxis
	axis   input.GamepadAxis
	invert bool
}{
	{ebiten.StandardGamepadAxisLeftStickHorizontal, input.GamepadLeftStickX, false},
	{ebiten.StandardGamepadAxisLeftStickVertical, input.GamepadLeftStickY, true},
	{ebiten.StandardGamepadAxisRightStickHorizontal, input.GamepadRightStickX, false},
	{ebiten.StandardGamepadAxisRightStickVertical, input.GamepadRightStickY, true},
}

// gamepadTriggers are analog buttons reported as trigger axes as well
var gamepadTriggers = [...]struct {
	ebiten ebiten.StandardGamepadButton
	axis   input.GamepadAxis
}{
	{ebiten.StandardGamepadButtonFrontBottomLeft, input.GamepadLeftZ},
	{ebiten.StandardGamepadButtonFrontBottomRight, input.GamepadRightZ},
}
