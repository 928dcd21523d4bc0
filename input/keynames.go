package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// keyToName maps Key constants to canonical config string names
var keyToName = buildKeyNames()

func buildKeyNames() map[Key]string {
	names := map[Key]string{
		KeyEscape:    "escape",
		KeyEnter:     "enter",
		KeyTab:       "tab",
		KeyBackspace: "backspace",
		KeyDelete:    "delete",
		KeySpace:     "space",
		KeyInsert:    "insert",

		KeyArrowUp:    "arrow_up",
		KeyArrowDown:  "arrow_down",
		KeyArrowLeft:  "arrow_left",
		KeyArrowRight: "arrow_right",
		KeyHome:       "home",
		KeyEnd:        "end",
		KeyPageUp:     "page_up",
		KeyPageDown:   "page_down",

		KeyShiftLeft:    "shift_left",
		KeyShiftRight:   "shift_right",
		KeyControlLeft:  "control_left",
		KeyControlRight: "control_right",
		KeyAltLeft:      "alt_left",
		KeyAltRight:     "alt_right",
		KeySuperLeft:    "super_left",
		KeySuperRight:   "super_right",
		KeyCapsLock:     "caps_lock",

		KeyMinus:        "minus",
		KeyEqual:        "equal",
		KeyBracketLeft:  "bracket_left",
		KeyBracketRight: "bracket_right",
		KeyBackslash:    "backslash",
		KeySemicolon:    "semicolon",
		KeyQuote:        "quote",
		KeyBackquote:    "backquote",
		KeyComma:        "comma",
		KeyPeriod:       "period",
		KeySlash:        "slash",
	}
	for k := KeyA; k <= KeyZ; k++ {
		names[k] = "key_" + string(rune('a'+(k-KeyA)))
	}
	for k := KeyDigit0; k <= KeyDigit9; k++ {
		names[k] = "digit_" + string(rune('0'+(k-KeyDigit0)))
	}
	for k := KeyF1; k <= KeyF12; k++ {
		names[k] = "f" + strconv.Itoa(int(k-KeyF1)+1)
	}
	return names
}

var mouseButtonToName = map[MouseButton]string{
	MouseButtonLeft:    "mouse_left",
	MouseButtonRight:   "mouse_right",
	MouseButtonMiddle:  "mouse_middle",
	MouseButtonBack:    "mouse_back",
	MouseButtonForward: "mouse_forward",
}

var gamepadButtonToName = map[GamepadButton]string{
	GamepadSouth:           "south",
	GamepadEast:            "east",
	GamepadNorth:           "north",
	GamepadWest:            "west",
	GamepadLeftBumper:      "left_bumper",
	GamepadRightBumper:     "right_bumper",
	GamepadLeftTrigger:     "left_trigger",
	GamepadRightTrigger:    "right_trigger",
	GamepadSelect:          "select",
	GamepadStart:           "start",
	GamepadMode:            "mode",
	GamepadLeftStickPress:  "left_stick_press",
	GamepadRightStickPress: "right_stick_press",
	GamepadDPadUp:          "dpad_up",
	GamepadDPadDown:        "dpad_down",
	GamepadDPadLeft:        "dpad_left",
	GamepadDPadRight:       "dpad_right",
	GamepadButtonOther:     "gamepad_other",
}

// gamepadAxisToName holds {positive half, negative half} names
var gamepadAxisToName = map[GamepadAxis][2]string{
	GamepadLeftStickX:  {"left_stick_right", "left_stick_left"},
	GamepadLeftStickY:  {"left_stick_up", "left_stick_down"},
	GamepadRightStickX: {"right_stick_right", "right_stick_left"},
	GamepadRightStickY: {"right_stick_up", "right_stick_down"},
	GamepadLeftZ:       {"left_z", "left_z_neg"},
	GamepadRightZ:      {"right_z", "right_z_neg"},
	GamepadAxisOther:   {"axis_other", "axis_other_neg"},
}

// codeToName maps AnyDevice codes to canonical names
var codeToName = buildCodeNames()

// nameToCode is the reverse lookup, built from codeToName plus aliases
var nameToCode = buildNameCodes()

func buildCodeNames() map[Code]string {
	names := make(map[Code]string, len(keyToName)+64)
	for k, n := range keyToName {
		names[KeyCode(k)] = n
	}
	for b, n := range mouseButtonToName {
		names[MouseButtonCode(b)] = n
	}
	for b, n := range gamepadButtonToName {
		names[GamepadButtonCode(b)] = n
	}
	for a, n := range gamepadAxisToName {
		pos, neg := GamepadAxisPair(a)
		names[pos] = n[0]
		names[neg] = n[1]
	}

	names[MouseMoveRight] = "mouse_move_right"
	names[MouseMoveLeft] = "mouse_move_left"
	names[MouseMoveDown] = "mouse_move_down"
	names[MouseMoveUp] = "mouse_move_up"
	names[ScrollRight] = "scroll_right"
	names[ScrollLeft] = "scroll_left"
	names[ScrollUp] = "scroll_up"
	names[ScrollDown] = "scroll_down"
	return names
}

func buildNameCodes() map[string]Code {
	codes := make(map[string]Code, len(codeToName)+48)
	for c, n := range codeToName {
		codes[n] = c
	}

	// Bare letters and digits
	for k := KeyA; k <= KeyZ; k++ {
		codes[string(rune('a'+(k-KeyA)))] = KeyCode(k)
	}
	for k := KeyDigit0; k <= KeyDigit9; k++ {
		codes[string(rune('0'+(k-KeyDigit0)))] = KeyCode(k)
	}

	// Aliases
	codes["esc"] = KeyCode(KeyEscape)
	codes["return"] = KeyCode(KeyEnter)
	codes["up"] = KeyCode(KeyArrowUp)
	codes["down"] = KeyCode(KeyArrowDown)
	codes["left"] = KeyCode(KeyArrowLeft)
	codes["right"] = KeyCode(KeyArrowRight)
	codes["ctrl_left"] = KeyCode(KeyControlLeft)
	codes["ctrl_right"] = KeyCode(KeyControlRight)
	codes["left_trigger_axis"] = LeftTriggerAxis
	codes["right_trigger_axis"] = RightTriggerAxis
	return codes
}

// ParseCode resolves a config name to a Code.
// Names are case-insensitive; an "@N" suffix restricts the code to device N.
func ParseCode(s string) (Code, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	var device DeviceID
	if at := strings.LastIndexByte(name, '@'); at > 0 {
		id, err := strconv.ParseUint(name[at+1:], 10, 32)
		if err != nil {
			return Code{}, errors.Wrapf(ErrUnknownCode, "%q: bad device suffix", s)
		}
		device = DeviceID(id)
		name = name[:at]
	}

	c, ok := nameToCode[name]
	if !ok {
		return Code{}, errors.Wrapf(ErrUnknownCode, "%q", s)
	}
	return c.WithDevice(device), nil
}

// MustParseCode is ParseCode for static tables; it panics on unknown names
func MustParseCode(s string) Code {
	c, err := ParseCode(s)
	if err != nil {
		panic(fmt.Sprintf("input: %v", err))
	}
	return c
}
