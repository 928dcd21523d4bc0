package input

// Key identifies a physical keyboard key independent of layout and platform
type Key uint16

// Key constants - backends map their native key codes onto these
const (
	KeyNone Key = iota

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Top-row digits
	KeyDigit0
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeySpace
	KeyInsert

	// Navigation
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Modifiers
	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyAltLeft
	KeyAltRight
	KeySuperLeft
	KeySuperRight
	KeyCapsLock

	// Punctuation
	KeyMinus
	KeyEqual
	KeyBracketLeft
	KeyBracketRight
	KeyBackslash
	KeySemicolon
	KeyQuote
	KeyBackquote
	KeyComma
	KeyPeriod
	KeySlash

	keyCount
)

// String returns the canonical config name of the key
func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	return "key_none"
}

// KeyForRune maps a printable ASCII character to the key that produces it on
// a US layout. Letters are case-insensitive. Returns KeyNone and false for
// anything else.
func KeyForRune(r rune) (Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A'), true
	case r >= '0' && r <= '9':
		return KeyDigit0 + Key(r-'0'), true
	}
	k, ok := runeKeys[r]
	return k, ok
}

// runeKeys covers punctuation, including the shifted symbol on the same key
var runeKeys = map[rune]Key{
	' ':  KeySpace,
	'-':  KeyMinus,
	'_':  KeyMinus,
	'=':  KeyEqual,
	'+':  KeyEqual,
	'[':  KeyBracketLeft,
	'{':  KeyBracketLeft,
	']':  KeyBracketRight,
	'}':  KeyBracketRight,
	'\\': KeyBackslash,
	'|':  KeyBackslash,
	';':  KeySemicolon,
	':':  KeySemicolon,
	'\'': KeyQuote,
	'"':  KeyQuote,
	'`':  KeyBackquote,
	'~':  KeyBackquote,
	',':  KeyComma,
	'<':  KeyComma,
	'.':  KeyPeriod,
	'>':  KeyPeriod,
	'/':  KeySlash,
	'?':  KeySlash,
	'!':  KeyDigit1,
	'@':  KeyDigit2,
	'#':  KeyDigit3,
	'$':  KeyDigit4,
	'%':  KeyDigit5,
	'^':  KeyDigit6,
	'&':  KeyDigit7,
	'*':  KeyDigit8,
	'(':  KeyDigit9,
	')':  KeyDigit0,
}
