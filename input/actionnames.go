package input

import (
	"fmt"
	"strings"
)

// ActionNames builds the name registry used by key config loading from
// actions that print their own names. Names are lowercased.
func ActionNames[A interface {
	comparable
	fmt.Stringer
}](actions ...A) map[string]A {
	names := make(map[string]A, len(actions))
	for _, a := range actions {
		names[strings.ToLower(a.String())] = a
	}
	return names
}

// NameOf is the reverse lookup of a registry, for writing configs back out
func NameOf[A comparable](names map[string]A, action A) (string, bool) {
	for n, a := range names {
		if a == action {
			return n, true
		}
	}
	return "", false
}
