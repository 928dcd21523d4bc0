package input

import (
	"slices"
	"strings"
)

// Chord is a bind that needs all of its codes at once, such as Ctrl+Z.
// Its strength is the smallest strength among its codes.
type Chord []Code

// String joins the code names with "+"
func (c Chord) String() string {
	names := make([]string, len(c))
	for i, code := range c {
		names[i] = code.String()
	}
	return strings.Join(names, "+")
}

// Binding pairs an action with the binds that drive it: single codes and
// chords. The action is active when any of its binds is.
type Binding[A comparable] struct {
	Action A
	Codes  []Code
	Chords []Chord
}

// NewBinding builds a Binding from an action and its single-code binds
func NewBinding[A comparable](action A, codes ...Code) Binding[A] {
	return Binding[A]{Action: action, Codes: codes}
}

// WithChord returns the binding with one more chord bind
func (b Binding[A]) WithChord(codes ...Code) Binding[A] {
	b.Chords = append(slices.Clip(b.Chords), Chord(codes))
	return b
}

// BindingTable is a many-to-many mapping between actions and codes.
// A code may drive several actions; an action may have no binds.
// Single codes under one action form an ordered set: duplicates collapse to
// the first occurrence and bind order is kept for introspection. Chords are
// deduplicated as sets, so Ctrl+Z and Z+Ctrl are the same chord.
type BindingTable[A comparable] struct {
	order   []A // Action insertion order
	codes   map[A][]Code
	chords  map[A][]Chord
	actions map[Code][]A // Reverse index over codes and chord members
}

// NewBindingTable builds a table from a sequence of bindings.
// A repeated action replaces its earlier binding (last wins, silently).
func NewBindingTable[A comparable](bindings ...Binding[A]) *BindingTable[A] {
	t := &BindingTable[A]{
		codes:   make(map[A][]Code, len(bindings)),
		chords:  make(map[A][]Chord),
		actions: make(map[Code][]A),
	}
	for _, b := range bindings {
		t.set(b.Action, b.Codes, b.Chords)
	}
	return t
}

// Bind replaces every bind of an action with single codes, adding the action if new
func (t *BindingTable[A]) Bind(action A, codes ...Code) {
	t.set(action, codes, nil)
}

// AddBinding appends one code to an action. Already bound codes are left in place.
func (t *BindingTable[A]) AddBinding(action A, code Code) {
	t.touch(action)
	if slices.Contains(t.codes[action], code) {
		return
	}
	t.codes[action] = append(t.codes[action], code)
	t.link(code, action)
}

// RemoveBinding removes one code from an action. Removing an unbound code is a no-op.
// The action itself stays in the table, possibly with no binds.
func (t *BindingTable[A]) RemoveBinding(action A, code Code) {
	set := t.codes[action]
	i := slices.Index(set, code)
	if i < 0 {
		return
	}
	t.codes[action] = slices.Delete(set, i, i+1)
	t.release(code, action)
}

// AddChord appends a chord to an action. A one-code chord is a plain binding;
// an empty chord is ignored.
func (t *BindingTable[A]) AddChord(action A, codes ...Code) {
	chord := normalizeChord(codes)
	switch len(chord) {
	case 0:
		return
	case 1:
		t.AddBinding(action, chord[0])
		return
	}

	t.touch(action)
	if slices.ContainsFunc(t.chords[action], func(c Chord) bool { return sameChord(c, chord) }) {
		return
	}
	t.chords[action] = append(t.chords[action], chord)
	for _, c := range chord {
		t.link(c, action)
	}
}

// RemoveChord removes a chord from an action, in any code order. Unknown
// chords are a no-op.
func (t *BindingTable[A]) RemoveChord(action A, codes ...Code) {
	chord := normalizeChord(codes)
	set := t.chords[action]
	i := slices.IndexFunc(set, func(c Chord) bool { return sameChord(c, chord) })
	if i < 0 {
		return
	}
	removed := set[i]
	t.chords[action] = slices.Delete(set, i, i+1)
	for _, c := range removed {
		t.release(c, action)
	}
}

// Unbind removes an action and all its binds from the table
func (t *BindingTable[A]) Unbind(action A) {
	if _, ok := t.codes[action]; !ok {
		return
	}
	t.detach(action)
	delete(t.codes, action)
	if i := slices.Index(t.order, action); i >= 0 {
		t.order = slices.Delete(t.order, i, i+1)
	}
}

// CodesFor returns a copy of the single codes bound to an action, in bind order
func (t *BindingTable[A]) CodesFor(action A) []Code {
	return slices.Clone(t.codes[action])
}

// ChordsFor returns a copy of the chords bound to an action, in bind order
func (t *BindingTable[A]) ChordsFor(action A) []Chord {
	return cloneChords(t.chords[action])
}

// ActionsFor returns the actions a code drives, alone or as part of a chord.
// A device-qualified code also drives the actions bound to its AnyDevice form.
func (t *BindingTable[A]) ActionsFor(code Code) []A {
	result := slices.Clone(t.actions[code])
	if code.Device == AnyDevice {
		return result
	}
	for _, a := range t.actions[code.AnyDevice()] {
		if !slices.Contains(result, a) {
			result = append(result, a)
		}
	}
	return result
}

// Has reports whether the action is in the table
func (t *BindingTable[A]) Has(action A) bool {
	_, ok := t.codes[action]
	return ok
}

// Actions returns all actions in insertion order
func (t *BindingTable[A]) Actions() []A {
	return slices.Clone(t.order)
}

// Bindings returns a snapshot of the table in insertion order
func (t *BindingTable[A]) Bindings() []Binding[A] {
	result := make([]Binding[A], 0, len(t.order))
	for _, a := range t.order {
		result = append(result, Binding[A]{
			Action: a,
			Codes:  slices.Clone(t.codes[a]),
			Chords: cloneChords(t.chords[a]),
		})
	}
	return result
}

// Len returns the number of actions
func (t *BindingTable[A]) Len() int {
	return len(t.order)
}

// Clone returns a deep copy of the table
func (t *BindingTable[A]) Clone() *BindingTable[A] {
	return NewBindingTable(t.Bindings()...)
}

// lookup returns the live code and chord slices for resolution; callers must not retain them
func (t *BindingTable[A]) lookup(action A) ([]Code, []Chord) {
	return t.codes[action], t.chords[action]
}

// set replaces an action's binds; one-code chords fold into the single codes
func (t *BindingTable[A]) set(action A, codes []Code, chords []Chord) {
	t.detach(action)
	t.touch(action)

	set := make([]Code, 0, len(codes))
	add := func(c Code) {
		if slices.Contains(set, c) {
			return
		}
		set = append(set, c)
		t.link(c, action)
	}
	for _, c := range codes {
		add(c)
	}

	var chordSet []Chord
	for _, raw := range chords {
		chord := normalizeChord(raw)
		switch {
		case len(chord) == 0:
		case len(chord) == 1:
			add(chord[0])
		case slices.ContainsFunc(chordSet, func(c Chord) bool { return sameChord(c, chord) }):
		default:
			chordSet = append(chordSet, chord)
			for _, c := range chord {
				t.link(c, action)
			}
		}
	}

	t.codes[action] = set
	if chordSet != nil {
		t.chords[action] = chordSet
	}
}

func (t *BindingTable[A]) touch(action A) {
	if _, ok := t.codes[action]; !ok {
		t.codes[action] = nil
		t.order = append(t.order, action)
	}
}

// detach drops an action from the reverse index of every code it holds
func (t *BindingTable[A]) detach(action A) {
	for _, c := range t.codes[action] {
		t.unlink(c, action)
	}
	for _, chord := range t.chords[action] {
		for _, c := range chord {
			t.unlink(c, action)
		}
	}
	if _, ok := t.codes[action]; ok {
		t.codes[action] = nil
	}
	delete(t.chords, action)
}

func (t *BindingTable[A]) link(code Code, action A) {
	if !slices.Contains(t.actions[code], action) {
		t.actions[code] = append(t.actions[code], action)
	}
}

// release unlinks a code from an action unless another bind still uses it
func (t *BindingTable[A]) release(code Code, action A) {
	if slices.Contains(t.codes[action], code) {
		return
	}
	for _, chord := range t.chords[action] {
		if slices.Contains(chord, code) {
			return
		}
	}
	t.unlink(code, action)
}

func (t *BindingTable[A]) unlink(code Code, action A) {
	list := t.actions[code]
	if i := slices.Index(list, action); i >= 0 {
		list = slices.Delete(list, i, i+1)
	}
	if len(list) == 0 {
		delete(t.actions, code)
		return
	}
	t.actions[code] = list
}

// normalizeChord drops repeated codes, keeping the first occurrence
func normalizeChord(codes []Code) Chord {
	chord := make(Chord, 0, len(codes))
	for _, c := range codes {
		if !slices.Contains(chord, c) {
			chord = append(chord, c)
		}
	}
	return chord
}

// sameChord compares two normalized chords as sets
func sameChord(a, b Chord) bool {
	if len(a) != len(b) {
		return false
	}
	for _, c := range a {
		if !slices.Contains(b, c) {
			return false
		}
	}
	return true
}

func cloneChords(chords []Chord) []Chord {
	if len(chords) == 0 {
		return nil
	}
	result := make([]Chord, len(chords))
	for i, c := range chords {
		result[i] = slices.Clone(c)
	}
	return result
}
