package input

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func undoBinding() Binding[testAction] {
	z := KeyCode(KeyZ)
	return NewBinding(actZoom, KeyCode(KeyF12)).
		WithChord(z, KeyCode(KeyControlLeft)).
		WithChord(z, KeyCode(KeyControlRight))
}

func TestChordNeedsEveryCode(t *testing.T) {
	m := newTestMap(t, []Binding[testAction]{undoBinding()})
	z, ctrl := KeyCode(KeyZ), KeyCode(KeyControlRight)

	type frame struct {
		z, ctrl           bool
		pressing, pressed bool
		released          bool
	}
	frames := []frame{
		{z: true},
		{z: true, ctrl: true, pressing: true, pressed: true},
		{z: true, ctrl: true, pressing: true},
		{z: false, ctrl: true, released: true},
		{ctrl: true},
	}

	for i, f := range frames {
		m.SetDigital(z, f.z)
		m.SetDigital(ctrl, f.ctrl)
		if got := m.Pressing(actZoom); got != f.pressing {
			t.Errorf("Frame %d: expected Pressing %v, got %v", i, f.pressing, got)
		}
		if got := m.Pressed(actZoom); got != f.pressed {
			t.Errorf("Frame %d: expected Pressed %v, got %v", i, f.pressed, got)
		}
		if got := m.Released(actZoom); got != f.released {
			t.Errorf("Frame %d: expected Released %v, got %v", i, f.released, got)
		}
		m.ResetFrame()
	}
}

func TestChordStrengthIsWeakestCode(t *testing.T) {
	m := newTestMap(t, []Binding[testAction]{
		NewBinding(actFire, GamepadButtonCode(GamepadWest)).
			WithChord(GamepadButtonCode(GamepadLeftBumper), RightTriggerAxis),
	})

	tests := []struct {
		name    string
		bumper  bool
		trigger float32
		west    float32
		want    float32
	}{
		{"Trigger alone", false, 0.8, 0, 0},
		{"Chord held", true, 0.4, 0, 0.4},
		{"Single code wins when stronger", true, 0.4, 1, 1},
		{"Chord wins when stronger", true, 0.9, 0, 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetDigital(GamepadButtonCode(GamepadLeftBumper), tt.bumper)
			m.SetAnalog(RightTriggerAxis, tt.trigger)
			m.SetAnalog(GamepadButtonCode(GamepadWest), tt.west)
			if got := m.Strength(actFire); got != tt.want {
				t.Errorf("Expected strength %v, got %v", tt.want, got)
			}
		})
	}
}

func TestChordOnDeviceQualifiedCodes(t *testing.T) {
	m := newTestMap(t, []Binding[testAction]{
		NewBinding(actJump).WithChord(
			GamepadButtonCode(GamepadSouth).WithDevice(1),
			GamepadButtonCode(GamepadEast).WithDevice(1),
		),
	})

	m.HandleGamepadButton(GamepadButtonEvent{Button: GamepadSouth, Device: 1, Pressed: true})
	m.HandleGamepadButton(GamepadButtonEvent{Button: GamepadEast, Device: 2, Pressed: true})
	if m.Pressing(actJump) {
		t.Error("Expected chord split across devices to stay released")
	}

	m.HandleGamepadButton(GamepadButtonEvent{Button: GamepadEast, Device: 1, Pressed: true})
	if !m.Pressing(actJump) {
		t.Error("Expected chord on one device to press")
	}
}

func TestBindingTableChords(t *testing.T) {
	z, ctrl := KeyCode(KeyZ), KeyCode(KeyControlLeft)
	tbl := NewBindingTable[testAction]()

	tbl.AddChord(actZoom, z, ctrl)
	tbl.AddChord(actZoom, ctrl, z, ctrl)
	tbl.AddChord(actZoom)
	tbl.AddChord(actZoom, KeyCode(KeyF12))

	if diff := cmp.Diff([]Chord{{z, ctrl}}, tbl.ChordsFor(actZoom)); diff != "" {
		t.Errorf("ChordsFor mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Code{KeyCode(KeyF12)}, tbl.CodesFor(actZoom)); diff != "" {
		t.Errorf("Expected one-code chord folded into codes (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]testAction{actZoom}, tbl.ActionsFor(ctrl)); diff != "" {
		t.Errorf("ActionsFor mismatch (-want +got):\n%s", diff)
	}

	// Z stays linked while a single-code bind still uses it
	tbl.AddBinding(actZoom, z)
	tbl.RemoveChord(actZoom, ctrl, z)
	if got := tbl.ChordsFor(actZoom); len(got) != 0 {
		t.Errorf("Expected chord removed, got %v", got)
	}
	if got := tbl.ActionsFor(ctrl); len(got) != 0 {
		t.Errorf("Expected ctrl unlinked, got %v", got)
	}
	if diff := cmp.Diff([]testAction{actZoom}, tbl.ActionsFor(z)); diff != "" {
		t.Errorf("Expected z still linked (-want +got):\n%s", diff)
	}

	tbl.RemoveChord(actZoom, ctrl, z)
	tbl.Unbind(actZoom)
	if got := tbl.ActionsFor(z); len(got) != 0 {
		t.Errorf("Expected reverse index empty after unbind, got %v", got)
	}
}

func TestBindingTableSetFoldsChords(t *testing.T) {
	z, ctrl := KeyCode(KeyZ), KeyCode(KeyControlLeft)
	tbl := NewBindingTable(Binding[testAction]{
		Action: actZoom,
		Codes:  []Code{z},
		Chords: []Chord{{z, ctrl}, {ctrl, z}, {z}, {}},
	})

	want := []Binding[testAction]{{Action: actZoom, Codes: []Code{z}, Chords: []Chord{{z, ctrl}}}}
	if diff := cmp.Diff(want, tbl.Bindings()); diff != "" {
		t.Errorf("Bindings mismatch (-want +got):\n%s", diff)
	}

	tbl.Bind(actZoom, KeyCode(KeyX))
	if got := tbl.ChordsFor(actZoom); len(got) != 0 {
		t.Errorf("Expected Bind to drop chords, got %v", got)
	}
	if got := tbl.ActionsFor(ctrl); len(got) != 0 {
		t.Errorf("Expected chord codes unlinked by Bind, got %v", got)
	}
}

func TestMapChordRebinding(t *testing.T) {
	m := newTestMap(t, nil)
	m.AddChord(actJump, KeyCode(KeyShiftLeft), KeyCode(KeySpace))
	m.SetDigital(KeyCode(KeyShiftLeft), true)
	m.SetDigital(KeyCode(KeySpace), true)
	if !m.Pressing(actJump) {
		t.Fatal("Expected added chord to press")
	}

	m.RemoveChord(actJump, KeyCode(KeySpace), KeyCode(KeyShiftLeft))
	if m.Pressing(actJump) {
		t.Error("Expected removed chord to stop driving the action")
	}
}

func TestNewRejectsBadChords(t *testing.T) {
	tests := []struct {
		name    string
		binding Binding[testAction]
	}{
		{"Empty chord", NewBinding(actJump).WithChord()},
		{"Zero code in chord", NewBinding(actJump).WithChord(KeyCode(KeyA), Code{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New([]Binding[testAction]{tt.binding}); err == nil {
				t.Error("Expected construction error")
			}
		})
	}
}

func TestChordString(t *testing.T) {
	chord := Chord{KeyCode(KeyControlLeft), KeyCode(KeyZ)}
	if got := chord.String(); got != "control_left+key_z" {
		t.Errorf("Expected %q, got %q", "control_left+key_z", got)
	}
}
