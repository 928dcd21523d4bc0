package input

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBindingTableBindDeduplicates(t *testing.T) {
	tbl := NewBindingTable[testAction]()
	tbl.Bind(actJump, KeyCode(KeySpace), KeyCode(KeyJ), KeyCode(KeySpace))

	want := []Code{KeyCode(KeySpace), KeyCode(KeyJ)}
	if diff := cmp.Diff(want, tbl.CodesFor(actJump)); diff != "" {
		t.Errorf("CodesFor mismatch (-want +got):\n%s", diff)
	}
}

func TestBindingTableAddRemove(t *testing.T) {
	tbl := NewBindingTable(NewBinding(actFire, MouseButtonCode(MouseButtonLeft)))

	tbl.AddBinding(actFire, KeyCode(KeyF))
	tbl.AddBinding(actFire, KeyCode(KeyF))
	if got := len(tbl.CodesFor(actFire)); got != 2 {
		t.Errorf("Expected 2 codes, got %d", got)
	}

	tbl.RemoveBinding(actFire, MouseButtonCode(MouseButtonLeft))
	tbl.RemoveBinding(actFire, KeyCode(KeyZ))
	if diff := cmp.Diff([]Code{KeyCode(KeyF)}, tbl.CodesFor(actFire)); diff != "" {
		t.Errorf("CodesFor mismatch (-want +got):\n%s", diff)
	}
	if got := tbl.ActionsFor(MouseButtonCode(MouseButtonLeft)); len(got) != 0 {
		t.Errorf("Expected reverse index cleared, got %v", got)
	}
	if !tbl.Has(actFire) {
		t.Error("Expected action to stay in the table")
	}
}

func TestBindingTableUnbind(t *testing.T) {
	tbl := NewBindingTable(
		NewBinding(actJump, KeyCode(KeySpace)),
		NewBinding(actFire, KeyCode(KeySpace)),
	)
	tbl.Unbind(actJump)
	tbl.Unbind(actZoom)

	if tbl.Has(actJump) {
		t.Error("Expected action removed")
	}
	if diff := cmp.Diff([]testAction{actFire}, tbl.ActionsFor(KeyCode(KeySpace))); diff != "" {
		t.Errorf("ActionsFor mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]testAction{actFire}, tbl.Actions()); diff != "" {
		t.Errorf("Actions mismatch (-want +got):\n%s", diff)
	}
}

func TestBindingTableActionsForDevice(t *testing.T) {
	south := GamepadButtonCode(GamepadSouth)
	tbl := NewBindingTable(
		NewBinding(actJump, south),
		NewBinding(actFire, south.WithDevice(2)),
	)

	if diff := cmp.Diff([]testAction{actFire, actJump}, tbl.ActionsFor(south.WithDevice(2))); diff != "" {
		t.Errorf("ActionsFor mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]testAction{actJump}, tbl.ActionsFor(south)); diff != "" {
		t.Errorf("ActionsFor mismatch (-want +got):\n%s", diff)
	}
}

func TestBindingTableSnapshotIsolation(t *testing.T) {
	tbl := NewBindingTable(NewBinding(actJump, KeyCode(KeySpace)))
	snap := tbl.Bindings()
	snap[0].Codes[0] = KeyCode(KeyX)

	clone := tbl.Clone()
	clone.Bind(actJump, KeyCode(KeyY))

	if diff := cmp.Diff([]Code{KeyCode(KeySpace)}, tbl.CodesFor(actJump)); diff != "" {
		t.Errorf("Original mutated (-want +got):\n%s", diff)
	}
}

func TestMapRebindTakesEffect(t *testing.T) {
	m := newTestMap(t, movementBindings())
	m.SetDigital(KeyCode(KeyK), true)
	if m.Pressing(actJump) {
		t.Fatal("Expected K unbound initially")
	}

	m.Bind(actJump, KeyCode(KeyK))
	if !m.Pressing(actJump) {
		t.Error("Expected rebind to apply on next query")
	}

	m.RemoveBinding(actJump, KeyCode(KeyK))
	if m.Pressing(actJump) {
		t.Error("Expected removed code to stop driving the action")
	}

	m.AddBinding(actJump, KeyCode(KeyK))
	m.Unbind(actJump)
	if m.Pressing(actJump) || len(m.CodesFor(actJump)) != 0 {
		t.Error("Expected unbound action inactive")
	}
}
