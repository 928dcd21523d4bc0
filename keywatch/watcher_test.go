package keywatch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/inputmap/input"
)

type action int

const (
	jump action = iota
	fire
)

var names = map[string]action{"jump": jump, "fire": fire}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
}

func waitConfig(t *testing.T, w *Watcher[action]) *input.KeyConfig[action] {
	t.Helper()
	select {
	case cfg := <-w.Configs():
		return cfg
	case err := <-w.Errors():
		t.Fatalf("Unexpected reload error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for config")
	}
	return nil
}

func TestWatcherInitialAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.toml")
	writeFile(t, path, "[bindings]\njump = \"space\"\n")

	w, err := New(path, names, WithDelay(20*time.Millisecond), WithInitialLoad())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	cfg := waitConfig(t, w)
	want := []input.Binding[action]{input.NewBinding(jump, input.KeyCode(input.KeySpace))}
	if diff := cmp.Diff(want, cfg.Bindings); diff != "" {
		t.Errorf("Initial bindings mismatch (-want +got):\n%s", diff)
	}

	writeFile(t, path, "[bindings]\nfire = [\"mouse_left\", \"f\"]\n")
	cfg = waitConfig(t, w)
	want = []input.Binding[action]{
		input.NewBinding(fire, input.MouseButtonCode(input.MouseButtonLeft), input.KeyCode(input.KeyF)),
	}
	if diff := cmp.Diff(want, cfg.Bindings); diff != "" {
		t.Errorf("Reloaded bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestWatcherReportsParseErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.yaml")
	writeFile(t, path, "bindings:\n  jump: space\n")

	w, err := New(path, names, WithDelay(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	writeFile(t, path, "bindings:\n  teleport: space\n")
	select {
	case err := <-w.Errors():
		if err == nil {
			t.Error("Expected non-nil error")
		}
	case cfg := <-w.Configs():
		t.Fatalf("Expected error, got config %v", cfg)
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for error")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.toml")
	writeFile(t, path, "[bindings]\n")

	w, err := New(path, names, WithDelay(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	writeFile(t, filepath.Join(dir, "other.toml"), "[bindings]\njump = \"space\"\n")
	select {
	case cfg := <-w.Configs():
		t.Errorf("Expected no reload, got %v", cfg)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestNewRejectsUnknownExtension(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "keys.ini"), names); err == nil {
		t.Error("Expected unknown format error")
	}
}

func TestCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.toml")
	writeFile(t, path, "")

	w, err := New(path, names)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("First close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Second close failed: %v", err)
	}
}
