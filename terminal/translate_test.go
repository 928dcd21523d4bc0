package terminal

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/inputmap/input"
)

// newTestSource builds a source with no goroutine; tests feed eventCh directly
func newTestSource(mock *clock.Mock) *Source {
	return NewSource(nil, WithClock(mock), WithHoldTimeout(100*time.Millisecond))
}

func (s *Source) feed(events ...tcell.Event) {
	for _, ev := range events {
		s.eventCh <- ev
	}
}

func TestKeyHoldEmulation(t *testing.T) {
	mock := clock.NewMock()
	s := newTestSource(mock)

	s.feed(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	got := s.Poll()
	want := []input.Event{
		input.KeyEvent{Key: input.KeyW, Pressed: true},
		input.TextEvent{Text: "w"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("First poll mismatch (-want +got):\n%s", diff)
	}

	// Repeat inside the timeout keeps the key down without a new press
	mock.Add(60 * time.Millisecond)
	s.feed(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	got = s.Poll()
	want = []input.Event{input.TextEvent{Text: "w"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Repeat poll mismatch (-want +got):\n%s", diff)
	}

	mock.Add(60 * time.Millisecond)
	if got := s.Poll(); len(got) != 0 {
		t.Errorf("Expected key still held, got %v", got)
	}

	mock.Add(50 * time.Millisecond)
	got = s.Poll()
	want = []input.Event{input.KeyEvent{Key: input.KeyW, Pressed: false}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Expiry poll mismatch (-want +got):\n%s", diff)
	}
}

func TestKeyTranslation(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want []input.Key
	}{
		{"Arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), []input.Key{input.KeyArrowUp}},
		{"Enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), []input.Key{input.KeyEnter}},
		{"Function", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), []input.Key{input.KeyF5}},
		{"Backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift), []input.Key{input.KeyShiftLeft, input.KeyTab}},
		{"Ctrl letter", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), []input.Key{input.KeyControlLeft, input.KeyS}},
		{"Alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), []input.Key{input.KeyAltLeft, input.KeyX}},
		{"Uppercase rune", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), []input.Key{input.KeyQ}},
		{"Unmapped rune", tcell.NewEventKey(tcell.KeyRune, 'ß', tcell.ModNone), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSource(clock.NewMock())
			s.feed(tt.ev)

			var got []input.Key
			for _, ev := range s.Poll() {
				if k, ok := ev.(input.KeyEvent); ok && k.Pressed {
					got = append(got, k.Key)
				}
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Pressed keys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTextOnlyForPlainRunes(t *testing.T) {
	s := newTestSource(clock.NewMock())
	s.feed(
		tcell.NewEventKey(tcell.KeyRune, 'ß', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModAlt),
		tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
	)

	var text string
	for _, ev := range s.Poll() {
		if te, ok := ev.(input.TextEvent); ok {
			text += te.Text
		}
	}
	if text != "ß" {
		t.Errorf("Expected text %q, got %q", "ß", text)
	}
}

func TestCtrlCSetsInterrupted(t *testing.T) {
	s := newTestSource(clock.NewMock())
	s.feed(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	s.Poll()
	if !s.Interrupted() {
		t.Error("Expected Ctrl+C to set Interrupted")
	}
}

func TestMouseTranslation(t *testing.T) {
	s := newTestSource(clock.NewMock())
	s.feed(
		tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone),
		tcell.NewEventMouse(12, 4, tcell.ButtonPrimary, tcell.ModNone),
		tcell.NewEventMouse(12, 4, tcell.ButtonNone, tcell.ModNone),
		tcell.NewEventMouse(12, 4, tcell.WheelDown, tcell.ModNone),
	)

	want := []input.Event{
		input.CursorEvent{X: 10, Y: 5},
		input.CursorEvent{X: 12, Y: 4},
		input.MouseMoveEvent{DX: 2, DY: -1},
		input.MouseButtonEvent{Button: input.MouseButtonLeft, Pressed: true},
		input.CursorEvent{X: 12, Y: 4},
		input.MouseButtonEvent{Button: input.MouseButtonLeft, Pressed: false},
		input.CursorEvent{X: 12, Y: 4},
		input.ScrollEvent{DY: -1},
	}
	if diff := cmp.Diff(want, s.Poll()); diff != "" {
		t.Errorf("Mouse events mismatch (-want +got):\n%s", diff)
	}
}

func TestFocusLossReleasesEverything(t *testing.T) {
	s := newTestSource(clock.NewMock())
	s.feed(
		tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone),
		tcell.NewEventMouse(0, 0, tcell.ButtonSecondary, tcell.ModNone),
	)
	s.Poll()

	s.feed(tcell.NewEventFocus(false))
	want := []input.Event{
		input.KeyEvent{Key: input.KeySpace, Pressed: false},
		input.MouseButtonEvent{Button: input.MouseButtonRight, Pressed: false},
	}
	if diff := cmp.Diff(want, s.Poll()); diff != "" {
		t.Errorf("Focus loss mismatch (-want +got):\n%s", diff)
	}
}

func TestSourceDrivesMap(t *testing.T) {
	mock := clock.NewMock()
	s := newTestSource(mock)

	type action int
	const jump action = 0
	m, err := input.New([]input.Binding[action]{
		input.NewBinding(jump, input.KeyCode(input.KeySpace)),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	s.feed(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	m.Poll(s)
	if !m.Pressed(jump) {
		t.Error("Expected jump pressed")
	}
	m.ResetFrame()

	mock.Add(time.Second)
	m.Poll(s)
	if !m.Released(jump) {
		t.Error("Expected jump released after hold timeout")
	}
}

func TestSimulationScreenRoundTrip(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Screen init failed: %v", err)
	}
	defer screen.Fini()

	s := NewSource(screen)
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer s.Stop()

	screen.InjectKey(tcell.KeyRune, 'k', tcell.ModNone)
	if !waitForKey(s, input.KeyK) {
		t.Error("Expected injected key to arrive through Poll")
	}
}

func TestSourceRestarts(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Screen init failed: %v", err)
	}
	defer screen.Fini()

	s := NewSource(screen)
	rounds := []struct {
		r   rune
		key input.Key
	}{{'j', input.KeyJ}, {'k', input.KeyK}}

	for round, tt := range rounds {
		if err := s.Start(); err != nil {
			t.Fatalf("Round %d: Start failed: %v", round, err)
		}
		if err := s.Start(); err != nil {
			t.Fatalf("Round %d: second Start failed: %v", round, err)
		}

		screen.InjectKey(tcell.KeyRune, tt.r, tcell.ModNone)
		if !waitForKey(s, tt.key) {
			t.Errorf("Round %d: expected %q to arrive through Poll", round, tt.r)
		}

		if err := s.Stop(); err != nil {
			t.Fatalf("Round %d: Stop failed: %v", round, err)
		}
		if err := s.Stop(); err != nil {
			t.Fatalf("Round %d: second Stop failed: %v", round, err)
		}
	}
}

func waitForKey(s *Source, k input.Key) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		for _, ev := range s.Poll() {
			if e, ok := ev.(input.KeyEvent); ok && e.Key == k && e.Pressed {
				return true
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	return false
}
