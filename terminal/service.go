package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/inputmap/input"
)

// Source reads a tcell screen on a background goroutine and hands translated
// events to the frame loop through Poll. The screen is owned by the caller:
// Source never calls Init or Fini.
type Source struct {
	screen tcell.Screen
	opts   options
	log    *zap.Logger

	eventCh chan tcell.Event
	mu      sync.Mutex
	stopCh  chan struct{} // Recreated by each Start
	doneCh  chan struct{}
	running bool

	// Frame goroutine only
	tr *translator
}

// NewSource creates a source for an initialized screen
func NewSource(screen tcell.Screen, opts ...Option) *Source {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Source{
		screen:  screen,
		opts:    o,
		log:     o.logger,
		eventCh: make(chan tcell.Event, eventBuffer),
		tr:      newTranslator(o.clock, o.holdTimeout, o.device),
	}
}

// Start launches the polling goroutine. Calling it twice is a no-op; a
// stopped source may be started again.
func (s *Source) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	stop, done := make(chan struct{}), make(chan struct{})
	s.stopCh, s.doneCh = stop, done
	s.mu.Unlock()

	if s.opts.mouse {
		s.screen.EnableMouse(tcell.MouseMotionEvents)
	}
	s.screen.EnableFocus()

	go s.pollLoop(stop, done)
	s.log.Debug("terminal source started", zap.Duration("hold_timeout", s.opts.holdTimeout))
	return nil
}

// pollLoop forwards screen events until stop signal or screen shutdown
func (s *Source) pollLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	defer func() {
		if r := recover(); r != nil {
			s.screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\nterminal poll crashed: %v\r\n%s\r\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		select {
		case <-stop:
			return
		default:
		}

		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		select {
		case s.eventCh <- ev:
		case <-stop:
			return
		}
	}
}

// Stop ends the polling goroutine and waits for it
func (s *Source) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	stop, done := s.stopCh, s.doneCh
	s.mu.Unlock()

	close(stop)

	// Unblock PollEvent
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))

	<-done
	s.log.Debug("terminal source stopped")
	return nil
}

// Poll drains pending screen events without blocking and returns them as
// input events, followed by releases for keys whose hold timed out
func (s *Source) Poll() []input.Event {
	var out []input.Event
	for {
		select {
		case ev := <-s.eventCh:
			out = s.tr.translate(out, ev)
			continue
		default:
		}
		break
	}
	return s.tr.expire(out)
}

// Interrupted reports whether Ctrl+C arrived since Start
func (s *Source) Interrupted() bool {
	return s.tr.interrupt
}
