// Package keywatch reloads a binding file when it changes on disk.
//
// The watcher observes the file's directory so editors that save by
// rename-and-replace are still seen. Bursts of writes collapse into one
// reload. Parsed configs and parse failures are delivered on channels for the
// frame loop to drain without blocking.
package keywatch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lixenwraith/inputmap/input"
)

// DefaultDelay is the quiet period before a changed file is reparsed
const DefaultDelay = 150 * time.Millisecond

type options struct {
	delay   time.Duration
	logger  *zap.Logger
	initial bool
}

// Option configures a Watcher
type Option func(*options)

// WithDelay sets the debounce quiet period
func WithDelay(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.delay = d
		}
	}
}

// WithLogger sets the logger for reload messages
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithInitialLoad parses the file once at start and delivers the result
func WithInitialLoad() Option {
	return func(o *options) {
		o.initial = true
	}
}

// Watcher delivers a fresh KeyConfig each time the binding file changes
type Watcher[A comparable] struct {
	path  string
	names map[string]A
	log   *zap.Logger

	fs       *fsnotify.Watcher
	debounce func(func())

	configs chan *input.KeyConfig[A]
	errs    chan error

	mu       sync.Mutex
	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// New starts watching path. names resolves action names in the file.
func New[A comparable](path string, names map[string]A, opts ...Option) (*Watcher[A], error) {
	o := options{delay: DefaultDelay, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "keywatch path")
	}
	if _, err := input.FormatFromPath(abs); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "keywatch")
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "keywatch watch %s", filepath.Dir(abs))
	}

	w := &Watcher[A]{
		path:     abs,
		names:    names,
		log:      o.logger,
		fs:       fsw,
		debounce: debounce.New(o.delay),
		configs:  make(chan *input.KeyConfig[A], 1),
		errs:     make(chan error, 1),
		closeCh:  make(chan struct{}),
	}

	if o.initial {
		w.reload()
	}

	w.closedWg.Add(1)
	go w.processLoop()

	w.log.Info("watching key config", zap.String("path", abs), zap.Duration("delay", o.delay))
	return w, nil
}

// Configs returns the channel of successfully parsed configs.
// Only the latest pending config is kept.
func (w *Watcher[A]) Configs() <-chan *input.KeyConfig[A] {
	return w.configs
}

// Errors returns the channel of reload failures. Only the latest is kept.
func (w *Watcher[A]) Errors() <-chan error {
	return w.errs
}

// Path returns the absolute path being watched
func (w *Watcher[A]) Path() string {
	return w.path
}

// Close stops the watcher; pending deliveries are dropped. Calling it twice is a no-op.
func (w *Watcher[A]) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fs.Close()
	w.closedWg.Wait()
	// Cancel a scheduled reload
	w.debounce(func() {})
	return err
}

func (w *Watcher[A]) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.debounce(w.reload)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("key config watch error", zap.Error(err))
			w.sendError(errors.Wrap(err, "keywatch"))
		}
	}
}

// relevant filters directory events down to content changes of the file
func (w *Watcher[A]) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create)
}

// reload runs on the debounce timer goroutine
func (w *Watcher[A]) reload() {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return
	}

	cfg, err := input.LoadKeyConfigFile(w.path, w.names)
	if err != nil {
		w.log.Warn("key config reload failed", zap.String("path", w.path), zap.Error(err))
		w.sendError(err)
		return
	}
	w.log.Info("key config reloaded", zap.String("path", w.path), zap.Int("bindings", len(cfg.Bindings)))
	replaceLatest(w.configs, cfg)
}

func (w *Watcher[A]) sendError(err error) {
	replaceLatest(w.errs, err)
}

// replaceLatest puts v on a one-slot channel, evicting a stale value
func replaceLatest[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
