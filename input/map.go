package input

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Map resolves raw input into action strengths for one frame loop.
// It owns its binding table and raw state; create one per input context.
type Map[A comparable] struct {
	bindings *BindingTable[A]
	base     []Binding[A] // Construction bindings, the merge base for configs
	state    *RawState
	settings Settings

	log        *zap.Logger
	recenterer Recenterer

	// Per-frame extras, cleared by ResetFrame
	recent    Code
	hasRecent bool
	text      strings.Builder

	mouseX, mouseY float32
}

// New creates a Map from a sequence of bindings.
// A repeated action replaces its earlier binding. An action with no codes is
// valid and always reads zero. Malformed codes or settings fail construction
// with every problem reported.
func New[A comparable](bindings []Binding[A], opts ...Option) (*Map[A], error) {
	o := options{
		settings: DefaultSettings(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	err := o.settings.Validate()
	if verr := validateBindings(bindings, o.logger); verr != nil {
		err = multierr.Append(err, verr)
	}
	if err != nil {
		return nil, errors.Wrap(err, "input map")
	}

	m := &Map[A]{
		bindings:   NewBindingTable(bindings...),
		state:      NewRawState(),
		settings:   o.settings,
		log:        o.logger,
		recenterer: o.recenterer,
	}
	m.base = m.bindings.Bindings()
	m.log.Debug("input map created", zap.Int("actions", m.bindings.Len()))
	return m, nil
}

func validateBindings[A comparable](bindings []Binding[A], log *zap.Logger) error {
	seen := make(map[A]struct{}, len(bindings))
	for i, b := range bindings {
		if _, dup := seen[b.Action]; dup {
			log.Debug("action bound twice, later binding wins", zap.Any("action", b.Action), zap.Int("index", i))
		}
		seen[b.Action] = struct{}{}

		if len(b.Codes) == 0 && len(b.Chords) == 0 {
			log.Warn("no codes bound", zap.Any("action", b.Action))
		}
	}
	return validateCodes(bindings)
}

// validateCodes checks every code and chord of every binding
func validateCodes[A comparable](bindings []Binding[A]) error {
	var err error
	for i, b := range bindings {
		for j, c := range b.Codes {
			if cerr := c.Validate(); cerr != nil {
				err = multierr.Append(err, errors.Wrapf(cerr, "binding %d (%v) code %d", i, b.Action, j))
			}
		}
		for j, chord := range b.Chords {
			if len(chord) == 0 {
				err = multierr.Append(err, errors.Wrapf(ErrInvalidCode, "binding %d (%v) chord %d is empty", i, b.Action, j))
			}
			for k, c := range chord {
				if cerr := c.Validate(); cerr != nil {
					err = multierr.Append(err, errors.Wrapf(cerr, "binding %d (%v) chord %d code %d", i, b.Action, j, k))
				}
			}
		}
	}
	return err
}

// Strength returns the action's strength: the largest current strength among
// its binds, where a chord counts as its weakest code. Held sources lie in
// [0,1]; motion and scroll are not capped.
func (m *Map[A]) Strength(action A) float32 {
	return m.resolve(action, false)
}

// PrevStrength returns the action's strength at the start of the frame
func (m *Map[A]) PrevStrength(action A) float32 {
	return m.resolve(action, true)
}

// Pressing reports whether the action is held this frame
func (m *Map[A]) Pressing(action A) bool {
	return m.Strength(action) > m.settings.PressSensitivity
}

// Pressed reports whether the action went from released to held this frame
func (m *Map[A]) Pressed(action A) bool {
	s := m.settings.PressSensitivity
	return m.Strength(action) > s && m.PrevStrength(action) <= s
}

// Released reports whether the action went from held to released this frame
func (m *Map[A]) Released(action A) bool {
	s := m.settings.PressSensitivity
	return m.Strength(action) <= s && m.PrevStrength(action) > s
}

// Axis returns strength(pos) - strength(neg). The result is not clamped:
// callers binding motion or scroll should clamp to [-1,1] themselves.
func (m *Map[A]) Axis(pos, neg A) float32 {
	return m.Strength(pos) - m.Strength(neg)
}

// Dir pairs two axes. No normalization: a diagonal has length above 1.
func (m *Map[A]) Dir(posX, negX, posY, negY A) (float32, float32) {
	return m.Axis(posX, negX), m.Axis(posY, negY)
}

// DirVec is Dir as a vector
func (m *Map[A]) DirVec(posX, negX, posY, negY A) mgl32.Vec2 {
	x, y := m.Dir(posX, negX, posY, negY)
	return mgl32.Vec2{x, y}
}

// DirMaxLen1 is Dir scaled down onto the unit circle when longer than 1
func (m *Map[A]) DirMaxLen1(posX, negX, posY, negY A) (float32, float32) {
	v := m.DirVec(posX, negX, posY, negY)
	if v.Len() > 1 {
		v = v.Normalize()
	}
	return v.X(), v.Y()
}

func (m *Map[A]) resolve(action A, previous bool) float32 {
	var v float32
	codes, chords := m.bindings.lookup(action)
	for _, c := range codes {
		if s := m.state.read(c, previous); s > v {
			v = s
		}
	}
	for _, chord := range chords {
		if s := m.chordStrength(chord, previous); s > v {
			v = s
		}
	}
	return v
}

// chordStrength is the minimum over the chord's codes
func (m *Map[A]) chordStrength(chord Chord, previous bool) float32 {
	if len(chord) == 0 {
		return 0
	}
	v := m.state.read(chord[0], previous)
	for _, c := range chord[1:] {
		if v == 0 {
			break
		}
		if s := m.state.read(c, previous); s < v {
			v = s
		}
	}
	return v
}

// CodesFor returns the single codes bound to an action, in bind order
func (m *Map[A]) CodesFor(action A) []Code {
	return m.bindings.CodesFor(action)
}

// ChordsFor returns the chords bound to an action, in bind order
func (m *Map[A]) ChordsFor(action A) []Chord {
	return m.bindings.ChordsFor(action)
}

// ActionsFor returns the actions a code drives
func (m *Map[A]) ActionsFor(code Code) []A {
	return m.bindings.ActionsFor(code)
}

// Bindings returns a snapshot of the binding table
func (m *Map[A]) Bindings() []Binding[A] {
	return m.bindings.Bindings()
}

// MousePos returns the last reported cursor position
func (m *Map[A]) MousePos() (float32, float32) {
	return m.mouseX, m.mouseY
}

// RecentlyPressed returns the last code that went from zero to non-zero this
// frame. Rebinding screens use it to capture "press the new key".
func (m *Map[A]) RecentlyPressed() (Code, bool) {
	return m.recent, m.hasRecent
}

// TextTyped returns the text entered this frame
func (m *Map[A]) TextTyped() string {
	return m.text.String()
}

// Settings returns the active settings
func (m *Map[A]) Settings() Settings {
	return m.settings
}

// SetSettings replaces the active settings after validation
func (m *Map[A]) SetSettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	m.settings = s
	return nil
}

// State exposes the raw state for diagnostics
func (m *Map[A]) State() *RawState {
	return m.state
}
