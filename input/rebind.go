package input

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Bind replaces the binds of an action with single codes. Takes effect for the next query.
func (m *Map[A]) Bind(action A, codes ...Code) {
	m.bindings.Bind(action, codes...)
	m.log.Debug("action bound", zap.Any("action", action), zap.Strings("codes", codeNames(codes)))
}

// AddBinding adds one code to an action
func (m *Map[A]) AddBinding(action A, code Code) {
	m.bindings.AddBinding(action, code)
	m.log.Debug("binding added", zap.Any("action", action), zap.Stringer("code", code))
}

// RemoveBinding removes one code from an action; unbound codes are ignored
func (m *Map[A]) RemoveBinding(action A, code Code) {
	m.bindings.RemoveBinding(action, code)
	m.log.Debug("binding removed", zap.Any("action", action), zap.Stringer("code", code))
}

// AddChord adds a chord bind to an action
func (m *Map[A]) AddChord(action A, codes ...Code) {
	m.bindings.AddChord(action, codes...)
	m.log.Debug("chord added", zap.Any("action", action), zap.Stringer("chord", Chord(codes)))
}

// RemoveChord removes a chord bind from an action; unbound chords are ignored
func (m *Map[A]) RemoveChord(action A, codes ...Code) {
	m.bindings.RemoveChord(action, codes...)
	m.log.Debug("chord removed", zap.Any("action", action), zap.Stringer("chord", Chord(codes)))
}

// Unbind removes an action entirely
func (m *Map[A]) Unbind(action A) {
	m.bindings.Unbind(action)
	m.log.Debug("action unbound", zap.Any("action", action))
}

// SetBindings replaces the whole table
func (m *Map[A]) SetBindings(bindings []Binding[A]) {
	m.bindings = NewBindingTable(bindings...)
	m.log.Debug("bindings replaced", zap.Int("actions", m.bindings.Len()))
}

// ApplyConfig rebuilds the table from the construction bindings overridden by
// the config, and adopts the config's settings. A config with malformed codes
// or settings is rejected whole and leaves the map unchanged.
func (m *Map[A]) ApplyConfig(cfg *KeyConfig[A]) error {
	if err := validateCodes(cfg.Bindings); err != nil {
		return errors.Wrap(err, "key config")
	}
	if err := m.SetSettings(cfg.Settings); err != nil {
		return err
	}
	m.SetBindings(MergeBindings(m.base, cfg.Bindings))
	m.log.Info("key config applied",
		zap.Int("overrides", len(cfg.Bindings)),
		zap.Int("actions", m.bindings.Len()))
	return nil
}

func codeNames(codes []Code) []string {
	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = c.String()
	}
	return names
}
