package input

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Format selects the binding file syntax
type Format uint8

const (
	FormatTOML Format = iota + 1
	FormatYAML
)

// unbindName as a binding value removes the action, like an empty list
const unbindName = "none"

// KeyConfig is a parsed binding file: settings plus binding overrides
type KeyConfig[A comparable] struct {
	Settings Settings
	Bindings []Binding[A] // No codes and no chords unbinds the action on merge
}

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, errors.Wrapf(ErrUnknownFormat, "%q", path)
}

// LoadKeyConfigFile reads and parses a binding file, format by extension
func LoadKeyConfigFile[A comparable](path string, names map[string]A) (*KeyConfig[A], error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "keymap read")
	}
	return LoadKeyConfig(data, format, names)
}

// LoadKeyConfig parses binding data.
//
//	[settings]
//	mouse_scale = 0.02
//
//	[bindings]
//	jump = ["space", "south"]
//	fire = "mouse_left"
//	undo = [["control_left", "key_z"], ["control_right", "key_z"]]
//	crouch = "none"
//
// Action names resolve through names (case-insensitive). Settings absent from
// the data keep their defaults. Unknown action names, unknown code names and
// malformed values are all reported together.
func LoadKeyConfig[A comparable](data []byte, format Format, names map[string]A) (*KeyConfig[A], error) {
	raw := make(map[string]any)
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, "keymap parse")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, "keymap parse")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "format %d", format)
	}

	cfg := &KeyConfig[A]{Settings: DefaultSettings()}
	var errs error

	if section, ok := raw["settings"]; ok {
		table, ok := section.(map[string]any)
		if !ok {
			return nil, errors.Errorf("section [settings]: expected table, got %T", section)
		}
		errs = multierr.Append(errs, parseSettings(table, &cfg.Settings))
	}

	if section, ok := raw["bindings"]; ok {
		table, ok := section.(map[string]any)
		if !ok {
			return nil, errors.Errorf("section [bindings]: expected table, got %T", section)
		}
		bindings, err := parseBindings(table, names)
		errs = multierr.Append(errs, err)
		cfg.Bindings = bindings
	}

	if errs != nil {
		return nil, errs
	}
	return cfg, nil
}

// parseSettings applies known setting keys onto s
func parseSettings(table map[string]any, s *Settings) error {
	var errs error
	for key, val := range table {
		f, ok := toFloat32(val)
		if !ok {
			errs = multierr.Append(errs, errors.Errorf("[settings] %s: expected number, got %T", key, val))
			continue
		}
		switch key {
		case "mouse_scale":
			s.MouseScale = f
		case "scroll_scale":
			s.ScrollScale = f
		case "press_sensitivity":
			s.PressSensitivity = f
		default:
			errs = multierr.Append(errs, errors.Wrapf(ErrInvalidSetting, "[settings] unknown key %q", key))
		}
	}
	return multierr.Append(errs, s.Validate())
}

// parseBindings resolves action -> code name list entries, sorted by action name
func parseBindings[A comparable](table map[string]any, names map[string]A) ([]Binding[A], error) {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var errs error
	result := make([]Binding[A], 0, len(keys))
	for _, key := range keys {
		action, err := resolveAction(key, names)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrap(err, "[bindings]"))
			continue
		}

		singles, chords, err := bindList(table[key])
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "[bindings] %s", key))
			continue
		}

		b := Binding[A]{Action: action, Codes: make([]Code, 0, len(singles))}
		for _, name := range singles {
			c, err := ParseCode(name)
			if err != nil {
				errs = multierr.Append(errs, errors.Wrapf(err, "[bindings] %s", key))
				continue
			}
			b.Codes = append(b.Codes, c)
		}
		for i, names := range chords {
			chord := make(Chord, 0, len(names))
			for _, name := range names {
				c, err := ParseCode(name)
				if err != nil {
					errs = multierr.Append(errs, errors.Wrapf(err, "[bindings] %s chord %d", key, i))
					continue
				}
				chord = append(chord, c)
			}
			b.Chords = append(b.Chords, chord)
		}
		result = append(result, b)
	}
	return result, errs
}

// bindList accepts a single name, or a list whose items are names or nested
// lists of names (chords). "none" means no binds.
func bindList(val any) (singles []string, chords [][]string, err error) {
	switch v := val.(type) {
	case string:
		if isUnbind(v) {
			return nil, nil, nil
		}
		return []string{v}, nil, nil
	case []any:
		singles = make([]string, 0, len(v))
		for i, item := range v {
			switch it := item.(type) {
			case string:
				if !isUnbind(it) {
					singles = append(singles, it)
				}
			case []any:
				chord, err := chordNames(it)
				if err != nil {
					return nil, nil, errors.Wrapf(err, "item %d", i)
				}
				chords = append(chords, chord)
			default:
				return nil, nil, errors.Errorf("item %d: expected string or list, got %T", i, item)
			}
		}
		return singles, chords, nil
	case nil:
		return nil, nil, nil
	default:
		return nil, nil, errors.Errorf("expected string or list, got %T", val)
	}
}

func chordNames(items []any) ([]string, error) {
	if len(items) == 0 {
		return nil, errors.New("empty chord")
	}
	names := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, errors.Errorf("chord item %d: expected string, got %T", i, item)
		}
		names = append(names, s)
	}
	return names, nil
}

func isUnbind(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), unbindName)
}

// resolveAction converts an action name string to an action
func resolveAction[A comparable](name string, names map[string]A) (A, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if a, ok := names[key]; ok {
		return a, nil
	}
	var zero A
	return zero, errors.Wrapf(ErrUnknownAction, "%q", name)
}

func toFloat32(v any) (float32, bool) {
	switch n := v.(type) {
	case float64:
		return float32(n), true
	case float32:
		return n, true
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	case uint64:
		return float32(n), true
	}
	return 0, false
}

// MergeBindings returns base with override applied per action.
// An override replaces the action's codes and chords; an override with
// neither removes the action. Actions only in override are appended.
func MergeBindings[A comparable](base, override []Binding[A]) []Binding[A] {
	result := make([]Binding[A], 0, len(base)+len(override))
	for _, b := range base {
		result = append(result, cloneBinding(b))
	}

	for _, o := range override {
		i := slices.IndexFunc(result, func(b Binding[A]) bool { return b.Action == o.Action })
		empty := len(o.Codes) == 0 && len(o.Chords) == 0
		switch {
		case empty && i >= 0:
			result = slices.Delete(result, i, i+1)
		case empty:
		case i >= 0:
			result[i] = cloneBinding(o)
		default:
			result = append(result, cloneBinding(o))
		}
	}
	return result
}

func cloneBinding[A comparable](b Binding[A]) Binding[A] {
	return Binding[A]{Action: b.Action, Codes: slices.Clone(b.Codes), Chords: cloneChords(b.Chords)}
}
