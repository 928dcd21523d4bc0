package input

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Settings tune how raw magnitudes become strengths
type Settings struct {
	// MouseScale multiplies mouse motion deltas at ingestion
	MouseScale float32
	// ScrollScale multiplies scroll deltas at ingestion
	ScrollScale float32
	// PressSensitivity is the strength an action must exceed to count as pressing
	PressSensitivity float32
}

// DefaultSettings returns unit scales and zero sensitivity
func DefaultSettings() Settings {
	return Settings{
		MouseScale:       1,
		ScrollScale:      1,
		PressSensitivity: 0,
	}
}

// Validate checks that scales are finite and sensitivity lies in [0,1)
func (s Settings) Validate() error {
	var err error
	if !finite(s.MouseScale) {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidSetting, "mouse_scale %v", s.MouseScale))
	}
	if !finite(s.ScrollScale) {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidSetting, "scroll_scale %v", s.ScrollScale))
	}
	if !finite(s.PressSensitivity) || s.PressSensitivity < 0 || s.PressSensitivity >= 1 {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidSetting, "press_sensitivity %v not in [0,1)", s.PressSensitivity))
	}
	return err
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

type options struct {
	settings   Settings
	logger     *zap.Logger
	recenterer Recenterer
}

// Option configures a Map at construction
type Option func(*options)

// WithLogger routes construction and rebinding logs to logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSettings replaces all settings at once
func WithSettings(s Settings) Option {
	return func(o *options) {
		o.settings = s
	}
}

// WithMouseScale sets the mouse motion multiplier
func WithMouseScale(scale float32) Option {
	return func(o *options) {
		o.settings.MouseScale = scale
	}
}

// WithScrollScale sets the scroll multiplier
func WithScrollScale(scale float32) Option {
	return func(o *options) {
		o.settings.ScrollScale = scale
	}
}

// WithPressSensitivity sets the pressing threshold
func WithPressSensitivity(s float32) Option {
	return func(o *options) {
		o.settings.PressSensitivity = s
	}
}

// WithRecenterer sets the window collaborator used by ResetFrameRecenter
func WithRecenterer(r Recenterer) Option {
	return func(o *options) {
		o.recenterer = r
	}
}
