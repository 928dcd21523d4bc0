package input

import "github.com/pkg/errors"

// Sentinel errors, wrapped with context by construction and config loading.
// Per-frame ingestion and queries never return errors.
var (
	ErrInvalidCode    = errors.New("invalid input code")
	ErrUnknownCode    = errors.New("unknown input code name")
	ErrUnknownAction  = errors.New("unknown action")
	ErrUnknownFormat  = errors.New("unknown key config format")
	ErrInvalidSetting = errors.New("invalid setting")
)
