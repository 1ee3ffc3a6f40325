package config

import "errors"

// ErrInvalidValue is returned for a setting outside its allowed range.
var ErrInvalidValue = errors.New("invalid config value")
