package config

import "errors"

var (
	// ErrDecode is returned when the config file or .env cannot be parsed
	ErrDecode = errors.New("config: failed to decode")

	// ErrInvalidValue is returned when a setting is out of its allowed range
	ErrInvalidValue = errors.New("config: invalid value")
)
