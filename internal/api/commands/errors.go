package commands

import "errors"

// ErrInvalidInput is returned for input that no command accepts or that a command fails to parse
var ErrInvalidInput = errors.New("Invalid input")
