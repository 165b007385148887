package console

import "context"

// Console is the line-oriented terminal the loop talks to
type Console interface {
	// Read returns the next line without its terminator, or io.EOF when input is exhausted
	Read() (string, error)
	// WriteLine prints a command result
	WriteLine(line string) error
	// WriteError prints an error message
	WriteError(line string) error
}

// Executor runs one command line
type Executor interface {
	Execute(ctx context.Context, input string) (string, error)
}

// Logger is the logging subset the loop uses
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
