package commands

import "context"

// Command is one console command
type Command interface {
	// CanHandle reports whether input is addressed to this command
	CanHandle(input string) bool
	// Handle executes the command and returns the text to print
	Handle(ctx context.Context, input string) (string, error)
}
