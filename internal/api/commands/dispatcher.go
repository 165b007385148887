package commands

import (
	"context"
	"fmt"
)

// Dispatcher routes an input line to the first command that claims it
type Dispatcher struct {
	commands []Command
}

// NewDispatcher creates a dispatcher. Commands are consulted in the given order.
func NewDispatcher(commands ...Command) *Dispatcher {
	return &Dispatcher{commands: commands}
}

// Execute runs the first command whose CanHandle accepts input
func (d *Dispatcher) Execute(ctx context.Context, input string) (string, error) {
	for _, cmd := range d.commands {
		if cmd.CanHandle(input) {
			return cmd.Handle(ctx, input)
		}
	}

	return "", fmt.Errorf("%w: %s", ErrInvalidInput, input)
}
