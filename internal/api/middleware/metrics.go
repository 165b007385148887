package middleware

import (
	"context"
	"time"

	"github.com/m04kA/hotel-manager/internal/api/commands"
)

// CommandRecorder receives the outcome of every command execution
type CommandRecorder interface {
	ObserveCommand(command string, err error, dur time.Duration)
}

// instrumented decorates a command with metrics
type instrumented struct {
	commands.Command
	name     string
	recorder CommandRecorder
	now      func() time.Time
}

// Instrument wraps cmd so that each Handle call is recorded under name.
// CanHandle is not recorded.
func Instrument(name string, cmd commands.Command, recorder CommandRecorder) commands.Command {
	return &instrumented{
		Command:  cmd,
		name:     name,
		recorder: recorder,
		now:      time.Now,
	}
}

func (i *instrumented) Handle(ctx context.Context, input string) (string, error) {
	start := i.now()
	out, err := i.Command.Handle(ctx, input)
	i.recorder.ObserveCommand(i.name, err, i.now().Sub(start))
	return out, err
}
