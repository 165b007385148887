package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/hotel-manager/internal/domain"
)

// Loop reads commands from a console until Exit or end of input
type Loop struct {
	console  Console
	executor Executor
	logger   Logger
	newID    func() string
}

// NewLoop creates an input loop
func NewLoop(console Console, executor Executor, logger Logger) *Loop {
	return &Loop{
		console:  console,
		executor: executor,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

// Run processes lines until the Exit command, end of input or ctx cancellation.
// Command failures are printed and never stop the loop.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("Input loop started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		input, err := l.console.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.logger.Info("Input loop stopped: end of input")
				return nil
			}
			if errors.Is(err, ErrLineTooLong) {
				l.logger.Warn("Input line skipped: %v", err)
				if werr := l.console.WriteError(err.Error()); werr != nil {
					return fmt.Errorf("console: write error: %w", werr)
				}
				continue
			}
			return err
		}

		if input == domain.ExitCommand {
			l.logger.Info("Input loop stopped: exit requested")
			return nil
		}
		if strings.TrimSpace(input) == "" {
			continue
		}

		if err := l.execute(ctx, input); err != nil {
			return err
		}
	}
}

func (l *Loop) execute(ctx context.Context, input string) error {
	id := l.newID()
	l.logger.Debug("Command %s: %q", id, input)

	out, err := l.executor.Execute(ctx, input)
	if err != nil {
		l.logger.Warn("Command %s failed: %v", id, err)
		if werr := l.console.WriteError(err.Error()); werr != nil {
			return fmt.Errorf("console: write error: %w", werr)
		}
		return nil
	}

	l.logger.Debug("Command %s succeeded", id)
	if werr := l.console.WriteLine(out); werr != nil {
		return fmt.Errorf("console: write result: %w", werr)
	}
	return nil
}
