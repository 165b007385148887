// Package search implements the console command
//
//	Search(<hotelId>, <days>, <roomType>)
//
// which prints the availability ranges for the next days, starting tomorrow.
package search

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/m04kA/hotel-manager/internal/api/commands"
)

// Name is the command label used in logs and metrics
const Name = "search"

// separator joins the formatted segments
const separator = ", "

var pattern = regexp.MustCompile(`Search\((\w+),\s*(\d+),\s*(\w{3})\)`)

var (
	errNoMatch      = errors.New("input does not match the command syntax")
	errWindowTooBig = errors.New("number of days is too large")
)

// Command handles Search(...) lines
type Command struct {
	engine  Engine
	maxDays int
	logger  Logger
}

// NewCommand creates the command. Searches longer than maxDays days are rejected;
// maxDays <= 0 leaves only the 32-bit bound of the day count.
func NewCommand(engine Engine, maxDays int, logger Logger) *Command {
	return &Command{
		engine:  engine,
		maxDays: maxDays,
		logger:  logger,
	}
}

// Name returns the command label
func (c *Command) Name() string {
	return Name
}

// CanHandle reports whether input contains a Search(...) call
func (c *Command) CanHandle(input string) bool {
	return pattern.MatchString(input)
}

// Handle parses input and returns the availability ranges joined with ", "
func (c *Command) Handle(ctx context.Context, input string) (string, error) {
	hotelID, days, roomType, err := c.parse(input)
	if err != nil {
		c.logger.Debug("Search: rejected %q: %v", input, err)
		return "", commands.ErrInvalidInput
	}

	segments, err := c.engine.GetRoomAvailabilities(ctx, hotelID, days, roomType)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		parts = append(parts, s.String())
	}

	return strings.Join(parts, separator), nil
}

func (c *Command) parse(input string) (hotelID string, days int, roomType string, err error) {
	m := pattern.FindStringSubmatch(input)
	if m == nil {
		return "", 0, "", errNoMatch
	}

	n, err := strconv.ParseInt(m[2], 10, 32)
	if err != nil {
		return "", 0, "", err
	}
	days = int(n)

	if c.maxDays > 0 && days > c.maxDays {
		return "", 0, "", fmt.Errorf("%w: %d, limit %d", errWindowTooBig, days, c.maxDays)
	}

	return m[1], days, m[3], nil
}
