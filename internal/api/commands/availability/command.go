// Package availability implements the console command
//
//	Availability(<hotelId>, <YYYYMMDD>[-<YYYYMMDD>], <roomType>)
//
// which prints the lowest number of free rooms over the window.
package availability

import (
	"context"
	"regexp"
	"strconv"

	"github.com/m04kA/hotel-manager/internal/api/commands"
)

// Name is the command label used in logs and metrics
const Name = "availability"

var pattern = regexp.MustCompile(`Availability\((\w+),\s*(\d{8})(?:-(\d{8}))?,\s*(\w{3})\)`)

// Command handles Availability(...) lines
type Command struct {
	engine Engine
	logger Logger
}

// NewCommand creates the command
func NewCommand(engine Engine, logger Logger) *Command {
	return &Command{
		engine: engine,
		logger: logger,
	}
}

// Name returns the command label
func (c *Command) Name() string {
	return Name
}

// CanHandle reports whether input contains an Availability(...) call
func (c *Command) CanHandle(input string) bool {
	return pattern.MatchString(input)
}

// Handle parses input and returns the number of available rooms as a decimal string
func (c *Command) Handle(ctx context.Context, input string) (string, error) {
	req, err := parse(input)
	if err != nil {
		c.logger.Debug("Availability: cannot parse %q: %v", input, err)
		return "", commands.ErrInvalidInput
	}

	if err := validate(req); err != nil {
		c.logger.Debug("Availability: rejected %q: %v", input, err)
		return "", commands.ErrInvalidInput
	}

	rooms, err := c.engine.GetNumberOfAvailableRooms(ctx, req.HotelID, req.RoomType, req.Start, req.End)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(rooms), nil
}
