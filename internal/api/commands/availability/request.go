package availability

import (
	"errors"

	"github.com/m04kA/hotel-manager/pkg/types"
)

var (
	errNoMatch  = errors.New("input does not match the command syntax")
	errReversed = errors.New("end date is before start date")
)

// Request is a parsed Availability command
type Request struct {
	HotelID  string
	RoomType string
	Start    types.Date
	End      types.Date
}

func parse(input string) (*Request, error) {
	m := pattern.FindStringSubmatch(input)
	if m == nil {
		return nil, errNoMatch
	}

	start, err := types.ParseDate(m[2])
	if err != nil {
		return nil, err
	}

	// a single date is both start and end
	end := start
	if m[3] != "" {
		if end, err = types.ParseDate(m[3]); err != nil {
			return nil, err
		}
	}

	return &Request{
		HotelID:  m[1],
		RoomType: m[4],
		Start:    start,
		End:      end,
	}, nil
}

func validate(req *Request) error {
	if req.End.Before(req.Start) {
		return errReversed
	}
	return nil
}
