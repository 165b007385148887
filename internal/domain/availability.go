package domain

import (
	"fmt"

	"github.com/m04kA/hotel-manager/pkg/types"
)

// AvailabilitySegment is a maximal run of consecutive days [Start, End]
// that share the same number of free rooms.
type AvailabilitySegment struct {
	Start types.Date
	End   types.Date
	Rooms int
}

// Days returns the number of days covered by the segment
func (s AvailabilitySegment) Days() int {
	return s.End.DaysSince(s.Start) + 1
}

// String formats the segment as (YYYYMMDD, n) for a single day
// and (YYYYMMDD-YYYYMMDD, n) otherwise.
func (s AvailabilitySegment) String() string {
	if s.Start.Equal(s.End) {
		return fmt.Sprintf("(%s, %d)", s.Start, s.Rooms)
	}
	return fmt.Sprintf("(%s-%s, %d)", s.Start, s.End, s.Rooms)
}
