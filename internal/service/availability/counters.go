package availability

import (
	"github.com/m04kA/hotel-manager/internal/domain"
	"github.com/m04kA/hotel-manager/pkg/types"
)

// overlappingBookings keeps the bookings of one hotel and room type that occupy
// at least one day of the inclusive window [start, end]
func overlappingBookings(bookings []domain.Booking, hotelID, roomType string, start, end types.Date) []domain.Booking {
	result := make([]domain.Booking, 0)
	for i := range bookings {
		b := &bookings[i]
		if b.HotelID != hotelID || b.RoomType != roomType {
			continue
		}
		if b.Overlaps(start, end) {
			result = append(result, *b)
		}
	}
	return result
}

// buildDayCounters returns the number of free rooms for every day of [start, end].
// Index 0 is start. Every booking is clipped to the window and subtracted
// through a difference array.
func buildDayCounters(capacity int, bookings []domain.Booking, start, end types.Date) []int {
	days := end.DaysSince(start) + 1
	if days <= 0 {
		return []int{}
	}

	diff := make([]int, days+1)
	diff[0] = capacity
	for _, b := range bookings {
		from := types.MaxDate(start, b.Arrival).DaysSince(start)
		to := types.MinDate(end.AddDays(1), b.Departure).DaysSince(start)
		if from >= to {
			continue
		}
		diff[from]--
		diff[to]++
	}

	counters := make([]int, days)
	running := 0
	for i := range counters {
		running += diff[i]
		counters[i] = running
	}

	return counters
}

// minimum returns the smallest counter. Overbooking yields a negative value.
func minimum(counters []int) int {
	result := counters[0]
	for _, c := range counters[1:] {
		if c < result {
			result = c
		}
	}
	return result
}

// segments run-length encodes the counters into maximal runs of equal values.
// Runs with no free rooms are dropped.
func segments(counters []int, start types.Date) []domain.AvailabilitySegment {
	result := make([]domain.AvailabilitySegment, 0)
	if len(counters) == 0 {
		return result
	}

	runStart := 0
	rooms := counters[0]
	emit := func(last int) {
		if rooms > 0 {
			result = append(result, domain.AvailabilitySegment{
				Start: start.AddDays(runStart),
				End:   start.AddDays(last),
				Rooms: rooms,
			})
		}
	}

	for i, c := range counters {
		if c == rooms {
			continue
		}
		emit(i - 1)
		runStart = i
		rooms = c
	}
	emit(len(counters) - 1)

	return result
}
