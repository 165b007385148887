package availability

import (
	"context"

	"github.com/m04kA/hotel-manager/internal/domain"
	"github.com/m04kA/hotel-manager/pkg/types"
)

// Service answers room availability questions.
// Hotels and bookings are reloaded from the repositories on every call.
type Service struct {
	hotels   HotelRepository
	bookings BookingRepository
	clock    Clock
	logger   Logger
}

// NewService creates a new availability service
func NewService(hotels HotelRepository, bookings BookingRepository, clock Clock, logger Logger) *Service {
	if clock == nil {
		clock = RealClock{}
	}

	return &Service{
		hotels:   hotels,
		bookings: bookings,
		clock:    clock,
		logger:   logger,
	}
}

// snapshot is the data one query works on
type snapshot struct {
	capacity int
	bookings []domain.Booking
}

func (s *Service) load(ctx context.Context, op, hotelID, roomType string, start, end types.Date) (*snapshot, error) {
	hotels, err := s.hotels.GetHotels(ctx)
	if err != nil {
		s.logger.Warn("%s: failed to load hotels: %v", op, err)
		return nil, err
	}

	bookings, err := s.bookings.GetBookings(ctx)
	if err != nil {
		s.logger.Warn("%s: failed to load bookings: %v", op, err)
		return nil, err
	}

	hotel, ok := domain.FindHotel(hotels, hotelID)
	if !ok {
		s.logger.Warn("%s: hotel id=%s not found", op, hotelID)
		return nil, &HotelNotFoundError{HotelID: hotelID}
	}

	return &snapshot{
		capacity: hotel.Capacity(roomType),
		bookings: overlappingBookings(bookings, hotelID, roomType, start, end),
	}, nil
}

// GetNumberOfAvailableRooms returns the lowest number of free rooms of roomType
// over the inclusive window [start, end]. A negative result means overbooking.
func (s *Service) GetNumberOfAvailableRooms(ctx context.Context, hotelID, roomType string, start, end types.Date) (int, error) {
	s.logger.Debug("GetNumberOfAvailableRooms: hotel=%s, roomType=%s, start=%s, end=%s", hotelID, roomType, start, end)

	snap, err := s.load(ctx, "GetNumberOfAvailableRooms", hotelID, roomType, start, end)
	if err != nil {
		return 0, err
	}

	if snap.capacity == 0 {
		return 0, nil
	}
	if len(snap.bookings) == 0 {
		return snap.capacity, nil
	}

	counters := buildDayCounters(snap.capacity, snap.bookings, start, end)
	if len(counters) == 0 {
		return snap.capacity, nil
	}

	return minimum(counters), nil
}

// GetRoomAvailabilities returns the free rooms of roomType for the days
// [today+1, today+days] as maximal runs with a positive count.
func (s *Service) GetRoomAvailabilities(ctx context.Context, hotelID string, days int, roomType string) ([]domain.AvailabilitySegment, error) {
	today := s.clock.Today()
	start := today.AddDays(1)
	end := today.AddDays(days)

	s.logger.Debug("GetRoomAvailabilities: hotel=%s, roomType=%s, days=%d, from=%s", hotelID, roomType, days, start)

	snap, err := s.load(ctx, "GetRoomAvailabilities", hotelID, roomType, start, end)
	if err != nil {
		return nil, err
	}

	counters := buildDayCounters(snap.capacity, snap.bookings, start, end)

	return segments(counters, start), nil
}
