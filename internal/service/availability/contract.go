package availability

import (
	"context"
	"time"

	"github.com/m04kA/hotel-manager/internal/domain"
	"github.com/m04kA/hotel-manager/pkg/types"
)

// HotelRepository provides the hotel catalog
type HotelRepository interface {
	GetHotels(ctx context.Context) ([]domain.Hotel, error)
}

// BookingRepository provides all known bookings
type BookingRepository interface {
	GetBookings(ctx context.Context) ([]domain.Booking, error)
}

// Clock returns the current calendar date (replaced in tests)
type Clock interface {
	Today() types.Date
}

// Logger is the logging subset the service uses
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// RealClock is the production clock, it reports the UTC date
type RealClock struct{}

// Today returns the current UTC date
func (RealClock) Today() types.Date {
	return types.DateOf(time.Now().UTC())
}
