package domain

// Console protocol constants
const (
	ExitCommand = "Exit"
)

// Data source names, used in logs and metrics
const (
	SourceHotels   = "hotels"
	SourceBookings = "bookings"
)
