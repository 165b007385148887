package domain

import "github.com/m04kA/hotel-manager/pkg/types"

// Booking represents a reservation of one room of a given type.
// The stay occupies [Arrival, Departure): the departure day is free again.
type Booking struct {
	HotelID   string     `json:"hotelId"`
	Arrival   types.Date `json:"arrival"`
	Departure types.Date `json:"departure"`
	RoomType  string     `json:"roomType"`
	RoomRate  string     `json:"roomRate"`
}

// Overlaps reports whether the stay occupies at least one day of the inclusive window [start, end].
// Departure is compared strictly and arrival inclusively.
func (b *Booking) Overlaps(start, end types.Date) bool {
	return b.Departure.After(start) && !b.Arrival.After(end)
}

