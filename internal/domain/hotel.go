package domain

// Hotel represents a hotel from the catalog
type Hotel struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	RoomTypes []RoomType `json:"roomTypes"`
	Rooms     []Room     `json:"rooms"`
}

// RoomType describes a kind of room offered by a hotel.
// Amenities and Features are for display only.
type RoomType struct {
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Features    []string `json:"features"`
}

// Room is one physical room of a hotel
type Room struct {
	RoomID   string `json:"roomId"`
	RoomType string `json:"roomType"` // RoomType.Code
}

// Capacity returns how many rooms of the given type the hotel has.
// Codes are compared case-sensitively.
func (h *Hotel) Capacity(roomTypeCode string) int {
	count := 0
	for _, room := range h.Rooms {
		if room.RoomType == roomTypeCode {
			count++
		}
	}
	return count
}

// FindHotel returns the first hotel with the given id
func FindHotel(hotels []Hotel, id string) (*Hotel, bool) {
	for i := range hotels {
		if hotels[i].ID == id {
			return &hotels[i], true
		}
	}
	return nil, false
}
