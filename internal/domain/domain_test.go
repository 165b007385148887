package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/hotel-manager/pkg/types"
)

func TestAvailabilitySegment_String(t *testing.T) {
	tests := []struct {
		name    string
		segment AvailabilitySegment
		want    string
	}{
		{
			name: "range",
			segment: AvailabilitySegment{
				Start: types.MustParseDate("20241225"),
				End:   types.MustParseDate("20251114"),
				Rooms: 4,
			},
			want: "(20241225-20251114, 4)",
		},
		{
			name: "single day",
			segment: AvailabilitySegment{
				Start: types.MustParseDate("19930102"),
				End:   types.MustParseDate("19930102"),
				Rooms: 7,
			},
			want: "(19930102, 7)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.segment.String())
		})
	}
}

func TestAvailabilitySegment_Days(t *testing.T) {
	s := AvailabilitySegment{Start: types.MustParseDate("20240903"), End: types.MustParseDate("20240906")}
	assert.Equal(t, 4, s.Days())
}

func TestHotel_Capacity(t *testing.T) {
	hotel := Hotel{
		ID: "H1",
		Rooms: []Room{
			{RoomID: "101", RoomType: "SGL"},
			{RoomID: "102", RoomType: "SGL"},
			{RoomID: "201", RoomType: "DBL"},
		},
	}

	assert.Equal(t, 2, hotel.Capacity("SGL"))
	assert.Equal(t, 1, hotel.Capacity("DBL"))
	assert.Equal(t, 0, hotel.Capacity("sgl"), "codes are case-sensitive")
	assert.Equal(t, 0, hotel.Capacity("TRP"))
}

func TestFindHotel(t *testing.T) {
	hotels := []Hotel{{ID: "H1", Name: "first"}, {ID: "H2"}, {ID: "H1", Name: "duplicate"}}

	h, ok := FindHotel(hotels, "H1")
	assert.True(t, ok)
	assert.Equal(t, "first", h.Name)

	_, ok = FindHotel(hotels, "H3")
	assert.False(t, ok)
}

func TestBooking_Overlaps(t *testing.T) {
	start := types.MustParseDate("20240901")
	end := types.MustParseDate("20240905")

	tests := []struct {
		name      string
		arrival   string
		departure string
		want      bool
	}{
		{name: "inside", arrival: "20240902", departure: "20240903", want: true},
		{name: "departs on window start", arrival: "20240830", departure: "20240901", want: false},
		{name: "departs day after window start", arrival: "20240830", departure: "20240902", want: true},
		{name: "arrives on window end", arrival: "20240905", departure: "20240907", want: true},
		{name: "arrives after window end", arrival: "20240906", departure: "20240907", want: false},
		{name: "covers window", arrival: "20240801", departure: "20241001", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Booking{Arrival: types.MustParseDate(tt.arrival), Departure: types.MustParseDate(tt.departure)}
			assert.Equal(t, tt.want, b.Overlaps(start, end))
		})
	}
}
