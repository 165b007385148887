package availability

import (
	"errors"
	"fmt"
)

// ErrHotelNotFound matches every HotelNotFoundError with errors.Is
var ErrHotelNotFound = errors.New("hotel not found")

// HotelNotFoundError is returned when no hotel has the requested id
type HotelNotFoundError struct {
	HotelID string
}

func (e *HotelNotFoundError) Error() string {
	return fmt.Sprintf("Hotel with id: %s does not exist", e.HotelID)
}

func (e *HotelNotFoundError) Is(target error) bool {
	return target == ErrHotelNotFound
}
