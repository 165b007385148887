package availability

import (
	"context"

	"github.com/m04kA/hotel-manager/pkg/types"
)

// Engine computes the number of free rooms over a date window
type Engine interface {
	GetNumberOfAvailableRooms(ctx context.Context, hotelID, roomType string, start, end types.Date) (int, error)
}

// Logger is the logging subset the command uses
type Logger interface {
	Debug(format string, v ...interface{})
}
