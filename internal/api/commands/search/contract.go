package search

import (
	"context"

	"github.com/m04kA/hotel-manager/internal/domain"
)

// Engine lists the upcoming availability ranges of a room type
type Engine interface {
	GetRoomAvailabilities(ctx context.Context, hotelID string, days int, roomType string) ([]domain.AvailabilitySegment, error)
}

// Logger is the logging subset the command uses
type Logger interface {
	Debug(format string, v ...interface{})
}
