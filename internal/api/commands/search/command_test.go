package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/hotel-manager/internal/api/commands"
	"github.com/m04kA/hotel-manager/internal/domain"
	"github.com/m04kA/hotel-manager/pkg/logger"
	"github.com/m04kA/hotel-manager/pkg/types"
)

type mockEngine struct {
	mock.Mock
}

func (m *mockEngine) GetRoomAvailabilities(ctx context.Context, hotelID string, days int, roomType string) ([]domain.AvailabilitySegment, error) {
	args := m.Called(ctx, hotelID, days, roomType)
	segments, _ := args.Get(0).([]domain.AvailabilitySegment)
	return segments, args.Error(1)
}

func TestCommand_CanHandle(t *testing.T) {
	cmd := NewCommand(&mockEngine{}, 0, logger.Nop())

	assert.True(t, cmd.CanHandle("Search(H1, 365, SGL)"))
	assert.True(t, cmd.CanHandle("Search(H1,3,DBL)"))
	assert.False(t, cmd.CanHandle("Search(H1, -3, SGL)"))
	assert.False(t, cmd.CanHandle("Search(H1, three, SGL)"))
	assert.False(t, cmd.CanHandle("Availability(H1, 20240901, SGL)"))
}

func TestCommand_Handle(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		segments []domain.AvailabilitySegment
		want     string
	}{
		{
			name: "two ranges",
			segments: []domain.AvailabilitySegment{
				{Start: types.MustParseDate("20240901"), End: types.MustParseDate("20240903"), Rooms: 1},
				{Start: types.MustParseDate("20240902"), End: types.MustParseDate("20240905"), Rooms: 2},
			},
			want: "(20240901-20240903, 1), (20240902-20240905, 2)",
		},
		{
			name: "single day",
			segments: []domain.AvailabilitySegment{
				{Start: types.MustParseDate("20240902"), End: types.MustParseDate("20240902"), Rooms: 3},
			},
			want: "(20240902, 3)",
		},
		{
			name:     "nothing available",
			segments: []domain.AvailabilitySegment{},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &mockEngine{}
			engine.On("GetRoomAvailabilities", ctx, "H1", 3, "SGL").Return(tt.segments, nil)

			got, err := NewCommand(engine, 3650, logger.Nop()).Handle(ctx, "Search(H1, 3, SGL)")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			engine.AssertExpectations(t)
		})
	}
}

func TestCommand_Handle_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no match", input: "Search(H1)"},
		{name: "day count overflows int", input: "Search(H1, 99999999999999999999999, SGL)"},
		{name: "day count above int32", input: "Search(H1, 2147483648, SGL)"},
		{name: "over the configured limit", input: "Search(H1, 400, SGL)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &mockEngine{}

			_, err := NewCommand(engine, 365, logger.Nop()).Handle(context.Background(), tt.input)

			assert.ErrorIs(t, err, commands.ErrInvalidInput)
			assert.EqualError(t, err, "Invalid input")
			engine.AssertNotCalled(t, "GetRoomAvailabilities", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCommand_Handle_EngineError(t *testing.T) {
	ctx := context.Background()
	errEngine := errors.New("Hotel with id: InvalidHotelId does not exist")

	engine := &mockEngine{}
	engine.On("GetRoomAvailabilities", ctx, "InvalidHotelId", 5, "SGL").Return(nil, errEngine)

	_, err := NewCommand(engine, 0, logger.Nop()).Handle(ctx, "Search(InvalidHotelId, 5, SGL)")

	assert.EqualError(t, err, "Hotel with id: InvalidHotelId does not exist")
}

func TestCommand_Handle_LongSearch(t *testing.T) {
	ctx := context.Background()
	segment := []domain.AvailabilitySegment{
		{Start: types.MustParseDate("20240902"), End: types.MustParseDate("20350719"), Rooms: 1},
	}

	tests := []struct {
		name    string
		maxDays int
		days    int
	}{
		{name: "no limit configured", maxDays: 0, days: 4000},
		{name: "int32 bound", maxDays: 0, days: 2147483647},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &mockEngine{}
			engine.On("GetRoomAvailabilities", ctx, "H1", tt.days, "SGL").Return(segment, nil)

			input := fmt.Sprintf("Search(H1, %d, SGL)", tt.days)
			got, err := NewCommand(engine, tt.maxDays, logger.Nop()).Handle(ctx, input)
			require.NoError(t, err)
			assert.Equal(t, "(20240902-20350719, 1)", got)
		})
	}
}
