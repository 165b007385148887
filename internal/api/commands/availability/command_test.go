package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/hotel-manager/internal/api/commands"
	"github.com/m04kA/hotel-manager/pkg/logger"
	"github.com/m04kA/hotel-manager/pkg/types"
)

type mockEngine struct {
	mock.Mock
}

func (m *mockEngine) GetNumberOfAvailableRooms(ctx context.Context, hotelID, roomType string, start, end types.Date) (int, error) {
	args := m.Called(ctx, hotelID, roomType, start, end)
	return args.Int(0), args.Error(1)
}

func TestCommand_CanHandle(t *testing.T) {
	cmd := NewCommand(&mockEngine{}, logger.Nop())

	tests := []struct {
		input string
		want  bool
	}{
		{input: "Availability(H1, 20240901, SGL)", want: true},
		{input: "Availability(H1, 20240901-20240903, DBL)", want: true},
		{input: "Availability(H1,20240901,SGL)", want: true},
		{input: "  Availability(H1, 20240901, SGL) trailing", want: true},
		{input: "Availability(H1, 2024091, SGL)", want: false},
		{input: "Availability(H1, 20240901, SINGLE)", want: false},
		{input: "availability(H1, 20240901, SGL)", want: false},
		{input: "Search(H1, 3, SGL)", want: false},
		{input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, cmd.CanHandle(tt.input))
		})
	}
}

func TestCommand_Handle(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		input string
		start string
		end   string
		rooms int
		want  string
	}{
		{
			name:  "single date",
			input: "Availability(H1, 20240901, SGL)",
			start: "20240901",
			end:   "20240901",
			rooms: 2,
			want:  "2",
		},
		{
			name:  "date range",
			input: "Availability(H1, 20240901-20240905, SGL)",
			start: "20240901",
			end:   "20240905",
			rooms: 1,
			want:  "1",
		},
		{
			name:  "overbooked",
			input: "Availability(H1, 20240901-20240905, SGL)",
			start: "20240901",
			end:   "20240905",
			rooms: -1,
			want:  "-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &mockEngine{}
			engine.On("GetNumberOfAvailableRooms", ctx, "H1", "SGL",
				types.MustParseDate(tt.start), types.MustParseDate(tt.end)).Return(tt.rooms, nil)

			got, err := NewCommand(engine, logger.Nop()).Handle(ctx, tt.input)
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
		{name: "no match", input: "Availability(H1)"},
		{name: "impossible date", input: "Availability(H1, 20241301, SGL)"},
		{name: "impossible end date", input: "Availability(H1, 20240901-20240231, SGL)"},
		{name: "end before start", input: "Availability(H1, 20240905-20240901, SGL)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &mockEngine{}

			_, err := NewCommand(engine, logger.Nop()).Handle(context.Background(), tt.input)

			assert.ErrorIs(t, err, commands.ErrInvalidInput)
			assert.EqualError(t, err, "Invalid input")
			engine.AssertNotCalled(t, "GetNumberOfAvailableRooms",
				mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCommand_Handle_LongWindow(t *testing.T) {
	ctx := context.Background()
	engine := &mockEngine{}
	engine.On("GetNumberOfAvailableRooms", ctx, "H1", "SGL",
		types.MustParseDate("20240101"), types.MustParseDate("20341231")).Return(1, nil)

	got, err := NewCommand(engine, logger.Nop()).Handle(ctx, "Availability(H1, 20240101-20341231, SGL)")
	require.NoError(t, err)
	assert.Equal(t, "1", got)
	engine.AssertExpectations(t)
}

func TestCommand_Handle_WholeCalendar(t *testing.T) {
	ctx := context.Background()
	engine := &mockEngine{}
	engine.On("GetNumberOfAvailableRooms", ctx, "H1", "SGL",
		types.MustParseDate("00010101"), types.MustParseDate("99991231")).Return(2, nil)

	got, err := NewCommand(engine, logger.Nop()).Handle(ctx, "Availability(H1, 00010101-99991231, SGL)")
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestCommand_Handle_EngineError(t *testing.T) {
	ctx := context.Background()
	errEngine := errors.New("Hotel with id: H9 does not exist")

	engine := &mockEngine{}
	engine.On("GetNumberOfAvailableRooms", ctx, "H9", "SGL", mock.Anything, mock.Anything).Return(0, errEngine)

	_, err := NewCommand(engine, logger.Nop()).Handle(ctx, "Availability(H9, 20240901, SGL)")

	assert.ErrorIs(t, err, errEngine)
	assert.EqualError(t, err, "Hotel with id: H9 does not exist")
}
