package booking

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/hotel-manager/internal/domain"
	"github.com/m04kA/hotel-manager/pkg/psqlbuilder"
)

// Repository loads bookings from the PostgreSQL table bookings
type Repository struct {
	db       DBExecutor
	observer LoadObserver
	logger   Logger
}

// NewRepository creates a repository over an open PostgreSQL handle
func NewRepository(db DBExecutor, logger Logger) *Repository {
	return &Repository{
		db:       db,
		observer: nopObserver{},
		logger:   logger,
	}
}

// WithObserver attaches a load observer
func (r *Repository) WithObserver(observer LoadObserver) *Repository {
	r.observer = observer
	return r
}

func bookingsQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"hotel_id",
		"arrival",
		"departure",
		"room_type",
		"room_rate",
	).
		From("bookings").
		OrderBy("arrival ASC, hotel_id ASC")
}

// GetBookings returns every booking.
// Overlap filtering is done by the availability service.
func (r *Repository) GetBookings(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := r.getBookings(ctx)
	r.observer.ObserveLoad(domain.SourceBookings, err)
	if err != nil {
		r.logger.Warn("GetBookings: %v", err)
		return nil, err
	}

	r.logger.Debug("GetBookings: loaded %d bookings", len(bookings))
	return bookings, nil
}

func (r *Repository) getBookings(ctx context.Context) ([]domain.Booking, error) {
	query, args, err := bookingsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.HotelID, &b.Arrival, &b.Departure, &b.RoomType, &b.RoomRate); err != nil {
			return nil, fmt.Errorf("%w: GetBookings - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookings - iterate rows: %v", ErrExecQuery, err)
	}

	return bookings, nil
}
