package hotel

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/hotel-manager/internal/domain"
	"github.com/m04kA/hotel-manager/pkg/psqlbuilder"
)

// Repository loads the hotel catalog from PostgreSQL
// (tables hotels, room_types, rooms; see migrations/001_init.sql).
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

// GetHotels returns all hotels together with their room types and rooms
func (r *Repository) GetHotels(ctx context.Context) ([]domain.Hotel, error) {
	hotels, err := r.getHotels(ctx)
	r.observer.ObserveLoad(domain.SourceHotels, err)
	if err != nil {
		r.logger.Warn("GetHotels: %v", err)
		return nil, err
	}

	r.logger.Debug("GetHotels: loaded %d hotels", len(hotels))
	return hotels, nil
}

func (r *Repository) getHotels(ctx context.Context) ([]domain.Hotel, error) {
	hotels, err := r.selectHotels(ctx)
	if err != nil {
		return nil, err
	}

	// on duplicate ids the first hotel wins
	index := make(map[string]int, len(hotels))
	for i := len(hotels) - 1; i >= 0; i-- {
		index[hotels[i].ID] = i
	}

	if err := r.selectRoomTypes(ctx, hotels, index); err != nil {
		return nil, err
	}
	if err := r.selectRooms(ctx, hotels, index); err != nil {
		return nil, err
	}

	return hotels, nil
}

func hotelsQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select("id", "name").
		From("hotels").
		OrderBy("id")
}

func roomTypesQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select("hotel_id", "code", "description", "amenities", "features").
		From("room_types").
		OrderBy("hotel_id", "code")
}

func roomsQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select("hotel_id", "room_id", "room_type").
		From("rooms").
		OrderBy("hotel_id", "room_id")
}

func (r *Repository) selectHotels(ctx context.Context) ([]domain.Hotel, error) {
	query, args, err := hotelsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: selectHotels - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: selectHotels - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hotels := make([]domain.Hotel, 0)
	for rows.Next() {
		var h domain.Hotel
		if err := rows.Scan(&h.ID, &h.Name); err != nil {
			return nil, fmt.Errorf("%w: selectHotels - scan hotel: %v", ErrScanRow, err)
		}
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: selectHotels - iterate rows: %v", ErrExecQuery, err)
	}

	return hotels, nil
}

func (r *Repository) selectRoomTypes(ctx context.Context, hotels []domain.Hotel, index map[string]int) error {
	query, args, err := roomTypesQuery().ToSql()
	if err != nil {
		return fmt.Errorf("%w: selectRoomTypes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: selectRoomTypes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			hotelID string
			rt      domain.RoomType
		)
		if err := rows.Scan(&hotelID, &rt.Code, &rt.Description, pq.Array(&rt.Amenities), pq.Array(&rt.Features)); err != nil {
			return fmt.Errorf("%w: selectRoomTypes - scan room type: %v", ErrScanRow, err)
		}

		i, ok := index[hotelID]
		if !ok {
			r.logger.Warn("selectRoomTypes: room type %s references unknown hotel %s", rt.Code, hotelID)
			continue
		}
		hotels[i].RoomTypes = append(hotels[i].RoomTypes, rt)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: selectRoomTypes - iterate rows: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) selectRooms(ctx context.Context, hotels []domain.Hotel, index map[string]int) error {
	query, args, err := roomsQuery().ToSql()
	if err != nil {
		return fmt.Errorf("%w: selectRooms - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: selectRooms - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			hotelID string
			room    domain.Room
		)
		if err := rows.Scan(&hotelID, &room.RoomID, &room.RoomType); err != nil {
			return fmt.Errorf("%w: selectRooms - scan room: %v", ErrScanRow, err)
		}

		i, ok := index[hotelID]
		if !ok {
			r.logger.Warn("selectRooms: room %s references unknown hotel %s", room.RoomID, hotelID)
			continue
		}
		hotels[i].Rooms = append(hotels[i].Rooms, room)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: selectRooms - iterate rows: %v", ErrExecQuery, err)
	}

	return nil
}
