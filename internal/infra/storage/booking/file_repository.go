package booking

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/m04kA/hotel-manager/internal/domain"
)

// FileRepository loads bookings from a JSON file.
// The file is re-read on every call.
type FileRepository struct {
	path     string
	observer LoadObserver
	logger   Logger
}

// NewFileRepository creates a repository over the JSON file at path
func NewFileRepository(path string, logger Logger) *FileRepository {
	return &FileRepository{
		path:     path,
		observer: nopObserver{},
		logger:   logger,
	}
}

// WithObserver attaches a load observer
func (r *FileRepository) WithObserver(observer LoadObserver) *FileRepository {
	r.observer = observer
	return r
}

// GetBookings returns all bookings of the file
func (r *FileRepository) GetBookings(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := r.load(ctx)
	r.observer.ObserveLoad(domain.SourceBookings, err)
	if err != nil {
		r.logger.Warn("GetBookings: failed to load %s: %v", r.path, err)
		return nil, err
	}

	r.logger.Debug("GetBookings: loaded %d bookings from %s", len(bookings), r.path)
	return bookings, nil
}

func (r *FileRepository) load(ctx context.Context) ([]domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		r.logger.Warn("load: open %s: %v", r.path, err)
		return nil, ErrOpenFile
	}
	defer f.Close()

	var bookings []domain.Booking
	if err := json.NewDecoder(f).Decode(&bookings); err != nil {
		r.logger.Warn("load: decode %s: %v", r.path, err)
		return nil, ErrDecode
	}

	return bookings, nil
}
