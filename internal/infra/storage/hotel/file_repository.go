package hotel

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/m04kA/hotel-manager/internal/domain"
)

// FileRepository loads the hotel catalog from a JSON file.
// The file is re-read on every call, so edits are picked up by the next command.
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

// GetHotels returns all hotels of the file
func (r *FileRepository) GetHotels(ctx context.Context) ([]domain.Hotel, error) {
	hotels, err := r.load(ctx)
	r.observer.ObserveLoad(domain.SourceHotels, err)
	if err != nil {
		r.logger.Warn("GetHotels: failed to load %s: %v", r.path, err)
		return nil, err
	}

	r.logger.Debug("GetHotels: loaded %d hotels from %s", len(hotels), r.path)
	return hotels, nil
}

func (r *FileRepository) load(ctx context.Context) ([]domain.Hotel, error) {
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

	var hotels []domain.Hotel
	if err := json.NewDecoder(f).Decode(&hotels); err != nil {
		r.logger.Warn("load: decode %s: %v", r.path, err)
		return nil, ErrDecode
	}

	return hotels, nil
}
