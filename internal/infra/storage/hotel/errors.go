package hotel

import "errors"

var (
	// ErrFileNotFound is returned when the hotels file does not exist
	ErrFileNotFound = errors.New("Hotels file not found.")

	// ErrOpenFile is returned when the hotels file exists but cannot be opened
	ErrOpenFile = errors.New("Unable to open hotels file.")

	// ErrDecode is returned when the hotels file is not a valid JSON array of hotels
	ErrDecode = errors.New("Unable to deserialize hotels file.")

	// ErrBuildQuery is returned when a SQL query cannot be built
	ErrBuildQuery = errors.New("hotel.repository: failed to build query")

	// ErrExecQuery is returned when a SQL query fails
	ErrExecQuery = errors.New("hotel.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("hotel.repository: failed to scan row")
)
