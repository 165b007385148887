package booking

import "errors"

var (
	// ErrFileNotFound is returned when the bookings file does not exist
	ErrFileNotFound = errors.New("Bookings file not found.")

	// ErrOpenFile is returned when the bookings file exists but cannot be opened
	ErrOpenFile = errors.New("Unable to open bookings file.")

	// ErrDecode is returned when the bookings file is not a valid JSON array of bookings
	ErrDecode = errors.New("Unable to deserialize bookings file.")

	// ErrBuildQuery is returned when a SQL query cannot be built
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when a SQL query fails
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
