package hotel

import (
	"context"
	"database/sql"
)

// DBExecutor is the part of *sql.DB the repository uses
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// LoadObserver is notified about the outcome of every load (metrics)
type LoadObserver interface {
	ObserveLoad(source string, err error)
}

// Logger is the logging subset the repositories use
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

type nopObserver struct{}

func (nopObserver) ObserveLoad(string, error) {}
