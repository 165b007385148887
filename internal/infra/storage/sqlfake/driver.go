// Package sqlfake is a database/sql driver that answers queries from canned results.
// It is used by repository tests in place of a PostgreSQL server.
package sqlfake

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

const driverName = "sqlfake"

// ErrUnexpectedQuery is returned for a query that has no canned result
var ErrUnexpectedQuery = errors.New("sqlfake: unexpected query")

// Result is the canned answer to one query
type Result struct {
	Columns []string
	Rows    [][]driver.Value
	Err     error
}

var (
	registerOnce sync.Once
	mu           sync.Mutex
	seq          atomic.Int64
	fixtures     = map[string]map[string]Result{}
)

// Open returns a *sql.DB whose queries are answered from results, keyed by exact SQL text.
func Open(results map[string]Result) (*sql.DB, error) {
	registerOnce.Do(func() {
		sql.Register(driverName, fakeDriver{})
	})

	dsn := fmt.Sprintf("fixture-%d", seq.Add(1))

	mu.Lock()
	fixtures[dsn] = results
	mu.Unlock()

	return sql.Open(driverName, dsn)
}

type fakeDriver struct{}

func (fakeDriver) Open(dsn string) (driver.Conn, error) {
	mu.Lock()
	defer mu.Unlock()

	results, ok := fixtures[dsn]
	if !ok {
		return nil, fmt.Errorf("sqlfake: unknown dsn %q", dsn)
	}
	return &conn{results: results}, nil
}

type conn struct {
	results map[string]Result
}

func (c *conn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	res, ok := c.results[query]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedQuery, query)
	}
	if res.Err != nil {
		return nil, res.Err
	}
	return &rows{columns: res.Columns, values: res.Rows}, nil
}

func (c *conn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("sqlfake: prepared statements are not supported")
}

func (c *conn) Close() error { return nil }

func (c *conn) Begin() (driver.Tx, error) {
	return nil, errors.New("sqlfake: transactions are not supported")
}

type rows struct {
	columns []string
	values  [][]driver.Value
	pos     int
}

func (r *rows) Columns() []string { return r.columns }

func (r *rows) Close() error { return nil }

func (r *rows) Next(dest []driver.Value) error {
	if r.pos >= len(r.values) {
		return io.EOF
	}
	copy(dest, r.values[r.pos])
	r.pos++
	return nil
}
