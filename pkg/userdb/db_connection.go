package userdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
)

// DBConnection abstracts the database operations the user store needs.
// This interface decouples the store from pgx-specific types so tests can
// substitute a fake connection without a running PostgreSQL.
//
// Thread-Safety: Implementations should follow their underlying connection's
// thread-safety guarantees. Connection pool implementations are typically safe
// for concurrent use.
type DBConnection interface {
	// Exec executes a query without returning any rows.
	// Returns CommandTag containing information about the query execution.
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)

	// Query executes a query that returns zero or more rows.
	// The caller must close the returned Rows.
	Query(ctx context.Context, sql string, args ...any) (Rows, error)

	// QueryRow executes a query that is expected to return at most one row.
	// Always returns a non-nil Row. Errors are deferred until Row's Scan method is called.
	QueryRow(ctx context.Context, sql string, args ...any) Row

	// Close drains the underlying pool: all connections are closed and
	// further calls fail. The hosting application invokes this during its
	// own shutdown sequence; the store itself never registers OS signal
	// handlers.
	Close()
}

// Row represents a single row returned by QueryRow.
// This interface decouples from pgx.Row.
type Row interface {
	// Scan reads the values from the row into dest values.
	// Returns an error if no row was found or if the scan fails.
	Scan(dest ...any) error
}

// Rows represents an iterable result set returned by Query.
// This interface decouples from pgx.Rows.
type Rows interface {
	// Next advances to the next row. Returns false when no rows remain
	// or an error occurred; check Err afterwards.
	Next() bool

	// Scan reads the current row into dest values.
	Scan(dest ...any) error

	// Err returns the error, if any, that terminated iteration.
	Err() error

	// Close releases the resources held by the result set.
	// Safe to call multiple times.
	Close()
}
