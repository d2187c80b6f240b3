package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vvka-141/userdb/pkg/userdb"
)

// PoolAdapter adapts a pgxpool.Pool to the userdb.DBConnection interface.
//
// Every operation acquires a connection from the pool with a bounded
// acquisition window: if no connection becomes available within
// userdb.DefaultAcquireTimeout the operation fails instead of queuing
// indefinitely. pgxpool has no native acquire timeout, so the bound is
// applied through a context on the Acquire call only; the query itself
// runs under the caller's context.
type PoolAdapter struct {
	pool *pgxpool.Pool
}

// NewPoolAdapter wraps an established connection pool.
func NewPoolAdapter(pool *pgxpool.Pool) *PoolAdapter {
	return &PoolAdapter{pool: pool}
}

// Pool exposes the underlying pool for callers that need pgx-specific
// functionality (health checks, pool statistics).
func (a *PoolAdapter) Pool() *pgxpool.Pool {
	return a.pool
}

func (a *PoolAdapter) acquire(ctx context.Context) (*pgxpool.Conn, error) {
	acquireCtx, cancel := context.WithTimeout(ctx, userdb.DefaultAcquireTimeout)
	defer cancel()
	return a.pool.Acquire(acquireCtx)
}

// Exec executes a query without returning any rows.
func (a *PoolAdapter) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	conn, err := a.acquire(ctx)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	defer conn.Release()
	return conn.Exec(ctx, sql, args...)
}

// Query executes a query that returns zero or more rows.
// The acquired connection is released when the returned Rows are closed.
func (a *PoolAdapter) Query(ctx context.Context, sql string, args ...any) (userdb.Rows, error) {
	conn, err := a.acquire(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		conn.Release()
		return nil, err
	}
	return &poolRows{rows: rows, conn: conn}, nil
}

// QueryRow executes a query that is expected to return at most one row.
// Errors, including acquisition failures, are deferred until Scan.
func (a *PoolAdapter) QueryRow(ctx context.Context, sql string, args ...any) userdb.Row {
	conn, err := a.acquire(ctx)
	if err != nil {
		return errRow{err: err}
	}
	return &poolRow{row: conn.QueryRow(ctx, sql, args...), conn: conn}
}

// Close drains the pool. Blocks until all acquired connections are released.
func (a *PoolAdapter) Close() {
	a.pool.Close()
}

// poolRows keeps the acquired connection alive for the lifetime of the
// result set and releases it on Close.
type poolRows struct {
	rows pgx.Rows
	conn *pgxpool.Conn
}

func (r *poolRows) Next() bool             { return r.rows.Next() }
func (r *poolRows) Scan(dest ...any) error { return r.rows.Scan(dest...) }
func (r *poolRows) Err() error             { return r.rows.Err() }

func (r *poolRows) Close() {
	r.rows.Close()
	if r.conn != nil {
		r.conn.Release()
		r.conn = nil
	}
}

// poolRow releases its connection once the single row has been scanned.
type poolRow struct {
	row  pgx.Row
	conn *pgxpool.Conn
}

func (r *poolRow) Scan(dest ...any) error {
	defer r.conn.Release()
	return r.row.Scan(dest...)
}

// errRow defers an acquisition error to Scan, matching the pgx QueryRow
// convention of never returning a nil row.
type errRow struct {
	err error
}

func (r errRow) Scan(dest ...any) error { return r.err }

var _ userdb.DBConnection = (*PoolAdapter)(nil)
