package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vvka-141/userdb/pkg/userdb"
)

// recordedCall captures one statement sent to the fake connection.
type recordedCall struct {
	sql  string
	args []any
}

// fakeRow scripts a single QueryRow result: either a user row or an error.
type fakeRow struct {
	user userdb.User
	err  error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*uuid.UUID)) = r.user.ID
	*(dest[1].(*string)) = r.user.Name
	*(dest[2].(*string)) = r.user.Email
	return nil
}

// fakeRows scripts a Query result set.
type fakeRows struct {
	users  []userdb.User
	idx    int
	err    error // returned by Err() after iteration
	closed bool
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.users) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	u := r.users[r.idx-1]
	*(dest[0].(*uuid.UUID)) = u.ID
	*(dest[1].(*string)) = u.Name
	*(dest[2].(*string)) = u.Email
	return nil
}

func (r *fakeRows) Err() error { return r.err }
func (r *fakeRows) Close()     { r.closed = true }

// fakeConn is a scripted userdb.DBConnection. QueryRow pops results from
// rowQueue in order; Query pops from rowsQueue. Every statement is recorded
// so tests can assert on the generated SQL and parameter order.
type fakeConn struct {
	calls     []recordedCall
	rowQueue  []*fakeRow
	rowsQueue []queryResult
	closed    bool
}

type queryResult struct {
	rows *fakeRows
	err  error
}

func (f *fakeConn) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, recordedCall{sql: sql, args: args})
	return pgconn.NewCommandTag(""), nil
}

func (f *fakeConn) Query(_ context.Context, sql string, args ...any) (userdb.Rows, error) {
	f.calls = append(f.calls, recordedCall{sql: sql, args: args})
	if len(f.rowsQueue) == 0 {
		return &fakeRows{}, nil
	}
	next := f.rowsQueue[0]
	f.rowsQueue = f.rowsQueue[1:]
	if next.err != nil {
		return nil, next.err
	}
	return next.rows, nil
}

func (f *fakeConn) QueryRow(_ context.Context, sql string, args ...any) userdb.Row {
	f.calls = append(f.calls, recordedCall{sql: sql, args: args})
	if len(f.rowQueue) == 0 {
		return &fakeRow{err: errNoScript}
	}
	next := f.rowQueue[0]
	f.rowQueue = f.rowQueue[1:]
	return next
}

func (f *fakeConn) Close() { f.closed = true }

// queueRow scripts the next QueryRow result.
func (f *fakeConn) queueRow(r *fakeRow) *fakeConn {
	f.rowQueue = append(f.rowQueue, r)
	return f
}

// queueRowTimes scripts the same QueryRow result n times.
func (f *fakeConn) queueRowTimes(r *fakeRow, n int) *fakeConn {
	for i := 0; i < n; i++ {
		f.rowQueue = append(f.rowQueue, r)
	}
	return f
}

var _ userdb.DBConnection = (*fakeConn)(nil)
