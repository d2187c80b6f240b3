// Package store implements the user repository: plain SQL over a pgx-style
// connection, with every round trip funneled through the retry executor.
// It holds no in-memory state of its own; the database is the single source
// of truth.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vvka-141/userdb/internal/retry"
	"github.com/vvka-141/userdb/pkg/userdb"
)

const (
	getUserSQL    = `SELECT id, name, email FROM users WHERE id = $1`
	listUsersSQL  = `SELECT id, name, email FROM users`
	createUserSQL = `INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id, name, email`
	deleteUserSQL = `DELETE FROM users WHERE id = $1 RETURNING id, name, email`
)

// Users is the CRUD repository for the users table.
//
// All dependencies are injected at construction so tests can substitute a
// fake connection and a fast retry policy without process-wide state.
// Safe for concurrent use when the underlying connection is.
type Users struct {
	db       userdb.DBConnection
	executor *retry.Executor
	log      userdb.Logger
}

// Option configures a Users repository.
type Option func(*Users)

// WithExecutor replaces the default retry executor. Tests use this to
// shorten backoff delays.
func WithExecutor(executor *retry.Executor) Option {
	return func(u *Users) {
		u.executor = executor
	}
}

// NewUsers creates a user repository over the given connection.
// The default retry policy is 3 total attempts with a linear 1s backoff step
// and transient-only classification; retries are logged at verbose level.
func NewUsers(db userdb.DBConnection, log userdb.Logger, opts ...Option) *Users {
	u := &Users{
		db:  db,
		log: log,
	}

	for _, opt := range opts {
		opt(u)
	}

	if u.executor == nil {
		classifier := retry.NewPostgreSQLErrorClassifier()
		strategy := retry.NewLinearBackoff(userdb.DefaultRetryMaxAttempts,
			retry.WithStep(userdb.DefaultRetryBackoffStep),
		)
		u.executor = retry.NewExecutor(classifier, strategy)
	}

	// Retry visibility goes through the injected logger, not a global.
	u.executor = u.executor.WithOnRetry(func(attempt int, err error, delay time.Duration) {
		u.log.Verbose("store attempt %d failed (%v), retrying in %v", attempt+1, err, delay)
	})

	return u
}

// GetByID returns the user with the given id, or nil if none exists.
func (u *Users) GetByID(ctx context.Context, id uuid.UUID) (*userdb.User, error) {
	var row userdb.User

	err := u.executor.Execute(ctx, func(ctx context.Context) error {
		return u.db.QueryRow(ctx, getUserSQL, id).Scan(&row.ID, &row.Name, &row.Email)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		u.log.Error("get user %s: %v", id, err)
		return nil, err
	}

	return &row, nil
}

// List returns all users in store-determined order. No ORDER BY is issued,
// so ordering is not guaranteed to be stable across calls.
func (u *Users) List(ctx context.Context) ([]userdb.User, error) {
	var users []userdb.User

	err := u.executor.Execute(ctx, func(ctx context.Context) error {
		rows, err := u.db.Query(ctx, listUsersSQL)
		if err != nil {
			return err
		}
		defer rows.Close()

		// Reset on every attempt; a retried query starts over.
		users = users[:0]
		for rows.Next() {
			var row userdb.User
			if err := rows.Scan(&row.ID, &row.Name, &row.Email); err != nil {
				return err
			}
			users = append(users, row)
		}
		return rows.Err()
	})
	if err != nil {
		u.log.Error("list users: %v", err)
		return nil, err
	}

	return users, nil
}

// Create validates the draft and inserts a new row. Validation failures
// surface before any store access. The returned user carries the
// store-assigned id.
func (u *Users) Create(ctx context.Context, draft userdb.NewUser) (*userdb.User, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	var row userdb.User
	err := u.executor.Execute(ctx, func(ctx context.Context) error {
		return u.db.QueryRow(ctx, createUserSQL, draft.Name, draft.Email).
			Scan(&row.ID, &row.Name, &row.Email)
	})
	if err != nil {
		u.log.Error("create user: %v", err)
		return nil, err
	}

	return &row, nil
}

// Update applies a partial update: only the fields set on the patch become
// SET clauses (name before email), numbered contiguously from $1, with the
// id as the final WHERE parameter. Returns the updated row, or nil if the
// id matched nothing.
func (u *Users) Update(ctx context.Context, id uuid.UUID, patch userdb.UserUpdate) (*userdb.User, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var b updateBuilder
	if patch.Name != nil {
		b.Set("name", *patch.Name)
	}
	if patch.Email != nil {
		b.Set("email", *patch.Email)
	}

	sql := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING id, name, email`,
		b.SetClause(), b.NextPlaceholder())

	var row userdb.User
	err := u.executor.Execute(ctx, func(ctx context.Context) error {
		return u.db.QueryRow(ctx, sql, b.Args(id)...).Scan(&row.ID, &row.Name, &row.Email)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		u.log.Error("update user %s: %v", id, err)
		return nil, err
	}

	return &row, nil
}

// Delete removes the row and returns its last-known state, or nil if the id
// matched nothing.
func (u *Users) Delete(ctx context.Context, id uuid.UUID) (*userdb.User, error) {
	var row userdb.User

	err := u.executor.Execute(ctx, func(ctx context.Context) error {
		return u.db.QueryRow(ctx, deleteUserSQL, id).Scan(&row.ID, &row.Name, &row.Email)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		u.log.Error("delete user %s: %v", id, err)
		return nil, err
	}

	return &row, nil
}

// Verify Users implements the public store contract at compile time
var _ userdb.UserStore = (*Users)(nil)
