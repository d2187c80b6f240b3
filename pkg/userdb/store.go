package userdb

import (
	"context"

	"github.com/google/uuid"
)

// UserStore is the CRUD contract of the user repository.
//
// "Not found" is modeled as an absence: GetByID, Update and Delete return
// (nil, nil) when no row matches the given id. A non-nil error always means
// the operation itself failed (validation, or a store failure that survived
// the built-in retries).
//
// Implementations must be safe for concurrent use; every call is a single
// autocommitted statement, and each call starts a fresh retry attempt counter.
type UserStore interface {
	// GetByID returns the user with the given id, or nil if none exists.
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// List returns all users in store-determined order.
	// Order is not guaranteed to be stable across calls.
	List(ctx context.Context) ([]User, error)

	// Create validates the draft and inserts a new row, returning the
	// created user including its store-assigned id.
	Create(ctx context.Context, draft NewUser) (*User, error)

	// Update applies a partial update and returns the updated row,
	// or nil if the id did not match any row.
	Update(ctx context.Context, id uuid.UUID, patch UserUpdate) (*User, error)

	// Delete removes the row and returns its last-known state,
	// or nil if the id did not match any row.
	Delete(ctx context.Context, id uuid.UUID) (*User, error)
}
