//go:build conntest

package store_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/userdb/internal/db"
	"github.com/vvka-141/userdb/internal/logging"
	"github.com/vvka-141/userdb/internal/store"
	"github.com/vvka-141/userdb/internal/testinfra"
	"github.com/vvka-141/userdb/pkg/userdb"
)

var container *testinfra.PostgresContainer

func TestMain(m *testing.M) {
	ctx := context.Background()

	ctr, err := testinfra.StartPostgres(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "start postgres: %v\n", err)
		os.Exit(1)
	}
	container = ctr

	code := m.Run()

	container.Terminate(ctx) //nolint:errcheck
	os.Exit(code)
}

// newTestStore connects to the container, provisions the schema, and
// truncates the table so each test starts clean.
func newTestStore(t *testing.T) userdb.UserStore {
	t.Helper()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, container.ConnString)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, testinfra.SchemaSQL)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, "TRUNCATE users")
	require.NoError(t, err)

	return store.NewUsers(db.NewPoolAdapter(pool), logging.NewNullLogger())
}

func TestUsers_CreateAndGetByID(t *testing.T) {
	users := newTestStore(t)
	ctx := context.Background()

	created, err := users.Create(ctx, userdb.NewUser{Name: "Ada Lovelace", Email: "ada@example.com"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, uuid.Nil, created.ID, "server should assign the ID")
	assert.Equal(t, "Ada Lovelace", created.Name)
	assert.Equal(t, "ada@example.com", created.Email)

	fetched, err := users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, *created, *fetched)
}

func TestUsers_GetByID_NotFound(t *testing.T) {
	users := newTestStore(t)

	fetched, err := users.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, fetched, "missing row should be (nil, nil), not an error")
}

func TestUsers_List(t *testing.T) {
	users := newTestStore(t)
	ctx := context.Background()

	all, err := users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	for _, u := range []userdb.NewUser{
		{Name: "Charlie", Email: "charlie@example.com"},
		{Name: "Ada", Email: "ada@example.com"},
		{Name: "Bob", Email: "bob@example.com"},
	} {
		_, err := users.Create(ctx, u)
		require.NoError(t, err)
	}

	all, err = users.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	names := make(map[string]bool, len(all))
	for _, u := range all {
		names[u.Name] = true
	}
	assert.True(t, names["Ada"] && names["Bob"] && names["Charlie"],
		"all created users should be listed, got %v", names)
}

func TestUsers_Update_Partial(t *testing.T) {
	users := newTestStore(t)
	ctx := context.Background()

	created, err := users.Create(ctx, userdb.NewUser{Name: "Ada Lovelace", Email: "ada@example.com"})
	require.NoError(t, err)

	newEmail := "countess@example.com"
	updated, err := users.Update(ctx, created.ID, userdb.UserUpdate{Email: &newEmail})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Ada Lovelace", updated.Name, "unset field must keep its value")
	assert.Equal(t, newEmail, updated.Email)

	newName := "Ada King"
	updated, err = users.Update(ctx, created.ID, userdb.UserUpdate{Name: &newName, Email: &created.Email})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Ada King", updated.Name)
	assert.Equal(t, "ada@example.com", updated.Email)
}

func TestUsers_Update_NotFound(t *testing.T) {
	users := newTestStore(t)

	name := "Nobody"
	updated, err := users.Update(context.Background(), uuid.New(), userdb.UserUpdate{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestUsers_Delete(t *testing.T) {
	users := newTestStore(t)
	ctx := context.Background()

	created, err := users.Create(ctx, userdb.NewUser{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	deleted, err := users.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, *created, *deleted, "delete should return the row as it was")

	fetched, err := users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched)

	again, err := users.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, again, "second delete should report not found")
}
