package db

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vvka-141/userdb/pkg/userdb"
)

// configurePool applies the shared pool policy: a hard bound of
// DefaultMaxConns concurrent connections, at least DefaultMinConns kept
// alive, and idle connections recycled after DefaultMaxConnIdleTime.
// Callers queueing for a connection beyond the bound time out after
// DefaultAcquireTimeout (enforced by PoolAdapter.Acquire).
func configurePool(poolConfig *pgxpool.Config) {
	poolConfig.MaxConns = userdb.DefaultMaxConns
	poolConfig.MinConns = userdb.DefaultMinConns
	poolConfig.MaxConnIdleTime = userdb.DefaultMaxConnIdleTime
}
