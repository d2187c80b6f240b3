// Package userdb defines the public API surface for the userdb data-access
// layer: domain types, the store contract, connection configuration, and the
// pluggable interfaces (logging, retry policy, database access) that the
// internal packages implement.
//
// The package is intentionally free of pgx-specific types except where the
// connection pool itself is exposed, so callers can substitute fakes in tests
// without a running PostgreSQL.
package userdb
