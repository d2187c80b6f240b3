package userdb

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Operation completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or parameters
	ExitConnectionError = 11 // Failed to connect to database
	ExitInvalidInput    = 12 // User data failed validation
	ExitNotFound        = 13 // Requested row does not exist
)

const (
	// DefaultMaxConns bounds concurrent connections in the shared pool.
	// Repository calls beyond this bound queue for a connection.
	DefaultMaxConns = 20

	// DefaultMinConns maintains at least one connection in the pool.
	DefaultMinConns = 1

	// DefaultMaxConnIdleTime is how long an idle connection is kept before
	// the pool closes it.
	DefaultMaxConnIdleTime = 30 * time.Second

	// DefaultAcquireTimeout is how long a caller waits for a free connection
	// before acquisition fails.
	DefaultAcquireTimeout = 5 * time.Second

	// DefaultRetryMaxAttempts is the total number of attempts a single store
	// call makes before the final error is surfaced.
	DefaultRetryMaxAttempts = 3

	// DefaultRetryBackoffStep is the base delay unit between attempts.
	// Attempt i (zero-based) waits (i+1) × step before the next attempt.
	DefaultRetryBackoffStep = 1 * time.Second

	// DefaultDatabase is the database name used when none is configured.
	DefaultDatabase = "postgres"

	// DefaultPort is the standard PostgreSQL port.
	DefaultPort = 5432
)
