package db

import (
	"context"
	"time"
)

// TokenProvider abstracts cloud token acquisition for database authentication.
// The token is used as the PostgreSQL password when connecting to a
// cloud-hosted server; implementations exist for AWS IAM and Azure Entra ID.
type TokenProvider interface {
	// GetToken acquires an authentication token.
	// Returns the token string and its expiry time.
	GetToken(ctx context.Context) (token string, expiresOn time.Time, err error)

	// String returns a human-readable description for logging.
	// Must NOT include secrets.
	String() string
}

// AzurePostgreSQLScope is the OAuth scope for Azure Database for PostgreSQL.
// This is the resource identifier that Entra ID uses to issue tokens for
// PostgreSQL access.
const AzurePostgreSQLScope = "https://ossrdbms-aad.database.windows.net/.default"
