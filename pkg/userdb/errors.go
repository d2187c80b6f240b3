package userdb

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := store.Create(ctx, draft)
//	if errors.Is(err, userdb.ErrInvalidInput) {
//	    // Reject the request without touching the database again
//	}
var (
	// ErrInvalidInput indicates the caller supplied data that fails validation.
	// Raised before any store access; never retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConnectionFailed indicates database connection failed.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrUnsupportedAuthMethod indicates the requested authentication method is not supported.
	ErrUnsupportedAuthMethod = errors.New("unsupported authentication method")

	// ErrNotFound indicates the requested row does not exist. The store
	// reports absence as (nil, nil); callers that need a hard failure wrap
	// this sentinel instead.
	ErrNotFound = errors.New("not found")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrInvalidInput):
		return ExitInvalidInput
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrUnsupportedAuthMethod):
		return ExitConfigError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	}

	errStr := err.Error()

	// cobra reports flag/argument misuse as plain errors; map the common
	// phrasings to the usage exit code.
	usagePatterns := []string{
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"invalid argument",
		"required flag",
		"accepts ",
	}
	for _, pattern := range usagePatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	// Check for common connection error patterns
	if strings.Contains(errStr, "failed to connect") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") {
		return ExitConnectionError
	}

	return ExitGeneralError
}
