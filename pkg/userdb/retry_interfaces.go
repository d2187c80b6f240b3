package userdb

import "time"

// ErrorClassifier determines whether an error is transient (retryable) or fatal.
type ErrorClassifier interface {
	// IsTransient returns true if the error is temporary and the operation should be retried.
	IsTransient(err error) bool
}

// BackoffStrategy calculates the delay before the next retry attempt.
type BackoffStrategy interface {
	// NextDelay returns the duration to wait after the given failed attempt.
	// attempt is zero-indexed (0 = first attempt, 1 = second attempt, etc.)
	NextDelay(attempt int) time.Duration

	// MaxAttempts returns the total number of attempts (1 = no retries).
	MaxAttempts() int
}
