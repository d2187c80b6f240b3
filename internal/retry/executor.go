package retry

import (
	"context"
	"time"

	"github.com/vvka-141/userdb/pkg/userdb"
)

// Executor orchestrates retry attempts with backoff and error classification.
//
// Thread Safety:
// The Executor itself is safe for concurrent use when calling Execute().
// However, WithOnRetry() returns a NEW instance with the callback configured,
// ensuring each goroutine can have its own configuration without shared state.
// The original Executor remains unchanged.
type Executor struct {
	classifier userdb.ErrorClassifier
	strategy   userdb.BackoffStrategy
	onRetry    func(attempt int, err error, delay time.Duration)
}

// NewExecutor creates a new retry executor with the given configuration.
// Panics if classifier or strategy is nil.
func NewExecutor(
	classifier userdb.ErrorClassifier,
	strategy userdb.BackoffStrategy,
) *Executor {
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if strategy == nil {
		panic("strategy cannot be nil")
	}
	return &Executor{
		classifier: classifier,
		strategy:   strategy,
	}
}

// WithOnRetry returns a new Executor with the specified retry callback.
// The callback runs before each backoff wait, with the zero-based index of
// the attempt that just failed.
//
// This method does NOT modify the receiver; it returns a new instance.
// This ensures thread-safety when configuring executors concurrently.
func (e *Executor) WithOnRetry(callback func(attempt int, err error, delay time.Duration)) *Executor {
	clone := *e
	clone.onRetry = callback
	return &clone
}

// Execute runs the operation with retry logic. Every call starts a fresh
// attempt counter; the strategy's MaxAttempts is the TOTAL number of attempts.
//
// A successful attempt returns immediately. A fatal (non-transient) error
// returns immediately. A transient error on the final attempt is returned
// unchanged; on earlier attempts the executor waits NextDelay(attempt) and
// tries again. Once an attempt is issued it runs to completion — context
// cancellation is only observed while waiting between attempts.
func (e *Executor) Execute(ctx context.Context, operation func(ctx context.Context) error) error {
	maxAttempts := e.strategy.MaxAttempts()
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		lastErr = operation(ctx)
		if lastErr == nil {
			return nil
		}

		// Fatal errors surface immediately, no matter how many attempts remain.
		if !e.classifier.IsTransient(lastErr) {
			return lastErr
		}

		if attempt == maxAttempts-1 {
			break
		}

		delay := e.strategy.NextDelay(attempt)

		if e.onRetry != nil {
			e.onRetry(attempt, lastErr, delay)
		}

		// Wait for the backoff period, respecting context cancellation.
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	// Exhausted all attempts; propagate the final error unchanged.
	return lastErr
}
