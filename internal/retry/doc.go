// Package retry provides automatic retry logic with backoff for transient
// database failures.
//
// The package supports pluggable error classification and backoff strategies,
// making it suitable for various retry scenarios beyond database calls.
//
// # Example Usage
//
//	classifier := retry.NewPostgreSQLErrorClassifier()
//	strategy := retry.NewLinearBackoff(3)
//	executor := retry.NewExecutor(classifier, strategy)
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return runQuery(ctx)
//	})
//
// # Error Classification
//
// The ErrorClassifier interface determines which errors are transient
// (retryable) versus fatal (non-retryable). The PostgreSQLErrorClassifier
// recognizes common transient PostgreSQL errors like connection refused,
// network failures, etc. Constraint violations and syntax errors are fatal
// and surface immediately without further attempts.
//
// # Backoff Strategies
//
// The BackoffStrategy interface controls retry timing. LinearBackoff waits
// step × (attempt+1) between attempts — 1s, 2s, 3s for the default 1s step —
// with no jitter, so the total wait is deterministic.
//
// # Thread Safety
//
// Executor instances are safe for concurrent use. Use WithOnRetry() to create
// independent configurations per goroutine.
package retry
