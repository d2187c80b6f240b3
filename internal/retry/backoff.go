package retry

import "time"

// LinearBackoff implements a linearly increasing backoff with no jitter.
// The wait after the zero-based attempt i is step × (i+1), capped at maxDelay,
// so a 3-attempt policy with a 1s step waits 1s then 2s.
type LinearBackoff struct {
	// step is the base delay unit added per attempt
	step time.Duration

	// maxDelay is the maximum delay between attempts
	maxDelay time.Duration

	// maxAttempts is the total number of attempts (1 = no retries)
	maxAttempts int
}

// BackoffOption is a functional option for configuring LinearBackoff.
type BackoffOption func(*LinearBackoff)

// WithStep sets the base delay unit between attempts.
func WithStep(d time.Duration) BackoffOption {
	return func(b *LinearBackoff) {
		b.step = d
	}
}

// WithMaxDelay sets the maximum delay between attempts.
func WithMaxDelay(d time.Duration) BackoffOption {
	return func(b *LinearBackoff) {
		b.maxDelay = d
	}
}

// NewLinearBackoff creates a new linear backoff strategy with sensible
// defaults. Additional configuration can be provided via functional options.
//
// Example:
//
//	backoff := retry.NewLinearBackoff(3,
//	    retry.WithStep(500 * time.Millisecond),
//	    retry.WithMaxDelay(10 * time.Second),
//	)
func NewLinearBackoff(maxAttempts int, opts ...BackoffOption) *LinearBackoff {
	b := &LinearBackoff{
		step:        1 * time.Second,
		maxDelay:    30 * time.Second,
		maxAttempts: maxAttempts,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NextDelay calculates the delay after the given zero-based attempt.
func (b *LinearBackoff) NextDelay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}

	delay := b.step * time.Duration(attempt+1)
	if delay > b.maxDelay {
		delay = b.maxDelay
	}
	return delay
}

// MaxAttempts returns the total number of attempts.
func (b *LinearBackoff) MaxAttempts() int {
	return b.maxAttempts
}

// Step returns the base delay unit for tests and debugging.
func (b *LinearBackoff) Step() time.Duration {
	return b.step
}

// MaxDelay returns the maximum delay for tests and debugging.
func (b *LinearBackoff) MaxDelay() time.Duration {
	return b.maxDelay
}
