// Package retry provides a configurable retry mechanism for operations that may fail temporarily.
// It wraps the retry-go package from Avast and exposes a simple interface with functional
// options for customizing retry behavior.
//
// The default strategy is exponential backoff. Errors can be classified as permanent with
// WithRetryIf, in which case the operation is not attempted again.
//
//	r := retry.New(
//	    retry.WithAttempts(5),
//	    retry.WithDelay(200*time.Millisecond),
//	    retry.WithRetryIf(func(err error) bool { return !errors.Is(err, ErrNotFound) }),
//	)
//	err := r.Execute(ctx, func() error { return client.Call(ctx) })
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes operations with automatic retry logic.
type Retry interface {
	// Execute runs operation until it succeeds, the attempts are exhausted,
	// the error is classified as permanent, or ctx is done.
	//
	// The operation must be safe to call multiple times.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint             // maximum number of attempts, including the first one
	delay       time.Duration    // base delay between attempts
	maxDelay    time.Duration    // cap for the exponential delay
	lastErrOnly bool             // whether to return only the last error
	retryIf     func(error) bool // reports whether an error is worth another attempt
}

// Option defines a functional option for configuring the retry mechanism.
type Option func(*config)

// retrier implements the Retry interface using the retry-go package.
type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New creates a Retry configured with the provided options.
//
// Defaults:
//   - attempts:    3 (1 initial attempt + 2 retries)
//   - delay:       1 second
//   - maxDelay:    5 seconds
//   - lastErrOnly: true
//   - retryIf:     every error is retried
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
		retryIf:     func(error) bool { return true },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements the Retry interface.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	return retry.Do(operation,
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.RetryIf(r.cfg.retryIf),
		retry.Context(ctx),
	)
}

// WithAttempts sets the maximum number of attempts (including the initial attempt).
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential growth of the delay.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly sets whether only the error of the final attempt is returned.
// When false, the errors of all attempts are combined.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf sets the predicate deciding whether a failed attempt is retried.
// Errors for which it returns false are returned immediately.
func WithRetryIf(f func(error) bool) Option {
	return func(c *config) {
		c.retryIf = f
	}
}
