// Package retry wraps avast/retry-go behind a small interface so callers can
// inject a retry policy (or none) into services that talk to a node.
//
// The default policy is three attempts with exponential backoff starting at
// one second and capped at five seconds:
//
//	r := retry.New()
//	err := r.Execute(ctx, func() error {
//	    return node.Ping(ctx)
//	})
package retry

import (
	"context"
	"errors"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation under a retry policy.
type Retry interface {
	// Execute runs operation until it succeeds, the attempts are exhausted,
	// the error is not retryable or ctx is done. The operation must be safe
	// to call more than once.
	Execute(ctx context.Context, operation func() error) error
}

type config struct {
	attempts    uint
	delay       time.Duration
	maxDelay    time.Duration
	lastErrOnly bool
	retryIf     func(error) bool
}

// Option configures the retry policy.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry using exponential backoff.
//
// Defaults: 3 attempts, 1s base delay, 5s max delay, last error only, and
// every error except context cancellation is retried.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
		retryIf:     isRetryable,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{cfg: cfg}
}

// isRetryable reports false for context errors; retrying after the caller
// gave up only delays the inevitable.
func isRetryable(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Execute implements Retry.
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

// WithAttempts sets the total number of attempts, including the first one.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base backoff delay.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the backoff delay.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly controls whether Execute returns only the final error
// (true) or all attempt errors combined (false).
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf replaces the predicate deciding whether an error is worth
// another attempt.
func WithRetryIf(f func(error) bool) Option {
	return func(c *config) {
		c.retryIf = f
	}
}
