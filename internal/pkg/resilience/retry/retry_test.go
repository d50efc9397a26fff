package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(opts ...Option) Retry {
	base := []Option{WithDelay(time.Millisecond), WithMaxDelay(2 * time.Millisecond)}
	return New(append(base, opts...)...)
}

func TestRetry_Execute(t *testing.T) {
	t.Run("successful operation runs once", func(t *testing.T) {
		calls := 0
		err := fastRetry().Execute(t.Context(), func() error {
			calls++
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		err := fastRetry(WithAttempts(3)).Execute(t.Context(), func() error {
			calls++
			if calls < 2 {
				return errors.New("node warming up")
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("returns the last error when attempts are exhausted", func(t *testing.T) {
		expectedErr := errors.New("persistent error")
		calls := 0
		err := fastRetry(WithAttempts(3)).Execute(t.Context(), func() error {
			calls++
			return expectedErr
		})

		assert.ErrorIs(t, err, expectedErr)
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry context errors", func(t *testing.T) {
		calls := 0
		err := fastRetry(WithAttempts(5)).Execute(t.Context(), func() error {
			calls++
			return context.DeadlineExceeded
		})

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, 1, calls)
	})

	t.Run("custom retry predicate", func(t *testing.T) {
		fatal := errors.New("fatal")
		calls := 0
		err := fastRetry(WithAttempts(5), WithRetryIf(func(err error) bool {
			return !errors.Is(err, fatal)
		})).Execute(t.Context(), func() error {
			calls++
			return fatal
		})

		assert.ErrorIs(t, err, fatal)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		calls := 0
		err := New(WithAttempts(5), WithDelay(time.Second)).Execute(ctx, func() error {
			calls++
			cancel()
			return errors.New("transient")
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

func TestRetry_Options(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r, ok := New().(*retrier)
		require.True(t, ok)

		assert.Equal(t, uint(3), r.cfg.attempts)
		assert.Equal(t, time.Second, r.cfg.delay)
		assert.Equal(t, 5*time.Second, r.cfg.maxDelay)
		assert.True(t, r.cfg.lastErrOnly)
	})

	t.Run("custom values", func(t *testing.T) {
		r, ok := New(
			WithAttempts(5),
			WithDelay(2*time.Second),
			WithMaxDelay(10*time.Second),
			WithLastErrorOnly(false),
		).(*retrier)
		require.True(t, ok)

		assert.Equal(t, uint(5), r.cfg.attempts)
		assert.Equal(t, 2*time.Second, r.cfg.delay)
		assert.Equal(t, 10*time.Second, r.cfg.maxDelay)
		assert.False(t, r.cfg.lastErrOnly)
	})
}
