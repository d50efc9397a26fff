// Package chflow provides context-aware channel helpers so that blocking
// sends and receives give up as soon as the caller's context is done.
package chflow

import "context"

// Receive waits for a value on ch or for ctx to be done.
//
// ok is false when ctx finished first or ch was closed; value is then the
// zero value of T.
func Receive[T any](ctx context.Context, ch <-chan T) (value T, ok bool) {
	select {
	case <-ctx.Done():
		return value, false
	case value, ok = <-ch:
		return value, ok
	}
}

// Send delivers data on ch unless ctx is done first. It reports whether the
// value was delivered.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}
