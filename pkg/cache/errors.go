package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a cached artifact does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNetwork is returned when a cache backend is unreachable.
	ErrNetwork = errors.New("network error")
)

// RetryableError marks a transient backend failure. The Redis cache
// wraps timeouts and connection errors with it so callers can retry a
// lookup instead of re-rendering immediately.
type RetryableError struct{ Err error }

// Retryable wraps err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }

func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err is marked transient.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff runs fn up to three times, doubling the delay
// between attempts. Errors not marked Retryable abort immediately.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	const attempts = 3
	delay := time.Second

	var lastErr error
	for i := 0; i < attempts; i++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !IsRetryable(lastErr) {
			return lastErr
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return lastErr
}
