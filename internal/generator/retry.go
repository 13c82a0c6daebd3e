package generator

import (
	"context"
	"time"
)

// sleepFunc suspends for d or returns early with the context's error.
// Injected so tests can run retries without real delays.
type sleepFunc func(ctx context.Context, d time.Duration) error

// sleepWithContext is the production sleepFunc.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// withRetry runs fn up to attempts times, sleeping with doubling
// backoff between attempts. retryable decides whether a failure is
// worth another attempt; a non-retryable error aborts immediately.
// Backoff is sequential blocking, not concurrent fan-out.
func withRetry(ctx context.Context, attempts int, initialBackoff time.Duration, sleep sleepFunc, retryable func(error) bool, fn func() error) error {
	backoff := initialBackoff
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if !retryable(err) || attempt == attempts {
			return err
		}
		if sleepErr := sleep(ctx, backoff); sleepErr != nil {
			return sleepErr
		}
		backoff *= 2
	}
	return err
}
