package generator

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errFlaky = errors.New("flaky")

func noSleep(context.Context, time.Duration) error { return nil }

func always(error) bool { return true }

func TestWithRetryEventualSuccess(t *testing.T) {
	calls := 0
	var delays []time.Duration
	sleep := func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}

	err := withRetry(context.Background(), 3, time.Second, sleep, always, func() error {
		calls++
		if calls < 3 {
			return errFlaky
		}
		return nil
	})
	if err != nil {
		t.Fatalf("withRetry() = %v, want nil", err)
	}
	if calls != 3 {
		t.Errorf("fn called %d times, want 3", calls)
	}
	want := []time.Duration{time.Second, 2 * time.Second}
	for i := range want {
		if delays[i] != want[i] {
			t.Errorf("backoff %d = %v, want %v", i, delays[i], want[i])
		}
	}
}

func TestWithRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), 3, time.Second, noSleep, always, func() error {
		calls++
		return errFlaky
	})
	if !errors.Is(err, errFlaky) {
		t.Errorf("withRetry() = %v, want errFlaky", err)
	}
	if calls != 3 {
		t.Errorf("fn called %d times, want 3", calls)
	}
}

func TestWithRetryNonRetryableAborts(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), 3, time.Second, noSleep, func(error) bool { return false }, func() error {
		calls++
		return errFlaky
	})
	if !errors.Is(err, errFlaky) {
		t.Errorf("withRetry() = %v, want errFlaky", err)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}

func TestWithRetryStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := withRetry(ctx, 3, time.Second, sleepWithContext, always, func() error {
		calls++
		return errFlaky
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("withRetry() = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}
