package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

// noSleep records requested delays without waiting.
func noSleep(delays *[]time.Duration) func(context.Context, time.Duration) error {
	return func(_ context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	}
}

func TestDo_SucceedsAfterFailures(t *testing.T) {
	var delays []time.Duration
	attempts := 0

	err := Do(context.Background(), Config{
		MaxAttempts: 4,
		BaseDelay:   time.Second,
		Sleep:       noSleep(&delays),
	}, nil, func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestDo_DelayDoubles(t *testing.T) {
	var delays []time.Duration

	err := Do(context.Background(), Config{
		MaxAttempts: 4,
		BaseDelay:   time.Second,
		Sleep:       noSleep(&delays),
	}, nil, func() error {
		return errors.New("always fails")
	})

	if err == nil {
		t.Fatal("expected error, got nil")
	}

	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}
	if len(delays) != len(want) {
		t.Fatalf("expected %d sleeps, got %d", len(want), len(delays))
	}
	for i := range want {
		if delays[i] != want[i] {
			t.Errorf("delays[%d] = %v, want %v", i, delays[i], want[i])
		}
	}
}

func TestDo_MaxDelayCaps(t *testing.T) {
	var delays []time.Duration

	Do(context.Background(), Config{
		MaxAttempts: 5,
		BaseDelay:   time.Second,
		MaxDelay:    2 * time.Second,
		Sleep:       noSleep(&delays),
	}, nil, func() error {
		return errors.New("always fails")
	})

	want := []time.Duration{time.Second, 2 * time.Second, 2 * time.Second, 2 * time.Second}
	for i := range want {
		if delays[i] != want[i] {
			t.Errorf("delays[%d] = %v, want %v", i, delays[i], want[i])
		}
	}
}

func TestDo_NonRetryableReturnsImmediately(t *testing.T) {
	fatal := errors.New("fatal")
	attempts := 0

	err := Do(context.Background(), Config{MaxAttempts: 3}, func(err error) bool {
		return !errors.Is(err, fatal)
	}, func() error {
		attempts++
		return fatal
	})

	if !errors.Is(err, fatal) {
		t.Errorf("expected fatal error, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
}

func TestDo_ReturnsLastError(t *testing.T) {
	var delays []time.Duration
	attempts := 0
	last := errors.New("attempt 3")

	err := Do(context.Background(), Config{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		Sleep:       noSleep(&delays),
	}, nil, func() error {
		attempts++
		if attempts == 3 {
			return last
		}
		return errors.New("earlier")
	})

	if !errors.Is(err, last) {
		t.Errorf("expected last error, got %v", err)
	}
}

func TestDo_ContextCanceledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := Do(ctx, Config{MaxAttempts: 3}, nil, func() error {
		attempts++
		return errors.New("error")
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if attempts != 0 {
		t.Errorf("expected 0 attempts, got %d", attempts)
	}
}

func TestDo_ContextCanceledDuringSleep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	err := Do(ctx, Config{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		Sleep: func(ctx context.Context, _ time.Duration) error {
			cancel()
			return ctx.Err()
		},
	}, nil, func() error {
		attempts++
		return errors.New("transient")
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
}

func TestDo_OnRetryObservesFailures(t *testing.T) {
	var delays []time.Duration
	var retried []int

	Do(context.Background(), Config{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		Sleep:       noSleep(&delays),
		OnRetry: func(attempt int, _ time.Duration, _ error) {
			retried = append(retried, attempt)
		},
	}, nil, func() error {
		return errors.New("always fails")
	})

	if len(retried) != 2 || retried[0] != 1 || retried[1] != 2 {
		t.Errorf("expected retries after attempts [1 2], got %v", retried)
	}
}
