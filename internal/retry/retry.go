// Package retry provides a bounded retry loop with exponential backoff.
//
// The loop is deliberately explicit: a fixed number of attempts, a delay
// that doubles after each failure, and an injectable sleep function so
// tests can run without waiting.
package retry

import (
	"context"
	"time"
)

// Predicate determines whether an error should be retried.
type Predicate func(error) bool

// Config controls retry behavior.
type Config struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// BaseDelay is the delay before the first retry. It doubles after
	// each failed attempt.
	BaseDelay time.Duration

	// MaxDelay caps the backoff delay. Zero means no cap.
	MaxDelay time.Duration

	// Sleep waits for the given delay, returning early with the context
	// error if the context is done. Nil means a real timer-based sleep.
	// Tests inject a recording stub here.
	Sleep func(ctx context.Context, delay time.Duration) error

	// OnRetry, when non-nil, is called before each sleep with the
	// attempt number that just failed, the upcoming delay, and the error.
	OnRetry func(attempt int, delay time.Duration, err error)
}

// Do executes fn until it succeeds, the attempts are exhausted, or
// shouldRetry rejects the error. The last error is returned unwrapped so
// callers can classify it.
func Do(ctx context.Context, config Config, shouldRetry Predicate, fn func() error) error {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 1
	}
	if shouldRetry == nil {
		shouldRetry = func(error) bool { return true }
	}
	pause := config.Sleep
	if pause == nil {
		pause = sleep
	}

	var err error
	delay := config.BaseDelay
	for attempt := 1; attempt <= config.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err = fn()
		if err == nil {
			return nil
		}
		if attempt == config.MaxAttempts || !shouldRetry(err) {
			return err
		}

		if config.OnRetry != nil {
			config.OnRetry(attempt, delay, err)
		}
		if delay > 0 {
			if sleepErr := pause(ctx, delay); sleepErr != nil {
				return sleepErr
			}
		}

		delay *= 2
		if config.MaxDelay > 0 && delay > config.MaxDelay {
			delay = config.MaxDelay
		}
	}

	return err
}

func sleep(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
