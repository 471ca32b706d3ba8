package poll

import (
	"context"
	"errors"
	"time"
)

// Sleeper abstracts time.Sleep so polling loops can be tested without real
// delays. The standard implementation honors context cancellation.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// ClockSleeper is the production Sleeper backed by a timer.
type ClockSleeper struct{}

func (ClockSleeper) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Func is polled once per attempt. Returning done=true stops the loop with a
// nil error. Returning an error also stops the loop; the error is propagated.
// Returning (false, nil) continues to the next attempt.
type Func func(ctx context.Context) (done bool, err error)

// ErrAttemptsExhausted is returned by Until when every attempt came back
// not-done. Callers that treat exhaustion as a soft timeout check for it
// with errors.Is.
var ErrAttemptsExhausted = errors.New("polling attempts exhausted")

// Until runs fn at a fixed interval for at most maxAttempts attempts,
// sleeping one interval before each attempt. It stops early when fn reports
// done, fn returns an error, or the context is cancelled.
func Until(ctx context.Context, sleeper Sleeper, interval time.Duration, maxAttempts int, fn Func) error {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := sleeper.Sleep(ctx, interval); err != nil {
			return err
		}
		done, err := fn(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	return ErrAttemptsExhausted
}
