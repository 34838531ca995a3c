// Package retry implements a bounded retry policy with exponential backoff.
// Used by the event consumer to apply the delivery policy before a message
// is dead-lettered.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNonRetryable marks failures that retrying cannot fix, such as a payload
// that does not decode. Wrap the cause with this sentinel to make Do give up
// immediately.
var ErrNonRetryable = errors.New("non-retryable")

// Policy describes how many delivery attempts are made and how backoff grows
// between them. MaxAttempts counts the first attempt, so 3 means one try plus
// two retries.
type Policy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	Multiplier     float64
	MaxBackoff     time.Duration

	// sleep is replaced in tests; nil means time.Sleep with context abort.
	sleep func(ctx context.Context, d time.Duration) error
}

// DefaultPolicy is the delivery policy applied to incoming status events:
// 3 total attempts starting at 1s backoff, doubling, capped at 10s.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:    3,
		InitialBackoff: 1000 * time.Millisecond,
		Multiplier:     2.0,
		MaxBackoff:     10000 * time.Millisecond,
	}
}

// Do runs fn until it succeeds, exhausts the attempt budget, fails with
// ErrNonRetryable, or the context ends. The returned error is the last
// failure; attempt exhaustion does not mask it.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if p.MaxAttempts < 1 {
		return fmt.Errorf("retry policy needs at least one attempt, got %d", p.MaxAttempts)
	}

	backoff := p.InitialBackoff
	var lastErr error

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if errors.Is(lastErr, ErrNonRetryable) {
			return lastErr
		}
		if attempt == p.MaxAttempts {
			break
		}

		if err := p.wait(ctx, backoff); err != nil {
			return err
		}

		backoff = time.Duration(float64(backoff) * p.Multiplier)
		if p.MaxBackoff > 0 && backoff > p.MaxBackoff {
			backoff = p.MaxBackoff
		}
	}

	return lastErr
}

func (p Policy) wait(ctx context.Context, d time.Duration) error {
	if p.sleep != nil {
		return p.sleep(ctx, d)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
