package distributor

import (
	"context"
	"time"
)

// RetryPolicy parameterizes the call-with-retry combinator: how many
// attempts, how long to wait after a transport failure, and how the 429
// backoff grows per attempt.
type RetryPolicy struct {
	MaxAttempts      int
	TransportDelay   time.Duration
	RateLimitBackoff func(attempt int) time.Duration
}

// DefaultRetryPolicy mirrors the documented schedule: 3 attempts, 2s fixed
// delay on transport errors, and a linearly growing 429 backoff (5s, 10s).
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    3,
		TransportDelay: 2 * time.Second,
		RateLimitBackoff: func(attempt int) time.Duration {
			return time.Duration(attempt) * 5 * time.Second
		},
	}
}

func (p RetryPolicy) normalized() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 3
	}
	if p.TransportDelay <= 0 {
		p.TransportDelay = 2 * time.Second
	}
	if p.RateLimitBackoff == nil {
		p.RateLimitBackoff = DefaultRetryPolicy().RateLimitBackoff
	}
	return p
}

// sleep waits for d or until the context is cancelled, whichever is first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
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

// attemptOutcome classifies one attempt for the retry loop.
type attemptOutcome int

const (
	outcomeOK attemptOutcome = iota
	outcomeRateLimited
	outcomeTransient
)

// withRetry runs fn up to MaxAttempts times. fn reports how its attempt
// ended; rate-limited attempts wait the growing backoff, transient failures
// wait the fixed transport delay. The last error wins when the budget runs
// out.
func withRetry(ctx context.Context, policy RetryPolicy, fn func() (attemptOutcome, error)) error {
	policy = policy.normalized()

	var lastErr error
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		outcome, err := fn()
		switch outcome {
		case outcomeOK:
			return nil
		case outcomeRateLimited:
			lastErr = err
			if attempt < policy.MaxAttempts {
				if serr := sleep(ctx, policy.RateLimitBackoff(attempt)); serr != nil {
					return serr
				}
			}
		case outcomeTransient:
			lastErr = err
			if attempt < policy.MaxAttempts {
				if serr := sleep(ctx, policy.TransportDelay); serr != nil {
					return serr
				}
			}
		}
	}
	return lastErr
}
