package policy

import (
	"context"
	"fmt"
	"time"
)

// RetryPolicy is an explicit, named per-operation retry policy. Each external
// call in the pipeline is bound to one of the policies below instead of an
// inline timeout/retry conditional, so tests can target each policy on its own.
type RetryPolicy struct {
	Name        string
	MaxAttempts int
	Timeout     time.Duration // Per-attempt hard timeout
	Backoff     time.Duration // Wait between attempts
}

// Embedding: 5s hard timeout, 2 retries. Exhaustion surfaces as an error;
// a missing vector makes retrieval meaningless.
var Embedding = RetryPolicy{
	Name:        "embedding",
	MaxAttempts: 3,
	Timeout:     5 * time.Second,
	Backoff:     200 * time.Millisecond,
}

// NetworkCall: explicit timeout plus a single retry for calls that previously
// relied on transport defaults (identity lookup, product queries).
var NetworkCall = RetryPolicy{
	Name:        "network-call",
	MaxAttempts: 2,
	Timeout:     30 * time.Second,
	Backoff:     500 * time.Millisecond,
}

// Do runs op under the policy, applying the per-attempt timeout and retrying
// until attempts are exhausted or the parent context is done.
func (p RetryPolicy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, p.Timeout)
		lastErr = op(attemptCtx)
		cancel()

		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return fmt.Errorf("%s policy aborted: %w", p.Name, ctx.Err())
		}
		if attempt < p.MaxAttempts {
			time.Sleep(p.Backoff)
		}
	}

	return fmt.Errorf("%s policy exhausted after %d attempts: %w", p.Name, p.MaxAttempts, lastErr)
}
