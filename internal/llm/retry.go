package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// retryVerdict classifies a failed Generate call.
type retryVerdict int

const (
	// retryNever: the request will fail the same way again.
	retryNever retryVerdict = iota
	// retryOnce: worth one second chance. Model output that failed
	// schema validation lands here; two bad banks in a row means the
	// prompt is the problem, not luck.
	retryOnce
	// retryAlways: transient, keep trying within the attempt budget.
	retryAlways
)

// classifyRetry decides whether a failure is worth another attempt.
func classifyRetry(err error) retryVerdict {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return retryNever
	}

	var truncated *ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		// The cap is ours; the same request truncates again.
		return retryNever
	}

	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		return retryOnce
	}

	// Rate limits, 5xx, and plain network failures all count as
	// transient.
	return retryAlways
}

// RetryProvider retries transient failures with growing, jittered
// delays.
type RetryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a Provider in the retry loop.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, cfg: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	secondChanceSpent := false

	for attempt := 1; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		switch classifyRetry(err) {
		case retryNever:
			return nil, err
		case retryOnce:
			if secondChanceSpent {
				return nil, err
			}
			secondChanceSpent = true
		}

		if attempt >= r.cfg.Attempts {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.delay(attempt, err)):
		}
	}
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// delay picks the wait before the next attempt. attempt is 1-based.
func (r *RetryProvider) delay(attempt int, err error) time.Duration {
	// A rate limit that names its own window wins over the schedule.
	var limited *ErrRateLimit
	if errors.As(err, &limited) && limited.RetryAfter > 0 {
		return limited.RetryAfter
	}

	d := r.cfg.BaseDelay
	for i := 1; i < attempt; i++ {
		d = time.Duration(float64(d) * r.cfg.Growth)
		if d >= r.cfg.MaxDelay {
			d = r.cfg.MaxDelay
			break
		}
	}

	// Spread the herd: scale into [80%, 120%].
	return time.Duration(float64(d) * (0.8 + 0.4*rand.Float64()))
}
