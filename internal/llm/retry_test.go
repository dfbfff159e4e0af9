package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"
)

// flakyProvider fails scripted times before succeeding.
type flakyProvider struct {
	errs  []error
	calls int
}

func (f *flakyProvider) Generate(_ context.Context, _ Request) (*Response, error) {
	f.calls++
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return nil, err
	}
	return &Response{Content: json.RawMessage(`"Looks right to me."`)}, nil
}

func (f *flakyProvider) ModelID() string { return "flaky" }

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		Attempts:  attempts,
		BaseDelay: time.Millisecond,
		MaxDelay:  5 * time.Millisecond,
		Growth:    2.0,
	}
}

func TestRetryRecoversFromTransientFailure(t *testing.T) {
	inner := &flakyProvider{errs: []error{
		&ErrProviderUnavailable{Err: errors.New("503")},
	}}
	p := WithRetry(inner, fastRetry(3))

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `"Looks right to me."` {
		t.Errorf("Content = %s", resp.Content)
	}
	if inner.calls != 2 {
		t.Errorf("calls = %d, want 2", inner.calls)
	}
}

func TestRetryGivesUpAfterAttemptBudget(t *testing.T) {
	inner := &flakyProvider{errs: []error{
		&ErrProviderUnavailable{},
		&ErrProviderUnavailable{},
		&ErrProviderUnavailable{},
		&ErrProviderUnavailable{},
	}}
	p := WithRetry(inner, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
	if inner.calls != 3 {
		t.Errorf("calls = %d, want 3", inner.calls)
	}
}

func TestRetryStopsOnContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inner := &flakyProvider{errs: []error{ctx.Err()}}
	p := WithRetry(inner, fastRetry(3))

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1 (cancellation must not be retried)", inner.calls)
	}
}

func TestRetryTruncationIsTerminal(t *testing.T) {
	inner := &flakyProvider{errs: []error{
		&ErrMaxTokensExceeded{},
	}}
	p := WithRetry(inner, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{})
	var truncated *ErrMaxTokensExceeded
	if !errors.As(err, &truncated) {
		t.Fatalf("err = %v, want ErrMaxTokensExceeded", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1 (truncation repeats; no point retrying)", inner.calls)
	}
}

func TestRetryMalformedBankGetsOneSecondChance(t *testing.T) {
	badBank := &ErrInvalidResponse{
		Content: json.RawMessage(`{"questions": "not an array"}`),
		Err:     fmt.Errorf("violates question-bank schema"),
	}
	inner := &flakyProvider{errs: []error{badBank, badBank, badBank}}
	p := WithRetry(inner, fastRetry(5))

	_, err := p.Generate(context.Background(), Request{})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
	if inner.calls != 2 {
		t.Errorf("calls = %d, want 2 (one retry for a bad bank, then stop)", inner.calls)
	}
}

func TestRetryHonorsRateLimitWindow(t *testing.T) {
	inner := &flakyProvider{errs: []error{
		&ErrRateLimit{RetryAfter: 10 * time.Millisecond},
	}}
	p := WithRetry(inner, fastRetry(3))

	start := time.Now()
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Errorf("elapsed = %v, want at least the 10ms retry window", elapsed)
	}
}

func TestClassifyRetry(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want retryVerdict
	}{
		{"cancellation", context.Canceled, retryNever},
		{"deadline", context.DeadlineExceeded, retryNever},
		{"truncation", &ErrMaxTokensExceeded{}, retryNever},
		{"schema violation", &ErrInvalidResponse{}, retryOnce},
		{"rate limit", &ErrRateLimit{}, retryAlways},
		{"provider down", &ErrProviderUnavailable{}, retryAlways},
		{"plain network error", errors.New("connection reset"), retryAlways},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyRetry(tt.err); got != tt.want {
				t.Errorf("classifyRetry = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRetryDelayGrowsAndCaps(t *testing.T) {
	r := &RetryProvider{cfg: RetryConfig{
		Attempts:  5,
		BaseDelay: 10 * time.Millisecond,
		MaxDelay:  25 * time.Millisecond,
		Growth:    2.0,
	}}

	plain := errors.New("boom")
	// Jitter scales into [80%, 120%] of the schedule.
	if d := r.delay(1, plain); d < 8*time.Millisecond || d > 12*time.Millisecond {
		t.Errorf("delay(1) = %v, want ~10ms", d)
	}
	if d := r.delay(2, plain); d < 16*time.Millisecond || d > 24*time.Millisecond {
		t.Errorf("delay(2) = %v, want ~20ms", d)
	}
	// Attempt 3 would be 40ms unclamped; the cap holds it at 25ms.
	if d := r.delay(3, plain); d < 20*time.Millisecond || d > 30*time.Millisecond {
		t.Errorf("delay(3) = %v, want ~25ms (capped)", d)
	}
}
