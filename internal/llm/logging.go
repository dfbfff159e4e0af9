package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mentorlabs/mentor/internal/store"
)

// LoggingProvider appends one request event per Generate call. The
// events feed `mentor llm list` and `mentor llm stats`.
type LoggingProvider struct {
	inner  Provider
	name   string
	events store.EventRepo
}

// WithLogging wraps a Provider with request-event logging. name is the
// provider label recorded on each event ("anthropic", "gemini", ...).
func WithLogging(p Provider, name string, events store.EventRepo) Provider {
	return &LoggingProvider{inner: p, name: name, events: events}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	event := store.LLMRequestEventData{
		Provider:  l.name,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		// The response may name a more specific model than configured.
		event.Model = resp.Model
		event.InputTokens = resp.Usage.InputTokens
		event.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}

	// A broken event log must not take the tutor down with it.
	if logErr := l.events.AppendLLMRequest(ctx, event); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
