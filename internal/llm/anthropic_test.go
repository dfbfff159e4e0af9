package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func anthropicTestProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("sk-test"),
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: &client, model: anthropicDefaultModel}
}

func TestAnthropicGenerateTutorReply(t *testing.T) {
	var got map[string]any
	p := anthropicTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_1",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": `"Close — count up from 49 by sevens."`},
			},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 42, "output_tokens": 12},
		})
	})

	resp, err := p.Generate(context.Background(), Request{
		System: "You are a patient math tutor.",
		Messages: []Message{
			{Role: RoleUser, Content: "is 7x8 54?"},
		},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if string(resp.Content) != `"Close — count up from 49 by sevens."` {
		t.Errorf("Content = %s", resp.Content)
	}
	if resp.Model != "claude-haiku-4-5-20251001" {
		t.Errorf("Model = %q", resp.Model)
	}
	if resp.StopReason != "end" {
		t.Errorf("StopReason = %q, want end", resp.StopReason)
	}
	if resp.Usage.TotalTokens != 54 {
		t.Errorf("TotalTokens = %d, want 54", resp.Usage.TotalTokens)
	}

	if got["model"] != anthropicDefaultModel {
		t.Errorf("requested model = %v, want %v", got["model"], anthropicDefaultModel)
	}
	system, _ := got["system"].([]any)
	if len(system) != 1 {
		t.Errorf("system blocks = %v", got["system"])
	}
}

func TestAnthropicGenerateTruncationStopReason(t *testing.T) {
	p := anthropicTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_2",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": `"And that is why fractions"`},
			},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": "max_tokens",
			"usage":       map[string]any{"input_tokens": 10, "output_tokens": 256},
		})
	})

	resp, err := p.Generate(context.Background(), Request{MaxTokens: 256})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.StopReason != "max_tokens" {
		t.Errorf("StopReason = %q, want max_tokens", resp.StopReason)
	}
}

func TestAnthropicGenerateRateLimited(t *testing.T) {
	p := anthropicTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`))
	})

	_, err := p.Generate(context.Background(), Request{MaxTokens: 256})
	var limited *ErrRateLimit
	if !errors.As(err, &limited) {
		t.Fatalf("err = %v, want ErrRateLimit", err)
	}
}

func TestAnthropicGenerateServerError(t *testing.T) {
	p := anthropicTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := p.Generate(context.Background(), Request{MaxTokens: 256})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestNewAnthropicProviderDefaults(t *testing.T) {
	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("NewAnthropicProvider: %v", err)
	}
	if p.ModelID() != anthropicDefaultModel {
		t.Errorf("ModelID = %q, want %q", p.ModelID(), anthropicDefaultModel)
	}

	p, err = NewAnthropicProvider(AnthropicConfig{APIKey: "sk-test", Model: "claude-sonnet-4-5"})
	if err != nil {
		t.Fatalf("NewAnthropicProvider: %v", err)
	}
	if p.ModelID() != "claude-sonnet-4-5" {
		t.Errorf("ModelID = %q, want the override", p.ModelID())
	}

	if _, err := NewAnthropicProvider(AnthropicConfig{}); err == nil {
		t.Error("expected an error without an API key")
	}
}
