package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestMockProviderServesResponsesInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`"Nice try — walk me through 7×8 again."`)},
		MockResponse{Content: json.RawMessage(`"Exactly. Streak of three!"`)},
	)

	first, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "is 7x8 54?"}},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(first.Content) != `"Nice try — walk me through 7×8 again."` {
		t.Errorf("first reply = %s", first.Content)
	}

	second, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "56!"}},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(second.Content) != `"Exactly. Streak of three!"` {
		t.Errorf("second reply = %s", second.Content)
	}

	if mock.CallCount() != 2 {
		t.Errorf("CallCount = %d, want 2", mock.CallCount())
	}
	if got := mock.Calls[1].Messages[0].Content; got != "56!" {
		t.Errorf("recorded request = %q, want %q", got, "56!")
	}
}

func TestMockProviderExhaustedReportsUnavailable(t *testing.T) {
	mock := NewMockProvider()

	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestMockProviderReturnsCannedError(t *testing.T) {
	want := &ErrRateLimit{RetryAfter: time.Second}
	mock := NewMockProvider(MockResponse{Err: want})

	_, err := mock.Generate(context.Background(), Request{})
	var limited *ErrRateLimit
	if !errors.As(err, &limited) {
		t.Fatalf("err = %v, want ErrRateLimit", err)
	}
}

func TestMockProviderRecordsPurposes(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`"ok"`)},
		MockResponse{Content: json.RawMessage(`{"questions":[]}`)},
	)

	ctx := WithPurpose(context.Background(), PurposeTutorChat)
	if _, err := mock.Generate(ctx, Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	ctx = WithPurpose(context.Background(), PurposeBankGen)
	if _, err := mock.Generate(ctx, Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(mock.Purposes) != 2 || mock.Purposes[0] != "tutor-chat" || mock.Purposes[1] != "bank-gen" {
		t.Errorf("Purposes = %v, want [tutor-chat bank-gen]", mock.Purposes)
	}
}

func TestPurposeFromDefaultsToUnknown(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("PurposeFrom = %q, want %q", got, "unknown")
	}
	ctx := WithPurpose(context.Background(), PurposeBankGen)
	if got := PurposeFrom(ctx); got != "bank-gen" {
		t.Errorf("PurposeFrom = %q, want %q", got, "bank-gen")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"openrouter with key", Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk-test"}}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "llama-at-home"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("MENTOR_LLM_PROVIDER", "gemini")
	t.Setenv("MENTOR_GEMINI_API_KEY", "test-key")
	t.Setenv("MENTOR_GEMINI_MODEL", "gemini-2.5-flash")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "test-key" || cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Gemini config = %+v", cfg.Gemini)
	}
	if cfg.Retry.Attempts != 3 {
		t.Errorf("Retry.Attempts = %d, want default 3", cfg.Retry.Attempts)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gk")
	t.Setenv("OPENAI_API_KEY", "ok")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected a discovered config")
	}
	// Gemini wins when both keys are set.
	if cfg.Provider != "gemini" || cfg.Gemini.APIKey != "gk" {
		t.Errorf("discovered = %q %+v, want gemini", cfg.Provider, cfg.Gemini)
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	// 1M input + 1M output at $0.15/$0.60.
	if got := c.Cost(1_000_000, 1_000_000); got != 0.75 {
		t.Errorf("Cost = %v, want 0.75", got)
	}

	if LookupCost("made-up-model") != nil {
		t.Error("expected nil pricing for an unknown model")
	}
}
