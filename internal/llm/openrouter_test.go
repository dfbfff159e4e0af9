package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewOpenRouterProviderDefaults(t *testing.T) {
	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("NewOpenRouterProvider: %v", err)
	}
	if p.ModelID() != openrouterDefaultModel {
		t.Errorf("ModelID = %q, want %q", p.ModelID(), openrouterDefaultModel)
	}

	if _, err := NewOpenRouterProvider(OpenRouterConfig{}); err == nil {
		t.Error("expected an error without an API key")
	}
}

func TestOpenRouterGenerateUsesCompatibleEndpoint(t *testing.T) {
	var gotPath string
	var gotModel string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		gotModel, _ = body["model"].(string)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":    "gen-1",
			"model": "google/gemini-2.5-flash-lite",
			"choices": []map[string]any{
				{
					"message":       map[string]any{"role": "assistant", "content": `"Multiplication is repeated addition."`},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]any{"prompt_tokens": 20, "completion_tokens": 8, "total_tokens": 28},
		})
	}))
	defer server.Close()

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-test",
		BaseURL: server.URL + "/api/v1",
	})
	if err != nil {
		t.Fatalf("NewOpenRouterProvider: %v", err)
	}

	resp, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "what is multiplication?"}},
		MaxTokens: 128,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if string(resp.Content) != `"Multiplication is repeated addition."` {
		t.Errorf("Content = %s", resp.Content)
	}
	if gotPath != "/api/v1/chat/completions" {
		t.Errorf("path = %q, want the OpenAI-compatible completions route", gotPath)
	}
	if gotModel != openrouterDefaultModel {
		t.Errorf("model = %q, want %q", gotModel, openrouterDefaultModel)
	}
}
