package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func openaiTestProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  "sk-test",
		BaseURL: server.URL + "/v1",
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}
	return p
}

func TestOpenAIGenerateTutorReply(t *testing.T) {
	var got map[string]any
	p := openaiTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":    "chatcmpl-1",
			"model": "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"message":       map[string]any{"role": "assistant", "content": `"Good catch, 56 it is."`},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 9, "total_tokens": 49},
		})
	})

	resp, err := p.Generate(context.Background(), Request{
		System: "You are a patient math tutor.",
		Messages: []Message{
			{Role: RoleUser, Content: "is 7x8 54?"},
			{Role: RoleAssistant, Content: "Not quite. Try counting by eights."},
			{Role: RoleUser, Content: "56!"},
		},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if string(resp.Content) != `"Good catch, 56 it is."` {
		t.Errorf("Content = %s", resp.Content)
	}
	if resp.Usage.TotalTokens != 49 {
		t.Errorf("TotalTokens = %d, want 49", resp.Usage.TotalTokens)
	}

	// The system prompt rides as the first chat message.
	messages, _ := got["messages"].([]any)
	if len(messages) != 4 {
		t.Fatalf("messages = %d, want 4 (system + 3 turns)", len(messages))
	}
	first, _ := messages[0].(map[string]any)
	if first["role"] != "system" {
		t.Errorf("first role = %v, want system", first["role"])
	}
}

func TestOpenAIGenerateStructuredBank(t *testing.T) {
	var got map[string]any
	p := openaiTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":    "chatcmpl-2",
			"model": "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"message": map[string]any{
						"role":    "assistant",
						"content": `{"questions":[{"prompt":"6 x 9","answer":"54","level":2}]}`,
					},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]any{"prompt_tokens": 80, "completion_tokens": 30, "total_tokens": 110},
		})
	})

	resp, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "Generate multiplication questions."}},
		Schema:    quizSchema(),
		MaxTokens: 1024,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var bank struct {
		Questions []struct {
			Prompt string `json:"prompt"`
			Answer string `json:"answer"`
		} `json:"questions"`
	}
	if err := json.Unmarshal(resp.Content, &bank); err != nil {
		t.Fatalf("unmarshal bank: %v", err)
	}
	if len(bank.Questions) != 1 || bank.Questions[0].Answer != "54" {
		t.Errorf("bank = %+v", bank)
	}

	format, _ := got["response_format"].(map[string]any)
	if format["type"] != "json_schema" {
		t.Errorf("response_format type = %v, want json_schema", format["type"])
	}
}

func TestOpenAIGenerateRejectsNonConformingBank(t *testing.T) {
	p := openaiTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":    "chatcmpl-3",
			"model": "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"message":       map[string]any{"role": "assistant", "content": `{"questions":[{"prompt":"6 x 9"}]}`},
					"finish_reason": "stop",
				},
			},
		})
	})

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "Generate multiplication questions."}},
		Schema:    quizSchema(),
		MaxTokens: 1024,
	})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestOpenAIGenerateRateLimited(t *testing.T) {
	p := openaiTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit","type":"requests"}}`))
	})

	_, err := p.Generate(context.Background(), Request{MaxTokens: 256})
	var limited *ErrRateLimit
	if !errors.As(err, &limited) {
		t.Fatalf("err = %v, want ErrRateLimit", err)
	}
}

func TestNewOpenAIProviderDefaults(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}
	if p.ModelID() != openaiDefaultModel {
		t.Errorf("ModelID = %q, want %q", p.ModelID(), openaiDefaultModel)
	}

	if _, err := NewOpenAIProvider(OpenAIConfig{}); err == nil {
		t.Error("expected an error without an API key")
	}
}
