package practice

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mentorlabs/mentor/internal/llm"
	"github.com/mentorlabs/mentor/internal/profile"
)

const validBankJSON = `{"questions":[
	{"prompt":"What is 4+4?","answer":"8","level":1},
	{"prompt":"Solve for x: 3x=9","answer":"3","level":2},
	{"prompt":"Derivative of 5x is?","answer":"5","level":3}
]}`

func TestGeneratorProducesBank(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validBankJSON)},
	)
	g := NewGenerator(mock, DefaultGenConfig())

	bank, err := g.Generate(context.Background(), profile.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bank.Size() != 3 {
		t.Errorf("Size = %d, want 3", bank.Size())
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "question-bank" {
		t.Errorf("request schema = %+v, want question-bank", req.Schema)
	}
	if req.System == "" {
		t.Error("request has no system prompt")
	}
}

func TestGeneratorPromptCarriesProfile(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validBankJSON)},
	)
	g := NewGenerator(mock, DefaultGenConfig())

	p := profile.Default()
	p.LearningStyle = profile.StyleVisual
	p.Language = "es"

	if _, err := g.Generate(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "visual") {
		t.Errorf("prompt does not mention learning style: %q", msg)
	}
	if !strings.Contains(msg, "es") {
		t.Errorf("prompt does not mention language: %q", msg)
	}
}

func TestGeneratorRejectsIncompleteBank(t *testing.T) {
	// Schema-valid but missing level 3 entirely.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"questions":[
			{"prompt":"a","answer":"1","level":1},
			{"prompt":"b","answer":"2","level":1},
			{"prompt":"c","answer":"3","level":2}
		]}`)},
	)
	g := NewGenerator(mock, DefaultGenConfig())

	if _, err := g.Generate(context.Background(), profile.Default()); err == nil {
		t.Fatal("expected error for bank missing a level")
	}
}

func TestGeneratorPropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := NewGenerator(mock, DefaultGenConfig())

	if _, err := g.Generate(context.Background(), profile.Default()); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}
