package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiSchemaTranslation(t *testing.T) {
	schema := geminiSchema(quizSchema().Definition)

	if schema.Type != genai.TypeObject {
		t.Errorf("Type = %v, want OBJECT", schema.Type)
	}
	if len(schema.Required) != 1 || schema.Required[0] != "questions" {
		t.Errorf("Required = %v, want [questions]", schema.Required)
	}

	questions, ok := schema.Properties["questions"]
	if !ok {
		t.Fatal("missing questions property")
	}
	if questions.Type != genai.TypeArray {
		t.Errorf("questions.Type = %v, want ARRAY", questions.Type)
	}

	item := questions.Items
	if item == nil {
		t.Fatal("missing array items schema")
	}
	if item.Properties["prompt"].Type != genai.TypeString {
		t.Errorf("prompt.Type = %v, want STRING", item.Properties["prompt"].Type)
	}
	if item.Properties["level"].Type != genai.TypeInteger {
		t.Errorf("level.Type = %v, want INTEGER", item.Properties["level"].Type)
	}
}

func TestGeminiSchemaEnumValues(t *testing.T) {
	schema := geminiSchema(map[string]any{
		"type": "string",
		"enum": []any{"visual", "audio", "game", "text", "mixed"},
	})

	if schema.Type != genai.TypeString {
		t.Errorf("Type = %v, want STRING", schema.Type)
	}
	if len(schema.Enum) != 5 || schema.Enum[0] != "visual" {
		t.Errorf("Enum = %v", schema.Enum)
	}
}

func TestGeminiSchemaUnknownTypeFallsBackToString(t *testing.T) {
	schema := geminiSchema(map[string]any{"type": "null"})
	if schema.Type != genai.TypeString {
		t.Errorf("Type = %v, want STRING fallback", schema.Type)
	}
}

func TestGeminiTurnRoles(t *testing.T) {
	turns := geminiTurns([]Message{
		{Role: RoleUser, Content: "is 7x8 54?"},
		{Role: RoleAssistant, Content: "Not quite."},
	})

	if len(turns) != 2 {
		t.Fatalf("turns = %d, want 2", len(turns))
	}
	if turns[0].Role != "user" {
		t.Errorf("turns[0].Role = %q, want user", turns[0].Role)
	}
	// Gemini calls the assistant side "model".
	if turns[1].Role != "model" {
		t.Errorf("turns[1].Role = %q, want model", turns[1].Role)
	}
}
