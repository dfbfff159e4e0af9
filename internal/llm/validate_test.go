package llm

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func quizSchema() *Schema {
	return &Schema{
		Name:        "practice-quiz",
		Description: "A short batch of practice questions.",
		Definition: map[string]any{
			"type":     "object",
			"required": []any{"questions"},
			"properties": map[string]any{
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []any{"prompt", "answer", "level"},
						"properties": map[string]any{
							"prompt": map[string]any{"type": "string"},
							"answer": map[string]any{"type": "string"},
							"level":  map[string]any{"type": "integer", "minimum": 1.0, "maximum": 3.0},
						},
					},
				},
			},
		},
	}
}

func TestEnforceSchemaAcceptsConformingBank(t *testing.T) {
	bank := json.RawMessage(`{
		"questions": [
			{"prompt": "7 x 8", "answer": "56", "level": 2}
		]
	}`)

	if err := enforceSchema(quizSchema(), bank); err != nil {
		t.Fatalf("enforceSchema: %v", err)
	}
}

func TestEnforceSchemaRejectsMissingField(t *testing.T) {
	bank := json.RawMessage(`{
		"questions": [
			{"prompt": "7 x 8", "level": 2}
		]
	}`)

	err := enforceSchema(quizSchema(), bank)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
	if !strings.Contains(err.Error(), "practice-quiz") {
		t.Errorf("error should name the schema: %v", err)
	}
}

func TestEnforceSchemaRejectsOutOfRangeLevel(t *testing.T) {
	bank := json.RawMessage(`{
		"questions": [
			{"prompt": "7 x 8", "answer": "56", "level": 9}
		]
	}`)

	err := enforceSchema(quizSchema(), bank)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestEnforceSchemaRejectsNonJSON(t *testing.T) {
	reply := json.RawMessage("Sure! Here are some questions:\n1. 7 x 8")

	err := enforceSchema(quizSchema(), reply)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
	if string(invalid.Content) != string(reply) {
		t.Error("expected the offending output carried on the error")
	}
}

func TestEnforceSchemaNilSchemaIsFreeForm(t *testing.T) {
	if err := enforceSchema(nil, json.RawMessage("not even json")); err != nil {
		t.Fatalf("enforceSchema(nil) = %v, want nil", err)
	}
}

func TestCompileSchemaIsCached(t *testing.T) {
	schema := quizSchema()

	first, err := compileSchema(schema)
	if err != nil {
		t.Fatalf("compileSchema: %v", err)
	}
	second, err := compileSchema(schema)
	if err != nil {
		t.Fatalf("compileSchema: %v", err)
	}
	if first != second {
		t.Error("expected the cached compiled schema on the second call")
	}
}
