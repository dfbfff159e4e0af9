package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single seam between Mentor and a hosted model. Two
// callers exist: the tutor chat, which sends the running transcript and
// reads back prose, and the bank generator, which sends one user turn
// with a Schema and reads back a validated question bank.
type Provider interface {
	// Generate performs one round trip. With req.Schema set, the returned
	// Content is JSON that has already passed schema validation; without
	// it, Content is the reply text wrapped as a JSON string.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports which model this provider targets.
	ModelID() string
}

// Request is one prompt for the model.
type Request struct {
	// System frames the model's role. The tutor derives it from the
	// learner profile; bank generation uses a fixed instruction.
	System string

	// Messages is the conversation so far, oldest first. Bank generation
	// sends exactly one user turn.
	Messages []Message

	// Schema, when set, demands structured output conforming to it.
	Schema *Schema

	// MaxTokens caps the reply length.
	MaxTokens int

	// Temperature in [0,1]. Zero (the default) keeps replies stable,
	// which matters for bank generation.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role marks who spoke a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema for structured output. Providers feed it to
// whatever native mechanism they have (tool schema, response format,
// typed schema) and the result is validated locally either way.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "question-bank".
	Name string

	// Description tells the model what the object represents.
	Description string

	// Definition is the schema as a parsed JSON object.
	Definition map[string]any
}

// Response is one model reply.
type Response struct {
	// Content is validated JSON when the request carried a Schema, or
	// the reply text as a JSON string otherwise.
	Content json.RawMessage

	// Usage is what the request cost in tokens.
	Usage Usage

	// Model is the model that actually answered, which may be a more
	// specific ID than the one requested.
	Model string

	// StopReason is normalized across providers: "end" or "max_tokens".
	StopReason string
}

// Usage is the token accounting for a single round trip. It feeds the
// request event log behind `mentor llm stats`.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
