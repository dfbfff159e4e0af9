package practice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mentorlabs/mentor/internal/llm"
	"github.com/mentorlabs/mentor/internal/profile"
)

const generatorSystemPrompt = `You are a tutor creating a bank of short practice questions.

Rules:
- Generate questions across difficulty levels 1 to 3. Level 1 is basic arithmetic, level 2 is pre-algebra and percentages, level 3 is introductory calculus.
- Use plain ASCII text for all math. Use / for fractions, * for multiplication, ^ for powers, and standard operators.
- Every question must have a single short canonical answer that can be typed in a few characters.
- Answers are compared as lowercased, whitespace-collapsed text, so keep them unambiguous: "4", "2x", "x^2 + C".
- Each question must be self-contained and answerable in under 30 seconds.
- Do not repeat prompts within the bank.`

// GenConfig controls LLM bank generation.
type GenConfig struct {
	// QuestionsPerLevel is the number of questions requested per level.
	QuestionsPerLevel int

	MaxTokens   int
	Temperature float64
}

// DefaultGenConfig returns the standard generation settings.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		QuestionsPerLevel: 5,
		MaxTokens:         2048,
		Temperature:       0.7,
	}
}

// Generator produces fresh question banks from an LLM provider. The output
// passes through the same schema validation as the embedded bank, so a bank
// the model mangles is rejected rather than served.
type Generator struct {
	provider llm.Provider
	config   GenConfig
}

// NewGenerator creates a Generator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg GenConfig) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// Generate requests a new bank tailored to the learner profile.
func (g *Generator) Generate(ctx context.Context, p profile.Profile) (*Bank, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeBankGen)

	req := llm.Request{
		System: generatorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGeneratorMessage(p, g.config)},
		},
		Schema:      bankSchema(),
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	bank, err := LoadBank(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("generated bank rejected: %w", err)
	}
	return bank, nil
}

// buildGeneratorMessage constructs the user message from the learner profile.
func buildGeneratorMessage(p profile.Profile, cfg GenConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Questions per level: %d\n", cfg.QuestionsPerLevel)
	fmt.Fprintf(&b, "Learning style: %s\n", p.LearningStyle)
	fmt.Fprintf(&b, "Language: %s\n", p.Language)
	fmt.Fprintf(&b, "Confidence: %.2f\n", p.Confidence)
	fmt.Fprintf(&b, "Motivation: %.2f\n", p.Motivation)

	b.WriteString("\nWrite prompts in the learner's language. ")
	b.WriteString("If confidence is below 0.4, favor gentler phrasing and round numbers.")

	return b.String()
}

// bankSchema exposes the bank JSON Schema in the form the provider layer
// expects for structured output.
func bankSchema() *llm.Schema {
	var def map[string]any
	// bankSchemaJSON is validated at init, so this cannot fail.
	if err := json.Unmarshal([]byte(bankSchemaJSON), &def); err != nil {
		panic(err)
	}
	return &llm.Schema{
		Name:        "question-bank",
		Description: "A bank of practice questions partitioned by difficulty level",
		Definition:  def,
	}
}
