package llm

// ModelCost is USD pricing per one million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost totals the USD cost for the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns pricing for a model ID, or nil when the model is
// not in the table. `mentor llm stats` shows "n/a" for unknown models.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	return nil
}

// modelCosts covers the default model of each provider plus the near
// alternatives a MENTOR_*_MODEL override is likely to name.
// Prices from models.dev, checked 2026-02-15.
var modelCosts = map[string]ModelCost{
	// Anthropic
	"claude-haiku-4-5":           {1, 5},
	"claude-haiku-4-5-20251001":  {1, 5},
	"claude-sonnet-4-5":          {3, 15},
	"claude-sonnet-4-5-20250929": {3, 15},
	"claude-opus-4-5":            {5, 25},

	// OpenAI
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4o":       {2.5, 10},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-5-mini":   {0.25, 2},

	// Gemini
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.0-flash":      {0.1, 0.4},

	// OpenRouter routes to the same models under prefixed IDs.
	"google/gemini-2.5-flash-lite": {0.1, 0.4},
	"google/gemini-2.5-flash":      {0.3, 2.5},
	"openai/gpt-4o-mini":           {0.15, 0.6},
	"anthropic/claude-haiku-4.5":   {1, 5},
}
