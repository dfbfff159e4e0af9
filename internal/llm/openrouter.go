package llm

import "fmt"

const (
	openrouterDefaultModel   = "google/gemini-2.5-flash-lite"
	openrouterDefaultBaseURL = "https://openrouter.ai/api/v1"
)

// OpenRouterProvider is the OpenAI provider pointed at OpenRouter's
// compatible endpoint, with OpenRouter's model namespace as default.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting OpenRouter.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = openrouterDefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = openrouterDefaultBaseURL
	}

	inner := newOpenAICompatible(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
	})
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}
