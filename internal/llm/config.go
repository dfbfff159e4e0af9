package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the model provider behind the tutor and
// the bank generator.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration
}

// AnthropicConfig configures the Anthropic provider. An empty Model
// picks the provider's default.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig configures the OpenAI provider. BaseURL points the SDK
// at any OpenAI-compatible endpoint.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig configures the Gemini provider.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// OpenRouterConfig configures the OpenRouter provider.
type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig shapes the backoff loop around transient failures.
type RetryConfig struct {
	// Attempts is the total number of tries, first call included.
	Attempts int

	// BaseDelay is the wait before the first retry.
	BaseDelay time.Duration

	// MaxDelay caps the grown delay.
	MaxDelay time.Duration

	// Growth multiplies the delay after each failed attempt.
	Growth float64
}

// DefaultConfig returns the baseline configuration. Model fields are
// left empty so each provider applies its own default.
func DefaultConfig() Config {
	return Config{
		Provider: "anthropic",
		Retry: RetryConfig{
			Attempts:  3,
			BaseDelay: time.Second,
			MaxDelay:  10 * time.Second,
			Growth:    2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// envOr returns the environment variable's value, or fallback when it
// is unset or empty.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ConfigFromEnv builds a Config from the MENTOR_* environment
// variables, falling back to defaults for anything unset.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	cfg.Provider = envOr("MENTOR_LLM_PROVIDER", cfg.Provider)

	cfg.Anthropic.APIKey = os.Getenv("MENTOR_ANTHROPIC_API_KEY")
	cfg.Anthropic.Model = os.Getenv("MENTOR_ANTHROPIC_MODEL")

	cfg.OpenAI.APIKey = os.Getenv("MENTOR_OPENAI_API_KEY")
	cfg.OpenAI.Model = os.Getenv("MENTOR_OPENAI_MODEL")
	cfg.OpenAI.BaseURL = os.Getenv("MENTOR_OPENAI_BASE_URL")

	cfg.Gemini.APIKey = os.Getenv("MENTOR_GEMINI_API_KEY")
	cfg.Gemini.Model = os.Getenv("MENTOR_GEMINI_MODEL")

	cfg.OpenRouter.APIKey = os.Getenv("MENTOR_OPENROUTER_API_KEY")
	cfg.OpenRouter.Model = os.Getenv("MENTOR_OPENROUTER_MODEL")

	return cfg
}

// DiscoverConfig checks the conventional API key variables when no
// provider was chosen explicitly. Priority order: Gemini, OpenAI,
// Anthropic, OpenRouter. The second return is false when no key is set.
func DiscoverConfig() (Config, bool) {
	candidates := []struct {
		env      string
		provider string
		assign   func(*Config, string)
	}{
		{"GEMINI_API_KEY", "gemini", func(c *Config, k string) { c.Gemini.APIKey = k }},
		{"OPENAI_API_KEY", "openai", func(c *Config, k string) { c.OpenAI.APIKey = k }},
		{"ANTHROPIC_API_KEY", "anthropic", func(c *Config, k string) { c.Anthropic.APIKey = k }},
		{"OPENROUTER_API_KEY", "openrouter", func(c *Config, k string) { c.OpenRouter.APIKey = k }},
	}

	for _, cand := range candidates {
		if k := os.Getenv(cand.env); k != "" {
			cfg := DefaultConfig()
			cfg.Provider = cand.provider
			cand.assign(&cfg, k)
			return cfg, true
		}
	}

	return Config{}, false
}

// Validate checks that the selected provider has its API key set.
func (c Config) Validate() error {
	keys := map[string]string{
		"anthropic":  c.Anthropic.APIKey,
		"openai":     c.OpenAI.APIKey,
		"gemini":     c.Gemini.APIKey,
		"openrouter": c.OpenRouter.APIKey,
	}

	key, known := keys[c.Provider]
	if !known {
		if c.Provider == "mock" {
			return nil
		}
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("MENTOR_%s_API_KEY is required for the %s provider",
			providerEnvName(c.Provider), c.Provider)
	}
	return nil
}

func providerEnvName(provider string) string {
	switch provider {
	case "anthropic":
		return "ANTHROPIC"
	case "openai":
		return "OPENAI"
	case "gemini":
		return "GEMINI"
	default:
		return "OPENROUTER"
	}
}
