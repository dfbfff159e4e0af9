package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/mentorlabs/mentor/internal/store"
)

// NewProviderFromEnv builds a provider from MENTOR_* environment
// variables. Without an explicit MENTOR_LLM_PROVIDER, the conventional
// provider key variables are probed instead.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	explicit := os.Getenv("MENTOR_LLM_PROVIDER") != ""
	cfg := ConfigFromEnv()

	if err := cfg.Validate(); err != nil {
		if explicit {
			return nil, err
		}
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no LLM provider configured: set MENTOR_LLM_PROVIDER or a provider API key")
		}
		cfg = discovered
	}

	return NewProvider(ctx, cfg, eventRepo)
}

// NewProvider creates the configured provider wrapped in logging and
// retry middleware: caller → retry → logging → provider.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, cfg.Provider, eventRepo), cfg.Retry), nil
}
