package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/iqorum/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, events store.LLMEventRepo) (Provider, error) {
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

	// Wrap with middleware: caller → retry → defaults → logging → base,
	// so the logged request body shows the effective fields.
	logged := WithLogging(base, cfg.Provider, events)
	defaulted := WithDefaults(logged)
	retried := WithRetry(defaulted, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a Provider from IQORUM_* environment
// variables, falling back to auto-discovery of standard provider keys
// when no explicit configuration is present.
func NewProviderFromEnv(ctx context.Context, events store.LLMEventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, events)
}
