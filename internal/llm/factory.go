package llm

import (
	"context"
	"fmt"

	"skillcheck/internal/store"
)

// NewProvider builds the generation chain from configuration:
// caller → failover → logging → backend, one logged backend per credential.
func NewProvider(ctx context.Context, cfg Config, logs store.GenerationLogRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	providers := make([]Provider, 0, len(cfg.Credentials))
	for i, cred := range cfg.Credentials {
		base, err := newBackend(ctx, cred.withDefaults())
		if err != nil {
			return nil, fmt.Errorf("initializing credential %d (%s): %w", i, cred.Provider, err)
		}
		providers = append(providers, WithLogging(base, cred.Provider, logs))
	}

	if len(providers) == 1 {
		return providers[0], nil
	}
	return NewFailover(providers, cfg.FailoverBackoff), nil
}

func newBackend(ctx context.Context, cred ProviderConfig) (Provider, error) {
	switch cred.Provider {
	case "anthropic":
		return NewAnthropicProvider(cred)
	case "openai":
		return NewOpenAIProvider(cred)
	case "openrouter":
		return NewOpenRouterProvider(cred)
	case "gemini":
		return NewGeminiProvider(ctx, cred)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", cred.Provider)
	}
}
