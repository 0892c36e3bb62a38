package llm

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"
)

type constructor func(ctx context.Context, cfg Config) (Provider, error)

// constructors builds the base provider for each configured name.
var constructors = map[string]constructor{
	ProviderAnthropic: func(_ context.Context, cfg Config) (Provider, error) {
		return NewAnthropicProvider(cfg.Anthropic)
	},
	ProviderOpenAI: func(_ context.Context, cfg Config) (Provider, error) {
		return NewOpenAIProvider(cfg.OpenAI)
	},
	ProviderGemini: func(ctx context.Context, cfg Config) (Provider, error) {
		return NewGeminiProvider(ctx, cfg.Gemini)
	},
	ProviderOpenRouter: func(_ context.Context, cfg Config) (Provider, error) {
		return NewOpenRouterProvider(cfg.OpenRouter)
	},
	ProviderMock: func(context.Context, Config) (Provider, error) {
		return NewMockProvider(), nil
	},
}

// Providers lists the provider names NewProvider accepts, sorted.
func Providers() []string {
	return slices.Sorted(maps.Keys(constructors))
}

// NewProvider builds the configured provider and wraps it as
// caller → retry → logging → base. A nil recorder skips persistence.
func NewProvider(ctx context.Context, cfg Config, recorder Recorder, logger *zap.Logger) (Provider, error) {
	build, ok := constructors[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown LLM provider: %q (want one of %v)", cfg.Provider, Providers())
	}
	base, err := build(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, recorder, logger)
	return WithRetry(logged, cfg.Retry, logger), nil
}
