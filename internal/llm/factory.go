package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/wordflash/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry and
// request logging: caller → retry → logging → base. A nil eventRepo skips
// the journal.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, logger *slog.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(ProviderOpenAI, cfg.OpenAI)
	case ProviderOpenRouter:
		or := cfg.OpenRouter
		if or.BaseURL == "" {
			or.BaseURL = defaultOpenRouterBaseURL
		}
		base, err = NewOpenAIProvider(ProviderOpenRouter, or)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, eventRepo, logger)
	return WithRetry(logged, cfg.Retry, logger), nil
}

// ErrNotConfigured is returned by NewProviderFromEnv when no provider or
// API key is set.
var ErrNotConfigured = fmt.Errorf("no LLM provider configured")

// NewProviderFromEnv resolves configuration with ConfigFromEnv and builds
// the provider.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo, logger *slog.Logger) (Provider, Config, error) {
	cfg, ok, err := ConfigFromEnv()
	if err != nil {
		return nil, Config{}, err
	}
	if !ok {
		return nil, Config{}, ErrNotConfigured
	}
	p, err := NewProvider(ctx, cfg, eventRepo, logger)
	if err != nil {
		return nil, Config{}, err
	}
	return p, cfg, nil
}
