package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use. Empty means "discover
	// from well-known API key variables".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenAIConfig
	Retry      RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig holds configuration for OpenAI and OpenAI-compatible APIs.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // optional
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// DefaultConfig returns a Config using each provider's smallest model.
func DefaultConfig() Config {
	return Config{
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenAIConfig{Model: "google/gemini-2.0-flash-001", BaseURL: defaultOpenRouterBaseURL},
		Retry: RetryConfig{
			MaxAttempts: 2,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     4 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 15 * time.Second,
	}
}

// ConfigFromEnv builds a Config from WORDFLASH_* variables. When
// WORDFLASH_LLM_PROVIDER is unset the well-known vendor keys are probed
// with DiscoverConfig. ok is false when no provider could be found.
func ConfigFromEnv() (cfg Config, ok bool, err error) {
	cfg = DefaultConfig()
	cfg.Provider = os.Getenv("WORDFLASH_LLM_PROVIDER")

	vars := []struct {
		env string
		dst *string
	}{
		{"WORDFLASH_ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey},
		{"WORDFLASH_ANTHROPIC_MODEL", &cfg.Anthropic.Model},
		{"WORDFLASH_OPENAI_API_KEY", &cfg.OpenAI.APIKey},
		{"WORDFLASH_OPENAI_MODEL", &cfg.OpenAI.Model},
		{"WORDFLASH_OPENAI_BASE_URL", &cfg.OpenAI.BaseURL},
		{"WORDFLASH_GEMINI_API_KEY", &cfg.Gemini.APIKey},
		{"WORDFLASH_GEMINI_MODEL", &cfg.Gemini.Model},
		{"WORDFLASH_OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey},
		{"WORDFLASH_OPENROUTER_MODEL", &cfg.OpenRouter.Model},
	}
	for _, s := range vars {
		if v := os.Getenv(s.env); v != "" {
			*s.dst = v
		}
	}

	if v := os.Getenv("WORDFLASH_LLM_TIMEOUT"); v != "" {
		d, perr := time.ParseDuration(v)
		if perr != nil {
			return Config{}, false, fmt.Errorf("WORDFLASH_LLM_TIMEOUT=%q: %w", v, perr)
		}
		cfg.Timeout = d
	}
	if v := os.Getenv("WORDFLASH_LLM_MAX_ATTEMPTS"); v != "" {
		n, perr := strconv.Atoi(v)
		if perr != nil || n < 1 {
			return Config{}, false, fmt.Errorf("WORDFLASH_LLM_MAX_ATTEMPTS=%q: must be a positive integer", v)
		}
		cfg.Retry.MaxAttempts = n
	}

	if cfg.Provider == "" {
		discovered, found := DiscoverConfig()
		if !found {
			return cfg, false, nil
		}
		discovered.Retry = cfg.Retry
		discovered.Timeout = cfg.Timeout
		return discovered, true, nil
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, false, err
	}
	return cfg, true, nil
}

// DiscoverConfig probes standard API key env vars in priority order
// (Anthropic, OpenAI, Gemini, OpenRouter) and returns a Config for the
// first provider whose key is found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = ProviderGemini
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	var key, env string
	switch c.Provider {
	case ProviderAnthropic:
		key, env = c.Anthropic.APIKey, "WORDFLASH_ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		key, env = c.OpenAI.APIKey, "WORDFLASH_OPENAI_API_KEY"
	case ProviderGemini:
		key, env = c.Gemini.APIKey, "WORDFLASH_GEMINI_API_KEY"
	case ProviderOpenRouter:
		key, env = c.OpenRouter.APIKey, "WORDFLASH_OPENROUTER_API_KEY"
	case ProviderMock:
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", env, c.Provider)
	}
	return nil
}
