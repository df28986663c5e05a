package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "anthropic", "openai", "openrouter", "mock"
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout is the maximum duration for a single LLM request
	// (including retries). Zero means no client-side timeout.
	Timeout time.Duration

	// CacheSize is the number of responses kept by the request cache.
	// Zero disables caching.
	CacheSize int

	// MaxTokens is the response budget sent with every request.
	MaxTokens int
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey  string
	Model   string // Default: "claude-sonnet"
	BaseURL string // Optional. Proxy or gateway override.
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o"
	BaseURL string // Optional. Override for compatible APIs.

	// Headers are added to every request.
	Headers map[string]string
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey  string
	Model   string // Default: "gemini-2.5-flash"
	BaseURL string // Optional. Proxy or gateway override.
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.5-flash"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults. A failed call is
// surfaced to the user as is, so retries are off unless configured.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Anthropic: AnthropicConfig{
			Model: "claude-sonnet",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o",
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.5-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		CacheSize: 64,
		MaxTokens: 16384,
	}
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none
// are given) into the process environment. Variables already set win.
// Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("SYNTHETICA_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := os.Getenv("SYNTHETICA_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("SYNTHETICA_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}
	if u := os.Getenv("SYNTHETICA_ANTHROPIC_BASE_URL"); u != "" {
		cfg.Anthropic.BaseURL = u
	}

	if k := os.Getenv("SYNTHETICA_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("SYNTHETICA_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("SYNTHETICA_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("SYNTHETICA_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("SYNTHETICA_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}
	if u := os.Getenv("SYNTHETICA_GEMINI_BASE_URL"); u != "" {
		cfg.Gemini.BaseURL = u
	}

	if k := os.Getenv("SYNTHETICA_OPENROUTER_API_KEY"); k != "" {
		cfg.OpenRouter.APIKey = k
	}
	if m := os.Getenv("SYNTHETICA_OPENROUTER_MODEL"); m != "" {
		cfg.OpenRouter.Model = m
	}

	if n, err := strconv.Atoi(os.Getenv("SYNTHETICA_LLM_MAX_ATTEMPTS")); err == nil && n > 0 {
		cfg.Retry.MaxAttempts = n
	}
	if d, err := time.ParseDuration(os.Getenv("SYNTHETICA_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	if n, err := strconv.Atoi(os.Getenv("SYNTHETICA_LLM_CACHE_SIZE")); err == nil && n >= 0 {
		cfg.CacheSize = n
	}
	if n, err := strconv.Atoi(os.Getenv("SYNTHETICA_LLM_MAX_TOKENS")); err == nil && n > 0 {
		cfg.MaxTokens = n
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (Gemini, OpenAI, Anthropic, OpenRouter) and returns a Config for the
// first provider whose key is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := ConfigFromEnv()

	for _, name := range []string{"GEMINI_API_KEY", "API_KEY"} {
		if k := os.Getenv(name); k != "" {
			cfg.Provider = "gemini"
			cfg.Gemini.APIKey = k
			return cfg, true
		}
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// ResolveConfig returns the explicit SYNTHETICA_* configuration when it
// is complete and otherwise falls back to DiscoverConfig.
func ResolveConfig() (Config, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		return cfg, nil
	} else if os.Getenv("SYNTHETICA_LLM_PROVIDER") != "" {
		return Config{}, err
	}
	if d, ok := DiscoverConfig(); ok {
		return d, nil
	}
	return Config{}, fmt.Errorf("no LLM API key found: set SYNTHETICA_GEMINI_API_KEY (or GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY)")
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("SYNTHETICA_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("SYNTHETICA_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("SYNTHETICA_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("SYNTHETICA_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
