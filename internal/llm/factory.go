package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/synthetica/internal/store"
	"go.uber.org/zap"
)

// Option customizes provider construction.
type Option func(*factoryOptions)

type factoryOptions struct {
	logger    *zap.Logger
	responder Responder
}

// WithLogger routes request logs to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *factoryOptions) { o.logger = logger }
}

// WithResponder answers requests for the "mock" provider. Without one the
// mock provider fails every call.
func WithResponder(fn Responder) Option {
	return func(o *factoryOptions) { o.responder = fn }
}

// NewProvider creates a Provider from configuration, wrapped with the
// request middleware: caller → timeout → retry → logging → cache → base.
// eventRepo may be nil, in which case telemetry is only logged.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, opts ...Option) (Provider, error) {
	var o factoryOptions
	for _, opt := range opts {
		opt(&o)
	}

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
		base = NewMockResponder(o.responder)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	cached, err := WithCache(base, cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	logged := WithLogging(cached, cfg.Provider, eventRepo, o.logger)
	retried := WithRetry(logged, cfg.Retry, o.logger)

	return WithTimeout(retried, cfg.Timeout), nil
}

// NewProviderFromEnv resolves configuration from the environment and
// builds the provider chain.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo, opts ...Option) (Provider, Config, error) {
	cfg, err := ResolveConfig()
	if err != nil {
		return nil, Config{}, err
	}
	p, err := NewProvider(ctx, cfg, eventRepo, opts...)
	if err != nil {
		return nil, Config{}, err
	}
	return p, cfg, nil
}
