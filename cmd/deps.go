package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/synthetica/internal/i18n"
	"github.com/abhisek/synthetica/internal/llm"
	"github.com/abhisek/synthetica/internal/logging"
	"github.com/abhisek/synthetica/internal/store"
	"github.com/abhisek/synthetica/internal/synth"
)

// runtime bundles the services a command needs to talk to the model.
type runtime struct {
	store    *store.Store
	logger   *zap.Logger
	provider llm.Provider
	config   llm.Config
	client   synth.Client
	lang     i18n.Language
}

// newRuntime opens the store, builds the logger and the provider chain and
// wraps it in the gateway client.
func newRuntime(cmd *cobra.Command) (*runtime, error) {
	lang, err := resolveLanguage(cmd)
	if err != nil {
		return nil, err
	}

	logLevel, _ := cmd.Flags().GetString("log-level")
	logFile, _ := cmd.Flags().GetString("log-file")
	logger, err := logging.New(logging.Options{Path: logFile, Level: logLevel})
	if err != nil {
		return nil, err
	}

	st, err := openStore(cmd)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	ctx := cmd.Context()
	opts := []llm.Option{llm.WithLogger(logger), llm.WithResponder(synth.DemoResponder())}

	var provider llm.Provider
	var cfg llm.Config
	if demo, _ := cmd.Flags().GetBool("demo"); demo {
		cfg = llm.DefaultConfig()
		cfg.Provider = "mock"
		provider, err = llm.NewProvider(ctx, cfg, st.EventRepo(), opts...)
	} else {
		provider, cfg, err = llm.NewProviderFromEnv(ctx, st.EventRepo(), opts...)
	}
	if err != nil {
		st.Close()
		_ = logger.Sync()
		return nil, fmt.Errorf("configure model: %w\n\nRun with --demo to try the app without an API key", err)
	}

	logger.Info("runtime ready",
		zap.String("provider", cfg.Provider),
		zap.String("model", provider.ModelID()),
		zap.String("language", string(lang)),
	)

	sc := synth.DefaultConfig()
	if cfg.MaxTokens > 0 {
		sc.MaxTokens = cfg.MaxTokens
	}

	return &runtime{
		store:    st,
		logger:   logger,
		provider: provider,
		config:   cfg,
		client:   synth.New(provider, sc),
		lang:     lang,
	}, nil
}

// Close releases the store and flushes the logger.
func (r *runtime) Close() {
	if err := r.store.Close(); err != nil {
		r.logger.Warn("close store", zap.Error(err))
	}
	_ = r.logger.Sync()
}

// resolveLanguage reads --lang, then SYNTHETICA_LANG, then the default.
func resolveLanguage(cmd *cobra.Command) (i18n.Language, error) {
	v, _ := cmd.Flags().GetString("lang")
	if v == "" {
		v = os.Getenv("SYNTHETICA_LANG")
	}
	if v == "" {
		return i18n.DefaultLanguage, nil
	}
	lang, err := i18n.ParseLanguage(v)
	if err != nil {
		return "", errors.Join(err, errors.New("supported languages: en, hi"))
	}
	return lang, nil
}
