package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/college-compass/internal/ai"
	"github.com/spigell/college-compass/internal/ai/gemini"
	"github.com/spigell/college-compass/internal/backend"
	"github.com/spigell/college-compass/internal/content"
	"github.com/spigell/college-compass/internal/logger"
	"github.com/spigell/college-compass/internal/secrets"
)

const (
	geminiKeyEnv    = "GEMINI_API_KEY"
	backendTokenEnv = "COLLEGE_COMPASS_BACKEND_TOKEN"
)

func newAdvisor(ctx context.Context, config *Config, log *zap.Logger) (ai.Advisor, error) {
	provider := strings.TrimSpace(strings.ToLower(config.AI.Provider))

	switch provider {
	case "", providerGemini:
		return newGeminiAdvisor(ctx, config.AI.Gemini, log)
	case providerBackend:
		return newBackendAdvisor(config.Backend, log)
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s", config.AI.Provider)
	}
}

func newGeminiAdvisor(ctx context.Context, cfg *GeminiConfig, log *zap.Logger) (ai.Advisor, error) {
	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  cfg.APIKeyFile,
		Env:   geminiKeyEnv,
		Value: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.WithAdvisor(log, providerGemini, cfg.Model).With(
		zap.Int("ai_retry_attempts", cfg.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Model, cfg.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewAdvisor(generator, logger.WithAdvisor(log, providerGemini, generator.Model()), cfg.MaxLogLength), nil
}

func newBackendAdvisor(cfg *BackendConfig, log *zap.Logger) (ai.Advisor, error) {
	var token string
	if cfg.TokenFile != "" || os.Getenv(backendTokenEnv) != "" {
		var err error
		token, err = secrets.Load(secrets.Source{
			Name: "backend token",
			File: cfg.TokenFile,
			Env:  backendTokenEnv,
		})
		if err != nil {
			return nil, err
		}
	}

	client, err := backend.New(cfg.URL, token, logger.WithAdvisor(log, providerBackend, ""))
	if err != nil {
		return nil, fmt.Errorf("%w (set backend.url or COLLEGE_COMPASS_BACKEND_URL)", err)
	}

	return client, nil
}

func newInterpreter(cfg *InterpreterConfig, log *zap.Logger) *content.Interpreter {
	opts := []content.Option{
		content.WithLogger(log),
		content.WithMaxLogLength(cfg.MaxLogLength),
	}
	if len(cfg.Fields) > 0 {
		opts = append(opts, content.WithFields(cfg.Fields...))
	}

	return content.NewInterpreter(opts...)
}
