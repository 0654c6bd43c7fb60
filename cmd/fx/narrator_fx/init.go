package narrator_fx

import (
	"context"
	"io"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"cupid/internal/config"
	"cupid/internal/services"
	"cupid/pkg/utils"
)

var Module = fx.Provide(
	ProvideNarratorClient,
	ProvideInsightService)

// ProvideNarratorClient picks the narrator backend from NARRATOR_PROVIDER.
// The "none" provider yields a nil client and insights answer 503.
func ProvideNarratorClient(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (utils.NarratorClientInterface, error) {
	narratorCfg := narratorConfig(cfg)

	client, err := utils.NewNarratorClient(narratorCfg)
	if err != nil {
		return nil, err
	}
	if client == nil {
		log.Info("narrator disabled")
		return nil, nil
	}

	log.Info("narrator initialised",
		zap.String("provider", client.Provider()),
		zap.String("model", narratorCfg.Model))
	if closer, ok := client.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error { return closer.Close() },
		})
	}
	return client, nil
}

func ProvideInsightService(
	quizService services.QuizServiceInterface,
	narrator utils.NarratorClientInterface,
	log *zap.Logger,
) services.InsightServiceInterface {
	return services.NewInsightService(quizService, narrator, log)
}

func narratorConfig(cfg *config.Config) utils.NarratorConfig {
	switch cfg.Narrator.Provider {
	case config.NarratorOpenAI:
		return utils.NarratorConfig{Provider: config.NarratorOpenAI, APIKey: cfg.Narrator.OpenAIAPIKey, Model: cfg.Narrator.OpenAIModel}
	case config.NarratorGemini:
		return utils.NarratorConfig{Provider: config.NarratorGemini, APIKey: cfg.Narrator.GeminiAPIKey, Model: cfg.Narrator.GeminiModel}
	default:
		return utils.NarratorConfig{Provider: config.NarratorNone}
	}
}
