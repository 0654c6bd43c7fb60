package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"cupid/internal/scoring"
)

const (
	PolicyBlock   = "block"
	PolicyDegrade = "degrade"

	NarratorNone   = "none"
	NarratorOpenAI = "openai"
	NarratorGemini = "gemini"
)

// Config is the process configuration. Every key can be set through the
// environment, with or without the CUPID_ prefix.
type Config struct {
	Port        string `mapstructure:"port"`
	Environment string `mapstructure:"app_env"`
	PostgresURL string `mapstructure:"postgres_url"`

	Scoring  ScoringConfig  `mapstructure:",squash"`
	Quiz     QuizConfig     `mapstructure:",squash"`
	Auth     AuthConfig     `mapstructure:",squash"`
	Narrator NarratorConfig `mapstructure:",squash"`
}

type ScoringConfig struct {
	Axes     string `mapstructure:"scoring_axes"`
	ScaleMax int    `mapstructure:"scoring_scale_max"`
}

type QuizConfig struct {
	BatchSize            int           `mapstructure:"quiz_batch_size"`
	RequireAllAnswers    bool          `mapstructure:"quiz_require_all_answers"`
	SimilarCount         int           `mapstructure:"results_similar_count"`
	PersistFailurePolicy string        `mapstructure:"persist_failure_policy"`
	CatalogCacheTTL      time.Duration `mapstructure:"catalog_cache_ttl"`
}

type AuthConfig struct {
	JWTSecret         string `mapstructure:"jwt_secret"`
	AdminEmail        string `mapstructure:"admin_email"`
	AdminPasswordHash string `mapstructure:"admin_password_hash"`
}

type NarratorConfig struct {
	Provider     string `mapstructure:"narrator_provider"`
	OpenAIAPIKey string `mapstructure:"openai_api_key"`
	OpenAIModel  string `mapstructure:"openai_model"`
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	GeminiModel  string `mapstructure:"gemini_model"`
}

var keys = map[string]any{
	"port":                     "8080",
	"app_env":                  "production",
	"postgres_url":             "",
	"scoring_axes":             "HP,WP,HF,CI",
	"scoring_scale_max":        4,
	"quiz_batch_size":          scoringBatchDefault,
	"quiz_require_all_answers": true,
	"results_similar_count":    4,
	"persist_failure_policy":   PolicyBlock,
	"catalog_cache_ttl":        5 * time.Minute,
	"jwt_secret":               "",
	"admin_email":              "",
	"admin_password_hash":      "",
	"narrator_provider":        NarratorNone,
	"openai_api_key":           "",
	"openai_model":             "gpt-4o-mini",
	"gemini_api_key":           "",
	"gemini_model":             "gemini-1.5-flash",
}

const scoringBatchDefault = 3

// Load reads an optional .env file and then the environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// a missing .env is normal outside local development
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.SetEnvPrefix("CUPID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, def := range keys {
		v.SetDefault(key, def)
		// accept both CUPID_PORT and PORT
		if err := v.BindEnv(key, "CUPID_"+strings.ToUpper(key), strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("error binding %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Narrator.Provider = strings.ToLower(strings.TrimSpace(cfg.Narrator.Provider))
	cfg.Quiz.PersistFailurePolicy = strings.ToLower(strings.TrimSpace(cfg.Quiz.PersistFailurePolicy))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := c.ScoringModel(); err != nil {
		return err
	}
	if c.Quiz.BatchSize < 1 {
		return errors.New("quiz batch size must be at least 1")
	}
	if c.Quiz.SimilarCount < 0 {
		return errors.New("results similar count must not be negative")
	}
	switch c.Quiz.PersistFailurePolicy {
	case PolicyBlock, PolicyDegrade:
	default:
		return fmt.Errorf("invalid persist failure policy: %s. Must be '%s' or '%s'", c.Quiz.PersistFailurePolicy, PolicyBlock, PolicyDegrade)
	}
	switch c.Narrator.Provider {
	case NarratorNone, "":
	case NarratorOpenAI:
		if c.Narrator.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY is required when using OpenAI narrator")
		}
	case NarratorGemini:
		if c.Narrator.GeminiAPIKey == "" {
			return errors.New("GEMINI_API_KEY is required when using Gemini narrator")
		}
	default:
		return fmt.Errorf("unsupported narrator provider: %s. Use 'none', 'openai' or 'gemini'", c.Narrator.Provider)
	}
	return nil
}

func (c *Config) ScoringModel() (scoring.Model, error) {
	return scoring.NewModel(scoring.ParseAxes(c.Scoring.Axes), c.Scoring.ScaleMax)
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}
