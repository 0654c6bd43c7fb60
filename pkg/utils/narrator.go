package utils

import (
	"context"
	"fmt"
	"strings"
)

// NarratorClientInterface turns a prompt into a short piece of prose.
type NarratorClientInterface interface {
	Narrate(ctx context.Context, prompt string) (string, error)
	Provider() string
}

type NarratorConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// NewNarratorClient returns nil for the "none" provider.
func NewNarratorClient(cfg NarratorConfig) (NarratorClientInterface, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "none":
		return nil, nil
	case "openai":
		return NewOpenAINarrator(cfg.APIKey, cfg.Model), nil
	case "gemini":
		client, err := NewGeminiNarrator(cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported narrator provider: %s. Use 'none', 'openai' or 'gemini'", cfg.Provider)
	}
}

func cleanNarration(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "\"")
	return strings.TrimSpace(s)
}
