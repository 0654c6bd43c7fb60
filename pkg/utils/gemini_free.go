package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiNarrator implements NarratorClientInterface using Google's Gemini models
type GeminiNarrator struct {
	client *genai.Client
	model  string
}

func NewGeminiNarrator(apiKey, model string) (*GeminiNarrator, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiNarrator{
		client: client,
		model:  model,
	}, nil
}

func (g *GeminiNarrator) Provider() string { return "gemini" }

func (g *GeminiNarrator) Narrate(ctx context.Context, prompt string) (string, error) {
	m := g.client.GenerativeModel(g.model)
	m.SystemInstruction = genai.NewUserContent(genai.Text(narratorSystemPrompt))
	m.SetTemperature(0.6)
	m.SetMaxOutputTokens(350)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini: no content")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	if b.Len() == 0 {
		return "", errors.New("gemini: no text parts")
	}
	return cleanNarration(b.String()), nil
}

func (g *GeminiNarrator) Close() error {
	return g.client.Close()
}
