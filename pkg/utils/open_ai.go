package utils

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAINarrator struct {
	client *openai.Client
	model  string
}

func NewOpenAINarrator(apiKey, model string) *OpenAINarrator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAINarrator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (o *OpenAINarrator) Provider() string { return "openai" }

func (o *OpenAINarrator) Narrate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: narratorSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.6,
		MaxTokens:   350,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: no choices")
	}
	return cleanNarration(resp.Choices[0].Message.Content), nil
}

const narratorSystemPrompt = `You write warm, second-person personality summaries for a quiz app.
Use only the scores and archetypes you are given. Two short paragraphs, no headings, no markdown.`
