package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// Extraction is deterministic, composition is not.
const (
	extractTemperature = 0.0
	composeTemperature = 0.7
)

type OpenAIClient struct {
	client openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}, nil
}

func (c *OpenAIClient) ExtractPlaceName(ctx context.Context, query string) (string, error) {
	text, err := c.complete(ctx, extractPlaceSystemPrompt, query, extractTemperature)
	if err != nil {
		return "", fmt.Errorf("failed to extract place name: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func (c *OpenAIClient) ComposeReply(ctx context.Context, placeName, dataContext string) (string, error) {
	text, err := c.complete(ctx, composeReplySystemPrompt, buildComposeReplyUserPrompt(placeName, dataContext), composeTemperature)
	if err != nil {
		return "", fmt.Errorf("failed to compose reply: %w", err)
	}
	return text, nil
}

func (c *OpenAIClient) complete(ctx context.Context, system, user string, temperature float64) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(temperature),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
