// Package textgen wraps the OpenAI chat API behind a small prompt-in,
// text-out client.
package textgen

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const defaultModel = "gpt-4o"

// Client is a thin prompt-completion client
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a text-generation client. An empty model selects the
// default.
func NewClient(apiKey, model string) *Client {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)
	if model == "" {
		model = defaultModel
	}

	return &Client{
		client: &client,
		model:  model,
	}
}

// Complete sends a single user prompt and returns the reply text
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:       openai.ChatModel(c.model),
		Temperature: openai.Float(0.5),
		MaxTokens:   openai.Int(600),
	})
	if err != nil {
		return "", fmt.Errorf("openai completion error: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", errors.New("no response from openai")
	}
	return completion.Choices[0].Message.Content, nil
}
