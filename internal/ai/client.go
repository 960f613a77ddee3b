// Package ai wraps the chat-completion API used to generate websites.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/sitesmith/sitesmith/internal/config"
)

// ErrEmptyCompletion is returned when the upstream responds without
// any usable content.
var ErrEmptyCompletion = errors.New("completion returned no content")

// Client sends composed instructions to the completion API. One call
// per generation: no retries, no streaming, no caching.
type Client struct {
	api   *openai.Client
	model string
}

// New builds a Client from config. OPENAI_BASE_URL allows pointing at
// a compatible proxy or a test server.
func New(cfg *config.Config) *Client {
	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}

	return &Client{
		api:   openai.NewClientWithConfig(clientCfg),
		model: cfg.OpenAIModel,
	}
}

// GenerateHTML submits the instruction as a single user message and
// returns the raw completion text. The caller's context bounds the
// call; there is no additional timeout here.
func (c *Client) GenerateHTML(ctx context.Context, instruction string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: instruction},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}

	return text, nil
}
