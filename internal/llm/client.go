// Package llm talks to an OpenAI-compatible chat completion endpoint.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrMissingAPIKey is returned when no API key is configured
	ErrMissingAPIKey = errors.New("LLM API key not configured")
	// ErrEmptyResponse is returned when the model produced no choices
	ErrEmptyResponse = errors.New("LLM returned no choices")
)

// Request is a single system + user prompt exchange
type Request struct {
	SystemPrompt string
	UserPrompt   string
	Model        string
	Temperature  float64
	MaxTokens    int
}

// Client completes prompts with a language model
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Options configures an OpenAIClient
type Options struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

// OpenAIClient implements Client with the OpenAI SDK. Any OpenAI-compatible
// provider (Groq included) works by pointing BaseURL at it.
type OpenAIClient struct {
	client    openai.Client
	hasAPIKey bool
	logger    *slog.Logger
}

func NewOpenAIClient(opts Options, logger *slog.Logger) *OpenAIClient {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(opts.MaxRetries),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.Timeout > 0 {
		reqOpts = append(reqOpts, option.WithRequestTimeout(opts.Timeout))
	}

	return &OpenAIClient{
		client:    openai.NewClient(reqOpts...),
		hasAPIKey: opts.APIKey != "",
		logger:    logger.With("component", "llm-client"),
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	if !c.hasAPIKey {
		return "", ErrMissingAPIKey
	}

	start := time.Now()
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.UserPrompt),
		},
		Temperature:         openai.Float(req.Temperature),
		MaxCompletionTokens: openai.Int(int64(req.MaxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	c.logger.Debug("chat completion finished",
		"model", resp.Model,
		"duration", time.Since(start),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"finish_reason", resp.Choices[0].FinishReason,
	)

	return resp.Choices[0].Message.Content, nil
}
