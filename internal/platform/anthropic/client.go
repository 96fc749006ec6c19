package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/ragqa/ragqa-api/internal/config"
	"github.com/ragqa/ragqa-api/internal/generation"
)

// Client implements generation.Client against the Anthropic Messages
// API. Each Generate call is one outbound request bounded by the
// configured timeout; failures are classified, never retried here.
type Client struct {
	logger    *slog.Logger
	client    *anthropic.Client
	model     string
	maxTokens int
	timeout   time.Duration
}

// New creates an Anthropic-backed generation client from the LLM
// configuration.
func New(logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.AnthropicAPIKey == "" {
		return nil, fmt.Errorf("%w: anthropic API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.MaxTokens <= 0 {
		return nil, fmt.Errorf("%w: max tokens must be positive", generation.ErrInvalidConfig)
	}

	client := anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey))

	return &Client{
		logger:    logger,
		client:    &client,
		model:     cfg.ModelName,
		maxTokens: cfg.MaxTokens,
		timeout:   time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
	}, nil
}

// Generate submits one prompt-formatted request and returns the raw
// completion text.
func (c *Client) Generate(ctx context.Context, req generation.Request) (*generation.Result, error) {
	prompt, err := generation.BuildPrompt(req)
	if err != nil {
		return nil, err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	c.logger.DebugContext(ctx, "issuing anthropic generation request",
		"model", c.model,
		"pair_count", req.PairCount,
		"prompt_length", len(prompt))

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(c.maxTokens),
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewTextBlock(prompt),
				},
			},
		},
	})
	if err != nil {
		return nil, classify(err)
	}

	text := ""
	for _, block := range msg.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}

	return &generation.Result{
		RawText: text,
		Model:   string(msg.Model),
	}, nil
}

// classify maps SDK errors onto the generation error taxonomy.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", generation.ErrTimeout, err)
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("%w: %v", generation.ErrRateLimited, err)
		}
		return fmt.Errorf("%w: status %d: %v", generation.ErrProvider, apiErr.StatusCode, err)
	}

	// No provider response at all: connection or DNS level failure.
	return fmt.Errorf("%w: %v", generation.ErrTransport, err)
}
