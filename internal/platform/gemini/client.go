package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ragqa/ragqa-api/internal/config"
	"github.com/ragqa/ragqa-api/internal/generation"
	"google.golang.org/genai"
)

// Client implements generation.Client against the Gemini API.
type Client struct {
	logger    *slog.Logger
	client    *genai.Client
	model     string
	maxTokens int
	timeout   time.Duration
}

// New creates a Gemini-backed generation client from the LLM
// configuration.
func New(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.MaxTokens <= 0 {
		return nil, fmt.Errorf("%w: max tokens must be positive", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &Client{
		logger:    logger,
		client:    client,
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

	c.logger.DebugContext(ctx, "issuing gemini generation request",
		"model", c.model,
		"pair_count", req.PairCount,
		"prompt_length", len(prompt))

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		MaxOutputTokens: int32(c.maxTokens),
	})
	if err != nil {
		return nil, classify(err)
	}

	return &generation.Result{
		RawText: result.Text(),
		Model:   c.model,
	}, nil
}

// classify maps SDK errors onto the generation error taxonomy.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", generation.ErrTimeout, err)
	}

	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests {
			return fmt.Errorf("%w: %v", generation.ErrRateLimited, err)
		}
		return fmt.Errorf("%w: status %d: %v", generation.ErrProvider, apiErr.Code, err)
	}

	return fmt.Errorf("%w: %v", generation.ErrTransport, err)
}
