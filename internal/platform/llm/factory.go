// Package llm selects and constructs the configured generation client.
package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ragqa/ragqa-api/internal/config"
	"github.com/ragqa/ragqa-api/internal/generation"
	"github.com/ragqa/ragqa-api/internal/platform/anthropic"
	"github.com/ragqa/ragqa-api/internal/platform/gemini"
)

// NewClient constructs the generation client named by cfg.Provider.
func NewClient(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (generation.Client, error) {
	switch cfg.Provider {
	case "anthropic":
		return anthropic.New(logger, cfg)
	case "gemini":
		return gemini.New(ctx, logger, cfg)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}
