package qa

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ragqa/ragqa-api/internal/domain"
	"github.com/ragqa/ragqa-api/internal/generation"
	"github.com/ragqa/ragqa-api/internal/parser"
)

// SinglePass generates pairs from a whole document in one request.
// It is the simplified path for documents already known to fit a
// single request: no chunking, no retry, no dedup (one response
// cannot duplicate itself under the parser's contract).
type SinglePass struct {
	client generation.Client
	logger *slog.Logger
}

// NewSinglePass creates a single-pass generator using the given
// generation client.
func NewSinglePass(client generation.Client, logger *slog.Logger) (*SinglePass, error) {
	if client == nil {
		return nil, errors.New("generation client cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &SinglePass{client: client, logger: logger}, nil
}

// Generate issues one generation request against the full text and
// returns the parsed pairs as-is. Unlike the chunked path there is no
// fallback: a client failure is wrapped in ErrGenerationFailed and
// propagated.
func (s *SinglePass) Generate(ctx context.Context, text string, target int) (*Result, error) {
	if target <= 0 || target > MaxTarget {
		return nil, fmt.Errorf("%w: target pair count must be in 1..%d, got %d",
			domain.ErrConfiguration, MaxTarget, target)
	}
	if text == "" {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfiguration, domain.ErrEmptyDocument)
	}

	s.logger.InfoContext(ctx, "starting single-pass generation",
		"target", target,
		"text_length", len(text))

	res, err := s.client.Generate(ctx, generation.Request{Text: text, PairCount: target})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	pairs := parser.Parse(res.RawText)

	s.logger.InfoContext(ctx, "single-pass generation finished",
		"requested", target,
		"actual", len(pairs))

	return &Result{
		Pairs:           pairs,
		RequestedCount:  target,
		ActualCount:     len(pairs),
		ChunksAttempted: 1,
	}, nil
}
