package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ragqa/ragqa-api/internal/config"
	"github.com/ragqa/ragqa-api/internal/domain"
	"github.com/ragqa/ragqa-api/internal/generation"
	"github.com/ragqa/ragqa-api/internal/qa"
)

// QAService exposes Q&A generation over one loaded document.
type QAService interface {
	// GenerateQA runs the single-pass path: one request against the
	// document text, bounded by the single-request size budget.
	GenerateQA(ctx context.Context, count int) (*qa.Result, error)

	// GenerateQAChunked runs the chunked path. chunkSize and overlap
	// override the configured defaults when positive.
	GenerateQAChunked(ctx context.Context, count, chunkSize, overlap int) (*qa.Result, error)

	// DocumentInfo reports metadata about the loaded document.
	DocumentInfo() DocumentInfo
}

// DocumentInfo is the document metadata surfaced on the API.
type DocumentInfo struct {
	Loaded    bool   `json:"document_loaded"`
	Length    int    `json:"document_length"`
	Source    string `json:"document_path"`
	PageCount int    `json:"page_count"`
}

type qaService struct {
	doc        *domain.Document
	client     generation.Client
	logger     *slog.Logger
	chunking   config.ChunkingConfig
	generating config.GenerationConfig
}

// NewQAService creates a QAService over an already-extracted document.
// The document is read-only from here on.
func NewQAService(
	doc *domain.Document,
	client generation.Client,
	logger *slog.Logger,
	chunking config.ChunkingConfig,
	generating config.GenerationConfig,
) (QAService, error) {
	if doc == nil {
		return nil, domain.ErrNoDocument
	}
	if client == nil {
		return nil, errors.New("generation client cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &qaService{
		doc:        doc,
		client:     client,
		logger:     logger,
		chunking:   chunking,
		generating: generating,
	}, nil
}

func (s *qaService) GenerateQA(ctx context.Context, count int) (*qa.Result, error) {
	gen, err := qa.NewSinglePass(s.client, s.logger)
	if err != nil {
		return nil, err
	}

	// The single-pass path carries at most one chunk's worth of text,
	// matching what a single request can usefully cover.
	text := s.doc.Text
	if len(text) > s.chunking.MaxChunkSize {
		text = text[:s.chunking.MaxChunkSize]
	}

	return gen.Generate(ctx, text, count)
}

func (s *qaService) GenerateQAChunked(ctx context.Context, count, chunkSize, overlap int) (*qa.Result, error) {
	opts := qa.Options{
		MaxChunkSize:     s.chunking.MaxChunkSize,
		Overlap:          s.chunking.Overlap,
		MaxChunks:        s.chunking.MaxChunks,
		MaxPairsPerChunk: s.generating.MaxPairsPerChunk,
		ChunkRetries:     s.generating.ChunkRetries,
		CallDelay:        time.Duration(s.generating.CallDelayMillis) * time.Millisecond,
		MaxRetryWait:     time.Duration(s.generating.MaxRetryWaitSeconds) * time.Second,
	}
	if chunkSize > 0 {
		opts.MaxChunkSize = chunkSize
	}
	if overlap > 0 {
		opts.Overlap = overlap
	}

	orch, err := qa.NewOrchestrator(s.client, s.logger, opts)
	if err != nil {
		return nil, err
	}

	return orch.Generate(ctx, s.doc.Text, count)
}

func (s *qaService) DocumentInfo() DocumentInfo {
	return DocumentInfo{
		Loaded:    s.doc.Length() > 0,
		Length:    s.doc.Length(),
		Source:    s.doc.Source,
		PageCount: s.doc.PageCount,
	}
}
