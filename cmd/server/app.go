package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ragqa/ragqa-api/internal/config"
	"github.com/ragqa/ragqa-api/internal/domain"
	"github.com/ragqa/ragqa-api/internal/generation"
	"github.com/ragqa/ragqa-api/internal/platform/llm"
	"github.com/ragqa/ragqa-api/internal/platform/logger"
	"github.com/ragqa/ragqa-api/internal/platform/pdf"
	"github.com/ragqa/ragqa-api/internal/service"
)

// application holds the long-lived dependencies of the server.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	document  *domain.Document
	client    generation.Client
	qaService service.QAService
}

// newApplication loads configuration and wires every dependency in
// order: logger, document, LLM client, service. It fails fast on the
// first component that cannot be built.
func newApplication(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.ModelName,
		"document_path", cfg.Document.Path)

	if cfg.Document.CreateExample {
		if err := pdf.EnsureExample(cfg.Document.Path); err != nil {
			return nil, fmt.Errorf("failed to create example document: %w", err)
		}
	}

	doc, err := pdf.Extract(cfg.Document.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	log.Info("document loaded",
		"path", doc.Source,
		"pages", doc.PageCount,
		"characters", doc.Length())

	client, err := llm.NewClient(ctx, log, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	qaService, err := service.NewQAService(doc, client, log, cfg.Chunking, cfg.Generation)
	if err != nil {
		return nil, fmt.Errorf("failed to create QA service: %w", err)
	}

	return &application{
		config:    cfg,
		logger:    log,
		document:  doc,
		client:    client,
		qaService: qaService,
	}, nil
}
