package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/ragqa/ragqa-api/internal/api/shared"
	"github.com/ragqa/ragqa-api/internal/domain"
	"github.com/ragqa/ragqa-api/internal/generation"
	"github.com/ragqa/ragqa-api/internal/service"
)

// QAHandler handles the Q&A generation HTTP requests.
type QAHandler struct {
	qaService        service.QAService
	validator        *validator.Validate
	logger           *slog.Logger
	defaultQuestions int
}

// NewQAHandler creates a QAHandler. defaultQuestions is used when a
// request does not carry an explicit questions parameter.
func NewQAHandler(qaService service.QAService, logger *slog.Logger, defaultQuestions int) *QAHandler {
	return &QAHandler{
		qaService:        qaService,
		validator:        validator.New(),
		logger:           logger,
		defaultQuestions: defaultQuestions,
	}
}

// GenerateQA handles POST /api/generate-qa requests: a single
// generation call over the head of the document.
func (h *QAHandler) GenerateQA(w http.ResponseWriter, r *http.Request) {
	params, err := h.parseParams(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.qaService.GenerateQA(r.Context(), params.Questions)
	if err != nil {
		h.respondGenerationError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GenerateQAChunked handles POST /api/generate-qa-chunked requests:
// chunked generation across the whole document.
func (h *QAHandler) GenerateQAChunked(w http.ResponseWriter, r *http.Request) {
	params, err := h.parseParams(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.qaService.GenerateQAChunked(r.Context(), params.Questions, params.ChunkSize, params.Overlap)
	if err != nil {
		h.respondGenerationError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// DocumentInfo handles GET /api/document-info requests.
func (h *QAHandler) DocumentInfo(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.qaService.DocumentInfo())
}

// Health handles GET /health requests.
func (h *QAHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:         "healthy",
		DocumentLoaded: h.qaService.DocumentInfo().Loaded,
	})
}

// parseParams reads and validates the query parameters shared by both
// generation endpoints.
func (h *QAHandler) parseParams(r *http.Request) (*GenerateQAParams, error) {
	params := &GenerateQAParams{Questions: h.defaultQuestions}

	q := r.URL.Query()
	for name, dst := range map[string]*int{
		"questions":  &params.Questions,
		"chunk_size": &params.ChunkSize,
		"overlap":    &params.Overlap,
	} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("parameter %q must be an integer", name)
		}
		*dst = v
	}

	if err := h.validator.Struct(params); err != nil {
		return nil, fmt.Errorf("invalid parameters: questions must be 1-20, chunk_size 1000-16000, overlap >= 0")
	}
	if params.ChunkSize > 0 && params.Overlap >= params.ChunkSize {
		return nil, fmt.Errorf("overlap must be smaller than chunk_size")
	}

	return params, nil
}

// respondGenerationError maps generation and domain errors to HTTP
// status codes without leaking raw provider errors to the client.
func (h *QAHandler) respondGenerationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrConfiguration):
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			"Invalid generation parameters", err)
	case errors.Is(err, generation.ErrTimeout):
		shared.RespondWithErrorAndLog(w, r, http.StatusGatewayTimeout,
			"Generation timed out", err)
	case errors.Is(err, generation.ErrRateLimited):
		shared.RespondWithErrorAndLog(w, r, http.StatusTooManyRequests,
			"Generation provider is rate limiting requests", err)
	default:
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate Q&A pairs", err)
	}
}
