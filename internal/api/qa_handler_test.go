package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragqa/ragqa-api/internal/domain"
	"github.com/ragqa/ragqa-api/internal/generation"
	"github.com/ragqa/ragqa-api/internal/qa"
	"github.com/ragqa/ragqa-api/internal/service"
)

// mockQAService records the arguments of the last call and returns
// canned values.
type mockQAService struct {
	result *qa.Result
	err    error
	info   service.DocumentInfo

	lastCount     int
	lastChunkSize int
	lastOverlap   int
	calls         int
}

func (m *mockQAService) GenerateQA(_ context.Context, count int) (*qa.Result, error) {
	m.calls++
	m.lastCount = count
	return m.result, m.err
}

func (m *mockQAService) GenerateQAChunked(_ context.Context, count, chunkSize, overlap int) (*qa.Result, error) {
	m.calls++
	m.lastCount = count
	m.lastChunkSize = chunkSize
	m.lastOverlap = overlap
	return m.result, m.err
}

func (m *mockQAService) DocumentInfo() service.DocumentInfo {
	return m.info
}

func testResult(n int) *qa.Result {
	pairs := make([]domain.QAPair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, domain.QAPair{Question: "What?", Answer: "That."})
	}
	return &qa.Result{
		Pairs:           pairs,
		RequestedCount:  n,
		ActualCount:     n,
		ChunksAttempted: 1,
	}
}

func newTestHandler(svc service.QAService) *QAHandler {
	return NewQAHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), 5)
}

func TestGenerateQASuccess(t *testing.T) {
	svc := &mockQAService{result: testResult(3)}
	h := newTestHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-qa?questions=3", nil)
	rec := httptest.NewRecorder()
	h.GenerateQA(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, svc.lastCount)

	var got qa.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got.Pairs, 3)
	assert.Equal(t, 3, got.ActualCount)
}

func TestGenerateQADefaultQuestionCount(t *testing.T) {
	svc := &mockQAService{result: testResult(5)}
	h := newTestHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-qa", nil)
	rec := httptest.NewRecorder()
	h.GenerateQA(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, svc.lastCount)
}

func TestGenerateQAParamValidation(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "questions zero", query: "questions=0"},
		{name: "questions too large", query: "questions=21"},
		{name: "questions not a number", query: "questions=abc"},
		{name: "negative overlap", query: "questions=3&overlap=-1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockQAService{result: testResult(1)}
			h := newTestHandler(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/generate-qa?"+tc.query, nil)
			rec := httptest.NewRecorder()
			h.GenerateQA(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, svc.calls, "service should not be called on invalid input")
		})
	}
}

func TestGenerateQAChunkedPassesOverrides(t *testing.T) {
	svc := &mockQAService{result: testResult(6)}
	h := newTestHandler(svc)

	req := httptest.NewRequest(http.MethodPost,
		"/api/generate-qa-chunked?questions=6&chunk_size=4000&overlap=100", nil)
	rec := httptest.NewRecorder()
	h.GenerateQAChunked(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 6, svc.lastCount)
	assert.Equal(t, 4000, svc.lastChunkSize)
	assert.Equal(t, 100, svc.lastOverlap)
}

func TestGenerateQAChunkedParamValidation(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "chunk size below minimum", query: "questions=3&chunk_size=500"},
		{name: "chunk size above maximum", query: "questions=3&chunk_size=20000"},
		{name: "overlap not below chunk size", query: "questions=3&chunk_size=2000&overlap=2000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockQAService{result: testResult(1)}
			h := newTestHandler(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/generate-qa-chunked?"+tc.query, nil)
			rec := httptest.NewRecorder()
			h.GenerateQAChunked(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, svc.calls)
		})
	}
}

func TestGenerateQAErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "configuration error",
			err:        domain.ErrConfiguration,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "timeout",
			err:        generation.ErrTimeout,
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:       "rate limited",
			err:        generation.ErrRateLimited,
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:       "unexpected failure",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockQAService{err: tc.err}
			h := newTestHandler(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/generate-qa?questions=3", nil)
			rec := httptest.NewRecorder()
			h.GenerateQA(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotContains(t, body["error"], "boom",
				"raw error must not leak to the client")
		})
	}
}

func TestDocumentInfo(t *testing.T) {
	svc := &mockQAService{info: service.DocumentInfo{
		Loaded:    true,
		Length:    12345,
		Source:    "docs/example.pdf",
		PageCount: 4,
	}}
	h := newTestHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/document-info", nil)
	rec := httptest.NewRecorder()
	h.DocumentInfo(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got service.DocumentInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, svc.info, got)
}

func TestHealth(t *testing.T) {
	svc := &mockQAService{info: service.DocumentInfo{Loaded: true}}
	h := newTestHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "healthy", got.Status)
	assert.True(t, got.DocumentLoaded)
}
