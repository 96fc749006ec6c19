package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragqa/ragqa-api/internal/config"
	"github.com/ragqa/ragqa-api/internal/domain"
	"github.com/ragqa/ragqa-api/internal/generation"
	"github.com/ragqa/ragqa-api/internal/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testChunking() config.ChunkingConfig {
	return config.ChunkingConfig{MaxChunkSize: 4000, Overlap: 100, MaxChunks: 100}
}

func testGeneration() config.GenerationConfig {
	return config.GenerationConfig{
		DefaultPairCount: 5,
		MaxPairsPerChunk: 3,
		ChunkRetries:     1,
	}
}

func testDocument(t *testing.T, length int) *domain.Document {
	t.Helper()
	const sentence = "All work and no play makes for dull documents. "
	text := strings.Repeat(sentence, length/len(sentence)+1)[:length]
	doc, err := domain.NewDocument("docs/test.pdf", text, 2)
	require.NoError(t, err)
	return doc
}

// sequencedClient returns a unique pair on every call so dedup never
// collapses the output.
func sequencedClient() *mocks.MockClient {
	n := 0
	return &mocks.MockClient{
		GenerateFn: func(_ context.Context, req generation.Request) (*generation.Result, error) {
			var b strings.Builder
			for i := 0; i < req.PairCount; i++ {
				n++
				fmt.Fprintf(&b, "Q%d: What is fact number %d?\nA%d: Fact number %d.\n\n", i+1, n, i+1, n)
			}
			return &generation.Result{RawText: b.String(), Model: "mock-model"}, nil
		},
	}
}

func TestNewQAServiceValidation(t *testing.T) {
	doc := testDocument(t, 100)
	client := sequencedClient()

	_, err := NewQAService(nil, client, testLogger(), testChunking(), testGeneration())
	assert.ErrorIs(t, err, domain.ErrNoDocument)

	_, err = NewQAService(doc, nil, testLogger(), testChunking(), testGeneration())
	assert.Error(t, err)

	_, err = NewQAService(doc, client, nil, testChunking(), testGeneration())
	assert.Error(t, err)
}

func TestGenerateQATruncatesToSingleRequestBudget(t *testing.T) {
	doc := testDocument(t, 10000)
	client := sequencedClient()

	svc, err := NewQAService(doc, client, testLogger(), testChunking(), testGeneration())
	require.NoError(t, err)

	result, err := svc.GenerateQA(context.Background(), 3)
	require.NoError(t, err)

	assert.Len(t, result.Pairs, 3)
	assert.Equal(t, 1, result.ChunksAttempted)

	require.Equal(t, 1, client.GenerateCalls.Count)
	sent := client.GenerateCalls.Requests[0]
	assert.Len(t, sent.Text, 4000, "text beyond one chunk should be cut off")
	assert.Equal(t, 3, sent.PairCount)
}

func TestGenerateQAChunkedCoversWholeDocument(t *testing.T) {
	doc := testDocument(t, 10000)
	client := sequencedClient()

	svc, err := NewQAService(doc, client, testLogger(), testChunking(), testGeneration())
	require.NoError(t, err)

	result, err := svc.GenerateQAChunked(context.Background(), 6, 0, 0)
	require.NoError(t, err)

	assert.Len(t, result.Pairs, 6)
	assert.False(t, result.Aborted)

	for _, req := range client.GenerateCalls.Requests {
		assert.LessOrEqual(t, len(req.Text), 4000)
	}
}

func TestGenerateQAChunkedAppliesOverrides(t *testing.T) {
	doc := testDocument(t, 10000)
	client := sequencedClient()

	svc, err := NewQAService(doc, client, testLogger(), testChunking(), testGeneration())
	require.NoError(t, err)

	_, err = svc.GenerateQAChunked(context.Background(), 4, 2000, 50)
	require.NoError(t, err)

	require.NotEmpty(t, client.GenerateCalls.Requests)
	for _, req := range client.GenerateCalls.Requests {
		assert.LessOrEqual(t, len(req.Text), 2000, "override chunk size should bound every request")
	}
}

func TestGenerateQAChunkedRejectsBadOverrides(t *testing.T) {
	doc := testDocument(t, 1000)
	client := sequencedClient()

	svc, err := NewQAService(doc, client, testLogger(), testChunking(), testGeneration())
	require.NoError(t, err)

	_, err = svc.GenerateQAChunked(context.Background(), 4, 2000, 3000)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Zero(t, client.GenerateCalls.Count)
}

func TestDocumentInfoReportsMetadata(t *testing.T) {
	doc := testDocument(t, 1234)

	svc, err := NewQAService(doc, sequencedClient(), testLogger(), testChunking(), testGeneration())
	require.NoError(t, err)

	info := svc.DocumentInfo()
	assert.True(t, info.Loaded)
	assert.Equal(t, 1234, info.Length)
	assert.Equal(t, "docs/test.pdf", info.Source)
	assert.Equal(t, 2, info.PageCount)
}
