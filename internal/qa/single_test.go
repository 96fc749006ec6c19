package qa

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragqa/ragqa-api/internal/domain"
	"github.com/ragqa/ragqa-api/internal/generation"
	"github.com/ragqa/ragqa-api/internal/mocks"
)

func TestSinglePassGenerate(t *testing.T) {
	client := mocks.NewMockClientWithRawText(completion("doc", 3))

	gen, err := NewSinglePass(client, testLogger())
	require.NoError(t, err)

	result, err := gen.Generate(context.Background(), "short document text", 3)
	require.NoError(t, err)

	assert.Equal(t, 3, result.ActualCount)
	assert.Equal(t, 3, result.RequestedCount)
	assert.Len(t, result.Pairs, 3)
	assert.Equal(t, 1, result.ChunksAttempted)
	assert.False(t, result.Aborted)

	require.Equal(t, 1, client.GenerateCalls.Count)
	assert.Equal(t, 3, client.GenerateCalls.Requests[0].PairCount)
	assert.Equal(t, "short document text", client.GenerateCalls.Requests[0].Text)
}

func TestSinglePassValidatesInput(t *testing.T) {
	gen, err := NewSinglePass(mocks.NewMockClientWithRawText(""), testLogger())
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "text", 0)
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = gen.Generate(context.Background(), "text", MaxTarget+1)
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = gen.Generate(context.Background(), "", 5)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestSinglePassPropagatesClientFailure(t *testing.T) {
	client := mocks.NewMockClientWithError(fmt.Errorf("%w: boom", generation.ErrTransport))

	gen, err := NewSinglePass(client, testLogger())
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "text", 5)
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
}

func TestSinglePassReturnsEmptyParseAsIs(t *testing.T) {
	// No retry infrastructure here: an unparseable completion simply
	// yields zero pairs.
	client := mocks.NewMockClientWithRawText("nothing structured")

	gen, err := NewSinglePass(client, testLogger())
	require.NoError(t, err)

	result, err := gen.Generate(context.Background(), "text", 5)
	require.NoError(t, err)
	assert.Equal(t, 0, result.ActualCount)
	assert.Equal(t, 5, result.RequestedCount)
}
