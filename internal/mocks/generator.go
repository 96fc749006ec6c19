package mocks

import (
	"context"
	"sync"

	"github.com/ragqa/ragqa-api/internal/generation"
)

// MockClient implements generation.Client for testing.
type MockClient struct {
	// GenerateFn allows test cases to mock the Generate behavior.
	GenerateFn func(ctx context.Context, req generation.Request) (*generation.Result, error)

	// Default response values used when GenerateFn is nil.
	Result *generation.Result
	Err    error

	// Call tracking for verification.
	GenerateCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Generate was called
		Count int

		// Requests contains every request passed to Generate
		Requests []generation.Request
	}
}

// Generate implements the generation.Client interface.
func (m *MockClient) Generate(ctx context.Context, req generation.Request) (*generation.Result, error) {
	m.GenerateCalls.mu.Lock()
	m.GenerateCalls.Count++
	m.GenerateCalls.Requests = append(m.GenerateCalls.Requests, req)
	m.GenerateCalls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, req)
	}
	return m.Result, m.Err
}

// NewMockClientWithRawText creates a MockClient whose every call
// returns the given completion text.
func NewMockClientWithRawText(raw string) *MockClient {
	return &MockClient{
		Result: &generation.Result{RawText: raw, Model: "mock-model"},
	}
}

// NewMockClientWithError creates a MockClient that always fails with
// the given error.
func NewMockClientWithError(err error) *MockClient {
	return &MockClient{Err: err}
}

// Reset resets the call tracking state.
func (m *MockClient) Reset() {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()

	m.GenerateCalls.Count = 0
	m.GenerateCalls.Requests = nil
}
