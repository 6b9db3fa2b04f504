package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/postcraft-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateTextFn allows test cases to mock the GenerateText behavior
	GenerateTextFn func(ctx context.Context, req generation.Request) (string, error)

	// Default response values
	Text string
	Err  error

	mu       sync.Mutex
	requests []generation.Request
}

// GenerateText implements the generation.Generator interface
func (m *MockGenerator) GenerateText(ctx context.Context, req generation.Request) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.GenerateTextFn != nil {
		return m.GenerateTextFn(ctx, req)
	}

	return m.Text, m.Err
}

// Calls returns how many times GenerateText was called.
func (m *MockGenerator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// Requests returns a copy of every request received, in call order.
func (m *MockGenerator) Requests() []generation.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]generation.Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// LastRequest returns the most recent request, or the zero Request if none was made.
func (m *MockGenerator) LastRequest() generation.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return generation.Request{}
	}
	return m.requests[len(m.requests)-1]
}

// NewMockGeneratorWithText creates a MockGenerator that returns the specified text
func NewMockGeneratorWithText(text string) *MockGenerator {
	return &MockGenerator{
		Text: text,
	}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{
		Err: err,
	}
}

// NewEchoGenerator creates a MockGenerator that returns the prompt it was given.
// Useful for asserting that responses correspond to their own request.
func NewEchoGenerator() *MockGenerator {
	return &MockGenerator{
		GenerateTextFn: func(_ context.Context, req generation.Request) (string, error) {
			return req.Prompt, nil
		},
	}
}
