package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error

	// StopReason defaults to StopEnd.
	StopReason string
}

// MockProvider is a deterministic Provider for tests and offline play.
// It returns canned responses in FIFO order, then falls back to the
// fallback function if one is set, and records all requests.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	fallback  func(Request) MockResponse
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// SetFallback installs fn to answer requests once the queue is empty.
func (m *MockProvider) SetFallback(fn func(Request) MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = fn
}

// Generate returns the next canned response, the fallback's answer, or
// ErrProviderUnavailable when neither is available.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	var resp MockResponse
	switch {
	case len(m.responses) > 0:
		resp = m.responses[0]
		m.responses = m.responses[1:]
	case m.fallback != nil:
		resp = m.fallback(req)
	default:
		return nil, &ErrProviderUnavailable{Err: errors.New("mock: no canned response")}
	}

	if resp.Err != nil {
		return nil, resp.Err
	}

	stop := resp.StopReason
	if stop == "" {
		stop = StopEnd
	}
	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: stop,
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
