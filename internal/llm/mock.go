package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// Responder computes a response from the request. It is consulted when the
// canned queue is empty.
type Responder func(req Request) MockResponse

// MockProvider is a deterministic Provider for tests and offline use.
// It returns canned responses in FIFO order and records all requests.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	responder Responder
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// NewMockResponder creates a MockProvider that answers every request with fn.
func NewMockResponder(fn Responder) *MockProvider {
	return &MockProvider{responder: fn}
}

// Generate returns the next canned response, then falls back to the
// responder, and finally to ErrProviderUnavailable.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)

	var resp MockResponse
	switch {
	case len(m.responses) > 0:
		resp = m.responses[0]
		m.responses = m.responses[1:]
	case m.responder != nil:
		fn := m.responder
		m.mu.Unlock()
		resp = fn(req)
		m.mu.Lock()
	default:
		m.mu.Unlock()
		return nil, &ErrProviderUnavailable{Err: nil}
	}
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}

	content := resp.Content
	if req.Schema != nil {
		content = StripCodeFence(content)
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
	}

	return &Response{
		Content:    content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
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

// LastCall returns the most recent request.
func (m *MockProvider) LastCall() (Request, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return Request{}, false
	}
	return m.Calls[len(m.Calls)-1], true
}
