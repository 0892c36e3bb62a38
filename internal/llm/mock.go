package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// MockResponse is one scripted reply.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockJSON scripts a reply whose content is v encoded as JSON.
func MockJSON(v any) MockResponse {
	raw, err := json.Marshal(v)
	if err != nil {
		return MockResponse{Err: err}
	}
	return MockResponse{Content: raw}
}

// MockProvider replays a script of replies and keeps every request. A
// scripted reply goes through the same schema check as a real one. When
// the script runs out it answers with Fallback, or fails as unavailable if
// Fallback is nil.
type MockProvider struct {
	Fallback func(Request) MockResponse

	mu       sync.Mutex
	script   []MockResponse
	requests []Request
}

func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{script: script}
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	next, ok := m.next(req)
	if !ok {
		return nil, unavailable(errors.New("mock script exhausted"))
	}
	if next.Err != nil {
		return nil, next.Err
	}

	content, err := decodeContent(req.Schema, string(next.Content))
	if err != nil {
		return nil, err
	}
	usage := next.Usage
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}
	return &Response{
		Content:    content,
		Usage:      usage,
		Model:      "mock",
		StopReason: StopEnd,
	}, nil
}

func (m *MockProvider) next(req Request) (MockResponse, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	switch {
	case len(m.script) > 0:
		r := m.script[0]
		m.script = m.script[1:]
		return r, true
	case m.Fallback != nil:
		return m.Fallback(req), true
	default:
		return MockResponse{}, false
	}
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// Push appends replies to the script.
func (m *MockProvider) Push(replies ...MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, replies...)
}

// Requests returns the requests received so far, oldest first.
func (m *MockProvider) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.requests...)
}
