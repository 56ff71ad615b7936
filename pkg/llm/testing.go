package llm

import (
	"context"
	"sync"
)

// StubClient is a deterministic in-memory Client for tests. Responses are
// served in FIFO order; when the queue is empty, Default is returned.
type StubClient struct {
	mu sync.Mutex

	// Queued responses, consumed front to back.
	responses []StubResponse

	// Default is served when no queued response remains.
	Default StubResponse

	// Requests records every request seen, in order.
	Requests []Request
}

// StubResponse is one scripted gateway outcome.
type StubResponse struct {
	Text string
	Err  error
}

// NewStubClient creates a stub that returns text for every call.
func NewStubClient(text string) *StubClient {
	return &StubClient{Default: StubResponse{Text: text}}
}

// Enqueue appends scripted responses.
func (s *StubClient) Enqueue(responses ...StubResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses = append(s.responses, responses...)
}

// Complete serves the next scripted response.
func (s *StubClient) Complete(ctx context.Context, req Request) (*Completion, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrTimeout
	}

	s.mu.Lock()
	s.Requests = append(s.Requests, req)
	resp := s.Default
	if len(s.responses) > 0 {
		resp = s.responses[0]
		s.responses = s.responses[1:]
	}
	s.mu.Unlock()

	if resp.Err != nil {
		return nil, resp.Err
	}
	return &Completion{
		Text:  resp.Text,
		Usage: Usage{InputTokens: 10, OutputTokens: 20, TotalTokens: 30},
	}, nil
}

// Close implements Client.
func (s *StubClient) Close() error { return nil }
