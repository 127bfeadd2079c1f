package nmt

import (
	"context"
	"fmt"
	"strings"
)

// MockClient is an in-memory fake of Client for tests and for running the
// core engine without a live NMT endpoint, mirroring the teacher's
// mockProvider: identity "translation" (token-for-token echo) with an
// identity alignment, unless Responses pins a canned answer for a given
// source sentence.
type MockClient struct {
	// Responses maps a source sentence (tokens joined with a space) to a
	// canned AlignResponse, for tests that need a specific alignment.
	Responses map[string]AlignResponse

	// Calls records every request this mock has seen, for assertions.
	Calls []AlignRequest
}

// NewMockClient builds an empty MockClient.
func NewMockClient() *MockClient {
	return &MockClient{Responses: make(map[string]AlignResponse)}
}

func (m *MockClient) Align(_ context.Context, req AlignRequest) (AlignResponse, error) {
	m.Calls = append(m.Calls, req)

	key := strings.Join(req.SourceTokens, " ")
	if resp, ok := m.Responses[key]; ok {
		return resp, nil
	}

	pairs := make([]string, len(req.SourceTokens))
	for i := range req.SourceTokens {
		pairs[i] = fmt.Sprintf("%d-%d", i, i)
	}

	return AlignResponse{
		TargetTokens: append([]string(nil), req.SourceTokens...),
		Alignment:    strings.Join(pairs, " "),
	}, nil
}

func (m *MockClient) Ping(context.Context) error { return nil }
