package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestCompleteJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("clean JSON parses in one call", func(t *testing.T) {
		stub := NewStubClient(`{"name": "alpha", "count": 3}`)

		var out payload
		completion, err := CompleteJSON(ctx, stub, Request{Model: "m"}, &out)
		require.NoError(t, err)
		assert.Equal(t, payload{Name: "alpha", Count: 3}, out)
		assert.Len(t, stub.Requests, 1)
		assert.Equal(t, 30, completion.Usage.TotalTokens)
	})

	t.Run("code fences are stripped", func(t *testing.T) {
		stub := NewStubClient("```json\n{\"name\": \"fenced\"}\n```")

		var out payload
		_, err := CompleteJSON(ctx, stub, Request{Model: "m"}, &out)
		require.NoError(t, err)
		assert.Equal(t, "fenced", out.Name)
	})

	t.Run("malformed output triggers one repair pass", func(t *testing.T) {
		stub := NewStubClient("")
		stub.Enqueue(
			StubResponse{Text: "Here you go: name is beta"},
			StubResponse{Text: `{"name": "beta", "count": 1}`},
		)

		var out payload
		completion, err := CompleteJSON(ctx, stub, Request{Model: "m"}, &out)
		require.NoError(t, err)
		assert.Equal(t, "beta", out.Name)

		require.Len(t, stub.Requests, 2)
		assert.Contains(t, stub.Requests[1].UserPrompt, "name is beta")
		// Usage accounts for both calls.
		assert.Equal(t, 60, completion.Usage.TotalTokens)
	})

	t.Run("second malformed output fails with ErrInvalidResponse", func(t *testing.T) {
		stub := NewStubClient("still not json")

		var out payload
		completion, err := CompleteJSON(ctx, stub, Request{Model: "m"}, &out)
		require.ErrorIs(t, err, ErrInvalidResponse)
		assert.Len(t, stub.Requests, 2)

		// The failing completion comes back with the error, raw text and
		// combined usage intact.
		require.NotNil(t, completion)
		assert.Equal(t, "still not json", completion.Text)
		assert.Equal(t, 60, completion.Usage.TotalTokens)
	})

	t.Run("gateway error passes through", func(t *testing.T) {
		stub := NewStubClient("")
		stub.Enqueue(StubResponse{Err: ErrRateLimited})

		var out payload
		_, err := CompleteJSON(ctx, stub, Request{Model: "m"}, &out)
		require.ErrorIs(t, err, ErrRateLimited)
	})
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fence with language", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fence without language", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.in))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrRateLimited))
	assert.True(t, IsRetryable(ErrUnavailable))
	assert.True(t, IsRetryable(ErrTimeout))
	assert.False(t, IsRetryable(ErrProviderError))
	assert.False(t, IsRetryable(ErrInvalidResponse))
}
