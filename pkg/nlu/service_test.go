package nlu

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/pkg/config"
	"github.com/specsmith/specsmith/pkg/llm"
	"github.com/specsmith/specsmith/pkg/models"
)

func newTestService(stub *llm.StubClient) *Service {
	return NewService(stub, "test-model", &config.NLUConfig{HistorySize: 5}, nil)
}

func TestParse(t *testing.T) {
	ctx := context.Background()

	t.Run("operation intent with params", func(t *testing.T) {
		stub := llm.NewStubClient(`{"is_operation": true, "operation": "create_project",
			"confidence": 0.95, "params": {"name": "inventory tracker"}}`)
		svc := newTestService(stub)

		intent := svc.Parse(ctx, "u1", "start a new project called inventory tracker")
		require.True(t, intent.IsOperation)
		assert.Equal(t, models.OpCreateProject, intent.Operation)
		assert.Equal(t, "inventory tracker", intent.Params["name"])
	})

	t.Run("conversational utterance", func(t *testing.T) {
		stub := llm.NewStubClient(`{"is_operation": false, "confidence": 0.9,
			"explanation": "general discussion"}`)
		svc := newTestService(stub)

		intent := svc.Parse(ctx, "u1", "I'm still thinking about the data model")
		assert.False(t, intent.IsOperation)
		assert.Empty(t, intent.Operation)
	})

	t.Run("gateway failure degrades to conversation", func(t *testing.T) {
		stub := llm.NewStubClient("")
		stub.Enqueue(llm.StubResponse{Err: llm.ErrProviderError})
		svc := newTestService(stub)

		intent := svc.Parse(ctx, "u1", "export the project")
		assert.False(t, intent.IsOperation)
	})

	t.Run("unknown operation degrades to conversation", func(t *testing.T) {
		stub := llm.NewStubClient(`{"is_operation": true, "operation": "launch_rocket", "confidence": 0.99}`)
		svc := newTestService(stub)

		intent := svc.Parse(ctx, "u1", "launch the rocket")
		assert.False(t, intent.IsOperation)
	})

	t.Run("low confidence degrades to conversation", func(t *testing.T) {
		stub := llm.NewStubClient(`{"is_operation": true, "operation": "export_project", "confidence": 0.3}`)
		svc := newTestService(stub)

		intent := svc.Parse(ctx, "u1", "maybe export it?")
		assert.False(t, intent.IsOperation)
	})

	t.Run("unrepairable prose is echoed as the reply", func(t *testing.T) {
		stub := llm.NewStubClient("You could begin with the project goals.")
		svc := newTestService(stub)

		intent := svc.Parse(ctx, "u1", "what now?")
		assert.False(t, intent.IsOperation)
		assert.Equal(t, "You could begin with the project goals.", intent.Response)
		// Parse plus one repair pass, nothing more.
		assert.Len(t, stub.Requests, 2)
	})

	t.Run("malformed JSON repaired by second pass", func(t *testing.T) {
		stub := llm.NewStubClient("")
		stub.Enqueue(
			llm.StubResponse{Text: "sure! here it is"},
			llm.StubResponse{Text: `{"is_operation": true, "operation": "list_projects", "confidence": 0.9}`},
		)
		svc := newTestService(stub)

		intent := svc.Parse(ctx, "u1", "show my projects")
		require.True(t, intent.IsOperation)
		assert.Equal(t, models.OpListProjects, intent.Operation)
		assert.Len(t, stub.Requests, 2)
	})

	t.Run("prompt carries prior turns but lists the utterance once", func(t *testing.T) {
		stub := llm.NewStubClient(`{"is_operation": false, "confidence": 0.9}`)
		svc := newTestService(stub)

		svc.Parse(ctx, "u1", "first message")
		svc.RecordReply("u1", "noted")
		svc.Parse(ctx, "u1", "second message")

		require.Len(t, stub.Requests, 2)
		prompt := stub.Requests[1].UserPrompt
		assert.Contains(t, prompt, "user: first message")
		assert.Contains(t, prompt, "assistant: noted")
		assert.Contains(t, prompt, "Utterance:\nsecond message")
	})

	t.Run("window is bounded across many turns", func(t *testing.T) {
		stub := llm.NewStubClient(`{"is_operation": false, "confidence": 0.9}`)
		svc := newTestService(stub)

		for i := 0; i < 20; i++ {
			svc.Parse(ctx, "u2", "message")
		}
		assert.Equal(t, 5, svc.memory.Window("u2").Len())
	})

	t.Run("forget clears history", func(t *testing.T) {
		stub := llm.NewStubClient(`{"is_operation": false, "confidence": 0.9}`)
		svc := newTestService(stub)

		svc.Parse(ctx, "u3", "remember this")
		svc.Forget("u3")
		assert.Zero(t, svc.memory.Window("u3").Len())
	})
}
