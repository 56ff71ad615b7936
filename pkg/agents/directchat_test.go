package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/pkg/config"
	"github.com/specsmith/specsmith/pkg/llm"
	"github.com/specsmith/specsmith/pkg/masking"
	"github.com/specsmith/specsmith/pkg/models"
	"github.com/specsmith/specsmith/pkg/nlu"
	"github.com/specsmith/specsmith/pkg/services"
)

func newDirectChat(t *testing.T, w *workbench, stub *llm.StubClient) *DirectChatAgent {
	t.Helper()
	masker, err := masking.NewMasker(nil)
	require.NoError(t, err)
	nluService := nlu.NewService(stub, "test-model", &config.NLUConfig{HistorySize: 20}, nil)
	return NewDirectChatAgent(stub, "test-model", nluService, w.sessions, masker)
}

func TestDirectChatAgent_ProcessMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("operation intent re-enters the orchestrator", func(t *testing.T) {
		w := newWorkbench(t)
		stub := llm.NewStubClient("")
		stub.Enqueue(llm.StubResponse{Text: `{
			"is_operation": true,
			"operation": "resolve_conflict",
			"confidence": 0.9,
			"params": {"conflict_id": "c-42", "resolution": "keep_old"}
		}`})
		agent := newDirectChat(t, w, stub)

		var gotAgent, gotAction string
		var gotPayload Payload
		agent.SetRouter(func(ctx context.Context, identity models.Identity, agentID, action string, payload Payload) (any, error) {
			gotAgent, gotAction, gotPayload = agentID, action, payload
			return map[string]any{"resolved": true}, nil
		})

		result, err := agent.Execute(ctx, owner, ActionProcessChatMessage, Payload{
			"session_id": w.session.ID,
			"text":       "keep the old database choice",
		})
		require.NoError(t, err)

		assert.Equal(t, IDConflict, gotAgent)
		assert.Equal(t, ActionConflictResolve, gotAction)
		assert.Equal(t, "c-42", gotPayload["conflict_id"])
		assert.Equal(t, "keep_old", gotPayload["resolution"])
		// Ids the chat context knows are filled in for the routed call.
		assert.Equal(t, w.session.ID, gotPayload["session_id"])
		assert.Equal(t, w.project.ID, gotPayload["project_id"])

		intent, ok := result.Data["intent"].(models.Intent)
		require.True(t, ok)
		assert.Equal(t, models.OpResolveConflict, intent.Operation)
		routed, ok := result.Data["routed"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, routed["resolved"])

		// Routed intents leave no conversation turns behind.
		history, err := w.sessions.History(ctx, owner, w.session.ID, 10, 0)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("intent without an in-process route is returned to the caller", func(t *testing.T) {
		w := newWorkbench(t)
		stub := llm.NewStubClient("")
		stub.Enqueue(llm.StubResponse{Text: `{
			"is_operation": true,
			"operation": "export_project",
			"confidence": 0.9,
			"params": {"format": "markdown"}
		}`})
		agent := newDirectChat(t, w, stub)

		routerCalled := false
		agent.SetRouter(func(ctx context.Context, identity models.Identity, agentID, action string, payload Payload) (any, error) {
			routerCalled = true
			return nil, nil
		})

		result, err := agent.Execute(ctx, owner, ActionProcessChatMessage, Payload{
			"session_id": w.session.ID,
			"text":       "export my project as markdown please",
		})
		require.NoError(t, err)

		assert.False(t, routerCalled)
		intent, ok := result.Data["intent"].(models.Intent)
		require.True(t, ok)
		assert.True(t, intent.IsOperation)
		assert.Equal(t, models.OpExportProject, intent.Operation)
		assert.Equal(t, "markdown", intent.Params["format"])
		assert.NotContains(t, result.Data, "routed")
	})

	t.Run("conversation records both turns", func(t *testing.T) {
		w := newWorkbench(t)
		stub := llm.NewStubClient("")
		stub.Enqueue(
			llm.StubResponse{Text: `{"is_operation": false, "confidence": 1}`},
			llm.StubResponse{Text: "A good starting point is writing down who your users are."},
		)
		agent := newDirectChat(t, w, stub)

		result, err := agent.Execute(ctx, owner, ActionProcessChatMessage, Payload{
			"session_id": w.session.ID,
			"text":       "where should I even start?",
		})
		require.NoError(t, err)
		assert.Equal(t, "A good starting point is writing down who your users are.", result.Data["reply"])

		history, err := w.sessions.History(ctx, owner, w.session.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, "user", history[0].Role)
		assert.Equal(t, "assistant", history[1].Role)
	})

	t.Run("prose classification is echoed as the reply", func(t *testing.T) {
		w := newWorkbench(t)
		// The classifier answers in prose on both the parse and repair calls;
		// that prose becomes the reply without a third completion.
		stub := llm.NewStubClient("Start by writing down who your users are.")
		agent := newDirectChat(t, w, stub)

		result, err := agent.Execute(ctx, owner, ActionProcessChatMessage, Payload{
			"session_id": w.session.ID,
			"text":       "where should I even start?",
		})
		require.NoError(t, err)
		assert.Equal(t, "Start by writing down who your users are.", result.Data["reply"])
		assert.Len(t, stub.Requests, 2)

		history, err := w.sessions.History(ctx, owner, w.session.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, "Start by writing down who your users are.", history[1].Content)
	})

	t.Run("gateway failure degrades to conversation, not an error", func(t *testing.T) {
		w := newWorkbench(t)
		stub := llm.NewStubClient("")
		stub.Enqueue(
			llm.StubResponse{Err: llm.ErrUnavailable}, // intent parse degrades
			llm.StubResponse{Text: "Let me answer that directly."},
		)
		agent := newDirectChat(t, w, stub)

		result, err := agent.Execute(ctx, owner, ActionProcessChatMessage, Payload{
			"session_id": w.session.ID,
			"text":       "hello?",
		})
		require.NoError(t, err)
		assert.Equal(t, "Let me answer that directly.", result.Data["reply"])
	})

	t.Run("ended session refuses chat", func(t *testing.T) {
		w := newWorkbench(t)
		_, err := w.sessions.End(ctx, owner, w.session.ID)
		require.NoError(t, err)

		agent := newDirectChat(t, w, llm.NewStubClient(""))
		_, err = agent.Execute(ctx, owner, ActionProcessChatMessage, Payload{
			"session_id": w.session.ID,
			"text":       "anyone there?",
		})
		assert.ErrorIs(t, err, services.ErrSessionEnded)
	})
}

func TestDirectChatAgent_ToggleMode(t *testing.T) {
	ctx := context.Background()
	w := newWorkbench(t)
	agent := newDirectChat(t, w, llm.NewStubClient(""))

	result, err := agent.Execute(ctx, owner, ActionToggleMode, Payload{
		"session_id": w.session.ID,
		"mode":       "direct_chat",
	})
	require.NoError(t, err)
	assert.Equal(t, "direct_chat", result.Data["mode"])

	_, err = agent.Execute(ctx, owner, ActionToggleMode, Payload{
		"session_id": w.session.ID,
		"mode":       "lecture",
	})
	assert.True(t, services.IsValidationError(err))
}
