package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/pkg/llm"
	"github.com/specsmith/specsmith/pkg/models"
	"github.com/specsmith/specsmith/pkg/services"
)

func newSocratic(w *workbench, stub *llm.StubClient) *SocraticAgent {
	return NewSocraticAgent(stub, "test-model", w.sessions, w.specs, w.questions)
}

func TestSocraticAgent_GenerateQuestion(t *testing.T) {
	ctx := context.Background()

	t.Run("targets the least covered category", func(t *testing.T) {
		w := newWorkbench(t)
		stub := llm.NewStubClient(`{"question": "What problem should this project solve for its users?"}`)
		agent := newSocratic(w, stub)

		result, err := agent.Execute(ctx, owner, ActionGenerateQuestion, Payload{"session_id": w.session.ID})
		require.NoError(t, err)
		require.True(t, result.Success)

		// With no specifications at all, the fixed category order decides.
		assert.Equal(t, "goals", result.Data["category"])
		assert.Equal(t, "product manager", result.Data["role"])
		assert.Equal(t, "What problem should this project solve for its users?", result.Data["text"])
	})

	t.Run("covered category yields to an uncovered one", func(t *testing.T) {
		w := newWorkbench(t)
		w.seedSpec(t, "goals", "primary_goal", "track inventory across warehouses")
		stub := llm.NewStubClient(`{"question": "Which constraints matter most?"}`)
		agent := newSocratic(w, stub)

		result, err := agent.Execute(ctx, owner, ActionGenerateQuestion, Payload{"session_id": w.session.ID})
		require.NoError(t, err)
		assert.Equal(t, "requirements", result.Data["category"])
	})

	t.Run("explicit category is honored", func(t *testing.T) {
		w := newWorkbench(t)
		stub := llm.NewStubClient(`{"question": "How will you verify the system behaves correctly?"}`)
		agent := newSocratic(w, stub)

		result, err := agent.Execute(ctx, owner, ActionGenerateQuestion, Payload{
			"session_id": w.session.ID,
			"category":   "testing",
		})
		require.NoError(t, err)
		assert.Equal(t, "testing", result.Data["category"])
		assert.Equal(t, "QA engineer", result.Data["role"])
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		w := newWorkbench(t)
		agent := newSocratic(w, llm.NewStubClient(`{"question": "x"}`))

		_, err := agent.Execute(ctx, owner, ActionGenerateQuestion, Payload{
			"session_id": w.session.ID,
			"category":   "astrology",
		})
		assert.True(t, IsMissingParameter(err))
	})

	t.Run("ended session refuses generation", func(t *testing.T) {
		w := newWorkbench(t)
		_, err := w.sessions.End(ctx, owner, w.session.ID)
		require.NoError(t, err)

		agent := newSocratic(w, llm.NewStubClient(`{"question": "x"}`))
		_, err = agent.Execute(ctx, owner, ActionGenerateQuestion, Payload{"session_id": w.session.ID})
		assert.ErrorIs(t, err, services.ErrSessionEnded)
	})

	t.Run("empty draft is an invalid response", func(t *testing.T) {
		w := newWorkbench(t)
		agent := newSocratic(w, llm.NewStubClient(`{"question": "  "}`))

		_, err := agent.Execute(ctx, owner, ActionGenerateQuestion, Payload{"session_id": w.session.ID})
		assert.ErrorIs(t, err, llm.ErrInvalidResponse)
	})
}

func TestSocraticAgent_FinalizePersistsOnlyOnce(t *testing.T) {
	ctx := context.Background()
	w := newWorkbench(t)
	stub := llm.NewStubClient(`{"question": "What does success look like six months in?"}`)
	agent := newSocratic(w, stub)

	result, err := agent.Execute(ctx, owner, ActionGenerateQuestion, Payload{"session_id": w.session.ID})
	require.NoError(t, err)

	// Drafting writes nothing.
	recent, err := w.questions.RecentForSession(ctx, w.session.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, recent)

	final, err := agent.Finalize(ctx, owner, ActionGenerateQuestion, result,
		models.PostValidation{Approved: true, QualityScore: 0.95}, 1)
	require.NoError(t, err)

	view, ok := final.Data["question"].(*models.QuestionResponse)
	require.True(t, ok)
	assert.Equal(t, 0.95, view.QualityScore)
	assert.Equal(t, 1, view.Regenerations)
	assert.True(t, view.Approved)

	recent, err = w.questions.RecentForSession(ctx, w.session.ID, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "What does success look like six months in?", recent[0].Text)
}

func TestSocraticAgent_Batch(t *testing.T) {
	ctx := context.Background()
	w := newWorkbench(t)
	stub := llm.NewStubClient("")
	stub.Enqueue(
		llm.StubResponse{Text: `{"question": "What outcome matters most?"}`},
		llm.StubResponse{Text: `{"question": "Which constraints are fixed?"}`},
		llm.StubResponse{Text: `{"question": "What shapes your platform choices?"}`},
	)
	agent := newSocratic(w, stub)

	result, err := agent.Execute(ctx, owner, ActionGenerateQuestionsBatch, Payload{
		"session_id": w.session.ID,
		"count":      3,
	})
	require.NoError(t, err)

	drafts, ok := result.Data["questions"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, drafts, 3)

	// Batch picks categories in ascending coverage, fixed order on ties.
	assert.Equal(t, "goals", drafts[0]["category"])
	assert.Equal(t, "requirements", drafts[1]["category"])
	assert.Equal(t, "tech_stack", drafts[2]["category"])

	final, err := agent.Finalize(ctx, owner, ActionGenerateQuestionsBatch, result,
		models.PostValidation{Approved: true, QualityScore: 1}, 0)
	require.NoError(t, err)
	views, ok := final.Data["questions"].([]*models.QuestionResponse)
	require.True(t, ok)
	assert.Len(t, views, 3)

	saved, err := w.questions.RecentForSession(ctx, w.session.ID, 10)
	require.NoError(t, err)
	assert.Len(t, saved, 3)
}
