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
)

func newContext(t *testing.T, w *workbench, stub *llm.StubClient) *ContextAgent {
	t.Helper()
	masker, err := masking.NewMasker(nil)
	require.NoError(t, err)
	return NewContextAgent(stub, "test-model", w.sessions, w.specs, masker)
}

func TestContextAgent_Extract(t *testing.T) {
	ctx := context.Background()

	t.Run("extracted candidates are ingested and the turn recorded", func(t *testing.T) {
		w := newWorkbench(t)
		stub := llm.NewStubClient(`{"specifications": [
			{"category": "tech_stack", "key": "language", "value": "Go", "confidence": 0.9},
			{"category": "timeline", "key": "launch", "value": "March", "confidence": 0.8}
		]}`)
		agent := newContext(t, w, stub)

		result, err := agent.Execute(ctx, owner, ActionExtractSpecifications, Payload{
			"session_id": w.session.ID,
			"text":       "We will build it in Go and launch in March.",
		})
		require.NoError(t, err)

		extraction, ok := result.Data["extraction"].(*models.ExtractionResult)
		require.True(t, ok)
		assert.Len(t, extraction.NewSpecs, 2)
		assert.Empty(t, extraction.Conflicts)

		current, err := w.specs.ListCurrent(ctx, w.project.ID)
		require.NoError(t, err)
		assert.Len(t, current, 2)

		history, err := w.sessions.History(ctx, owner, w.session.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "user", history[0].Role)
	})

	t.Run("disagreement with a current spec opens a conflict", func(t *testing.T) {
		w := newWorkbench(t)
		w.seedSpec(t, "tech_stack", "database_kind", "relational")

		stub := llm.NewStubClient(`{"specifications": [
			{"category": "tech_stack", "key": "database_kind", "value": "document store", "confidence": 0.8}
		]}`)
		agent := newContext(t, w, stub)

		result, err := agent.Execute(ctx, owner, ActionExtractSpecifications, Payload{
			"session_id": w.session.ID,
			"text":       "Actually a document store fits better.",
		})
		require.NoError(t, err)

		extraction := result.Data["extraction"].(*models.ExtractionResult)
		require.Len(t, extraction.Conflicts, 1)
		assert.Equal(t, models.ResolutionPending, extraction.Conflicts[0].Resolution)

		// The incumbent stays current until someone resolves the conflict.
		current, err := w.specs.ListCurrent(ctx, w.project.ID)
		require.NoError(t, err)
		require.Len(t, current, 1)
		assert.Equal(t, "relational", current[0].Value)
	})

	t.Run("nothing extractable yields an empty result", func(t *testing.T) {
		w := newWorkbench(t)
		stub := llm.NewStubClient(`{"specifications": []}`)
		agent := newContext(t, w, stub)

		result, err := agent.Execute(ctx, owner, ActionExtractSpecifications, Payload{
			"session_id": w.session.ID,
			"text":       "Hmm, let me think about that.",
		})
		require.NoError(t, err)

		extraction := result.Data["extraction"].(*models.ExtractionResult)
		assert.Empty(t, extraction.NewSpecs)
		assert.Empty(t, extraction.Conflicts)
	})

	t.Run("explicit zero confidence is kept, omitted defaults to full", func(t *testing.T) {
		w := newWorkbench(t)
		stub := llm.NewStubClient(`{"specifications": [
			{"category": "timeline", "key": "deadline", "value": "sometime in spring", "confidence": 0},
			{"category": "goals", "key": "primary_goal", "value": "track inventory"}
		]}`)
		agent := newContext(t, w, stub)

		_, err := agent.Execute(ctx, owner, ActionExtractSpecifications, Payload{
			"session_id": w.session.ID,
			"text":       "We aim to track inventory, maybe launching in spring.",
		})
		require.NoError(t, err)

		current, err := w.specs.ListCurrent(ctx, w.project.ID)
		require.NoError(t, err)
		byKey := make(map[string]float64, len(current))
		for _, s := range current {
			byKey[s.Key] = s.Confidence
		}
		assert.Equal(t, 0.0, byKey["deadline"])
		assert.Equal(t, 1.0, byKey["primary_goal"])
	})

	t.Run("incomplete entries are skipped", func(t *testing.T) {
		w := newWorkbench(t)
		stub := llm.NewStubClient(`{"specifications": [
			{"category": "goals", "key": "", "value": "something"},
			{"category": "goals", "key": "primary_goal", "value": "ship it", "confidence": 0.7}
		]}`)
		agent := newContext(t, w, stub)

		_, err := agent.Execute(ctx, owner, ActionExtractSpecifications, Payload{
			"session_id": w.session.ID,
			"text":       "The goal is to ship it.",
		})
		require.NoError(t, err)

		current, err := w.specs.ListCurrent(ctx, w.project.ID)
		require.NoError(t, err)
		require.Len(t, current, 1)
		assert.Equal(t, "primary_goal", current[0].Key)
	})
}

func TestContextAgent_MasksSecretsInPrompt(t *testing.T) {
	ctx := context.Background()
	w := newWorkbench(t)

	masker, err := masking.NewMasker(&config.MaskingConfig{Enabled: true})
	require.NoError(t, err)

	stub := llm.NewStubClient(`{"specifications": []}`)
	agent := NewContextAgent(stub, "test-model", w.sessions, w.specs, masker)

	secret := "We connect with password=hunter2 to the warehouse."
	_, err = agent.Execute(ctx, owner, ActionExtractSpecifications, Payload{
		"session_id": w.session.ID,
		"text":       secret,
	})
	require.NoError(t, err)

	require.NotEmpty(t, stub.Requests)
	prompt := stub.Requests[len(stub.Requests)-1].UserPrompt
	assert.NotContains(t, prompt, "hunter2")
	assert.Contains(t, prompt, "[MASKED]")

	// The stored conversation keeps the original utterance.
	history, err := w.sessions.History(ctx, owner, w.session.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Contains(t, history[0].Content, "hunter2")
}
