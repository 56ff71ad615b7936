package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/pkg/models"
	"github.com/specsmith/specsmith/pkg/services"
)

// openConflict seeds a spec and a disagreeing restatement, returning the
// pending conflict it opens.
func openConflict(t *testing.T, w *workbench) models.ConflictRecord {
	t.Helper()
	ctx := context.Background()

	w.seedSpec(t, "tech_stack", "database_kind", "relational")
	_, err := w.specs.Ingest(ctx, owner, w.project.ID, []models.SpecCandidate{{
		Category:   "tech_stack",
		Key:        "database_kind",
		Value:      "document store",
		Confidence: 0.8,
		Source:     models.SourceUserInput,
	}})
	require.NoError(t, err)

	pending, err := w.conflicts.List(ctx, owner, w.project.ID, true)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	return pending[0]
}

func TestConflictAgent(t *testing.T) {
	ctx := context.Background()

	t.Run("list filters to pending", func(t *testing.T) {
		w := newWorkbench(t)
		openConflict(t, w)
		agent := NewConflictAgent(w.conflicts, w.specs)

		result, err := agent.Execute(ctx, owner, ActionConflictList, Payload{
			"project_id": w.project.ID,
			"filter":     "pending",
		})
		require.NoError(t, err)

		list, ok := result.Data["conflicts"].([]models.ConflictRecord)
		require.True(t, ok)
		require.Len(t, list, 1)
		assert.Equal(t, models.ResolutionPending, list[0].Resolution)
	})

	t.Run("detail includes the contested key's history", func(t *testing.T) {
		w := newWorkbench(t)
		record := openConflict(t, w)
		agent := NewConflictAgent(w.conflicts, w.specs)

		result, err := agent.Execute(ctx, owner, ActionConflictDetail, Payload{
			"conflict_id": record.ID,
		})
		require.NoError(t, err)

		got := result.Data["conflict"].(models.ConflictRecord)
		assert.Equal(t, record.ID, got.ID)
		history, ok := result.Data["history"].([]models.SpecRecord)
		require.True(t, ok)
		require.NotEmpty(t, history)
		assert.Equal(t, "database_kind", history[0].Key)
	})

	t.Run("replace installs the challenger", func(t *testing.T) {
		w := newWorkbench(t)
		record := openConflict(t, w)
		agent := NewConflictAgent(w.conflicts, w.specs)

		result, err := agent.Execute(ctx, owner, ActionConflictResolve, Payload{
			"conflict_id": record.ID,
			"resolution":  "replace",
		})
		require.NoError(t, err)

		resolved := result.Data["conflict"].(models.ConflictRecord)
		assert.Equal(t, models.ResolutionReplace, resolved.Resolution)

		current, err := w.specs.ListCurrent(ctx, w.project.ID)
		require.NoError(t, err)
		require.Len(t, current, 1)
		assert.Equal(t, "document store", current[0].Value)
	})

	t.Run("resolving twice is a conflict error", func(t *testing.T) {
		w := newWorkbench(t)
		record := openConflict(t, w)
		agent := NewConflictAgent(w.conflicts, w.specs)

		_, err := agent.Execute(ctx, owner, ActionConflictResolve, Payload{
			"conflict_id": record.ID,
			"resolution":  "keep_old",
		})
		require.NoError(t, err)

		_, err = agent.Execute(ctx, owner, ActionConflictResolve, Payload{
			"conflict_id": record.ID,
			"resolution":  "replace",
		})
		assert.ErrorIs(t, err, services.ErrConflictResolved)
	})

	t.Run("merge requires a merged value", func(t *testing.T) {
		w := newWorkbench(t)
		record := openConflict(t, w)
		agent := NewConflictAgent(w.conflicts, w.specs)

		_, err := agent.Execute(ctx, owner, ActionConflictResolve, Payload{
			"conflict_id": record.ID,
			"resolution":  "merge",
		})
		assert.True(t, services.IsValidationError(err))

		result, err := agent.Execute(ctx, owner, ActionConflictResolve, Payload{
			"conflict_id":  record.ID,
			"resolution":   "merge",
			"merged_value": "relational primary, document store for audit events",
		})
		require.NoError(t, err)
		assert.Equal(t, models.ResolutionMerge, result.Data["conflict"].(models.ConflictRecord).Resolution)

		current, err := w.specs.ListCurrent(ctx, w.project.ID)
		require.NoError(t, err)
		require.Len(t, current, 1)
		assert.Equal(t, "relational primary, document store for audit events", current[0].Value)
	})

	t.Run("unknown action is rejected", func(t *testing.T) {
		w := newWorkbench(t)
		agent := NewConflictAgent(w.conflicts, w.specs)
		_, err := agent.Execute(ctx, owner, "escalate", Payload{})
		assert.ErrorIs(t, err, ErrUnknownAction)
	})
}
