package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/pkg/models"
)

func TestValuesEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		equal bool
	}{
		{"identical scalars", "PostgreSQL", "PostgreSQL", true},
		{"case insensitive", "PostgreSQL", "postgresql", true},
		{"whitespace collapsed", "  two   weeks ", "two weeks", true},
		{"different scalars", "MySQL", "PostgreSQL", false},
		{"structurally equal objects", `{"a": 1, "b": [2, 3]}`, `{"b":[2,3],"a":1}`, true},
		{"structurally different objects", `{"a": 1}`, `{"a": 2}`, false},
		{"equal arrays", `[1, 2, 3]`, `[1,2,3]`, true},
		{"reordered arrays differ", `[1, 2]`, `[2, 1]`, false},
		{"object versus scalar", `{"a": 1}`, "a: 1", false},
		{"malformed JSON compared as scalar", `{broken`, `{BROKEN`, true},
		{"empty strings equal", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, ValuesEqual(tt.a, tt.b))
		})
	}
}

func TestPlanIngest(t *testing.T) {
	current := []models.SpecRecord{
		{ID: "s1", Category: "tech_stack", Key: "language", Value: "Go", IsCurrent: true},
		{ID: "s2", Category: "tech_stack", Key: "framework", Value: "old", IsCurrent: false},
	}

	t.Run("new key inserts", func(t *testing.T) {
		decisions := PlanIngest(current, []models.SpecCandidate{
			{Category: "goals", Key: "mission", Value: "ship it"},
		})
		require.Len(t, decisions, 1)
		assert.Equal(t, ActionInsert, decisions[0].Action)
		assert.Nil(t, decisions[0].Incumbent)
	})

	t.Run("equal value no-ops against the incumbent", func(t *testing.T) {
		decisions := PlanIngest(current, []models.SpecCandidate{
			{Category: "tech_stack", Key: "language", Value: "go"},
		})
		require.Len(t, decisions, 1)
		assert.Equal(t, ActionNoOp, decisions[0].Action)
		require.NotNil(t, decisions[0].Incumbent)
		assert.Equal(t, "s1", decisions[0].Incumbent.ID)
	})

	t.Run("different value raises a conflict", func(t *testing.T) {
		decisions := PlanIngest(current, []models.SpecCandidate{
			{Category: "tech_stack", Key: "language", Value: "Rust"},
		})
		require.Len(t, decisions, 1)
		assert.Equal(t, ActionConflict, decisions[0].Action)
		assert.Equal(t, "s1", decisions[0].Incumbent.ID)
	})

	t.Run("superseded incumbents do not block inserts", func(t *testing.T) {
		decisions := PlanIngest(current, []models.SpecCandidate{
			{Category: "tech_stack", Key: "framework", Value: "new"},
		})
		require.Len(t, decisions, 1)
		assert.Equal(t, ActionInsert, decisions[0].Action)
	})

	t.Run("batch keeps highest confidence per key", func(t *testing.T) {
		decisions := PlanIngest(nil, []models.SpecCandidate{
			{Category: "timeline", Key: "deadline", Value: "March", Confidence: 0.9},
			{Category: "goals", Key: "mission", Value: "ship", Confidence: 0.8},
			{Category: "timeline", Key: "deadline", Value: "June", Confidence: 0.5},
		})
		require.Len(t, decisions, 2)
		assert.Equal(t, "March", decisions[0].Candidate.Value)
		assert.Equal(t, "ship", decisions[1].Candidate.Value)
	})

	t.Run("batch confidence ties break toward the later candidate", func(t *testing.T) {
		decisions := PlanIngest(nil, []models.SpecCandidate{
			{Category: "timeline", Key: "deadline", Value: "March", Confidence: 0.7},
			{Category: "timeline", Key: "deadline", Value: "June", Confidence: 0.7},
		})
		require.Len(t, decisions, 1)
		assert.Equal(t, "June", decisions[0].Candidate.Value)
	})
}

func TestBlockedKeys(t *testing.T) {
	now := []models.ConflictRecord{
		{Category: "tech_stack", Key: "language", Resolution: models.ResolutionPending},
		{Category: "timeline", Key: "deadline", Resolution: models.ResolutionReplace},
	}

	blocked := BlockedKeys(now)
	assert.True(t, blocked[[2]string{"tech_stack", "language"}])
	assert.False(t, blocked[[2]string{"timeline", "deadline"}])
	assert.Len(t, blocked, 1)
}
