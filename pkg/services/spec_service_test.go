package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/ent"
	"github.com/specsmith/specsmith/pkg/config"
	"github.com/specsmith/specsmith/pkg/models"
	testdb "github.com/specsmith/specsmith/test/database"
)

type specFixture struct {
	projects  *ProjectService
	specs     *SpecificationService
	conflicts *ConflictService
	project   *ent.Project
}

func newSpecFixture(t *testing.T) *specFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	specs := NewSpecificationService(client.Client, nil, nil)
	conflicts := NewConflictService(client.Client, projects, config.GetBuiltinConfig().Quality, nil)

	p, err := projects.Create(context.Background(), owner, models.CreateProjectRequest{Name: "specced"})
	require.NoError(t, err)
	return &specFixture{projects: projects, specs: specs, conflicts: conflicts, project: p}
}

func TestSpecificationService_Ingest(t *testing.T) {
	fx := newSpecFixture(t)
	ctx := context.Background()

	t.Run("clean candidates insert and update the maturity cache", func(t *testing.T) {
		result, err := fx.specs.Ingest(ctx, owner, fx.project.ID, []models.SpecCandidate{
			{Category: "tech_stack", Key: "language", Value: "Go", Confidence: 0.9},
			{Category: "goals", Key: "mission", Value: "track inventory", Confidence: 0.8},
		})
		require.NoError(t, err)
		assert.Len(t, result.NewSpecs, 2)
		assert.Empty(t, result.Conflicts)

		p, err := fx.projects.Get(ctx, owner, fx.project.ID)
		require.NoError(t, err)
		// Two categories at 1/3 coverage: 2 · 33.3…/10 ≈ 6.7.
		assert.InDelta(t, 6.7, p.MaturityScore, 0.01)
	})

	t.Run("semantically equal value no-ops", func(t *testing.T) {
		result, err := fx.specs.Ingest(ctx, owner, fx.project.ID, []models.SpecCandidate{
			{Category: "tech_stack", Key: "language", Value: "  GO "},
		})
		require.NoError(t, err)
		assert.Empty(t, result.NewSpecs)
		assert.Empty(t, result.Conflicts)

		current, err := fx.specs.ListCurrent(ctx, fx.project.ID)
		require.NoError(t, err)
		assert.Len(t, current, 2)
	})

	t.Run("contradiction opens a pending conflict and keeps the incumbent", func(t *testing.T) {
		result, err := fx.specs.Ingest(ctx, owner, fx.project.ID, []models.SpecCandidate{
			{Category: "tech_stack", Key: "language", Value: "Rust", Confidence: 0.7},
		})
		require.NoError(t, err)
		require.Len(t, result.Conflicts, 1)
		assert.Empty(t, result.NewSpecs)

		c := result.Conflicts[0]
		assert.Equal(t, models.ConflictTechnology, c.Type)
		assert.Equal(t, "Rust", c.NewValue)
		assert.Equal(t, models.ResolutionPending, c.Resolution)
		assert.Equal(t, owner.UserID, c.CreatedBy)

		// The incumbent is untouched.
		current, err := fx.specs.ListCurrent(ctx, fx.project.ID)
		require.NoError(t, err)
		for _, s := range current {
			if s.Category == "tech_stack" && s.Key == "language" {
				assert.Equal(t, "Go", s.Value)
			}
		}
	})

	t.Run("ingest touching the frozen key is blocked", func(t *testing.T) {
		_, err := fx.specs.Ingest(ctx, owner, fx.project.ID, []models.SpecCandidate{
			{Category: "tech_stack", Key: "language", Value: "Zig"},
		})
		assert.ErrorIs(t, err, ErrProjectBlocked)
	})

	t.Run("other keys stay ingestable while one is frozen", func(t *testing.T) {
		result, err := fx.specs.Ingest(ctx, owner, fx.project.ID, []models.SpecCandidate{
			{Category: "security", Key: "auth", Value: "token based"},
		})
		require.NoError(t, err)
		assert.Len(t, result.NewSpecs, 1)
	})

	t.Run("batch duplicates collapse to the highest confidence", func(t *testing.T) {
		result, err := fx.specs.Ingest(ctx, owner, fx.project.ID, []models.SpecCandidate{
			{Category: "timeline", Key: "deadline", Value: "March", Confidence: 0.9},
			{Category: "timeline", Key: "deadline", Value: "June", Confidence: 0.4},
		})
		require.NoError(t, err)
		require.Len(t, result.NewSpecs, 1)
		assert.Equal(t, "March", result.NewSpecs[0].Value)
	})

	t.Run("explicit zero confidence is stored as zero", func(t *testing.T) {
		result, err := fx.specs.Ingest(ctx, owner, fx.project.ID, []models.SpecCandidate{
			{Category: "monitoring", Key: "dashboards", Value: "none yet", Confidence: 0},
		})
		require.NoError(t, err)
		require.Len(t, result.NewSpecs, 1)
		assert.Equal(t, 0.0, result.NewSpecs[0].Confidence)
	})

	t.Run("validates candidates", func(t *testing.T) {
		_, err := fx.specs.Ingest(ctx, owner, fx.project.ID, []models.SpecCandidate{{Key: "x", Value: "y"}})
		assert.True(t, IsValidationError(err))
	})
}

func TestSpecificationService_History(t *testing.T) {
	fx := newSpecFixture(t)
	ctx := context.Background()

	_, err := fx.specs.Ingest(ctx, owner, fx.project.ID, []models.SpecCandidate{
		{Category: "tech_stack", Key: "language", Value: "Go"},
	})
	require.NoError(t, err)

	// Raise and resolve a conflict with replace to produce a second version.
	result, err := fx.specs.Ingest(ctx, owner, fx.project.ID, []models.SpecCandidate{
		{Category: "tech_stack", Key: "language", Value: "Rust"},
	})
	require.NoError(t, err)
	require.Len(t, result.Conflicts, 1)

	_, err = fx.conflicts.Resolve(ctx, owner, result.Conflicts[0].ID, models.ResolveConflictRequest{
		Resolution: models.ResolutionReplace,
	})
	require.NoError(t, err)

	history, err := fx.specs.History(ctx, fx.project.ID, "tech_stack", "language")
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Newest first: the successor is current and links its predecessor.
	assert.True(t, history[0].IsCurrent)
	assert.Equal(t, "Rust", history[0].Value)
	assert.Equal(t, history[1].ID, history[0].SupersedesID)
	assert.False(t, history[1].IsCurrent)
	assert.Equal(t, "Go", history[1].Value)
}
