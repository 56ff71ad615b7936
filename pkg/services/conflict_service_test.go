package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/pkg/config"
	"github.com/specsmith/specsmith/pkg/models"
	testdb "github.com/specsmith/specsmith/test/database"
)

type conflictFixture struct {
	projects  *ProjectService
	specs     *SpecificationService
	conflicts *ConflictService
	projectID string
}

func newConflictFixture(t *testing.T, quality *config.QualityConfig) *conflictFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	specs := NewSpecificationService(client.Client, nil, nil)
	conflicts := NewConflictService(client.Client, projects, quality, nil)

	ctx := context.Background()
	p, err := projects.Create(ctx, owner, models.CreateProjectRequest{Name: "conflicted"})
	require.NoError(t, err)

	_, err = projects.Share(ctx, owner, p.ID, models.ShareProjectRequest{UserID: editor.UserID, Role: "editor"})
	require.NoError(t, err)
	_, err = projects.Share(ctx, owner, p.ID, models.ShareProjectRequest{UserID: viewer.UserID, Role: "viewer"})
	require.NoError(t, err)

	return &conflictFixture{projects: projects, specs: specs, conflicts: conflicts, projectID: p.ID}
}

// raise seeds an incumbent for the key (if absent) and ingests a disagreeing
// value, returning the resulting pending conflict.
func (fx *conflictFixture) raise(t *testing.T, identity models.Identity, key, oldValue, newValue string) models.ConflictRecord {
	t.Helper()
	ctx := context.Background()

	_, err := fx.specs.Ingest(ctx, owner, fx.projectID, []models.SpecCandidate{
		{Category: "tech_stack", Key: key, Value: oldValue, Confidence: 0.9},
	})
	require.NoError(t, err)

	result, err := fx.specs.Ingest(ctx, identity, fx.projectID, []models.SpecCandidate{
		{Category: "tech_stack", Key: key, Value: newValue, Confidence: 0.6},
	})
	require.NoError(t, err)
	require.Len(t, result.Conflicts, 1)
	return result.Conflicts[0]
}

func (fx *conflictFixture) currentValue(t *testing.T, key string) string {
	t.Helper()
	current, err := fx.specs.ListCurrent(context.Background(), fx.projectID)
	require.NoError(t, err)
	for _, s := range current {
		if s.Category == "tech_stack" && s.Key == key {
			return s.Value
		}
	}
	return ""
}

func TestConflictService_Resolve(t *testing.T) {
	fx := newConflictFixture(t, config.GetBuiltinConfig().Quality)
	ctx := context.Background()

	t.Run("keep_old closes the conflict and leaves the incumbent", func(t *testing.T) {
		c := fx.raise(t, owner, "database", "PostgreSQL", "MySQL")

		resolved, err := fx.conflicts.Resolve(ctx, owner, c.ID, models.ResolveConflictRequest{
			Resolution: models.ResolutionKeepOld,
		})
		require.NoError(t, err)
		assert.Equal(t, models.ResolutionKeepOld, resolved.Resolution)
		assert.Equal(t, owner.UserID, resolved.Resolver)
		assert.NotNil(t, resolved.ResolvedAt)

		assert.Equal(t, "PostgreSQL", fx.currentValue(t, "database"))

		history, err := fx.specs.History(ctx, fx.projectID, "tech_stack", "database")
		require.NoError(t, err)
		assert.Len(t, history, 1)
	})

	t.Run("replace supersedes with the proposed value", func(t *testing.T) {
		c := fx.raise(t, owner, "cache", "Redis", "Memcached")

		_, err := fx.conflicts.Resolve(ctx, owner, c.ID, models.ResolveConflictRequest{
			Resolution: models.ResolutionReplace,
		})
		require.NoError(t, err)

		assert.Equal(t, "Memcached", fx.currentValue(t, "cache"))

		history, err := fx.specs.History(ctx, fx.projectID, "tech_stack", "cache")
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.True(t, history[0].IsCurrent)
		assert.Equal(t, history[1].ID, history[0].SupersedesID)
		assert.Equal(t, models.SourceExtracted, history[0].Source)
	})

	t.Run("merge supersedes with the caller's value at full confidence", func(t *testing.T) {
		c := fx.raise(t, owner, "queue", "RabbitMQ", "Kafka")

		_, err := fx.conflicts.Resolve(ctx, owner, c.ID, models.ResolveConflictRequest{
			Resolution:  models.ResolutionMerge,
			MergedValue: "Kafka for events, RabbitMQ for tasks",
		})
		require.NoError(t, err)

		assert.Equal(t, "Kafka for events, RabbitMQ for tasks", fx.currentValue(t, "queue"))

		history, err := fx.specs.History(ctx, fx.projectID, "tech_stack", "queue")
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, 1.0, history[0].Confidence)
		assert.Equal(t, models.SourceUserInput, history[0].Source)
	})

	t.Run("resolution unblocks the key for new ingests", func(t *testing.T) {
		c := fx.raise(t, owner, "search", "Elasticsearch", "OpenSearch")

		_, err := fx.specs.Ingest(ctx, owner, fx.projectID, []models.SpecCandidate{
			{Category: "tech_stack", Key: "search", Value: "Meilisearch"},
		})
		assert.ErrorIs(t, err, ErrProjectBlocked)

		_, err = fx.conflicts.Resolve(ctx, owner, c.ID, models.ResolveConflictRequest{
			Resolution: models.ResolutionKeepOld,
		})
		require.NoError(t, err)

		result, err := fx.specs.Ingest(ctx, owner, fx.projectID, []models.SpecCandidate{
			{Category: "tech_stack", Key: "search", Value: "Meilisearch"},
		})
		require.NoError(t, err)
		assert.Len(t, result.Conflicts, 1)
	})

	t.Run("resolutions are absorbing", func(t *testing.T) {
		c := fx.raise(t, owner, "runtime", "Node", "Deno")

		_, err := fx.conflicts.Resolve(ctx, owner, c.ID, models.ResolveConflictRequest{
			Resolution: models.ResolutionKeepOld,
		})
		require.NoError(t, err)

		_, err = fx.conflicts.Resolve(ctx, owner, c.ID, models.ResolveConflictRequest{
			Resolution: models.ResolutionReplace,
		})
		assert.ErrorIs(t, err, ErrConflictResolved)
	})

	t.Run("validates the request", func(t *testing.T) {
		_, err := fx.conflicts.Resolve(ctx, owner, "irrelevant", models.ResolveConflictRequest{
			Resolution: models.ResolutionPending,
		})
		assert.True(t, IsValidationError(err))

		_, err = fx.conflicts.Resolve(ctx, owner, "irrelevant", models.ResolveConflictRequest{
			Resolution: models.ResolutionMerge,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown conflict is not found", func(t *testing.T) {
		_, err := fx.conflicts.Resolve(ctx, owner, "no-such-conflict", models.ResolveConflictRequest{
			Resolution: models.ResolutionKeepOld,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestConflictService_ResolverAccess(t *testing.T) {
	t.Run("viewer cannot keep_old or replace", func(t *testing.T) {
		fx := newConflictFixture(t, config.GetBuiltinConfig().Quality)
		c := fx.raise(t, owner, "database", "PostgreSQL", "MySQL")

		_, err := fx.conflicts.Resolve(context.Background(), viewer, c.ID, models.ResolveConflictRequest{
			Resolution: models.ResolutionKeepOld,
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("creator_or_editor lets the creating viewer merge", func(t *testing.T) {
		fx := newConflictFixture(t, config.GetBuiltinConfig().Quality)
		ctx := context.Background()

		// Conflict raised by the viewer: they are the creator.
		c := fx.raise(t, viewer, "database", "PostgreSQL", "MySQL")

		_, err := fx.conflicts.Resolve(ctx, viewer, c.ID, models.ResolveConflictRequest{
			Resolution:  models.ResolutionMerge,
			MergedValue: "PostgreSQL primary, MySQL legacy",
		})
		assert.NoError(t, err)
	})

	t.Run("creator_or_editor blocks a non-creating viewer from merging", func(t *testing.T) {
		fx := newConflictFixture(t, config.GetBuiltinConfig().Quality)
		c := fx.raise(t, owner, "database", "PostgreSQL", "MySQL")

		_, err := fx.conflicts.Resolve(context.Background(), viewer, c.ID, models.ResolveConflictRequest{
			Resolution:  models.ResolutionMerge,
			MergedValue: "both",
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("any_member lets every viewer merge", func(t *testing.T) {
		fx := newConflictFixture(t, &config.QualityConfig{MergeResolvers: MergeResolversAnyMember})
		c := fx.raise(t, owner, "database", "PostgreSQL", "MySQL")

		_, err := fx.conflicts.Resolve(context.Background(), viewer, c.ID, models.ResolveConflictRequest{
			Resolution:  models.ResolutionMerge,
			MergedValue: "both",
		})
		assert.NoError(t, err)
	})

	t.Run("editor resolves everything", func(t *testing.T) {
		fx := newConflictFixture(t, config.GetBuiltinConfig().Quality)
		c := fx.raise(t, owner, "database", "PostgreSQL", "MySQL")

		_, err := fx.conflicts.Resolve(context.Background(), editor, c.ID, models.ResolveConflictRequest{
			Resolution: models.ResolutionReplace,
		})
		assert.NoError(t, err)
	})
}

func TestConflictService_List(t *testing.T) {
	fx := newConflictFixture(t, config.GetBuiltinConfig().Quality)
	ctx := context.Background()

	first := fx.raise(t, owner, "database", "PostgreSQL", "MySQL")
	second := fx.raise(t, owner, "cache", "Redis", "Memcached")

	_, err := fx.conflicts.Resolve(ctx, owner, first.ID, models.ResolveConflictRequest{
		Resolution: models.ResolutionKeepOld,
	})
	require.NoError(t, err)

	t.Run("pending filter", func(t *testing.T) {
		pending, err := fx.conflicts.List(ctx, owner, fx.projectID, true)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, second.ID, pending[0].ID)
	})

	t.Run("full list keeps resolved conflicts for audit", func(t *testing.T) {
		all, err := fx.conflicts.List(ctx, owner, fx.projectID, false)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("count pending", func(t *testing.T) {
		n, err := fx.conflicts.CountPending(ctx, fx.projectID)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("stranger cannot list", func(t *testing.T) {
		_, err := fx.conflicts.List(ctx, stranger, fx.projectID, false)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}
