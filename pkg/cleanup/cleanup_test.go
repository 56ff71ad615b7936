package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/ent"
	"github.com/specsmith/specsmith/ent/session"
	"github.com/specsmith/specsmith/pkg/config"
	"github.com/specsmith/specsmith/pkg/models"
	"github.com/specsmith/specsmith/pkg/services"
	testdb "github.com/specsmith/specsmith/test/database"
)

var owner = models.Identity{UserID: "user-owner", Handle: "owner"}

func testRetentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		EndedSessionTTL:   24 * time.Hour,
		ActivityTTL:       24 * time.Hour,
		DeletedProjectTTL: 24 * time.Hour,
		SweepInterval:     time.Hour,
	}
}

type cleanupFixture struct {
	client   *ent.Client
	projects *services.ProjectService
	sessions *services.SessionService
}

func newCleanupFixture(t *testing.T) *cleanupFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	projects := services.NewProjectService(client.Client)
	return &cleanupFixture{
		client:   client.Client,
		projects: projects,
		sessions: services.NewSessionService(client.Client, projects),
	}
}

func (f *cleanupFixture) newProject(t *testing.T, name string) *ent.Project {
	t.Helper()
	p, err := f.projects.Create(context.Background(), owner, models.CreateProjectRequest{Name: name})
	require.NoError(t, err)
	return p
}

// endSessionAt ends the session and backdates its ended_at marker.
func (f *cleanupFixture) endSessionAt(t *testing.T, sessionID string, endedAt time.Time) {
	t.Helper()
	ctx := context.Background()
	_, err := f.sessions.End(ctx, owner, sessionID)
	require.NoError(t, err)
	require.NoError(t, f.client.Session.UpdateOneID(sessionID).SetEndedAt(endedAt).Exec(ctx))
}

func (f *cleanupFixture) recordActivityAt(t *testing.T, projectID string, createdAt time.Time) {
	t.Helper()
	err := f.client.ActivityLog.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetActorID(owner.UserID).
		SetActionType("project_created").
		SetEntityType("project").
		SetEntityID(projectID).
		SetDescription("created").
		SetCreatedAt(createdAt).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestSweepOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("prunes only aged ended sessions", func(t *testing.T) {
		f := newCleanupFixture(t)
		p := f.newProject(t, "inventory tracker")

		aged, err := f.sessions.Start(ctx, owner, models.StartSessionRequest{ProjectID: p.ID})
		require.NoError(t, err)
		_, err = f.sessions.AppendTurn(ctx, aged.ID, "user", "hello")
		require.NoError(t, err)
		f.endSessionAt(t, aged.ID, time.Now().Add(-48*time.Hour))

		fresh, err := f.sessions.Start(ctx, owner, models.StartSessionRequest{ProjectID: p.ID})
		require.NoError(t, err)
		f.endSessionAt(t, fresh.ID, time.Now())

		active, err := f.sessions.Start(ctx, owner, models.StartSessionRequest{ProjectID: p.ID})
		require.NoError(t, err)

		result, err := NewService(f.client, testRetentionConfig(), nil).SweepOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.EndedSessions)

		remaining, err := f.client.Session.Query().IDs(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{fresh.ID, active.ID}, remaining)

		// The aged session took its conversation turns with it.
		turns, err := f.client.ConversationTurn.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, turns)
	})

	t.Run("prunes only aged activity entries", func(t *testing.T) {
		f := newCleanupFixture(t)
		p := f.newProject(t, "inventory tracker")
		f.recordActivityAt(t, p.ID, time.Now().Add(-48*time.Hour))
		f.recordActivityAt(t, p.ID, time.Now())

		result, err := NewService(f.client, testRetentionConfig(), nil).SweepOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.ActivityEntries)

		left, err := f.client.ActivityLog.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, left)
	})

	t.Run("purges soft-deleted projects past their grace period", func(t *testing.T) {
		f := newCleanupFixture(t)

		doomed := f.newProject(t, "doomed")
		_, err := f.sessions.Start(ctx, owner, models.StartSessionRequest{ProjectID: doomed.ID})
		require.NoError(t, err)
		require.NoError(t, f.projects.Archive(ctx, owner, doomed.ID))
		require.NoError(t, f.client.Project.UpdateOneID(doomed.ID).
			SetDeletedAt(time.Now().Add(-48*time.Hour)).Exec(ctx))

		recent := f.newProject(t, "recently archived")
		require.NoError(t, f.projects.Archive(ctx, owner, recent.ID))

		kept := f.newProject(t, "alive")

		result, err := NewService(f.client, testRetentionConfig(), nil).SweepOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.PurgedProjects)

		ids, err := f.client.Project.Query().IDs(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{recent.ID, kept.ID}, ids)

		// Owned rows go with the project.
		sessions, err := f.client.Session.Query().
			Where(session.ProjectIDEQ(doomed.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, sessions)
	})

	t.Run("empty database sweeps clean", func(t *testing.T) {
		f := newCleanupFixture(t)
		result, err := NewService(f.client, testRetentionConfig(), nil).SweepOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, SweepResult{}, result)
	})
}
