package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/ent/generatedproject"
	"github.com/specsmith/specsmith/pkg/models"
	testdb "github.com/specsmith/specsmith/test/database"
)

func newGeneratedFixture(t *testing.T) (*GeneratedService, string) {
	t.Helper()
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	generated := NewGeneratedService(client.Client, projects)

	p, err := projects.Create(context.Background(), owner, models.CreateProjectRequest{Name: "generated"})
	require.NoError(t, err)
	return generated, p.ID
}

func TestGeneratedService_Enqueue(t *testing.T) {
	generated, projectID := newGeneratedFixture(t)
	ctx := context.Background()

	t.Run("versions are monotonic per project", func(t *testing.T) {
		first, err := generated.Enqueue(ctx, owner, projectID)
		require.NoError(t, err)
		second, err := generated.Enqueue(ctx, owner, projectID)
		require.NoError(t, err)

		assert.Equal(t, 1, first.Version)
		assert.Equal(t, 2, second.Version)
		assert.Equal(t, generatedproject.StatusPending, first.Status)
		assert.Equal(t, owner.UserID, first.RequestedBy)
	})

	t.Run("list comes back newest version first", func(t *testing.T) {
		runs, err := generated.List(ctx, owner, projectID)
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, 2, runs[0].Version)
	})

	t.Run("stranger cannot enqueue", func(t *testing.T) {
		_, err := generated.Enqueue(ctx, stranger, projectID)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestGeneratedService_ClaimLifecycle(t *testing.T) {
	generated, projectID := newGeneratedFixture(t)
	ctx := context.Background()

	run, err := generated.Enqueue(ctx, owner, projectID)
	require.NoError(t, err)

	t.Run("claim moves the oldest pending run to in_progress", func(t *testing.T) {
		claimed, err := generated.ClaimNext(ctx, "pod-a")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, run.ID, claimed.ID)
		assert.Equal(t, generatedproject.StatusInProgress, claimed.Status)
		assert.Equal(t, "pod-a", *claimed.PodID)
		assert.NotNil(t, claimed.StartedAt)
		assert.NotNil(t, claimed.LastHeartbeatAt)
	})

	t.Run("empty queue claims nil without error", func(t *testing.T) {
		claimed, err := generated.ClaimNext(ctx, "pod-b")
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})

	t.Run("heartbeat advances the liveness marker", func(t *testing.T) {
		before, err := generated.Get(ctx, owner, run.ID)
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		require.NoError(t, generated.Heartbeat(ctx, run.ID))

		after, err := generated.Get(ctx, owner, run.ID)
		require.NoError(t, err)
		assert.True(t, after.LastHeartbeatAt.After(*before.LastHeartbeatAt))
	})

	t.Run("complete stores artifacts and counts", func(t *testing.T) {
		err := generated.CompleteRun(ctx, run.ID, []GeneratedFileInput{
			{Path: "main.go", Content: "package main\n\nfunc main() {}\n"},
			{Path: "README.md", Content: "# generated"},
		})
		require.NoError(t, err)

		done, err := generated.Get(ctx, owner, run.ID)
		require.NoError(t, err)
		assert.Equal(t, generatedproject.StatusCompleted, done.Status)
		assert.Equal(t, 2, done.FileCount)
		assert.Equal(t, 5, done.TotalLines)
		assert.NotNil(t, done.CompletedAt)

		files, err := generated.Files(ctx, owner, run.ID)
		require.NoError(t, err)
		require.Len(t, files, 2)
		// Path order.
		assert.Equal(t, "README.md", files[0].Path)
		assert.Equal(t, 4, files[1].LineCount)
	})

	t.Run("fail records the error message", func(t *testing.T) {
		failing, err := generated.Enqueue(ctx, owner, projectID)
		require.NoError(t, err)
		claimed, err := generated.ClaimNext(ctx, "pod-a")
		require.NoError(t, err)
		require.Equal(t, failing.ID, claimed.ID)

		require.NoError(t, generated.FailRun(ctx, failing.ID, "gateway unavailable"))

		got, err := generated.Get(ctx, owner, failing.ID)
		require.NoError(t, err)
		assert.Equal(t, generatedproject.StatusFailed, got.Status)
		assert.Equal(t, "gateway unavailable", *got.ErrorMessage)
	})
}

func TestGeneratedService_RecoverOrphans(t *testing.T) {
	generated, projectID := newGeneratedFixture(t)
	ctx := context.Background()

	run, err := generated.Enqueue(ctx, owner, projectID)
	require.NoError(t, err)
	claimed, err := generated.ClaimNext(ctx, "pod-dead")
	require.NoError(t, err)
	require.Equal(t, run.ID, claimed.ID)

	t.Run("fresh heartbeat is left alone", func(t *testing.T) {
		n, err := generated.RecoverOrphans(ctx, time.Minute)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("stale heartbeat requeues the run", func(t *testing.T) {
		time.Sleep(20 * time.Millisecond)
		n, err := generated.RecoverOrphans(ctx, 10*time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		recovered, err := generated.Get(ctx, owner, run.ID)
		require.NoError(t, err)
		assert.Equal(t, generatedproject.StatusPending, recovered.Status)
		assert.Nil(t, recovered.PodID)
		assert.Nil(t, recovered.StartedAt)
		assert.Nil(t, recovered.LastHeartbeatAt)

		// And it can be claimed again.
		reclaimed, err := generated.ClaimNext(ctx, "pod-new")
		require.NoError(t, err)
		require.NotNil(t, reclaimed)
		assert.Equal(t, run.ID, reclaimed.ID)
	})
}
