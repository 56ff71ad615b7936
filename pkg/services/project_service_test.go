package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/pkg/models"
	testdb "github.com/specsmith/specsmith/test/database"
)

var (
	owner    = models.Identity{UserID: "user-owner", Handle: "owner"}
	editor   = models.Identity{UserID: "user-editor", Handle: "editor"}
	viewer   = models.Identity{UserID: "user-viewer", Handle: "viewer"}
	stranger = models.Identity{UserID: "user-stranger", Handle: "stranger"}
	admin    = models.Identity{UserID: "user-admin", Handle: "admin", IsAdmin: true}
)

func TestProjectService_CreateAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	ctx := context.Background()

	t.Run("creates project in discovery at zero maturity", func(t *testing.T) {
		p, err := projects.Create(ctx, owner, models.CreateProjectRequest{Name: "inventory", Description: "stock tracking"})
		require.NoError(t, err)
		assert.Equal(t, "discovery", string(p.CurrentPhase))
		assert.Zero(t, p.MaturityScore)
		assert.Equal(t, owner.UserID, p.OwnerID)
	})

	t.Run("validates name required", func(t *testing.T) {
		_, err := projects.Create(ctx, owner, models.CreateProjectRequest{})
		assert.True(t, IsValidationError(err))
	})

	t.Run("stranger cannot see the project", func(t *testing.T) {
		p, err := projects.Create(ctx, owner, models.CreateProjectRequest{Name: "private"})
		require.NoError(t, err)

		_, err = projects.Get(ctx, stranger, p.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin sees everything", func(t *testing.T) {
		p, err := projects.Create(ctx, owner, models.CreateProjectRequest{Name: "audited"})
		require.NoError(t, err)

		got, err := projects.Get(ctx, admin, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
	})

	t.Run("unknown project is not found", func(t *testing.T) {
		_, err := projects.Get(ctx, owner, "no-such-project")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestProjectService_Sharing(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	ctx := context.Background()

	p, err := projects.Create(ctx, owner, models.CreateProjectRequest{Name: "shared"})
	require.NoError(t, err)

	t.Run("owner shares as viewer and editor", func(t *testing.T) {
		_, err := projects.Share(ctx, owner, p.ID, models.ShareProjectRequest{UserID: viewer.UserID, Role: "viewer"})
		require.NoError(t, err)
		_, err = projects.Share(ctx, owner, p.ID, models.ShareProjectRequest{UserID: editor.UserID, Role: "editor"})
		require.NoError(t, err)

		role, err := projects.Role(ctx, viewer, p.ID)
		require.NoError(t, err)
		assert.True(t, role.CanView())
		assert.False(t, role.CanEdit())

		role, err = projects.Role(ctx, editor, p.ID)
		require.NoError(t, err)
		assert.True(t, role.CanEdit())
	})

	t.Run("re-sharing updates the role in place", func(t *testing.T) {
		_, err := projects.Share(ctx, owner, p.ID, models.ShareProjectRequest{UserID: viewer.UserID, Role: "editor"})
		require.NoError(t, err)

		role, err := projects.Role(ctx, viewer, p.ID)
		require.NoError(t, err)
		assert.True(t, role.CanEdit())
	})

	t.Run("only the owner may share", func(t *testing.T) {
		_, err := projects.Share(ctx, editor, p.ID, models.ShareProjectRequest{UserID: stranger.UserID, Role: "viewer"})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("validates role", func(t *testing.T) {
		_, err := projects.Share(ctx, owner, p.ID, models.ShareProjectRequest{UserID: stranger.UserID, Role: "superuser"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("list shows owned and shared projects", func(t *testing.T) {
		own, err := projects.Create(ctx, viewer, models.CreateProjectRequest{Name: "viewer's own"})
		require.NoError(t, err)

		list, err := projects.List(ctx, viewer)
		require.NoError(t, err)

		ids := make([]string, len(list))
		for i, proj := range list {
			ids[i] = proj.ID
		}
		assert.Contains(t, ids, own.ID)
		assert.Contains(t, ids, p.ID)
	})
}

func TestProjectService_ArchiveAndPhase(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	ctx := context.Background()

	t.Run("archive hides the project", func(t *testing.T) {
		p, err := projects.Create(ctx, owner, models.CreateProjectRequest{Name: "done"})
		require.NoError(t, err)

		require.NoError(t, projects.Archive(ctx, owner, p.ID))

		_, err = projects.Get(ctx, owner, p.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		list, err := projects.List(ctx, owner)
		require.NoError(t, err)
		for _, proj := range list {
			assert.NotEqual(t, p.ID, proj.ID)
		}
	})

	t.Run("only the owner archives", func(t *testing.T) {
		p, err := projects.Create(ctx, owner, models.CreateProjectRequest{Name: "keep"})
		require.NoError(t, err)
		_, err = projects.Share(ctx, owner, p.ID, models.ShareProjectRequest{UserID: editor.UserID, Role: "editor"})
		require.NoError(t, err)

		assert.ErrorIs(t, projects.Archive(ctx, editor, p.ID), ErrForbidden)
	})

	t.Run("set phase records advancement", func(t *testing.T) {
		p, err := projects.Create(ctx, owner, models.CreateProjectRequest{Name: "advancing"})
		require.NoError(t, err)

		updated, err := projects.SetPhase(ctx, p.ID, models.PhaseAnalysis)
		require.NoError(t, err)
		assert.Equal(t, "analysis", string(updated.CurrentPhase))

		_, err = projects.SetPhase(ctx, p.ID, models.Phase("sideways"))
		assert.True(t, IsValidationError(err))
	})
}
