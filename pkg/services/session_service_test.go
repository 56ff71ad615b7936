package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/ent"
	"github.com/specsmith/specsmith/pkg/models"
	testdb "github.com/specsmith/specsmith/test/database"
)

func newSessionFixture(t *testing.T) (*SessionService, *ent.Project) {
	t.Helper()
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	sessions := NewSessionService(client.Client, projects)

	p, err := projects.Create(context.Background(), owner, models.CreateProjectRequest{Name: "workbench"})
	require.NoError(t, err)
	return sessions, p
}

func TestSessionService_StartAndToggle(t *testing.T) {
	sessions, p := newSessionFixture(t)
	ctx := context.Background()

	t.Run("starts in socratic mode by default", func(t *testing.T) {
		sess, err := sessions.Start(ctx, owner, models.StartSessionRequest{ProjectID: p.ID})
		require.NoError(t, err)
		assert.Equal(t, "socratic", string(sess.Mode))
		assert.Equal(t, "active", string(sess.Status))
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		_, err := sessions.Start(ctx, owner, models.StartSessionRequest{ProjectID: p.ID, Mode: "interrogation"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("toggle flips the mode without touching history", func(t *testing.T) {
		sess, err := sessions.Start(ctx, owner, models.StartSessionRequest{ProjectID: p.ID})
		require.NoError(t, err)

		_, err = sessions.AppendTurn(ctx, sess.ID, "user", "hello")
		require.NoError(t, err)

		toggled, err := sessions.ToggleMode(ctx, owner, sess.ID, "direct_chat")
		require.NoError(t, err)
		assert.Equal(t, "direct_chat", string(toggled.Mode))

		history, err := sessions.History(ctx, owner, sess.ID, 10, 0)
		require.NoError(t, err)
		assert.Len(t, history, 1)
	})

	t.Run("stranger cannot start a session", func(t *testing.T) {
		_, err := sessions.Start(ctx, stranger, models.StartSessionRequest{ProjectID: p.ID})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestSessionService_EndIsAbsorbing(t *testing.T) {
	sessions, p := newSessionFixture(t)
	ctx := context.Background()

	sess, err := sessions.Start(ctx, owner, models.StartSessionRequest{ProjectID: p.ID})
	require.NoError(t, err)

	ended, err := sessions.End(ctx, owner, sess.ID)
	require.NoError(t, err)
	assert.NotNil(t, ended.EndedAt)

	// Every mutation on an ended session reports the same condition.
	_, err = sessions.End(ctx, owner, sess.ID)
	assert.ErrorIs(t, err, ErrSessionEnded)

	_, err = sessions.ToggleMode(ctx, owner, sess.ID, "direct_chat")
	assert.ErrorIs(t, err, ErrSessionEnded)

	_, err = sessions.AppendTurn(ctx, sess.ID, "user", "still there?")
	assert.ErrorIs(t, err, ErrSessionEnded)

	// Reading stays allowed.
	_, err = sessions.History(ctx, owner, sess.ID, 10, 0)
	assert.NoError(t, err)
}

func TestSessionService_AppendTurn(t *testing.T) {
	sessions, p := newSessionFixture(t)
	ctx := context.Background()

	sess, err := sessions.Start(ctx, owner, models.StartSessionRequest{ProjectID: p.ID})
	require.NoError(t, err)

	t.Run("sequences are gapless and ordered", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			role := "user"
			if i%2 == 1 {
				role = "assistant"
			}
			_, err := sessions.AppendTurn(ctx, sess.ID, role, fmt.Sprintf("turn %d", i+1))
			require.NoError(t, err)
		}

		history, err := sessions.History(ctx, owner, sess.ID, 50, 0)
		require.NoError(t, err)
		require.Len(t, history, 5)
		for i, turn := range history {
			assert.Equal(t, i+1, turn.Sequence)
		}
	})

	t.Run("concurrent appends never duplicate a sequence", func(t *testing.T) {
		concurrent, err := sessions.Start(ctx, owner, models.StartSessionRequest{ProjectID: p.ID})
		require.NoError(t, err)

		const writers = 4
		var wg sync.WaitGroup
		errs := make(chan error, writers)
		for w := 0; w < writers; w++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				_, err := sessions.AppendTurn(ctx, concurrent.ID, "user", fmt.Sprintf("writer %d", n))
				errs <- err
			}(w)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		history, err := sessions.History(ctx, owner, concurrent.ID, 50, 0)
		require.NoError(t, err)
		require.Len(t, history, writers)
		seen := map[int]bool{}
		for _, turn := range history {
			assert.False(t, seen[turn.Sequence], "duplicate sequence %d", turn.Sequence)
			seen[turn.Sequence] = true
		}
	})

	t.Run("validates role and content", func(t *testing.T) {
		_, err := sessions.AppendTurn(ctx, sess.ID, "narrator", "x")
		assert.True(t, IsValidationError(err))

		_, err = sessions.AppendTurn(ctx, sess.ID, "user", "")
		assert.True(t, IsValidationError(err))
	})

	t.Run("recent turns come back chronological", func(t *testing.T) {
		recent, err := sessions.RecentTurns(ctx, sess.ID, 3)
		require.NoError(t, err)
		require.Len(t, recent, 3)
		assert.Less(t, recent[0].Sequence, recent[2].Sequence)
	})
}
