package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/ent"
	"github.com/specsmith/specsmith/pkg/models"
	"github.com/specsmith/specsmith/pkg/services"
	testdb "github.com/specsmith/specsmith/test/database"
)

var (
	owner    = models.Identity{UserID: "user-owner", Handle: "owner"}
	stranger = models.Identity{UserID: "user-stranger", Handle: "stranger"}
)

// workbench bundles the services agent tests run against, all backed by one
// test database, plus a seeded project and active session.
type workbench struct {
	projects  *services.ProjectService
	sessions  *services.SessionService
	specs     *services.SpecificationService
	conflicts *services.ConflictService
	questions *services.QuestionService
	metrics   *services.QualityMetricService

	project *ent.Project
	session *ent.Session
}

func newWorkbench(t *testing.T) *workbench {
	t.Helper()
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	w := &workbench{}
	w.projects = services.NewProjectService(client.Client)
	w.sessions = services.NewSessionService(client.Client, w.projects)
	w.specs = services.NewSpecificationService(client.Client, nil, nil)
	w.conflicts = services.NewConflictService(client.Client, w.projects, nil, nil)
	w.questions = services.NewQuestionService(client.Client)
	w.metrics = services.NewQualityMetricService(client.Client)

	p, err := w.projects.Create(ctx, owner, models.CreateProjectRequest{Name: "inventory tracker"})
	require.NoError(t, err)
	w.project = p

	sess, err := w.sessions.Start(ctx, owner, models.StartSessionRequest{ProjectID: p.ID})
	require.NoError(t, err)
	w.session = sess

	return w
}

func (w *workbench) seedSpec(t *testing.T, category, key, value string) {
	t.Helper()
	_, err := w.specs.Ingest(context.Background(), owner, w.project.ID, []models.SpecCandidate{{
		Category:   category,
		Key:        key,
		Value:      value,
		Confidence: 0.9,
		Source:     models.SourceUserInput,
	}})
	require.NoError(t, err)
}

func TestPayload(t *testing.T) {
	p := Payload{"name": "alpha", "count": float64(4), "hint": ""}

	t.Run("required string present", func(t *testing.T) {
		v, err := p.String("name")
		require.NoError(t, err)
		assert.Equal(t, "alpha", v)
	})

	t.Run("required string missing", func(t *testing.T) {
		_, err := p.String("absent")
		assert.True(t, IsMissingParameter(err))

		_, err = p.String("hint")
		assert.True(t, IsMissingParameter(err))
	})

	t.Run("optional values", func(t *testing.T) {
		assert.Equal(t, "", p.OptionalString("absent"))
		// JSON numbers arrive as float64.
		assert.Equal(t, 4, p.OptionalInt("count", 9))
		assert.Equal(t, 9, p.OptionalInt("absent", 9))
	})
}

func TestRegistry(t *testing.T) {
	w := newWorkbench(t)
	registry := NewRegistry(NewConflictAgent(w.conflicts, w.specs))

	agent, err := registry.Get(IDConflict)
	require.NoError(t, err)
	assert.Equal(t, IDConflict, agent.ID())

	_, err = registry.Get("astrologer")
	assert.ErrorIs(t, err, ErrUnknownAgent)
}
