package orchestrator

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/ent"
	"github.com/specsmith/specsmith/ent/generatedproject"
	"github.com/specsmith/specsmith/pkg/agents"
	"github.com/specsmith/specsmith/pkg/config"
	qualityengine "github.com/specsmith/specsmith/pkg/engine/quality"
	"github.com/specsmith/specsmith/pkg/llm"
	"github.com/specsmith/specsmith/pkg/models"
	"github.com/specsmith/specsmith/pkg/services"
	testdb "github.com/specsmith/specsmith/test/database"
)

var owner = models.Identity{UserID: "user-owner", Handle: "owner"}

const (
	cleanDraft  = `{"question": "What problem does this project solve for its users?"}`
	biasedDraft = `{"question": "Should we use PostgreSQL for this, right?"}`
)

// fixture wires the orchestrator against real services on a test database,
// with a stubbed gateway behind the socratic agent.
type fixture struct {
	orch      *Orchestrator
	projects  *services.ProjectService
	sessions  *services.SessionService
	specs     *services.SpecificationService
	questions *services.QuestionService
	generated *services.GeneratedService
	metrics   *services.QualityMetricService

	project *ent.Project
	session *ent.Session
}

func newFixture(t *testing.T, gateway llm.Client) *fixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := config.GetBuiltinConfig()
	engine, err := qualityengine.NewEngine(cfg.Quality, cfg.Bias, cfg.Optimizer)
	require.NoError(t, err)

	f := &fixture{}
	f.projects = services.NewProjectService(client.Client)
	f.sessions = services.NewSessionService(client.Client, f.projects)
	f.specs = services.NewSpecificationService(client.Client, nil, nil)
	conflicts := services.NewConflictService(client.Client, f.projects, nil, nil)
	f.questions = services.NewQuestionService(client.Client)
	f.generated = services.NewGeneratedService(client.Client, f.projects)
	activity := services.NewActivityService(client.Client, f.projects, nil)
	f.metrics = services.NewQualityMetricService(client.Client)

	registry := agents.NewRegistry(
		agents.NewSocraticAgent(gateway, "test-model", f.sessions, f.specs, f.questions),
		agents.NewProjectManagerAgent(f.projects, activity),
		agents.NewCodeGeneratorAgent(engine, f.projects, f.specs, conflicts, f.generated, activity),
	)
	f.orch = New(registry, engine, f.projects, f.specs, conflicts, f.metrics, cfg.Quality, nil)

	p, err := f.projects.Create(ctx, owner, models.CreateProjectRequest{Name: "inventory tracker"})
	require.NoError(t, err)
	f.project = p

	sess, err := f.sessions.Start(ctx, owner, models.StartSessionRequest{ProjectID: p.ID})
	require.NoError(t, err)
	f.session = sess

	return f
}

// seedCategory ingests n specs into one category under distinct keys.
func (f *fixture) seedCategory(t *testing.T, category string, n int) {
	t.Helper()
	keys := []string{"alpha", "beta", "gamma", "delta"}
	candidates := make([]models.SpecCandidate, 0, n)
	for i := 0; i < n; i++ {
		candidates = append(candidates, models.SpecCandidate{
			Category:   category,
			Key:        category + "_" + keys[i],
			Value:      "decided",
			Confidence: 0.9,
			Source:     models.SourceUserInput,
		})
	}
	_, err := f.specs.Ingest(context.Background(), owner, f.project.ID, candidates)
	require.NoError(t, err)
}

func TestRoute_UnknownAgent(t *testing.T) {
	f := newFixture(t, llm.NewStubClient(""))
	_, err := f.orch.Route(context.Background(), owner, "astrologer", "predict", nil)
	assert.ErrorIs(t, err, agents.ErrUnknownAgent)
}

func TestRoute_MinorOpSkipsGates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, llm.NewStubClient(""))

	resp, err := f.orch.Route(ctx, owner, agents.IDProjectManager, agents.ActionProjectRead,
		agents.Payload{"project_id": f.project.ID})
	require.NoError(t, err)

	require.NotNil(t, resp.Result)
	assert.Nil(t, resp.Blocked)
	assert.Nil(t, resp.Result.QualityValidation)

	recorded, err := f.metrics.Recent(ctx, f.project.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, recorded)
}

func TestRoute_AdvanceBlockedBeforeAgentRuns(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, llm.NewStubClient(""))
	f.seedCategory(t, "goals", 1)

	resp, err := f.orch.Route(ctx, owner, agents.IDProjectManager, agents.ActionAdvancePhase,
		agents.Payload{"project_id": f.project.ID})
	require.NoError(t, err)

	require.NotNil(t, resp.Blocked)
	assert.Nil(t, resp.Result)
	assert.True(t, resp.Blocked.Blocked)
	assert.Contains(t, resp.Blocked.Reason, "analysis")
	require.NotNil(t, resp.Blocked.PathAnalysis)
	assert.NotEmpty(t, resp.Blocked.PathAnalysis.Paths)

	// The agent never ran: the phase is untouched.
	p, err := f.projects.Get(ctx, owner, f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.PhaseDiscovery), p.CurrentPhase)
}

func TestRoute_AdvanceWhenThresholdsMet(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, llm.NewStubClient(""))
	// Four saturated categories put the overall score exactly at the analysis
	// threshold, with both critical categories fully covered.
	for _, cat := range []string{"goals", "requirements", "tech_stack", "security"} {
		f.seedCategory(t, cat, 3)
	}

	resp, err := f.orch.Route(ctx, owner, agents.IDProjectManager, agents.ActionAdvancePhase,
		agents.Payload{"project_id": f.project.ID})
	require.NoError(t, err)

	require.NotNil(t, resp.Result)
	assert.Equal(t, string(models.PhaseAnalysis), resp.Result.Data["new_phase"])
	require.NotNil(t, resp.Result.QualityValidation)
	assert.True(t, resp.Result.QualityValidation.Approved)

	p, err := f.projects.Get(ctx, owner, f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.PhaseAnalysis), p.CurrentPhase)

	// Gated operations leave a quality snapshot behind.
	recorded, err := f.metrics.Recent(ctx, f.project.ID, 10)
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	assert.Equal(t, agents.ActionAdvancePhase, recorded[0].Action)
}

func TestRoute_RegenerationStoresOnlyFinalDraft(t *testing.T) {
	ctx := context.Background()
	stub := llm.NewStubClient("")
	stub.Enqueue(
		llm.StubResponse{Text: biasedDraft},
		llm.StubResponse{Text: cleanDraft},
	)
	f := newFixture(t, stub)

	resp, err := f.orch.Route(ctx, owner, agents.IDSocratic, agents.ActionGenerateQuestion,
		agents.Payload{"session_id": f.session.ID})
	require.NoError(t, err)

	require.NotNil(t, resp.Result)
	verdict := resp.Result.QualityValidation
	require.NotNil(t, verdict)
	assert.True(t, verdict.Approved)
	assert.Equal(t, 1.0, verdict.QualityScore)
	assert.Empty(t, verdict.ActionRequired)

	view, ok := resp.Result.Data["question"].(*models.QuestionResponse)
	require.True(t, ok)
	assert.Equal(t, 1, view.Regenerations)
	assert.True(t, view.Approved)

	// Rejected drafts are never persisted.
	saved, err := f.questions.RecentForSession(ctx, f.session.ID, 10)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "What problem does this project solve for its users?", saved[0].Text)

	// The retry prompt carries the failed verdict's findings.
	require.Len(t, stub.Requests, 2)
	assert.Contains(t, stub.Requests[1].UserPrompt, "A previous draft was rejected")
	assert.Contains(t, stub.Requests[1].UserPrompt, "PostgreSQL")
}

func TestRoute_RegenerationCapExhausted(t *testing.T) {
	ctx := context.Background()
	// Every draft is biased; the cap bounds the loop at two retries.
	stub := llm.NewStubClient(biasedDraft)
	f := newFixture(t, stub)

	resp, err := f.orch.Route(ctx, owner, agents.IDSocratic, agents.ActionGenerateQuestion,
		agents.Payload{"session_id": f.session.ID})
	require.NoError(t, err)

	verdict := resp.Result.QualityValidation
	require.NotNil(t, verdict)
	assert.False(t, verdict.Approved)
	assert.InDelta(t, 0.55, verdict.QualityScore, 1e-9)
	assert.Empty(t, verdict.ActionRequired)

	view, ok := resp.Result.Data["question"].(*models.QuestionResponse)
	require.True(t, ok)
	assert.Equal(t, 2, view.Regenerations)
	assert.False(t, view.Approved)

	assert.Len(t, stub.Requests, 3)

	saved, err := f.questions.RecentForSession(ctx, f.session.ID, 10)
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

// cancelingClient cancels the request context as soon as the first completion
// returns, simulating a caller deadline expiring mid-loop.
type cancelingClient struct {
	*llm.StubClient
	cancel context.CancelFunc
}

func (c *cancelingClient) Complete(ctx context.Context, req llm.Request) (*llm.Completion, error) {
	completion, err := c.StubClient.Complete(ctx, req)
	c.cancel()
	return completion, err
}

func TestRoute_CanceledContextStopsRegeneration(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gateway := &cancelingClient{StubClient: llm.NewStubClient(biasedDraft), cancel: cancel}
	f := newFixture(t, gateway)

	_, err := f.orch.Route(ctx, owner, agents.IDSocratic, agents.ActionGenerateQuestion,
		agents.Payload{"session_id": f.session.ID})
	assert.ErrorIs(t, err, context.Canceled)

	// The loop stopped before a second gateway call or any persistence.
	assert.Len(t, gateway.Requests, 1)
	saved, qerr := f.questions.RecentForSession(context.Background(), f.session.ID, 10)
	require.NoError(t, qerr)
	assert.Empty(t, saved)
}

func TestRoute_BatchRegeneratesWorstDraft(t *testing.T) {
	ctx := context.Background()
	stub := llm.NewStubClient("")
	stub.Enqueue(
		// First round: one clean, one biased. The batch fails on its worst
		// draft and is regenerated whole.
		llm.StubResponse{Text: cleanDraft},
		llm.StubResponse{Text: biasedDraft},
		// Second round: both clean.
		llm.StubResponse{Text: cleanDraft},
		llm.StubResponse{Text: `{"question": "Which constraints are fixed?"}`},
	)
	f := newFixture(t, stub)

	resp, err := f.orch.Route(ctx, owner, agents.IDSocratic, agents.ActionGenerateQuestionsBatch,
		agents.Payload{"session_id": f.session.ID, "count": 2})
	require.NoError(t, err)

	verdict := resp.Result.QualityValidation
	require.NotNil(t, verdict)
	assert.True(t, verdict.Approved)
	assert.Equal(t, 1.0, verdict.QualityScore)

	views, ok := resp.Result.Data["questions"].([]*models.QuestionResponse)
	require.True(t, ok)
	require.Len(t, views, 2)
	assert.Equal(t, 1, views[0].Regenerations)

	// The replacement round carries the failed verdict's findings in every
	// draft prompt; the first round carries none.
	require.Len(t, stub.Requests, 4)
	for _, req := range stub.Requests[:2] {
		assert.NotContains(t, req.UserPrompt, "A previous draft was rejected")
	}
	for _, req := range stub.Requests[2:] {
		assert.Contains(t, req.UserPrompt, "A previous draft was rejected")
		assert.Contains(t, req.UserPrompt, "PostgreSQL")
	}

	saved, err := f.questions.RecentForSession(ctx, f.session.ID, 10)
	require.NoError(t, err)
	assert.Len(t, saved, 2)
}

func TestRoute_CodeGenGateIgnoresUnrecognizedCategories(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, llm.NewStubClient(""))
	// Seven categories outside the fixed maturity set: plenty of rows, zero
	// real coverage.
	for i := 0; i < 7; i++ {
		f.seedCategory(t, fmt.Sprintf("custom_%d", i), 1)
	}

	resp, err := f.orch.Route(ctx, owner, agents.IDCodeGenerator, agents.ActionGenerate,
		agents.Payload{"project_id": f.project.ID})
	require.NoError(t, err)

	require.NotNil(t, resp.Blocked)
	require.NotEmpty(t, resp.Blocked.Issues)
	assert.Equal(t, "insufficient_coverage", resp.Blocked.Issues[0].Type)

	runs, err := f.generated.List(ctx, owner, f.project.ID)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRoute_CodeGenGate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, llm.NewStubClient(""))
	f.seedCategory(t, "goals", 3)

	t.Run("insufficient coverage blocks", func(t *testing.T) {
		resp, err := f.orch.Route(ctx, owner, agents.IDCodeGenerator, agents.ActionGenerate,
			agents.Payload{"project_id": f.project.ID})
		require.NoError(t, err)

		require.NotNil(t, resp.Blocked)
		require.NotEmpty(t, resp.Blocked.Issues)
		assert.Equal(t, "insufficient_coverage", resp.Blocked.Issues[0].Type)

		runs, err := f.generated.List(ctx, owner, f.project.ID)
		require.NoError(t, err)
		assert.Empty(t, runs)
	})

	t.Run("sufficient coverage enqueues a run", func(t *testing.T) {
		for _, cat := range []string{"requirements", "tech_stack", "security", "testing", "deployment", "monitoring"} {
			f.seedCategory(t, cat, 1)
		}

		resp, err := f.orch.Route(ctx, owner, agents.IDCodeGenerator, agents.ActionGenerate,
			agents.Payload{"project_id": f.project.ID})
		require.NoError(t, err)

		require.NotNil(t, resp.Result)
		assert.True(t, resp.Result.Success)
		assert.NotNil(t, resp.Result.Data["run"])

		runs, err := f.generated.List(ctx, owner, f.project.ID)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, generatedproject.StatusPending, runs[0].Status)
	})
}
