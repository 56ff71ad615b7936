package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/pkg/config"
	qualityengine "github.com/specsmith/specsmith/pkg/engine/quality"
	"github.com/specsmith/specsmith/pkg/models"
	"github.com/specsmith/specsmith/pkg/services"
)

func newQuality(t *testing.T, w *workbench) *QualityAgent {
	t.Helper()
	cfg := config.GetBuiltinConfig()
	engine, err := qualityengine.NewEngine(cfg.Quality, cfg.Bias, cfg.Optimizer)
	require.NoError(t, err)
	return NewQualityAgent(engine, w.projects, w.specs, w.conflicts, w.metrics)
}

func TestQualityAgent_AnalyzeQuestion(t *testing.T) {
	ctx := context.Background()
	w := newWorkbench(t)
	agent := newQuality(t, w)

	t.Run("clean question approves", func(t *testing.T) {
		result, err := agent.Execute(ctx, owner, ActionAnalyzeQuestion, Payload{
			"text": "What availability do your users expect?",
		})
		require.NoError(t, err)

		verdict := result.Data["validation"].(models.PostValidation)
		assert.True(t, verdict.Approved)
		assert.Equal(t, 1.0, verdict.QualityScore)
	})

	t.Run("biased question is scored down", func(t *testing.T) {
		result, err := agent.Execute(ctx, owner, ActionAnalyzeQuestion, Payload{
			"text": "You should just use Kubernetes here.",
		})
		require.NoError(t, err)

		verdict := result.Data["validation"].(models.PostValidation)
		assert.False(t, verdict.Approved)
		assert.NotEmpty(t, verdict.Issues)
	})
}

func TestQualityAgent_AnalyzeCoverage(t *testing.T) {
	ctx := context.Background()
	w := newWorkbench(t)
	w.seedSpec(t, "goals", "primary_goal", "track inventory")
	w.seedSpec(t, "security", "auth", "token based")
	agent := newQuality(t, w)

	result, err := agent.Execute(ctx, owner, ActionAnalyzeCoverage, Payload{
		"project_id": w.project.ID,
	})
	require.NoError(t, err)

	report := result.Data["maturity"].(models.MaturityReport)
	assert.Greater(t, report.Score, 0.0)
	assert.Equal(t, 2, result.Data["covered_categories"])
	assert.Equal(t, 0, result.Data["pending_conflicts"])

	_, err = agent.Execute(ctx, stranger, ActionAnalyzeCoverage, Payload{
		"project_id": w.project.ID,
	})
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestQualityAgent_ComparePaths(t *testing.T) {
	ctx := context.Background()
	w := newWorkbench(t)
	w.seedSpec(t, "goals", "primary_goal", "track inventory")
	agent := newQuality(t, w)

	result, err := agent.Execute(ctx, owner, ActionComparePaths, Payload{
		"project_id": w.project.ID,
	})
	require.NoError(t, err)

	analysis, ok := result.Data["path_analysis"].(*models.PathAnalysis)
	require.True(t, ok)
	require.NotNil(t, analysis)
	assert.NotEmpty(t, analysis.Paths)
	assert.NotEmpty(t, analysis.Recommended)
}

func TestQualityAgent_StoreMetrics(t *testing.T) {
	ctx := context.Background()
	w := newWorkbench(t)
	agent := newQuality(t, w)

	result, err := agent.Execute(ctx, owner, ActionStoreMetrics, Payload{
		"project_id": w.project.ID,
		"action":     "generate_question",
		"bias_score": 0.85,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Data["metric_id"])

	recent, err := w.metrics.Recent(ctx, w.project.ID, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "generate_question", recent[0].Action)
	assert.Equal(t, 0.85, recent[0].BiasScore)
}
