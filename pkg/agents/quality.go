package agents

import (
	"context"
	"fmt"

	qualityengine "github.com/specsmith/specsmith/pkg/engine/quality"
	specengine "github.com/specsmith/specsmith/pkg/engine/spec"
	"github.com/specsmith/specsmith/pkg/models"
	"github.com/specsmith/specsmith/pkg/services"
)

// Quality agent actions.
const (
	ActionAnalyzeQuestion = "analyze_question"
	ActionAnalyzeCoverage = "analyze_coverage"
	ActionComparePaths    = "compare_paths"
	ActionStoreMetrics    = "store_metrics"
)

// QualityAgent exposes the quality engine's analyses as callable operations
// and records QualityMetric rows.
type QualityAgent struct {
	engine    *qualityengine.Engine
	projects  *services.ProjectService
	specs     *services.SpecificationService
	conflicts *services.ConflictService
	metrics   *services.QualityMetricService
}

// NewQualityAgent creates a new QualityAgent.
func NewQualityAgent(engine *qualityengine.Engine, projects *services.ProjectService, specs *services.SpecificationService, conflicts *services.ConflictService, metrics *services.QualityMetricService) *QualityAgent {
	return &QualityAgent{engine: engine, projects: projects, specs: specs, conflicts: conflicts, metrics: metrics}
}

// ID implements Agent.
func (a *QualityAgent) ID() string { return IDQuality }

// Execute implements Agent.
func (a *QualityAgent) Execute(ctx context.Context, identity models.Identity, action string, payload Payload) (*Result, error) {
	switch action {
	case ActionAnalyzeQuestion:
		text, err := payload.String("text")
		if err != nil {
			return nil, err
		}
		verdict := a.engine.PostValidateQuestion(text)
		return &Result{Success: true, Data: map[string]any{"validation": verdict}}, nil

	case ActionAnalyzeCoverage:
		return a.analyzeCoverage(ctx, identity, payload)

	case ActionComparePaths:
		return a.comparePaths(ctx, identity, payload)

	case ActionStoreMetrics:
		return a.storeMetrics(ctx, identity, payload)

	default:
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownAction, IDQuality, action)
	}
}

func (a *QualityAgent) analyzeCoverage(ctx context.Context, identity models.Identity, payload Payload) (*Result, error) {
	projectID, err := payload.String("project_id")
	if err != nil {
		return nil, err
	}
	if _, err := a.projects.Get(ctx, identity, projectID); err != nil {
		return nil, err
	}

	report, err := a.specs.Maturity(ctx, projectID)
	if err != nil {
		return nil, err
	}
	pending, err := a.conflicts.CountPending(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return &Result{Success: true, Data: map[string]any{
		"maturity":           report,
		"covered_categories": coveredCategories(report),
		"pending_conflicts":  pending,
	}}, nil
}

// comparePaths runs the skip-gaps path analysis for a project's next phase,
// or an explicitly requested target phase.
func (a *QualityAgent) comparePaths(ctx context.Context, identity models.Identity, payload Payload) (*Result, error) {
	projectID, err := payload.String("project_id")
	if err != nil {
		return nil, err
	}
	project, err := a.projects.Get(ctx, identity, projectID)
	if err != nil {
		return nil, err
	}

	in, err := buildGateInput(ctx, a.specs, a.conflicts, project, payload.OptionalString("target_phase"))
	if err != nil {
		return nil, err
	}

	verdict := a.engine.PreValidateSkipGaps(in)
	return &Result{Success: true, Data: map[string]any{
		"path_analysis": verdict.PathAnalysis,
		"blocking":      verdict.Blocking,
		"reason":        verdict.Reason,
	}}, nil
}

func (a *QualityAgent) storeMetrics(ctx context.Context, identity models.Identity, payload Payload) (*Result, error) {
	projectID, err := payload.String("project_id")
	if err != nil {
		return nil, err
	}
	if _, err := a.projects.GetEditable(ctx, identity, projectID); err != nil {
		return nil, err
	}

	m, err := a.metrics.Record(ctx, projectID,
		payload.OptionalString("action"),
		optionalFloat(payload, "bias_score"),
		optionalFloat(payload, "coverage_score"),
		optionalFloat(payload, "complexity_score"),
	)
	if err != nil {
		return nil, err
	}
	return &Result{Success: true, Data: map[string]any{"metric_id": m.ID}}, nil
}

func coveredCategories(report models.MaturityReport) int {
	return specengine.CoveredFromCounts(report.SpecCounts)
}

func optionalFloat(p Payload, name string) float64 {
	v, _ := p[name].(float64)
	return v
}
