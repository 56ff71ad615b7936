// Package orchestrator routes typed requests to named agents, interposing
// the quality engine's pre- and post-validation gates on major operations
// and driving the bounded regeneration loop.
package orchestrator

import (
	"context"
	"log/slog"

	"github.com/specsmith/specsmith/pkg/agents"
	"github.com/specsmith/specsmith/pkg/config"
	qualityengine "github.com/specsmith/specsmith/pkg/engine/quality"
	specengine "github.com/specsmith/specsmith/pkg/engine/spec"
	"github.com/specsmith/specsmith/pkg/models"
	"github.com/specsmith/specsmith/pkg/services"
)

const defaultRegenerationCap = 2

// opKey identifies one (agent, action) pair in the static operation table.
type opKey struct {
	agent  string
	action string
}

// majorOps is the static table of operations requiring pre- and
// post-validation. Changing it is a source change.
var majorOps = map[opKey]bool{
	{agents.IDSocratic, agents.ActionGenerateQuestion}:       true,
	{agents.IDSocratic, agents.ActionGenerateQuestionsBatch}: true,
	{agents.IDContext, agents.ActionExtractSpecifications}:   true,
	{agents.IDConflict, agents.ActionConflictResolve}:        true,
	{agents.IDProjectManager, agents.ActionAdvancePhase}:     true,
	{agents.IDCodeGenerator, agents.ActionGenerate}:          true,
}

// Response is the outcome of one routed request. Exactly one of Result and
// Blocked is set: a blocked major operation is a first-class response, not
// an error.
type Response struct {
	Result  *agents.Result         `json:"result,omitempty"`
	Blocked *models.BlockedResponse `json:"blocked,omitempty"`
}

// Orchestrator is stateless aside from the per-request regeneration counter.
type Orchestrator struct {
	registry  *agents.Registry
	engine    *qualityengine.Engine
	projects  *services.ProjectService
	specs     *services.SpecificationService
	conflicts *services.ConflictService
	metrics   *services.QualityMetricService
	regenCap  int
	logger    *slog.Logger
}

// New creates an Orchestrator.
func New(
	registry *agents.Registry,
	engine *qualityengine.Engine,
	projects *services.ProjectService,
	specs *services.SpecificationService,
	conflicts *services.ConflictService,
	metrics *services.QualityMetricService,
	quality *config.QualityConfig,
	logger *slog.Logger,
) *Orchestrator {
	regenCap := defaultRegenerationCap
	if quality != nil && quality.RegenerationCap > 0 {
		regenCap = quality.RegenerationCap
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		registry:  registry,
		engine:    engine,
		projects:  projects,
		specs:     specs,
		conflicts: conflicts,
		metrics:   metrics,
		regenCap:  regenCap,
		logger:    logger,
	}
}

// Route resolves the agent, applies the gates for major operations, executes,
// and runs the bounded regeneration loop on a failed post-check.
func (o *Orchestrator) Route(ctx context.Context, identity models.Identity, agentID, action string, payload agents.Payload) (*Response, error) {
	agent, err := o.registry.Get(agentID)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		payload = agents.Payload{}
	}

	major := majorOps[opKey{agent: agentID, action: action}]
	if major {
		blocked, err := o.preValidate(ctx, identity, agentID, action, payload)
		if err != nil {
			return nil, err
		}
		if blocked != nil {
			// Pre-check observed nothing and the agent never ran; no domain
			// state was written for this call.
			return &Response{Blocked: blocked}, nil
		}
	}

	result, err := agent.Execute(ctx, identity, action, payload)
	if err != nil {
		return nil, err
	}
	if !major {
		return &Response{Result: result}, nil
	}

	verdict := o.postValidate(action, result)
	regenerations := 0
	for verdict.ActionRequired == models.PostActionRegenerate && regenerations < o.regenCap {
		// The regeneration loop counts against the outer deadline; check the
		// clock before touching the gateway again.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		regenerations++
		payload[agents.RegenerationHintKey] = qualityengine.RegenerationHint(verdict)
		o.logger.Info("Regenerating after failed post-validation",
			"agent", agentID,
			"action", action,
			"attempt", regenerations,
			"score", verdict.QualityScore)

		result, err = agent.Execute(ctx, identity, action, payload)
		if err != nil {
			return nil, err
		}
		verdict = o.postValidate(action, result)
	}
	// After cap exhaustion the last result is returned with approved=false
	// surfaced to the caller.
	verdict.ActionRequired = ""

	if finalizer, ok := agent.(agents.Finalizer); ok {
		result, err = finalizer.Finalize(ctx, identity, action, result, verdict, regenerations)
		if err != nil {
			return nil, err
		}
	}
	result.QualityValidation = &verdict

	o.recordMetric(ctx, action, payload, result, verdict)
	return &Response{Result: result}, nil
}

// preValidate runs the readiness gate for actions that have one. A non-nil
// BlockedResponse means the agent must not execute.
func (o *Orchestrator) preValidate(ctx context.Context, identity models.Identity, agentID, action string, payload agents.Payload) (*models.BlockedResponse, error) {
	var verdict models.PreValidation

	switch {
	case agentID == agents.IDProjectManager && action == agents.ActionAdvancePhase:
		in, err := o.gateInput(ctx, identity, payload)
		if err != nil {
			return nil, err
		}
		verdict = o.engine.PreValidateAdvance(in)

	case agentID == agents.IDCodeGenerator && action == agents.ActionGenerate:
		in, err := o.gateInput(ctx, identity, payload)
		if err != nil {
			return nil, err
		}
		verdict = o.engine.PreValidateCodeGen(in)

	default:
		// Question generation, extraction and conflict resolution have no
		// readiness gate; their quality control is the post-check and the
		// services' own blocking rules.
		return nil, nil
	}

	if !verdict.Blocking {
		return nil, nil
	}
	return &models.BlockedResponse{
		Blocked:      true,
		Reason:       verdict.Reason,
		Issues:       verdict.Issues,
		PathAnalysis: verdict.PathAnalysis,
		Alternatives: verdict.Alternatives,
	}, nil
}

// postValidate judges an agent result. Only question generation has a
// content check today; everything else approves by default.
func (o *Orchestrator) postValidate(action string, result *agents.Result) models.PostValidation {
	switch action {
	case agents.ActionGenerateQuestion:
		text, _ := result.Data["text"].(string)
		return o.engine.PostValidateQuestion(text)

	case agents.ActionGenerateQuestionsBatch:
		return o.postValidateBatch(result)

	default:
		return o.engine.PostValidateDefault()
	}
}

// postValidateBatch validates every draft in a batch; the batch score is the
// worst draft's score and any rejected draft fails the batch.
func (o *Orchestrator) postValidateBatch(result *agents.Result) models.PostValidation {
	drafts, _ := result.Data["questions"].([]map[string]any)
	if len(drafts) == 0 {
		return o.engine.PostValidateDefault()
	}

	batch := models.PostValidation{Approved: true, QualityScore: 1.0}
	for _, d := range drafts {
		text, _ := d["text"].(string)
		v := o.engine.PostValidateQuestion(text)
		batch.Issues = append(batch.Issues, v.Issues...)
		batch.Warnings = append(batch.Warnings, v.Warnings...)
		if v.QualityScore < batch.QualityScore {
			batch.QualityScore = v.QualityScore
		}
		if !v.Approved {
			batch.Approved = false
			batch.ActionRequired = v.ActionRequired
		}
	}
	return batch
}

// gateInput loads the gate context for the payload's project.
func (o *Orchestrator) gateInput(ctx context.Context, identity models.Identity, payload agents.Payload) (qualityengine.GateInput, error) {
	projectID, err := payload.String("project_id")
	if err != nil {
		return qualityengine.GateInput{}, err
	}
	project, err := o.projects.Get(ctx, identity, projectID)
	if err != nil {
		return qualityengine.GateInput{}, err
	}

	report, err := o.specs.Maturity(ctx, projectID)
	if err != nil {
		return qualityengine.GateInput{}, err
	}
	pending, err := o.conflicts.CountPending(ctx, projectID)
	if err != nil {
		return qualityengine.GateInput{}, err
	}

	current := models.Phase(project.CurrentPhase)
	target, _ := current.Next()
	return qualityengine.GateInput{
		CurrentPhase:      current,
		TargetPhase:       target,
		Maturity:          report,
		CoveredCategories: specengine.CoveredFromCounts(report.SpecCounts),
		PendingConflicts:  pending,
	}, nil
}

// recordMetric stores a quality snapshot for gated operations, best effort.
func (o *Orchestrator) recordMetric(ctx context.Context, action string, payload agents.Payload, result *agents.Result, verdict models.PostValidation) {
	projectID := payload.OptionalString("project_id")
	if projectID == "" {
		projectID, _ = result.Data["project_id"].(string)
	}
	if projectID == "" {
		return
	}

	if _, err := o.metrics.Record(ctx, projectID, action, verdict.QualityScore, 0, 0); err != nil {
		o.logger.Error("Failed to record quality metric",
			"project_id", projectID,
			"action", action,
			"error", err)
	}
}
