package agents

import (
	"context"
	"fmt"

	"github.com/specsmith/specsmith/ent"
	qualityengine "github.com/specsmith/specsmith/pkg/engine/quality"
	"github.com/specsmith/specsmith/pkg/models"
	"github.com/specsmith/specsmith/pkg/services"
)

// Code generator agent actions.
const (
	ActionMaturityGate = "maturity_gate"
	ActionConflictGate = "conflict_gate"
	ActionGenerate     = "generate"
)

// CodeGeneratorAgent gates and enqueues code-generation runs. Generation is
// asynchronous: a passing generate emits a pending GeneratedProject version
// that the worker pool picks up.
type CodeGeneratorAgent struct {
	engine    *qualityengine.Engine
	projects  *services.ProjectService
	specs     *services.SpecificationService
	conflicts *services.ConflictService
	generated *services.GeneratedService
	activity  *services.ActivityService
}

// NewCodeGeneratorAgent creates a new CodeGeneratorAgent.
func NewCodeGeneratorAgent(engine *qualityengine.Engine, projects *services.ProjectService, specs *services.SpecificationService, conflicts *services.ConflictService, generated *services.GeneratedService, activity *services.ActivityService) *CodeGeneratorAgent {
	return &CodeGeneratorAgent{engine: engine, projects: projects, specs: specs, conflicts: conflicts, generated: generated, activity: activity}
}

// ID implements Agent.
func (a *CodeGeneratorAgent) ID() string { return IDCodeGenerator }

// Execute implements Agent.
func (a *CodeGeneratorAgent) Execute(ctx context.Context, identity models.Identity, action string, payload Payload) (*Result, error) {
	projectID, err := payload.String("project_id")
	if err != nil {
		return nil, err
	}
	project, err := a.projects.Get(ctx, identity, projectID)
	if err != nil {
		return nil, err
	}

	switch action {
	case ActionMaturityGate:
		in, err := buildGateInput(ctx, a.specs, a.conflicts, project, "")
		if err != nil {
			return nil, err
		}
		// Judge coverage alone; the conflict gate is its own action.
		in.PendingConflicts = 0
		verdict := a.engine.PreValidateCodeGen(in)
		return &Result{Success: true, Data: map[string]any{
			"covered_categories": in.CoveredCategories,
			"maturity":           in.Maturity,
			"passed":             !verdict.Blocking,
		}}, nil

	case ActionConflictGate:
		pending, err := a.conflicts.CountPending(ctx, projectID)
		if err != nil {
			return nil, err
		}
		return &Result{Success: true, Data: map[string]any{
			"pending_conflicts": pending,
			"passed":            pending == 0,
		}}, nil

	case ActionGenerate:
		return a.generate(ctx, identity, project)

	default:
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownAction, IDCodeGenerator, action)
	}
}

// generate re-checks both gates against the engine, then enqueues a run.
// The orchestrator already pre-gated; the re-check keeps the agent safe when
// called on a stale verdict.
func (a *CodeGeneratorAgent) generate(ctx context.Context, identity models.Identity, project *ent.Project) (*Result, error) {
	in, err := buildGateInput(ctx, a.specs, a.conflicts, project, "")
	if err != nil {
		return nil, err
	}

	verdict := a.engine.PreValidateCodeGen(in)
	if verdict.Blocking {
		return &Result{Success: false, Data: map[string]any{
			"blocked": models.BlockedResponse{
				Blocked:      true,
				Reason:       verdict.Reason,
				Issues:       verdict.Issues,
				PathAnalysis: verdict.PathAnalysis,
				Alternatives: verdict.Alternatives,
			},
		}}, nil
	}

	run, err := a.generated.Enqueue(ctx, identity, project.ID)
	if err != nil {
		return nil, err
	}
	a.activity.Record(ctx, project.ID, identity.UserID, "generation_enqueued", "generated_project", run.ID,
		fmt.Sprintf("enqueued code generation v%d", run.Version), nil)

	return &Result{Success: true, Data: map[string]any{
		"run": services.RunView(run),
	}}, nil
}

// buildGateInput assembles the plain-data gate context for a project. An
// empty targetPhase means the next phase in the sequence.
func buildGateInput(ctx context.Context, specs *services.SpecificationService, conflicts *services.ConflictService, project *ent.Project, targetPhase string) (qualityengine.GateInput, error) {
	report, err := specs.Maturity(ctx, project.ID)
	if err != nil {
		return qualityengine.GateInput{}, err
	}
	pending, err := conflicts.CountPending(ctx, project.ID)
	if err != nil {
		return qualityengine.GateInput{}, err
	}

	current := models.Phase(project.CurrentPhase)
	target := models.Phase(targetPhase)
	if target == "" {
		target, _ = current.Next()
	}

	return qualityengine.GateInput{
		CurrentPhase:      current,
		TargetPhase:       target,
		Maturity:          report,
		CoveredCategories: coveredCategories(report),
		PendingConflicts:  pending,
	}, nil
}
