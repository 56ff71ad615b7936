package agents

import (
	"context"
	"fmt"

	"github.com/specsmith/specsmith/pkg/models"
	"github.com/specsmith/specsmith/pkg/services"
)

// Project manager agent actions.
const (
	ActionProjectCreate = "create"
	ActionProjectRead   = "read"
	ActionProjectUpdate = "update"
	ActionProjectDelete = "delete"
	ActionAdvancePhase  = "advance_phase"
)

// ProjectManagerAgent drives project state transitions. advance_phase is the
// canonical quality-gated operation: the orchestrator pre-validates before
// this agent ever runs.
type ProjectManagerAgent struct {
	projects *services.ProjectService
	activity *services.ActivityService
}

// NewProjectManagerAgent creates a new ProjectManagerAgent.
func NewProjectManagerAgent(projects *services.ProjectService, activity *services.ActivityService) *ProjectManagerAgent {
	return &ProjectManagerAgent{projects: projects, activity: activity}
}

// ID implements Agent.
func (a *ProjectManagerAgent) ID() string { return IDProjectManager }

// Execute implements Agent.
func (a *ProjectManagerAgent) Execute(ctx context.Context, identity models.Identity, action string, payload Payload) (*Result, error) {
	switch action {
	case ActionProjectCreate:
		name, err := payload.String("name")
		if err != nil {
			return nil, err
		}
		p, err := a.projects.Create(ctx, identity, models.CreateProjectRequest{
			Name:        name,
			Description: payload.OptionalString("description"),
		})
		if err != nil {
			return nil, err
		}
		a.activity.Record(ctx, p.ID, identity.UserID, "project_created", "project", p.ID,
			fmt.Sprintf("created project %q", p.Name), nil)
		return &Result{Success: true, Data: map[string]any{"project": services.View(p)}}, nil

	case ActionProjectRead:
		projectID, err := payload.String("project_id")
		if err != nil {
			return nil, err
		}
		p, err := a.projects.Get(ctx, identity, projectID)
		if err != nil {
			return nil, err
		}
		return &Result{Success: true, Data: map[string]any{"project": services.View(p)}}, nil

	case ActionProjectUpdate:
		projectID, err := payload.String("project_id")
		if err != nil {
			return nil, err
		}
		p, err := a.projects.Update(ctx, identity, projectID,
			payload.OptionalString("name"), payload.OptionalString("description"))
		if err != nil {
			return nil, err
		}
		a.activity.Record(ctx, p.ID, identity.UserID, "project_updated", "project", p.ID,
			"updated project metadata", nil)
		return &Result{Success: true, Data: map[string]any{"project": services.View(p)}}, nil

	case ActionProjectDelete:
		projectID, err := payload.String("project_id")
		if err != nil {
			return nil, err
		}
		if err := a.projects.Archive(ctx, identity, projectID); err != nil {
			return nil, err
		}
		a.activity.Record(ctx, projectID, identity.UserID, "project_archived", "project", projectID,
			"archived project", nil)
		return &Result{Success: true}, nil

	case ActionAdvancePhase:
		return a.advancePhase(ctx, identity, payload)

	default:
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownAction, IDProjectManager, action)
	}
}

// advancePhase moves the project one step along the fixed sequence. The
// quality gate has already approved by the time this runs.
func (a *ProjectManagerAgent) advancePhase(ctx context.Context, identity models.Identity, payload Payload) (*Result, error) {
	projectID, err := payload.String("project_id")
	if err != nil {
		return nil, err
	}
	p, err := a.projects.GetEditable(ctx, identity, projectID)
	if err != nil {
		return nil, err
	}

	current := models.Phase(p.CurrentPhase)
	next, ok := current.Next()
	if !ok {
		return nil, services.NewValidationError("phase", "already in the final phase")
	}

	updated, err := a.projects.SetPhase(ctx, projectID, next)
	if err != nil {
		return nil, err
	}
	a.activity.Record(ctx, projectID, identity.UserID, "phase_advanced", "project", projectID,
		fmt.Sprintf("advanced phase from %s to %s", current, next),
		map[string]any{"from": string(current), "to": string(next)})

	return &Result{Success: true, Data: map[string]any{
		"project":        services.View(updated),
		"previous_phase": string(current),
		"new_phase":      string(next),
	}}, nil
}
