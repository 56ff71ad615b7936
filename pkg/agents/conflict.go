package agents

import (
	"context"
	"fmt"

	"github.com/specsmith/specsmith/pkg/models"
	"github.com/specsmith/specsmith/pkg/services"
)

// Conflict agent actions.
const (
	ActionConflictList    = "list"
	ActionConflictDetail  = "detail"
	ActionConflictResolve = "resolve"
)

// ConflictAgent exposes the conflict lifecycle to the orchestrator.
type ConflictAgent struct {
	conflicts *services.ConflictService
	specs     *services.SpecificationService
}

// NewConflictAgent creates a new ConflictAgent.
func NewConflictAgent(conflicts *services.ConflictService, specs *services.SpecificationService) *ConflictAgent {
	return &ConflictAgent{conflicts: conflicts, specs: specs}
}

// ID implements Agent.
func (a *ConflictAgent) ID() string { return IDConflict }

// Execute implements Agent.
func (a *ConflictAgent) Execute(ctx context.Context, identity models.Identity, action string, payload Payload) (*Result, error) {
	switch action {
	case ActionConflictList:
		projectID, err := payload.String("project_id")
		if err != nil {
			return nil, err
		}
		onlyPending := payload.OptionalString("filter") == "pending"
		list, err := a.conflicts.List(ctx, identity, projectID, onlyPending)
		if err != nil {
			return nil, err
		}
		return &Result{Success: true, Data: map[string]any{"conflicts": list}}, nil

	case ActionConflictDetail:
		conflictID, err := payload.String("conflict_id")
		if err != nil {
			return nil, err
		}
		return a.detail(ctx, identity, conflictID)

	case ActionConflictResolve:
		conflictID, err := payload.String("conflict_id")
		if err != nil {
			return nil, err
		}
		resolution, err := payload.String("resolution")
		if err != nil {
			return nil, err
		}
		record, err := a.conflicts.Resolve(ctx, identity, conflictID, models.ResolveConflictRequest{
			Resolution:  models.Resolution(resolution),
			MergedValue: payload.OptionalString("merged_value"),
		})
		if err != nil {
			return nil, err
		}
		return &Result{Success: true, Data: map[string]any{"conflict": record}}, nil

	default:
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownAction, IDConflict, action)
	}
}

// detail returns the conflict together with the full version history of the
// contested key, so a resolver can see how the value evolved.
func (a *ConflictAgent) detail(ctx context.Context, identity models.Identity, conflictID string) (*Result, error) {
	record, err := a.conflicts.Get(ctx, identity, conflictID)
	if err != nil {
		return nil, err
	}
	history, err := a.specs.History(ctx, record.ProjectID, record.Category, record.Key)
	if err != nil {
		return nil, err
	}
	return &Result{Success: true, Data: map[string]any{
		"conflict": record,
		"history":  history,
	}}, nil
}
