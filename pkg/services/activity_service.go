package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/specsmith/specsmith/ent"
	"github.com/specsmith/specsmith/ent/activitylog"
	"github.com/specsmith/specsmith/pkg/models"
)

// ActivityService writes and reads the per-project audit trail. Recording is
// best effort: a failed audit write is logged, never surfaced, so it cannot
// fail the operation it describes.
type ActivityService struct {
	client   *ent.Client
	projects *ProjectService
	logger   *slog.Logger
}

// NewActivityService creates a new ActivityService.
func NewActivityService(client *ent.Client, projects *ProjectService, logger *slog.Logger) *ActivityService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivityService{client: client, projects: projects, logger: logger}
}

// Record appends one audit entry.
func (s *ActivityService) Record(httpCtx context.Context, projectID, actorID, actionType, entityType, entityID, description string, detail map[string]any) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	err := s.client.ActivityLog.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetActorID(actorID).
		SetActionType(actionType).
		SetEntityType(entityType).
		SetEntityID(entityID).
		SetDescription(description).
		SetDetail(detail).
		Exec(ctx)
	if err != nil {
		s.logger.Error("Failed to record activity",
			"project_id", projectID,
			"action_type", actionType,
			"error", err)
	}
}

// Feed returns a project's activity, newest first.
func (s *ActivityService) Feed(httpCtx context.Context, identity models.Identity, projectID string, limit, offset int) ([]models.ActivityView, error) {
	if _, err := s.projects.Get(httpCtx, identity, projectID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	rows, err := s.client.ActivityLog.Query().
		Where(activitylog.ProjectIDEQ(projectID)).
		Order(ent.Desc(activitylog.FieldCreatedAt)).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	views := make([]models.ActivityView, len(rows))
	for i, row := range rows {
		views[i] = models.ActivityView{
			ID:          row.ID,
			ActorID:     row.ActorID,
			ActionType:  row.ActionType,
			EntityType:  row.EntityType,
			EntityID:    row.EntityID,
			Description: row.Description,
			Detail:      row.Detail,
			CreatedAt:   row.CreatedAt,
		}
	}
	return views, nil
}
