package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/specsmith/specsmith/ent"
	"github.com/specsmith/specsmith/ent/qualitymetric"
)

// QualityMetricService records the quality engine's evaluations for later
// insight queries.
type QualityMetricService struct {
	client *ent.Client
}

// NewQualityMetricService creates a new QualityMetricService.
func NewQualityMetricService(client *ent.Client) *QualityMetricService {
	return &QualityMetricService{client: client}
}

// Record stores one evaluation snapshot.
func (s *QualityMetricService) Record(httpCtx context.Context, projectID, action string, biasScore, coverageScore, complexityScore float64) (*ent.QualityMetric, error) {
	if projectID == "" {
		return nil, NewValidationError("project_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	m, err := s.client.QualityMetric.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetAction(action).
		SetBiasScore(biasScore).
		SetCoverageScore(coverageScore).
		SetComplexityScore(complexityScore).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record quality metric: %w", err)
	}
	return m, nil
}

// Recent returns the newest evaluations for a project.
func (s *QualityMetricService) Recent(httpCtx context.Context, projectID string, limit int) ([]*ent.QualityMetric, error) {
	if limit <= 0 || limit > 200 {
		limit = 20
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	rows, err := s.client.QualityMetric.Query().
		Where(qualitymetric.ProjectIDEQ(projectID)).
		Order(ent.Desc(qualitymetric.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quality metrics: %w", err)
	}
	return rows, nil
}
