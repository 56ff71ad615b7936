package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/specsmith/specsmith/ent"
	entconflict "github.com/specsmith/specsmith/ent/conflict"
	"github.com/specsmith/specsmith/ent/specification"
	conflictengine "github.com/specsmith/specsmith/pkg/engine/conflict"
	specengine "github.com/specsmith/specsmith/pkg/engine/spec"
	"github.com/specsmith/specsmith/pkg/models"
)

// SpecificationService owns specification ingestion: planning against the
// current set, conflict detection, supersede bookkeeping, and the maturity
// cache. All writes for one ingest happen in a single transaction; the
// LLM-assisted detection pass runs before the transaction opens so no lock
// is held across a gateway call.
type SpecificationService struct {
	client   *ent.Client
	detector *conflictengine.Detector
	logger   *slog.Logger
}

// NewSpecificationService creates a new SpecificationService. A nil detector
// disables semantic detection but keeps the rule paths.
func NewSpecificationService(client *ent.Client, detector *conflictengine.Detector, logger *slog.Logger) *SpecificationService {
	if detector == nil {
		detector = conflictengine.NewDetector(nil, logger)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SpecificationService{client: client, detector: detector, logger: logger}
}

// ListCurrent returns the project's current specifications as engine records.
func (s *SpecificationService) ListCurrent(httpCtx context.Context, projectID string) ([]models.SpecRecord, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	rows, err := s.client.Specification.Query().
		Where(
			specification.ProjectIDEQ(projectID),
			specification.IsCurrent(true),
		).
		Order(ent.Asc(specification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list specifications: %w", err)
	}
	return specRecords(rows), nil
}

// History returns every version ever recorded for one (category, key),
// newest first. Supersede links let callers walk the chain.
func (s *SpecificationService) History(httpCtx context.Context, projectID, category, key string) ([]models.SpecRecord, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	rows, err := s.client.Specification.Query().
		Where(
			specification.ProjectIDEQ(projectID),
			specification.CategoryEQ(category),
			specification.KeyEQ(key),
		).
		Order(ent.Desc(specification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return specRecords(rows), nil
}

// Maturity recomputes the project's maturity report from current
// specifications. The stored score is only a cache; this is the truth.
func (s *SpecificationService) Maturity(httpCtx context.Context, projectID string) (models.MaturityReport, error) {
	current, err := s.ListCurrent(httpCtx, projectID)
	if err != nil {
		return models.MaturityReport{}, err
	}
	return specengine.Maturity(current), nil
}

// Ingest runs extracted candidates through planning and conflict detection,
// then applies the outcome atomically: clean candidates insert, duplicates
// no-op, contradictions open pending conflicts. Any candidate touching a key
// frozen by a pending conflict fails the whole batch with ErrProjectBlocked.
func (s *SpecificationService) Ingest(httpCtx context.Context, identity models.Identity, projectID string, candidates []models.SpecCandidate) (*models.ExtractionResult, error) {
	for _, c := range candidates {
		if c.Category == "" || c.Key == "" {
			return nil, NewValidationError("candidates", "category and key are required")
		}
	}
	if len(candidates) == 0 {
		return &models.ExtractionResult{}, nil
	}

	ctx, cancel := context.WithTimeout(httpCtx, 30*time.Second)
	defer cancel()

	// Detection pass over a snapshot, before any transaction: the semantic
	// path may call the gateway and must not hold locks.
	snapshot, err := s.ListCurrent(httpCtx, projectID)
	if err != nil {
		return nil, err
	}
	findings := make(map[[2]string]*conflictengine.Finding, len(candidates))
	for _, cand := range candidates {
		f, err := s.detector.Detect(ctx, snapshot, cand)
		if err != nil {
			return nil, fmt.Errorf("conflict detection failed: %w", err)
		}
		if f != nil {
			findings[[2]string{cand.Category, cand.Key}] = f
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction: %w", err)
	}

	result, err := s.applyIngest(ctx, tx, identity, projectID, candidates, findings)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Error("Rollback failed after ingest error", "project_id", projectID, "error", rbErr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ingest: %w", err)
	}
	return result, nil
}

func (s *SpecificationService) applyIngest(
	ctx context.Context,
	tx *ent.Tx,
	identity models.Identity,
	projectID string,
	candidates []models.SpecCandidate,
	findings map[[2]string]*conflictengine.Finding,
) (*models.ExtractionResult, error) {
	// Re-read under lock; the snapshot used for detection may be stale.
	currentRows, err := tx.Specification.Query().
		Where(
			specification.ProjectIDEQ(projectID),
			specification.IsCurrent(true),
		).
		ForUpdate().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock current specifications: %w", err)
	}
	current := specRecords(currentRows)

	pendingRows, err := tx.Conflict.Query().
		Where(
			entconflict.ProjectIDEQ(projectID),
			entconflict.ResolutionEQ(entconflict.ResolutionPending),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending conflicts: %w", err)
	}
	blocked := specengine.BlockedKeys(conflictRecords(pendingRows))

	byID := make(map[string]*ent.Specification, len(currentRows))
	for _, row := range currentRows {
		byID[row.ID] = row
	}

	result := &models.ExtractionResult{}
	for _, decision := range specengine.PlanIngest(current, candidates) {
		cand := decision.Candidate
		key := [2]string{cand.Category, cand.Key}
		if blocked[key] {
			return nil, ErrProjectBlocked
		}

		finding := findings[key]
		switch {
		case decision.Action == specengine.ActionNoOp:
			continue

		case decision.Action == specengine.ActionConflict || finding != nil:
			row, err := s.createConflict(ctx, tx, identity, projectID, cand, decision, finding, byID)
			if err != nil {
				return nil, err
			}
			result.Conflicts = append(result.Conflicts, conflictRecord(row))

		default:
			row, err := tx.Specification.Create().
				SetID(uuid.New().String()).
				SetProjectID(projectID).
				SetCategory(cand.Category).
				SetKey(cand.Key).
				SetValue(cand.Value).
				SetConfidence(clampConfidence(cand.Confidence)).
				SetSource(specSource(cand.Source)).
				Save(ctx)
			if err != nil {
				if ent.IsConstraintError(err) {
					return nil, ErrConcurrentModification
				}
				return nil, fmt.Errorf("failed to insert specification: %w", err)
			}
			result.NewSpecs = append(result.NewSpecs, specRecord(row))
		}
	}

	if _, err := recomputeMaturityTx(ctx, tx, projectID); err != nil {
		return nil, err
	}
	return result, nil
}

// createConflict opens one pending conflict for the candidate. The incumbent
// comes from the plan's exact-key decision or the detector's finding.
func (s *SpecificationService) createConflict(
	ctx context.Context,
	tx *ent.Tx,
	identity models.Identity,
	projectID string,
	cand models.SpecCandidate,
	decision specengine.IngestDecision,
	finding *conflictengine.Finding,
	byID map[string]*ent.Specification,
) (*ent.Conflict, error) {
	incumbentID := ""
	conflictType := conflictengine.TypeForCategory(cand.Category)
	detail := ""

	if finding != nil {
		incumbentID = finding.Incumbent.ID
		conflictType = finding.Type
		detail = finding.Detail
	}
	if incumbentID == "" && decision.Incumbent != nil {
		incumbentID = decision.Incumbent.ID
		detail = fmt.Sprintf("current value %q disagrees with proposed %q",
			decision.Incumbent.Value, cand.Value)
	}
	if _, ok := byID[incumbentID]; !ok {
		// The incumbent vanished between detection and the locked re-read;
		// treat the pair as gone rather than record a dangling conflict.
		return nil, ErrConcurrentModification
	}

	row, err := tx.Conflict.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetIncumbentSpecID(incumbentID).
		SetCategory(cand.Category).
		SetKey(cand.Key).
		SetNewValue(cand.Value).
		SetNewConfidence(clampConfidence(cand.Confidence)).
		SetConflictType(entconflict.ConflictType(conflictType)).
		SetDetail(detail).
		SetCreatedBy(identity.UserID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create conflict: %w", err)
	}
	return row, nil
}

// supersedeTx flips the incumbent and inserts its successor, linking the two
// via supersedes_id. Runs inside the caller's transaction.
func supersedeTx(ctx context.Context, tx *ent.Tx, incumbent *ent.Specification, value string, confidence float64, source specification.Source) (*ent.Specification, error) {
	if err := tx.Specification.UpdateOneID(incumbent.ID).
		SetIsCurrent(false).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to retire incumbent: %w", err)
	}

	successor, err := tx.Specification.Create().
		SetID(uuid.New().String()).
		SetProjectID(incumbent.ProjectID).
		SetCategory(incumbent.Category).
		SetKey(incumbent.Key).
		SetValue(value).
		SetConfidence(clampConfidence(confidence)).
		SetSource(source).
		SetSupersedesID(incumbent.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert successor: %w", err)
	}
	return successor, nil
}

// recomputeMaturityTx refreshes the project's cached maturity score from the
// transaction's view of current specifications.
func recomputeMaturityTx(ctx context.Context, tx *ent.Tx, projectID string) (models.MaturityReport, error) {
	rows, err := tx.Specification.Query().
		Where(
			specification.ProjectIDEQ(projectID),
			specification.IsCurrent(true),
		).
		All(ctx)
	if err != nil {
		return models.MaturityReport{}, fmt.Errorf("failed to reload specifications: %w", err)
	}

	report := specengine.Maturity(specRecords(rows))
	if err := tx.Project.UpdateOneID(projectID).
		SetMaturityScore(report.Score).
		Exec(ctx); err != nil {
		return models.MaturityReport{}, fmt.Errorf("failed to cache maturity score: %w", err)
	}
	return report, nil
}

// clampConfidence bounds a candidate confidence to [0,1]. Zero is a real
// value; callers that mean "unspecified" resolve their own default before
// handing the candidate over.
func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

func specSource(src models.SpecSource) specification.Source {
	switch src {
	case models.SourceUserInput, models.SourceExtracted, models.SourceImported, models.SourceInferred:
		return specification.Source(src)
	default:
		return specification.SourceExtracted
	}
}

func specRecord(row *ent.Specification) models.SpecRecord {
	rec := models.SpecRecord{
		ID:         row.ID,
		ProjectID:  row.ProjectID,
		Category:   row.Category,
		Key:        row.Key,
		Value:      row.Value,
		Confidence: row.Confidence,
		Source:     models.SpecSource(row.Source),
		IsCurrent:  row.IsCurrent,
		CreatedAt:  row.CreatedAt,
	}
	if row.SupersedesID != nil {
		rec.SupersedesID = *row.SupersedesID
	}
	return rec
}

func specRecords(rows []*ent.Specification) []models.SpecRecord {
	out := make([]models.SpecRecord, len(rows))
	for i, row := range rows {
		out[i] = specRecord(row)
	}
	return out
}

func conflictRecord(row *ent.Conflict) models.ConflictRecord {
	rec := models.ConflictRecord{
		ID:              row.ID,
		ProjectID:       row.ProjectID,
		IncumbentSpecID: row.IncumbentSpecID,
		Category:        row.Category,
		Key:             row.Key,
		NewValue:        row.NewValue,
		NewConfidence:   row.NewConfidence,
		Type:            models.ConflictType(row.ConflictType),
		Detail:          row.Detail,
		Resolution:      models.Resolution(row.Resolution),
		CreatedBy:       row.CreatedBy,
		CreatedAt:       row.CreatedAt,
		ResolvedAt:      row.ResolvedAt,
	}
	if row.Resolver != nil {
		rec.Resolver = *row.Resolver
	}
	return rec
}

func conflictRecords(rows []*ent.Conflict) []models.ConflictRecord {
	out := make([]models.ConflictRecord, len(rows))
	for i, row := range rows {
		out[i] = conflictRecord(row)
	}
	return out
}
