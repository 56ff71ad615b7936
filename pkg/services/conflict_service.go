package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/specsmith/specsmith/ent"
	entconflict "github.com/specsmith/specsmith/ent/conflict"
	"github.com/specsmith/specsmith/ent/specification"
	"github.com/specsmith/specsmith/pkg/config"
	"github.com/specsmith/specsmith/pkg/models"
)

// Merge resolver policies.
const (
	MergeResolversCreatorOrEditor = "creator_or_editor"
	MergeResolversAnyMember       = "any_member"
)

// ConflictService manages the conflict lifecycle. Terminal resolutions are
// absorbing: a resolved conflict can never be reopened or re-resolved.
type ConflictService struct {
	client   *ent.Client
	projects *ProjectService
	quality  *config.QualityConfig
	logger   *slog.Logger
}

// NewConflictService creates a new ConflictService.
func NewConflictService(client *ent.Client, projects *ProjectService, quality *config.QualityConfig, logger *slog.Logger) *ConflictService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConflictService{client: client, projects: projects, quality: quality, logger: logger}
}

// List returns a project's conflicts, pending first, newest first within
// each state.
func (s *ConflictService) List(httpCtx context.Context, identity models.Identity, projectID string, onlyPending bool) ([]models.ConflictRecord, error) {
	if _, err := s.projects.Get(httpCtx, identity, projectID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	q := s.client.Conflict.Query().
		Where(entconflict.ProjectIDEQ(projectID))
	if onlyPending {
		q = q.Where(entconflict.ResolutionEQ(entconflict.ResolutionPending))
	}

	rows, err := q.
		Order(ent.Desc(entconflict.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conflicts: %w", err)
	}

	records := conflictRecords(rows)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Resolution == models.ResolutionPending &&
			records[j].Resolution != models.ResolutionPending
	})
	return records, nil
}

// Get loads one conflict with a view-access check on its project.
func (s *ConflictService) Get(httpCtx context.Context, identity models.Identity, conflictID string) (*models.ConflictRecord, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	row, err := s.client.Conflict.Get(ctx, conflictID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conflict: %w", err)
	}
	if _, err := s.projects.Get(httpCtx, identity, row.ProjectID); err != nil {
		return nil, err
	}
	record := conflictRecord(row)
	return &record, nil
}

// CountPending returns the number of unresolved conflicts on a project.
func (s *ConflictService) CountPending(httpCtx context.Context, projectID string) (int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	n, err := s.client.Conflict.Query().
		Where(
			entconflict.ProjectIDEQ(projectID),
			entconflict.ResolutionEQ(entconflict.ResolutionPending),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count conflicts: %w", err)
	}
	return n, nil
}

// Resolve applies a terminal resolution to a pending conflict:
//
//   - keep_old leaves the incumbent in place and closes the conflict.
//   - replace supersedes the current value with the conflict's proposed one.
//   - merge supersedes it with a caller-supplied merged value; who may merge
//     is governed by the configured resolver policy.
//
// The resolution, the supersede, and the maturity cache refresh commit in
// one transaction.
func (s *ConflictService) Resolve(httpCtx context.Context, identity models.Identity, conflictID string, req models.ResolveConflictRequest) (*models.ConflictRecord, error) {
	if !req.Resolution.IsTerminal() {
		return nil, NewValidationError("resolution", "must be keep_old, replace or merge")
	}
	if req.Resolution == models.ResolutionMerge && req.MergedValue == "" {
		return nil, NewValidationError("merged_value", "required for merge")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	// Access check happens before the transaction; the conflict row itself
	// is re-checked under lock.
	preview, err := s.client.Conflict.Get(ctx, conflictID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conflict: %w", err)
	}
	role, err := s.projects.Role(httpCtx, identity, preview.ProjectID)
	if err != nil {
		return nil, err
	}
	if err := s.checkResolverAccess(identity, preview, role, req.Resolution); err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction: %w", err)
	}

	record, err := s.applyResolution(ctx, tx, identity, conflictID, req)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Error("Rollback failed after resolve error", "conflict_id", conflictID, "error", rbErr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit resolution: %w", err)
	}
	return record, nil
}

// checkResolverAccess enforces who may apply each resolution. keep_old and
// replace need edit access; merge follows the configured policy.
func (s *ConflictService) checkResolverAccess(identity models.Identity, c *ent.Conflict, role AccessRole, resolution models.Resolution) error {
	if resolution != models.ResolutionMerge {
		if !role.CanEdit() {
			return ErrForbidden
		}
		return nil
	}

	policy := MergeResolversCreatorOrEditor
	if s.quality != nil && s.quality.MergeResolvers != "" {
		policy = s.quality.MergeResolvers
	}
	switch policy {
	case MergeResolversAnyMember:
		if !role.CanView() {
			return ErrForbidden
		}
	default:
		if !role.CanEdit() && c.CreatedBy != identity.UserID {
			return ErrForbidden
		}
		if c.CreatedBy == identity.UserID && !role.CanView() {
			return ErrForbidden
		}
	}
	return nil
}

func (s *ConflictService) applyResolution(ctx context.Context, tx *ent.Tx, identity models.Identity, conflictID string, req models.ResolveConflictRequest) (*models.ConflictRecord, error) {
	c, err := tx.Conflict.Query().
		Where(entconflict.IDEQ(conflictID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock conflict: %w", err)
	}
	if c.Resolution != entconflict.ResolutionPending {
		return nil, ErrConflictResolved
	}

	switch req.Resolution {
	case models.ResolutionKeepOld:
		// Incumbent stays; nothing to write beyond the conflict row.

	case models.ResolutionReplace:
		if err := s.replaceCurrent(ctx, tx, c, c.NewValue, c.NewConfidence, specification.SourceExtracted); err != nil {
			return nil, err
		}

	case models.ResolutionMerge:
		if err := s.replaceCurrent(ctx, tx, c, req.MergedValue, 1, specification.SourceUserInput); err != nil {
			return nil, err
		}
	}

	updated, err := tx.Conflict.UpdateOneID(c.ID).
		SetResolution(entconflict.Resolution(req.Resolution)).
		SetResolver(identity.UserID).
		SetResolvedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to close conflict: %w", err)
	}

	if _, err := recomputeMaturityTx(ctx, tx, c.ProjectID); err != nil {
		return nil, err
	}

	record := conflictRecord(updated)
	return &record, nil
}

// replaceCurrent supersedes the current spec for the conflict's key with the
// given value. The original incumbent may itself have been superseded since
// the conflict opened; the replacement always applies to whatever is current
// now.
func (s *ConflictService) replaceCurrent(ctx context.Context, tx *ent.Tx, c *ent.Conflict, value string, confidence float64, source specification.Source) error {
	incumbent, err := tx.Specification.Query().
		Where(
			specification.ProjectIDEQ(c.ProjectID),
			specification.CategoryEQ(c.Category),
			specification.KeyEQ(c.Key),
			specification.IsCurrent(true),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("failed to lock incumbent: %w", err)
		}
		// No current row for the key anymore; insert fresh, still linked to
		// the conflict's original incumbent.
		_, err := tx.Specification.Create().
			SetID(uuid.New().String()).
			SetProjectID(c.ProjectID).
			SetCategory(c.Category).
			SetKey(c.Key).
			SetValue(value).
			SetConfidence(clampConfidence(confidence)).
			SetSource(source).
			SetSupersedesID(c.IncumbentSpecID).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert replacement: %w", err)
		}
		return nil
	}

	_, err = supersedeTx(ctx, tx, incumbent, value, confidence, source)
	return err
}
