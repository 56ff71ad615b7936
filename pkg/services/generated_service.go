package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/specsmith/specsmith/ent"
	"github.com/specsmith/specsmith/ent/generatedfile"
	"github.com/specsmith/specsmith/ent/generatedproject"
	"github.com/specsmith/specsmith/pkg/models"
)

// versionRetries bounds how often Enqueue re-reads the version counter after
// losing the unique (project_id, version) race.
const versionRetries = 5

// GeneratedFileInput is one artifact file produced by a generation run.
type GeneratedFileInput struct {
	Path    string
	Content string
}

// GeneratedService manages code-generation runs and their artifacts. Runs
// move pending → in_progress → completed/failed; the queue worker pool
// drives the transitions.
type GeneratedService struct {
	client   *ent.Client
	projects *ProjectService
}

// NewGeneratedService creates a new GeneratedService.
func NewGeneratedService(client *ent.Client, projects *ProjectService) *GeneratedService {
	return &GeneratedService{client: client, projects: projects}
}

// Enqueue records a pending generation run with the next version for the
// project.
func (s *GeneratedService) Enqueue(httpCtx context.Context, identity models.Identity, projectID string) (*ent.GeneratedProject, error) {
	if _, err := s.projects.GetEditable(httpCtx, identity, projectID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	for attempt := 0; attempt < versionRetries; attempt++ {
		version, err := s.nextVersion(ctx, projectID)
		if err != nil {
			return nil, err
		}

		run, err := s.client.GeneratedProject.Create().
			SetID(uuid.New().String()).
			SetProjectID(projectID).
			SetVersion(version).
			SetRequestedBy(identity.UserID).
			Save(ctx)
		if err == nil {
			return run, nil
		}
		if !ent.IsConstraintError(err) {
			return nil, fmt.Errorf("failed to enqueue generation run: %w", err)
		}
	}
	return nil, ErrConcurrentModification
}

func (s *GeneratedService) nextVersion(ctx context.Context, projectID string) (int, error) {
	last, err := s.client.GeneratedProject.Query().
		Where(generatedproject.ProjectIDEQ(projectID)).
		Order(ent.Desc(generatedproject.FieldVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to read version: %w", err)
	}
	return last.Version + 1, nil
}

// Get loads one run with an access check.
func (s *GeneratedService) Get(httpCtx context.Context, identity models.Identity, runID string) (*ent.GeneratedProject, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	run, err := s.client.GeneratedProject.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get generation run: %w", err)
	}
	if _, err := s.projects.Get(httpCtx, identity, run.ProjectID); err != nil {
		return nil, err
	}
	return run, nil
}

// List returns a project's runs, newest version first.
func (s *GeneratedService) List(httpCtx context.Context, identity models.Identity, projectID string) ([]*ent.GeneratedProject, error) {
	if _, err := s.projects.Get(httpCtx, identity, projectID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	runs, err := s.client.GeneratedProject.Query().
		Where(generatedproject.ProjectIDEQ(projectID)).
		Order(ent.Desc(generatedproject.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list generation runs: %w", err)
	}
	return runs, nil
}

// Files returns a run's artifacts in path order.
func (s *GeneratedService) Files(httpCtx context.Context, identity models.Identity, runID string) ([]*ent.GeneratedFile, error) {
	if _, err := s.Get(httpCtx, identity, runID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	files, err := s.client.GeneratedFile.Query().
		Where(generatedfile.GeneratedProjectIDEQ(runID)).
		Order(ent.Asc(generatedfile.FieldPath)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return files, nil
}

// ClaimNext atomically claims the oldest pending run for a worker. The
// conditional update only wins if the run is still pending, so two workers
// can never claim the same run. Returns nil when the queue is empty.
func (s *GeneratedService) ClaimNext(httpCtx context.Context, podID string) (*ent.GeneratedProject, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	candidate, err := s.client.GeneratedProject.Query().
		Where(generatedproject.StatusEQ(generatedproject.StatusPending)).
		Order(ent.Asc(generatedproject.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find pending run: %w", err)
	}

	now := time.Now()
	n, err := s.client.GeneratedProject.Update().
		Where(
			generatedproject.IDEQ(candidate.ID),
			generatedproject.StatusEQ(generatedproject.StatusPending),
		).
		SetStatus(generatedproject.StatusInProgress).
		SetPodID(podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}
	if n == 0 {
		// Another worker won; the caller polls again.
		return nil, nil
	}
	return s.client.GeneratedProject.Get(ctx, candidate.ID)
}

// CountInProgress returns how many runs are currently executing across all
// replicas.
func (s *GeneratedService) CountInProgress(httpCtx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	n, err := s.client.GeneratedProject.Query().
		Where(generatedproject.StatusEQ(generatedproject.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active runs: %w", err)
	}
	return n, nil
}

// Heartbeat refreshes a claimed run's liveness marker.
func (s *GeneratedService) Heartbeat(httpCtx context.Context, runID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	err := s.client.GeneratedProject.UpdateOneID(runID).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat run: %w", err)
	}
	return nil
}

// CompleteRun stores the artifacts and marks the run completed, atomically.
func (s *GeneratedService) CompleteRun(httpCtx context.Context, runID string, files []GeneratedFileInput) error {
	ctx, cancel := context.WithTimeout(httpCtx, 30*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to open transaction: %w", err)
	}

	totalLines := 0
	for _, f := range files {
		lines := countLines(f.Content)
		totalLines += lines
		if err := tx.GeneratedFile.Create().
			SetID(uuid.New().String()).
			SetGeneratedProjectID(runID).
			SetPath(f.Path).
			SetContent(f.Content).
			SetLineCount(lines).
			Exec(ctx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to store file %s: %w", f.Path, err)
		}
	}

	if err := tx.GeneratedProject.UpdateOneID(runID).
		SetStatus(generatedproject.StatusCompleted).
		SetFileCount(len(files)).
		SetTotalLines(totalLines).
		SetCompletedAt(time.Now()).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to complete run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}
	return nil
}

// FailRun marks the run failed with its error message.
func (s *GeneratedService) FailRun(httpCtx context.Context, runID, message string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	err := s.client.GeneratedProject.UpdateOneID(runID).
		SetStatus(generatedproject.StatusFailed).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to fail run: %w", err)
	}
	return nil
}

// RecoverOrphans requeues in_progress runs whose heartbeat is older than the
// threshold, typically after a worker pod died. Returns how many were
// requeued.
func (s *GeneratedService) RecoverOrphans(httpCtx context.Context, threshold time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-threshold)
	n, err := s.client.GeneratedProject.Update().
		Where(
			generatedproject.StatusEQ(generatedproject.StatusInProgress),
			generatedproject.LastHeartbeatAtLT(cutoff),
		).
		SetStatus(generatedproject.StatusPending).
		ClearPodID().
		ClearStartedAt().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to recover orphans: %w", err)
	}
	return n, nil
}

// RunView maps a run to its caller-facing shape.
func RunView(run *ent.GeneratedProject) models.GeneratedProjectView {
	view := models.GeneratedProjectView{
		ID:         run.ID,
		ProjectID:  run.ProjectID,
		Version:    run.Version,
		Status:     string(run.Status),
		FileCount:  run.FileCount,
		TotalLines: run.TotalLines,
		CreatedAt:  run.CreatedAt,
		StartedAt:  run.StartedAt,
	}
	if run.ErrorMessage != nil {
		view.Error = *run.ErrorMessage
	}
	return view
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	return strings.Count(content, "\n") + 1
}
