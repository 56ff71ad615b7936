package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/specsmith/specsmith/ent"
	"github.com/specsmith/specsmith/ent/project"
	"github.com/specsmith/specsmith/ent/projectshare"
	"github.com/specsmith/specsmith/pkg/models"
)

// AccessRole ranks a caller's standing on a project.
type AccessRole int

const (
	RoleNone AccessRole = iota
	RoleViewer
	RoleEditor
	RoleOwner
)

// CanView reports read access.
func (r AccessRole) CanView() bool { return r >= RoleViewer }

// CanEdit reports write access.
func (r AccessRole) CanEdit() bool { return r >= RoleEditor }

// ProjectService manages projects, sharing, and phase state in the work
// store.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService.
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// Create creates a project owned by the caller.
func (s *ProjectService) Create(httpCtx context.Context, identity models.Identity, req models.CreateProjectRequest) (*ent.Project, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	p, err := s.client.Project.Create().
		SetID(uuid.New().String()).
		SetOwnerID(identity.UserID).
		SetName(req.Name).
		SetDescription(req.Description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

// Get loads a project the caller can at least view. Soft-deleted projects
// are invisible.
func (s *ProjectService) Get(httpCtx context.Context, identity models.Identity, projectID string) (*ent.Project, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	p, role, err := s.getWithRole(ctx, identity, projectID)
	if err != nil {
		return nil, err
	}
	if !role.CanView() {
		return nil, ErrForbidden
	}
	return p, nil
}

// GetEditable loads a project the caller can modify.
func (s *ProjectService) GetEditable(httpCtx context.Context, identity models.Identity, projectID string) (*ent.Project, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	p, role, err := s.getWithRole(ctx, identity, projectID)
	if err != nil {
		return nil, err
	}
	if !role.CanEdit() {
		return nil, ErrForbidden
	}
	return p, nil
}

// Update changes a project's name and/or description. Empty fields are left
// untouched.
func (s *ProjectService) Update(httpCtx context.Context, identity models.Identity, projectID, name, description string) (*ent.Project, error) {
	if _, err := s.GetEditable(httpCtx, identity, projectID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	update := s.client.Project.UpdateOneID(projectID)
	if name != "" {
		update = update.SetName(name)
	}
	if description != "" {
		update = update.SetDescription(description)
	}
	p, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return p, nil
}

// Role resolves the caller's access role on a project.
func (s *ProjectService) Role(httpCtx context.Context, identity models.Identity, projectID string) (AccessRole, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	_, role, err := s.getWithRole(ctx, identity, projectID)
	return role, err
}

func (s *ProjectService) getWithRole(ctx context.Context, identity models.Identity, projectID string) (*ent.Project, AccessRole, error) {
	if projectID == "" {
		return nil, RoleNone, NewValidationError("project_id", "required")
	}

	p, err := s.client.Project.Query().
		Where(project.IDEQ(projectID), project.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, RoleNone, ErrNotFound
		}
		return nil, RoleNone, fmt.Errorf("failed to get project: %w", err)
	}

	if p.OwnerID == identity.UserID || identity.IsAdmin {
		return p, RoleOwner, nil
	}

	share, err := s.client.ProjectShare.Query().
		Where(
			projectshare.ProjectIDEQ(projectID),
			projectshare.UserIDEQ(identity.UserID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return p, RoleNone, nil
		}
		return nil, RoleNone, fmt.Errorf("failed to query share: %w", err)
	}

	if share.Role == projectshare.RoleEditor {
		return p, RoleEditor, nil
	}
	return p, RoleViewer, nil
}

// List returns the caller's projects: owned plus shared, newest first.
func (s *ProjectService) List(httpCtx context.Context, identity models.Identity) ([]*ent.Project, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	sharedIDs, err := s.client.ProjectShare.Query().
		Where(projectshare.UserIDEQ(identity.UserID)).
		Select(projectshare.FieldProjectID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shares: %w", err)
	}

	projects, err := s.client.Project.Query().
		Where(
			project.DeletedAtIsNil(),
			project.Or(
				project.OwnerIDEQ(identity.UserID),
				project.IDIn(sharedIDs...),
			),
		).
		Order(ent.Desc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Share grants a user viewer or editor access. Only the owner may share, and
// re-sharing an existing grantee updates the role in place.
func (s *ProjectService) Share(httpCtx context.Context, identity models.Identity, projectID string, req models.ShareProjectRequest) (*ent.ProjectShare, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	role := projectshare.Role(req.Role)
	if role != projectshare.RoleViewer && role != projectshare.RoleEditor {
		return nil, NewValidationError("role", "must be viewer or editor")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	p, callerRole, err := s.getWithRole(ctx, identity, projectID)
	if err != nil {
		return nil, err
	}
	if callerRole != RoleOwner {
		return nil, ErrForbidden
	}
	if req.UserID == p.OwnerID {
		return nil, NewValidationError("user_id", "owner already has full access")
	}

	existing, err := s.client.ProjectShare.Query().
		Where(
			projectshare.ProjectIDEQ(projectID),
			projectshare.UserIDEQ(req.UserID),
		).
		Only(ctx)
	if err == nil {
		updated, err := s.client.ProjectShare.UpdateOneID(existing.ID).
			SetRole(role).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update share: %w", err)
		}
		return updated, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query share: %w", err)
	}

	share, err := s.client.ProjectShare.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetUserID(req.UserID).
		SetRole(role).
		SetGrantedBy(identity.UserID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create share: %w", err)
	}
	return share, nil
}

// Archive soft-deletes a project. Owner only; the retention sweeper prunes
// the row later.
func (s *ProjectService) Archive(httpCtx context.Context, identity models.Identity, projectID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	_, role, err := s.getWithRole(ctx, identity, projectID)
	if err != nil {
		return err
	}
	if role != RoleOwner {
		return ErrForbidden
	}

	if err := s.client.Project.UpdateOneID(projectID).
		SetStatus(project.StatusArchived).
		SetDeletedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to archive project: %w", err)
	}
	return nil
}

// SetPhase records a phase advancement. Gate checks belong to the quality
// engine; by the time this runs the orchestrator has already approved it.
func (s *ProjectService) SetPhase(httpCtx context.Context, projectID string, phase models.Phase) (*ent.Project, error) {
	if !phase.IsValid() {
		return nil, NewValidationError("phase", "unknown phase")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	p, err := s.client.Project.UpdateOneID(projectID).
		SetCurrentPhase(project.CurrentPhase(phase)).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set phase: %w", err)
	}
	return p, nil
}

// View maps a project row to its caller-facing shape.
func View(p *ent.Project) models.ProjectView {
	return models.ProjectView{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		CurrentPhase:  models.Phase(p.CurrentPhase),
		MaturityScore: p.MaturityScore,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
	}
}
