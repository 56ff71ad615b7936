package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/specsmith/specsmith/ent"
	"github.com/specsmith/specsmith/ent/conversationturn"
	"github.com/specsmith/specsmith/ent/session"
	"github.com/specsmith/specsmith/pkg/models"
)

// appendRetries bounds how often an append re-reads the sequence counter
// after losing a write race.
const appendRetries = 5

// SessionService manages sessions and their conversation history.
type SessionService struct {
	client   *ent.Client
	projects *ProjectService
}

// NewSessionService creates a new SessionService.
func NewSessionService(client *ent.Client, projects *ProjectService) *SessionService {
	return &SessionService{client: client, projects: projects}
}

// Start opens a session in a project the caller can edit.
func (s *SessionService) Start(httpCtx context.Context, identity models.Identity, req models.StartSessionRequest) (*ent.Session, error) {
	mode := session.ModeSocratic
	if req.Mode != "" {
		mode = session.Mode(req.Mode)
		if mode != session.ModeSocratic && mode != session.ModeDirectChat {
			return nil, NewValidationError("mode", "must be socratic or direct_chat")
		}
	}

	if _, err := s.projects.GetEditable(httpCtx, identity, req.ProjectID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	sess, err := s.client.Session.Create().
		SetID(uuid.New().String()).
		SetProjectID(req.ProjectID).
		SetUserID(identity.UserID).
		SetMode(mode).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return sess, nil
}

// Get loads a session, checking the caller can view its project.
func (s *SessionService) Get(httpCtx context.Context, identity models.Identity, sessionID string) (*ent.Session, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	sess, err := s.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if _, err := s.projects.Get(httpCtx, identity, sess.ProjectID); err != nil {
		return nil, err
	}
	return sess, nil
}

// GetActive loads a session and rejects mutation of an ended one. Ended
// sessions are immutable; there is no reopening.
func (s *SessionService) GetActive(httpCtx context.Context, identity models.Identity, sessionID string) (*ent.Session, error) {
	sess, err := s.Get(httpCtx, identity, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status == session.StatusEnded {
		return nil, ErrSessionEnded
	}
	return sess, nil
}

// End closes a session. Ending an already-ended session reports
// SessionEnded like any other mutation.
func (s *SessionService) End(httpCtx context.Context, identity models.Identity, sessionID string) (*ent.Session, error) {
	sess, err := s.GetActive(httpCtx, identity, sessionID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	updated, err := s.client.Session.UpdateOneID(sess.ID).
		SetStatus(session.StatusEnded).
		SetEndedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to end session: %w", err)
	}
	return updated, nil
}

// ToggleMode flips the session between socratic and direct_chat. History and
// extracted specifications are unaffected.
func (s *SessionService) ToggleMode(httpCtx context.Context, identity models.Identity, sessionID, mode string) (*ent.Session, error) {
	m := session.Mode(mode)
	if m != session.ModeSocratic && m != session.ModeDirectChat {
		return nil, NewValidationError("mode", "must be socratic or direct_chat")
	}

	sess, err := s.GetActive(httpCtx, identity, sessionID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	updated, err := s.client.Session.UpdateOneID(sess.ID).
		SetMode(m).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle mode: %w", err)
	}
	return updated, nil
}

// AppendTurn appends one turn with the next sequence number. Concurrent
// appends race on the unique (session_id, sequence) index; a loser re-reads
// the counter and retries up to the budget, so sequences stay gapless and
// strictly increasing per session.
func (s *SessionService) AppendTurn(httpCtx context.Context, sessionID, role, content string) (*ent.ConversationTurn, error) {
	r := conversationturn.Role(role)
	if r != conversationturn.RoleUser && r != conversationturn.RoleAssistant && r != conversationturn.RoleSystem {
		return nil, NewValidationError("role", "must be user, assistant or system")
	}
	if content == "" {
		return nil, NewValidationError("content", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	sess, err := s.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if sess.Status == session.StatusEnded {
		return nil, ErrSessionEnded
	}

	for attempt := 0; attempt < appendRetries; attempt++ {
		next, err := s.nextSequence(ctx, sessionID)
		if err != nil {
			return nil, err
		}

		turn, err := s.client.ConversationTurn.Create().
			SetID(uuid.New().String()).
			SetSessionID(sessionID).
			SetSequence(next).
			SetRole(r).
			SetContent(content).
			Save(ctx)
		if err == nil {
			return turn, nil
		}
		if !ent.IsConstraintError(err) {
			return nil, fmt.Errorf("failed to append turn: %w", err)
		}
	}
	return nil, ErrConcurrentModification
}

func (s *SessionService) nextSequence(ctx context.Context, sessionID string) (int, error) {
	last, err := s.client.ConversationTurn.Query().
		Where(conversationturn.SessionIDEQ(sessionID)).
		Order(ent.Desc(conversationturn.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to read sequence: %w", err)
	}
	return last.Sequence + 1, nil
}

// History returns the session's turns in sequence order.
func (s *SessionService) History(httpCtx context.Context, identity models.Identity, sessionID string, limit, offset int) ([]models.ConversationTurnView, error) {
	if _, err := s.Get(httpCtx, identity, sessionID); err != nil {
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

	turns, err := s.client.ConversationTurn.Query().
		Where(conversationturn.SessionIDEQ(sessionID)).
		Order(ent.Asc(conversationturn.FieldSequence)).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list turns: %w", err)
	}

	views := make([]models.ConversationTurnView, len(turns))
	for i, t := range turns {
		views[i] = models.ConversationTurnView{
			Sequence:  t.Sequence,
			Role:      string(t.Role),
			Content:   t.Content,
			CreatedAt: t.CreatedAt,
		}
	}
	return views, nil
}

// RecentTurns returns the newest turns, oldest first, for prompt context.
func (s *SessionService) RecentTurns(httpCtx context.Context, sessionID string, count int) ([]models.ConversationTurnView, error) {
	if count <= 0 {
		count = 20
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	turns, err := s.client.ConversationTurn.Query().
		Where(conversationturn.SessionIDEQ(sessionID)).
		Order(ent.Desc(conversationturn.FieldSequence)).
		Limit(count).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list turns: %w", err)
	}

	views := make([]models.ConversationTurnView, len(turns))
	for i, t := range turns {
		// Reverse into chronological order.
		views[len(turns)-1-i] = models.ConversationTurnView{
			Sequence:  t.Sequence,
			Role:      string(t.Role),
			Content:   t.Content,
			CreatedAt: t.CreatedAt,
		}
	}
	return views, nil
}
