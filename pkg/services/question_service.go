package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/specsmith/specsmith/ent"
	"github.com/specsmith/specsmith/ent/question"
	"github.com/specsmith/specsmith/pkg/models"
)

// QuestionService persists generated Socratic questions with their
// generation metadata.
type QuestionService struct {
	client *ent.Client
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(client *ent.Client) *QuestionService {
	return &QuestionService{client: client}
}

// SaveQuestionInput carries a finished draft and its metadata.
type SaveQuestionInput struct {
	SessionID     string
	Text          string
	Category      string
	Role          string
	BiasScore     float64
	Model         string
	Regenerations int
}

// Save stores one generated question.
func (s *QuestionService) Save(httpCtx context.Context, in SaveQuestionInput) (*ent.Question, error) {
	if in.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if in.Text == "" {
		return nil, NewValidationError("text", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	q, err := s.client.Question.Create().
		SetID(uuid.New().String()).
		SetSessionID(in.SessionID).
		SetText(in.Text).
		SetCategory(in.Category).
		SetRole(in.Role).
		SetBiasScore(in.BiasScore).
		SetModel(in.Model).
		SetRegenerations(in.Regenerations).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound // session does not exist
		}
		return nil, fmt.Errorf("failed to save question: %w", err)
	}
	return q, nil
}

// RecentForSession returns the newest questions asked in a session.
func (s *QuestionService) RecentForSession(httpCtx context.Context, sessionID string, limit int) ([]*ent.Question, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	rows, err := s.client.Question.Query().
		Where(question.SessionIDEQ(sessionID)).
		Order(ent.Desc(question.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return rows, nil
}

// QuestionView maps a stored question to its caller-facing shape.
func QuestionView(q *ent.Question, approved bool) models.QuestionResponse {
	return models.QuestionResponse{
		ID:            q.ID,
		SessionID:     q.SessionID,
		Text:          q.Text,
		Category:      q.Category,
		Role:          q.Role,
		QualityScore:  q.BiasScore,
		Approved:      approved,
		Regenerations: q.Regenerations,
	}
}
