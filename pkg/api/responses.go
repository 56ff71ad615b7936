package api

import (
	"time"

	"github.com/specsmith/specsmith/ent"
)

// sessionResponse is the caller-facing view of a session.
type sessionResponse struct {
	ID        string     `json:"id"`
	ProjectID string     `json:"project_id"`
	Mode      string     `json:"mode"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

func toSessionResponse(s *ent.Session) sessionResponse {
	return sessionResponse{
		ID:        s.ID,
		ProjectID: s.ProjectID,
		Mode:      string(s.Mode),
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
		EndedAt:   s.EndedAt,
	}
}

// userResponse is the caller-facing view of a registered user.
type userResponse struct {
	ID     string `json:"id"`
	Handle string `json:"handle"`
}

// apiKeyResponse carries a freshly minted API key. The plaintext key is shown
// exactly once; only its hash is stored.
type apiKeyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Key  string `json:"key"`
}

// shareResponse confirms a granted project share.
type shareResponse struct {
	ProjectID string `json:"project_id"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
}

// fileResponse is one generated file.
type fileResponse struct {
	Path      string `json:"path"`
	Content   string `json:"content"`
	LineCount int    `json:"line_count"`
}

// metricResponse is one recorded quality measurement.
type metricResponse struct {
	ID              string    `json:"id"`
	Action          string    `json:"action"`
	BiasScore       float64   `json:"bias_score"`
	CoverageScore   float64   `json:"coverage_score"`
	ComplexityScore float64   `json:"complexity_score"`
	CreatedAt       time.Time `json:"created_at"`
}
