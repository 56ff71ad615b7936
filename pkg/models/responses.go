package models

import "time"

// BlockedResponse is the structured, non-error outcome of a major operation
// the quality gate refused. It explains why and what to do instead.
type BlockedResponse struct {
	Blocked      bool           `json:"blocked"`
	Reason       string         `json:"reason"`
	Issues       []QualityIssue `json:"issues,omitempty"`
	PathAnalysis *PathAnalysis  `json:"path_analysis,omitempty"`
	Alternatives []Alternative  `json:"alternatives,omitempty"`
}

// QuestionResponse is a generated Socratic question with quality metadata.
type QuestionResponse struct {
	ID            string  `json:"id"`
	SessionID     string  `json:"session_id"`
	Text          string  `json:"text"`
	Category      string  `json:"category"`
	Role          string  `json:"role,omitempty"`
	QualityScore  float64 `json:"quality_score"`
	Approved      bool    `json:"approved"`
	Regenerations int     `json:"regenerations"`
}

// ConversationTurnView is one history entry returned to callers.
type ConversationTurnView struct {
	Sequence  int       `json:"sequence"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ProjectView is the caller-facing project summary.
type ProjectView struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	CurrentPhase  Phase     `json:"current_phase"`
	MaturityScore float64   `json:"maturity_score"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// ActivityView is one activity log entry returned to callers.
type ActivityView struct {
	ID          string         `json:"id"`
	ActorID     string         `json:"actor_id"`
	ActionType  string         `json:"action_type"`
	EntityType  string         `json:"entity_type"`
	EntityID    string         `json:"entity_id"`
	Description string         `json:"description"`
	Detail      map[string]any `json:"detail,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// GeneratedProjectView is the caller-facing view of a generation run.
type GeneratedProjectView struct {
	ID         string     `json:"id"`
	ProjectID  string     `json:"project_id"`
	Version    int        `json:"version"`
	Status     string     `json:"status"`
	FileCount  int        `json:"file_count"`
	TotalLines int        `json:"total_lines"`
	Error      string     `json:"error,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
}
