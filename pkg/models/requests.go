package models

// Identity is the caller identity resolved by the frontend/auth layer.
type Identity struct {
	UserID  string `json:"user_id"`
	Handle  string `json:"handle,omitempty"`
	IsAdmin bool   `json:"is_admin,omitempty"`
}

// CreateProjectRequest creates a project owned by the caller.
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// StartSessionRequest starts a session in a project.
type StartSessionRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
	Mode      string `json:"mode"`
}

// SubmitAnswerRequest carries a free-text answer for extraction.
type SubmitAnswerRequest struct {
	Text string `json:"text" binding:"required"`
}

// ResolveConflictRequest resolves a pending conflict.
type ResolveConflictRequest struct {
	Resolution  Resolution `json:"resolution" binding:"required"`
	MergedValue string     `json:"merged_value,omitempty"`
}

// ToggleModeRequest flips a session between socratic and direct_chat.
type ToggleModeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

// DirectChatRequest carries a direct-chat utterance.
type DirectChatRequest struct {
	Text string `json:"text" binding:"required"`
}

// RegisterRequest creates a user in the identity store.
type RegisterRequest struct {
	Handle   string `json:"handle" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest exchanges credentials for tokens.
type LoginRequest struct {
	Handle   string `json:"handle" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ShareProjectRequest grants a user viewer or editor access.
type ShareProjectRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"required"`
}
