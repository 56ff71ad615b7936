// Package agents contains the thin adapters the orchestrator routes to.
// Agents validate input, load only what they need, delegate algorithmic work
// to the engines, and persist through the services.
package agents

import (
	"context"
	"errors"
	"fmt"

	"github.com/specsmith/specsmith/pkg/models"
)

// Agent IDs, as used by the orchestrator's routing table.
const (
	IDSocratic       = "socratic"
	IDContext        = "context"
	IDConflict       = "conflict"
	IDQuality        = "quality"
	IDDirectChat     = "direct_chat"
	IDProjectManager = "project_manager"
	IDCodeGenerator  = "code_generator"
)

var (
	// ErrUnknownAgent means the requested agent is not registered.
	ErrUnknownAgent = errors.New("unknown agent")
	// ErrUnknownAction means the agent does not implement the action.
	ErrUnknownAction = errors.New("unknown action")
)

// MissingParameterError reports a required payload parameter that was not
// supplied. The NLU layer does not guarantee parameter completeness, so this
// surfaces at the agent boundary.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing parameter: %s", e.Name)
}

// IsMissingParameter reports whether err is a MissingParameterError.
func IsMissingParameter(err error) bool {
	var mp *MissingParameterError
	return errors.As(err, &mp)
}

// Payload carries an action's parameters. Values arrive as decoded JSON, so
// numbers are float64.
type Payload map[string]any

// String returns a required string parameter.
func (p Payload) String(name string) (string, error) {
	v, ok := p[name]
	if !ok {
		return "", &MissingParameterError{Name: name}
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", &MissingParameterError{Name: name}
	}
	return s, nil
}

// OptionalString returns a string parameter or the empty string.
func (p Payload) OptionalString(name string) string {
	s, _ := p[name].(string)
	return s
}

// OptionalInt returns an int parameter or the fallback.
func (p Payload) OptionalInt(name string, fallback int) int {
	switch v := p[name].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return fallback
	}
}

// RegenerationHintKey is the payload key the orchestrator sets when it
// re-invokes an agent after a failed post-check.
const RegenerationHintKey = "regeneration_hint"

// Result is an agent's structured outcome. QualityValidation is attached by
// the orchestrator for gated operations; agents leave it nil.
type Result struct {
	Success           bool                   `json:"success"`
	Data              map[string]any         `json:"data,omitempty"`
	QualityValidation *models.PostValidation `json:"quality_validation,omitempty"`
}

// Agent is the single entry point every agent implements.
type Agent interface {
	ID() string
	Execute(ctx context.Context, identity models.Identity, action string, payload Payload) (*Result, error)
}

// Finalizer is implemented by agents whose output is persisted only after
// the orchestrator's post-validation loop settles, so that regenerated
// drafts never leave partial rows behind.
type Finalizer interface {
	Finalize(ctx context.Context, identity models.Identity, action string, result *Result, validation models.PostValidation, regenerations int) (*Result, error)
}

// Registry holds the fixed agent set. Agents are registered at startup;
// there is no runtime plug-in loading.
type Registry struct {
	agents map[string]Agent
}

// NewRegistry creates a registry over the given agents.
func NewRegistry(list ...Agent) *Registry {
	r := &Registry{agents: make(map[string]Agent, len(list))}
	for _, a := range list {
		r.agents[a.ID()] = a
	}
	return r
}

// Get resolves an agent by ID.
func (r *Registry) Get(id string) (Agent, error) {
	a, ok := r.agents[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAgent, id)
	}
	return a, nil
}
