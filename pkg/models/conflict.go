package models

import "time"

// ConflictType classifies a contradiction. Severity ordering (used when
// multiple detection rules fire) is technology > requirements > timeline >
// resources.
type ConflictType string

const (
	ConflictTechnology   ConflictType = "technology"
	ConflictRequirements ConflictType = "requirements"
	ConflictTimeline     ConflictType = "timeline"
	ConflictResources    ConflictType = "resources"
)

// Severity returns the rank used to pick a winner when multiple rules fire.
// Higher is more severe.
func (t ConflictType) Severity() int {
	switch t {
	case ConflictTechnology:
		return 4
	case ConflictRequirements:
		return 3
	case ConflictTimeline:
		return 2
	case ConflictResources:
		return 1
	default:
		return 0
	}
}

// Resolution is a conflict's lifecycle state. Terminal states are absorbing.
type Resolution string

const (
	ResolutionPending Resolution = "pending"
	ResolutionKeepOld Resolution = "keep_old"
	ResolutionReplace Resolution = "replace"
	ResolutionMerge   Resolution = "merge"
)

// IsTerminal reports whether the resolution closes the conflict.
func (r Resolution) IsTerminal() bool {
	return r == ResolutionKeepOld || r == ResolutionReplace || r == ResolutionMerge
}

// ConflictRecord is the plain-data view of a stored conflict.
type ConflictRecord struct {
	ID              string       `json:"id"`
	ProjectID       string       `json:"project_id"`
	IncumbentSpecID string       `json:"incumbent_spec_id"`
	Category        string       `json:"category"`
	Key             string       `json:"key"`
	NewValue        string       `json:"new_value"`
	NewConfidence   float64      `json:"new_confidence"`
	Type            ConflictType `json:"type"`
	Detail          string       `json:"detail,omitempty"`
	Resolution      Resolution   `json:"resolution"`
	CreatedBy       string       `json:"created_by"`
	Resolver        string       `json:"resolver,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	ResolvedAt      *time.Time   `json:"resolved_at,omitempty"`
}
