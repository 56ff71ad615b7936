package models

import "time"

// SpecSource identifies how a specification entered the system.
type SpecSource string

const (
	SourceUserInput SpecSource = "user_input"
	SourceExtracted SpecSource = "extracted"
	SourceImported  SpecSource = "imported"
	SourceInferred  SpecSource = "inferred"
)

// SpecRecord is the plain-data view of a stored specification. Engines
// operate on these records; they never hold store handles.
type SpecRecord struct {
	ID           string     `json:"id"`
	ProjectID    string     `json:"project_id"`
	Category     string     `json:"category"`
	Key          string     `json:"key"`
	Value        string     `json:"value"`
	Confidence   float64    `json:"confidence"`
	Source       SpecSource `json:"source"`
	IsCurrent    bool       `json:"is_current"`
	SupersedesID string     `json:"supersedes_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// SpecCandidate is an extracted specification not yet ingested.
type SpecCandidate struct {
	Category   string     `json:"category"`
	Key        string     `json:"key"`
	Value      string     `json:"value"`
	Confidence float64    `json:"confidence"`
	Source     SpecSource `json:"source"`
}

// ExtractionResult is the outcome of running extraction over an utterance.
type ExtractionResult struct {
	NewSpecs  []SpecRecord     `json:"new_specs"`
	Conflicts []ConflictRecord `json:"conflicts"`
}

// MaturityReport breaks a project's maturity score down by category.
type MaturityReport struct {
	Score      float64            `json:"score"`
	Categories map[string]float64 `json:"categories"`
	SpecCounts map[string]int     `json:"spec_counts"`
}
