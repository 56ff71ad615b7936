package models

// IssueSeverity ranks quality findings.
type IssueSeverity string

const (
	SeverityError   IssueSeverity = "error"
	SeverityWarning IssueSeverity = "warning"
)

// QualityIssue is one typed finding from a quality check.
type QualityIssue struct {
	Type     string        `json:"type"`
	Severity IssueSeverity `json:"severity"`
	Message  string        `json:"message"`
	Category string        `json:"category,omitempty"`
}

// DecisionPath is one candidate path at a decision point, costed by the
// path optimizer. ExpectedCost = ImmediateCost + ReworkProbability·ReworkCost.
type DecisionPath struct {
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	ImmediateCost     float64 `json:"immediate_cost"`
	ReworkProbability float64 `json:"rework_probability"`
	ReworkCost        float64 `json:"rework_cost"`
	ExpectedCost      float64 `json:"expected_cost"`
}

// PathAnalysis is the optimizer's output: paths sorted ascending by expected
// cost. Spread is the cost difference between the best and worst path,
// returned for transparency.
type PathAnalysis struct {
	Paths       []DecisionPath `json:"paths"`
	Recommended string         `json:"recommended"`
	Spread      float64        `json:"spread"`
}

// Alternative is one enumerated option attached to a blocked response.
type Alternative struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Recommended bool   `json:"recommended"`
}

// PreValidation is the quality engine's readiness verdict for a major
// operation. Blocking responses carry the full explanation; they are a
// first-class response shape, not an error.
type PreValidation struct {
	Blocking     bool           `json:"blocking"`
	Reason       string         `json:"reason,omitempty"`
	Issues       []QualityIssue `json:"issues,omitempty"`
	PathAnalysis *PathAnalysis  `json:"path_analysis,omitempty"`
	Alternatives []Alternative  `json:"alternatives,omitempty"`
}

// PostAction tells the orchestrator what to do after a failed post-check.
type PostAction string

const (
	// PostActionRegenerate asks the orchestrator to re-invoke the agent with
	// a regeneration hint, bounded by the configured cap.
	PostActionRegenerate PostAction = "regenerate"
)

// PostValidation is the quality engine's verdict on an operation's output.
type PostValidation struct {
	Approved       bool           `json:"approved"`
	QualityScore   float64        `json:"quality_score"`
	Issues         []QualityIssue `json:"issues,omitempty"`
	Warnings       []QualityIssue `json:"warnings,omitempty"`
	ActionRequired PostAction     `json:"action_required,omitempty"`
}
