package config

// PhaseThreshold defines the quality gate for advancing into one phase.
type PhaseThreshold struct {
	// Overall maturity score required to enter the phase
	MaturityThreshold float64 `yaml:"maturity_threshold"`

	// Categories that must individually clear CategoryThreshold
	CriticalCategories []string `yaml:"critical_categories"`

	// Per-category coverage score (0–100) each critical category must reach
	CategoryThreshold float64 `yaml:"category_threshold"`
}

// QualityConfig holds quality gate thresholds and regeneration policy.
type QualityConfig struct {
	// Gate per target phase, keyed by phase name
	PhaseThresholds map[string]PhaseThreshold `yaml:"phase_thresholds"`

	// Minimum number of covered categories (≥1 current spec) for code generation
	CodeGenMinCategories int `yaml:"codegen_min_categories"`

	// Maximum post-validation regeneration passes per request
	RegenerationCap int `yaml:"regeneration_cap"`

	// Who may supply a merged value when resolving a conflict:
	// "creator_or_editor" (default) restricts to the conflict's creator or a
	// project editor; "any_member" also allows viewers.
	MergeResolvers string `yaml:"merge_resolvers"`

	// Post-validation score below which a regeneration is demanded
	MinQuestionScore float64 `yaml:"min_question_score"`
}

// BiasConfig drives solution-bias and leading-question detection on
// generated questions.
type BiasConfig struct {
	// Phrases indicating the question pushes a solution ("should use", ...)
	Keywords []string `yaml:"keywords"`

	// Regular expressions matching leading-question phrasings
	LeadingPatterns []string `yaml:"leading_patterns"`

	// Concrete product names a Socratic question must not name
	ProductDenylist []string `yaml:"product_denylist"`
}

// OptimizerConfig holds the path optimizer's cost tables and factor weights.
// Costs and weights are configuration, never baked into code: tests
// substitute tables to assert sorting and selection properties.
type OptimizerConfig struct {
	// Token estimate for doing the work now, per action
	ImmediateCost map[string]float64 `yaml:"immediate_cost"`

	// Rework cost per action, per current phase
	ReworkCost map[string]map[string]float64 `yaml:"rework_cost"`

	// Factor contributions to rework probability
	Factors OptimizerFactors `yaml:"factors"`

	// Blocking ratio: "skip" style paths block when their expected cost
	// exceeds this multiple of the best path's
	BlockRatio float64 `yaml:"block_ratio"`
}

// OptimizerFactors are the rework-probability contributions.
type OptimizerFactors struct {
	// Per unfilled critical gap
	CriticalGap float64 `yaml:"critical_gap"`

	// Per maturity point short of the phase threshold, divided by 100
	MaturityPerPoint float64 `yaml:"maturity_per_point"`

	// Per pending conflict
	PendingConflict float64 `yaml:"pending_conflict"`
}

// NLUConfig bounds the NLU service's conversation memory.
type NLUConfig struct {
	// Ring buffer capacity in turns; oldest evicted automatically
	HistorySize int `yaml:"history_size"`
}
