// Package quality is the pure quality engine: readiness gates before major
// operations, output validation after them, and the cost-based path
// optimizer that turns a blocked gate into an explained decision. The engine
// holds no store handles; callers supply maturity reports and counts.
package quality

import (
	"fmt"

	"github.com/specsmith/specsmith/pkg/config"
	"github.com/specsmith/specsmith/pkg/models"
)

// Path and action names used in optimizer tables and blocked responses.
const (
	PathAddressGaps = "address_gaps"
	PathSkipGaps    = "skip_gaps"
)

// GateInput carries everything a pre-validation gate needs. All fields are
// plain data so gates stay deterministic and testable without a store.
type GateInput struct {
	CurrentPhase models.Phase
	TargetPhase  models.Phase

	Maturity          models.MaturityReport
	CoveredCategories int
	PendingConflicts  int
}

// Engine evaluates quality gates against the configured thresholds.
type Engine struct {
	quality   *config.QualityConfig
	optimizer *config.OptimizerConfig
	bias      *BiasScanner
}

// NewEngine builds the engine, compiling the bias scanner's patterns.
func NewEngine(quality *config.QualityConfig, bias *config.BiasConfig, optimizer *config.OptimizerConfig) (*Engine, error) {
	scanner, err := NewBiasScanner(bias)
	if err != nil {
		return nil, fmt.Errorf("failed to build bias scanner: %w", err)
	}
	return &Engine{quality: quality, optimizer: optimizer, bias: scanner}, nil
}

// PreValidateAdvance gates a phase advancement. The project may advance into
// the target phase only when overall maturity clears the phase threshold,
// every critical category clears the per-category threshold, and no conflict
// is pending. A blocked verdict carries the issues, the costed paths, and
// the enumerated alternatives.
func (e *Engine) PreValidateAdvance(in GateInput) models.PreValidation {
	th, ok := e.quality.PhaseThresholds[string(in.TargetPhase)]
	if !ok {
		// No gate configured for the target phase.
		return models.PreValidation{}
	}

	var issues []models.QualityIssue
	if in.Maturity.Score < th.MaturityThreshold {
		issues = append(issues, models.QualityIssue{
			Type:     "maturity_below_threshold",
			Severity: models.SeverityError,
			Message: fmt.Sprintf("maturity %.1f is below the %.1f required to enter %s",
				in.Maturity.Score, th.MaturityThreshold, in.TargetPhase),
		})
	}
	for _, cat := range criticalGaps(th, in.Maturity) {
		issues = append(issues, models.QualityIssue{
			Type:     "critical_gap",
			Severity: models.SeverityError,
			Category: cat,
			Message: fmt.Sprintf("critical category %q is at %.1f, below the required %.1f",
				cat, in.Maturity.Categories[cat], th.CategoryThreshold),
		})
	}
	if in.PendingConflicts > 0 {
		issues = append(issues, models.QualityIssue{
			Type:     "unresolved_conflicts",
			Severity: models.SeverityError,
			Message:  fmt.Sprintf("%d unresolved conflict(s) must be resolved first", in.PendingConflicts),
		})
	}

	if len(issues) == 0 {
		return models.PreValidation{}
	}

	analysis := e.gapPaths(in, th)
	return models.PreValidation{
		Blocking:     true,
		Reason:       fmt.Sprintf("project is not ready to enter the %s phase", in.TargetPhase),
		Issues:       issues,
		PathAnalysis: &analysis,
		Alternatives: alternativesFrom(analysis),
	}
}

// PreValidateCodeGen gates code generation: the specification must cover the
// configured minimum number of categories and carry no pending conflicts.
func (e *Engine) PreValidateCodeGen(in GateInput) models.PreValidation {
	var issues []models.QualityIssue
	if in.CoveredCategories < e.quality.CodeGenMinCategories {
		issues = append(issues, models.QualityIssue{
			Type:     "insufficient_coverage",
			Severity: models.SeverityError,
			Message: fmt.Sprintf("only %d of %d required categories have specifications",
				in.CoveredCategories, e.quality.CodeGenMinCategories),
		})
	}
	if in.PendingConflicts > 0 {
		issues = append(issues, models.QualityIssue{
			Type:     "unresolved_conflicts",
			Severity: models.SeverityError,
			Message:  fmt.Sprintf("%d unresolved conflict(s) must be resolved first", in.PendingConflicts),
		})
	}

	if len(issues) == 0 {
		return models.PreValidation{}
	}

	analysis := e.gapPathsForCodeGen(in)
	return models.PreValidation{
		Blocking:     true,
		Reason:       "specification is not complete enough to generate code",
		Issues:       issues,
		PathAnalysis: &analysis,
		Alternatives: alternativesFrom(analysis),
	}
}

// PreValidateSkipGaps evaluates a user's explicit request to skip remaining
// gaps. The path analysis is always returned; the request blocks only when
// skipping is expected to cost more than the configured multiple of
// addressing the gaps now.
func (e *Engine) PreValidateSkipGaps(in GateInput) models.PreValidation {
	th := e.quality.PhaseThresholds[string(in.TargetPhase)]
	analysis := e.gapPaths(in, th)

	skip := pathByName(analysis, PathSkipGaps)
	address := pathByName(analysis, PathAddressGaps)

	out := models.PreValidation{PathAnalysis: &analysis, Alternatives: alternativesFrom(analysis)}
	if skip != nil && address != nil && skip.ExpectedCost > e.optimizer.BlockRatio*address.ExpectedCost {
		out.Blocking = true
		out.Reason = fmt.Sprintf("skipping is expected to cost %.0f versus %.0f for addressing the gaps now",
			skip.ExpectedCost, address.ExpectedCost)
		out.Issues = []models.QualityIssue{{
			Type:     "skip_too_expensive",
			Severity: models.SeverityError,
			Message:  out.Reason,
		}}
	}
	return out
}

// gapPaths costs the two standing options at a gap decision: address the
// gaps now, or press on and risk rework in a later phase.
func (e *Engine) gapPaths(in GateInput, th config.PhaseThreshold) models.PathAnalysis {
	gaps := len(criticalGaps(th, in.Maturity))
	shortfall := th.MaturityThreshold - in.Maturity.Score
	if shortfall < 0 {
		shortfall = 0
	}

	return Analyze(e.optimizer, []PathInput{
		{
			Name:         PathAddressGaps,
			Description:  "answer the remaining questions before moving on",
			Action:       PathAddressGaps,
			ReworkAction: PathAddressGaps,
			Phase:        in.CurrentPhase,
			// Addressing the gaps removes them from the rework odds; only
			// pending conflicts still contribute.
			Factors: FactorCounts{PendingConflicts: in.PendingConflicts},
		},
		{
			Name:         PathSkipGaps,
			Description:  "proceed now and revisit the gaps if they bite later",
			Action:       PathSkipGaps,
			ReworkAction: PathSkipGaps,
			Phase:        in.CurrentPhase,
			Factors: FactorCounts{
				CriticalGaps:      gaps,
				MaturityGapPoints: shortfall,
				PendingConflicts:  in.PendingConflicts,
			},
		},
	})
}

// gapPathsForCodeGen reuses the gap paths with the coverage shortfall as the
// critical-gap count.
func (e *Engine) gapPathsForCodeGen(in GateInput) models.PathAnalysis {
	gaps := e.quality.CodeGenMinCategories - in.CoveredCategories
	if gaps < 0 {
		gaps = 0
	}

	return Analyze(e.optimizer, []PathInput{
		{
			Name:         PathAddressGaps,
			Description:  "fill the uncovered categories before generating",
			Action:       PathAddressGaps,
			ReworkAction: PathAddressGaps,
			Phase:        in.CurrentPhase,
			Factors:      FactorCounts{PendingConflicts: in.PendingConflicts},
		},
		{
			Name:         PathSkipGaps,
			Description:  "generate from the specification as it stands",
			Action:       PathSkipGaps,
			ReworkAction: PathSkipGaps,
			Phase:        in.CurrentPhase,
			Factors: FactorCounts{
				CriticalGaps:     gaps,
				PendingConflicts: in.PendingConflicts,
			},
		},
	})
}

// criticalGaps lists the critical categories below the per-category
// threshold, in the configured order.
func criticalGaps(th config.PhaseThreshold, m models.MaturityReport) []string {
	var gaps []string
	for _, cat := range th.CriticalCategories {
		if m.Categories[cat] < th.CategoryThreshold {
			gaps = append(gaps, cat)
		}
	}
	return gaps
}

func pathByName(a models.PathAnalysis, name string) *models.DecisionPath {
	for i := range a.Paths {
		if a.Paths[i].Name == name {
			return &a.Paths[i]
		}
	}
	return nil
}

func alternativesFrom(a models.PathAnalysis) []models.Alternative {
	alts := make([]models.Alternative, 0, len(a.Paths))
	for _, p := range a.Paths {
		alts = append(alts, models.Alternative{
			Name:        p.Name,
			Description: p.Description,
			Recommended: p.Name == a.Recommended,
		})
	}
	return alts
}
