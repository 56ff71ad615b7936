package quality

import (
	"sort"

	"github.com/specsmith/specsmith/pkg/config"
	"github.com/specsmith/specsmith/pkg/models"
)

// FactorCounts are the rework-probability inputs for one candidate path.
type FactorCounts struct {
	// Unfilled critical categories for the decision's target
	CriticalGaps int

	// Maturity points short of the relevant threshold
	MaturityGapPoints float64

	// Unresolved conflicts on the project
	PendingConflicts int
}

// PathInput describes one candidate decision path before costing.
type PathInput struct {
	Name        string
	Description string

	// Action keys the immediate-cost table row
	Action string

	// ReworkAction keys the rework-cost table row; Phase selects the column
	ReworkAction string
	Phase        models.Phase

	Factors FactorCounts
}

// reworkProbabilityCap bounds the summed factor contributions.
const reworkProbabilityCap = 0.99

// Analyze costs every candidate path and returns them sorted ascending by
// expected cost:
//
//	expected(p) = immediate(p) + reworkProbability(p) · reworkCost(p)
//
// The first path is the recommendation; the spread to the last is returned
// for transparency. Analyze is a pure function of its inputs and the
// configured tables: permuting the path list cannot change the
// recommendation (ties break on path name).
func Analyze(cfg *config.OptimizerConfig, paths []PathInput) models.PathAnalysis {
	costed := make([]models.DecisionPath, 0, len(paths))
	for _, p := range paths {
		immediate := cfg.ImmediateCost[p.Action]
		rework := reworkCostFor(cfg, p.ReworkAction, p.Phase)
		prob := reworkProbability(cfg.Factors, p.Factors)

		costed = append(costed, models.DecisionPath{
			Name:              p.Name,
			Description:       p.Description,
			ImmediateCost:     immediate,
			ReworkProbability: prob,
			ReworkCost:        rework,
			ExpectedCost:      immediate + prob*rework,
		})
	}

	sort.Slice(costed, func(i, j int) bool {
		if costed[i].ExpectedCost != costed[j].ExpectedCost {
			return costed[i].ExpectedCost < costed[j].ExpectedCost
		}
		return costed[i].Name < costed[j].Name
	})

	analysis := models.PathAnalysis{Paths: costed}
	if len(costed) > 0 {
		analysis.Recommended = costed[0].Name
		analysis.Spread = costed[len(costed)-1].ExpectedCost - costed[0].ExpectedCost
	}
	return analysis
}

// reworkProbability sums the configured factor contributions, clamped to
// [0, 0.99].
func reworkProbability(f config.OptimizerFactors, counts FactorCounts) float64 {
	p := float64(counts.CriticalGaps)*f.CriticalGap +
		counts.MaturityGapPoints/100*f.MaturityPerPoint +
		float64(counts.PendingConflicts)*f.PendingConflict

	if p < 0 {
		return 0
	}
	if p > reworkProbabilityCap {
		return reworkProbabilityCap
	}
	return p
}

func reworkCostFor(cfg *config.OptimizerConfig, action string, phase models.Phase) float64 {
	byPhase, ok := cfg.ReworkCost[action]
	if !ok {
		return 0
	}
	if cost, ok := byPhase[string(phase)]; ok {
		return cost
	}
	return 0
}
