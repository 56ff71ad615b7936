package spec

import (
	"math"

	"github.com/specsmith/specsmith/pkg/models"
)

// Categories is the fixed set of maturity categories. Changing this list is
// a schema change, not configuration.
var Categories = []string{
	"goals",
	"requirements",
	"tech_stack",
	"scalability",
	"security",
	"testing",
	"deployment",
	"monitoring",
	"team_structure",
	"timeline",
}

// specsPerFullCoverage is the saturation point of the per-category coverage
// function: cov(n) = min(1, n/3).
const specsPerFullCoverage = 3.0

// IsCategory reports whether c is one of the fixed maturity categories.
func IsCategory(c string) bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Coverage returns the saturating coverage for n current specs in one
// category, in [0,1].
func Coverage(n int) float64 {
	return math.Min(1, float64(n)/specsPerFullCoverage)
}

// Maturity computes a project's maturity report from its current
// specifications. It is a pure function of the multiset of current specs:
// the score is the equally-weighted mean coverage across the fixed
// categories, scaled to [0,100] and reported to one decimal. Specs outside
// the fixed categories contribute nothing.
func Maturity(current []models.SpecRecord) models.MaturityReport {
	counts := make(map[string]int, len(Categories))
	for _, s := range current {
		if !s.IsCurrent {
			continue
		}
		counts[s.Category]++
	}

	perCategory := make(map[string]float64, len(Categories))
	sum := 0.0
	for _, cat := range Categories {
		cov := Coverage(counts[cat]) * 100
		perCategory[cat] = cov
		sum += cov
	}

	return models.MaturityReport{
		Score:      round1(sum / float64(len(Categories))),
		Categories: perCategory,
		SpecCounts: counts,
	}
}

// CoveredCategories counts categories with at least one current spec.
func CoveredCategories(current []models.SpecRecord) int {
	seen := make(map[string]bool)
	for _, s := range current {
		if s.IsCurrent && IsCategory(s.Category) {
			seen[s.Category] = true
		}
	}
	return len(seen)
}

// CoveredFromCounts counts fixed categories with at least one spec in a
// report's per-category counts. Keys outside the fixed set are ignored, so
// off-list specs cannot inflate coverage.
func CoveredFromCounts(counts map[string]int) int {
	n := 0
	for _, cat := range Categories {
		if counts[cat] > 0 {
			n++
		}
	}
	return n
}

// round1 rounds to one decimal place; storage rounds for display only.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
