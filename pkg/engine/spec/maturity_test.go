package spec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/specsmith/specsmith/pkg/models"
)

func currentSpec(category, key string) models.SpecRecord {
	return models.SpecRecord{
		Category:  category,
		Key:       key,
		Value:     "v",
		IsCurrent: true,
	}
}

func TestMaturity(t *testing.T) {
	t.Run("empty project scores zero", func(t *testing.T) {
		report := Maturity(nil)
		assert.Zero(t, report.Score)
		assert.Len(t, report.Categories, len(Categories))
	})

	t.Run("coverage saturates at three specs per category", func(t *testing.T) {
		var specs []models.SpecRecord
		for i := 0; i < 5; i++ {
			specs = append(specs, currentSpec("goals", fmt.Sprintf("k%d", i)))
		}
		report := Maturity(specs)
		assert.InDelta(t, 100, report.Categories["goals"], 0.001)
		// One saturated category out of ten.
		assert.InDelta(t, 10, report.Score, 0.001)
	})

	t.Run("partial coverage rounds to one decimal", func(t *testing.T) {
		report := Maturity([]models.SpecRecord{currentSpec("tech_stack", "language")})
		// 1/3 coverage in one of ten categories: 33.333…/10 = 3.333… → 3.3.
		assert.InDelta(t, 3.3, report.Score, 0.0001)
	})

	t.Run("full board scores one hundred", func(t *testing.T) {
		var specs []models.SpecRecord
		for _, cat := range Categories {
			for i := 0; i < 3; i++ {
				specs = append(specs, currentSpec(cat, fmt.Sprintf("k%d", i)))
			}
		}
		assert.InDelta(t, 100, Maturity(specs).Score, 0.001)
	})

	t.Run("superseded specs contribute nothing", func(t *testing.T) {
		old := currentSpec("goals", "mission")
		old.IsCurrent = false
		report := Maturity([]models.SpecRecord{old})
		assert.Zero(t, report.Score)
	})

	t.Run("unknown categories contribute nothing", func(t *testing.T) {
		report := Maturity([]models.SpecRecord{currentSpec("vibes", "general")})
		assert.Zero(t, report.Score)
	})

	t.Run("score is order independent", func(t *testing.T) {
		a := currentSpec("goals", "mission")
		b := currentSpec("security", "auth")
		c := currentSpec("timeline", "deadline")
		forward := Maturity([]models.SpecRecord{a, b, c})
		backward := Maturity([]models.SpecRecord{c, b, a})
		assert.Equal(t, forward.Score, backward.Score)
		assert.Equal(t, forward.Categories, backward.Categories)
	})
}

func TestCoveredCategories(t *testing.T) {
	specs := []models.SpecRecord{
		currentSpec("goals", "mission"),
		currentSpec("goals", "audience"),
		currentSpec("security", "auth"),
		currentSpec("not_a_category", "x"),
	}
	old := currentSpec("testing", "strategy")
	old.IsCurrent = false
	specs = append(specs, old)

	assert.Equal(t, 2, CoveredCategories(specs))
}

func TestCoveredFromCounts(t *testing.T) {
	t.Run("counts only fixed categories", func(t *testing.T) {
		counts := map[string]int{
			"goals":    2,
			"security": 1,
			"timeline": 0,
		}
		assert.Equal(t, 2, CoveredFromCounts(counts))
	})

	t.Run("off-list categories cannot inflate coverage", func(t *testing.T) {
		counts := make(map[string]int)
		for i := 0; i < 7; i++ {
			counts[fmt.Sprintf("custom_%d", i)] = 1
		}
		assert.Zero(t, CoveredFromCounts(counts))
	})
}
