package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/pkg/config"
	"github.com/specsmith/specsmith/pkg/models"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	builtin := config.GetBuiltinConfig()
	eng, err := NewEngine(builtin.Quality, builtin.Bias, builtin.Optimizer)
	require.NoError(t, err)
	return eng
}

func maturityWith(score float64, categories map[string]float64) models.MaturityReport {
	return models.MaturityReport{Score: score, Categories: categories}
}

func TestPreValidateAdvance(t *testing.T) {
	eng := newTestEngine(t)

	t.Run("passes when thresholds met and no conflicts", func(t *testing.T) {
		v := eng.PreValidateAdvance(GateInput{
			CurrentPhase: models.PhaseDiscovery,
			TargetPhase:  models.PhaseAnalysis,
			Maturity: maturityWith(55, map[string]float64{
				"goals":        100,
				"requirements": 66.7,
			}),
		})
		assert.False(t, v.Blocking)
		assert.Empty(t, v.Issues)
	})

	t.Run("blocks below maturity threshold", func(t *testing.T) {
		v := eng.PreValidateAdvance(GateInput{
			CurrentPhase: models.PhaseDiscovery,
			TargetPhase:  models.PhaseAnalysis,
			Maturity: maturityWith(25, map[string]float64{
				"goals":        100,
				"requirements": 100,
			}),
		})
		require.True(t, v.Blocking)
		require.Len(t, v.Issues, 1)
		assert.Equal(t, "maturity_below_threshold", v.Issues[0].Type)
		require.NotNil(t, v.PathAnalysis)
		assert.Equal(t, PathAddressGaps, v.PathAnalysis.Recommended)
	})

	t.Run("blocks on critical category gaps", func(t *testing.T) {
		v := eng.PreValidateAdvance(GateInput{
			CurrentPhase: models.PhaseAnalysis,
			TargetPhase:  models.PhaseDesign,
			Maturity: maturityWith(100, map[string]float64{
				"security":   33.3,
				"testing":    100,
				"tech_stack": 66.7,
			}),
		})
		require.True(t, v.Blocking)
		require.Len(t, v.Issues, 2)
		assert.Equal(t, "critical_gap", v.Issues[0].Type)
		assert.Equal(t, "security", v.Issues[0].Category)
		assert.Equal(t, "tech_stack", v.Issues[1].Category)
	})

	t.Run("blocks on pending conflicts even at full maturity", func(t *testing.T) {
		v := eng.PreValidateAdvance(GateInput{
			CurrentPhase: models.PhaseAnalysis,
			TargetPhase:  models.PhaseDesign,
			Maturity: maturityWith(100, map[string]float64{
				"security":   100,
				"testing":    100,
				"tech_stack": 100,
			}),
			PendingConflicts: 1,
		})
		require.True(t, v.Blocking)
		require.Len(t, v.Issues, 1)
		assert.Equal(t, "unresolved_conflicts", v.Issues[0].Type)
	})

	t.Run("blocked verdict enumerates alternatives with a recommendation", func(t *testing.T) {
		v := eng.PreValidateAdvance(GateInput{
			CurrentPhase: models.PhaseDiscovery,
			TargetPhase:  models.PhaseAnalysis,
			Maturity:     maturityWith(10, map[string]float64{}),
		})
		require.True(t, v.Blocking)
		require.Len(t, v.Alternatives, 2)

		recommended := 0
		for _, alt := range v.Alternatives {
			if alt.Recommended {
				recommended++
				assert.Equal(t, v.PathAnalysis.Recommended, alt.Name)
			}
		}
		assert.Equal(t, 1, recommended)
	})

	t.Run("no gate configured means no block", func(t *testing.T) {
		v := eng.PreValidateAdvance(GateInput{
			CurrentPhase: models.PhaseDiscovery,
			TargetPhase:  models.Phase("unknown"),
		})
		assert.False(t, v.Blocking)
	})
}

func TestPreValidateCodeGen(t *testing.T) {
	eng := newTestEngine(t)

	t.Run("passes with enough coverage and no conflicts", func(t *testing.T) {
		v := eng.PreValidateCodeGen(GateInput{
			CurrentPhase:      models.PhaseDesign,
			CoveredCategories: 8,
		})
		assert.False(t, v.Blocking)
	})

	t.Run("blocks below minimum category coverage", func(t *testing.T) {
		v := eng.PreValidateCodeGen(GateInput{
			CurrentPhase:      models.PhaseDesign,
			CoveredCategories: 5,
		})
		require.True(t, v.Blocking)
		require.Len(t, v.Issues, 1)
		assert.Equal(t, "insufficient_coverage", v.Issues[0].Type)
		require.NotNil(t, v.PathAnalysis)
	})

	t.Run("blocks on pending conflicts", func(t *testing.T) {
		v := eng.PreValidateCodeGen(GateInput{
			CurrentPhase:      models.PhaseDesign,
			CoveredCategories: 10,
			PendingConflicts:  2,
		})
		require.True(t, v.Blocking)
		require.Len(t, v.Issues, 1)
		assert.Equal(t, "unresolved_conflicts", v.Issues[0].Type)
	})
}

func TestPreValidateSkipGaps(t *testing.T) {
	eng := newTestEngine(t)

	t.Run("always returns the path analysis", func(t *testing.T) {
		v := eng.PreValidateSkipGaps(GateInput{
			CurrentPhase: models.PhaseDiscovery,
			TargetPhase:  models.PhaseAnalysis,
			Maturity:     maturityWith(38, map[string]float64{"goals": 100, "requirements": 66.7}),
		})
		assert.False(t, v.Blocking)
		require.NotNil(t, v.PathAnalysis)
		assert.Len(t, v.PathAnalysis.Paths, 2)
	})

	t.Run("blocks when skipping costs more than the ratio allows", func(t *testing.T) {
		// Two critical gaps and a wide maturity shortfall in analysis:
		// skip ≈ 50 + (0.60 + 0.31)·5000 ≈ 4600 against 800 for addressing,
		// well past the 3× block ratio.
		v := eng.PreValidateSkipGaps(GateInput{
			CurrentPhase: models.PhaseAnalysis,
			TargetPhase:  models.PhaseDesign,
			Maturity:     maturityWith(61.3, map[string]float64{"security": 0, "testing": 0, "tech_stack": 100}),
		})
		require.True(t, v.Blocking)
		require.Len(t, v.Issues, 1)
		assert.Equal(t, "skip_too_expensive", v.Issues[0].Type)
		assert.Equal(t, PathAddressGaps, v.PathAnalysis.Recommended)
	})

	t.Run("allows a cheap skip", func(t *testing.T) {
		// One narrow gap in discovery: skip ≈ 50 + 0.32·2500 ≈ 846, under
		// 3× the 800 address cost.
		v := eng.PreValidateSkipGaps(GateInput{
			CurrentPhase: models.PhaseDiscovery,
			TargetPhase:  models.PhaseAnalysis,
			Maturity:     maturityWith(37.5, map[string]float64{"goals": 100, "requirements": 33.3}),
		})
		assert.False(t, v.Blocking)
	})
}
