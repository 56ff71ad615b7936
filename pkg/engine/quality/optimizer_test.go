package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/pkg/config"
	"github.com/specsmith/specsmith/pkg/models"
)

func optimizerConfig() *config.OptimizerConfig {
	return config.GetBuiltinConfig().Optimizer
}

func TestAnalyze(t *testing.T) {
	cfg := optimizerConfig()

	t.Run("costs and sorts paths ascending", func(t *testing.T) {
		analysis := Analyze(cfg, []PathInput{
			{
				Name:         PathSkipGaps,
				Action:       PathSkipGaps,
				ReworkAction: PathSkipGaps,
				Phase:        models.PhaseAnalysis,
				Factors:      FactorCounts{CriticalGaps: 2, PendingConflicts: 1},
			},
			{
				Name:         PathAddressGaps,
				Action:       PathAddressGaps,
				ReworkAction: PathAddressGaps,
				Phase:        models.PhaseAnalysis,
			},
		})

		require.Len(t, analysis.Paths, 2)
		assert.Equal(t, PathAddressGaps, analysis.Paths[0].Name)
		assert.Equal(t, PathAddressGaps, analysis.Recommended)

		// address_gaps: 800 immediate, no rework exposure.
		assert.InDelta(t, 800, analysis.Paths[0].ExpectedCost, 0.001)

		// skip_gaps: 50 + (2·0.30 + 1·0.20)·5000 = 4050.
		skip := analysis.Paths[1]
		assert.InDelta(t, 0.80, skip.ReworkProbability, 0.001)
		assert.InDelta(t, 4050, skip.ExpectedCost, 0.001)

		assert.InDelta(t, 4050-800, analysis.Spread, 0.001)
	})

	t.Run("recommendation is order-invariant", func(t *testing.T) {
		paths := []PathInput{
			{Name: "a", Action: PathSkipGaps, ReworkAction: PathSkipGaps, Phase: models.PhaseAnalysis,
				Factors: FactorCounts{CriticalGaps: 3}},
			{Name: "b", Action: PathAddressGaps},
			{Name: "c", Action: "advance_phase", ReworkAction: "advance_phase", Phase: models.PhaseDiscovery,
				Factors: FactorCounts{PendingConflicts: 2}},
		}
		forward := Analyze(cfg, paths)
		reversed := Analyze(cfg, []PathInput{paths[2], paths[1], paths[0]})

		assert.Equal(t, forward.Recommended, reversed.Recommended)
		assert.Equal(t, forward.Paths, reversed.Paths)
	})

	t.Run("equal costs tie-break on name", func(t *testing.T) {
		analysis := Analyze(cfg, []PathInput{
			{Name: "zeta", Action: "advance_phase"},
			{Name: "alpha", Action: "advance_phase"},
		})
		assert.Equal(t, "alpha", analysis.Recommended)
		assert.Zero(t, analysis.Spread)
	})

	t.Run("rework probability is clamped at 0.99", func(t *testing.T) {
		analysis := Analyze(cfg, []PathInput{{
			Name:         PathSkipGaps,
			Action:       PathSkipGaps,
			ReworkAction: PathSkipGaps,
			Phase:        models.PhaseDesign,
			Factors:      FactorCounts{CriticalGaps: 10, MaturityGapPoints: 90, PendingConflicts: 5},
		}})
		require.Len(t, analysis.Paths, 1)
		assert.InDelta(t, 0.99, analysis.Paths[0].ReworkProbability, 0.0001)
	})

	t.Run("unknown action and phase cost zero", func(t *testing.T) {
		analysis := Analyze(cfg, []PathInput{{
			Name:         "mystery",
			Action:       "no_such_action",
			ReworkAction: "no_such_action",
			Phase:        models.PhaseImplementation,
			Factors:      FactorCounts{CriticalGaps: 1},
		}})
		require.Len(t, analysis.Paths, 1)
		assert.Zero(t, analysis.Paths[0].ExpectedCost)
	})

	t.Run("empty input yields empty analysis", func(t *testing.T) {
		analysis := Analyze(cfg, nil)
		assert.Empty(t, analysis.Paths)
		assert.Empty(t, analysis.Recommended)
	})
}
