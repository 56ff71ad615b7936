package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/pkg/models"
)

func TestPostValidateQuestion(t *testing.T) {
	eng := newTestEngine(t)

	t.Run("neutral question scores full marks", func(t *testing.T) {
		v := eng.PostValidateQuestion("What kind of data will your application store, and who needs to read it?")
		assert.True(t, v.Approved)
		assert.InDelta(t, 1.0, v.QualityScore, 0.0001)
		assert.Empty(t, v.Issues)
		assert.Empty(t, v.Warnings)
		assert.Empty(t, v.ActionRequired)
	})

	t.Run("solution keyword deducts an issue", func(t *testing.T) {
		v := eng.PostValidateQuestion("Should we use a message broker to decouple the services?")
		require.Len(t, v.Issues, 1)
		assert.Equal(t, "solution_bias", v.Issues[0].Type)
		assert.InDelta(t, 0.80, v.QualityScore, 0.0001)
		assert.True(t, v.Approved)
	})

	t.Run("product name deducts an issue", func(t *testing.T) {
		v := eng.PostValidateQuestion("How would your data model fit into PostgreSQL?")
		require.Len(t, v.Issues, 1)
		assert.Equal(t, "product_bias", v.Issues[0].Type)
	})

	t.Run("product match respects word boundaries", func(t *testing.T) {
		// "reactive" must not trip the "React" entry.
		v := eng.PostValidateQuestion("How reactive does the dashboard need to be?")
		assert.Empty(t, v.Issues)
		assert.True(t, v.Approved)
	})

	t.Run("leading phrasing is only a warning", func(t *testing.T) {
		v := eng.PostValidateQuestion("Wouldn't it be easier to keep everything in one service?")
		assert.Empty(t, v.Issues)
		require.Len(t, v.Warnings, 1)
		assert.Equal(t, "leading_question", v.Warnings[0].Type)
		assert.InDelta(t, 0.95, v.QualityScore, 0.0001)
		assert.True(t, v.Approved)
	})

	t.Run("stacked findings demand regeneration", func(t *testing.T) {
		v := eng.PostValidateQuestion("Surely the frontend should use React?")
		// Keyword + product name errors plus the leading warning:
		// 1.0 − 2·0.20 − 0.05 = 0.55, below the 0.7 minimum.
		assert.InDelta(t, 0.55, v.QualityScore, 0.0001)
		assert.False(t, v.Approved)
		assert.Equal(t, models.PostActionRegenerate, v.ActionRequired)
	})

	t.Run("same question always scores the same", func(t *testing.T) {
		const q = "Don't you think a queue would help here, right?"
		first := eng.PostValidateQuestion(q)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, eng.PostValidateQuestion(q))
		}
	})

	t.Run("score floors at zero", func(t *testing.T) {
		v := eng.PostValidateQuestion(
			"Obviously you should use React, Angular, Vue, Redis, Kafka and MongoDB, just use them all")
		assert.Zero(t, v.QualityScore)
		assert.False(t, v.Approved)
	})
}

func TestPostValidateArchitecture(t *testing.T) {
	eng := newTestEngine(t)

	base := ArchitectureInput{
		Content: "## Components\nAPI service, worker.\n## Security\nToken auth on every endpoint.\n" +
			"Covers user_auth and reporting requirements.",
		RequirementKeys:  []string{"user_auth", "reporting"},
		ComponentCount:   2,
		TeamSize:         2,
		HasSecuritySpecs: true,
	}

	t.Run("sound architecture approved", func(t *testing.T) {
		v := eng.PostValidateArchitecture(base)
		assert.True(t, v.Approved)
		assert.InDelta(t, 1.0, v.QualityScore, 0.0001)
	})

	t.Run("unreferenced requirement warns", func(t *testing.T) {
		in := base
		in.RequirementKeys = []string{"user_auth", "reporting", "audit_trail"}
		v := eng.PostValidateArchitecture(in)
		require.Len(t, v.Warnings, 1)
		assert.Equal(t, "unreferenced_requirement", v.Warnings[0].Type)
		assert.True(t, v.Approved)
	})

	t.Run("complexity over team budget is an error", func(t *testing.T) {
		in := base
		in.ComponentCount = 9
		v := eng.PostValidateArchitecture(in)
		require.Len(t, v.Issues, 1)
		assert.Equal(t, "complexity_over_budget", v.Issues[0].Type)
	})

	t.Run("unknown team size skips the budget check", func(t *testing.T) {
		in := base
		in.ComponentCount = 50
		in.TeamSize = 0
		v := eng.PostValidateArchitecture(in)
		assert.Empty(t, v.Issues)
	})

	t.Run("missing security section is an error", func(t *testing.T) {
		in := base
		in.Content = "## Components\nAPI service covering user_auth and reporting."
		v := eng.PostValidateArchitecture(in)
		require.Len(t, v.Issues, 1)
		assert.Equal(t, "missing_security_section", v.Issues[0].Type)
	})
}

func TestRegenerationHint(t *testing.T) {
	eng := newTestEngine(t)

	v := eng.PostValidateQuestion("Surely the frontend should use React?")
	hint := RegenerationHint(v)
	assert.Contains(t, hint, "should use")
	assert.Contains(t, hint, "React")

	assert.Empty(t, RegenerationHint(models.PostValidation{Approved: true}))
}
