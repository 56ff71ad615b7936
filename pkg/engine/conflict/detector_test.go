package conflict

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/pkg/models"
)

// scriptedChecker returns a fixed verdict (or error) and records its inputs.
type scriptedChecker struct {
	verdict SemanticVerdict
	err     error
	calls   []CheckInput
}

func (c *scriptedChecker) Check(_ context.Context, in CheckInput) (SemanticVerdict, error) {
	c.calls = append(c.calls, in)
	if c.err != nil {
		return SemanticVerdict{}, c.err
	}
	return c.verdict, nil
}

func record(id, category, key, value string, createdAt time.Time) models.SpecRecord {
	return models.SpecRecord{
		ID: id, Category: category, Key: key, Value: value,
		IsCurrent: true, CreatedAt: createdAt,
	}
}

func TestDetect(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("exact key disagreement", func(t *testing.T) {
		d := NewDetector(nil, nil)
		current := []models.SpecRecord{record("s1", "tech_stack", "language", "Go", base)}

		f, err := d.Detect(ctx, current, models.SpecCandidate{
			Category: "tech_stack", Key: "language", Value: "Rust",
		})
		require.NoError(t, err)
		require.NotNil(t, f)
		assert.Equal(t, "s1", f.Incumbent.ID)
		assert.Equal(t, models.ConflictTechnology, f.Type)
	})

	t.Run("equal value is not a conflict", func(t *testing.T) {
		d := NewDetector(nil, nil)
		current := []models.SpecRecord{record("s1", "tech_stack", "language", "Go", base)}

		f, err := d.Detect(ctx, current, models.SpecCandidate{
			Category: "tech_stack", Key: "language", Value: "  go ",
		})
		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("superseded incumbents are ignored", func(t *testing.T) {
		d := NewDetector(nil, nil)
		old := record("s1", "tech_stack", "language", "Go", base)
		old.IsCurrent = false

		f, err := d.Detect(ctx, []models.SpecRecord{old}, models.SpecCandidate{
			Category: "tech_stack", Key: "language", Value: "Rust",
		})
		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("cross-key alias fires", func(t *testing.T) {
		d := NewDetector(nil, nil)
		current := []models.SpecRecord{record("s1", "tech_stack", "primary_database", "sqlite", base)}

		f, err := d.Detect(ctx, current, models.SpecCandidate{
			Category: "tech_stack", Key: "db", Value: "a document store",
		})
		require.NoError(t, err)
		require.NotNil(t, f)
		assert.Equal(t, models.ConflictTechnology, f.Type)
	})

	t.Run("semantic cross-key rule consults the checker", func(t *testing.T) {
		checker := &scriptedChecker{verdict: SemanticVerdict{
			Contradicts: true, Confidence: 0.9, Explanation: "deadline incompatible with scope",
		}}
		d := NewDetector(checker, nil)
		current := []models.SpecRecord{record("s1", "requirements", "scope", "full ERP suite", base)}

		f, err := d.Detect(ctx, current, models.SpecCandidate{
			Category: "timeline", Key: "deadline", Value: "two weeks",
		})
		require.NoError(t, err)
		require.NotNil(t, f)
		assert.Equal(t, models.ConflictTimeline, f.Type)
		assert.Equal(t, "deadline incompatible with scope", f.Detail)
		require.Len(t, checker.calls, 1)
	})

	t.Run("semantic verdict below threshold is dropped", func(t *testing.T) {
		checker := &scriptedChecker{verdict: SemanticVerdict{
			Contradicts: true, Confidence: 0.5,
		}}
		d := NewDetector(checker, nil)
		current := []models.SpecRecord{record("s1", "requirements", "scope", "full ERP suite", base)}

		f, err := d.Detect(ctx, current, models.SpecCandidate{
			Category: "timeline", Key: "deadline", Value: "two weeks",
		})
		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("prose category routes same-category pairs through the checker", func(t *testing.T) {
		checker := &scriptedChecker{verdict: SemanticVerdict{
			Contradicts: true, Confidence: 0.8, Explanation: "offline-first contradicts server-rendered",
		}}
		d := NewDetector(checker, nil)
		current := []models.SpecRecord{record("s1", "requirements", "connectivity", "works fully offline", base)}

		f, err := d.Detect(ctx, current, models.SpecCandidate{
			Category: "requirements", Key: "rendering", Value: "all pages server rendered",
		})
		require.NoError(t, err)
		require.NotNil(t, f)
		assert.Equal(t, models.ConflictRequirements, f.Type)
	})

	t.Run("checker errors skip the pair instead of failing", func(t *testing.T) {
		checker := &scriptedChecker{err: errors.New("sidecar down")}
		d := NewDetector(checker, nil)
		current := []models.SpecRecord{record("s1", "requirements", "scope", "full ERP suite", base)}

		f, err := d.Detect(ctx, current, models.SpecCandidate{
			Category: "timeline", Key: "deadline", Value: "two weeks",
		})
		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("highest severity wins across incumbents", func(t *testing.T) {
		d := NewDetector(nil, nil)
		current := []models.SpecRecord{
			record("older", "tech_stack", "database", "sqlite", base),
			record("newer", "tech_stack", "db", "files on disk", base.Add(time.Hour)),
		}

		// Candidate disagrees with both via the alias rules; both findings
		// are technology, so the older incumbent is chosen.
		f, err := d.Detect(ctx, current, models.SpecCandidate{
			Category: "tech_stack", Key: "primary_database", Value: "a relational server",
		})
		require.NoError(t, err)
		require.NotNil(t, f)
		assert.Equal(t, "older", f.Incumbent.ID)
	})

	t.Run("nil checker disables the semantic paths", func(t *testing.T) {
		d := NewDetector(nil, nil)
		current := []models.SpecRecord{record("s1", "requirements", "scope", "full ERP suite", base)}

		f, err := d.Detect(ctx, current, models.SpecCandidate{
			Category: "requirements", Key: "rendering", Value: "all pages server rendered",
		})
		require.NoError(t, err)
		assert.Nil(t, f)
	})
}

func TestTypeForCategory(t *testing.T) {
	assert.Equal(t, models.ConflictTechnology, TypeForCategory("tech_stack"))
	assert.Equal(t, models.ConflictTimeline, TypeForCategory("timeline"))
	assert.Equal(t, models.ConflictResources, TypeForCategory("team_structure"))
	assert.Equal(t, models.ConflictRequirements, TypeForCategory("goals"))
	assert.Equal(t, models.ConflictRequirements, TypeForCategory("anything_else"))
}

func TestCrossKeyRuleMatches(t *testing.T) {
	rule := CrossKeyRule{
		CategoryA: "tech_stack", KeyA: "primary_database",
		CategoryB: "tech_stack", KeyB: "db",
	}
	assert.True(t, rule.matches("tech_stack", "primary_database", "tech_stack", "db"))
	assert.True(t, rule.matches("tech_stack", "db", "tech_stack", "primary_database"))
	assert.False(t, rule.matches("tech_stack", "db", "tech_stack", "database"))
}
