// Package conflict performs pairwise contradiction detection between a
// candidate specification and the project's current specifications: exact
// key disagreement, a fixed cross-key rule table, and an LLM-assisted
// semantic path for prose categories. The detector holds no store handles;
// callers supply the current specifications.
package conflict

import (
	"context"
	"fmt"
	"log/slog"

	specengine "github.com/specsmith/specsmith/pkg/engine/spec"
	"github.com/specsmith/specsmith/pkg/models"
)

// Finding is one detected contradiction: the incumbent the candidate
// disagrees with, the conflict type, and an explanation.
type Finding struct {
	Incumbent models.SpecRecord
	Type      models.ConflictType
	Detail    string
}

// Detector runs the three detection paths.
type Detector struct {
	semantic SemanticChecker
	logger   *slog.Logger
}

// NewDetector creates a detector. A nil checker disables the semantic path.
func NewDetector(semantic SemanticChecker, logger *slog.Logger) *Detector {
	if semantic == nil {
		semantic = NoopChecker{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{semantic: semantic, logger: logger}
}

// Detect returns at most one finding for the candidate: when multiple rules
// fire, the highest-severity conflict type wins, and only one conflict is
// recorded per (candidate, incumbent) pair.
//
// Semantic check errors are treated as transient: the pair is skipped and logged, not
// surfaced, so LLM hiccups never block ingestion.
func (d *Detector) Detect(ctx context.Context, current []models.SpecRecord, cand models.SpecCandidate) (*Finding, error) {
	findings := map[string]Finding{} // incumbent spec ID → best finding

	record := func(f Finding) {
		if prev, ok := findings[f.Incumbent.ID]; ok && prev.Type.Severity() >= f.Type.Severity() {
			return
		}
		findings[f.Incumbent.ID] = f
	}

	for i := range current {
		incumbent := current[i]
		if !incumbent.IsCurrent {
			continue
		}

		// Exact-key path: same (category, key), different value.
		if incumbent.Category == cand.Category && incumbent.Key == cand.Key {
			if !specengine.ValuesEqual(incumbent.Value, cand.Value) {
				record(Finding{
					Incumbent: incumbent,
					Type:      TypeForCategory(cand.Category),
					Detail:    fmt.Sprintf("current value %q disagrees with proposed %q", incumbent.Value, cand.Value),
				})
			}
			continue
		}

		// Cross-key path: fixed rule table.
		for _, rule := range crossKeyRules {
			if !rule.matches(cand.Category, cand.Key, incumbent.Category, incumbent.Key) {
				continue
			}
			if rule.Semantic {
				if f, ok := d.checkSemantic(ctx, incumbent, cand, rule.Type); ok {
					record(f)
				}
				continue
			}
			if !specengine.ValuesEqual(incumbent.Value, cand.Value) {
				record(Finding{
					Incumbent: incumbent,
					Type:      rule.Type,
					Detail: fmt.Sprintf("%s/%s %q conflicts with %s/%s %q",
						incumbent.Category, incumbent.Key, incumbent.Value,
						cand.Category, cand.Key, cand.Value),
				})
			}
		}

		// Semantic path: prose categories, same key space.
		if IsProseCategory(cand.Category) && incumbent.Category == cand.Category {
			if f, ok := d.checkSemantic(ctx, incumbent, cand, TypeForCategory(cand.Category)); ok {
				record(f)
			}
		}
	}

	if len(findings) == 0 {
		return nil, nil
	}

	// Highest severity wins; stable tie-break on incumbent creation time so
	// detection is deterministic.
	var best *Finding
	for id := range findings {
		f := findings[id]
		if best == nil ||
			f.Type.Severity() > best.Type.Severity() ||
			(f.Type.Severity() == best.Type.Severity() && f.Incumbent.CreatedAt.Before(best.Incumbent.CreatedAt)) {
			tmp := f
			best = &tmp
		}
	}
	return best, nil
}

func (d *Detector) checkSemantic(ctx context.Context, incumbent models.SpecRecord, cand models.SpecCandidate, typ models.ConflictType) (Finding, bool) {
	verdict, err := d.semantic.Check(ctx, CheckInput{
		CategoryA: incumbent.Category, KeyA: incumbent.Key, ValueA: incumbent.Value,
		CategoryB: cand.Category, KeyB: cand.Key, ValueB: cand.Value,
	})
	if err != nil {
		d.logger.Warn("Semantic contradiction check skipped",
			"incumbent", incumbent.ID,
			"category", cand.Category,
			"key", cand.Key,
			"error", err)
		return Finding{}, false
	}
	if !verdict.IsConflict() {
		return Finding{}, false
	}
	return Finding{
		Incumbent: incumbent,
		Type:      typ,
		Detail:    verdict.Explanation,
	}, true
}
