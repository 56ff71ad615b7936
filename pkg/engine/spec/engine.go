// Package spec is the pure specification engine: candidate normalization,
// ingest planning, supersede semantics, and maturity scoring. It accepts
// and returns plain data records and holds no store handles; the services
// layer performs the I/O.
package spec

import (
	"encoding/json"
	"reflect"
	"sort"
	"strings"

	"github.com/specsmith/specsmith/pkg/models"
)

// IngestAction says what the services layer should do with one candidate.
type IngestAction string

const (
	// ActionInsert inserts the candidate as a new current spec.
	ActionInsert IngestAction = "insert"
	// ActionNoOp skips the candidate: the incumbent already carries a
	// semantically equal value.
	ActionNoOp IngestAction = "noop"
	// ActionConflict opens a pending conflict; the candidate is not
	// inserted until the conflict resolves.
	ActionConflict IngestAction = "conflict"
)

// IngestDecision is the engine's verdict for one candidate.
type IngestDecision struct {
	Candidate models.SpecCandidate
	Action    IngestAction
	// Incumbent is set for noop and conflict decisions.
	Incumbent *models.SpecRecord
}

// PlanIngest decides, for each candidate, whether it inserts cleanly,
// no-ops against an equal incumbent, or raises a conflict. current must be
// the project's current specifications.
//
// Batch policy: when two candidates target the same (category, key), only
// the one with higher confidence is considered; ties break toward the later
// position in the batch.
func PlanIngest(current []models.SpecRecord, candidates []models.SpecCandidate) []IngestDecision {
	byKey := make(map[[2]string]*models.SpecRecord, len(current))
	for i := range current {
		if current[i].IsCurrent {
			byKey[[2]string{current[i].Category, current[i].Key}] = &current[i]
		}
	}

	decisions := make([]IngestDecision, 0, len(candidates))
	for _, cand := range dedupeBatch(candidates) {
		incumbent := byKey[[2]string{cand.Category, cand.Key}]
		switch {
		case incumbent == nil:
			decisions = append(decisions, IngestDecision{Candidate: cand, Action: ActionInsert})
		case ValuesEqual(incumbent.Value, cand.Value):
			decisions = append(decisions, IngestDecision{Candidate: cand, Action: ActionNoOp, Incumbent: incumbent})
		default:
			decisions = append(decisions, IngestDecision{Candidate: cand, Action: ActionConflict, Incumbent: incumbent})
		}
	}
	return decisions
}

// dedupeBatch keeps one candidate per (category, key): the highest
// confidence, ties broken by later batch position. Output preserves the
// original relative order of the winners.
func dedupeBatch(candidates []models.SpecCandidate) []models.SpecCandidate {
	type pick struct {
		idx  int
		cand models.SpecCandidate
	}
	best := make(map[[2]string]pick, len(candidates))
	for i, c := range candidates {
		k := [2]string{c.Category, c.Key}
		if prev, ok := best[k]; !ok || c.Confidence >= prev.cand.Confidence {
			best[k] = pick{idx: i, cand: c}
		}
	}

	picks := make([]pick, 0, len(best))
	for _, p := range best {
		picks = append(picks, p)
	}
	sort.Slice(picks, func(i, j int) bool { return picks[i].idx < picks[j].idx })

	out := make([]models.SpecCandidate, len(picks))
	for i, p := range picks {
		out[i] = p.cand
	}
	return out
}

// ValuesEqual implements semantic equality: case/whitespace-normalized
// comparison for scalars, structural equality when both values parse as
// JSON objects or arrays.
func ValuesEqual(a, b string) bool {
	if normalizeScalar(a) == normalizeScalar(b) {
		return true
	}

	av, aok := parseStructured(a)
	bv, bok := parseStructured(b)
	if aok && bok {
		return reflect.DeepEqual(av, bv)
	}
	return false
}

func normalizeScalar(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// parseStructured accepts only JSON objects and arrays; bare scalars fall
// through to normalized string comparison.
func parseStructured(s string) (any, bool) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
		return nil, false
	}
	return v, true
}

// BlockedKeys returns the (category, key) pairs frozen by pending
// conflicts. Ingestion touching any of them must be rejected.
func BlockedKeys(pending []models.ConflictRecord) map[[2]string]bool {
	blocked := make(map[[2]string]bool, len(pending))
	for _, c := range pending {
		if c.Resolution == models.ResolutionPending {
			blocked[[2]string{c.Category, c.Key}] = true
		}
	}
	return blocked
}
