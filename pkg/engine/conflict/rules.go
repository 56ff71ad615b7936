package conflict

import "github.com/specsmith/specsmith/pkg/models"

// TypeForCategory maps a specification category onto the conflict type used
// for exact-key disagreements in that category.
func TypeForCategory(category string) models.ConflictType {
	switch category {
	case "tech_stack", "deployment", "monitoring":
		return models.ConflictTechnology
	case "requirements", "goals", "security", "testing", "scalability":
		return models.ConflictRequirements
	case "timeline":
		return models.ConflictTimeline
	case "team_structure":
		return models.ConflictResources
	default:
		return models.ConflictRequirements
	}
}

// proseCategories are the categories whose values are prose-heavy enough to
// warrant the LLM-assisted semantic contradiction check.
var proseCategories = map[string]bool{
	"requirements": true,
	"goals":        true,
}

// IsProseCategory reports whether the semantic path applies to category.
func IsProseCategory(category string) bool {
	return proseCategories[category]
}

// CrossKeyRule declares that a candidate for one (category, key) can
// contradict an incumbent under a different key. Rules are a fixed,
// documented table; aliases capture the same concept declared under
// competing key spellings, and semantic pairs route prose keys through the
// LLM check.
type CrossKeyRule struct {
	// Category and key patterns for the two sides.
	CategoryA, KeyA string
	CategoryB, KeyB string

	// Type of the conflict raised when the rule fires.
	Type models.ConflictType

	// Semantic routes the pair through the LLM contradiction check instead
	// of firing on mere value inequality.
	Semantic bool
}

// crossKeyRules is the fixed rule table.
var crossKeyRules = []CrossKeyRule{
	// The same primary database declared under competing key aliases.
	{CategoryA: "tech_stack", KeyA: "primary_database", CategoryB: "tech_stack", KeyB: "database", Type: models.ConflictTechnology},
	{CategoryA: "tech_stack", KeyA: "primary_database", CategoryB: "tech_stack", KeyB: "db", Type: models.ConflictTechnology},
	{CategoryA: "tech_stack", KeyA: "database", CategoryB: "tech_stack", KeyB: "db", Type: models.ConflictTechnology},
	// Frontend framework aliases.
	{CategoryA: "tech_stack", KeyA: "frontend_framework", CategoryB: "tech_stack", KeyB: "frontend", Type: models.ConflictTechnology},
	// A deadline can contradict declared scope; needs the semantic check.
	{CategoryA: "timeline", KeyA: "deadline", CategoryB: "requirements", KeyB: "scope", Type: models.ConflictTimeline, Semantic: true},
	{CategoryA: "timeline", KeyA: "deadline", CategoryB: "team_structure", KeyB: "team_size", Type: models.ConflictResources, Semantic: true},
}

// matches reports whether the rule links (catA, keyA) with (catB, keyB) in
// either direction.
func (r CrossKeyRule) matches(catA, keyA, catB, keyB string) bool {
	forward := r.CategoryA == catA && r.KeyA == keyA && r.CategoryB == catB && r.KeyB == keyB
	backward := r.CategoryA == catB && r.KeyA == keyB && r.CategoryB == catA && r.KeyB == keyA
	return forward || backward
}

// CrossKeyRules returns a copy of the fixed rule table.
func CrossKeyRules() []CrossKeyRule {
	out := make([]CrossKeyRule, len(crossKeyRules))
	copy(out, crossKeyRules)
	return out
}
