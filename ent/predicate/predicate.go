// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// APIKey is the predicate function for apikey builders.
type APIKey func(*sql.Selector)

// ActivityLog is the predicate function for activitylog builders.
type ActivityLog func(*sql.Selector)

// Conflict is the predicate function for conflict builders.
type Conflict func(*sql.Selector)

// ConversationTurn is the predicate function for conversationturn builders.
type ConversationTurn func(*sql.Selector)

// GeneratedFile is the predicate function for generatedfile builders.
type GeneratedFile func(*sql.Selector)

// GeneratedProject is the predicate function for generatedproject builders.
type GeneratedProject func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// ProjectShare is the predicate function for projectshare builders.
type ProjectShare func(*sql.Selector)

// QualityMetric is the predicate function for qualitymetric builders.
type QualityMetric func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// RefreshToken is the predicate function for refreshtoken builders.
type RefreshToken func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Specification is the predicate function for specification builders.
type Specification func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
