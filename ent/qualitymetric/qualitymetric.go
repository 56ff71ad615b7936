// Code generated by ent, DO NOT EDIT.

package qualitymetric

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the qualitymetric type in the database.
	Label = "quality_metric"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "metric_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldBiasScore holds the string denoting the bias_score field in the database.
	FieldBiasScore = "bias_score"
	// FieldCoverageScore holds the string denoting the coverage_score field in the database.
	FieldCoverageScore = "coverage_score"
	// FieldComplexityScore holds the string denoting the complexity_score field in the database.
	FieldComplexityScore = "complexity_score"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// Table holds the table name of the qualitymetric in the database.
	Table = "quality_metrics"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "quality_metrics"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
)

// Columns holds all SQL columns for qualitymetric fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldBiasScore,
	FieldCoverageScore,
	FieldComplexityScore,
	FieldAction,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultBiasScore holds the default value on creation for the "bias_score" field.
	DefaultBiasScore float64
	// DefaultCoverageScore holds the default value on creation for the "coverage_score" field.
	DefaultCoverageScore float64
	// DefaultComplexityScore holds the default value on creation for the "complexity_score" field.
	DefaultComplexityScore float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the QualityMetric queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByBiasScore orders the results by the bias_score field.
func ByBiasScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBiasScore, opts...).ToFunc()
}

// ByCoverageScore orders the results by the coverage_score field.
func ByCoverageScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoverageScore, opts...).ToFunc()
}

// ByComplexityScore orders the results by the complexity_score field.
func ByComplexityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComplexityScore, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
