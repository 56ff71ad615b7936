// Code generated by ent, DO NOT EDIT.

package generatedfile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the generatedfile type in the database.
	Label = "generated_file"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "file_id"
	// FieldGeneratedProjectID holds the string denoting the generated_project_id field in the database.
	FieldGeneratedProjectID = "generated_project_id"
	// FieldPath holds the string denoting the path field in the database.
	FieldPath = "path"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldLineCount holds the string denoting the line_count field in the database.
	FieldLineCount = "line_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeGeneratedProject holds the string denoting the generated_project edge name in mutations.
	EdgeGeneratedProject = "generated_project"
	// GeneratedProjectFieldID holds the string denoting the ID field of the GeneratedProject.
	GeneratedProjectFieldID = "generated_id"
	// Table holds the table name of the generatedfile in the database.
	Table = "generated_files"
	// GeneratedProjectTable is the table that holds the generated_project relation/edge.
	GeneratedProjectTable = "generated_files"
	// GeneratedProjectInverseTable is the table name for the GeneratedProject entity.
	// It exists in this package in order to avoid circular dependency with the "generatedproject" package.
	GeneratedProjectInverseTable = "generated_projects"
	// GeneratedProjectColumn is the table column denoting the generated_project relation/edge.
	GeneratedProjectColumn = "generated_project_id"
)

// Columns holds all SQL columns for generatedfile fields.
var Columns = []string{
	FieldID,
	FieldGeneratedProjectID,
	FieldPath,
	FieldContent,
	FieldLineCount,
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
	// DefaultLineCount holds the default value on creation for the "line_count" field.
	DefaultLineCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the GeneratedFile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGeneratedProjectID orders the results by the generated_project_id field.
func ByGeneratedProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedProjectID, opts...).ToFunc()
}

// ByPath orders the results by the path field.
func ByPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPath, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByLineCount orders the results by the line_count field.
func ByLineCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLineCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByGeneratedProjectField orders the results by generated_project field.
func ByGeneratedProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGeneratedProjectStep(), sql.OrderByField(field, opts...))
	}
}
func newGeneratedProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GeneratedProjectInverseTable, GeneratedProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, GeneratedProjectTable, GeneratedProjectColumn),
	)
}
