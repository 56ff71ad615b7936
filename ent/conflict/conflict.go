// Code generated by ent, DO NOT EDIT.

package conflict

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the conflict type in the database.
	Label = "conflict"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "conflict_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldIncumbentSpecID holds the string denoting the incumbent_spec_id field in the database.
	FieldIncumbentSpecID = "incumbent_spec_id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "spec_key"
	// FieldNewValue holds the string denoting the new_value field in the database.
	FieldNewValue = "new_value"
	// FieldNewConfidence holds the string denoting the new_confidence field in the database.
	FieldNewConfidence = "new_confidence"
	// FieldConflictType holds the string denoting the conflict_type field in the database.
	FieldConflictType = "conflict_type"
	// FieldDetail holds the string denoting the detail field in the database.
	FieldDetail = "detail"
	// FieldResolution holds the string denoting the resolution field in the database.
	FieldResolution = "resolution"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldResolver holds the string denoting the resolver field in the database.
	FieldResolver = "resolver"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// Table holds the table name of the conflict in the database.
	Table = "conflicts"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "conflicts"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
)

// Columns holds all SQL columns for conflict fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldIncumbentSpecID,
	FieldCategory,
	FieldKey,
	FieldNewValue,
	FieldNewConfidence,
	FieldConflictType,
	FieldDetail,
	FieldResolution,
	FieldCreatedBy,
	FieldResolver,
	FieldCreatedAt,
	FieldResolvedAt,
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
	// DefaultNewConfidence holds the default value on creation for the "new_confidence" field.
	DefaultNewConfidence float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ConflictType defines the type for the "conflict_type" enum field.
type ConflictType string

// ConflictType values.
const (
	ConflictTypeTechnology   ConflictType = "technology"
	ConflictTypeRequirements ConflictType = "requirements"
	ConflictTypeTimeline     ConflictType = "timeline"
	ConflictTypeResources    ConflictType = "resources"
)

func (ct ConflictType) String() string {
	return string(ct)
}

// ConflictTypeValidator is a validator for the "conflict_type" field enum values. It is called by the builders before save.
func ConflictTypeValidator(ct ConflictType) error {
	switch ct {
	case ConflictTypeTechnology, ConflictTypeRequirements, ConflictTypeTimeline, ConflictTypeResources:
		return nil
	default:
		return fmt.Errorf("conflict: invalid enum value for conflict_type field: %q", ct)
	}
}

// Resolution defines the type for the "resolution" enum field.
type Resolution string

// ResolutionPending is the default value of the Resolution enum.
const DefaultResolution = ResolutionPending

// Resolution values.
const (
	ResolutionPending Resolution = "pending"
	ResolutionKeepOld Resolution = "keep_old"
	ResolutionReplace Resolution = "replace"
	ResolutionMerge   Resolution = "merge"
)

func (r Resolution) String() string {
	return string(r)
}

// ResolutionValidator is a validator for the "resolution" field enum values. It is called by the builders before save.
func ResolutionValidator(r Resolution) error {
	switch r {
	case ResolutionPending, ResolutionKeepOld, ResolutionReplace, ResolutionMerge:
		return nil
	default:
		return fmt.Errorf("conflict: invalid enum value for resolution field: %q", r)
	}
}

// OrderOption defines the ordering options for the Conflict queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByIncumbentSpecID orders the results by the incumbent_spec_id field.
func ByIncumbentSpecID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncumbentSpecID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}

// ByNewValue orders the results by the new_value field.
func ByNewValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewValue, opts...).ToFunc()
}

// ByNewConfidence orders the results by the new_confidence field.
func ByNewConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewConfidence, opts...).ToFunc()
}

// ByConflictType orders the results by the conflict_type field.
func ByConflictType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConflictType, opts...).ToFunc()
}

// ByDetail orders the results by the detail field.
func ByDetail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetail, opts...).ToFunc()
}

// ByResolution orders the results by the resolution field.
func ByResolution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolution, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByResolver orders the results by the resolver field.
func ByResolver(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolver, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
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
