// Code generated by ent, DO NOT EDIT.

package project

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the project type in the database.
	Label = "project"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "project_id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCurrentPhase holds the string denoting the current_phase field in the database.
	FieldCurrentPhase = "current_phase"
	// FieldMaturityScore holds the string denoting the maturity_score field in the database.
	FieldMaturityScore = "maturity_score"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeSessions holds the string denoting the sessions edge name in mutations.
	EdgeSessions = "sessions"
	// EdgeSpecifications holds the string denoting the specifications edge name in mutations.
	EdgeSpecifications = "specifications"
	// EdgeConflicts holds the string denoting the conflicts edge name in mutations.
	EdgeConflicts = "conflicts"
	// EdgeQualityMetrics holds the string denoting the quality_metrics edge name in mutations.
	EdgeQualityMetrics = "quality_metrics"
	// EdgeActivityEntries holds the string denoting the activity_entries edge name in mutations.
	EdgeActivityEntries = "activity_entries"
	// EdgeGeneratedProjects holds the string denoting the generated_projects edge name in mutations.
	EdgeGeneratedProjects = "generated_projects"
	// EdgeShares holds the string denoting the shares edge name in mutations.
	EdgeShares = "shares"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// SpecificationFieldID holds the string denoting the ID field of the Specification.
	SpecificationFieldID = "spec_id"
	// ConflictFieldID holds the string denoting the ID field of the Conflict.
	ConflictFieldID = "conflict_id"
	// QualityMetricFieldID holds the string denoting the ID field of the QualityMetric.
	QualityMetricFieldID = "metric_id"
	// ActivityLogFieldID holds the string denoting the ID field of the ActivityLog.
	ActivityLogFieldID = "activity_id"
	// GeneratedProjectFieldID holds the string denoting the ID field of the GeneratedProject.
	GeneratedProjectFieldID = "generated_id"
	// ProjectShareFieldID holds the string denoting the ID field of the ProjectShare.
	ProjectShareFieldID = "share_id"
	// Table holds the table name of the project in the database.
	Table = "projects"
	// SessionsTable is the table that holds the sessions relation/edge.
	SessionsTable = "sessions"
	// SessionsInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionsInverseTable = "sessions"
	// SessionsColumn is the table column denoting the sessions relation/edge.
	SessionsColumn = "project_id"
	// SpecificationsTable is the table that holds the specifications relation/edge.
	SpecificationsTable = "specifications"
	// SpecificationsInverseTable is the table name for the Specification entity.
	// It exists in this package in order to avoid circular dependency with the "specification" package.
	SpecificationsInverseTable = "specifications"
	// SpecificationsColumn is the table column denoting the specifications relation/edge.
	SpecificationsColumn = "project_id"
	// ConflictsTable is the table that holds the conflicts relation/edge.
	ConflictsTable = "conflicts"
	// ConflictsInverseTable is the table name for the Conflict entity.
	// It exists in this package in order to avoid circular dependency with the "conflict" package.
	ConflictsInverseTable = "conflicts"
	// ConflictsColumn is the table column denoting the conflicts relation/edge.
	ConflictsColumn = "project_id"
	// QualityMetricsTable is the table that holds the quality_metrics relation/edge.
	QualityMetricsTable = "quality_metrics"
	// QualityMetricsInverseTable is the table name for the QualityMetric entity.
	// It exists in this package in order to avoid circular dependency with the "qualitymetric" package.
	QualityMetricsInverseTable = "quality_metrics"
	// QualityMetricsColumn is the table column denoting the quality_metrics relation/edge.
	QualityMetricsColumn = "project_id"
	// ActivityEntriesTable is the table that holds the activity_entries relation/edge.
	ActivityEntriesTable = "activity_logs"
	// ActivityEntriesInverseTable is the table name for the ActivityLog entity.
	// It exists in this package in order to avoid circular dependency with the "activitylog" package.
	ActivityEntriesInverseTable = "activity_logs"
	// ActivityEntriesColumn is the table column denoting the activity_entries relation/edge.
	ActivityEntriesColumn = "project_id"
	// GeneratedProjectsTable is the table that holds the generated_projects relation/edge.
	GeneratedProjectsTable = "generated_projects"
	// GeneratedProjectsInverseTable is the table name for the GeneratedProject entity.
	// It exists in this package in order to avoid circular dependency with the "generatedproject" package.
	GeneratedProjectsInverseTable = "generated_projects"
	// GeneratedProjectsColumn is the table column denoting the generated_projects relation/edge.
	GeneratedProjectsColumn = "project_id"
	// SharesTable is the table that holds the shares relation/edge.
	SharesTable = "project_shares"
	// SharesInverseTable is the table name for the ProjectShare entity.
	// It exists in this package in order to avoid circular dependency with the "projectshare" package.
	SharesInverseTable = "project_shares"
	// SharesColumn is the table column denoting the shares relation/edge.
	SharesColumn = "project_id"
)

// Columns holds all SQL columns for project fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldName,
	FieldDescription,
	FieldCurrentPhase,
	FieldMaturityScore,
	FieldStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultMaturityScore holds the default value on creation for the "maturity_score" field.
	DefaultMaturityScore float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// CurrentPhase defines the type for the "current_phase" enum field.
type CurrentPhase string

// CurrentPhaseDiscovery is the default value of the CurrentPhase enum.
const DefaultCurrentPhase = CurrentPhaseDiscovery

// CurrentPhase values.
const (
	CurrentPhaseDiscovery      CurrentPhase = "discovery"
	CurrentPhaseAnalysis       CurrentPhase = "analysis"
	CurrentPhaseDesign         CurrentPhase = "design"
	CurrentPhaseImplementation CurrentPhase = "implementation"
)

func (cp CurrentPhase) String() string {
	return string(cp)
}

// CurrentPhaseValidator is a validator for the "current_phase" field enum values. It is called by the builders before save.
func CurrentPhaseValidator(cp CurrentPhase) error {
	switch cp {
	case CurrentPhaseDiscovery, CurrentPhaseAnalysis, CurrentPhaseDesign, CurrentPhaseImplementation:
		return nil
	default:
		return fmt.Errorf("project: invalid enum value for current_phase field: %q", cp)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusArchived:
		return nil
	default:
		return fmt.Errorf("project: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Project queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCurrentPhase orders the results by the current_phase field.
func ByCurrentPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentPhase, opts...).ToFunc()
}

// ByMaturityScore orders the results by the maturity_score field.
func ByMaturityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaturityScore, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// BySessionsCount orders the results by sessions count.
func BySessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSessionsStep(), opts...)
	}
}

// BySessions orders the results by sessions terms.
func BySessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySpecificationsCount orders the results by specifications count.
func BySpecificationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSpecificationsStep(), opts...)
	}
}

// BySpecifications orders the results by specifications terms.
func BySpecifications(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSpecificationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByConflictsCount orders the results by conflicts count.
func ByConflictsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newConflictsStep(), opts...)
	}
}

// ByConflicts orders the results by conflicts terms.
func ByConflicts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConflictsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByQualityMetricsCount orders the results by quality_metrics count.
func ByQualityMetricsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQualityMetricsStep(), opts...)
	}
}

// ByQualityMetrics orders the results by quality_metrics terms.
func ByQualityMetrics(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQualityMetricsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByActivityEntriesCount orders the results by activity_entries count.
func ByActivityEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newActivityEntriesStep(), opts...)
	}
}

// ByActivityEntries orders the results by activity_entries terms.
func ByActivityEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newActivityEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByGeneratedProjectsCount orders the results by generated_projects count.
func ByGeneratedProjectsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGeneratedProjectsStep(), opts...)
	}
}

// ByGeneratedProjects orders the results by generated_projects terms.
func ByGeneratedProjects(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGeneratedProjectsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySharesCount orders the results by shares count.
func BySharesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSharesStep(), opts...)
	}
}

// ByShares orders the results by shares terms.
func ByShares(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSharesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionsInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
	)
}
func newSpecificationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SpecificationsInverseTable, SpecificationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SpecificationsTable, SpecificationsColumn),
	)
}
func newConflictsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConflictsInverseTable, ConflictFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ConflictsTable, ConflictsColumn),
	)
}
func newQualityMetricsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QualityMetricsInverseTable, QualityMetricFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QualityMetricsTable, QualityMetricsColumn),
	)
}
func newActivityEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ActivityEntriesInverseTable, ActivityLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ActivityEntriesTable, ActivityEntriesColumn),
	)
}
func newGeneratedProjectsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GeneratedProjectsInverseTable, GeneratedProjectFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GeneratedProjectsTable, GeneratedProjectsColumn),
	)
}
func newSharesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SharesInverseTable, ProjectShareFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SharesTable, SharesColumn),
	)
}
