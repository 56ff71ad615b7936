// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/specsmith/specsmith/ent/project"
)

// Project is the model entity for the Project schema.
type Project struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Opaque reference into the identity store, no cross-store FK
	OwnerID string `json:"owner_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// CurrentPhase holds the value of the "current_phase" field.
	CurrentPhase project.CurrentPhase `json:"current_phase,omitempty"`
	// Cached value; always recomputed from current specifications
	MaturityScore float64 `json:"maturity_score,omitempty"`
	// Status holds the value of the "status" field.
	Status project.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProjectQuery when eager-loading is set.
	Edges        ProjectEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProjectEdges holds the relations/edges for other nodes in the graph.
type ProjectEdges struct {
	// Sessions holds the value of the sessions edge.
	Sessions []*Session `json:"sessions,omitempty"`
	// Specifications holds the value of the specifications edge.
	Specifications []*Specification `json:"specifications,omitempty"`
	// Conflicts holds the value of the conflicts edge.
	Conflicts []*Conflict `json:"conflicts,omitempty"`
	// QualityMetrics holds the value of the quality_metrics edge.
	QualityMetrics []*QualityMetric `json:"quality_metrics,omitempty"`
	// ActivityEntries holds the value of the activity_entries edge.
	ActivityEntries []*ActivityLog `json:"activity_entries,omitempty"`
	// GeneratedProjects holds the value of the generated_projects edge.
	GeneratedProjects []*GeneratedProject `json:"generated_projects,omitempty"`
	// Shares holds the value of the shares edge.
	Shares []*ProjectShare `json:"shares,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) SessionsOrErr() ([]*Session, error) {
	if e.loadedTypes[0] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// SpecificationsOrErr returns the Specifications value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) SpecificationsOrErr() ([]*Specification, error) {
	if e.loadedTypes[1] {
		return e.Specifications, nil
	}
	return nil, &NotLoadedError{edge: "specifications"}
}

// ConflictsOrErr returns the Conflicts value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) ConflictsOrErr() ([]*Conflict, error) {
	if e.loadedTypes[2] {
		return e.Conflicts, nil
	}
	return nil, &NotLoadedError{edge: "conflicts"}
}

// QualityMetricsOrErr returns the QualityMetrics value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) QualityMetricsOrErr() ([]*QualityMetric, error) {
	if e.loadedTypes[3] {
		return e.QualityMetrics, nil
	}
	return nil, &NotLoadedError{edge: "quality_metrics"}
}

// ActivityEntriesOrErr returns the ActivityEntries value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) ActivityEntriesOrErr() ([]*ActivityLog, error) {
	if e.loadedTypes[4] {
		return e.ActivityEntries, nil
	}
	return nil, &NotLoadedError{edge: "activity_entries"}
}

// GeneratedProjectsOrErr returns the GeneratedProjects value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) GeneratedProjectsOrErr() ([]*GeneratedProject, error) {
	if e.loadedTypes[5] {
		return e.GeneratedProjects, nil
	}
	return nil, &NotLoadedError{edge: "generated_projects"}
}

// SharesOrErr returns the Shares value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) SharesOrErr() ([]*ProjectShare, error) {
	if e.loadedTypes[6] {
		return e.Shares, nil
	}
	return nil, &NotLoadedError{edge: "shares"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Project) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case project.FieldMaturityScore:
			values[i] = new(sql.NullFloat64)
		case project.FieldID, project.FieldOwnerID, project.FieldName, project.FieldDescription, project.FieldCurrentPhase, project.FieldStatus:
			values[i] = new(sql.NullString)
		case project.FieldCreatedAt, project.FieldUpdatedAt, project.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Project fields.
func (_m *Project) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case project.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case project.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case project.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case project.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case project.FieldCurrentPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_phase", values[i])
			} else if value.Valid {
				_m.CurrentPhase = project.CurrentPhase(value.String)
			}
		case project.FieldMaturityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field maturity_score", values[i])
			} else if value.Valid {
				_m.MaturityScore = value.Float64
			}
		case project.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = project.Status(value.String)
			}
		case project.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case project.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case project.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Project.
// This includes values selected through modifiers, order, etc.
func (_m *Project) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySessions queries the "sessions" edge of the Project entity.
func (_m *Project) QuerySessions() *SessionQuery {
	return NewProjectClient(_m.config).QuerySessions(_m)
}

// QuerySpecifications queries the "specifications" edge of the Project entity.
func (_m *Project) QuerySpecifications() *SpecificationQuery {
	return NewProjectClient(_m.config).QuerySpecifications(_m)
}

// QueryConflicts queries the "conflicts" edge of the Project entity.
func (_m *Project) QueryConflicts() *ConflictQuery {
	return NewProjectClient(_m.config).QueryConflicts(_m)
}

// QueryQualityMetrics queries the "quality_metrics" edge of the Project entity.
func (_m *Project) QueryQualityMetrics() *QualityMetricQuery {
	return NewProjectClient(_m.config).QueryQualityMetrics(_m)
}

// QueryActivityEntries queries the "activity_entries" edge of the Project entity.
func (_m *Project) QueryActivityEntries() *ActivityLogQuery {
	return NewProjectClient(_m.config).QueryActivityEntries(_m)
}

// QueryGeneratedProjects queries the "generated_projects" edge of the Project entity.
func (_m *Project) QueryGeneratedProjects() *GeneratedProjectQuery {
	return NewProjectClient(_m.config).QueryGeneratedProjects(_m)
}

// QueryShares queries the "shares" edge of the Project entity.
func (_m *Project) QueryShares() *ProjectShareQuery {
	return NewProjectClient(_m.config).QueryShares(_m)
}

// Update returns a builder for updating this Project.
// Note that you need to call Project.Unwrap() before calling this method if this Project
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Project) Update() *ProjectUpdateOne {
	return NewProjectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Project entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Project) Unwrap() *Project {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Project is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Project) String() string {
	var builder strings.Builder
	builder.WriteString("Project(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("current_phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentPhase))
	builder.WriteString(", ")
	builder.WriteString("maturity_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaturityScore))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Projects is a parsable slice of Project.
type Projects []*Project
