// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/specsmith/specsmith/ent/conflict"
	"github.com/specsmith/specsmith/ent/project"
)

// Conflict is the model entity for the Conflict schema.
type Conflict struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// The current specification the proposed value disagrees with
	IncumbentSpecID string `json:"incumbent_spec_id,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Key holds the value of the "key" field.
	Key string `json:"key,omitempty"`
	// NewValue holds the value of the "new_value" field.
	NewValue string `json:"new_value,omitempty"`
	// NewConfidence holds the value of the "new_confidence" field.
	NewConfidence float64 `json:"new_confidence,omitempty"`
	// ConflictType holds the value of the "conflict_type" field.
	ConflictType conflict.ConflictType `json:"conflict_type,omitempty"`
	// Rule or LLM explanation of why the values contradict
	Detail string `json:"detail,omitempty"`
	// Resolution holds the value of the "resolution" field.
	Resolution conflict.Resolution `json:"resolution,omitempty"`
	// Identity that submitted the conflicting candidate
	CreatedBy string `json:"created_by,omitempty"`
	// Resolver holds the value of the "resolver" field.
	Resolver *string `json:"resolver,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConflictQuery when eager-loading is set.
	Edges        ConflictEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConflictEdges holds the relations/edges for other nodes in the graph.
type ConflictEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConflictEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Conflict) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conflict.FieldNewConfidence:
			values[i] = new(sql.NullFloat64)
		case conflict.FieldID, conflict.FieldProjectID, conflict.FieldIncumbentSpecID, conflict.FieldCategory, conflict.FieldKey, conflict.FieldNewValue, conflict.FieldConflictType, conflict.FieldDetail, conflict.FieldResolution, conflict.FieldCreatedBy, conflict.FieldResolver:
			values[i] = new(sql.NullString)
		case conflict.FieldCreatedAt, conflict.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Conflict fields.
func (_m *Conflict) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conflict.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case conflict.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case conflict.FieldIncumbentSpecID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field incumbent_spec_id", values[i])
			} else if value.Valid {
				_m.IncumbentSpecID = value.String
			}
		case conflict.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case conflict.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case conflict.FieldNewValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_value", values[i])
			} else if value.Valid {
				_m.NewValue = value.String
			}
		case conflict.FieldNewConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field new_confidence", values[i])
			} else if value.Valid {
				_m.NewConfidence = value.Float64
			}
		case conflict.FieldConflictType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conflict_type", values[i])
			} else if value.Valid {
				_m.ConflictType = conflict.ConflictType(value.String)
			}
		case conflict.FieldDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value.Valid {
				_m.Detail = value.String
			}
		case conflict.FieldResolution:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolution", values[i])
			} else if value.Valid {
				_m.Resolution = conflict.Resolution(value.String)
			}
		case conflict.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case conflict.FieldResolver:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolver", values[i])
			} else if value.Valid {
				_m.Resolver = new(string)
				*_m.Resolver = value.String
			}
		case conflict.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case conflict.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Conflict.
// This includes values selected through modifiers, order, etc.
func (_m *Conflict) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Conflict entity.
func (_m *Conflict) QueryProject() *ProjectQuery {
	return NewConflictClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this Conflict.
// Note that you need to call Conflict.Unwrap() before calling this method if this Conflict
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Conflict) Update() *ConflictUpdateOne {
	return NewConflictClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Conflict entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Conflict) Unwrap() *Conflict {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Conflict is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Conflict) String() string {
	var builder strings.Builder
	builder.WriteString("Conflict(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("incumbent_spec_id=")
	builder.WriteString(_m.IncumbentSpecID)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("new_value=")
	builder.WriteString(_m.NewValue)
	builder.WriteString(", ")
	builder.WriteString("new_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewConfidence))
	builder.WriteString(", ")
	builder.WriteString("conflict_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConflictType))
	builder.WriteString(", ")
	builder.WriteString("detail=")
	builder.WriteString(_m.Detail)
	builder.WriteString(", ")
	builder.WriteString("resolution=")
	builder.WriteString(fmt.Sprintf("%v", _m.Resolution))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	if v := _m.Resolver; v != nil {
		builder.WriteString("resolver=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Conflicts is a parsable slice of Conflict.
type Conflicts []*Conflict
