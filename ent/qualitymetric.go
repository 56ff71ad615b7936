// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/specsmith/specsmith/ent/project"
	"github.com/specsmith/specsmith/ent/qualitymetric"
)

// QualityMetric is the model entity for the QualityMetric schema.
type QualityMetric struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// BiasScore holds the value of the "bias_score" field.
	BiasScore float64 `json:"bias_score,omitempty"`
	// CoverageScore holds the value of the "coverage_score" field.
	CoverageScore float64 `json:"coverage_score,omitempty"`
	// ComplexityScore holds the value of the "complexity_score" field.
	ComplexityScore float64 `json:"complexity_score,omitempty"`
	// Gated action that produced this evaluation
	Action string `json:"action,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QualityMetricQuery when eager-loading is set.
	Edges        QualityMetricEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QualityMetricEdges holds the relations/edges for other nodes in the graph.
type QualityMetricEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QualityMetricEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QualityMetric) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case qualitymetric.FieldBiasScore, qualitymetric.FieldCoverageScore, qualitymetric.FieldComplexityScore:
			values[i] = new(sql.NullFloat64)
		case qualitymetric.FieldID, qualitymetric.FieldProjectID, qualitymetric.FieldAction:
			values[i] = new(sql.NullString)
		case qualitymetric.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QualityMetric fields.
func (_m *QualityMetric) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case qualitymetric.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case qualitymetric.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case qualitymetric.FieldBiasScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field bias_score", values[i])
			} else if value.Valid {
				_m.BiasScore = value.Float64
			}
		case qualitymetric.FieldCoverageScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field coverage_score", values[i])
			} else if value.Valid {
				_m.CoverageScore = value.Float64
			}
		case qualitymetric.FieldComplexityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field complexity_score", values[i])
			} else if value.Valid {
				_m.ComplexityScore = value.Float64
			}
		case qualitymetric.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case qualitymetric.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QualityMetric.
// This includes values selected through modifiers, order, etc.
func (_m *QualityMetric) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the QualityMetric entity.
func (_m *QualityMetric) QueryProject() *ProjectQuery {
	return NewQualityMetricClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this QualityMetric.
// Note that you need to call QualityMetric.Unwrap() before calling this method if this QualityMetric
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QualityMetric) Update() *QualityMetricUpdateOne {
	return NewQualityMetricClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QualityMetric entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QualityMetric) Unwrap() *QualityMetric {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QualityMetric is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QualityMetric) String() string {
	var builder strings.Builder
	builder.WriteString("QualityMetric(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("bias_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.BiasScore))
	builder.WriteString(", ")
	builder.WriteString("coverage_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.CoverageScore))
	builder.WriteString(", ")
	builder.WriteString("complexity_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ComplexityScore))
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QualityMetrics is a parsable slice of QualityMetric.
type QualityMetrics []*QualityMetric
