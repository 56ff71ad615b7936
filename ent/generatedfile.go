// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/specsmith/specsmith/ent/generatedfile"
	"github.com/specsmith/specsmith/ent/generatedproject"
)

// GeneratedFile is the model entity for the GeneratedFile schema.
type GeneratedFile struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// GeneratedProjectID holds the value of the "generated_project_id" field.
	GeneratedProjectID string `json:"generated_project_id,omitempty"`
	// Path holds the value of the "path" field.
	Path string `json:"path,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// LineCount holds the value of the "line_count" field.
	LineCount int `json:"line_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GeneratedFileQuery when eager-loading is set.
	Edges        GeneratedFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GeneratedFileEdges holds the relations/edges for other nodes in the graph.
type GeneratedFileEdges struct {
	// GeneratedProject holds the value of the generated_project edge.
	GeneratedProject *GeneratedProject `json:"generated_project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// GeneratedProjectOrErr returns the GeneratedProject value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GeneratedFileEdges) GeneratedProjectOrErr() (*GeneratedProject, error) {
	if e.GeneratedProject != nil {
		return e.GeneratedProject, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: generatedproject.Label}
	}
	return nil, &NotLoadedError{edge: "generated_project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GeneratedFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case generatedfile.FieldLineCount:
			values[i] = new(sql.NullInt64)
		case generatedfile.FieldID, generatedfile.FieldGeneratedProjectID, generatedfile.FieldPath, generatedfile.FieldContent:
			values[i] = new(sql.NullString)
		case generatedfile.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GeneratedFile fields.
func (_m *GeneratedFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case generatedfile.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case generatedfile.FieldGeneratedProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field generated_project_id", values[i])
			} else if value.Valid {
				_m.GeneratedProjectID = value.String
			}
		case generatedfile.FieldPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field path", values[i])
			} else if value.Valid {
				_m.Path = value.String
			}
		case generatedfile.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case generatedfile.FieldLineCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field line_count", values[i])
			} else if value.Valid {
				_m.LineCount = int(value.Int64)
			}
		case generatedfile.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the GeneratedFile.
// This includes values selected through modifiers, order, etc.
func (_m *GeneratedFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGeneratedProject queries the "generated_project" edge of the GeneratedFile entity.
func (_m *GeneratedFile) QueryGeneratedProject() *GeneratedProjectQuery {
	return NewGeneratedFileClient(_m.config).QueryGeneratedProject(_m)
}

// Update returns a builder for updating this GeneratedFile.
// Note that you need to call GeneratedFile.Unwrap() before calling this method if this GeneratedFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GeneratedFile) Update() *GeneratedFileUpdateOne {
	return NewGeneratedFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GeneratedFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GeneratedFile) Unwrap() *GeneratedFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GeneratedFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GeneratedFile) String() string {
	var builder strings.Builder
	builder.WriteString("GeneratedFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("generated_project_id=")
	builder.WriteString(_m.GeneratedProjectID)
	builder.WriteString(", ")
	builder.WriteString("path=")
	builder.WriteString(_m.Path)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("line_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.LineCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GeneratedFiles is a parsable slice of GeneratedFile.
type GeneratedFiles []*GeneratedFile
