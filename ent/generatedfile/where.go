// Code generated by ent, DO NOT EDIT.

package generatedfile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/specsmith/specsmith/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldContainsFold(FieldID, id))
}

// GeneratedProjectID applies equality check predicate on the "generated_project_id" field. It's identical to GeneratedProjectIDEQ.
func GeneratedProjectID(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldGeneratedProjectID, v))
}

// Path applies equality check predicate on the "path" field. It's identical to PathEQ.
func Path(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldPath, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldContent, v))
}

// LineCount applies equality check predicate on the "line_count" field. It's identical to LineCountEQ.
func LineCount(v int) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldLineCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldCreatedAt, v))
}

// GeneratedProjectIDEQ applies the EQ predicate on the "generated_project_id" field.
func GeneratedProjectIDEQ(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldGeneratedProjectID, v))
}

// GeneratedProjectIDNEQ applies the NEQ predicate on the "generated_project_id" field.
func GeneratedProjectIDNEQ(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNEQ(FieldGeneratedProjectID, v))
}

// GeneratedProjectIDIn applies the In predicate on the "generated_project_id" field.
func GeneratedProjectIDIn(vs ...string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldIn(FieldGeneratedProjectID, vs...))
}

// GeneratedProjectIDNotIn applies the NotIn predicate on the "generated_project_id" field.
func GeneratedProjectIDNotIn(vs ...string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNotIn(FieldGeneratedProjectID, vs...))
}

// GeneratedProjectIDGT applies the GT predicate on the "generated_project_id" field.
func GeneratedProjectIDGT(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldGT(FieldGeneratedProjectID, v))
}

// GeneratedProjectIDGTE applies the GTE predicate on the "generated_project_id" field.
func GeneratedProjectIDGTE(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldGTE(FieldGeneratedProjectID, v))
}

// GeneratedProjectIDLT applies the LT predicate on the "generated_project_id" field.
func GeneratedProjectIDLT(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldLT(FieldGeneratedProjectID, v))
}

// GeneratedProjectIDLTE applies the LTE predicate on the "generated_project_id" field.
func GeneratedProjectIDLTE(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldLTE(FieldGeneratedProjectID, v))
}

// GeneratedProjectIDContains applies the Contains predicate on the "generated_project_id" field.
func GeneratedProjectIDContains(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldContains(FieldGeneratedProjectID, v))
}

// GeneratedProjectIDHasPrefix applies the HasPrefix predicate on the "generated_project_id" field.
func GeneratedProjectIDHasPrefix(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldHasPrefix(FieldGeneratedProjectID, v))
}

// GeneratedProjectIDHasSuffix applies the HasSuffix predicate on the "generated_project_id" field.
func GeneratedProjectIDHasSuffix(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldHasSuffix(FieldGeneratedProjectID, v))
}

// GeneratedProjectIDEqualFold applies the EqualFold predicate on the "generated_project_id" field.
func GeneratedProjectIDEqualFold(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEqualFold(FieldGeneratedProjectID, v))
}

// GeneratedProjectIDContainsFold applies the ContainsFold predicate on the "generated_project_id" field.
func GeneratedProjectIDContainsFold(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldContainsFold(FieldGeneratedProjectID, v))
}

// PathEQ applies the EQ predicate on the "path" field.
func PathEQ(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldPath, v))
}

// PathNEQ applies the NEQ predicate on the "path" field.
func PathNEQ(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNEQ(FieldPath, v))
}

// PathIn applies the In predicate on the "path" field.
func PathIn(vs ...string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldIn(FieldPath, vs...))
}

// PathNotIn applies the NotIn predicate on the "path" field.
func PathNotIn(vs ...string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNotIn(FieldPath, vs...))
}

// PathGT applies the GT predicate on the "path" field.
func PathGT(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldGT(FieldPath, v))
}

// PathGTE applies the GTE predicate on the "path" field.
func PathGTE(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldGTE(FieldPath, v))
}

// PathLT applies the LT predicate on the "path" field.
func PathLT(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldLT(FieldPath, v))
}

// PathLTE applies the LTE predicate on the "path" field.
func PathLTE(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldLTE(FieldPath, v))
}

// PathContains applies the Contains predicate on the "path" field.
func PathContains(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldContains(FieldPath, v))
}

// PathHasPrefix applies the HasPrefix predicate on the "path" field.
func PathHasPrefix(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldHasPrefix(FieldPath, v))
}

// PathHasSuffix applies the HasSuffix predicate on the "path" field.
func PathHasSuffix(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldHasSuffix(FieldPath, v))
}

// PathEqualFold applies the EqualFold predicate on the "path" field.
func PathEqualFold(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEqualFold(FieldPath, v))
}

// PathContainsFold applies the ContainsFold predicate on the "path" field.
func PathContainsFold(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldContainsFold(FieldPath, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldContainsFold(FieldContent, v))
}

// LineCountEQ applies the EQ predicate on the "line_count" field.
func LineCountEQ(v int) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldLineCount, v))
}

// LineCountNEQ applies the NEQ predicate on the "line_count" field.
func LineCountNEQ(v int) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNEQ(FieldLineCount, v))
}

// LineCountIn applies the In predicate on the "line_count" field.
func LineCountIn(vs ...int) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldIn(FieldLineCount, vs...))
}

// LineCountNotIn applies the NotIn predicate on the "line_count" field.
func LineCountNotIn(vs ...int) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNotIn(FieldLineCount, vs...))
}

// LineCountGT applies the GT predicate on the "line_count" field.
func LineCountGT(v int) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldGT(FieldLineCount, v))
}

// LineCountGTE applies the GTE predicate on the "line_count" field.
func LineCountGTE(v int) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldGTE(FieldLineCount, v))
}

// LineCountLT applies the LT predicate on the "line_count" field.
func LineCountLT(v int) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldLT(FieldLineCount, v))
}

// LineCountLTE applies the LTE predicate on the "line_count" field.
func LineCountLTE(v int) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldLTE(FieldLineCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldLTE(FieldCreatedAt, v))
}

// HasGeneratedProject applies the HasEdge predicate on the "generated_project" edge.
func HasGeneratedProject() predicate.GeneratedFile {
	return predicate.GeneratedFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GeneratedProjectTable, GeneratedProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGeneratedProjectWith applies the HasEdge predicate on the "generated_project" edge with a given conditions (other predicates).
func HasGeneratedProjectWith(preds ...predicate.GeneratedProject) predicate.GeneratedFile {
	return predicate.GeneratedFile(func(s *sql.Selector) {
		step := newGeneratedProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GeneratedFile) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GeneratedFile) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GeneratedFile) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.NotPredicates(p))
}
