// Code generated by ent, DO NOT EDIT.

package qualitymetric

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/specsmith/specsmith/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldEQ(FieldProjectID, v))
}

// BiasScore applies equality check predicate on the "bias_score" field. It's identical to BiasScoreEQ.
func BiasScore(v float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldEQ(FieldBiasScore, v))
}

// CoverageScore applies equality check predicate on the "coverage_score" field. It's identical to CoverageScoreEQ.
func CoverageScore(v float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldEQ(FieldCoverageScore, v))
}

// ComplexityScore applies equality check predicate on the "complexity_score" field. It's identical to ComplexityScoreEQ.
func ComplexityScore(v float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldEQ(FieldComplexityScore, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldEQ(FieldAction, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldEQ(FieldCreatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldContainsFold(FieldProjectID, v))
}

// BiasScoreEQ applies the EQ predicate on the "bias_score" field.
func BiasScoreEQ(v float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldEQ(FieldBiasScore, v))
}

// BiasScoreNEQ applies the NEQ predicate on the "bias_score" field.
func BiasScoreNEQ(v float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldNEQ(FieldBiasScore, v))
}

// BiasScoreIn applies the In predicate on the "bias_score" field.
func BiasScoreIn(vs ...float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldIn(FieldBiasScore, vs...))
}

// BiasScoreNotIn applies the NotIn predicate on the "bias_score" field.
func BiasScoreNotIn(vs ...float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldNotIn(FieldBiasScore, vs...))
}

// BiasScoreGT applies the GT predicate on the "bias_score" field.
func BiasScoreGT(v float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldGT(FieldBiasScore, v))
}

// BiasScoreGTE applies the GTE predicate on the "bias_score" field.
func BiasScoreGTE(v float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldGTE(FieldBiasScore, v))
}

// BiasScoreLT applies the LT predicate on the "bias_score" field.
func BiasScoreLT(v float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldLT(FieldBiasScore, v))
}

// BiasScoreLTE applies the LTE predicate on the "bias_score" field.
func BiasScoreLTE(v float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldLTE(FieldBiasScore, v))
}

// CoverageScoreEQ applies the EQ predicate on the "coverage_score" field.
func CoverageScoreEQ(v float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldEQ(FieldCoverageScore, v))
}

// CoverageScoreNEQ applies the NEQ predicate on the "coverage_score" field.
func CoverageScoreNEQ(v float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldNEQ(FieldCoverageScore, v))
}

// CoverageScoreIn applies the In predicate on the "coverage_score" field.
func CoverageScoreIn(vs ...float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldIn(FieldCoverageScore, vs...))
}

// CoverageScoreNotIn applies the NotIn predicate on the "coverage_score" field.
func CoverageScoreNotIn(vs ...float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldNotIn(FieldCoverageScore, vs...))
}

// CoverageScoreGT applies the GT predicate on the "coverage_score" field.
func CoverageScoreGT(v float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldGT(FieldCoverageScore, v))
}

// CoverageScoreGTE applies the GTE predicate on the "coverage_score" field.
func CoverageScoreGTE(v float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldGTE(FieldCoverageScore, v))
}

// CoverageScoreLT applies the LT predicate on the "coverage_score" field.
func CoverageScoreLT(v float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldLT(FieldCoverageScore, v))
}

// CoverageScoreLTE applies the LTE predicate on the "coverage_score" field.
func CoverageScoreLTE(v float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldLTE(FieldCoverageScore, v))
}

// ComplexityScoreEQ applies the EQ predicate on the "complexity_score" field.
func ComplexityScoreEQ(v float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldEQ(FieldComplexityScore, v))
}

// ComplexityScoreNEQ applies the NEQ predicate on the "complexity_score" field.
func ComplexityScoreNEQ(v float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldNEQ(FieldComplexityScore, v))
}

// ComplexityScoreIn applies the In predicate on the "complexity_score" field.
func ComplexityScoreIn(vs ...float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldIn(FieldComplexityScore, vs...))
}

// ComplexityScoreNotIn applies the NotIn predicate on the "complexity_score" field.
func ComplexityScoreNotIn(vs ...float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldNotIn(FieldComplexityScore, vs...))
}

// ComplexityScoreGT applies the GT predicate on the "complexity_score" field.
func ComplexityScoreGT(v float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldGT(FieldComplexityScore, v))
}

// ComplexityScoreGTE applies the GTE predicate on the "complexity_score" field.
func ComplexityScoreGTE(v float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldGTE(FieldComplexityScore, v))
}

// ComplexityScoreLT applies the LT predicate on the "complexity_score" field.
func ComplexityScoreLT(v float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldLT(FieldComplexityScore, v))
}

// ComplexityScoreLTE applies the LTE predicate on the "complexity_score" field.
func ComplexityScoreLTE(v float64) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldLTE(FieldComplexityScore, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldHasSuffix(FieldAction, v))
}

// ActionIsNil applies the IsNil predicate on the "action" field.
func ActionIsNil() predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldIsNull(FieldAction))
}

// ActionNotNil applies the NotNil predicate on the "action" field.
func ActionNotNil() predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldNotNull(FieldAction))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldContainsFold(FieldAction, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QualityMetric {
	return predicate.QualityMetric(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.QualityMetric {
	return predicate.QualityMetric(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.QualityMetric {
	return predicate.QualityMetric(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QualityMetric) predicate.QualityMetric {
	return predicate.QualityMetric(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QualityMetric) predicate.QualityMetric {
	return predicate.QualityMetric(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QualityMetric) predicate.QualityMetric {
	return predicate.QualityMetric(sql.NotPredicates(p))
}
