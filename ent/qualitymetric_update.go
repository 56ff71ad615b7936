// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/specsmith/specsmith/ent/predicate"
	"github.com/specsmith/specsmith/ent/qualitymetric"
)

// QualityMetricUpdate is the builder for updating QualityMetric entities.
type QualityMetricUpdate struct {
	config
	hooks    []Hook
	mutation *QualityMetricMutation
}

// Where appends a list predicates to the QualityMetricUpdate builder.
func (_u *QualityMetricUpdate) Where(ps ...predicate.QualityMetric) *QualityMetricUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBiasScore sets the "bias_score" field.
func (_u *QualityMetricUpdate) SetBiasScore(v float64) *QualityMetricUpdate {
	_u.mutation.ResetBiasScore()
	_u.mutation.SetBiasScore(v)
	return _u
}

// SetNillableBiasScore sets the "bias_score" field if the given value is not nil.
func (_u *QualityMetricUpdate) SetNillableBiasScore(v *float64) *QualityMetricUpdate {
	if v != nil {
		_u.SetBiasScore(*v)
	}
	return _u
}

// AddBiasScore adds value to the "bias_score" field.
func (_u *QualityMetricUpdate) AddBiasScore(v float64) *QualityMetricUpdate {
	_u.mutation.AddBiasScore(v)
	return _u
}

// SetCoverageScore sets the "coverage_score" field.
func (_u *QualityMetricUpdate) SetCoverageScore(v float64) *QualityMetricUpdate {
	_u.mutation.ResetCoverageScore()
	_u.mutation.SetCoverageScore(v)
	return _u
}

// SetNillableCoverageScore sets the "coverage_score" field if the given value is not nil.
func (_u *QualityMetricUpdate) SetNillableCoverageScore(v *float64) *QualityMetricUpdate {
	if v != nil {
		_u.SetCoverageScore(*v)
	}
	return _u
}

// AddCoverageScore adds value to the "coverage_score" field.
func (_u *QualityMetricUpdate) AddCoverageScore(v float64) *QualityMetricUpdate {
	_u.mutation.AddCoverageScore(v)
	return _u
}

// SetComplexityScore sets the "complexity_score" field.
func (_u *QualityMetricUpdate) SetComplexityScore(v float64) *QualityMetricUpdate {
	_u.mutation.ResetComplexityScore()
	_u.mutation.SetComplexityScore(v)
	return _u
}

// SetNillableComplexityScore sets the "complexity_score" field if the given value is not nil.
func (_u *QualityMetricUpdate) SetNillableComplexityScore(v *float64) *QualityMetricUpdate {
	if v != nil {
		_u.SetComplexityScore(*v)
	}
	return _u
}

// AddComplexityScore adds value to the "complexity_score" field.
func (_u *QualityMetricUpdate) AddComplexityScore(v float64) *QualityMetricUpdate {
	_u.mutation.AddComplexityScore(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *QualityMetricUpdate) SetAction(v string) *QualityMetricUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *QualityMetricUpdate) SetNillableAction(v *string) *QualityMetricUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// ClearAction clears the value of the "action" field.
func (_u *QualityMetricUpdate) ClearAction() *QualityMetricUpdate {
	_u.mutation.ClearAction()
	return _u
}

// Mutation returns the QualityMetricMutation object of the builder.
func (_u *QualityMetricUpdate) Mutation() *QualityMetricMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QualityMetricUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QualityMetricUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QualityMetricUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QualityMetricUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QualityMetricUpdate) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QualityMetric.project"`)
	}
	return nil
}

func (_u *QualityMetricUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(qualitymetric.Table, qualitymetric.Columns, sqlgraph.NewFieldSpec(qualitymetric.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BiasScore(); ok {
		_spec.SetField(qualitymetric.FieldBiasScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBiasScore(); ok {
		_spec.AddField(qualitymetric.FieldBiasScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CoverageScore(); ok {
		_spec.SetField(qualitymetric.FieldCoverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoverageScore(); ok {
		_spec.AddField(qualitymetric.FieldCoverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ComplexityScore(); ok {
		_spec.SetField(qualitymetric.FieldComplexityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedComplexityScore(); ok {
		_spec.AddField(qualitymetric.FieldComplexityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(qualitymetric.FieldAction, field.TypeString, value)
	}
	if _u.mutation.ActionCleared() {
		_spec.ClearField(qualitymetric.FieldAction, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{qualitymetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QualityMetricUpdateOne is the builder for updating a single QualityMetric entity.
type QualityMetricUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QualityMetricMutation
}

// SetBiasScore sets the "bias_score" field.
func (_u *QualityMetricUpdateOne) SetBiasScore(v float64) *QualityMetricUpdateOne {
	_u.mutation.ResetBiasScore()
	_u.mutation.SetBiasScore(v)
	return _u
}

// SetNillableBiasScore sets the "bias_score" field if the given value is not nil.
func (_u *QualityMetricUpdateOne) SetNillableBiasScore(v *float64) *QualityMetricUpdateOne {
	if v != nil {
		_u.SetBiasScore(*v)
	}
	return _u
}

// AddBiasScore adds value to the "bias_score" field.
func (_u *QualityMetricUpdateOne) AddBiasScore(v float64) *QualityMetricUpdateOne {
	_u.mutation.AddBiasScore(v)
	return _u
}

// SetCoverageScore sets the "coverage_score" field.
func (_u *QualityMetricUpdateOne) SetCoverageScore(v float64) *QualityMetricUpdateOne {
	_u.mutation.ResetCoverageScore()
	_u.mutation.SetCoverageScore(v)
	return _u
}

// SetNillableCoverageScore sets the "coverage_score" field if the given value is not nil.
func (_u *QualityMetricUpdateOne) SetNillableCoverageScore(v *float64) *QualityMetricUpdateOne {
	if v != nil {
		_u.SetCoverageScore(*v)
	}
	return _u
}

// AddCoverageScore adds value to the "coverage_score" field.
func (_u *QualityMetricUpdateOne) AddCoverageScore(v float64) *QualityMetricUpdateOne {
	_u.mutation.AddCoverageScore(v)
	return _u
}

// SetComplexityScore sets the "complexity_score" field.
func (_u *QualityMetricUpdateOne) SetComplexityScore(v float64) *QualityMetricUpdateOne {
	_u.mutation.ResetComplexityScore()
	_u.mutation.SetComplexityScore(v)
	return _u
}

// SetNillableComplexityScore sets the "complexity_score" field if the given value is not nil.
func (_u *QualityMetricUpdateOne) SetNillableComplexityScore(v *float64) *QualityMetricUpdateOne {
	if v != nil {
		_u.SetComplexityScore(*v)
	}
	return _u
}

// AddComplexityScore adds value to the "complexity_score" field.
func (_u *QualityMetricUpdateOne) AddComplexityScore(v float64) *QualityMetricUpdateOne {
	_u.mutation.AddComplexityScore(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *QualityMetricUpdateOne) SetAction(v string) *QualityMetricUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *QualityMetricUpdateOne) SetNillableAction(v *string) *QualityMetricUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// ClearAction clears the value of the "action" field.
func (_u *QualityMetricUpdateOne) ClearAction() *QualityMetricUpdateOne {
	_u.mutation.ClearAction()
	return _u
}

// Mutation returns the QualityMetricMutation object of the builder.
func (_u *QualityMetricUpdateOne) Mutation() *QualityMetricMutation {
	return _u.mutation
}

// Where appends a list predicates to the QualityMetricUpdate builder.
func (_u *QualityMetricUpdateOne) Where(ps ...predicate.QualityMetric) *QualityMetricUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QualityMetricUpdateOne) Select(field string, fields ...string) *QualityMetricUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QualityMetric entity.
func (_u *QualityMetricUpdateOne) Save(ctx context.Context) (*QualityMetric, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QualityMetricUpdateOne) SaveX(ctx context.Context) *QualityMetric {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QualityMetricUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QualityMetricUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QualityMetricUpdateOne) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QualityMetric.project"`)
	}
	return nil
}

func (_u *QualityMetricUpdateOne) sqlSave(ctx context.Context) (_node *QualityMetric, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(qualitymetric.Table, qualitymetric.Columns, sqlgraph.NewFieldSpec(qualitymetric.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QualityMetric.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, qualitymetric.FieldID)
		for _, f := range fields {
			if !qualitymetric.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != qualitymetric.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BiasScore(); ok {
		_spec.SetField(qualitymetric.FieldBiasScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBiasScore(); ok {
		_spec.AddField(qualitymetric.FieldBiasScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CoverageScore(); ok {
		_spec.SetField(qualitymetric.FieldCoverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoverageScore(); ok {
		_spec.AddField(qualitymetric.FieldCoverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ComplexityScore(); ok {
		_spec.SetField(qualitymetric.FieldComplexityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedComplexityScore(); ok {
		_spec.AddField(qualitymetric.FieldComplexityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(qualitymetric.FieldAction, field.TypeString, value)
	}
	if _u.mutation.ActionCleared() {
		_spec.ClearField(qualitymetric.FieldAction, field.TypeString)
	}
	_node = &QualityMetric{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{qualitymetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
