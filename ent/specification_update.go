// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/specsmith/specsmith/ent/predicate"
	"github.com/specsmith/specsmith/ent/specification"
)

// SpecificationUpdate is the builder for updating Specification entities.
type SpecificationUpdate struct {
	config
	hooks    []Hook
	mutation *SpecificationMutation
}

// Where appends a list predicates to the SpecificationUpdate builder.
func (_u *SpecificationUpdate) Where(ps ...predicate.Specification) *SpecificationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetValue sets the "value" field.
func (_u *SpecificationUpdate) SetValue(v string) *SpecificationUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *SpecificationUpdate) SetNillableValue(v *string) *SpecificationUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SpecificationUpdate) SetConfidence(v float64) *SpecificationUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SpecificationUpdate) SetNillableConfidence(v *float64) *SpecificationUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SpecificationUpdate) AddConfidence(v float64) *SpecificationUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetIsCurrent sets the "is_current" field.
func (_u *SpecificationUpdate) SetIsCurrent(v bool) *SpecificationUpdate {
	_u.mutation.SetIsCurrent(v)
	return _u
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_u *SpecificationUpdate) SetNillableIsCurrent(v *bool) *SpecificationUpdate {
	if v != nil {
		_u.SetIsCurrent(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SpecificationUpdate) SetUpdatedAt(v time.Time) *SpecificationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SpecificationMutation object of the builder.
func (_u *SpecificationUpdate) Mutation() *SpecificationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SpecificationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpecificationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SpecificationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpecificationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SpecificationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := specification.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpecificationUpdate) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Specification.project"`)
	}
	return nil
}

func (_u *SpecificationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(specification.Table, specification.Columns, sqlgraph.NewFieldSpec(specification.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(specification.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(specification.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(specification.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsCurrent(); ok {
		_spec.SetField(specification.FieldIsCurrent, field.TypeBool, value)
	}
	if _u.mutation.SupersedesIDCleared() {
		_spec.ClearField(specification.FieldSupersedesID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(specification.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{specification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SpecificationUpdateOne is the builder for updating a single Specification entity.
type SpecificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SpecificationMutation
}

// SetValue sets the "value" field.
func (_u *SpecificationUpdateOne) SetValue(v string) *SpecificationUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *SpecificationUpdateOne) SetNillableValue(v *string) *SpecificationUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SpecificationUpdateOne) SetConfidence(v float64) *SpecificationUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SpecificationUpdateOne) SetNillableConfidence(v *float64) *SpecificationUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SpecificationUpdateOne) AddConfidence(v float64) *SpecificationUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetIsCurrent sets the "is_current" field.
func (_u *SpecificationUpdateOne) SetIsCurrent(v bool) *SpecificationUpdateOne {
	_u.mutation.SetIsCurrent(v)
	return _u
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_u *SpecificationUpdateOne) SetNillableIsCurrent(v *bool) *SpecificationUpdateOne {
	if v != nil {
		_u.SetIsCurrent(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SpecificationUpdateOne) SetUpdatedAt(v time.Time) *SpecificationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SpecificationMutation object of the builder.
func (_u *SpecificationUpdateOne) Mutation() *SpecificationMutation {
	return _u.mutation
}

// Where appends a list predicates to the SpecificationUpdate builder.
func (_u *SpecificationUpdateOne) Where(ps ...predicate.Specification) *SpecificationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SpecificationUpdateOne) Select(field string, fields ...string) *SpecificationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Specification entity.
func (_u *SpecificationUpdateOne) Save(ctx context.Context) (*Specification, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpecificationUpdateOne) SaveX(ctx context.Context) *Specification {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SpecificationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpecificationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SpecificationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := specification.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpecificationUpdateOne) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Specification.project"`)
	}
	return nil
}

func (_u *SpecificationUpdateOne) sqlSave(ctx context.Context) (_node *Specification, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(specification.Table, specification.Columns, sqlgraph.NewFieldSpec(specification.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Specification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, specification.FieldID)
		for _, f := range fields {
			if !specification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != specification.FieldID {
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
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(specification.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(specification.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(specification.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsCurrent(); ok {
		_spec.SetField(specification.FieldIsCurrent, field.TypeBool, value)
	}
	if _u.mutation.SupersedesIDCleared() {
		_spec.ClearField(specification.FieldSupersedesID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(specification.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Specification{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{specification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
