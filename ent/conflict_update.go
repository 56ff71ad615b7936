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
	"github.com/specsmith/specsmith/ent/conflict"
	"github.com/specsmith/specsmith/ent/predicate"
)

// ConflictUpdate is the builder for updating Conflict entities.
type ConflictUpdate struct {
	config
	hooks    []Hook
	mutation *ConflictMutation
}

// Where appends a list predicates to the ConflictUpdate builder.
func (_u *ConflictUpdate) Where(ps ...predicate.Conflict) *ConflictUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDetail sets the "detail" field.
func (_u *ConflictUpdate) SetDetail(v string) *ConflictUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *ConflictUpdate) SetNillableDetail(v *string) *ConflictUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *ConflictUpdate) ClearDetail() *ConflictUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *ConflictUpdate) SetResolution(v conflict.Resolution) *ConflictUpdate {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *ConflictUpdate) SetNillableResolution(v *conflict.Resolution) *ConflictUpdate {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// SetResolver sets the "resolver" field.
func (_u *ConflictUpdate) SetResolver(v string) *ConflictUpdate {
	_u.mutation.SetResolver(v)
	return _u
}

// SetNillableResolver sets the "resolver" field if the given value is not nil.
func (_u *ConflictUpdate) SetNillableResolver(v *string) *ConflictUpdate {
	if v != nil {
		_u.SetResolver(*v)
	}
	return _u
}

// ClearResolver clears the value of the "resolver" field.
func (_u *ConflictUpdate) ClearResolver() *ConflictUpdate {
	_u.mutation.ClearResolver()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ConflictUpdate) SetResolvedAt(v time.Time) *ConflictUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ConflictUpdate) SetNillableResolvedAt(v *time.Time) *ConflictUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ConflictUpdate) ClearResolvedAt() *ConflictUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the ConflictMutation object of the builder.
func (_u *ConflictUpdate) Mutation() *ConflictMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConflictUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConflictUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConflictUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConflictUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConflictUpdate) check() error {
	if v, ok := _u.mutation.Resolution(); ok {
		if err := conflict.ResolutionValidator(v); err != nil {
			return &ValidationError{Name: "resolution", err: fmt.Errorf(`ent: validator failed for field "Conflict.resolution": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Conflict.project"`)
	}
	return nil
}

func (_u *ConflictUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conflict.Table, conflict.Columns, sqlgraph.NewFieldSpec(conflict.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(conflict.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(conflict.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(conflict.FieldResolution, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Resolver(); ok {
		_spec.SetField(conflict.FieldResolver, field.TypeString, value)
	}
	if _u.mutation.ResolverCleared() {
		_spec.ClearField(conflict.FieldResolver, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(conflict.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(conflict.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conflict.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConflictUpdateOne is the builder for updating a single Conflict entity.
type ConflictUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConflictMutation
}

// SetDetail sets the "detail" field.
func (_u *ConflictUpdateOne) SetDetail(v string) *ConflictUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *ConflictUpdateOne) SetNillableDetail(v *string) *ConflictUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *ConflictUpdateOne) ClearDetail() *ConflictUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *ConflictUpdateOne) SetResolution(v conflict.Resolution) *ConflictUpdateOne {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *ConflictUpdateOne) SetNillableResolution(v *conflict.Resolution) *ConflictUpdateOne {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// SetResolver sets the "resolver" field.
func (_u *ConflictUpdateOne) SetResolver(v string) *ConflictUpdateOne {
	_u.mutation.SetResolver(v)
	return _u
}

// SetNillableResolver sets the "resolver" field if the given value is not nil.
func (_u *ConflictUpdateOne) SetNillableResolver(v *string) *ConflictUpdateOne {
	if v != nil {
		_u.SetResolver(*v)
	}
	return _u
}

// ClearResolver clears the value of the "resolver" field.
func (_u *ConflictUpdateOne) ClearResolver() *ConflictUpdateOne {
	_u.mutation.ClearResolver()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ConflictUpdateOne) SetResolvedAt(v time.Time) *ConflictUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ConflictUpdateOne) SetNillableResolvedAt(v *time.Time) *ConflictUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ConflictUpdateOne) ClearResolvedAt() *ConflictUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the ConflictMutation object of the builder.
func (_u *ConflictUpdateOne) Mutation() *ConflictMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConflictUpdate builder.
func (_u *ConflictUpdateOne) Where(ps ...predicate.Conflict) *ConflictUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConflictUpdateOne) Select(field string, fields ...string) *ConflictUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Conflict entity.
func (_u *ConflictUpdateOne) Save(ctx context.Context) (*Conflict, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConflictUpdateOne) SaveX(ctx context.Context) *Conflict {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConflictUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConflictUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConflictUpdateOne) check() error {
	if v, ok := _u.mutation.Resolution(); ok {
		if err := conflict.ResolutionValidator(v); err != nil {
			return &ValidationError{Name: "resolution", err: fmt.Errorf(`ent: validator failed for field "Conflict.resolution": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Conflict.project"`)
	}
	return nil
}

func (_u *ConflictUpdateOne) sqlSave(ctx context.Context) (_node *Conflict, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conflict.Table, conflict.Columns, sqlgraph.NewFieldSpec(conflict.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Conflict.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conflict.FieldID)
		for _, f := range fields {
			if !conflict.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conflict.FieldID {
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
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(conflict.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(conflict.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(conflict.FieldResolution, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Resolver(); ok {
		_spec.SetField(conflict.FieldResolver, field.TypeString, value)
	}
	if _u.mutation.ResolverCleared() {
		_spec.ClearField(conflict.FieldResolver, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(conflict.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(conflict.FieldResolvedAt, field.TypeTime)
	}
	_node = &Conflict{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conflict.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
