// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/specsmith/specsmith/ent/generatedfile"
	"github.com/specsmith/specsmith/ent/predicate"
)

// GeneratedFileUpdate is the builder for updating GeneratedFile entities.
type GeneratedFileUpdate struct {
	config
	hooks    []Hook
	mutation *GeneratedFileMutation
}

// Where appends a list predicates to the GeneratedFileUpdate builder.
func (_u *GeneratedFileUpdate) Where(ps ...predicate.GeneratedFile) *GeneratedFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the GeneratedFileMutation object of the builder.
func (_u *GeneratedFileUpdate) Mutation() *GeneratedFileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GeneratedFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneratedFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GeneratedFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneratedFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeneratedFileUpdate) check() error {
	if _u.mutation.GeneratedProjectCleared() && len(_u.mutation.GeneratedProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GeneratedFile.generated_project"`)
	}
	return nil
}

func (_u *GeneratedFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generatedfile.Table, generatedfile.Columns, sqlgraph.NewFieldSpec(generatedfile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generatedfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GeneratedFileUpdateOne is the builder for updating a single GeneratedFile entity.
type GeneratedFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GeneratedFileMutation
}

// Mutation returns the GeneratedFileMutation object of the builder.
func (_u *GeneratedFileUpdateOne) Mutation() *GeneratedFileMutation {
	return _u.mutation
}

// Where appends a list predicates to the GeneratedFileUpdate builder.
func (_u *GeneratedFileUpdateOne) Where(ps ...predicate.GeneratedFile) *GeneratedFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GeneratedFileUpdateOne) Select(field string, fields ...string) *GeneratedFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GeneratedFile entity.
func (_u *GeneratedFileUpdateOne) Save(ctx context.Context) (*GeneratedFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneratedFileUpdateOne) SaveX(ctx context.Context) *GeneratedFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GeneratedFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneratedFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeneratedFileUpdateOne) check() error {
	if _u.mutation.GeneratedProjectCleared() && len(_u.mutation.GeneratedProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GeneratedFile.generated_project"`)
	}
	return nil
}

func (_u *GeneratedFileUpdateOne) sqlSave(ctx context.Context) (_node *GeneratedFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generatedfile.Table, generatedfile.Columns, sqlgraph.NewFieldSpec(generatedfile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GeneratedFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generatedfile.FieldID)
		for _, f := range fields {
			if !generatedfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generatedfile.FieldID {
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
	_node = &GeneratedFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generatedfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
