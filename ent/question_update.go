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
	"github.com/specsmith/specsmith/ent/question"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetText sets the "text" field.
func (_u *QuestionUpdate) SetText(v string) *QuestionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableText(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *QuestionUpdate) SetCategory(v string) *QuestionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableCategory(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *QuestionUpdate) SetRole(v string) *QuestionUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableRole(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *QuestionUpdate) ClearRole() *QuestionUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetBiasScore sets the "bias_score" field.
func (_u *QuestionUpdate) SetBiasScore(v float64) *QuestionUpdate {
	_u.mutation.ResetBiasScore()
	_u.mutation.SetBiasScore(v)
	return _u
}

// SetNillableBiasScore sets the "bias_score" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableBiasScore(v *float64) *QuestionUpdate {
	if v != nil {
		_u.SetBiasScore(*v)
	}
	return _u
}

// AddBiasScore adds value to the "bias_score" field.
func (_u *QuestionUpdate) AddBiasScore(v float64) *QuestionUpdate {
	_u.mutation.AddBiasScore(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *QuestionUpdate) SetModel(v string) *QuestionUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableModel(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *QuestionUpdate) ClearModel() *QuestionUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetRegenerations sets the "regenerations" field.
func (_u *QuestionUpdate) SetRegenerations(v int) *QuestionUpdate {
	_u.mutation.ResetRegenerations()
	_u.mutation.SetRegenerations(v)
	return _u
}

// SetNillableRegenerations sets the "regenerations" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableRegenerations(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetRegenerations(*v)
	}
	return _u
}

// AddRegenerations adds value to the "regenerations" field.
func (_u *QuestionUpdate) AddRegenerations(v int) *QuestionUpdate {
	_u.mutation.AddRegenerations(v)
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Question.session"`)
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(question.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(question.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(question.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.BiasScore(); ok {
		_spec.SetField(question.FieldBiasScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBiasScore(); ok {
		_spec.AddField(question.FieldBiasScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(question.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(question.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Regenerations(); ok {
		_spec.SetField(question.FieldRegenerations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRegenerations(); ok {
		_spec.AddField(question.FieldRegenerations, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetText sets the "text" field.
func (_u *QuestionUpdateOne) SetText(v string) *QuestionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableText(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *QuestionUpdateOne) SetCategory(v string) *QuestionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableCategory(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *QuestionUpdateOne) SetRole(v string) *QuestionUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableRole(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *QuestionUpdateOne) ClearRole() *QuestionUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetBiasScore sets the "bias_score" field.
func (_u *QuestionUpdateOne) SetBiasScore(v float64) *QuestionUpdateOne {
	_u.mutation.ResetBiasScore()
	_u.mutation.SetBiasScore(v)
	return _u
}

// SetNillableBiasScore sets the "bias_score" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableBiasScore(v *float64) *QuestionUpdateOne {
	if v != nil {
		_u.SetBiasScore(*v)
	}
	return _u
}

// AddBiasScore adds value to the "bias_score" field.
func (_u *QuestionUpdateOne) AddBiasScore(v float64) *QuestionUpdateOne {
	_u.mutation.AddBiasScore(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *QuestionUpdateOne) SetModel(v string) *QuestionUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableModel(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *QuestionUpdateOne) ClearModel() *QuestionUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetRegenerations sets the "regenerations" field.
func (_u *QuestionUpdateOne) SetRegenerations(v int) *QuestionUpdateOne {
	_u.mutation.ResetRegenerations()
	_u.mutation.SetRegenerations(v)
	return _u
}

// SetNillableRegenerations sets the "regenerations" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableRegenerations(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetRegenerations(*v)
	}
	return _u
}

// AddRegenerations adds value to the "regenerations" field.
func (_u *QuestionUpdateOne) AddRegenerations(v int) *QuestionUpdateOne {
	_u.mutation.AddRegenerations(v)
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Question.session"`)
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
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
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(question.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(question.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(question.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.BiasScore(); ok {
		_spec.SetField(question.FieldBiasScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBiasScore(); ok {
		_spec.AddField(question.FieldBiasScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(question.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(question.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Regenerations(); ok {
		_spec.SetField(question.FieldRegenerations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRegenerations(); ok {
		_spec.AddField(question.FieldRegenerations, field.TypeInt, value)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
