// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/specsmith/specsmith/ent/question"
	"github.com/specsmith/specsmith/ent/session"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *QuestionCreate) SetSessionID(v string) *QuestionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetText sets the "text" field.
func (_c *QuestionCreate) SetText(v string) *QuestionCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *QuestionCreate) SetCategory(v string) *QuestionCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *QuestionCreate) SetRole(v string) *QuestionCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableRole(v *string) *QuestionCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetBiasScore sets the "bias_score" field.
func (_c *QuestionCreate) SetBiasScore(v float64) *QuestionCreate {
	_c.mutation.SetBiasScore(v)
	return _c
}

// SetNillableBiasScore sets the "bias_score" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableBiasScore(v *float64) *QuestionCreate {
	if v != nil {
		_c.SetBiasScore(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *QuestionCreate) SetModel(v string) *QuestionCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableModel(v *string) *QuestionCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetRegenerations sets the "regenerations" field.
func (_c *QuestionCreate) SetRegenerations(v int) *QuestionCreate {
	_c.mutation.SetRegenerations(v)
	return _c
}

// SetNillableRegenerations sets the "regenerations" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableRegenerations(v *int) *QuestionCreate {
	if v != nil {
		_c.SetRegenerations(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionCreate) SetCreatedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCreatedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionCreate) SetID(v string) *QuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *QuestionCreate) SetSession(v *Session) *QuestionCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.BiasScore(); !ok {
		v := question.DefaultBiasScore
		_c.mutation.SetBiasScore(v)
	}
	if _, ok := _c.mutation.Regenerations(); !ok {
		v := question.DefaultRegenerations
		_c.mutation.SetRegenerations(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := question.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Question.session_id"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Question.text"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Question.category"`)}
	}
	if _, ok := _c.mutation.BiasScore(); !ok {
		return &ValidationError{Name: "bias_score", err: errors.New(`ent: missing required field "Question.bias_score"`)}
	}
	if _, ok := _c.mutation.Regenerations(); !ok {
		return &ValidationError{Name: "regenerations", err: errors.New(`ent: missing required field "Question.regenerations"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Question.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Question.session"`)}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Question.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(question.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(question.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.BiasScore(); ok {
		_spec.SetField(question.FieldBiasScore, field.TypeFloat64, value)
		_node.BiasScore = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(question.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Regenerations(); ok {
		_spec.SetField(question.FieldRegenerations, field.TypeInt, value)
		_node.Regenerations = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(question.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.SessionTable,
			Columns: []string{question.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Question.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionCreate) OnConflict(opts ...sql.ConflictOption) *QuestionUpsertOne {
	_c.conflict = opts
	return &QuestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionCreate) OnConflictColumns(columns ...string) *QuestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionUpsertOne{
		create: _c,
	}
}

type (
	// QuestionUpsertOne is the builder for "upsert"-ing
	//  one Question node.
	QuestionUpsertOne struct {
		create *QuestionCreate
	}

	// QuestionUpsert is the "OnConflict" setter.
	QuestionUpsert struct {
		*sql.UpdateSet
	}
)

// SetText sets the "text" field.
func (u *QuestionUpsert) SetText(v string) *QuestionUpsert {
	u.Set(question.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateText() *QuestionUpsert {
	u.SetExcluded(question.FieldText)
	return u
}

// SetCategory sets the "category" field.
func (u *QuestionUpsert) SetCategory(v string) *QuestionUpsert {
	u.Set(question.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateCategory() *QuestionUpsert {
	u.SetExcluded(question.FieldCategory)
	return u
}

// SetRole sets the "role" field.
func (u *QuestionUpsert) SetRole(v string) *QuestionUpsert {
	u.Set(question.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateRole() *QuestionUpsert {
	u.SetExcluded(question.FieldRole)
	return u
}

// ClearRole clears the value of the "role" field.
func (u *QuestionUpsert) ClearRole() *QuestionUpsert {
	u.SetNull(question.FieldRole)
	return u
}

// SetBiasScore sets the "bias_score" field.
func (u *QuestionUpsert) SetBiasScore(v float64) *QuestionUpsert {
	u.Set(question.FieldBiasScore, v)
	return u
}

// UpdateBiasScore sets the "bias_score" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateBiasScore() *QuestionUpsert {
	u.SetExcluded(question.FieldBiasScore)
	return u
}

// AddBiasScore adds v to the "bias_score" field.
func (u *QuestionUpsert) AddBiasScore(v float64) *QuestionUpsert {
	u.Add(question.FieldBiasScore, v)
	return u
}

// SetModel sets the "model" field.
func (u *QuestionUpsert) SetModel(v string) *QuestionUpsert {
	u.Set(question.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateModel() *QuestionUpsert {
	u.SetExcluded(question.FieldModel)
	return u
}

// ClearModel clears the value of the "model" field.
func (u *QuestionUpsert) ClearModel() *QuestionUpsert {
	u.SetNull(question.FieldModel)
	return u
}

// SetRegenerations sets the "regenerations" field.
func (u *QuestionUpsert) SetRegenerations(v int) *QuestionUpsert {
	u.Set(question.FieldRegenerations, v)
	return u
}

// UpdateRegenerations sets the "regenerations" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateRegenerations() *QuestionUpsert {
	u.SetExcluded(question.FieldRegenerations)
	return u
}

// AddRegenerations adds v to the "regenerations" field.
func (u *QuestionUpsert) AddRegenerations(v int) *QuestionUpsert {
	u.Add(question.FieldRegenerations, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(question.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionUpsertOne) UpdateNewValues() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(question.FieldID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(question.FieldSessionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(question.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionUpsertOne) Ignore() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionUpsertOne) DoNothing() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionCreate.OnConflict
// documentation for more info.
func (u *QuestionUpsertOne) Update(set func(*QuestionUpsert)) *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetText sets the "text" field.
func (u *QuestionUpsertOne) SetText(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateText() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateText()
	})
}

// SetCategory sets the "category" field.
func (u *QuestionUpsertOne) SetCategory(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateCategory() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateCategory()
	})
}

// SetRole sets the "role" field.
func (u *QuestionUpsertOne) SetRole(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateRole() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateRole()
	})
}

// ClearRole clears the value of the "role" field.
func (u *QuestionUpsertOne) ClearRole() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearRole()
	})
}

// SetBiasScore sets the "bias_score" field.
func (u *QuestionUpsertOne) SetBiasScore(v float64) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetBiasScore(v)
	})
}

// AddBiasScore adds v to the "bias_score" field.
func (u *QuestionUpsertOne) AddBiasScore(v float64) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.AddBiasScore(v)
	})
}

// UpdateBiasScore sets the "bias_score" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateBiasScore() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateBiasScore()
	})
}

// SetModel sets the "model" field.
func (u *QuestionUpsertOne) SetModel(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateModel() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *QuestionUpsertOne) ClearModel() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearModel()
	})
}

// SetRegenerations sets the "regenerations" field.
func (u *QuestionUpsertOne) SetRegenerations(v int) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetRegenerations(v)
	})
}

// AddRegenerations adds v to the "regenerations" field.
func (u *QuestionUpsertOne) AddRegenerations(v int) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.AddRegenerations(v)
	})
}

// UpdateRegenerations sets the "regenerations" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateRegenerations() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateRegenerations()
	})
}

// Exec executes the query.
func (u *QuestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: QuestionUpsertOne.ID is not supported by MySQL driver. Use QuestionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
	conflict []sql.ConflictOption
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Question.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionUpsertBulk {
	_c.conflict = opts
	return &QuestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionCreateBulk) OnConflictColumns(columns ...string) *QuestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionUpsertBulk{
		create: _c,
	}
}

// QuestionUpsertBulk is the builder for "upsert"-ing
// a bulk of Question nodes.
type QuestionUpsertBulk struct {
	create *QuestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(question.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionUpsertBulk) UpdateNewValues() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(question.FieldID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(question.FieldSessionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(question.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionUpsertBulk) Ignore() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionUpsertBulk) DoNothing() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionUpsertBulk) Update(set func(*QuestionUpsert)) *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetText sets the "text" field.
func (u *QuestionUpsertBulk) SetText(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateText() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateText()
	})
}

// SetCategory sets the "category" field.
func (u *QuestionUpsertBulk) SetCategory(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateCategory() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateCategory()
	})
}

// SetRole sets the "role" field.
func (u *QuestionUpsertBulk) SetRole(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateRole() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateRole()
	})
}

// ClearRole clears the value of the "role" field.
func (u *QuestionUpsertBulk) ClearRole() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearRole()
	})
}

// SetBiasScore sets the "bias_score" field.
func (u *QuestionUpsertBulk) SetBiasScore(v float64) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetBiasScore(v)
	})
}

// AddBiasScore adds v to the "bias_score" field.
func (u *QuestionUpsertBulk) AddBiasScore(v float64) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.AddBiasScore(v)
	})
}

// UpdateBiasScore sets the "bias_score" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateBiasScore() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateBiasScore()
	})
}

// SetModel sets the "model" field.
func (u *QuestionUpsertBulk) SetModel(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateModel() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *QuestionUpsertBulk) ClearModel() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearModel()
	})
}

// SetRegenerations sets the "regenerations" field.
func (u *QuestionUpsertBulk) SetRegenerations(v int) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetRegenerations(v)
	})
}

// AddRegenerations adds v to the "regenerations" field.
func (u *QuestionUpsertBulk) AddRegenerations(v int) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.AddRegenerations(v)
	})
}

// UpdateRegenerations sets the "regenerations" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateRegenerations() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateRegenerations()
	})
}

// Exec executes the query.
func (u *QuestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
