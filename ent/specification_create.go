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
	"github.com/specsmith/specsmith/ent/project"
	"github.com/specsmith/specsmith/ent/specification"
)

// SpecificationCreate is the builder for creating a Specification entity.
type SpecificationCreate struct {
	config
	mutation *SpecificationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *SpecificationCreate) SetProjectID(v string) *SpecificationCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *SpecificationCreate) SetCategory(v string) *SpecificationCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *SpecificationCreate) SetKey(v string) *SpecificationCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *SpecificationCreate) SetValue(v string) *SpecificationCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *SpecificationCreate) SetConfidence(v float64) *SpecificationCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *SpecificationCreate) SetNillableConfidence(v *float64) *SpecificationCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *SpecificationCreate) SetSource(v specification.Source) *SpecificationCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *SpecificationCreate) SetNillableSource(v *specification.Source) *SpecificationCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetIsCurrent sets the "is_current" field.
func (_c *SpecificationCreate) SetIsCurrent(v bool) *SpecificationCreate {
	_c.mutation.SetIsCurrent(v)
	return _c
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_c *SpecificationCreate) SetNillableIsCurrent(v *bool) *SpecificationCreate {
	if v != nil {
		_c.SetIsCurrent(*v)
	}
	return _c
}

// SetSupersedesID sets the "supersedes_id" field.
func (_c *SpecificationCreate) SetSupersedesID(v string) *SpecificationCreate {
	_c.mutation.SetSupersedesID(v)
	return _c
}

// SetNillableSupersedesID sets the "supersedes_id" field if the given value is not nil.
func (_c *SpecificationCreate) SetNillableSupersedesID(v *string) *SpecificationCreate {
	if v != nil {
		_c.SetSupersedesID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SpecificationCreate) SetCreatedAt(v time.Time) *SpecificationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SpecificationCreate) SetNillableCreatedAt(v *time.Time) *SpecificationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SpecificationCreate) SetUpdatedAt(v time.Time) *SpecificationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SpecificationCreate) SetNillableUpdatedAt(v *time.Time) *SpecificationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SpecificationCreate) SetID(v string) *SpecificationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *SpecificationCreate) SetProject(v *Project) *SpecificationCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the SpecificationMutation object of the builder.
func (_c *SpecificationCreate) Mutation() *SpecificationMutation {
	return _c.mutation
}

// Save creates the Specification in the database.
func (_c *SpecificationCreate) Save(ctx context.Context) (*Specification, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SpecificationCreate) SaveX(ctx context.Context) *Specification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpecificationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpecificationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SpecificationCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := specification.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := specification.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.IsCurrent(); !ok {
		v := specification.DefaultIsCurrent
		_c.mutation.SetIsCurrent(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := specification.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := specification.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SpecificationCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Specification.project_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Specification.category"`)}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "Specification.key"`)}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "Specification.value"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Specification.confidence"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Specification.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := specification.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Specification.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsCurrent(); !ok {
		return &ValidationError{Name: "is_current", err: errors.New(`ent: missing required field "Specification.is_current"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Specification.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Specification.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Specification.project"`)}
	}
	return nil
}

func (_c *SpecificationCreate) sqlSave(ctx context.Context) (*Specification, error) {
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
			return nil, fmt.Errorf("unexpected Specification.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SpecificationCreate) createSpec() (*Specification, *sqlgraph.CreateSpec) {
	var (
		_node = &Specification{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(specification.Table, sqlgraph.NewFieldSpec(specification.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(specification.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(specification.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(specification.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(specification.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(specification.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.IsCurrent(); ok {
		_spec.SetField(specification.FieldIsCurrent, field.TypeBool, value)
		_node.IsCurrent = value
	}
	if value, ok := _c.mutation.SupersedesID(); ok {
		_spec.SetField(specification.FieldSupersedesID, field.TypeString, value)
		_node.SupersedesID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(specification.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(specification.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   specification.ProjectTable,
			Columns: []string{specification.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Specification.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SpecificationUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *SpecificationCreate) OnConflict(opts ...sql.ConflictOption) *SpecificationUpsertOne {
	_c.conflict = opts
	return &SpecificationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Specification.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SpecificationCreate) OnConflictColumns(columns ...string) *SpecificationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SpecificationUpsertOne{
		create: _c,
	}
}

type (
	// SpecificationUpsertOne is the builder for "upsert"-ing
	//  one Specification node.
	SpecificationUpsertOne struct {
		create *SpecificationCreate
	}

	// SpecificationUpsert is the "OnConflict" setter.
	SpecificationUpsert struct {
		*sql.UpdateSet
	}
)

// SetValue sets the "value" field.
func (u *SpecificationUpsert) SetValue(v string) *SpecificationUpsert {
	u.Set(specification.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *SpecificationUpsert) UpdateValue() *SpecificationUpsert {
	u.SetExcluded(specification.FieldValue)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *SpecificationUpsert) SetConfidence(v float64) *SpecificationUpsert {
	u.Set(specification.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *SpecificationUpsert) UpdateConfidence() *SpecificationUpsert {
	u.SetExcluded(specification.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *SpecificationUpsert) AddConfidence(v float64) *SpecificationUpsert {
	u.Add(specification.FieldConfidence, v)
	return u
}

// SetIsCurrent sets the "is_current" field.
func (u *SpecificationUpsert) SetIsCurrent(v bool) *SpecificationUpsert {
	u.Set(specification.FieldIsCurrent, v)
	return u
}

// UpdateIsCurrent sets the "is_current" field to the value that was provided on create.
func (u *SpecificationUpsert) UpdateIsCurrent() *SpecificationUpsert {
	u.SetExcluded(specification.FieldIsCurrent)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SpecificationUpsert) SetUpdatedAt(v time.Time) *SpecificationUpsert {
	u.Set(specification.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SpecificationUpsert) UpdateUpdatedAt() *SpecificationUpsert {
	u.SetExcluded(specification.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Specification.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(specification.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SpecificationUpsertOne) UpdateNewValues() *SpecificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(specification.FieldID)
		}
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(specification.FieldProjectID)
		}
		if _, exists := u.create.mutation.Category(); exists {
			s.SetIgnore(specification.FieldCategory)
		}
		if _, exists := u.create.mutation.Key(); exists {
			s.SetIgnore(specification.FieldKey)
		}
		if _, exists := u.create.mutation.Source(); exists {
			s.SetIgnore(specification.FieldSource)
		}
		if _, exists := u.create.mutation.SupersedesID(); exists {
			s.SetIgnore(specification.FieldSupersedesID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(specification.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Specification.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SpecificationUpsertOne) Ignore() *SpecificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SpecificationUpsertOne) DoNothing() *SpecificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SpecificationCreate.OnConflict
// documentation for more info.
func (u *SpecificationUpsertOne) Update(set func(*SpecificationUpsert)) *SpecificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SpecificationUpsert{UpdateSet: update})
	}))
	return u
}

// SetValue sets the "value" field.
func (u *SpecificationUpsertOne) SetValue(v string) *SpecificationUpsertOne {
	return u.Update(func(s *SpecificationUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *SpecificationUpsertOne) UpdateValue() *SpecificationUpsertOne {
	return u.Update(func(s *SpecificationUpsert) {
		s.UpdateValue()
	})
}

// SetConfidence sets the "confidence" field.
func (u *SpecificationUpsertOne) SetConfidence(v float64) *SpecificationUpsertOne {
	return u.Update(func(s *SpecificationUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *SpecificationUpsertOne) AddConfidence(v float64) *SpecificationUpsertOne {
	return u.Update(func(s *SpecificationUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *SpecificationUpsertOne) UpdateConfidence() *SpecificationUpsertOne {
	return u.Update(func(s *SpecificationUpsert) {
		s.UpdateConfidence()
	})
}

// SetIsCurrent sets the "is_current" field.
func (u *SpecificationUpsertOne) SetIsCurrent(v bool) *SpecificationUpsertOne {
	return u.Update(func(s *SpecificationUpsert) {
		s.SetIsCurrent(v)
	})
}

// UpdateIsCurrent sets the "is_current" field to the value that was provided on create.
func (u *SpecificationUpsertOne) UpdateIsCurrent() *SpecificationUpsertOne {
	return u.Update(func(s *SpecificationUpsert) {
		s.UpdateIsCurrent()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SpecificationUpsertOne) SetUpdatedAt(v time.Time) *SpecificationUpsertOne {
	return u.Update(func(s *SpecificationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SpecificationUpsertOne) UpdateUpdatedAt() *SpecificationUpsertOne {
	return u.Update(func(s *SpecificationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SpecificationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SpecificationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SpecificationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SpecificationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SpecificationUpsertOne.ID is not supported by MySQL driver. Use SpecificationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SpecificationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SpecificationCreateBulk is the builder for creating many Specification entities in bulk.
type SpecificationCreateBulk struct {
	config
	err      error
	builders []*SpecificationCreate
	conflict []sql.ConflictOption
}

// Save creates the Specification entities in the database.
func (_c *SpecificationCreateBulk) Save(ctx context.Context) ([]*Specification, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Specification, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SpecificationMutation)
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
func (_c *SpecificationCreateBulk) SaveX(ctx context.Context) []*Specification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpecificationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpecificationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Specification.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SpecificationUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *SpecificationCreateBulk) OnConflict(opts ...sql.ConflictOption) *SpecificationUpsertBulk {
	_c.conflict = opts
	return &SpecificationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Specification.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SpecificationCreateBulk) OnConflictColumns(columns ...string) *SpecificationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SpecificationUpsertBulk{
		create: _c,
	}
}

// SpecificationUpsertBulk is the builder for "upsert"-ing
// a bulk of Specification nodes.
type SpecificationUpsertBulk struct {
	create *SpecificationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Specification.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(specification.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SpecificationUpsertBulk) UpdateNewValues() *SpecificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(specification.FieldID)
			}
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(specification.FieldProjectID)
			}
			if _, exists := b.mutation.Category(); exists {
				s.SetIgnore(specification.FieldCategory)
			}
			if _, exists := b.mutation.Key(); exists {
				s.SetIgnore(specification.FieldKey)
			}
			if _, exists := b.mutation.Source(); exists {
				s.SetIgnore(specification.FieldSource)
			}
			if _, exists := b.mutation.SupersedesID(); exists {
				s.SetIgnore(specification.FieldSupersedesID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(specification.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Specification.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SpecificationUpsertBulk) Ignore() *SpecificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SpecificationUpsertBulk) DoNothing() *SpecificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SpecificationCreateBulk.OnConflict
// documentation for more info.
func (u *SpecificationUpsertBulk) Update(set func(*SpecificationUpsert)) *SpecificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SpecificationUpsert{UpdateSet: update})
	}))
	return u
}

// SetValue sets the "value" field.
func (u *SpecificationUpsertBulk) SetValue(v string) *SpecificationUpsertBulk {
	return u.Update(func(s *SpecificationUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *SpecificationUpsertBulk) UpdateValue() *SpecificationUpsertBulk {
	return u.Update(func(s *SpecificationUpsert) {
		s.UpdateValue()
	})
}

// SetConfidence sets the "confidence" field.
func (u *SpecificationUpsertBulk) SetConfidence(v float64) *SpecificationUpsertBulk {
	return u.Update(func(s *SpecificationUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *SpecificationUpsertBulk) AddConfidence(v float64) *SpecificationUpsertBulk {
	return u.Update(func(s *SpecificationUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *SpecificationUpsertBulk) UpdateConfidence() *SpecificationUpsertBulk {
	return u.Update(func(s *SpecificationUpsert) {
		s.UpdateConfidence()
	})
}

// SetIsCurrent sets the "is_current" field.
func (u *SpecificationUpsertBulk) SetIsCurrent(v bool) *SpecificationUpsertBulk {
	return u.Update(func(s *SpecificationUpsert) {
		s.SetIsCurrent(v)
	})
}

// UpdateIsCurrent sets the "is_current" field to the value that was provided on create.
func (u *SpecificationUpsertBulk) UpdateIsCurrent() *SpecificationUpsertBulk {
	return u.Update(func(s *SpecificationUpsert) {
		s.UpdateIsCurrent()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SpecificationUpsertBulk) SetUpdatedAt(v time.Time) *SpecificationUpsertBulk {
	return u.Update(func(s *SpecificationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SpecificationUpsertBulk) UpdateUpdatedAt() *SpecificationUpsertBulk {
	return u.Update(func(s *SpecificationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SpecificationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SpecificationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SpecificationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SpecificationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
