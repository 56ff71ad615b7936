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
	"github.com/specsmith/specsmith/ent/conflict"
	"github.com/specsmith/specsmith/ent/project"
)

// ConflictCreate is the builder for creating a Conflict entity.
type ConflictCreate struct {
	config
	mutation *ConflictMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *ConflictCreate) SetProjectID(v string) *ConflictCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetIncumbentSpecID sets the "incumbent_spec_id" field.
func (_c *ConflictCreate) SetIncumbentSpecID(v string) *ConflictCreate {
	_c.mutation.SetIncumbentSpecID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ConflictCreate) SetCategory(v string) *ConflictCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *ConflictCreate) SetKey(v string) *ConflictCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetNewValue sets the "new_value" field.
func (_c *ConflictCreate) SetNewValue(v string) *ConflictCreate {
	_c.mutation.SetNewValue(v)
	return _c
}

// SetNewConfidence sets the "new_confidence" field.
func (_c *ConflictCreate) SetNewConfidence(v float64) *ConflictCreate {
	_c.mutation.SetNewConfidence(v)
	return _c
}

// SetNillableNewConfidence sets the "new_confidence" field if the given value is not nil.
func (_c *ConflictCreate) SetNillableNewConfidence(v *float64) *ConflictCreate {
	if v != nil {
		_c.SetNewConfidence(*v)
	}
	return _c
}

// SetConflictType sets the "conflict_type" field.
func (_c *ConflictCreate) SetConflictType(v conflict.ConflictType) *ConflictCreate {
	_c.mutation.SetConflictType(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *ConflictCreate) SetDetail(v string) *ConflictCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *ConflictCreate) SetNillableDetail(v *string) *ConflictCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetResolution sets the "resolution" field.
func (_c *ConflictCreate) SetResolution(v conflict.Resolution) *ConflictCreate {
	_c.mutation.SetResolution(v)
	return _c
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_c *ConflictCreate) SetNillableResolution(v *conflict.Resolution) *ConflictCreate {
	if v != nil {
		_c.SetResolution(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *ConflictCreate) SetCreatedBy(v string) *ConflictCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetResolver sets the "resolver" field.
func (_c *ConflictCreate) SetResolver(v string) *ConflictCreate {
	_c.mutation.SetResolver(v)
	return _c
}

// SetNillableResolver sets the "resolver" field if the given value is not nil.
func (_c *ConflictCreate) SetNillableResolver(v *string) *ConflictCreate {
	if v != nil {
		_c.SetResolver(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConflictCreate) SetCreatedAt(v time.Time) *ConflictCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConflictCreate) SetNillableCreatedAt(v *time.Time) *ConflictCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *ConflictCreate) SetResolvedAt(v time.Time) *ConflictCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *ConflictCreate) SetNillableResolvedAt(v *time.Time) *ConflictCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConflictCreate) SetID(v string) *ConflictCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *ConflictCreate) SetProject(v *Project) *ConflictCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the ConflictMutation object of the builder.
func (_c *ConflictCreate) Mutation() *ConflictMutation {
	return _c.mutation
}

// Save creates the Conflict in the database.
func (_c *ConflictCreate) Save(ctx context.Context) (*Conflict, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConflictCreate) SaveX(ctx context.Context) *Conflict {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConflictCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConflictCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConflictCreate) defaults() {
	if _, ok := _c.mutation.NewConfidence(); !ok {
		v := conflict.DefaultNewConfidence
		_c.mutation.SetNewConfidence(v)
	}
	if _, ok := _c.mutation.Resolution(); !ok {
		v := conflict.DefaultResolution
		_c.mutation.SetResolution(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conflict.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConflictCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Conflict.project_id"`)}
	}
	if _, ok := _c.mutation.IncumbentSpecID(); !ok {
		return &ValidationError{Name: "incumbent_spec_id", err: errors.New(`ent: missing required field "Conflict.incumbent_spec_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Conflict.category"`)}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "Conflict.key"`)}
	}
	if _, ok := _c.mutation.NewValue(); !ok {
		return &ValidationError{Name: "new_value", err: errors.New(`ent: missing required field "Conflict.new_value"`)}
	}
	if _, ok := _c.mutation.NewConfidence(); !ok {
		return &ValidationError{Name: "new_confidence", err: errors.New(`ent: missing required field "Conflict.new_confidence"`)}
	}
	if _, ok := _c.mutation.ConflictType(); !ok {
		return &ValidationError{Name: "conflict_type", err: errors.New(`ent: missing required field "Conflict.conflict_type"`)}
	}
	if v, ok := _c.mutation.ConflictType(); ok {
		if err := conflict.ConflictTypeValidator(v); err != nil {
			return &ValidationError{Name: "conflict_type", err: fmt.Errorf(`ent: validator failed for field "Conflict.conflict_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Resolution(); !ok {
		return &ValidationError{Name: "resolution", err: errors.New(`ent: missing required field "Conflict.resolution"`)}
	}
	if v, ok := _c.mutation.Resolution(); ok {
		if err := conflict.ResolutionValidator(v); err != nil {
			return &ValidationError{Name: "resolution", err: fmt.Errorf(`ent: validator failed for field "Conflict.resolution": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Conflict.created_by"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Conflict.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Conflict.project"`)}
	}
	return nil
}

func (_c *ConflictCreate) sqlSave(ctx context.Context) (*Conflict, error) {
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
			return nil, fmt.Errorf("unexpected Conflict.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConflictCreate) createSpec() (*Conflict, *sqlgraph.CreateSpec) {
	var (
		_node = &Conflict{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conflict.Table, sqlgraph.NewFieldSpec(conflict.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.IncumbentSpecID(); ok {
		_spec.SetField(conflict.FieldIncumbentSpecID, field.TypeString, value)
		_node.IncumbentSpecID = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(conflict.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(conflict.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.NewValue(); ok {
		_spec.SetField(conflict.FieldNewValue, field.TypeString, value)
		_node.NewValue = value
	}
	if value, ok := _c.mutation.NewConfidence(); ok {
		_spec.SetField(conflict.FieldNewConfidence, field.TypeFloat64, value)
		_node.NewConfidence = value
	}
	if value, ok := _c.mutation.ConflictType(); ok {
		_spec.SetField(conflict.FieldConflictType, field.TypeEnum, value)
		_node.ConflictType = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(conflict.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.Resolution(); ok {
		_spec.SetField(conflict.FieldResolution, field.TypeEnum, value)
		_node.Resolution = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(conflict.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.Resolver(); ok {
		_spec.SetField(conflict.FieldResolver, field.TypeString, value)
		_node.Resolver = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conflict.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(conflict.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conflict.ProjectTable,
			Columns: []string{conflict.ProjectColumn},
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
//	client.Conflict.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConflictUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *ConflictCreate) OnConflict(opts ...sql.ConflictOption) *ConflictUpsertOne {
	_c.conflict = opts
	return &ConflictUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Conflict.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConflictCreate) OnConflictColumns(columns ...string) *ConflictUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConflictUpsertOne{
		create: _c,
	}
}

type (
	// ConflictUpsertOne is the builder for "upsert"-ing
	//  one Conflict node.
	ConflictUpsertOne struct {
		create *ConflictCreate
	}

	// ConflictUpsert is the "OnConflict" setter.
	ConflictUpsert struct {
		*sql.UpdateSet
	}
)

// SetDetail sets the "detail" field.
func (u *ConflictUpsert) SetDetail(v string) *ConflictUpsert {
	u.Set(conflict.FieldDetail, v)
	return u
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *ConflictUpsert) UpdateDetail() *ConflictUpsert {
	u.SetExcluded(conflict.FieldDetail)
	return u
}

// ClearDetail clears the value of the "detail" field.
func (u *ConflictUpsert) ClearDetail() *ConflictUpsert {
	u.SetNull(conflict.FieldDetail)
	return u
}

// SetResolution sets the "resolution" field.
func (u *ConflictUpsert) SetResolution(v conflict.Resolution) *ConflictUpsert {
	u.Set(conflict.FieldResolution, v)
	return u
}

// UpdateResolution sets the "resolution" field to the value that was provided on create.
func (u *ConflictUpsert) UpdateResolution() *ConflictUpsert {
	u.SetExcluded(conflict.FieldResolution)
	return u
}

// SetResolver sets the "resolver" field.
func (u *ConflictUpsert) SetResolver(v string) *ConflictUpsert {
	u.Set(conflict.FieldResolver, v)
	return u
}

// UpdateResolver sets the "resolver" field to the value that was provided on create.
func (u *ConflictUpsert) UpdateResolver() *ConflictUpsert {
	u.SetExcluded(conflict.FieldResolver)
	return u
}

// ClearResolver clears the value of the "resolver" field.
func (u *ConflictUpsert) ClearResolver() *ConflictUpsert {
	u.SetNull(conflict.FieldResolver)
	return u
}

// SetResolvedAt sets the "resolved_at" field.
func (u *ConflictUpsert) SetResolvedAt(v time.Time) *ConflictUpsert {
	u.Set(conflict.FieldResolvedAt, v)
	return u
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *ConflictUpsert) UpdateResolvedAt() *ConflictUpsert {
	u.SetExcluded(conflict.FieldResolvedAt)
	return u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *ConflictUpsert) ClearResolvedAt() *ConflictUpsert {
	u.SetNull(conflict.FieldResolvedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Conflict.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(conflict.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConflictUpsertOne) UpdateNewValues() *ConflictUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(conflict.FieldID)
		}
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(conflict.FieldProjectID)
		}
		if _, exists := u.create.mutation.IncumbentSpecID(); exists {
			s.SetIgnore(conflict.FieldIncumbentSpecID)
		}
		if _, exists := u.create.mutation.Category(); exists {
			s.SetIgnore(conflict.FieldCategory)
		}
		if _, exists := u.create.mutation.Key(); exists {
			s.SetIgnore(conflict.FieldKey)
		}
		if _, exists := u.create.mutation.NewValue(); exists {
			s.SetIgnore(conflict.FieldNewValue)
		}
		if _, exists := u.create.mutation.NewConfidence(); exists {
			s.SetIgnore(conflict.FieldNewConfidence)
		}
		if _, exists := u.create.mutation.ConflictType(); exists {
			s.SetIgnore(conflict.FieldConflictType)
		}
		if _, exists := u.create.mutation.CreatedBy(); exists {
			s.SetIgnore(conflict.FieldCreatedBy)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(conflict.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Conflict.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ConflictUpsertOne) Ignore() *ConflictUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConflictUpsertOne) DoNothing() *ConflictUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConflictCreate.OnConflict
// documentation for more info.
func (u *ConflictUpsertOne) Update(set func(*ConflictUpsert)) *ConflictUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConflictUpsert{UpdateSet: update})
	}))
	return u
}

// SetDetail sets the "detail" field.
func (u *ConflictUpsertOne) SetDetail(v string) *ConflictUpsertOne {
	return u.Update(func(s *ConflictUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *ConflictUpsertOne) UpdateDetail() *ConflictUpsertOne {
	return u.Update(func(s *ConflictUpsert) {
		s.UpdateDetail()
	})
}

// ClearDetail clears the value of the "detail" field.
func (u *ConflictUpsertOne) ClearDetail() *ConflictUpsertOne {
	return u.Update(func(s *ConflictUpsert) {
		s.ClearDetail()
	})
}

// SetResolution sets the "resolution" field.
func (u *ConflictUpsertOne) SetResolution(v conflict.Resolution) *ConflictUpsertOne {
	return u.Update(func(s *ConflictUpsert) {
		s.SetResolution(v)
	})
}

// UpdateResolution sets the "resolution" field to the value that was provided on create.
func (u *ConflictUpsertOne) UpdateResolution() *ConflictUpsertOne {
	return u.Update(func(s *ConflictUpsert) {
		s.UpdateResolution()
	})
}

// SetResolver sets the "resolver" field.
func (u *ConflictUpsertOne) SetResolver(v string) *ConflictUpsertOne {
	return u.Update(func(s *ConflictUpsert) {
		s.SetResolver(v)
	})
}

// UpdateResolver sets the "resolver" field to the value that was provided on create.
func (u *ConflictUpsertOne) UpdateResolver() *ConflictUpsertOne {
	return u.Update(func(s *ConflictUpsert) {
		s.UpdateResolver()
	})
}

// ClearResolver clears the value of the "resolver" field.
func (u *ConflictUpsertOne) ClearResolver() *ConflictUpsertOne {
	return u.Update(func(s *ConflictUpsert) {
		s.ClearResolver()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *ConflictUpsertOne) SetResolvedAt(v time.Time) *ConflictUpsertOne {
	return u.Update(func(s *ConflictUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *ConflictUpsertOne) UpdateResolvedAt() *ConflictUpsertOne {
	return u.Update(func(s *ConflictUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *ConflictUpsertOne) ClearResolvedAt() *ConflictUpsertOne {
	return u.Update(func(s *ConflictUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *ConflictUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConflictCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConflictUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ConflictUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ConflictUpsertOne.ID is not supported by MySQL driver. Use ConflictUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ConflictUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ConflictCreateBulk is the builder for creating many Conflict entities in bulk.
type ConflictCreateBulk struct {
	config
	err      error
	builders []*ConflictCreate
	conflict []sql.ConflictOption
}

// Save creates the Conflict entities in the database.
func (_c *ConflictCreateBulk) Save(ctx context.Context) ([]*Conflict, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Conflict, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConflictMutation)
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
func (_c *ConflictCreateBulk) SaveX(ctx context.Context) []*Conflict {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConflictCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConflictCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Conflict.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConflictUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *ConflictCreateBulk) OnConflict(opts ...sql.ConflictOption) *ConflictUpsertBulk {
	_c.conflict = opts
	return &ConflictUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Conflict.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConflictCreateBulk) OnConflictColumns(columns ...string) *ConflictUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConflictUpsertBulk{
		create: _c,
	}
}

// ConflictUpsertBulk is the builder for "upsert"-ing
// a bulk of Conflict nodes.
type ConflictUpsertBulk struct {
	create *ConflictCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Conflict.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(conflict.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConflictUpsertBulk) UpdateNewValues() *ConflictUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(conflict.FieldID)
			}
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(conflict.FieldProjectID)
			}
			if _, exists := b.mutation.IncumbentSpecID(); exists {
				s.SetIgnore(conflict.FieldIncumbentSpecID)
			}
			if _, exists := b.mutation.Category(); exists {
				s.SetIgnore(conflict.FieldCategory)
			}
			if _, exists := b.mutation.Key(); exists {
				s.SetIgnore(conflict.FieldKey)
			}
			if _, exists := b.mutation.NewValue(); exists {
				s.SetIgnore(conflict.FieldNewValue)
			}
			if _, exists := b.mutation.NewConfidence(); exists {
				s.SetIgnore(conflict.FieldNewConfidence)
			}
			if _, exists := b.mutation.ConflictType(); exists {
				s.SetIgnore(conflict.FieldConflictType)
			}
			if _, exists := b.mutation.CreatedBy(); exists {
				s.SetIgnore(conflict.FieldCreatedBy)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(conflict.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Conflict.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ConflictUpsertBulk) Ignore() *ConflictUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConflictUpsertBulk) DoNothing() *ConflictUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConflictCreateBulk.OnConflict
// documentation for more info.
func (u *ConflictUpsertBulk) Update(set func(*ConflictUpsert)) *ConflictUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConflictUpsert{UpdateSet: update})
	}))
	return u
}

// SetDetail sets the "detail" field.
func (u *ConflictUpsertBulk) SetDetail(v string) *ConflictUpsertBulk {
	return u.Update(func(s *ConflictUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *ConflictUpsertBulk) UpdateDetail() *ConflictUpsertBulk {
	return u.Update(func(s *ConflictUpsert) {
		s.UpdateDetail()
	})
}

// ClearDetail clears the value of the "detail" field.
func (u *ConflictUpsertBulk) ClearDetail() *ConflictUpsertBulk {
	return u.Update(func(s *ConflictUpsert) {
		s.ClearDetail()
	})
}

// SetResolution sets the "resolution" field.
func (u *ConflictUpsertBulk) SetResolution(v conflict.Resolution) *ConflictUpsertBulk {
	return u.Update(func(s *ConflictUpsert) {
		s.SetResolution(v)
	})
}

// UpdateResolution sets the "resolution" field to the value that was provided on create.
func (u *ConflictUpsertBulk) UpdateResolution() *ConflictUpsertBulk {
	return u.Update(func(s *ConflictUpsert) {
		s.UpdateResolution()
	})
}

// SetResolver sets the "resolver" field.
func (u *ConflictUpsertBulk) SetResolver(v string) *ConflictUpsertBulk {
	return u.Update(func(s *ConflictUpsert) {
		s.SetResolver(v)
	})
}

// UpdateResolver sets the "resolver" field to the value that was provided on create.
func (u *ConflictUpsertBulk) UpdateResolver() *ConflictUpsertBulk {
	return u.Update(func(s *ConflictUpsert) {
		s.UpdateResolver()
	})
}

// ClearResolver clears the value of the "resolver" field.
func (u *ConflictUpsertBulk) ClearResolver() *ConflictUpsertBulk {
	return u.Update(func(s *ConflictUpsert) {
		s.ClearResolver()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *ConflictUpsertBulk) SetResolvedAt(v time.Time) *ConflictUpsertBulk {
	return u.Update(func(s *ConflictUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *ConflictUpsertBulk) UpdateResolvedAt() *ConflictUpsertBulk {
	return u.Update(func(s *ConflictUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *ConflictUpsertBulk) ClearResolvedAt() *ConflictUpsertBulk {
	return u.Update(func(s *ConflictUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *ConflictUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ConflictCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConflictCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConflictUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
