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
	"github.com/specsmith/specsmith/ent/projectshare"
)

// ProjectShareCreate is the builder for creating a ProjectShare entity.
type ProjectShareCreate struct {
	config
	mutation *ProjectShareMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *ProjectShareCreate) SetProjectID(v string) *ProjectShareCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ProjectShareCreate) SetUserID(v string) *ProjectShareCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *ProjectShareCreate) SetRole(v projectshare.Role) *ProjectShareCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetGrantedBy sets the "granted_by" field.
func (_c *ProjectShareCreate) SetGrantedBy(v string) *ProjectShareCreate {
	_c.mutation.SetGrantedBy(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProjectShareCreate) SetCreatedAt(v time.Time) *ProjectShareCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProjectShareCreate) SetNillableCreatedAt(v *time.Time) *ProjectShareCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProjectShareCreate) SetID(v string) *ProjectShareCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *ProjectShareCreate) SetProject(v *Project) *ProjectShareCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the ProjectShareMutation object of the builder.
func (_c *ProjectShareCreate) Mutation() *ProjectShareMutation {
	return _c.mutation
}

// Save creates the ProjectShare in the database.
func (_c *ProjectShareCreate) Save(ctx context.Context) (*ProjectShare, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProjectShareCreate) SaveX(ctx context.Context) *ProjectShare {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectShareCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectShareCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProjectShareCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := projectshare.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProjectShareCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "ProjectShare.project_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ProjectShare.user_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "ProjectShare.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := projectshare.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ProjectShare.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GrantedBy(); !ok {
		return &ValidationError{Name: "granted_by", err: errors.New(`ent: missing required field "ProjectShare.granted_by"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProjectShare.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "ProjectShare.project"`)}
	}
	return nil
}

func (_c *ProjectShareCreate) sqlSave(ctx context.Context) (*ProjectShare, error) {
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
			return nil, fmt.Errorf("unexpected ProjectShare.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProjectShareCreate) createSpec() (*ProjectShare, *sqlgraph.CreateSpec) {
	var (
		_node = &ProjectShare{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(projectshare.Table, sqlgraph.NewFieldSpec(projectshare.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(projectshare.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(projectshare.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.GrantedBy(); ok {
		_spec.SetField(projectshare.FieldGrantedBy, field.TypeString, value)
		_node.GrantedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(projectshare.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   projectshare.ProjectTable,
			Columns: []string{projectshare.ProjectColumn},
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
//	client.ProjectShare.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProjectShareUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProjectShareCreate) OnConflict(opts ...sql.ConflictOption) *ProjectShareUpsertOne {
	_c.conflict = opts
	return &ProjectShareUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProjectShare.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProjectShareCreate) OnConflictColumns(columns ...string) *ProjectShareUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProjectShareUpsertOne{
		create: _c,
	}
}

type (
	// ProjectShareUpsertOne is the builder for "upsert"-ing
	//  one ProjectShare node.
	ProjectShareUpsertOne struct {
		create *ProjectShareCreate
	}

	// ProjectShareUpsert is the "OnConflict" setter.
	ProjectShareUpsert struct {
		*sql.UpdateSet
	}
)

// SetRole sets the "role" field.
func (u *ProjectShareUpsert) SetRole(v projectshare.Role) *ProjectShareUpsert {
	u.Set(projectshare.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *ProjectShareUpsert) UpdateRole() *ProjectShareUpsert {
	u.SetExcluded(projectshare.FieldRole)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ProjectShare.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(projectshare.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProjectShareUpsertOne) UpdateNewValues() *ProjectShareUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(projectshare.FieldID)
		}
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(projectshare.FieldProjectID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(projectshare.FieldUserID)
		}
		if _, exists := u.create.mutation.GrantedBy(); exists {
			s.SetIgnore(projectshare.FieldGrantedBy)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(projectshare.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProjectShare.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProjectShareUpsertOne) Ignore() *ProjectShareUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProjectShareUpsertOne) DoNothing() *ProjectShareUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProjectShareCreate.OnConflict
// documentation for more info.
func (u *ProjectShareUpsertOne) Update(set func(*ProjectShareUpsert)) *ProjectShareUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProjectShareUpsert{UpdateSet: update})
	}))
	return u
}

// SetRole sets the "role" field.
func (u *ProjectShareUpsertOne) SetRole(v projectshare.Role) *ProjectShareUpsertOne {
	return u.Update(func(s *ProjectShareUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *ProjectShareUpsertOne) UpdateRole() *ProjectShareUpsertOne {
	return u.Update(func(s *ProjectShareUpsert) {
		s.UpdateRole()
	})
}

// Exec executes the query.
func (u *ProjectShareUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProjectShareCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProjectShareUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProjectShareUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProjectShareUpsertOne.ID is not supported by MySQL driver. Use ProjectShareUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProjectShareUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProjectShareCreateBulk is the builder for creating many ProjectShare entities in bulk.
type ProjectShareCreateBulk struct {
	config
	err      error
	builders []*ProjectShareCreate
	conflict []sql.ConflictOption
}

// Save creates the ProjectShare entities in the database.
func (_c *ProjectShareCreateBulk) Save(ctx context.Context) ([]*ProjectShare, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProjectShare, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProjectShareMutation)
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
func (_c *ProjectShareCreateBulk) SaveX(ctx context.Context) []*ProjectShare {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectShareCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectShareCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProjectShare.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProjectShareUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProjectShareCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProjectShareUpsertBulk {
	_c.conflict = opts
	return &ProjectShareUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProjectShare.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProjectShareCreateBulk) OnConflictColumns(columns ...string) *ProjectShareUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProjectShareUpsertBulk{
		create: _c,
	}
}

// ProjectShareUpsertBulk is the builder for "upsert"-ing
// a bulk of ProjectShare nodes.
type ProjectShareUpsertBulk struct {
	create *ProjectShareCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProjectShare.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(projectshare.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProjectShareUpsertBulk) UpdateNewValues() *ProjectShareUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(projectshare.FieldID)
			}
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(projectshare.FieldProjectID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(projectshare.FieldUserID)
			}
			if _, exists := b.mutation.GrantedBy(); exists {
				s.SetIgnore(projectshare.FieldGrantedBy)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(projectshare.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProjectShare.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProjectShareUpsertBulk) Ignore() *ProjectShareUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProjectShareUpsertBulk) DoNothing() *ProjectShareUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProjectShareCreateBulk.OnConflict
// documentation for more info.
func (u *ProjectShareUpsertBulk) Update(set func(*ProjectShareUpsert)) *ProjectShareUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProjectShareUpsert{UpdateSet: update})
	}))
	return u
}

// SetRole sets the "role" field.
func (u *ProjectShareUpsertBulk) SetRole(v projectshare.Role) *ProjectShareUpsertBulk {
	return u.Update(func(s *ProjectShareUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *ProjectShareUpsertBulk) UpdateRole() *ProjectShareUpsertBulk {
	return u.Update(func(s *ProjectShareUpsert) {
		s.UpdateRole()
	})
}

// Exec executes the query.
func (u *ProjectShareUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProjectShareCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProjectShareCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProjectShareUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
