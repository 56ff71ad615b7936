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
	"github.com/specsmith/specsmith/ent/generatedfile"
	"github.com/specsmith/specsmith/ent/generatedproject"
)

// GeneratedFileCreate is the builder for creating a GeneratedFile entity.
type GeneratedFileCreate struct {
	config
	mutation *GeneratedFileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetGeneratedProjectID sets the "generated_project_id" field.
func (_c *GeneratedFileCreate) SetGeneratedProjectID(v string) *GeneratedFileCreate {
	_c.mutation.SetGeneratedProjectID(v)
	return _c
}

// SetPath sets the "path" field.
func (_c *GeneratedFileCreate) SetPath(v string) *GeneratedFileCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *GeneratedFileCreate) SetContent(v string) *GeneratedFileCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetLineCount sets the "line_count" field.
func (_c *GeneratedFileCreate) SetLineCount(v int) *GeneratedFileCreate {
	_c.mutation.SetLineCount(v)
	return _c
}

// SetNillableLineCount sets the "line_count" field if the given value is not nil.
func (_c *GeneratedFileCreate) SetNillableLineCount(v *int) *GeneratedFileCreate {
	if v != nil {
		_c.SetLineCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GeneratedFileCreate) SetCreatedAt(v time.Time) *GeneratedFileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GeneratedFileCreate) SetNillableCreatedAt(v *time.Time) *GeneratedFileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GeneratedFileCreate) SetID(v string) *GeneratedFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetGeneratedProject sets the "generated_project" edge to the GeneratedProject entity.
func (_c *GeneratedFileCreate) SetGeneratedProject(v *GeneratedProject) *GeneratedFileCreate {
	return _c.SetGeneratedProjectID(v.ID)
}

// Mutation returns the GeneratedFileMutation object of the builder.
func (_c *GeneratedFileCreate) Mutation() *GeneratedFileMutation {
	return _c.mutation
}

// Save creates the GeneratedFile in the database.
func (_c *GeneratedFileCreate) Save(ctx context.Context) (*GeneratedFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GeneratedFileCreate) SaveX(ctx context.Context) *GeneratedFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneratedFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneratedFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GeneratedFileCreate) defaults() {
	if _, ok := _c.mutation.LineCount(); !ok {
		v := generatedfile.DefaultLineCount
		_c.mutation.SetLineCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := generatedfile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GeneratedFileCreate) check() error {
	if _, ok := _c.mutation.GeneratedProjectID(); !ok {
		return &ValidationError{Name: "generated_project_id", err: errors.New(`ent: missing required field "GeneratedFile.generated_project_id"`)}
	}
	if _, ok := _c.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`ent: missing required field "GeneratedFile.path"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "GeneratedFile.content"`)}
	}
	if _, ok := _c.mutation.LineCount(); !ok {
		return &ValidationError{Name: "line_count", err: errors.New(`ent: missing required field "GeneratedFile.line_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GeneratedFile.created_at"`)}
	}
	if len(_c.mutation.GeneratedProjectIDs()) == 0 {
		return &ValidationError{Name: "generated_project", err: errors.New(`ent: missing required edge "GeneratedFile.generated_project"`)}
	}
	return nil
}

func (_c *GeneratedFileCreate) sqlSave(ctx context.Context) (*GeneratedFile, error) {
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
			return nil, fmt.Errorf("unexpected GeneratedFile.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GeneratedFileCreate) createSpec() (*GeneratedFile, *sqlgraph.CreateSpec) {
	var (
		_node = &GeneratedFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generatedfile.Table, sqlgraph.NewFieldSpec(generatedfile.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(generatedfile.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(generatedfile.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.LineCount(); ok {
		_spec.SetField(generatedfile.FieldLineCount, field.TypeInt, value)
		_node.LineCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(generatedfile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.GeneratedProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedfile.GeneratedProjectTable,
			Columns: []string{generatedfile.GeneratedProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedproject.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.GeneratedProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GeneratedFile.Create().
//		SetGeneratedProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GeneratedFileUpsert) {
//			SetGeneratedProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *GeneratedFileCreate) OnConflict(opts ...sql.ConflictOption) *GeneratedFileUpsertOne {
	_c.conflict = opts
	return &GeneratedFileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GeneratedFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GeneratedFileCreate) OnConflictColumns(columns ...string) *GeneratedFileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GeneratedFileUpsertOne{
		create: _c,
	}
}

type (
	// GeneratedFileUpsertOne is the builder for "upsert"-ing
	//  one GeneratedFile node.
	GeneratedFileUpsertOne struct {
		create *GeneratedFileCreate
	}

	// GeneratedFileUpsert is the "OnConflict" setter.
	GeneratedFileUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GeneratedFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(generatedfile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GeneratedFileUpsertOne) UpdateNewValues() *GeneratedFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(generatedfile.FieldID)
		}
		if _, exists := u.create.mutation.GeneratedProjectID(); exists {
			s.SetIgnore(generatedfile.FieldGeneratedProjectID)
		}
		if _, exists := u.create.mutation.Path(); exists {
			s.SetIgnore(generatedfile.FieldPath)
		}
		if _, exists := u.create.mutation.Content(); exists {
			s.SetIgnore(generatedfile.FieldContent)
		}
		if _, exists := u.create.mutation.LineCount(); exists {
			s.SetIgnore(generatedfile.FieldLineCount)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(generatedfile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GeneratedFile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GeneratedFileUpsertOne) Ignore() *GeneratedFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GeneratedFileUpsertOne) DoNothing() *GeneratedFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GeneratedFileCreate.OnConflict
// documentation for more info.
func (u *GeneratedFileUpsertOne) Update(set func(*GeneratedFileUpsert)) *GeneratedFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GeneratedFileUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *GeneratedFileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GeneratedFileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GeneratedFileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GeneratedFileUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GeneratedFileUpsertOne.ID is not supported by MySQL driver. Use GeneratedFileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GeneratedFileUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GeneratedFileCreateBulk is the builder for creating many GeneratedFile entities in bulk.
type GeneratedFileCreateBulk struct {
	config
	err      error
	builders []*GeneratedFileCreate
	conflict []sql.ConflictOption
}

// Save creates the GeneratedFile entities in the database.
func (_c *GeneratedFileCreateBulk) Save(ctx context.Context) ([]*GeneratedFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GeneratedFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GeneratedFileMutation)
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
func (_c *GeneratedFileCreateBulk) SaveX(ctx context.Context) []*GeneratedFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneratedFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneratedFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GeneratedFile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GeneratedFileUpsert) {
//			SetGeneratedProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *GeneratedFileCreateBulk) OnConflict(opts ...sql.ConflictOption) *GeneratedFileUpsertBulk {
	_c.conflict = opts
	return &GeneratedFileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GeneratedFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GeneratedFileCreateBulk) OnConflictColumns(columns ...string) *GeneratedFileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GeneratedFileUpsertBulk{
		create: _c,
	}
}

// GeneratedFileUpsertBulk is the builder for "upsert"-ing
// a bulk of GeneratedFile nodes.
type GeneratedFileUpsertBulk struct {
	create *GeneratedFileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GeneratedFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(generatedfile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GeneratedFileUpsertBulk) UpdateNewValues() *GeneratedFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(generatedfile.FieldID)
			}
			if _, exists := b.mutation.GeneratedProjectID(); exists {
				s.SetIgnore(generatedfile.FieldGeneratedProjectID)
			}
			if _, exists := b.mutation.Path(); exists {
				s.SetIgnore(generatedfile.FieldPath)
			}
			if _, exists := b.mutation.Content(); exists {
				s.SetIgnore(generatedfile.FieldContent)
			}
			if _, exists := b.mutation.LineCount(); exists {
				s.SetIgnore(generatedfile.FieldLineCount)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(generatedfile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GeneratedFile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GeneratedFileUpsertBulk) Ignore() *GeneratedFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GeneratedFileUpsertBulk) DoNothing() *GeneratedFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GeneratedFileCreateBulk.OnConflict
// documentation for more info.
func (u *GeneratedFileUpsertBulk) Update(set func(*GeneratedFileUpsert)) *GeneratedFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GeneratedFileUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *GeneratedFileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GeneratedFileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GeneratedFileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GeneratedFileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
