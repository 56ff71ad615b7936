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
	"github.com/specsmith/specsmith/ent/qualitymetric"
)

// QualityMetricCreate is the builder for creating a QualityMetric entity.
type QualityMetricCreate struct {
	config
	mutation *QualityMetricMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *QualityMetricCreate) SetProjectID(v string) *QualityMetricCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetBiasScore sets the "bias_score" field.
func (_c *QualityMetricCreate) SetBiasScore(v float64) *QualityMetricCreate {
	_c.mutation.SetBiasScore(v)
	return _c
}

// SetNillableBiasScore sets the "bias_score" field if the given value is not nil.
func (_c *QualityMetricCreate) SetNillableBiasScore(v *float64) *QualityMetricCreate {
	if v != nil {
		_c.SetBiasScore(*v)
	}
	return _c
}

// SetCoverageScore sets the "coverage_score" field.
func (_c *QualityMetricCreate) SetCoverageScore(v float64) *QualityMetricCreate {
	_c.mutation.SetCoverageScore(v)
	return _c
}

// SetNillableCoverageScore sets the "coverage_score" field if the given value is not nil.
func (_c *QualityMetricCreate) SetNillableCoverageScore(v *float64) *QualityMetricCreate {
	if v != nil {
		_c.SetCoverageScore(*v)
	}
	return _c
}

// SetComplexityScore sets the "complexity_score" field.
func (_c *QualityMetricCreate) SetComplexityScore(v float64) *QualityMetricCreate {
	_c.mutation.SetComplexityScore(v)
	return _c
}

// SetNillableComplexityScore sets the "complexity_score" field if the given value is not nil.
func (_c *QualityMetricCreate) SetNillableComplexityScore(v *float64) *QualityMetricCreate {
	if v != nil {
		_c.SetComplexityScore(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *QualityMetricCreate) SetAction(v string) *QualityMetricCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_c *QualityMetricCreate) SetNillableAction(v *string) *QualityMetricCreate {
	if v != nil {
		_c.SetAction(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QualityMetricCreate) SetCreatedAt(v time.Time) *QualityMetricCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QualityMetricCreate) SetNillableCreatedAt(v *time.Time) *QualityMetricCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QualityMetricCreate) SetID(v string) *QualityMetricCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *QualityMetricCreate) SetProject(v *Project) *QualityMetricCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the QualityMetricMutation object of the builder.
func (_c *QualityMetricCreate) Mutation() *QualityMetricMutation {
	return _c.mutation
}

// Save creates the QualityMetric in the database.
func (_c *QualityMetricCreate) Save(ctx context.Context) (*QualityMetric, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QualityMetricCreate) SaveX(ctx context.Context) *QualityMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QualityMetricCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QualityMetricCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QualityMetricCreate) defaults() {
	if _, ok := _c.mutation.BiasScore(); !ok {
		v := qualitymetric.DefaultBiasScore
		_c.mutation.SetBiasScore(v)
	}
	if _, ok := _c.mutation.CoverageScore(); !ok {
		v := qualitymetric.DefaultCoverageScore
		_c.mutation.SetCoverageScore(v)
	}
	if _, ok := _c.mutation.ComplexityScore(); !ok {
		v := qualitymetric.DefaultComplexityScore
		_c.mutation.SetComplexityScore(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := qualitymetric.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QualityMetricCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "QualityMetric.project_id"`)}
	}
	if _, ok := _c.mutation.BiasScore(); !ok {
		return &ValidationError{Name: "bias_score", err: errors.New(`ent: missing required field "QualityMetric.bias_score"`)}
	}
	if _, ok := _c.mutation.CoverageScore(); !ok {
		return &ValidationError{Name: "coverage_score", err: errors.New(`ent: missing required field "QualityMetric.coverage_score"`)}
	}
	if _, ok := _c.mutation.ComplexityScore(); !ok {
		return &ValidationError{Name: "complexity_score", err: errors.New(`ent: missing required field "QualityMetric.complexity_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QualityMetric.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "QualityMetric.project"`)}
	}
	return nil
}

func (_c *QualityMetricCreate) sqlSave(ctx context.Context) (*QualityMetric, error) {
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
			return nil, fmt.Errorf("unexpected QualityMetric.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QualityMetricCreate) createSpec() (*QualityMetric, *sqlgraph.CreateSpec) {
	var (
		_node = &QualityMetric{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(qualitymetric.Table, sqlgraph.NewFieldSpec(qualitymetric.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BiasScore(); ok {
		_spec.SetField(qualitymetric.FieldBiasScore, field.TypeFloat64, value)
		_node.BiasScore = value
	}
	if value, ok := _c.mutation.CoverageScore(); ok {
		_spec.SetField(qualitymetric.FieldCoverageScore, field.TypeFloat64, value)
		_node.CoverageScore = value
	}
	if value, ok := _c.mutation.ComplexityScore(); ok {
		_spec.SetField(qualitymetric.FieldComplexityScore, field.TypeFloat64, value)
		_node.ComplexityScore = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(qualitymetric.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(qualitymetric.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   qualitymetric.ProjectTable,
			Columns: []string{qualitymetric.ProjectColumn},
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
//	client.QualityMetric.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QualityMetricUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *QualityMetricCreate) OnConflict(opts ...sql.ConflictOption) *QualityMetricUpsertOne {
	_c.conflict = opts
	return &QualityMetricUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QualityMetric.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QualityMetricCreate) OnConflictColumns(columns ...string) *QualityMetricUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QualityMetricUpsertOne{
		create: _c,
	}
}

type (
	// QualityMetricUpsertOne is the builder for "upsert"-ing
	//  one QualityMetric node.
	QualityMetricUpsertOne struct {
		create *QualityMetricCreate
	}

	// QualityMetricUpsert is the "OnConflict" setter.
	QualityMetricUpsert struct {
		*sql.UpdateSet
	}
)

// SetBiasScore sets the "bias_score" field.
func (u *QualityMetricUpsert) SetBiasScore(v float64) *QualityMetricUpsert {
	u.Set(qualitymetric.FieldBiasScore, v)
	return u
}

// UpdateBiasScore sets the "bias_score" field to the value that was provided on create.
func (u *QualityMetricUpsert) UpdateBiasScore() *QualityMetricUpsert {
	u.SetExcluded(qualitymetric.FieldBiasScore)
	return u
}

// AddBiasScore adds v to the "bias_score" field.
func (u *QualityMetricUpsert) AddBiasScore(v float64) *QualityMetricUpsert {
	u.Add(qualitymetric.FieldBiasScore, v)
	return u
}

// SetCoverageScore sets the "coverage_score" field.
func (u *QualityMetricUpsert) SetCoverageScore(v float64) *QualityMetricUpsert {
	u.Set(qualitymetric.FieldCoverageScore, v)
	return u
}

// UpdateCoverageScore sets the "coverage_score" field to the value that was provided on create.
func (u *QualityMetricUpsert) UpdateCoverageScore() *QualityMetricUpsert {
	u.SetExcluded(qualitymetric.FieldCoverageScore)
	return u
}

// AddCoverageScore adds v to the "coverage_score" field.
func (u *QualityMetricUpsert) AddCoverageScore(v float64) *QualityMetricUpsert {
	u.Add(qualitymetric.FieldCoverageScore, v)
	return u
}

// SetComplexityScore sets the "complexity_score" field.
func (u *QualityMetricUpsert) SetComplexityScore(v float64) *QualityMetricUpsert {
	u.Set(qualitymetric.FieldComplexityScore, v)
	return u
}

// UpdateComplexityScore sets the "complexity_score" field to the value that was provided on create.
func (u *QualityMetricUpsert) UpdateComplexityScore() *QualityMetricUpsert {
	u.SetExcluded(qualitymetric.FieldComplexityScore)
	return u
}

// AddComplexityScore adds v to the "complexity_score" field.
func (u *QualityMetricUpsert) AddComplexityScore(v float64) *QualityMetricUpsert {
	u.Add(qualitymetric.FieldComplexityScore, v)
	return u
}

// SetAction sets the "action" field.
func (u *QualityMetricUpsert) SetAction(v string) *QualityMetricUpsert {
	u.Set(qualitymetric.FieldAction, v)
	return u
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *QualityMetricUpsert) UpdateAction() *QualityMetricUpsert {
	u.SetExcluded(qualitymetric.FieldAction)
	return u
}

// ClearAction clears the value of the "action" field.
func (u *QualityMetricUpsert) ClearAction() *QualityMetricUpsert {
	u.SetNull(qualitymetric.FieldAction)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QualityMetric.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(qualitymetric.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QualityMetricUpsertOne) UpdateNewValues() *QualityMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(qualitymetric.FieldID)
		}
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(qualitymetric.FieldProjectID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(qualitymetric.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QualityMetric.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QualityMetricUpsertOne) Ignore() *QualityMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QualityMetricUpsertOne) DoNothing() *QualityMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QualityMetricCreate.OnConflict
// documentation for more info.
func (u *QualityMetricUpsertOne) Update(set func(*QualityMetricUpsert)) *QualityMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QualityMetricUpsert{UpdateSet: update})
	}))
	return u
}

// SetBiasScore sets the "bias_score" field.
func (u *QualityMetricUpsertOne) SetBiasScore(v float64) *QualityMetricUpsertOne {
	return u.Update(func(s *QualityMetricUpsert) {
		s.SetBiasScore(v)
	})
}

// AddBiasScore adds v to the "bias_score" field.
func (u *QualityMetricUpsertOne) AddBiasScore(v float64) *QualityMetricUpsertOne {
	return u.Update(func(s *QualityMetricUpsert) {
		s.AddBiasScore(v)
	})
}

// UpdateBiasScore sets the "bias_score" field to the value that was provided on create.
func (u *QualityMetricUpsertOne) UpdateBiasScore() *QualityMetricUpsertOne {
	return u.Update(func(s *QualityMetricUpsert) {
		s.UpdateBiasScore()
	})
}

// SetCoverageScore sets the "coverage_score" field.
func (u *QualityMetricUpsertOne) SetCoverageScore(v float64) *QualityMetricUpsertOne {
	return u.Update(func(s *QualityMetricUpsert) {
		s.SetCoverageScore(v)
	})
}

// AddCoverageScore adds v to the "coverage_score" field.
func (u *QualityMetricUpsertOne) AddCoverageScore(v float64) *QualityMetricUpsertOne {
	return u.Update(func(s *QualityMetricUpsert) {
		s.AddCoverageScore(v)
	})
}

// UpdateCoverageScore sets the "coverage_score" field to the value that was provided on create.
func (u *QualityMetricUpsertOne) UpdateCoverageScore() *QualityMetricUpsertOne {
	return u.Update(func(s *QualityMetricUpsert) {
		s.UpdateCoverageScore()
	})
}

// SetComplexityScore sets the "complexity_score" field.
func (u *QualityMetricUpsertOne) SetComplexityScore(v float64) *QualityMetricUpsertOne {
	return u.Update(func(s *QualityMetricUpsert) {
		s.SetComplexityScore(v)
	})
}

// AddComplexityScore adds v to the "complexity_score" field.
func (u *QualityMetricUpsertOne) AddComplexityScore(v float64) *QualityMetricUpsertOne {
	return u.Update(func(s *QualityMetricUpsert) {
		s.AddComplexityScore(v)
	})
}

// UpdateComplexityScore sets the "complexity_score" field to the value that was provided on create.
func (u *QualityMetricUpsertOne) UpdateComplexityScore() *QualityMetricUpsertOne {
	return u.Update(func(s *QualityMetricUpsert) {
		s.UpdateComplexityScore()
	})
}

// SetAction sets the "action" field.
func (u *QualityMetricUpsertOne) SetAction(v string) *QualityMetricUpsertOne {
	return u.Update(func(s *QualityMetricUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *QualityMetricUpsertOne) UpdateAction() *QualityMetricUpsertOne {
	return u.Update(func(s *QualityMetricUpsert) {
		s.UpdateAction()
	})
}

// ClearAction clears the value of the "action" field.
func (u *QualityMetricUpsertOne) ClearAction() *QualityMetricUpsertOne {
	return u.Update(func(s *QualityMetricUpsert) {
		s.ClearAction()
	})
}

// Exec executes the query.
func (u *QualityMetricUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QualityMetricCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QualityMetricUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QualityMetricUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: QualityMetricUpsertOne.ID is not supported by MySQL driver. Use QualityMetricUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QualityMetricUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QualityMetricCreateBulk is the builder for creating many QualityMetric entities in bulk.
type QualityMetricCreateBulk struct {
	config
	err      error
	builders []*QualityMetricCreate
	conflict []sql.ConflictOption
}

// Save creates the QualityMetric entities in the database.
func (_c *QualityMetricCreateBulk) Save(ctx context.Context) ([]*QualityMetric, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QualityMetric, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QualityMetricMutation)
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
func (_c *QualityMetricCreateBulk) SaveX(ctx context.Context) []*QualityMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QualityMetricCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QualityMetricCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QualityMetric.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QualityMetricUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *QualityMetricCreateBulk) OnConflict(opts ...sql.ConflictOption) *QualityMetricUpsertBulk {
	_c.conflict = opts
	return &QualityMetricUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QualityMetric.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QualityMetricCreateBulk) OnConflictColumns(columns ...string) *QualityMetricUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QualityMetricUpsertBulk{
		create: _c,
	}
}

// QualityMetricUpsertBulk is the builder for "upsert"-ing
// a bulk of QualityMetric nodes.
type QualityMetricUpsertBulk struct {
	create *QualityMetricCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QualityMetric.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(qualitymetric.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QualityMetricUpsertBulk) UpdateNewValues() *QualityMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(qualitymetric.FieldID)
			}
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(qualitymetric.FieldProjectID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(qualitymetric.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QualityMetric.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QualityMetricUpsertBulk) Ignore() *QualityMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QualityMetricUpsertBulk) DoNothing() *QualityMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QualityMetricCreateBulk.OnConflict
// documentation for more info.
func (u *QualityMetricUpsertBulk) Update(set func(*QualityMetricUpsert)) *QualityMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QualityMetricUpsert{UpdateSet: update})
	}))
	return u
}

// SetBiasScore sets the "bias_score" field.
func (u *QualityMetricUpsertBulk) SetBiasScore(v float64) *QualityMetricUpsertBulk {
	return u.Update(func(s *QualityMetricUpsert) {
		s.SetBiasScore(v)
	})
}

// AddBiasScore adds v to the "bias_score" field.
func (u *QualityMetricUpsertBulk) AddBiasScore(v float64) *QualityMetricUpsertBulk {
	return u.Update(func(s *QualityMetricUpsert) {
		s.AddBiasScore(v)
	})
}

// UpdateBiasScore sets the "bias_score" field to the value that was provided on create.
func (u *QualityMetricUpsertBulk) UpdateBiasScore() *QualityMetricUpsertBulk {
	return u.Update(func(s *QualityMetricUpsert) {
		s.UpdateBiasScore()
	})
}

// SetCoverageScore sets the "coverage_score" field.
func (u *QualityMetricUpsertBulk) SetCoverageScore(v float64) *QualityMetricUpsertBulk {
	return u.Update(func(s *QualityMetricUpsert) {
		s.SetCoverageScore(v)
	})
}

// AddCoverageScore adds v to the "coverage_score" field.
func (u *QualityMetricUpsertBulk) AddCoverageScore(v float64) *QualityMetricUpsertBulk {
	return u.Update(func(s *QualityMetricUpsert) {
		s.AddCoverageScore(v)
	})
}

// UpdateCoverageScore sets the "coverage_score" field to the value that was provided on create.
func (u *QualityMetricUpsertBulk) UpdateCoverageScore() *QualityMetricUpsertBulk {
	return u.Update(func(s *QualityMetricUpsert) {
		s.UpdateCoverageScore()
	})
}

// SetComplexityScore sets the "complexity_score" field.
func (u *QualityMetricUpsertBulk) SetComplexityScore(v float64) *QualityMetricUpsertBulk {
	return u.Update(func(s *QualityMetricUpsert) {
		s.SetComplexityScore(v)
	})
}

// AddComplexityScore adds v to the "complexity_score" field.
func (u *QualityMetricUpsertBulk) AddComplexityScore(v float64) *QualityMetricUpsertBulk {
	return u.Update(func(s *QualityMetricUpsert) {
		s.AddComplexityScore(v)
	})
}

// UpdateComplexityScore sets the "complexity_score" field to the value that was provided on create.
func (u *QualityMetricUpsertBulk) UpdateComplexityScore() *QualityMetricUpsertBulk {
	return u.Update(func(s *QualityMetricUpsert) {
		s.UpdateComplexityScore()
	})
}

// SetAction sets the "action" field.
func (u *QualityMetricUpsertBulk) SetAction(v string) *QualityMetricUpsertBulk {
	return u.Update(func(s *QualityMetricUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *QualityMetricUpsertBulk) UpdateAction() *QualityMetricUpsertBulk {
	return u.Update(func(s *QualityMetricUpsert) {
		s.UpdateAction()
	})
}

// ClearAction clears the value of the "action" field.
func (u *QualityMetricUpsertBulk) ClearAction() *QualityMetricUpsertBulk {
	return u.Update(func(s *QualityMetricUpsert) {
		s.ClearAction()
	})
}

// Exec executes the query.
func (u *QualityMetricUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QualityMetricCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QualityMetricCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QualityMetricUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
