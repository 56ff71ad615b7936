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
	"github.com/specsmith/specsmith/ent/project"
)

// GeneratedProjectCreate is the builder for creating a GeneratedProject entity.
type GeneratedProjectCreate struct {
	config
	mutation *GeneratedProjectMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *GeneratedProjectCreate) SetProjectID(v string) *GeneratedProjectCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *GeneratedProjectCreate) SetVersion(v int) *GeneratedProjectCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *GeneratedProjectCreate) SetStatus(v generatedproject.Status) *GeneratedProjectCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GeneratedProjectCreate) SetNillableStatus(v *generatedproject.Status) *GeneratedProjectCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFileCount sets the "file_count" field.
func (_c *GeneratedProjectCreate) SetFileCount(v int) *GeneratedProjectCreate {
	_c.mutation.SetFileCount(v)
	return _c
}

// SetNillableFileCount sets the "file_count" field if the given value is not nil.
func (_c *GeneratedProjectCreate) SetNillableFileCount(v *int) *GeneratedProjectCreate {
	if v != nil {
		_c.SetFileCount(*v)
	}
	return _c
}

// SetTotalLines sets the "total_lines" field.
func (_c *GeneratedProjectCreate) SetTotalLines(v int) *GeneratedProjectCreate {
	_c.mutation.SetTotalLines(v)
	return _c
}

// SetNillableTotalLines sets the "total_lines" field if the given value is not nil.
func (_c *GeneratedProjectCreate) SetNillableTotalLines(v *int) *GeneratedProjectCreate {
	if v != nil {
		_c.SetTotalLines(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *GeneratedProjectCreate) SetErrorMessage(v string) *GeneratedProjectCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *GeneratedProjectCreate) SetNillableErrorMessage(v *string) *GeneratedProjectCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRequestedBy sets the "requested_by" field.
func (_c *GeneratedProjectCreate) SetRequestedBy(v string) *GeneratedProjectCreate {
	_c.mutation.SetRequestedBy(v)
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *GeneratedProjectCreate) SetPodID(v string) *GeneratedProjectCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *GeneratedProjectCreate) SetNillablePodID(v *string) *GeneratedProjectCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *GeneratedProjectCreate) SetLastHeartbeatAt(v time.Time) *GeneratedProjectCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *GeneratedProjectCreate) SetNillableLastHeartbeatAt(v *time.Time) *GeneratedProjectCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GeneratedProjectCreate) SetCreatedAt(v time.Time) *GeneratedProjectCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GeneratedProjectCreate) SetNillableCreatedAt(v *time.Time) *GeneratedProjectCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *GeneratedProjectCreate) SetStartedAt(v time.Time) *GeneratedProjectCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *GeneratedProjectCreate) SetNillableStartedAt(v *time.Time) *GeneratedProjectCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *GeneratedProjectCreate) SetCompletedAt(v time.Time) *GeneratedProjectCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *GeneratedProjectCreate) SetNillableCompletedAt(v *time.Time) *GeneratedProjectCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GeneratedProjectCreate) SetID(v string) *GeneratedProjectCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *GeneratedProjectCreate) SetProject(v *Project) *GeneratedProjectCreate {
	return _c.SetProjectID(v.ID)
}

// AddFileIDs adds the "files" edge to the GeneratedFile entity by IDs.
func (_c *GeneratedProjectCreate) AddFileIDs(ids ...string) *GeneratedProjectCreate {
	_c.mutation.AddFileIDs(ids...)
	return _c
}

// AddFiles adds the "files" edges to the GeneratedFile entity.
func (_c *GeneratedProjectCreate) AddFiles(v ...*GeneratedFile) *GeneratedProjectCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFileIDs(ids...)
}

// Mutation returns the GeneratedProjectMutation object of the builder.
func (_c *GeneratedProjectCreate) Mutation() *GeneratedProjectMutation {
	return _c.mutation
}

// Save creates the GeneratedProject in the database.
func (_c *GeneratedProjectCreate) Save(ctx context.Context) (*GeneratedProject, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GeneratedProjectCreate) SaveX(ctx context.Context) *GeneratedProject {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneratedProjectCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneratedProjectCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GeneratedProjectCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := generatedproject.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.FileCount(); !ok {
		v := generatedproject.DefaultFileCount
		_c.mutation.SetFileCount(v)
	}
	if _, ok := _c.mutation.TotalLines(); !ok {
		v := generatedproject.DefaultTotalLines
		_c.mutation.SetTotalLines(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := generatedproject.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GeneratedProjectCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "GeneratedProject.project_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "GeneratedProject.version"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "GeneratedProject.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := generatedproject.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GeneratedProject.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileCount(); !ok {
		return &ValidationError{Name: "file_count", err: errors.New(`ent: missing required field "GeneratedProject.file_count"`)}
	}
	if _, ok := _c.mutation.TotalLines(); !ok {
		return &ValidationError{Name: "total_lines", err: errors.New(`ent: missing required field "GeneratedProject.total_lines"`)}
	}
	if _, ok := _c.mutation.RequestedBy(); !ok {
		return &ValidationError{Name: "requested_by", err: errors.New(`ent: missing required field "GeneratedProject.requested_by"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GeneratedProject.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "GeneratedProject.project"`)}
	}
	return nil
}

func (_c *GeneratedProjectCreate) sqlSave(ctx context.Context) (*GeneratedProject, error) {
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
			return nil, fmt.Errorf("unexpected GeneratedProject.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GeneratedProjectCreate) createSpec() (*GeneratedProject, *sqlgraph.CreateSpec) {
	var (
		_node = &GeneratedProject{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generatedproject.Table, sqlgraph.NewFieldSpec(generatedproject.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(generatedproject.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(generatedproject.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FileCount(); ok {
		_spec.SetField(generatedproject.FieldFileCount, field.TypeInt, value)
		_node.FileCount = value
	}
	if value, ok := _c.mutation.TotalLines(); ok {
		_spec.SetField(generatedproject.FieldTotalLines, field.TypeInt, value)
		_node.TotalLines = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(generatedproject.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.RequestedBy(); ok {
		_spec.SetField(generatedproject.FieldRequestedBy, field.TypeString, value)
		_node.RequestedBy = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(generatedproject.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(generatedproject.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(generatedproject.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(generatedproject.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(generatedproject.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedproject.ProjectTable,
			Columns: []string{generatedproject.ProjectColumn},
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
	if nodes := _c.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   generatedproject.FilesTable,
			Columns: []string{generatedproject.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedfile.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GeneratedProject.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GeneratedProjectUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *GeneratedProjectCreate) OnConflict(opts ...sql.ConflictOption) *GeneratedProjectUpsertOne {
	_c.conflict = opts
	return &GeneratedProjectUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GeneratedProject.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GeneratedProjectCreate) OnConflictColumns(columns ...string) *GeneratedProjectUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GeneratedProjectUpsertOne{
		create: _c,
	}
}

type (
	// GeneratedProjectUpsertOne is the builder for "upsert"-ing
	//  one GeneratedProject node.
	GeneratedProjectUpsertOne struct {
		create *GeneratedProjectCreate
	}

	// GeneratedProjectUpsert is the "OnConflict" setter.
	GeneratedProjectUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *GeneratedProjectUpsert) SetStatus(v generatedproject.Status) *GeneratedProjectUpsert {
	u.Set(generatedproject.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GeneratedProjectUpsert) UpdateStatus() *GeneratedProjectUpsert {
	u.SetExcluded(generatedproject.FieldStatus)
	return u
}

// SetFileCount sets the "file_count" field.
func (u *GeneratedProjectUpsert) SetFileCount(v int) *GeneratedProjectUpsert {
	u.Set(generatedproject.FieldFileCount, v)
	return u
}

// UpdateFileCount sets the "file_count" field to the value that was provided on create.
func (u *GeneratedProjectUpsert) UpdateFileCount() *GeneratedProjectUpsert {
	u.SetExcluded(generatedproject.FieldFileCount)
	return u
}

// AddFileCount adds v to the "file_count" field.
func (u *GeneratedProjectUpsert) AddFileCount(v int) *GeneratedProjectUpsert {
	u.Add(generatedproject.FieldFileCount, v)
	return u
}

// SetTotalLines sets the "total_lines" field.
func (u *GeneratedProjectUpsert) SetTotalLines(v int) *GeneratedProjectUpsert {
	u.Set(generatedproject.FieldTotalLines, v)
	return u
}

// UpdateTotalLines sets the "total_lines" field to the value that was provided on create.
func (u *GeneratedProjectUpsert) UpdateTotalLines() *GeneratedProjectUpsert {
	u.SetExcluded(generatedproject.FieldTotalLines)
	return u
}

// AddTotalLines adds v to the "total_lines" field.
func (u *GeneratedProjectUpsert) AddTotalLines(v int) *GeneratedProjectUpsert {
	u.Add(generatedproject.FieldTotalLines, v)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *GeneratedProjectUpsert) SetErrorMessage(v string) *GeneratedProjectUpsert {
	u.Set(generatedproject.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *GeneratedProjectUpsert) UpdateErrorMessage() *GeneratedProjectUpsert {
	u.SetExcluded(generatedproject.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *GeneratedProjectUpsert) ClearErrorMessage() *GeneratedProjectUpsert {
	u.SetNull(generatedproject.FieldErrorMessage)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *GeneratedProjectUpsert) SetPodID(v string) *GeneratedProjectUpsert {
	u.Set(generatedproject.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *GeneratedProjectUpsert) UpdatePodID() *GeneratedProjectUpsert {
	u.SetExcluded(generatedproject.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *GeneratedProjectUpsert) ClearPodID() *GeneratedProjectUpsert {
	u.SetNull(generatedproject.FieldPodID)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *GeneratedProjectUpsert) SetLastHeartbeatAt(v time.Time) *GeneratedProjectUpsert {
	u.Set(generatedproject.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *GeneratedProjectUpsert) UpdateLastHeartbeatAt() *GeneratedProjectUpsert {
	u.SetExcluded(generatedproject.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *GeneratedProjectUpsert) ClearLastHeartbeatAt() *GeneratedProjectUpsert {
	u.SetNull(generatedproject.FieldLastHeartbeatAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *GeneratedProjectUpsert) SetStartedAt(v time.Time) *GeneratedProjectUpsert {
	u.Set(generatedproject.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *GeneratedProjectUpsert) UpdateStartedAt() *GeneratedProjectUpsert {
	u.SetExcluded(generatedproject.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *GeneratedProjectUpsert) ClearStartedAt() *GeneratedProjectUpsert {
	u.SetNull(generatedproject.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *GeneratedProjectUpsert) SetCompletedAt(v time.Time) *GeneratedProjectUpsert {
	u.Set(generatedproject.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *GeneratedProjectUpsert) UpdateCompletedAt() *GeneratedProjectUpsert {
	u.SetExcluded(generatedproject.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *GeneratedProjectUpsert) ClearCompletedAt() *GeneratedProjectUpsert {
	u.SetNull(generatedproject.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GeneratedProject.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(generatedproject.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GeneratedProjectUpsertOne) UpdateNewValues() *GeneratedProjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(generatedproject.FieldID)
		}
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(generatedproject.FieldProjectID)
		}
		if _, exists := u.create.mutation.Version(); exists {
			s.SetIgnore(generatedproject.FieldVersion)
		}
		if _, exists := u.create.mutation.RequestedBy(); exists {
			s.SetIgnore(generatedproject.FieldRequestedBy)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(generatedproject.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GeneratedProject.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GeneratedProjectUpsertOne) Ignore() *GeneratedProjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GeneratedProjectUpsertOne) DoNothing() *GeneratedProjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GeneratedProjectCreate.OnConflict
// documentation for more info.
func (u *GeneratedProjectUpsertOne) Update(set func(*GeneratedProjectUpsert)) *GeneratedProjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GeneratedProjectUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *GeneratedProjectUpsertOne) SetStatus(v generatedproject.Status) *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GeneratedProjectUpsertOne) UpdateStatus() *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.UpdateStatus()
	})
}

// SetFileCount sets the "file_count" field.
func (u *GeneratedProjectUpsertOne) SetFileCount(v int) *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.SetFileCount(v)
	})
}

// AddFileCount adds v to the "file_count" field.
func (u *GeneratedProjectUpsertOne) AddFileCount(v int) *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.AddFileCount(v)
	})
}

// UpdateFileCount sets the "file_count" field to the value that was provided on create.
func (u *GeneratedProjectUpsertOne) UpdateFileCount() *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.UpdateFileCount()
	})
}

// SetTotalLines sets the "total_lines" field.
func (u *GeneratedProjectUpsertOne) SetTotalLines(v int) *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.SetTotalLines(v)
	})
}

// AddTotalLines adds v to the "total_lines" field.
func (u *GeneratedProjectUpsertOne) AddTotalLines(v int) *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.AddTotalLines(v)
	})
}

// UpdateTotalLines sets the "total_lines" field to the value that was provided on create.
func (u *GeneratedProjectUpsertOne) UpdateTotalLines() *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.UpdateTotalLines()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *GeneratedProjectUpsertOne) SetErrorMessage(v string) *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *GeneratedProjectUpsertOne) UpdateErrorMessage() *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *GeneratedProjectUpsertOne) ClearErrorMessage() *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.ClearErrorMessage()
	})
}

// SetPodID sets the "pod_id" field.
func (u *GeneratedProjectUpsertOne) SetPodID(v string) *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *GeneratedProjectUpsertOne) UpdatePodID() *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *GeneratedProjectUpsertOne) ClearPodID() *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *GeneratedProjectUpsertOne) SetLastHeartbeatAt(v time.Time) *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *GeneratedProjectUpsertOne) UpdateLastHeartbeatAt() *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *GeneratedProjectUpsertOne) ClearLastHeartbeatAt() *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *GeneratedProjectUpsertOne) SetStartedAt(v time.Time) *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *GeneratedProjectUpsertOne) UpdateStartedAt() *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *GeneratedProjectUpsertOne) ClearStartedAt() *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *GeneratedProjectUpsertOne) SetCompletedAt(v time.Time) *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *GeneratedProjectUpsertOne) UpdateCompletedAt() *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *GeneratedProjectUpsertOne) ClearCompletedAt() *GeneratedProjectUpsertOne {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *GeneratedProjectUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GeneratedProjectCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GeneratedProjectUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GeneratedProjectUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GeneratedProjectUpsertOne.ID is not supported by MySQL driver. Use GeneratedProjectUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GeneratedProjectUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GeneratedProjectCreateBulk is the builder for creating many GeneratedProject entities in bulk.
type GeneratedProjectCreateBulk struct {
	config
	err      error
	builders []*GeneratedProjectCreate
	conflict []sql.ConflictOption
}

// Save creates the GeneratedProject entities in the database.
func (_c *GeneratedProjectCreateBulk) Save(ctx context.Context) ([]*GeneratedProject, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GeneratedProject, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GeneratedProjectMutation)
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
func (_c *GeneratedProjectCreateBulk) SaveX(ctx context.Context) []*GeneratedProject {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneratedProjectCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneratedProjectCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GeneratedProject.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GeneratedProjectUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *GeneratedProjectCreateBulk) OnConflict(opts ...sql.ConflictOption) *GeneratedProjectUpsertBulk {
	_c.conflict = opts
	return &GeneratedProjectUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GeneratedProject.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GeneratedProjectCreateBulk) OnConflictColumns(columns ...string) *GeneratedProjectUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GeneratedProjectUpsertBulk{
		create: _c,
	}
}

// GeneratedProjectUpsertBulk is the builder for "upsert"-ing
// a bulk of GeneratedProject nodes.
type GeneratedProjectUpsertBulk struct {
	create *GeneratedProjectCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GeneratedProject.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(generatedproject.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GeneratedProjectUpsertBulk) UpdateNewValues() *GeneratedProjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(generatedproject.FieldID)
			}
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(generatedproject.FieldProjectID)
			}
			if _, exists := b.mutation.Version(); exists {
				s.SetIgnore(generatedproject.FieldVersion)
			}
			if _, exists := b.mutation.RequestedBy(); exists {
				s.SetIgnore(generatedproject.FieldRequestedBy)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(generatedproject.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GeneratedProject.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GeneratedProjectUpsertBulk) Ignore() *GeneratedProjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GeneratedProjectUpsertBulk) DoNothing() *GeneratedProjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GeneratedProjectCreateBulk.OnConflict
// documentation for more info.
func (u *GeneratedProjectUpsertBulk) Update(set func(*GeneratedProjectUpsert)) *GeneratedProjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GeneratedProjectUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *GeneratedProjectUpsertBulk) SetStatus(v generatedproject.Status) *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GeneratedProjectUpsertBulk) UpdateStatus() *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.UpdateStatus()
	})
}

// SetFileCount sets the "file_count" field.
func (u *GeneratedProjectUpsertBulk) SetFileCount(v int) *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.SetFileCount(v)
	})
}

// AddFileCount adds v to the "file_count" field.
func (u *GeneratedProjectUpsertBulk) AddFileCount(v int) *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.AddFileCount(v)
	})
}

// UpdateFileCount sets the "file_count" field to the value that was provided on create.
func (u *GeneratedProjectUpsertBulk) UpdateFileCount() *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.UpdateFileCount()
	})
}

// SetTotalLines sets the "total_lines" field.
func (u *GeneratedProjectUpsertBulk) SetTotalLines(v int) *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.SetTotalLines(v)
	})
}

// AddTotalLines adds v to the "total_lines" field.
func (u *GeneratedProjectUpsertBulk) AddTotalLines(v int) *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.AddTotalLines(v)
	})
}

// UpdateTotalLines sets the "total_lines" field to the value that was provided on create.
func (u *GeneratedProjectUpsertBulk) UpdateTotalLines() *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.UpdateTotalLines()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *GeneratedProjectUpsertBulk) SetErrorMessage(v string) *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *GeneratedProjectUpsertBulk) UpdateErrorMessage() *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *GeneratedProjectUpsertBulk) ClearErrorMessage() *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.ClearErrorMessage()
	})
}

// SetPodID sets the "pod_id" field.
func (u *GeneratedProjectUpsertBulk) SetPodID(v string) *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *GeneratedProjectUpsertBulk) UpdatePodID() *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *GeneratedProjectUpsertBulk) ClearPodID() *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *GeneratedProjectUpsertBulk) SetLastHeartbeatAt(v time.Time) *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *GeneratedProjectUpsertBulk) UpdateLastHeartbeatAt() *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *GeneratedProjectUpsertBulk) ClearLastHeartbeatAt() *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *GeneratedProjectUpsertBulk) SetStartedAt(v time.Time) *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *GeneratedProjectUpsertBulk) UpdateStartedAt() *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *GeneratedProjectUpsertBulk) ClearStartedAt() *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *GeneratedProjectUpsertBulk) SetCompletedAt(v time.Time) *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *GeneratedProjectUpsertBulk) UpdateCompletedAt() *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *GeneratedProjectUpsertBulk) ClearCompletedAt() *GeneratedProjectUpsertBulk {
	return u.Update(func(s *GeneratedProjectUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *GeneratedProjectUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GeneratedProjectCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GeneratedProjectCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GeneratedProjectUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
