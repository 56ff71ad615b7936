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
	"github.com/specsmith/specsmith/ent/generatedfile"
	"github.com/specsmith/specsmith/ent/generatedproject"
	"github.com/specsmith/specsmith/ent/predicate"
)

// GeneratedProjectUpdate is the builder for updating GeneratedProject entities.
type GeneratedProjectUpdate struct {
	config
	hooks    []Hook
	mutation *GeneratedProjectMutation
}

// Where appends a list predicates to the GeneratedProjectUpdate builder.
func (_u *GeneratedProjectUpdate) Where(ps ...predicate.GeneratedProject) *GeneratedProjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *GeneratedProjectUpdate) SetStatus(v generatedproject.Status) *GeneratedProjectUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GeneratedProjectUpdate) SetNillableStatus(v *generatedproject.Status) *GeneratedProjectUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFileCount sets the "file_count" field.
func (_u *GeneratedProjectUpdate) SetFileCount(v int) *GeneratedProjectUpdate {
	_u.mutation.ResetFileCount()
	_u.mutation.SetFileCount(v)
	return _u
}

// SetNillableFileCount sets the "file_count" field if the given value is not nil.
func (_u *GeneratedProjectUpdate) SetNillableFileCount(v *int) *GeneratedProjectUpdate {
	if v != nil {
		_u.SetFileCount(*v)
	}
	return _u
}

// AddFileCount adds value to the "file_count" field.
func (_u *GeneratedProjectUpdate) AddFileCount(v int) *GeneratedProjectUpdate {
	_u.mutation.AddFileCount(v)
	return _u
}

// SetTotalLines sets the "total_lines" field.
func (_u *GeneratedProjectUpdate) SetTotalLines(v int) *GeneratedProjectUpdate {
	_u.mutation.ResetTotalLines()
	_u.mutation.SetTotalLines(v)
	return _u
}

// SetNillableTotalLines sets the "total_lines" field if the given value is not nil.
func (_u *GeneratedProjectUpdate) SetNillableTotalLines(v *int) *GeneratedProjectUpdate {
	if v != nil {
		_u.SetTotalLines(*v)
	}
	return _u
}

// AddTotalLines adds value to the "total_lines" field.
func (_u *GeneratedProjectUpdate) AddTotalLines(v int) *GeneratedProjectUpdate {
	_u.mutation.AddTotalLines(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GeneratedProjectUpdate) SetErrorMessage(v string) *GeneratedProjectUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GeneratedProjectUpdate) SetNillableErrorMessage(v *string) *GeneratedProjectUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *GeneratedProjectUpdate) ClearErrorMessage() *GeneratedProjectUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *GeneratedProjectUpdate) SetPodID(v string) *GeneratedProjectUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *GeneratedProjectUpdate) SetNillablePodID(v *string) *GeneratedProjectUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *GeneratedProjectUpdate) ClearPodID() *GeneratedProjectUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *GeneratedProjectUpdate) SetLastHeartbeatAt(v time.Time) *GeneratedProjectUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *GeneratedProjectUpdate) SetNillableLastHeartbeatAt(v *time.Time) *GeneratedProjectUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *GeneratedProjectUpdate) ClearLastHeartbeatAt() *GeneratedProjectUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *GeneratedProjectUpdate) SetStartedAt(v time.Time) *GeneratedProjectUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *GeneratedProjectUpdate) SetNillableStartedAt(v *time.Time) *GeneratedProjectUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *GeneratedProjectUpdate) ClearStartedAt() *GeneratedProjectUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *GeneratedProjectUpdate) SetCompletedAt(v time.Time) *GeneratedProjectUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *GeneratedProjectUpdate) SetNillableCompletedAt(v *time.Time) *GeneratedProjectUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *GeneratedProjectUpdate) ClearCompletedAt() *GeneratedProjectUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddFileIDs adds the "files" edge to the GeneratedFile entity by IDs.
func (_u *GeneratedProjectUpdate) AddFileIDs(ids ...string) *GeneratedProjectUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the GeneratedFile entity.
func (_u *GeneratedProjectUpdate) AddFiles(v ...*GeneratedFile) *GeneratedProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// Mutation returns the GeneratedProjectMutation object of the builder.
func (_u *GeneratedProjectUpdate) Mutation() *GeneratedProjectMutation {
	return _u.mutation
}

// ClearFiles clears all "files" edges to the GeneratedFile entity.
func (_u *GeneratedProjectUpdate) ClearFiles() *GeneratedProjectUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to GeneratedFile entities by IDs.
func (_u *GeneratedProjectUpdate) RemoveFileIDs(ids ...string) *GeneratedProjectUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to GeneratedFile entities.
func (_u *GeneratedProjectUpdate) RemoveFiles(v ...*GeneratedFile) *GeneratedProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GeneratedProjectUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneratedProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GeneratedProjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneratedProjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeneratedProjectUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := generatedproject.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GeneratedProject.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GeneratedProject.project"`)
	}
	return nil
}

func (_u *GeneratedProjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generatedproject.Table, generatedproject.Columns, sqlgraph.NewFieldSpec(generatedproject.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(generatedproject.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FileCount(); ok {
		_spec.SetField(generatedproject.FieldFileCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileCount(); ok {
		_spec.AddField(generatedproject.FieldFileCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalLines(); ok {
		_spec.SetField(generatedproject.FieldTotalLines, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalLines(); ok {
		_spec.AddField(generatedproject.FieldTotalLines, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(generatedproject.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(generatedproject.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(generatedproject.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(generatedproject.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(generatedproject.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(generatedproject.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(generatedproject.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(generatedproject.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(generatedproject.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(generatedproject.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generatedproject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GeneratedProjectUpdateOne is the builder for updating a single GeneratedProject entity.
type GeneratedProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GeneratedProjectMutation
}

// SetStatus sets the "status" field.
func (_u *GeneratedProjectUpdateOne) SetStatus(v generatedproject.Status) *GeneratedProjectUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GeneratedProjectUpdateOne) SetNillableStatus(v *generatedproject.Status) *GeneratedProjectUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFileCount sets the "file_count" field.
func (_u *GeneratedProjectUpdateOne) SetFileCount(v int) *GeneratedProjectUpdateOne {
	_u.mutation.ResetFileCount()
	_u.mutation.SetFileCount(v)
	return _u
}

// SetNillableFileCount sets the "file_count" field if the given value is not nil.
func (_u *GeneratedProjectUpdateOne) SetNillableFileCount(v *int) *GeneratedProjectUpdateOne {
	if v != nil {
		_u.SetFileCount(*v)
	}
	return _u
}

// AddFileCount adds value to the "file_count" field.
func (_u *GeneratedProjectUpdateOne) AddFileCount(v int) *GeneratedProjectUpdateOne {
	_u.mutation.AddFileCount(v)
	return _u
}

// SetTotalLines sets the "total_lines" field.
func (_u *GeneratedProjectUpdateOne) SetTotalLines(v int) *GeneratedProjectUpdateOne {
	_u.mutation.ResetTotalLines()
	_u.mutation.SetTotalLines(v)
	return _u
}

// SetNillableTotalLines sets the "total_lines" field if the given value is not nil.
func (_u *GeneratedProjectUpdateOne) SetNillableTotalLines(v *int) *GeneratedProjectUpdateOne {
	if v != nil {
		_u.SetTotalLines(*v)
	}
	return _u
}

// AddTotalLines adds value to the "total_lines" field.
func (_u *GeneratedProjectUpdateOne) AddTotalLines(v int) *GeneratedProjectUpdateOne {
	_u.mutation.AddTotalLines(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GeneratedProjectUpdateOne) SetErrorMessage(v string) *GeneratedProjectUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GeneratedProjectUpdateOne) SetNillableErrorMessage(v *string) *GeneratedProjectUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *GeneratedProjectUpdateOne) ClearErrorMessage() *GeneratedProjectUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *GeneratedProjectUpdateOne) SetPodID(v string) *GeneratedProjectUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *GeneratedProjectUpdateOne) SetNillablePodID(v *string) *GeneratedProjectUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *GeneratedProjectUpdateOne) ClearPodID() *GeneratedProjectUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *GeneratedProjectUpdateOne) SetLastHeartbeatAt(v time.Time) *GeneratedProjectUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *GeneratedProjectUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *GeneratedProjectUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *GeneratedProjectUpdateOne) ClearLastHeartbeatAt() *GeneratedProjectUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *GeneratedProjectUpdateOne) SetStartedAt(v time.Time) *GeneratedProjectUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *GeneratedProjectUpdateOne) SetNillableStartedAt(v *time.Time) *GeneratedProjectUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *GeneratedProjectUpdateOne) ClearStartedAt() *GeneratedProjectUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *GeneratedProjectUpdateOne) SetCompletedAt(v time.Time) *GeneratedProjectUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *GeneratedProjectUpdateOne) SetNillableCompletedAt(v *time.Time) *GeneratedProjectUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *GeneratedProjectUpdateOne) ClearCompletedAt() *GeneratedProjectUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddFileIDs adds the "files" edge to the GeneratedFile entity by IDs.
func (_u *GeneratedProjectUpdateOne) AddFileIDs(ids ...string) *GeneratedProjectUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the GeneratedFile entity.
func (_u *GeneratedProjectUpdateOne) AddFiles(v ...*GeneratedFile) *GeneratedProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// Mutation returns the GeneratedProjectMutation object of the builder.
func (_u *GeneratedProjectUpdateOne) Mutation() *GeneratedProjectMutation {
	return _u.mutation
}

// ClearFiles clears all "files" edges to the GeneratedFile entity.
func (_u *GeneratedProjectUpdateOne) ClearFiles() *GeneratedProjectUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to GeneratedFile entities by IDs.
func (_u *GeneratedProjectUpdateOne) RemoveFileIDs(ids ...string) *GeneratedProjectUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to GeneratedFile entities.
func (_u *GeneratedProjectUpdateOne) RemoveFiles(v ...*GeneratedFile) *GeneratedProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// Where appends a list predicates to the GeneratedProjectUpdate builder.
func (_u *GeneratedProjectUpdateOne) Where(ps ...predicate.GeneratedProject) *GeneratedProjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GeneratedProjectUpdateOne) Select(field string, fields ...string) *GeneratedProjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GeneratedProject entity.
func (_u *GeneratedProjectUpdateOne) Save(ctx context.Context) (*GeneratedProject, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneratedProjectUpdateOne) SaveX(ctx context.Context) *GeneratedProject {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GeneratedProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneratedProjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeneratedProjectUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := generatedproject.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GeneratedProject.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GeneratedProject.project"`)
	}
	return nil
}

func (_u *GeneratedProjectUpdateOne) sqlSave(ctx context.Context) (_node *GeneratedProject, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generatedproject.Table, generatedproject.Columns, sqlgraph.NewFieldSpec(generatedproject.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GeneratedProject.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generatedproject.FieldID)
		for _, f := range fields {
			if !generatedproject.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generatedproject.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(generatedproject.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FileCount(); ok {
		_spec.SetField(generatedproject.FieldFileCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileCount(); ok {
		_spec.AddField(generatedproject.FieldFileCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalLines(); ok {
		_spec.SetField(generatedproject.FieldTotalLines, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalLines(); ok {
		_spec.AddField(generatedproject.FieldTotalLines, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(generatedproject.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(generatedproject.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(generatedproject.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(generatedproject.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(generatedproject.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(generatedproject.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(generatedproject.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(generatedproject.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(generatedproject.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(generatedproject.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &GeneratedProject{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generatedproject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
