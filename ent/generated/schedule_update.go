// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/buildcrew/sitemaster/ent/generated/predicate"
	"github.com/buildcrew/sitemaster/ent/generated/schedule"
	"github.com/buildcrew/sitemaster/ent/generated/task"
	"github.com/google/uuid"
)

// ScheduleUpdate is the builder for updating Schedule entities.
type ScheduleUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduleMutation
}

// Where appends a list predicates to the ScheduleUpdate builder.
func (su *ScheduleUpdate) Where(ps ...predicate.Schedule) *ScheduleUpdate {
	su.mutation.Where(ps...)
	return su
}

// SetDescription sets the "description" field.
func (su *ScheduleUpdate) SetDescription(s string) *ScheduleUpdate {
	su.mutation.SetDescription(s)
	return su
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (su *ScheduleUpdate) SetNillableDescription(s *string) *ScheduleUpdate {
	if s != nil {
		su.SetDescription(*s)
	}
	return su
}

// SetLotID sets the "lot_id" field.
func (su *ScheduleUpdate) SetLotID(u uuid.UUID) *ScheduleUpdate {
	su.mutation.SetLotID(u)
	return su
}

// SetNillableLotID sets the "lot_id" field if the given value is not nil.
func (su *ScheduleUpdate) SetNillableLotID(u *uuid.UUID) *ScheduleUpdate {
	if u != nil {
		su.SetLotID(*u)
	}
	return su
}

// SetProjectID sets the "project_id" field.
func (su *ScheduleUpdate) SetProjectID(s string) *ScheduleUpdate {
	su.mutation.SetProjectID(s)
	return su
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (su *ScheduleUpdate) SetNillableProjectID(s *string) *ScheduleUpdate {
	if s != nil {
		su.SetProjectID(*s)
	}
	return su
}

// SetStartDate sets the "start_date" field.
func (su *ScheduleUpdate) SetStartDate(t time.Time) *ScheduleUpdate {
	su.mutation.SetStartDate(t)
	return su
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (su *ScheduleUpdate) SetNillableStartDate(t *time.Time) *ScheduleUpdate {
	if t != nil {
		su.SetStartDate(*t)
	}
	return su
}

// SetEndDate sets the "end_date" field.
func (su *ScheduleUpdate) SetEndDate(t time.Time) *ScheduleUpdate {
	su.mutation.SetEndDate(t)
	return su
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (su *ScheduleUpdate) SetNillableEndDate(t *time.Time) *ScheduleUpdate {
	if t != nil {
		su.SetEndDate(*t)
	}
	return su
}

// SetUpdatedAt sets the "updated_at" field.
func (su *ScheduleUpdate) SetUpdatedAt(t time.Time) *ScheduleUpdate {
	su.mutation.SetUpdatedAt(t)
	return su
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (su *ScheduleUpdate) AddTaskIDs(ids ...uuid.UUID) *ScheduleUpdate {
	su.mutation.AddTaskIDs(ids...)
	return su
}

// AddTasks adds the "tasks" edges to the Task entity.
func (su *ScheduleUpdate) AddTasks(t ...*Task) *ScheduleUpdate {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return su.AddTaskIDs(ids...)
}

// Mutation returns the ScheduleMutation object of the builder.
func (su *ScheduleUpdate) Mutation() *ScheduleMutation {
	return su.mutation
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (su *ScheduleUpdate) ClearTasks() *ScheduleUpdate {
	su.mutation.ClearTasks()
	return su
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (su *ScheduleUpdate) RemoveTaskIDs(ids ...uuid.UUID) *ScheduleUpdate {
	su.mutation.RemoveTaskIDs(ids...)
	return su
}

// RemoveTasks removes "tasks" edges to Task entities.
func (su *ScheduleUpdate) RemoveTasks(t ...*Task) *ScheduleUpdate {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return su.RemoveTaskIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (su *ScheduleUpdate) Save(ctx context.Context) (int, error) {
	su.defaults()
	return withHooks(ctx, su.sqlSave, su.mutation, su.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (su *ScheduleUpdate) SaveX(ctx context.Context) int {
	affected, err := su.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (su *ScheduleUpdate) Exec(ctx context.Context) error {
	_, err := su.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (su *ScheduleUpdate) ExecX(ctx context.Context) {
	if err := su.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (su *ScheduleUpdate) defaults() {
	if _, ok := su.mutation.UpdatedAt(); !ok {
		v := schedule.UpdateDefaultUpdatedAt()
		su.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (su *ScheduleUpdate) check() error {
	if v, ok := su.mutation.Description(); ok {
		if err := schedule.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`generated: validator failed for field "Schedule.description": %w`, err)}
		}
	}
	if v, ok := su.mutation.ProjectID(); ok {
		if err := schedule.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`generated: validator failed for field "Schedule.project_id": %w`, err)}
		}
	}
	return nil
}

func (su *ScheduleUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := su.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(schedule.Table, schedule.Columns, sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeUUID))
	if ps := su.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := su.mutation.Description(); ok {
		_spec.SetField(schedule.FieldDescription, field.TypeString, value)
	}
	if value, ok := su.mutation.LotID(); ok {
		_spec.SetField(schedule.FieldLotID, field.TypeUUID, value)
	}
	if value, ok := su.mutation.ProjectID(); ok {
		_spec.SetField(schedule.FieldProjectID, field.TypeString, value)
	}
	if value, ok := su.mutation.StartDate(); ok {
		_spec.SetField(schedule.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := su.mutation.EndDate(); ok {
		_spec.SetField(schedule.FieldEndDate, field.TypeTime, value)
	}
	if value, ok := su.mutation.UpdatedAt(); ok {
		_spec.SetField(schedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if su.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   schedule.TasksTable,
			Columns: []string{schedule.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := su.mutation.RemovedTasksIDs(); len(nodes) > 0 && !su.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   schedule.TasksTable,
			Columns: []string{schedule.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := su.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   schedule.TasksTable,
			Columns: []string{schedule.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, su.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	su.mutation.done = true
	return n, nil
}

// ScheduleUpdateOne is the builder for updating a single Schedule entity.
type ScheduleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduleMutation
}

// SetDescription sets the "description" field.
func (suo *ScheduleUpdateOne) SetDescription(s string) *ScheduleUpdateOne {
	suo.mutation.SetDescription(s)
	return suo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (suo *ScheduleUpdateOne) SetNillableDescription(s *string) *ScheduleUpdateOne {
	if s != nil {
		suo.SetDescription(*s)
	}
	return suo
}

// SetLotID sets the "lot_id" field.
func (suo *ScheduleUpdateOne) SetLotID(u uuid.UUID) *ScheduleUpdateOne {
	suo.mutation.SetLotID(u)
	return suo
}

// SetNillableLotID sets the "lot_id" field if the given value is not nil.
func (suo *ScheduleUpdateOne) SetNillableLotID(u *uuid.UUID) *ScheduleUpdateOne {
	if u != nil {
		suo.SetLotID(*u)
	}
	return suo
}

// SetProjectID sets the "project_id" field.
func (suo *ScheduleUpdateOne) SetProjectID(s string) *ScheduleUpdateOne {
	suo.mutation.SetProjectID(s)
	return suo
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (suo *ScheduleUpdateOne) SetNillableProjectID(s *string) *ScheduleUpdateOne {
	if s != nil {
		suo.SetProjectID(*s)
	}
	return suo
}

// SetStartDate sets the "start_date" field.
func (suo *ScheduleUpdateOne) SetStartDate(t time.Time) *ScheduleUpdateOne {
	suo.mutation.SetStartDate(t)
	return suo
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (suo *ScheduleUpdateOne) SetNillableStartDate(t *time.Time) *ScheduleUpdateOne {
	if t != nil {
		suo.SetStartDate(*t)
	}
	return suo
}

// SetEndDate sets the "end_date" field.
func (suo *ScheduleUpdateOne) SetEndDate(t time.Time) *ScheduleUpdateOne {
	suo.mutation.SetEndDate(t)
	return suo
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (suo *ScheduleUpdateOne) SetNillableEndDate(t *time.Time) *ScheduleUpdateOne {
	if t != nil {
		suo.SetEndDate(*t)
	}
	return suo
}

// SetUpdatedAt sets the "updated_at" field.
func (suo *ScheduleUpdateOne) SetUpdatedAt(t time.Time) *ScheduleUpdateOne {
	suo.mutation.SetUpdatedAt(t)
	return suo
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (suo *ScheduleUpdateOne) AddTaskIDs(ids ...uuid.UUID) *ScheduleUpdateOne {
	suo.mutation.AddTaskIDs(ids...)
	return suo
}

// AddTasks adds the "tasks" edges to the Task entity.
func (suo *ScheduleUpdateOne) AddTasks(t ...*Task) *ScheduleUpdateOne {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return suo.AddTaskIDs(ids...)
}

// Mutation returns the ScheduleMutation object of the builder.
func (suo *ScheduleUpdateOne) Mutation() *ScheduleMutation {
	return suo.mutation
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (suo *ScheduleUpdateOne) ClearTasks() *ScheduleUpdateOne {
	suo.mutation.ClearTasks()
	return suo
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (suo *ScheduleUpdateOne) RemoveTaskIDs(ids ...uuid.UUID) *ScheduleUpdateOne {
	suo.mutation.RemoveTaskIDs(ids...)
	return suo
}

// RemoveTasks removes "tasks" edges to Task entities.
func (suo *ScheduleUpdateOne) RemoveTasks(t ...*Task) *ScheduleUpdateOne {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return suo.RemoveTaskIDs(ids...)
}

// Where appends a list predicates to the ScheduleUpdate builder.
func (suo *ScheduleUpdateOne) Where(ps ...predicate.Schedule) *ScheduleUpdateOne {
	suo.mutation.Where(ps...)
	return suo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (suo *ScheduleUpdateOne) Select(field string, fields ...string) *ScheduleUpdateOne {
	suo.fields = append([]string{field}, fields...)
	return suo
}

// Save executes the query and returns the updated Schedule entity.
func (suo *ScheduleUpdateOne) Save(ctx context.Context) (*Schedule, error) {
	suo.defaults()
	return withHooks(ctx, suo.sqlSave, suo.mutation, suo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (suo *ScheduleUpdateOne) SaveX(ctx context.Context) *Schedule {
	node, err := suo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (suo *ScheduleUpdateOne) Exec(ctx context.Context) error {
	_, err := suo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (suo *ScheduleUpdateOne) ExecX(ctx context.Context) {
	if err := suo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (suo *ScheduleUpdateOne) defaults() {
	if _, ok := suo.mutation.UpdatedAt(); !ok {
		v := schedule.UpdateDefaultUpdatedAt()
		suo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (suo *ScheduleUpdateOne) check() error {
	if v, ok := suo.mutation.Description(); ok {
		if err := schedule.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`generated: validator failed for field "Schedule.description": %w`, err)}
		}
	}
	if v, ok := suo.mutation.ProjectID(); ok {
		if err := schedule.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`generated: validator failed for field "Schedule.project_id": %w`, err)}
		}
	}
	return nil
}

func (suo *ScheduleUpdateOne) sqlSave(ctx context.Context) (_node *Schedule, err error) {
	if err := suo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schedule.Table, schedule.Columns, sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeUUID))
	id, ok := suo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Schedule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := suo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schedule.FieldID)
		for _, f := range fields {
			if !schedule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != schedule.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := suo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := suo.mutation.Description(); ok {
		_spec.SetField(schedule.FieldDescription, field.TypeString, value)
	}
	if value, ok := suo.mutation.LotID(); ok {
		_spec.SetField(schedule.FieldLotID, field.TypeUUID, value)
	}
	if value, ok := suo.mutation.ProjectID(); ok {
		_spec.SetField(schedule.FieldProjectID, field.TypeString, value)
	}
	if value, ok := suo.mutation.StartDate(); ok {
		_spec.SetField(schedule.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := suo.mutation.EndDate(); ok {
		_spec.SetField(schedule.FieldEndDate, field.TypeTime, value)
	}
	if value, ok := suo.mutation.UpdatedAt(); ok {
		_spec.SetField(schedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if suo.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   schedule.TasksTable,
			Columns: []string{schedule.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := suo.mutation.RemovedTasksIDs(); len(nodes) > 0 && !suo.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   schedule.TasksTable,
			Columns: []string{schedule.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := suo.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   schedule.TasksTable,
			Columns: []string{schedule.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Schedule{config: suo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, suo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	suo.mutation.done = true
	return _node, nil
}
