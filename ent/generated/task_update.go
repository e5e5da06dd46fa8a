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
	"github.com/buildcrew/sitemaster/ent/generated/user"
	"github.com/google/uuid"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (tu *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	tu.mutation.Where(ps...)
	return tu
}

// SetScheduleID sets the "schedule_id" field.
func (tu *TaskUpdate) SetScheduleID(u uuid.UUID) *TaskUpdate {
	tu.mutation.SetScheduleID(u)
	return tu
}

// SetNillableScheduleID sets the "schedule_id" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableScheduleID(u *uuid.UUID) *TaskUpdate {
	if u != nil {
		tu.SetScheduleID(*u)
	}
	return tu
}

// SetTitle sets the "title" field.
func (tu *TaskUpdate) SetTitle(s string) *TaskUpdate {
	tu.mutation.SetTitle(s)
	return tu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableTitle(s *string) *TaskUpdate {
	if s != nil {
		tu.SetTitle(*s)
	}
	return tu
}

// SetDescription sets the "description" field.
func (tu *TaskUpdate) SetDescription(s string) *TaskUpdate {
	tu.mutation.SetDescription(s)
	return tu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableDescription(s *string) *TaskUpdate {
	if s != nil {
		tu.SetDescription(*s)
	}
	return tu
}

// ClearDescription clears the value of the "description" field.
func (tu *TaskUpdate) ClearDescription() *TaskUpdate {
	tu.mutation.ClearDescription()
	return tu
}

// SetStatus sets the "status" field.
func (tu *TaskUpdate) SetStatus(t task.Status) *TaskUpdate {
	tu.mutation.SetStatus(t)
	return tu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableStatus(t *task.Status) *TaskUpdate {
	if t != nil {
		tu.SetStatus(*t)
	}
	return tu
}

// SetPriority sets the "priority" field.
func (tu *TaskUpdate) SetPriority(t task.Priority) *TaskUpdate {
	tu.mutation.SetPriority(t)
	return tu
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (tu *TaskUpdate) SetNillablePriority(t *task.Priority) *TaskUpdate {
	if t != nil {
		tu.SetPriority(*t)
	}
	return tu
}

// SetPeriodStart sets the "period_start" field.
func (tu *TaskUpdate) SetPeriodStart(t time.Time) *TaskUpdate {
	tu.mutation.SetPeriodStart(t)
	return tu
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (tu *TaskUpdate) SetNillablePeriodStart(t *time.Time) *TaskUpdate {
	if t != nil {
		tu.SetPeriodStart(*t)
	}
	return tu
}

// SetPeriodEnd sets the "period_end" field.
func (tu *TaskUpdate) SetPeriodEnd(t time.Time) *TaskUpdate {
	tu.mutation.SetPeriodEnd(t)
	return tu
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (tu *TaskUpdate) SetNillablePeriodEnd(t *time.Time) *TaskUpdate {
	if t != nil {
		tu.SetPeriodEnd(*t)
	}
	return tu
}

// SetEstimatedHours sets the "estimated_hours" field.
func (tu *TaskUpdate) SetEstimatedHours(f float64) *TaskUpdate {
	tu.mutation.ResetEstimatedHours()
	tu.mutation.SetEstimatedHours(f)
	return tu
}

// SetNillableEstimatedHours sets the "estimated_hours" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableEstimatedHours(f *float64) *TaskUpdate {
	if f != nil {
		tu.SetEstimatedHours(*f)
	}
	return tu
}

// AddEstimatedHours adds f to the "estimated_hours" field.
func (tu *TaskUpdate) AddEstimatedHours(f float64) *TaskUpdate {
	tu.mutation.AddEstimatedHours(f)
	return tu
}

// ClearEstimatedHours clears the value of the "estimated_hours" field.
func (tu *TaskUpdate) ClearEstimatedHours() *TaskUpdate {
	tu.mutation.ClearEstimatedHours()
	return tu
}

// SetHoursSpent sets the "hours_spent" field.
func (tu *TaskUpdate) SetHoursSpent(f float64) *TaskUpdate {
	tu.mutation.ResetHoursSpent()
	tu.mutation.SetHoursSpent(f)
	return tu
}

// SetNillableHoursSpent sets the "hours_spent" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableHoursSpent(f *float64) *TaskUpdate {
	if f != nil {
		tu.SetHoursSpent(*f)
	}
	return tu
}

// AddHoursSpent adds f to the "hours_spent" field.
func (tu *TaskUpdate) AddHoursSpent(f float64) *TaskUpdate {
	tu.mutation.AddHoursSpent(f)
	return tu
}

// ClearHoursSpent clears the value of the "hours_spent" field.
func (tu *TaskUpdate) ClearHoursSpent() *TaskUpdate {
	tu.mutation.ClearHoursSpent()
	return tu
}

// SetProgress sets the "progress" field.
func (tu *TaskUpdate) SetProgress(i int) *TaskUpdate {
	tu.mutation.ResetProgress()
	tu.mutation.SetProgress(i)
	return tu
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableProgress(i *int) *TaskUpdate {
	if i != nil {
		tu.SetProgress(*i)
	}
	return tu
}

// AddProgress adds i to the "progress" field.
func (tu *TaskUpdate) AddProgress(i int) *TaskUpdate {
	tu.mutation.AddProgress(i)
	return tu
}

// SetAssigneeID sets the "assignee_id" field.
func (tu *TaskUpdate) SetAssigneeID(u uuid.UUID) *TaskUpdate {
	tu.mutation.SetAssigneeID(u)
	return tu
}

// SetNillableAssigneeID sets the "assignee_id" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableAssigneeID(u *uuid.UUID) *TaskUpdate {
	if u != nil {
		tu.SetAssigneeID(*u)
	}
	return tu
}

// ClearAssigneeID clears the value of the "assignee_id" field.
func (tu *TaskUpdate) ClearAssigneeID() *TaskUpdate {
	tu.mutation.ClearAssigneeID()
	return tu
}

// SetUpdatedAt sets the "updated_at" field.
func (tu *TaskUpdate) SetUpdatedAt(t time.Time) *TaskUpdate {
	tu.mutation.SetUpdatedAt(t)
	return tu
}

// SetSchedule sets the "schedule" edge to the Schedule entity.
func (tu *TaskUpdate) SetSchedule(s *Schedule) *TaskUpdate {
	return tu.SetScheduleID(s.ID)
}

// SetAssignee sets the "assignee" edge to the User entity.
func (tu *TaskUpdate) SetAssignee(u *User) *TaskUpdate {
	return tu.SetAssigneeID(u.ID)
}

// Mutation returns the TaskMutation object of the builder.
func (tu *TaskUpdate) Mutation() *TaskMutation {
	return tu.mutation
}

// ClearSchedule clears the "schedule" edge to the Schedule entity.
func (tu *TaskUpdate) ClearSchedule() *TaskUpdate {
	tu.mutation.ClearSchedule()
	return tu
}

// ClearAssignee clears the "assignee" edge to the User entity.
func (tu *TaskUpdate) ClearAssignee() *TaskUpdate {
	tu.mutation.ClearAssignee()
	return tu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tu *TaskUpdate) Save(ctx context.Context) (int, error) {
	tu.defaults()
	return withHooks(ctx, tu.sqlSave, tu.mutation, tu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tu *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := tu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tu *TaskUpdate) Exec(ctx context.Context) error {
	_, err := tu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tu *TaskUpdate) ExecX(ctx context.Context) {
	if err := tu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tu *TaskUpdate) defaults() {
	if _, ok := tu.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		tu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tu *TaskUpdate) check() error {
	if v, ok := tu.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`generated: validator failed for field "Task.title": %w`, err)}
		}
	}
	if v, ok := tu.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := tu.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`generated: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if v, ok := tu.mutation.EstimatedHours(); ok {
		if err := task.EstimatedHoursValidator(v); err != nil {
			return &ValidationError{Name: "estimated_hours", err: fmt.Errorf(`generated: validator failed for field "Task.estimated_hours": %w`, err)}
		}
	}
	if v, ok := tu.mutation.HoursSpent(); ok {
		if err := task.HoursSpentValidator(v); err != nil {
			return &ValidationError{Name: "hours_spent", err: fmt.Errorf(`generated: validator failed for field "Task.hours_spent": %w`, err)}
		}
	}
	if v, ok := tu.mutation.Progress(); ok {
		if err := task.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`generated: validator failed for field "Task.progress": %w`, err)}
		}
	}
	if _, ok := tu.mutation.ScheduleID(); tu.mutation.ScheduleCleared() && !ok {
		return errors.New(`generated: clearing a required unique edge "Task.schedule"`)
	}
	return nil
}

func (tu *TaskUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID))
	if ps := tu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tu.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := tu.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if tu.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := tu.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := tu.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := tu.mutation.PeriodStart(); ok {
		_spec.SetField(task.FieldPeriodStart, field.TypeTime, value)
	}
	if value, ok := tu.mutation.PeriodEnd(); ok {
		_spec.SetField(task.FieldPeriodEnd, field.TypeTime, value)
	}
	if value, ok := tu.mutation.EstimatedHours(); ok {
		_spec.SetField(task.FieldEstimatedHours, field.TypeFloat64, value)
	}
	if value, ok := tu.mutation.AddedEstimatedHours(); ok {
		_spec.AddField(task.FieldEstimatedHours, field.TypeFloat64, value)
	}
	if tu.mutation.EstimatedHoursCleared() {
		_spec.ClearField(task.FieldEstimatedHours, field.TypeFloat64)
	}
	if value, ok := tu.mutation.HoursSpent(); ok {
		_spec.SetField(task.FieldHoursSpent, field.TypeFloat64, value)
	}
	if value, ok := tu.mutation.AddedHoursSpent(); ok {
		_spec.AddField(task.FieldHoursSpent, field.TypeFloat64, value)
	}
	if tu.mutation.HoursSpentCleared() {
		_spec.ClearField(task.FieldHoursSpent, field.TypeFloat64)
	}
	if value, ok := tu.mutation.Progress(); ok {
		_spec.SetField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := tu.mutation.AddedProgress(); ok {
		_spec.AddField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := tu.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if tu.mutation.ScheduleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ScheduleTable,
			Columns: []string{task.ScheduleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.ScheduleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ScheduleTable,
			Columns: []string{task.ScheduleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tu.mutation.AssigneeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.AssigneeTable,
			Columns: []string{task.AssigneeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.AssigneeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.AssigneeTable,
			Columns: []string{task.AssigneeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tu.mutation.done = true
	return n, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetScheduleID sets the "schedule_id" field.
func (tuo *TaskUpdateOne) SetScheduleID(u uuid.UUID) *TaskUpdateOne {
	tuo.mutation.SetScheduleID(u)
	return tuo
}

// SetNillableScheduleID sets the "schedule_id" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableScheduleID(u *uuid.UUID) *TaskUpdateOne {
	if u != nil {
		tuo.SetScheduleID(*u)
	}
	return tuo
}

// SetTitle sets the "title" field.
func (tuo *TaskUpdateOne) SetTitle(s string) *TaskUpdateOne {
	tuo.mutation.SetTitle(s)
	return tuo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableTitle(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetTitle(*s)
	}
	return tuo
}

// SetDescription sets the "description" field.
func (tuo *TaskUpdateOne) SetDescription(s string) *TaskUpdateOne {
	tuo.mutation.SetDescription(s)
	return tuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableDescription(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetDescription(*s)
	}
	return tuo
}

// ClearDescription clears the value of the "description" field.
func (tuo *TaskUpdateOne) ClearDescription() *TaskUpdateOne {
	tuo.mutation.ClearDescription()
	return tuo
}

// SetStatus sets the "status" field.
func (tuo *TaskUpdateOne) SetStatus(t task.Status) *TaskUpdateOne {
	tuo.mutation.SetStatus(t)
	return tuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableStatus(t *task.Status) *TaskUpdateOne {
	if t != nil {
		tuo.SetStatus(*t)
	}
	return tuo
}

// SetPriority sets the "priority" field.
func (tuo *TaskUpdateOne) SetPriority(t task.Priority) *TaskUpdateOne {
	tuo.mutation.SetPriority(t)
	return tuo
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillablePriority(t *task.Priority) *TaskUpdateOne {
	if t != nil {
		tuo.SetPriority(*t)
	}
	return tuo
}

// SetPeriodStart sets the "period_start" field.
func (tuo *TaskUpdateOne) SetPeriodStart(t time.Time) *TaskUpdateOne {
	tuo.mutation.SetPeriodStart(t)
	return tuo
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillablePeriodStart(t *time.Time) *TaskUpdateOne {
	if t != nil {
		tuo.SetPeriodStart(*t)
	}
	return tuo
}

// SetPeriodEnd sets the "period_end" field.
func (tuo *TaskUpdateOne) SetPeriodEnd(t time.Time) *TaskUpdateOne {
	tuo.mutation.SetPeriodEnd(t)
	return tuo
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillablePeriodEnd(t *time.Time) *TaskUpdateOne {
	if t != nil {
		tuo.SetPeriodEnd(*t)
	}
	return tuo
}

// SetEstimatedHours sets the "estimated_hours" field.
func (tuo *TaskUpdateOne) SetEstimatedHours(f float64) *TaskUpdateOne {
	tuo.mutation.ResetEstimatedHours()
	tuo.mutation.SetEstimatedHours(f)
	return tuo
}

// SetNillableEstimatedHours sets the "estimated_hours" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableEstimatedHours(f *float64) *TaskUpdateOne {
	if f != nil {
		tuo.SetEstimatedHours(*f)
	}
	return tuo
}

// AddEstimatedHours adds f to the "estimated_hours" field.
func (tuo *TaskUpdateOne) AddEstimatedHours(f float64) *TaskUpdateOne {
	tuo.mutation.AddEstimatedHours(f)
	return tuo
}

// ClearEstimatedHours clears the value of the "estimated_hours" field.
func (tuo *TaskUpdateOne) ClearEstimatedHours() *TaskUpdateOne {
	tuo.mutation.ClearEstimatedHours()
	return tuo
}

// SetHoursSpent sets the "hours_spent" field.
func (tuo *TaskUpdateOne) SetHoursSpent(f float64) *TaskUpdateOne {
	tuo.mutation.ResetHoursSpent()
	tuo.mutation.SetHoursSpent(f)
	return tuo
}

// SetNillableHoursSpent sets the "hours_spent" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableHoursSpent(f *float64) *TaskUpdateOne {
	if f != nil {
		tuo.SetHoursSpent(*f)
	}
	return tuo
}

// AddHoursSpent adds f to the "hours_spent" field.
func (tuo *TaskUpdateOne) AddHoursSpent(f float64) *TaskUpdateOne {
	tuo.mutation.AddHoursSpent(f)
	return tuo
}

// ClearHoursSpent clears the value of the "hours_spent" field.
func (tuo *TaskUpdateOne) ClearHoursSpent() *TaskUpdateOne {
	tuo.mutation.ClearHoursSpent()
	return tuo
}

// SetProgress sets the "progress" field.
func (tuo *TaskUpdateOne) SetProgress(i int) *TaskUpdateOne {
	tuo.mutation.ResetProgress()
	tuo.mutation.SetProgress(i)
	return tuo
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableProgress(i *int) *TaskUpdateOne {
	if i != nil {
		tuo.SetProgress(*i)
	}
	return tuo
}

// AddProgress adds i to the "progress" field.
func (tuo *TaskUpdateOne) AddProgress(i int) *TaskUpdateOne {
	tuo.mutation.AddProgress(i)
	return tuo
}

// SetAssigneeID sets the "assignee_id" field.
func (tuo *TaskUpdateOne) SetAssigneeID(u uuid.UUID) *TaskUpdateOne {
	tuo.mutation.SetAssigneeID(u)
	return tuo
}

// SetNillableAssigneeID sets the "assignee_id" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableAssigneeID(u *uuid.UUID) *TaskUpdateOne {
	if u != nil {
		tuo.SetAssigneeID(*u)
	}
	return tuo
}

// ClearAssigneeID clears the value of the "assignee_id" field.
func (tuo *TaskUpdateOne) ClearAssigneeID() *TaskUpdateOne {
	tuo.mutation.ClearAssigneeID()
	return tuo
}

// SetUpdatedAt sets the "updated_at" field.
func (tuo *TaskUpdateOne) SetUpdatedAt(t time.Time) *TaskUpdateOne {
	tuo.mutation.SetUpdatedAt(t)
	return tuo
}

// SetSchedule sets the "schedule" edge to the Schedule entity.
func (tuo *TaskUpdateOne) SetSchedule(s *Schedule) *TaskUpdateOne {
	return tuo.SetScheduleID(s.ID)
}

// SetAssignee sets the "assignee" edge to the User entity.
func (tuo *TaskUpdateOne) SetAssignee(u *User) *TaskUpdateOne {
	return tuo.SetAssigneeID(u.ID)
}

// Mutation returns the TaskMutation object of the builder.
func (tuo *TaskUpdateOne) Mutation() *TaskMutation {
	return tuo.mutation
}

// ClearSchedule clears the "schedule" edge to the Schedule entity.
func (tuo *TaskUpdateOne) ClearSchedule() *TaskUpdateOne {
	tuo.mutation.ClearSchedule()
	return tuo
}

// ClearAssignee clears the "assignee" edge to the User entity.
func (tuo *TaskUpdateOne) ClearAssignee() *TaskUpdateOne {
	tuo.mutation.ClearAssignee()
	return tuo
}

// Where appends a list predicates to the TaskUpdate builder.
func (tuo *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	tuo.mutation.Where(ps...)
	return tuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tuo *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	tuo.fields = append([]string{field}, fields...)
	return tuo
}

// Save executes the query and returns the updated Task entity.
func (tuo *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	tuo.defaults()
	return withHooks(ctx, tuo.sqlSave, tuo.mutation, tuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tuo *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := tuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tuo *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := tuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tuo *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := tuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tuo *TaskUpdateOne) defaults() {
	if _, ok := tuo.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		tuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tuo *TaskUpdateOne) check() error {
	if v, ok := tuo.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`generated: validator failed for field "Task.title": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`generated: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.EstimatedHours(); ok {
		if err := task.EstimatedHoursValidator(v); err != nil {
			return &ValidationError{Name: "estimated_hours", err: fmt.Errorf(`generated: validator failed for field "Task.estimated_hours": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.HoursSpent(); ok {
		if err := task.HoursSpentValidator(v); err != nil {
			return &ValidationError{Name: "hours_spent", err: fmt.Errorf(`generated: validator failed for field "Task.hours_spent": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.Progress(); ok {
		if err := task.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`generated: validator failed for field "Task.progress": %w`, err)}
		}
	}
	if _, ok := tuo.mutation.ScheduleID(); tuo.mutation.ScheduleCleared() && !ok {
		return errors.New(`generated: clearing a required unique edge "Task.schedule"`)
	}
	return nil
}

func (tuo *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := tuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID))
	id, ok := tuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tuo.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if tuo.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := tuo.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := tuo.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := tuo.mutation.PeriodStart(); ok {
		_spec.SetField(task.FieldPeriodStart, field.TypeTime, value)
	}
	if value, ok := tuo.mutation.PeriodEnd(); ok {
		_spec.SetField(task.FieldPeriodEnd, field.TypeTime, value)
	}
	if value, ok := tuo.mutation.EstimatedHours(); ok {
		_spec.SetField(task.FieldEstimatedHours, field.TypeFloat64, value)
	}
	if value, ok := tuo.mutation.AddedEstimatedHours(); ok {
		_spec.AddField(task.FieldEstimatedHours, field.TypeFloat64, value)
	}
	if tuo.mutation.EstimatedHoursCleared() {
		_spec.ClearField(task.FieldEstimatedHours, field.TypeFloat64)
	}
	if value, ok := tuo.mutation.HoursSpent(); ok {
		_spec.SetField(task.FieldHoursSpent, field.TypeFloat64, value)
	}
	if value, ok := tuo.mutation.AddedHoursSpent(); ok {
		_spec.AddField(task.FieldHoursSpent, field.TypeFloat64, value)
	}
	if tuo.mutation.HoursSpentCleared() {
		_spec.ClearField(task.FieldHoursSpent, field.TypeFloat64)
	}
	if value, ok := tuo.mutation.Progress(); ok {
		_spec.SetField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := tuo.mutation.AddedProgress(); ok {
		_spec.AddField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := tuo.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if tuo.mutation.ScheduleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ScheduleTable,
			Columns: []string{task.ScheduleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.ScheduleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ScheduleTable,
			Columns: []string{task.ScheduleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tuo.mutation.AssigneeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.AssigneeTable,
			Columns: []string{task.AssigneeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.AssigneeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.AssigneeTable,
			Columns: []string{task.AssigneeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: tuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tuo.mutation.done = true
	return _node, nil
}
