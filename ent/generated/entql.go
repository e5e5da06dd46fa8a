// Code generated by ent, DO NOT EDIT.

package generated

import (
	"github.com/buildcrew/sitemaster/ent/generated/notification"
	"github.com/buildcrew/sitemaster/ent/generated/predicate"
	"github.com/buildcrew/sitemaster/ent/generated/schedule"
	"github.com/buildcrew/sitemaster/ent/generated/task"
	"github.com/buildcrew/sitemaster/ent/generated/user"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/entql"
	"entgo.io/ent/schema/field"
)

// schemaGraph holds a representation of ent/schema at runtime.
var schemaGraph = func() *sqlgraph.Schema {
	graph := &sqlgraph.Schema{Nodes: make([]*sqlgraph.Node, 4)}
	graph.Nodes[0] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   notification.Table,
			Columns: notification.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: notification.FieldID,
			},
		},
		Type: "Notification",
		Fields: map[string]*sqlgraph.FieldSpec{
			notification.FieldUserID:    {Type: field.TypeUUID, Column: notification.FieldUserID},
			notification.FieldCategory:  {Type: field.TypeEnum, Column: notification.FieldCategory},
			notification.FieldTitle:     {Type: field.TypeString, Column: notification.FieldTitle},
			notification.FieldMessage:   {Type: field.TypeString, Column: notification.FieldMessage},
			notification.FieldLink:      {Type: field.TypeString, Column: notification.FieldLink},
			notification.FieldMetadata:  {Type: field.TypeJSON, Column: notification.FieldMetadata},
			notification.FieldRead:      {Type: field.TypeBool, Column: notification.FieldRead},
			notification.FieldCreatedAt: {Type: field.TypeTime, Column: notification.FieldCreatedAt},
		},
	}
	graph.Nodes[1] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   schedule.Table,
			Columns: schedule.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: schedule.FieldID,
			},
		},
		Type: "Schedule",
		Fields: map[string]*sqlgraph.FieldSpec{
			schedule.FieldDescription: {Type: field.TypeString, Column: schedule.FieldDescription},
			schedule.FieldLotID:       {Type: field.TypeUUID, Column: schedule.FieldLotID},
			schedule.FieldProjectID:   {Type: field.TypeString, Column: schedule.FieldProjectID},
			schedule.FieldStartDate:   {Type: field.TypeTime, Column: schedule.FieldStartDate},
			schedule.FieldEndDate:     {Type: field.TypeTime, Column: schedule.FieldEndDate},
			schedule.FieldCreatedAt:   {Type: field.TypeTime, Column: schedule.FieldCreatedAt},
			schedule.FieldUpdatedAt:   {Type: field.TypeTime, Column: schedule.FieldUpdatedAt},
		},
	}
	graph.Nodes[2] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   task.Table,
			Columns: task.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: task.FieldID,
			},
		},
		Type: "Task",
		Fields: map[string]*sqlgraph.FieldSpec{
			task.FieldScheduleID:     {Type: field.TypeUUID, Column: task.FieldScheduleID},
			task.FieldTitle:          {Type: field.TypeString, Column: task.FieldTitle},
			task.FieldDescription:    {Type: field.TypeString, Column: task.FieldDescription},
			task.FieldStatus:         {Type: field.TypeEnum, Column: task.FieldStatus},
			task.FieldPriority:       {Type: field.TypeEnum, Column: task.FieldPriority},
			task.FieldPeriodStart:    {Type: field.TypeTime, Column: task.FieldPeriodStart},
			task.FieldPeriodEnd:      {Type: field.TypeTime, Column: task.FieldPeriodEnd},
			task.FieldEstimatedHours: {Type: field.TypeFloat64, Column: task.FieldEstimatedHours},
			task.FieldHoursSpent:     {Type: field.TypeFloat64, Column: task.FieldHoursSpent},
			task.FieldProgress:       {Type: field.TypeInt, Column: task.FieldProgress},
			task.FieldAssigneeID:     {Type: field.TypeUUID, Column: task.FieldAssigneeID},
			task.FieldCreatedAt:      {Type: field.TypeTime, Column: task.FieldCreatedAt},
			task.FieldUpdatedAt:      {Type: field.TypeTime, Column: task.FieldUpdatedAt},
		},
	}
	graph.Nodes[3] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   user.Table,
			Columns: user.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: user.FieldID,
			},
		},
		Type: "User",
		Fields: map[string]*sqlgraph.FieldSpec{
			user.FieldEmail:      {Type: field.TypeString, Column: user.FieldEmail},
			user.FieldFirstName:  {Type: field.TypeString, Column: user.FieldFirstName},
			user.FieldLastName:   {Type: field.TypeString, Column: user.FieldLastName},
			user.FieldRole:       {Type: field.TypeEnum, Column: user.FieldRole},
			user.FieldIsActive:   {Type: field.TypeBool, Column: user.FieldIsActive},
			user.FieldProjectIds: {Type: field.TypeJSON, Column: user.FieldProjectIds},
			user.FieldCreatedAt:  {Type: field.TypeTime, Column: user.FieldCreatedAt},
			user.FieldUpdatedAt:  {Type: field.TypeTime, Column: user.FieldUpdatedAt},
		},
	}
	graph.MustAddE(
		"user",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   notification.UserTable,
			Columns: []string{notification.UserColumn},
			Bidi:    false,
		},
		"Notification",
		"User",
	)
	graph.MustAddE(
		"tasks",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   schedule.TasksTable,
			Columns: []string{schedule.TasksColumn},
			Bidi:    false,
		},
		"Schedule",
		"Task",
	)
	graph.MustAddE(
		"schedule",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ScheduleTable,
			Columns: []string{task.ScheduleColumn},
			Bidi:    false,
		},
		"Task",
		"Schedule",
	)
	graph.MustAddE(
		"assignee",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.AssigneeTable,
			Columns: []string{task.AssigneeColumn},
			Bidi:    false,
		},
		"Task",
		"User",
	)
	graph.MustAddE(
		"assigned_tasks",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AssignedTasksTable,
			Columns: []string{user.AssignedTasksColumn},
			Bidi:    false,
		},
		"User",
		"Task",
	)
	graph.MustAddE(
		"notifications",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.NotificationsTable,
			Columns: []string{user.NotificationsColumn},
			Bidi:    false,
		},
		"User",
		"Notification",
	)
	return graph
}()

// predicateAdder wraps the addPredicate method.
// All update, update-one and query builders implement this interface.
type predicateAdder interface {
	addPredicate(func(s *sql.Selector))
}

// addPredicate implements the predicateAdder interface.
func (nq *NotificationQuery) addPredicate(pred func(s *sql.Selector)) {
	nq.predicates = append(nq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the NotificationQuery builder.
func (nq *NotificationQuery) Filter() *NotificationFilter {
	return &NotificationFilter{config: nq.config, predicateAdder: nq}
}

// addPredicate implements the predicateAdder interface.
func (m *NotificationMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the NotificationMutation builder.
func (m *NotificationMutation) Filter() *NotificationFilter {
	return &NotificationFilter{config: m.config, predicateAdder: m}
}

// NotificationFilter provides a generic filtering capability at runtime for NotificationQuery.
type NotificationFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *NotificationFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[0].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *NotificationFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(notification.FieldID))
}

// WhereUserID applies the entql [16]byte predicate on the user_id field.
func (f *NotificationFilter) WhereUserID(p entql.ValueP) {
	f.Where(p.Field(notification.FieldUserID))
}

// WhereCategory applies the entql string predicate on the category field.
func (f *NotificationFilter) WhereCategory(p entql.StringP) {
	f.Where(p.Field(notification.FieldCategory))
}

// WhereTitle applies the entql string predicate on the title field.
func (f *NotificationFilter) WhereTitle(p entql.StringP) {
	f.Where(p.Field(notification.FieldTitle))
}

// WhereMessage applies the entql string predicate on the message field.
func (f *NotificationFilter) WhereMessage(p entql.StringP) {
	f.Where(p.Field(notification.FieldMessage))
}

// WhereLink applies the entql string predicate on the link field.
func (f *NotificationFilter) WhereLink(p entql.StringP) {
	f.Where(p.Field(notification.FieldLink))
}

// WhereMetadata applies the entql json.RawMessage predicate on the metadata field.
func (f *NotificationFilter) WhereMetadata(p entql.BytesP) {
	f.Where(p.Field(notification.FieldMetadata))
}

// WhereRead applies the entql bool predicate on the read field.
func (f *NotificationFilter) WhereRead(p entql.BoolP) {
	f.Where(p.Field(notification.FieldRead))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *NotificationFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(notification.FieldCreatedAt))
}

// WhereHasUser applies a predicate to check if query has an edge user.
func (f *NotificationFilter) WhereHasUser() {
	f.Where(entql.HasEdge("user"))
}

// WhereHasUserWith applies a predicate to check if query has an edge user with a given conditions (other predicates).
func (f *NotificationFilter) WhereHasUserWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("user", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (sq *ScheduleQuery) addPredicate(pred func(s *sql.Selector)) {
	sq.predicates = append(sq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the ScheduleQuery builder.
func (sq *ScheduleQuery) Filter() *ScheduleFilter {
	return &ScheduleFilter{config: sq.config, predicateAdder: sq}
}

// addPredicate implements the predicateAdder interface.
func (m *ScheduleMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the ScheduleMutation builder.
func (m *ScheduleMutation) Filter() *ScheduleFilter {
	return &ScheduleFilter{config: m.config, predicateAdder: m}
}

// ScheduleFilter provides a generic filtering capability at runtime for ScheduleQuery.
type ScheduleFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *ScheduleFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[1].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *ScheduleFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(schedule.FieldID))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *ScheduleFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(schedule.FieldDescription))
}

// WhereLotID applies the entql [16]byte predicate on the lot_id field.
func (f *ScheduleFilter) WhereLotID(p entql.ValueP) {
	f.Where(p.Field(schedule.FieldLotID))
}

// WhereProjectID applies the entql string predicate on the project_id field.
func (f *ScheduleFilter) WhereProjectID(p entql.StringP) {
	f.Where(p.Field(schedule.FieldProjectID))
}

// WhereStartDate applies the entql time.Time predicate on the start_date field.
func (f *ScheduleFilter) WhereStartDate(p entql.TimeP) {
	f.Where(p.Field(schedule.FieldStartDate))
}

// WhereEndDate applies the entql time.Time predicate on the end_date field.
func (f *ScheduleFilter) WhereEndDate(p entql.TimeP) {
	f.Where(p.Field(schedule.FieldEndDate))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *ScheduleFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(schedule.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *ScheduleFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(schedule.FieldUpdatedAt))
}

// WhereHasTasks applies a predicate to check if query has an edge tasks.
func (f *ScheduleFilter) WhereHasTasks() {
	f.Where(entql.HasEdge("tasks"))
}

// WhereHasTasksWith applies a predicate to check if query has an edge tasks with a given conditions (other predicates).
func (f *ScheduleFilter) WhereHasTasksWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("tasks", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (tq *TaskQuery) addPredicate(pred func(s *sql.Selector)) {
	tq.predicates = append(tq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the TaskQuery builder.
func (tq *TaskQuery) Filter() *TaskFilter {
	return &TaskFilter{config: tq.config, predicateAdder: tq}
}

// addPredicate implements the predicateAdder interface.
func (m *TaskMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the TaskMutation builder.
func (m *TaskMutation) Filter() *TaskFilter {
	return &TaskFilter{config: m.config, predicateAdder: m}
}

// TaskFilter provides a generic filtering capability at runtime for TaskQuery.
type TaskFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *TaskFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[2].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *TaskFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(task.FieldID))
}

// WhereScheduleID applies the entql [16]byte predicate on the schedule_id field.
func (f *TaskFilter) WhereScheduleID(p entql.ValueP) {
	f.Where(p.Field(task.FieldScheduleID))
}

// WhereTitle applies the entql string predicate on the title field.
func (f *TaskFilter) WhereTitle(p entql.StringP) {
	f.Where(p.Field(task.FieldTitle))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *TaskFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(task.FieldDescription))
}

// WhereStatus applies the entql string predicate on the status field.
func (f *TaskFilter) WhereStatus(p entql.StringP) {
	f.Where(p.Field(task.FieldStatus))
}

// WherePriority applies the entql string predicate on the priority field.
func (f *TaskFilter) WherePriority(p entql.StringP) {
	f.Where(p.Field(task.FieldPriority))
}

// WherePeriodStart applies the entql time.Time predicate on the period_start field.
func (f *TaskFilter) WherePeriodStart(p entql.TimeP) {
	f.Where(p.Field(task.FieldPeriodStart))
}

// WherePeriodEnd applies the entql time.Time predicate on the period_end field.
func (f *TaskFilter) WherePeriodEnd(p entql.TimeP) {
	f.Where(p.Field(task.FieldPeriodEnd))
}

// WhereEstimatedHours applies the entql float64 predicate on the estimated_hours field.
func (f *TaskFilter) WhereEstimatedHours(p entql.Float64P) {
	f.Where(p.Field(task.FieldEstimatedHours))
}

// WhereHoursSpent applies the entql float64 predicate on the hours_spent field.
func (f *TaskFilter) WhereHoursSpent(p entql.Float64P) {
	f.Where(p.Field(task.FieldHoursSpent))
}

// WhereProgress applies the entql int predicate on the progress field.
func (f *TaskFilter) WhereProgress(p entql.IntP) {
	f.Where(p.Field(task.FieldProgress))
}

// WhereAssigneeID applies the entql [16]byte predicate on the assignee_id field.
func (f *TaskFilter) WhereAssigneeID(p entql.ValueP) {
	f.Where(p.Field(task.FieldAssigneeID))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *TaskFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *TaskFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldUpdatedAt))
}

// WhereHasSchedule applies a predicate to check if query has an edge schedule.
func (f *TaskFilter) WhereHasSchedule() {
	f.Where(entql.HasEdge("schedule"))
}

// WhereHasScheduleWith applies a predicate to check if query has an edge schedule with a given conditions (other predicates).
func (f *TaskFilter) WhereHasScheduleWith(preds ...predicate.Schedule) {
	f.Where(entql.HasEdgeWith("schedule", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasAssignee applies a predicate to check if query has an edge assignee.
func (f *TaskFilter) WhereHasAssignee() {
	f.Where(entql.HasEdge("assignee"))
}

// WhereHasAssigneeWith applies a predicate to check if query has an edge assignee with a given conditions (other predicates).
func (f *TaskFilter) WhereHasAssigneeWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("assignee", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (uq *UserQuery) addPredicate(pred func(s *sql.Selector)) {
	uq.predicates = append(uq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the UserQuery builder.
func (uq *UserQuery) Filter() *UserFilter {
	return &UserFilter{config: uq.config, predicateAdder: uq}
}

// addPredicate implements the predicateAdder interface.
func (m *UserMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the UserMutation builder.
func (m *UserMutation) Filter() *UserFilter {
	return &UserFilter{config: m.config, predicateAdder: m}
}

// UserFilter provides a generic filtering capability at runtime for UserQuery.
type UserFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *UserFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[3].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *UserFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(user.FieldID))
}

// WhereEmail applies the entql string predicate on the email field.
func (f *UserFilter) WhereEmail(p entql.StringP) {
	f.Where(p.Field(user.FieldEmail))
}

// WhereFirstName applies the entql string predicate on the first_name field.
func (f *UserFilter) WhereFirstName(p entql.StringP) {
	f.Where(p.Field(user.FieldFirstName))
}

// WhereLastName applies the entql string predicate on the last_name field.
func (f *UserFilter) WhereLastName(p entql.StringP) {
	f.Where(p.Field(user.FieldLastName))
}

// WhereRole applies the entql string predicate on the role field.
func (f *UserFilter) WhereRole(p entql.StringP) {
	f.Where(p.Field(user.FieldRole))
}

// WhereIsActive applies the entql bool predicate on the is_active field.
func (f *UserFilter) WhereIsActive(p entql.BoolP) {
	f.Where(p.Field(user.FieldIsActive))
}

// WhereProjectIds applies the entql json.RawMessage predicate on the project_ids field.
func (f *UserFilter) WhereProjectIds(p entql.BytesP) {
	f.Where(p.Field(user.FieldProjectIds))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *UserFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(user.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *UserFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(user.FieldUpdatedAt))
}

// WhereHasAssignedTasks applies a predicate to check if query has an edge assigned_tasks.
func (f *UserFilter) WhereHasAssignedTasks() {
	f.Where(entql.HasEdge("assigned_tasks"))
}

// WhereHasAssignedTasksWith applies a predicate to check if query has an edge assigned_tasks with a given conditions (other predicates).
func (f *UserFilter) WhereHasAssignedTasksWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("assigned_tasks", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasNotifications applies a predicate to check if query has an edge notifications.
func (f *UserFilter) WhereHasNotifications() {
	f.Where(entql.HasEdge("notifications"))
}

// WhereHasNotificationsWith applies a predicate to check if query has an edge notifications with a given conditions (other predicates).
func (f *UserFilter) WhereHasNotificationsWith(preds ...predicate.Notification) {
	f.Where(entql.HasEdgeWith("notifications", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}
