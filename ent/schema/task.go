// ent/schema/task.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Task holds the schema definition for the Task entity.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("schedule_id", uuid.UUID{}).
			Comment("Schedule this task belongs to"),

		field.String("title").
			NotEmpty().
			MaxLen(200).
			Comment("Task title"),

		field.Text("description").
			Optional().
			Comment("Free-text description of the work item"),

		field.Enum("status").
			Values("to_do", "in_progress", "completed", "on_hold").
			Default("to_do").
			Comment("Current status of the task"),

		field.Enum("priority").
			Values("low", "medium", "high", "very_high").
			Default("medium").
			Comment("Priority level of the task"),

		field.Time("period_start").
			Comment("First day of the task period, nested inside the schedule window"),

		field.Time("period_end").
			Comment("Last day of the task period, nested inside the schedule window"),

		field.Float("estimated_hours").
			Optional().
			Nillable().
			Min(0).
			Comment("Estimated effort in hours"),

		field.Float("hours_spent").
			Optional().
			Nillable().
			Min(0).
			Comment("Hours logged against the task"),

		field.Int("progress").
			Default(0).
			Min(0).
			Max(100).
			Comment("Completion percentage"),

		field.UUID("assignee_id", uuid.UUID{}).
			Optional().
			Comment("Contractor assigned to the task; zero UUID means unassigned"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the task was created"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the task was last updated"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		// A task belongs to exactly one schedule.
		edge.From("schedule", Schedule.Type).
			Ref("tasks").
			Unique().
			Required().
			Field("schedule_id"),

		// Optional assignee relation, bound to the assignee_id column.
		edge.From("assignee", User.Type).
			Ref("assigned_tasks").
			Unique().
			Field("assignee_id"),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// Index on status for filtering
		index.Fields("status"),

		// Index on priority for filtering
		index.Fields("priority"),

		// Index on schedule for per-schedule listings
		index.Fields("schedule_id"),

		// Index on assignee for contractor views
		index.Fields("assignee_id"),

		// Composite index for week-window queries
		index.Fields("period_start", "period_end"),
	}
}
