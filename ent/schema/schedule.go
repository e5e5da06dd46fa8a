// ent/schema/schedule.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Schedule holds the schema definition for the Schedule entity.
type Schedule struct {
	ent.Schema
}

// Fields of the Schedule.
func (Schedule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("description").
			NotEmpty().
			MaxLen(500).
			Comment("What the scheduled work covers"),

		field.UUID("lot_id", uuid.UUID{}).
			Comment("Lot this schedule is tied to (lot directory is external)"),

		field.String("project_id").
			NotEmpty().
			Comment("Identifier of the owning project"),

		field.Time("start_date").
			Comment("First day of the schedule window (date only, midnight UTC)"),

		field.Time("end_date").
			Comment("Last day of the schedule window (date only, midnight UTC)"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the schedule was created"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the schedule was last updated"),
	}
}

// Edges of the Schedule.
func (Schedule) Edges() []ent.Edge {
	return []ent.Edge{
		// Tasks are owned by their schedule; the lifecycle engine removes
		// them in the same transaction as the schedule itself.
		edge.To("tasks", Task.Type),
	}
}

// Indexes of the Schedule.
func (Schedule) Indexes() []ent.Index {
	return []ent.Index{
		// Index for project listings
		index.Fields("project_id"),

		// Index for lot lookups
		index.Fields("lot_id"),

		// Composite index for week-window queries
		index.Fields("start_date", "end_date"),
	}
}
