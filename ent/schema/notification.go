// ent/schema/notification.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Notification holds the schema definition for lifecycle notifications.
// The engine writes these fire-and-forget; delivery (email, in-app) is
// the messaging system's concern.
type Notification struct {
	ent.Schema
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("user_id", uuid.UUID{}).
			Comment("User the notification is addressed to"),

		field.Enum("category").
			Values(
				"schedule_created",
				"schedule_updated",
				"schedule_deleted",
				"task_created",
				"task_updated",
				"task_status_changed",
				"task_deleted",
			).
			Comment("Lifecycle event that produced the notification"),

		field.String("title").
			NotEmpty().
			Comment("Short notification headline"),

		field.String("message").
			Optional().
			Comment("Human-readable notification body"),

		field.String("link").
			Optional().
			Comment("Relative link to the affected resource"),

		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Default(map[string]interface{}{}).
			Comment("Additional event metadata"),

		field.Bool("read").
			Default(false).
			Comment("Whether the user has seen the notification"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the notification was created"),
	}
}

// Edges of the Notification.
func (Notification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("notifications").
			Unique().
			Required().
			Field("user_id"),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		// Index for per-user inbox queries
		index.Fields("user_id", "read"),

		// Index on created_at for sorting
		index.Fields("created_at"),
	}
}
