// ent/schema/user.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity. Identity and
// credentials live with the external auth provider; this table mirrors
// the directory data the schedule engine needs for role checks and
// project visibility.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("email").
			NotEmpty().
			Unique().
			Comment("User email address"),

		field.String("first_name").
			Optional().
			Default("").
			MaxLen(100).
			Comment("User's first name"),

		field.String("last_name").
			Optional().
			Default("").
			MaxLen(100).
			Comment("User's last name"),

		field.Enum("role").
			Values("owner", "contractor", "customer", "salesperson").
			Comment("Portal role used for schedule/task access decisions"),

		field.Bool("is_active").
			Default(true).
			Comment("Whether the user account is active"),

		field.JSON("project_ids", []string{}).
			Optional().
			Comment("Projects visible to customers and salespeople"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the user was created"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the user was last updated"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		// A contractor can be assigned to many tasks
		edge.To("assigned_tasks", Task.Type).
			Comment("Tasks assigned to this user"),

		// Lifecycle notifications delivered to this user
		edge.To("notifications", Notification.Type).
			Comment("Notifications addressed to this user"),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		// Unique index on email
		index.Fields("email").
			Unique(),

		// Index for role-based queries
		index.Fields("role", "is_active"),
	}
}
