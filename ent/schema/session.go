package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity.
// A session is one guided conversation inside a project. It owns its
// conversation turns and generated questions. An ended session is immutable.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("user_id").
			Immutable().
			Comment("Opaque reference into the identity store"),
		field.Enum("mode").
			Values("socratic", "direct_chat").
			Default("socratic"),
		field.Enum("status").
			Values("active", "paused", "ended").
			Default("active"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("ended_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("sessions").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("turns", ConversationTurn.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("questions", Question.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "status"),
		index.Fields("user_id"),
		index.Fields("status", "ended_at"),
	}
}
