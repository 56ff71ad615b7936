package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConversationTurn holds the schema definition for the ConversationTurn entity.
// Turns within a session are totally ordered by sequence number; appends are
// serialized by the session service so the ordering is strictly monotonic.
type ConversationTurn struct {
	ent.Schema
}

// Fields of the ConversationTurn.
func (ConversationTurn) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("turn_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("sequence").
			Immutable().
			Comment("Insert order within the session"),
		field.Enum("role").
			Values("user", "assistant", "system").
			Immutable(),
		field.Text("content").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ConversationTurn.
func (ConversationTurn) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("turns").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ConversationTurn.
func (ConversationTurn) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "sequence").
			Unique(),
		index.Fields("session_id", "created_at"),
	}
}
