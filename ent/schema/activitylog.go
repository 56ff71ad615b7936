package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityLog holds the schema definition for the ActivityLog entity.
// Append-only audit trail per project.
type ActivityLog struct {
	ent.Schema
}

// Fields of the ActivityLog.
func (ActivityLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("activity_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("actor_id").
			Immutable().
			Comment("Opaque reference into the identity store"),
		field.String("action_type").
			Immutable(),
		field.String("entity_type").
			Immutable(),
		field.String("entity_id").
			Immutable(),
		field.Text("description").
			Immutable(),
		field.JSON("detail", map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Structured side-data for the action"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ActivityLog.
func (ActivityLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("activity_entries").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ActivityLog.
func (ActivityLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "created_at").
			Annotations(entsql.DescColumns("created_at")),
		index.Fields("action_type"),
	}
}
