package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProjectShare holds the schema definition for the ProjectShare entity.
// Cross-project access is expressed by explicit share records, never by
// ownership transfer.
type ProjectShare struct {
	ent.Schema
}

// Fields of the ProjectShare.
func (ProjectShare) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("share_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("user_id").
			Immutable().
			Comment("Opaque reference into the identity store"),
		field.Enum("role").
			Values("viewer", "editor"),
		field.String("granted_by").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ProjectShare.
func (ProjectShare) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("shares").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ProjectShare.
func (ProjectShare) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "user_id").
			Unique(),
		index.Fields("user_id"),
	}
}
