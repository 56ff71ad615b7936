package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conflict holds the schema definition for the Conflict entity.
// A conflict records that a proposed specification value disagrees with a
// current (incumbent) specification. It stays pending until resolved;
// terminal resolutions are absorbing.
type Conflict struct {
	ent.Schema
}

// Fields of the Conflict.
func (Conflict) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conflict_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("incumbent_spec_id").
			Immutable().
			Comment("The current specification the proposed value disagrees with"),
		field.String("category").
			Immutable(),
		field.String("key").
			StorageKey("spec_key").
			Immutable(),
		field.Text("new_value").
			Immutable(),
		field.Float("new_confidence").
			Default(1).
			Immutable(),
		field.Enum("conflict_type").
			Values("technology", "requirements", "timeline", "resources").
			Immutable(),
		field.Text("detail").
			Optional().
			Comment("Rule or LLM explanation of why the values contradict"),
		field.Enum("resolution").
			Values("pending", "keep_old", "replace", "merge").
			Default("pending"),
		field.String("created_by").
			Immutable().
			Comment("Identity that submitted the conflicting candidate"),
		field.String("resolver").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Conflict.
func (Conflict) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("conflicts").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Conflict.
func (Conflict) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "resolution"),
		index.Fields("project_id", "category", "key"),
		index.Fields("incumbent_spec_id"),
	}
}
