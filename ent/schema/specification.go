package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Specification holds the schema definition for the Specification entity.
// Logical identity is (project, category, key); at most one row per triple
// has is_current = true, enforced by a partial unique index. History is
// append-only: superseding a spec flips the predecessor's is_current and
// links the successor via supersedes_id.
type Specification struct {
	ent.Schema
}

// Fields of the Specification.
func (Specification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("spec_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("category").
			Immutable(),
		field.String("key").
			StorageKey("spec_key").
			Immutable(),
		field.Text("value"),
		field.Float("confidence").
			Default(1).
			Comment("Extraction confidence in [0,1]"),
		field.Enum("source").
			Values("user_input", "extracted", "imported", "inferred").
			Default("extracted").
			Immutable(),
		field.Bool("is_current").
			Default(true),
		field.String("supersedes_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Predecessor spec this one replaced"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Specification.
func (Specification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("specifications").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Specification.
func (Specification) Indexes() []ent.Index {
	return []ent.Index{
		// At most one current spec per (project, category, key).
		index.Fields("project_id", "category", "key").
			Annotations(entsql.IndexWhere("is_current")).
			Unique(),
		index.Fields("project_id", "is_current"),
		index.Fields("project_id", "category"),
	}
}
