package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GeneratedFile holds the schema definition for the GeneratedFile entity.
type GeneratedFile struct {
	ent.Schema
}

// Fields of the GeneratedFile.
func (GeneratedFile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("file_id").
			Unique().
			Immutable(),
		field.String("generated_project_id").
			Immutable(),
		field.String("path").
			Immutable(),
		field.Text("content").
			Immutable(),
		field.Int("line_count").
			Default(0).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the GeneratedFile.
func (GeneratedFile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("generated_project", GeneratedProject.Type).
			Ref("files").
			Field("generated_project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the GeneratedFile.
func (GeneratedFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("generated_project_id", "path").
			Unique(),
	}
}
