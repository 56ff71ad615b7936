package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GeneratedProject holds the schema definition for the GeneratedProject
// entity: one artifact of a code-generation run. Runs are claimed and
// processed asynchronously by the queue worker pool.
type GeneratedProject struct {
	ent.Schema
}

// Fields of the GeneratedProject.
func (GeneratedProject) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("generated_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.Int("version").
			Immutable().
			Comment("Monotonic per project"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed").
			Default("pending"),
		field.Int("file_count").
			Default(0),
		field.Int("total_lines").
			Default(0),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("requested_by").
			Immutable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the GeneratedProject.
func (GeneratedProject) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("generated_projects").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("files", GeneratedFile.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the GeneratedProject.
func (GeneratedProject) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "version").
			Unique(),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
	}
}
