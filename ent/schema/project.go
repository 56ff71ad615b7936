package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity.
// A project owns its sessions, specifications, conflicts, quality metrics,
// activity entries, and generated artifacts.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable().
			Comment("Opaque reference into the identity store, no cross-store FK"),
		field.String("name").
			NotEmpty(),
		field.Text("description").
			Optional(),
		field.Enum("current_phase").
			Values("discovery", "analysis", "design", "implementation").
			Default("discovery"),
		field.Float("maturity_score").
			Default(0).
			Comment("Cached value; always recomputed from current specifications"),
		field.Enum("status").
			Values("active", "archived").
			Default("active"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sessions", Session.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("specifications", Specification.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("conflicts", Conflict.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("quality_metrics", QualityMetric.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("activity_entries", ActivityLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("generated_projects", GeneratedProject.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("shares", ProjectShare.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("status"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
