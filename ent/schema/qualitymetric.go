package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QualityMetric holds the schema definition for the QualityMetric entity.
// One row per quality engine evaluation: scalar scores with a timestamp.
type QualityMetric struct {
	ent.Schema
}

// Fields of the QualityMetric.
func (QualityMetric) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("metric_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.Float("bias_score").
			Default(0),
		field.Float("coverage_score").
			Default(0),
		field.Float("complexity_score").
			Default(0),
		field.String("action").
			Optional().
			Comment("Gated action that produced this evaluation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the QualityMetric.
func (QualityMetric) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("quality_metrics").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the QualityMetric.
func (QualityMetric) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "created_at"),
	}
}
