package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question holds the schema definition for the Question entity.
// A Socratic question generated for a session, with generation metadata.
type Question struct {
	ent.Schema
}

// Fields of the Question.
func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("question_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Text("text"),
		field.String("category").
			Comment("Maturity category the question targets"),
		field.String("role").
			Optional().
			Comment("Professional role the question is framed from (e.g. 'security engineer')"),
		field.Float("bias_score").
			Default(1).
			Comment("Post-validation quality score at storage time"),
		field.String("model").
			Optional().
			Comment("LLM model that produced the final draft"),
		field.Int("regenerations").
			Default(0).
			Comment("How many regeneration passes the draft went through"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Question.
func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("questions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Question.
func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
		index.Fields("category"),
	}
}
