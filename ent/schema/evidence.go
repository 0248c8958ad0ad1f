package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Evidence holds the schema definition for the Evidence entity: one
// observation at one (source URL, content hash). A page that yields several
// signals produces one Evidence row linked to each of them; rows are never
// mutated after creation.
type Evidence struct {
	ent.Schema
}

// Fields of the Evidence.
func (Evidence) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("evidence_id").
			Unique().
			Immutable(),
		field.String("source_url").
			Immutable(),
		field.String("content_hash").
			Immutable(),
		field.Time("retrieved_at").
			Immutable(),
		field.Text("snippet").
			Immutable(),
		field.Float("relevance").
			Immutable(),
		field.Float("confidence").
			Immutable(),
		field.String("channel_type").
			Immutable().
			Comment("web, feed, social, search"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Evidence.
func (Evidence) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("signals", Signal.Type).
			Ref("evidence"),
	}
}

// Indexes of the Evidence.
func (Evidence) Indexes() []ent.Index {
	return []ent.Index{
		// One Evidence row per distinct (url, hash)
		index.Fields("source_url", "content_hash").
			Unique(),
	}
}
