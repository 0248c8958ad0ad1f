package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Signal holds the schema definition for the Signal entity: one extracted
// community signal (gathering, aid, need, notice, tension). Signals are
// created and mutated only by the projector applying world events; expiry is
// logical (expired_at set, row kept).
type Signal struct {
	ent.Schema
}

// Fields of the Signal.
func (Signal) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("signal_id").
			Unique().
			Immutable().
			Comment("Stable UUID, never reused"),
		field.Enum("node_type").
			Values("gathering", "aid", "need", "notice", "tension").
			Immutable(),
		field.String("region").
			Immutable().
			Comment("Region slug the signal belongs to"),
		field.String("title"),
		field.String("title_key").
			Comment("lower(title), exact-title dedup lookup key"),
		field.Text("summary"),
		field.Enum("sensitivity").
			Values("general", "elevated", "sensitive").
			Default("general"),
		field.Float("confidence"),
		field.Float("freshness_score"),
		field.Int("corroboration_count").
			Default(0),
		field.Float("lat").
			Optional().
			Nillable(),
		field.Float("lng").
			Optional().
			Nillable(),
		field.Enum("geo_precision").
			Values("exact", "neighborhood", "city").
			Optional().
			Nillable(),
		field.String("location_name").
			Optional(),
		field.String("source_url").
			Comment("URL of the first source that produced the signal"),
		field.Time("extracted_at").
			Immutable(),
		field.Time("last_confirmed_active"),
		field.JSON("audience_roles", []string{}).
			Optional(),
		field.Int("source_diversity").
			Default(1).
			Comment("Count of distinct evidence source URLs"),
		field.Float("external_ratio").
			Default(0),
		field.Float("cause_heat").
			Default(0),
		field.JSON("mentioned_actors", []string{}).
			Optional(),
		field.JSON("variant", map[string]interface{}{}).
			Comment("Type-specific fields (starts_at, action_url, severity, ...)"),
		field.JSON("embedding", []float32{}).
			Optional().
			Comment("Dedup embedding vector; dimensionality fixed per run"),
		field.Enum("severity").
			Values("info", "warning", "critical").
			Optional().
			Nillable().
			Comment("Notices only"),
		field.Time("expired_at").
			Optional().
			Nillable().
			Comment("Logical deletion; expired signals stay queryable"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Signal.
func (Signal) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("evidence", Evidence.Type).
			Comment("Observations backing this signal"),
		edge.To("mentions", Actor.Type),
		edge.From("authors", Actor.Type).
			Ref("authored"),
	}
}

// Indexes of the Signal.
func (Signal) Indexes() []ent.Index {
	return []ent.Index{
		// Exact title + type dedup lookups
		index.Fields("region", "title_key", "node_type"),
		// Candidate scans for vector dedup (bbox + type, live only)
		index.Fields("region", "node_type"),
		// Signals-by-URL lookups
		index.Fields("source_url"),
		// Reaper scans
		index.Fields("region", "expired_at"),
	}
}
