package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Source holds the schema definition for the Source entity: a fetchable
// target with a stable identity, a strategy, and scheduling state. Sources
// are never hard-deleted; dead ones are deactivated.
type Source struct {
	ent.Schema
}

// Fields of the Source.
func (Source) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("source_id").
			Unique().
			Immutable(),
		field.String("canonical_key").
			Immutable(),
		field.String("canonical_value").
			Comment("URL or query string"),
		field.Enum("strategy").
			Values("web", "feed", "social", "web_query", "api_adapter").
			Immutable(),
		field.String("platform").
			Optional().
			Comment("Social platform for strategy=social"),
		field.String("region").
			Immutable(),
		field.Float("weight").
			Default(0.5),
		field.Int("cadence_hours").
			Default(24),
		field.Int("consecutive_empty_runs").
			Default(0),
		field.Int("scrape_count").
			Default(0),
		field.Int("signals_produced").
			Default(0),
		field.Int("signals_corroborated").
			Default(0),
		field.Int("tensions_produced").
			Default(0),
		field.Time("last_scraped").
			Optional().
			Nillable(),
		field.Time("last_produced_signal").
			Optional().
			Nillable(),
		field.Float("quality_penalty").
			Default(0),
		field.Enum("discovery_method").
			Values("curated", "seed", "link_expansion", "query_result", "llm_suggested").
			Default("seed"),
		field.Bool("active").
			Default(true),
		field.Float("lat").
			Optional().
			Nillable(),
		field.Float("lng").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Source.
func (Source) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("region", "canonical_key").
			Unique(),
		// Scheduler scans
		index.Fields("region", "active"),
	}
}
