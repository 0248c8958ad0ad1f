package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Actor holds the schema definition for the Actor entity: a named
// organization, person, or agency behind or mentioned by signals. Identity
// is the normalized name key, optionally disambiguated by canonical URL.
type Actor struct {
	ent.Schema
}

// Fields of the Actor.
func (Actor) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("actor_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("name_key").
			Comment("Normalized name, identity key"),
		field.String("canonical_url").
			Optional(),
		field.String("kind").
			Default("organization").
			Comment("organization, person, agency"),
		field.String("region"),
		field.Int("signal_count").
			Default(0),
		field.Float("lat").
			Optional().
			Nillable(),
		field.Float("lng").
			Optional().
			Nillable(),
		field.Time("first_seen").
			Default(time.Now).
			Immutable(),
		field.Time("last_seen").
			Optional().
			Nillable(),
	}
}

// Edges of the Actor.
func (Actor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("authored", Signal.Type),
		edge.From("mentioned_in", Signal.Type).
			Ref("mentions"),
	}
}

// Indexes of the Actor.
func (Actor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("region", "name_key").
			Unique(),
	}
}
