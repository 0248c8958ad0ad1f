package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StoredEvent holds the schema definition for the StoredEvent entity: one
// row of the append-only event log. The autoincrement id is the global seq;
// rows are never updated or deleted, and replaying them in id order from a
// clean graph rebuilds it exactly.
type StoredEvent struct {
	ent.Schema
}

// Fields of the StoredEvent.
func (StoredEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("seq").
			Immutable(),
		field.Time("ts").
			Default(time.Now).
			Immutable(),
		field.String("event_type").
			Immutable(),
		field.Int64("parent_seq").
			Optional().
			Nillable().
			Immutable(),
		field.Int64("caused_by_seq").
			Optional().
			Nillable().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("actor").
			Optional().
			Immutable().
			Comment("Emitting handler, for debugging"),
		field.Bytes("payload").
			Immutable().
			Comment("JSON-serialized typed payload"),
		field.Int("schema_v").
			Default(1).
			Immutable(),
	}
}

// Indexes of the StoredEvent.
func (StoredEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("event_type"),
	}
}
