package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Response holds the schema definition for the Response entity: a
// RESPONDS_TO edge between an Aid/Gathering signal and a Tension, carrying
// the mapping strength and the synthesizer's explanation.
type Response struct {
	ent.Schema
}

// Fields of the Response.
func (Response) Fields() []ent.Field {
	return []ent.Field{
		field.String("response_id").
			Immutable().
			Comment("The responding Aid/Gathering signal"),
		field.String("tension_id").
			Immutable(),
		field.Float("strength"),
		field.Text("explanation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Response.
func (Response) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("response_id", "tension_id").
			Unique(),
		index.Fields("tension_id"),
	}
}
