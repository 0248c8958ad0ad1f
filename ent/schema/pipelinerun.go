package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineRun holds the schema definition for the PipelineRun entity: the
// durable per-run record with its structured timeline. The run log is
// written even for failed runs; it feeds debugging and fitness scoring.
type PipelineRun struct {
	ent.Schema
}

// Fields of the PipelineRun.
func (PipelineRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("region").
			Immutable(),
		field.Enum("status").
			Values("running", "completed", "failed", "cancelled").
			Default("running"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.JSON("stats", map[string]interface{}{}).
			Optional(),
		field.JSON("timeline", []map[string]interface{}{}).
			Optional().
			Comment("Timestamped records: queries, scrapes, verdicts, budget checkpoints"),
		field.Int64("budget_spent_cents").
			Default(0),
		field.Text("error").
			Optional(),
	}
}

// Indexes of the PipelineRun.
func (PipelineRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("region", "started_at"),
	}
}
