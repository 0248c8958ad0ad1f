// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActorsColumns holds the columns for the "actors" table.
	ActorsColumns = []*schema.Column{
		{Name: "actor_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "name_key", Type: field.TypeString},
		{Name: "canonical_url", Type: field.TypeString, Nullable: true},
		{Name: "kind", Type: field.TypeString, Default: "organization"},
		{Name: "region", Type: field.TypeString},
		{Name: "signal_count", Type: field.TypeInt, Default: 0},
		{Name: "lat", Type: field.TypeFloat64, Nullable: true},
		{Name: "lng", Type: field.TypeFloat64, Nullable: true},
		{Name: "first_seen", Type: field.TypeTime},
		{Name: "last_seen", Type: field.TypeTime, Nullable: true},
	}
	// ActorsTable holds the schema information for the "actors" table.
	ActorsTable = &schema.Table{
		Name:       "actors",
		Columns:    ActorsColumns,
		PrimaryKey: []*schema.Column{ActorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "actor_region_name_key",
				Unique:  true,
				Columns: []*schema.Column{ActorsColumns[5], ActorsColumns[2]},
			},
		},
	}
	// EvidencesColumns holds the columns for the "evidences" table.
	EvidencesColumns = []*schema.Column{
		{Name: "evidence_id", Type: field.TypeString, Unique: true},
		{Name: "source_url", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "retrieved_at", Type: field.TypeTime},
		{Name: "snippet", Type: field.TypeString, Size: 2147483647},
		{Name: "relevance", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "channel_type", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EvidencesTable holds the schema information for the "evidences" table.
	EvidencesTable = &schema.Table{
		Name:       "evidences",
		Columns:    EvidencesColumns,
		PrimaryKey: []*schema.Column{EvidencesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evidence_source_url_content_hash",
				Unique:  true,
				Columns: []*schema.Column{EvidencesColumns[1], EvidencesColumns[2]},
			},
		},
	}
	// PipelineRunsColumns holds the columns for the "pipeline_runs" table.
	PipelineRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "region", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed", "cancelled"}, Default: "running"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "stats", Type: field.TypeJSON, Nullable: true},
		{Name: "timeline", Type: field.TypeJSON, Nullable: true},
		{Name: "budget_spent_cents", Type: field.TypeInt64, Default: 0},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// PipelineRunsTable holds the schema information for the "pipeline_runs" table.
	PipelineRunsTable = &schema.Table{
		Name:       "pipeline_runs",
		Columns:    PipelineRunsColumns,
		PrimaryKey: []*schema.Column{PipelineRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinerun_region_started_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[1], PipelineRunsColumns[3]},
			},
		},
	}
	// ResponsesColumns holds the columns for the "responses" table.
	ResponsesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "response_id", Type: field.TypeString},
		{Name: "tension_id", Type: field.TypeString},
		{Name: "strength", Type: field.TypeFloat64},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ResponsesTable holds the schema information for the "responses" table.
	ResponsesTable = &schema.Table{
		Name:       "responses",
		Columns:    ResponsesColumns,
		PrimaryKey: []*schema.Column{ResponsesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "response_response_id_tension_id",
				Unique:  true,
				Columns: []*schema.Column{ResponsesColumns[1], ResponsesColumns[2]},
			},
			{
				Name:    "response_tension_id",
				Unique:  false,
				Columns: []*schema.Column{ResponsesColumns[2]},
			},
		},
	}
	// SignalsColumns holds the columns for the "signals" table.
	SignalsColumns = []*schema.Column{
		{Name: "signal_id", Type: field.TypeString, Unique: true},
		{Name: "node_type", Type: field.TypeEnum, Enums: []string{"gathering", "aid", "need", "notice", "tension"}},
		{Name: "region", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "title_key", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "sensitivity", Type: field.TypeEnum, Enums: []string{"general", "elevated", "sensitive"}, Default: "general"},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "freshness_score", Type: field.TypeFloat64},
		{Name: "corroboration_count", Type: field.TypeInt, Default: 0},
		{Name: "lat", Type: field.TypeFloat64, Nullable: true},
		{Name: "lng", Type: field.TypeFloat64, Nullable: true},
		{Name: "geo_precision", Type: field.TypeEnum, Nullable: true, Enums: []string{"exact", "neighborhood", "city"}},
		{Name: "location_name", Type: field.TypeString, Nullable: true},
		{Name: "source_url", Type: field.TypeString},
		{Name: "extracted_at", Type: field.TypeTime},
		{Name: "last_confirmed_active", Type: field.TypeTime},
		{Name: "audience_roles", Type: field.TypeJSON, Nullable: true},
		{Name: "source_diversity", Type: field.TypeInt, Default: 1},
		{Name: "external_ratio", Type: field.TypeFloat64, Default: 0},
		{Name: "cause_heat", Type: field.TypeFloat64, Default: 0},
		{Name: "mentioned_actors", Type: field.TypeJSON, Nullable: true},
		{Name: "variant", Type: field.TypeJSON},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "severity", Type: field.TypeEnum, Nullable: true, Enums: []string{"info", "warning", "critical"}},
		{Name: "expired_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SignalsTable holds the schema information for the "signals" table.
	SignalsTable = &schema.Table{
		Name:       "signals",
		Columns:    SignalsColumns,
		PrimaryKey: []*schema.Column{SignalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "signal_region_title_key_node_type",
				Unique:  false,
				Columns: []*schema.Column{SignalsColumns[2], SignalsColumns[4], SignalsColumns[1]},
			},
			{
				Name:    "signal_region_node_type",
				Unique:  false,
				Columns: []*schema.Column{SignalsColumns[2], SignalsColumns[1]},
			},
			{
				Name:    "signal_source_url",
				Unique:  false,
				Columns: []*schema.Column{SignalsColumns[14]},
			},
			{
				Name:    "signal_region_expired_at",
				Unique:  false,
				Columns: []*schema.Column{SignalsColumns[2], SignalsColumns[25]},
			},
		},
	}
	// SourcesColumns holds the columns for the "sources" table.
	SourcesColumns = []*schema.Column{
		{Name: "source_id", Type: field.TypeString, Unique: true},
		{Name: "canonical_key", Type: field.TypeString},
		{Name: "canonical_value", Type: field.TypeString},
		{Name: "strategy", Type: field.TypeEnum, Enums: []string{"web", "feed", "social", "web_query", "api_adapter"}},
		{Name: "platform", Type: field.TypeString, Nullable: true},
		{Name: "region", Type: field.TypeString},
		{Name: "weight", Type: field.TypeFloat64, Default: 0.5},
		{Name: "cadence_hours", Type: field.TypeInt, Default: 24},
		{Name: "consecutive_empty_runs", Type: field.TypeInt, Default: 0},
		{Name: "scrape_count", Type: field.TypeInt, Default: 0},
		{Name: "signals_produced", Type: field.TypeInt, Default: 0},
		{Name: "signals_corroborated", Type: field.TypeInt, Default: 0},
		{Name: "tensions_produced", Type: field.TypeInt, Default: 0},
		{Name: "last_scraped", Type: field.TypeTime, Nullable: true},
		{Name: "last_produced_signal", Type: field.TypeTime, Nullable: true},
		{Name: "quality_penalty", Type: field.TypeFloat64, Default: 0},
		{Name: "discovery_method", Type: field.TypeEnum, Enums: []string{"curated", "seed", "link_expansion", "query_result", "llm_suggested"}, Default: "seed"},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "lat", Type: field.TypeFloat64, Nullable: true},
		{Name: "lng", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SourcesTable holds the schema information for the "sources" table.
	SourcesTable = &schema.Table{
		Name:       "sources",
		Columns:    SourcesColumns,
		PrimaryKey: []*schema.Column{SourcesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "source_region_canonical_key",
				Unique:  true,
				Columns: []*schema.Column{SourcesColumns[5], SourcesColumns[1]},
			},
			{
				Name:    "source_region_active",
				Unique:  false,
				Columns: []*schema.Column{SourcesColumns[5], SourcesColumns[17]},
			},
		},
	}
	// StoredEventsColumns holds the columns for the "stored_events" table.
	StoredEventsColumns = []*schema.Column{
		{Name: "seq", Type: field.TypeInt64, Increment: true},
		{Name: "ts", Type: field.TypeTime},
		{Name: "event_type", Type: field.TypeString},
		{Name: "parent_seq", Type: field.TypeInt64, Nullable: true},
		{Name: "caused_by_seq", Type: field.TypeInt64, Nullable: true},
		{Name: "run_id", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "schema_v", Type: field.TypeInt, Default: 1},
	}
	// StoredEventsTable holds the schema information for the "stored_events" table.
	StoredEventsTable = &schema.Table{
		Name:       "stored_events",
		Columns:    StoredEventsColumns,
		PrimaryKey: []*schema.Column{StoredEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "storedevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{StoredEventsColumns[5]},
			},
			{
				Name:    "storedevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{StoredEventsColumns[2]},
			},
		},
	}
	// ActorAuthoredColumns holds the columns for the "actor_authored" table.
	ActorAuthoredColumns = []*schema.Column{
		{Name: "actor_id", Type: field.TypeString},
		{Name: "signal_id", Type: field.TypeString},
	}
	// ActorAuthoredTable holds the schema information for the "actor_authored" table.
	ActorAuthoredTable = &schema.Table{
		Name:       "actor_authored",
		Columns:    ActorAuthoredColumns,
		PrimaryKey: []*schema.Column{ActorAuthoredColumns[0], ActorAuthoredColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "actor_authored_actor_id",
				Columns:    []*schema.Column{ActorAuthoredColumns[0]},
				RefColumns: []*schema.Column{ActorsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "actor_authored_signal_id",
				Columns:    []*schema.Column{ActorAuthoredColumns[1]},
				RefColumns: []*schema.Column{SignalsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// SignalEvidenceColumns holds the columns for the "signal_evidence" table.
	SignalEvidenceColumns = []*schema.Column{
		{Name: "signal_id", Type: field.TypeString},
		{Name: "evidence_id", Type: field.TypeString},
	}
	// SignalEvidenceTable holds the schema information for the "signal_evidence" table.
	SignalEvidenceTable = &schema.Table{
		Name:       "signal_evidence",
		Columns:    SignalEvidenceColumns,
		PrimaryKey: []*schema.Column{SignalEvidenceColumns[0], SignalEvidenceColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "signal_evidence_signal_id",
				Columns:    []*schema.Column{SignalEvidenceColumns[0]},
				RefColumns: []*schema.Column{SignalsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "signal_evidence_evidence_id",
				Columns:    []*schema.Column{SignalEvidenceColumns[1]},
				RefColumns: []*schema.Column{EvidencesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// SignalMentionsColumns holds the columns for the "signal_mentions" table.
	SignalMentionsColumns = []*schema.Column{
		{Name: "signal_id", Type: field.TypeString},
		{Name: "actor_id", Type: field.TypeString},
	}
	// SignalMentionsTable holds the schema information for the "signal_mentions" table.
	SignalMentionsTable = &schema.Table{
		Name:       "signal_mentions",
		Columns:    SignalMentionsColumns,
		PrimaryKey: []*schema.Column{SignalMentionsColumns[0], SignalMentionsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "signal_mentions_signal_id",
				Columns:    []*schema.Column{SignalMentionsColumns[0]},
				RefColumns: []*schema.Column{SignalsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "signal_mentions_actor_id",
				Columns:    []*schema.Column{SignalMentionsColumns[1]},
				RefColumns: []*schema.Column{ActorsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActorsTable,
		EvidencesTable,
		PipelineRunsTable,
		ResponsesTable,
		SignalsTable,
		SourcesTable,
		StoredEventsTable,
		ActorAuthoredTable,
		SignalEvidenceTable,
		SignalMentionsTable,
	}
)

func init() {
	ActorAuthoredTable.ForeignKeys[0].RefTable = ActorsTable
	ActorAuthoredTable.ForeignKeys[1].RefTable = SignalsTable
	SignalEvidenceTable.ForeignKeys[0].RefTable = SignalsTable
	SignalEvidenceTable.ForeignKeys[1].RefTable = EvidencesTable
	SignalMentionsTable.ForeignKeys[0].RefTable = SignalsTable
	SignalMentionsTable.ForeignKeys[1].RefTable = ActorsTable
}
