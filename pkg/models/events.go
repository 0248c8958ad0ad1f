package models

import (
	"time"

	"github.com/google/uuid"
)

// Phase names a stage of the pipeline DAG.
type Phase string

const (
	PhaseBootstrap       Phase = "bootstrap"
	PhaseTensionScrape   Phase = "tension_scrape"
	PhaseMidRunDiscovery Phase = "mid_run_discovery"
	PhaseResponseScrape  Phase = "response_scrape"
	PhaseActorEnrichment Phase = "actor_enrichment"
	PhaseMetrics         Phase = "metrics"
	PhaseExpansion       Phase = "expansion"
	PhaseSynthesis       Phase = "synthesis"
)

// Event type strings. Lifecycle events come first, then world-level events
// (those the projector applies); the remainder are pipeline-internal.
const (
	// Lifecycle
	TypeEngineStarted    = "engine.started"
	TypeSourcesScheduled = "sources.scheduled"
	TypePhaseCompleted   = "phase.completed"
	TypeMetricsCompleted = "metrics.completed"
	TypeRunCompleted     = "run.completed"
	TypeRunFailed        = "run.failed"

	// World (projected into the graph)
	TypeSignalCreated      = "signal.created"
	TypeSignalCorroborated = "signal.corroborated"
	TypeFreshnessRecorded  = "signal.freshness_recorded"
	TypeSeveritySet        = "signal.severity_set"
	TypeEntityExpired      = "entity.expired"
	TypeSourceDiscovered   = "source.discovered"
	TypeSourceChanged      = "source.changed"
	TypeSourceScraped      = "source.scraped"
	TypeSourceDeactivated  = "source.deactivated"
	TypeResponseLinked     = "response.linked"
	TypeActorObserved      = "actor.observed"

	// Scrape internals
	TypeContentFetched     = "content.fetched"
	TypeContentFetchFailed = "content.fetch_failed"
	TypeContentUnchanged   = "content.unchanged"
	TypeSignalsExtracted   = "signals.extracted"
	TypeLinkCollected      = "link.collected"

	// Dedup verdicts (pipeline-internal)
	TypeNewSignalAccepted       = "dedup.new_signal_accepted"
	TypeSameSourceReencountered = "dedup.same_source_reencountered"
	TypeCrossSourceMatch        = "dedup.cross_source_match"
	TypeSignalDropped           = "dedup.signal_dropped"

	// Discovery
	TypeExpansionQueryProposed = "discovery.expansion_query"
	TypeSocialTopicProposed    = "discovery.social_topic"
)

// Lifecycle events drive the phase DAG.

type EngineStarted struct {
	RunID      string `json:"run_id"`
	RegionSlug string `json:"region_slug"`
}

func (EngineStarted) EventType() string { return TypeEngineStarted }

type SourcesScheduled struct {
	RunID        string   `json:"run_id"`
	TensionKeys  []string `json:"tension_keys"`
	ResponseKeys []string `json:"response_keys"`
}

func (SourcesScheduled) EventType() string { return TypeSourcesScheduled }

type PhaseCompleted struct {
	RunID   string `json:"run_id"`
	Phase   Phase  `json:"phase"`
	Partial bool   `json:"partial"` // budget exhaustion or cancellation cut the phase short
}

func (PhaseCompleted) EventType() string { return TypePhaseCompleted }

type MetricsCompleted struct {
	RunID string `json:"run_id"`
}

func (MetricsCompleted) EventType() string { return TypeMetricsCompleted }

type RunCompleted struct {
	RunID string   `json:"run_id"`
	Stats RunStats `json:"stats"`
}

func (RunCompleted) EventType() string { return TypeRunCompleted }

type RunFailed struct {
	RunID  string `json:"run_id"`
	Reason string `json:"reason"`
}

func (RunFailed) EventType() string { return TypeRunFailed }

// World events. These are the only events the projector applies; replaying
// them in seq order from an empty graph rebuilds it.

type SignalCreated struct {
	NodeID      uuid.UUID  `json:"node_id"`
	NodeType    NodeType   `json:"node_type"`
	Node        SignalNode `json:"node"`
	SourceURL   string     `json:"source_url"`
	SourceKey   string     `json:"source_key"`
	ContentHash string     `json:"content_hash"`
	Snippet     string     `json:"snippet"`
	ChannelType string     `json:"channel_type"`
	// Embedding is the dedup vector computed at acceptance; stored on the
	// signal so later runs' similarity layer can match against it.
	Embedding []float32 `json:"embedding"`
}

func (SignalCreated) EventType() string { return TypeSignalCreated }

type SignalCorroborated struct {
	ExistingID  uuid.UUID `json:"existing_id"`
	NodeType    NodeType  `json:"node_type"`
	SourceURL   string    `json:"source_url"`
	SourceKey   string    `json:"source_key"`
	ContentHash string    `json:"content_hash"`
	Snippet     string    `json:"snippet"`
	ChannelType string    `json:"channel_type"`
	Similarity  float64   `json:"similarity"`
}

func (SignalCorroborated) EventType() string { return TypeSignalCorroborated }

type FreshnessRecorded struct {
	SignalID  uuid.UUID `json:"signal_id"`
	NodeType  NodeType  `json:"node_type"`
	SourceURL string    `json:"source_url"`
	SeenAt    time.Time `json:"seen_at"`
}

func (FreshnessRecorded) EventType() string { return TypeFreshnessRecorded }

type SeveritySet struct {
	SignalID uuid.UUID `json:"signal_id"`
	Severity Severity  `json:"severity"`
	Reason   string    `json:"reason"`
}

func (SeveritySet) EventType() string { return TypeSeveritySet }

type EntityExpired struct {
	SignalID uuid.UUID `json:"signal_id"`
	NodeType NodeType  `json:"node_type"`
	Reason   string    `json:"reason"`
}

func (EntityExpired) EventType() string { return TypeEntityExpired }

type SourceDiscovered struct {
	Source Source `json:"source"`
}

func (SourceDiscovered) EventType() string { return TypeSourceDiscovered }

// SourceChangeKind discriminates which field a SourceChanged event updates.
// The projector updates only the named field.
type SourceChangeKind string

const (
	SourceChangeWeight  SourceChangeKind = "weight"
	SourceChangeCadence SourceChangeKind = "cadence"
)

type SourceChanged struct {
	CanonicalKey string           `json:"canonical_key"`
	Change       SourceChangeKind `json:"change"`
	OldValue     float64          `json:"old_value"`
	NewValue     float64          `json:"new_value"`
}

func (SourceChanged) EventType() string { return TypeSourceChanged }

// SourceScraped records scrape bookkeeping as absolute values so projection
// stays idempotent: the emitting handler computes the new counters, the
// projector only sets them.
type SourceScraped struct {
	CanonicalKey     string    `json:"canonical_key"`
	ScrapeCount      int       `json:"scrape_count"`
	ConsecutiveEmpty int       `json:"consecutive_empty_runs"`
	LastScraped      time.Time `json:"last_scraped"`
	ProducedSignals  bool      `json:"produced_signals"`
}

func (SourceScraped) EventType() string { return TypeSourceScraped }

type SourceDeactivated struct {
	CanonicalKey string `json:"canonical_key"`
	Reason       string `json:"reason"`
}

func (SourceDeactivated) EventType() string { return TypeSourceDeactivated }

type ResponseLinked struct {
	ResponseID  uuid.UUID `json:"response_id"` // the Aid/Gathering signal
	TensionID   uuid.UUID `json:"tension_id"`
	Strength    float64   `json:"strength"`
	Explanation string    `json:"explanation"`
}

func (ResponseLinked) EventType() string { return TypeResponseLinked }

type ActorObserved struct {
	Name         string    `json:"name"`
	Kind         string    `json:"kind"`
	CanonicalURL string    `json:"canonical_url"`
	SignalID     uuid.UUID `json:"signal_id"`
	Role         string    `json:"role"` // author, mentioned
	Location     *GeoPoint `json:"location"`
}

func (ActorObserved) EventType() string { return TypeActorObserved }

// Scrape-phase internals.

type ContentFetched struct {
	RunID       string `json:"run_id"`
	URL         string `json:"url"`
	SourceKey   string `json:"source_key"`
	Bytes       int    `json:"bytes"`
	ContentHash string `json:"content_hash"`
}

func (ContentFetched) EventType() string { return TypeContentFetched }

type ContentFetchFailed struct {
	RunID     string `json:"run_id"`
	URL       string `json:"url"`
	SourceKey string `json:"source_key"`
	Reason    string `json:"reason"`
}

func (ContentFetchFailed) EventType() string { return TypeContentFetchFailed }

type ContentUnchanged struct {
	RunID       string `json:"run_id"`
	URL         string `json:"url"`
	SourceKey   string `json:"source_key"`
	ContentHash string `json:"content_hash"`
}

func (ContentUnchanged) EventType() string { return TypeContentUnchanged }

// SignalsExtracted announces a batch stashed in PipelineState under URL.
// The batch itself travels through state, not the event, to keep events
// small and serializable.
type SignalsExtracted struct {
	RunID     string `json:"run_id"`
	URL       string `json:"url"`
	SourceKey string `json:"source_key"`
	Count     int    `json:"count"`
}

func (SignalsExtracted) EventType() string { return TypeSignalsExtracted }

type LinkCollected struct {
	RunID   string `json:"run_id"`
	FromURL string `json:"from_url"`
	Link    string `json:"link"`
}

func (LinkCollected) EventType() string { return TypeLinkCollected }

// Dedup verdicts. Each verdict is paired with a world event carrying the
// durable effect; these internal forms feed metrics and state.

type NewSignalAccepted struct {
	RunID     string    `json:"run_id"`
	NodeID    uuid.UUID `json:"node_id"`
	NodeType  NodeType  `json:"node_type"`
	SourceURL string    `json:"source_url"`
}

func (NewSignalAccepted) EventType() string { return TypeNewSignalAccepted }

type SameSourceReencountered struct {
	RunID      string    `json:"run_id"`
	ExistingID uuid.UUID `json:"existing_id"`
	SourceURL  string    `json:"source_url"`
}

func (SameSourceReencountered) EventType() string { return TypeSameSourceReencountered }

type CrossSourceMatchDetected struct {
	RunID      string    `json:"run_id"`
	ExistingID uuid.UUID `json:"existing_id"`
	SourceURL  string    `json:"source_url"`
	Similarity float64   `json:"similarity"`
}

func (CrossSourceMatchDetected) EventType() string { return TypeCrossSourceMatch }

type SignalDropped struct {
	RunID     string `json:"run_id"`
	Title     string `json:"title"`
	SourceURL string `json:"source_url"`
	Reason    string `json:"reason"`
}

func (SignalDropped) EventType() string { return TypeSignalDropped }

// Discovery events.

type ExpansionQueryProposed struct {
	RunID string `json:"run_id"`
	Query string `json:"query"`
}

func (ExpansionQueryProposed) EventType() string { return TypeExpansionQueryProposed }

type SocialTopicProposed struct {
	RunID    string `json:"run_id"`
	Platform string `json:"platform"`
	Topic    string `json:"topic"`
}

func (SocialTopicProposed) EventType() string { return TypeSocialTopicProposed }

// IsWorldEvent reports whether the event type is projected into the graph
// (and therefore persisted to the event log).
func IsWorldEvent(eventType string) bool {
	switch eventType {
	case TypeSignalCreated, TypeSignalCorroborated, TypeFreshnessRecorded,
		TypeSeveritySet, TypeEntityExpired, TypeSourceDiscovered,
		TypeSourceChanged, TypeSourceScraped, TypeSourceDeactivated,
		TypeResponseLinked, TypeActorObserved:
		return true
	}
	return false
}

// StoredEvent is one persisted row of the append-only event log. Seq is
// assigned by the log and strictly monotonic across the whole log.
type StoredEvent struct {
	Seq         int64     `json:"seq"`
	Timestamp   time.Time `json:"ts"`
	EventType   string    `json:"event_type"`
	ParentSeq   *int64    `json:"parent_seq"`
	CausedBySeq *int64    `json:"caused_by_seq"`
	RunID       string    `json:"run_id"`
	Actor       string    `json:"actor"`
	Payload     []byte    `json:"payload"`
	SchemaV     int       `json:"schema_v"`
}
