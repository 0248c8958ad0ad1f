// Code generated by ent, DO NOT EDIT.

package signal

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the signal type in the database.
	Label = "signal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "signal_id"
	// FieldNodeType holds the string denoting the node_type field in the database.
	FieldNodeType = "node_type"
	// FieldRegion holds the string denoting the region field in the database.
	FieldRegion = "region"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldTitleKey holds the string denoting the title_key field in the database.
	FieldTitleKey = "title_key"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldSensitivity holds the string denoting the sensitivity field in the database.
	FieldSensitivity = "sensitivity"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldFreshnessScore holds the string denoting the freshness_score field in the database.
	FieldFreshnessScore = "freshness_score"
	// FieldCorroborationCount holds the string denoting the corroboration_count field in the database.
	FieldCorroborationCount = "corroboration_count"
	// FieldLat holds the string denoting the lat field in the database.
	FieldLat = "lat"
	// FieldLng holds the string denoting the lng field in the database.
	FieldLng = "lng"
	// FieldGeoPrecision holds the string denoting the geo_precision field in the database.
	FieldGeoPrecision = "geo_precision"
	// FieldLocationName holds the string denoting the location_name field in the database.
	FieldLocationName = "location_name"
	// FieldSourceURL holds the string denoting the source_url field in the database.
	FieldSourceURL = "source_url"
	// FieldExtractedAt holds the string denoting the extracted_at field in the database.
	FieldExtractedAt = "extracted_at"
	// FieldLastConfirmedActive holds the string denoting the last_confirmed_active field in the database.
	FieldLastConfirmedActive = "last_confirmed_active"
	// FieldAudienceRoles holds the string denoting the audience_roles field in the database.
	FieldAudienceRoles = "audience_roles"
	// FieldSourceDiversity holds the string denoting the source_diversity field in the database.
	FieldSourceDiversity = "source_diversity"
	// FieldExternalRatio holds the string denoting the external_ratio field in the database.
	FieldExternalRatio = "external_ratio"
	// FieldCauseHeat holds the string denoting the cause_heat field in the database.
	FieldCauseHeat = "cause_heat"
	// FieldMentionedActors holds the string denoting the mentioned_actors field in the database.
	FieldMentionedActors = "mentioned_actors"
	// FieldVariant holds the string denoting the variant field in the database.
	FieldVariant = "variant"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldExpiredAt holds the string denoting the expired_at field in the database.
	FieldExpiredAt = "expired_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeEvidence holds the string denoting the evidence edge name in mutations.
	EdgeEvidence = "evidence"
	// EdgeMentions holds the string denoting the mentions edge name in mutations.
	EdgeMentions = "mentions"
	// EdgeAuthors holds the string denoting the authors edge name in mutations.
	EdgeAuthors = "authors"
	// EvidenceFieldID holds the string denoting the ID field of the Evidence.
	EvidenceFieldID = "evidence_id"
	// ActorFieldID holds the string denoting the ID field of the Actor.
	ActorFieldID = "actor_id"
	// Table holds the table name of the signal in the database.
	Table = "signals"
	// EvidenceTable is the table that holds the evidence relation/edge. The primary key declared below.
	EvidenceTable = "signal_evidence"
	// EvidenceInverseTable is the table name for the Evidence entity.
	// It exists in this package in order to avoid circular dependency with the "evidence" package.
	EvidenceInverseTable = "evidences"
	// MentionsTable is the table that holds the mentions relation/edge. The primary key declared below.
	MentionsTable = "signal_mentions"
	// MentionsInverseTable is the table name for the Actor entity.
	// It exists in this package in order to avoid circular dependency with the "actor" package.
	MentionsInverseTable = "actors"
	// AuthorsTable is the table that holds the authors relation/edge. The primary key declared below.
	AuthorsTable = "actor_authored"
	// AuthorsInverseTable is the table name for the Actor entity.
	// It exists in this package in order to avoid circular dependency with the "actor" package.
	AuthorsInverseTable = "actors"
)

// Columns holds all SQL columns for signal fields.
var Columns = []string{
	FieldID,
	FieldNodeType,
	FieldRegion,
	FieldTitle,
	FieldTitleKey,
	FieldSummary,
	FieldSensitivity,
	FieldConfidence,
	FieldFreshnessScore,
	FieldCorroborationCount,
	FieldLat,
	FieldLng,
	FieldGeoPrecision,
	FieldLocationName,
	FieldSourceURL,
	FieldExtractedAt,
	FieldLastConfirmedActive,
	FieldAudienceRoles,
	FieldSourceDiversity,
	FieldExternalRatio,
	FieldCauseHeat,
	FieldMentionedActors,
	FieldVariant,
	FieldEmbedding,
	FieldSeverity,
	FieldExpiredAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

var (
	// EvidencePrimaryKey and EvidenceColumn2 are the table columns denoting the
	// primary key for the evidence relation (M2M).
	EvidencePrimaryKey = []string{"signal_id", "evidence_id"}
	// MentionsPrimaryKey and MentionsColumn2 are the table columns denoting the
	// primary key for the mentions relation (M2M).
	MentionsPrimaryKey = []string{"signal_id", "actor_id"}
	// AuthorsPrimaryKey and AuthorsColumn2 are the table columns denoting the
	// primary key for the authors relation (M2M).
	AuthorsPrimaryKey = []string{"actor_id", "signal_id"}
)

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCorroborationCount holds the default value on creation for the "corroboration_count" field.
	DefaultCorroborationCount int
	// DefaultSourceDiversity holds the default value on creation for the "source_diversity" field.
	DefaultSourceDiversity int
	// DefaultExternalRatio holds the default value on creation for the "external_ratio" field.
	DefaultExternalRatio float64
	// DefaultCauseHeat holds the default value on creation for the "cause_heat" field.
	DefaultCauseHeat float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// NodeType defines the type for the "node_type" enum field.
type NodeType string

// NodeType values.
const (
	NodeTypeGathering NodeType = "gathering"
	NodeTypeAid       NodeType = "aid"
	NodeTypeNeed      NodeType = "need"
	NodeTypeNotice    NodeType = "notice"
	NodeTypeTension   NodeType = "tension"
)

func (nt NodeType) String() string {
	return string(nt)
}

// NodeTypeValidator is a validator for the "node_type" field enum values. It is called by the builders before save.
func NodeTypeValidator(nt NodeType) error {
	switch nt {
	case NodeTypeGathering, NodeTypeAid, NodeTypeNeed, NodeTypeNotice, NodeTypeTension:
		return nil
	default:
		return fmt.Errorf("signal: invalid enum value for node_type field: %q", nt)
	}
}

// Sensitivity defines the type for the "sensitivity" enum field.
type Sensitivity string

// SensitivityGeneral is the default value of the Sensitivity enum.
const DefaultSensitivity = SensitivityGeneral

// Sensitivity values.
const (
	SensitivityGeneral   Sensitivity = "general"
	SensitivityElevated  Sensitivity = "elevated"
	SensitivitySensitive Sensitivity = "sensitive"
)

func (s Sensitivity) String() string {
	return string(s)
}

// SensitivityValidator is a validator for the "sensitivity" field enum values. It is called by the builders before save.
func SensitivityValidator(s Sensitivity) error {
	switch s {
	case SensitivityGeneral, SensitivityElevated, SensitivitySensitive:
		return nil
	default:
		return fmt.Errorf("signal: invalid enum value for sensitivity field: %q", s)
	}
}

// GeoPrecision defines the type for the "geo_precision" enum field.
type GeoPrecision string

// GeoPrecision values.
const (
	GeoPrecisionExact        GeoPrecision = "exact"
	GeoPrecisionNeighborhood GeoPrecision = "neighborhood"
	GeoPrecisionCity         GeoPrecision = "city"
)

func (gp GeoPrecision) String() string {
	return string(gp)
}

// GeoPrecisionValidator is a validator for the "geo_precision" field enum values. It is called by the builders before save.
func GeoPrecisionValidator(gp GeoPrecision) error {
	switch gp {
	case GeoPrecisionExact, GeoPrecisionNeighborhood, GeoPrecisionCity:
		return nil
	default:
		return fmt.Errorf("signal: invalid enum value for geo_precision field: %q", gp)
	}
}

// Severity defines the type for the "severity" enum field.
type Severity string

// Severity values.
const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityInfo, SeverityWarning, SeverityCritical:
		return nil
	default:
		return fmt.Errorf("signal: invalid enum value for severity field: %q", s)
	}
}

// OrderOption defines the ordering options for the Signal queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByNodeType orders the results by the node_type field.
func ByNodeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNodeType, opts...).ToFunc()
}

// ByRegion orders the results by the region field.
func ByRegion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegion, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByTitleKey orders the results by the title_key field.
func ByTitleKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitleKey, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// BySensitivity orders the results by the sensitivity field.
func BySensitivity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSensitivity, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByFreshnessScore orders the results by the freshness_score field.
func ByFreshnessScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFreshnessScore, opts...).ToFunc()
}

// ByCorroborationCount orders the results by the corroboration_count field.
func ByCorroborationCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorroborationCount, opts...).ToFunc()
}

// ByLat orders the results by the lat field.
func ByLat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLat, opts...).ToFunc()
}

// ByLng orders the results by the lng field.
func ByLng(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLng, opts...).ToFunc()
}

// ByGeoPrecision orders the results by the geo_precision field.
func ByGeoPrecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeoPrecision, opts...).ToFunc()
}

// ByLocationName orders the results by the location_name field.
func ByLocationName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocationName, opts...).ToFunc()
}

// BySourceURL orders the results by the source_url field.
func BySourceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceURL, opts...).ToFunc()
}

// ByExtractedAt orders the results by the extracted_at field.
func ByExtractedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedAt, opts...).ToFunc()
}

// ByLastConfirmedActive orders the results by the last_confirmed_active field.
func ByLastConfirmedActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastConfirmedActive, opts...).ToFunc()
}

// BySourceDiversity orders the results by the source_diversity field.
func BySourceDiversity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceDiversity, opts...).ToFunc()
}

// ByExternalRatio orders the results by the external_ratio field.
func ByExternalRatio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalRatio, opts...).ToFunc()
}

// ByCauseHeat orders the results by the cause_heat field.
func ByCauseHeat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCauseHeat, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByExpiredAt orders the results by the expired_at field.
func ByExpiredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiredAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByEvidenceCount orders the results by evidence count.
func ByEvidenceCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEvidenceStep(), opts...)
	}
}

// ByEvidence orders the results by evidence terms.
func ByEvidence(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvidenceStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMentionsCount orders the results by mentions count.
func ByMentionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMentionsStep(), opts...)
	}
}

// ByMentions orders the results by mentions terms.
func ByMentions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMentionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAuthorsCount orders the results by authors count.
func ByAuthorsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuthorsStep(), opts...)
	}
}

// ByAuthors orders the results by authors terms.
func ByAuthors(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuthorsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEvidenceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvidenceInverseTable, EvidenceFieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, EvidenceTable, EvidencePrimaryKey...),
	)
}
func newMentionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MentionsInverseTable, ActorFieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, MentionsTable, MentionsPrimaryKey...),
	)
}
func newAuthorsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuthorsInverseTable, ActorFieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, AuthorsTable, AuthorsPrimaryKey...),
	)
}
