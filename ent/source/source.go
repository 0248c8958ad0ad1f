// Code generated by ent, DO NOT EDIT.

package source

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the source type in the database.
	Label = "source"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "source_id"
	// FieldCanonicalKey holds the string denoting the canonical_key field in the database.
	FieldCanonicalKey = "canonical_key"
	// FieldCanonicalValue holds the string denoting the canonical_value field in the database.
	FieldCanonicalValue = "canonical_value"
	// FieldStrategy holds the string denoting the strategy field in the database.
	FieldStrategy = "strategy"
	// FieldPlatform holds the string denoting the platform field in the database.
	FieldPlatform = "platform"
	// FieldRegion holds the string denoting the region field in the database.
	FieldRegion = "region"
	// FieldWeight holds the string denoting the weight field in the database.
	FieldWeight = "weight"
	// FieldCadenceHours holds the string denoting the cadence_hours field in the database.
	FieldCadenceHours = "cadence_hours"
	// FieldConsecutiveEmptyRuns holds the string denoting the consecutive_empty_runs field in the database.
	FieldConsecutiveEmptyRuns = "consecutive_empty_runs"
	// FieldScrapeCount holds the string denoting the scrape_count field in the database.
	FieldScrapeCount = "scrape_count"
	// FieldSignalsProduced holds the string denoting the signals_produced field in the database.
	FieldSignalsProduced = "signals_produced"
	// FieldSignalsCorroborated holds the string denoting the signals_corroborated field in the database.
	FieldSignalsCorroborated = "signals_corroborated"
	// FieldTensionsProduced holds the string denoting the tensions_produced field in the database.
	FieldTensionsProduced = "tensions_produced"
	// FieldLastScraped holds the string denoting the last_scraped field in the database.
	FieldLastScraped = "last_scraped"
	// FieldLastProducedSignal holds the string denoting the last_produced_signal field in the database.
	FieldLastProducedSignal = "last_produced_signal"
	// FieldQualityPenalty holds the string denoting the quality_penalty field in the database.
	FieldQualityPenalty = "quality_penalty"
	// FieldDiscoveryMethod holds the string denoting the discovery_method field in the database.
	FieldDiscoveryMethod = "discovery_method"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldLat holds the string denoting the lat field in the database.
	FieldLat = "lat"
	// FieldLng holds the string denoting the lng field in the database.
	FieldLng = "lng"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the source in the database.
	Table = "sources"
)

// Columns holds all SQL columns for source fields.
var Columns = []string{
	FieldID,
	FieldCanonicalKey,
	FieldCanonicalValue,
	FieldStrategy,
	FieldPlatform,
	FieldRegion,
	FieldWeight,
	FieldCadenceHours,
	FieldConsecutiveEmptyRuns,
	FieldScrapeCount,
	FieldSignalsProduced,
	FieldSignalsCorroborated,
	FieldTensionsProduced,
	FieldLastScraped,
	FieldLastProducedSignal,
	FieldQualityPenalty,
	FieldDiscoveryMethod,
	FieldActive,
	FieldLat,
	FieldLng,
	FieldCreatedAt,
	FieldUpdatedAt,
}

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
	// DefaultWeight holds the default value on creation for the "weight" field.
	DefaultWeight float64
	// DefaultCadenceHours holds the default value on creation for the "cadence_hours" field.
	DefaultCadenceHours int
	// DefaultConsecutiveEmptyRuns holds the default value on creation for the "consecutive_empty_runs" field.
	DefaultConsecutiveEmptyRuns int
	// DefaultScrapeCount holds the default value on creation for the "scrape_count" field.
	DefaultScrapeCount int
	// DefaultSignalsProduced holds the default value on creation for the "signals_produced" field.
	DefaultSignalsProduced int
	// DefaultSignalsCorroborated holds the default value on creation for the "signals_corroborated" field.
	DefaultSignalsCorroborated int
	// DefaultTensionsProduced holds the default value on creation for the "tensions_produced" field.
	DefaultTensionsProduced int
	// DefaultQualityPenalty holds the default value on creation for the "quality_penalty" field.
	DefaultQualityPenalty float64
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Strategy defines the type for the "strategy" enum field.
type Strategy string

// Strategy values.
const (
	StrategyWeb        Strategy = "web"
	StrategyFeed       Strategy = "feed"
	StrategySocial     Strategy = "social"
	StrategyWebQuery   Strategy = "web_query"
	StrategyAPIAdapter Strategy = "api_adapter"
)

func (s Strategy) String() string {
	return string(s)
}

// StrategyValidator is a validator for the "strategy" field enum values. It is called by the builders before save.
func StrategyValidator(s Strategy) error {
	switch s {
	case StrategyWeb, StrategyFeed, StrategySocial, StrategyWebQuery, StrategyAPIAdapter:
		return nil
	default:
		return fmt.Errorf("source: invalid enum value for strategy field: %q", s)
	}
}

// DiscoveryMethod defines the type for the "discovery_method" enum field.
type DiscoveryMethod string

// DiscoveryMethodSeed is the default value of the DiscoveryMethod enum.
const DefaultDiscoveryMethod = DiscoveryMethodSeed

// DiscoveryMethod values.
const (
	DiscoveryMethodCurated       DiscoveryMethod = "curated"
	DiscoveryMethodSeed          DiscoveryMethod = "seed"
	DiscoveryMethodLinkExpansion DiscoveryMethod = "link_expansion"
	DiscoveryMethodQueryResult   DiscoveryMethod = "query_result"
	DiscoveryMethodLlmSuggested  DiscoveryMethod = "llm_suggested"
)

func (dm DiscoveryMethod) String() string {
	return string(dm)
}

// DiscoveryMethodValidator is a validator for the "discovery_method" field enum values. It is called by the builders before save.
func DiscoveryMethodValidator(dm DiscoveryMethod) error {
	switch dm {
	case DiscoveryMethodCurated, DiscoveryMethodSeed, DiscoveryMethodLinkExpansion, DiscoveryMethodQueryResult, DiscoveryMethodLlmSuggested:
		return nil
	default:
		return fmt.Errorf("source: invalid enum value for discovery_method field: %q", dm)
	}
}

// OrderOption defines the ordering options for the Source queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCanonicalKey orders the results by the canonical_key field.
func ByCanonicalKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonicalKey, opts...).ToFunc()
}

// ByCanonicalValue orders the results by the canonical_value field.
func ByCanonicalValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonicalValue, opts...).ToFunc()
}

// ByStrategy orders the results by the strategy field.
func ByStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrategy, opts...).ToFunc()
}

// ByPlatform orders the results by the platform field.
func ByPlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatform, opts...).ToFunc()
}

// ByRegion orders the results by the region field.
func ByRegion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegion, opts...).ToFunc()
}

// ByWeight orders the results by the weight field.
func ByWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeight, opts...).ToFunc()
}

// ByCadenceHours orders the results by the cadence_hours field.
func ByCadenceHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCadenceHours, opts...).ToFunc()
}

// ByConsecutiveEmptyRuns orders the results by the consecutive_empty_runs field.
func ByConsecutiveEmptyRuns(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveEmptyRuns, opts...).ToFunc()
}

// ByScrapeCount orders the results by the scrape_count field.
func ByScrapeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScrapeCount, opts...).ToFunc()
}

// BySignalsProduced orders the results by the signals_produced field.
func BySignalsProduced(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignalsProduced, opts...).ToFunc()
}

// BySignalsCorroborated orders the results by the signals_corroborated field.
func BySignalsCorroborated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignalsCorroborated, opts...).ToFunc()
}

// ByTensionsProduced orders the results by the tensions_produced field.
func ByTensionsProduced(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTensionsProduced, opts...).ToFunc()
}

// ByLastScraped orders the results by the last_scraped field.
func ByLastScraped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastScraped, opts...).ToFunc()
}

// ByLastProducedSignal orders the results by the last_produced_signal field.
func ByLastProducedSignal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastProducedSignal, opts...).ToFunc()
}

// ByQualityPenalty orders the results by the quality_penalty field.
func ByQualityPenalty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityPenalty, opts...).ToFunc()
}

// ByDiscoveryMethod orders the results by the discovery_method field.
func ByDiscoveryMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscoveryMethod, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByLat orders the results by the lat field.
func ByLat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLat, opts...).ToFunc()
}

// ByLng orders the results by the lng field.
func ByLng(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLng, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
