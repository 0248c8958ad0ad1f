// Code generated by ent, DO NOT EDIT.

package source

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fourthplaces/rootsignal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldID, id))
}

// CanonicalKey applies equality check predicate on the "canonical_key" field. It's identical to CanonicalKeyEQ.
func CanonicalKey(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldCanonicalKey, v))
}

// CanonicalValue applies equality check predicate on the "canonical_value" field. It's identical to CanonicalValueEQ.
func CanonicalValue(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldCanonicalValue, v))
}

// Platform applies equality check predicate on the "platform" field. It's identical to PlatformEQ.
func Platform(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldPlatform, v))
}

// Region applies equality check predicate on the "region" field. It's identical to RegionEQ.
func Region(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldRegion, v))
}

// Weight applies equality check predicate on the "weight" field. It's identical to WeightEQ.
func Weight(v float64) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldWeight, v))
}

// CadenceHours applies equality check predicate on the "cadence_hours" field. It's identical to CadenceHoursEQ.
func CadenceHours(v int) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldCadenceHours, v))
}

// ConsecutiveEmptyRuns applies equality check predicate on the "consecutive_empty_runs" field. It's identical to ConsecutiveEmptyRunsEQ.
func ConsecutiveEmptyRuns(v int) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldConsecutiveEmptyRuns, v))
}

// ScrapeCount applies equality check predicate on the "scrape_count" field. It's identical to ScrapeCountEQ.
func ScrapeCount(v int) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldScrapeCount, v))
}

// SignalsProduced applies equality check predicate on the "signals_produced" field. It's identical to SignalsProducedEQ.
func SignalsProduced(v int) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldSignalsProduced, v))
}

// SignalsCorroborated applies equality check predicate on the "signals_corroborated" field. It's identical to SignalsCorroboratedEQ.
func SignalsCorroborated(v int) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldSignalsCorroborated, v))
}

// TensionsProduced applies equality check predicate on the "tensions_produced" field. It's identical to TensionsProducedEQ.
func TensionsProduced(v int) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldTensionsProduced, v))
}

// LastScraped applies equality check predicate on the "last_scraped" field. It's identical to LastScrapedEQ.
func LastScraped(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldLastScraped, v))
}

// LastProducedSignal applies equality check predicate on the "last_produced_signal" field. It's identical to LastProducedSignalEQ.
func LastProducedSignal(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldLastProducedSignal, v))
}

// QualityPenalty applies equality check predicate on the "quality_penalty" field. It's identical to QualityPenaltyEQ.
func QualityPenalty(v float64) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldQualityPenalty, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldActive, v))
}

// Lat applies equality check predicate on the "lat" field. It's identical to LatEQ.
func Lat(v float64) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldLat, v))
}

// Lng applies equality check predicate on the "lng" field. It's identical to LngEQ.
func Lng(v float64) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldLng, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldUpdatedAt, v))
}

// CanonicalKeyEQ applies the EQ predicate on the "canonical_key" field.
func CanonicalKeyEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldCanonicalKey, v))
}

// CanonicalKeyNEQ applies the NEQ predicate on the "canonical_key" field.
func CanonicalKeyNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldCanonicalKey, v))
}

// CanonicalKeyIn applies the In predicate on the "canonical_key" field.
func CanonicalKeyIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldCanonicalKey, vs...))
}

// CanonicalKeyNotIn applies the NotIn predicate on the "canonical_key" field.
func CanonicalKeyNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldCanonicalKey, vs...))
}

// CanonicalKeyGT applies the GT predicate on the "canonical_key" field.
func CanonicalKeyGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldCanonicalKey, v))
}

// CanonicalKeyGTE applies the GTE predicate on the "canonical_key" field.
func CanonicalKeyGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldCanonicalKey, v))
}

// CanonicalKeyLT applies the LT predicate on the "canonical_key" field.
func CanonicalKeyLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldCanonicalKey, v))
}

// CanonicalKeyLTE applies the LTE predicate on the "canonical_key" field.
func CanonicalKeyLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldCanonicalKey, v))
}

// CanonicalKeyContains applies the Contains predicate on the "canonical_key" field.
func CanonicalKeyContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldCanonicalKey, v))
}

// CanonicalKeyHasPrefix applies the HasPrefix predicate on the "canonical_key" field.
func CanonicalKeyHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldCanonicalKey, v))
}

// CanonicalKeyHasSuffix applies the HasSuffix predicate on the "canonical_key" field.
func CanonicalKeyHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldCanonicalKey, v))
}

// CanonicalKeyEqualFold applies the EqualFold predicate on the "canonical_key" field.
func CanonicalKeyEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldCanonicalKey, v))
}

// CanonicalKeyContainsFold applies the ContainsFold predicate on the "canonical_key" field.
func CanonicalKeyContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldCanonicalKey, v))
}

// CanonicalValueEQ applies the EQ predicate on the "canonical_value" field.
func CanonicalValueEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldCanonicalValue, v))
}

// CanonicalValueNEQ applies the NEQ predicate on the "canonical_value" field.
func CanonicalValueNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldCanonicalValue, v))
}

// CanonicalValueIn applies the In predicate on the "canonical_value" field.
func CanonicalValueIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldCanonicalValue, vs...))
}

// CanonicalValueNotIn applies the NotIn predicate on the "canonical_value" field.
func CanonicalValueNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldCanonicalValue, vs...))
}

// CanonicalValueGT applies the GT predicate on the "canonical_value" field.
func CanonicalValueGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldCanonicalValue, v))
}

// CanonicalValueGTE applies the GTE predicate on the "canonical_value" field.
func CanonicalValueGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldCanonicalValue, v))
}

// CanonicalValueLT applies the LT predicate on the "canonical_value" field.
func CanonicalValueLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldCanonicalValue, v))
}

// CanonicalValueLTE applies the LTE predicate on the "canonical_value" field.
func CanonicalValueLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldCanonicalValue, v))
}

// CanonicalValueContains applies the Contains predicate on the "canonical_value" field.
func CanonicalValueContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldCanonicalValue, v))
}

// CanonicalValueHasPrefix applies the HasPrefix predicate on the "canonical_value" field.
func CanonicalValueHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldCanonicalValue, v))
}

// CanonicalValueHasSuffix applies the HasSuffix predicate on the "canonical_value" field.
func CanonicalValueHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldCanonicalValue, v))
}

// CanonicalValueEqualFold applies the EqualFold predicate on the "canonical_value" field.
func CanonicalValueEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldCanonicalValue, v))
}

// CanonicalValueContainsFold applies the ContainsFold predicate on the "canonical_value" field.
func CanonicalValueContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldCanonicalValue, v))
}

// StrategyEQ applies the EQ predicate on the "strategy" field.
func StrategyEQ(v Strategy) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldStrategy, v))
}

// StrategyNEQ applies the NEQ predicate on the "strategy" field.
func StrategyNEQ(v Strategy) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldStrategy, v))
}

// StrategyIn applies the In predicate on the "strategy" field.
func StrategyIn(vs ...Strategy) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldStrategy, vs...))
}

// StrategyNotIn applies the NotIn predicate on the "strategy" field.
func StrategyNotIn(vs ...Strategy) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldStrategy, vs...))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldPlatform, vs...))
}

// PlatformGT applies the GT predicate on the "platform" field.
func PlatformGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldPlatform, v))
}

// PlatformGTE applies the GTE predicate on the "platform" field.
func PlatformGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldPlatform, v))
}

// PlatformLT applies the LT predicate on the "platform" field.
func PlatformLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldPlatform, v))
}

// PlatformLTE applies the LTE predicate on the "platform" field.
func PlatformLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldPlatform, v))
}

// PlatformContains applies the Contains predicate on the "platform" field.
func PlatformContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldPlatform, v))
}

// PlatformHasPrefix applies the HasPrefix predicate on the "platform" field.
func PlatformHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldPlatform, v))
}

// PlatformHasSuffix applies the HasSuffix predicate on the "platform" field.
func PlatformHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldPlatform, v))
}

// PlatformIsNil applies the IsNil predicate on the "platform" field.
func PlatformIsNil() predicate.Source {
	return predicate.Source(sql.FieldIsNull(FieldPlatform))
}

// PlatformNotNil applies the NotNil predicate on the "platform" field.
func PlatformNotNil() predicate.Source {
	return predicate.Source(sql.FieldNotNull(FieldPlatform))
}

// PlatformEqualFold applies the EqualFold predicate on the "platform" field.
func PlatformEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldPlatform, v))
}

// PlatformContainsFold applies the ContainsFold predicate on the "platform" field.
func PlatformContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldPlatform, v))
}

// RegionEQ applies the EQ predicate on the "region" field.
func RegionEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldRegion, v))
}

// RegionNEQ applies the NEQ predicate on the "region" field.
func RegionNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldRegion, v))
}

// RegionIn applies the In predicate on the "region" field.
func RegionIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldRegion, vs...))
}

// RegionNotIn applies the NotIn predicate on the "region" field.
func RegionNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldRegion, vs...))
}

// RegionGT applies the GT predicate on the "region" field.
func RegionGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldRegion, v))
}

// RegionGTE applies the GTE predicate on the "region" field.
func RegionGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldRegion, v))
}

// RegionLT applies the LT predicate on the "region" field.
func RegionLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldRegion, v))
}

// RegionLTE applies the LTE predicate on the "region" field.
func RegionLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldRegion, v))
}

// RegionContains applies the Contains predicate on the "region" field.
func RegionContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldRegion, v))
}

// RegionHasPrefix applies the HasPrefix predicate on the "region" field.
func RegionHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldRegion, v))
}

// RegionHasSuffix applies the HasSuffix predicate on the "region" field.
func RegionHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldRegion, v))
}

// RegionEqualFold applies the EqualFold predicate on the "region" field.
func RegionEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldRegion, v))
}

// RegionContainsFold applies the ContainsFold predicate on the "region" field.
func RegionContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldRegion, v))
}

// WeightEQ applies the EQ predicate on the "weight" field.
func WeightEQ(v float64) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldWeight, v))
}

// WeightNEQ applies the NEQ predicate on the "weight" field.
func WeightNEQ(v float64) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldWeight, v))
}

// WeightIn applies the In predicate on the "weight" field.
func WeightIn(vs ...float64) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldWeight, vs...))
}

// WeightNotIn applies the NotIn predicate on the "weight" field.
func WeightNotIn(vs ...float64) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldWeight, vs...))
}

// WeightGT applies the GT predicate on the "weight" field.
func WeightGT(v float64) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldWeight, v))
}

// WeightGTE applies the GTE predicate on the "weight" field.
func WeightGTE(v float64) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldWeight, v))
}

// WeightLT applies the LT predicate on the "weight" field.
func WeightLT(v float64) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldWeight, v))
}

// WeightLTE applies the LTE predicate on the "weight" field.
func WeightLTE(v float64) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldWeight, v))
}

// CadenceHoursEQ applies the EQ predicate on the "cadence_hours" field.
func CadenceHoursEQ(v int) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldCadenceHours, v))
}

// CadenceHoursNEQ applies the NEQ predicate on the "cadence_hours" field.
func CadenceHoursNEQ(v int) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldCadenceHours, v))
}

// CadenceHoursIn applies the In predicate on the "cadence_hours" field.
func CadenceHoursIn(vs ...int) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldCadenceHours, vs...))
}

// CadenceHoursNotIn applies the NotIn predicate on the "cadence_hours" field.
func CadenceHoursNotIn(vs ...int) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldCadenceHours, vs...))
}

// CadenceHoursGT applies the GT predicate on the "cadence_hours" field.
func CadenceHoursGT(v int) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldCadenceHours, v))
}

// CadenceHoursGTE applies the GTE predicate on the "cadence_hours" field.
func CadenceHoursGTE(v int) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldCadenceHours, v))
}

// CadenceHoursLT applies the LT predicate on the "cadence_hours" field.
func CadenceHoursLT(v int) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldCadenceHours, v))
}

// CadenceHoursLTE applies the LTE predicate on the "cadence_hours" field.
func CadenceHoursLTE(v int) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldCadenceHours, v))
}

// ConsecutiveEmptyRunsEQ applies the EQ predicate on the "consecutive_empty_runs" field.
func ConsecutiveEmptyRunsEQ(v int) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldConsecutiveEmptyRuns, v))
}

// ConsecutiveEmptyRunsNEQ applies the NEQ predicate on the "consecutive_empty_runs" field.
func ConsecutiveEmptyRunsNEQ(v int) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldConsecutiveEmptyRuns, v))
}

// ConsecutiveEmptyRunsIn applies the In predicate on the "consecutive_empty_runs" field.
func ConsecutiveEmptyRunsIn(vs ...int) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldConsecutiveEmptyRuns, vs...))
}

// ConsecutiveEmptyRunsNotIn applies the NotIn predicate on the "consecutive_empty_runs" field.
func ConsecutiveEmptyRunsNotIn(vs ...int) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldConsecutiveEmptyRuns, vs...))
}

// ConsecutiveEmptyRunsGT applies the GT predicate on the "consecutive_empty_runs" field.
func ConsecutiveEmptyRunsGT(v int) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldConsecutiveEmptyRuns, v))
}

// ConsecutiveEmptyRunsGTE applies the GTE predicate on the "consecutive_empty_runs" field.
func ConsecutiveEmptyRunsGTE(v int) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldConsecutiveEmptyRuns, v))
}

// ConsecutiveEmptyRunsLT applies the LT predicate on the "consecutive_empty_runs" field.
func ConsecutiveEmptyRunsLT(v int) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldConsecutiveEmptyRuns, v))
}

// ConsecutiveEmptyRunsLTE applies the LTE predicate on the "consecutive_empty_runs" field.
func ConsecutiveEmptyRunsLTE(v int) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldConsecutiveEmptyRuns, v))
}

// ScrapeCountEQ applies the EQ predicate on the "scrape_count" field.
func ScrapeCountEQ(v int) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldScrapeCount, v))
}

// ScrapeCountNEQ applies the NEQ predicate on the "scrape_count" field.
func ScrapeCountNEQ(v int) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldScrapeCount, v))
}

// ScrapeCountIn applies the In predicate on the "scrape_count" field.
func ScrapeCountIn(vs ...int) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldScrapeCount, vs...))
}

// ScrapeCountNotIn applies the NotIn predicate on the "scrape_count" field.
func ScrapeCountNotIn(vs ...int) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldScrapeCount, vs...))
}

// ScrapeCountGT applies the GT predicate on the "scrape_count" field.
func ScrapeCountGT(v int) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldScrapeCount, v))
}

// ScrapeCountGTE applies the GTE predicate on the "scrape_count" field.
func ScrapeCountGTE(v int) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldScrapeCount, v))
}

// ScrapeCountLT applies the LT predicate on the "scrape_count" field.
func ScrapeCountLT(v int) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldScrapeCount, v))
}

// ScrapeCountLTE applies the LTE predicate on the "scrape_count" field.
func ScrapeCountLTE(v int) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldScrapeCount, v))
}

// SignalsProducedEQ applies the EQ predicate on the "signals_produced" field.
func SignalsProducedEQ(v int) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldSignalsProduced, v))
}

// SignalsProducedNEQ applies the NEQ predicate on the "signals_produced" field.
func SignalsProducedNEQ(v int) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldSignalsProduced, v))
}

// SignalsProducedIn applies the In predicate on the "signals_produced" field.
func SignalsProducedIn(vs ...int) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldSignalsProduced, vs...))
}

// SignalsProducedNotIn applies the NotIn predicate on the "signals_produced" field.
func SignalsProducedNotIn(vs ...int) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldSignalsProduced, vs...))
}

// SignalsProducedGT applies the GT predicate on the "signals_produced" field.
func SignalsProducedGT(v int) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldSignalsProduced, v))
}

// SignalsProducedGTE applies the GTE predicate on the "signals_produced" field.
func SignalsProducedGTE(v int) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldSignalsProduced, v))
}

// SignalsProducedLT applies the LT predicate on the "signals_produced" field.
func SignalsProducedLT(v int) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldSignalsProduced, v))
}

// SignalsProducedLTE applies the LTE predicate on the "signals_produced" field.
func SignalsProducedLTE(v int) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldSignalsProduced, v))
}

// SignalsCorroboratedEQ applies the EQ predicate on the "signals_corroborated" field.
func SignalsCorroboratedEQ(v int) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldSignalsCorroborated, v))
}

// SignalsCorroboratedNEQ applies the NEQ predicate on the "signals_corroborated" field.
func SignalsCorroboratedNEQ(v int) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldSignalsCorroborated, v))
}

// SignalsCorroboratedIn applies the In predicate on the "signals_corroborated" field.
func SignalsCorroboratedIn(vs ...int) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldSignalsCorroborated, vs...))
}

// SignalsCorroboratedNotIn applies the NotIn predicate on the "signals_corroborated" field.
func SignalsCorroboratedNotIn(vs ...int) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldSignalsCorroborated, vs...))
}

// SignalsCorroboratedGT applies the GT predicate on the "signals_corroborated" field.
func SignalsCorroboratedGT(v int) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldSignalsCorroborated, v))
}

// SignalsCorroboratedGTE applies the GTE predicate on the "signals_corroborated" field.
func SignalsCorroboratedGTE(v int) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldSignalsCorroborated, v))
}

// SignalsCorroboratedLT applies the LT predicate on the "signals_corroborated" field.
func SignalsCorroboratedLT(v int) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldSignalsCorroborated, v))
}

// SignalsCorroboratedLTE applies the LTE predicate on the "signals_corroborated" field.
func SignalsCorroboratedLTE(v int) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldSignalsCorroborated, v))
}

// TensionsProducedEQ applies the EQ predicate on the "tensions_produced" field.
func TensionsProducedEQ(v int) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldTensionsProduced, v))
}

// TensionsProducedNEQ applies the NEQ predicate on the "tensions_produced" field.
func TensionsProducedNEQ(v int) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldTensionsProduced, v))
}

// TensionsProducedIn applies the In predicate on the "tensions_produced" field.
func TensionsProducedIn(vs ...int) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldTensionsProduced, vs...))
}

// TensionsProducedNotIn applies the NotIn predicate on the "tensions_produced" field.
func TensionsProducedNotIn(vs ...int) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldTensionsProduced, vs...))
}

// TensionsProducedGT applies the GT predicate on the "tensions_produced" field.
func TensionsProducedGT(v int) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldTensionsProduced, v))
}

// TensionsProducedGTE applies the GTE predicate on the "tensions_produced" field.
func TensionsProducedGTE(v int) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldTensionsProduced, v))
}

// TensionsProducedLT applies the LT predicate on the "tensions_produced" field.
func TensionsProducedLT(v int) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldTensionsProduced, v))
}

// TensionsProducedLTE applies the LTE predicate on the "tensions_produced" field.
func TensionsProducedLTE(v int) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldTensionsProduced, v))
}

// LastScrapedEQ applies the EQ predicate on the "last_scraped" field.
func LastScrapedEQ(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldLastScraped, v))
}

// LastScrapedNEQ applies the NEQ predicate on the "last_scraped" field.
func LastScrapedNEQ(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldLastScraped, v))
}

// LastScrapedIn applies the In predicate on the "last_scraped" field.
func LastScrapedIn(vs ...time.Time) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldLastScraped, vs...))
}

// LastScrapedNotIn applies the NotIn predicate on the "last_scraped" field.
func LastScrapedNotIn(vs ...time.Time) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldLastScraped, vs...))
}

// LastScrapedGT applies the GT predicate on the "last_scraped" field.
func LastScrapedGT(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldLastScraped, v))
}

// LastScrapedGTE applies the GTE predicate on the "last_scraped" field.
func LastScrapedGTE(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldLastScraped, v))
}

// LastScrapedLT applies the LT predicate on the "last_scraped" field.
func LastScrapedLT(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldLastScraped, v))
}

// LastScrapedLTE applies the LTE predicate on the "last_scraped" field.
func LastScrapedLTE(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldLastScraped, v))
}

// LastScrapedIsNil applies the IsNil predicate on the "last_scraped" field.
func LastScrapedIsNil() predicate.Source {
	return predicate.Source(sql.FieldIsNull(FieldLastScraped))
}

// LastScrapedNotNil applies the NotNil predicate on the "last_scraped" field.
func LastScrapedNotNil() predicate.Source {
	return predicate.Source(sql.FieldNotNull(FieldLastScraped))
}

// LastProducedSignalEQ applies the EQ predicate on the "last_produced_signal" field.
func LastProducedSignalEQ(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldLastProducedSignal, v))
}

// LastProducedSignalNEQ applies the NEQ predicate on the "last_produced_signal" field.
func LastProducedSignalNEQ(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldLastProducedSignal, v))
}

// LastProducedSignalIn applies the In predicate on the "last_produced_signal" field.
func LastProducedSignalIn(vs ...time.Time) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldLastProducedSignal, vs...))
}

// LastProducedSignalNotIn applies the NotIn predicate on the "last_produced_signal" field.
func LastProducedSignalNotIn(vs ...time.Time) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldLastProducedSignal, vs...))
}

// LastProducedSignalGT applies the GT predicate on the "last_produced_signal" field.
func LastProducedSignalGT(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldLastProducedSignal, v))
}

// LastProducedSignalGTE applies the GTE predicate on the "last_produced_signal" field.
func LastProducedSignalGTE(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldLastProducedSignal, v))
}

// LastProducedSignalLT applies the LT predicate on the "last_produced_signal" field.
func LastProducedSignalLT(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldLastProducedSignal, v))
}

// LastProducedSignalLTE applies the LTE predicate on the "last_produced_signal" field.
func LastProducedSignalLTE(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldLastProducedSignal, v))
}

// LastProducedSignalIsNil applies the IsNil predicate on the "last_produced_signal" field.
func LastProducedSignalIsNil() predicate.Source {
	return predicate.Source(sql.FieldIsNull(FieldLastProducedSignal))
}

// LastProducedSignalNotNil applies the NotNil predicate on the "last_produced_signal" field.
func LastProducedSignalNotNil() predicate.Source {
	return predicate.Source(sql.FieldNotNull(FieldLastProducedSignal))
}

// QualityPenaltyEQ applies the EQ predicate on the "quality_penalty" field.
func QualityPenaltyEQ(v float64) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldQualityPenalty, v))
}

// QualityPenaltyNEQ applies the NEQ predicate on the "quality_penalty" field.
func QualityPenaltyNEQ(v float64) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldQualityPenalty, v))
}

// QualityPenaltyIn applies the In predicate on the "quality_penalty" field.
func QualityPenaltyIn(vs ...float64) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldQualityPenalty, vs...))
}

// QualityPenaltyNotIn applies the NotIn predicate on the "quality_penalty" field.
func QualityPenaltyNotIn(vs ...float64) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldQualityPenalty, vs...))
}

// QualityPenaltyGT applies the GT predicate on the "quality_penalty" field.
func QualityPenaltyGT(v float64) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldQualityPenalty, v))
}

// QualityPenaltyGTE applies the GTE predicate on the "quality_penalty" field.
func QualityPenaltyGTE(v float64) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldQualityPenalty, v))
}

// QualityPenaltyLT applies the LT predicate on the "quality_penalty" field.
func QualityPenaltyLT(v float64) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldQualityPenalty, v))
}

// QualityPenaltyLTE applies the LTE predicate on the "quality_penalty" field.
func QualityPenaltyLTE(v float64) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldQualityPenalty, v))
}

// DiscoveryMethodEQ applies the EQ predicate on the "discovery_method" field.
func DiscoveryMethodEQ(v DiscoveryMethod) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldDiscoveryMethod, v))
}

// DiscoveryMethodNEQ applies the NEQ predicate on the "discovery_method" field.
func DiscoveryMethodNEQ(v DiscoveryMethod) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldDiscoveryMethod, v))
}

// DiscoveryMethodIn applies the In predicate on the "discovery_method" field.
func DiscoveryMethodIn(vs ...DiscoveryMethod) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldDiscoveryMethod, vs...))
}

// DiscoveryMethodNotIn applies the NotIn predicate on the "discovery_method" field.
func DiscoveryMethodNotIn(vs ...DiscoveryMethod) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldDiscoveryMethod, vs...))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldActive, v))
}

// LatEQ applies the EQ predicate on the "lat" field.
func LatEQ(v float64) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldLat, v))
}

// LatNEQ applies the NEQ predicate on the "lat" field.
func LatNEQ(v float64) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldLat, v))
}

// LatIn applies the In predicate on the "lat" field.
func LatIn(vs ...float64) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldLat, vs...))
}

// LatNotIn applies the NotIn predicate on the "lat" field.
func LatNotIn(vs ...float64) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldLat, vs...))
}

// LatGT applies the GT predicate on the "lat" field.
func LatGT(v float64) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldLat, v))
}

// LatGTE applies the GTE predicate on the "lat" field.
func LatGTE(v float64) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldLat, v))
}

// LatLT applies the LT predicate on the "lat" field.
func LatLT(v float64) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldLat, v))
}

// LatLTE applies the LTE predicate on the "lat" field.
func LatLTE(v float64) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldLat, v))
}

// LatIsNil applies the IsNil predicate on the "lat" field.
func LatIsNil() predicate.Source {
	return predicate.Source(sql.FieldIsNull(FieldLat))
}

// LatNotNil applies the NotNil predicate on the "lat" field.
func LatNotNil() predicate.Source {
	return predicate.Source(sql.FieldNotNull(FieldLat))
}

// LngEQ applies the EQ predicate on the "lng" field.
func LngEQ(v float64) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldLng, v))
}

// LngNEQ applies the NEQ predicate on the "lng" field.
func LngNEQ(v float64) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldLng, v))
}

// LngIn applies the In predicate on the "lng" field.
func LngIn(vs ...float64) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldLng, vs...))
}

// LngNotIn applies the NotIn predicate on the "lng" field.
func LngNotIn(vs ...float64) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldLng, vs...))
}

// LngGT applies the GT predicate on the "lng" field.
func LngGT(v float64) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldLng, v))
}

// LngGTE applies the GTE predicate on the "lng" field.
func LngGTE(v float64) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldLng, v))
}

// LngLT applies the LT predicate on the "lng" field.
func LngLT(v float64) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldLng, v))
}

// LngLTE applies the LTE predicate on the "lng" field.
func LngLTE(v float64) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldLng, v))
}

// LngIsNil applies the IsNil predicate on the "lng" field.
func LngIsNil() predicate.Source {
	return predicate.Source(sql.FieldIsNull(FieldLng))
}

// LngNotNil applies the NotNil predicate on the "lng" field.
func LngNotNil() predicate.Source {
	return predicate.Source(sql.FieldNotNull(FieldLng))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Source) predicate.Source {
	return predicate.Source(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Source) predicate.Source {
	return predicate.Source(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Source) predicate.Source {
	return predicate.Source(sql.NotPredicates(p))
}
