// Code generated by ent, DO NOT EDIT.

package signal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fourthplaces/rootsignal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Signal {
	return predicate.Signal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Signal {
	return predicate.Signal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Signal {
	return predicate.Signal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Signal {
	return predicate.Signal(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Signal {
	return predicate.Signal(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Signal {
	return predicate.Signal(sql.FieldContainsFold(FieldID, id))
}

// Region applies equality check predicate on the "region" field. It's identical to RegionEQ.
func Region(v string) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldRegion, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldTitle, v))
}

// TitleKey applies equality check predicate on the "title_key" field. It's identical to TitleKeyEQ.
func TitleKey(v string) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldTitleKey, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldSummary, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldConfidence, v))
}

// FreshnessScore applies equality check predicate on the "freshness_score" field. It's identical to FreshnessScoreEQ.
func FreshnessScore(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldFreshnessScore, v))
}

// CorroborationCount applies equality check predicate on the "corroboration_count" field. It's identical to CorroborationCountEQ.
func CorroborationCount(v int) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldCorroborationCount, v))
}

// Lat applies equality check predicate on the "lat" field. It's identical to LatEQ.
func Lat(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldLat, v))
}

// Lng applies equality check predicate on the "lng" field. It's identical to LngEQ.
func Lng(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldLng, v))
}

// LocationName applies equality check predicate on the "location_name" field. It's identical to LocationNameEQ.
func LocationName(v string) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldLocationName, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldSourceURL, v))
}

// ExtractedAt applies equality check predicate on the "extracted_at" field. It's identical to ExtractedAtEQ.
func ExtractedAt(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldExtractedAt, v))
}

// LastConfirmedActive applies equality check predicate on the "last_confirmed_active" field. It's identical to LastConfirmedActiveEQ.
func LastConfirmedActive(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldLastConfirmedActive, v))
}

// SourceDiversity applies equality check predicate on the "source_diversity" field. It's identical to SourceDiversityEQ.
func SourceDiversity(v int) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldSourceDiversity, v))
}

// ExternalRatio applies equality check predicate on the "external_ratio" field. It's identical to ExternalRatioEQ.
func ExternalRatio(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldExternalRatio, v))
}

// CauseHeat applies equality check predicate on the "cause_heat" field. It's identical to CauseHeatEQ.
func CauseHeat(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldCauseHeat, v))
}

// ExpiredAt applies equality check predicate on the "expired_at" field. It's identical to ExpiredAtEQ.
func ExpiredAt(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldExpiredAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldUpdatedAt, v))
}

// NodeTypeEQ applies the EQ predicate on the "node_type" field.
func NodeTypeEQ(v NodeType) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldNodeType, v))
}

// NodeTypeNEQ applies the NEQ predicate on the "node_type" field.
func NodeTypeNEQ(v NodeType) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldNodeType, v))
}

// NodeTypeIn applies the In predicate on the "node_type" field.
func NodeTypeIn(vs ...NodeType) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldNodeType, vs...))
}

// NodeTypeNotIn applies the NotIn predicate on the "node_type" field.
func NodeTypeNotIn(vs ...NodeType) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldNodeType, vs...))
}

// RegionEQ applies the EQ predicate on the "region" field.
func RegionEQ(v string) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldRegion, v))
}

// RegionNEQ applies the NEQ predicate on the "region" field.
func RegionNEQ(v string) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldRegion, v))
}

// RegionIn applies the In predicate on the "region" field.
func RegionIn(vs ...string) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldRegion, vs...))
}

// RegionNotIn applies the NotIn predicate on the "region" field.
func RegionNotIn(vs ...string) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldRegion, vs...))
}

// RegionGT applies the GT predicate on the "region" field.
func RegionGT(v string) predicate.Signal {
	return predicate.Signal(sql.FieldGT(FieldRegion, v))
}

// RegionGTE applies the GTE predicate on the "region" field.
func RegionGTE(v string) predicate.Signal {
	return predicate.Signal(sql.FieldGTE(FieldRegion, v))
}

// RegionLT applies the LT predicate on the "region" field.
func RegionLT(v string) predicate.Signal {
	return predicate.Signal(sql.FieldLT(FieldRegion, v))
}

// RegionLTE applies the LTE predicate on the "region" field.
func RegionLTE(v string) predicate.Signal {
	return predicate.Signal(sql.FieldLTE(FieldRegion, v))
}

// RegionContains applies the Contains predicate on the "region" field.
func RegionContains(v string) predicate.Signal {
	return predicate.Signal(sql.FieldContains(FieldRegion, v))
}

// RegionHasPrefix applies the HasPrefix predicate on the "region" field.
func RegionHasPrefix(v string) predicate.Signal {
	return predicate.Signal(sql.FieldHasPrefix(FieldRegion, v))
}

// RegionHasSuffix applies the HasSuffix predicate on the "region" field.
func RegionHasSuffix(v string) predicate.Signal {
	return predicate.Signal(sql.FieldHasSuffix(FieldRegion, v))
}

// RegionEqualFold applies the EqualFold predicate on the "region" field.
func RegionEqualFold(v string) predicate.Signal {
	return predicate.Signal(sql.FieldEqualFold(FieldRegion, v))
}

// RegionContainsFold applies the ContainsFold predicate on the "region" field.
func RegionContainsFold(v string) predicate.Signal {
	return predicate.Signal(sql.FieldContainsFold(FieldRegion, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Signal {
	return predicate.Signal(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Signal {
	return predicate.Signal(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Signal {
	return predicate.Signal(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Signal {
	return predicate.Signal(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Signal {
	return predicate.Signal(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Signal {
	return predicate.Signal(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Signal {
	return predicate.Signal(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Signal {
	return predicate.Signal(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Signal {
	return predicate.Signal(sql.FieldContainsFold(FieldTitle, v))
}

// TitleKeyEQ applies the EQ predicate on the "title_key" field.
func TitleKeyEQ(v string) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldTitleKey, v))
}

// TitleKeyNEQ applies the NEQ predicate on the "title_key" field.
func TitleKeyNEQ(v string) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldTitleKey, v))
}

// TitleKeyIn applies the In predicate on the "title_key" field.
func TitleKeyIn(vs ...string) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldTitleKey, vs...))
}

// TitleKeyNotIn applies the NotIn predicate on the "title_key" field.
func TitleKeyNotIn(vs ...string) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldTitleKey, vs...))
}

// TitleKeyGT applies the GT predicate on the "title_key" field.
func TitleKeyGT(v string) predicate.Signal {
	return predicate.Signal(sql.FieldGT(FieldTitleKey, v))
}

// TitleKeyGTE applies the GTE predicate on the "title_key" field.
func TitleKeyGTE(v string) predicate.Signal {
	return predicate.Signal(sql.FieldGTE(FieldTitleKey, v))
}

// TitleKeyLT applies the LT predicate on the "title_key" field.
func TitleKeyLT(v string) predicate.Signal {
	return predicate.Signal(sql.FieldLT(FieldTitleKey, v))
}

// TitleKeyLTE applies the LTE predicate on the "title_key" field.
func TitleKeyLTE(v string) predicate.Signal {
	return predicate.Signal(sql.FieldLTE(FieldTitleKey, v))
}

// TitleKeyContains applies the Contains predicate on the "title_key" field.
func TitleKeyContains(v string) predicate.Signal {
	return predicate.Signal(sql.FieldContains(FieldTitleKey, v))
}

// TitleKeyHasPrefix applies the HasPrefix predicate on the "title_key" field.
func TitleKeyHasPrefix(v string) predicate.Signal {
	return predicate.Signal(sql.FieldHasPrefix(FieldTitleKey, v))
}

// TitleKeyHasSuffix applies the HasSuffix predicate on the "title_key" field.
func TitleKeyHasSuffix(v string) predicate.Signal {
	return predicate.Signal(sql.FieldHasSuffix(FieldTitleKey, v))
}

// TitleKeyEqualFold applies the EqualFold predicate on the "title_key" field.
func TitleKeyEqualFold(v string) predicate.Signal {
	return predicate.Signal(sql.FieldEqualFold(FieldTitleKey, v))
}

// TitleKeyContainsFold applies the ContainsFold predicate on the "title_key" field.
func TitleKeyContainsFold(v string) predicate.Signal {
	return predicate.Signal(sql.FieldContainsFold(FieldTitleKey, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Signal {
	return predicate.Signal(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Signal {
	return predicate.Signal(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Signal {
	return predicate.Signal(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Signal {
	return predicate.Signal(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Signal {
	return predicate.Signal(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Signal {
	return predicate.Signal(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Signal {
	return predicate.Signal(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Signal {
	return predicate.Signal(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Signal {
	return predicate.Signal(sql.FieldContainsFold(FieldSummary, v))
}

// SensitivityEQ applies the EQ predicate on the "sensitivity" field.
func SensitivityEQ(v Sensitivity) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldSensitivity, v))
}

// SensitivityNEQ applies the NEQ predicate on the "sensitivity" field.
func SensitivityNEQ(v Sensitivity) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldSensitivity, v))
}

// SensitivityIn applies the In predicate on the "sensitivity" field.
func SensitivityIn(vs ...Sensitivity) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldSensitivity, vs...))
}

// SensitivityNotIn applies the NotIn predicate on the "sensitivity" field.
func SensitivityNotIn(vs ...Sensitivity) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldSensitivity, vs...))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldLTE(FieldConfidence, v))
}

// FreshnessScoreEQ applies the EQ predicate on the "freshness_score" field.
func FreshnessScoreEQ(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldFreshnessScore, v))
}

// FreshnessScoreNEQ applies the NEQ predicate on the "freshness_score" field.
func FreshnessScoreNEQ(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldFreshnessScore, v))
}

// FreshnessScoreIn applies the In predicate on the "freshness_score" field.
func FreshnessScoreIn(vs ...float64) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldFreshnessScore, vs...))
}

// FreshnessScoreNotIn applies the NotIn predicate on the "freshness_score" field.
func FreshnessScoreNotIn(vs ...float64) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldFreshnessScore, vs...))
}

// FreshnessScoreGT applies the GT predicate on the "freshness_score" field.
func FreshnessScoreGT(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldGT(FieldFreshnessScore, v))
}

// FreshnessScoreGTE applies the GTE predicate on the "freshness_score" field.
func FreshnessScoreGTE(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldGTE(FieldFreshnessScore, v))
}

// FreshnessScoreLT applies the LT predicate on the "freshness_score" field.
func FreshnessScoreLT(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldLT(FieldFreshnessScore, v))
}

// FreshnessScoreLTE applies the LTE predicate on the "freshness_score" field.
func FreshnessScoreLTE(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldLTE(FieldFreshnessScore, v))
}

// CorroborationCountEQ applies the EQ predicate on the "corroboration_count" field.
func CorroborationCountEQ(v int) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldCorroborationCount, v))
}

// CorroborationCountNEQ applies the NEQ predicate on the "corroboration_count" field.
func CorroborationCountNEQ(v int) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldCorroborationCount, v))
}

// CorroborationCountIn applies the In predicate on the "corroboration_count" field.
func CorroborationCountIn(vs ...int) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldCorroborationCount, vs...))
}

// CorroborationCountNotIn applies the NotIn predicate on the "corroboration_count" field.
func CorroborationCountNotIn(vs ...int) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldCorroborationCount, vs...))
}

// CorroborationCountGT applies the GT predicate on the "corroboration_count" field.
func CorroborationCountGT(v int) predicate.Signal {
	return predicate.Signal(sql.FieldGT(FieldCorroborationCount, v))
}

// CorroborationCountGTE applies the GTE predicate on the "corroboration_count" field.
func CorroborationCountGTE(v int) predicate.Signal {
	return predicate.Signal(sql.FieldGTE(FieldCorroborationCount, v))
}

// CorroborationCountLT applies the LT predicate on the "corroboration_count" field.
func CorroborationCountLT(v int) predicate.Signal {
	return predicate.Signal(sql.FieldLT(FieldCorroborationCount, v))
}

// CorroborationCountLTE applies the LTE predicate on the "corroboration_count" field.
func CorroborationCountLTE(v int) predicate.Signal {
	return predicate.Signal(sql.FieldLTE(FieldCorroborationCount, v))
}

// LatEQ applies the EQ predicate on the "lat" field.
func LatEQ(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldLat, v))
}

// LatNEQ applies the NEQ predicate on the "lat" field.
func LatNEQ(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldLat, v))
}

// LatIn applies the In predicate on the "lat" field.
func LatIn(vs ...float64) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldLat, vs...))
}

// LatNotIn applies the NotIn predicate on the "lat" field.
func LatNotIn(vs ...float64) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldLat, vs...))
}

// LatGT applies the GT predicate on the "lat" field.
func LatGT(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldGT(FieldLat, v))
}

// LatGTE applies the GTE predicate on the "lat" field.
func LatGTE(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldGTE(FieldLat, v))
}

// LatLT applies the LT predicate on the "lat" field.
func LatLT(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldLT(FieldLat, v))
}

// LatLTE applies the LTE predicate on the "lat" field.
func LatLTE(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldLTE(FieldLat, v))
}

// LatIsNil applies the IsNil predicate on the "lat" field.
func LatIsNil() predicate.Signal {
	return predicate.Signal(sql.FieldIsNull(FieldLat))
}

// LatNotNil applies the NotNil predicate on the "lat" field.
func LatNotNil() predicate.Signal {
	return predicate.Signal(sql.FieldNotNull(FieldLat))
}

// LngEQ applies the EQ predicate on the "lng" field.
func LngEQ(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldLng, v))
}

// LngNEQ applies the NEQ predicate on the "lng" field.
func LngNEQ(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldLng, v))
}

// LngIn applies the In predicate on the "lng" field.
func LngIn(vs ...float64) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldLng, vs...))
}

// LngNotIn applies the NotIn predicate on the "lng" field.
func LngNotIn(vs ...float64) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldLng, vs...))
}

// LngGT applies the GT predicate on the "lng" field.
func LngGT(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldGT(FieldLng, v))
}

// LngGTE applies the GTE predicate on the "lng" field.
func LngGTE(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldGTE(FieldLng, v))
}

// LngLT applies the LT predicate on the "lng" field.
func LngLT(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldLT(FieldLng, v))
}

// LngLTE applies the LTE predicate on the "lng" field.
func LngLTE(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldLTE(FieldLng, v))
}

// LngIsNil applies the IsNil predicate on the "lng" field.
func LngIsNil() predicate.Signal {
	return predicate.Signal(sql.FieldIsNull(FieldLng))
}

// LngNotNil applies the NotNil predicate on the "lng" field.
func LngNotNil() predicate.Signal {
	return predicate.Signal(sql.FieldNotNull(FieldLng))
}

// GeoPrecisionEQ applies the EQ predicate on the "geo_precision" field.
func GeoPrecisionEQ(v GeoPrecision) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldGeoPrecision, v))
}

// GeoPrecisionNEQ applies the NEQ predicate on the "geo_precision" field.
func GeoPrecisionNEQ(v GeoPrecision) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldGeoPrecision, v))
}

// GeoPrecisionIn applies the In predicate on the "geo_precision" field.
func GeoPrecisionIn(vs ...GeoPrecision) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldGeoPrecision, vs...))
}

// GeoPrecisionNotIn applies the NotIn predicate on the "geo_precision" field.
func GeoPrecisionNotIn(vs ...GeoPrecision) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldGeoPrecision, vs...))
}

// GeoPrecisionIsNil applies the IsNil predicate on the "geo_precision" field.
func GeoPrecisionIsNil() predicate.Signal {
	return predicate.Signal(sql.FieldIsNull(FieldGeoPrecision))
}

// GeoPrecisionNotNil applies the NotNil predicate on the "geo_precision" field.
func GeoPrecisionNotNil() predicate.Signal {
	return predicate.Signal(sql.FieldNotNull(FieldGeoPrecision))
}

// LocationNameEQ applies the EQ predicate on the "location_name" field.
func LocationNameEQ(v string) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldLocationName, v))
}

// LocationNameNEQ applies the NEQ predicate on the "location_name" field.
func LocationNameNEQ(v string) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldLocationName, v))
}

// LocationNameIn applies the In predicate on the "location_name" field.
func LocationNameIn(vs ...string) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldLocationName, vs...))
}

// LocationNameNotIn applies the NotIn predicate on the "location_name" field.
func LocationNameNotIn(vs ...string) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldLocationName, vs...))
}

// LocationNameGT applies the GT predicate on the "location_name" field.
func LocationNameGT(v string) predicate.Signal {
	return predicate.Signal(sql.FieldGT(FieldLocationName, v))
}

// LocationNameGTE applies the GTE predicate on the "location_name" field.
func LocationNameGTE(v string) predicate.Signal {
	return predicate.Signal(sql.FieldGTE(FieldLocationName, v))
}

// LocationNameLT applies the LT predicate on the "location_name" field.
func LocationNameLT(v string) predicate.Signal {
	return predicate.Signal(sql.FieldLT(FieldLocationName, v))
}

// LocationNameLTE applies the LTE predicate on the "location_name" field.
func LocationNameLTE(v string) predicate.Signal {
	return predicate.Signal(sql.FieldLTE(FieldLocationName, v))
}

// LocationNameContains applies the Contains predicate on the "location_name" field.
func LocationNameContains(v string) predicate.Signal {
	return predicate.Signal(sql.FieldContains(FieldLocationName, v))
}

// LocationNameHasPrefix applies the HasPrefix predicate on the "location_name" field.
func LocationNameHasPrefix(v string) predicate.Signal {
	return predicate.Signal(sql.FieldHasPrefix(FieldLocationName, v))
}

// LocationNameHasSuffix applies the HasSuffix predicate on the "location_name" field.
func LocationNameHasSuffix(v string) predicate.Signal {
	return predicate.Signal(sql.FieldHasSuffix(FieldLocationName, v))
}

// LocationNameIsNil applies the IsNil predicate on the "location_name" field.
func LocationNameIsNil() predicate.Signal {
	return predicate.Signal(sql.FieldIsNull(FieldLocationName))
}

// LocationNameNotNil applies the NotNil predicate on the "location_name" field.
func LocationNameNotNil() predicate.Signal {
	return predicate.Signal(sql.FieldNotNull(FieldLocationName))
}

// LocationNameEqualFold applies the EqualFold predicate on the "location_name" field.
func LocationNameEqualFold(v string) predicate.Signal {
	return predicate.Signal(sql.FieldEqualFold(FieldLocationName, v))
}

// LocationNameContainsFold applies the ContainsFold predicate on the "location_name" field.
func LocationNameContainsFold(v string) predicate.Signal {
	return predicate.Signal(sql.FieldContainsFold(FieldLocationName, v))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.Signal {
	return predicate.Signal(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.Signal {
	return predicate.Signal(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.Signal {
	return predicate.Signal(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.Signal {
	return predicate.Signal(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.Signal {
	return predicate.Signal(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.Signal {
	return predicate.Signal(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.Signal {
	return predicate.Signal(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.Signal {
	return predicate.Signal(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.Signal {
	return predicate.Signal(sql.FieldContainsFold(FieldSourceURL, v))
}

// ExtractedAtEQ applies the EQ predicate on the "extracted_at" field.
func ExtractedAtEQ(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldExtractedAt, v))
}

// ExtractedAtNEQ applies the NEQ predicate on the "extracted_at" field.
func ExtractedAtNEQ(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldExtractedAt, v))
}

// ExtractedAtIn applies the In predicate on the "extracted_at" field.
func ExtractedAtIn(vs ...time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldExtractedAt, vs...))
}

// ExtractedAtNotIn applies the NotIn predicate on the "extracted_at" field.
func ExtractedAtNotIn(vs ...time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldExtractedAt, vs...))
}

// ExtractedAtGT applies the GT predicate on the "extracted_at" field.
func ExtractedAtGT(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldGT(FieldExtractedAt, v))
}

// ExtractedAtGTE applies the GTE predicate on the "extracted_at" field.
func ExtractedAtGTE(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldGTE(FieldExtractedAt, v))
}

// ExtractedAtLT applies the LT predicate on the "extracted_at" field.
func ExtractedAtLT(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldLT(FieldExtractedAt, v))
}

// ExtractedAtLTE applies the LTE predicate on the "extracted_at" field.
func ExtractedAtLTE(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldLTE(FieldExtractedAt, v))
}

// LastConfirmedActiveEQ applies the EQ predicate on the "last_confirmed_active" field.
func LastConfirmedActiveEQ(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldLastConfirmedActive, v))
}

// LastConfirmedActiveNEQ applies the NEQ predicate on the "last_confirmed_active" field.
func LastConfirmedActiveNEQ(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldLastConfirmedActive, v))
}

// LastConfirmedActiveIn applies the In predicate on the "last_confirmed_active" field.
func LastConfirmedActiveIn(vs ...time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldLastConfirmedActive, vs...))
}

// LastConfirmedActiveNotIn applies the NotIn predicate on the "last_confirmed_active" field.
func LastConfirmedActiveNotIn(vs ...time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldLastConfirmedActive, vs...))
}

// LastConfirmedActiveGT applies the GT predicate on the "last_confirmed_active" field.
func LastConfirmedActiveGT(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldGT(FieldLastConfirmedActive, v))
}

// LastConfirmedActiveGTE applies the GTE predicate on the "last_confirmed_active" field.
func LastConfirmedActiveGTE(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldGTE(FieldLastConfirmedActive, v))
}

// LastConfirmedActiveLT applies the LT predicate on the "last_confirmed_active" field.
func LastConfirmedActiveLT(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldLT(FieldLastConfirmedActive, v))
}

// LastConfirmedActiveLTE applies the LTE predicate on the "last_confirmed_active" field.
func LastConfirmedActiveLTE(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldLTE(FieldLastConfirmedActive, v))
}

// AudienceRolesIsNil applies the IsNil predicate on the "audience_roles" field.
func AudienceRolesIsNil() predicate.Signal {
	return predicate.Signal(sql.FieldIsNull(FieldAudienceRoles))
}

// AudienceRolesNotNil applies the NotNil predicate on the "audience_roles" field.
func AudienceRolesNotNil() predicate.Signal {
	return predicate.Signal(sql.FieldNotNull(FieldAudienceRoles))
}

// SourceDiversityEQ applies the EQ predicate on the "source_diversity" field.
func SourceDiversityEQ(v int) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldSourceDiversity, v))
}

// SourceDiversityNEQ applies the NEQ predicate on the "source_diversity" field.
func SourceDiversityNEQ(v int) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldSourceDiversity, v))
}

// SourceDiversityIn applies the In predicate on the "source_diversity" field.
func SourceDiversityIn(vs ...int) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldSourceDiversity, vs...))
}

// SourceDiversityNotIn applies the NotIn predicate on the "source_diversity" field.
func SourceDiversityNotIn(vs ...int) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldSourceDiversity, vs...))
}

// SourceDiversityGT applies the GT predicate on the "source_diversity" field.
func SourceDiversityGT(v int) predicate.Signal {
	return predicate.Signal(sql.FieldGT(FieldSourceDiversity, v))
}

// SourceDiversityGTE applies the GTE predicate on the "source_diversity" field.
func SourceDiversityGTE(v int) predicate.Signal {
	return predicate.Signal(sql.FieldGTE(FieldSourceDiversity, v))
}

// SourceDiversityLT applies the LT predicate on the "source_diversity" field.
func SourceDiversityLT(v int) predicate.Signal {
	return predicate.Signal(sql.FieldLT(FieldSourceDiversity, v))
}

// SourceDiversityLTE applies the LTE predicate on the "source_diversity" field.
func SourceDiversityLTE(v int) predicate.Signal {
	return predicate.Signal(sql.FieldLTE(FieldSourceDiversity, v))
}

// ExternalRatioEQ applies the EQ predicate on the "external_ratio" field.
func ExternalRatioEQ(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldExternalRatio, v))
}

// ExternalRatioNEQ applies the NEQ predicate on the "external_ratio" field.
func ExternalRatioNEQ(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldExternalRatio, v))
}

// ExternalRatioIn applies the In predicate on the "external_ratio" field.
func ExternalRatioIn(vs ...float64) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldExternalRatio, vs...))
}

// ExternalRatioNotIn applies the NotIn predicate on the "external_ratio" field.
func ExternalRatioNotIn(vs ...float64) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldExternalRatio, vs...))
}

// ExternalRatioGT applies the GT predicate on the "external_ratio" field.
func ExternalRatioGT(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldGT(FieldExternalRatio, v))
}

// ExternalRatioGTE applies the GTE predicate on the "external_ratio" field.
func ExternalRatioGTE(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldGTE(FieldExternalRatio, v))
}

// ExternalRatioLT applies the LT predicate on the "external_ratio" field.
func ExternalRatioLT(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldLT(FieldExternalRatio, v))
}

// ExternalRatioLTE applies the LTE predicate on the "external_ratio" field.
func ExternalRatioLTE(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldLTE(FieldExternalRatio, v))
}

// CauseHeatEQ applies the EQ predicate on the "cause_heat" field.
func CauseHeatEQ(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldCauseHeat, v))
}

// CauseHeatNEQ applies the NEQ predicate on the "cause_heat" field.
func CauseHeatNEQ(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldCauseHeat, v))
}

// CauseHeatIn applies the In predicate on the "cause_heat" field.
func CauseHeatIn(vs ...float64) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldCauseHeat, vs...))
}

// CauseHeatNotIn applies the NotIn predicate on the "cause_heat" field.
func CauseHeatNotIn(vs ...float64) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldCauseHeat, vs...))
}

// CauseHeatGT applies the GT predicate on the "cause_heat" field.
func CauseHeatGT(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldGT(FieldCauseHeat, v))
}

// CauseHeatGTE applies the GTE predicate on the "cause_heat" field.
func CauseHeatGTE(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldGTE(FieldCauseHeat, v))
}

// CauseHeatLT applies the LT predicate on the "cause_heat" field.
func CauseHeatLT(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldLT(FieldCauseHeat, v))
}

// CauseHeatLTE applies the LTE predicate on the "cause_heat" field.
func CauseHeatLTE(v float64) predicate.Signal {
	return predicate.Signal(sql.FieldLTE(FieldCauseHeat, v))
}

// MentionedActorsIsNil applies the IsNil predicate on the "mentioned_actors" field.
func MentionedActorsIsNil() predicate.Signal {
	return predicate.Signal(sql.FieldIsNull(FieldMentionedActors))
}

// MentionedActorsNotNil applies the NotNil predicate on the "mentioned_actors" field.
func MentionedActorsNotNil() predicate.Signal {
	return predicate.Signal(sql.FieldNotNull(FieldMentionedActors))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.Signal {
	return predicate.Signal(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.Signal {
	return predicate.Signal(sql.FieldNotNull(FieldEmbedding))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityIsNil applies the IsNil predicate on the "severity" field.
func SeverityIsNil() predicate.Signal {
	return predicate.Signal(sql.FieldIsNull(FieldSeverity))
}

// SeverityNotNil applies the NotNil predicate on the "severity" field.
func SeverityNotNil() predicate.Signal {
	return predicate.Signal(sql.FieldNotNull(FieldSeverity))
}

// ExpiredAtEQ applies the EQ predicate on the "expired_at" field.
func ExpiredAtEQ(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldExpiredAt, v))
}

// ExpiredAtNEQ applies the NEQ predicate on the "expired_at" field.
func ExpiredAtNEQ(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldExpiredAt, v))
}

// ExpiredAtIn applies the In predicate on the "expired_at" field.
func ExpiredAtIn(vs ...time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldExpiredAt, vs...))
}

// ExpiredAtNotIn applies the NotIn predicate on the "expired_at" field.
func ExpiredAtNotIn(vs ...time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldExpiredAt, vs...))
}

// ExpiredAtGT applies the GT predicate on the "expired_at" field.
func ExpiredAtGT(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldGT(FieldExpiredAt, v))
}

// ExpiredAtGTE applies the GTE predicate on the "expired_at" field.
func ExpiredAtGTE(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldGTE(FieldExpiredAt, v))
}

// ExpiredAtLT applies the LT predicate on the "expired_at" field.
func ExpiredAtLT(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldLT(FieldExpiredAt, v))
}

// ExpiredAtLTE applies the LTE predicate on the "expired_at" field.
func ExpiredAtLTE(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldLTE(FieldExpiredAt, v))
}

// ExpiredAtIsNil applies the IsNil predicate on the "expired_at" field.
func ExpiredAtIsNil() predicate.Signal {
	return predicate.Signal(sql.FieldIsNull(FieldExpiredAt))
}

// ExpiredAtNotNil applies the NotNil predicate on the "expired_at" field.
func ExpiredAtNotNil() predicate.Signal {
	return predicate.Signal(sql.FieldNotNull(FieldExpiredAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Signal {
	return predicate.Signal(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasEvidence applies the HasEdge predicate on the "evidence" edge.
func HasEvidence() predicate.Signal {
	return predicate.Signal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, EvidenceTable, EvidencePrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvidenceWith applies the HasEdge predicate on the "evidence" edge with a given conditions (other predicates).
func HasEvidenceWith(preds ...predicate.Evidence) predicate.Signal {
	return predicate.Signal(func(s *sql.Selector) {
		step := newEvidenceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMentions applies the HasEdge predicate on the "mentions" edge.
func HasMentions() predicate.Signal {
	return predicate.Signal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, MentionsTable, MentionsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMentionsWith applies the HasEdge predicate on the "mentions" edge with a given conditions (other predicates).
func HasMentionsWith(preds ...predicate.Actor) predicate.Signal {
	return predicate.Signal(func(s *sql.Selector) {
		step := newMentionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuthors applies the HasEdge predicate on the "authors" edge.
func HasAuthors() predicate.Signal {
	return predicate.Signal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, AuthorsTable, AuthorsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuthorsWith applies the HasEdge predicate on the "authors" edge with a given conditions (other predicates).
func HasAuthorsWith(preds ...predicate.Actor) predicate.Signal {
	return predicate.Signal(func(s *sql.Selector) {
		step := newAuthorsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Signal) predicate.Signal {
	return predicate.Signal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Signal) predicate.Signal {
	return predicate.Signal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Signal) predicate.Signal {
	return predicate.Signal(sql.NotPredicates(p))
}
