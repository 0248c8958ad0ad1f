// Code generated by ent, DO NOT EDIT.

package actor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fourthplaces/rootsignal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Actor {
	return predicate.Actor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Actor {
	return predicate.Actor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Actor {
	return predicate.Actor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Actor {
	return predicate.Actor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Actor {
	return predicate.Actor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Actor {
	return predicate.Actor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Actor {
	return predicate.Actor(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Actor {
	return predicate.Actor(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Actor {
	return predicate.Actor(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldName, v))
}

// NameKey applies equality check predicate on the "name_key" field. It's identical to NameKeyEQ.
func NameKey(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldNameKey, v))
}

// CanonicalURL applies equality check predicate on the "canonical_url" field. It's identical to CanonicalURLEQ.
func CanonicalURL(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldCanonicalURL, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldKind, v))
}

// Region applies equality check predicate on the "region" field. It's identical to RegionEQ.
func Region(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldRegion, v))
}

// SignalCount applies equality check predicate on the "signal_count" field. It's identical to SignalCountEQ.
func SignalCount(v int) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldSignalCount, v))
}

// Lat applies equality check predicate on the "lat" field. It's identical to LatEQ.
func Lat(v float64) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldLat, v))
}

// Lng applies equality check predicate on the "lng" field. It's identical to LngEQ.
func Lng(v float64) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldLng, v))
}

// FirstSeen applies equality check predicate on the "first_seen" field. It's identical to FirstSeenEQ.
func FirstSeen(v time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldFirstSeen, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldLastSeen, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Actor {
	return predicate.Actor(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Actor {
	return predicate.Actor(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Actor {
	return predicate.Actor(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Actor {
	return predicate.Actor(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Actor {
	return predicate.Actor(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Actor {
	return predicate.Actor(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Actor {
	return predicate.Actor(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Actor {
	return predicate.Actor(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Actor {
	return predicate.Actor(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Actor {
	return predicate.Actor(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Actor {
	return predicate.Actor(sql.FieldContainsFold(FieldName, v))
}

// NameKeyEQ applies the EQ predicate on the "name_key" field.
func NameKeyEQ(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldNameKey, v))
}

// NameKeyNEQ applies the NEQ predicate on the "name_key" field.
func NameKeyNEQ(v string) predicate.Actor {
	return predicate.Actor(sql.FieldNEQ(FieldNameKey, v))
}

// NameKeyIn applies the In predicate on the "name_key" field.
func NameKeyIn(vs ...string) predicate.Actor {
	return predicate.Actor(sql.FieldIn(FieldNameKey, vs...))
}

// NameKeyNotIn applies the NotIn predicate on the "name_key" field.
func NameKeyNotIn(vs ...string) predicate.Actor {
	return predicate.Actor(sql.FieldNotIn(FieldNameKey, vs...))
}

// NameKeyGT applies the GT predicate on the "name_key" field.
func NameKeyGT(v string) predicate.Actor {
	return predicate.Actor(sql.FieldGT(FieldNameKey, v))
}

// NameKeyGTE applies the GTE predicate on the "name_key" field.
func NameKeyGTE(v string) predicate.Actor {
	return predicate.Actor(sql.FieldGTE(FieldNameKey, v))
}

// NameKeyLT applies the LT predicate on the "name_key" field.
func NameKeyLT(v string) predicate.Actor {
	return predicate.Actor(sql.FieldLT(FieldNameKey, v))
}

// NameKeyLTE applies the LTE predicate on the "name_key" field.
func NameKeyLTE(v string) predicate.Actor {
	return predicate.Actor(sql.FieldLTE(FieldNameKey, v))
}

// NameKeyContains applies the Contains predicate on the "name_key" field.
func NameKeyContains(v string) predicate.Actor {
	return predicate.Actor(sql.FieldContains(FieldNameKey, v))
}

// NameKeyHasPrefix applies the HasPrefix predicate on the "name_key" field.
func NameKeyHasPrefix(v string) predicate.Actor {
	return predicate.Actor(sql.FieldHasPrefix(FieldNameKey, v))
}

// NameKeyHasSuffix applies the HasSuffix predicate on the "name_key" field.
func NameKeyHasSuffix(v string) predicate.Actor {
	return predicate.Actor(sql.FieldHasSuffix(FieldNameKey, v))
}

// NameKeyEqualFold applies the EqualFold predicate on the "name_key" field.
func NameKeyEqualFold(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEqualFold(FieldNameKey, v))
}

// NameKeyContainsFold applies the ContainsFold predicate on the "name_key" field.
func NameKeyContainsFold(v string) predicate.Actor {
	return predicate.Actor(sql.FieldContainsFold(FieldNameKey, v))
}

// CanonicalURLEQ applies the EQ predicate on the "canonical_url" field.
func CanonicalURLEQ(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldCanonicalURL, v))
}

// CanonicalURLNEQ applies the NEQ predicate on the "canonical_url" field.
func CanonicalURLNEQ(v string) predicate.Actor {
	return predicate.Actor(sql.FieldNEQ(FieldCanonicalURL, v))
}

// CanonicalURLIn applies the In predicate on the "canonical_url" field.
func CanonicalURLIn(vs ...string) predicate.Actor {
	return predicate.Actor(sql.FieldIn(FieldCanonicalURL, vs...))
}

// CanonicalURLNotIn applies the NotIn predicate on the "canonical_url" field.
func CanonicalURLNotIn(vs ...string) predicate.Actor {
	return predicate.Actor(sql.FieldNotIn(FieldCanonicalURL, vs...))
}

// CanonicalURLGT applies the GT predicate on the "canonical_url" field.
func CanonicalURLGT(v string) predicate.Actor {
	return predicate.Actor(sql.FieldGT(FieldCanonicalURL, v))
}

// CanonicalURLGTE applies the GTE predicate on the "canonical_url" field.
func CanonicalURLGTE(v string) predicate.Actor {
	return predicate.Actor(sql.FieldGTE(FieldCanonicalURL, v))
}

// CanonicalURLLT applies the LT predicate on the "canonical_url" field.
func CanonicalURLLT(v string) predicate.Actor {
	return predicate.Actor(sql.FieldLT(FieldCanonicalURL, v))
}

// CanonicalURLLTE applies the LTE predicate on the "canonical_url" field.
func CanonicalURLLTE(v string) predicate.Actor {
	return predicate.Actor(sql.FieldLTE(FieldCanonicalURL, v))
}

// CanonicalURLContains applies the Contains predicate on the "canonical_url" field.
func CanonicalURLContains(v string) predicate.Actor {
	return predicate.Actor(sql.FieldContains(FieldCanonicalURL, v))
}

// CanonicalURLHasPrefix applies the HasPrefix predicate on the "canonical_url" field.
func CanonicalURLHasPrefix(v string) predicate.Actor {
	return predicate.Actor(sql.FieldHasPrefix(FieldCanonicalURL, v))
}

// CanonicalURLHasSuffix applies the HasSuffix predicate on the "canonical_url" field.
func CanonicalURLHasSuffix(v string) predicate.Actor {
	return predicate.Actor(sql.FieldHasSuffix(FieldCanonicalURL, v))
}

// CanonicalURLIsNil applies the IsNil predicate on the "canonical_url" field.
func CanonicalURLIsNil() predicate.Actor {
	return predicate.Actor(sql.FieldIsNull(FieldCanonicalURL))
}

// CanonicalURLNotNil applies the NotNil predicate on the "canonical_url" field.
func CanonicalURLNotNil() predicate.Actor {
	return predicate.Actor(sql.FieldNotNull(FieldCanonicalURL))
}

// CanonicalURLEqualFold applies the EqualFold predicate on the "canonical_url" field.
func CanonicalURLEqualFold(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEqualFold(FieldCanonicalURL, v))
}

// CanonicalURLContainsFold applies the ContainsFold predicate on the "canonical_url" field.
func CanonicalURLContainsFold(v string) predicate.Actor {
	return predicate.Actor(sql.FieldContainsFold(FieldCanonicalURL, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.Actor {
	return predicate.Actor(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.Actor {
	return predicate.Actor(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.Actor {
	return predicate.Actor(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.Actor {
	return predicate.Actor(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.Actor {
	return predicate.Actor(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.Actor {
	return predicate.Actor(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.Actor {
	return predicate.Actor(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.Actor {
	return predicate.Actor(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.Actor {
	return predicate.Actor(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.Actor {
	return predicate.Actor(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.Actor {
	return predicate.Actor(sql.FieldContainsFold(FieldKind, v))
}

// RegionEQ applies the EQ predicate on the "region" field.
func RegionEQ(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldRegion, v))
}

// RegionNEQ applies the NEQ predicate on the "region" field.
func RegionNEQ(v string) predicate.Actor {
	return predicate.Actor(sql.FieldNEQ(FieldRegion, v))
}

// RegionIn applies the In predicate on the "region" field.
func RegionIn(vs ...string) predicate.Actor {
	return predicate.Actor(sql.FieldIn(FieldRegion, vs...))
}

// RegionNotIn applies the NotIn predicate on the "region" field.
func RegionNotIn(vs ...string) predicate.Actor {
	return predicate.Actor(sql.FieldNotIn(FieldRegion, vs...))
}

// RegionGT applies the GT predicate on the "region" field.
func RegionGT(v string) predicate.Actor {
	return predicate.Actor(sql.FieldGT(FieldRegion, v))
}

// RegionGTE applies the GTE predicate on the "region" field.
func RegionGTE(v string) predicate.Actor {
	return predicate.Actor(sql.FieldGTE(FieldRegion, v))
}

// RegionLT applies the LT predicate on the "region" field.
func RegionLT(v string) predicate.Actor {
	return predicate.Actor(sql.FieldLT(FieldRegion, v))
}

// RegionLTE applies the LTE predicate on the "region" field.
func RegionLTE(v string) predicate.Actor {
	return predicate.Actor(sql.FieldLTE(FieldRegion, v))
}

// RegionContains applies the Contains predicate on the "region" field.
func RegionContains(v string) predicate.Actor {
	return predicate.Actor(sql.FieldContains(FieldRegion, v))
}

// RegionHasPrefix applies the HasPrefix predicate on the "region" field.
func RegionHasPrefix(v string) predicate.Actor {
	return predicate.Actor(sql.FieldHasPrefix(FieldRegion, v))
}

// RegionHasSuffix applies the HasSuffix predicate on the "region" field.
func RegionHasSuffix(v string) predicate.Actor {
	return predicate.Actor(sql.FieldHasSuffix(FieldRegion, v))
}

// RegionEqualFold applies the EqualFold predicate on the "region" field.
func RegionEqualFold(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEqualFold(FieldRegion, v))
}

// RegionContainsFold applies the ContainsFold predicate on the "region" field.
func RegionContainsFold(v string) predicate.Actor {
	return predicate.Actor(sql.FieldContainsFold(FieldRegion, v))
}

// SignalCountEQ applies the EQ predicate on the "signal_count" field.
func SignalCountEQ(v int) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldSignalCount, v))
}

// SignalCountNEQ applies the NEQ predicate on the "signal_count" field.
func SignalCountNEQ(v int) predicate.Actor {
	return predicate.Actor(sql.FieldNEQ(FieldSignalCount, v))
}

// SignalCountIn applies the In predicate on the "signal_count" field.
func SignalCountIn(vs ...int) predicate.Actor {
	return predicate.Actor(sql.FieldIn(FieldSignalCount, vs...))
}

// SignalCountNotIn applies the NotIn predicate on the "signal_count" field.
func SignalCountNotIn(vs ...int) predicate.Actor {
	return predicate.Actor(sql.FieldNotIn(FieldSignalCount, vs...))
}

// SignalCountGT applies the GT predicate on the "signal_count" field.
func SignalCountGT(v int) predicate.Actor {
	return predicate.Actor(sql.FieldGT(FieldSignalCount, v))
}

// SignalCountGTE applies the GTE predicate on the "signal_count" field.
func SignalCountGTE(v int) predicate.Actor {
	return predicate.Actor(sql.FieldGTE(FieldSignalCount, v))
}

// SignalCountLT applies the LT predicate on the "signal_count" field.
func SignalCountLT(v int) predicate.Actor {
	return predicate.Actor(sql.FieldLT(FieldSignalCount, v))
}

// SignalCountLTE applies the LTE predicate on the "signal_count" field.
func SignalCountLTE(v int) predicate.Actor {
	return predicate.Actor(sql.FieldLTE(FieldSignalCount, v))
}

// LatEQ applies the EQ predicate on the "lat" field.
func LatEQ(v float64) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldLat, v))
}

// LatNEQ applies the NEQ predicate on the "lat" field.
func LatNEQ(v float64) predicate.Actor {
	return predicate.Actor(sql.FieldNEQ(FieldLat, v))
}

// LatIn applies the In predicate on the "lat" field.
func LatIn(vs ...float64) predicate.Actor {
	return predicate.Actor(sql.FieldIn(FieldLat, vs...))
}

// LatNotIn applies the NotIn predicate on the "lat" field.
func LatNotIn(vs ...float64) predicate.Actor {
	return predicate.Actor(sql.FieldNotIn(FieldLat, vs...))
}

// LatGT applies the GT predicate on the "lat" field.
func LatGT(v float64) predicate.Actor {
	return predicate.Actor(sql.FieldGT(FieldLat, v))
}

// LatGTE applies the GTE predicate on the "lat" field.
func LatGTE(v float64) predicate.Actor {
	return predicate.Actor(sql.FieldGTE(FieldLat, v))
}

// LatLT applies the LT predicate on the "lat" field.
func LatLT(v float64) predicate.Actor {
	return predicate.Actor(sql.FieldLT(FieldLat, v))
}

// LatLTE applies the LTE predicate on the "lat" field.
func LatLTE(v float64) predicate.Actor {
	return predicate.Actor(sql.FieldLTE(FieldLat, v))
}

// LatIsNil applies the IsNil predicate on the "lat" field.
func LatIsNil() predicate.Actor {
	return predicate.Actor(sql.FieldIsNull(FieldLat))
}

// LatNotNil applies the NotNil predicate on the "lat" field.
func LatNotNil() predicate.Actor {
	return predicate.Actor(sql.FieldNotNull(FieldLat))
}

// LngEQ applies the EQ predicate on the "lng" field.
func LngEQ(v float64) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldLng, v))
}

// LngNEQ applies the NEQ predicate on the "lng" field.
func LngNEQ(v float64) predicate.Actor {
	return predicate.Actor(sql.FieldNEQ(FieldLng, v))
}

// LngIn applies the In predicate on the "lng" field.
func LngIn(vs ...float64) predicate.Actor {
	return predicate.Actor(sql.FieldIn(FieldLng, vs...))
}

// LngNotIn applies the NotIn predicate on the "lng" field.
func LngNotIn(vs ...float64) predicate.Actor {
	return predicate.Actor(sql.FieldNotIn(FieldLng, vs...))
}

// LngGT applies the GT predicate on the "lng" field.
func LngGT(v float64) predicate.Actor {
	return predicate.Actor(sql.FieldGT(FieldLng, v))
}

// LngGTE applies the GTE predicate on the "lng" field.
func LngGTE(v float64) predicate.Actor {
	return predicate.Actor(sql.FieldGTE(FieldLng, v))
}

// LngLT applies the LT predicate on the "lng" field.
func LngLT(v float64) predicate.Actor {
	return predicate.Actor(sql.FieldLT(FieldLng, v))
}

// LngLTE applies the LTE predicate on the "lng" field.
func LngLTE(v float64) predicate.Actor {
	return predicate.Actor(sql.FieldLTE(FieldLng, v))
}

// LngIsNil applies the IsNil predicate on the "lng" field.
func LngIsNil() predicate.Actor {
	return predicate.Actor(sql.FieldIsNull(FieldLng))
}

// LngNotNil applies the NotNil predicate on the "lng" field.
func LngNotNil() predicate.Actor {
	return predicate.Actor(sql.FieldNotNull(FieldLng))
}

// FirstSeenEQ applies the EQ predicate on the "first_seen" field.
func FirstSeenEQ(v time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldFirstSeen, v))
}

// FirstSeenNEQ applies the NEQ predicate on the "first_seen" field.
func FirstSeenNEQ(v time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldNEQ(FieldFirstSeen, v))
}

// FirstSeenIn applies the In predicate on the "first_seen" field.
func FirstSeenIn(vs ...time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldIn(FieldFirstSeen, vs...))
}

// FirstSeenNotIn applies the NotIn predicate on the "first_seen" field.
func FirstSeenNotIn(vs ...time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldNotIn(FieldFirstSeen, vs...))
}

// FirstSeenGT applies the GT predicate on the "first_seen" field.
func FirstSeenGT(v time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldGT(FieldFirstSeen, v))
}

// FirstSeenGTE applies the GTE predicate on the "first_seen" field.
func FirstSeenGTE(v time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldGTE(FieldFirstSeen, v))
}

// FirstSeenLT applies the LT predicate on the "first_seen" field.
func FirstSeenLT(v time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldLT(FieldFirstSeen, v))
}

// FirstSeenLTE applies the LTE predicate on the "first_seen" field.
func FirstSeenLTE(v time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldLTE(FieldFirstSeen, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldLTE(FieldLastSeen, v))
}

// LastSeenIsNil applies the IsNil predicate on the "last_seen" field.
func LastSeenIsNil() predicate.Actor {
	return predicate.Actor(sql.FieldIsNull(FieldLastSeen))
}

// LastSeenNotNil applies the NotNil predicate on the "last_seen" field.
func LastSeenNotNil() predicate.Actor {
	return predicate.Actor(sql.FieldNotNull(FieldLastSeen))
}

// HasAuthored applies the HasEdge predicate on the "authored" edge.
func HasAuthored() predicate.Actor {
	return predicate.Actor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, AuthoredTable, AuthoredPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuthoredWith applies the HasEdge predicate on the "authored" edge with a given conditions (other predicates).
func HasAuthoredWith(preds ...predicate.Signal) predicate.Actor {
	return predicate.Actor(func(s *sql.Selector) {
		step := newAuthoredStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMentionedIn applies the HasEdge predicate on the "mentioned_in" edge.
func HasMentionedIn() predicate.Actor {
	return predicate.Actor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, MentionedInTable, MentionedInPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMentionedInWith applies the HasEdge predicate on the "mentioned_in" edge with a given conditions (other predicates).
func HasMentionedInWith(preds ...predicate.Signal) predicate.Actor {
	return predicate.Actor(func(s *sql.Selector) {
		step := newMentionedInStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Actor) predicate.Actor {
	return predicate.Actor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Actor) predicate.Actor {
	return predicate.Actor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Actor) predicate.Actor {
	return predicate.Actor(sql.NotPredicates(p))
}
