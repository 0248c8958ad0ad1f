// Code generated by ent, DO NOT EDIT.

package storedevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fourthplaces/rootsignal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldLTE(FieldID, id))
}

// Ts applies equality check predicate on the "ts" field. It's identical to TsEQ.
func Ts(v time.Time) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldEQ(FieldTs, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldEQ(FieldEventType, v))
}

// ParentSeq applies equality check predicate on the "parent_seq" field. It's identical to ParentSeqEQ.
func ParentSeq(v int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldEQ(FieldParentSeq, v))
}

// CausedBySeq applies equality check predicate on the "caused_by_seq" field. It's identical to CausedBySeqEQ.
func CausedBySeq(v int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldEQ(FieldCausedBySeq, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldEQ(FieldRunID, v))
}

// Actor applies equality check predicate on the "actor" field. It's identical to ActorEQ.
func Actor(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldEQ(FieldActor, v))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v []byte) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldEQ(FieldPayload, v))
}

// SchemaV applies equality check predicate on the "schema_v" field. It's identical to SchemaVEQ.
func SchemaV(v int) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldEQ(FieldSchemaV, v))
}

// TsEQ applies the EQ predicate on the "ts" field.
func TsEQ(v time.Time) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldEQ(FieldTs, v))
}

// TsNEQ applies the NEQ predicate on the "ts" field.
func TsNEQ(v time.Time) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldNEQ(FieldTs, v))
}

// TsIn applies the In predicate on the "ts" field.
func TsIn(vs ...time.Time) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldIn(FieldTs, vs...))
}

// TsNotIn applies the NotIn predicate on the "ts" field.
func TsNotIn(vs ...time.Time) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldNotIn(FieldTs, vs...))
}

// TsGT applies the GT predicate on the "ts" field.
func TsGT(v time.Time) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldGT(FieldTs, v))
}

// TsGTE applies the GTE predicate on the "ts" field.
func TsGTE(v time.Time) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldGTE(FieldTs, v))
}

// TsLT applies the LT predicate on the "ts" field.
func TsLT(v time.Time) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldLT(FieldTs, v))
}

// TsLTE applies the LTE predicate on the "ts" field.
func TsLTE(v time.Time) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldLTE(FieldTs, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldContainsFold(FieldEventType, v))
}

// ParentSeqEQ applies the EQ predicate on the "parent_seq" field.
func ParentSeqEQ(v int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldEQ(FieldParentSeq, v))
}

// ParentSeqNEQ applies the NEQ predicate on the "parent_seq" field.
func ParentSeqNEQ(v int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldNEQ(FieldParentSeq, v))
}

// ParentSeqIn applies the In predicate on the "parent_seq" field.
func ParentSeqIn(vs ...int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldIn(FieldParentSeq, vs...))
}

// ParentSeqNotIn applies the NotIn predicate on the "parent_seq" field.
func ParentSeqNotIn(vs ...int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldNotIn(FieldParentSeq, vs...))
}

// ParentSeqGT applies the GT predicate on the "parent_seq" field.
func ParentSeqGT(v int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldGT(FieldParentSeq, v))
}

// ParentSeqGTE applies the GTE predicate on the "parent_seq" field.
func ParentSeqGTE(v int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldGTE(FieldParentSeq, v))
}

// ParentSeqLT applies the LT predicate on the "parent_seq" field.
func ParentSeqLT(v int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldLT(FieldParentSeq, v))
}

// ParentSeqLTE applies the LTE predicate on the "parent_seq" field.
func ParentSeqLTE(v int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldLTE(FieldParentSeq, v))
}

// ParentSeqIsNil applies the IsNil predicate on the "parent_seq" field.
func ParentSeqIsNil() predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldIsNull(FieldParentSeq))
}

// ParentSeqNotNil applies the NotNil predicate on the "parent_seq" field.
func ParentSeqNotNil() predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldNotNull(FieldParentSeq))
}

// CausedBySeqEQ applies the EQ predicate on the "caused_by_seq" field.
func CausedBySeqEQ(v int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldEQ(FieldCausedBySeq, v))
}

// CausedBySeqNEQ applies the NEQ predicate on the "caused_by_seq" field.
func CausedBySeqNEQ(v int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldNEQ(FieldCausedBySeq, v))
}

// CausedBySeqIn applies the In predicate on the "caused_by_seq" field.
func CausedBySeqIn(vs ...int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldIn(FieldCausedBySeq, vs...))
}

// CausedBySeqNotIn applies the NotIn predicate on the "caused_by_seq" field.
func CausedBySeqNotIn(vs ...int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldNotIn(FieldCausedBySeq, vs...))
}

// CausedBySeqGT applies the GT predicate on the "caused_by_seq" field.
func CausedBySeqGT(v int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldGT(FieldCausedBySeq, v))
}

// CausedBySeqGTE applies the GTE predicate on the "caused_by_seq" field.
func CausedBySeqGTE(v int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldGTE(FieldCausedBySeq, v))
}

// CausedBySeqLT applies the LT predicate on the "caused_by_seq" field.
func CausedBySeqLT(v int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldLT(FieldCausedBySeq, v))
}

// CausedBySeqLTE applies the LTE predicate on the "caused_by_seq" field.
func CausedBySeqLTE(v int64) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldLTE(FieldCausedBySeq, v))
}

// CausedBySeqIsNil applies the IsNil predicate on the "caused_by_seq" field.
func CausedBySeqIsNil() predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldIsNull(FieldCausedBySeq))
}

// CausedBySeqNotNil applies the NotNil predicate on the "caused_by_seq" field.
func CausedBySeqNotNil() predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldNotNull(FieldCausedBySeq))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldContainsFold(FieldRunID, v))
}

// ActorEQ applies the EQ predicate on the "actor" field.
func ActorEQ(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldEQ(FieldActor, v))
}

// ActorNEQ applies the NEQ predicate on the "actor" field.
func ActorNEQ(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldNEQ(FieldActor, v))
}

// ActorIn applies the In predicate on the "actor" field.
func ActorIn(vs ...string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldIn(FieldActor, vs...))
}

// ActorNotIn applies the NotIn predicate on the "actor" field.
func ActorNotIn(vs ...string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldNotIn(FieldActor, vs...))
}

// ActorGT applies the GT predicate on the "actor" field.
func ActorGT(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldGT(FieldActor, v))
}

// ActorGTE applies the GTE predicate on the "actor" field.
func ActorGTE(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldGTE(FieldActor, v))
}

// ActorLT applies the LT predicate on the "actor" field.
func ActorLT(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldLT(FieldActor, v))
}

// ActorLTE applies the LTE predicate on the "actor" field.
func ActorLTE(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldLTE(FieldActor, v))
}

// ActorContains applies the Contains predicate on the "actor" field.
func ActorContains(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldContains(FieldActor, v))
}

// ActorHasPrefix applies the HasPrefix predicate on the "actor" field.
func ActorHasPrefix(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldHasPrefix(FieldActor, v))
}

// ActorHasSuffix applies the HasSuffix predicate on the "actor" field.
func ActorHasSuffix(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldHasSuffix(FieldActor, v))
}

// ActorIsNil applies the IsNil predicate on the "actor" field.
func ActorIsNil() predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldIsNull(FieldActor))
}

// ActorNotNil applies the NotNil predicate on the "actor" field.
func ActorNotNil() predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldNotNull(FieldActor))
}

// ActorEqualFold applies the EqualFold predicate on the "actor" field.
func ActorEqualFold(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldEqualFold(FieldActor, v))
}

// ActorContainsFold applies the ContainsFold predicate on the "actor" field.
func ActorContainsFold(v string) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldContainsFold(FieldActor, v))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v []byte) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v []byte) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...[]byte) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...[]byte) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v []byte) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v []byte) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v []byte) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v []byte) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldLTE(FieldPayload, v))
}

// SchemaVEQ applies the EQ predicate on the "schema_v" field.
func SchemaVEQ(v int) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldEQ(FieldSchemaV, v))
}

// SchemaVNEQ applies the NEQ predicate on the "schema_v" field.
func SchemaVNEQ(v int) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldNEQ(FieldSchemaV, v))
}

// SchemaVIn applies the In predicate on the "schema_v" field.
func SchemaVIn(vs ...int) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldIn(FieldSchemaV, vs...))
}

// SchemaVNotIn applies the NotIn predicate on the "schema_v" field.
func SchemaVNotIn(vs ...int) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldNotIn(FieldSchemaV, vs...))
}

// SchemaVGT applies the GT predicate on the "schema_v" field.
func SchemaVGT(v int) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldGT(FieldSchemaV, v))
}

// SchemaVGTE applies the GTE predicate on the "schema_v" field.
func SchemaVGTE(v int) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldGTE(FieldSchemaV, v))
}

// SchemaVLT applies the LT predicate on the "schema_v" field.
func SchemaVLT(v int) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldLT(FieldSchemaV, v))
}

// SchemaVLTE applies the LTE predicate on the "schema_v" field.
func SchemaVLTE(v int) predicate.StoredEvent {
	return predicate.StoredEvent(sql.FieldLTE(FieldSchemaV, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StoredEvent) predicate.StoredEvent {
	return predicate.StoredEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StoredEvent) predicate.StoredEvent {
	return predicate.StoredEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StoredEvent) predicate.StoredEvent {
	return predicate.StoredEvent(sql.NotPredicates(p))
}
