// Code generated by ent, DO NOT EDIT.

package storedevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the storedevent type in the database.
	Label = "stored_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "seq"
	// FieldTs holds the string denoting the ts field in the database.
	FieldTs = "ts"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldParentSeq holds the string denoting the parent_seq field in the database.
	FieldParentSeq = "parent_seq"
	// FieldCausedBySeq holds the string denoting the caused_by_seq field in the database.
	FieldCausedBySeq = "caused_by_seq"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldActor holds the string denoting the actor field in the database.
	FieldActor = "actor"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldSchemaV holds the string denoting the schema_v field in the database.
	FieldSchemaV = "schema_v"
	// Table holds the table name of the storedevent in the database.
	Table = "stored_events"
)

// Columns holds all SQL columns for storedevent fields.
var Columns = []string{
	FieldID,
	FieldTs,
	FieldEventType,
	FieldParentSeq,
	FieldCausedBySeq,
	FieldRunID,
	FieldActor,
	FieldPayload,
	FieldSchemaV,
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
	// DefaultTs holds the default value on creation for the "ts" field.
	DefaultTs func() time.Time
	// DefaultSchemaV holds the default value on creation for the "schema_v" field.
	DefaultSchemaV int
)

// OrderOption defines the ordering options for the StoredEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTs orders the results by the ts field.
func ByTs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTs, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByParentSeq orders the results by the parent_seq field.
func ByParentSeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentSeq, opts...).ToFunc()
}

// ByCausedBySeq orders the results by the caused_by_seq field.
func ByCausedBySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCausedBySeq, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByActor orders the results by the actor field.
func ByActor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActor, opts...).ToFunc()
}

// BySchemaV orders the results by the schema_v field.
func BySchemaV(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchemaV, opts...).ToFunc()
}
