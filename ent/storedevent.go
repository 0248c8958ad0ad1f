// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fourthplaces/rootsignal/ent/storedevent"
)

// StoredEvent is the model entity for the StoredEvent schema.
type StoredEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// Ts holds the value of the "ts" field.
	Ts time.Time `json:"ts,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType string `json:"event_type,omitempty"`
	// ParentSeq holds the value of the "parent_seq" field.
	ParentSeq *int64 `json:"parent_seq,omitempty"`
	// CausedBySeq holds the value of the "caused_by_seq" field.
	CausedBySeq *int64 `json:"caused_by_seq,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// Emitting handler, for debugging
	Actor string `json:"actor,omitempty"`
	// JSON-serialized typed payload
	Payload []byte `json:"payload,omitempty"`
	// SchemaV holds the value of the "schema_v" field.
	SchemaV      int `json:"schema_v,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StoredEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case storedevent.FieldPayload:
			values[i] = new([]byte)
		case storedevent.FieldID, storedevent.FieldParentSeq, storedevent.FieldCausedBySeq, storedevent.FieldSchemaV:
			values[i] = new(sql.NullInt64)
		case storedevent.FieldEventType, storedevent.FieldRunID, storedevent.FieldActor:
			values[i] = new(sql.NullString)
		case storedevent.FieldTs:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StoredEvent fields.
func (_m *StoredEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case storedevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case storedevent.FieldTs:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ts", values[i])
			} else if value.Valid {
				_m.Ts = value.Time
			}
		case storedevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case storedevent.FieldParentSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field parent_seq", values[i])
			} else if value.Valid {
				_m.ParentSeq = new(int64)
				*_m.ParentSeq = value.Int64
			}
		case storedevent.FieldCausedBySeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field caused_by_seq", values[i])
			} else if value.Valid {
				_m.CausedBySeq = new(int64)
				*_m.CausedBySeq = value.Int64
			}
		case storedevent.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case storedevent.FieldActor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor", values[i])
			} else if value.Valid {
				_m.Actor = value.String
			}
		case storedevent.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil {
				_m.Payload = *value
			}
		case storedevent.FieldSchemaV:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field schema_v", values[i])
			} else if value.Valid {
				_m.SchemaV = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StoredEvent.
// This includes values selected through modifiers, order, etc.
func (_m *StoredEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StoredEvent.
// Note that you need to call StoredEvent.Unwrap() before calling this method if this StoredEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StoredEvent) Update() *StoredEventUpdateOne {
	return NewStoredEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StoredEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StoredEvent) Unwrap() *StoredEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StoredEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StoredEvent) String() string {
	var builder strings.Builder
	builder.WriteString("StoredEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("ts=")
	builder.WriteString(_m.Ts.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	if v := _m.ParentSeq; v != nil {
		builder.WriteString("parent_seq=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CausedBySeq; v != nil {
		builder.WriteString("caused_by_seq=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("actor=")
	builder.WriteString(_m.Actor)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("schema_v=")
	builder.WriteString(fmt.Sprintf("%v", _m.SchemaV))
	builder.WriteByte(')')
	return builder.String()
}

// StoredEvents is a parsable slice of StoredEvent.
type StoredEvents []*StoredEvent
