// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fourthplaces/rootsignal/ent/actor"
)

// Actor is the model entity for the Actor schema.
type Actor struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Normalized name, identity key
	NameKey string `json:"name_key,omitempty"`
	// CanonicalURL holds the value of the "canonical_url" field.
	CanonicalURL string `json:"canonical_url,omitempty"`
	// organization, person, agency
	Kind string `json:"kind,omitempty"`
	// Region holds the value of the "region" field.
	Region string `json:"region,omitempty"`
	// SignalCount holds the value of the "signal_count" field.
	SignalCount int `json:"signal_count,omitempty"`
	// Lat holds the value of the "lat" field.
	Lat *float64 `json:"lat,omitempty"`
	// Lng holds the value of the "lng" field.
	Lng *float64 `json:"lng,omitempty"`
	// FirstSeen holds the value of the "first_seen" field.
	FirstSeen time.Time `json:"first_seen,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen *time.Time `json:"last_seen,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ActorQuery when eager-loading is set.
	Edges        ActorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ActorEdges holds the relations/edges for other nodes in the graph.
type ActorEdges struct {
	// Authored holds the value of the authored edge.
	Authored []*Signal `json:"authored,omitempty"`
	// MentionedIn holds the value of the mentioned_in edge.
	MentionedIn []*Signal `json:"mentioned_in,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AuthoredOrErr returns the Authored value or an error if the edge
// was not loaded in eager-loading.
func (e ActorEdges) AuthoredOrErr() ([]*Signal, error) {
	if e.loadedTypes[0] {
		return e.Authored, nil
	}
	return nil, &NotLoadedError{edge: "authored"}
}

// MentionedInOrErr returns the MentionedIn value or an error if the edge
// was not loaded in eager-loading.
func (e ActorEdges) MentionedInOrErr() ([]*Signal, error) {
	if e.loadedTypes[1] {
		return e.MentionedIn, nil
	}
	return nil, &NotLoadedError{edge: "mentioned_in"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Actor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case actor.FieldLat, actor.FieldLng:
			values[i] = new(sql.NullFloat64)
		case actor.FieldSignalCount:
			values[i] = new(sql.NullInt64)
		case actor.FieldID, actor.FieldName, actor.FieldNameKey, actor.FieldCanonicalURL, actor.FieldKind, actor.FieldRegion:
			values[i] = new(sql.NullString)
		case actor.FieldFirstSeen, actor.FieldLastSeen:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Actor fields.
func (_m *Actor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case actor.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case actor.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case actor.FieldNameKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name_key", values[i])
			} else if value.Valid {
				_m.NameKey = value.String
			}
		case actor.FieldCanonicalURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_url", values[i])
			} else if value.Valid {
				_m.CanonicalURL = value.String
			}
		case actor.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case actor.FieldRegion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field region", values[i])
			} else if value.Valid {
				_m.Region = value.String
			}
		case actor.FieldSignalCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field signal_count", values[i])
			} else if value.Valid {
				_m.SignalCount = int(value.Int64)
			}
		case actor.FieldLat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lat", values[i])
			} else if value.Valid {
				_m.Lat = new(float64)
				*_m.Lat = value.Float64
			}
		case actor.FieldLng:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lng", values[i])
			} else if value.Valid {
				_m.Lng = new(float64)
				*_m.Lng = value.Float64
			}
		case actor.FieldFirstSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen", values[i])
			} else if value.Valid {
				_m.FirstSeen = value.Time
			}
		case actor.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = new(time.Time)
				*_m.LastSeen = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Actor.
// This includes values selected through modifiers, order, etc.
func (_m *Actor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAuthored queries the "authored" edge of the Actor entity.
func (_m *Actor) QueryAuthored() *SignalQuery {
	return NewActorClient(_m.config).QueryAuthored(_m)
}

// QueryMentionedIn queries the "mentioned_in" edge of the Actor entity.
func (_m *Actor) QueryMentionedIn() *SignalQuery {
	return NewActorClient(_m.config).QueryMentionedIn(_m)
}

// Update returns a builder for updating this Actor.
// Note that you need to call Actor.Unwrap() before calling this method if this Actor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Actor) Update() *ActorUpdateOne {
	return NewActorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Actor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Actor) Unwrap() *Actor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Actor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Actor) String() string {
	var builder strings.Builder
	builder.WriteString("Actor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("name_key=")
	builder.WriteString(_m.NameKey)
	builder.WriteString(", ")
	builder.WriteString("canonical_url=")
	builder.WriteString(_m.CanonicalURL)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("region=")
	builder.WriteString(_m.Region)
	builder.WriteString(", ")
	builder.WriteString("signal_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SignalCount))
	builder.WriteString(", ")
	if v := _m.Lat; v != nil {
		builder.WriteString("lat=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Lng; v != nil {
		builder.WriteString("lng=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("first_seen=")
	builder.WriteString(_m.FirstSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.LastSeen; v != nil {
		builder.WriteString("last_seen=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Actors is a parsable slice of Actor.
type Actors []*Actor
