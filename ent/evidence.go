// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fourthplaces/rootsignal/ent/evidence"
)

// Evidence is the model entity for the Evidence schema.
type Evidence struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SourceURL holds the value of the "source_url" field.
	SourceURL string `json:"source_url,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash string `json:"content_hash,omitempty"`
	// RetrievedAt holds the value of the "retrieved_at" field.
	RetrievedAt time.Time `json:"retrieved_at,omitempty"`
	// Snippet holds the value of the "snippet" field.
	Snippet string `json:"snippet,omitempty"`
	// Relevance holds the value of the "relevance" field.
	Relevance float64 `json:"relevance,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// web, feed, social, search
	ChannelType string `json:"channel_type,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvidenceQuery when eager-loading is set.
	Edges        EvidenceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvidenceEdges holds the relations/edges for other nodes in the graph.
type EvidenceEdges struct {
	// Signals holds the value of the signals edge.
	Signals []*Signal `json:"signals,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SignalsOrErr returns the Signals value or an error if the edge
// was not loaded in eager-loading.
func (e EvidenceEdges) SignalsOrErr() ([]*Signal, error) {
	if e.loadedTypes[0] {
		return e.Signals, nil
	}
	return nil, &NotLoadedError{edge: "signals"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Evidence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evidence.FieldRelevance, evidence.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case evidence.FieldID, evidence.FieldSourceURL, evidence.FieldContentHash, evidence.FieldSnippet, evidence.FieldChannelType:
			values[i] = new(sql.NullString)
		case evidence.FieldRetrievedAt, evidence.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Evidence fields.
func (_m *Evidence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evidence.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case evidence.FieldSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_url", values[i])
			} else if value.Valid {
				_m.SourceURL = value.String
			}
		case evidence.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = value.String
			}
		case evidence.FieldRetrievedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field retrieved_at", values[i])
			} else if value.Valid {
				_m.RetrievedAt = value.Time
			}
		case evidence.FieldSnippet:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field snippet", values[i])
			} else if value.Valid {
				_m.Snippet = value.String
			}
		case evidence.FieldRelevance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field relevance", values[i])
			} else if value.Valid {
				_m.Relevance = value.Float64
			}
		case evidence.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case evidence.FieldChannelType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel_type", values[i])
			} else if value.Valid {
				_m.ChannelType = value.String
			}
		case evidence.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Evidence.
// This includes values selected through modifiers, order, etc.
func (_m *Evidence) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySignals queries the "signals" edge of the Evidence entity.
func (_m *Evidence) QuerySignals() *SignalQuery {
	return NewEvidenceClient(_m.config).QuerySignals(_m)
}

// Update returns a builder for updating this Evidence.
// Note that you need to call Evidence.Unwrap() before calling this method if this Evidence
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Evidence) Update() *EvidenceUpdateOne {
	return NewEvidenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Evidence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Evidence) Unwrap() *Evidence {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Evidence is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Evidence) String() string {
	var builder strings.Builder
	builder.WriteString("Evidence(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_url=")
	builder.WriteString(_m.SourceURL)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(_m.ContentHash)
	builder.WriteString(", ")
	builder.WriteString("retrieved_at=")
	builder.WriteString(_m.RetrievedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("snippet=")
	builder.WriteString(_m.Snippet)
	builder.WriteString(", ")
	builder.WriteString("relevance=")
	builder.WriteString(fmt.Sprintf("%v", _m.Relevance))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("channel_type=")
	builder.WriteString(_m.ChannelType)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Evidences is a parsable slice of Evidence.
type Evidences []*Evidence
