// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fourthplaces/rootsignal/ent/signal"
)

// Signal is the model entity for the Signal schema.
type Signal struct {
	config `json:"-"`
	// ID of the ent.
	// Stable UUID, never reused
	ID string `json:"id,omitempty"`
	// NodeType holds the value of the "node_type" field.
	NodeType signal.NodeType `json:"node_type,omitempty"`
	// Region slug the signal belongs to
	Region string `json:"region,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// lower(title), exact-title dedup lookup key
	TitleKey string `json:"title_key,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// Sensitivity holds the value of the "sensitivity" field.
	Sensitivity signal.Sensitivity `json:"sensitivity,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// FreshnessScore holds the value of the "freshness_score" field.
	FreshnessScore float64 `json:"freshness_score,omitempty"`
	// CorroborationCount holds the value of the "corroboration_count" field.
	CorroborationCount int `json:"corroboration_count,omitempty"`
	// Lat holds the value of the "lat" field.
	Lat *float64 `json:"lat,omitempty"`
	// Lng holds the value of the "lng" field.
	Lng *float64 `json:"lng,omitempty"`
	// GeoPrecision holds the value of the "geo_precision" field.
	GeoPrecision *signal.GeoPrecision `json:"geo_precision,omitempty"`
	// LocationName holds the value of the "location_name" field.
	LocationName string `json:"location_name,omitempty"`
	// URL of the first source that produced the signal
	SourceURL string `json:"source_url,omitempty"`
	// ExtractedAt holds the value of the "extracted_at" field.
	ExtractedAt time.Time `json:"extracted_at,omitempty"`
	// LastConfirmedActive holds the value of the "last_confirmed_active" field.
	LastConfirmedActive time.Time `json:"last_confirmed_active,omitempty"`
	// AudienceRoles holds the value of the "audience_roles" field.
	AudienceRoles []string `json:"audience_roles,omitempty"`
	// Count of distinct evidence source URLs
	SourceDiversity int `json:"source_diversity,omitempty"`
	// ExternalRatio holds the value of the "external_ratio" field.
	ExternalRatio float64 `json:"external_ratio,omitempty"`
	// CauseHeat holds the value of the "cause_heat" field.
	CauseHeat float64 `json:"cause_heat,omitempty"`
	// MentionedActors holds the value of the "mentioned_actors" field.
	MentionedActors []string `json:"mentioned_actors,omitempty"`
	// Type-specific fields (starts_at, action_url, severity, ...)
	Variant map[string]interface{} `json:"variant,omitempty"`
	// Dedup embedding vector; dimensionality fixed per run
	Embedding []float32 `json:"embedding,omitempty"`
	// Notices only
	Severity *signal.Severity `json:"severity,omitempty"`
	// Logical deletion; expired signals stay queryable
	ExpiredAt *time.Time `json:"expired_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SignalQuery when eager-loading is set.
	Edges        SignalEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SignalEdges holds the relations/edges for other nodes in the graph.
type SignalEdges struct {
	// Observations backing this signal
	Evidence []*Evidence `json:"evidence,omitempty"`
	// Mentions holds the value of the mentions edge.
	Mentions []*Actor `json:"mentions,omitempty"`
	// Authors holds the value of the authors edge.
	Authors []*Actor `json:"authors,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// EvidenceOrErr returns the Evidence value or an error if the edge
// was not loaded in eager-loading.
func (e SignalEdges) EvidenceOrErr() ([]*Evidence, error) {
	if e.loadedTypes[0] {
		return e.Evidence, nil
	}
	return nil, &NotLoadedError{edge: "evidence"}
}

// MentionsOrErr returns the Mentions value or an error if the edge
// was not loaded in eager-loading.
func (e SignalEdges) MentionsOrErr() ([]*Actor, error) {
	if e.loadedTypes[1] {
		return e.Mentions, nil
	}
	return nil, &NotLoadedError{edge: "mentions"}
}

// AuthorsOrErr returns the Authors value or an error if the edge
// was not loaded in eager-loading.
func (e SignalEdges) AuthorsOrErr() ([]*Actor, error) {
	if e.loadedTypes[2] {
		return e.Authors, nil
	}
	return nil, &NotLoadedError{edge: "authors"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Signal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case signal.FieldAudienceRoles, signal.FieldMentionedActors, signal.FieldVariant, signal.FieldEmbedding:
			values[i] = new([]byte)
		case signal.FieldConfidence, signal.FieldFreshnessScore, signal.FieldLat, signal.FieldLng, signal.FieldExternalRatio, signal.FieldCauseHeat:
			values[i] = new(sql.NullFloat64)
		case signal.FieldCorroborationCount, signal.FieldSourceDiversity:
			values[i] = new(sql.NullInt64)
		case signal.FieldID, signal.FieldNodeType, signal.FieldRegion, signal.FieldTitle, signal.FieldTitleKey, signal.FieldSummary, signal.FieldSensitivity, signal.FieldGeoPrecision, signal.FieldLocationName, signal.FieldSourceURL, signal.FieldSeverity:
			values[i] = new(sql.NullString)
		case signal.FieldExtractedAt, signal.FieldLastConfirmedActive, signal.FieldExpiredAt, signal.FieldCreatedAt, signal.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Signal fields.
func (_m *Signal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case signal.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case signal.FieldNodeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field node_type", values[i])
			} else if value.Valid {
				_m.NodeType = signal.NodeType(value.String)
			}
		case signal.FieldRegion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field region", values[i])
			} else if value.Valid {
				_m.Region = value.String
			}
		case signal.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case signal.FieldTitleKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title_key", values[i])
			} else if value.Valid {
				_m.TitleKey = value.String
			}
		case signal.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case signal.FieldSensitivity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sensitivity", values[i])
			} else if value.Valid {
				_m.Sensitivity = signal.Sensitivity(value.String)
			}
		case signal.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case signal.FieldFreshnessScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field freshness_score", values[i])
			} else if value.Valid {
				_m.FreshnessScore = value.Float64
			}
		case signal.FieldCorroborationCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field corroboration_count", values[i])
			} else if value.Valid {
				_m.CorroborationCount = int(value.Int64)
			}
		case signal.FieldLat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lat", values[i])
			} else if value.Valid {
				_m.Lat = new(float64)
				*_m.Lat = value.Float64
			}
		case signal.FieldLng:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lng", values[i])
			} else if value.Valid {
				_m.Lng = new(float64)
				*_m.Lng = value.Float64
			}
		case signal.FieldGeoPrecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field geo_precision", values[i])
			} else if value.Valid {
				_m.GeoPrecision = new(signal.GeoPrecision)
				*_m.GeoPrecision = signal.GeoPrecision(value.String)
			}
		case signal.FieldLocationName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location_name", values[i])
			} else if value.Valid {
				_m.LocationName = value.String
			}
		case signal.FieldSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_url", values[i])
			} else if value.Valid {
				_m.SourceURL = value.String
			}
		case signal.FieldExtractedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_at", values[i])
			} else if value.Valid {
				_m.ExtractedAt = value.Time
			}
		case signal.FieldLastConfirmedActive:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_confirmed_active", values[i])
			} else if value.Valid {
				_m.LastConfirmedActive = value.Time
			}
		case signal.FieldAudienceRoles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field audience_roles", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AudienceRoles); err != nil {
					return fmt.Errorf("unmarshal field audience_roles: %w", err)
				}
			}
		case signal.FieldSourceDiversity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field source_diversity", values[i])
			} else if value.Valid {
				_m.SourceDiversity = int(value.Int64)
			}
		case signal.FieldExternalRatio:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field external_ratio", values[i])
			} else if value.Valid {
				_m.ExternalRatio = value.Float64
			}
		case signal.FieldCauseHeat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cause_heat", values[i])
			} else if value.Valid {
				_m.CauseHeat = value.Float64
			}
		case signal.FieldMentionedActors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field mentioned_actors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MentionedActors); err != nil {
					return fmt.Errorf("unmarshal field mentioned_actors: %w", err)
				}
			}
		case signal.FieldVariant:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field variant", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Variant); err != nil {
					return fmt.Errorf("unmarshal field variant: %w", err)
				}
			}
		case signal.FieldEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Embedding); err != nil {
					return fmt.Errorf("unmarshal field embedding: %w", err)
				}
			}
		case signal.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = new(signal.Severity)
				*_m.Severity = signal.Severity(value.String)
			}
		case signal.FieldExpiredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expired_at", values[i])
			} else if value.Valid {
				_m.ExpiredAt = new(time.Time)
				*_m.ExpiredAt = value.Time
			}
		case signal.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case signal.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Signal.
// This includes values selected through modifiers, order, etc.
func (_m *Signal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvidence queries the "evidence" edge of the Signal entity.
func (_m *Signal) QueryEvidence() *EvidenceQuery {
	return NewSignalClient(_m.config).QueryEvidence(_m)
}

// QueryMentions queries the "mentions" edge of the Signal entity.
func (_m *Signal) QueryMentions() *ActorQuery {
	return NewSignalClient(_m.config).QueryMentions(_m)
}

// QueryAuthors queries the "authors" edge of the Signal entity.
func (_m *Signal) QueryAuthors() *ActorQuery {
	return NewSignalClient(_m.config).QueryAuthors(_m)
}

// Update returns a builder for updating this Signal.
// Note that you need to call Signal.Unwrap() before calling this method if this Signal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Signal) Update() *SignalUpdateOne {
	return NewSignalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Signal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Signal) Unwrap() *Signal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Signal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Signal) String() string {
	var builder strings.Builder
	builder.WriteString("Signal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("node_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.NodeType))
	builder.WriteString(", ")
	builder.WriteString("region=")
	builder.WriteString(_m.Region)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("title_key=")
	builder.WriteString(_m.TitleKey)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("sensitivity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sensitivity))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("freshness_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.FreshnessScore))
	builder.WriteString(", ")
	builder.WriteString("corroboration_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorroborationCount))
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
	if v := _m.GeoPrecision; v != nil {
		builder.WriteString("geo_precision=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("location_name=")
	builder.WriteString(_m.LocationName)
	builder.WriteString(", ")
	builder.WriteString("source_url=")
	builder.WriteString(_m.SourceURL)
	builder.WriteString(", ")
	builder.WriteString("extracted_at=")
	builder.WriteString(_m.ExtractedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_confirmed_active=")
	builder.WriteString(_m.LastConfirmedActive.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("audience_roles=")
	builder.WriteString(fmt.Sprintf("%v", _m.AudienceRoles))
	builder.WriteString(", ")
	builder.WriteString("source_diversity=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceDiversity))
	builder.WriteString(", ")
	builder.WriteString("external_ratio=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExternalRatio))
	builder.WriteString(", ")
	builder.WriteString("cause_heat=")
	builder.WriteString(fmt.Sprintf("%v", _m.CauseHeat))
	builder.WriteString(", ")
	builder.WriteString("mentioned_actors=")
	builder.WriteString(fmt.Sprintf("%v", _m.MentionedActors))
	builder.WriteString(", ")
	builder.WriteString("variant=")
	builder.WriteString(fmt.Sprintf("%v", _m.Variant))
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteString(", ")
	if v := _m.Severity; v != nil {
		builder.WriteString("severity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ExpiredAt; v != nil {
		builder.WriteString("expired_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Signals is a parsable slice of Signal.
type Signals []*Signal
