// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fourthplaces/rootsignal/ent/source"
)

// Source is the model entity for the Source schema.
type Source struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CanonicalKey holds the value of the "canonical_key" field.
	CanonicalKey string `json:"canonical_key,omitempty"`
	// URL or query string
	CanonicalValue string `json:"canonical_value,omitempty"`
	// Strategy holds the value of the "strategy" field.
	Strategy source.Strategy `json:"strategy,omitempty"`
	// Social platform for strategy=social
	Platform string `json:"platform,omitempty"`
	// Region holds the value of the "region" field.
	Region string `json:"region,omitempty"`
	// Weight holds the value of the "weight" field.
	Weight float64 `json:"weight,omitempty"`
	// CadenceHours holds the value of the "cadence_hours" field.
	CadenceHours int `json:"cadence_hours,omitempty"`
	// ConsecutiveEmptyRuns holds the value of the "consecutive_empty_runs" field.
	ConsecutiveEmptyRuns int `json:"consecutive_empty_runs,omitempty"`
	// ScrapeCount holds the value of the "scrape_count" field.
	ScrapeCount int `json:"scrape_count,omitempty"`
	// SignalsProduced holds the value of the "signals_produced" field.
	SignalsProduced int `json:"signals_produced,omitempty"`
	// SignalsCorroborated holds the value of the "signals_corroborated" field.
	SignalsCorroborated int `json:"signals_corroborated,omitempty"`
	// TensionsProduced holds the value of the "tensions_produced" field.
	TensionsProduced int `json:"tensions_produced,omitempty"`
	// LastScraped holds the value of the "last_scraped" field.
	LastScraped *time.Time `json:"last_scraped,omitempty"`
	// LastProducedSignal holds the value of the "last_produced_signal" field.
	LastProducedSignal *time.Time `json:"last_produced_signal,omitempty"`
	// QualityPenalty holds the value of the "quality_penalty" field.
	QualityPenalty float64 `json:"quality_penalty,omitempty"`
	// DiscoveryMethod holds the value of the "discovery_method" field.
	DiscoveryMethod source.DiscoveryMethod `json:"discovery_method,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// Lat holds the value of the "lat" field.
	Lat *float64 `json:"lat,omitempty"`
	// Lng holds the value of the "lng" field.
	Lng *float64 `json:"lng,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Source) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case source.FieldActive:
			values[i] = new(sql.NullBool)
		case source.FieldWeight, source.FieldQualityPenalty, source.FieldLat, source.FieldLng:
			values[i] = new(sql.NullFloat64)
		case source.FieldCadenceHours, source.FieldConsecutiveEmptyRuns, source.FieldScrapeCount, source.FieldSignalsProduced, source.FieldSignalsCorroborated, source.FieldTensionsProduced:
			values[i] = new(sql.NullInt64)
		case source.FieldID, source.FieldCanonicalKey, source.FieldCanonicalValue, source.FieldStrategy, source.FieldPlatform, source.FieldRegion, source.FieldDiscoveryMethod:
			values[i] = new(sql.NullString)
		case source.FieldLastScraped, source.FieldLastProducedSignal, source.FieldCreatedAt, source.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Source fields.
func (_m *Source) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case source.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case source.FieldCanonicalKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_key", values[i])
			} else if value.Valid {
				_m.CanonicalKey = value.String
			}
		case source.FieldCanonicalValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_value", values[i])
			} else if value.Valid {
				_m.CanonicalValue = value.String
			}
		case source.FieldStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strategy", values[i])
			} else if value.Valid {
				_m.Strategy = source.Strategy(value.String)
			}
		case source.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = value.String
			}
		case source.FieldRegion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field region", values[i])
			} else if value.Valid {
				_m.Region = value.String
			}
		case source.FieldWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight", values[i])
			} else if value.Valid {
				_m.Weight = value.Float64
			}
		case source.FieldCadenceHours:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cadence_hours", values[i])
			} else if value.Valid {
				_m.CadenceHours = int(value.Int64)
			}
		case source.FieldConsecutiveEmptyRuns:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_empty_runs", values[i])
			} else if value.Valid {
				_m.ConsecutiveEmptyRuns = int(value.Int64)
			}
		case source.FieldScrapeCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scrape_count", values[i])
			} else if value.Valid {
				_m.ScrapeCount = int(value.Int64)
			}
		case source.FieldSignalsProduced:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field signals_produced", values[i])
			} else if value.Valid {
				_m.SignalsProduced = int(value.Int64)
			}
		case source.FieldSignalsCorroborated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field signals_corroborated", values[i])
			} else if value.Valid {
				_m.SignalsCorroborated = int(value.Int64)
			}
		case source.FieldTensionsProduced:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tensions_produced", values[i])
			} else if value.Valid {
				_m.TensionsProduced = int(value.Int64)
			}
		case source.FieldLastScraped:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_scraped", values[i])
			} else if value.Valid {
				_m.LastScraped = new(time.Time)
				*_m.LastScraped = value.Time
			}
		case source.FieldLastProducedSignal:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_produced_signal", values[i])
			} else if value.Valid {
				_m.LastProducedSignal = new(time.Time)
				*_m.LastProducedSignal = value.Time
			}
		case source.FieldQualityPenalty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quality_penalty", values[i])
			} else if value.Valid {
				_m.QualityPenalty = value.Float64
			}
		case source.FieldDiscoveryMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field discovery_method", values[i])
			} else if value.Valid {
				_m.DiscoveryMethod = source.DiscoveryMethod(value.String)
			}
		case source.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case source.FieldLat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lat", values[i])
			} else if value.Valid {
				_m.Lat = new(float64)
				*_m.Lat = value.Float64
			}
		case source.FieldLng:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lng", values[i])
			} else if value.Valid {
				_m.Lng = new(float64)
				*_m.Lng = value.Float64
			}
		case source.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case source.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Source.
// This includes values selected through modifiers, order, etc.
func (_m *Source) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Source.
// Note that you need to call Source.Unwrap() before calling this method if this Source
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Source) Update() *SourceUpdateOne {
	return NewSourceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Source entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Source) Unwrap() *Source {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Source is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Source) String() string {
	var builder strings.Builder
	builder.WriteString("Source(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("canonical_key=")
	builder.WriteString(_m.CanonicalKey)
	builder.WriteString(", ")
	builder.WriteString("canonical_value=")
	builder.WriteString(_m.CanonicalValue)
	builder.WriteString(", ")
	builder.WriteString("strategy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strategy))
	builder.WriteString(", ")
	builder.WriteString("platform=")
	builder.WriteString(_m.Platform)
	builder.WriteString(", ")
	builder.WriteString("region=")
	builder.WriteString(_m.Region)
	builder.WriteString(", ")
	builder.WriteString("weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weight))
	builder.WriteString(", ")
	builder.WriteString("cadence_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.CadenceHours))
	builder.WriteString(", ")
	builder.WriteString("consecutive_empty_runs=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveEmptyRuns))
	builder.WriteString(", ")
	builder.WriteString("scrape_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScrapeCount))
	builder.WriteString(", ")
	builder.WriteString("signals_produced=")
	builder.WriteString(fmt.Sprintf("%v", _m.SignalsProduced))
	builder.WriteString(", ")
	builder.WriteString("signals_corroborated=")
	builder.WriteString(fmt.Sprintf("%v", _m.SignalsCorroborated))
	builder.WriteString(", ")
	builder.WriteString("tensions_produced=")
	builder.WriteString(fmt.Sprintf("%v", _m.TensionsProduced))
	builder.WriteString(", ")
	if v := _m.LastScraped; v != nil {
		builder.WriteString("last_scraped=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastProducedSignal; v != nil {
		builder.WriteString("last_produced_signal=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("quality_penalty=")
	builder.WriteString(fmt.Sprintf("%v", _m.QualityPenalty))
	builder.WriteString(", ")
	builder.WriteString("discovery_method=")
	builder.WriteString(fmt.Sprintf("%v", _m.DiscoveryMethod))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
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
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Sources is a parsable slice of Source.
type Sources []*Source
