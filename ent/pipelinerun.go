// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fourthplaces/rootsignal/ent/pipelinerun"
)

// PipelineRun is the model entity for the PipelineRun schema.
type PipelineRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Region holds the value of the "region" field.
	Region string `json:"region,omitempty"`
	// Status holds the value of the "status" field.
	Status pipelinerun.Status `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Stats holds the value of the "stats" field.
	Stats map[string]interface{} `json:"stats,omitempty"`
	// Timestamped records: queries, scrapes, verdicts, budget checkpoints
	Timeline []map[string]interface{} `json:"timeline,omitempty"`
	// BudgetSpentCents holds the value of the "budget_spent_cents" field.
	BudgetSpentCents int64 `json:"budget_spent_cents,omitempty"`
	// Error holds the value of the "error" field.
	Error        string `json:"error,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinerun.FieldStats, pipelinerun.FieldTimeline:
			values[i] = new([]byte)
		case pipelinerun.FieldBudgetSpentCents:
			values[i] = new(sql.NullInt64)
		case pipelinerun.FieldID, pipelinerun.FieldRegion, pipelinerun.FieldStatus, pipelinerun.FieldError:
			values[i] = new(sql.NullString)
		case pipelinerun.FieldStartedAt, pipelinerun.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineRun fields.
func (_m *PipelineRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinerun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pipelinerun.FieldRegion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field region", values[i])
			} else if value.Valid {
				_m.Region = value.String
			}
		case pipelinerun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pipelinerun.Status(value.String)
			}
		case pipelinerun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case pipelinerun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case pipelinerun.FieldStats:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field stats", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Stats); err != nil {
					return fmt.Errorf("unmarshal field stats: %w", err)
				}
			}
		case pipelinerun.FieldTimeline:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field timeline", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Timeline); err != nil {
					return fmt.Errorf("unmarshal field timeline: %w", err)
				}
			}
		case pipelinerun.FieldBudgetSpentCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field budget_spent_cents", values[i])
			} else if value.Valid {
				_m.BudgetSpentCents = value.Int64
			}
		case pipelinerun.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineRun.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PipelineRun.
// Note that you need to call PipelineRun.Unwrap() before calling this method if this PipelineRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineRun) Update() *PipelineRunUpdateOne {
	return NewPipelineRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineRun) Unwrap() *PipelineRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineRun) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("region=")
	builder.WriteString(_m.Region)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("stats=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stats))
	builder.WriteString(", ")
	builder.WriteString("timeline=")
	builder.WriteString(fmt.Sprintf("%v", _m.Timeline))
	builder.WriteString(", ")
	builder.WriteString("budget_spent_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.BudgetSpentCents))
	builder.WriteString(", ")
	builder.WriteString("error=")
	builder.WriteString(_m.Error)
	builder.WriteByte(')')
	return builder.String()
}

// PipelineRuns is a parsable slice of PipelineRun.
type PipelineRuns []*PipelineRun
