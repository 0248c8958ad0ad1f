// Code generated by ent, DO NOT EDIT.

package pipelinerun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pipelinerun type in the database.
	Label = "pipeline_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldRegion holds the string denoting the region field in the database.
	FieldRegion = "region"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldStats holds the string denoting the stats field in the database.
	FieldStats = "stats"
	// FieldTimeline holds the string denoting the timeline field in the database.
	FieldTimeline = "timeline"
	// FieldBudgetSpentCents holds the string denoting the budget_spent_cents field in the database.
	FieldBudgetSpentCents = "budget_spent_cents"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// Table holds the table name of the pipelinerun in the database.
	Table = "pipeline_runs"
)

// Columns holds all SQL columns for pipelinerun fields.
var Columns = []string{
	FieldID,
	FieldRegion,
	FieldStatus,
	FieldStartedAt,
	FieldCompletedAt,
	FieldStats,
	FieldTimeline,
	FieldBudgetSpentCents,
	FieldError,
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
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultBudgetSpentCents holds the default value on creation for the "budget_spent_cents" field.
	DefaultBudgetSpentCents int64
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("pipelinerun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PipelineRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRegion orders the results by the region field.
func ByRegion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegion, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByBudgetSpentCents orders the results by the budget_spent_cents field.
func ByBudgetSpentCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBudgetSpentCents, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}
