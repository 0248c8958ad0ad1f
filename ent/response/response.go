// Code generated by ent, DO NOT EDIT.

package response

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the response type in the database.
	Label = "response"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldResponseID holds the string denoting the response_id field in the database.
	FieldResponseID = "response_id"
	// FieldTensionID holds the string denoting the tension_id field in the database.
	FieldTensionID = "tension_id"
	// FieldStrength holds the string denoting the strength field in the database.
	FieldStrength = "strength"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the response in the database.
	Table = "responses"
)

// Columns holds all SQL columns for response fields.
var Columns = []string{
	FieldID,
	FieldResponseID,
	FieldTensionID,
	FieldStrength,
	FieldExplanation,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Response queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByResponseID orders the results by the response_id field.
func ByResponseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseID, opts...).ToFunc()
}

// ByTensionID orders the results by the tension_id field.
func ByTensionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTensionID, opts...).ToFunc()
}

// ByStrength orders the results by the strength field.
func ByStrength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrength, opts...).ToFunc()
}

// ByExplanation orders the results by the explanation field.
func ByExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanation, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
