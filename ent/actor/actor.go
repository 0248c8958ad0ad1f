// Code generated by ent, DO NOT EDIT.

package actor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the actor type in the database.
	Label = "actor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "actor_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldNameKey holds the string denoting the name_key field in the database.
	FieldNameKey = "name_key"
	// FieldCanonicalURL holds the string denoting the canonical_url field in the database.
	FieldCanonicalURL = "canonical_url"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldRegion holds the string denoting the region field in the database.
	FieldRegion = "region"
	// FieldSignalCount holds the string denoting the signal_count field in the database.
	FieldSignalCount = "signal_count"
	// FieldLat holds the string denoting the lat field in the database.
	FieldLat = "lat"
	// FieldLng holds the string denoting the lng field in the database.
	FieldLng = "lng"
	// FieldFirstSeen holds the string denoting the first_seen field in the database.
	FieldFirstSeen = "first_seen"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// EdgeAuthored holds the string denoting the authored edge name in mutations.
	EdgeAuthored = "authored"
	// EdgeMentionedIn holds the string denoting the mentioned_in edge name in mutations.
	EdgeMentionedIn = "mentioned_in"
	// SignalFieldID holds the string denoting the ID field of the Signal.
	SignalFieldID = "signal_id"
	// Table holds the table name of the actor in the database.
	Table = "actors"
	// AuthoredTable is the table that holds the authored relation/edge. The primary key declared below.
	AuthoredTable = "actor_authored"
	// AuthoredInverseTable is the table name for the Signal entity.
	// It exists in this package in order to avoid circular dependency with the "signal" package.
	AuthoredInverseTable = "signals"
	// MentionedInTable is the table that holds the mentioned_in relation/edge. The primary key declared below.
	MentionedInTable = "signal_mentions"
	// MentionedInInverseTable is the table name for the Signal entity.
	// It exists in this package in order to avoid circular dependency with the "signal" package.
	MentionedInInverseTable = "signals"
)

// Columns holds all SQL columns for actor fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldNameKey,
	FieldCanonicalURL,
	FieldKind,
	FieldRegion,
	FieldSignalCount,
	FieldLat,
	FieldLng,
	FieldFirstSeen,
	FieldLastSeen,
}

var (
	// AuthoredPrimaryKey and AuthoredColumn2 are the table columns denoting the
	// primary key for the authored relation (M2M).
	AuthoredPrimaryKey = []string{"actor_id", "signal_id"}
	// MentionedInPrimaryKey and MentionedInColumn2 are the table columns denoting the
	// primary key for the mentioned_in relation (M2M).
	MentionedInPrimaryKey = []string{"signal_id", "actor_id"}
)

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
	// DefaultKind holds the default value on creation for the "kind" field.
	DefaultKind string
	// DefaultSignalCount holds the default value on creation for the "signal_count" field.
	DefaultSignalCount int
	// DefaultFirstSeen holds the default value on creation for the "first_seen" field.
	DefaultFirstSeen func() time.Time
)

// OrderOption defines the ordering options for the Actor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByNameKey orders the results by the name_key field.
func ByNameKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNameKey, opts...).ToFunc()
}

// ByCanonicalURL orders the results by the canonical_url field.
func ByCanonicalURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonicalURL, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByRegion orders the results by the region field.
func ByRegion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegion, opts...).ToFunc()
}

// BySignalCount orders the results by the signal_count field.
func BySignalCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignalCount, opts...).ToFunc()
}

// ByLat orders the results by the lat field.
func ByLat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLat, opts...).ToFunc()
}

// ByLng orders the results by the lng field.
func ByLng(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLng, opts...).ToFunc()
}

// ByFirstSeen orders the results by the first_seen field.
func ByFirstSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeen, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}

// ByAuthoredCount orders the results by authored count.
func ByAuthoredCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuthoredStep(), opts...)
	}
}

// ByAuthored orders the results by authored terms.
func ByAuthored(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuthoredStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMentionedInCount orders the results by mentioned_in count.
func ByMentionedInCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMentionedInStep(), opts...)
	}
}

// ByMentionedIn orders the results by mentioned_in terms.
func ByMentionedIn(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMentionedInStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAuthoredStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuthoredInverseTable, SignalFieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, AuthoredTable, AuthoredPrimaryKey...),
	)
}
func newMentionedInStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MentionedInInverseTable, SignalFieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, MentionedInTable, MentionedInPrimaryKey...),
	)
}
