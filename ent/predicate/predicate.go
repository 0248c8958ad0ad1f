// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Actor is the predicate function for actor builders.
type Actor func(*sql.Selector)

// Evidence is the predicate function for evidence builders.
type Evidence func(*sql.Selector)

// PipelineRun is the predicate function for pipelinerun builders.
type PipelineRun func(*sql.Selector)

// Response is the predicate function for response builders.
type Response func(*sql.Selector)

// Signal is the predicate function for signal builders.
type Signal func(*sql.Selector)

// Source is the predicate function for source builders.
type Source func(*sql.Selector)

// StoredEvent is the predicate function for storedevent builders.
type StoredEvent func(*sql.Selector)
