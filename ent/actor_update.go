// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fourthplaces/rootsignal/ent/actor"
	"github.com/fourthplaces/rootsignal/ent/predicate"
	"github.com/fourthplaces/rootsignal/ent/signal"
)

// ActorUpdate is the builder for updating Actor entities.
type ActorUpdate struct {
	config
	hooks    []Hook
	mutation *ActorMutation
}

// Where appends a list predicates to the ActorUpdate builder.
func (_u *ActorUpdate) Where(ps ...predicate.Actor) *ActorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ActorUpdate) SetName(v string) *ActorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ActorUpdate) SetNillableName(v *string) *ActorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNameKey sets the "name_key" field.
func (_u *ActorUpdate) SetNameKey(v string) *ActorUpdate {
	_u.mutation.SetNameKey(v)
	return _u
}

// SetNillableNameKey sets the "name_key" field if the given value is not nil.
func (_u *ActorUpdate) SetNillableNameKey(v *string) *ActorUpdate {
	if v != nil {
		_u.SetNameKey(*v)
	}
	return _u
}

// SetCanonicalURL sets the "canonical_url" field.
func (_u *ActorUpdate) SetCanonicalURL(v string) *ActorUpdate {
	_u.mutation.SetCanonicalURL(v)
	return _u
}

// SetNillableCanonicalURL sets the "canonical_url" field if the given value is not nil.
func (_u *ActorUpdate) SetNillableCanonicalURL(v *string) *ActorUpdate {
	if v != nil {
		_u.SetCanonicalURL(*v)
	}
	return _u
}

// ClearCanonicalURL clears the value of the "canonical_url" field.
func (_u *ActorUpdate) ClearCanonicalURL() *ActorUpdate {
	_u.mutation.ClearCanonicalURL()
	return _u
}

// SetKind sets the "kind" field.
func (_u *ActorUpdate) SetKind(v string) *ActorUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ActorUpdate) SetNillableKind(v *string) *ActorUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetRegion sets the "region" field.
func (_u *ActorUpdate) SetRegion(v string) *ActorUpdate {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *ActorUpdate) SetNillableRegion(v *string) *ActorUpdate {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// SetSignalCount sets the "signal_count" field.
func (_u *ActorUpdate) SetSignalCount(v int) *ActorUpdate {
	_u.mutation.ResetSignalCount()
	_u.mutation.SetSignalCount(v)
	return _u
}

// SetNillableSignalCount sets the "signal_count" field if the given value is not nil.
func (_u *ActorUpdate) SetNillableSignalCount(v *int) *ActorUpdate {
	if v != nil {
		_u.SetSignalCount(*v)
	}
	return _u
}

// AddSignalCount adds value to the "signal_count" field.
func (_u *ActorUpdate) AddSignalCount(v int) *ActorUpdate {
	_u.mutation.AddSignalCount(v)
	return _u
}

// SetLat sets the "lat" field.
func (_u *ActorUpdate) SetLat(v float64) *ActorUpdate {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *ActorUpdate) SetNillableLat(v *float64) *ActorUpdate {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *ActorUpdate) AddLat(v float64) *ActorUpdate {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *ActorUpdate) ClearLat() *ActorUpdate {
	_u.mutation.ClearLat()
	return _u
}

// SetLng sets the "lng" field.
func (_u *ActorUpdate) SetLng(v float64) *ActorUpdate {
	_u.mutation.ResetLng()
	_u.mutation.SetLng(v)
	return _u
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_u *ActorUpdate) SetNillableLng(v *float64) *ActorUpdate {
	if v != nil {
		_u.SetLng(*v)
	}
	return _u
}

// AddLng adds value to the "lng" field.
func (_u *ActorUpdate) AddLng(v float64) *ActorUpdate {
	_u.mutation.AddLng(v)
	return _u
}

// ClearLng clears the value of the "lng" field.
func (_u *ActorUpdate) ClearLng() *ActorUpdate {
	_u.mutation.ClearLng()
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *ActorUpdate) SetLastSeen(v time.Time) *ActorUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *ActorUpdate) SetNillableLastSeen(v *time.Time) *ActorUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// ClearLastSeen clears the value of the "last_seen" field.
func (_u *ActorUpdate) ClearLastSeen() *ActorUpdate {
	_u.mutation.ClearLastSeen()
	return _u
}

// AddAuthoredIDs adds the "authored" edge to the Signal entity by IDs.
func (_u *ActorUpdate) AddAuthoredIDs(ids ...string) *ActorUpdate {
	_u.mutation.AddAuthoredIDs(ids...)
	return _u
}

// AddAuthored adds the "authored" edges to the Signal entity.
func (_u *ActorUpdate) AddAuthored(v ...*Signal) *ActorUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuthoredIDs(ids...)
}

// AddMentionedInIDs adds the "mentioned_in" edge to the Signal entity by IDs.
func (_u *ActorUpdate) AddMentionedInIDs(ids ...string) *ActorUpdate {
	_u.mutation.AddMentionedInIDs(ids...)
	return _u
}

// AddMentionedIn adds the "mentioned_in" edges to the Signal entity.
func (_u *ActorUpdate) AddMentionedIn(v ...*Signal) *ActorUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMentionedInIDs(ids...)
}

// Mutation returns the ActorMutation object of the builder.
func (_u *ActorUpdate) Mutation() *ActorMutation {
	return _u.mutation
}

// ClearAuthored clears all "authored" edges to the Signal entity.
func (_u *ActorUpdate) ClearAuthored() *ActorUpdate {
	_u.mutation.ClearAuthored()
	return _u
}

// RemoveAuthoredIDs removes the "authored" edge to Signal entities by IDs.
func (_u *ActorUpdate) RemoveAuthoredIDs(ids ...string) *ActorUpdate {
	_u.mutation.RemoveAuthoredIDs(ids...)
	return _u
}

// RemoveAuthored removes "authored" edges to Signal entities.
func (_u *ActorUpdate) RemoveAuthored(v ...*Signal) *ActorUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuthoredIDs(ids...)
}

// ClearMentionedIn clears all "mentioned_in" edges to the Signal entity.
func (_u *ActorUpdate) ClearMentionedIn() *ActorUpdate {
	_u.mutation.ClearMentionedIn()
	return _u
}

// RemoveMentionedInIDs removes the "mentioned_in" edge to Signal entities by IDs.
func (_u *ActorUpdate) RemoveMentionedInIDs(ids ...string) *ActorUpdate {
	_u.mutation.RemoveMentionedInIDs(ids...)
	return _u
}

// RemoveMentionedIn removes "mentioned_in" edges to Signal entities.
func (_u *ActorUpdate) RemoveMentionedIn(v ...*Signal) *ActorUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMentionedInIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ActorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(actor.Table, actor.Columns, sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(actor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NameKey(); ok {
		_spec.SetField(actor.FieldNameKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalURL(); ok {
		_spec.SetField(actor.FieldCanonicalURL, field.TypeString, value)
	}
	if _u.mutation.CanonicalURLCleared() {
		_spec.ClearField(actor.FieldCanonicalURL, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(actor.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(actor.FieldRegion, field.TypeString, value)
	}
	if value, ok := _u.mutation.SignalCount(); ok {
		_spec.SetField(actor.FieldSignalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSignalCount(); ok {
		_spec.AddField(actor.FieldSignalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(actor.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(actor.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(actor.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lng(); ok {
		_spec.SetField(actor.FieldLng, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLng(); ok {
		_spec.AddField(actor.FieldLng, field.TypeFloat64, value)
	}
	if _u.mutation.LngCleared() {
		_spec.ClearField(actor.FieldLng, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(actor.FieldLastSeen, field.TypeTime, value)
	}
	if _u.mutation.LastSeenCleared() {
		_spec.ClearField(actor.FieldLastSeen, field.TypeTime)
	}
	if _u.mutation.AuthoredCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   actor.AuthoredTable,
			Columns: actor.AuthoredPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signal.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuthoredIDs(); len(nodes) > 0 && !_u.mutation.AuthoredCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   actor.AuthoredTable,
			Columns: actor.AuthoredPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthoredIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   actor.AuthoredTable,
			Columns: actor.AuthoredPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MentionedInCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   actor.MentionedInTable,
			Columns: actor.MentionedInPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signal.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMentionedInIDs(); len(nodes) > 0 && !_u.mutation.MentionedInCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   actor.MentionedInTable,
			Columns: actor.MentionedInPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MentionedInIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   actor.MentionedInTable,
			Columns: actor.MentionedInPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActorUpdateOne is the builder for updating a single Actor entity.
type ActorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActorMutation
}

// SetName sets the "name" field.
func (_u *ActorUpdateOne) SetName(v string) *ActorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ActorUpdateOne) SetNillableName(v *string) *ActorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNameKey sets the "name_key" field.
func (_u *ActorUpdateOne) SetNameKey(v string) *ActorUpdateOne {
	_u.mutation.SetNameKey(v)
	return _u
}

// SetNillableNameKey sets the "name_key" field if the given value is not nil.
func (_u *ActorUpdateOne) SetNillableNameKey(v *string) *ActorUpdateOne {
	if v != nil {
		_u.SetNameKey(*v)
	}
	return _u
}

// SetCanonicalURL sets the "canonical_url" field.
func (_u *ActorUpdateOne) SetCanonicalURL(v string) *ActorUpdateOne {
	_u.mutation.SetCanonicalURL(v)
	return _u
}

// SetNillableCanonicalURL sets the "canonical_url" field if the given value is not nil.
func (_u *ActorUpdateOne) SetNillableCanonicalURL(v *string) *ActorUpdateOne {
	if v != nil {
		_u.SetCanonicalURL(*v)
	}
	return _u
}

// ClearCanonicalURL clears the value of the "canonical_url" field.
func (_u *ActorUpdateOne) ClearCanonicalURL() *ActorUpdateOne {
	_u.mutation.ClearCanonicalURL()
	return _u
}

// SetKind sets the "kind" field.
func (_u *ActorUpdateOne) SetKind(v string) *ActorUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ActorUpdateOne) SetNillableKind(v *string) *ActorUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetRegion sets the "region" field.
func (_u *ActorUpdateOne) SetRegion(v string) *ActorUpdateOne {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *ActorUpdateOne) SetNillableRegion(v *string) *ActorUpdateOne {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// SetSignalCount sets the "signal_count" field.
func (_u *ActorUpdateOne) SetSignalCount(v int) *ActorUpdateOne {
	_u.mutation.ResetSignalCount()
	_u.mutation.SetSignalCount(v)
	return _u
}

// SetNillableSignalCount sets the "signal_count" field if the given value is not nil.
func (_u *ActorUpdateOne) SetNillableSignalCount(v *int) *ActorUpdateOne {
	if v != nil {
		_u.SetSignalCount(*v)
	}
	return _u
}

// AddSignalCount adds value to the "signal_count" field.
func (_u *ActorUpdateOne) AddSignalCount(v int) *ActorUpdateOne {
	_u.mutation.AddSignalCount(v)
	return _u
}

// SetLat sets the "lat" field.
func (_u *ActorUpdateOne) SetLat(v float64) *ActorUpdateOne {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *ActorUpdateOne) SetNillableLat(v *float64) *ActorUpdateOne {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *ActorUpdateOne) AddLat(v float64) *ActorUpdateOne {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *ActorUpdateOne) ClearLat() *ActorUpdateOne {
	_u.mutation.ClearLat()
	return _u
}

// SetLng sets the "lng" field.
func (_u *ActorUpdateOne) SetLng(v float64) *ActorUpdateOne {
	_u.mutation.ResetLng()
	_u.mutation.SetLng(v)
	return _u
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_u *ActorUpdateOne) SetNillableLng(v *float64) *ActorUpdateOne {
	if v != nil {
		_u.SetLng(*v)
	}
	return _u
}

// AddLng adds value to the "lng" field.
func (_u *ActorUpdateOne) AddLng(v float64) *ActorUpdateOne {
	_u.mutation.AddLng(v)
	return _u
}

// ClearLng clears the value of the "lng" field.
func (_u *ActorUpdateOne) ClearLng() *ActorUpdateOne {
	_u.mutation.ClearLng()
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *ActorUpdateOne) SetLastSeen(v time.Time) *ActorUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *ActorUpdateOne) SetNillableLastSeen(v *time.Time) *ActorUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// ClearLastSeen clears the value of the "last_seen" field.
func (_u *ActorUpdateOne) ClearLastSeen() *ActorUpdateOne {
	_u.mutation.ClearLastSeen()
	return _u
}

// AddAuthoredIDs adds the "authored" edge to the Signal entity by IDs.
func (_u *ActorUpdateOne) AddAuthoredIDs(ids ...string) *ActorUpdateOne {
	_u.mutation.AddAuthoredIDs(ids...)
	return _u
}

// AddAuthored adds the "authored" edges to the Signal entity.
func (_u *ActorUpdateOne) AddAuthored(v ...*Signal) *ActorUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuthoredIDs(ids...)
}

// AddMentionedInIDs adds the "mentioned_in" edge to the Signal entity by IDs.
func (_u *ActorUpdateOne) AddMentionedInIDs(ids ...string) *ActorUpdateOne {
	_u.mutation.AddMentionedInIDs(ids...)
	return _u
}

// AddMentionedIn adds the "mentioned_in" edges to the Signal entity.
func (_u *ActorUpdateOne) AddMentionedIn(v ...*Signal) *ActorUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMentionedInIDs(ids...)
}

// Mutation returns the ActorMutation object of the builder.
func (_u *ActorUpdateOne) Mutation() *ActorMutation {
	return _u.mutation
}

// ClearAuthored clears all "authored" edges to the Signal entity.
func (_u *ActorUpdateOne) ClearAuthored() *ActorUpdateOne {
	_u.mutation.ClearAuthored()
	return _u
}

// RemoveAuthoredIDs removes the "authored" edge to Signal entities by IDs.
func (_u *ActorUpdateOne) RemoveAuthoredIDs(ids ...string) *ActorUpdateOne {
	_u.mutation.RemoveAuthoredIDs(ids...)
	return _u
}

// RemoveAuthored removes "authored" edges to Signal entities.
func (_u *ActorUpdateOne) RemoveAuthored(v ...*Signal) *ActorUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuthoredIDs(ids...)
}

// ClearMentionedIn clears all "mentioned_in" edges to the Signal entity.
func (_u *ActorUpdateOne) ClearMentionedIn() *ActorUpdateOne {
	_u.mutation.ClearMentionedIn()
	return _u
}

// RemoveMentionedInIDs removes the "mentioned_in" edge to Signal entities by IDs.
func (_u *ActorUpdateOne) RemoveMentionedInIDs(ids ...string) *ActorUpdateOne {
	_u.mutation.RemoveMentionedInIDs(ids...)
	return _u
}

// RemoveMentionedIn removes "mentioned_in" edges to Signal entities.
func (_u *ActorUpdateOne) RemoveMentionedIn(v ...*Signal) *ActorUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMentionedInIDs(ids...)
}

// Where appends a list predicates to the ActorUpdate builder.
func (_u *ActorUpdateOne) Where(ps ...predicate.Actor) *ActorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActorUpdateOne) Select(field string, fields ...string) *ActorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Actor entity.
func (_u *ActorUpdateOne) Save(ctx context.Context) (*Actor, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActorUpdateOne) SaveX(ctx context.Context) *Actor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ActorUpdateOne) sqlSave(ctx context.Context) (_node *Actor, err error) {
	_spec := sqlgraph.NewUpdateSpec(actor.Table, actor.Columns, sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Actor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, actor.FieldID)
		for _, f := range fields {
			if !actor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != actor.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(actor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NameKey(); ok {
		_spec.SetField(actor.FieldNameKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalURL(); ok {
		_spec.SetField(actor.FieldCanonicalURL, field.TypeString, value)
	}
	if _u.mutation.CanonicalURLCleared() {
		_spec.ClearField(actor.FieldCanonicalURL, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(actor.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(actor.FieldRegion, field.TypeString, value)
	}
	if value, ok := _u.mutation.SignalCount(); ok {
		_spec.SetField(actor.FieldSignalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSignalCount(); ok {
		_spec.AddField(actor.FieldSignalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(actor.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(actor.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(actor.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lng(); ok {
		_spec.SetField(actor.FieldLng, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLng(); ok {
		_spec.AddField(actor.FieldLng, field.TypeFloat64, value)
	}
	if _u.mutation.LngCleared() {
		_spec.ClearField(actor.FieldLng, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(actor.FieldLastSeen, field.TypeTime, value)
	}
	if _u.mutation.LastSeenCleared() {
		_spec.ClearField(actor.FieldLastSeen, field.TypeTime)
	}
	if _u.mutation.AuthoredCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   actor.AuthoredTable,
			Columns: actor.AuthoredPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signal.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuthoredIDs(); len(nodes) > 0 && !_u.mutation.AuthoredCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   actor.AuthoredTable,
			Columns: actor.AuthoredPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthoredIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   actor.AuthoredTable,
			Columns: actor.AuthoredPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MentionedInCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   actor.MentionedInTable,
			Columns: actor.MentionedInPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signal.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMentionedInIDs(); len(nodes) > 0 && !_u.mutation.MentionedInCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   actor.MentionedInTable,
			Columns: actor.MentionedInPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MentionedInIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   actor.MentionedInTable,
			Columns: actor.MentionedInPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(signal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Actor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
