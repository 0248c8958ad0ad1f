// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fourthplaces/rootsignal/ent/actor"
	"github.com/fourthplaces/rootsignal/ent/signal"
)

// ActorCreate is the builder for creating a Actor entity.
type ActorCreate struct {
	config
	mutation *ActorMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ActorCreate) SetName(v string) *ActorCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNameKey sets the "name_key" field.
func (_c *ActorCreate) SetNameKey(v string) *ActorCreate {
	_c.mutation.SetNameKey(v)
	return _c
}

// SetCanonicalURL sets the "canonical_url" field.
func (_c *ActorCreate) SetCanonicalURL(v string) *ActorCreate {
	_c.mutation.SetCanonicalURL(v)
	return _c
}

// SetNillableCanonicalURL sets the "canonical_url" field if the given value is not nil.
func (_c *ActorCreate) SetNillableCanonicalURL(v *string) *ActorCreate {
	if v != nil {
		_c.SetCanonicalURL(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *ActorCreate) SetKind(v string) *ActorCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *ActorCreate) SetNillableKind(v *string) *ActorCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetRegion sets the "region" field.
func (_c *ActorCreate) SetRegion(v string) *ActorCreate {
	_c.mutation.SetRegion(v)
	return _c
}

// SetSignalCount sets the "signal_count" field.
func (_c *ActorCreate) SetSignalCount(v int) *ActorCreate {
	_c.mutation.SetSignalCount(v)
	return _c
}

// SetNillableSignalCount sets the "signal_count" field if the given value is not nil.
func (_c *ActorCreate) SetNillableSignalCount(v *int) *ActorCreate {
	if v != nil {
		_c.SetSignalCount(*v)
	}
	return _c
}

// SetLat sets the "lat" field.
func (_c *ActorCreate) SetLat(v float64) *ActorCreate {
	_c.mutation.SetLat(v)
	return _c
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_c *ActorCreate) SetNillableLat(v *float64) *ActorCreate {
	if v != nil {
		_c.SetLat(*v)
	}
	return _c
}

// SetLng sets the "lng" field.
func (_c *ActorCreate) SetLng(v float64) *ActorCreate {
	_c.mutation.SetLng(v)
	return _c
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_c *ActorCreate) SetNillableLng(v *float64) *ActorCreate {
	if v != nil {
		_c.SetLng(*v)
	}
	return _c
}

// SetFirstSeen sets the "first_seen" field.
func (_c *ActorCreate) SetFirstSeen(v time.Time) *ActorCreate {
	_c.mutation.SetFirstSeen(v)
	return _c
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_c *ActorCreate) SetNillableFirstSeen(v *time.Time) *ActorCreate {
	if v != nil {
		_c.SetFirstSeen(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *ActorCreate) SetLastSeen(v time.Time) *ActorCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *ActorCreate) SetNillableLastSeen(v *time.Time) *ActorCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ActorCreate) SetID(v string) *ActorCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddAuthoredIDs adds the "authored" edge to the Signal entity by IDs.
func (_c *ActorCreate) AddAuthoredIDs(ids ...string) *ActorCreate {
	_c.mutation.AddAuthoredIDs(ids...)
	return _c
}

// AddAuthored adds the "authored" edges to the Signal entity.
func (_c *ActorCreate) AddAuthored(v ...*Signal) *ActorCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuthoredIDs(ids...)
}

// AddMentionedInIDs adds the "mentioned_in" edge to the Signal entity by IDs.
func (_c *ActorCreate) AddMentionedInIDs(ids ...string) *ActorCreate {
	_c.mutation.AddMentionedInIDs(ids...)
	return _c
}

// AddMentionedIn adds the "mentioned_in" edges to the Signal entity.
func (_c *ActorCreate) AddMentionedIn(v ...*Signal) *ActorCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMentionedInIDs(ids...)
}

// Mutation returns the ActorMutation object of the builder.
func (_c *ActorCreate) Mutation() *ActorMutation {
	return _c.mutation
}

// Save creates the Actor in the database.
func (_c *ActorCreate) Save(ctx context.Context) (*Actor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActorCreate) SaveX(ctx context.Context) *Actor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActorCreate) defaults() {
	if _, ok := _c.mutation.Kind(); !ok {
		v := actor.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.SignalCount(); !ok {
		v := actor.DefaultSignalCount
		_c.mutation.SetSignalCount(v)
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		v := actor.DefaultFirstSeen()
		_c.mutation.SetFirstSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActorCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Actor.name"`)}
	}
	if _, ok := _c.mutation.NameKey(); !ok {
		return &ValidationError{Name: "name_key", err: errors.New(`ent: missing required field "Actor.name_key"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Actor.kind"`)}
	}
	if _, ok := _c.mutation.Region(); !ok {
		return &ValidationError{Name: "region", err: errors.New(`ent: missing required field "Actor.region"`)}
	}
	if _, ok := _c.mutation.SignalCount(); !ok {
		return &ValidationError{Name: "signal_count", err: errors.New(`ent: missing required field "Actor.signal_count"`)}
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		return &ValidationError{Name: "first_seen", err: errors.New(`ent: missing required field "Actor.first_seen"`)}
	}
	return nil
}

func (_c *ActorCreate) sqlSave(ctx context.Context) (*Actor, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Actor.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActorCreate) createSpec() (*Actor, *sqlgraph.CreateSpec) {
	var (
		_node = &Actor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(actor.Table, sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(actor.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.NameKey(); ok {
		_spec.SetField(actor.FieldNameKey, field.TypeString, value)
		_node.NameKey = value
	}
	if value, ok := _c.mutation.CanonicalURL(); ok {
		_spec.SetField(actor.FieldCanonicalURL, field.TypeString, value)
		_node.CanonicalURL = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(actor.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Region(); ok {
		_spec.SetField(actor.FieldRegion, field.TypeString, value)
		_node.Region = value
	}
	if value, ok := _c.mutation.SignalCount(); ok {
		_spec.SetField(actor.FieldSignalCount, field.TypeInt, value)
		_node.SignalCount = value
	}
	if value, ok := _c.mutation.Lat(); ok {
		_spec.SetField(actor.FieldLat, field.TypeFloat64, value)
		_node.Lat = &value
	}
	if value, ok := _c.mutation.Lng(); ok {
		_spec.SetField(actor.FieldLng, field.TypeFloat64, value)
		_node.Lng = &value
	}
	if value, ok := _c.mutation.FirstSeen(); ok {
		_spec.SetField(actor.FieldFirstSeen, field.TypeTime, value)
		_node.FirstSeen = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(actor.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = &value
	}
	if nodes := _c.mutation.AuthoredIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MentionedInIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ActorCreateBulk is the builder for creating many Actor entities in bulk.
type ActorCreateBulk struct {
	config
	err      error
	builders []*ActorCreate
}

// Save creates the Actor entities in the database.
func (_c *ActorCreateBulk) Save(ctx context.Context) ([]*Actor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Actor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActorMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ActorCreateBulk) SaveX(ctx context.Context) []*Actor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
