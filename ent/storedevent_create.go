// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fourthplaces/rootsignal/ent/storedevent"
)

// StoredEventCreate is the builder for creating a StoredEvent entity.
type StoredEventCreate struct {
	config
	mutation *StoredEventMutation
	hooks    []Hook
}

// SetTs sets the "ts" field.
func (_c *StoredEventCreate) SetTs(v time.Time) *StoredEventCreate {
	_c.mutation.SetTs(v)
	return _c
}

// SetNillableTs sets the "ts" field if the given value is not nil.
func (_c *StoredEventCreate) SetNillableTs(v *time.Time) *StoredEventCreate {
	if v != nil {
		_c.SetTs(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *StoredEventCreate) SetEventType(v string) *StoredEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetParentSeq sets the "parent_seq" field.
func (_c *StoredEventCreate) SetParentSeq(v int64) *StoredEventCreate {
	_c.mutation.SetParentSeq(v)
	return _c
}

// SetNillableParentSeq sets the "parent_seq" field if the given value is not nil.
func (_c *StoredEventCreate) SetNillableParentSeq(v *int64) *StoredEventCreate {
	if v != nil {
		_c.SetParentSeq(*v)
	}
	return _c
}

// SetCausedBySeq sets the "caused_by_seq" field.
func (_c *StoredEventCreate) SetCausedBySeq(v int64) *StoredEventCreate {
	_c.mutation.SetCausedBySeq(v)
	return _c
}

// SetNillableCausedBySeq sets the "caused_by_seq" field if the given value is not nil.
func (_c *StoredEventCreate) SetNillableCausedBySeq(v *int64) *StoredEventCreate {
	if v != nil {
		_c.SetCausedBySeq(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *StoredEventCreate) SetRunID(v string) *StoredEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetActor sets the "actor" field.
func (_c *StoredEventCreate) SetActor(v string) *StoredEventCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_c *StoredEventCreate) SetNillableActor(v *string) *StoredEventCreate {
	if v != nil {
		_c.SetActor(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *StoredEventCreate) SetPayload(v []byte) *StoredEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetSchemaV sets the "schema_v" field.
func (_c *StoredEventCreate) SetSchemaV(v int) *StoredEventCreate {
	_c.mutation.SetSchemaV(v)
	return _c
}

// SetNillableSchemaV sets the "schema_v" field if the given value is not nil.
func (_c *StoredEventCreate) SetNillableSchemaV(v *int) *StoredEventCreate {
	if v != nil {
		_c.SetSchemaV(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StoredEventCreate) SetID(v int64) *StoredEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StoredEventMutation object of the builder.
func (_c *StoredEventCreate) Mutation() *StoredEventMutation {
	return _c.mutation
}

// Save creates the StoredEvent in the database.
func (_c *StoredEventCreate) Save(ctx context.Context) (*StoredEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StoredEventCreate) SaveX(ctx context.Context) *StoredEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StoredEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StoredEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StoredEventCreate) defaults() {
	if _, ok := _c.mutation.Ts(); !ok {
		v := storedevent.DefaultTs()
		_c.mutation.SetTs(v)
	}
	if _, ok := _c.mutation.SchemaV(); !ok {
		v := storedevent.DefaultSchemaV
		_c.mutation.SetSchemaV(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StoredEventCreate) check() error {
	if _, ok := _c.mutation.Ts(); !ok {
		return &ValidationError{Name: "ts", err: errors.New(`ent: missing required field "StoredEvent.ts"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "StoredEvent.event_type"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "StoredEvent.run_id"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "StoredEvent.payload"`)}
	}
	if _, ok := _c.mutation.SchemaV(); !ok {
		return &ValidationError{Name: "schema_v", err: errors.New(`ent: missing required field "StoredEvent.schema_v"`)}
	}
	return nil
}

func (_c *StoredEventCreate) sqlSave(ctx context.Context) (*StoredEvent, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StoredEventCreate) createSpec() (*StoredEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &StoredEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(storedevent.Table, sqlgraph.NewFieldSpec(storedevent.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Ts(); ok {
		_spec.SetField(storedevent.FieldTs, field.TypeTime, value)
		_node.Ts = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(storedevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.ParentSeq(); ok {
		_spec.SetField(storedevent.FieldParentSeq, field.TypeInt64, value)
		_node.ParentSeq = &value
	}
	if value, ok := _c.mutation.CausedBySeq(); ok {
		_spec.SetField(storedevent.FieldCausedBySeq, field.TypeInt64, value)
		_node.CausedBySeq = &value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(storedevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(storedevent.FieldActor, field.TypeString, value)
		_node.Actor = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(storedevent.FieldPayload, field.TypeBytes, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.SchemaV(); ok {
		_spec.SetField(storedevent.FieldSchemaV, field.TypeInt, value)
		_node.SchemaV = value
	}
	return _node, _spec
}

// StoredEventCreateBulk is the builder for creating many StoredEvent entities in bulk.
type StoredEventCreateBulk struct {
	config
	err      error
	builders []*StoredEventCreate
}

// Save creates the StoredEvent entities in the database.
func (_c *StoredEventCreateBulk) Save(ctx context.Context) ([]*StoredEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StoredEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StoredEventMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
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
func (_c *StoredEventCreateBulk) SaveX(ctx context.Context) []*StoredEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StoredEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StoredEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
