// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fourthplaces/rootsignal/ent/predicate"
	"github.com/fourthplaces/rootsignal/ent/storedevent"
)

// StoredEventUpdate is the builder for updating StoredEvent entities.
type StoredEventUpdate struct {
	config
	hooks    []Hook
	mutation *StoredEventMutation
}

// Where appends a list predicates to the StoredEventUpdate builder.
func (_u *StoredEventUpdate) Where(ps ...predicate.StoredEvent) *StoredEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the StoredEventMutation object of the builder.
func (_u *StoredEventUpdate) Mutation() *StoredEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StoredEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoredEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StoredEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoredEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StoredEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(storedevent.Table, storedevent.Columns, sqlgraph.NewFieldSpec(storedevent.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ParentSeqCleared() {
		_spec.ClearField(storedevent.FieldParentSeq, field.TypeInt64)
	}
	if _u.mutation.CausedBySeqCleared() {
		_spec.ClearField(storedevent.FieldCausedBySeq, field.TypeInt64)
	}
	if _u.mutation.ActorCleared() {
		_spec.ClearField(storedevent.FieldActor, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{storedevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StoredEventUpdateOne is the builder for updating a single StoredEvent entity.
type StoredEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StoredEventMutation
}

// Mutation returns the StoredEventMutation object of the builder.
func (_u *StoredEventUpdateOne) Mutation() *StoredEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the StoredEventUpdate builder.
func (_u *StoredEventUpdateOne) Where(ps ...predicate.StoredEvent) *StoredEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StoredEventUpdateOne) Select(field string, fields ...string) *StoredEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StoredEvent entity.
func (_u *StoredEventUpdateOne) Save(ctx context.Context) (*StoredEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoredEventUpdateOne) SaveX(ctx context.Context) *StoredEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StoredEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoredEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StoredEventUpdateOne) sqlSave(ctx context.Context) (_node *StoredEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(storedevent.Table, storedevent.Columns, sqlgraph.NewFieldSpec(storedevent.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StoredEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, storedevent.FieldID)
		for _, f := range fields {
			if !storedevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != storedevent.FieldID {
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
	if _u.mutation.ParentSeqCleared() {
		_spec.ClearField(storedevent.FieldParentSeq, field.TypeInt64)
	}
	if _u.mutation.CausedBySeqCleared() {
		_spec.ClearField(storedevent.FieldCausedBySeq, field.TypeInt64)
	}
	if _u.mutation.ActorCleared() {
		_spec.ClearField(storedevent.FieldActor, field.TypeString)
	}
	_node = &StoredEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{storedevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
