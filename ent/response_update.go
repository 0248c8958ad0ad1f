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
	"github.com/fourthplaces/rootsignal/ent/response"
)

// ResponseUpdate is the builder for updating Response entities.
type ResponseUpdate struct {
	config
	hooks    []Hook
	mutation *ResponseMutation
}

// Where appends a list predicates to the ResponseUpdate builder.
func (_u *ResponseUpdate) Where(ps ...predicate.Response) *ResponseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStrength sets the "strength" field.
func (_u *ResponseUpdate) SetStrength(v float64) *ResponseUpdate {
	_u.mutation.ResetStrength()
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableStrength(v *float64) *ResponseUpdate {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// AddStrength adds value to the "strength" field.
func (_u *ResponseUpdate) AddStrength(v float64) *ResponseUpdate {
	_u.mutation.AddStrength(v)
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *ResponseUpdate) SetExplanation(v string) *ResponseUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableExplanation(v *string) *ResponseUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// Mutation returns the ResponseMutation object of the builder.
func (_u *ResponseUpdate) Mutation() *ResponseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResponseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResponseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ResponseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(response.Table, response.Columns, sqlgraph.NewFieldSpec(response.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(response.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStrength(); ok {
		_spec.AddField(response.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(response.FieldExplanation, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{response.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResponseUpdateOne is the builder for updating a single Response entity.
type ResponseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResponseMutation
}

// SetStrength sets the "strength" field.
func (_u *ResponseUpdateOne) SetStrength(v float64) *ResponseUpdateOne {
	_u.mutation.ResetStrength()
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableStrength(v *float64) *ResponseUpdateOne {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// AddStrength adds value to the "strength" field.
func (_u *ResponseUpdateOne) AddStrength(v float64) *ResponseUpdateOne {
	_u.mutation.AddStrength(v)
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *ResponseUpdateOne) SetExplanation(v string) *ResponseUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableExplanation(v *string) *ResponseUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// Mutation returns the ResponseMutation object of the builder.
func (_u *ResponseUpdateOne) Mutation() *ResponseMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResponseUpdate builder.
func (_u *ResponseUpdateOne) Where(ps ...predicate.Response) *ResponseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResponseUpdateOne) Select(field string, fields ...string) *ResponseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Response entity.
func (_u *ResponseUpdateOne) Save(ctx context.Context) (*Response, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseUpdateOne) SaveX(ctx context.Context) *Response {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResponseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ResponseUpdateOne) sqlSave(ctx context.Context) (_node *Response, err error) {
	_spec := sqlgraph.NewUpdateSpec(response.Table, response.Columns, sqlgraph.NewFieldSpec(response.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Response.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, response.FieldID)
		for _, f := range fields {
			if !response.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != response.FieldID {
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
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(response.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStrength(); ok {
		_spec.AddField(response.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(response.FieldExplanation, field.TypeString, value)
	}
	_node = &Response{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{response.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
