// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fourthplaces/rootsignal/ent/response"
)

// ResponseCreate is the builder for creating a Response entity.
type ResponseCreate struct {
	config
	mutation *ResponseMutation
	hooks    []Hook
}

// SetResponseID sets the "response_id" field.
func (_c *ResponseCreate) SetResponseID(v string) *ResponseCreate {
	_c.mutation.SetResponseID(v)
	return _c
}

// SetTensionID sets the "tension_id" field.
func (_c *ResponseCreate) SetTensionID(v string) *ResponseCreate {
	_c.mutation.SetTensionID(v)
	return _c
}

// SetStrength sets the "strength" field.
func (_c *ResponseCreate) SetStrength(v float64) *ResponseCreate {
	_c.mutation.SetStrength(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *ResponseCreate) SetExplanation(v string) *ResponseCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResponseCreate) SetCreatedAt(v time.Time) *ResponseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResponseCreate) SetNillableCreatedAt(v *time.Time) *ResponseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ResponseMutation object of the builder.
func (_c *ResponseCreate) Mutation() *ResponseMutation {
	return _c.mutation
}

// Save creates the Response in the database.
func (_c *ResponseCreate) Save(ctx context.Context) (*Response, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResponseCreate) SaveX(ctx context.Context) *Response {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResponseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResponseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResponseCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := response.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResponseCreate) check() error {
	if _, ok := _c.mutation.ResponseID(); !ok {
		return &ValidationError{Name: "response_id", err: errors.New(`ent: missing required field "Response.response_id"`)}
	}
	if _, ok := _c.mutation.TensionID(); !ok {
		return &ValidationError{Name: "tension_id", err: errors.New(`ent: missing required field "Response.tension_id"`)}
	}
	if _, ok := _c.mutation.Strength(); !ok {
		return &ValidationError{Name: "strength", err: errors.New(`ent: missing required field "Response.strength"`)}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "Response.explanation"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Response.created_at"`)}
	}
	return nil
}

func (_c *ResponseCreate) sqlSave(ctx context.Context) (*Response, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResponseCreate) createSpec() (*Response, *sqlgraph.CreateSpec) {
	var (
		_node = &Response{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(response.Table, sqlgraph.NewFieldSpec(response.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ResponseID(); ok {
		_spec.SetField(response.FieldResponseID, field.TypeString, value)
		_node.ResponseID = value
	}
	if value, ok := _c.mutation.TensionID(); ok {
		_spec.SetField(response.FieldTensionID, field.TypeString, value)
		_node.TensionID = value
	}
	if value, ok := _c.mutation.Strength(); ok {
		_spec.SetField(response.FieldStrength, field.TypeFloat64, value)
		_node.Strength = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(response.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(response.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ResponseCreateBulk is the builder for creating many Response entities in bulk.
type ResponseCreateBulk struct {
	config
	err      error
	builders []*ResponseCreate
}

// Save creates the Response entities in the database.
func (_c *ResponseCreateBulk) Save(ctx context.Context) ([]*Response, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Response, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResponseMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
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
func (_c *ResponseCreateBulk) SaveX(ctx context.Context) []*Response {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResponseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResponseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
