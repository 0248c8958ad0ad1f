// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fourthplaces/rootsignal/ent/pipelinerun"
	"github.com/fourthplaces/rootsignal/ent/predicate"
)

// PipelineRunUpdate is the builder for updating PipelineRun entities.
type PipelineRunUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineRunMutation
}

// Where appends a list predicates to the PipelineRunUpdate builder.
func (_u *PipelineRunUpdate) Where(ps ...predicate.PipelineRun) *PipelineRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineRunUpdate) SetStatus(v pipelinerun.Status) *PipelineRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableStatus(v *pipelinerun.Status) *PipelineRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineRunUpdate) SetCompletedAt(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableCompletedAt(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PipelineRunUpdate) ClearCompletedAt() *PipelineRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetStats sets the "stats" field.
func (_u *PipelineRunUpdate) SetStats(v map[string]interface{}) *PipelineRunUpdate {
	_u.mutation.SetStats(v)
	return _u
}

// ClearStats clears the value of the "stats" field.
func (_u *PipelineRunUpdate) ClearStats() *PipelineRunUpdate {
	_u.mutation.ClearStats()
	return _u
}

// SetTimeline sets the "timeline" field.
func (_u *PipelineRunUpdate) SetTimeline(v []map[string]interface{}) *PipelineRunUpdate {
	_u.mutation.SetTimeline(v)
	return _u
}

// AppendTimeline appends value to the "timeline" field.
func (_u *PipelineRunUpdate) AppendTimeline(v []map[string]interface{}) *PipelineRunUpdate {
	_u.mutation.AppendTimeline(v)
	return _u
}

// ClearTimeline clears the value of the "timeline" field.
func (_u *PipelineRunUpdate) ClearTimeline() *PipelineRunUpdate {
	_u.mutation.ClearTimeline()
	return _u
}

// SetBudgetSpentCents sets the "budget_spent_cents" field.
func (_u *PipelineRunUpdate) SetBudgetSpentCents(v int64) *PipelineRunUpdate {
	_u.mutation.ResetBudgetSpentCents()
	_u.mutation.SetBudgetSpentCents(v)
	return _u
}

// SetNillableBudgetSpentCents sets the "budget_spent_cents" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableBudgetSpentCents(v *int64) *PipelineRunUpdate {
	if v != nil {
		_u.SetBudgetSpentCents(*v)
	}
	return _u
}

// AddBudgetSpentCents adds value to the "budget_spent_cents" field.
func (_u *PipelineRunUpdate) AddBudgetSpentCents(v int64) *PipelineRunUpdate {
	_u.mutation.AddBudgetSpentCents(v)
	return _u
}

// SetError sets the "error" field.
func (_u *PipelineRunUpdate) SetError(v string) *PipelineRunUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableError(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *PipelineRunUpdate) ClearError() *PipelineRunUpdate {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_u *PipelineRunUpdate) Mutation() *PipelineRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pipelinerun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Stats(); ok {
		_spec.SetField(pipelinerun.FieldStats, field.TypeJSON, value)
	}
	if _u.mutation.StatsCleared() {
		_spec.ClearField(pipelinerun.FieldStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.Timeline(); ok {
		_spec.SetField(pipelinerun.FieldTimeline, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTimeline(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinerun.FieldTimeline, value)
		})
	}
	if _u.mutation.TimelineCleared() {
		_spec.ClearField(pipelinerun.FieldTimeline, field.TypeJSON)
	}
	if value, ok := _u.mutation.BudgetSpentCents(); ok {
		_spec.SetField(pipelinerun.FieldBudgetSpentCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBudgetSpentCents(); ok {
		_spec.AddField(pipelinerun.FieldBudgetSpentCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(pipelinerun.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(pipelinerun.FieldError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineRunUpdateOne is the builder for updating a single PipelineRun entity.
type PipelineRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineRunMutation
}

// SetStatus sets the "status" field.
func (_u *PipelineRunUpdateOne) SetStatus(v pipelinerun.Status) *PipelineRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableStatus(v *pipelinerun.Status) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineRunUpdateOne) SetCompletedAt(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableCompletedAt(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PipelineRunUpdateOne) ClearCompletedAt() *PipelineRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetStats sets the "stats" field.
func (_u *PipelineRunUpdateOne) SetStats(v map[string]interface{}) *PipelineRunUpdateOne {
	_u.mutation.SetStats(v)
	return _u
}

// ClearStats clears the value of the "stats" field.
func (_u *PipelineRunUpdateOne) ClearStats() *PipelineRunUpdateOne {
	_u.mutation.ClearStats()
	return _u
}

// SetTimeline sets the "timeline" field.
func (_u *PipelineRunUpdateOne) SetTimeline(v []map[string]interface{}) *PipelineRunUpdateOne {
	_u.mutation.SetTimeline(v)
	return _u
}

// AppendTimeline appends value to the "timeline" field.
func (_u *PipelineRunUpdateOne) AppendTimeline(v []map[string]interface{}) *PipelineRunUpdateOne {
	_u.mutation.AppendTimeline(v)
	return _u
}

// ClearTimeline clears the value of the "timeline" field.
func (_u *PipelineRunUpdateOne) ClearTimeline() *PipelineRunUpdateOne {
	_u.mutation.ClearTimeline()
	return _u
}

// SetBudgetSpentCents sets the "budget_spent_cents" field.
func (_u *PipelineRunUpdateOne) SetBudgetSpentCents(v int64) *PipelineRunUpdateOne {
	_u.mutation.ResetBudgetSpentCents()
	_u.mutation.SetBudgetSpentCents(v)
	return _u
}

// SetNillableBudgetSpentCents sets the "budget_spent_cents" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableBudgetSpentCents(v *int64) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetBudgetSpentCents(*v)
	}
	return _u
}

// AddBudgetSpentCents adds value to the "budget_spent_cents" field.
func (_u *PipelineRunUpdateOne) AddBudgetSpentCents(v int64) *PipelineRunUpdateOne {
	_u.mutation.AddBudgetSpentCents(v)
	return _u
}

// SetError sets the "error" field.
func (_u *PipelineRunUpdateOne) SetError(v string) *PipelineRunUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableError(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *PipelineRunUpdateOne) ClearError() *PipelineRunUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_u *PipelineRunUpdateOne) Mutation() *PipelineRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the PipelineRunUpdate builder.
func (_u *PipelineRunUpdateOne) Where(ps ...predicate.PipelineRun) *PipelineRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineRunUpdateOne) Select(field string, fields ...string) *PipelineRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineRun entity.
func (_u *PipelineRunUpdateOne) Save(ctx context.Context) (*PipelineRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunUpdateOne) SaveX(ctx context.Context) *PipelineRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineRunUpdateOne) sqlSave(ctx context.Context) (_node *PipelineRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinerun.FieldID)
		for _, f := range fields {
			if !pipelinerun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinerun.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pipelinerun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Stats(); ok {
		_spec.SetField(pipelinerun.FieldStats, field.TypeJSON, value)
	}
	if _u.mutation.StatsCleared() {
		_spec.ClearField(pipelinerun.FieldStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.Timeline(); ok {
		_spec.SetField(pipelinerun.FieldTimeline, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTimeline(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinerun.FieldTimeline, value)
		})
	}
	if _u.mutation.TimelineCleared() {
		_spec.ClearField(pipelinerun.FieldTimeline, field.TypeJSON)
	}
	if value, ok := _u.mutation.BudgetSpentCents(); ok {
		_spec.SetField(pipelinerun.FieldBudgetSpentCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBudgetSpentCents(); ok {
		_spec.AddField(pipelinerun.FieldBudgetSpentCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(pipelinerun.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(pipelinerun.FieldError, field.TypeString)
	}
	_node = &PipelineRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
