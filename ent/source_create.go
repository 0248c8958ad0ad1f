// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fourthplaces/rootsignal/ent/source"
)

// SourceCreate is the builder for creating a Source entity.
type SourceCreate struct {
	config
	mutation *SourceMutation
	hooks    []Hook
}

// SetCanonicalKey sets the "canonical_key" field.
func (_c *SourceCreate) SetCanonicalKey(v string) *SourceCreate {
	_c.mutation.SetCanonicalKey(v)
	return _c
}

// SetCanonicalValue sets the "canonical_value" field.
func (_c *SourceCreate) SetCanonicalValue(v string) *SourceCreate {
	_c.mutation.SetCanonicalValue(v)
	return _c
}

// SetStrategy sets the "strategy" field.
func (_c *SourceCreate) SetStrategy(v source.Strategy) *SourceCreate {
	_c.mutation.SetStrategy(v)
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *SourceCreate) SetPlatform(v string) *SourceCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_c *SourceCreate) SetNillablePlatform(v *string) *SourceCreate {
	if v != nil {
		_c.SetPlatform(*v)
	}
	return _c
}

// SetRegion sets the "region" field.
func (_c *SourceCreate) SetRegion(v string) *SourceCreate {
	_c.mutation.SetRegion(v)
	return _c
}

// SetWeight sets the "weight" field.
func (_c *SourceCreate) SetWeight(v float64) *SourceCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_c *SourceCreate) SetNillableWeight(v *float64) *SourceCreate {
	if v != nil {
		_c.SetWeight(*v)
	}
	return _c
}

// SetCadenceHours sets the "cadence_hours" field.
func (_c *SourceCreate) SetCadenceHours(v int) *SourceCreate {
	_c.mutation.SetCadenceHours(v)
	return _c
}

// SetNillableCadenceHours sets the "cadence_hours" field if the given value is not nil.
func (_c *SourceCreate) SetNillableCadenceHours(v *int) *SourceCreate {
	if v != nil {
		_c.SetCadenceHours(*v)
	}
	return _c
}

// SetConsecutiveEmptyRuns sets the "consecutive_empty_runs" field.
func (_c *SourceCreate) SetConsecutiveEmptyRuns(v int) *SourceCreate {
	_c.mutation.SetConsecutiveEmptyRuns(v)
	return _c
}

// SetNillableConsecutiveEmptyRuns sets the "consecutive_empty_runs" field if the given value is not nil.
func (_c *SourceCreate) SetNillableConsecutiveEmptyRuns(v *int) *SourceCreate {
	if v != nil {
		_c.SetConsecutiveEmptyRuns(*v)
	}
	return _c
}

// SetScrapeCount sets the "scrape_count" field.
func (_c *SourceCreate) SetScrapeCount(v int) *SourceCreate {
	_c.mutation.SetScrapeCount(v)
	return _c
}

// SetNillableScrapeCount sets the "scrape_count" field if the given value is not nil.
func (_c *SourceCreate) SetNillableScrapeCount(v *int) *SourceCreate {
	if v != nil {
		_c.SetScrapeCount(*v)
	}
	return _c
}

// SetSignalsProduced sets the "signals_produced" field.
func (_c *SourceCreate) SetSignalsProduced(v int) *SourceCreate {
	_c.mutation.SetSignalsProduced(v)
	return _c
}

// SetNillableSignalsProduced sets the "signals_produced" field if the given value is not nil.
func (_c *SourceCreate) SetNillableSignalsProduced(v *int) *SourceCreate {
	if v != nil {
		_c.SetSignalsProduced(*v)
	}
	return _c
}

// SetSignalsCorroborated sets the "signals_corroborated" field.
func (_c *SourceCreate) SetSignalsCorroborated(v int) *SourceCreate {
	_c.mutation.SetSignalsCorroborated(v)
	return _c
}

// SetNillableSignalsCorroborated sets the "signals_corroborated" field if the given value is not nil.
func (_c *SourceCreate) SetNillableSignalsCorroborated(v *int) *SourceCreate {
	if v != nil {
		_c.SetSignalsCorroborated(*v)
	}
	return _c
}

// SetTensionsProduced sets the "tensions_produced" field.
func (_c *SourceCreate) SetTensionsProduced(v int) *SourceCreate {
	_c.mutation.SetTensionsProduced(v)
	return _c
}

// SetNillableTensionsProduced sets the "tensions_produced" field if the given value is not nil.
func (_c *SourceCreate) SetNillableTensionsProduced(v *int) *SourceCreate {
	if v != nil {
		_c.SetTensionsProduced(*v)
	}
	return _c
}

// SetLastScraped sets the "last_scraped" field.
func (_c *SourceCreate) SetLastScraped(v time.Time) *SourceCreate {
	_c.mutation.SetLastScraped(v)
	return _c
}

// SetNillableLastScraped sets the "last_scraped" field if the given value is not nil.
func (_c *SourceCreate) SetNillableLastScraped(v *time.Time) *SourceCreate {
	if v != nil {
		_c.SetLastScraped(*v)
	}
	return _c
}

// SetLastProducedSignal sets the "last_produced_signal" field.
func (_c *SourceCreate) SetLastProducedSignal(v time.Time) *SourceCreate {
	_c.mutation.SetLastProducedSignal(v)
	return _c
}

// SetNillableLastProducedSignal sets the "last_produced_signal" field if the given value is not nil.
func (_c *SourceCreate) SetNillableLastProducedSignal(v *time.Time) *SourceCreate {
	if v != nil {
		_c.SetLastProducedSignal(*v)
	}
	return _c
}

// SetQualityPenalty sets the "quality_penalty" field.
func (_c *SourceCreate) SetQualityPenalty(v float64) *SourceCreate {
	_c.mutation.SetQualityPenalty(v)
	return _c
}

// SetNillableQualityPenalty sets the "quality_penalty" field if the given value is not nil.
func (_c *SourceCreate) SetNillableQualityPenalty(v *float64) *SourceCreate {
	if v != nil {
		_c.SetQualityPenalty(*v)
	}
	return _c
}

// SetDiscoveryMethod sets the "discovery_method" field.
func (_c *SourceCreate) SetDiscoveryMethod(v source.DiscoveryMethod) *SourceCreate {
	_c.mutation.SetDiscoveryMethod(v)
	return _c
}

// SetNillableDiscoveryMethod sets the "discovery_method" field if the given value is not nil.
func (_c *SourceCreate) SetNillableDiscoveryMethod(v *source.DiscoveryMethod) *SourceCreate {
	if v != nil {
		_c.SetDiscoveryMethod(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *SourceCreate) SetActive(v bool) *SourceCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *SourceCreate) SetNillableActive(v *bool) *SourceCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetLat sets the "lat" field.
func (_c *SourceCreate) SetLat(v float64) *SourceCreate {
	_c.mutation.SetLat(v)
	return _c
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_c *SourceCreate) SetNillableLat(v *float64) *SourceCreate {
	if v != nil {
		_c.SetLat(*v)
	}
	return _c
}

// SetLng sets the "lng" field.
func (_c *SourceCreate) SetLng(v float64) *SourceCreate {
	_c.mutation.SetLng(v)
	return _c
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_c *SourceCreate) SetNillableLng(v *float64) *SourceCreate {
	if v != nil {
		_c.SetLng(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SourceCreate) SetCreatedAt(v time.Time) *SourceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SourceCreate) SetNillableCreatedAt(v *time.Time) *SourceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SourceCreate) SetUpdatedAt(v time.Time) *SourceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SourceCreate) SetNillableUpdatedAt(v *time.Time) *SourceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SourceCreate) SetID(v string) *SourceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SourceMutation object of the builder.
func (_c *SourceCreate) Mutation() *SourceMutation {
	return _c.mutation
}

// Save creates the Source in the database.
func (_c *SourceCreate) Save(ctx context.Context) (*Source, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SourceCreate) SaveX(ctx context.Context) *Source {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SourceCreate) defaults() {
	if _, ok := _c.mutation.Weight(); !ok {
		v := source.DefaultWeight
		_c.mutation.SetWeight(v)
	}
	if _, ok := _c.mutation.CadenceHours(); !ok {
		v := source.DefaultCadenceHours
		_c.mutation.SetCadenceHours(v)
	}
	if _, ok := _c.mutation.ConsecutiveEmptyRuns(); !ok {
		v := source.DefaultConsecutiveEmptyRuns
		_c.mutation.SetConsecutiveEmptyRuns(v)
	}
	if _, ok := _c.mutation.ScrapeCount(); !ok {
		v := source.DefaultScrapeCount
		_c.mutation.SetScrapeCount(v)
	}
	if _, ok := _c.mutation.SignalsProduced(); !ok {
		v := source.DefaultSignalsProduced
		_c.mutation.SetSignalsProduced(v)
	}
	if _, ok := _c.mutation.SignalsCorroborated(); !ok {
		v := source.DefaultSignalsCorroborated
		_c.mutation.SetSignalsCorroborated(v)
	}
	if _, ok := _c.mutation.TensionsProduced(); !ok {
		v := source.DefaultTensionsProduced
		_c.mutation.SetTensionsProduced(v)
	}
	if _, ok := _c.mutation.QualityPenalty(); !ok {
		v := source.DefaultQualityPenalty
		_c.mutation.SetQualityPenalty(v)
	}
	if _, ok := _c.mutation.DiscoveryMethod(); !ok {
		v := source.DefaultDiscoveryMethod
		_c.mutation.SetDiscoveryMethod(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := source.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := source.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := source.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SourceCreate) check() error {
	if _, ok := _c.mutation.CanonicalKey(); !ok {
		return &ValidationError{Name: "canonical_key", err: errors.New(`ent: missing required field "Source.canonical_key"`)}
	}
	if _, ok := _c.mutation.CanonicalValue(); !ok {
		return &ValidationError{Name: "canonical_value", err: errors.New(`ent: missing required field "Source.canonical_value"`)}
	}
	if _, ok := _c.mutation.Strategy(); !ok {
		return &ValidationError{Name: "strategy", err: errors.New(`ent: missing required field "Source.strategy"`)}
	}
	if v, ok := _c.mutation.Strategy(); ok {
		if err := source.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "Source.strategy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Region(); !ok {
		return &ValidationError{Name: "region", err: errors.New(`ent: missing required field "Source.region"`)}
	}
	if _, ok := _c.mutation.Weight(); !ok {
		return &ValidationError{Name: "weight", err: errors.New(`ent: missing required field "Source.weight"`)}
	}
	if _, ok := _c.mutation.CadenceHours(); !ok {
		return &ValidationError{Name: "cadence_hours", err: errors.New(`ent: missing required field "Source.cadence_hours"`)}
	}
	if _, ok := _c.mutation.ConsecutiveEmptyRuns(); !ok {
		return &ValidationError{Name: "consecutive_empty_runs", err: errors.New(`ent: missing required field "Source.consecutive_empty_runs"`)}
	}
	if _, ok := _c.mutation.ScrapeCount(); !ok {
		return &ValidationError{Name: "scrape_count", err: errors.New(`ent: missing required field "Source.scrape_count"`)}
	}
	if _, ok := _c.mutation.SignalsProduced(); !ok {
		return &ValidationError{Name: "signals_produced", err: errors.New(`ent: missing required field "Source.signals_produced"`)}
	}
	if _, ok := _c.mutation.SignalsCorroborated(); !ok {
		return &ValidationError{Name: "signals_corroborated", err: errors.New(`ent: missing required field "Source.signals_corroborated"`)}
	}
	if _, ok := _c.mutation.TensionsProduced(); !ok {
		return &ValidationError{Name: "tensions_produced", err: errors.New(`ent: missing required field "Source.tensions_produced"`)}
	}
	if _, ok := _c.mutation.QualityPenalty(); !ok {
		return &ValidationError{Name: "quality_penalty", err: errors.New(`ent: missing required field "Source.quality_penalty"`)}
	}
	if _, ok := _c.mutation.DiscoveryMethod(); !ok {
		return &ValidationError{Name: "discovery_method", err: errors.New(`ent: missing required field "Source.discovery_method"`)}
	}
	if v, ok := _c.mutation.DiscoveryMethod(); ok {
		if err := source.DiscoveryMethodValidator(v); err != nil {
			return &ValidationError{Name: "discovery_method", err: fmt.Errorf(`ent: validator failed for field "Source.discovery_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Source.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Source.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Source.updated_at"`)}
	}
	return nil
}

func (_c *SourceCreate) sqlSave(ctx context.Context) (*Source, error) {
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
			return nil, fmt.Errorf("unexpected Source.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SourceCreate) createSpec() (*Source, *sqlgraph.CreateSpec) {
	var (
		_node = &Source{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(source.Table, sqlgraph.NewFieldSpec(source.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CanonicalKey(); ok {
		_spec.SetField(source.FieldCanonicalKey, field.TypeString, value)
		_node.CanonicalKey = value
	}
	if value, ok := _c.mutation.CanonicalValue(); ok {
		_spec.SetField(source.FieldCanonicalValue, field.TypeString, value)
		_node.CanonicalValue = value
	}
	if value, ok := _c.mutation.Strategy(); ok {
		_spec.SetField(source.FieldStrategy, field.TypeEnum, value)
		_node.Strategy = value
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(source.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.Region(); ok {
		_spec.SetField(source.FieldRegion, field.TypeString, value)
		_node.Region = value
	}
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(source.FieldWeight, field.TypeFloat64, value)
		_node.Weight = value
	}
	if value, ok := _c.mutation.CadenceHours(); ok {
		_spec.SetField(source.FieldCadenceHours, field.TypeInt, value)
		_node.CadenceHours = value
	}
	if value, ok := _c.mutation.ConsecutiveEmptyRuns(); ok {
		_spec.SetField(source.FieldConsecutiveEmptyRuns, field.TypeInt, value)
		_node.ConsecutiveEmptyRuns = value
	}
	if value, ok := _c.mutation.ScrapeCount(); ok {
		_spec.SetField(source.FieldScrapeCount, field.TypeInt, value)
		_node.ScrapeCount = value
	}
	if value, ok := _c.mutation.SignalsProduced(); ok {
		_spec.SetField(source.FieldSignalsProduced, field.TypeInt, value)
		_node.SignalsProduced = value
	}
	if value, ok := _c.mutation.SignalsCorroborated(); ok {
		_spec.SetField(source.FieldSignalsCorroborated, field.TypeInt, value)
		_node.SignalsCorroborated = value
	}
	if value, ok := _c.mutation.TensionsProduced(); ok {
		_spec.SetField(source.FieldTensionsProduced, field.TypeInt, value)
		_node.TensionsProduced = value
	}
	if value, ok := _c.mutation.LastScraped(); ok {
		_spec.SetField(source.FieldLastScraped, field.TypeTime, value)
		_node.LastScraped = &value
	}
	if value, ok := _c.mutation.LastProducedSignal(); ok {
		_spec.SetField(source.FieldLastProducedSignal, field.TypeTime, value)
		_node.LastProducedSignal = &value
	}
	if value, ok := _c.mutation.QualityPenalty(); ok {
		_spec.SetField(source.FieldQualityPenalty, field.TypeFloat64, value)
		_node.QualityPenalty = value
	}
	if value, ok := _c.mutation.DiscoveryMethod(); ok {
		_spec.SetField(source.FieldDiscoveryMethod, field.TypeEnum, value)
		_node.DiscoveryMethod = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(source.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.Lat(); ok {
		_spec.SetField(source.FieldLat, field.TypeFloat64, value)
		_node.Lat = &value
	}
	if value, ok := _c.mutation.Lng(); ok {
		_spec.SetField(source.FieldLng, field.TypeFloat64, value)
		_node.Lng = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(source.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(source.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SourceCreateBulk is the builder for creating many Source entities in bulk.
type SourceCreateBulk struct {
	config
	err      error
	builders []*SourceCreate
}

// Save creates the Source entities in the database.
func (_c *SourceCreateBulk) Save(ctx context.Context) ([]*Source, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Source, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SourceMutation)
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
func (_c *SourceCreateBulk) SaveX(ctx context.Context) []*Source {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
