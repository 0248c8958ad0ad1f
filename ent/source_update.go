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
	"github.com/fourthplaces/rootsignal/ent/predicate"
	"github.com/fourthplaces/rootsignal/ent/source"
)

// SourceUpdate is the builder for updating Source entities.
type SourceUpdate struct {
	config
	hooks    []Hook
	mutation *SourceMutation
}

// Where appends a list predicates to the SourceUpdate builder.
func (_u *SourceUpdate) Where(ps ...predicate.Source) *SourceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCanonicalValue sets the "canonical_value" field.
func (_u *SourceUpdate) SetCanonicalValue(v string) *SourceUpdate {
	_u.mutation.SetCanonicalValue(v)
	return _u
}

// SetNillableCanonicalValue sets the "canonical_value" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableCanonicalValue(v *string) *SourceUpdate {
	if v != nil {
		_u.SetCanonicalValue(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *SourceUpdate) SetPlatform(v string) *SourceUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *SourceUpdate) SetNillablePlatform(v *string) *SourceUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// ClearPlatform clears the value of the "platform" field.
func (_u *SourceUpdate) ClearPlatform() *SourceUpdate {
	_u.mutation.ClearPlatform()
	return _u
}

// SetWeight sets the "weight" field.
func (_u *SourceUpdate) SetWeight(v float64) *SourceUpdate {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableWeight(v *float64) *SourceUpdate {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *SourceUpdate) AddWeight(v float64) *SourceUpdate {
	_u.mutation.AddWeight(v)
	return _u
}

// SetCadenceHours sets the "cadence_hours" field.
func (_u *SourceUpdate) SetCadenceHours(v int) *SourceUpdate {
	_u.mutation.ResetCadenceHours()
	_u.mutation.SetCadenceHours(v)
	return _u
}

// SetNillableCadenceHours sets the "cadence_hours" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableCadenceHours(v *int) *SourceUpdate {
	if v != nil {
		_u.SetCadenceHours(*v)
	}
	return _u
}

// AddCadenceHours adds value to the "cadence_hours" field.
func (_u *SourceUpdate) AddCadenceHours(v int) *SourceUpdate {
	_u.mutation.AddCadenceHours(v)
	return _u
}

// SetConsecutiveEmptyRuns sets the "consecutive_empty_runs" field.
func (_u *SourceUpdate) SetConsecutiveEmptyRuns(v int) *SourceUpdate {
	_u.mutation.ResetConsecutiveEmptyRuns()
	_u.mutation.SetConsecutiveEmptyRuns(v)
	return _u
}

// SetNillableConsecutiveEmptyRuns sets the "consecutive_empty_runs" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableConsecutiveEmptyRuns(v *int) *SourceUpdate {
	if v != nil {
		_u.SetConsecutiveEmptyRuns(*v)
	}
	return _u
}

// AddConsecutiveEmptyRuns adds value to the "consecutive_empty_runs" field.
func (_u *SourceUpdate) AddConsecutiveEmptyRuns(v int) *SourceUpdate {
	_u.mutation.AddConsecutiveEmptyRuns(v)
	return _u
}

// SetScrapeCount sets the "scrape_count" field.
func (_u *SourceUpdate) SetScrapeCount(v int) *SourceUpdate {
	_u.mutation.ResetScrapeCount()
	_u.mutation.SetScrapeCount(v)
	return _u
}

// SetNillableScrapeCount sets the "scrape_count" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableScrapeCount(v *int) *SourceUpdate {
	if v != nil {
		_u.SetScrapeCount(*v)
	}
	return _u
}

// AddScrapeCount adds value to the "scrape_count" field.
func (_u *SourceUpdate) AddScrapeCount(v int) *SourceUpdate {
	_u.mutation.AddScrapeCount(v)
	return _u
}

// SetSignalsProduced sets the "signals_produced" field.
func (_u *SourceUpdate) SetSignalsProduced(v int) *SourceUpdate {
	_u.mutation.ResetSignalsProduced()
	_u.mutation.SetSignalsProduced(v)
	return _u
}

// SetNillableSignalsProduced sets the "signals_produced" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableSignalsProduced(v *int) *SourceUpdate {
	if v != nil {
		_u.SetSignalsProduced(*v)
	}
	return _u
}

// AddSignalsProduced adds value to the "signals_produced" field.
func (_u *SourceUpdate) AddSignalsProduced(v int) *SourceUpdate {
	_u.mutation.AddSignalsProduced(v)
	return _u
}

// SetSignalsCorroborated sets the "signals_corroborated" field.
func (_u *SourceUpdate) SetSignalsCorroborated(v int) *SourceUpdate {
	_u.mutation.ResetSignalsCorroborated()
	_u.mutation.SetSignalsCorroborated(v)
	return _u
}

// SetNillableSignalsCorroborated sets the "signals_corroborated" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableSignalsCorroborated(v *int) *SourceUpdate {
	if v != nil {
		_u.SetSignalsCorroborated(*v)
	}
	return _u
}

// AddSignalsCorroborated adds value to the "signals_corroborated" field.
func (_u *SourceUpdate) AddSignalsCorroborated(v int) *SourceUpdate {
	_u.mutation.AddSignalsCorroborated(v)
	return _u
}

// SetTensionsProduced sets the "tensions_produced" field.
func (_u *SourceUpdate) SetTensionsProduced(v int) *SourceUpdate {
	_u.mutation.ResetTensionsProduced()
	_u.mutation.SetTensionsProduced(v)
	return _u
}

// SetNillableTensionsProduced sets the "tensions_produced" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableTensionsProduced(v *int) *SourceUpdate {
	if v != nil {
		_u.SetTensionsProduced(*v)
	}
	return _u
}

// AddTensionsProduced adds value to the "tensions_produced" field.
func (_u *SourceUpdate) AddTensionsProduced(v int) *SourceUpdate {
	_u.mutation.AddTensionsProduced(v)
	return _u
}

// SetLastScraped sets the "last_scraped" field.
func (_u *SourceUpdate) SetLastScraped(v time.Time) *SourceUpdate {
	_u.mutation.SetLastScraped(v)
	return _u
}

// SetNillableLastScraped sets the "last_scraped" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableLastScraped(v *time.Time) *SourceUpdate {
	if v != nil {
		_u.SetLastScraped(*v)
	}
	return _u
}

// ClearLastScraped clears the value of the "last_scraped" field.
func (_u *SourceUpdate) ClearLastScraped() *SourceUpdate {
	_u.mutation.ClearLastScraped()
	return _u
}

// SetLastProducedSignal sets the "last_produced_signal" field.
func (_u *SourceUpdate) SetLastProducedSignal(v time.Time) *SourceUpdate {
	_u.mutation.SetLastProducedSignal(v)
	return _u
}

// SetNillableLastProducedSignal sets the "last_produced_signal" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableLastProducedSignal(v *time.Time) *SourceUpdate {
	if v != nil {
		_u.SetLastProducedSignal(*v)
	}
	return _u
}

// ClearLastProducedSignal clears the value of the "last_produced_signal" field.
func (_u *SourceUpdate) ClearLastProducedSignal() *SourceUpdate {
	_u.mutation.ClearLastProducedSignal()
	return _u
}

// SetQualityPenalty sets the "quality_penalty" field.
func (_u *SourceUpdate) SetQualityPenalty(v float64) *SourceUpdate {
	_u.mutation.ResetQualityPenalty()
	_u.mutation.SetQualityPenalty(v)
	return _u
}

// SetNillableQualityPenalty sets the "quality_penalty" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableQualityPenalty(v *float64) *SourceUpdate {
	if v != nil {
		_u.SetQualityPenalty(*v)
	}
	return _u
}

// AddQualityPenalty adds value to the "quality_penalty" field.
func (_u *SourceUpdate) AddQualityPenalty(v float64) *SourceUpdate {
	_u.mutation.AddQualityPenalty(v)
	return _u
}

// SetDiscoveryMethod sets the "discovery_method" field.
func (_u *SourceUpdate) SetDiscoveryMethod(v source.DiscoveryMethod) *SourceUpdate {
	_u.mutation.SetDiscoveryMethod(v)
	return _u
}

// SetNillableDiscoveryMethod sets the "discovery_method" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableDiscoveryMethod(v *source.DiscoveryMethod) *SourceUpdate {
	if v != nil {
		_u.SetDiscoveryMethod(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *SourceUpdate) SetActive(v bool) *SourceUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableActive(v *bool) *SourceUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetLat sets the "lat" field.
func (_u *SourceUpdate) SetLat(v float64) *SourceUpdate {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableLat(v *float64) *SourceUpdate {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *SourceUpdate) AddLat(v float64) *SourceUpdate {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *SourceUpdate) ClearLat() *SourceUpdate {
	_u.mutation.ClearLat()
	return _u
}

// SetLng sets the "lng" field.
func (_u *SourceUpdate) SetLng(v float64) *SourceUpdate {
	_u.mutation.ResetLng()
	_u.mutation.SetLng(v)
	return _u
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableLng(v *float64) *SourceUpdate {
	if v != nil {
		_u.SetLng(*v)
	}
	return _u
}

// AddLng adds value to the "lng" field.
func (_u *SourceUpdate) AddLng(v float64) *SourceUpdate {
	_u.mutation.AddLng(v)
	return _u
}

// ClearLng clears the value of the "lng" field.
func (_u *SourceUpdate) ClearLng() *SourceUpdate {
	_u.mutation.ClearLng()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SourceUpdate) SetUpdatedAt(v time.Time) *SourceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SourceMutation object of the builder.
func (_u *SourceUpdate) Mutation() *SourceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SourceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := source.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceUpdate) check() error {
	if v, ok := _u.mutation.DiscoveryMethod(); ok {
		if err := source.DiscoveryMethodValidator(v); err != nil {
			return &ValidationError{Name: "discovery_method", err: fmt.Errorf(`ent: validator failed for field "Source.discovery_method": %w`, err)}
		}
	}
	return nil
}

func (_u *SourceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(source.Table, source.Columns, sqlgraph.NewFieldSpec(source.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CanonicalValue(); ok {
		_spec.SetField(source.FieldCanonicalValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(source.FieldPlatform, field.TypeString, value)
	}
	if _u.mutation.PlatformCleared() {
		_spec.ClearField(source.FieldPlatform, field.TypeString)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(source.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(source.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CadenceHours(); ok {
		_spec.SetField(source.FieldCadenceHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCadenceHours(); ok {
		_spec.AddField(source.FieldCadenceHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutiveEmptyRuns(); ok {
		_spec.SetField(source.FieldConsecutiveEmptyRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveEmptyRuns(); ok {
		_spec.AddField(source.FieldConsecutiveEmptyRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScrapeCount(); ok {
		_spec.SetField(source.FieldScrapeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScrapeCount(); ok {
		_spec.AddField(source.FieldScrapeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SignalsProduced(); ok {
		_spec.SetField(source.FieldSignalsProduced, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSignalsProduced(); ok {
		_spec.AddField(source.FieldSignalsProduced, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SignalsCorroborated(); ok {
		_spec.SetField(source.FieldSignalsCorroborated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSignalsCorroborated(); ok {
		_spec.AddField(source.FieldSignalsCorroborated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TensionsProduced(); ok {
		_spec.SetField(source.FieldTensionsProduced, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTensionsProduced(); ok {
		_spec.AddField(source.FieldTensionsProduced, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastScraped(); ok {
		_spec.SetField(source.FieldLastScraped, field.TypeTime, value)
	}
	if _u.mutation.LastScrapedCleared() {
		_spec.ClearField(source.FieldLastScraped, field.TypeTime)
	}
	if value, ok := _u.mutation.LastProducedSignal(); ok {
		_spec.SetField(source.FieldLastProducedSignal, field.TypeTime, value)
	}
	if _u.mutation.LastProducedSignalCleared() {
		_spec.ClearField(source.FieldLastProducedSignal, field.TypeTime)
	}
	if value, ok := _u.mutation.QualityPenalty(); ok {
		_spec.SetField(source.FieldQualityPenalty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityPenalty(); ok {
		_spec.AddField(source.FieldQualityPenalty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DiscoveryMethod(); ok {
		_spec.SetField(source.FieldDiscoveryMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(source.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(source.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(source.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(source.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lng(); ok {
		_spec.SetField(source.FieldLng, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLng(); ok {
		_spec.AddField(source.FieldLng, field.TypeFloat64, value)
	}
	if _u.mutation.LngCleared() {
		_spec.ClearField(source.FieldLng, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(source.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{source.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceUpdateOne is the builder for updating a single Source entity.
type SourceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SourceMutation
}

// SetCanonicalValue sets the "canonical_value" field.
func (_u *SourceUpdateOne) SetCanonicalValue(v string) *SourceUpdateOne {
	_u.mutation.SetCanonicalValue(v)
	return _u
}

// SetNillableCanonicalValue sets the "canonical_value" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableCanonicalValue(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetCanonicalValue(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *SourceUpdateOne) SetPlatform(v string) *SourceUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillablePlatform(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// ClearPlatform clears the value of the "platform" field.
func (_u *SourceUpdateOne) ClearPlatform() *SourceUpdateOne {
	_u.mutation.ClearPlatform()
	return _u
}

// SetWeight sets the "weight" field.
func (_u *SourceUpdateOne) SetWeight(v float64) *SourceUpdateOne {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableWeight(v *float64) *SourceUpdateOne {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *SourceUpdateOne) AddWeight(v float64) *SourceUpdateOne {
	_u.mutation.AddWeight(v)
	return _u
}

// SetCadenceHours sets the "cadence_hours" field.
func (_u *SourceUpdateOne) SetCadenceHours(v int) *SourceUpdateOne {
	_u.mutation.ResetCadenceHours()
	_u.mutation.SetCadenceHours(v)
	return _u
}

// SetNillableCadenceHours sets the "cadence_hours" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableCadenceHours(v *int) *SourceUpdateOne {
	if v != nil {
		_u.SetCadenceHours(*v)
	}
	return _u
}

// AddCadenceHours adds value to the "cadence_hours" field.
func (_u *SourceUpdateOne) AddCadenceHours(v int) *SourceUpdateOne {
	_u.mutation.AddCadenceHours(v)
	return _u
}

// SetConsecutiveEmptyRuns sets the "consecutive_empty_runs" field.
func (_u *SourceUpdateOne) SetConsecutiveEmptyRuns(v int) *SourceUpdateOne {
	_u.mutation.ResetConsecutiveEmptyRuns()
	_u.mutation.SetConsecutiveEmptyRuns(v)
	return _u
}

// SetNillableConsecutiveEmptyRuns sets the "consecutive_empty_runs" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableConsecutiveEmptyRuns(v *int) *SourceUpdateOne {
	if v != nil {
		_u.SetConsecutiveEmptyRuns(*v)
	}
	return _u
}

// AddConsecutiveEmptyRuns adds value to the "consecutive_empty_runs" field.
func (_u *SourceUpdateOne) AddConsecutiveEmptyRuns(v int) *SourceUpdateOne {
	_u.mutation.AddConsecutiveEmptyRuns(v)
	return _u
}

// SetScrapeCount sets the "scrape_count" field.
func (_u *SourceUpdateOne) SetScrapeCount(v int) *SourceUpdateOne {
	_u.mutation.ResetScrapeCount()
	_u.mutation.SetScrapeCount(v)
	return _u
}

// SetNillableScrapeCount sets the "scrape_count" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableScrapeCount(v *int) *SourceUpdateOne {
	if v != nil {
		_u.SetScrapeCount(*v)
	}
	return _u
}

// AddScrapeCount adds value to the "scrape_count" field.
func (_u *SourceUpdateOne) AddScrapeCount(v int) *SourceUpdateOne {
	_u.mutation.AddScrapeCount(v)
	return _u
}

// SetSignalsProduced sets the "signals_produced" field.
func (_u *SourceUpdateOne) SetSignalsProduced(v int) *SourceUpdateOne {
	_u.mutation.ResetSignalsProduced()
	_u.mutation.SetSignalsProduced(v)
	return _u
}

// SetNillableSignalsProduced sets the "signals_produced" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableSignalsProduced(v *int) *SourceUpdateOne {
	if v != nil {
		_u.SetSignalsProduced(*v)
	}
	return _u
}

// AddSignalsProduced adds value to the "signals_produced" field.
func (_u *SourceUpdateOne) AddSignalsProduced(v int) *SourceUpdateOne {
	_u.mutation.AddSignalsProduced(v)
	return _u
}

// SetSignalsCorroborated sets the "signals_corroborated" field.
func (_u *SourceUpdateOne) SetSignalsCorroborated(v int) *SourceUpdateOne {
	_u.mutation.ResetSignalsCorroborated()
	_u.mutation.SetSignalsCorroborated(v)
	return _u
}

// SetNillableSignalsCorroborated sets the "signals_corroborated" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableSignalsCorroborated(v *int) *SourceUpdateOne {
	if v != nil {
		_u.SetSignalsCorroborated(*v)
	}
	return _u
}

// AddSignalsCorroborated adds value to the "signals_corroborated" field.
func (_u *SourceUpdateOne) AddSignalsCorroborated(v int) *SourceUpdateOne {
	_u.mutation.AddSignalsCorroborated(v)
	return _u
}

// SetTensionsProduced sets the "tensions_produced" field.
func (_u *SourceUpdateOne) SetTensionsProduced(v int) *SourceUpdateOne {
	_u.mutation.ResetTensionsProduced()
	_u.mutation.SetTensionsProduced(v)
	return _u
}

// SetNillableTensionsProduced sets the "tensions_produced" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableTensionsProduced(v *int) *SourceUpdateOne {
	if v != nil {
		_u.SetTensionsProduced(*v)
	}
	return _u
}

// AddTensionsProduced adds value to the "tensions_produced" field.
func (_u *SourceUpdateOne) AddTensionsProduced(v int) *SourceUpdateOne {
	_u.mutation.AddTensionsProduced(v)
	return _u
}

// SetLastScraped sets the "last_scraped" field.
func (_u *SourceUpdateOne) SetLastScraped(v time.Time) *SourceUpdateOne {
	_u.mutation.SetLastScraped(v)
	return _u
}

// SetNillableLastScraped sets the "last_scraped" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableLastScraped(v *time.Time) *SourceUpdateOne {
	if v != nil {
		_u.SetLastScraped(*v)
	}
	return _u
}

// ClearLastScraped clears the value of the "last_scraped" field.
func (_u *SourceUpdateOne) ClearLastScraped() *SourceUpdateOne {
	_u.mutation.ClearLastScraped()
	return _u
}

// SetLastProducedSignal sets the "last_produced_signal" field.
func (_u *SourceUpdateOne) SetLastProducedSignal(v time.Time) *SourceUpdateOne {
	_u.mutation.SetLastProducedSignal(v)
	return _u
}

// SetNillableLastProducedSignal sets the "last_produced_signal" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableLastProducedSignal(v *time.Time) *SourceUpdateOne {
	if v != nil {
		_u.SetLastProducedSignal(*v)
	}
	return _u
}

// ClearLastProducedSignal clears the value of the "last_produced_signal" field.
func (_u *SourceUpdateOne) ClearLastProducedSignal() *SourceUpdateOne {
	_u.mutation.ClearLastProducedSignal()
	return _u
}

// SetQualityPenalty sets the "quality_penalty" field.
func (_u *SourceUpdateOne) SetQualityPenalty(v float64) *SourceUpdateOne {
	_u.mutation.ResetQualityPenalty()
	_u.mutation.SetQualityPenalty(v)
	return _u
}

// SetNillableQualityPenalty sets the "quality_penalty" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableQualityPenalty(v *float64) *SourceUpdateOne {
	if v != nil {
		_u.SetQualityPenalty(*v)
	}
	return _u
}

// AddQualityPenalty adds value to the "quality_penalty" field.
func (_u *SourceUpdateOne) AddQualityPenalty(v float64) *SourceUpdateOne {
	_u.mutation.AddQualityPenalty(v)
	return _u
}

// SetDiscoveryMethod sets the "discovery_method" field.
func (_u *SourceUpdateOne) SetDiscoveryMethod(v source.DiscoveryMethod) *SourceUpdateOne {
	_u.mutation.SetDiscoveryMethod(v)
	return _u
}

// SetNillableDiscoveryMethod sets the "discovery_method" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableDiscoveryMethod(v *source.DiscoveryMethod) *SourceUpdateOne {
	if v != nil {
		_u.SetDiscoveryMethod(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *SourceUpdateOne) SetActive(v bool) *SourceUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableActive(v *bool) *SourceUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetLat sets the "lat" field.
func (_u *SourceUpdateOne) SetLat(v float64) *SourceUpdateOne {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableLat(v *float64) *SourceUpdateOne {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *SourceUpdateOne) AddLat(v float64) *SourceUpdateOne {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *SourceUpdateOne) ClearLat() *SourceUpdateOne {
	_u.mutation.ClearLat()
	return _u
}

// SetLng sets the "lng" field.
func (_u *SourceUpdateOne) SetLng(v float64) *SourceUpdateOne {
	_u.mutation.ResetLng()
	_u.mutation.SetLng(v)
	return _u
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableLng(v *float64) *SourceUpdateOne {
	if v != nil {
		_u.SetLng(*v)
	}
	return _u
}

// AddLng adds value to the "lng" field.
func (_u *SourceUpdateOne) AddLng(v float64) *SourceUpdateOne {
	_u.mutation.AddLng(v)
	return _u
}

// ClearLng clears the value of the "lng" field.
func (_u *SourceUpdateOne) ClearLng() *SourceUpdateOne {
	_u.mutation.ClearLng()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SourceUpdateOne) SetUpdatedAt(v time.Time) *SourceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SourceMutation object of the builder.
func (_u *SourceUpdateOne) Mutation() *SourceMutation {
	return _u.mutation
}

// Where appends a list predicates to the SourceUpdate builder.
func (_u *SourceUpdateOne) Where(ps ...predicate.Source) *SourceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceUpdateOne) Select(field string, fields ...string) *SourceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Source entity.
func (_u *SourceUpdateOne) Save(ctx context.Context) (*Source, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceUpdateOne) SaveX(ctx context.Context) *Source {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SourceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := source.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceUpdateOne) check() error {
	if v, ok := _u.mutation.DiscoveryMethod(); ok {
		if err := source.DiscoveryMethodValidator(v); err != nil {
			return &ValidationError{Name: "discovery_method", err: fmt.Errorf(`ent: validator failed for field "Source.discovery_method": %w`, err)}
		}
	}
	return nil
}

func (_u *SourceUpdateOne) sqlSave(ctx context.Context) (_node *Source, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(source.Table, source.Columns, sqlgraph.NewFieldSpec(source.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Source.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, source.FieldID)
		for _, f := range fields {
			if !source.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != source.FieldID {
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
	if value, ok := _u.mutation.CanonicalValue(); ok {
		_spec.SetField(source.FieldCanonicalValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(source.FieldPlatform, field.TypeString, value)
	}
	if _u.mutation.PlatformCleared() {
		_spec.ClearField(source.FieldPlatform, field.TypeString)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(source.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(source.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CadenceHours(); ok {
		_spec.SetField(source.FieldCadenceHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCadenceHours(); ok {
		_spec.AddField(source.FieldCadenceHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutiveEmptyRuns(); ok {
		_spec.SetField(source.FieldConsecutiveEmptyRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveEmptyRuns(); ok {
		_spec.AddField(source.FieldConsecutiveEmptyRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScrapeCount(); ok {
		_spec.SetField(source.FieldScrapeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScrapeCount(); ok {
		_spec.AddField(source.FieldScrapeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SignalsProduced(); ok {
		_spec.SetField(source.FieldSignalsProduced, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSignalsProduced(); ok {
		_spec.AddField(source.FieldSignalsProduced, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SignalsCorroborated(); ok {
		_spec.SetField(source.FieldSignalsCorroborated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSignalsCorroborated(); ok {
		_spec.AddField(source.FieldSignalsCorroborated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TensionsProduced(); ok {
		_spec.SetField(source.FieldTensionsProduced, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTensionsProduced(); ok {
		_spec.AddField(source.FieldTensionsProduced, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastScraped(); ok {
		_spec.SetField(source.FieldLastScraped, field.TypeTime, value)
	}
	if _u.mutation.LastScrapedCleared() {
		_spec.ClearField(source.FieldLastScraped, field.TypeTime)
	}
	if value, ok := _u.mutation.LastProducedSignal(); ok {
		_spec.SetField(source.FieldLastProducedSignal, field.TypeTime, value)
	}
	if _u.mutation.LastProducedSignalCleared() {
		_spec.ClearField(source.FieldLastProducedSignal, field.TypeTime)
	}
	if value, ok := _u.mutation.QualityPenalty(); ok {
		_spec.SetField(source.FieldQualityPenalty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityPenalty(); ok {
		_spec.AddField(source.FieldQualityPenalty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DiscoveryMethod(); ok {
		_spec.SetField(source.FieldDiscoveryMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(source.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(source.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(source.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(source.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lng(); ok {
		_spec.SetField(source.FieldLng, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLng(); ok {
		_spec.AddField(source.FieldLng, field.TypeFloat64, value)
	}
	if _u.mutation.LngCleared() {
		_spec.ClearField(source.FieldLng, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(source.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Source{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{source.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
