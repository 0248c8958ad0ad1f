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
	"github.com/fourthplaces/rootsignal/ent/actor"
	"github.com/fourthplaces/rootsignal/ent/evidence"
	"github.com/fourthplaces/rootsignal/ent/predicate"
	"github.com/fourthplaces/rootsignal/ent/signal"
)

// SignalUpdate is the builder for updating Signal entities.
type SignalUpdate struct {
	config
	hooks    []Hook
	mutation *SignalMutation
}

// Where appends a list predicates to the SignalUpdate builder.
func (_u *SignalUpdate) Where(ps ...predicate.Signal) *SignalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *SignalUpdate) SetTitle(v string) *SignalUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SignalUpdate) SetNillableTitle(v *string) *SignalUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTitleKey sets the "title_key" field.
func (_u *SignalUpdate) SetTitleKey(v string) *SignalUpdate {
	_u.mutation.SetTitleKey(v)
	return _u
}

// SetNillableTitleKey sets the "title_key" field if the given value is not nil.
func (_u *SignalUpdate) SetNillableTitleKey(v *string) *SignalUpdate {
	if v != nil {
		_u.SetTitleKey(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SignalUpdate) SetSummary(v string) *SignalUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *SignalUpdate) SetNillableSummary(v *string) *SignalUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetSensitivity sets the "sensitivity" field.
func (_u *SignalUpdate) SetSensitivity(v signal.Sensitivity) *SignalUpdate {
	_u.mutation.SetSensitivity(v)
	return _u
}

// SetNillableSensitivity sets the "sensitivity" field if the given value is not nil.
func (_u *SignalUpdate) SetNillableSensitivity(v *signal.Sensitivity) *SignalUpdate {
	if v != nil {
		_u.SetSensitivity(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SignalUpdate) SetConfidence(v float64) *SignalUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SignalUpdate) SetNillableConfidence(v *float64) *SignalUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SignalUpdate) AddConfidence(v float64) *SignalUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetFreshnessScore sets the "freshness_score" field.
func (_u *SignalUpdate) SetFreshnessScore(v float64) *SignalUpdate {
	_u.mutation.ResetFreshnessScore()
	_u.mutation.SetFreshnessScore(v)
	return _u
}

// SetNillableFreshnessScore sets the "freshness_score" field if the given value is not nil.
func (_u *SignalUpdate) SetNillableFreshnessScore(v *float64) *SignalUpdate {
	if v != nil {
		_u.SetFreshnessScore(*v)
	}
	return _u
}

// AddFreshnessScore adds value to the "freshness_score" field.
func (_u *SignalUpdate) AddFreshnessScore(v float64) *SignalUpdate {
	_u.mutation.AddFreshnessScore(v)
	return _u
}

// SetCorroborationCount sets the "corroboration_count" field.
func (_u *SignalUpdate) SetCorroborationCount(v int) *SignalUpdate {
	_u.mutation.ResetCorroborationCount()
	_u.mutation.SetCorroborationCount(v)
	return _u
}

// SetNillableCorroborationCount sets the "corroboration_count" field if the given value is not nil.
func (_u *SignalUpdate) SetNillableCorroborationCount(v *int) *SignalUpdate {
	if v != nil {
		_u.SetCorroborationCount(*v)
	}
	return _u
}

// AddCorroborationCount adds value to the "corroboration_count" field.
func (_u *SignalUpdate) AddCorroborationCount(v int) *SignalUpdate {
	_u.mutation.AddCorroborationCount(v)
	return _u
}

// SetLat sets the "lat" field.
func (_u *SignalUpdate) SetLat(v float64) *SignalUpdate {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *SignalUpdate) SetNillableLat(v *float64) *SignalUpdate {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *SignalUpdate) AddLat(v float64) *SignalUpdate {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *SignalUpdate) ClearLat() *SignalUpdate {
	_u.mutation.ClearLat()
	return _u
}

// SetLng sets the "lng" field.
func (_u *SignalUpdate) SetLng(v float64) *SignalUpdate {
	_u.mutation.ResetLng()
	_u.mutation.SetLng(v)
	return _u
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_u *SignalUpdate) SetNillableLng(v *float64) *SignalUpdate {
	if v != nil {
		_u.SetLng(*v)
	}
	return _u
}

// AddLng adds value to the "lng" field.
func (_u *SignalUpdate) AddLng(v float64) *SignalUpdate {
	_u.mutation.AddLng(v)
	return _u
}

// ClearLng clears the value of the "lng" field.
func (_u *SignalUpdate) ClearLng() *SignalUpdate {
	_u.mutation.ClearLng()
	return _u
}

// SetGeoPrecision sets the "geo_precision" field.
func (_u *SignalUpdate) SetGeoPrecision(v signal.GeoPrecision) *SignalUpdate {
	_u.mutation.SetGeoPrecision(v)
	return _u
}

// SetNillableGeoPrecision sets the "geo_precision" field if the given value is not nil.
func (_u *SignalUpdate) SetNillableGeoPrecision(v *signal.GeoPrecision) *SignalUpdate {
	if v != nil {
		_u.SetGeoPrecision(*v)
	}
	return _u
}

// ClearGeoPrecision clears the value of the "geo_precision" field.
func (_u *SignalUpdate) ClearGeoPrecision() *SignalUpdate {
	_u.mutation.ClearGeoPrecision()
	return _u
}

// SetLocationName sets the "location_name" field.
func (_u *SignalUpdate) SetLocationName(v string) *SignalUpdate {
	_u.mutation.SetLocationName(v)
	return _u
}

// SetNillableLocationName sets the "location_name" field if the given value is not nil.
func (_u *SignalUpdate) SetNillableLocationName(v *string) *SignalUpdate {
	if v != nil {
		_u.SetLocationName(*v)
	}
	return _u
}

// ClearLocationName clears the value of the "location_name" field.
func (_u *SignalUpdate) ClearLocationName() *SignalUpdate {
	_u.mutation.ClearLocationName()
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *SignalUpdate) SetSourceURL(v string) *SignalUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *SignalUpdate) SetNillableSourceURL(v *string) *SignalUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetLastConfirmedActive sets the "last_confirmed_active" field.
func (_u *SignalUpdate) SetLastConfirmedActive(v time.Time) *SignalUpdate {
	_u.mutation.SetLastConfirmedActive(v)
	return _u
}

// SetNillableLastConfirmedActive sets the "last_confirmed_active" field if the given value is not nil.
func (_u *SignalUpdate) SetNillableLastConfirmedActive(v *time.Time) *SignalUpdate {
	if v != nil {
		_u.SetLastConfirmedActive(*v)
	}
	return _u
}

// SetAudienceRoles sets the "audience_roles" field.
func (_u *SignalUpdate) SetAudienceRoles(v []string) *SignalUpdate {
	_u.mutation.SetAudienceRoles(v)
	return _u
}

// AppendAudienceRoles appends value to the "audience_roles" field.
func (_u *SignalUpdate) AppendAudienceRoles(v []string) *SignalUpdate {
	_u.mutation.AppendAudienceRoles(v)
	return _u
}

// ClearAudienceRoles clears the value of the "audience_roles" field.
func (_u *SignalUpdate) ClearAudienceRoles() *SignalUpdate {
	_u.mutation.ClearAudienceRoles()
	return _u
}

// SetSourceDiversity sets the "source_diversity" field.
func (_u *SignalUpdate) SetSourceDiversity(v int) *SignalUpdate {
	_u.mutation.ResetSourceDiversity()
	_u.mutation.SetSourceDiversity(v)
	return _u
}

// SetNillableSourceDiversity sets the "source_diversity" field if the given value is not nil.
func (_u *SignalUpdate) SetNillableSourceDiversity(v *int) *SignalUpdate {
	if v != nil {
		_u.SetSourceDiversity(*v)
	}
	return _u
}

// AddSourceDiversity adds value to the "source_diversity" field.
func (_u *SignalUpdate) AddSourceDiversity(v int) *SignalUpdate {
	_u.mutation.AddSourceDiversity(v)
	return _u
}

// SetExternalRatio sets the "external_ratio" field.
func (_u *SignalUpdate) SetExternalRatio(v float64) *SignalUpdate {
	_u.mutation.ResetExternalRatio()
	_u.mutation.SetExternalRatio(v)
	return _u
}

// SetNillableExternalRatio sets the "external_ratio" field if the given value is not nil.
func (_u *SignalUpdate) SetNillableExternalRatio(v *float64) *SignalUpdate {
	if v != nil {
		_u.SetExternalRatio(*v)
	}
	return _u
}

// AddExternalRatio adds value to the "external_ratio" field.
func (_u *SignalUpdate) AddExternalRatio(v float64) *SignalUpdate {
	_u.mutation.AddExternalRatio(v)
	return _u
}

// SetCauseHeat sets the "cause_heat" field.
func (_u *SignalUpdate) SetCauseHeat(v float64) *SignalUpdate {
	_u.mutation.ResetCauseHeat()
	_u.mutation.SetCauseHeat(v)
	return _u
}

// SetNillableCauseHeat sets the "cause_heat" field if the given value is not nil.
func (_u *SignalUpdate) SetNillableCauseHeat(v *float64) *SignalUpdate {
	if v != nil {
		_u.SetCauseHeat(*v)
	}
	return _u
}

// AddCauseHeat adds value to the "cause_heat" field.
func (_u *SignalUpdate) AddCauseHeat(v float64) *SignalUpdate {
	_u.mutation.AddCauseHeat(v)
	return _u
}

// SetMentionedActors sets the "mentioned_actors" field.
func (_u *SignalUpdate) SetMentionedActors(v []string) *SignalUpdate {
	_u.mutation.SetMentionedActors(v)
	return _u
}

// AppendMentionedActors appends value to the "mentioned_actors" field.
func (_u *SignalUpdate) AppendMentionedActors(v []string) *SignalUpdate {
	_u.mutation.AppendMentionedActors(v)
	return _u
}

// ClearMentionedActors clears the value of the "mentioned_actors" field.
func (_u *SignalUpdate) ClearMentionedActors() *SignalUpdate {
	_u.mutation.ClearMentionedActors()
	return _u
}

// SetVariant sets the "variant" field.
func (_u *SignalUpdate) SetVariant(v map[string]interface{}) *SignalUpdate {
	_u.mutation.SetVariant(v)
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *SignalUpdate) SetEmbedding(v []float32) *SignalUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *SignalUpdate) AppendEmbedding(v []float32) *SignalUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *SignalUpdate) ClearEmbedding() *SignalUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *SignalUpdate) SetSeverity(v signal.Severity) *SignalUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *SignalUpdate) SetNillableSeverity(v *signal.Severity) *SignalUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// ClearSeverity clears the value of the "severity" field.
func (_u *SignalUpdate) ClearSeverity() *SignalUpdate {
	_u.mutation.ClearSeverity()
	return _u
}

// SetExpiredAt sets the "expired_at" field.
func (_u *SignalUpdate) SetExpiredAt(v time.Time) *SignalUpdate {
	_u.mutation.SetExpiredAt(v)
	return _u
}

// SetNillableExpiredAt sets the "expired_at" field if the given value is not nil.
func (_u *SignalUpdate) SetNillableExpiredAt(v *time.Time) *SignalUpdate {
	if v != nil {
		_u.SetExpiredAt(*v)
	}
	return _u
}

// ClearExpiredAt clears the value of the "expired_at" field.
func (_u *SignalUpdate) ClearExpiredAt() *SignalUpdate {
	_u.mutation.ClearExpiredAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SignalUpdate) SetUpdatedAt(v time.Time) *SignalUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by IDs.
func (_u *SignalUpdate) AddEvidenceIDs(ids ...string) *SignalUpdate {
	_u.mutation.AddEvidenceIDs(ids...)
	return _u
}

// AddEvidence adds the "evidence" edges to the Evidence entity.
func (_u *SignalUpdate) AddEvidence(v ...*Evidence) *SignalUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvidenceIDs(ids...)
}

// AddMentionIDs adds the "mentions" edge to the Actor entity by IDs.
func (_u *SignalUpdate) AddMentionIDs(ids ...string) *SignalUpdate {
	_u.mutation.AddMentionIDs(ids...)
	return _u
}

// AddMentions adds the "mentions" edges to the Actor entity.
func (_u *SignalUpdate) AddMentions(v ...*Actor) *SignalUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMentionIDs(ids...)
}

// AddAuthorIDs adds the "authors" edge to the Actor entity by IDs.
func (_u *SignalUpdate) AddAuthorIDs(ids ...string) *SignalUpdate {
	_u.mutation.AddAuthorIDs(ids...)
	return _u
}

// AddAuthors adds the "authors" edges to the Actor entity.
func (_u *SignalUpdate) AddAuthors(v ...*Actor) *SignalUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuthorIDs(ids...)
}

// Mutation returns the SignalMutation object of the builder.
func (_u *SignalUpdate) Mutation() *SignalMutation {
	return _u.mutation
}

// ClearEvidence clears all "evidence" edges to the Evidence entity.
func (_u *SignalUpdate) ClearEvidence() *SignalUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// RemoveEvidenceIDs removes the "evidence" edge to Evidence entities by IDs.
func (_u *SignalUpdate) RemoveEvidenceIDs(ids ...string) *SignalUpdate {
	_u.mutation.RemoveEvidenceIDs(ids...)
	return _u
}

// RemoveEvidence removes "evidence" edges to Evidence entities.
func (_u *SignalUpdate) RemoveEvidence(v ...*Evidence) *SignalUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvidenceIDs(ids...)
}

// ClearMentions clears all "mentions" edges to the Actor entity.
func (_u *SignalUpdate) ClearMentions() *SignalUpdate {
	_u.mutation.ClearMentions()
	return _u
}

// RemoveMentionIDs removes the "mentions" edge to Actor entities by IDs.
func (_u *SignalUpdate) RemoveMentionIDs(ids ...string) *SignalUpdate {
	_u.mutation.RemoveMentionIDs(ids...)
	return _u
}

// RemoveMentions removes "mentions" edges to Actor entities.
func (_u *SignalUpdate) RemoveMentions(v ...*Actor) *SignalUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMentionIDs(ids...)
}

// ClearAuthors clears all "authors" edges to the Actor entity.
func (_u *SignalUpdate) ClearAuthors() *SignalUpdate {
	_u.mutation.ClearAuthors()
	return _u
}

// RemoveAuthorIDs removes the "authors" edge to Actor entities by IDs.
func (_u *SignalUpdate) RemoveAuthorIDs(ids ...string) *SignalUpdate {
	_u.mutation.RemoveAuthorIDs(ids...)
	return _u
}

// RemoveAuthors removes "authors" edges to Actor entities.
func (_u *SignalUpdate) RemoveAuthors(v ...*Actor) *SignalUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuthorIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SignalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SignalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SignalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SignalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SignalUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := signal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SignalUpdate) check() error {
	if v, ok := _u.mutation.Sensitivity(); ok {
		if err := signal.SensitivityValidator(v); err != nil {
			return &ValidationError{Name: "sensitivity", err: fmt.Errorf(`ent: validator failed for field "Signal.sensitivity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GeoPrecision(); ok {
		if err := signal.GeoPrecisionValidator(v); err != nil {
			return &ValidationError{Name: "geo_precision", err: fmt.Errorf(`ent: validator failed for field "Signal.geo_precision": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := signal.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Signal.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *SignalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(signal.Table, signal.Columns, sqlgraph.NewFieldSpec(signal.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(signal.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.TitleKey(); ok {
		_spec.SetField(signal.FieldTitleKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(signal.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sensitivity(); ok {
		_spec.SetField(signal.FieldSensitivity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(signal.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(signal.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FreshnessScore(); ok {
		_spec.SetField(signal.FieldFreshnessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFreshnessScore(); ok {
		_spec.AddField(signal.FieldFreshnessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CorroborationCount(); ok {
		_spec.SetField(signal.FieldCorroborationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorroborationCount(); ok {
		_spec.AddField(signal.FieldCorroborationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(signal.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(signal.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(signal.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lng(); ok {
		_spec.SetField(signal.FieldLng, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLng(); ok {
		_spec.AddField(signal.FieldLng, field.TypeFloat64, value)
	}
	if _u.mutation.LngCleared() {
		_spec.ClearField(signal.FieldLng, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GeoPrecision(); ok {
		_spec.SetField(signal.FieldGeoPrecision, field.TypeEnum, value)
	}
	if _u.mutation.GeoPrecisionCleared() {
		_spec.ClearField(signal.FieldGeoPrecision, field.TypeEnum)
	}
	if value, ok := _u.mutation.LocationName(); ok {
		_spec.SetField(signal.FieldLocationName, field.TypeString, value)
	}
	if _u.mutation.LocationNameCleared() {
		_spec.ClearField(signal.FieldLocationName, field.TypeString)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(signal.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastConfirmedActive(); ok {
		_spec.SetField(signal.FieldLastConfirmedActive, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AudienceRoles(); ok {
		_spec.SetField(signal.FieldAudienceRoles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAudienceRoles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, signal.FieldAudienceRoles, value)
		})
	}
	if _u.mutation.AudienceRolesCleared() {
		_spec.ClearField(signal.FieldAudienceRoles, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceDiversity(); ok {
		_spec.SetField(signal.FieldSourceDiversity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourceDiversity(); ok {
		_spec.AddField(signal.FieldSourceDiversity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExternalRatio(); ok {
		_spec.SetField(signal.FieldExternalRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExternalRatio(); ok {
		_spec.AddField(signal.FieldExternalRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CauseHeat(); ok {
		_spec.SetField(signal.FieldCauseHeat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCauseHeat(); ok {
		_spec.AddField(signal.FieldCauseHeat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MentionedActors(); ok {
		_spec.SetField(signal.FieldMentionedActors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMentionedActors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, signal.FieldMentionedActors, value)
		})
	}
	if _u.mutation.MentionedActorsCleared() {
		_spec.ClearField(signal.FieldMentionedActors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Variant(); ok {
		_spec.SetField(signal.FieldVariant, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(signal.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, signal.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(signal.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(signal.FieldSeverity, field.TypeEnum, value)
	}
	if _u.mutation.SeverityCleared() {
		_spec.ClearField(signal.FieldSeverity, field.TypeEnum)
	}
	if value, ok := _u.mutation.ExpiredAt(); ok {
		_spec.SetField(signal.FieldExpiredAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiredAtCleared() {
		_spec.ClearField(signal.FieldExpiredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(signal.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   signal.EvidenceTable,
			Columns: signal.EvidencePrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvidenceIDs(); len(nodes) > 0 && !_u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   signal.EvidenceTable,
			Columns: signal.EvidencePrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   signal.EvidenceTable,
			Columns: signal.EvidencePrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MentionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   signal.MentionsTable,
			Columns: signal.MentionsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMentionsIDs(); len(nodes) > 0 && !_u.mutation.MentionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   signal.MentionsTable,
			Columns: signal.MentionsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MentionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   signal.MentionsTable,
			Columns: signal.MentionsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuthorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   signal.AuthorsTable,
			Columns: signal.AuthorsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuthorsIDs(); len(nodes) > 0 && !_u.mutation.AuthorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   signal.AuthorsTable,
			Columns: signal.AuthorsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   signal.AuthorsTable,
			Columns: signal.AuthorsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{signal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SignalUpdateOne is the builder for updating a single Signal entity.
type SignalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SignalMutation
}

// SetTitle sets the "title" field.
func (_u *SignalUpdateOne) SetTitle(v string) *SignalUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SignalUpdateOne) SetNillableTitle(v *string) *SignalUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTitleKey sets the "title_key" field.
func (_u *SignalUpdateOne) SetTitleKey(v string) *SignalUpdateOne {
	_u.mutation.SetTitleKey(v)
	return _u
}

// SetNillableTitleKey sets the "title_key" field if the given value is not nil.
func (_u *SignalUpdateOne) SetNillableTitleKey(v *string) *SignalUpdateOne {
	if v != nil {
		_u.SetTitleKey(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SignalUpdateOne) SetSummary(v string) *SignalUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *SignalUpdateOne) SetNillableSummary(v *string) *SignalUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetSensitivity sets the "sensitivity" field.
func (_u *SignalUpdateOne) SetSensitivity(v signal.Sensitivity) *SignalUpdateOne {
	_u.mutation.SetSensitivity(v)
	return _u
}

// SetNillableSensitivity sets the "sensitivity" field if the given value is not nil.
func (_u *SignalUpdateOne) SetNillableSensitivity(v *signal.Sensitivity) *SignalUpdateOne {
	if v != nil {
		_u.SetSensitivity(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SignalUpdateOne) SetConfidence(v float64) *SignalUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SignalUpdateOne) SetNillableConfidence(v *float64) *SignalUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SignalUpdateOne) AddConfidence(v float64) *SignalUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetFreshnessScore sets the "freshness_score" field.
func (_u *SignalUpdateOne) SetFreshnessScore(v float64) *SignalUpdateOne {
	_u.mutation.ResetFreshnessScore()
	_u.mutation.SetFreshnessScore(v)
	return _u
}

// SetNillableFreshnessScore sets the "freshness_score" field if the given value is not nil.
func (_u *SignalUpdateOne) SetNillableFreshnessScore(v *float64) *SignalUpdateOne {
	if v != nil {
		_u.SetFreshnessScore(*v)
	}
	return _u
}

// AddFreshnessScore adds value to the "freshness_score" field.
func (_u *SignalUpdateOne) AddFreshnessScore(v float64) *SignalUpdateOne {
	_u.mutation.AddFreshnessScore(v)
	return _u
}

// SetCorroborationCount sets the "corroboration_count" field.
func (_u *SignalUpdateOne) SetCorroborationCount(v int) *SignalUpdateOne {
	_u.mutation.ResetCorroborationCount()
	_u.mutation.SetCorroborationCount(v)
	return _u
}

// SetNillableCorroborationCount sets the "corroboration_count" field if the given value is not nil.
func (_u *SignalUpdateOne) SetNillableCorroborationCount(v *int) *SignalUpdateOne {
	if v != nil {
		_u.SetCorroborationCount(*v)
	}
	return _u
}

// AddCorroborationCount adds value to the "corroboration_count" field.
func (_u *SignalUpdateOne) AddCorroborationCount(v int) *SignalUpdateOne {
	_u.mutation.AddCorroborationCount(v)
	return _u
}

// SetLat sets the "lat" field.
func (_u *SignalUpdateOne) SetLat(v float64) *SignalUpdateOne {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *SignalUpdateOne) SetNillableLat(v *float64) *SignalUpdateOne {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *SignalUpdateOne) AddLat(v float64) *SignalUpdateOne {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *SignalUpdateOne) ClearLat() *SignalUpdateOne {
	_u.mutation.ClearLat()
	return _u
}

// SetLng sets the "lng" field.
func (_u *SignalUpdateOne) SetLng(v float64) *SignalUpdateOne {
	_u.mutation.ResetLng()
	_u.mutation.SetLng(v)
	return _u
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_u *SignalUpdateOne) SetNillableLng(v *float64) *SignalUpdateOne {
	if v != nil {
		_u.SetLng(*v)
	}
	return _u
}

// AddLng adds value to the "lng" field.
func (_u *SignalUpdateOne) AddLng(v float64) *SignalUpdateOne {
	_u.mutation.AddLng(v)
	return _u
}

// ClearLng clears the value of the "lng" field.
func (_u *SignalUpdateOne) ClearLng() *SignalUpdateOne {
	_u.mutation.ClearLng()
	return _u
}

// SetGeoPrecision sets the "geo_precision" field.
func (_u *SignalUpdateOne) SetGeoPrecision(v signal.GeoPrecision) *SignalUpdateOne {
	_u.mutation.SetGeoPrecision(v)
	return _u
}

// SetNillableGeoPrecision sets the "geo_precision" field if the given value is not nil.
func (_u *SignalUpdateOne) SetNillableGeoPrecision(v *signal.GeoPrecision) *SignalUpdateOne {
	if v != nil {
		_u.SetGeoPrecision(*v)
	}
	return _u
}

// ClearGeoPrecision clears the value of the "geo_precision" field.
func (_u *SignalUpdateOne) ClearGeoPrecision() *SignalUpdateOne {
	_u.mutation.ClearGeoPrecision()
	return _u
}

// SetLocationName sets the "location_name" field.
func (_u *SignalUpdateOne) SetLocationName(v string) *SignalUpdateOne {
	_u.mutation.SetLocationName(v)
	return _u
}

// SetNillableLocationName sets the "location_name" field if the given value is not nil.
func (_u *SignalUpdateOne) SetNillableLocationName(v *string) *SignalUpdateOne {
	if v != nil {
		_u.SetLocationName(*v)
	}
	return _u
}

// ClearLocationName clears the value of the "location_name" field.
func (_u *SignalUpdateOne) ClearLocationName() *SignalUpdateOne {
	_u.mutation.ClearLocationName()
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *SignalUpdateOne) SetSourceURL(v string) *SignalUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *SignalUpdateOne) SetNillableSourceURL(v *string) *SignalUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetLastConfirmedActive sets the "last_confirmed_active" field.
func (_u *SignalUpdateOne) SetLastConfirmedActive(v time.Time) *SignalUpdateOne {
	_u.mutation.SetLastConfirmedActive(v)
	return _u
}

// SetNillableLastConfirmedActive sets the "last_confirmed_active" field if the given value is not nil.
func (_u *SignalUpdateOne) SetNillableLastConfirmedActive(v *time.Time) *SignalUpdateOne {
	if v != nil {
		_u.SetLastConfirmedActive(*v)
	}
	return _u
}

// SetAudienceRoles sets the "audience_roles" field.
func (_u *SignalUpdateOne) SetAudienceRoles(v []string) *SignalUpdateOne {
	_u.mutation.SetAudienceRoles(v)
	return _u
}

// AppendAudienceRoles appends value to the "audience_roles" field.
func (_u *SignalUpdateOne) AppendAudienceRoles(v []string) *SignalUpdateOne {
	_u.mutation.AppendAudienceRoles(v)
	return _u
}

// ClearAudienceRoles clears the value of the "audience_roles" field.
func (_u *SignalUpdateOne) ClearAudienceRoles() *SignalUpdateOne {
	_u.mutation.ClearAudienceRoles()
	return _u
}

// SetSourceDiversity sets the "source_diversity" field.
func (_u *SignalUpdateOne) SetSourceDiversity(v int) *SignalUpdateOne {
	_u.mutation.ResetSourceDiversity()
	_u.mutation.SetSourceDiversity(v)
	return _u
}

// SetNillableSourceDiversity sets the "source_diversity" field if the given value is not nil.
func (_u *SignalUpdateOne) SetNillableSourceDiversity(v *int) *SignalUpdateOne {
	if v != nil {
		_u.SetSourceDiversity(*v)
	}
	return _u
}

// AddSourceDiversity adds value to the "source_diversity" field.
func (_u *SignalUpdateOne) AddSourceDiversity(v int) *SignalUpdateOne {
	_u.mutation.AddSourceDiversity(v)
	return _u
}

// SetExternalRatio sets the "external_ratio" field.
func (_u *SignalUpdateOne) SetExternalRatio(v float64) *SignalUpdateOne {
	_u.mutation.ResetExternalRatio()
	_u.mutation.SetExternalRatio(v)
	return _u
}

// SetNillableExternalRatio sets the "external_ratio" field if the given value is not nil.
func (_u *SignalUpdateOne) SetNillableExternalRatio(v *float64) *SignalUpdateOne {
	if v != nil {
		_u.SetExternalRatio(*v)
	}
	return _u
}

// AddExternalRatio adds value to the "external_ratio" field.
func (_u *SignalUpdateOne) AddExternalRatio(v float64) *SignalUpdateOne {
	_u.mutation.AddExternalRatio(v)
	return _u
}

// SetCauseHeat sets the "cause_heat" field.
func (_u *SignalUpdateOne) SetCauseHeat(v float64) *SignalUpdateOne {
	_u.mutation.ResetCauseHeat()
	_u.mutation.SetCauseHeat(v)
	return _u
}

// SetNillableCauseHeat sets the "cause_heat" field if the given value is not nil.
func (_u *SignalUpdateOne) SetNillableCauseHeat(v *float64) *SignalUpdateOne {
	if v != nil {
		_u.SetCauseHeat(*v)
	}
	return _u
}

// AddCauseHeat adds value to the "cause_heat" field.
func (_u *SignalUpdateOne) AddCauseHeat(v float64) *SignalUpdateOne {
	_u.mutation.AddCauseHeat(v)
	return _u
}

// SetMentionedActors sets the "mentioned_actors" field.
func (_u *SignalUpdateOne) SetMentionedActors(v []string) *SignalUpdateOne {
	_u.mutation.SetMentionedActors(v)
	return _u
}

// AppendMentionedActors appends value to the "mentioned_actors" field.
func (_u *SignalUpdateOne) AppendMentionedActors(v []string) *SignalUpdateOne {
	_u.mutation.AppendMentionedActors(v)
	return _u
}

// ClearMentionedActors clears the value of the "mentioned_actors" field.
func (_u *SignalUpdateOne) ClearMentionedActors() *SignalUpdateOne {
	_u.mutation.ClearMentionedActors()
	return _u
}

// SetVariant sets the "variant" field.
func (_u *SignalUpdateOne) SetVariant(v map[string]interface{}) *SignalUpdateOne {
	_u.mutation.SetVariant(v)
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *SignalUpdateOne) SetEmbedding(v []float32) *SignalUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *SignalUpdateOne) AppendEmbedding(v []float32) *SignalUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *SignalUpdateOne) ClearEmbedding() *SignalUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *SignalUpdateOne) SetSeverity(v signal.Severity) *SignalUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *SignalUpdateOne) SetNillableSeverity(v *signal.Severity) *SignalUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// ClearSeverity clears the value of the "severity" field.
func (_u *SignalUpdateOne) ClearSeverity() *SignalUpdateOne {
	_u.mutation.ClearSeverity()
	return _u
}

// SetExpiredAt sets the "expired_at" field.
func (_u *SignalUpdateOne) SetExpiredAt(v time.Time) *SignalUpdateOne {
	_u.mutation.SetExpiredAt(v)
	return _u
}

// SetNillableExpiredAt sets the "expired_at" field if the given value is not nil.
func (_u *SignalUpdateOne) SetNillableExpiredAt(v *time.Time) *SignalUpdateOne {
	if v != nil {
		_u.SetExpiredAt(*v)
	}
	return _u
}

// ClearExpiredAt clears the value of the "expired_at" field.
func (_u *SignalUpdateOne) ClearExpiredAt() *SignalUpdateOne {
	_u.mutation.ClearExpiredAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SignalUpdateOne) SetUpdatedAt(v time.Time) *SignalUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by IDs.
func (_u *SignalUpdateOne) AddEvidenceIDs(ids ...string) *SignalUpdateOne {
	_u.mutation.AddEvidenceIDs(ids...)
	return _u
}

// AddEvidence adds the "evidence" edges to the Evidence entity.
func (_u *SignalUpdateOne) AddEvidence(v ...*Evidence) *SignalUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvidenceIDs(ids...)
}

// AddMentionIDs adds the "mentions" edge to the Actor entity by IDs.
func (_u *SignalUpdateOne) AddMentionIDs(ids ...string) *SignalUpdateOne {
	_u.mutation.AddMentionIDs(ids...)
	return _u
}

// AddMentions adds the "mentions" edges to the Actor entity.
func (_u *SignalUpdateOne) AddMentions(v ...*Actor) *SignalUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMentionIDs(ids...)
}

// AddAuthorIDs adds the "authors" edge to the Actor entity by IDs.
func (_u *SignalUpdateOne) AddAuthorIDs(ids ...string) *SignalUpdateOne {
	_u.mutation.AddAuthorIDs(ids...)
	return _u
}

// AddAuthors adds the "authors" edges to the Actor entity.
func (_u *SignalUpdateOne) AddAuthors(v ...*Actor) *SignalUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuthorIDs(ids...)
}

// Mutation returns the SignalMutation object of the builder.
func (_u *SignalUpdateOne) Mutation() *SignalMutation {
	return _u.mutation
}

// ClearEvidence clears all "evidence" edges to the Evidence entity.
func (_u *SignalUpdateOne) ClearEvidence() *SignalUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// RemoveEvidenceIDs removes the "evidence" edge to Evidence entities by IDs.
func (_u *SignalUpdateOne) RemoveEvidenceIDs(ids ...string) *SignalUpdateOne {
	_u.mutation.RemoveEvidenceIDs(ids...)
	return _u
}

// RemoveEvidence removes "evidence" edges to Evidence entities.
func (_u *SignalUpdateOne) RemoveEvidence(v ...*Evidence) *SignalUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvidenceIDs(ids...)
}

// ClearMentions clears all "mentions" edges to the Actor entity.
func (_u *SignalUpdateOne) ClearMentions() *SignalUpdateOne {
	_u.mutation.ClearMentions()
	return _u
}

// RemoveMentionIDs removes the "mentions" edge to Actor entities by IDs.
func (_u *SignalUpdateOne) RemoveMentionIDs(ids ...string) *SignalUpdateOne {
	_u.mutation.RemoveMentionIDs(ids...)
	return _u
}

// RemoveMentions removes "mentions" edges to Actor entities.
func (_u *SignalUpdateOne) RemoveMentions(v ...*Actor) *SignalUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMentionIDs(ids...)
}

// ClearAuthors clears all "authors" edges to the Actor entity.
func (_u *SignalUpdateOne) ClearAuthors() *SignalUpdateOne {
	_u.mutation.ClearAuthors()
	return _u
}

// RemoveAuthorIDs removes the "authors" edge to Actor entities by IDs.
func (_u *SignalUpdateOne) RemoveAuthorIDs(ids ...string) *SignalUpdateOne {
	_u.mutation.RemoveAuthorIDs(ids...)
	return _u
}

// RemoveAuthors removes "authors" edges to Actor entities.
func (_u *SignalUpdateOne) RemoveAuthors(v ...*Actor) *SignalUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuthorIDs(ids...)
}

// Where appends a list predicates to the SignalUpdate builder.
func (_u *SignalUpdateOne) Where(ps ...predicate.Signal) *SignalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SignalUpdateOne) Select(field string, fields ...string) *SignalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Signal entity.
func (_u *SignalUpdateOne) Save(ctx context.Context) (*Signal, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SignalUpdateOne) SaveX(ctx context.Context) *Signal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SignalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SignalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SignalUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := signal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SignalUpdateOne) check() error {
	if v, ok := _u.mutation.Sensitivity(); ok {
		if err := signal.SensitivityValidator(v); err != nil {
			return &ValidationError{Name: "sensitivity", err: fmt.Errorf(`ent: validator failed for field "Signal.sensitivity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GeoPrecision(); ok {
		if err := signal.GeoPrecisionValidator(v); err != nil {
			return &ValidationError{Name: "geo_precision", err: fmt.Errorf(`ent: validator failed for field "Signal.geo_precision": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := signal.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Signal.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *SignalUpdateOne) sqlSave(ctx context.Context) (_node *Signal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(signal.Table, signal.Columns, sqlgraph.NewFieldSpec(signal.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Signal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, signal.FieldID)
		for _, f := range fields {
			if !signal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != signal.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(signal.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.TitleKey(); ok {
		_spec.SetField(signal.FieldTitleKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(signal.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sensitivity(); ok {
		_spec.SetField(signal.FieldSensitivity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(signal.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(signal.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FreshnessScore(); ok {
		_spec.SetField(signal.FieldFreshnessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFreshnessScore(); ok {
		_spec.AddField(signal.FieldFreshnessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CorroborationCount(); ok {
		_spec.SetField(signal.FieldCorroborationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorroborationCount(); ok {
		_spec.AddField(signal.FieldCorroborationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(signal.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(signal.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(signal.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lng(); ok {
		_spec.SetField(signal.FieldLng, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLng(); ok {
		_spec.AddField(signal.FieldLng, field.TypeFloat64, value)
	}
	if _u.mutation.LngCleared() {
		_spec.ClearField(signal.FieldLng, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GeoPrecision(); ok {
		_spec.SetField(signal.FieldGeoPrecision, field.TypeEnum, value)
	}
	if _u.mutation.GeoPrecisionCleared() {
		_spec.ClearField(signal.FieldGeoPrecision, field.TypeEnum)
	}
	if value, ok := _u.mutation.LocationName(); ok {
		_spec.SetField(signal.FieldLocationName, field.TypeString, value)
	}
	if _u.mutation.LocationNameCleared() {
		_spec.ClearField(signal.FieldLocationName, field.TypeString)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(signal.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastConfirmedActive(); ok {
		_spec.SetField(signal.FieldLastConfirmedActive, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AudienceRoles(); ok {
		_spec.SetField(signal.FieldAudienceRoles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAudienceRoles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, signal.FieldAudienceRoles, value)
		})
	}
	if _u.mutation.AudienceRolesCleared() {
		_spec.ClearField(signal.FieldAudienceRoles, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceDiversity(); ok {
		_spec.SetField(signal.FieldSourceDiversity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourceDiversity(); ok {
		_spec.AddField(signal.FieldSourceDiversity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExternalRatio(); ok {
		_spec.SetField(signal.FieldExternalRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExternalRatio(); ok {
		_spec.AddField(signal.FieldExternalRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CauseHeat(); ok {
		_spec.SetField(signal.FieldCauseHeat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCauseHeat(); ok {
		_spec.AddField(signal.FieldCauseHeat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MentionedActors(); ok {
		_spec.SetField(signal.FieldMentionedActors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMentionedActors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, signal.FieldMentionedActors, value)
		})
	}
	if _u.mutation.MentionedActorsCleared() {
		_spec.ClearField(signal.FieldMentionedActors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Variant(); ok {
		_spec.SetField(signal.FieldVariant, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(signal.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, signal.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(signal.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(signal.FieldSeverity, field.TypeEnum, value)
	}
	if _u.mutation.SeverityCleared() {
		_spec.ClearField(signal.FieldSeverity, field.TypeEnum)
	}
	if value, ok := _u.mutation.ExpiredAt(); ok {
		_spec.SetField(signal.FieldExpiredAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiredAtCleared() {
		_spec.ClearField(signal.FieldExpiredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(signal.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   signal.EvidenceTable,
			Columns: signal.EvidencePrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvidenceIDs(); len(nodes) > 0 && !_u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   signal.EvidenceTable,
			Columns: signal.EvidencePrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   signal.EvidenceTable,
			Columns: signal.EvidencePrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MentionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   signal.MentionsTable,
			Columns: signal.MentionsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMentionsIDs(); len(nodes) > 0 && !_u.mutation.MentionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   signal.MentionsTable,
			Columns: signal.MentionsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MentionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   signal.MentionsTable,
			Columns: signal.MentionsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuthorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   signal.AuthorsTable,
			Columns: signal.AuthorsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuthorsIDs(); len(nodes) > 0 && !_u.mutation.AuthorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   signal.AuthorsTable,
			Columns: signal.AuthorsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   signal.AuthorsTable,
			Columns: signal.AuthorsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Signal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{signal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
