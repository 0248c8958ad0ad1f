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
	"github.com/fourthplaces/rootsignal/ent/evidence"
	"github.com/fourthplaces/rootsignal/ent/signal"
)

// SignalCreate is the builder for creating a Signal entity.
type SignalCreate struct {
	config
	mutation *SignalMutation
	hooks    []Hook
}

// SetNodeType sets the "node_type" field.
func (_c *SignalCreate) SetNodeType(v signal.NodeType) *SignalCreate {
	_c.mutation.SetNodeType(v)
	return _c
}

// SetRegion sets the "region" field.
func (_c *SignalCreate) SetRegion(v string) *SignalCreate {
	_c.mutation.SetRegion(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *SignalCreate) SetTitle(v string) *SignalCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetTitleKey sets the "title_key" field.
func (_c *SignalCreate) SetTitleKey(v string) *SignalCreate {
	_c.mutation.SetTitleKey(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *SignalCreate) SetSummary(v string) *SignalCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetSensitivity sets the "sensitivity" field.
func (_c *SignalCreate) SetSensitivity(v signal.Sensitivity) *SignalCreate {
	_c.mutation.SetSensitivity(v)
	return _c
}

// SetNillableSensitivity sets the "sensitivity" field if the given value is not nil.
func (_c *SignalCreate) SetNillableSensitivity(v *signal.Sensitivity) *SignalCreate {
	if v != nil {
		_c.SetSensitivity(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *SignalCreate) SetConfidence(v float64) *SignalCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetFreshnessScore sets the "freshness_score" field.
func (_c *SignalCreate) SetFreshnessScore(v float64) *SignalCreate {
	_c.mutation.SetFreshnessScore(v)
	return _c
}

// SetCorroborationCount sets the "corroboration_count" field.
func (_c *SignalCreate) SetCorroborationCount(v int) *SignalCreate {
	_c.mutation.SetCorroborationCount(v)
	return _c
}

// SetNillableCorroborationCount sets the "corroboration_count" field if the given value is not nil.
func (_c *SignalCreate) SetNillableCorroborationCount(v *int) *SignalCreate {
	if v != nil {
		_c.SetCorroborationCount(*v)
	}
	return _c
}

// SetLat sets the "lat" field.
func (_c *SignalCreate) SetLat(v float64) *SignalCreate {
	_c.mutation.SetLat(v)
	return _c
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_c *SignalCreate) SetNillableLat(v *float64) *SignalCreate {
	if v != nil {
		_c.SetLat(*v)
	}
	return _c
}

// SetLng sets the "lng" field.
func (_c *SignalCreate) SetLng(v float64) *SignalCreate {
	_c.mutation.SetLng(v)
	return _c
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_c *SignalCreate) SetNillableLng(v *float64) *SignalCreate {
	if v != nil {
		_c.SetLng(*v)
	}
	return _c
}

// SetGeoPrecision sets the "geo_precision" field.
func (_c *SignalCreate) SetGeoPrecision(v signal.GeoPrecision) *SignalCreate {
	_c.mutation.SetGeoPrecision(v)
	return _c
}

// SetNillableGeoPrecision sets the "geo_precision" field if the given value is not nil.
func (_c *SignalCreate) SetNillableGeoPrecision(v *signal.GeoPrecision) *SignalCreate {
	if v != nil {
		_c.SetGeoPrecision(*v)
	}
	return _c
}

// SetLocationName sets the "location_name" field.
func (_c *SignalCreate) SetLocationName(v string) *SignalCreate {
	_c.mutation.SetLocationName(v)
	return _c
}

// SetNillableLocationName sets the "location_name" field if the given value is not nil.
func (_c *SignalCreate) SetNillableLocationName(v *string) *SignalCreate {
	if v != nil {
		_c.SetLocationName(*v)
	}
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *SignalCreate) SetSourceURL(v string) *SignalCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetExtractedAt sets the "extracted_at" field.
func (_c *SignalCreate) SetExtractedAt(v time.Time) *SignalCreate {
	_c.mutation.SetExtractedAt(v)
	return _c
}

// SetLastConfirmedActive sets the "last_confirmed_active" field.
func (_c *SignalCreate) SetLastConfirmedActive(v time.Time) *SignalCreate {
	_c.mutation.SetLastConfirmedActive(v)
	return _c
}

// SetAudienceRoles sets the "audience_roles" field.
func (_c *SignalCreate) SetAudienceRoles(v []string) *SignalCreate {
	_c.mutation.SetAudienceRoles(v)
	return _c
}

// SetSourceDiversity sets the "source_diversity" field.
func (_c *SignalCreate) SetSourceDiversity(v int) *SignalCreate {
	_c.mutation.SetSourceDiversity(v)
	return _c
}

// SetNillableSourceDiversity sets the "source_diversity" field if the given value is not nil.
func (_c *SignalCreate) SetNillableSourceDiversity(v *int) *SignalCreate {
	if v != nil {
		_c.SetSourceDiversity(*v)
	}
	return _c
}

// SetExternalRatio sets the "external_ratio" field.
func (_c *SignalCreate) SetExternalRatio(v float64) *SignalCreate {
	_c.mutation.SetExternalRatio(v)
	return _c
}

// SetNillableExternalRatio sets the "external_ratio" field if the given value is not nil.
func (_c *SignalCreate) SetNillableExternalRatio(v *float64) *SignalCreate {
	if v != nil {
		_c.SetExternalRatio(*v)
	}
	return _c
}

// SetCauseHeat sets the "cause_heat" field.
func (_c *SignalCreate) SetCauseHeat(v float64) *SignalCreate {
	_c.mutation.SetCauseHeat(v)
	return _c
}

// SetNillableCauseHeat sets the "cause_heat" field if the given value is not nil.
func (_c *SignalCreate) SetNillableCauseHeat(v *float64) *SignalCreate {
	if v != nil {
		_c.SetCauseHeat(*v)
	}
	return _c
}

// SetMentionedActors sets the "mentioned_actors" field.
func (_c *SignalCreate) SetMentionedActors(v []string) *SignalCreate {
	_c.mutation.SetMentionedActors(v)
	return _c
}

// SetVariant sets the "variant" field.
func (_c *SignalCreate) SetVariant(v map[string]interface{}) *SignalCreate {
	_c.mutation.SetVariant(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *SignalCreate) SetEmbedding(v []float32) *SignalCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *SignalCreate) SetSeverity(v signal.Severity) *SignalCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *SignalCreate) SetNillableSeverity(v *signal.Severity) *SignalCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetExpiredAt sets the "expired_at" field.
func (_c *SignalCreate) SetExpiredAt(v time.Time) *SignalCreate {
	_c.mutation.SetExpiredAt(v)
	return _c
}

// SetNillableExpiredAt sets the "expired_at" field if the given value is not nil.
func (_c *SignalCreate) SetNillableExpiredAt(v *time.Time) *SignalCreate {
	if v != nil {
		_c.SetExpiredAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SignalCreate) SetCreatedAt(v time.Time) *SignalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SignalCreate) SetNillableCreatedAt(v *time.Time) *SignalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SignalCreate) SetUpdatedAt(v time.Time) *SignalCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SignalCreate) SetNillableUpdatedAt(v *time.Time) *SignalCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SignalCreate) SetID(v string) *SignalCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by IDs.
func (_c *SignalCreate) AddEvidenceIDs(ids ...string) *SignalCreate {
	_c.mutation.AddEvidenceIDs(ids...)
	return _c
}

// AddEvidence adds the "evidence" edges to the Evidence entity.
func (_c *SignalCreate) AddEvidence(v ...*Evidence) *SignalCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvidenceIDs(ids...)
}

// AddMentionIDs adds the "mentions" edge to the Actor entity by IDs.
func (_c *SignalCreate) AddMentionIDs(ids ...string) *SignalCreate {
	_c.mutation.AddMentionIDs(ids...)
	return _c
}

// AddMentions adds the "mentions" edges to the Actor entity.
func (_c *SignalCreate) AddMentions(v ...*Actor) *SignalCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMentionIDs(ids...)
}

// AddAuthorIDs adds the "authors" edge to the Actor entity by IDs.
func (_c *SignalCreate) AddAuthorIDs(ids ...string) *SignalCreate {
	_c.mutation.AddAuthorIDs(ids...)
	return _c
}

// AddAuthors adds the "authors" edges to the Actor entity.
func (_c *SignalCreate) AddAuthors(v ...*Actor) *SignalCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuthorIDs(ids...)
}

// Mutation returns the SignalMutation object of the builder.
func (_c *SignalCreate) Mutation() *SignalMutation {
	return _c.mutation
}

// Save creates the Signal in the database.
func (_c *SignalCreate) Save(ctx context.Context) (*Signal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SignalCreate) SaveX(ctx context.Context) *Signal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SignalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SignalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SignalCreate) defaults() {
	if _, ok := _c.mutation.Sensitivity(); !ok {
		v := signal.DefaultSensitivity
		_c.mutation.SetSensitivity(v)
	}
	if _, ok := _c.mutation.CorroborationCount(); !ok {
		v := signal.DefaultCorroborationCount
		_c.mutation.SetCorroborationCount(v)
	}
	if _, ok := _c.mutation.SourceDiversity(); !ok {
		v := signal.DefaultSourceDiversity
		_c.mutation.SetSourceDiversity(v)
	}
	if _, ok := _c.mutation.ExternalRatio(); !ok {
		v := signal.DefaultExternalRatio
		_c.mutation.SetExternalRatio(v)
	}
	if _, ok := _c.mutation.CauseHeat(); !ok {
		v := signal.DefaultCauseHeat
		_c.mutation.SetCauseHeat(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := signal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := signal.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SignalCreate) check() error {
	if _, ok := _c.mutation.NodeType(); !ok {
		return &ValidationError{Name: "node_type", err: errors.New(`ent: missing required field "Signal.node_type"`)}
	}
	if v, ok := _c.mutation.NodeType(); ok {
		if err := signal.NodeTypeValidator(v); err != nil {
			return &ValidationError{Name: "node_type", err: fmt.Errorf(`ent: validator failed for field "Signal.node_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Region(); !ok {
		return &ValidationError{Name: "region", err: errors.New(`ent: missing required field "Signal.region"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Signal.title"`)}
	}
	if _, ok := _c.mutation.TitleKey(); !ok {
		return &ValidationError{Name: "title_key", err: errors.New(`ent: missing required field "Signal.title_key"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "Signal.summary"`)}
	}
	if _, ok := _c.mutation.Sensitivity(); !ok {
		return &ValidationError{Name: "sensitivity", err: errors.New(`ent: missing required field "Signal.sensitivity"`)}
	}
	if v, ok := _c.mutation.Sensitivity(); ok {
		if err := signal.SensitivityValidator(v); err != nil {
			return &ValidationError{Name: "sensitivity", err: fmt.Errorf(`ent: validator failed for field "Signal.sensitivity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Signal.confidence"`)}
	}
	if _, ok := _c.mutation.FreshnessScore(); !ok {
		return &ValidationError{Name: "freshness_score", err: errors.New(`ent: missing required field "Signal.freshness_score"`)}
	}
	if _, ok := _c.mutation.CorroborationCount(); !ok {
		return &ValidationError{Name: "corroboration_count", err: errors.New(`ent: missing required field "Signal.corroboration_count"`)}
	}
	if v, ok := _c.mutation.GeoPrecision(); ok {
		if err := signal.GeoPrecisionValidator(v); err != nil {
			return &ValidationError{Name: "geo_precision", err: fmt.Errorf(`ent: validator failed for field "Signal.geo_precision": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceURL(); !ok {
		return &ValidationError{Name: "source_url", err: errors.New(`ent: missing required field "Signal.source_url"`)}
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		return &ValidationError{Name: "extracted_at", err: errors.New(`ent: missing required field "Signal.extracted_at"`)}
	}
	if _, ok := _c.mutation.LastConfirmedActive(); !ok {
		return &ValidationError{Name: "last_confirmed_active", err: errors.New(`ent: missing required field "Signal.last_confirmed_active"`)}
	}
	if _, ok := _c.mutation.SourceDiversity(); !ok {
		return &ValidationError{Name: "source_diversity", err: errors.New(`ent: missing required field "Signal.source_diversity"`)}
	}
	if _, ok := _c.mutation.ExternalRatio(); !ok {
		return &ValidationError{Name: "external_ratio", err: errors.New(`ent: missing required field "Signal.external_ratio"`)}
	}
	if _, ok := _c.mutation.CauseHeat(); !ok {
		return &ValidationError{Name: "cause_heat", err: errors.New(`ent: missing required field "Signal.cause_heat"`)}
	}
	if _, ok := _c.mutation.Variant(); !ok {
		return &ValidationError{Name: "variant", err: errors.New(`ent: missing required field "Signal.variant"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := signal.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Signal.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Signal.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Signal.updated_at"`)}
	}
	return nil
}

func (_c *SignalCreate) sqlSave(ctx context.Context) (*Signal, error) {
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
			return nil, fmt.Errorf("unexpected Signal.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SignalCreate) createSpec() (*Signal, *sqlgraph.CreateSpec) {
	var (
		_node = &Signal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(signal.Table, sqlgraph.NewFieldSpec(signal.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.NodeType(); ok {
		_spec.SetField(signal.FieldNodeType, field.TypeEnum, value)
		_node.NodeType = value
	}
	if value, ok := _c.mutation.Region(); ok {
		_spec.SetField(signal.FieldRegion, field.TypeString, value)
		_node.Region = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(signal.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.TitleKey(); ok {
		_spec.SetField(signal.FieldTitleKey, field.TypeString, value)
		_node.TitleKey = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(signal.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Sensitivity(); ok {
		_spec.SetField(signal.FieldSensitivity, field.TypeEnum, value)
		_node.Sensitivity = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(signal.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.FreshnessScore(); ok {
		_spec.SetField(signal.FieldFreshnessScore, field.TypeFloat64, value)
		_node.FreshnessScore = value
	}
	if value, ok := _c.mutation.CorroborationCount(); ok {
		_spec.SetField(signal.FieldCorroborationCount, field.TypeInt, value)
		_node.CorroborationCount = value
	}
	if value, ok := _c.mutation.Lat(); ok {
		_spec.SetField(signal.FieldLat, field.TypeFloat64, value)
		_node.Lat = &value
	}
	if value, ok := _c.mutation.Lng(); ok {
		_spec.SetField(signal.FieldLng, field.TypeFloat64, value)
		_node.Lng = &value
	}
	if value, ok := _c.mutation.GeoPrecision(); ok {
		_spec.SetField(signal.FieldGeoPrecision, field.TypeEnum, value)
		_node.GeoPrecision = &value
	}
	if value, ok := _c.mutation.LocationName(); ok {
		_spec.SetField(signal.FieldLocationName, field.TypeString, value)
		_node.LocationName = value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(signal.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = value
	}
	if value, ok := _c.mutation.ExtractedAt(); ok {
		_spec.SetField(signal.FieldExtractedAt, field.TypeTime, value)
		_node.ExtractedAt = value
	}
	if value, ok := _c.mutation.LastConfirmedActive(); ok {
		_spec.SetField(signal.FieldLastConfirmedActive, field.TypeTime, value)
		_node.LastConfirmedActive = value
	}
	if value, ok := _c.mutation.AudienceRoles(); ok {
		_spec.SetField(signal.FieldAudienceRoles, field.TypeJSON, value)
		_node.AudienceRoles = value
	}
	if value, ok := _c.mutation.SourceDiversity(); ok {
		_spec.SetField(signal.FieldSourceDiversity, field.TypeInt, value)
		_node.SourceDiversity = value
	}
	if value, ok := _c.mutation.ExternalRatio(); ok {
		_spec.SetField(signal.FieldExternalRatio, field.TypeFloat64, value)
		_node.ExternalRatio = value
	}
	if value, ok := _c.mutation.CauseHeat(); ok {
		_spec.SetField(signal.FieldCauseHeat, field.TypeFloat64, value)
		_node.CauseHeat = value
	}
	if value, ok := _c.mutation.MentionedActors(); ok {
		_spec.SetField(signal.FieldMentionedActors, field.TypeJSON, value)
		_node.MentionedActors = value
	}
	if value, ok := _c.mutation.Variant(); ok {
		_spec.SetField(signal.FieldVariant, field.TypeJSON, value)
		_node.Variant = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(signal.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(signal.FieldSeverity, field.TypeEnum, value)
		_node.Severity = &value
	}
	if value, ok := _c.mutation.ExpiredAt(); ok {
		_spec.SetField(signal.FieldExpiredAt, field.TypeTime, value)
		_node.ExpiredAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(signal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(signal.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.EvidenceIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MentionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuthorsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SignalCreateBulk is the builder for creating many Signal entities in bulk.
type SignalCreateBulk struct {
	config
	err      error
	builders []*SignalCreate
}

// Save creates the Signal entities in the database.
func (_c *SignalCreateBulk) Save(ctx context.Context) ([]*Signal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Signal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SignalMutation)
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
func (_c *SignalCreateBulk) SaveX(ctx context.Context) []*Signal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SignalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SignalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
