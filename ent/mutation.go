// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fourthplaces/rootsignal/ent/actor"
	"github.com/fourthplaces/rootsignal/ent/evidence"
	"github.com/fourthplaces/rootsignal/ent/pipelinerun"
	"github.com/fourthplaces/rootsignal/ent/predicate"
	"github.com/fourthplaces/rootsignal/ent/response"
	"github.com/fourthplaces/rootsignal/ent/signal"
	"github.com/fourthplaces/rootsignal/ent/source"
	"github.com/fourthplaces/rootsignal/ent/storedevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActor       = "Actor"
	TypeEvidence    = "Evidence"
	TypePipelineRun = "PipelineRun"
	TypeResponse    = "Response"
	TypeSignal      = "Signal"
	TypeSource      = "Source"
	TypeStoredEvent = "StoredEvent"
)

// ActorMutation represents an operation that mutates the Actor nodes in the graph.
type ActorMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	name                *string
	name_key            *string
	canonical_url       *string
	kind                *string
	region              *string
	signal_count        *int
	addsignal_count     *int
	lat                 *float64
	addlat              *float64
	lng                 *float64
	addlng              *float64
	first_seen          *time.Time
	last_seen           *time.Time
	clearedFields       map[string]struct{}
	authored            map[string]struct{}
	removedauthored     map[string]struct{}
	clearedauthored     bool
	mentioned_in        map[string]struct{}
	removedmentioned_in map[string]struct{}
	clearedmentioned_in bool
	done                bool
	oldValue            func(context.Context) (*Actor, error)
	predicates          []predicate.Actor
}

var _ ent.Mutation = (*ActorMutation)(nil)

// actorOption allows management of the mutation configuration using functional options.
type actorOption func(*ActorMutation)

// newActorMutation creates new mutation for the Actor entity.
func newActorMutation(c config, op Op, opts ...actorOption) *ActorMutation {
	m := &ActorMutation{
		config:        c,
		op:            op,
		typ:           TypeActor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActorID sets the ID field of the mutation.
func withActorID(id string) actorOption {
	return func(m *ActorMutation) {
		var (
			err   error
			once  sync.Once
			value *Actor
		)
		m.oldValue = func(ctx context.Context) (*Actor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Actor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActor sets the old Actor of the mutation.
func withActor(node *Actor) actorOption {
	return func(m *ActorMutation) {
		m.oldValue = func(context.Context) (*Actor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Actor entities.
func (m *ActorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Actor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ActorMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ActorMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ActorMutation) ResetName() {
	m.name = nil
}

// SetNameKey sets the "name_key" field.
func (m *ActorMutation) SetNameKey(s string) {
	m.name_key = &s
}

// NameKey returns the value of the "name_key" field in the mutation.
func (m *ActorMutation) NameKey() (r string, exists bool) {
	v := m.name_key
	if v == nil {
		return
	}
	return *v, true
}

// OldNameKey returns the old "name_key" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldNameKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNameKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNameKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNameKey: %w", err)
	}
	return oldValue.NameKey, nil
}

// ResetNameKey resets all changes to the "name_key" field.
func (m *ActorMutation) ResetNameKey() {
	m.name_key = nil
}

// SetCanonicalURL sets the "canonical_url" field.
func (m *ActorMutation) SetCanonicalURL(s string) {
	m.canonical_url = &s
}

// CanonicalURL returns the value of the "canonical_url" field in the mutation.
func (m *ActorMutation) CanonicalURL() (r string, exists bool) {
	v := m.canonical_url
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalURL returns the old "canonical_url" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldCanonicalURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalURL: %w", err)
	}
	return oldValue.CanonicalURL, nil
}

// ClearCanonicalURL clears the value of the "canonical_url" field.
func (m *ActorMutation) ClearCanonicalURL() {
	m.canonical_url = nil
	m.clearedFields[actor.FieldCanonicalURL] = struct{}{}
}

// CanonicalURLCleared returns if the "canonical_url" field was cleared in this mutation.
func (m *ActorMutation) CanonicalURLCleared() bool {
	_, ok := m.clearedFields[actor.FieldCanonicalURL]
	return ok
}

// ResetCanonicalURL resets all changes to the "canonical_url" field.
func (m *ActorMutation) ResetCanonicalURL() {
	m.canonical_url = nil
	delete(m.clearedFields, actor.FieldCanonicalURL)
}

// SetKind sets the "kind" field.
func (m *ActorMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ActorMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ActorMutation) ResetKind() {
	m.kind = nil
}

// SetRegion sets the "region" field.
func (m *ActorMutation) SetRegion(s string) {
	m.region = &s
}

// Region returns the value of the "region" field in the mutation.
func (m *ActorMutation) Region() (r string, exists bool) {
	v := m.region
	if v == nil {
		return
	}
	return *v, true
}

// OldRegion returns the old "region" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldRegion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegion: %w", err)
	}
	return oldValue.Region, nil
}

// ResetRegion resets all changes to the "region" field.
func (m *ActorMutation) ResetRegion() {
	m.region = nil
}

// SetSignalCount sets the "signal_count" field.
func (m *ActorMutation) SetSignalCount(i int) {
	m.signal_count = &i
	m.addsignal_count = nil
}

// SignalCount returns the value of the "signal_count" field in the mutation.
func (m *ActorMutation) SignalCount() (r int, exists bool) {
	v := m.signal_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSignalCount returns the old "signal_count" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldSignalCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignalCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignalCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignalCount: %w", err)
	}
	return oldValue.SignalCount, nil
}

// AddSignalCount adds i to the "signal_count" field.
func (m *ActorMutation) AddSignalCount(i int) {
	if m.addsignal_count != nil {
		*m.addsignal_count += i
	} else {
		m.addsignal_count = &i
	}
}

// AddedSignalCount returns the value that was added to the "signal_count" field in this mutation.
func (m *ActorMutation) AddedSignalCount() (r int, exists bool) {
	v := m.addsignal_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSignalCount resets all changes to the "signal_count" field.
func (m *ActorMutation) ResetSignalCount() {
	m.signal_count = nil
	m.addsignal_count = nil
}

// SetLat sets the "lat" field.
func (m *ActorMutation) SetLat(f float64) {
	m.lat = &f
	m.addlat = nil
}

// Lat returns the value of the "lat" field in the mutation.
func (m *ActorMutation) Lat() (r float64, exists bool) {
	v := m.lat
	if v == nil {
		return
	}
	return *v, true
}

// OldLat returns the old "lat" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldLat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLat: %w", err)
	}
	return oldValue.Lat, nil
}

// AddLat adds f to the "lat" field.
func (m *ActorMutation) AddLat(f float64) {
	if m.addlat != nil {
		*m.addlat += f
	} else {
		m.addlat = &f
	}
}

// AddedLat returns the value that was added to the "lat" field in this mutation.
func (m *ActorMutation) AddedLat() (r float64, exists bool) {
	v := m.addlat
	if v == nil {
		return
	}
	return *v, true
}

// ClearLat clears the value of the "lat" field.
func (m *ActorMutation) ClearLat() {
	m.lat = nil
	m.addlat = nil
	m.clearedFields[actor.FieldLat] = struct{}{}
}

// LatCleared returns if the "lat" field was cleared in this mutation.
func (m *ActorMutation) LatCleared() bool {
	_, ok := m.clearedFields[actor.FieldLat]
	return ok
}

// ResetLat resets all changes to the "lat" field.
func (m *ActorMutation) ResetLat() {
	m.lat = nil
	m.addlat = nil
	delete(m.clearedFields, actor.FieldLat)
}

// SetLng sets the "lng" field.
func (m *ActorMutation) SetLng(f float64) {
	m.lng = &f
	m.addlng = nil
}

// Lng returns the value of the "lng" field in the mutation.
func (m *ActorMutation) Lng() (r float64, exists bool) {
	v := m.lng
	if v == nil {
		return
	}
	return *v, true
}

// OldLng returns the old "lng" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldLng(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLng is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLng requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLng: %w", err)
	}
	return oldValue.Lng, nil
}

// AddLng adds f to the "lng" field.
func (m *ActorMutation) AddLng(f float64) {
	if m.addlng != nil {
		*m.addlng += f
	} else {
		m.addlng = &f
	}
}

// AddedLng returns the value that was added to the "lng" field in this mutation.
func (m *ActorMutation) AddedLng() (r float64, exists bool) {
	v := m.addlng
	if v == nil {
		return
	}
	return *v, true
}

// ClearLng clears the value of the "lng" field.
func (m *ActorMutation) ClearLng() {
	m.lng = nil
	m.addlng = nil
	m.clearedFields[actor.FieldLng] = struct{}{}
}

// LngCleared returns if the "lng" field was cleared in this mutation.
func (m *ActorMutation) LngCleared() bool {
	_, ok := m.clearedFields[actor.FieldLng]
	return ok
}

// ResetLng resets all changes to the "lng" field.
func (m *ActorMutation) ResetLng() {
	m.lng = nil
	m.addlng = nil
	delete(m.clearedFields, actor.FieldLng)
}

// SetFirstSeen sets the "first_seen" field.
func (m *ActorMutation) SetFirstSeen(t time.Time) {
	m.first_seen = &t
}

// FirstSeen returns the value of the "first_seen" field in the mutation.
func (m *ActorMutation) FirstSeen() (r time.Time, exists bool) {
	v := m.first_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeen returns the old "first_seen" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldFirstSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeen: %w", err)
	}
	return oldValue.FirstSeen, nil
}

// ResetFirstSeen resets all changes to the "first_seen" field.
func (m *ActorMutation) ResetFirstSeen() {
	m.first_seen = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *ActorMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *ActorMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldLastSeen(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ClearLastSeen clears the value of the "last_seen" field.
func (m *ActorMutation) ClearLastSeen() {
	m.last_seen = nil
	m.clearedFields[actor.FieldLastSeen] = struct{}{}
}

// LastSeenCleared returns if the "last_seen" field was cleared in this mutation.
func (m *ActorMutation) LastSeenCleared() bool {
	_, ok := m.clearedFields[actor.FieldLastSeen]
	return ok
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *ActorMutation) ResetLastSeen() {
	m.last_seen = nil
	delete(m.clearedFields, actor.FieldLastSeen)
}

// AddAuthoredIDs adds the "authored" edge to the Signal entity by ids.
func (m *ActorMutation) AddAuthoredIDs(ids ...string) {
	if m.authored == nil {
		m.authored = make(map[string]struct{})
	}
	for i := range ids {
		m.authored[ids[i]] = struct{}{}
	}
}

// ClearAuthored clears the "authored" edge to the Signal entity.
func (m *ActorMutation) ClearAuthored() {
	m.clearedauthored = true
}

// AuthoredCleared reports if the "authored" edge to the Signal entity was cleared.
func (m *ActorMutation) AuthoredCleared() bool {
	return m.clearedauthored
}

// RemoveAuthoredIDs removes the "authored" edge to the Signal entity by IDs.
func (m *ActorMutation) RemoveAuthoredIDs(ids ...string) {
	if m.removedauthored == nil {
		m.removedauthored = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.authored, ids[i])
		m.removedauthored[ids[i]] = struct{}{}
	}
}

// RemovedAuthored returns the removed IDs of the "authored" edge to the Signal entity.
func (m *ActorMutation) RemovedAuthoredIDs() (ids []string) {
	for id := range m.removedauthored {
		ids = append(ids, id)
	}
	return
}

// AuthoredIDs returns the "authored" edge IDs in the mutation.
func (m *ActorMutation) AuthoredIDs() (ids []string) {
	for id := range m.authored {
		ids = append(ids, id)
	}
	return
}

// ResetAuthored resets all changes to the "authored" edge.
func (m *ActorMutation) ResetAuthored() {
	m.authored = nil
	m.clearedauthored = false
	m.removedauthored = nil
}

// AddMentionedInIDs adds the "mentioned_in" edge to the Signal entity by ids.
func (m *ActorMutation) AddMentionedInIDs(ids ...string) {
	if m.mentioned_in == nil {
		m.mentioned_in = make(map[string]struct{})
	}
	for i := range ids {
		m.mentioned_in[ids[i]] = struct{}{}
	}
}

// ClearMentionedIn clears the "mentioned_in" edge to the Signal entity.
func (m *ActorMutation) ClearMentionedIn() {
	m.clearedmentioned_in = true
}

// MentionedInCleared reports if the "mentioned_in" edge to the Signal entity was cleared.
func (m *ActorMutation) MentionedInCleared() bool {
	return m.clearedmentioned_in
}

// RemoveMentionedInIDs removes the "mentioned_in" edge to the Signal entity by IDs.
func (m *ActorMutation) RemoveMentionedInIDs(ids ...string) {
	if m.removedmentioned_in == nil {
		m.removedmentioned_in = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.mentioned_in, ids[i])
		m.removedmentioned_in[ids[i]] = struct{}{}
	}
}

// RemovedMentionedIn returns the removed IDs of the "mentioned_in" edge to the Signal entity.
func (m *ActorMutation) RemovedMentionedInIDs() (ids []string) {
	for id := range m.removedmentioned_in {
		ids = append(ids, id)
	}
	return
}

// MentionedInIDs returns the "mentioned_in" edge IDs in the mutation.
func (m *ActorMutation) MentionedInIDs() (ids []string) {
	for id := range m.mentioned_in {
		ids = append(ids, id)
	}
	return
}

// ResetMentionedIn resets all changes to the "mentioned_in" edge.
func (m *ActorMutation) ResetMentionedIn() {
	m.mentioned_in = nil
	m.clearedmentioned_in = false
	m.removedmentioned_in = nil
}

// Where appends a list predicates to the ActorMutation builder.
func (m *ActorMutation) Where(ps ...predicate.Actor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Actor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Actor).
func (m *ActorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActorMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.name != nil {
		fields = append(fields, actor.FieldName)
	}
	if m.name_key != nil {
		fields = append(fields, actor.FieldNameKey)
	}
	if m.canonical_url != nil {
		fields = append(fields, actor.FieldCanonicalURL)
	}
	if m.kind != nil {
		fields = append(fields, actor.FieldKind)
	}
	if m.region != nil {
		fields = append(fields, actor.FieldRegion)
	}
	if m.signal_count != nil {
		fields = append(fields, actor.FieldSignalCount)
	}
	if m.lat != nil {
		fields = append(fields, actor.FieldLat)
	}
	if m.lng != nil {
		fields = append(fields, actor.FieldLng)
	}
	if m.first_seen != nil {
		fields = append(fields, actor.FieldFirstSeen)
	}
	if m.last_seen != nil {
		fields = append(fields, actor.FieldLastSeen)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case actor.FieldName:
		return m.Name()
	case actor.FieldNameKey:
		return m.NameKey()
	case actor.FieldCanonicalURL:
		return m.CanonicalURL()
	case actor.FieldKind:
		return m.Kind()
	case actor.FieldRegion:
		return m.Region()
	case actor.FieldSignalCount:
		return m.SignalCount()
	case actor.FieldLat:
		return m.Lat()
	case actor.FieldLng:
		return m.Lng()
	case actor.FieldFirstSeen:
		return m.FirstSeen()
	case actor.FieldLastSeen:
		return m.LastSeen()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case actor.FieldName:
		return m.OldName(ctx)
	case actor.FieldNameKey:
		return m.OldNameKey(ctx)
	case actor.FieldCanonicalURL:
		return m.OldCanonicalURL(ctx)
	case actor.FieldKind:
		return m.OldKind(ctx)
	case actor.FieldRegion:
		return m.OldRegion(ctx)
	case actor.FieldSignalCount:
		return m.OldSignalCount(ctx)
	case actor.FieldLat:
		return m.OldLat(ctx)
	case actor.FieldLng:
		return m.OldLng(ctx)
	case actor.FieldFirstSeen:
		return m.OldFirstSeen(ctx)
	case actor.FieldLastSeen:
		return m.OldLastSeen(ctx)
	}
	return nil, fmt.Errorf("unknown Actor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case actor.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case actor.FieldNameKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNameKey(v)
		return nil
	case actor.FieldCanonicalURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalURL(v)
		return nil
	case actor.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case actor.FieldRegion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegion(v)
		return nil
	case actor.FieldSignalCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignalCount(v)
		return nil
	case actor.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLat(v)
		return nil
	case actor.FieldLng:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLng(v)
		return nil
	case actor.FieldFirstSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeen(v)
		return nil
	case actor.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	}
	return fmt.Errorf("unknown Actor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActorMutation) AddedFields() []string {
	var fields []string
	if m.addsignal_count != nil {
		fields = append(fields, actor.FieldSignalCount)
	}
	if m.addlat != nil {
		fields = append(fields, actor.FieldLat)
	}
	if m.addlng != nil {
		fields = append(fields, actor.FieldLng)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case actor.FieldSignalCount:
		return m.AddedSignalCount()
	case actor.FieldLat:
		return m.AddedLat()
	case actor.FieldLng:
		return m.AddedLng()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case actor.FieldSignalCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSignalCount(v)
		return nil
	case actor.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLat(v)
		return nil
	case actor.FieldLng:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLng(v)
		return nil
	}
	return fmt.Errorf("unknown Actor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(actor.FieldCanonicalURL) {
		fields = append(fields, actor.FieldCanonicalURL)
	}
	if m.FieldCleared(actor.FieldLat) {
		fields = append(fields, actor.FieldLat)
	}
	if m.FieldCleared(actor.FieldLng) {
		fields = append(fields, actor.FieldLng)
	}
	if m.FieldCleared(actor.FieldLastSeen) {
		fields = append(fields, actor.FieldLastSeen)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActorMutation) ClearField(name string) error {
	switch name {
	case actor.FieldCanonicalURL:
		m.ClearCanonicalURL()
		return nil
	case actor.FieldLat:
		m.ClearLat()
		return nil
	case actor.FieldLng:
		m.ClearLng()
		return nil
	case actor.FieldLastSeen:
		m.ClearLastSeen()
		return nil
	}
	return fmt.Errorf("unknown Actor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActorMutation) ResetField(name string) error {
	switch name {
	case actor.FieldName:
		m.ResetName()
		return nil
	case actor.FieldNameKey:
		m.ResetNameKey()
		return nil
	case actor.FieldCanonicalURL:
		m.ResetCanonicalURL()
		return nil
	case actor.FieldKind:
		m.ResetKind()
		return nil
	case actor.FieldRegion:
		m.ResetRegion()
		return nil
	case actor.FieldSignalCount:
		m.ResetSignalCount()
		return nil
	case actor.FieldLat:
		m.ResetLat()
		return nil
	case actor.FieldLng:
		m.ResetLng()
		return nil
	case actor.FieldFirstSeen:
		m.ResetFirstSeen()
		return nil
	case actor.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	}
	return fmt.Errorf("unknown Actor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActorMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.authored != nil {
		edges = append(edges, actor.EdgeAuthored)
	}
	if m.mentioned_in != nil {
		edges = append(edges, actor.EdgeMentionedIn)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case actor.EdgeAuthored:
		ids := make([]ent.Value, 0, len(m.authored))
		for id := range m.authored {
			ids = append(ids, id)
		}
		return ids
	case actor.EdgeMentionedIn:
		ids := make([]ent.Value, 0, len(m.mentioned_in))
		for id := range m.mentioned_in {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedauthored != nil {
		edges = append(edges, actor.EdgeAuthored)
	}
	if m.removedmentioned_in != nil {
		edges = append(edges, actor.EdgeMentionedIn)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActorMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case actor.EdgeAuthored:
		ids := make([]ent.Value, 0, len(m.removedauthored))
		for id := range m.removedauthored {
			ids = append(ids, id)
		}
		return ids
	case actor.EdgeMentionedIn:
		ids := make([]ent.Value, 0, len(m.removedmentioned_in))
		for id := range m.removedmentioned_in {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedauthored {
		edges = append(edges, actor.EdgeAuthored)
	}
	if m.clearedmentioned_in {
		edges = append(edges, actor.EdgeMentionedIn)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActorMutation) EdgeCleared(name string) bool {
	switch name {
	case actor.EdgeAuthored:
		return m.clearedauthored
	case actor.EdgeMentionedIn:
		return m.clearedmentioned_in
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActorMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Actor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActorMutation) ResetEdge(name string) error {
	switch name {
	case actor.EdgeAuthored:
		m.ResetAuthored()
		return nil
	case actor.EdgeMentionedIn:
		m.ResetMentionedIn()
		return nil
	}
	return fmt.Errorf("unknown Actor edge %s", name)
}

// EvidenceMutation represents an operation that mutates the Evidence nodes in the graph.
type EvidenceMutation struct {
	config
	op             Op
	typ            string
	id             *string
	source_url     *string
	content_hash   *string
	retrieved_at   *time.Time
	snippet        *string
	relevance      *float64
	addrelevance   *float64
	confidence     *float64
	addconfidence  *float64
	channel_type   *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	signals        map[string]struct{}
	removedsignals map[string]struct{}
	clearedsignals bool
	done           bool
	oldValue       func(context.Context) (*Evidence, error)
	predicates     []predicate.Evidence
}

var _ ent.Mutation = (*EvidenceMutation)(nil)

// evidenceOption allows management of the mutation configuration using functional options.
type evidenceOption func(*EvidenceMutation)

// newEvidenceMutation creates new mutation for the Evidence entity.
func newEvidenceMutation(c config, op Op, opts ...evidenceOption) *EvidenceMutation {
	m := &EvidenceMutation{
		config:        c,
		op:            op,
		typ:           TypeEvidence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvidenceID sets the ID field of the mutation.
func withEvidenceID(id string) evidenceOption {
	return func(m *EvidenceMutation) {
		var (
			err   error
			once  sync.Once
			value *Evidence
		)
		m.oldValue = func(ctx context.Context) (*Evidence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Evidence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvidence sets the old Evidence of the mutation.
func withEvidence(node *Evidence) evidenceOption {
	return func(m *EvidenceMutation) {
		m.oldValue = func(context.Context) (*Evidence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvidenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvidenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Evidence entities.
func (m *EvidenceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvidenceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvidenceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Evidence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceURL sets the "source_url" field.
func (m *EvidenceMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *EvidenceMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldSourceURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *EvidenceMutation) ResetSourceURL() {
	m.source_url = nil
}

// SetContentHash sets the "content_hash" field.
func (m *EvidenceMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *EvidenceMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *EvidenceMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetRetrievedAt sets the "retrieved_at" field.
func (m *EvidenceMutation) SetRetrievedAt(t time.Time) {
	m.retrieved_at = &t
}

// RetrievedAt returns the value of the "retrieved_at" field in the mutation.
func (m *EvidenceMutation) RetrievedAt() (r time.Time, exists bool) {
	v := m.retrieved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRetrievedAt returns the old "retrieved_at" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldRetrievedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetrievedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetrievedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetrievedAt: %w", err)
	}
	return oldValue.RetrievedAt, nil
}

// ResetRetrievedAt resets all changes to the "retrieved_at" field.
func (m *EvidenceMutation) ResetRetrievedAt() {
	m.retrieved_at = nil
}

// SetSnippet sets the "snippet" field.
func (m *EvidenceMutation) SetSnippet(s string) {
	m.snippet = &s
}

// Snippet returns the value of the "snippet" field in the mutation.
func (m *EvidenceMutation) Snippet() (r string, exists bool) {
	v := m.snippet
	if v == nil {
		return
	}
	return *v, true
}

// OldSnippet returns the old "snippet" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldSnippet(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnippet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnippet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnippet: %w", err)
	}
	return oldValue.Snippet, nil
}

// ResetSnippet resets all changes to the "snippet" field.
func (m *EvidenceMutation) ResetSnippet() {
	m.snippet = nil
}

// SetRelevance sets the "relevance" field.
func (m *EvidenceMutation) SetRelevance(f float64) {
	m.relevance = &f
	m.addrelevance = nil
}

// Relevance returns the value of the "relevance" field in the mutation.
func (m *EvidenceMutation) Relevance() (r float64, exists bool) {
	v := m.relevance
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevance returns the old "relevance" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldRelevance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevance: %w", err)
	}
	return oldValue.Relevance, nil
}

// AddRelevance adds f to the "relevance" field.
func (m *EvidenceMutation) AddRelevance(f float64) {
	if m.addrelevance != nil {
		*m.addrelevance += f
	} else {
		m.addrelevance = &f
	}
}

// AddedRelevance returns the value that was added to the "relevance" field in this mutation.
func (m *EvidenceMutation) AddedRelevance() (r float64, exists bool) {
	v := m.addrelevance
	if v == nil {
		return
	}
	return *v, true
}

// ResetRelevance resets all changes to the "relevance" field.
func (m *EvidenceMutation) ResetRelevance() {
	m.relevance = nil
	m.addrelevance = nil
}

// SetConfidence sets the "confidence" field.
func (m *EvidenceMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *EvidenceMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *EvidenceMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *EvidenceMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *EvidenceMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetChannelType sets the "channel_type" field.
func (m *EvidenceMutation) SetChannelType(s string) {
	m.channel_type = &s
}

// ChannelType returns the value of the "channel_type" field in the mutation.
func (m *EvidenceMutation) ChannelType() (r string, exists bool) {
	v := m.channel_type
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelType returns the old "channel_type" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldChannelType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelType: %w", err)
	}
	return oldValue.ChannelType, nil
}

// ResetChannelType resets all changes to the "channel_type" field.
func (m *EvidenceMutation) ResetChannelType() {
	m.channel_type = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EvidenceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvidenceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvidenceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddSignalIDs adds the "signals" edge to the Signal entity by ids.
func (m *EvidenceMutation) AddSignalIDs(ids ...string) {
	if m.signals == nil {
		m.signals = make(map[string]struct{})
	}
	for i := range ids {
		m.signals[ids[i]] = struct{}{}
	}
}

// ClearSignals clears the "signals" edge to the Signal entity.
func (m *EvidenceMutation) ClearSignals() {
	m.clearedsignals = true
}

// SignalsCleared reports if the "signals" edge to the Signal entity was cleared.
func (m *EvidenceMutation) SignalsCleared() bool {
	return m.clearedsignals
}

// RemoveSignalIDs removes the "signals" edge to the Signal entity by IDs.
func (m *EvidenceMutation) RemoveSignalIDs(ids ...string) {
	if m.removedsignals == nil {
		m.removedsignals = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.signals, ids[i])
		m.removedsignals[ids[i]] = struct{}{}
	}
}

// RemovedSignals returns the removed IDs of the "signals" edge to the Signal entity.
func (m *EvidenceMutation) RemovedSignalsIDs() (ids []string) {
	for id := range m.removedsignals {
		ids = append(ids, id)
	}
	return
}

// SignalsIDs returns the "signals" edge IDs in the mutation.
func (m *EvidenceMutation) SignalsIDs() (ids []string) {
	for id := range m.signals {
		ids = append(ids, id)
	}
	return
}

// ResetSignals resets all changes to the "signals" edge.
func (m *EvidenceMutation) ResetSignals() {
	m.signals = nil
	m.clearedsignals = false
	m.removedsignals = nil
}

// Where appends a list predicates to the EvidenceMutation builder.
func (m *EvidenceMutation) Where(ps ...predicate.Evidence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvidenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvidenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Evidence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvidenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvidenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Evidence).
func (m *EvidenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvidenceMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.source_url != nil {
		fields = append(fields, evidence.FieldSourceURL)
	}
	if m.content_hash != nil {
		fields = append(fields, evidence.FieldContentHash)
	}
	if m.retrieved_at != nil {
		fields = append(fields, evidence.FieldRetrievedAt)
	}
	if m.snippet != nil {
		fields = append(fields, evidence.FieldSnippet)
	}
	if m.relevance != nil {
		fields = append(fields, evidence.FieldRelevance)
	}
	if m.confidence != nil {
		fields = append(fields, evidence.FieldConfidence)
	}
	if m.channel_type != nil {
		fields = append(fields, evidence.FieldChannelType)
	}
	if m.created_at != nil {
		fields = append(fields, evidence.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvidenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evidence.FieldSourceURL:
		return m.SourceURL()
	case evidence.FieldContentHash:
		return m.ContentHash()
	case evidence.FieldRetrievedAt:
		return m.RetrievedAt()
	case evidence.FieldSnippet:
		return m.Snippet()
	case evidence.FieldRelevance:
		return m.Relevance()
	case evidence.FieldConfidence:
		return m.Confidence()
	case evidence.FieldChannelType:
		return m.ChannelType()
	case evidence.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvidenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evidence.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case evidence.FieldContentHash:
		return m.OldContentHash(ctx)
	case evidence.FieldRetrievedAt:
		return m.OldRetrievedAt(ctx)
	case evidence.FieldSnippet:
		return m.OldSnippet(ctx)
	case evidence.FieldRelevance:
		return m.OldRelevance(ctx)
	case evidence.FieldConfidence:
		return m.OldConfidence(ctx)
	case evidence.FieldChannelType:
		return m.OldChannelType(ctx)
	case evidence.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Evidence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evidence.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case evidence.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case evidence.FieldRetrievedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetrievedAt(v)
		return nil
	case evidence.FieldSnippet:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnippet(v)
		return nil
	case evidence.FieldRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevance(v)
		return nil
	case evidence.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case evidence.FieldChannelType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelType(v)
		return nil
	case evidence.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Evidence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvidenceMutation) AddedFields() []string {
	var fields []string
	if m.addrelevance != nil {
		fields = append(fields, evidence.FieldRelevance)
	}
	if m.addconfidence != nil {
		fields = append(fields, evidence.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvidenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evidence.FieldRelevance:
		return m.AddedRelevance()
	case evidence.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evidence.FieldRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevance(v)
		return nil
	case evidence.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Evidence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvidenceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvidenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvidenceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Evidence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvidenceMutation) ResetField(name string) error {
	switch name {
	case evidence.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case evidence.FieldContentHash:
		m.ResetContentHash()
		return nil
	case evidence.FieldRetrievedAt:
		m.ResetRetrievedAt()
		return nil
	case evidence.FieldSnippet:
		m.ResetSnippet()
		return nil
	case evidence.FieldRelevance:
		m.ResetRelevance()
		return nil
	case evidence.FieldConfidence:
		m.ResetConfidence()
		return nil
	case evidence.FieldChannelType:
		m.ResetChannelType()
		return nil
	case evidence.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Evidence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvidenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.signals != nil {
		edges = append(edges, evidence.EdgeSignals)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvidenceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evidence.EdgeSignals:
		ids := make([]ent.Value, 0, len(m.signals))
		for id := range m.signals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvidenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsignals != nil {
		edges = append(edges, evidence.EdgeSignals)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvidenceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case evidence.EdgeSignals:
		ids := make([]ent.Value, 0, len(m.removedsignals))
		for id := range m.removedsignals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvidenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsignals {
		edges = append(edges, evidence.EdgeSignals)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvidenceMutation) EdgeCleared(name string) bool {
	switch name {
	case evidence.EdgeSignals:
		return m.clearedsignals
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvidenceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Evidence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvidenceMutation) ResetEdge(name string) error {
	switch name {
	case evidence.EdgeSignals:
		m.ResetSignals()
		return nil
	}
	return fmt.Errorf("unknown Evidence edge %s", name)
}

// PipelineRunMutation represents an operation that mutates the PipelineRun nodes in the graph.
type PipelineRunMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	region                *string
	status                *pipelinerun.Status
	started_at            *time.Time
	completed_at          *time.Time
	stats                 *map[string]interface{}
	timeline              *[]map[string]interface{}
	appendtimeline        []map[string]interface{}
	budget_spent_cents    *int64
	addbudget_spent_cents *int64
	error                 *string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*PipelineRun, error)
	predicates            []predicate.PipelineRun
}

var _ ent.Mutation = (*PipelineRunMutation)(nil)

// pipelinerunOption allows management of the mutation configuration using functional options.
type pipelinerunOption func(*PipelineRunMutation)

// newPipelineRunMutation creates new mutation for the PipelineRun entity.
func newPipelineRunMutation(c config, op Op, opts ...pipelinerunOption) *PipelineRunMutation {
	m := &PipelineRunMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineRunID sets the ID field of the mutation.
func withPipelineRunID(id string) pipelinerunOption {
	return func(m *PipelineRunMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineRun
		)
		m.oldValue = func(ctx context.Context) (*PipelineRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineRun sets the old PipelineRun of the mutation.
func withPipelineRun(node *PipelineRun) pipelinerunOption {
	return func(m *PipelineRunMutation) {
		m.oldValue = func(context.Context) (*PipelineRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineRun entities.
func (m *PipelineRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRegion sets the "region" field.
func (m *PipelineRunMutation) SetRegion(s string) {
	m.region = &s
}

// Region returns the value of the "region" field in the mutation.
func (m *PipelineRunMutation) Region() (r string, exists bool) {
	v := m.region
	if v == nil {
		return
	}
	return *v, true
}

// OldRegion returns the old "region" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldRegion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegion: %w", err)
	}
	return oldValue.Region, nil
}

// ResetRegion resets all changes to the "region" field.
func (m *PipelineRunMutation) ResetRegion() {
	m.region = nil
}

// SetStatus sets the "status" field.
func (m *PipelineRunMutation) SetStatus(pi pipelinerun.Status) {
	m.status = &pi
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineRunMutation) Status() (r pipelinerun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStatus(ctx context.Context) (v pipelinerun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineRunMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PipelineRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PipelineRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PipelineRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *PipelineRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PipelineRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PipelineRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[pipelinerun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PipelineRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PipelineRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, pipelinerun.FieldCompletedAt)
}

// SetStats sets the "stats" field.
func (m *PipelineRunMutation) SetStats(value map[string]interface{}) {
	m.stats = &value
}

// Stats returns the value of the "stats" field in the mutation.
func (m *PipelineRunMutation) Stats() (r map[string]interface{}, exists bool) {
	v := m.stats
	if v == nil {
		return
	}
	return *v, true
}

// OldStats returns the old "stats" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStats(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStats is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStats requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStats: %w", err)
	}
	return oldValue.Stats, nil
}

// ClearStats clears the value of the "stats" field.
func (m *PipelineRunMutation) ClearStats() {
	m.stats = nil
	m.clearedFields[pipelinerun.FieldStats] = struct{}{}
}

// StatsCleared returns if the "stats" field was cleared in this mutation.
func (m *PipelineRunMutation) StatsCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldStats]
	return ok
}

// ResetStats resets all changes to the "stats" field.
func (m *PipelineRunMutation) ResetStats() {
	m.stats = nil
	delete(m.clearedFields, pipelinerun.FieldStats)
}

// SetTimeline sets the "timeline" field.
func (m *PipelineRunMutation) SetTimeline(value []map[string]interface{}) {
	m.timeline = &value
	m.appendtimeline = nil
}

// Timeline returns the value of the "timeline" field in the mutation.
func (m *PipelineRunMutation) Timeline() (r []map[string]interface{}, exists bool) {
	v := m.timeline
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeline returns the old "timeline" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldTimeline(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeline: %w", err)
	}
	return oldValue.Timeline, nil
}

// AppendTimeline adds value to the "timeline" field.
func (m *PipelineRunMutation) AppendTimeline(value []map[string]interface{}) {
	m.appendtimeline = append(m.appendtimeline, value...)
}

// AppendedTimeline returns the list of values that were appended to the "timeline" field in this mutation.
func (m *PipelineRunMutation) AppendedTimeline() ([]map[string]interface{}, bool) {
	if len(m.appendtimeline) == 0 {
		return nil, false
	}
	return m.appendtimeline, true
}

// ClearTimeline clears the value of the "timeline" field.
func (m *PipelineRunMutation) ClearTimeline() {
	m.timeline = nil
	m.appendtimeline = nil
	m.clearedFields[pipelinerun.FieldTimeline] = struct{}{}
}

// TimelineCleared returns if the "timeline" field was cleared in this mutation.
func (m *PipelineRunMutation) TimelineCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldTimeline]
	return ok
}

// ResetTimeline resets all changes to the "timeline" field.
func (m *PipelineRunMutation) ResetTimeline() {
	m.timeline = nil
	m.appendtimeline = nil
	delete(m.clearedFields, pipelinerun.FieldTimeline)
}

// SetBudgetSpentCents sets the "budget_spent_cents" field.
func (m *PipelineRunMutation) SetBudgetSpentCents(i int64) {
	m.budget_spent_cents = &i
	m.addbudget_spent_cents = nil
}

// BudgetSpentCents returns the value of the "budget_spent_cents" field in the mutation.
func (m *PipelineRunMutation) BudgetSpentCents() (r int64, exists bool) {
	v := m.budget_spent_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldBudgetSpentCents returns the old "budget_spent_cents" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldBudgetSpentCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBudgetSpentCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBudgetSpentCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBudgetSpentCents: %w", err)
	}
	return oldValue.BudgetSpentCents, nil
}

// AddBudgetSpentCents adds i to the "budget_spent_cents" field.
func (m *PipelineRunMutation) AddBudgetSpentCents(i int64) {
	if m.addbudget_spent_cents != nil {
		*m.addbudget_spent_cents += i
	} else {
		m.addbudget_spent_cents = &i
	}
}

// AddedBudgetSpentCents returns the value that was added to the "budget_spent_cents" field in this mutation.
func (m *PipelineRunMutation) AddedBudgetSpentCents() (r int64, exists bool) {
	v := m.addbudget_spent_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetBudgetSpentCents resets all changes to the "budget_spent_cents" field.
func (m *PipelineRunMutation) ResetBudgetSpentCents() {
	m.budget_spent_cents = nil
	m.addbudget_spent_cents = nil
}

// SetError sets the "error" field.
func (m *PipelineRunMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *PipelineRunMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *PipelineRunMutation) ClearError() {
	m.error = nil
	m.clearedFields[pipelinerun.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *PipelineRunMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *PipelineRunMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, pipelinerun.FieldError)
}

// Where appends a list predicates to the PipelineRunMutation builder.
func (m *PipelineRunMutation) Where(ps ...predicate.PipelineRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineRun).
func (m *PipelineRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineRunMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.region != nil {
		fields = append(fields, pipelinerun.FieldRegion)
	}
	if m.status != nil {
		fields = append(fields, pipelinerun.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, pipelinerun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, pipelinerun.FieldCompletedAt)
	}
	if m.stats != nil {
		fields = append(fields, pipelinerun.FieldStats)
	}
	if m.timeline != nil {
		fields = append(fields, pipelinerun.FieldTimeline)
	}
	if m.budget_spent_cents != nil {
		fields = append(fields, pipelinerun.FieldBudgetSpentCents)
	}
	if m.error != nil {
		fields = append(fields, pipelinerun.FieldError)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinerun.FieldRegion:
		return m.Region()
	case pipelinerun.FieldStatus:
		return m.Status()
	case pipelinerun.FieldStartedAt:
		return m.StartedAt()
	case pipelinerun.FieldCompletedAt:
		return m.CompletedAt()
	case pipelinerun.FieldStats:
		return m.Stats()
	case pipelinerun.FieldTimeline:
		return m.Timeline()
	case pipelinerun.FieldBudgetSpentCents:
		return m.BudgetSpentCents()
	case pipelinerun.FieldError:
		return m.Error()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinerun.FieldRegion:
		return m.OldRegion(ctx)
	case pipelinerun.FieldStatus:
		return m.OldStatus(ctx)
	case pipelinerun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case pipelinerun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case pipelinerun.FieldStats:
		return m.OldStats(ctx)
	case pipelinerun.FieldTimeline:
		return m.OldTimeline(ctx)
	case pipelinerun.FieldBudgetSpentCents:
		return m.OldBudgetSpentCents(ctx)
	case pipelinerun.FieldError:
		return m.OldError(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinerun.FieldRegion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegion(v)
		return nil
	case pipelinerun.FieldStatus:
		v, ok := value.(pipelinerun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelinerun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case pipelinerun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case pipelinerun.FieldStats:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStats(v)
		return nil
	case pipelinerun.FieldTimeline:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeline(v)
		return nil
	case pipelinerun.FieldBudgetSpentCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBudgetSpentCents(v)
		return nil
	case pipelinerun.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineRunMutation) AddedFields() []string {
	var fields []string
	if m.addbudget_spent_cents != nil {
		fields = append(fields, pipelinerun.FieldBudgetSpentCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinerun.FieldBudgetSpentCents:
		return m.AddedBudgetSpentCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinerun.FieldBudgetSpentCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBudgetSpentCents(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinerun.FieldCompletedAt) {
		fields = append(fields, pipelinerun.FieldCompletedAt)
	}
	if m.FieldCleared(pipelinerun.FieldStats) {
		fields = append(fields, pipelinerun.FieldStats)
	}
	if m.FieldCleared(pipelinerun.FieldTimeline) {
		fields = append(fields, pipelinerun.FieldTimeline)
	}
	if m.FieldCleared(pipelinerun.FieldError) {
		fields = append(fields, pipelinerun.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineRunMutation) ClearField(name string) error {
	switch name {
	case pipelinerun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case pipelinerun.FieldStats:
		m.ClearStats()
		return nil
	case pipelinerun.FieldTimeline:
		m.ClearTimeline()
		return nil
	case pipelinerun.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineRunMutation) ResetField(name string) error {
	switch name {
	case pipelinerun.FieldRegion:
		m.ResetRegion()
		return nil
	case pipelinerun.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelinerun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case pipelinerun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case pipelinerun.FieldStats:
		m.ResetStats()
		return nil
	case pipelinerun.FieldTimeline:
		m.ResetTimeline()
		return nil
	case pipelinerun.FieldBudgetSpentCents:
		m.ResetBudgetSpentCents()
		return nil
	case pipelinerun.FieldError:
		m.ResetError()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PipelineRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PipelineRun edge %s", name)
}

// ResponseMutation represents an operation that mutates the Response nodes in the graph.
type ResponseMutation struct {
	config
	op            Op
	typ           string
	id            *int
	response_id   *string
	tension_id    *string
	strength      *float64
	addstrength   *float64
	explanation   *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Response, error)
	predicates    []predicate.Response
}

var _ ent.Mutation = (*ResponseMutation)(nil)

// responseOption allows management of the mutation configuration using functional options.
type responseOption func(*ResponseMutation)

// newResponseMutation creates new mutation for the Response entity.
func newResponseMutation(c config, op Op, opts ...responseOption) *ResponseMutation {
	m := &ResponseMutation{
		config:        c,
		op:            op,
		typ:           TypeResponse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResponseID sets the ID field of the mutation.
func withResponseID(id int) responseOption {
	return func(m *ResponseMutation) {
		var (
			err   error
			once  sync.Once
			value *Response
		)
		m.oldValue = func(ctx context.Context) (*Response, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Response.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResponse sets the old Response of the mutation.
func withResponse(node *Response) responseOption {
	return func(m *ResponseMutation) {
		m.oldValue = func(context.Context) (*Response, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResponseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResponseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResponseMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResponseMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Response.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResponseID sets the "response_id" field.
func (m *ResponseMutation) SetResponseID(s string) {
	m.response_id = &s
}

// ResponseID returns the value of the "response_id" field in the mutation.
func (m *ResponseMutation) ResponseID() (r string, exists bool) {
	v := m.response_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseID returns the old "response_id" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldResponseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseID: %w", err)
	}
	return oldValue.ResponseID, nil
}

// ResetResponseID resets all changes to the "response_id" field.
func (m *ResponseMutation) ResetResponseID() {
	m.response_id = nil
}

// SetTensionID sets the "tension_id" field.
func (m *ResponseMutation) SetTensionID(s string) {
	m.tension_id = &s
}

// TensionID returns the value of the "tension_id" field in the mutation.
func (m *ResponseMutation) TensionID() (r string, exists bool) {
	v := m.tension_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTensionID returns the old "tension_id" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldTensionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTensionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTensionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTensionID: %w", err)
	}
	return oldValue.TensionID, nil
}

// ResetTensionID resets all changes to the "tension_id" field.
func (m *ResponseMutation) ResetTensionID() {
	m.tension_id = nil
}

// SetStrength sets the "strength" field.
func (m *ResponseMutation) SetStrength(f float64) {
	m.strength = &f
	m.addstrength = nil
}

// Strength returns the value of the "strength" field in the mutation.
func (m *ResponseMutation) Strength() (r float64, exists bool) {
	v := m.strength
	if v == nil {
		return
	}
	return *v, true
}

// OldStrength returns the old "strength" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldStrength(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrength: %w", err)
	}
	return oldValue.Strength, nil
}

// AddStrength adds f to the "strength" field.
func (m *ResponseMutation) AddStrength(f float64) {
	if m.addstrength != nil {
		*m.addstrength += f
	} else {
		m.addstrength = &f
	}
}

// AddedStrength returns the value that was added to the "strength" field in this mutation.
func (m *ResponseMutation) AddedStrength() (r float64, exists bool) {
	v := m.addstrength
	if v == nil {
		return
	}
	return *v, true
}

// ResetStrength resets all changes to the "strength" field.
func (m *ResponseMutation) ResetStrength() {
	m.strength = nil
	m.addstrength = nil
}

// SetExplanation sets the "explanation" field.
func (m *ResponseMutation) SetExplanation(s string) {
	m.explanation = &s
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *ResponseMutation) Explanation() (r string, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldExplanation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *ResponseMutation) ResetExplanation() {
	m.explanation = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ResponseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResponseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResponseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ResponseMutation builder.
func (m *ResponseMutation) Where(ps ...predicate.Response) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResponseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResponseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Response, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResponseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResponseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Response).
func (m *ResponseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResponseMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.response_id != nil {
		fields = append(fields, response.FieldResponseID)
	}
	if m.tension_id != nil {
		fields = append(fields, response.FieldTensionID)
	}
	if m.strength != nil {
		fields = append(fields, response.FieldStrength)
	}
	if m.explanation != nil {
		fields = append(fields, response.FieldExplanation)
	}
	if m.created_at != nil {
		fields = append(fields, response.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResponseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case response.FieldResponseID:
		return m.ResponseID()
	case response.FieldTensionID:
		return m.TensionID()
	case response.FieldStrength:
		return m.Strength()
	case response.FieldExplanation:
		return m.Explanation()
	case response.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResponseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case response.FieldResponseID:
		return m.OldResponseID(ctx)
	case response.FieldTensionID:
		return m.OldTensionID(ctx)
	case response.FieldStrength:
		return m.OldStrength(ctx)
	case response.FieldExplanation:
		return m.OldExplanation(ctx)
	case response.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Response field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResponseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case response.FieldResponseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseID(v)
		return nil
	case response.FieldTensionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTensionID(v)
		return nil
	case response.FieldStrength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrength(v)
		return nil
	case response.FieldExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	case response.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Response field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResponseMutation) AddedFields() []string {
	var fields []string
	if m.addstrength != nil {
		fields = append(fields, response.FieldStrength)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResponseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case response.FieldStrength:
		return m.AddedStrength()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResponseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case response.FieldStrength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStrength(v)
		return nil
	}
	return fmt.Errorf("unknown Response numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResponseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResponseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResponseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Response nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResponseMutation) ResetField(name string) error {
	switch name {
	case response.FieldResponseID:
		m.ResetResponseID()
		return nil
	case response.FieldTensionID:
		m.ResetTensionID()
		return nil
	case response.FieldStrength:
		m.ResetStrength()
		return nil
	case response.FieldExplanation:
		m.ResetExplanation()
		return nil
	case response.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Response field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResponseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResponseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResponseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResponseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResponseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResponseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResponseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Response unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResponseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Response edge %s", name)
}

// SignalMutation represents an operation that mutates the Signal nodes in the graph.
type SignalMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	node_type              *signal.NodeType
	region                 *string
	title                  *string
	title_key              *string
	summary                *string
	sensitivity            *signal.Sensitivity
	confidence             *float64
	addconfidence          *float64
	freshness_score        *float64
	addfreshness_score     *float64
	corroboration_count    *int
	addcorroboration_count *int
	lat                    *float64
	addlat                 *float64
	lng                    *float64
	addlng                 *float64
	geo_precision          *signal.GeoPrecision
	location_name          *string
	source_url             *string
	extracted_at           *time.Time
	last_confirmed_active  *time.Time
	audience_roles         *[]string
	appendaudience_roles   []string
	source_diversity       *int
	addsource_diversity    *int
	external_ratio         *float64
	addexternal_ratio      *float64
	cause_heat             *float64
	addcause_heat          *float64
	mentioned_actors       *[]string
	appendmentioned_actors []string
	variant                *map[string]interface{}
	embedding              *[]float32
	appendembedding        []float32
	severity               *signal.Severity
	expired_at             *time.Time
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	evidence               map[string]struct{}
	removedevidence        map[string]struct{}
	clearedevidence        bool
	mentions               map[string]struct{}
	removedmentions        map[string]struct{}
	clearedmentions        bool
	authors                map[string]struct{}
	removedauthors         map[string]struct{}
	clearedauthors         bool
	done                   bool
	oldValue               func(context.Context) (*Signal, error)
	predicates             []predicate.Signal
}

var _ ent.Mutation = (*SignalMutation)(nil)

// signalOption allows management of the mutation configuration using functional options.
type signalOption func(*SignalMutation)

// newSignalMutation creates new mutation for the Signal entity.
func newSignalMutation(c config, op Op, opts ...signalOption) *SignalMutation {
	m := &SignalMutation{
		config:        c,
		op:            op,
		typ:           TypeSignal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSignalID sets the ID field of the mutation.
func withSignalID(id string) signalOption {
	return func(m *SignalMutation) {
		var (
			err   error
			once  sync.Once
			value *Signal
		)
		m.oldValue = func(ctx context.Context) (*Signal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Signal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSignal sets the old Signal of the mutation.
func withSignal(node *Signal) signalOption {
	return func(m *SignalMutation) {
		m.oldValue = func(context.Context) (*Signal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SignalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SignalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Signal entities.
func (m *SignalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SignalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SignalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Signal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNodeType sets the "node_type" field.
func (m *SignalMutation) SetNodeType(st signal.NodeType) {
	m.node_type = &st
}

// NodeType returns the value of the "node_type" field in the mutation.
func (m *SignalMutation) NodeType() (r signal.NodeType, exists bool) {
	v := m.node_type
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeType returns the old "node_type" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldNodeType(ctx context.Context) (v signal.NodeType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeType: %w", err)
	}
	return oldValue.NodeType, nil
}

// ResetNodeType resets all changes to the "node_type" field.
func (m *SignalMutation) ResetNodeType() {
	m.node_type = nil
}

// SetRegion sets the "region" field.
func (m *SignalMutation) SetRegion(s string) {
	m.region = &s
}

// Region returns the value of the "region" field in the mutation.
func (m *SignalMutation) Region() (r string, exists bool) {
	v := m.region
	if v == nil {
		return
	}
	return *v, true
}

// OldRegion returns the old "region" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldRegion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegion: %w", err)
	}
	return oldValue.Region, nil
}

// ResetRegion resets all changes to the "region" field.
func (m *SignalMutation) ResetRegion() {
	m.region = nil
}

// SetTitle sets the "title" field.
func (m *SignalMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SignalMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *SignalMutation) ResetTitle() {
	m.title = nil
}

// SetTitleKey sets the "title_key" field.
func (m *SignalMutation) SetTitleKey(s string) {
	m.title_key = &s
}

// TitleKey returns the value of the "title_key" field in the mutation.
func (m *SignalMutation) TitleKey() (r string, exists bool) {
	v := m.title_key
	if v == nil {
		return
	}
	return *v, true
}

// OldTitleKey returns the old "title_key" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldTitleKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitleKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitleKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitleKey: %w", err)
	}
	return oldValue.TitleKey, nil
}

// ResetTitleKey resets all changes to the "title_key" field.
func (m *SignalMutation) ResetTitleKey() {
	m.title_key = nil
}

// SetSummary sets the "summary" field.
func (m *SignalMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *SignalMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *SignalMutation) ResetSummary() {
	m.summary = nil
}

// SetSensitivity sets the "sensitivity" field.
func (m *SignalMutation) SetSensitivity(s signal.Sensitivity) {
	m.sensitivity = &s
}

// Sensitivity returns the value of the "sensitivity" field in the mutation.
func (m *SignalMutation) Sensitivity() (r signal.Sensitivity, exists bool) {
	v := m.sensitivity
	if v == nil {
		return
	}
	return *v, true
}

// OldSensitivity returns the old "sensitivity" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldSensitivity(ctx context.Context) (v signal.Sensitivity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSensitivity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSensitivity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSensitivity: %w", err)
	}
	return oldValue.Sensitivity, nil
}

// ResetSensitivity resets all changes to the "sensitivity" field.
func (m *SignalMutation) ResetSensitivity() {
	m.sensitivity = nil
}

// SetConfidence sets the "confidence" field.
func (m *SignalMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *SignalMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *SignalMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *SignalMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *SignalMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetFreshnessScore sets the "freshness_score" field.
func (m *SignalMutation) SetFreshnessScore(f float64) {
	m.freshness_score = &f
	m.addfreshness_score = nil
}

// FreshnessScore returns the value of the "freshness_score" field in the mutation.
func (m *SignalMutation) FreshnessScore() (r float64, exists bool) {
	v := m.freshness_score
	if v == nil {
		return
	}
	return *v, true
}

// OldFreshnessScore returns the old "freshness_score" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldFreshnessScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFreshnessScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFreshnessScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFreshnessScore: %w", err)
	}
	return oldValue.FreshnessScore, nil
}

// AddFreshnessScore adds f to the "freshness_score" field.
func (m *SignalMutation) AddFreshnessScore(f float64) {
	if m.addfreshness_score != nil {
		*m.addfreshness_score += f
	} else {
		m.addfreshness_score = &f
	}
}

// AddedFreshnessScore returns the value that was added to the "freshness_score" field in this mutation.
func (m *SignalMutation) AddedFreshnessScore() (r float64, exists bool) {
	v := m.addfreshness_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetFreshnessScore resets all changes to the "freshness_score" field.
func (m *SignalMutation) ResetFreshnessScore() {
	m.freshness_score = nil
	m.addfreshness_score = nil
}

// SetCorroborationCount sets the "corroboration_count" field.
func (m *SignalMutation) SetCorroborationCount(i int) {
	m.corroboration_count = &i
	m.addcorroboration_count = nil
}

// CorroborationCount returns the value of the "corroboration_count" field in the mutation.
func (m *SignalMutation) CorroborationCount() (r int, exists bool) {
	v := m.corroboration_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorroborationCount returns the old "corroboration_count" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldCorroborationCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorroborationCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorroborationCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorroborationCount: %w", err)
	}
	return oldValue.CorroborationCount, nil
}

// AddCorroborationCount adds i to the "corroboration_count" field.
func (m *SignalMutation) AddCorroborationCount(i int) {
	if m.addcorroboration_count != nil {
		*m.addcorroboration_count += i
	} else {
		m.addcorroboration_count = &i
	}
}

// AddedCorroborationCount returns the value that was added to the "corroboration_count" field in this mutation.
func (m *SignalMutation) AddedCorroborationCount() (r int, exists bool) {
	v := m.addcorroboration_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorroborationCount resets all changes to the "corroboration_count" field.
func (m *SignalMutation) ResetCorroborationCount() {
	m.corroboration_count = nil
	m.addcorroboration_count = nil
}

// SetLat sets the "lat" field.
func (m *SignalMutation) SetLat(f float64) {
	m.lat = &f
	m.addlat = nil
}

// Lat returns the value of the "lat" field in the mutation.
func (m *SignalMutation) Lat() (r float64, exists bool) {
	v := m.lat
	if v == nil {
		return
	}
	return *v, true
}

// OldLat returns the old "lat" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldLat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLat: %w", err)
	}
	return oldValue.Lat, nil
}

// AddLat adds f to the "lat" field.
func (m *SignalMutation) AddLat(f float64) {
	if m.addlat != nil {
		*m.addlat += f
	} else {
		m.addlat = &f
	}
}

// AddedLat returns the value that was added to the "lat" field in this mutation.
func (m *SignalMutation) AddedLat() (r float64, exists bool) {
	v := m.addlat
	if v == nil {
		return
	}
	return *v, true
}

// ClearLat clears the value of the "lat" field.
func (m *SignalMutation) ClearLat() {
	m.lat = nil
	m.addlat = nil
	m.clearedFields[signal.FieldLat] = struct{}{}
}

// LatCleared returns if the "lat" field was cleared in this mutation.
func (m *SignalMutation) LatCleared() bool {
	_, ok := m.clearedFields[signal.FieldLat]
	return ok
}

// ResetLat resets all changes to the "lat" field.
func (m *SignalMutation) ResetLat() {
	m.lat = nil
	m.addlat = nil
	delete(m.clearedFields, signal.FieldLat)
}

// SetLng sets the "lng" field.
func (m *SignalMutation) SetLng(f float64) {
	m.lng = &f
	m.addlng = nil
}

// Lng returns the value of the "lng" field in the mutation.
func (m *SignalMutation) Lng() (r float64, exists bool) {
	v := m.lng
	if v == nil {
		return
	}
	return *v, true
}

// OldLng returns the old "lng" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldLng(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLng is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLng requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLng: %w", err)
	}
	return oldValue.Lng, nil
}

// AddLng adds f to the "lng" field.
func (m *SignalMutation) AddLng(f float64) {
	if m.addlng != nil {
		*m.addlng += f
	} else {
		m.addlng = &f
	}
}

// AddedLng returns the value that was added to the "lng" field in this mutation.
func (m *SignalMutation) AddedLng() (r float64, exists bool) {
	v := m.addlng
	if v == nil {
		return
	}
	return *v, true
}

// ClearLng clears the value of the "lng" field.
func (m *SignalMutation) ClearLng() {
	m.lng = nil
	m.addlng = nil
	m.clearedFields[signal.FieldLng] = struct{}{}
}

// LngCleared returns if the "lng" field was cleared in this mutation.
func (m *SignalMutation) LngCleared() bool {
	_, ok := m.clearedFields[signal.FieldLng]
	return ok
}

// ResetLng resets all changes to the "lng" field.
func (m *SignalMutation) ResetLng() {
	m.lng = nil
	m.addlng = nil
	delete(m.clearedFields, signal.FieldLng)
}

// SetGeoPrecision sets the "geo_precision" field.
func (m *SignalMutation) SetGeoPrecision(sp signal.GeoPrecision) {
	m.geo_precision = &sp
}

// GeoPrecision returns the value of the "geo_precision" field in the mutation.
func (m *SignalMutation) GeoPrecision() (r signal.GeoPrecision, exists bool) {
	v := m.geo_precision
	if v == nil {
		return
	}
	return *v, true
}

// OldGeoPrecision returns the old "geo_precision" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldGeoPrecision(ctx context.Context) (v *signal.GeoPrecision, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeoPrecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeoPrecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeoPrecision: %w", err)
	}
	return oldValue.GeoPrecision, nil
}

// ClearGeoPrecision clears the value of the "geo_precision" field.
func (m *SignalMutation) ClearGeoPrecision() {
	m.geo_precision = nil
	m.clearedFields[signal.FieldGeoPrecision] = struct{}{}
}

// GeoPrecisionCleared returns if the "geo_precision" field was cleared in this mutation.
func (m *SignalMutation) GeoPrecisionCleared() bool {
	_, ok := m.clearedFields[signal.FieldGeoPrecision]
	return ok
}

// ResetGeoPrecision resets all changes to the "geo_precision" field.
func (m *SignalMutation) ResetGeoPrecision() {
	m.geo_precision = nil
	delete(m.clearedFields, signal.FieldGeoPrecision)
}

// SetLocationName sets the "location_name" field.
func (m *SignalMutation) SetLocationName(s string) {
	m.location_name = &s
}

// LocationName returns the value of the "location_name" field in the mutation.
func (m *SignalMutation) LocationName() (r string, exists bool) {
	v := m.location_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationName returns the old "location_name" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldLocationName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationName: %w", err)
	}
	return oldValue.LocationName, nil
}

// ClearLocationName clears the value of the "location_name" field.
func (m *SignalMutation) ClearLocationName() {
	m.location_name = nil
	m.clearedFields[signal.FieldLocationName] = struct{}{}
}

// LocationNameCleared returns if the "location_name" field was cleared in this mutation.
func (m *SignalMutation) LocationNameCleared() bool {
	_, ok := m.clearedFields[signal.FieldLocationName]
	return ok
}

// ResetLocationName resets all changes to the "location_name" field.
func (m *SignalMutation) ResetLocationName() {
	m.location_name = nil
	delete(m.clearedFields, signal.FieldLocationName)
}

// SetSourceURL sets the "source_url" field.
func (m *SignalMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *SignalMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldSourceURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *SignalMutation) ResetSourceURL() {
	m.source_url = nil
}

// SetExtractedAt sets the "extracted_at" field.
func (m *SignalMutation) SetExtractedAt(t time.Time) {
	m.extracted_at = &t
}

// ExtractedAt returns the value of the "extracted_at" field in the mutation.
func (m *SignalMutation) ExtractedAt() (r time.Time, exists bool) {
	v := m.extracted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedAt returns the old "extracted_at" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldExtractedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedAt: %w", err)
	}
	return oldValue.ExtractedAt, nil
}

// ResetExtractedAt resets all changes to the "extracted_at" field.
func (m *SignalMutation) ResetExtractedAt() {
	m.extracted_at = nil
}

// SetLastConfirmedActive sets the "last_confirmed_active" field.
func (m *SignalMutation) SetLastConfirmedActive(t time.Time) {
	m.last_confirmed_active = &t
}

// LastConfirmedActive returns the value of the "last_confirmed_active" field in the mutation.
func (m *SignalMutation) LastConfirmedActive() (r time.Time, exists bool) {
	v := m.last_confirmed_active
	if v == nil {
		return
	}
	return *v, true
}

// OldLastConfirmedActive returns the old "last_confirmed_active" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldLastConfirmedActive(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastConfirmedActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastConfirmedActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastConfirmedActive: %w", err)
	}
	return oldValue.LastConfirmedActive, nil
}

// ResetLastConfirmedActive resets all changes to the "last_confirmed_active" field.
func (m *SignalMutation) ResetLastConfirmedActive() {
	m.last_confirmed_active = nil
}

// SetAudienceRoles sets the "audience_roles" field.
func (m *SignalMutation) SetAudienceRoles(s []string) {
	m.audience_roles = &s
	m.appendaudience_roles = nil
}

// AudienceRoles returns the value of the "audience_roles" field in the mutation.
func (m *SignalMutation) AudienceRoles() (r []string, exists bool) {
	v := m.audience_roles
	if v == nil {
		return
	}
	return *v, true
}

// OldAudienceRoles returns the old "audience_roles" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldAudienceRoles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudienceRoles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudienceRoles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudienceRoles: %w", err)
	}
	return oldValue.AudienceRoles, nil
}

// AppendAudienceRoles adds s to the "audience_roles" field.
func (m *SignalMutation) AppendAudienceRoles(s []string) {
	m.appendaudience_roles = append(m.appendaudience_roles, s...)
}

// AppendedAudienceRoles returns the list of values that were appended to the "audience_roles" field in this mutation.
func (m *SignalMutation) AppendedAudienceRoles() ([]string, bool) {
	if len(m.appendaudience_roles) == 0 {
		return nil, false
	}
	return m.appendaudience_roles, true
}

// ClearAudienceRoles clears the value of the "audience_roles" field.
func (m *SignalMutation) ClearAudienceRoles() {
	m.audience_roles = nil
	m.appendaudience_roles = nil
	m.clearedFields[signal.FieldAudienceRoles] = struct{}{}
}

// AudienceRolesCleared returns if the "audience_roles" field was cleared in this mutation.
func (m *SignalMutation) AudienceRolesCleared() bool {
	_, ok := m.clearedFields[signal.FieldAudienceRoles]
	return ok
}

// ResetAudienceRoles resets all changes to the "audience_roles" field.
func (m *SignalMutation) ResetAudienceRoles() {
	m.audience_roles = nil
	m.appendaudience_roles = nil
	delete(m.clearedFields, signal.FieldAudienceRoles)
}

// SetSourceDiversity sets the "source_diversity" field.
func (m *SignalMutation) SetSourceDiversity(i int) {
	m.source_diversity = &i
	m.addsource_diversity = nil
}

// SourceDiversity returns the value of the "source_diversity" field in the mutation.
func (m *SignalMutation) SourceDiversity() (r int, exists bool) {
	v := m.source_diversity
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceDiversity returns the old "source_diversity" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldSourceDiversity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceDiversity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceDiversity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceDiversity: %w", err)
	}
	return oldValue.SourceDiversity, nil
}

// AddSourceDiversity adds i to the "source_diversity" field.
func (m *SignalMutation) AddSourceDiversity(i int) {
	if m.addsource_diversity != nil {
		*m.addsource_diversity += i
	} else {
		m.addsource_diversity = &i
	}
}

// AddedSourceDiversity returns the value that was added to the "source_diversity" field in this mutation.
func (m *SignalMutation) AddedSourceDiversity() (r int, exists bool) {
	v := m.addsource_diversity
	if v == nil {
		return
	}
	return *v, true
}

// ResetSourceDiversity resets all changes to the "source_diversity" field.
func (m *SignalMutation) ResetSourceDiversity() {
	m.source_diversity = nil
	m.addsource_diversity = nil
}

// SetExternalRatio sets the "external_ratio" field.
func (m *SignalMutation) SetExternalRatio(f float64) {
	m.external_ratio = &f
	m.addexternal_ratio = nil
}

// ExternalRatio returns the value of the "external_ratio" field in the mutation.
func (m *SignalMutation) ExternalRatio() (r float64, exists bool) {
	v := m.external_ratio
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalRatio returns the old "external_ratio" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldExternalRatio(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalRatio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalRatio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalRatio: %w", err)
	}
	return oldValue.ExternalRatio, nil
}

// AddExternalRatio adds f to the "external_ratio" field.
func (m *SignalMutation) AddExternalRatio(f float64) {
	if m.addexternal_ratio != nil {
		*m.addexternal_ratio += f
	} else {
		m.addexternal_ratio = &f
	}
}

// AddedExternalRatio returns the value that was added to the "external_ratio" field in this mutation.
func (m *SignalMutation) AddedExternalRatio() (r float64, exists bool) {
	v := m.addexternal_ratio
	if v == nil {
		return
	}
	return *v, true
}

// ResetExternalRatio resets all changes to the "external_ratio" field.
func (m *SignalMutation) ResetExternalRatio() {
	m.external_ratio = nil
	m.addexternal_ratio = nil
}

// SetCauseHeat sets the "cause_heat" field.
func (m *SignalMutation) SetCauseHeat(f float64) {
	m.cause_heat = &f
	m.addcause_heat = nil
}

// CauseHeat returns the value of the "cause_heat" field in the mutation.
func (m *SignalMutation) CauseHeat() (r float64, exists bool) {
	v := m.cause_heat
	if v == nil {
		return
	}
	return *v, true
}

// OldCauseHeat returns the old "cause_heat" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldCauseHeat(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCauseHeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCauseHeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCauseHeat: %w", err)
	}
	return oldValue.CauseHeat, nil
}

// AddCauseHeat adds f to the "cause_heat" field.
func (m *SignalMutation) AddCauseHeat(f float64) {
	if m.addcause_heat != nil {
		*m.addcause_heat += f
	} else {
		m.addcause_heat = &f
	}
}

// AddedCauseHeat returns the value that was added to the "cause_heat" field in this mutation.
func (m *SignalMutation) AddedCauseHeat() (r float64, exists bool) {
	v := m.addcause_heat
	if v == nil {
		return
	}
	return *v, true
}

// ResetCauseHeat resets all changes to the "cause_heat" field.
func (m *SignalMutation) ResetCauseHeat() {
	m.cause_heat = nil
	m.addcause_heat = nil
}

// SetMentionedActors sets the "mentioned_actors" field.
func (m *SignalMutation) SetMentionedActors(s []string) {
	m.mentioned_actors = &s
	m.appendmentioned_actors = nil
}

// MentionedActors returns the value of the "mentioned_actors" field in the mutation.
func (m *SignalMutation) MentionedActors() (r []string, exists bool) {
	v := m.mentioned_actors
	if v == nil {
		return
	}
	return *v, true
}

// OldMentionedActors returns the old "mentioned_actors" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldMentionedActors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMentionedActors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMentionedActors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMentionedActors: %w", err)
	}
	return oldValue.MentionedActors, nil
}

// AppendMentionedActors adds s to the "mentioned_actors" field.
func (m *SignalMutation) AppendMentionedActors(s []string) {
	m.appendmentioned_actors = append(m.appendmentioned_actors, s...)
}

// AppendedMentionedActors returns the list of values that were appended to the "mentioned_actors" field in this mutation.
func (m *SignalMutation) AppendedMentionedActors() ([]string, bool) {
	if len(m.appendmentioned_actors) == 0 {
		return nil, false
	}
	return m.appendmentioned_actors, true
}

// ClearMentionedActors clears the value of the "mentioned_actors" field.
func (m *SignalMutation) ClearMentionedActors() {
	m.mentioned_actors = nil
	m.appendmentioned_actors = nil
	m.clearedFields[signal.FieldMentionedActors] = struct{}{}
}

// MentionedActorsCleared returns if the "mentioned_actors" field was cleared in this mutation.
func (m *SignalMutation) MentionedActorsCleared() bool {
	_, ok := m.clearedFields[signal.FieldMentionedActors]
	return ok
}

// ResetMentionedActors resets all changes to the "mentioned_actors" field.
func (m *SignalMutation) ResetMentionedActors() {
	m.mentioned_actors = nil
	m.appendmentioned_actors = nil
	delete(m.clearedFields, signal.FieldMentionedActors)
}

// SetVariant sets the "variant" field.
func (m *SignalMutation) SetVariant(value map[string]interface{}) {
	m.variant = &value
}

// Variant returns the value of the "variant" field in the mutation.
func (m *SignalMutation) Variant() (r map[string]interface{}, exists bool) {
	v := m.variant
	if v == nil {
		return
	}
	return *v, true
}

// OldVariant returns the old "variant" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldVariant(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariant: %w", err)
	}
	return oldValue.Variant, nil
}

// ResetVariant resets all changes to the "variant" field.
func (m *SignalMutation) ResetVariant() {
	m.variant = nil
}

// SetEmbedding sets the "embedding" field.
func (m *SignalMutation) SetEmbedding(f []float32) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *SignalMutation) Embedding() (r []float32, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldEmbedding(ctx context.Context) (v []float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *SignalMutation) AppendEmbedding(f []float32) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *SignalMutation) AppendedEmbedding() ([]float32, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *SignalMutation) ClearEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	m.clearedFields[signal.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *SignalMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[signal.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *SignalMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	delete(m.clearedFields, signal.FieldEmbedding)
}

// SetSeverity sets the "severity" field.
func (m *SignalMutation) SetSeverity(s signal.Severity) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *SignalMutation) Severity() (r signal.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldSeverity(ctx context.Context) (v *signal.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ClearSeverity clears the value of the "severity" field.
func (m *SignalMutation) ClearSeverity() {
	m.severity = nil
	m.clearedFields[signal.FieldSeverity] = struct{}{}
}

// SeverityCleared returns if the "severity" field was cleared in this mutation.
func (m *SignalMutation) SeverityCleared() bool {
	_, ok := m.clearedFields[signal.FieldSeverity]
	return ok
}

// ResetSeverity resets all changes to the "severity" field.
func (m *SignalMutation) ResetSeverity() {
	m.severity = nil
	delete(m.clearedFields, signal.FieldSeverity)
}

// SetExpiredAt sets the "expired_at" field.
func (m *SignalMutation) SetExpiredAt(t time.Time) {
	m.expired_at = &t
}

// ExpiredAt returns the value of the "expired_at" field in the mutation.
func (m *SignalMutation) ExpiredAt() (r time.Time, exists bool) {
	v := m.expired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiredAt returns the old "expired_at" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldExpiredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiredAt: %w", err)
	}
	return oldValue.ExpiredAt, nil
}

// ClearExpiredAt clears the value of the "expired_at" field.
func (m *SignalMutation) ClearExpiredAt() {
	m.expired_at = nil
	m.clearedFields[signal.FieldExpiredAt] = struct{}{}
}

// ExpiredAtCleared returns if the "expired_at" field was cleared in this mutation.
func (m *SignalMutation) ExpiredAtCleared() bool {
	_, ok := m.clearedFields[signal.FieldExpiredAt]
	return ok
}

// ResetExpiredAt resets all changes to the "expired_at" field.
func (m *SignalMutation) ResetExpiredAt() {
	m.expired_at = nil
	delete(m.clearedFields, signal.FieldExpiredAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *SignalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SignalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SignalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SignalMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SignalMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Signal entity.
// If the Signal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SignalMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SignalMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by ids.
func (m *SignalMutation) AddEvidenceIDs(ids ...string) {
	if m.evidence == nil {
		m.evidence = make(map[string]struct{})
	}
	for i := range ids {
		m.evidence[ids[i]] = struct{}{}
	}
}

// ClearEvidence clears the "evidence" edge to the Evidence entity.
func (m *SignalMutation) ClearEvidence() {
	m.clearedevidence = true
}

// EvidenceCleared reports if the "evidence" edge to the Evidence entity was cleared.
func (m *SignalMutation) EvidenceCleared() bool {
	return m.clearedevidence
}

// RemoveEvidenceIDs removes the "evidence" edge to the Evidence entity by IDs.
func (m *SignalMutation) RemoveEvidenceIDs(ids ...string) {
	if m.removedevidence == nil {
		m.removedevidence = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.evidence, ids[i])
		m.removedevidence[ids[i]] = struct{}{}
	}
}

// RemovedEvidence returns the removed IDs of the "evidence" edge to the Evidence entity.
func (m *SignalMutation) RemovedEvidenceIDs() (ids []string) {
	for id := range m.removedevidence {
		ids = append(ids, id)
	}
	return
}

// EvidenceIDs returns the "evidence" edge IDs in the mutation.
func (m *SignalMutation) EvidenceIDs() (ids []string) {
	for id := range m.evidence {
		ids = append(ids, id)
	}
	return
}

// ResetEvidence resets all changes to the "evidence" edge.
func (m *SignalMutation) ResetEvidence() {
	m.evidence = nil
	m.clearedevidence = false
	m.removedevidence = nil
}

// AddMentionIDs adds the "mentions" edge to the Actor entity by ids.
func (m *SignalMutation) AddMentionIDs(ids ...string) {
	if m.mentions == nil {
		m.mentions = make(map[string]struct{})
	}
	for i := range ids {
		m.mentions[ids[i]] = struct{}{}
	}
}

// ClearMentions clears the "mentions" edge to the Actor entity.
func (m *SignalMutation) ClearMentions() {
	m.clearedmentions = true
}

// MentionsCleared reports if the "mentions" edge to the Actor entity was cleared.
func (m *SignalMutation) MentionsCleared() bool {
	return m.clearedmentions
}

// RemoveMentionIDs removes the "mentions" edge to the Actor entity by IDs.
func (m *SignalMutation) RemoveMentionIDs(ids ...string) {
	if m.removedmentions == nil {
		m.removedmentions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.mentions, ids[i])
		m.removedmentions[ids[i]] = struct{}{}
	}
}

// RemovedMentions returns the removed IDs of the "mentions" edge to the Actor entity.
func (m *SignalMutation) RemovedMentionsIDs() (ids []string) {
	for id := range m.removedmentions {
		ids = append(ids, id)
	}
	return
}

// MentionsIDs returns the "mentions" edge IDs in the mutation.
func (m *SignalMutation) MentionsIDs() (ids []string) {
	for id := range m.mentions {
		ids = append(ids, id)
	}
	return
}

// ResetMentions resets all changes to the "mentions" edge.
func (m *SignalMutation) ResetMentions() {
	m.mentions = nil
	m.clearedmentions = false
	m.removedmentions = nil
}

// AddAuthorIDs adds the "authors" edge to the Actor entity by ids.
func (m *SignalMutation) AddAuthorIDs(ids ...string) {
	if m.authors == nil {
		m.authors = make(map[string]struct{})
	}
	for i := range ids {
		m.authors[ids[i]] = struct{}{}
	}
}

// ClearAuthors clears the "authors" edge to the Actor entity.
func (m *SignalMutation) ClearAuthors() {
	m.clearedauthors = true
}

// AuthorsCleared reports if the "authors" edge to the Actor entity was cleared.
func (m *SignalMutation) AuthorsCleared() bool {
	return m.clearedauthors
}

// RemoveAuthorIDs removes the "authors" edge to the Actor entity by IDs.
func (m *SignalMutation) RemoveAuthorIDs(ids ...string) {
	if m.removedauthors == nil {
		m.removedauthors = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.authors, ids[i])
		m.removedauthors[ids[i]] = struct{}{}
	}
}

// RemovedAuthors returns the removed IDs of the "authors" edge to the Actor entity.
func (m *SignalMutation) RemovedAuthorsIDs() (ids []string) {
	for id := range m.removedauthors {
		ids = append(ids, id)
	}
	return
}

// AuthorsIDs returns the "authors" edge IDs in the mutation.
func (m *SignalMutation) AuthorsIDs() (ids []string) {
	for id := range m.authors {
		ids = append(ids, id)
	}
	return
}

// ResetAuthors resets all changes to the "authors" edge.
func (m *SignalMutation) ResetAuthors() {
	m.authors = nil
	m.clearedauthors = false
	m.removedauthors = nil
}

// Where appends a list predicates to the SignalMutation builder.
func (m *SignalMutation) Where(ps ...predicate.Signal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SignalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SignalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Signal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SignalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SignalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Signal).
func (m *SignalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SignalMutation) Fields() []string {
	fields := make([]string, 0, 27)
	if m.node_type != nil {
		fields = append(fields, signal.FieldNodeType)
	}
	if m.region != nil {
		fields = append(fields, signal.FieldRegion)
	}
	if m.title != nil {
		fields = append(fields, signal.FieldTitle)
	}
	if m.title_key != nil {
		fields = append(fields, signal.FieldTitleKey)
	}
	if m.summary != nil {
		fields = append(fields, signal.FieldSummary)
	}
	if m.sensitivity != nil {
		fields = append(fields, signal.FieldSensitivity)
	}
	if m.confidence != nil {
		fields = append(fields, signal.FieldConfidence)
	}
	if m.freshness_score != nil {
		fields = append(fields, signal.FieldFreshnessScore)
	}
	if m.corroboration_count != nil {
		fields = append(fields, signal.FieldCorroborationCount)
	}
	if m.lat != nil {
		fields = append(fields, signal.FieldLat)
	}
	if m.lng != nil {
		fields = append(fields, signal.FieldLng)
	}
	if m.geo_precision != nil {
		fields = append(fields, signal.FieldGeoPrecision)
	}
	if m.location_name != nil {
		fields = append(fields, signal.FieldLocationName)
	}
	if m.source_url != nil {
		fields = append(fields, signal.FieldSourceURL)
	}
	if m.extracted_at != nil {
		fields = append(fields, signal.FieldExtractedAt)
	}
	if m.last_confirmed_active != nil {
		fields = append(fields, signal.FieldLastConfirmedActive)
	}
	if m.audience_roles != nil {
		fields = append(fields, signal.FieldAudienceRoles)
	}
	if m.source_diversity != nil {
		fields = append(fields, signal.FieldSourceDiversity)
	}
	if m.external_ratio != nil {
		fields = append(fields, signal.FieldExternalRatio)
	}
	if m.cause_heat != nil {
		fields = append(fields, signal.FieldCauseHeat)
	}
	if m.mentioned_actors != nil {
		fields = append(fields, signal.FieldMentionedActors)
	}
	if m.variant != nil {
		fields = append(fields, signal.FieldVariant)
	}
	if m.embedding != nil {
		fields = append(fields, signal.FieldEmbedding)
	}
	if m.severity != nil {
		fields = append(fields, signal.FieldSeverity)
	}
	if m.expired_at != nil {
		fields = append(fields, signal.FieldExpiredAt)
	}
	if m.created_at != nil {
		fields = append(fields, signal.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, signal.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SignalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case signal.FieldNodeType:
		return m.NodeType()
	case signal.FieldRegion:
		return m.Region()
	case signal.FieldTitle:
		return m.Title()
	case signal.FieldTitleKey:
		return m.TitleKey()
	case signal.FieldSummary:
		return m.Summary()
	case signal.FieldSensitivity:
		return m.Sensitivity()
	case signal.FieldConfidence:
		return m.Confidence()
	case signal.FieldFreshnessScore:
		return m.FreshnessScore()
	case signal.FieldCorroborationCount:
		return m.CorroborationCount()
	case signal.FieldLat:
		return m.Lat()
	case signal.FieldLng:
		return m.Lng()
	case signal.FieldGeoPrecision:
		return m.GeoPrecision()
	case signal.FieldLocationName:
		return m.LocationName()
	case signal.FieldSourceURL:
		return m.SourceURL()
	case signal.FieldExtractedAt:
		return m.ExtractedAt()
	case signal.FieldLastConfirmedActive:
		return m.LastConfirmedActive()
	case signal.FieldAudienceRoles:
		return m.AudienceRoles()
	case signal.FieldSourceDiversity:
		return m.SourceDiversity()
	case signal.FieldExternalRatio:
		return m.ExternalRatio()
	case signal.FieldCauseHeat:
		return m.CauseHeat()
	case signal.FieldMentionedActors:
		return m.MentionedActors()
	case signal.FieldVariant:
		return m.Variant()
	case signal.FieldEmbedding:
		return m.Embedding()
	case signal.FieldSeverity:
		return m.Severity()
	case signal.FieldExpiredAt:
		return m.ExpiredAt()
	case signal.FieldCreatedAt:
		return m.CreatedAt()
	case signal.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SignalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case signal.FieldNodeType:
		return m.OldNodeType(ctx)
	case signal.FieldRegion:
		return m.OldRegion(ctx)
	case signal.FieldTitle:
		return m.OldTitle(ctx)
	case signal.FieldTitleKey:
		return m.OldTitleKey(ctx)
	case signal.FieldSummary:
		return m.OldSummary(ctx)
	case signal.FieldSensitivity:
		return m.OldSensitivity(ctx)
	case signal.FieldConfidence:
		return m.OldConfidence(ctx)
	case signal.FieldFreshnessScore:
		return m.OldFreshnessScore(ctx)
	case signal.FieldCorroborationCount:
		return m.OldCorroborationCount(ctx)
	case signal.FieldLat:
		return m.OldLat(ctx)
	case signal.FieldLng:
		return m.OldLng(ctx)
	case signal.FieldGeoPrecision:
		return m.OldGeoPrecision(ctx)
	case signal.FieldLocationName:
		return m.OldLocationName(ctx)
	case signal.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case signal.FieldExtractedAt:
		return m.OldExtractedAt(ctx)
	case signal.FieldLastConfirmedActive:
		return m.OldLastConfirmedActive(ctx)
	case signal.FieldAudienceRoles:
		return m.OldAudienceRoles(ctx)
	case signal.FieldSourceDiversity:
		return m.OldSourceDiversity(ctx)
	case signal.FieldExternalRatio:
		return m.OldExternalRatio(ctx)
	case signal.FieldCauseHeat:
		return m.OldCauseHeat(ctx)
	case signal.FieldMentionedActors:
		return m.OldMentionedActors(ctx)
	case signal.FieldVariant:
		return m.OldVariant(ctx)
	case signal.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case signal.FieldSeverity:
		return m.OldSeverity(ctx)
	case signal.FieldExpiredAt:
		return m.OldExpiredAt(ctx)
	case signal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case signal.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Signal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SignalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case signal.FieldNodeType:
		v, ok := value.(signal.NodeType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeType(v)
		return nil
	case signal.FieldRegion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegion(v)
		return nil
	case signal.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case signal.FieldTitleKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitleKey(v)
		return nil
	case signal.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case signal.FieldSensitivity:
		v, ok := value.(signal.Sensitivity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSensitivity(v)
		return nil
	case signal.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case signal.FieldFreshnessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFreshnessScore(v)
		return nil
	case signal.FieldCorroborationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorroborationCount(v)
		return nil
	case signal.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLat(v)
		return nil
	case signal.FieldLng:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLng(v)
		return nil
	case signal.FieldGeoPrecision:
		v, ok := value.(signal.GeoPrecision)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeoPrecision(v)
		return nil
	case signal.FieldLocationName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationName(v)
		return nil
	case signal.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case signal.FieldExtractedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedAt(v)
		return nil
	case signal.FieldLastConfirmedActive:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastConfirmedActive(v)
		return nil
	case signal.FieldAudienceRoles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudienceRoles(v)
		return nil
	case signal.FieldSourceDiversity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceDiversity(v)
		return nil
	case signal.FieldExternalRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalRatio(v)
		return nil
	case signal.FieldCauseHeat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCauseHeat(v)
		return nil
	case signal.FieldMentionedActors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMentionedActors(v)
		return nil
	case signal.FieldVariant:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariant(v)
		return nil
	case signal.FieldEmbedding:
		v, ok := value.([]float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case signal.FieldSeverity:
		v, ok := value.(signal.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case signal.FieldExpiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiredAt(v)
		return nil
	case signal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case signal.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Signal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SignalMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, signal.FieldConfidence)
	}
	if m.addfreshness_score != nil {
		fields = append(fields, signal.FieldFreshnessScore)
	}
	if m.addcorroboration_count != nil {
		fields = append(fields, signal.FieldCorroborationCount)
	}
	if m.addlat != nil {
		fields = append(fields, signal.FieldLat)
	}
	if m.addlng != nil {
		fields = append(fields, signal.FieldLng)
	}
	if m.addsource_diversity != nil {
		fields = append(fields, signal.FieldSourceDiversity)
	}
	if m.addexternal_ratio != nil {
		fields = append(fields, signal.FieldExternalRatio)
	}
	if m.addcause_heat != nil {
		fields = append(fields, signal.FieldCauseHeat)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SignalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case signal.FieldConfidence:
		return m.AddedConfidence()
	case signal.FieldFreshnessScore:
		return m.AddedFreshnessScore()
	case signal.FieldCorroborationCount:
		return m.AddedCorroborationCount()
	case signal.FieldLat:
		return m.AddedLat()
	case signal.FieldLng:
		return m.AddedLng()
	case signal.FieldSourceDiversity:
		return m.AddedSourceDiversity()
	case signal.FieldExternalRatio:
		return m.AddedExternalRatio()
	case signal.FieldCauseHeat:
		return m.AddedCauseHeat()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SignalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case signal.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case signal.FieldFreshnessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFreshnessScore(v)
		return nil
	case signal.FieldCorroborationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorroborationCount(v)
		return nil
	case signal.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLat(v)
		return nil
	case signal.FieldLng:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLng(v)
		return nil
	case signal.FieldSourceDiversity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSourceDiversity(v)
		return nil
	case signal.FieldExternalRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExternalRatio(v)
		return nil
	case signal.FieldCauseHeat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCauseHeat(v)
		return nil
	}
	return fmt.Errorf("unknown Signal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SignalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(signal.FieldLat) {
		fields = append(fields, signal.FieldLat)
	}
	if m.FieldCleared(signal.FieldLng) {
		fields = append(fields, signal.FieldLng)
	}
	if m.FieldCleared(signal.FieldGeoPrecision) {
		fields = append(fields, signal.FieldGeoPrecision)
	}
	if m.FieldCleared(signal.FieldLocationName) {
		fields = append(fields, signal.FieldLocationName)
	}
	if m.FieldCleared(signal.FieldAudienceRoles) {
		fields = append(fields, signal.FieldAudienceRoles)
	}
	if m.FieldCleared(signal.FieldMentionedActors) {
		fields = append(fields, signal.FieldMentionedActors)
	}
	if m.FieldCleared(signal.FieldEmbedding) {
		fields = append(fields, signal.FieldEmbedding)
	}
	if m.FieldCleared(signal.FieldSeverity) {
		fields = append(fields, signal.FieldSeverity)
	}
	if m.FieldCleared(signal.FieldExpiredAt) {
		fields = append(fields, signal.FieldExpiredAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SignalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SignalMutation) ClearField(name string) error {
	switch name {
	case signal.FieldLat:
		m.ClearLat()
		return nil
	case signal.FieldLng:
		m.ClearLng()
		return nil
	case signal.FieldGeoPrecision:
		m.ClearGeoPrecision()
		return nil
	case signal.FieldLocationName:
		m.ClearLocationName()
		return nil
	case signal.FieldAudienceRoles:
		m.ClearAudienceRoles()
		return nil
	case signal.FieldMentionedActors:
		m.ClearMentionedActors()
		return nil
	case signal.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	case signal.FieldSeverity:
		m.ClearSeverity()
		return nil
	case signal.FieldExpiredAt:
		m.ClearExpiredAt()
		return nil
	}
	return fmt.Errorf("unknown Signal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SignalMutation) ResetField(name string) error {
	switch name {
	case signal.FieldNodeType:
		m.ResetNodeType()
		return nil
	case signal.FieldRegion:
		m.ResetRegion()
		return nil
	case signal.FieldTitle:
		m.ResetTitle()
		return nil
	case signal.FieldTitleKey:
		m.ResetTitleKey()
		return nil
	case signal.FieldSummary:
		m.ResetSummary()
		return nil
	case signal.FieldSensitivity:
		m.ResetSensitivity()
		return nil
	case signal.FieldConfidence:
		m.ResetConfidence()
		return nil
	case signal.FieldFreshnessScore:
		m.ResetFreshnessScore()
		return nil
	case signal.FieldCorroborationCount:
		m.ResetCorroborationCount()
		return nil
	case signal.FieldLat:
		m.ResetLat()
		return nil
	case signal.FieldLng:
		m.ResetLng()
		return nil
	case signal.FieldGeoPrecision:
		m.ResetGeoPrecision()
		return nil
	case signal.FieldLocationName:
		m.ResetLocationName()
		return nil
	case signal.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case signal.FieldExtractedAt:
		m.ResetExtractedAt()
		return nil
	case signal.FieldLastConfirmedActive:
		m.ResetLastConfirmedActive()
		return nil
	case signal.FieldAudienceRoles:
		m.ResetAudienceRoles()
		return nil
	case signal.FieldSourceDiversity:
		m.ResetSourceDiversity()
		return nil
	case signal.FieldExternalRatio:
		m.ResetExternalRatio()
		return nil
	case signal.FieldCauseHeat:
		m.ResetCauseHeat()
		return nil
	case signal.FieldMentionedActors:
		m.ResetMentionedActors()
		return nil
	case signal.FieldVariant:
		m.ResetVariant()
		return nil
	case signal.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case signal.FieldSeverity:
		m.ResetSeverity()
		return nil
	case signal.FieldExpiredAt:
		m.ResetExpiredAt()
		return nil
	case signal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case signal.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Signal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SignalMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.evidence != nil {
		edges = append(edges, signal.EdgeEvidence)
	}
	if m.mentions != nil {
		edges = append(edges, signal.EdgeMentions)
	}
	if m.authors != nil {
		edges = append(edges, signal.EdgeAuthors)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SignalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case signal.EdgeEvidence:
		ids := make([]ent.Value, 0, len(m.evidence))
		for id := range m.evidence {
			ids = append(ids, id)
		}
		return ids
	case signal.EdgeMentions:
		ids := make([]ent.Value, 0, len(m.mentions))
		for id := range m.mentions {
			ids = append(ids, id)
		}
		return ids
	case signal.EdgeAuthors:
		ids := make([]ent.Value, 0, len(m.authors))
		for id := range m.authors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SignalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedevidence != nil {
		edges = append(edges, signal.EdgeEvidence)
	}
	if m.removedmentions != nil {
		edges = append(edges, signal.EdgeMentions)
	}
	if m.removedauthors != nil {
		edges = append(edges, signal.EdgeAuthors)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SignalMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case signal.EdgeEvidence:
		ids := make([]ent.Value, 0, len(m.removedevidence))
		for id := range m.removedevidence {
			ids = append(ids, id)
		}
		return ids
	case signal.EdgeMentions:
		ids := make([]ent.Value, 0, len(m.removedmentions))
		for id := range m.removedmentions {
			ids = append(ids, id)
		}
		return ids
	case signal.EdgeAuthors:
		ids := make([]ent.Value, 0, len(m.removedauthors))
		for id := range m.removedauthors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SignalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedevidence {
		edges = append(edges, signal.EdgeEvidence)
	}
	if m.clearedmentions {
		edges = append(edges, signal.EdgeMentions)
	}
	if m.clearedauthors {
		edges = append(edges, signal.EdgeAuthors)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SignalMutation) EdgeCleared(name string) bool {
	switch name {
	case signal.EdgeEvidence:
		return m.clearedevidence
	case signal.EdgeMentions:
		return m.clearedmentions
	case signal.EdgeAuthors:
		return m.clearedauthors
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SignalMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Signal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SignalMutation) ResetEdge(name string) error {
	switch name {
	case signal.EdgeEvidence:
		m.ResetEvidence()
		return nil
	case signal.EdgeMentions:
		m.ResetMentions()
		return nil
	case signal.EdgeAuthors:
		m.ResetAuthors()
		return nil
	}
	return fmt.Errorf("unknown Signal edge %s", name)
}

// SourceMutation represents an operation that mutates the Source nodes in the graph.
type SourceMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	canonical_key             *string
	canonical_value           *string
	strategy                  *source.Strategy
	platform                  *string
	region                    *string
	weight                    *float64
	addweight                 *float64
	cadence_hours             *int
	addcadence_hours          *int
	consecutive_empty_runs    *int
	addconsecutive_empty_runs *int
	scrape_count              *int
	addscrape_count           *int
	signals_produced          *int
	addsignals_produced       *int
	signals_corroborated      *int
	addsignals_corroborated   *int
	tensions_produced         *int
	addtensions_produced      *int
	last_scraped              *time.Time
	last_produced_signal      *time.Time
	quality_penalty           *float64
	addquality_penalty        *float64
	discovery_method          *source.DiscoveryMethod
	active                    *bool
	lat                       *float64
	addlat                    *float64
	lng                       *float64
	addlng                    *float64
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*Source, error)
	predicates                []predicate.Source
}

var _ ent.Mutation = (*SourceMutation)(nil)

// sourceOption allows management of the mutation configuration using functional options.
type sourceOption func(*SourceMutation)

// newSourceMutation creates new mutation for the Source entity.
func newSourceMutation(c config, op Op, opts ...sourceOption) *SourceMutation {
	m := &SourceMutation{
		config:        c,
		op:            op,
		typ:           TypeSource,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceID sets the ID field of the mutation.
func withSourceID(id string) sourceOption {
	return func(m *SourceMutation) {
		var (
			err   error
			once  sync.Once
			value *Source
		)
		m.oldValue = func(ctx context.Context) (*Source, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Source.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSource sets the old Source of the mutation.
func withSource(node *Source) sourceOption {
	return func(m *SourceMutation) {
		m.oldValue = func(context.Context) (*Source, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Source entities.
func (m *SourceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Source.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCanonicalKey sets the "canonical_key" field.
func (m *SourceMutation) SetCanonicalKey(s string) {
	m.canonical_key = &s
}

// CanonicalKey returns the value of the "canonical_key" field in the mutation.
func (m *SourceMutation) CanonicalKey() (r string, exists bool) {
	v := m.canonical_key
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalKey returns the old "canonical_key" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldCanonicalKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalKey: %w", err)
	}
	return oldValue.CanonicalKey, nil
}

// ResetCanonicalKey resets all changes to the "canonical_key" field.
func (m *SourceMutation) ResetCanonicalKey() {
	m.canonical_key = nil
}

// SetCanonicalValue sets the "canonical_value" field.
func (m *SourceMutation) SetCanonicalValue(s string) {
	m.canonical_value = &s
}

// CanonicalValue returns the value of the "canonical_value" field in the mutation.
func (m *SourceMutation) CanonicalValue() (r string, exists bool) {
	v := m.canonical_value
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalValue returns the old "canonical_value" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldCanonicalValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalValue: %w", err)
	}
	return oldValue.CanonicalValue, nil
}

// ResetCanonicalValue resets all changes to the "canonical_value" field.
func (m *SourceMutation) ResetCanonicalValue() {
	m.canonical_value = nil
}

// SetStrategy sets the "strategy" field.
func (m *SourceMutation) SetStrategy(s source.Strategy) {
	m.strategy = &s
}

// Strategy returns the value of the "strategy" field in the mutation.
func (m *SourceMutation) Strategy() (r source.Strategy, exists bool) {
	v := m.strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategy returns the old "strategy" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldStrategy(ctx context.Context) (v source.Strategy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategy: %w", err)
	}
	return oldValue.Strategy, nil
}

// ResetStrategy resets all changes to the "strategy" field.
func (m *SourceMutation) ResetStrategy() {
	m.strategy = nil
}

// SetPlatform sets the "platform" field.
func (m *SourceMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *SourceMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ClearPlatform clears the value of the "platform" field.
func (m *SourceMutation) ClearPlatform() {
	m.platform = nil
	m.clearedFields[source.FieldPlatform] = struct{}{}
}

// PlatformCleared returns if the "platform" field was cleared in this mutation.
func (m *SourceMutation) PlatformCleared() bool {
	_, ok := m.clearedFields[source.FieldPlatform]
	return ok
}

// ResetPlatform resets all changes to the "platform" field.
func (m *SourceMutation) ResetPlatform() {
	m.platform = nil
	delete(m.clearedFields, source.FieldPlatform)
}

// SetRegion sets the "region" field.
func (m *SourceMutation) SetRegion(s string) {
	m.region = &s
}

// Region returns the value of the "region" field in the mutation.
func (m *SourceMutation) Region() (r string, exists bool) {
	v := m.region
	if v == nil {
		return
	}
	return *v, true
}

// OldRegion returns the old "region" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldRegion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegion: %w", err)
	}
	return oldValue.Region, nil
}

// ResetRegion resets all changes to the "region" field.
func (m *SourceMutation) ResetRegion() {
	m.region = nil
}

// SetWeight sets the "weight" field.
func (m *SourceMutation) SetWeight(f float64) {
	m.weight = &f
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *SourceMutation) Weight() (r float64, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds f to the "weight" field.
func (m *SourceMutation) AddWeight(f float64) {
	if m.addweight != nil {
		*m.addweight += f
	} else {
		m.addweight = &f
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *SourceMutation) AddedWeight() (r float64, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeight resets all changes to the "weight" field.
func (m *SourceMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
}

// SetCadenceHours sets the "cadence_hours" field.
func (m *SourceMutation) SetCadenceHours(i int) {
	m.cadence_hours = &i
	m.addcadence_hours = nil
}

// CadenceHours returns the value of the "cadence_hours" field in the mutation.
func (m *SourceMutation) CadenceHours() (r int, exists bool) {
	v := m.cadence_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldCadenceHours returns the old "cadence_hours" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldCadenceHours(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCadenceHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCadenceHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCadenceHours: %w", err)
	}
	return oldValue.CadenceHours, nil
}

// AddCadenceHours adds i to the "cadence_hours" field.
func (m *SourceMutation) AddCadenceHours(i int) {
	if m.addcadence_hours != nil {
		*m.addcadence_hours += i
	} else {
		m.addcadence_hours = &i
	}
}

// AddedCadenceHours returns the value that was added to the "cadence_hours" field in this mutation.
func (m *SourceMutation) AddedCadenceHours() (r int, exists bool) {
	v := m.addcadence_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetCadenceHours resets all changes to the "cadence_hours" field.
func (m *SourceMutation) ResetCadenceHours() {
	m.cadence_hours = nil
	m.addcadence_hours = nil
}

// SetConsecutiveEmptyRuns sets the "consecutive_empty_runs" field.
func (m *SourceMutation) SetConsecutiveEmptyRuns(i int) {
	m.consecutive_empty_runs = &i
	m.addconsecutive_empty_runs = nil
}

// ConsecutiveEmptyRuns returns the value of the "consecutive_empty_runs" field in the mutation.
func (m *SourceMutation) ConsecutiveEmptyRuns() (r int, exists bool) {
	v := m.consecutive_empty_runs
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveEmptyRuns returns the old "consecutive_empty_runs" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldConsecutiveEmptyRuns(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveEmptyRuns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveEmptyRuns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveEmptyRuns: %w", err)
	}
	return oldValue.ConsecutiveEmptyRuns, nil
}

// AddConsecutiveEmptyRuns adds i to the "consecutive_empty_runs" field.
func (m *SourceMutation) AddConsecutiveEmptyRuns(i int) {
	if m.addconsecutive_empty_runs != nil {
		*m.addconsecutive_empty_runs += i
	} else {
		m.addconsecutive_empty_runs = &i
	}
}

// AddedConsecutiveEmptyRuns returns the value that was added to the "consecutive_empty_runs" field in this mutation.
func (m *SourceMutation) AddedConsecutiveEmptyRuns() (r int, exists bool) {
	v := m.addconsecutive_empty_runs
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveEmptyRuns resets all changes to the "consecutive_empty_runs" field.
func (m *SourceMutation) ResetConsecutiveEmptyRuns() {
	m.consecutive_empty_runs = nil
	m.addconsecutive_empty_runs = nil
}

// SetScrapeCount sets the "scrape_count" field.
func (m *SourceMutation) SetScrapeCount(i int) {
	m.scrape_count = &i
	m.addscrape_count = nil
}

// ScrapeCount returns the value of the "scrape_count" field in the mutation.
func (m *SourceMutation) ScrapeCount() (r int, exists bool) {
	v := m.scrape_count
	if v == nil {
		return
	}
	return *v, true
}

// OldScrapeCount returns the old "scrape_count" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldScrapeCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScrapeCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScrapeCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScrapeCount: %w", err)
	}
	return oldValue.ScrapeCount, nil
}

// AddScrapeCount adds i to the "scrape_count" field.
func (m *SourceMutation) AddScrapeCount(i int) {
	if m.addscrape_count != nil {
		*m.addscrape_count += i
	} else {
		m.addscrape_count = &i
	}
}

// AddedScrapeCount returns the value that was added to the "scrape_count" field in this mutation.
func (m *SourceMutation) AddedScrapeCount() (r int, exists bool) {
	v := m.addscrape_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetScrapeCount resets all changes to the "scrape_count" field.
func (m *SourceMutation) ResetScrapeCount() {
	m.scrape_count = nil
	m.addscrape_count = nil
}

// SetSignalsProduced sets the "signals_produced" field.
func (m *SourceMutation) SetSignalsProduced(i int) {
	m.signals_produced = &i
	m.addsignals_produced = nil
}

// SignalsProduced returns the value of the "signals_produced" field in the mutation.
func (m *SourceMutation) SignalsProduced() (r int, exists bool) {
	v := m.signals_produced
	if v == nil {
		return
	}
	return *v, true
}

// OldSignalsProduced returns the old "signals_produced" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldSignalsProduced(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignalsProduced is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignalsProduced requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignalsProduced: %w", err)
	}
	return oldValue.SignalsProduced, nil
}

// AddSignalsProduced adds i to the "signals_produced" field.
func (m *SourceMutation) AddSignalsProduced(i int) {
	if m.addsignals_produced != nil {
		*m.addsignals_produced += i
	} else {
		m.addsignals_produced = &i
	}
}

// AddedSignalsProduced returns the value that was added to the "signals_produced" field in this mutation.
func (m *SourceMutation) AddedSignalsProduced() (r int, exists bool) {
	v := m.addsignals_produced
	if v == nil {
		return
	}
	return *v, true
}

// ResetSignalsProduced resets all changes to the "signals_produced" field.
func (m *SourceMutation) ResetSignalsProduced() {
	m.signals_produced = nil
	m.addsignals_produced = nil
}

// SetSignalsCorroborated sets the "signals_corroborated" field.
func (m *SourceMutation) SetSignalsCorroborated(i int) {
	m.signals_corroborated = &i
	m.addsignals_corroborated = nil
}

// SignalsCorroborated returns the value of the "signals_corroborated" field in the mutation.
func (m *SourceMutation) SignalsCorroborated() (r int, exists bool) {
	v := m.signals_corroborated
	if v == nil {
		return
	}
	return *v, true
}

// OldSignalsCorroborated returns the old "signals_corroborated" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldSignalsCorroborated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignalsCorroborated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignalsCorroborated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignalsCorroborated: %w", err)
	}
	return oldValue.SignalsCorroborated, nil
}

// AddSignalsCorroborated adds i to the "signals_corroborated" field.
func (m *SourceMutation) AddSignalsCorroborated(i int) {
	if m.addsignals_corroborated != nil {
		*m.addsignals_corroborated += i
	} else {
		m.addsignals_corroborated = &i
	}
}

// AddedSignalsCorroborated returns the value that was added to the "signals_corroborated" field in this mutation.
func (m *SourceMutation) AddedSignalsCorroborated() (r int, exists bool) {
	v := m.addsignals_corroborated
	if v == nil {
		return
	}
	return *v, true
}

// ResetSignalsCorroborated resets all changes to the "signals_corroborated" field.
func (m *SourceMutation) ResetSignalsCorroborated() {
	m.signals_corroborated = nil
	m.addsignals_corroborated = nil
}

// SetTensionsProduced sets the "tensions_produced" field.
func (m *SourceMutation) SetTensionsProduced(i int) {
	m.tensions_produced = &i
	m.addtensions_produced = nil
}

// TensionsProduced returns the value of the "tensions_produced" field in the mutation.
func (m *SourceMutation) TensionsProduced() (r int, exists bool) {
	v := m.tensions_produced
	if v == nil {
		return
	}
	return *v, true
}

// OldTensionsProduced returns the old "tensions_produced" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldTensionsProduced(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTensionsProduced is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTensionsProduced requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTensionsProduced: %w", err)
	}
	return oldValue.TensionsProduced, nil
}

// AddTensionsProduced adds i to the "tensions_produced" field.
func (m *SourceMutation) AddTensionsProduced(i int) {
	if m.addtensions_produced != nil {
		*m.addtensions_produced += i
	} else {
		m.addtensions_produced = &i
	}
}

// AddedTensionsProduced returns the value that was added to the "tensions_produced" field in this mutation.
func (m *SourceMutation) AddedTensionsProduced() (r int, exists bool) {
	v := m.addtensions_produced
	if v == nil {
		return
	}
	return *v, true
}

// ResetTensionsProduced resets all changes to the "tensions_produced" field.
func (m *SourceMutation) ResetTensionsProduced() {
	m.tensions_produced = nil
	m.addtensions_produced = nil
}

// SetLastScraped sets the "last_scraped" field.
func (m *SourceMutation) SetLastScraped(t time.Time) {
	m.last_scraped = &t
}

// LastScraped returns the value of the "last_scraped" field in the mutation.
func (m *SourceMutation) LastScraped() (r time.Time, exists bool) {
	v := m.last_scraped
	if v == nil {
		return
	}
	return *v, true
}

// OldLastScraped returns the old "last_scraped" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldLastScraped(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastScraped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastScraped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastScraped: %w", err)
	}
	return oldValue.LastScraped, nil
}

// ClearLastScraped clears the value of the "last_scraped" field.
func (m *SourceMutation) ClearLastScraped() {
	m.last_scraped = nil
	m.clearedFields[source.FieldLastScraped] = struct{}{}
}

// LastScrapedCleared returns if the "last_scraped" field was cleared in this mutation.
func (m *SourceMutation) LastScrapedCleared() bool {
	_, ok := m.clearedFields[source.FieldLastScraped]
	return ok
}

// ResetLastScraped resets all changes to the "last_scraped" field.
func (m *SourceMutation) ResetLastScraped() {
	m.last_scraped = nil
	delete(m.clearedFields, source.FieldLastScraped)
}

// SetLastProducedSignal sets the "last_produced_signal" field.
func (m *SourceMutation) SetLastProducedSignal(t time.Time) {
	m.last_produced_signal = &t
}

// LastProducedSignal returns the value of the "last_produced_signal" field in the mutation.
func (m *SourceMutation) LastProducedSignal() (r time.Time, exists bool) {
	v := m.last_produced_signal
	if v == nil {
		return
	}
	return *v, true
}

// OldLastProducedSignal returns the old "last_produced_signal" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldLastProducedSignal(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastProducedSignal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastProducedSignal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastProducedSignal: %w", err)
	}
	return oldValue.LastProducedSignal, nil
}

// ClearLastProducedSignal clears the value of the "last_produced_signal" field.
func (m *SourceMutation) ClearLastProducedSignal() {
	m.last_produced_signal = nil
	m.clearedFields[source.FieldLastProducedSignal] = struct{}{}
}

// LastProducedSignalCleared returns if the "last_produced_signal" field was cleared in this mutation.
func (m *SourceMutation) LastProducedSignalCleared() bool {
	_, ok := m.clearedFields[source.FieldLastProducedSignal]
	return ok
}

// ResetLastProducedSignal resets all changes to the "last_produced_signal" field.
func (m *SourceMutation) ResetLastProducedSignal() {
	m.last_produced_signal = nil
	delete(m.clearedFields, source.FieldLastProducedSignal)
}

// SetQualityPenalty sets the "quality_penalty" field.
func (m *SourceMutation) SetQualityPenalty(f float64) {
	m.quality_penalty = &f
	m.addquality_penalty = nil
}

// QualityPenalty returns the value of the "quality_penalty" field in the mutation.
func (m *SourceMutation) QualityPenalty() (r float64, exists bool) {
	v := m.quality_penalty
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityPenalty returns the old "quality_penalty" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldQualityPenalty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityPenalty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityPenalty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityPenalty: %w", err)
	}
	return oldValue.QualityPenalty, nil
}

// AddQualityPenalty adds f to the "quality_penalty" field.
func (m *SourceMutation) AddQualityPenalty(f float64) {
	if m.addquality_penalty != nil {
		*m.addquality_penalty += f
	} else {
		m.addquality_penalty = &f
	}
}

// AddedQualityPenalty returns the value that was added to the "quality_penalty" field in this mutation.
func (m *SourceMutation) AddedQualityPenalty() (r float64, exists bool) {
	v := m.addquality_penalty
	if v == nil {
		return
	}
	return *v, true
}

// ResetQualityPenalty resets all changes to the "quality_penalty" field.
func (m *SourceMutation) ResetQualityPenalty() {
	m.quality_penalty = nil
	m.addquality_penalty = nil
}

// SetDiscoveryMethod sets the "discovery_method" field.
func (m *SourceMutation) SetDiscoveryMethod(sm source.DiscoveryMethod) {
	m.discovery_method = &sm
}

// DiscoveryMethod returns the value of the "discovery_method" field in the mutation.
func (m *SourceMutation) DiscoveryMethod() (r source.DiscoveryMethod, exists bool) {
	v := m.discovery_method
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscoveryMethod returns the old "discovery_method" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldDiscoveryMethod(ctx context.Context) (v source.DiscoveryMethod, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscoveryMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscoveryMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscoveryMethod: %w", err)
	}
	return oldValue.DiscoveryMethod, nil
}

// ResetDiscoveryMethod resets all changes to the "discovery_method" field.
func (m *SourceMutation) ResetDiscoveryMethod() {
	m.discovery_method = nil
}

// SetActive sets the "active" field.
func (m *SourceMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *SourceMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *SourceMutation) ResetActive() {
	m.active = nil
}

// SetLat sets the "lat" field.
func (m *SourceMutation) SetLat(f float64) {
	m.lat = &f
	m.addlat = nil
}

// Lat returns the value of the "lat" field in the mutation.
func (m *SourceMutation) Lat() (r float64, exists bool) {
	v := m.lat
	if v == nil {
		return
	}
	return *v, true
}

// OldLat returns the old "lat" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldLat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLat: %w", err)
	}
	return oldValue.Lat, nil
}

// AddLat adds f to the "lat" field.
func (m *SourceMutation) AddLat(f float64) {
	if m.addlat != nil {
		*m.addlat += f
	} else {
		m.addlat = &f
	}
}

// AddedLat returns the value that was added to the "lat" field in this mutation.
func (m *SourceMutation) AddedLat() (r float64, exists bool) {
	v := m.addlat
	if v == nil {
		return
	}
	return *v, true
}

// ClearLat clears the value of the "lat" field.
func (m *SourceMutation) ClearLat() {
	m.lat = nil
	m.addlat = nil
	m.clearedFields[source.FieldLat] = struct{}{}
}

// LatCleared returns if the "lat" field was cleared in this mutation.
func (m *SourceMutation) LatCleared() bool {
	_, ok := m.clearedFields[source.FieldLat]
	return ok
}

// ResetLat resets all changes to the "lat" field.
func (m *SourceMutation) ResetLat() {
	m.lat = nil
	m.addlat = nil
	delete(m.clearedFields, source.FieldLat)
}

// SetLng sets the "lng" field.
func (m *SourceMutation) SetLng(f float64) {
	m.lng = &f
	m.addlng = nil
}

// Lng returns the value of the "lng" field in the mutation.
func (m *SourceMutation) Lng() (r float64, exists bool) {
	v := m.lng
	if v == nil {
		return
	}
	return *v, true
}

// OldLng returns the old "lng" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldLng(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLng is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLng requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLng: %w", err)
	}
	return oldValue.Lng, nil
}

// AddLng adds f to the "lng" field.
func (m *SourceMutation) AddLng(f float64) {
	if m.addlng != nil {
		*m.addlng += f
	} else {
		m.addlng = &f
	}
}

// AddedLng returns the value that was added to the "lng" field in this mutation.
func (m *SourceMutation) AddedLng() (r float64, exists bool) {
	v := m.addlng
	if v == nil {
		return
	}
	return *v, true
}

// ClearLng clears the value of the "lng" field.
func (m *SourceMutation) ClearLng() {
	m.lng = nil
	m.addlng = nil
	m.clearedFields[source.FieldLng] = struct{}{}
}

// LngCleared returns if the "lng" field was cleared in this mutation.
func (m *SourceMutation) LngCleared() bool {
	_, ok := m.clearedFields[source.FieldLng]
	return ok
}

// ResetLng resets all changes to the "lng" field.
func (m *SourceMutation) ResetLng() {
	m.lng = nil
	m.addlng = nil
	delete(m.clearedFields, source.FieldLng)
}

// SetCreatedAt sets the "created_at" field.
func (m *SourceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SourceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SourceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SourceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SourceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SourceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SourceMutation builder.
func (m *SourceMutation) Where(ps ...predicate.Source) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Source, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Source).
func (m *SourceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.canonical_key != nil {
		fields = append(fields, source.FieldCanonicalKey)
	}
	if m.canonical_value != nil {
		fields = append(fields, source.FieldCanonicalValue)
	}
	if m.strategy != nil {
		fields = append(fields, source.FieldStrategy)
	}
	if m.platform != nil {
		fields = append(fields, source.FieldPlatform)
	}
	if m.region != nil {
		fields = append(fields, source.FieldRegion)
	}
	if m.weight != nil {
		fields = append(fields, source.FieldWeight)
	}
	if m.cadence_hours != nil {
		fields = append(fields, source.FieldCadenceHours)
	}
	if m.consecutive_empty_runs != nil {
		fields = append(fields, source.FieldConsecutiveEmptyRuns)
	}
	if m.scrape_count != nil {
		fields = append(fields, source.FieldScrapeCount)
	}
	if m.signals_produced != nil {
		fields = append(fields, source.FieldSignalsProduced)
	}
	if m.signals_corroborated != nil {
		fields = append(fields, source.FieldSignalsCorroborated)
	}
	if m.tensions_produced != nil {
		fields = append(fields, source.FieldTensionsProduced)
	}
	if m.last_scraped != nil {
		fields = append(fields, source.FieldLastScraped)
	}
	if m.last_produced_signal != nil {
		fields = append(fields, source.FieldLastProducedSignal)
	}
	if m.quality_penalty != nil {
		fields = append(fields, source.FieldQualityPenalty)
	}
	if m.discovery_method != nil {
		fields = append(fields, source.FieldDiscoveryMethod)
	}
	if m.active != nil {
		fields = append(fields, source.FieldActive)
	}
	if m.lat != nil {
		fields = append(fields, source.FieldLat)
	}
	if m.lng != nil {
		fields = append(fields, source.FieldLng)
	}
	if m.created_at != nil {
		fields = append(fields, source.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, source.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case source.FieldCanonicalKey:
		return m.CanonicalKey()
	case source.FieldCanonicalValue:
		return m.CanonicalValue()
	case source.FieldStrategy:
		return m.Strategy()
	case source.FieldPlatform:
		return m.Platform()
	case source.FieldRegion:
		return m.Region()
	case source.FieldWeight:
		return m.Weight()
	case source.FieldCadenceHours:
		return m.CadenceHours()
	case source.FieldConsecutiveEmptyRuns:
		return m.ConsecutiveEmptyRuns()
	case source.FieldScrapeCount:
		return m.ScrapeCount()
	case source.FieldSignalsProduced:
		return m.SignalsProduced()
	case source.FieldSignalsCorroborated:
		return m.SignalsCorroborated()
	case source.FieldTensionsProduced:
		return m.TensionsProduced()
	case source.FieldLastScraped:
		return m.LastScraped()
	case source.FieldLastProducedSignal:
		return m.LastProducedSignal()
	case source.FieldQualityPenalty:
		return m.QualityPenalty()
	case source.FieldDiscoveryMethod:
		return m.DiscoveryMethod()
	case source.FieldActive:
		return m.Active()
	case source.FieldLat:
		return m.Lat()
	case source.FieldLng:
		return m.Lng()
	case source.FieldCreatedAt:
		return m.CreatedAt()
	case source.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case source.FieldCanonicalKey:
		return m.OldCanonicalKey(ctx)
	case source.FieldCanonicalValue:
		return m.OldCanonicalValue(ctx)
	case source.FieldStrategy:
		return m.OldStrategy(ctx)
	case source.FieldPlatform:
		return m.OldPlatform(ctx)
	case source.FieldRegion:
		return m.OldRegion(ctx)
	case source.FieldWeight:
		return m.OldWeight(ctx)
	case source.FieldCadenceHours:
		return m.OldCadenceHours(ctx)
	case source.FieldConsecutiveEmptyRuns:
		return m.OldConsecutiveEmptyRuns(ctx)
	case source.FieldScrapeCount:
		return m.OldScrapeCount(ctx)
	case source.FieldSignalsProduced:
		return m.OldSignalsProduced(ctx)
	case source.FieldSignalsCorroborated:
		return m.OldSignalsCorroborated(ctx)
	case source.FieldTensionsProduced:
		return m.OldTensionsProduced(ctx)
	case source.FieldLastScraped:
		return m.OldLastScraped(ctx)
	case source.FieldLastProducedSignal:
		return m.OldLastProducedSignal(ctx)
	case source.FieldQualityPenalty:
		return m.OldQualityPenalty(ctx)
	case source.FieldDiscoveryMethod:
		return m.OldDiscoveryMethod(ctx)
	case source.FieldActive:
		return m.OldActive(ctx)
	case source.FieldLat:
		return m.OldLat(ctx)
	case source.FieldLng:
		return m.OldLng(ctx)
	case source.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case source.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Source field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case source.FieldCanonicalKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalKey(v)
		return nil
	case source.FieldCanonicalValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalValue(v)
		return nil
	case source.FieldStrategy:
		v, ok := value.(source.Strategy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategy(v)
		return nil
	case source.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case source.FieldRegion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegion(v)
		return nil
	case source.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	case source.FieldCadenceHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCadenceHours(v)
		return nil
	case source.FieldConsecutiveEmptyRuns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveEmptyRuns(v)
		return nil
	case source.FieldScrapeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScrapeCount(v)
		return nil
	case source.FieldSignalsProduced:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignalsProduced(v)
		return nil
	case source.FieldSignalsCorroborated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignalsCorroborated(v)
		return nil
	case source.FieldTensionsProduced:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTensionsProduced(v)
		return nil
	case source.FieldLastScraped:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastScraped(v)
		return nil
	case source.FieldLastProducedSignal:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastProducedSignal(v)
		return nil
	case source.FieldQualityPenalty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityPenalty(v)
		return nil
	case source.FieldDiscoveryMethod:
		v, ok := value.(source.DiscoveryMethod)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscoveryMethod(v)
		return nil
	case source.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case source.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLat(v)
		return nil
	case source.FieldLng:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLng(v)
		return nil
	case source.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case source.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Source field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceMutation) AddedFields() []string {
	var fields []string
	if m.addweight != nil {
		fields = append(fields, source.FieldWeight)
	}
	if m.addcadence_hours != nil {
		fields = append(fields, source.FieldCadenceHours)
	}
	if m.addconsecutive_empty_runs != nil {
		fields = append(fields, source.FieldConsecutiveEmptyRuns)
	}
	if m.addscrape_count != nil {
		fields = append(fields, source.FieldScrapeCount)
	}
	if m.addsignals_produced != nil {
		fields = append(fields, source.FieldSignalsProduced)
	}
	if m.addsignals_corroborated != nil {
		fields = append(fields, source.FieldSignalsCorroborated)
	}
	if m.addtensions_produced != nil {
		fields = append(fields, source.FieldTensionsProduced)
	}
	if m.addquality_penalty != nil {
		fields = append(fields, source.FieldQualityPenalty)
	}
	if m.addlat != nil {
		fields = append(fields, source.FieldLat)
	}
	if m.addlng != nil {
		fields = append(fields, source.FieldLng)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case source.FieldWeight:
		return m.AddedWeight()
	case source.FieldCadenceHours:
		return m.AddedCadenceHours()
	case source.FieldConsecutiveEmptyRuns:
		return m.AddedConsecutiveEmptyRuns()
	case source.FieldScrapeCount:
		return m.AddedScrapeCount()
	case source.FieldSignalsProduced:
		return m.AddedSignalsProduced()
	case source.FieldSignalsCorroborated:
		return m.AddedSignalsCorroborated()
	case source.FieldTensionsProduced:
		return m.AddedTensionsProduced()
	case source.FieldQualityPenalty:
		return m.AddedQualityPenalty()
	case source.FieldLat:
		return m.AddedLat()
	case source.FieldLng:
		return m.AddedLng()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case source.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	case source.FieldCadenceHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCadenceHours(v)
		return nil
	case source.FieldConsecutiveEmptyRuns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveEmptyRuns(v)
		return nil
	case source.FieldScrapeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScrapeCount(v)
		return nil
	case source.FieldSignalsProduced:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSignalsProduced(v)
		return nil
	case source.FieldSignalsCorroborated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSignalsCorroborated(v)
		return nil
	case source.FieldTensionsProduced:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTensionsProduced(v)
		return nil
	case source.FieldQualityPenalty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityPenalty(v)
		return nil
	case source.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLat(v)
		return nil
	case source.FieldLng:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLng(v)
		return nil
	}
	return fmt.Errorf("unknown Source numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(source.FieldPlatform) {
		fields = append(fields, source.FieldPlatform)
	}
	if m.FieldCleared(source.FieldLastScraped) {
		fields = append(fields, source.FieldLastScraped)
	}
	if m.FieldCleared(source.FieldLastProducedSignal) {
		fields = append(fields, source.FieldLastProducedSignal)
	}
	if m.FieldCleared(source.FieldLat) {
		fields = append(fields, source.FieldLat)
	}
	if m.FieldCleared(source.FieldLng) {
		fields = append(fields, source.FieldLng)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceMutation) ClearField(name string) error {
	switch name {
	case source.FieldPlatform:
		m.ClearPlatform()
		return nil
	case source.FieldLastScraped:
		m.ClearLastScraped()
		return nil
	case source.FieldLastProducedSignal:
		m.ClearLastProducedSignal()
		return nil
	case source.FieldLat:
		m.ClearLat()
		return nil
	case source.FieldLng:
		m.ClearLng()
		return nil
	}
	return fmt.Errorf("unknown Source nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceMutation) ResetField(name string) error {
	switch name {
	case source.FieldCanonicalKey:
		m.ResetCanonicalKey()
		return nil
	case source.FieldCanonicalValue:
		m.ResetCanonicalValue()
		return nil
	case source.FieldStrategy:
		m.ResetStrategy()
		return nil
	case source.FieldPlatform:
		m.ResetPlatform()
		return nil
	case source.FieldRegion:
		m.ResetRegion()
		return nil
	case source.FieldWeight:
		m.ResetWeight()
		return nil
	case source.FieldCadenceHours:
		m.ResetCadenceHours()
		return nil
	case source.FieldConsecutiveEmptyRuns:
		m.ResetConsecutiveEmptyRuns()
		return nil
	case source.FieldScrapeCount:
		m.ResetScrapeCount()
		return nil
	case source.FieldSignalsProduced:
		m.ResetSignalsProduced()
		return nil
	case source.FieldSignalsCorroborated:
		m.ResetSignalsCorroborated()
		return nil
	case source.FieldTensionsProduced:
		m.ResetTensionsProduced()
		return nil
	case source.FieldLastScraped:
		m.ResetLastScraped()
		return nil
	case source.FieldLastProducedSignal:
		m.ResetLastProducedSignal()
		return nil
	case source.FieldQualityPenalty:
		m.ResetQualityPenalty()
		return nil
	case source.FieldDiscoveryMethod:
		m.ResetDiscoveryMethod()
		return nil
	case source.FieldActive:
		m.ResetActive()
		return nil
	case source.FieldLat:
		m.ResetLat()
		return nil
	case source.FieldLng:
		m.ResetLng()
		return nil
	case source.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case source.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Source field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Source unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Source edge %s", name)
}

// StoredEventMutation represents an operation that mutates the StoredEvent nodes in the graph.
type StoredEventMutation struct {
	config
	op               Op
	typ              string
	id               *int64
	ts               *time.Time
	event_type       *string
	parent_seq       *int64
	addparent_seq    *int64
	caused_by_seq    *int64
	addcaused_by_seq *int64
	run_id           *string
	actor            *string
	payload          *[]byte
	schema_v         *int
	addschema_v      *int
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*StoredEvent, error)
	predicates       []predicate.StoredEvent
}

var _ ent.Mutation = (*StoredEventMutation)(nil)

// storedeventOption allows management of the mutation configuration using functional options.
type storedeventOption func(*StoredEventMutation)

// newStoredEventMutation creates new mutation for the StoredEvent entity.
func newStoredEventMutation(c config, op Op, opts ...storedeventOption) *StoredEventMutation {
	m := &StoredEventMutation{
		config:        c,
		op:            op,
		typ:           TypeStoredEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStoredEventID sets the ID field of the mutation.
func withStoredEventID(id int64) storedeventOption {
	return func(m *StoredEventMutation) {
		var (
			err   error
			once  sync.Once
			value *StoredEvent
		)
		m.oldValue = func(ctx context.Context) (*StoredEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StoredEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStoredEvent sets the old StoredEvent of the mutation.
func withStoredEvent(node *StoredEvent) storedeventOption {
	return func(m *StoredEventMutation) {
		m.oldValue = func(context.Context) (*StoredEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StoredEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StoredEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StoredEvent entities.
func (m *StoredEventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StoredEventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StoredEventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StoredEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTs sets the "ts" field.
func (m *StoredEventMutation) SetTs(t time.Time) {
	m.ts = &t
}

// Ts returns the value of the "ts" field in the mutation.
func (m *StoredEventMutation) Ts() (r time.Time, exists bool) {
	v := m.ts
	if v == nil {
		return
	}
	return *v, true
}

// OldTs returns the old "ts" field's value of the StoredEvent entity.
// If the StoredEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoredEventMutation) OldTs(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTs: %w", err)
	}
	return oldValue.Ts, nil
}

// ResetTs resets all changes to the "ts" field.
func (m *StoredEventMutation) ResetTs() {
	m.ts = nil
}

// SetEventType sets the "event_type" field.
func (m *StoredEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *StoredEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the StoredEvent entity.
// If the StoredEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoredEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *StoredEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetParentSeq sets the "parent_seq" field.
func (m *StoredEventMutation) SetParentSeq(i int64) {
	m.parent_seq = &i
	m.addparent_seq = nil
}

// ParentSeq returns the value of the "parent_seq" field in the mutation.
func (m *StoredEventMutation) ParentSeq() (r int64, exists bool) {
	v := m.parent_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldParentSeq returns the old "parent_seq" field's value of the StoredEvent entity.
// If the StoredEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoredEventMutation) OldParentSeq(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentSeq: %w", err)
	}
	return oldValue.ParentSeq, nil
}

// AddParentSeq adds i to the "parent_seq" field.
func (m *StoredEventMutation) AddParentSeq(i int64) {
	if m.addparent_seq != nil {
		*m.addparent_seq += i
	} else {
		m.addparent_seq = &i
	}
}

// AddedParentSeq returns the value that was added to the "parent_seq" field in this mutation.
func (m *StoredEventMutation) AddedParentSeq() (r int64, exists bool) {
	v := m.addparent_seq
	if v == nil {
		return
	}
	return *v, true
}

// ClearParentSeq clears the value of the "parent_seq" field.
func (m *StoredEventMutation) ClearParentSeq() {
	m.parent_seq = nil
	m.addparent_seq = nil
	m.clearedFields[storedevent.FieldParentSeq] = struct{}{}
}

// ParentSeqCleared returns if the "parent_seq" field was cleared in this mutation.
func (m *StoredEventMutation) ParentSeqCleared() bool {
	_, ok := m.clearedFields[storedevent.FieldParentSeq]
	return ok
}

// ResetParentSeq resets all changes to the "parent_seq" field.
func (m *StoredEventMutation) ResetParentSeq() {
	m.parent_seq = nil
	m.addparent_seq = nil
	delete(m.clearedFields, storedevent.FieldParentSeq)
}

// SetCausedBySeq sets the "caused_by_seq" field.
func (m *StoredEventMutation) SetCausedBySeq(i int64) {
	m.caused_by_seq = &i
	m.addcaused_by_seq = nil
}

// CausedBySeq returns the value of the "caused_by_seq" field in the mutation.
func (m *StoredEventMutation) CausedBySeq() (r int64, exists bool) {
	v := m.caused_by_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldCausedBySeq returns the old "caused_by_seq" field's value of the StoredEvent entity.
// If the StoredEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoredEventMutation) OldCausedBySeq(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCausedBySeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCausedBySeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCausedBySeq: %w", err)
	}
	return oldValue.CausedBySeq, nil
}

// AddCausedBySeq adds i to the "caused_by_seq" field.
func (m *StoredEventMutation) AddCausedBySeq(i int64) {
	if m.addcaused_by_seq != nil {
		*m.addcaused_by_seq += i
	} else {
		m.addcaused_by_seq = &i
	}
}

// AddedCausedBySeq returns the value that was added to the "caused_by_seq" field in this mutation.
func (m *StoredEventMutation) AddedCausedBySeq() (r int64, exists bool) {
	v := m.addcaused_by_seq
	if v == nil {
		return
	}
	return *v, true
}

// ClearCausedBySeq clears the value of the "caused_by_seq" field.
func (m *StoredEventMutation) ClearCausedBySeq() {
	m.caused_by_seq = nil
	m.addcaused_by_seq = nil
	m.clearedFields[storedevent.FieldCausedBySeq] = struct{}{}
}

// CausedBySeqCleared returns if the "caused_by_seq" field was cleared in this mutation.
func (m *StoredEventMutation) CausedBySeqCleared() bool {
	_, ok := m.clearedFields[storedevent.FieldCausedBySeq]
	return ok
}

// ResetCausedBySeq resets all changes to the "caused_by_seq" field.
func (m *StoredEventMutation) ResetCausedBySeq() {
	m.caused_by_seq = nil
	m.addcaused_by_seq = nil
	delete(m.clearedFields, storedevent.FieldCausedBySeq)
}

// SetRunID sets the "run_id" field.
func (m *StoredEventMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *StoredEventMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the StoredEvent entity.
// If the StoredEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoredEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *StoredEventMutation) ResetRunID() {
	m.run_id = nil
}

// SetActor sets the "actor" field.
func (m *StoredEventMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *StoredEventMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the StoredEvent entity.
// If the StoredEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoredEventMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ClearActor clears the value of the "actor" field.
func (m *StoredEventMutation) ClearActor() {
	m.actor = nil
	m.clearedFields[storedevent.FieldActor] = struct{}{}
}

// ActorCleared returns if the "actor" field was cleared in this mutation.
func (m *StoredEventMutation) ActorCleared() bool {
	_, ok := m.clearedFields[storedevent.FieldActor]
	return ok
}

// ResetActor resets all changes to the "actor" field.
func (m *StoredEventMutation) ResetActor() {
	m.actor = nil
	delete(m.clearedFields, storedevent.FieldActor)
}

// SetPayload sets the "payload" field.
func (m *StoredEventMutation) SetPayload(b []byte) {
	m.payload = &b
}

// Payload returns the value of the "payload" field in the mutation.
func (m *StoredEventMutation) Payload() (r []byte, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the StoredEvent entity.
// If the StoredEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoredEventMutation) OldPayload(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *StoredEventMutation) ResetPayload() {
	m.payload = nil
}

// SetSchemaV sets the "schema_v" field.
func (m *StoredEventMutation) SetSchemaV(i int) {
	m.schema_v = &i
	m.addschema_v = nil
}

// SchemaV returns the value of the "schema_v" field in the mutation.
func (m *StoredEventMutation) SchemaV() (r int, exists bool) {
	v := m.schema_v
	if v == nil {
		return
	}
	return *v, true
}

// OldSchemaV returns the old "schema_v" field's value of the StoredEvent entity.
// If the StoredEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoredEventMutation) OldSchemaV(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchemaV is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchemaV requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchemaV: %w", err)
	}
	return oldValue.SchemaV, nil
}

// AddSchemaV adds i to the "schema_v" field.
func (m *StoredEventMutation) AddSchemaV(i int) {
	if m.addschema_v != nil {
		*m.addschema_v += i
	} else {
		m.addschema_v = &i
	}
}

// AddedSchemaV returns the value that was added to the "schema_v" field in this mutation.
func (m *StoredEventMutation) AddedSchemaV() (r int, exists bool) {
	v := m.addschema_v
	if v == nil {
		return
	}
	return *v, true
}

// ResetSchemaV resets all changes to the "schema_v" field.
func (m *StoredEventMutation) ResetSchemaV() {
	m.schema_v = nil
	m.addschema_v = nil
}

// Where appends a list predicates to the StoredEventMutation builder.
func (m *StoredEventMutation) Where(ps ...predicate.StoredEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StoredEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StoredEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StoredEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StoredEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StoredEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StoredEvent).
func (m *StoredEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StoredEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.ts != nil {
		fields = append(fields, storedevent.FieldTs)
	}
	if m.event_type != nil {
		fields = append(fields, storedevent.FieldEventType)
	}
	if m.parent_seq != nil {
		fields = append(fields, storedevent.FieldParentSeq)
	}
	if m.caused_by_seq != nil {
		fields = append(fields, storedevent.FieldCausedBySeq)
	}
	if m.run_id != nil {
		fields = append(fields, storedevent.FieldRunID)
	}
	if m.actor != nil {
		fields = append(fields, storedevent.FieldActor)
	}
	if m.payload != nil {
		fields = append(fields, storedevent.FieldPayload)
	}
	if m.schema_v != nil {
		fields = append(fields, storedevent.FieldSchemaV)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StoredEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case storedevent.FieldTs:
		return m.Ts()
	case storedevent.FieldEventType:
		return m.EventType()
	case storedevent.FieldParentSeq:
		return m.ParentSeq()
	case storedevent.FieldCausedBySeq:
		return m.CausedBySeq()
	case storedevent.FieldRunID:
		return m.RunID()
	case storedevent.FieldActor:
		return m.Actor()
	case storedevent.FieldPayload:
		return m.Payload()
	case storedevent.FieldSchemaV:
		return m.SchemaV()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StoredEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case storedevent.FieldTs:
		return m.OldTs(ctx)
	case storedevent.FieldEventType:
		return m.OldEventType(ctx)
	case storedevent.FieldParentSeq:
		return m.OldParentSeq(ctx)
	case storedevent.FieldCausedBySeq:
		return m.OldCausedBySeq(ctx)
	case storedevent.FieldRunID:
		return m.OldRunID(ctx)
	case storedevent.FieldActor:
		return m.OldActor(ctx)
	case storedevent.FieldPayload:
		return m.OldPayload(ctx)
	case storedevent.FieldSchemaV:
		return m.OldSchemaV(ctx)
	}
	return nil, fmt.Errorf("unknown StoredEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StoredEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case storedevent.FieldTs:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTs(v)
		return nil
	case storedevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case storedevent.FieldParentSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentSeq(v)
		return nil
	case storedevent.FieldCausedBySeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCausedBySeq(v)
		return nil
	case storedevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case storedevent.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case storedevent.FieldPayload:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case storedevent.FieldSchemaV:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchemaV(v)
		return nil
	}
	return fmt.Errorf("unknown StoredEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StoredEventMutation) AddedFields() []string {
	var fields []string
	if m.addparent_seq != nil {
		fields = append(fields, storedevent.FieldParentSeq)
	}
	if m.addcaused_by_seq != nil {
		fields = append(fields, storedevent.FieldCausedBySeq)
	}
	if m.addschema_v != nil {
		fields = append(fields, storedevent.FieldSchemaV)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StoredEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case storedevent.FieldParentSeq:
		return m.AddedParentSeq()
	case storedevent.FieldCausedBySeq:
		return m.AddedCausedBySeq()
	case storedevent.FieldSchemaV:
		return m.AddedSchemaV()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StoredEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case storedevent.FieldParentSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParentSeq(v)
		return nil
	case storedevent.FieldCausedBySeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCausedBySeq(v)
		return nil
	case storedevent.FieldSchemaV:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSchemaV(v)
		return nil
	}
	return fmt.Errorf("unknown StoredEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StoredEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(storedevent.FieldParentSeq) {
		fields = append(fields, storedevent.FieldParentSeq)
	}
	if m.FieldCleared(storedevent.FieldCausedBySeq) {
		fields = append(fields, storedevent.FieldCausedBySeq)
	}
	if m.FieldCleared(storedevent.FieldActor) {
		fields = append(fields, storedevent.FieldActor)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StoredEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StoredEventMutation) ClearField(name string) error {
	switch name {
	case storedevent.FieldParentSeq:
		m.ClearParentSeq()
		return nil
	case storedevent.FieldCausedBySeq:
		m.ClearCausedBySeq()
		return nil
	case storedevent.FieldActor:
		m.ClearActor()
		return nil
	}
	return fmt.Errorf("unknown StoredEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StoredEventMutation) ResetField(name string) error {
	switch name {
	case storedevent.FieldTs:
		m.ResetTs()
		return nil
	case storedevent.FieldEventType:
		m.ResetEventType()
		return nil
	case storedevent.FieldParentSeq:
		m.ResetParentSeq()
		return nil
	case storedevent.FieldCausedBySeq:
		m.ResetCausedBySeq()
		return nil
	case storedevent.FieldRunID:
		m.ResetRunID()
		return nil
	case storedevent.FieldActor:
		m.ResetActor()
		return nil
	case storedevent.FieldPayload:
		m.ResetPayload()
		return nil
	case storedevent.FieldSchemaV:
		m.ResetSchemaV()
		return nil
	}
	return fmt.Errorf("unknown StoredEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StoredEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StoredEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StoredEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StoredEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StoredEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StoredEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StoredEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StoredEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StoredEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StoredEvent edge %s", name)
}
