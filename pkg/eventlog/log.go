// Package eventlog persists the append-only domain event log. Every graph
// mutation travels through here before projection; replaying the log from
// seq=1 rebuilds the graph.
package eventlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fourthplaces/rootsignal/ent"
	"github.com/fourthplaces/rootsignal/ent/storedevent"
	"github.com/fourthplaces/rootsignal/pkg/models"
)

// SchemaVersion stamps every appended row so payloads can evolve.
const SchemaVersion = 1

// Log is the append-only event store backed by the stored_events table.
// Append is a single INSERT; the autoincrement seq is the global
// linearization point across concurrent workers.
type Log struct {
	client *ent.Client
}

// New creates a Log over the given ent client.
func New(client *ent.Client) *Log {
	return &Log{client: client}
}

// Append serializes the payload and persists one event row, returning the
// stored event with its assigned seq.
func (l *Log) Append(ctx context.Context, eventType string, payload any, runID string) (*models.StoredEvent, error) {
	return l.append(ctx, eventType, payload, runID, nil, nil, "")
}

// AppendChild appends an event carrying a parent link for causal tracing.
func (l *Log) AppendChild(ctx context.Context, parentSeq int64, eventType string, payload any, runID string) (*models.StoredEvent, error) {
	return l.append(ctx, eventType, payload, runID, &parentSeq, nil, "")
}

// AppendCaused appends an event recording both the emitting handler and the
// seq of the event that caused it.
func (l *Log) AppendCaused(ctx context.Context, causedBySeq int64, actor, eventType string, payload any, runID string) (*models.StoredEvent, error) {
	return l.append(ctx, eventType, payload, runID, nil, &causedBySeq, actor)
}

func (l *Log) append(ctx context.Context, eventType string, payload any, runID string, parentSeq, causedBySeq *int64, actor string) (*models.StoredEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize %s payload: %w", eventType, err)
	}

	create := l.client.StoredEvent.Create().
		SetTs(time.Now()).
		SetEventType(eventType).
		SetRunID(runID).
		SetPayload(data).
		SetSchemaV(SchemaVersion)
	if parentSeq != nil {
		create = create.SetParentSeq(*parentSeq)
	}
	if causedBySeq != nil {
		create = create.SetCausedBySeq(*causedBySeq)
	}
	if actor != "" {
		create = create.SetActor(actor)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append %s event: %w", eventType, err)
	}
	return fromRow(row), nil
}

// ReadFrom returns up to batch events with seq >= from, in seq order.
func (l *Log) ReadFrom(ctx context.Context, from int64, batch int) ([]*models.StoredEvent, error) {
	rows, err := l.client.StoredEvent.Query().
		Where(storedevent.IDGTE(from)).
		Order(ent.Asc(storedevent.FieldID)).
		Limit(batch).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read events from seq %d: %w", from, err)
	}

	events := make([]*models.StoredEvent, len(rows))
	for i, row := range rows {
		events[i] = fromRow(row)
	}
	return events, nil
}

// LastSeq returns the highest assigned seq, or 0 for an empty log.
func (l *Log) LastSeq(ctx context.Context) (int64, error) {
	row, err := l.client.StoredEvent.Query().
		Order(ent.Desc(storedevent.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read last seq: %w", err)
	}
	return row.ID, nil
}

func fromRow(row *ent.StoredEvent) *models.StoredEvent {
	return &models.StoredEvent{
		Seq:         row.ID,
		Timestamp:   row.Ts,
		EventType:   row.EventType,
		ParentSeq:   row.ParentSeq,
		CausedBySeq: row.CausedBySeq,
		RunID:       row.RunID,
		Actor:       row.Actor,
		Payload:     row.Payload,
		SchemaV:     row.SchemaV,
	}
}
