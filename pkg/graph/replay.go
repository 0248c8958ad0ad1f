package graph

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fourthplaces/rootsignal/ent"
	"github.com/fourthplaces/rootsignal/pkg/models"
)

// EventSource is what replay reads from. Satisfied by *eventlog.Log.
type EventSource interface {
	ReadFrom(ctx context.Context, from int64, batch int) ([]*models.StoredEvent, error)
}

const replayBatchSize = 500

// Replay rebuilds the graph by projecting the event log from seq=1 in
// batches. The caller is responsible for starting from a clean graph (see
// WipeGraph); projection itself is idempotent, so replaying over a partial
// graph converges too.
func Replay(ctx context.Context, src EventSource, projector *Projector) (int64, error) {
	var applied int64
	from := int64(1)
	for {
		events, err := src.ReadFrom(ctx, from, replayBatchSize)
		if err != nil {
			return applied, fmt.Errorf("failed to read events for replay: %w", err)
		}
		if len(events) == 0 {
			break
		}
		for _, ev := range events {
			if err := projector.Project(ctx, ev); err != nil {
				return applied, fmt.Errorf("failed to project seq %d during replay: %w", ev.Seq, err)
			}
			applied++
			from = ev.Seq + 1
		}
	}
	slog.Info("Replay complete", "events_applied", applied)
	return applied, nil
}

// WipeGraph deletes every projected entity. The event log itself is never
// touched — it is the durable record the wipe is recovered from.
func WipeGraph(ctx context.Context, client *ent.Client) error {
	if _, err := client.Response.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("failed to wipe responses: %w", err)
	}
	if _, err := client.Evidence.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("failed to wipe evidence: %w", err)
	}
	if _, err := client.Signal.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("failed to wipe signals: %w", err)
	}
	if _, err := client.Actor.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("failed to wipe actors: %w", err)
	}
	if _, err := client.Source.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("failed to wipe sources: %w", err)
	}
	return nil
}
