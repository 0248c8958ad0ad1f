package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fourthplaces/rootsignal/pkg/dedup"
	"github.com/fourthplaces/rootsignal/pkg/engine"
	"github.com/fourthplaces/rootsignal/pkg/extract"
	"github.com/fourthplaces/rootsignal/pkg/models"
	"github.com/fourthplaces/rootsignal/pkg/schedule"
)

// Expiry policy: gatherings linger a week past their end; anything
// unconfirmed for sixty days goes stale.
const (
	expiryGraceDays = 7
	expiryStaleDays = 60
)

// persistHandler is the single write path to durable storage: every world
// event is appended to the event log and projected into the graph. An
// append failure is terminal — losing the log breaks replay, and nothing
// downstream can be trusted. A projection failure is logged and skipped;
// the operator replays the log suffix to fill the gap.
func (o *Orchestrator) persistHandler() engine.Handler {
	return engine.Handler{
		Name: "persist",
		Match: func(ev engine.Event) bool {
			return models.IsWorldEvent(ev.EventType())
		},
		Run: func(ctx context.Context, ev engine.Event) ([]engine.Event, error) {
			stored, err := o.deps.Log.Append(ctx, ev.EventType(), ev, o.state.RunID())
			if err != nil {
				return nil, engine.Terminal(fmt.Errorf("event log append failed: %w", err))
			}
			if err := o.deps.Projector.Project(ctx, stored); err != nil {
				slog.Error("Projection failed, log has the event for replay",
					"event_type", ev.EventType(), "seq", stored.Seq, "error", err)
			}
			return nil, nil
		},
	}
}

// runLogHandler mirrors the run's notable events into the structured run
// log.
func (o *Orchestrator) runLogHandler() engine.Handler {
	return engine.Handler{
		Name:  "run_log",
		Match: func(engine.Event) bool { return true },
		Run: func(_ context.Context, ev engine.Event) ([]engine.Event, error) {
			switch e := ev.(type) {
			case models.PhaseCompleted:
				o.runLog.Record("phase", map[string]interface{}{
					"phase": string(e.Phase), "partial": e.Partial,
					"budget_spent": o.tracker.Spent(),
				})
			case models.SignalDropped:
				o.runLog.Record("verdict", map[string]interface{}{
					"verdict": "dropped", "title": e.Title, "reason": e.Reason,
				})
			case models.NewSignalAccepted:
				o.runLog.Record("verdict", map[string]interface{}{
					"verdict": "new", "node_id": e.NodeID.String(), "node_type": string(e.NodeType),
				})
			case models.CrossSourceMatchDetected:
				o.runLog.Record("verdict", map[string]interface{}{
					"verdict": "corroborated", "existing_id": e.ExistingID.String(),
					"similarity": e.Similarity,
				})
			case models.ContentFetchFailed:
				o.runLog.Record("scrape", map[string]interface{}{
					"url": e.URL, "failed": true, "reason": e.Reason,
				})
			}
			return nil, nil
		},
	}
}

// bootstrapHandler reacts to EngineStarted: seeds an empty region, reaps
// expired signals, and completes the bootstrap phase.
func (o *Orchestrator) bootstrapHandler() engine.Handler {
	return engine.Handler{
		Name:  "bootstrap",
		Match: matchType(models.TypeEngineStarted),
		Run: func(ctx context.Context, _ engine.Event) ([]engine.Event, error) {
			var events []engine.Event

			sources, err := o.deps.Reader.ListActiveSources(ctx)
			if err != nil {
				return nil, engine.Terminal(fmt.Errorf("cannot list sources at bootstrap: %w", err))
			}
			if len(sources) == 0 {
				events = append(events, o.seedEvents()...)
			}
			if live, err := o.deps.Reader.CountLiveSignals(ctx); err == nil {
				slog.Info("Bootstrap state", "active_sources", len(sources), "live_signals", live)
			}

			events = append(events, o.reapExpired(ctx)...)

			events = append(events, models.PhaseCompleted{
				RunID: o.state.RunID(),
				Phase: models.PhaseBootstrap,
			})
			return events, nil
		},
	}
}

// seedEvents turns the region's configured seeds into SourceDiscovered
// events.
func (o *Orchestrator) seedEvents() []engine.Event {
	var events []engine.Event
	for _, seed := range o.deps.Region.Seeds {
		strategy := models.SourceStrategy(seed.Strategy)
		if !strategy.Valid() {
			slog.Warn("Skipping seed with unknown strategy", "value", seed.Value, "strategy", seed.Strategy)
			continue
		}
		key := models.CanonicalSourceKey(strategy, seed.Platform, seed.Value)
		events = append(events, models.SourceDiscovered{Source: models.Source{
			CanonicalKey:   key,
			CanonicalValue: seed.Value,
			Strategy:       strategy,
			Platform:       seed.Platform,
			Weight:         0.5,
			CadenceHours:   schedule.CadenceHours(0.5, 0, models.DiscoveryCurated),
			Discovery:      models.DiscoveryCurated,
			Active:         true,
		}})
	}
	slog.Info("Seeding empty region", "seeds", len(events))
	return events
}

// reapExpired marks overdue signals expired.
func (o *Orchestrator) reapExpired(ctx context.Context) []engine.Event {
	candidates, err := o.deps.Reader.FindExpiredCandidates(ctx, o.now(), expiryGraceDays, expiryStaleDays)
	if err != nil {
		slog.Warn("Expiry scan failed, skipping reap this run", "error", err)
		return nil
	}

	var events []engine.Event
	for _, sig := range candidates {
		reason := "stale"
		if sig.Type == models.NodeGathering {
			reason = "gathering past"
		}
		events = append(events, models.EntityExpired{
			SignalID: sig.ID,
			NodeType: sig.Type,
			Reason:   reason,
		})
	}
	if len(events) > 0 {
		slog.Info("Reaping expired signals", "count", len(events))
	}
	return events
}

// scheduleHandler runs the scheduler once bootstrap (and its seed
// projections) completed.
func (o *Orchestrator) scheduleHandler() engine.Handler {
	return engine.Handler{
		Name:  "schedule",
		Match: phaseDone(models.PhaseBootstrap),
		Run: func(ctx context.Context, _ engine.Event) ([]engine.Event, error) {
			plan, err := o.scheduler.Plan(ctx, o.now())
			if err != nil {
				return nil, engine.Terminal(fmt.Errorf("scheduling failed: %w", err))
			}
			o.state.StashPlan(plan)
			return []engine.Event{models.SourcesScheduled{
				RunID:        o.state.RunID(),
				TensionKeys:  plan.TensionKeys,
				ResponseKeys: plan.ResponseKeys,
			}}, nil
		},
	}
}

// dedupHandler classifies each extracted batch and emits verdict pairs: a
// pipeline-internal event for state/metrics plus the world event that
// mutates the graph.
func (o *Orchestrator) dedupHandler() engine.Handler {
	return engine.Handler{
		Name:  "dedup",
		Match: matchType(models.TypeSignalsExtracted),
		Run: func(ctx context.Context, ev engine.Event) ([]engine.Event, error) {
			extracted := ev.(models.SignalsExtracted)
			batch := o.state.PopBatch(extracted.URL)
			if batch == nil {
				slog.Warn("No stashed batch for extracted URL", "url", extracted.URL)
				return nil, nil
			}

			verdicts, err := o.deduper.Classify(ctx, batch)
			if err != nil {
				return nil, fmt.Errorf("dedup failed for %s: %w", extracted.URL, err)
			}

			runID := o.state.RunID()
			var events []engine.Event
			for _, v := range verdicts {
				switch v.Kind {
				case dedup.VerdictNew:
					o.state.RecordCreated(v.Node.Meta.ID, v.Node.Type, v.Node.Meta.Title, v.Embedding)
					events = append(events,
						models.NewSignalAccepted{
							RunID:     runID,
							NodeID:    v.Node.Meta.ID,
							NodeType:  v.Node.Type,
							SourceURL: batch.SourceURL,
						},
						models.SignalCreated{
							NodeID:      v.Node.Meta.ID,
							NodeType:    v.Node.Type,
							Node:        *v.Node,
							SourceURL:   batch.SourceURL,
							SourceKey:   batch.SourceKey,
							ContentHash: batch.ContentHash,
							Snippet:     batch.Snippets[v.Node.Meta.ID],
							ChannelType: batch.ChannelType,
							Embedding:   v.Embedding,
						})
					events = append(events, o.actorEvents(v.Node, batch)...)
				case dedup.VerdictCrossSource:
					events = append(events,
						models.CrossSourceMatchDetected{
							RunID:      runID,
							ExistingID: v.ExistingID,
							SourceURL:  batch.SourceURL,
							Similarity: v.Similarity,
						},
						models.SignalCorroborated{
							ExistingID:  v.ExistingID,
							NodeType:    v.Node.Type,
							SourceURL:   batch.SourceURL,
							SourceKey:   batch.SourceKey,
							ContentHash: batch.ContentHash,
							Snippet:     batch.Snippets[v.Node.Meta.ID],
							ChannelType: batch.ChannelType,
							Similarity:  v.Similarity,
						})
				case dedup.VerdictSameSource:
					events = append(events,
						models.SameSourceReencountered{
							RunID:      runID,
							ExistingID: v.ExistingID,
							SourceURL:  batch.SourceURL,
						},
						models.FreshnessRecorded{
							SignalID:  v.ExistingID,
							NodeType:  v.Node.Type,
							SourceURL: batch.SourceURL,
							SeenAt:    o.now(),
						})
				case dedup.VerdictDropped:
					events = append(events, models.SignalDropped{
						RunID:     runID,
						Title:     v.Node.Meta.Title,
						SourceURL: batch.SourceURL,
						Reason:    v.Reason,
					})
				}
			}
			return events, nil
		},
	}
}

// actorEvents emits ActorObserved for a created signal's authors and
// mentioned actors, and stashes them for the enrichment phase.
func (o *Orchestrator) actorEvents(node *models.SignalNode, batch *extract.Batch) []engine.Event {
	var events []engine.Event
	for _, author := range batch.Authors {
		url := ""
		if author.URL != nil {
			url = *author.URL
		}
		events = append(events, models.ActorObserved{
			Name:         author.Name,
			Kind:         author.Kind,
			CanonicalURL: url,
			SignalID:     node.Meta.ID,
			Role:         "author",
		})
		o.state.StashActor(author.Name, author.Kind, url, node.Meta.ID, "author")
	}
	for _, name := range node.Meta.MentionedActors {
		events = append(events, models.ActorObserved{
			Name:     name,
			Kind:     "organization",
			SignalID: node.Meta.ID,
			Role:     "mentioned",
		})
		o.state.StashActor(name, "organization", "", node.Meta.ID, "mentioned")
	}
	return events
}
