// Package pipeline wires the scrape pipeline together: it constructs the
// engine with its handlers, runs a region's scrape as one event-driven run,
// and persists the run log.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fourthplaces/rootsignal/pkg/budget"
	"github.com/fourthplaces/rootsignal/pkg/config"
	"github.com/fourthplaces/rootsignal/pkg/dedup"
	"github.com/fourthplaces/rootsignal/pkg/engine"
	"github.com/fourthplaces/rootsignal/pkg/extract"
	"github.com/fourthplaces/rootsignal/pkg/fetch"
	"github.com/fourthplaces/rootsignal/pkg/graph"
	"github.com/fourthplaces/rootsignal/pkg/llm"
	"github.com/fourthplaces/rootsignal/pkg/metrics"
	"github.com/fourthplaces/rootsignal/pkg/models"
	"github.com/fourthplaces/rootsignal/pkg/schedule"
	"github.com/google/uuid"
)

// EventAppender is the event-log surface the pipeline writes through.
// Satisfied by *eventlog.Log.
type EventAppender interface {
	Append(ctx context.Context, eventType string, payload any, runID string) (*models.StoredEvent, error)
}

// Projector applies stored events to the graph. Satisfied by
// *graph.Projector.
type Projector interface {
	Project(ctx context.Context, ev *models.StoredEvent) error
}

// GraphReader is the read surface the pipeline phases consume. Satisfied by
// *graph.Reader.
type GraphReader interface {
	dedup.Reader
	ListActiveSources(ctx context.Context) ([]*models.Source, error)
	CountLiveSignals(ctx context.Context) (int, error)
	FindExpiredCandidates(ctx context.Context, now time.Time, graceDays, staleDays int) ([]*graph.Signal, error)
	LiveSignalsOfTypes(ctx context.Context, types ...models.NodeType) ([]*graph.Signal, error)
	FindActor(ctx context.Context, nameKey string) (*models.Actor, error)
}

// RunRecorder persists run rows. Satisfied by *RunStore; nil disables
// persistence (tests).
type RunRecorder interface {
	Begin(ctx context.Context, runID, region string) error
	Finish(ctx context.Context, runID, status string, stats models.RunStats, log *RunLog, runErr error) error
}

// Deps bundles everything a run needs.
type Deps struct {
	System    config.SystemConfig
	Region    *config.Region
	Client    llm.Client
	Embedder  llm.Embedder
	Fetcher   fetch.Fetcher
	Reader    GraphReader
	Projector Projector
	Log       EventAppender
	Runs      RunRecorder
	Metrics   *metrics.Metrics
	// Clock is injectable for deterministic tests; defaults to time.Now.
	Clock func() time.Time
}

// Orchestrator runs one region's scrape pipeline.
type Orchestrator struct {
	deps      Deps
	tracker   *budget.Tracker
	cancel    *engine.CancelFlag
	state     *State
	runLog    *RunLog
	extractor *extract.Extractor
	deduper   *dedup.Engine
	scheduler *schedule.Scheduler
	now       func() time.Time
}

// New builds an orchestrator for one run. Construction validates the
// configuration; anything missing fails here, not mid-run.
func New(deps Deps) (*Orchestrator, error) {
	if deps.Region == nil {
		return nil, fmt.Errorf("region is required")
	}
	if deps.Client == nil || deps.Embedder == nil || deps.Fetcher == nil {
		return nil, fmt.Errorf("llm client, embedder, and fetcher are required")
	}
	if deps.Reader == nil || deps.Projector == nil || deps.Log == nil {
		return nil, fmt.Errorf("graph reader, projector, and event log are required")
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.Nop()
	}
	now := deps.Clock
	if now == nil {
		now = time.Now
	}

	tracker := budget.NewTracker(deps.Region.DailyBudgetCents)
	o := &Orchestrator{
		deps:    deps,
		tracker: tracker,
		cancel:  &engine.CancelFlag{},
		now:     now,
		extractor: extract.New(deps.Client, extract.RegionPrompt{
			Name:    deps.Region.Name,
			Slug:    deps.Region.Slug,
			Context: deps.Region.PromptContext,
		}),
		scheduler: schedule.New(deps.Reader, tracker, deps.Region.MaxWebQueriesPerRun),
	}
	return o, nil
}

// Cancel requests a clean shutdown: the current phase drains in-flight
// units and finalization still runs.
func (o *Orchestrator) Cancel() {
	o.cancel.Cancel()
}

// Budget exposes the run's budget tracker.
func (o *Orchestrator) Budget() *budget.Tracker {
	return o.tracker
}

// Run executes one full pipeline run under the given run ID and returns
// the final stats. The run log is persisted even when the run fails.
func (o *Orchestrator) Run(ctx context.Context, runID string) (models.RunStats, error) {
	if runID == "" {
		runID = uuid.New().String()
	}
	o.state = NewState(runID)
	o.runLog = NewRunLog()
	o.deduper = dedup.New(
		o.deps.Reader,
		o.deps.Embedder,
		o.deps.Region.Thresholds,
		o.deps.Region.BoundingBox(),
		o.deps.System.BlockedPatterns,
	)

	log := slog.With("run_id", runID, "region", o.deps.Region.Slug)
	log.Info("Starting pipeline run", "budget_cents", o.tracker.Limit())

	if o.deps.Runs != nil {
		if err := o.deps.Runs.Begin(ctx, runID, o.deps.Region.Slug); err != nil {
			return models.RunStats{}, err
		}
	}

	eng := engine.New(NewReducer(o.state), o.handlers()...)
	handle := eng.Emit(ctx, models.EngineStarted{RunID: runID, RegionSlug: o.deps.Region.Slug})
	runErr := handle.Settled(ctx)

	o.state.SetBudgetSpent(o.tracker.Spent())
	stats := o.state.Stats()
	o.runLog.Record("budget", map[string]interface{}{
		"spent_cents": o.tracker.Spent(),
		"limit_cents": o.tracker.Limit(),
	})

	status := "completed"
	switch {
	case runErr != nil:
		status = "failed"
		o.runLog.Record("run_failed", map[string]interface{}{"reason": runErr.Error()})
	case o.cancel.Cancelled():
		status = "cancelled"
	}

	if o.deps.Runs != nil {
		if err := o.deps.Runs.Finish(ctx, runID, status, stats, o.runLog, runErr); err != nil {
			log.Error("Failed to persist run log", "error", err)
		}
	}

	o.deps.Metrics.ObserveRun(stats)
	o.deps.Metrics.ObserveStatus(status)
	log.Info("Pipeline run finished",
		"status", status,
		"extracted", stats.SignalsExtracted,
		"stored", stats.SignalsStored,
		"deduplicated", stats.SignalsDeduplicated,
		"dropped", stats.SignalsDropped,
		"spent_cents", stats.BudgetSpentCents)

	if runErr != nil {
		return stats, fmt.Errorf("run %s failed: %w", runID, runErr)
	}
	return stats, nil
}

// handlers assembles the phase DAG. Registration order matters only for
// handlers matching the same event: persistence always runs before anything
// that reacts to a world event's consequences.
func (o *Orchestrator) handlers() []engine.Handler {
	return []engine.Handler{
		o.persistHandler(),
		o.runLogHandler(),
		o.bootstrapHandler(),
		o.scheduleHandler(),
		o.tensionScrapeHandler(),
		o.dedupHandler(),
		o.discoveryHandler(),
		o.responseScrapeHandler(),
		o.actorHandler(),
		o.metricsHandler(),
		o.expansionHandler(),
		o.synthesisHandler(),
		o.finalizeHandler(),
	}
}

// phaseDone matches PhaseCompleted for one phase.
func phaseDone(phase models.Phase) func(engine.Event) bool {
	return func(ev engine.Event) bool {
		pc, ok := ev.(models.PhaseCompleted)
		return ok && pc.Phase == phase
	}
}

func matchType(eventType string) func(engine.Event) bool {
	return func(ev engine.Event) bool {
		return ev.EventType() == eventType
	}
}
