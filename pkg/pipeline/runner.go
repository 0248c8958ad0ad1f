package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fourthplaces/rootsignal/pkg/config"
	"github.com/fourthplaces/rootsignal/pkg/database"
	"github.com/fourthplaces/rootsignal/pkg/eventlog"
	"github.com/fourthplaces/rootsignal/pkg/fetch"
	"github.com/fourthplaces/rootsignal/pkg/graph"
	"github.com/fourthplaces/rootsignal/pkg/llm"
	"github.com/fourthplaces/rootsignal/pkg/metrics"
	"github.com/google/uuid"
)

// Runner launches and tracks pipeline runs across regions. One run per
// region at a time; runs execute in the background.
type Runner struct {
	cfg      *config.Config
	dbClient *database.Client
	client   llm.Client
	embedder llm.Embedder
	fetcher  fetch.Fetcher
	metrics  *metrics.Metrics
	runs     *RunStore

	mu     sync.Mutex
	active map[string]*activeRun // region slug → run
	byID   map[string]*activeRun // run id → run
}

type activeRun struct {
	id           string
	region       string
	orchestrator *Orchestrator
}

// NewRunner creates a runner over shared process dependencies.
func NewRunner(cfg *config.Config, dbClient *database.Client, client llm.Client, embedder llm.Embedder, fetcher fetch.Fetcher, m *metrics.Metrics) *Runner {
	return &Runner{
		cfg:      cfg,
		dbClient: dbClient,
		client:   client,
		embedder: embedder,
		fetcher:  fetcher,
		metrics:  m,
		runs:     NewRunStore(dbClient.Client),
		active:   make(map[string]*activeRun),
		byID:     make(map[string]*activeRun),
	}
}

// Launch starts a run for the region. Returns the run ID immediately; the
// run proceeds in the background.
func (r *Runner) Launch(regionSlug string) (string, error) {
	region, err := r.cfg.Region(regionSlug)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	if _, busy := r.active[regionSlug]; busy {
		r.mu.Unlock()
		return "", fmt.Errorf("region %s already has a run in progress", regionSlug)
	}

	orch, err := New(Deps{
		System:    r.cfg.System,
		Region:    region,
		Client:    r.client,
		Embedder:  r.embedder,
		Fetcher:   r.fetcher,
		Reader:    graph.NewReader(r.dbClient.Client, regionSlug),
		Projector: graph.NewProjector(r.dbClient.Client, regionSlug),
		Log:       eventlog.New(r.dbClient.Client),
		Runs:      r.runs,
		Metrics:   r.metrics,
	})
	if err != nil {
		r.mu.Unlock()
		return "", err
	}

	run := &activeRun{id: uuid.New().String(), region: regionSlug, orchestrator: orch}
	r.active[regionSlug] = run
	r.byID[run.id] = run
	r.mu.Unlock()

	go func() {
		defer func() {
			r.mu.Lock()
			delete(r.active, regionSlug)
			delete(r.byID, run.id)
			r.mu.Unlock()
		}()
		if _, err := orch.Run(context.Background(), run.id); err != nil {
			slog.Error("Pipeline run failed", "region", regionSlug, "error", err)
		}
	}()

	return run.id, nil
}

// CancelRun requests cancellation of an active run.
func (r *Runner) CancelRun(runID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if run, ok := r.byID[runID]; ok {
		run.orchestrator.Cancel()
		return true
	}
	return false
}

// Status returns the stored run record as a generic map for the API.
func (r *Runner) Status(ctx context.Context, runID string) (map[string]interface{}, error) {
	row, err := r.runs.Get(ctx, runID)
	if err != nil {
		return nil, err
	}
	status := map[string]interface{}{
		"run_id":             row.ID,
		"region":             row.Region,
		"status":             string(row.Status),
		"started_at":         row.StartedAt,
		"budget_spent_cents": row.BudgetSpentCents,
		"stats":              row.Stats,
	}
	if row.CompletedAt != nil {
		status["completed_at"] = row.CompletedAt
	}
	if row.Error != "" {
		status["error"] = row.Error
	}
	return status, nil
}
