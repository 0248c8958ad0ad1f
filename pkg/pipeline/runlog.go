package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fourthplaces/rootsignal/ent"
	"github.com/fourthplaces/rootsignal/ent/pipelinerun"
	"github.com/fourthplaces/rootsignal/pkg/models"
)

// RunLog accumulates the structured per-run timeline and persists it with
// the final stats. It is written even for failed runs.
type RunLog struct {
	mu      sync.Mutex
	records []map[string]interface{}
	start   time.Time
}

// NewRunLog creates an empty run log.
func NewRunLog() *RunLog {
	return &RunLog{start: time.Now()}
}

// Record appends one timestamped record. kind names the record type
// (search, scrape, extraction, verdict, budget, phase); fields carry the
// specifics.
func (l *RunLog) Record(kind string, fields map[string]interface{}) {
	entry := make(map[string]interface{}, len(fields)+2)
	for k, v := range fields {
		entry[k] = v
	}
	entry["kind"] = kind
	entry["at"] = time.Now().Format(time.RFC3339Nano)

	l.mu.Lock()
	l.records = append(l.records, entry)
	l.mu.Unlock()
}

// Len returns how many records have been written.
func (l *RunLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// snapshot copies the records for persistence.
func (l *RunLog) snapshot() []map[string]interface{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]map[string]interface{}(nil), l.records...)
}

// RunStore persists run records to the pipeline_runs table.
type RunStore struct {
	client *ent.Client
}

// NewRunStore creates a store over the ent client.
func NewRunStore(client *ent.Client) *RunStore {
	return &RunStore{client: client}
}

// Begin creates the running row for a run.
func (s *RunStore) Begin(ctx context.Context, runID, region string) error {
	_, err := s.client.PipelineRun.Create().
		SetID(runID).
		SetRegion(region).
		SetStatus(pipelinerun.StatusRunning).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create run record %s: %w", runID, err)
	}
	return nil
}

// Finish writes the terminal status, stats, and timeline for a run.
func (s *RunStore) Finish(ctx context.Context, runID string, status string, stats models.RunStats, log *RunLog, runErr error) error {
	statsMap := map[string]interface{}{
		"sources_scheduled":    stats.SourcesScheduled,
		"pages_fetched":        stats.PagesFetched,
		"fetches_failed":       stats.FetchesFailed,
		"content_unchanged":    stats.ContentUnchanged,
		"signals_extracted":    stats.SignalsExtracted,
		"signals_stored":       stats.SignalsStored,
		"signals_deduplicated": stats.SignalsDeduplicated,
		"signals_dropped":      stats.SignalsDropped,
		"signals_expired":      stats.SignalsExpired,
		"links_collected":      stats.LinksCollected,
		"sources_discovered":   stats.SourcesDiscovered,
		"sources_deactivated":  stats.SourcesDeactivated,
		"responses_linked":     stats.ResponsesLinked,
		"budget_spent_cents":   stats.BudgetSpentCents,
	}
	byType := make(map[string]interface{}, len(stats.ByType))
	for t, n := range stats.ByType {
		byType[string(t)] = n
	}
	statsMap["by_type"] = byType

	update := s.client.PipelineRun.UpdateOneID(runID).
		SetStatus(pipelinerun.Status(status)).
		SetCompletedAt(time.Now()).
		SetStats(statsMap).
		SetTimeline(log.snapshot()).
		SetBudgetSpentCents(stats.BudgetSpentCents)
	if runErr != nil {
		update = update.SetError(runErr.Error())
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to finish run record %s: %w", runID, err)
	}
	return nil
}

// Get loads one run record.
func (s *RunStore) Get(ctx context.Context, runID string) (*ent.PipelineRun, error) {
	row, err := s.client.PipelineRun.Get(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to load run %s: %w", runID, err)
	}
	return row, nil
}
