package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/fourthplaces/rootsignal/pkg/budget"
	"github.com/fourthplaces/rootsignal/pkg/models"
)

// SourceLister supplies the active sources of the region. Satisfied by
// *graph.Reader.
type SourceLister interface {
	ListActiveSources(ctx context.Context) ([]*models.Source, error)
}

// Plan is the scheduler's output: which sources each phase fetches, in
// score order.
type Plan struct {
	TensionKeys  []string
	ResponseKeys []string
	// Sources holds every scheduled source keyed by canonical key.
	Sources map[string]*models.Source
}

// Scheduler orders active sources into tension/response phases under the
// weight × cadence × budget policy.
type Scheduler struct {
	lister        SourceLister
	tracker       *budget.Tracker
	maxWebQueries int
}

// New creates a scheduler.
func New(lister SourceLister, tracker *budget.Tracker, maxWebQueries int) *Scheduler {
	return &Scheduler{
		lister:        lister,
		tracker:       tracker,
		maxWebQueries: maxWebQueries,
	}
}

// Plan partitions, filters, and orders the region's sources. Deterministic:
// running it twice against the same source set and clock returns the same
// ordering.
func (s *Scheduler) Plan(ctx context.Context, now time.Time) (*Plan, error) {
	sources, err := s.lister.ListActiveSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources for scheduling: %w", err)
	}

	plan := &Plan{Sources: make(map[string]*models.Source)}
	var tension, response []*models.Source

	for _, src := range sources {
		if !due(src, now) {
			continue
		}
		if isTensionPhase(src) {
			tension = append(tension, src)
		} else {
			response = append(response, src)
		}
	}

	sortByScore(tension, now)
	sortByScore(response, now)

	// Cap paid web queries per run; the cheapest way to blow a budget is an
	// unbounded query fan-out.
	webQueries := 0
	var cappedResponse []*models.Source
	for _, src := range response {
		if src.Strategy == models.StrategyWebQuery {
			if webQueries >= s.maxWebQueries {
				continue
			}
			if !s.tracker.Has(budget.CostSearchQuery) {
				continue
			}
			webQueries++
		}
		cappedResponse = append(cappedResponse, src)
	}

	for _, src := range tension {
		plan.TensionKeys = append(plan.TensionKeys, src.CanonicalKey)
		plan.Sources[src.CanonicalKey] = src
	}
	for _, src := range cappedResponse {
		plan.ResponseKeys = append(plan.ResponseKeys, src.CanonicalKey)
		plan.Sources[src.CanonicalKey] = src
	}

	slog.Info("Sources scheduled",
		"active", len(sources),
		"tension_phase", len(plan.TensionKeys),
		"response_phase", len(plan.ResponseKeys),
		"web_queries", webQueries)
	return plan, nil
}

// due applies the cadence gate. Never-scraped sources get a cold-start
// boost: they are always due.
func due(src *models.Source, now time.Time) bool {
	if src.LastScraped == nil {
		return true
	}
	next := src.LastScraped.Add(time.Duration(src.CadenceHours) * time.Hour)
	return !next.After(now)
}

// isTensionPhase routes feeds, direct web pages, and social accounts into
// the tension phase; queries, topic searches, and fresh discoveries scrape
// in the response phase.
func isTensionPhase(src *models.Source) bool {
	switch src.Strategy {
	case models.StrategyFeed, models.StrategyWeb, models.StrategySocial:
		return src.Discovery != models.DiscoveryQueryResult &&
			src.Discovery != models.DiscoveryLLMSuggested
	default:
		return false
	}
}

// sortByScore orders by effective score descending, canonical key ascending
// on ties so the ordering is stable across runs.
func sortByScore(sources []*models.Source, now time.Time) {
	sort.SliceStable(sources, func(i, j int) bool {
		si := score(sources[i], now)
		sj := score(sources[j], now)
		if si != sj {
			return si > sj
		}
		return sources[i].CanonicalKey < sources[j].CanonicalKey
	})
}

func score(src *models.Source, now time.Time) float64 {
	return src.Weight * freshnessBonus(src.LastProducedSignal, now)
}
