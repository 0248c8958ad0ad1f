package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/fourthplaces/rootsignal/pkg/engine"
	"github.com/fourthplaces/rootsignal/pkg/graph"
	"github.com/fourthplaces/rootsignal/pkg/models"
	"github.com/fourthplaces/rootsignal/pkg/schedule"
)

// deadSourceEmptyRuns is how many consecutive empty runs deactivate a
// machine-discovered source. Curated sources are never deactivated.
const deadSourceEmptyRuns = 8

// linkPromotionMinCount is how often an external link must be collected in
// one run before expansion promotes it to a source.
const linkPromotionMinCount = 2

// Severity inference thresholds: distinct tension links on a Notice.
const (
	severityWarningLinks  = 2
	severityCriticalLinks = 4
)

// metricsHandler recomputes weight and cadence for every source this run
// touched and deactivates dead ones. Only actual changes are emitted.
func (o *Orchestrator) metricsHandler() engine.Handler {
	return engine.Handler{
		Name:  "metrics_update",
		Match: phaseDone(models.PhaseActorEnrichment),
		Run: func(ctx context.Context, _ engine.Event) ([]engine.Event, error) {
			var events []engine.Event
			now := o.now()
			produced := o.state.SourceSignalCounts()

			sources, err := o.deps.Reader.ListActiveSources(ctx)
			if err != nil {
				slog.Warn("Source listing failed, skipping metrics update", "error", err)
			} else {
				plan := o.state.Plan()
				for _, src := range sources {
					if plan != nil {
						if _, scheduled := plan.Sources[src.CanonicalKey]; !scheduled {
							continue
						}
					}

					// Fold this run's production into the counters the weight
					// sees; the projector has already applied SourceScraped.
					total := src.SignalsProduced + produced[src.CanonicalKey]
					lastProduced := src.LastProducedSignal
					if produced[src.CanonicalKey] > 0 {
						lastProduced = &now
					}

					weight := schedule.ComputeWeight(
						total, src.SignalsCorroborated, src.ScrapeCount,
						src.TensionsProduced, lastProduced, now)
					weight = math.Max(0.1, weight-src.QualityPenalty)

					consecutiveEmpty := src.ConsecutiveEmpty
					if produced[src.CanonicalKey] > 0 {
						consecutiveEmpty = 0
					}
					cadence := schedule.CadenceHours(weight, consecutiveEmpty, src.Discovery)

					if math.Abs(weight-src.Weight) > 0.001 {
						events = append(events, models.SourceChanged{
							CanonicalKey: src.CanonicalKey,
							Change:       models.SourceChangeWeight,
							OldValue:     src.Weight,
							NewValue:     weight,
						})
					}
					if cadence != src.CadenceHours {
						events = append(events, models.SourceChanged{
							CanonicalKey: src.CanonicalKey,
							Change:       models.SourceChangeCadence,
							OldValue:     float64(src.CadenceHours),
							NewValue:     float64(cadence),
						})
					}

					if consecutiveEmpty >= deadSourceEmptyRuns && src.Discovery != models.DiscoveryCurated {
						events = append(events, models.SourceDeactivated{
							CanonicalKey: src.CanonicalKey,
							Reason:       fmt.Sprintf("%d consecutive empty runs", consecutiveEmpty),
						})
					}
				}
			}

			events = append(events,
				models.MetricsCompleted{RunID: o.state.RunID()},
				models.PhaseCompleted{RunID: o.state.RunID(), Phase: models.PhaseMetrics},
			)
			return events, nil
		},
	}
}

// expansionHandler promotes this run's discoveries into new sources:
// repeatedly collected external links and the mid-run expansion queries.
func (o *Orchestrator) expansionHandler() engine.Handler {
	return engine.Handler{
		Name:  "expansion",
		Match: phaseDone(models.PhaseMetrics),
		Run: func(_ context.Context, _ engine.Event) ([]engine.Event, error) {
			var events []engine.Event

			links := o.state.Links()
			ordered := make([]string, 0, len(links))
			for link := range links {
				ordered = append(ordered, link)
			}
			sort.Strings(ordered)

			for _, link := range ordered {
				if links[link] < linkPromotionMinCount {
					continue
				}
				key := models.CanonicalSourceKey(models.StrategyWeb, "", link)
				events = append(events, models.SourceDiscovered{Source: models.Source{
					CanonicalKey:   key,
					CanonicalValue: link,
					Strategy:       models.StrategyWeb,
					Weight:         0.5,
					CadenceHours:   schedule.CadenceHours(0.5, 0, models.DiscoveryLinkExpansion),
					Discovery:      models.DiscoveryLinkExpansion,
					Active:         true,
				}})
			}

			for _, query := range o.state.ExpansionQueries() {
				key := models.CanonicalSourceKey(models.StrategyWebQuery, "", query)
				events = append(events, models.SourceDiscovered{Source: models.Source{
					CanonicalKey:   key,
					CanonicalValue: query,
					Strategy:       models.StrategyWebQuery,
					Weight:         0.5,
					CadenceHours:   schedule.CadenceHours(0.5, 0, models.DiscoveryLLMSuggested),
					Discovery:      models.DiscoveryLLMSuggested,
					Active:         true,
				}})
			}

			events = append(events, models.PhaseCompleted{
				RunID: o.state.RunID(), Phase: models.PhaseExpansion,
			})
			return events, nil
		},
	}
}

// synthesisHandler maps this run's aid and gathering signals onto the
// region's live tensions (RESPONDS_TO) and infers Notice severity from how
// many tensions a notice touches.
func (o *Orchestrator) synthesisHandler() engine.Handler {
	return engine.Handler{
		Name:  "synthesis",
		Match: phaseDone(models.PhaseExpansion),
		Run: func(ctx context.Context, _ engine.Event) ([]engine.Event, error) {
			done := models.PhaseCompleted{RunID: o.state.RunID(), Phase: models.PhaseSynthesis}

			tensions, err := o.deps.Reader.LiveSignalsOfTypes(ctx, models.NodeTension)
			if err != nil {
				slog.Warn("Tension listing failed, skipping synthesis", "error", err)
				return []engine.Event{done}, nil
			}
			if len(tensions) == 0 {
				return []engine.Event{done}, nil
			}

			var events []engine.Event
			for id, nodeType := range o.state.CreatedSignals() {
				if nodeType != models.NodeAid && nodeType != models.NodeGathering {
					continue
				}
				embedding := o.state.EmbeddingFor(id)
				if len(embedding) == 0 {
					continue
				}

				var best *graph.Signal
				var bestScore float64
				for _, tension := range tensions {
					score := graph.Cosine(embedding, tension.Embedding)
					if score >= o.deps.Region.Thresholds.ResponseLink && score > bestScore {
						best = tension
						bestScore = score
					}
				}
				if best == nil {
					continue
				}

				events = append(events, models.ResponseLinked{
					ResponseID:  id,
					TensionID:   best.ID,
					Strength:    bestScore,
					Explanation: fmt.Sprintf("embedding similarity %.2f to tension %q", bestScore, best.Title),
				})
			}

			events = append(events, o.inferSeverity(ctx)...)
			events = append(events, done)
			return events, nil
		},
	}
}

// inferSeverity escalates Notices by the number of distinct tensions they
// respond to: two links make a warning, four make it critical. Severity
// never de-escalates here.
func (o *Orchestrator) inferSeverity(ctx context.Context) []engine.Event {
	notices, err := o.deps.Reader.LiveSignalsOfTypes(ctx, models.NodeNotice)
	if err != nil {
		slog.Warn("Notice listing failed, skipping severity inference", "error", err)
		return nil
	}
	tensions, err := o.deps.Reader.LiveSignalsOfTypes(ctx, models.NodeTension)
	if err != nil || len(tensions) == 0 {
		return nil
	}

	var events []engine.Event
	for _, notice := range notices {
		if len(notice.Embedding) == 0 {
			continue
		}
		links := 0
		for _, tension := range tensions {
			if graph.Cosine(notice.Embedding, tension.Embedding) >= o.deps.Region.Thresholds.ResponseLink {
				links++
			}
		}

		var severity models.Severity
		switch {
		case links >= severityCriticalLinks:
			severity = models.SeverityCritical
		case links >= severityWarningLinks:
			severity = models.SeverityWarning
		default:
			continue
		}
		if notice.Severity != nil && !severityBelow(*notice.Severity, severity) {
			continue
		}
		events = append(events, models.SeveritySet{
			SignalID: notice.ID,
			Severity: severity,
			Reason:   fmt.Sprintf("linked to %d live tensions", links),
		})
	}
	return events
}

// severityBelow reports whether a ranks strictly below b.
func severityBelow(a, b models.Severity) bool {
	rank := map[models.Severity]int{
		models.SeverityInfo:     0,
		models.SeverityWarning:  1,
		models.SeverityCritical: 2,
	}
	return rank[a] < rank[b]
}

// finalizeHandler closes the run.
func (o *Orchestrator) finalizeHandler() engine.Handler {
	return engine.Handler{
		Name:  "finalize",
		Match: phaseDone(models.PhaseSynthesis),
		Run: func(_ context.Context, _ engine.Event) ([]engine.Event, error) {
			o.state.SetBudgetSpent(o.tracker.Spent())
			return []engine.Event{models.RunCompleted{
				RunID: o.state.RunID(),
				Stats: o.state.Stats(),
			}}, nil
		},
	}
}
