package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/fourthplaces/rootsignal/pkg/budget"
	"github.com/fourthplaces/rootsignal/pkg/engine"
	"github.com/fourthplaces/rootsignal/pkg/llm"
	"github.com/fourthplaces/rootsignal/pkg/models"
)

// Discovery caps. The LLM proposes at most this many follow-ups per run.
const (
	maxExpansionQueries = 5
	maxSocialTopics     = 3
)

// discoveryResult is the structured output of the mid-run discovery call.
type discoveryResult struct {
	Queries []string `json:"queries" desc:"Local web search queries worth running this cycle"`
	Topics  []struct {
		Platform string `json:"platform" enum:"reddit,instagram,facebook"`
		Topic    string `json:"topic"`
	} `json:"topics" desc:"Social topic searches worth running this cycle"`
}

// discoveryHandler runs between the scrape phases: the LLM is given the
// run's extraction counts so far (signals and tensions) and proposes
// expansion topics for the response phase. The extractors' implied queries
// are not passed to it.
func (o *Orchestrator) discoveryHandler() engine.Handler {
	return engine.Handler{
		Name:  "mid_run_discovery",
		Match: phaseDone(models.PhaseTensionScrape),
		Run: func(ctx context.Context, _ engine.Event) ([]engine.Event, error) {
			done := models.PhaseCompleted{
				RunID: o.state.RunID(),
				Phase: models.PhaseMidRunDiscovery,
			}

			if o.cancel.Cancelled() || !o.spend(budget.CostLLMChat) {
				return []engine.Event{done}, nil
			}

			stats := o.state.Stats()
			prompt := fmt.Sprintf(
				"This scrape cycle for %s has so far extracted %d signals (%d tensions). "+
					"Propose up to %d local web search queries and up to %d social topic "+
					"searches that would surface responses, aid, or context for what was found. "+
					"Queries must be specific to the region.",
				o.deps.Region.Name, stats.SignalsExtracted,
				stats.ByType[models.NodeTension], maxExpansionQueries, maxSocialTopics)

			result, err := llm.Extract[discoveryResult](ctx, o.deps.Client,
				"You plan follow-up research for a local signal pipeline.", prompt)
			if err != nil {
				slog.Warn("Mid-run discovery failed, continuing without expansion", "error", err)
				return []engine.Event{done}, nil
			}

			var events []engine.Event
			for i, q := range result.Queries {
				if i >= maxExpansionQueries || strings.TrimSpace(q) == "" {
					break
				}
				events = append(events, models.ExpansionQueryProposed{
					RunID: o.state.RunID(), Query: strings.TrimSpace(q),
				})
			}
			for i, t := range result.Topics {
				if i >= maxSocialTopics || strings.TrimSpace(t.Topic) == "" {
					break
				}
				events = append(events, models.SocialTopicProposed{
					RunID: o.state.RunID(), Platform: t.Platform, Topic: strings.TrimSpace(t.Topic),
				})
			}
			o.runLog.Record("search", map[string]interface{}{
				"discovery_queries": len(result.Queries), "discovery_topics": len(result.Topics),
			})
			return append(events, done), nil
		},
	}
}

// actorLocation is the structured output of one actor enrichment call.
type actorLocation struct {
	Kind         string   `json:"kind" enum:"organization,person,agency"`
	CanonicalURL *string  `json:"canonical_url"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`
	Confidence   float64  `json:"confidence"`
}

// actorHandler enriches the actors observed this run: kind, canonical URL,
// and location, each re-emitted as an ActorObserved upsert.
func (o *Orchestrator) actorHandler() engine.Handler {
	return engine.Handler{
		Name:  "actor_enrichment",
		Match: phaseDone(models.PhaseResponseScrape),
		Run: func(ctx context.Context, _ engine.Event) ([]engine.Event, error) {
			done := models.PhaseCompleted{
				RunID: o.state.RunID(),
				Phase: models.PhaseActorEnrichment,
			}

			var events []engine.Event
			for _, actor := range o.actorsToEnrich(ctx) {
				if o.cancel.Cancelled() || !o.spend(budget.CostLLMChat) {
					break
				}

				prompt := fmt.Sprintf(
					"Actor %q appeared in community signals for %s. Classify what kind "+
						"of actor it is and, if you are confident, give its canonical URL "+
						"and coordinates. Leave fields null when unsure.",
					actor.Name, o.deps.Region.Name)
				loc, err := llm.Extract[actorLocation](ctx, o.deps.Client,
					"You identify local organizations, people, and agencies.", prompt)
				if err != nil {
					slog.Warn("Actor enrichment failed", "actor", actor.Name, "error", err)
					continue
				}
				if loc.Confidence < 0.5 {
					continue
				}

				enriched := models.ActorObserved{
					Name:     actor.Name,
					Kind:     loc.Kind,
					SignalID: actor.SignalID,
					Role:     actor.Role,
				}
				if loc.CanonicalURL != nil {
					enriched.CanonicalURL = *loc.CanonicalURL
				}
				if loc.Lat != nil && loc.Lng != nil {
					point := models.GeoPoint{Lat: *loc.Lat, Lng: *loc.Lng, Precision: models.PrecisionCity}
					if o.deps.Region.BoundingBox().Contains(point) {
						enriched.Location = &point
					}
				}
				events = append(events, enriched)
			}

			return append(events, done), nil
		},
	}
}

// actorsToEnrich returns this run's stashed actors that the graph has no
// location for yet, in stable name order.
func (o *Orchestrator) actorsToEnrich(ctx context.Context) []actorContext {
	o.state.mu.RLock()
	keys := make([]string, 0, len(o.state.actors))
	for key := range o.state.actors {
		keys = append(keys, key)
	}
	o.state.mu.RUnlock()
	sort.Strings(keys)

	var out []actorContext
	for _, key := range keys {
		existing, err := o.deps.Reader.FindActor(ctx, key)
		if err != nil {
			slog.Warn("Actor lookup failed", "name_key", key, "error", err)
			continue
		}
		// Already located actors need no second opinion.
		if existing != nil && existing.Location != nil {
			continue
		}
		o.state.mu.RLock()
		actor := o.state.actors[key]
		o.state.mu.RUnlock()
		out = append(out, actor)
	}
	return out
}
