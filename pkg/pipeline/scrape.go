package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fourthplaces/rootsignal/pkg/budget"
	"github.com/fourthplaces/rootsignal/pkg/engine"
	"github.com/fourthplaces/rootsignal/pkg/fetch"
	"github.com/fourthplaces/rootsignal/pkg/models"
	"golang.org/x/sync/errgroup"
)

// Per-strategy fetch limits.
const (
	socialPostLimit  = 20
	queryResultPages = 3
	topicSearchLimit = 15
)

// tensionScrapeHandler scrapes the tension-phase sources concurrently and
// completes the phase.
func (o *Orchestrator) tensionScrapeHandler() engine.Handler {
	return engine.Handler{
		Name:  "tension_scrape",
		Match: matchType(models.TypeSourcesScheduled),
		Run: func(ctx context.Context, ev engine.Event) ([]engine.Event, error) {
			scheduled := ev.(models.SourcesScheduled)
			events, partial := o.scrapeSources(ctx, scheduled.TensionKeys)
			events = append(events, models.PhaseCompleted{
				RunID:   o.state.RunID(),
				Phase:   models.PhaseTensionScrape,
				Partial: partial,
			})
			return events, nil
		},
	}
}

// responseScrapeHandler scrapes the response-phase sources plus any topic
// searches proposed by mid-run discovery.
func (o *Orchestrator) responseScrapeHandler() engine.Handler {
	return engine.Handler{
		Name:  "response_scrape",
		Match: phaseDone(models.PhaseMidRunDiscovery),
		Run: func(ctx context.Context, ev engine.Event) ([]engine.Event, error) {
			plan := o.state.Plan()
			var keys []string
			if plan != nil {
				keys = plan.ResponseKeys
			}
			events, partial := o.scrapeSources(ctx, keys)

			topicEvents, topicPartial := o.scrapeTopics(ctx, o.state.SocialTopics())
			events = append(events, topicEvents...)

			events = append(events, models.PhaseCompleted{
				RunID:   o.state.RunID(),
				Phase:   models.PhaseResponseScrape,
				Partial: partial || topicPartial,
			})
			return events, nil
		},
	}
}

// scrapeSources fetches and extracts every named source with bounded
// concurrency. Per-source event groups keep per-URL ordering; cross-source
// ordering follows scheduling order. Returns the collected events and
// whether the phase ended early (budget or cancellation).
func (o *Orchestrator) scrapeSources(ctx context.Context, keys []string) ([]engine.Event, bool) {
	plan := o.state.Plan()
	if plan == nil || len(keys) == 0 {
		return nil, false
	}

	groups := make([][]engine.Event, len(keys))
	partial := false

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers())

	for i, key := range keys {
		src, ok := plan.Sources[key]
		if !ok {
			continue
		}
		if o.cancel.Cancelled() {
			partial = true
			break
		}
		if o.tracker.Exhausted() {
			o.runLog.Record("budget", map[string]interface{}{
				"checkpoint": "scrape",
				"exhausted":  true,
				"spent":      o.tracker.Spent(),
			})
			partial = true
			break
		}

		i, src := i, src
		g.Go(func() error {
			groups[i] = o.scrapeOne(gctx, src)
			return nil
		})
	}

	// Drain in-flight units even on cancellation; their events still count.
	_ = g.Wait()

	var events []engine.Event
	for _, group := range groups {
		events = append(events, group...)
	}
	return events, partial
}

// scrapeOne runs the full fetch → unchanged-check → extract flow for one
// source and returns its event group.
func (o *Orchestrator) scrapeOne(ctx context.Context, src *models.Source) []engine.Event {
	switch src.Strategy {
	case models.StrategyFeed:
		return o.scrapeFeed(ctx, src)
	case models.StrategySocial:
		return o.scrapeSocial(ctx, src)
	case models.StrategyWebQuery:
		return o.scrapeQuery(ctx, src)
	default: // web, api_adapter
		return o.scrapePage(ctx, src)
	}
}

func (o *Orchestrator) scrapePage(ctx context.Context, src *models.Source) []engine.Event {
	if !o.spend(budget.CostPageFetch) {
		return nil
	}

	page, err := o.deps.Fetcher.Page(ctx, src.CanonicalValue)
	if err != nil {
		return o.fetchFailed(src, src.CanonicalValue, err)
	}
	o.runLog.Record("scrape", map[string]interface{}{
		"url": page.URL, "strategy": string(src.Strategy), "bytes": len(page.Markdown),
	})

	events, content, proceed := o.contentEvents(ctx, src, page.URL, page.Markdown)
	if !proceed {
		return append(events, o.sourceScraped(src, false))
	}

	extracted, produced := o.extract(ctx, content, page.URL, src, "web", false)
	events = append(events, extracted...)
	events = append(events, o.collectLinks(page.RawHTML, page.URL)...)
	return append(events, o.sourceScraped(src, produced))
}

func (o *Orchestrator) scrapeFeed(ctx context.Context, src *models.Source) []engine.Event {
	if !o.spend(budget.CostFeedFetch) {
		return nil
	}

	items, err := o.deps.Fetcher.Feed(ctx, src.CanonicalValue)
	if err != nil {
		return o.fetchFailed(src, src.CanonicalValue, err)
	}
	o.runLog.Record("scrape", map[string]interface{}{
		"url": src.CanonicalValue, "strategy": "feed", "items": len(items),
	})

	var b strings.Builder
	var links []engine.Event
	ownHost := fetch.Host(src.CanonicalValue)
	for _, item := range items {
		fmt.Fprintf(&b, "## %s\n%s\n%s\n\n", item.Title, item.Link, item.Content)
		if host := fetch.Host(item.Link); host != "" && host != ownHost {
			links = append(links, models.LinkCollected{
				RunID: o.state.RunID(), FromURL: src.CanonicalValue, Link: item.Link,
			})
		}
	}

	events, content, proceed := o.contentEvents(ctx, src, src.CanonicalValue, b.String())
	if !proceed {
		return append(events, o.sourceScraped(src, false))
	}

	extracted, produced := o.extract(ctx, content, src.CanonicalValue, src, "feed", false)
	events = append(events, extracted...)
	events = append(events, links...)
	return append(events, o.sourceScraped(src, produced))
}

func (o *Orchestrator) scrapeSocial(ctx context.Context, src *models.Source) []engine.Event {
	if !o.spend(budget.CostSocialPage) {
		return nil
	}

	posts, err := o.deps.Fetcher.Posts(ctx, src.Platform, src.CanonicalValue, socialPostLimit)
	if err != nil {
		return o.fetchFailed(src, src.CanonicalValue, err)
	}
	o.runLog.Record("scrape", map[string]interface{}{
		"account": src.CanonicalValue, "platform": src.Platform, "posts": len(posts),
	})

	var b strings.Builder
	for _, p := range posts {
		fmt.Fprintf(&b, "@%s (%s):\n%s\n\n", p.Author, p.URL, p.Text)
	}

	events, content, proceed := o.contentEvents(ctx, src, src.CanonicalValue, b.String())
	if !proceed {
		return append(events, o.sourceScraped(src, false))
	}

	extracted, produced := o.extract(ctx, content, src.CanonicalValue, src, "social", false)
	events = append(events, extracted...)
	return append(events, o.sourceScraped(src, produced))
}

// scrapeQuery runs a web search, then fetches and extracts the top results
// with the first-hand filter on.
func (o *Orchestrator) scrapeQuery(ctx context.Context, src *models.Source) []engine.Event {
	if o.state.QueryErrored("search") {
		return []engine.Event{models.ContentFetchFailed{
			RunID: o.state.RunID(), URL: src.CanonicalValue,
			SourceKey: src.CanonicalKey, Reason: "search provider failed earlier this run",
		}}
	}
	if !o.spend(budget.CostSearchQuery) {
		return nil
	}

	o.runLog.Record("search", map[string]interface{}{"query": src.CanonicalValue})
	results, err := o.deps.Fetcher.Search(ctx, src.CanonicalValue)
	if err != nil {
		o.state.RecordQueryError("search", err.Error())
		return o.fetchFailed(src, src.CanonicalValue, err)
	}

	var events []engine.Event
	produced := false
	pages := 0
	for _, result := range results {
		if pages >= queryResultPages || o.cancel.Cancelled() {
			break
		}
		if !o.tracker.Has(budget.CostPageFetch + budget.CostLLMExtraction) {
			break
		}
		pages++
		o.tracker.Spend(budget.CostPageFetch)

		page, err := o.deps.Fetcher.Page(ctx, result.URL)
		if err != nil {
			events = append(events, o.fetchFailed(src, result.URL, err)...)
			continue
		}

		group, content, proceed := o.contentEvents(ctx, src, page.URL, page.Markdown)
		events = append(events, group...)
		if !proceed {
			continue
		}
		extracted, ok := o.extract(ctx, content, page.URL, src, "search", true)
		events = append(events, extracted...)
		events = append(events, o.collectLinks(page.RawHTML, page.URL)...)
		produced = produced || ok
	}

	return append(events, o.sourceScraped(src, produced))
}

// scrapeTopics runs discovery topic searches against the social provider.
func (o *Orchestrator) scrapeTopics(ctx context.Context, topics []SocialTopic) ([]engine.Event, bool) {
	var events []engine.Event
	for _, topic := range topics {
		if o.cancel.Cancelled() || o.tracker.Exhausted() {
			return events, true
		}
		if !o.spend(budget.CostSocialPage) {
			return events, true
		}

		posts, err := o.deps.Fetcher.SearchTopics(ctx, topic.Platform, []string{topic.Topic}, topicSearchLimit)
		if err != nil {
			slog.Warn("Topic search failed", "platform", topic.Platform, "topic", topic.Topic, "error", err)
			continue
		}
		o.runLog.Record("search", map[string]interface{}{
			"platform": topic.Platform, "topic": topic.Topic, "posts": len(posts),
		})
		if len(posts) == 0 {
			continue
		}

		var b strings.Builder
		for _, p := range posts {
			fmt.Fprintf(&b, "@%s (%s):\n%s\n\n", p.Author, p.URL, p.Text)
		}
		pseudoURL := fmt.Sprintf("topic://%s/%s", topic.Platform, strings.ReplaceAll(topic.Topic, " ", "-"))
		hash := models.ContentHash(b.String())
		if o.state.MarkContentSeen(pseudoURL, hash) {
			continue
		}
		events = append(events, models.ContentFetched{
			RunID: o.state.RunID(), URL: pseudoURL, Bytes: b.Len(), ContentHash: hash,
		})
		extracted, _ := o.extract(ctx, b.String(), pseudoURL, nil, "social", true)
		events = append(events, extracted...)
	}
	return events, false
}

// contentEvents hashes content and applies the unchanged-content gate.
// Returns the fetch events, the content, and whether extraction should
// proceed.
func (o *Orchestrator) contentEvents(ctx context.Context, src *models.Source, url, content string) ([]engine.Event, string, bool) {
	hash := models.ContentHash(content)
	runID := o.state.RunID()

	if len(strings.TrimSpace(content)) == 0 {
		return []engine.Event{models.ContentFetched{
			RunID: runID, URL: url, SourceKey: src.CanonicalKey, Bytes: 0, ContentHash: hash,
		}}, content, false
	}

	if o.state.MarkContentSeen(url, hash) {
		return []engine.Event{models.ContentUnchanged{
			RunID: runID, URL: url, SourceKey: src.CanonicalKey, ContentHash: hash,
		}}, content, false
	}
	if seen, _, err := o.deps.Reader.ContentHashSeen(ctx, url, hash); err == nil && seen {
		return []engine.Event{models.ContentUnchanged{
			RunID: runID, URL: url, SourceKey: src.CanonicalKey, ContentHash: hash,
		}}, content, false
	}

	return []engine.Event{models.ContentFetched{
		RunID: runID, URL: url, SourceKey: src.CanonicalKey, Bytes: len(content), ContentHash: hash,
	}}, content, true
}

// extract calls the extractor under budget, stashes the batch, and returns
// the SignalsExtracted event. src may be nil for topic searches.
func (o *Orchestrator) extract(ctx context.Context, content, url string, src *models.Source, channel string, firsthandOnly bool) ([]engine.Event, bool) {
	if !o.spend(budget.CostLLMExtraction) {
		return nil, false
	}

	sourceKey := ""
	if src != nil {
		sourceKey = src.CanonicalKey
	}

	batch, err := o.extractor.ExtractSignals(ctx, content, url, sourceKey, channel, firsthandOnly, o.now())
	if err != nil {
		slog.Warn("Extraction failed, recording URL as failed", "url", url, "error", err)
		return []engine.Event{models.ContentFetchFailed{
			RunID: o.state.RunID(), URL: url, SourceKey: sourceKey,
			Reason: "extraction: " + err.Error(),
		}}, false
	}

	o.runLog.Record("extraction", map[string]interface{}{
		"url": url, "nodes": len(batch.Nodes), "queries": len(batch.Queries),
	})

	o.state.StashBatch(url, batch)
	return []engine.Event{models.SignalsExtracted{
		RunID:     o.state.RunID(),
		URL:       url,
		SourceKey: sourceKey,
		Count:     len(batch.Nodes),
	}}, len(batch.Nodes) > 0
}

// collectLinks emits LinkCollected for external links found in page HTML.
func (o *Orchestrator) collectLinks(html, pageURL string) []engine.Event {
	var events []engine.Event
	for _, link := range fetch.ExternalLinks(html, pageURL) {
		events = append(events, models.LinkCollected{
			RunID: o.state.RunID(), FromURL: pageURL, Link: link,
		})
	}
	return events
}

// sourceScraped computes the post-scrape bookkeeping event for a source.
func (o *Orchestrator) sourceScraped(src *models.Source, produced bool) engine.Event {
	consecutive := 0
	if !produced {
		consecutive = src.ConsecutiveEmpty + 1
	}
	return models.SourceScraped{
		CanonicalKey:     src.CanonicalKey,
		ScrapeCount:      src.ScrapeCount + 1,
		ConsecutiveEmpty: consecutive,
		LastScraped:      o.now(),
		ProducedSignals:  produced,
	}
}

// fetchFailed logs a failed fetch and wraps it into its event.
func (o *Orchestrator) fetchFailed(src *models.Source, url string, err error) []engine.Event {
	slog.Warn("Fetch failed", "url", url, "error", err)
	return []engine.Event{models.ContentFetchFailed{
		RunID:     o.state.RunID(),
		URL:       url,
		SourceKey: src.CanonicalKey,
		Reason:    err.Error(),
	}}
}

// spend checks then records a budget cost. Returns false without spending
// when the budget cannot cover it.
func (o *Orchestrator) spend(cost int64) bool {
	if !o.tracker.Has(cost) {
		return false
	}
	o.tracker.Spend(cost)
	return true
}

func (o *Orchestrator) workers() int {
	if o.deps.System.ScrapeWorkers > 0 {
		return o.deps.System.ScrapeWorkers
	}
	return 8
}
