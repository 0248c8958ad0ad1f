package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/fourthplaces/rootsignal/pkg/config"
	"github.com/fourthplaces/rootsignal/pkg/fetch"
	"github.com/fourthplaces/rootsignal/pkg/graph"
	"github.com/fourthplaces/rootsignal/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegion() *config.Region {
	return &config.Region{
		Slug:                "minneapolis",
		Name:                "Minneapolis, MN",
		CenterLat:           44.9778,
		CenterLng:           -93.2650,
		RadiusKm:            25,
		MaxWebQueriesPerRun: 10,
		Thresholds: config.DedupThresholds{
			CrossSource:  0.88,
			SameSource:   0.92,
			IntraRun:     0.90,
			ResponseLink: 0.80,
		},
	}
}

func testSystem() config.SystemConfig {
	return config.SystemConfig{ScrapeWorkers: 4, EmbeddingDims: 8}
}

func webSource(key, url string) *models.Source {
	return &models.Source{
		CanonicalKey:   key,
		CanonicalValue: url,
		Strategy:       models.StrategyWeb,
		Weight:         0.5,
		CadenceHours:   24,
		Discovery:      models.DiscoverySeed,
		Active:         true,
	}
}

// gatheringJSON is a canned extraction result with one gathering node.
const gatheringJSON = `{
	"nodes": [{
		"type": "gathering",
		"title": "Community dinner at Powderhorn Park",
		"summary": "Free community dinner, Saturday 6pm.",
		"sensitivity": "general",
		"confidence": 0.9,
		"is_firsthand": true,
		"audience_roles": ["residents"],
		"mentioned_actors": []
	}],
	"author_actors": [{"name": "Powderhorn Neighborhood Association", "kind": "organization", "url": null}]
}`

const dinnerVariantJSON = `{
	"nodes": [{
		"type": "gathering",
		"title": "Free dinner in Powderhorn this Saturday",
		"summary": "Neighborhood dinner gathering at the park, 6 in the evening.",
		"sensitivity": "general",
		"confidence": 0.85,
		"is_firsthand": true,
		"audience_roles": [],
		"mentioned_actors": []
	}]
}`

func newTestOrchestrator(t *testing.T, g *memGraph, fetcher *fakeFetcher, client *fakeLLM, embedder *fakeEmbedder, region *config.Region) *Orchestrator {
	t.Helper()
	orch, err := New(Deps{
		System:    testSystem(),
		Region:    region,
		Client:    client,
		Embedder:  embedder,
		Fetcher:   fetcher,
		Reader:    g,
		Projector: g,
		Log:       g,
		Clock:     func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	return orch
}

func TestRun_SinglePageOneSignal(t *testing.T) {
	g := newMemGraph()
	g.addSource(webSource("url:example.org/events", "https://example.org/events"))

	fetcher := newFakeFetcher()
	fetcher.pages["https://example.org/events"] = &fetch.Page{
		URL:      "https://example.org/events",
		Markdown: "Community dinner at Powderhorn Park, Saturday 6pm.",
	}

	client := newFakeLLM()
	client.responses["example.org/events"] = gatheringJSON

	orch := newTestOrchestrator(t, g, fetcher, client, newFakeEmbedder(), testRegion())
	stats, err := orch.Run(context.Background(), uuid.New().String())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.SignalsStored)
	assert.Equal(t, 1, stats.ByType[models.NodeGathering])
	assert.Len(t, g.eventsOfType(models.TypeSignalCreated), 1)
	assert.True(t, stats.ExtractionBalanced())

	// The author actor was observed and projected.
	actor, err := g.FindActor(context.Background(), "powderhorn neighborhood association")
	require.NoError(t, err)
	assert.NotNil(t, actor)
}

func TestRun_CrossSourceCorroboration(t *testing.T) {
	g := newMemGraph()
	g.addSource(webSource("url:a.org/events", "https://a.org/events"))
	g.addSource(webSource("url:b.org/calendar", "https://b.org/calendar"))

	fetcher := newFakeFetcher()
	fetcher.pages["https://a.org/events"] = &fetch.Page{
		URL: "https://a.org/events", Markdown: "Community dinner at Powderhorn Park, Saturday 6pm.",
	}
	fetcher.pages["https://b.org/calendar"] = &fetch.Page{
		URL: "https://b.org/calendar", Markdown: "This Saturday: free dinner at the park, 6 in the evening.",
	}

	client := newFakeLLM()
	client.responses["a.org/events"] = gatheringJSON
	client.responses["b.org/calendar"] = dinnerVariantJSON

	// Same embedding for both phrasings so the vector layer corroborates.
	embedder := newFakeEmbedder()
	shared := []float32{1, 0, 0, 0, 0, 0, 0, 0}
	embedder.vectors["Community dinner at Powderhorn Park\nFree community dinner, Saturday 6pm."] = shared
	embedder.vectors["Free dinner in Powderhorn this Saturday\nNeighborhood dinner gathering at the park, 6 in the evening."] = shared

	orch := newTestOrchestrator(t, g, fetcher, client, embedder, testRegion())
	stats, err := orch.Run(context.Background(), uuid.New().String())
	require.NoError(t, err)

	created := g.eventsOfType(models.TypeSignalCreated)
	corroborated := g.eventsOfType(models.TypeSignalCorroborated)
	require.Len(t, created, 1)
	require.Len(t, corroborated, 1)

	assert.Equal(t, 1, stats.SignalsStored)
	assert.Equal(t, 1, stats.SignalsDeduplicated)
	assert.True(t, stats.ExtractionBalanced())

	// Final graph state: one signal with evidence from both sources.
	var onlyID uuid.UUID
	for id := range g.signals {
		onlyID = id
	}
	assert.Equal(t, 2, g.diversityOf(onlyID))
}

func TestRun_SameSourceRefresh(t *testing.T) {
	// The same URL scheduled twice in one run with identical content: the
	// first pass creates the signal, the second is unchanged content.
	g := newMemGraph()
	g.addSource(webSource("url:example.org/events", "https://example.org/events"))
	second := webSource("url:alias/events", "https://example.org/events")
	g.addSource(second)

	fetcher := newFakeFetcher()
	fetcher.pages["https://example.org/events"] = &fetch.Page{
		URL: "https://example.org/events", Markdown: "Community dinner at Powderhorn Park, Saturday 6pm.",
	}

	client := newFakeLLM()
	client.responses["example.org/events"] = gatheringJSON

	orch := newTestOrchestrator(t, g, fetcher, client, newFakeEmbedder(), testRegion())
	stats, err := orch.Run(context.Background(), uuid.New().String())
	require.NoError(t, err)

	assert.Len(t, g.eventsOfType(models.TypeSignalCreated), 1)
	assert.Equal(t, 1, stats.ContentUnchanged)
	assert.Equal(t, 1, stats.SignalsStored)
}

func TestRun_BudgetCutoff(t *testing.T) {
	g := newMemGraph()
	fetcher := newFakeFetcher()
	client := newFakeLLM()

	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		url := "https://" + name + ".org/page"
		g.addSource(webSource("url:"+name+".org/page", url))
		fetcher.pages[url] = &fetch.Page{URL: url, Markdown: "News from " + name + " neighborhood group."}
		client.responses[name+".org/page"] = gatheringJSON
	}

	region := testRegion()
	// Three full page units: 3 × (1 fetch + 5 extraction) = 18 cents.
	region.DailyBudgetCents = 18

	// One worker makes the check-then-spend interleaving deterministic: the
	// overshoot bound is a single operation's cost.
	orch, err := New(Deps{
		System:    config.SystemConfig{ScrapeWorkers: 1, EmbeddingDims: 8},
		Region:    region,
		Client:    client,
		Embedder:  newFakeEmbedder(),
		Fetcher:   fetcher,
		Reader:    g,
		Projector: g,
		Log:       g,
		Clock:     func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)

	stats, err := orch.Run(context.Background(), uuid.New().String())
	require.NoError(t, err)

	assert.LessOrEqual(t, stats.SignalsExtracted, 3)
	assert.Equal(t, 0, stats.FetchesFailed)
	assert.LessOrEqual(t, stats.BudgetSpentCents, int64(18+5))
	assert.True(t, stats.ExtractionBalanced())
}

func TestRun_EmptyRegionBootstraps(t *testing.T) {
	g := newMemGraph()
	region := testRegion()
	region.Seeds = []config.SeedSource{
		{Value: "https://seed.org/news", Strategy: "web"},
		{Value: "minneapolis mutual aid", Strategy: "web_query"},
	}

	fetcher := newFakeFetcher()
	fetcher.pages["https://seed.org/news"] = &fetch.Page{URL: "https://seed.org/news", Markdown: "Nothing today."}

	orch := newTestOrchestrator(t, g, fetcher, newFakeLLM(), newFakeEmbedder(), region)
	stats, err := orch.Run(context.Background(), uuid.New().String())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.SourcesDiscovered)
	assert.Len(t, g.eventsOfType(models.TypeSourceDiscovered), 2)
	// Seeds were scheduled the same run via the cold-start boost.
	assert.Equal(t, 2, stats.SourcesScheduled)
	assert.Equal(t, 0, stats.SignalsStored)
}

func TestRun_ExpiryReaper(t *testing.T) {
	g := newMemGraph()
	expired := &graph.Signal{
		ID:   uuid.New(),
		Type: models.NodeGathering,
	}
	g.expiring = []*graph.Signal{expired}

	// A source so bootstrap skips seeding; its fetch fails harmlessly.
	g.addSource(webSource("url:x.org", "https://x.org"))

	orch := newTestOrchestrator(t, g, newFakeFetcher(), newFakeLLM(), newFakeEmbedder(), testRegion())
	stats, err := orch.Run(context.Background(), uuid.New().String())
	require.NoError(t, err)

	events := g.eventsOfType(models.TypeEntityExpired)
	require.Len(t, events, 1)
	assert.Equal(t, 1, stats.SignalsExpired)
	assert.Contains(t, string(events[0].Payload), "gathering past")
}

func TestRun_FetchFailureDoesNotFailRun(t *testing.T) {
	g := newMemGraph()
	g.addSource(webSource("url:down.org", "https://down.org"))

	fetcher := newFakeFetcher()
	// No canned page: the fetch errors.

	orch := newTestOrchestrator(t, g, fetcher, newFakeLLM(), newFakeEmbedder(), testRegion())
	stats, err := orch.Run(context.Background(), uuid.New().String())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.FetchesFailed)
	assert.Equal(t, 0, stats.SignalsStored)
}

func TestRun_CancellationDrainsCleanly(t *testing.T) {
	g := newMemGraph()
	g.addSource(webSource("url:x.org", "https://x.org"))

	fetcher := newFakeFetcher()
	fetcher.pages["https://x.org"] = &fetch.Page{URL: "https://x.org", Markdown: "content"}

	orch := newTestOrchestrator(t, g, fetcher, newFakeLLM(), newFakeEmbedder(), testRegion())
	orch.Cancel()

	stats, err := orch.Run(context.Background(), uuid.New().String())
	require.NoError(t, err)
	// Cancellation is not an error; the run finalizes with whatever it had.
	assert.Equal(t, 0, stats.SignalsStored)
}

func TestRun_SourceScrapeBookkeeping(t *testing.T) {
	g := newMemGraph()
	src := webSource("url:quiet.org", "https://quiet.org")
	src.ScrapeCount = 4
	src.ConsecutiveEmpty = 1
	g.addSource(src)

	fetcher := newFakeFetcher()
	fetcher.pages["https://quiet.org"] = &fetch.Page{URL: "https://quiet.org", Markdown: "no signals here"}

	orch := newTestOrchestrator(t, g, fetcher, newFakeLLM(), newFakeEmbedder(), testRegion())
	_, err := orch.Run(context.Background(), uuid.New().String())
	require.NoError(t, err)

	g.mu.Lock()
	updated := g.sources["url:quiet.org"]
	g.mu.Unlock()
	assert.Equal(t, 5, updated.ScrapeCount)
	assert.Equal(t, 2, updated.ConsecutiveEmpty, "empty scrape increments the backoff counter")
	require.NotNil(t, updated.LastScraped)
}
