package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fourthplaces/rootsignal/pkg/fetch"
	"github.com/fourthplaces/rootsignal/pkg/graph"
	"github.com/fourthplaces/rootsignal/pkg/models"
	"github.com/google/uuid"
)

// memGraph is an in-memory stand-in for the event log, projector, and
// reader: appended world events are applied to maps the reader serves.
type memGraph struct {
	mu       sync.Mutex
	seq      int64
	appended []*models.StoredEvent

	signals  map[uuid.UUID]*memSignal
	sources  map[string]*models.Source
	actors   map[string]*models.Actor
	expiring []*graph.Signal // canned expiry candidates
}

type memSignal struct {
	sig       *graph.Signal
	evidence  map[string]struct{} // source_url|hash
	diversity map[string]struct{} // distinct urls
}

func newMemGraph() *memGraph {
	return &memGraph{
		signals: make(map[uuid.UUID]*memSignal),
		sources: make(map[string]*models.Source),
		actors:  make(map[string]*models.Actor),
	}
}

// Append implements EventAppender.
func (g *memGraph) Append(_ context.Context, eventType string, payload any, runID string) (*models.StoredEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	ev := &models.StoredEvent{
		Seq:       g.seq,
		Timestamp: time.Now(),
		EventType: eventType,
		RunID:     runID,
		Payload:   data,
		SchemaV:   1,
	}
	g.appended = append(g.appended, ev)
	return ev, nil
}

// Project implements Projector over the in-memory maps.
func (g *memGraph) Project(_ context.Context, ev *models.StoredEvent) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch ev.EventType {
	case models.TypeSignalCreated:
		var payload models.SignalCreated
		if err := json.Unmarshal(ev.Payload, &payload); err != nil {
			return err
		}
		ms := &memSignal{
			sig: &graph.Signal{
				ID:          payload.NodeID,
				Type:        payload.NodeType,
				Title:       payload.Node.Meta.Title,
				TitleKey:    payload.Node.TitleKey(),
				Summary:     payload.Node.Meta.Summary,
				Sensitivity: payload.Node.Meta.Sensitivity,
				SourceURL:   payload.SourceURL,
				Location:    payload.Node.Meta.Location,
				Embedding:   payload.Embedding,
				ExtractedAt: payload.Node.Meta.ExtractedAt,
			},
			evidence:  map[string]struct{}{payload.SourceURL + "|" + payload.ContentHash: {}},
			diversity: map[string]struct{}{payload.SourceURL: {}},
		}
		g.signals[payload.NodeID] = ms
	case models.TypeSignalCorroborated:
		var payload models.SignalCorroborated
		if err := json.Unmarshal(ev.Payload, &payload); err != nil {
			return err
		}
		if ms, ok := g.signals[payload.ExistingID]; ok {
			ms.evidence[payload.SourceURL+"|"+payload.ContentHash] = struct{}{}
			ms.diversity[payload.SourceURL] = struct{}{}
		}
	case models.TypeEntityExpired:
		var payload models.EntityExpired
		if err := json.Unmarshal(ev.Payload, &payload); err != nil {
			return err
		}
		if ms, ok := g.signals[payload.SignalID]; ok {
			now := time.Now()
			ms.sig.ExpiredAt = &now
		}
	case models.TypeSourceDiscovered:
		var payload models.SourceDiscovered
		if err := json.Unmarshal(ev.Payload, &payload); err != nil {
			return err
		}
		if _, exists := g.sources[payload.Source.CanonicalKey]; !exists {
			src := payload.Source
			g.sources[src.CanonicalKey] = &src
		}
	case models.TypeSourceScraped:
		var payload models.SourceScraped
		if err := json.Unmarshal(ev.Payload, &payload); err != nil {
			return err
		}
		if src, ok := g.sources[payload.CanonicalKey]; ok {
			src.ScrapeCount = payload.ScrapeCount
			src.ConsecutiveEmpty = payload.ConsecutiveEmpty
			last := payload.LastScraped
			src.LastScraped = &last
		}
	case models.TypeSourceChanged:
		var payload models.SourceChanged
		if err := json.Unmarshal(ev.Payload, &payload); err != nil {
			return err
		}
		if src, ok := g.sources[payload.CanonicalKey]; ok {
			switch payload.Change {
			case models.SourceChangeWeight:
				src.Weight = payload.NewValue
			case models.SourceChangeCadence:
				src.CadenceHours = int(payload.NewValue)
			}
		}
	case models.TypeSourceDeactivated:
		var payload models.SourceDeactivated
		if err := json.Unmarshal(ev.Payload, &payload); err != nil {
			return err
		}
		if src, ok := g.sources[payload.CanonicalKey]; ok {
			src.Active = false
		}
	case models.TypeActorObserved:
		var payload models.ActorObserved
		if err := json.Unmarshal(ev.Payload, &payload); err != nil {
			return err
		}
		key := models.ActorNameKey(payload.Name)
		if _, exists := g.actors[key]; !exists {
			g.actors[key] = &models.Actor{Name: payload.Name, NameKey: key, Kind: payload.Kind}
		}
	}
	return nil
}

// --- GraphReader ---

func (g *memGraph) ContentHashSeen(_ context.Context, url, hash string) (bool, time.Time, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := url + "|" + hash
	for _, ms := range g.signals {
		if _, ok := ms.evidence[key]; ok {
			return true, time.Now().Add(-time.Hour), nil
		}
	}
	return false, time.Time{}, nil
}

func (g *memGraph) SignalsByURL(_ context.Context, url string) ([]*graph.Signal, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []*graph.Signal
	for _, ms := range g.signals {
		if ms.sig.SourceURL == url && ms.sig.ExpiredAt == nil {
			out = append(out, ms.sig)
		}
	}
	return out, nil
}

func (g *memGraph) FindByTitlesAndTypes(_ context.Context, pairs []graph.TitleType) (map[string]*graph.Signal, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make(map[string]*graph.Signal)
	for _, p := range pairs {
		for _, ms := range g.signals {
			if ms.sig.ExpiredAt == nil && ms.sig.TitleKey == p.TitleKey && ms.sig.Type == p.Type {
				out[p.TitleKey+"|"+string(p.Type)] = ms.sig
			}
		}
	}
	return out, nil
}

func (g *memGraph) FindDuplicate(_ context.Context, nodeType models.NodeType, embed []float32, _ models.BoundingBox, threshold float64) (*graph.Signal, float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var best *graph.Signal
	var bestScore float64
	for _, ms := range g.signals {
		if ms.sig.ExpiredAt != nil || ms.sig.Type != nodeType {
			continue
		}
		if score := graph.Cosine(embed, ms.sig.Embedding); score >= threshold && score > bestScore {
			best = ms.sig
			bestScore = score
		}
	}
	return best, bestScore, nil
}

func (g *memGraph) ListActiveSources(context.Context) ([]*models.Source, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []*models.Source
	for _, src := range g.sources {
		if src.Active {
			copied := *src
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (g *memGraph) CountLiveSignals(context.Context) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	count := 0
	for _, ms := range g.signals {
		if ms.sig.ExpiredAt == nil {
			count++
		}
	}
	return count, nil
}

func (g *memGraph) FindExpiredCandidates(context.Context, time.Time, int, int) ([]*graph.Signal, error) {
	return g.expiring, nil
}

func (g *memGraph) LiveSignalsOfTypes(_ context.Context, types ...models.NodeType) ([]*graph.Signal, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	want := make(map[models.NodeType]bool)
	for _, t := range types {
		want[t] = true
	}
	var out []*graph.Signal
	for _, ms := range g.signals {
		if ms.sig.ExpiredAt == nil && want[ms.sig.Type] {
			out = append(out, ms.sig)
		}
	}
	return out, nil
}

func (g *memGraph) FindActor(_ context.Context, nameKey string) (*models.Actor, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.actors[nameKey], nil
}

// helpers

func (g *memGraph) addSource(src *models.Source) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sources[src.CanonicalKey] = src
}

func (g *memGraph) eventsOfType(eventType string) []*models.StoredEvent {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []*models.StoredEvent
	for _, ev := range g.appended {
		if ev.EventType == eventType {
			out = append(out, ev)
		}
	}
	return out
}

func (g *memGraph) diversityOf(id uuid.UUID) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if ms, ok := g.signals[id]; ok {
		return len(ms.diversity)
	}
	return 0
}

// fakeFetcher serves canned pages and feeds.
type fakeFetcher struct {
	pages map[string]*fetch.Page
	fails map[string]error
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{pages: make(map[string]*fetch.Page), fails: make(map[string]error)}
}

func (f *fakeFetcher) Page(_ context.Context, url string) (*fetch.Page, error) {
	if err, ok := f.fails[url]; ok {
		return nil, err
	}
	if page, ok := f.pages[url]; ok {
		return page, nil
	}
	return nil, fmt.Errorf("no canned page for %s", url)
}

func (f *fakeFetcher) Feed(context.Context, string) ([]fetch.FeedItem, error) {
	return nil, nil
}

func (f *fakeFetcher) Posts(context.Context, string, string, int) ([]fetch.Post, error) {
	return nil, nil
}

func (f *fakeFetcher) Search(context.Context, string) ([]fetch.SearchResult, error) {
	return nil, nil
}

func (f *fakeFetcher) SearchTopics(context.Context, string, []string, int) ([]fetch.Post, error) {
	return nil, nil
}

func (f *fakeFetcher) SiteSearch(context.Context, string, int) ([]fetch.SearchResult, error) {
	return nil, nil
}

// fakeLLM answers ExtractInto with canned JSON keyed by a substring of the
// user prompt; unmatched prompts yield an empty result.
type fakeLLM struct {
	responses map[string]string // substring → JSON
}

func newFakeLLM() *fakeLLM {
	return &fakeLLM{responses: make(map[string]string)}
}

func (f *fakeLLM) Chat(context.Context, string, string) (string, error) {
	return "", nil
}

func (f *fakeLLM) ExtractInto(_ context.Context, _ string, user string, out any) error {
	for substr, response := range f.responses {
		if substr != "" && strings.Contains(user, substr) {
			return json.Unmarshal([]byte(response), out)
		}
	}
	return json.Unmarshal([]byte(`{}`), out)
}

// fakeEmbedder maps texts to canned vectors; unknown texts get a vector
// derived from length so unrelated texts rarely collide.
type fakeEmbedder struct {
	vectors map[string][]float32
}

func newFakeEmbedder() *fakeEmbedder {
	return &fakeEmbedder{vectors: make(map[string][]float32)}
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	v := make([]float32, 8)
	v[len(text)%8] = 1
	return v, nil
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, _ := f.Embed(ctx, t)
		out[i] = v
	}
	return out, nil
}

func (f *fakeEmbedder) Dims() int { return 8 }
