package pipeline

import (
	"sync"

	"github.com/fourthplaces/rootsignal/pkg/engine"
	"github.com/fourthplaces/rootsignal/pkg/extract"
	"github.com/fourthplaces/rootsignal/pkg/models"
	"github.com/fourthplaces/rootsignal/pkg/schedule"
	"github.com/google/uuid"
)

// State is the mutable per-run bookkeeping. Handlers read through the
// accessor methods (read lock); only the reducer and the stash protocol
// write. Heavy payloads — extracted batches, pending nodes — travel through
// the stash maps keyed by URL or node UUID rather than through events.
type State struct {
	mu sync.RWMutex

	runID string
	stats models.RunStats

	// Scheduling
	plan *schedule.Plan

	// Stash: extracted batches keyed by URL, popped by the dedup handler.
	batches map[string]*extract.Batch

	// URL → source canonical key for events that only carry a URL.
	urlToSource map[string]string

	// Created signals this run, with the embeddings the dedup engine
	// computed, for the synthesis pass.
	created map[uuid.UUID]createdSignal

	// Collected external links with occurrence counts, for expansion.
	links map[string]int

	// Mid-run discovery output.
	expansionQueries []string
	socialTopics     []SocialTopic

	// Actors observed this run, for the enrichment phase.
	actors map[string]actorContext

	// Search providers that failed this run; later phases skip them.
	queryErrors map[string]string

	// Per-source signal production this run, for metrics updates.
	sourceSignals map[string]int

	// (url, hash) pairs already processed this run. The graph-backed check
	// only covers prior runs; within a run evidence lands after dedup, so
	// repeats are caught here.
	seenContent map[string]struct{}
}

type createdSignal struct {
	NodeType  models.NodeType
	Embedding []float32
	Title     string
}

// SocialTopic is one proposed topic search.
type SocialTopic struct {
	Platform string
	Topic    string
}

type actorContext struct {
	Name     string
	Kind     string
	URL      string
	SignalID uuid.UUID
	Role     string
}

// NewState creates state for one run.
func NewState(runID string) *State {
	return &State{
		runID:         runID,
		stats:         models.NewRunStats(),
		batches:       make(map[string]*extract.Batch),
		urlToSource:   make(map[string]string),
		created:       make(map[uuid.UUID]createdSignal),
		links:         make(map[string]int),
		actors:        make(map[string]actorContext),
		queryErrors:   make(map[string]string),
		sourceSignals: make(map[string]int),
		seenContent:   make(map[string]struct{}),
	}
}

// MarkContentSeen records a processed (url, hash) pair and reports whether
// it had been seen earlier this run.
func (s *State) MarkContentSeen(url, hash string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := url + "|" + hash
	if _, seen := s.seenContent[key]; seen {
		return true
	}
	s.seenContent[key] = struct{}{}
	return false
}

// RunID returns the run identifier.
func (s *State) RunID() string { return s.runID }

// Stats returns a copy of the current run stats.
func (s *State) Stats() models.RunStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := s.stats
	stats.ByType = make(map[models.NodeType]int, len(s.stats.ByType))
	for k, v := range s.stats.ByType {
		stats.ByType[k] = v
	}
	return stats
}

// SetBudgetSpent records the final budget figure into stats.
func (s *State) SetBudgetSpent(cents int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.BudgetSpentCents = cents
}

// StashPlan stores the scheduler's plan.
func (s *State) StashPlan(p *schedule.Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan = p
	s.stats.SourcesScheduled = len(p.Sources)
	for key, src := range p.Sources {
		s.urlToSource[src.CanonicalValue] = key
	}
}

// Plan returns the stashed scheduling plan, nil before scheduling.
func (s *State) Plan() *schedule.Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plan
}

// StashBatch stores an extracted batch before SignalsExtracted is emitted.
func (s *State) StashBatch(url string, batch *extract.Batch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches[url] = batch
}

// PopBatch removes and returns the batch stashed under url.
func (s *State) PopBatch(url string) *extract.Batch {
	s.mu.Lock()
	defer s.mu.Unlock()
	batch := s.batches[url]
	delete(s.batches, url)
	return batch
}

// SourceKeyForURL resolves which scheduled source produced a URL.
func (s *State) SourceKeyForURL(url string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.urlToSource[url]
}

// RecordCreated remembers a created signal and its embedding for synthesis.
func (s *State) RecordCreated(id uuid.UUID, nodeType models.NodeType, title string, embedding []float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created[id] = createdSignal{NodeType: nodeType, Embedding: embedding, Title: title}
}

// CreatedSignals returns the IDs of signals created this run.
func (s *State) CreatedSignals() map[uuid.UUID]models.NodeType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[uuid.UUID]models.NodeType, len(s.created))
	for id, c := range s.created {
		out[id] = c.NodeType
	}
	return out
}

// EmbeddingFor returns the dedup embedding computed for a created signal.
func (s *State) EmbeddingFor(id uuid.UUID) []float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.created[id].Embedding
}

// Links returns collected external links with their occurrence counts.
func (s *State) Links() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int, len(s.links))
	for k, v := range s.links {
		out[k] = v
	}
	return out
}

// ExpansionQueries returns proposed queries in proposal order.
func (s *State) ExpansionQueries() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.expansionQueries...)
}

// SocialTopics returns proposed topic searches in proposal order.
func (s *State) SocialTopics() []SocialTopic {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]SocialTopic(nil), s.socialTopics...)
}

// StashActor records an actor for the enrichment phase.
func (s *State) StashActor(name, kind, url string, signalID uuid.UUID, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := models.ActorNameKey(name)
	if key == "" {
		return
	}
	if _, exists := s.actors[key]; !exists {
		s.actors[key] = actorContext{Name: name, Kind: kind, URL: url, SignalID: signalID, Role: role}
	}
}

// RecordQueryError marks a search provider as failing for this run.
func (s *State) RecordQueryError(provider, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queryErrors[provider] = reason
}

// QueryErrored reports whether a provider already failed this run.
func (s *State) QueryErrored(provider string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, failed := s.queryErrors[provider]
	return failed
}

// SourceSignalCounts returns per-source signal production this run.
func (s *State) SourceSignalCounts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int, len(s.sourceSignals))
	for k, v := range s.sourceSignals {
		out[k] = v
	}
	return out
}

// Reducer folds every emitted event into State. It runs synchronously on
// emit, before handlers observe the event.
type Reducer struct {
	state *State
}

// NewReducer creates the reducer over state.
func NewReducer(state *State) *Reducer {
	return &Reducer{state: state}
}

// Apply implements engine.Reducer.
func (r *Reducer) Apply(ev engine.Event) {
	s := r.state
	s.mu.Lock()
	defer s.mu.Unlock()

	switch e := ev.(type) {
	case models.ContentFetched:
		s.stats.PagesFetched++
		if e.SourceKey != "" {
			s.urlToSource[e.URL] = e.SourceKey
		}
	case models.ContentFetchFailed:
		s.stats.FetchesFailed++
	case models.ContentUnchanged:
		s.stats.ContentUnchanged++
	case models.SignalsExtracted:
		s.stats.SignalsExtracted += e.Count
		if e.SourceKey != "" {
			s.urlToSource[e.URL] = e.SourceKey
		}
	case models.NewSignalAccepted:
		s.stats.SignalsStored++
		s.stats.ByType[e.NodeType]++
		if key, ok := s.urlToSource[e.SourceURL]; ok {
			s.sourceSignals[key]++
		}
	case models.SameSourceReencountered:
		s.stats.SignalsDeduplicated++
	case models.CrossSourceMatchDetected:
		s.stats.SignalsDeduplicated++
		if key, ok := s.urlToSource[e.SourceURL]; ok {
			s.sourceSignals[key]++
		}
	case models.SignalDropped:
		s.stats.SignalsDropped++
	case models.EntityExpired:
		s.stats.SignalsExpired++
	case models.LinkCollected:
		s.links[e.Link]++
		s.stats.LinksCollected++
	case models.SourceDiscovered:
		s.stats.SourcesDiscovered++
	case models.SourceDeactivated:
		s.stats.SourcesDeactivated++
	case models.ResponseLinked:
		s.stats.ResponsesLinked++
	case models.ExpansionQueryProposed:
		s.expansionQueries = append(s.expansionQueries, e.Query)
	case models.SocialTopicProposed:
		s.socialTopics = append(s.socialTopics, SocialTopic{Platform: e.Platform, Topic: e.Topic})
	}
}
