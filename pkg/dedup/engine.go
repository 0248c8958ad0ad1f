// Package dedup classifies extracted signal nodes against the graph and the
// current run: four layers from cheap to expensive — blocklist, content
// hash, exact title, vector similarity.
package dedup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fourthplaces/rootsignal/pkg/config"
	"github.com/fourthplaces/rootsignal/pkg/extract"
	"github.com/fourthplaces/rootsignal/pkg/graph"
	"github.com/fourthplaces/rootsignal/pkg/llm"
	"github.com/fourthplaces/rootsignal/pkg/models"
	"github.com/google/uuid"
)

// sameSourceWindow is how recently a (url, hash) must have been seen for the
// content-hash layer to call it a same-source re-encounter.
const sameSourceWindow = 24 * time.Hour

// Reader is the graph query surface the engine needs. Satisfied by
// *graph.Reader.
type Reader interface {
	ContentHashSeen(ctx context.Context, url, hash string) (bool, time.Time, error)
	SignalsByURL(ctx context.Context, url string) ([]*graph.Signal, error)
	FindByTitlesAndTypes(ctx context.Context, pairs []graph.TitleType) (map[string]*graph.Signal, error)
	FindDuplicate(ctx context.Context, nodeType models.NodeType, embed []float32, bbox models.BoundingBox, threshold float64) (*graph.Signal, float64, error)
}

// VerdictKind classifies one node's fate.
type VerdictKind string

const (
	VerdictNew         VerdictKind = "new"
	VerdictSameSource  VerdictKind = "same_source"
	VerdictCrossSource VerdictKind = "cross_source"
	VerdictDropped     VerdictKind = "dropped"
)

// Verdict is the engine's decision for one extracted node.
type Verdict struct {
	Kind       VerdictKind
	Node       *models.SignalNode
	ExistingID uuid.UUID // set for same/cross source matches
	Similarity float64
	Reason     string // set for drops
	Embedding  []float32
}

// Engine runs the four dedup layers for a batch. One engine serves one run;
// the intra-run cache lives inside it.
type Engine struct {
	reader     Reader
	embedder   llm.Embedder
	thresholds config.DedupThresholds
	bbox       models.BoundingBox
	blocked    []string

	mu    sync.Mutex
	cache []cachedEmbedding
}

type cachedEmbedding struct {
	id        uuid.UUID
	nodeType  models.NodeType
	sourceURL string
	vec       []float32
}

// New creates a dedup engine for one run.
func New(reader Reader, embedder llm.Embedder, thresholds config.DedupThresholds, bbox models.BoundingBox, blockedPatterns []string) *Engine {
	return &Engine{
		reader:     reader,
		embedder:   embedder,
		thresholds: thresholds,
		bbox:       bbox,
		blocked:    blockedPatterns,
	}
}

// Classify runs every node of the batch through the layers and returns one
// verdict per node, in batch order.
func (e *Engine) Classify(ctx context.Context, batch *extract.Batch) ([]Verdict, error) {
	if len(batch.Nodes) == 0 {
		return nil, nil
	}

	// Batch the exact-title lookup across the whole batch up front.
	pairs := make([]graph.TitleType, 0, len(batch.Nodes))
	for _, n := range batch.Nodes {
		pairs = append(pairs, graph.TitleType{TitleKey: n.TitleKey(), Type: n.Type})
	}
	byTitle, err := e.reader.FindByTitlesAndTypes(ctx, pairs)
	if err != nil {
		return nil, fmt.Errorf("title lookup failed: %w", err)
	}

	verdicts := make([]Verdict, 0, len(batch.Nodes))
	for _, node := range batch.Nodes {
		verdicts = append(verdicts, e.classifyNode(ctx, node, batch, byTitle))
	}
	return verdicts, nil
}

func (e *Engine) classifyNode(ctx context.Context, node *models.SignalNode, batch *extract.Batch, byTitle map[string]*graph.Signal) Verdict {
	// Layer 1 — blocklist and PII.
	if reason := e.blockedReason(node, batch.SourceURL); reason != "" {
		return Verdict{Kind: VerdictDropped, Node: node, Reason: reason}
	}

	// Layer 2 — content hash: the same content from the same URL inside the
	// window refreshes whatever that URL already produced.
	if seen, at, err := e.reader.ContentHashSeen(ctx, batch.SourceURL, batch.ContentHash); err == nil && seen {
		if time.Since(at) < sameSourceWindow {
			if existing := e.matchByURL(ctx, node, batch.SourceURL); existing != nil {
				return Verdict{Kind: VerdictSameSource, Node: node, ExistingID: existing.ID}
			}
		}
	} else if err != nil {
		slog.Warn("Content-hash lookup failed, continuing to next layer", "error", err)
	}

	// Layer 3 — exact title + type.
	if existing, ok := byTitle[node.TitleKey()+"|"+string(node.Type)]; ok {
		if existing.SourceURL == batch.SourceURL {
			return Verdict{Kind: VerdictSameSource, Node: node, ExistingID: existing.ID}
		}
		return Verdict{Kind: VerdictCrossSource, Node: node, ExistingID: existing.ID, Similarity: 1.0}
	}

	// Layer 4 — vector similarity. An embedder failure rejects the node for
	// this run rather than risking a duplicate graph entry.
	vec, err := e.embedder.Embed(ctx, node.EmbeddingText())
	if err != nil {
		slog.Warn("Embedder failed, dropping node for this run",
			"title", node.Meta.Title, "error", err)
		return Verdict{Kind: VerdictDropped, Node: node, Reason: "embedder error: " + err.Error()}
	}

	// Intra-run first: duplicates within one run never reach the graph.
	if hit := e.cacheLookup(node.Type, vec); hit != nil {
		if hit.sourceURL == batch.SourceURL {
			return Verdict{Kind: VerdictSameSource, Node: node, ExistingID: hit.id, Embedding: vec}
		}
		sim := graph.Cosine(vec, hit.vec)
		return Verdict{Kind: VerdictCrossSource, Node: node, ExistingID: hit.id, Similarity: sim, Embedding: vec}
	}

	floor := e.thresholds.CrossSource
	if e.thresholds.SameSource < floor {
		floor = e.thresholds.SameSource
	}
	existing, sim, err := e.reader.FindDuplicate(ctx, node.Type, vec, e.bbox, floor)
	if err != nil {
		slog.Warn("Duplicate search failed, dropping node for this run",
			"title", node.Meta.Title, "error", err)
		return Verdict{Kind: VerdictDropped, Node: node, Reason: "duplicate search error: " + err.Error()}
	}
	if existing != nil {
		if existing.SourceURL == batch.SourceURL {
			if sim >= e.thresholds.SameSource {
				return Verdict{Kind: VerdictSameSource, Node: node, ExistingID: existing.ID, Similarity: sim, Embedding: vec}
			}
		} else if sim >= e.thresholds.CrossSource {
			return Verdict{Kind: VerdictCrossSource, Node: node, ExistingID: existing.ID, Similarity: sim, Embedding: vec}
		}
	}

	e.cacheStore(node, batch.SourceURL, vec)
	return Verdict{Kind: VerdictNew, Node: node, Embedding: vec}
}

// blockedReason applies layer 1: URL blocklist then PII density.
func (e *Engine) blockedReason(node *models.SignalNode, sourceURL string) string {
	lower := strings.ToLower(sourceURL)
	for _, pattern := range e.blocked {
		if pattern != "" && strings.Contains(lower, strings.ToLower(pattern)) {
			return "blocked source: " + pattern
		}
	}
	text := node.Meta.Title + "\n" + node.Meta.Summary
	if ExceedsPIIThreshold(text) {
		return "pii threshold exceeded"
	}
	return ""
}

// matchByURL finds which of the URL's existing live signals this node
// refreshes, by exact title key.
func (e *Engine) matchByURL(ctx context.Context, node *models.SignalNode, url string) *graph.Signal {
	existing, err := e.reader.SignalsByURL(ctx, url)
	if err != nil {
		slog.Warn("Signals-by-URL lookup failed", "url", url, "error", err)
		return nil
	}
	for _, s := range existing {
		if s.TitleKey == node.TitleKey() && s.Type == node.Type {
			return s
		}
	}
	return nil
}

func (e *Engine) cacheLookup(nodeType models.NodeType, vec []float32) *cachedEmbedding {
	e.mu.Lock()
	defer e.mu.Unlock()
	var best *cachedEmbedding
	var bestScore float64
	for i := range e.cache {
		c := &e.cache[i]
		if c.nodeType != nodeType {
			continue
		}
		if score := graph.Cosine(vec, c.vec); score >= e.thresholds.IntraRun && score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best
}

func (e *Engine) cacheStore(node *models.SignalNode, sourceURL string, vec []float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache = append(e.cache, cachedEmbedding{
		id:        node.Meta.ID,
		nodeType:  node.Type,
		sourceURL: sourceURL,
		vec:       vec,
	})
}
