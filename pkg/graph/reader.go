package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/fourthplaces/rootsignal/ent"
	"github.com/fourthplaces/rootsignal/ent/actor"
	"github.com/fourthplaces/rootsignal/ent/evidence"
	"github.com/fourthplaces/rootsignal/ent/signal"
	"github.com/fourthplaces/rootsignal/ent/source"
	"github.com/fourthplaces/rootsignal/pkg/models"
	"github.com/google/uuid"
)

// Reader serves the read-only graph queries the pipeline needs: dedup
// lookups, source lists, actor lookups, and expiry candidates.
type Reader struct {
	client *ent.Client
	region string
}

// NewReader creates a reader scoped to one region.
func NewReader(client *ent.Client, region string) *Reader {
	return &Reader{client: client, region: region}
}

// ContentHashSeen reports whether evidence already exists for (url, hash)
// and, if so, when it was retrieved.
func (r *Reader) ContentHashSeen(ctx context.Context, url, hash string) (bool, time.Time, error) {
	row, err := r.client.Evidence.Query().
		Where(
			evidence.SourceURLEQ(url),
			evidence.ContentHashEQ(hash),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return false, time.Time{}, nil
	}
	if err != nil {
		return false, time.Time{}, fmt.Errorf("failed to check content hash: %w", err)
	}
	return true, row.RetrievedAt, nil
}

// SignalsByURL returns live signals first sourced from the given URL.
func (r *Reader) SignalsByURL(ctx context.Context, url string) ([]*Signal, error) {
	rows, err := r.client.Signal.Query().
		Where(
			signal.RegionEQ(r.region),
			signal.SourceURLEQ(url),
			signal.ExpiredAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query signals by URL: %w", err)
	}
	return signalsFromRows(rows)
}

// SignalByID loads one signal regardless of expiry.
func (r *Reader) SignalByID(ctx context.Context, id uuid.UUID) (*Signal, error) {
	row, err := r.client.Signal.Query().
		Where(signal.IDEQ(id.String())).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load signal %s: %w", id, err)
	}
	return signalFromRow(row)
}

// TitleType is one exact-title dedup lookup key.
type TitleType struct {
	TitleKey string
	Type     models.NodeType
}

// FindByTitlesAndTypes batch-looks-up live signals matching any of the
// (lower(title), type) pairs. Results are keyed "titlekey|type".
func (r *Reader) FindByTitlesAndTypes(ctx context.Context, pairs []TitleType) (map[string]*Signal, error) {
	if len(pairs) == 0 {
		return map[string]*Signal{}, nil
	}
	keys := make([]string, 0, len(pairs))
	for _, p := range pairs {
		keys = append(keys, p.TitleKey)
	}

	rows, err := r.client.Signal.Query().
		Where(
			signal.RegionEQ(r.region),
			signal.TitleKeyIn(keys...),
			signal.ExpiredAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to batch-lookup titles: %w", err)
	}

	want := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		want[p.TitleKey+"|"+string(p.Type)] = struct{}{}
	}
	out := make(map[string]*Signal)
	for _, row := range rows {
		key := row.TitleKey + "|" + string(row.NodeType)
		if _, ok := want[key]; !ok {
			continue
		}
		s, err := signalFromRow(row)
		if err != nil {
			return nil, err
		}
		// First match wins; the query sets no order, so which of several rows
		// with the same key is kept is not defined.
		if _, taken := out[key]; !taken {
			out[key] = s
		}
	}
	return out, nil
}

// FindDuplicate searches live signals of the same variant within the
// bounding box, plus those with no location, for the nearest embedding
// neighbor at or above threshold. Returns nil when nothing clears the bar.
func (r *Reader) FindDuplicate(ctx context.Context, nodeType models.NodeType, embed []float32, bbox models.BoundingBox, threshold float64) (*Signal, float64, error) {
	rows, err := r.client.Signal.Query().
		Where(
			signal.RegionEQ(r.region),
			signal.NodeTypeEQ(signal.NodeType(nodeType)),
			signal.ExpiredAtIsNil(),
			signal.Or(
				signal.LatIsNil(),
				signal.And(
					signal.LatGTE(bbox.MinLat),
					signal.LatLTE(bbox.MaxLat),
					signal.LngGTE(bbox.MinLng),
					signal.LngLTE(bbox.MaxLng),
				),
			),
		).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query duplicate candidates: %w", err)
	}

	var best *ent.Signal
	var bestScore float64
	for _, row := range rows {
		score := Cosine(embed, row.Embedding)
		if score >= threshold && score > bestScore {
			best = row
			bestScore = score
		}
	}
	if best == nil {
		return nil, 0, nil
	}
	s, err := signalFromRow(best)
	if err != nil {
		return nil, 0, err
	}
	return s, bestScore, nil
}

// ListActiveSources returns every active source for the region.
func (r *Reader) ListActiveSources(ctx context.Context) ([]*models.Source, error) {
	rows, err := r.client.Source.Query().
		Where(
			source.RegionEQ(r.region),
			source.ActiveEQ(true),
		).
		Order(ent.Asc(source.FieldCanonicalKey)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active sources: %w", err)
	}

	out := make([]*models.Source, len(rows))
	for i, row := range rows {
		out[i] = sourceFromRow(row)
	}
	return out, nil
}

// FindActor returns the actor with the given normalized name, or nil.
func (r *Reader) FindActor(ctx context.Context, nameKey string) (*models.Actor, error) {
	row, err := r.client.Actor.Query().
		Where(
			actor.RegionEQ(r.region),
			actor.NameKeyEQ(nameKey),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find actor %q: %w", nameKey, err)
	}
	return actorFromRow(row), nil
}

// SignalsForActor returns live signals authored by the actor.
func (r *Reader) SignalsForActor(ctx context.Context, actorID string) ([]*Signal, error) {
	rows, err := r.client.Actor.Query().
		Where(actor.IDEQ(actorID)).
		QueryAuthored().
		Where(signal.ExpiredAtIsNil()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list signals for actor %s: %w", actorID, err)
	}
	return signalsFromRows(rows)
}

// FindExpiredCandidates returns live signals that should be reaped at now:
// gatherings whose end (or start, when open-ended) is more than graceDays
// past, and any signal not confirmed active for staleDays.
func (r *Reader) FindExpiredCandidates(ctx context.Context, now time.Time, graceDays, staleDays int) ([]*Signal, error) {
	rows, err := r.client.Signal.Query().
		Where(
			signal.RegionEQ(r.region),
			signal.ExpiredAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan expiry candidates: %w", err)
	}

	grace := time.Duration(graceDays) * 24 * time.Hour
	stale := time.Duration(staleDays) * 24 * time.Hour
	var out []*Signal
	for _, row := range rows {
		s, err := signalFromRow(row)
		if err != nil {
			return nil, err
		}
		if models.NodeType(row.NodeType) == models.NodeGathering {
			if end, ok := gatheringEnd(row.Variant); ok && now.Sub(end) > grace {
				out = append(out, s)
				continue
			}
		}
		if now.Sub(row.LastConfirmedActive) > stale {
			out = append(out, s)
		}
	}
	return out, nil
}

// gatheringEnd extracts ends_at (falling back to starts_at) from a stored
// gathering variant map.
func gatheringEnd(variant map[string]interface{}) (time.Time, bool) {
	for _, key := range []string{"ends_at", "starts_at"} {
		raw, ok := variant[key]
		if !ok || raw == nil {
			continue
		}
		str, ok := raw.(string)
		if !ok {
			continue
		}
		t, err := time.Parse(time.RFC3339, str)
		if err != nil {
			continue
		}
		return t, true
	}
	return time.Time{}, false
}

// CountLiveSignals returns the number of non-expired signals in the region.
func (r *Reader) CountLiveSignals(ctx context.Context) (int, error) {
	n, err := r.client.Signal.Query().
		Where(
			signal.RegionEQ(r.region),
			signal.ExpiredAtIsNil(),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count live signals: %w", err)
	}
	return n, nil
}

// LiveSignalsOfTypes returns live signals of the given variants, embeddings
// included, for synthesis passes.
func (r *Reader) LiveSignalsOfTypes(ctx context.Context, types ...models.NodeType) ([]*Signal, error) {
	entTypes := make([]signal.NodeType, len(types))
	for i, t := range types {
		entTypes[i] = signal.NodeType(t)
	}
	rows, err := r.client.Signal.Query().
		Where(
			signal.RegionEQ(r.region),
			signal.NodeTypeIn(entTypes...),
			signal.ExpiredAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list live signals: %w", err)
	}
	return signalsFromRows(rows)
}

func signalsFromRows(rows []*ent.Signal) ([]*Signal, error) {
	out := make([]*Signal, len(rows))
	for i, row := range rows {
		s, err := signalFromRow(row)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func sourceFromRow(row *ent.Source) *models.Source {
	s := &models.Source{
		CanonicalKey:        row.CanonicalKey,
		CanonicalValue:      row.CanonicalValue,
		Strategy:            models.SourceStrategy(row.Strategy),
		Platform:            row.Platform,
		Weight:              row.Weight,
		CadenceHours:        row.CadenceHours,
		ConsecutiveEmpty:    row.ConsecutiveEmptyRuns,
		ScrapeCount:         row.ScrapeCount,
		SignalsProduced:     row.SignalsProduced,
		SignalsCorroborated: row.SignalsCorroborated,
		TensionsProduced:    row.TensionsProduced,
		LastScraped:         row.LastScraped,
		LastProducedSignal:  row.LastProducedSignal,
		QualityPenalty:      row.QualityPenalty,
		Discovery:           models.DiscoveryMethod(row.DiscoveryMethod),
		Active:              row.Active,
	}
	if row.Lat != nil && row.Lng != nil {
		s.Location = &models.GeoPoint{Lat: *row.Lat, Lng: *row.Lng}
	}
	return s
}

func actorFromRow(row *ent.Actor) *models.Actor {
	a := &models.Actor{
		ID:           row.ID,
		Name:         row.Name,
		NameKey:      row.NameKey,
		CanonicalURL: row.CanonicalURL,
		Kind:         row.Kind,
		SignalCount:  row.SignalCount,
		FirstSeen:    row.FirstSeen,
		LastSeen:     row.LastSeen,
	}
	if row.Lat != nil && row.Lng != nil {
		a.Location = &models.GeoPoint{Lat: *row.Lat, Lng: *row.Lng}
	}
	return a
}
