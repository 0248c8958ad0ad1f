package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/fourthplaces/rootsignal/ent"
	"github.com/fourthplaces/rootsignal/ent/actor"
	"github.com/fourthplaces/rootsignal/ent/evidence"
	"github.com/fourthplaces/rootsignal/ent/response"
	"github.com/fourthplaces/rootsignal/ent/signal"
	"github.com/fourthplaces/rootsignal/ent/source"
	"github.com/fourthplaces/rootsignal/pkg/models"
	"github.com/google/uuid"
)

// Projector applies stored events to the graph. Mutations are upsert-style
// keyed by stable IDs: projecting the same event twice leaves the graph in
// the same state as projecting it once, and replaying the whole log from a
// clean graph reproduces the live one.
type Projector struct {
	client *ent.Client
	region string
}

// NewProjector creates a projector for one region's deployment.
func NewProjector(client *ent.Client, region string) *Projector {
	return &Projector{client: client, region: region}
}

// Project applies one stored event. Unknown event types are ignored so old
// logs survive schema growth.
func (p *Projector) Project(ctx context.Context, ev *models.StoredEvent) error {
	switch ev.EventType {
	case models.TypeSignalCreated:
		var payload models.SignalCreated
		if err := json.Unmarshal(ev.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode %s at seq %d: %w", ev.EventType, ev.Seq, err)
		}
		return p.applySignalCreated(ctx, &payload, ev.Timestamp)
	case models.TypeSignalCorroborated:
		var payload models.SignalCorroborated
		if err := json.Unmarshal(ev.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode %s at seq %d: %w", ev.EventType, ev.Seq, err)
		}
		return p.applySignalCorroborated(ctx, &payload, ev.Timestamp)
	case models.TypeFreshnessRecorded:
		var payload models.FreshnessRecorded
		if err := json.Unmarshal(ev.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode %s at seq %d: %w", ev.EventType, ev.Seq, err)
		}
		return p.applyFreshnessRecorded(ctx, &payload)
	case models.TypeSeveritySet:
		var payload models.SeveritySet
		if err := json.Unmarshal(ev.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode %s at seq %d: %w", ev.EventType, ev.Seq, err)
		}
		return p.applySeveritySet(ctx, &payload)
	case models.TypeEntityExpired:
		var payload models.EntityExpired
		if err := json.Unmarshal(ev.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode %s at seq %d: %w", ev.EventType, ev.Seq, err)
		}
		return p.applyEntityExpired(ctx, &payload, ev.Timestamp)
	case models.TypeSourceDiscovered:
		var payload models.SourceDiscovered
		if err := json.Unmarshal(ev.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode %s at seq %d: %w", ev.EventType, ev.Seq, err)
		}
		return p.applySourceDiscovered(ctx, &payload)
	case models.TypeSourceChanged:
		var payload models.SourceChanged
		if err := json.Unmarshal(ev.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode %s at seq %d: %w", ev.EventType, ev.Seq, err)
		}
		return p.applySourceChanged(ctx, &payload)
	case models.TypeSourceScraped:
		var payload models.SourceScraped
		if err := json.Unmarshal(ev.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode %s at seq %d: %w", ev.EventType, ev.Seq, err)
		}
		return p.applySourceScraped(ctx, &payload)
	case models.TypeSourceDeactivated:
		var payload models.SourceDeactivated
		if err := json.Unmarshal(ev.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode %s at seq %d: %w", ev.EventType, ev.Seq, err)
		}
		return p.applySourceDeactivated(ctx, &payload)
	case models.TypeResponseLinked:
		var payload models.ResponseLinked
		if err := json.Unmarshal(ev.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode %s at seq %d: %w", ev.EventType, ev.Seq, err)
		}
		return p.applyResponseLinked(ctx, &payload)
	case models.TypeActorObserved:
		var payload models.ActorObserved
		if err := json.Unmarshal(ev.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode %s at seq %d: %w", ev.EventType, ev.Seq, err)
		}
		return p.applyActorObserved(ctx, &payload, ev.Timestamp)
	default:
		slog.Debug("Skipping non-world event during projection",
			"event_type", ev.EventType, "seq", ev.Seq)
		return nil
	}
}

func (p *Projector) applySignalCreated(ctx context.Context, ev *models.SignalCreated, ts time.Time) error {
	exists, err := p.client.Signal.Query().
		Where(signal.IDEQ(ev.NodeID.String())).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check signal %s: %w", ev.NodeID, err)
	}

	if !exists {
		n := &ev.Node
		variant, err := variantMap(variantOf(n))
		if err != nil {
			return err
		}

		create := p.client.Signal.Create().
			SetID(ev.NodeID.String()).
			SetNodeType(signal.NodeType(ev.NodeType)).
			SetRegion(p.region).
			SetTitle(n.Meta.Title).
			SetTitleKey(n.TitleKey()).
			SetSummary(n.Meta.Summary).
			SetSensitivity(signal.Sensitivity(n.Meta.Sensitivity)).
			SetConfidence(n.Meta.Confidence).
			SetFreshnessScore(n.Meta.Freshness).
			SetCorroborationCount(0).
			SetLocationName(n.Meta.LocationName).
			SetSourceURL(ev.SourceURL).
			SetExtractedAt(n.Meta.ExtractedAt).
			SetLastConfirmedActive(ts).
			SetAudienceRoles(n.Meta.AudienceRoles).
			SetSourceDiversity(1).
			SetExternalRatio(n.Meta.ExternalRatio).
			SetCauseHeat(n.Meta.CauseHeat).
			SetMentionedActors(n.Meta.MentionedActors).
			SetVariant(variant)
		if len(ev.Embedding) > 0 {
			create = create.SetEmbedding(ev.Embedding)
		}
		if n.Meta.Location != nil {
			create = create.
				SetLat(n.Meta.Location.Lat).
				SetLng(n.Meta.Location.Lng).
				SetGeoPrecision(signal.GeoPrecision(n.Meta.Location.Precision))
		}
		if n.Type == models.NodeNotice && n.Notice != nil {
			create = create.SetSeverity(signal.Severity(n.Notice.Severity))
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("failed to create signal %s: %w", ev.NodeID, err)
		}

		// Source bookkeeping only on first projection so replays stay
		// idempotent.
		if err := p.recordSourceProduced(ctx, ev.SourceKey, ev.NodeType, ts); err != nil {
			return err
		}
	}

	_, err = p.attachEvidence(ctx, ev.NodeID, evidenceInput{
		SourceURL:   ev.SourceURL,
		ContentHash: ev.ContentHash,
		Snippet:     ev.Snippet,
		Relevance:   1.0,
		Confidence:  ev.Node.Meta.Confidence,
		ChannelType: ev.ChannelType,
		RetrievedAt: ts,
	})
	return err
}

func (p *Projector) applySignalCorroborated(ctx context.Context, ev *models.SignalCorroborated, ts time.Time) error {
	linkedNew, err := p.attachEvidence(ctx, ev.ExistingID, evidenceInput{
		SourceURL:   ev.SourceURL,
		ContentHash: ev.ContentHash,
		Snippet:     ev.Snippet,
		Relevance:   ev.Similarity,
		Confidence:  ev.Similarity,
		ChannelType: ev.ChannelType,
		RetrievedAt: ts,
	})
	if err != nil {
		return err
	}
	// Counter bump only when the edge was actually new, so replays and
	// duplicate deliveries converge.
	if !linkedNew {
		return nil
	}
	return p.recordSourceCorroborated(ctx, ev.SourceKey)
}

type evidenceInput struct {
	SourceURL   string
	ContentHash string
	Snippet     string
	Relevance   float64
	Confidence  float64
	ChannelType string
	RetrievedAt time.Time
}

// attachEvidence ensures the (url, hash) evidence row exists, links it to
// the signal, and recomputes the signal's diversity counters from its
// evidence set. Recomputing rather than incrementing keeps double
// projection harmless. Returns whether the signal↔evidence link was newly
// created.
func (p *Projector) attachEvidence(ctx context.Context, signalID uuid.UUID, in evidenceInput) (bool, error) {
	ev, err := p.client.Evidence.Query().
		Where(
			evidence.SourceURLEQ(in.SourceURL),
			evidence.ContentHashEQ(in.ContentHash),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		ev, err = p.client.Evidence.Create().
			SetID(uuid.New().String()).
			SetSourceURL(in.SourceURL).
			SetContentHash(in.ContentHash).
			SetRetrievedAt(in.RetrievedAt).
			SetSnippet(in.Snippet).
			SetRelevance(in.Relevance).
			SetConfidence(in.Confidence).
			SetChannelType(in.ChannelType).
			Save(ctx)
	}
	if err != nil {
		return false, fmt.Errorf("failed to upsert evidence (%s, %s): %w", in.SourceURL, in.ContentHash, err)
	}

	linked, err := p.client.Signal.Query().
		Where(signal.IDEQ(signalID.String())).
		QueryEvidence().
		Where(evidence.IDEQ(ev.ID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check evidence link for signal %s: %w", signalID, err)
	}
	if !linked {
		if err := p.client.Signal.UpdateOneID(signalID.String()).
			AddEvidence(ev).
			Exec(ctx); err != nil {
			return false, fmt.Errorf("failed to link evidence to signal %s: %w", signalID, err)
		}
	}

	return !linked, p.recomputeDiversity(ctx, signalID)
}

// recomputeDiversity derives source_diversity and corroboration_count from
// the signal's evidence edges: diversity is the count of distinct evidencing
// URLs, corroboration is cross-source confirmations (diversity - 1, at
// least 0).
func (p *Projector) recomputeDiversity(ctx context.Context, signalID uuid.UUID) error {
	urls, err := p.client.Signal.Query().
		Where(signal.IDEQ(signalID.String())).
		QueryEvidence().
		Select(evidence.FieldSourceURL).
		Strings(ctx)
	if err != nil {
		return fmt.Errorf("failed to list evidence URLs for signal %s: %w", signalID, err)
	}

	distinct := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		distinct[u] = struct{}{}
	}
	diversity := len(distinct)
	if diversity == 0 {
		diversity = 1
	}
	corroboration := diversity - 1

	if err := p.client.Signal.UpdateOneID(signalID.String()).
		SetSourceDiversity(diversity).
		SetCorroborationCount(corroboration).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update diversity for signal %s: %w", signalID, err)
	}
	return nil
}

func (p *Projector) applyFreshnessRecorded(ctx context.Context, ev *models.FreshnessRecorded) error {
	row, err := p.client.Signal.Query().
		Where(signal.IDEQ(ev.SignalID.String())).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			slog.Warn("Freshness recorded for unknown signal", "signal_id", ev.SignalID)
			return nil
		}
		return fmt.Errorf("failed to load signal %s: %w", ev.SignalID, err)
	}

	// Monotonic max keeps replays and duplicate deliveries idempotent.
	if !ev.SeenAt.After(row.LastConfirmedActive) {
		return nil
	}
	return p.client.Signal.UpdateOne(row).
		SetLastConfirmedActive(ev.SeenAt).
		SetFreshnessScore(1.0).
		Exec(ctx)
}

func (p *Projector) applySeveritySet(ctx context.Context, ev *models.SeveritySet) error {
	err := p.client.Signal.UpdateOneID(ev.SignalID.String()).
		SetSeverity(signal.Severity(ev.Severity)).
		Exec(ctx)
	if ent.IsNotFound(err) {
		slog.Warn("Severity set for unknown signal", "signal_id", ev.SignalID)
		return nil
	}
	return err
}

func (p *Projector) applyEntityExpired(ctx context.Context, ev *models.EntityExpired, ts time.Time) error {
	row, err := p.client.Signal.Query().
		Where(signal.IDEQ(ev.SignalID.String())).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			slog.Warn("Expiry for unknown signal", "signal_id", ev.SignalID)
			return nil
		}
		return fmt.Errorf("failed to load signal %s: %w", ev.SignalID, err)
	}
	if row.ExpiredAt != nil {
		return nil
	}
	return p.client.Signal.UpdateOne(row).
		SetExpiredAt(ts).
		Exec(ctx)
}

func (p *Projector) applySourceDiscovered(ctx context.Context, ev *models.SourceDiscovered) error {
	s := &ev.Source
	exists, err := p.client.Source.Query().
		Where(
			source.RegionEQ(p.region),
			source.CanonicalKeyEQ(s.CanonicalKey),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check source %s: %w", s.CanonicalKey, err)
	}
	if exists {
		return nil
	}

	create := p.client.Source.Create().
		SetID(uuid.New().String()).
		SetCanonicalKey(s.CanonicalKey).
		SetCanonicalValue(s.CanonicalValue).
		SetStrategy(source.Strategy(s.Strategy)).
		SetRegion(p.region).
		SetWeight(s.Weight).
		SetCadenceHours(s.CadenceHours).
		SetDiscoveryMethod(source.DiscoveryMethod(s.Discovery)).
		SetActive(true)
	if s.Platform != "" {
		create = create.SetPlatform(s.Platform)
	}
	if s.Location != nil {
		create = create.SetLat(s.Location.Lat).SetLng(s.Location.Lng)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to create source %s: %w", s.CanonicalKey, err)
	}
	return nil
}

func (p *Projector) applySourceChanged(ctx context.Context, ev *models.SourceChanged) error {
	update := p.client.Source.Update().
		Where(
			source.RegionEQ(p.region),
			source.CanonicalKeyEQ(ev.CanonicalKey),
		)
	switch ev.Change {
	case models.SourceChangeWeight:
		update = update.SetWeight(ev.NewValue)
	case models.SourceChangeCadence:
		update = update.SetCadenceHours(int(ev.NewValue))
	default:
		return fmt.Errorf("unknown source change kind %q", ev.Change)
	}
	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply %s change to source %s: %w", ev.Change, ev.CanonicalKey, err)
	}
	if n == 0 {
		slog.Warn("Source change for unknown source", "canonical_key", ev.CanonicalKey)
	}
	return nil
}

func (p *Projector) applySourceScraped(ctx context.Context, ev *models.SourceScraped) error {
	update := p.client.Source.Update().
		Where(
			source.RegionEQ(p.region),
			source.CanonicalKeyEQ(ev.CanonicalKey),
		).
		SetScrapeCount(ev.ScrapeCount).
		SetConsecutiveEmptyRuns(ev.ConsecutiveEmpty).
		SetLastScraped(ev.LastScraped)
	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record scrape for source %s: %w", ev.CanonicalKey, err)
	}
	if n == 0 {
		slog.Warn("Scrape recorded for unknown source", "canonical_key", ev.CanonicalKey)
	}
	return nil
}

func (p *Projector) applySourceDeactivated(ctx context.Context, ev *models.SourceDeactivated) error {
	_, err := p.client.Source.Update().
		Where(
			source.RegionEQ(p.region),
			source.CanonicalKeyEQ(ev.CanonicalKey),
		).
		SetActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to deactivate source %s: %w", ev.CanonicalKey, err)
	}
	return nil
}

func (p *Projector) applyResponseLinked(ctx context.Context, ev *models.ResponseLinked) error {
	exists, err := p.client.Response.Query().
		Where(
			response.ResponseIDEQ(ev.ResponseID.String()),
			response.TensionIDEQ(ev.TensionID.String()),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check response link: %w", err)
	}
	if exists {
		return nil
	}
	_, err = p.client.Response.Create().
		SetResponseID(ev.ResponseID.String()).
		SetTensionID(ev.TensionID.String()).
		SetStrength(ev.Strength).
		SetExplanation(ev.Explanation).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create response link %s -> %s: %w", ev.ResponseID, ev.TensionID, err)
	}
	return nil
}

func (p *Projector) applyActorObserved(ctx context.Context, ev *models.ActorObserved, ts time.Time) error {
	nameKey := models.ActorNameKey(ev.Name)
	if nameKey == "" {
		return nil
	}

	row, err := p.client.Actor.Query().
		Where(
			actor.RegionEQ(p.region),
			actor.NameKeyEQ(nameKey),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		create := p.client.Actor.Create().
			SetID(uuid.New().String()).
			SetName(ev.Name).
			SetNameKey(nameKey).
			SetRegion(p.region).
			SetKind(ev.Kind).
			SetFirstSeen(ts)
		if ev.CanonicalURL != "" {
			create = create.SetCanonicalURL(ev.CanonicalURL)
		}
		if ev.Location != nil {
			create = create.SetLat(ev.Location.Lat).SetLng(ev.Location.Lng)
		}
		row, err = create.Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to upsert actor %q: %w", ev.Name, err)
	}

	// Link to the signal if both exist and the edge is new.
	sigExists, err := p.client.Signal.Query().
		Where(signal.IDEQ(ev.SignalID.String())).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check signal %s for actor link: %w", ev.SignalID, err)
	}
	if sigExists {
		var linked bool
		if ev.Role == "author" {
			linked, err = p.client.Actor.Query().
				Where(actor.IDEQ(row.ID)).
				QueryAuthored().
				Where(signal.IDEQ(ev.SignalID.String())).
				Exist(ctx)
			if err == nil && !linked {
				err = p.client.Actor.UpdateOne(row).
					AddAuthoredIDs(ev.SignalID.String()).
					Exec(ctx)
			}
		} else {
			linked, err = p.client.Signal.Query().
				Where(signal.IDEQ(ev.SignalID.String())).
				QueryMentions().
				Where(actor.IDEQ(row.ID)).
				Exist(ctx)
			if err == nil && !linked {
				err = p.client.Signal.UpdateOneID(ev.SignalID.String()).
					AddMentionIDs(row.ID).
					Exec(ctx)
			}
		}
		if err != nil {
			return fmt.Errorf("failed to link actor %q to signal %s: %w", ev.Name, ev.SignalID, err)
		}
	}

	// signal_count derives from edges so repeated projection converges.
	authored, err := p.client.Actor.Query().
		Where(actor.IDEQ(row.ID)).
		QueryAuthored().
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count authored signals for actor %q: %w", ev.Name, err)
	}
	mentioned, err := p.client.Actor.Query().
		Where(actor.IDEQ(row.ID)).
		QueryMentionedIn().
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count mentions for actor %q: %w", ev.Name, err)
	}

	update := p.client.Actor.UpdateOne(row).
		SetSignalCount(authored + mentioned)
	if row.LastSeen == nil || ts.After(*row.LastSeen) {
		update = update.SetLastSeen(ts)
	}
	return update.Exec(ctx)
}

// recordSourceProduced updates the producing source's counters when a new
// signal is first projected.
func (p *Projector) recordSourceProduced(ctx context.Context, sourceKey string, nodeType models.NodeType, ts time.Time) error {
	if sourceKey == "" {
		return nil
	}
	row, err := p.client.Source.Query().
		Where(
			source.RegionEQ(p.region),
			source.CanonicalKeyEQ(sourceKey),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to load source %s: %w", sourceKey, err)
	}
	update := p.client.Source.UpdateOne(row).
		AddSignalsProduced(1).
		SetLastProducedSignal(ts)
	if nodeType == models.NodeTension {
		update = update.AddTensionsProduced(1)
	}
	return update.Exec(ctx)
}

func (p *Projector) recordSourceCorroborated(ctx context.Context, sourceKey string) error {
	if sourceKey == "" {
		return nil
	}
	_, err := p.client.Source.Update().
		Where(
			source.RegionEQ(p.region),
			source.CanonicalKeyEQ(sourceKey),
		).
		AddSignalsCorroborated(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record corroboration for source %s: %w", sourceKey, err)
	}
	return nil
}
