package graph

import (
	"context"
	"testing"
	"time"

	"github.com/fourthplaces/rootsignal/pkg/eventlog"
	"github.com/fourthplaces/rootsignal/pkg/models"
	testdb "github.com/fourthplaces/rootsignal/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRegion = "minneapolis"

func gatheringCreated(id uuid.UUID, title, url string) models.SignalCreated {
	starts := time.Date(2025, 6, 7, 18, 0, 0, 0, time.UTC)
	return models.SignalCreated{
		NodeID:   id,
		NodeType: models.NodeGathering,
		Node: models.SignalNode{
			Type: models.NodeGathering,
			Meta: models.Meta{
				ID:          id,
				Title:       title,
				Summary:     "Free dinner at the park.",
				Sensitivity: models.SensitivityGeneral,
				Confidence:  0.9,
				Freshness:   1.0,
				SourceURL:   url,
				ExtractedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			},
			Gathering: &models.GatheringFields{StartsAt: &starts},
		},
		SourceURL:   url,
		ContentHash: models.ContentHash("content at " + url),
		Snippet:     "Free dinner at the park.",
		ChannelType: "web",
		Embedding:   []float32{1, 0, 0, 0},
	}
}

// appendAndProject pushes an event through the log and the projector the
// way the persist handler does.
func appendAndProject(t *testing.T, log *eventlog.Log, projector *Projector, ev interface{ EventType() string }) *models.StoredEvent {
	t.Helper()
	ctx := context.Background()
	stored, err := log.Append(ctx, ev.EventType(), ev, uuid.New().String())
	require.NoError(t, err)
	require.NoError(t, projector.Project(ctx, stored))
	return stored
}

func TestProjector_SignalLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	log := eventlog.New(client.Client)
	projector := NewProjector(client.Client, testRegion)
	reader := NewReader(client.Client, testRegion)
	ctx := context.Background()

	id := uuid.New()
	created := gatheringCreated(id, "Community dinner", "https://a.org/events")
	appendAndProject(t, log, projector, created)

	t.Run("create projects signal with evidence", func(t *testing.T) {
		sig, err := reader.SignalByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, sig)
		assert.Equal(t, "community dinner", sig.TitleKey)

		seen, _, err := reader.ContentHashSeen(ctx, created.SourceURL, created.ContentHash)
		require.NoError(t, err)
		assert.True(t, seen)
	})

	t.Run("corroboration raises diversity", func(t *testing.T) {
		appendAndProject(t, log, projector, models.SignalCorroborated{
			ExistingID:  id,
			NodeType:    models.NodeGathering,
			SourceURL:   "https://b.org/calendar",
			ContentHash: models.ContentHash("other content"),
			Snippet:     "dinner this saturday",
			ChannelType: "web",
			Similarity:  0.91,
		})

		row, err := client.Signal.Get(ctx, id.String())
		require.NoError(t, err)
		assert.Equal(t, 2, row.SourceDiversity)
		assert.Equal(t, 1, row.CorroborationCount)
	})

	t.Run("expiry is logical", func(t *testing.T) {
		appendAndProject(t, log, projector, models.EntityExpired{
			SignalID: id, NodeType: models.NodeGathering, Reason: "gathering past",
		})

		row, err := client.Signal.Get(ctx, id.String())
		require.NoError(t, err)
		assert.NotNil(t, row.ExpiredAt)

		// Expired signals leave the live dedup indexes but stay queryable.
		matches, err := reader.FindByTitlesAndTypes(ctx, []TitleType{
			{TitleKey: "community dinner", Type: models.NodeGathering},
		})
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestProjector_Idempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	log := eventlog.New(client.Client)
	projector := NewProjector(client.Client, testRegion)
	ctx := context.Background()

	id := uuid.New()
	stored, err := log.Append(ctx, models.TypeSignalCreated,
		gatheringCreated(id, "Community dinner", "https://a.org/events"), uuid.New().String())
	require.NoError(t, err)

	require.NoError(t, projector.Project(ctx, stored))
	require.NoError(t, projector.Project(ctx, stored))

	count, err := client.Signal.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	row, err := client.Signal.Get(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, 1, row.SourceDiversity)
}

func TestProjector_SourceEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	log := eventlog.New(client.Client)
	projector := NewProjector(client.Client, testRegion)
	reader := NewReader(client.Client, testRegion)
	ctx := context.Background()

	appendAndProject(t, log, projector, models.SourceDiscovered{Source: models.Source{
		CanonicalKey:   "url:a.org/news",
		CanonicalValue: "https://a.org/news",
		Strategy:       models.StrategyWeb,
		Weight:         0.5,
		CadenceHours:   24,
		Discovery:      models.DiscoverySeed,
		Active:         true,
	}})

	t.Run("discovered source is listed", func(t *testing.T) {
		sources, err := reader.ListActiveSources(ctx)
		require.NoError(t, err)
		require.Len(t, sources, 1)
		assert.Equal(t, "url:a.org/news", sources[0].CanonicalKey)
	})

	t.Run("weight change updates only weight", func(t *testing.T) {
		appendAndProject(t, log, projector, models.SourceChanged{
			CanonicalKey: "url:a.org/news",
			Change:       models.SourceChangeWeight,
			OldValue:     0.5,
			NewValue:     0.7,
		})
		sources, err := reader.ListActiveSources(ctx)
		require.NoError(t, err)
		require.Len(t, sources, 1)
		assert.InDelta(t, 0.7, sources[0].Weight, 0.001)
		assert.Equal(t, 24, sources[0].CadenceHours)
	})

	t.Run("deactivation removes from active list", func(t *testing.T) {
		appendAndProject(t, log, projector, models.SourceDeactivated{
			CanonicalKey: "url:a.org/news", Reason: "dead",
		})
		sources, err := reader.ListActiveSources(ctx)
		require.NoError(t, err)
		assert.Empty(t, sources)
	})
}

func TestReplay_RebuildsGraph(t *testing.T) {
	client := testdb.NewTestClient(t)
	log := eventlog.New(client.Client)
	projector := NewProjector(client.Client, testRegion)
	ctx := context.Background()

	// Live run: create, corroborate, discover a source.
	id := uuid.New()
	appendAndProject(t, log, projector, gatheringCreated(id, "Community dinner", "https://a.org/events"))
	appendAndProject(t, log, projector, models.SignalCorroborated{
		ExistingID:  id,
		NodeType:    models.NodeGathering,
		SourceURL:   "https://b.org/calendar",
		ContentHash: models.ContentHash("other"),
		ChannelType: "web",
		Similarity:  0.9,
	})
	appendAndProject(t, log, projector, models.SourceDiscovered{Source: models.Source{
		CanonicalKey:   "url:a.org/events",
		CanonicalValue: "https://a.org/events",
		Strategy:       models.StrategyWeb,
		Weight:         0.5,
		CadenceHours:   24,
		Discovery:      models.DiscoverySeed,
		Active:         true,
	}})

	liveSignals, err := client.Signal.Query().Count(ctx)
	require.NoError(t, err)
	liveRow, err := client.Signal.Get(ctx, id.String())
	require.NoError(t, err)

	// Wipe and replay from seq=1.
	require.NoError(t, WipeGraph(ctx, client.Client))
	empty, err := client.Signal.Query().Count(ctx)
	require.NoError(t, err)
	require.Zero(t, empty)

	applied, err := Replay(ctx, log, projector)
	require.NoError(t, err)
	assert.Equal(t, int64(3), applied)

	replayedSignals, err := client.Signal.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, liveSignals, replayedSignals)

	replayedRow, err := client.Signal.Get(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, liveRow.SourceDiversity, replayedRow.SourceDiversity)
	assert.Equal(t, liveRow.CorroborationCount, replayedRow.CorroborationCount)
	assert.Equal(t, liveRow.TitleKey, replayedRow.TitleKey)

	evidenceCount, err := client.Evidence.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, evidenceCount)

	sourceCount, err := client.Source.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sourceCount)
}
