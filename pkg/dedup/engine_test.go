package dedup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fourthplaces/rootsignal/pkg/config"
	"github.com/fourthplaces/rootsignal/pkg/extract"
	"github.com/fourthplaces/rootsignal/pkg/graph"
	"github.com/fourthplaces/rootsignal/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testThresholds = config.DedupThresholds{
	CrossSource: 0.88,
	SameSource:  0.92,
	IntraRun:    0.90,
}

var testBox = models.BoxAround(44.9778, -93.2650, 25)

// fakeReader serves canned graph lookups.
type fakeReader struct {
	hashSeen   map[string]time.Time // "url|hash" → retrieved_at
	byURL      map[string][]*graph.Signal
	byTitle    map[string]*graph.Signal
	duplicates map[models.NodeType]*graph.Signal
	dupScore   float64
}

func newFakeReader() *fakeReader {
	return &fakeReader{
		hashSeen:   make(map[string]time.Time),
		byURL:      make(map[string][]*graph.Signal),
		byTitle:    make(map[string]*graph.Signal),
		duplicates: make(map[models.NodeType]*graph.Signal),
	}
}

func (f *fakeReader) ContentHashSeen(_ context.Context, url, hash string) (bool, time.Time, error) {
	at, ok := f.hashSeen[url+"|"+hash]
	return ok, at, nil
}

func (f *fakeReader) SignalsByURL(_ context.Context, url string) ([]*graph.Signal, error) {
	return f.byURL[url], nil
}

func (f *fakeReader) FindByTitlesAndTypes(_ context.Context, pairs []graph.TitleType) (map[string]*graph.Signal, error) {
	out := make(map[string]*graph.Signal)
	for _, p := range pairs {
		key := p.TitleKey + "|" + string(p.Type)
		if s, ok := f.byTitle[key]; ok {
			out[key] = s
		}
	}
	return out, nil
}

func (f *fakeReader) FindDuplicate(_ context.Context, nodeType models.NodeType, _ []float32, _ models.BoundingBox, threshold float64) (*graph.Signal, float64, error) {
	if s, ok := f.duplicates[nodeType]; ok && f.dupScore >= threshold {
		return s, f.dupScore, nil
	}
	return nil, 0, nil
}

// fakeEmbedder returns a fixed vector per text, defaulting to a unit basis
// vector derived from text length so unrelated texts don't collide.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
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
		v, err := f.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (f *fakeEmbedder) Dims() int { return 8 }

func node(title string, nodeType models.NodeType) *models.SignalNode {
	n := &models.SignalNode{
		Type: nodeType,
		Meta: models.Meta{
			ID:          uuid.New(),
			Title:       title,
			Summary:     "summary of " + title,
			Sensitivity: models.SensitivityGeneral,
			Confidence:  0.8,
			Freshness:   1.0,
			ExtractedAt: time.Now(),
		},
	}
	switch nodeType {
	case models.NodeGathering:
		n.Gathering = &models.GatheringFields{}
	case models.NodeAid:
		n.Aid = &models.AidFields{}
	case models.NodeNeed:
		n.Need = &models.NeedFields{}
	case models.NodeNotice:
		n.Notice = &models.NoticeFields{Severity: models.SeverityInfo}
	case models.NodeTension:
		n.Tension = &models.TensionFields{Category: "housing"}
	}
	return n
}

func batchOf(url string, nodes ...*models.SignalNode) *extract.Batch {
	return &extract.Batch{
		SourceURL:   url,
		SourceKey:   "url:" + url,
		ChannelType: "web",
		ContentHash: models.ContentHash("content for " + url),
		Nodes:       nodes,
		Snippets:    map[uuid.UUID]string{},
	}
}

func TestEngine_Blocklist(t *testing.T) {
	engine := New(newFakeReader(), &fakeEmbedder{}, testThresholds, testBox,
		[]string{"blocked.example"})

	verdicts, err := engine.Classify(context.Background(),
		batchOf("https://blocked.example/page", node("Anything", models.NodeNotice)))
	require.NoError(t, err)
	require.Len(t, verdicts, 1)
	assert.Equal(t, VerdictDropped, verdicts[0].Kind)
	assert.Contains(t, verdicts[0].Reason, "blocked source")
}

func TestEngine_PIIRejection(t *testing.T) {
	engine := New(newFakeReader(), &fakeEmbedder{}, testThresholds, testBox, nil)

	n := node("Contact list", models.NodeNotice)
	n.Meta.Summary = "Call 612-555-1234 or 651-555-9876, email a@b.org and c@d.org"

	verdicts, err := engine.Classify(context.Background(), batchOf("https://ok.org/p", n))
	require.NoError(t, err)
	require.Len(t, verdicts, 1)
	assert.Equal(t, VerdictDropped, verdicts[0].Kind)
	assert.Equal(t, "pii threshold exceeded", verdicts[0].Reason)
}

func TestEngine_ExactTitleLayer(t *testing.T) {
	existing := &graph.Signal{
		ID:        uuid.New(),
		Type:      models.NodeGathering,
		TitleKey:  "community dinner",
		SourceURL: "https://a.org/events",
	}

	t.Run("same URL is a same-source re-encounter", func(t *testing.T) {
		reader := newFakeReader()
		reader.byTitle["community dinner|gathering"] = existing
		engine := New(reader, &fakeEmbedder{}, testThresholds, testBox, nil)

		verdicts, err := engine.Classify(context.Background(),
			batchOf("https://a.org/events", node("Community Dinner", models.NodeGathering)))
		require.NoError(t, err)
		require.Len(t, verdicts, 1)
		assert.Equal(t, VerdictSameSource, verdicts[0].Kind)
		assert.Equal(t, existing.ID, verdicts[0].ExistingID)
	})

	t.Run("different URL corroborates", func(t *testing.T) {
		reader := newFakeReader()
		reader.byTitle["community dinner|gathering"] = existing
		engine := New(reader, &fakeEmbedder{}, testThresholds, testBox, nil)

		verdicts, err := engine.Classify(context.Background(),
			batchOf("https://b.org/calendar", node("Community Dinner", models.NodeGathering)))
		require.NoError(t, err)
		require.Len(t, verdicts, 1)
		assert.Equal(t, VerdictCrossSource, verdicts[0].Kind)
		assert.Equal(t, existing.ID, verdicts[0].ExistingID)
	})

	t.Run("same title different type misses", func(t *testing.T) {
		reader := newFakeReader()
		reader.byTitle["community dinner|gathering"] = existing
		engine := New(reader, &fakeEmbedder{}, testThresholds, testBox, nil)

		verdicts, err := engine.Classify(context.Background(),
			batchOf("https://b.org/calendar", node("Community Dinner", models.NodeAid)))
		require.NoError(t, err)
		assert.Equal(t, VerdictNew, verdicts[0].Kind)
	})
}

func TestEngine_VectorLayer(t *testing.T) {
	t.Run("cross-source match above threshold corroborates", func(t *testing.T) {
		existing := &graph.Signal{
			ID:        uuid.New(),
			Type:      models.NodeTension,
			SourceURL: "https://a.org/report",
		}
		reader := newFakeReader()
		reader.duplicates[models.NodeTension] = existing
		reader.dupScore = 0.93
		engine := New(reader, &fakeEmbedder{}, testThresholds, testBox, nil)

		verdicts, err := engine.Classify(context.Background(),
			batchOf("https://b.org/story", node("Housing crisis on Lake St", models.NodeTension)))
		require.NoError(t, err)
		require.Len(t, verdicts, 1)
		assert.Equal(t, VerdictCrossSource, verdicts[0].Kind)
		assert.InDelta(t, 0.93, verdicts[0].Similarity, 0.001)
	})

	t.Run("below threshold is a new signal", func(t *testing.T) {
		reader := newFakeReader()
		reader.duplicates[models.NodeTension] = &graph.Signal{ID: uuid.New(), Type: models.NodeTension}
		reader.dupScore = 0.5
		engine := New(reader, &fakeEmbedder{}, testThresholds, testBox, nil)

		verdicts, err := engine.Classify(context.Background(),
			batchOf("https://b.org/story", node("Unrelated", models.NodeTension)))
		require.NoError(t, err)
		assert.Equal(t, VerdictNew, verdicts[0].Kind)
		assert.NotEmpty(t, verdicts[0].Embedding)
	})

	t.Run("embedder failure drops the node", func(t *testing.T) {
		engine := New(newFakeReader(), &fakeEmbedder{err: errors.New("dim mismatch")},
			testThresholds, testBox, nil)

		verdicts, err := engine.Classify(context.Background(),
			batchOf("https://b.org/story", node("Anything", models.NodeNeed)))
		require.NoError(t, err)
		assert.Equal(t, VerdictDropped, verdicts[0].Kind)
		assert.Contains(t, verdicts[0].Reason, "embedder error")
	})
}

func TestEngine_IntraRunCache(t *testing.T) {
	sharedVec := []float32{1, 0, 0, 0, 0, 0, 0, 0}
	embedder := &fakeEmbedder{vectors: map[string][]float32{}}

	first := node("Food shelf open Saturdays", models.NodeAid)
	second := node("Food shelf open on Saturday", models.NodeAid)
	embedder.vectors[first.EmbeddingText()] = sharedVec
	embedder.vectors[second.EmbeddingText()] = sharedVec

	engine := New(newFakeReader(), embedder, testThresholds, testBox, nil)

	verdicts, err := engine.Classify(context.Background(),
		batchOf("https://a.org/aid", first))
	require.NoError(t, err)
	require.Equal(t, VerdictNew, verdicts[0].Kind)

	verdicts, err = engine.Classify(context.Background(),
		batchOf("https://b.org/aid", second))
	require.NoError(t, err)
	require.Len(t, verdicts, 1)
	assert.Equal(t, VerdictCrossSource, verdicts[0].Kind)
	assert.Equal(t, first.Meta.ID, verdicts[0].ExistingID)
}

func TestEngine_NearOneThresholds(t *testing.T) {
	// With thresholds pushed near 1.0, merely-similar signals stop matching
	// and everything becomes new.
	strict := config.DedupThresholds{CrossSource: 0.999, SameSource: 0.999, IntraRun: 0.999}
	reader := newFakeReader()
	reader.duplicates[models.NodeTension] = &graph.Signal{ID: uuid.New(), Type: models.NodeTension}
	reader.dupScore = 0.95

	engine := New(reader, &fakeEmbedder{}, strict, testBox, nil)
	verdicts, err := engine.Classify(context.Background(),
		batchOf("https://b.org/story", node("Very similar tension", models.NodeTension)))
	require.NoError(t, err)
	assert.Equal(t, VerdictNew, verdicts[0].Kind)
}

func TestCountPII(t *testing.T) {
	assert.Equal(t, 0, CountPII("Community dinner Saturday 6pm at the park"))
	assert.Equal(t, 1, CountPII("call 612-555-1234"))
	assert.Equal(t, 2, CountPII("ssn 123-45-6789 leaked"))
	assert.True(t, ExceedsPIIThreshold(
		"612-555-1234, 612-555-2345, a@b.com, 100 Main Street"))
}
