package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGathering() *SignalNode {
	starts := time.Date(2025, 6, 7, 18, 0, 0, 0, time.UTC)
	return &SignalNode{
		Type: NodeGathering,
		Meta: Meta{
			ID:          uuid.New(),
			Title:       "Community dinner at Powderhorn Park",
			Summary:     "Free dinner, Saturday 6pm.",
			Sensitivity: SensitivityGeneral,
			Confidence:  0.9,
			Freshness:   1.0,
			SourceURL:   "https://example.org/events",
			ExtractedAt: time.Now(),
		},
		Gathering: &GatheringFields{StartsAt: &starts},
	}
}

func TestSignalNode_Validate(t *testing.T) {
	t.Run("valid node passes", func(t *testing.T) {
		require.NoError(t, validGathering().Validate())
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		n := validGathering()
		n.Type = "party"
		assert.Error(t, n.Validate())
	})

	t.Run("rejects empty title", func(t *testing.T) {
		n := validGathering()
		n.Meta.Title = "  "
		assert.Error(t, n.Validate())
	})

	t.Run("rejects out-of-range confidence", func(t *testing.T) {
		n := validGathering()
		n.Meta.Confidence = 1.5
		assert.Error(t, n.Validate())
	})

	t.Run("rejects type/variant mismatch", func(t *testing.T) {
		n := validGathering()
		n.Type = NodeAid
		assert.Error(t, n.Validate())
	})

	t.Run("rejects multiple variants", func(t *testing.T) {
		n := validGathering()
		n.Aid = &AidFields{}
		assert.Error(t, n.Validate())
	})

	t.Run("rejects off-planet location", func(t *testing.T) {
		n := validGathering()
		n.Meta.Location = &GeoPoint{Lat: 95, Lng: 0, Precision: PrecisionCity}
		assert.Error(t, n.Validate())
	})
}

func TestGeoPoint_Fuzz(t *testing.T) {
	point := GeoPoint{Lat: 44.97782345, Lng: -93.26501234, Precision: PrecisionExact}

	t.Run("general snaps to ~110m grid", func(t *testing.T) {
		fuzzed := point.Fuzz(SensitivityGeneral)
		assert.InDelta(t, 44.978, fuzzed.Lat, 0.0001)
		assert.InDelta(t, -93.265, fuzzed.Lng, 0.0001)
	})

	t.Run("sensitive snaps to ~11km grid", func(t *testing.T) {
		fuzzed := point.Fuzz(SensitivitySensitive)
		assert.InDelta(t, 45.0, fuzzed.Lat, 0.0001)
		assert.InDelta(t, -93.3, fuzzed.Lng, 0.0001)
	})

	t.Run("coarser sensitivity moves the point at least as far", func(t *testing.T) {
		general := point.Fuzz(SensitivityGeneral)
		sensitive := point.Fuzz(SensitivitySensitive)
		dGeneral := abs(general.Lat-point.Lat) + abs(general.Lng-point.Lng)
		dSensitive := abs(sensitive.Lat-point.Lat) + abs(sensitive.Lng-point.Lng)
		assert.GreaterOrEqual(t, dSensitive, dGeneral)
	})
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func TestBoundingBox(t *testing.T) {
	box := BoxAround(44.9778, -93.2650, 25)

	assert.True(t, box.Contains(GeoPoint{Lat: 44.9778, Lng: -93.2650}))
	assert.True(t, box.Contains(GeoPoint{Lat: 45.05, Lng: -93.2}))
	assert.False(t, box.Contains(GeoPoint{Lat: 46.0, Lng: -93.2650}))
	assert.False(t, box.Contains(GeoPoint{Lat: 44.9778, Lng: -94.5}))
}

func TestContentHash(t *testing.T) {
	t.Run("whitespace normalization", func(t *testing.T) {
		assert.Equal(t,
			ContentHash("hello   world"),
			ContentHash("hello\n\t world "))
	})

	t.Run("different content differs", func(t *testing.T) {
		assert.NotEqual(t, ContentHash("a"), ContentHash("b"))
	})
}

func TestCanonicalSourceKey(t *testing.T) {
	t.Run("urls keyed by host and path", func(t *testing.T) {
		assert.Equal(t,
			CanonicalSourceKey(StrategyWeb, "", "https://www.Example.org/news/"),
			CanonicalSourceKey(StrategyWeb, "", "https://example.org/news"))
	})

	t.Run("queries normalized", func(t *testing.T) {
		assert.Equal(t,
			"query:mutual aid minneapolis",
			CanonicalSourceKey(StrategyWebQuery, "", "  Mutual   Aid Minneapolis "))
	})

	t.Run("social keyed by platform and handle", func(t *testing.T) {
		assert.Equal(t,
			"social:reddit:minneapolis",
			CanonicalSourceKey(StrategySocial, "reddit", "@Minneapolis"))
	})
}

func TestIsWorldEvent(t *testing.T) {
	assert.True(t, IsWorldEvent(TypeSignalCreated))
	assert.True(t, IsWorldEvent(TypeSourceScraped))
	assert.True(t, IsWorldEvent(TypeEntityExpired))
	assert.False(t, IsWorldEvent(TypeContentFetched))
	assert.False(t, IsWorldEvent(TypeSignalsExtracted))
	assert.False(t, IsWorldEvent(TypeRunCompleted))
}

func TestRunStats_ExtractionBalanced(t *testing.T) {
	stats := NewRunStats()
	stats.SignalsExtracted = 10
	stats.SignalsStored = 6
	stats.SignalsDeduplicated = 3
	stats.SignalsDropped = 1
	assert.True(t, stats.ExtractionBalanced())

	stats.SignalsDropped = 0
	assert.False(t, stats.ExtractionBalanced())
}
