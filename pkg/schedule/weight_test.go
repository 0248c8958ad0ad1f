package schedule

import (
	"testing"
	"time"

	"github.com/fourthplaces/rootsignal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestComputeWeight(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("cold start is 0.5", func(t *testing.T) {
		assert.InDelta(t, 0.5, ComputeWeight(0, 0, 0, 0, nil, now), 0.001)
	})

	t.Run("productivity bonus caps at 0.4", func(t *testing.T) {
		recent := now.Add(-time.Hour)
		high := ComputeWeight(100, 0, 10, 0, &recent, now)
		higher := ComputeWeight(1000, 0, 10, 0, &recent, now)
		assert.InDelta(t, high, higher, 0.01)
	})

	t.Run("clamped to bounds", func(t *testing.T) {
		recent := now.Add(-time.Hour)
		w := ComputeWeight(1000, 1000, 10, 1000, &recent, now)
		assert.LessOrEqual(t, w, 1.0)

		old := now.Add(-365 * 24 * time.Hour)
		w = ComputeWeight(0, 0, 100, 0, &old, now)
		assert.GreaterOrEqual(t, w, 0.1)
	})

	t.Run("age decay reduces weight", func(t *testing.T) {
		recent := now.Add(-time.Hour)
		old := now.Add(-60 * 24 * time.Hour)
		fresh := ComputeWeight(10, 5, 10, 2, &recent, now)
		stale := ComputeWeight(10, 5, 10, 2, &old, now)
		assert.Greater(t, fresh, stale)
	})

	t.Run("pure function", func(t *testing.T) {
		lastProduced := now.Add(-3 * 24 * time.Hour)
		a := ComputeWeight(7, 3, 12, 1, &lastProduced, now)
		b := ComputeWeight(7, 3, 12, 1, &lastProduced, now)
		assert.Equal(t, a, b)
	})
}

func TestCadenceHours(t *testing.T) {
	t.Run("weight bounds map to cadence bounds", func(t *testing.T) {
		assert.Equal(t, 6, CadenceHours(1.0, 0, models.DiscoverySeed))
		assert.Equal(t, 72, CadenceHours(0.0, 0, models.DiscoverySeed))
	})

	t.Run("empty runs back off exponentially", func(t *testing.T) {
		base := CadenceHours(0.5, 0, models.DiscoverySeed)
		one := CadenceHours(0.5, 1, models.DiscoverySeed)
		two := CadenceHours(0.5, 2, models.DiscoverySeed)
		assert.Greater(t, one, base)
		assert.Greater(t, two, one)
	})

	t.Run("backoff caps at 168h", func(t *testing.T) {
		assert.Equal(t, 168, CadenceHours(0.1, 20, models.DiscoverySeed))
	})

	t.Run("curated sources cap at 48h", func(t *testing.T) {
		assert.Equal(t, 48, CadenceHours(0.1, 20, models.DiscoveryCurated))
	})

	t.Run("pure function", func(t *testing.T) {
		for _, weight := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
			a := CadenceHours(weight, 3, models.DiscoveryLinkExpansion)
			b := CadenceHours(weight, 3, models.DiscoveryLinkExpansion)
			assert.Equal(t, a, b)
		}
	})
}
