package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, regions string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "regions.yaml"), []byte(regions), 0o644))
	return dir
}

const validRegions = `
regions:
  - slug: minneapolis
    name: Minneapolis, MN
    center_lat: 44.9778
    center_lng: -93.2650
    radius_km: 25
    daily_budget_cents: 500
`

func TestInitialize(t *testing.T) {
	t.Run("loads regions with defaults", func(t *testing.T) {
		cfg, err := Initialize(writeConfig(t, validRegions))
		require.NoError(t, err)

		region, err := cfg.Region("minneapolis")
		require.NoError(t, err)
		assert.Equal(t, int64(500), region.DailyBudgetCents)
		assert.Equal(t, 10, region.MaxWebQueriesPerRun)
		assert.InDelta(t, 0.88, region.Thresholds.CrossSource, 0.001)
		assert.InDelta(t, 0.92, region.Thresholds.SameSource, 0.001)
		assert.InDelta(t, 0.90, region.Thresholds.IntraRun, 0.001)

		// System falls back to defaults without a rootsignal.yaml.
		assert.Equal(t, 8, cfg.System.ScrapeWorkers)
		assert.Equal(t, 1536, cfg.System.EmbeddingDims)
	})

	t.Run("unknown region lookup fails", func(t *testing.T) {
		cfg, err := Initialize(writeConfig(t, validRegions))
		require.NoError(t, err)
		_, err = cfg.Region("mars")
		assert.Error(t, err)
	})

	t.Run("missing regions file fails", func(t *testing.T) {
		_, err := Initialize(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("rejects invalid center", func(t *testing.T) {
		_, err := Initialize(writeConfig(t, `
regions:
  - slug: bad
    name: Bad
    center_lat: 123
    center_lng: 0
    radius_km: 10
`))
		assert.Error(t, err)
	})

	t.Run("rejects duplicate slugs", func(t *testing.T) {
		_, err := Initialize(writeConfig(t, validRegions+`
  - slug: minneapolis
    name: Duplicate
    center_lat: 44
    center_lng: -93
    radius_km: 10
`))
		assert.Error(t, err)
	})

	t.Run("expands environment variables", func(t *testing.T) {
		t.Setenv("TEST_REGION_NAME", "Env City")
		cfg, err := Initialize(writeConfig(t, `
regions:
  - slug: envcity
    name: ${TEST_REGION_NAME}
    center_lat: 40
    center_lng: -90
    radius_km: 10
`))
		require.NoError(t, err)
		region, err := cfg.Region("envcity")
		require.NoError(t, err)
		assert.Equal(t, "Env City", region.Name)
	})
}

func TestRegion_BoundingBox(t *testing.T) {
	region := &Region{CenterLat: 44.9778, CenterLng: -93.2650, RadiusKm: 25}
	box := region.BoundingBox()
	assert.Less(t, box.MinLat, region.CenterLat)
	assert.Greater(t, box.MaxLat, region.CenterLat)
	assert.Less(t, box.MinLng, region.CenterLng)
	assert.Greater(t, box.MaxLng, region.CenterLng)
}
