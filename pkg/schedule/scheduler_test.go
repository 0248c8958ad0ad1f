package schedule

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fourthplaces/rootsignal/pkg/budget"
	"github.com/fourthplaces/rootsignal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	sources []*models.Source
}

func (f *fakeLister) ListActiveSources(context.Context) ([]*models.Source, error) {
	return f.sources, nil
}

func webSource(key string, weight float64) *models.Source {
	return &models.Source{
		CanonicalKey:   key,
		CanonicalValue: "https://" + key,
		Strategy:       models.StrategyWeb,
		Weight:         weight,
		CadenceHours:   24,
		Discovery:      models.DiscoverySeed,
		Active:         true,
	}
}

func querySource(key string) *models.Source {
	return &models.Source{
		CanonicalKey:   key,
		CanonicalValue: key,
		Strategy:       models.StrategyWebQuery,
		Weight:         0.5,
		CadenceHours:   24,
		Discovery:      models.DiscoveryLLMSuggested,
		Active:         true,
	}
}

func TestScheduler_Plan(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("partitions tension and response phases", func(t *testing.T) {
		lister := &fakeLister{sources: []*models.Source{
			webSource("a.org", 0.5),
			querySource("query one"),
		}}
		s := New(lister, budget.NewTracker(0), 10)

		plan, err := s.Plan(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, []string{"a.org"}, plan.TensionKeys)
		assert.Equal(t, []string{"query one"}, plan.ResponseKeys)
	})

	t.Run("cadence gate filters recently scraped sources", func(t *testing.T) {
		recent := webSource("recent.org", 0.5)
		scrapedAt := now.Add(-1 * time.Hour)
		recent.LastScraped = &scrapedAt

		due := webSource("due.org", 0.5)
		dueAt := now.Add(-48 * time.Hour)
		due.LastScraped = &dueAt

		lister := &fakeLister{sources: []*models.Source{recent, due}}
		s := New(lister, budget.NewTracker(0), 10)

		plan, err := s.Plan(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, []string{"due.org"}, plan.TensionKeys)
	})

	t.Run("never-scraped sources get the cold-start boost", func(t *testing.T) {
		lister := &fakeLister{sources: []*models.Source{webSource("new.org", 0.5)}}
		s := New(lister, budget.NewTracker(0), 10)

		plan, err := s.Plan(context.Background(), now)
		require.NoError(t, err)
		assert.Contains(t, plan.TensionKeys, "new.org")
	})

	t.Run("orders by score with canonical key tiebreak", func(t *testing.T) {
		lister := &fakeLister{sources: []*models.Source{
			webSource("zeta.org", 0.3),
			webSource("beta.org", 0.9),
			webSource("alpha.org", 0.3),
		}}
		s := New(lister, budget.NewTracker(0), 10)

		plan, err := s.Plan(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, []string{"beta.org", "alpha.org", "zeta.org"}, plan.TensionKeys)
	})

	t.Run("caps web queries per run", func(t *testing.T) {
		var sources []*models.Source
		for i := 0; i < 8; i++ {
			sources = append(sources, querySource(fmt.Sprintf("query %d", i)))
		}
		lister := &fakeLister{sources: sources}
		s := New(lister, budget.NewTracker(0), 3)

		plan, err := s.Plan(context.Background(), now)
		require.NoError(t, err)
		assert.Len(t, plan.ResponseKeys, 3)
	})

	t.Run("skips queries when budget cannot cover them", func(t *testing.T) {
		lister := &fakeLister{sources: []*models.Source{querySource("q")}}
		tracker := budget.NewTracker(1) // below CostSearchQuery
		s := New(lister, tracker, 10)

		plan, err := s.Plan(context.Background(), now)
		require.NoError(t, err)
		assert.Empty(t, plan.ResponseKeys)
	})

	t.Run("deterministic across invocations", func(t *testing.T) {
		lister := &fakeLister{sources: []*models.Source{
			webSource("c.org", 0.4),
			webSource("a.org", 0.4),
			webSource("b.org", 0.8),
			querySource("one"),
			querySource("two"),
		}}
		s := New(lister, budget.NewTracker(0), 10)

		first, err := s.Plan(context.Background(), now)
		require.NoError(t, err)
		second, err := s.Plan(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, first.TensionKeys, second.TensionKeys)
		assert.Equal(t, first.ResponseKeys, second.ResponseKeys)
	})
}
