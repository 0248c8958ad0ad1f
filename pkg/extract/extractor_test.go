package extract

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/fourthplaces/rootsignal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cannedClient returns a fixed structured result for every ExtractInto.
type cannedClient struct {
	result   Result
	lastUser string
}

func (c *cannedClient) Chat(context.Context, string, string) (string, error) {
	return "", nil
}

func (c *cannedClient) ExtractInto(_ context.Context, _ string, user string, out any) error {
	c.lastUser = user
	data, err := json.Marshal(c.result)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func strPtr(s string) *string { return &s }

func gatheringNode(title string, firsthand bool) ExtractedNode {
	return ExtractedNode{
		Type:        "gathering",
		Title:       title,
		Summary:     "A community dinner.",
		Sensitivity: "general",
		Confidence:  0.9,
		IsFirsthand: firsthand,
		StartsAt:    strPtr("2025-06-07T18:00:00Z"),
	}
}

func TestExtractSignals(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("converts nodes and stamps meta", func(t *testing.T) {
		client := &cannedClient{result: Result{
			Nodes:          []ExtractedNode{gatheringNode("Community dinner", true)},
			ImpliedQueries: []string{"powderhorn events"},
		}}
		e := New(client, RegionPrompt{Name: "Minneapolis", Slug: "minneapolis"})

		batch, err := e.ExtractSignals(context.Background(),
			"page text", "https://example.org/events", "url:example.org/events", "web", false, now)
		require.NoError(t, err)

		require.Len(t, batch.Nodes, 1)
		node := batch.Nodes[0]
		assert.Equal(t, models.NodeGathering, node.Type)
		assert.Equal(t, "Community dinner", node.Meta.Title)
		assert.Equal(t, now, node.Meta.ExtractedAt)
		assert.Equal(t, "https://example.org/events", node.Meta.SourceURL)
		require.NotNil(t, node.Gathering.StartsAt)
		assert.Equal(t, []string{"powderhorn events"}, batch.Queries)
		assert.NotEmpty(t, batch.ContentHash)
		assert.NotEmpty(t, batch.Snippets[node.Meta.ID])
	})

	t.Run("firsthand filter drops re-reports", func(t *testing.T) {
		client := &cannedClient{result: Result{Nodes: []ExtractedNode{
			gatheringNode("Original event", true),
			gatheringNode("Re-reported event", false),
		}}}
		e := New(client, RegionPrompt{Name: "Minneapolis"})

		batch, err := e.ExtractSignals(context.Background(),
			"search result page", "https://news.org/roundup", "", "search", true, now)
		require.NoError(t, err)
		require.Len(t, batch.Nodes, 1)
		assert.Equal(t, "Original event", batch.Nodes[0].Meta.Title)
	})

	t.Run("firsthand filter off keeps re-reports", func(t *testing.T) {
		client := &cannedClient{result: Result{Nodes: []ExtractedNode{
			gatheringNode("Re-reported event", false),
		}}}
		e := New(client, RegionPrompt{Name: "Minneapolis"})

		batch, err := e.ExtractSignals(context.Background(),
			"page", "https://a.org", "", "web", false, now)
		require.NoError(t, err)
		assert.Len(t, batch.Nodes, 1)
	})

	t.Run("malformed nodes dropped, batch survives", func(t *testing.T) {
		bad := gatheringNode("", true) // empty title fails validation
		client := &cannedClient{result: Result{Nodes: []ExtractedNode{
			bad,
			gatheringNode("Good one", true),
		}}}
		e := New(client, RegionPrompt{Name: "Minneapolis"})

		batch, err := e.ExtractSignals(context.Background(),
			"page", "https://a.org", "", "web", false, now)
		require.NoError(t, err)
		require.Len(t, batch.Nodes, 1)
		assert.Equal(t, "Good one", batch.Nodes[0].Meta.Title)
	})

	t.Run("notice severity defaults to info", func(t *testing.T) {
		client := &cannedClient{result: Result{Nodes: []ExtractedNode{{
			Type:        "notice",
			Title:       "Road closed",
			Summary:     "Lake St closed this weekend.",
			Sensitivity: "general",
			Confidence:  0.8,
			IsFirsthand: true,
		}}}}
		e := New(client, RegionPrompt{Name: "Minneapolis"})

		batch, err := e.ExtractSignals(context.Background(),
			"page", "https://a.org", "", "web", false, now)
		require.NoError(t, err)
		require.Len(t, batch.Nodes, 1)
		assert.Equal(t, models.SeverityInfo, batch.Nodes[0].Notice.Severity)
	})

	t.Run("first-hand instruction reaches the prompt", func(t *testing.T) {
		client := &cannedClient{result: Result{}}
		e := New(client, RegionPrompt{Name: "Minneapolis"})

		_, err := e.ExtractSignals(context.Background(),
			"page", "https://a.org", "", "search", true, now)
		require.NoError(t, err)
		assert.Contains(t, client.lastUser, "first-hand")
	})
}
