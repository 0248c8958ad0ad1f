package eventlog

import (
	"context"
	"testing"

	"github.com/fourthplaces/rootsignal/pkg/models"
	testdb "github.com/fourthplaces/rootsignal/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_AppendAndReadBack(t *testing.T) {
	client := testdb.NewTestClient(t)
	log := New(client.Client)
	ctx := context.Background()
	runID := uuid.New().String()

	payload := models.SourceDeactivated{CanonicalKey: "url:dead.org", Reason: "8 consecutive empty runs"}
	stored, err := log.Append(ctx, payload.EventType(), payload, runID)
	require.NoError(t, err)
	assert.Positive(t, stored.Seq)
	assert.Equal(t, models.TypeSourceDeactivated, stored.EventType)
	assert.Equal(t, 1, stored.SchemaV)

	t.Run("read back by seq yields the same payload", func(t *testing.T) {
		events, err := log.ReadFrom(ctx, stored.Seq, 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, stored.Seq, events[0].Seq)
		assert.JSONEq(t, string(stored.Payload), string(events[0].Payload))
	})
}

func TestLog_SeqMonotonic(t *testing.T) {
	client := testdb.NewTestClient(t)
	log := New(client.Client)
	ctx := context.Background()
	runID := uuid.New().String()

	var last int64
	for i := 0; i < 5; i++ {
		stored, err := log.Append(ctx, models.TypeSourceDeactivated,
			models.SourceDeactivated{CanonicalKey: "url:x.org"}, runID)
		require.NoError(t, err)
		assert.Greater(t, stored.Seq, last)
		last = stored.Seq
	}

	lastSeq, err := log.LastSeq(ctx)
	require.NoError(t, err)
	assert.Equal(t, last, lastSeq)
}

func TestLog_AppendChild(t *testing.T) {
	client := testdb.NewTestClient(t)
	log := New(client.Client)
	ctx := context.Background()
	runID := uuid.New().String()

	parent, err := log.Append(ctx, models.TypeSourceDiscovered,
		models.SourceDiscovered{Source: models.Source{CanonicalKey: "url:a.org", CanonicalValue: "https://a.org", Strategy: models.StrategyWeb}}, runID)
	require.NoError(t, err)

	child, err := log.AppendChild(ctx, parent.Seq, models.TypeSourceDeactivated,
		models.SourceDeactivated{CanonicalKey: "url:a.org"}, runID)
	require.NoError(t, err)
	require.NotNil(t, child.ParentSeq)
	assert.Equal(t, parent.Seq, *child.ParentSeq)
}

func TestLog_ReadFromBatches(t *testing.T) {
	client := testdb.NewTestClient(t)
	log := New(client.Client)
	ctx := context.Background()
	runID := uuid.New().String()

	for i := 0; i < 7; i++ {
		_, err := log.Append(ctx, models.TypeSourceDeactivated,
			models.SourceDeactivated{CanonicalKey: "url:x.org"}, runID)
		require.NoError(t, err)
	}

	first, err := log.ReadFrom(ctx, 1, 3)
	require.NoError(t, err)
	require.Len(t, first, 3)

	rest, err := log.ReadFrom(ctx, first[2].Seq+1, 100)
	require.NoError(t, err)
	assert.Len(t, rest, 4)
}
