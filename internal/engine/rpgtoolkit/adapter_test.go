package rpgtoolkit

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
)

func TestNewPublisher(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := NewPublisher(nil)
		assert.Error(t, err)
	})

	t.Run("missing bus", func(t *testing.T) {
		_, err := NewPublisher(&PublisherConfig{PlayerID: "p1"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "event bus is required")
	})

	t.Run("missing player", func(t *testing.T) {
		_, err := NewPublisher(&PublisherConfig{EventBus: events.NewBus()})
		assert.Error(t, err)
	})
}

func TestPublishCarriesFields(t *testing.T) {
	bus := events.NewBus()
	pub, err := NewPublisher(&PublisherConfig{EventBus: bus, PlayerID: "p1"})
	require.NoError(t, err)

	var got events.Event
	bus.SubscribeFunc(TopicRankChanged, 0, func(_ context.Context, e events.Event) error {
		got = e
		return nil
	})

	err = pub.Publish(context.Background(), &Notice{
		Topic:  TopicRankChanged,
		Patron: pantheon.Trog,
		Fields: map[string]any{KeyFromRank: 0, KeyToRank: 1},
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "trog", got.Source().GetID())
	assert.Equal(t, EntityTypePatron, got.Source().GetType())
	assert.Equal(t, "p1", got.Target().GetID())
	v, ok := got.Context().Get(KeyToRank)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestPublishRequiresTopic(t *testing.T) {
	pub, err := NewPublisher(&PublisherConfig{EventBus: events.NewBus(), PlayerID: "p1"})
	require.NoError(t, err)
	assert.Error(t, pub.Publish(context.Background(), &Notice{}))
}

func TestSubscribeAudit(t *testing.T) {
	bus := events.NewBus()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ids := SubscribeAudit(bus, logger)
	assert.Len(t, ids, len(Topics))

	pub, err := NewPublisher(&PublisherConfig{EventBus: bus, PlayerID: "p1"})
	require.NoError(t, err)
	require.NoError(t, pub.Publish(context.Background(), &Notice{
		Topic:  TopicPenanceIncurred,
		Patron: pantheon.Zin,
		Fields: map[string]any{KeyAmount: 5},
	}))

	assert.Contains(t, buf.String(), "topic=pantheon.penance.incurred")
	assert.Contains(t, buf.String(), "patron=zin")
	assert.Contains(t, buf.String(), "amount=5")
}

func TestPatronEntity(t *testing.T) {
	e := wrapPatron(pantheon.SifMuna)
	assert.Equal(t, "sif_muna", e.GetID())
	assert.Equal(t, "patron", e.GetType())
}
