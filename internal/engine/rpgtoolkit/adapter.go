// Package rpgtoolkit publishes favor notifications on an rpg-toolkit event bus
package rpgtoolkit

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
)

// Event topics
const (
	TopicRankChanged     = "pantheon.rank.changed"
	TopicPowerGranted    = "pantheon.power.granted"
	TopicPowerRevoked    = "pantheon.power.revoked"
	TopicPassiveChanged  = "pantheon.passive.changed"
	TopicPenanceIncurred = "pantheon.penance.incurred"
	TopicMollified       = "pantheon.penance.mollified"
	TopicGiftGranted     = "pantheon.gift.granted"
	TopicRetribution     = "pantheon.wrath.retribution"
	TopicJoined          = "pantheon.affiliation.joined"
	TopicLeft            = "pantheon.affiliation.left"
)

// Topics lists every topic the publisher emits
var Topics = []string{
	TopicRankChanged,
	TopicPowerGranted,
	TopicPowerRevoked,
	TopicPassiveChanged,
	TopicPenanceIncurred,
	TopicMollified,
	TopicGiftGranted,
	TopicRetribution,
	TopicJoined,
	TopicLeft,
}

// Event context keys
const (
	KeyFromRank = "from_rank"
	KeyToRank   = "to_rank"
	KeyPower    = "power"
	KeyPassive  = "passive"
	KeyEnabled  = "enabled"
	KeyAmount   = "amount"
	KeyPenance  = "penance"
	KeyPartial  = "partial"
	KeyGift     = "gift"
	KeyOther    = "other_patron"
	KeyRestored = "restored"
)

var contextKeys = []string{
	KeyFromRank, KeyToRank, KeyPower, KeyPassive, KeyEnabled,
	KeyAmount, KeyPenance, KeyPartial, KeyGift, KeyOther, KeyRestored,
}

// Notice is one favor notification
type Notice struct {
	Topic  string
	Patron pantheon.Patron
	Fields map[string]any
}

// PublisherConfig contains configuration for creating a new Publisher
type PublisherConfig struct {
	EventBus events.EventBus
	PlayerID string
}

// Validate checks that all required dependencies are provided
func (c *PublisherConfig) Validate() error {
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	if c.PlayerID == "" {
		return errors.InvalidArgument("player ID is required")
	}
	return nil
}

// Publisher turns notices into rpg-toolkit game events. The patron is the
// source and the player the target.
type Publisher struct {
	bus    events.EventBus
	player *PlayerEntity
}

// NewPublisher creates a publisher bound to one player
func NewPublisher(cfg *PublisherConfig) (*Publisher, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Publisher{
		bus:    cfg.EventBus,
		player: &PlayerEntity{ID: cfg.PlayerID},
	}, nil
}

// Publish sends a notice on the bus
func (p *Publisher) Publish(ctx context.Context, n *Notice) error {
	if n == nil || n.Topic == "" {
		return errors.InvalidArgument("notice topic is required")
	}

	ev := events.NewGameEvent(n.Topic, wrapPatron(n.Patron), p.player)
	for k, v := range n.Fields {
		ev.Context().Set(k, v)
	}

	if err := p.bus.Publish(ctx, ev); err != nil {
		return errors.Wrapf(err, "failed to publish %s", n.Topic)
	}
	return nil
}

// SubscribeAudit logs every favor event at info level and returns the
// subscription IDs.
func SubscribeAudit(bus events.EventBus, logger *slog.Logger) []string {
	ids := make([]string, 0, len(Topics))
	for _, topic := range Topics {
		ids = append(ids, bus.SubscribeFunc(topic, 0, func(_ context.Context, e events.Event) error {
			attrs := []any{"topic", topic}
			if src := e.Source(); src != nil {
				attrs = append(attrs, "patron", src.GetID())
			}
			for _, k := range contextKeys {
				if v, ok := e.Context().Get(k); ok {
					attrs = append(attrs, k, v)
				}
			}
			logger.Info("favor event", attrs...)
			return nil
		}))
	}
	return ids
}
