// Package favor implements the favor orchestrator: the piety ledger, penance
// and wrath, gifts, and joining or leaving a patron
package favor

//go:generate mockgen -destination=mock/mock_service.go -package=favormock github.com/KirkDiggler/rpg-pantheon/internal/orchestrators/favor Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-pantheon/internal/clients/external"
	"github.com/KirkDiggler/rpg-pantheon/internal/engine"
	"github.com/KirkDiggler/rpg-pantheon/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
	"github.com/KirkDiggler/rpg-pantheon/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-pantheon/internal/services/placement"
)

// CapabilityFaith is the capability that boosts scaled piety gains
const CapabilityFaith = "faith"

// Service defines the interface for favor operations. One Service owns one
// session's state and is not safe for concurrent use.
type Service interface {
	// Queries
	State() *pantheon.State
	CurrentRank() int
	IsIndebted(patron pantheon.Patron) bool
	IsActivelyRetributive(patron pantheon.Patron) bool
	HasGiftCooldown() bool
	HasPassive(passive pantheon.Passive) bool

	// Favor ledger
	GainPiety(ctx context.Context, input *GainPietyInput) (*GainPietyOutput, error)
	LosePiety(ctx context.Context, input *LosePietyInput) (*LosePietyOutput, error)
	SetPiety(ctx context.Context, input *SetPietyInput) (*SetPietyOutput, error)
	DockPiety(ctx context.Context, input *DockPietyInput) (*DockPietyOutput, error)

	// Penance and wrath
	IncurPenance(ctx context.Context, input *IncurPenanceInput) (*IncurPenanceOutput, error)
	DecayPenance(ctx context.Context, input *DecayPenanceInput) (*DecayPenanceOutput, error)
	OnExperienceGained(ctx context.Context, input *ExperienceGainedInput) (*ExperienceGainedOutput, error)

	// Gifts
	MaybeGrantGift(ctx context.Context, input *GrantGiftInput) (*GrantGiftOutput, error)
	AcceptSpellGift(ctx context.Context, input *AcceptSpellGiftInput) (*AcceptSpellGiftOutput, error)

	// Affiliation
	CheckEligibility(ctx context.Context, input *CheckEligibilityInput) (*CheckEligibilityOutput, error)
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)
	Leave(ctx context.Context, input *LeaveInput) (*LeaveOutput, error)

	// Time
	OnTimePassed(ctx context.Context, input *TimePassedInput) (*TimePassedOutput, error)
	OnTurnEnd(ctx context.Context) (*TurnEndOutput, error)
}

// EventPublisher receives favor notifications
type EventPublisher interface {
	Publish(ctx context.Context, notice *rpgtoolkit.Notice) error
}

// Config holds the dependencies for the favor orchestrator
type Config struct {
	State  *pantheon.State
	World  engine.World
	Random *rng.Source

	// Optional. A queue is created over World when nil.
	Queue *placement.Queue
	// Optional. Defaults to the built-in evocation list.
	Catalog external.SpellCatalog
	// Optional
	Events EventPublisher
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.State == nil {
		vb.RequiredField("State")
	}
	if c.World == nil {
		vb.RequiredField("World")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}

	if err := vb.Build(); err != nil {
		return err
	}
	if err := c.State.Validate(); err != nil {
		return errors.Wrap(err, "invalid state")
	}
	return nil
}

type orchestrator struct {
	state   *pantheon.State
	world   engine.World
	rand    *rng.Source
	queue   *placement.Queue
	catalog external.SpellCatalog
	events  EventPublisher
	logger  *slog.Logger

	// passives last reported to listeners
	enjoyed map[pantheon.Passive]bool

	turn              int
	lastGuiltTurn     int
	lastTransgression int
}

// NewOrchestrator creates a new favor orchestrator over an existing state
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	queue := cfg.Queue
	if queue == nil {
		var err error
		queue, err = placement.NewQueue(&placement.Config{World: cfg.World, Logger: logger})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create placement queue")
		}
	}

	catalog := cfg.Catalog
	if catalog == nil {
		catalog = external.NewStaticCatalog(external.DefaultEvocations())
	}

	cfg.State.Normalize()
	o := &orchestrator{
		state:             cfg.State,
		world:             cfg.World,
		rand:              cfg.Random,
		queue:             queue,
		catalog:           catalog,
		events:            cfg.Events,
		logger:            logger,
		lastGuiltTurn:     -1,
		lastTransgression: -1,
	}
	o.enjoyed = o.currentPassives()

	return o, nil
}

// State returns a copy of the session state, ready to persist
func (o *orchestrator) State() *pantheon.State {
	return o.state.Clone()
}

// CurrentRank returns the rank of the active patron, 0 without one
func (o *orchestrator) CurrentRank() int {
	return o.state.Rank()
}

// IsIndebted reports whether patron is owed any penance
func (o *orchestrator) IsIndebted(patron pantheon.Patron) bool {
	return o.state.Penance[patron] > 0
}

// HasGiftCooldown reports whether a gift timeout is running
func (o *orchestrator) HasGiftCooldown() bool {
	return o.state.GiftTimeout > 0
}

// HasPassive reports whether the active patron currently grants passive
func (o *orchestrator) HasPassive(passive pantheon.Passive) bool {
	return o.currentPassives()[passive]
}

func (o *orchestrator) currentPassives() map[pantheon.Passive]bool {
	out := make(map[pantheon.Passive]bool)
	s := o.state
	if s.ActivePatron == pantheon.None || s.Penance[s.ActivePatron] > 0 {
		return out
	}
	for _, p := range pantheon.ConfigFor(s.ActivePatron).PassivesAt(s.Rank()) {
		out[p] = true
	}
	return out
}

var passiveGained = map[pantheon.Passive]string{
	pantheon.PassiveHalo:  "A divine halo surrounds you!",
	pantheon.PassiveUmbra: "You are shrouded in an aura of darkness!",
}

var passiveLost = map[pantheon.Passive]string{
	pantheon.PassiveHalo:  "Your divine halo fades away.",
	pantheon.PassiveUmbra: "Your aura of darkness fades away.",
}

// syncPassives publishes every passive that flipped since the last sync.
// patron is the patron the flips are attributed to.
func (o *orchestrator) syncPassives(ctx context.Context, patron pantheon.Patron) {
	now := o.currentPassives()
	for p := range o.enjoyed {
		if !now[p] {
			if msg, ok := passiveLost[p]; ok {
				o.narrate(ctx, patron, engine.NarrationGod, msg)
			}
			o.publish(ctx, rpgtoolkit.TopicPassiveChanged, patron, map[string]any{
				rpgtoolkit.KeyPassive: string(p),
				rpgtoolkit.KeyEnabled: false,
			})
		}
	}
	for p := range now {
		if !o.enjoyed[p] {
			if msg, ok := passiveGained[p]; ok {
				o.narrate(ctx, patron, engine.NarrationGod, msg)
			}
			o.publish(ctx, rpgtoolkit.TopicPassiveChanged, patron, map[string]any{
				rpgtoolkit.KeyPassive: string(p),
				rpgtoolkit.KeyEnabled: true,
			})
		}
	}
	o.enjoyed = now
}

// settle runs after every mutating operation
func (o *orchestrator) settle(ctx context.Context, patron pantheon.Patron) {
	o.syncPassives(ctx, patron)
	s := o.state
	errors.Assert(s.Piety >= 0 && s.Piety <= pantheon.MaxPiety,
		"piety %d outside [0, %d]", s.Piety, pantheon.MaxPiety)
	errors.Assert(s.ActivePatron != pantheon.None || s.Piety == 0,
		"piety %d without a patron", s.Piety)
}

// narrate sends a message, attributing it to patron when it starts with a
// space or apostrophe
func (o *orchestrator) narrate(ctx context.Context, patron pantheon.Patron, kind engine.NarrationKind, msg string) {
	o.world.Narrate(ctx, &engine.Narration{Patron: patron, Kind: kind, Message: patron.Says(msg)})
}

func (o *orchestrator) publish(ctx context.Context, topic string, patron pantheon.Patron, fields map[string]any) {
	if o.events == nil {
		return
	}
	if err := o.events.Publish(ctx, &rpgtoolkit.Notice{Topic: topic, Patron: patron, Fields: fields}); err != nil {
		o.logger.Warn("failed to publish favor event",
			"topic", topic,
			"patron", patron.Key(),
			"error", err)
	}
}

func (o *orchestrator) applyEffect(ctx context.Context, patron pantheon.Patron, effect pantheon.Effect, remove bool, magnitude int) bool {
	out, err := o.world.ApplyEffect(ctx, &engine.ApplyEffectInput{
		Patron:    patron,
		Effect:    effect,
		Remove:    remove,
		Magnitude: magnitude,
	})
	if err != nil {
		o.logger.Warn("effect failed",
			"patron", patron.Key(),
			"effect", effect,
			"remove", remove,
			"error", err)
		return false
	}
	return out != nil && out.Applied
}

func (o *orchestrator) profile(ctx context.Context) (*engine.Profile, error) {
	p, err := o.world.Profile(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read player profile")
	}
	if p == nil {
		return nil, errors.Internal("world returned no player profile")
	}
	return p, nil
}

// OnTurnEnd flushes deferred placements. Allies granted during the turn
// appear now, and their batch messages are narrated.
func (o *orchestrator) OnTurnEnd(ctx context.Context) (*TurnEndOutput, error) {
	flushed := o.queue.Flush(ctx)
	o.turn++
	o.settle(ctx, o.state.ActivePatron)

	return &TurnEndOutput{
		Attempted: flushed.Attempted,
		Placed:    flushed.Placed,
		Messages:  flushed.Messages,
	}, nil
}

func requirePatron(p pantheon.Patron) error {
	if !p.Valid() || p == pantheon.None {
		return errors.InvalidArgumentf("invalid patron %d", int(p))
	}
	return nil
}
