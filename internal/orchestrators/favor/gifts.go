package favor

import (
	"context"

	"github.com/KirkDiggler/rpg-pantheon/internal/engine"
	"github.com/KirkDiggler/rpg-pantheon/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
	"github.com/KirkDiggler/rpg-pantheon/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-pantheon/internal/services/placement"
)

const (
	minServantThreshold = 3
	flyingSkull         = 2
)

// yredServants is ordered weakest to strongest; the servant threshold caps
// how far up the list a gift may reach
var yredServants = []string{
	"mummy", "wight", "flying skull", "wraith", "vampire", "phantasmal warrior",
	"skeletal warrior", "flayed ghost", "vampire knight", "ghoul", "bone dragon",
	"profane servitor",
}

// giftRule tries one patron-specific gift. The common gates have already
// passed when it runs.
type giftRule func(o *orchestrator, ctx context.Context, profile *engine.Profile, forced bool) *GrantGiftOutput

// giftRuleFor returns the gift rule of patron, nil for patrons that never
// give unsolicited gifts
func giftRuleFor(patron pantheon.Patron) giftRule {
	switch patron {
	case pantheon.Nemelex:
		return (*orchestrator).nemelexGift
	case pantheon.Pakellas:
		return (*orchestrator).pakellasGift
	case pantheon.Okawaru, pantheon.Trog:
		return (*orchestrator).armsGift
	case pantheon.Yredelemnul:
		return (*orchestrator).servantGift
	case pantheon.Jiyva:
		return (*orchestrator).mutationGift
	case pantheon.Kikubaaqudgha:
		return (*orchestrator).necronomiconGift
	case pantheon.SifMuna:
		return (*orchestrator).spellbookGift
	case pantheon.Vehumet:
		return (*orchestrator).spellGift
	default:
		return nil
	}
}

// MaybeGrantGift asks the active patron for a gift
func (o *orchestrator) MaybeGrantGift(ctx context.Context, input *GrantGiftInput) (*GrantGiftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.state.ActivePatron == pantheon.None {
		return &GrantGiftOutput{}, nil
	}

	out := o.maybeGrantGift(ctx, input.Forced)
	o.settle(ctx, o.state.ActivePatron)
	return out, nil
}

func (o *orchestrator) maybeGrantGift(ctx context.Context, forced bool) *GrantGiftOutput {
	s := o.state
	patron := s.ActivePatron
	if !forced && (s.Penance[patron] > 0 || s.GiftTimeout > 0) {
		return &GrantGiftOutput{}
	}

	rule := giftRuleFor(patron)
	if rule == nil {
		return &GrantGiftOutput{}
	}

	profile, err := o.profile(ctx)
	if err != nil {
		o.logger.Warn("gift skipped", "patron", patron.Key(), "error", err)
		return &GrantGiftOutput{}
	}

	out := rule(o, ctx, profile, forced)
	if out.Granted {
		o.logger.Info("gift granted",
			"patron", patron.Key(),
			"kind", out.Kind,
			"detail", out.Detail,
			"deferred", out.Deferred,
			"gift_timeout", s.GiftTimeout)
		o.publish(ctx, rpgtoolkit.TopicGiftGranted, patron, map[string]any{
			rpgtoolkit.KeyGift: string(out.Kind) + ":" + out.Detail,
		})
	}
	return out
}

func (o *orchestrator) incGiftTimeout(amount int) {
	o.state.GiftTimeout = min(pantheon.MaxGiftTimeout, o.state.GiftTimeout+amount)
}

func (o *orchestrator) countGift(patron pantheon.Patron) {
	o.state.CurrentGifts[patron]++
	o.state.TotalGifts[patron]++
}

// acquire asks item generation for a gift. Failures are absorbed.
func (o *orchestrator) acquire(ctx context.Context, patron pantheon.Patron, category engine.ItemCategory, subtype string) (string, bool) {
	out, err := o.world.AcquireItem(ctx, &engine.AcquireItemInput{
		Patron:   patron,
		Category: category,
		Subtype:  subtype,
	})
	if err != nil {
		o.logger.Warn("item acquisition failed",
			"patron", patron.Key(),
			"category", category,
			"subtype", subtype,
			"error", err)
		return "", false
	}
	if out == nil || !out.Acquired {
		return "", false
	}

	name := out.Name
	if name == "" {
		name = string(category)
	}
	return name, true
}

func (o *orchestrator) itemGranted(ctx context.Context, patron pantheon.Patron, name string) *GrantGiftOutput {
	o.narrate(ctx, patron, engine.NarrationGift, " grants you a gift!")
	o.countGift(patron)
	return &GrantGiftOutput{Granted: true, Kind: GiftItem, Detail: name}
}

func (o *orchestrator) nemelexGift(ctx context.Context, _ *engine.Profile, forced bool) *GrantGiftOutput {
	s := o.state
	p := s.Piety
	if !(forced ||
		s.TotalGifts[pantheon.Nemelex] == 0 && o.rand.XChanceInY(p+1, pantheon.Breakpoint(1)) ||
		o.rand.OneChanceIn(3) && o.rand.XChanceInY(p+1, pantheon.MaxPiety)) {
		return &GrantGiftOutput{}
	}

	deck, _ := rng.Choose(o.rand,
		rng.Weighted[string]{Value: "deck_of_war", Weight: 4},
		rng.Weighted[string]{Value: "deck_of_destruction", Weight: 4},
		rng.Weighted[string]{Value: "deck_of_escape", Weight: 2},
	)
	name, ok := o.acquire(ctx, pantheon.Nemelex, engine.ItemDeck, deck)
	if !ok {
		return &GrantGiftOutput{}
	}

	rarity, _ := rng.Choose(o.rand,
		rng.Weighted[string]{Value: "common", Weight: 95 - 90*p/pantheon.MaxPiety},
		rng.Weighted[string]{Value: "rare", Weight: 5 + 55*p/pantheon.MaxPiety},
		rng.Weighted[string]{Value: "legendary", Weight: 35 * p / pantheon.MaxPiety},
	)

	out := o.itemGranted(ctx, pantheon.Nemelex, rarity+" "+name)
	o.narrate(ctx, pantheon.Nemelex, engine.NarrationPlain, "Something appears at your feet!")
	o.incGiftTimeout(5 + o.rand.Random2Avg(9, 2))
	return out
}

func (o *orchestrator) pakellasGift(ctx context.Context, profile *engine.Profile, forced bool) *GrantGiftOutput {
	s := o.state
	p := s.Piety
	total := s.TotalGifts[pantheon.Pakellas]
	if !(forced && o.rand.CoinFlip() ||
		p >= pantheon.Breakpoint(1) && total == 0 ||
		p >= pantheon.Breakpoint(3) && total == 1 ||
		!forced && o.rand.Random2(p) > pantheon.Breakpoint(3) && o.rand.OneChanceIn(4)) {
		return &GrantGiftOutput{}
	}

	var category engine.ItemCategory
	switch {
	case total == 0:
		category = engine.ItemWand
	case profile.Felid:
		category = engine.ItemMisc
		if o.rand.CoinFlip() {
			category = engine.ItemWand
		}
	case total == 1:
		category = engine.ItemRod
	default:
		category, _ = rng.Choose(o.rand,
			rng.Weighted[engine.ItemCategory]{Value: engine.ItemWand, Weight: 5},
			rng.Weighted[engine.ItemCategory]{Value: engine.ItemMisc, Weight: 5},
			rng.Weighted[engine.ItemCategory]{Value: engine.ItemRod, Weight: 3},
		)
	}

	name, ok := o.acquire(ctx, pantheon.Pakellas, category, "")
	if !ok {
		return &GrantGiftOutput{}
	}
	if total > 0 {
		o.incGiftTimeout(150 + o.rand.Random2Avg(29, 2))
	}
	return o.itemGranted(ctx, pantheon.Pakellas, name)
}

// armsGift covers Okawaru and Trog
func (o *orchestrator) armsGift(ctx context.Context, profile *engine.Profile, forced bool) *GrantGiftOutput {
	s := o.state
	patron := s.ActivePatron
	if profile.Felid {
		return &GrantGiftOutput{}
	}

	needMissiles := forced || profile.MissilesLow
	var category engine.ItemCategory
	switch {
	case forced && o.rand.CoinFlip() ||
		!forced && s.Piety >= pantheon.Breakpoint(4) && o.rand.Random2(s.Piety) > 120 && o.rand.OneChanceIn(4):
		category = engine.ItemArmour
		if patron == pantheon.Trog || o.rand.CoinFlip() {
			category = engine.ItemWeapon
		}
	case needMissiles:
		category = engine.ItemMissiles
	default:
		return &GrantGiftOutput{}
	}

	name, ok := o.acquire(ctx, patron, category, "")
	if !ok {
		return &GrantGiftOutput{}
	}

	if category == engine.ItemMissiles {
		o.incGiftTimeout(4 + o.rand.RollDice(2, 4))
	} else {
		if patron == pantheon.Okawaru && category == engine.ItemArmour {
			o.incGiftTimeout(30 + o.rand.Random2Avg(15, 2))
		}
		o.incGiftTimeout(30 + o.rand.Random2Avg(19, 2))
	}
	return o.itemGranted(ctx, patron, name)
}

// servantGift queues a batch of undead servants for the end of the turn
func (o *orchestrator) servantGift(_ context.Context, _ *engine.Profile, forced bool) *GrantGiftOutput {
	s := o.state
	if !(forced || o.rand.Random2(s.Piety) >= pantheon.Breakpoint(2) && o.rand.OneChanceIn(4)) {
		return &GrantGiftOutput{}
	}

	threshold := min(max(minServantThreshold+s.CurrentGifts[pantheon.Yredelemnul]/2, minServantThreshold), len(yredServants))
	servant := o.rand.Random2(threshold)
	// the weakest servants stop showing up once the threshold is high
	if (servant+2)*2 < threshold {
		return &GrantGiftOutput{}
	}

	count := 1
	if servant == flyingSkull {
		count = 2 + o.rand.Random2(4)
	}
	spec := engine.EntitySpec{
		Kind:  engine.EntityUndeadServant,
		Name:  yredServants[servant],
		Group: pantheon.GroupUndeadServants,
		Tier:  servant,
	}
	for i := 0; i < count; i++ {
		o.queue.Enqueue(&placement.Request{Patron: pantheon.Yredelemnul, Spec: spec})
	}
	o.queue.EnqueueBatchEnd(" grants you @an@ undead servant@s@!", "", o.servantsArrived)

	return &GrantGiftOutput{Granted: true, Kind: GiftServants, Detail: spec.Name, Deferred: true}
}

func (o *orchestrator) servantsArrived(_ context.Context, patron pantheon.Patron, placed int) {
	if placed <= 0 || o.state.ActivePatron != patron {
		return
	}
	o.incGiftTimeout(4 + o.rand.Random2Avg(7, 2))
	o.countGift(patron)
	o.logger.Info("servants placed", "patron", patron.Key(), "placed", placed)
}

func (o *orchestrator) mutationGift(ctx context.Context, profile *engine.Profile, forced bool) *GrantGiftOutput {
	s := o.state
	if !(forced ||
		s.Piety >= pantheon.Breakpoint(2) && o.rand.Random2(s.Piety) > 50 &&
			o.rand.OneChanceIn(4) && s.GiftTimeout == 0 && profile.CanSafelyMutate) {
		return &GrantGiftOutput{}
	}

	o.narrate(ctx, pantheon.Jiyva, engine.NarrationGod, " alters your body.")
	if !o.applyEffect(ctx, pantheon.Jiyva, pantheon.EffectMutation, false, 0) {
		o.narrate(ctx, pantheon.Jiyva, engine.NarrationPlain, "You feel as though nothing has changed.")
		return &GrantGiftOutput{}
	}

	o.incGiftTimeout(15 + o.rand.RollDice(2, 4))
	o.countGift(pantheon.Jiyva)
	return &GrantGiftOutput{Granted: true, Kind: GiftMutation, Detail: string(pantheon.EffectMutation)}
}

// necronomiconGift hands out the two lesser necromancy books in quick
// succession and nothing after
func (o *orchestrator) necronomiconGift(ctx context.Context, _ *engine.Profile, _ bool) *GrantGiftOutput {
	s := o.state
	total := s.TotalGifts[pantheon.Kikubaaqudgha]

	var book string
	switch {
	case s.Piety >= pantheon.Breakpoint(0) && total == 0:
		book = "necromancy"
	case s.Piety >= pantheon.Breakpoint(2) && total == 1:
		book = "death"
	default:
		return &GrantGiftOutput{}
	}

	name, ok := o.acquire(ctx, pantheon.Kikubaaqudgha, engine.ItemSpellbook, book)
	if !ok {
		return &GrantGiftOutput{}
	}
	return o.itemGranted(ctx, pantheon.Kikubaaqudgha, name)
}

func (o *orchestrator) spellbookGift(ctx context.Context, _ *engine.Profile, forced bool) *GrantGiftOutput {
	s := o.state
	if !(forced || s.Piety >= pantheon.Breakpoint(5) && o.rand.Random2(s.Piety) > 100) {
		return &GrantGiftOutput{}
	}

	// quiet when every book has been seen
	name, ok := o.acquire(ctx, pantheon.SifMuna, engine.ItemSpellbook, "")
	if !ok {
		return &GrantGiftOutput{}
	}
	o.incGiftTimeout(40 + o.rand.Random2Avg(19, 2))
	return o.itemGranted(ctx, pantheon.SifMuna, name)
}
