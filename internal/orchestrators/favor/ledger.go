package favor

import (
	"context"

	"github.com/KirkDiggler/rpg-pantheon/internal/engine"
	"github.com/KirkDiggler/rpg-pantheon/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
)

// GainPiety raises the active patron's piety one point at a time
func (o *orchestrator) GainPiety(ctx context.Context, input *GainPietyInput) (*GainPietyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Denominator <= 0 {
		return nil, errors.InvalidArgumentf("denominator must be positive, got %d", input.Denominator)
	}

	accepted := o.gainPiety(ctx, input.Amount, input.Denominator, input.Scale)
	o.settle(ctx, o.state.ActivePatron)

	return &GainPietyOutput{
		Accepted: accepted,
		Piety:    o.state.Piety,
		Rank:     o.state.Rank(),
	}, nil
}

// LosePiety lowers piety, banking up to the hysteresis limit first
func (o *orchestrator) LosePiety(ctx context.Context, input *LosePietyInput) (*LosePietyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgumentf("amount must not be negative, got %d", input.Amount)
	}

	o.losePiety(ctx, input.Amount)
	o.settle(ctx, o.state.ActivePatron)

	return &LosePietyOutput{Piety: o.state.Piety, Rank: o.state.Rank()}, nil
}

// SetPiety walks piety to an exact target
func (o *orchestrator) SetPiety(ctx context.Context, input *SetPietyInput) (*SetPietyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Target < 0 || input.Target > pantheon.MaxPiety {
		return nil, errors.InvalidArgumentf("target must be between 0 and %d, got %d", pantheon.MaxPiety, input.Target)
	}

	o.setPiety(ctx, input.Target)
	o.settle(ctx, o.state.ActivePatron)

	return &SetPietyOutput{Piety: o.state.Piety}, nil
}

// DockPiety punishes a transgression against the active patron. Falling
// below one piety costs the player their patron.
func (o *orchestrator) DockPiety(ctx context.Context, input *DockPietyInput) (*DockPietyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	patron := o.state.ActivePatron
	out := &DockPietyOutput{}
	if patron == pantheon.None || (input.PietyLoss <= 0 && input.Penance <= 0) {
		out.Piety = o.state.Piety
		return out, nil
	}

	loss := o.scale(ctx, input.PietyLoss)
	penance := o.scale(ctx, input.Penance)

	if loss > 0 {
		if o.lastGuiltTurn != o.turn {
			o.narrate(ctx, patron, engine.NarrationPlain, guiltMessage(loss))
		}
		o.lastGuiltTurn = o.turn
		o.losePiety(ctx, loss)
	}

	if o.state.Piety < 1 {
		o.leave(ctx, pantheon.None, false)
		out.Excommunicated = true
	} else if penance > 0 {
		if o.lastTransgression != o.turn {
			o.narrate(ctx, patron, engine.NarrationGod, " says: \"You will pay for your transgression, mortal!\"")
		}
		o.lastTransgression = o.turn
		o.incurPenance(ctx, patron, penance)
	}
	o.settle(ctx, patron)

	out.Piety = o.state.Piety
	out.Penance = o.state.Penance[patron]
	return out, nil
}

func guiltMessage(loss int) string {
	switch {
	case loss == 1:
		return "You feel a little guilty."
	case loss < 5:
		return "You feel guilty."
	case loss < 10:
		return "You feel very guilty."
	default:
		return "You feel extremely guilty."
	}
}

// scale applies the faith modifier
func (o *orchestrator) scale(ctx context.Context, amount int) int {
	if amount <= 0 {
		return amount
	}
	faith, err := o.world.QueryCapability(ctx, CapabilityFaith)
	if err != nil {
		o.logger.Warn("capability query failed", "capability", CapabilityFaith, "error", err)
		faith = false
	}
	if !faith {
		return amount
	}
	return amount + o.rand.DivRandRound(amount, 4)
}

func (o *orchestrator) gainPiety(ctx context.Context, amount, denominator int, scale bool) bool {
	s := o.state
	if amount <= 0 || s.ActivePatron == pantheon.None {
		return false
	}
	if !pantheon.ConfigFor(s.ActivePatron).UsesPiety {
		return false
	}

	if scale {
		amount = o.scale(ctx, amount)
	}
	points := o.rand.DivRandRound(amount, denominator)
	for ; points > 0; points-- {
		o.gainPoint(ctx)
	}

	if s.Piety > s.PietyMax[s.ActivePatron] {
		s.PietyMax[s.ActivePatron] = s.Piety
	}
	return true
}

// gainPoint is the single-point step of every gain
func (o *orchestrator) gainPoint(ctx context.Context) {
	s := o.state
	patron := s.ActivePatron
	cfg := pantheon.ConfigFor(patron)

	if s.Penance[patron] > 0 {
		o.decPenance(ctx, patron, 1)
		return
	}

	if s.GiftTimeout > 0 {
		s.GiftTimeout--
		if cfg.GiftTimeoutSlowsGain && !o.rand.OneChanceIn(4) {
			return
		}
	}

	switch cfg.Taper {
	case pantheon.TaperStandard:
		if s.Piety >= pantheon.MaxPiety ||
			s.Piety >= pantheon.Breakpoint(5) && o.rand.OneChanceIn(3) ||
			s.Piety >= pantheon.Breakpoint(3) && o.rand.OneChanceIn(3) {
			o.maybeGrantGift(ctx, false)
			return
		}
	case pantheon.TaperGentle:
		if s.Piety >= pantheon.MaxPiety ||
			s.Piety >= pantheon.Breakpoint(5) && o.rand.OneChanceIn(5) {
			o.maybeGrantGift(ctx, false)
			return
		}
	case pantheon.TaperCapped:
		if s.Piety >= cfg.PietyCap {
			return
		}
	}

	oldRank := s.Rank()
	if s.PietyHysteresis > 0 {
		s.PietyHysteresis--
	} else if s.Piety < cfg.PietyCap {
		s.Piety++
	}

	if rank := s.Rank(); rank > oldRank {
		o.rankChanged(ctx, patron, oldRank, rank)
	}

	o.maybeGrantGift(ctx, false)
}

func (o *orchestrator) losePiety(ctx context.Context, amount int) {
	s := o.state
	if amount <= 0 || s.ActivePatron == pantheon.None {
		return
	}

	oldRank := s.Rank()

	oldHysteresis := s.PietyHysteresis
	s.PietyHysteresis = min(pantheon.HysteresisLimit, s.PietyHysteresis+amount)
	amount -= s.PietyHysteresis - oldHysteresis

	s.Piety = max(0, s.Piety-amount)

	if rank := s.Rank(); rank < oldRank && s.Penance[s.ActivePatron] == 0 {
		o.rankChanged(ctx, s.ActivePatron, oldRank, rank)
	}
}

func (o *orchestrator) setPiety(ctx context.Context, target int) {
	s := o.state
	if s.ActivePatron == pantheon.Ru && target > pantheon.Breakpoint(5) {
		target = pantheon.Breakpoint(5)
	}

	for s.ActivePatron != pantheon.None {
		diff := target - s.Piety
		if diff == 0 {
			return
		}
		if diff < 0 {
			o.losePiety(ctx, -diff)
			continue
		}

		piety, hysteresis, timeout, penance := s.Piety, s.PietyHysteresis, s.GiftTimeout, s.Penance[s.ActivePatron]
		if !o.gainPiety(ctx, diff, 1, false) {
			return
		}
		if s.Piety == piety && s.PietyHysteresis == hysteresis &&
			s.GiftTimeout == timeout && s.Penance[s.ActivePatron] == penance {
			// capped below target
			return
		}
	}
}

// rankChanged announces every power gained or lost between two ranks
func (o *orchestrator) rankChanged(ctx context.Context, patron pantheon.Patron, from, to int) {
	cfg := pantheon.ConfigFor(patron)
	o.publish(ctx, rpgtoolkit.TopicRankChanged, patron, map[string]any{
		rpgtoolkit.KeyFromRank: from,
		rpgtoolkit.KeyToRank:   to,
	})

	if to > from {
		for r := from + 1; r <= to; r++ {
			for _, p := range cfg.PowersAt(r) {
				o.grantPower(ctx, patron, p)
			}
		}
		return
	}

	for r := from; r > to; r-- {
		for _, p := range cfg.PowersAt(r) {
			o.narrate(ctx, patron, engine.NarrationPrayer, "You can no longer "+p.Name+".")
			o.publish(ctx, rpgtoolkit.TopicPowerRevoked, patron, map[string]any{rpgtoolkit.KeyPower: p.Name})
		}
	}
}

func (o *orchestrator) grantPower(ctx context.Context, patron pantheon.Patron, p pantheon.Power) {
	o.narrate(ctx, patron, engine.NarrationPrayer, "You can now "+p.Name+".")
	o.publish(ctx, rpgtoolkit.TopicPowerGranted, patron, map[string]any{rpgtoolkit.KeyPower: p.Name})
}
