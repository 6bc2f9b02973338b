package favor

import (
	"context"

	"github.com/KirkDiggler/rpg-pantheon/internal/engine"
	"github.com/KirkDiggler/rpg-pantheon/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
)

// retributionOdds is the denominator of the per-tick wrath roll; each angry
// patron adds one to the numerator
const retributionOdds = 20

// IncurPenance adds penance owed to patron
func (o *orchestrator) IncurPenance(ctx context.Context, input *IncurPenanceInput) (*IncurPenanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePatron(input.Patron); err != nil {
		return nil, err
	}

	o.incurPenance(ctx, input.Patron, input.Amount)
	o.settle(ctx, input.Patron)

	return &IncurPenanceOutput{Penance: o.state.Penance[input.Patron]}, nil
}

// DecayPenance pays penance off. A negative amount is a programming error.
func (o *orchestrator) DecayPenance(ctx context.Context, input *DecayPenanceInput) (*DecayPenanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePatron(input.Patron); err != nil {
		return nil, err
	}

	out := o.decPenance(ctx, input.Patron, input.Amount)
	o.settle(ctx, input.Patron)

	out.Penance = o.state.Penance[input.Patron]
	return out, nil
}

// IsActivelyRetributive reports whether patron may strike at the player
func (o *orchestrator) IsActivelyRetributive(patron pantheon.Patron) bool {
	s := o.state
	penance := s.Penance[patron]
	if penance <= 0 || patron == pantheon.None {
		return false
	}

	cfg := pantheon.ConfigFor(patron)
	if cfg.Wrath != pantheon.WrathActive {
		return false
	}
	if cfg.WrathThreshold > 0 && penance <= cfg.WrathThreshold {
		return false
	}

	if patron == s.ActivePatron {
		return !pantheon.IsGood(patron)
	}
	return pantheon.Hates(patron, s.ActivePatron)
}

func (o *orchestrator) angryPatrons() []pantheon.Patron {
	var out []pantheon.Patron
	for _, p := range pantheon.All() {
		if o.IsActivelyRetributive(p) {
			out = append(out, p)
		}
	}
	return out
}

func (o *orchestrator) incurPenance(ctx context.Context, patron pantheon.Patron, amount int) {
	if amount <= 0 {
		return
	}

	s := o.state
	if s.Penance[patron] == 0 {
		if patron == s.ActivePatron {
			s.SuppressedPassives[patron] = pantheon.ConfigFor(patron).PassivesAt(s.Rank())
		}
		for _, effect := range pantheon.ConfigFor(patron).PenanceTeardown {
			o.applyEffect(ctx, patron, effect, true, 0)
		}
	}

	s.Penance[patron] = min(pantheon.MaxPenance, s.Penance[patron]+amount)
	o.armWrathXP(ctx)

	o.logger.Info("penance incurred",
		"patron", patron.Key(),
		"amount", amount,
		"penance", s.Penance[patron])
	o.publish(ctx, rpgtoolkit.TopicPenanceIncurred, patron, map[string]any{
		rpgtoolkit.KeyAmount:  amount,
		rpgtoolkit.KeyPenance: s.Penance[patron],
	})
}

// armWrathXP starts the experience countdown if it is not already running
func (o *orchestrator) armWrathXP(ctx context.Context) {
	s := o.state
	if s.WrathXPTimeout > 0 {
		return
	}

	next := 0
	if p, err := o.profile(ctx); err != nil {
		o.logger.Warn("profile unavailable for wrath timeout", "error", err)
	} else {
		next = p.XPToNextLevel
	}
	s.WrathXPTimeout = max(o.rand.DivRandRound(next, 200), 1)
}

func (o *orchestrator) decPenance(ctx context.Context, patron pantheon.Patron, amount int) *DecayPenanceOutput {
	errors.Assert(amount >= 0, "negative penance decay %d for %s", amount, patron.Key())

	s := o.state
	out := &DecayPenanceOutput{}
	if amount == 0 || s.Penance[patron] <= 0 {
		return out
	}

	cfg := pantheon.ConfigFor(patron)
	switch {
	case s.Penance[patron] <= amount:
		s.Penance[patron] = 0
		out.Mollified = true
		o.mollify(ctx, patron)
	case cfg.WrathThreshold > 0 && s.Penance[patron] > cfg.WrathThreshold:
		s.Penance[patron] -= amount
		if s.Penance[patron] > cfg.WrathThreshold {
			return out
		}
		out.PartiallyMollified = true
		o.narrate(ctx, patron, engine.NarrationGod, " seems mollified... mostly.")
		o.publish(ctx, rpgtoolkit.TopicMollified, patron, map[string]any{
			rpgtoolkit.KeyPartial: true,
			rpgtoolkit.KeyPenance: s.Penance[patron],
		})
	default:
		s.Penance[patron] -= amount
		return out
	}

	if len(o.angryPatrons()) == 0 {
		s.WrathXPTimeout = 0
	}
	return out
}

func (o *orchestrator) mollify(ctx context.Context, patron pantheon.Patron) {
	s := o.state
	o.narrate(ctx, patron, engine.NarrationGod, " seems mollified.")
	o.logger.Info("patron mollified", "patron", patron.Key())
	o.publish(ctx, rpgtoolkit.TopicMollified, patron, map[string]any{
		rpgtoolkit.KeyPartial: false,
		rpgtoolkit.KeyPenance: 0,
	})

	snapshot := s.SuppressedPassives[patron]
	delete(s.SuppressedPassives, patron)

	switch {
	case patron == s.ActivePatron:
		o.restorePassives(ctx, patron, snapshot)
		for _, effect := range pantheon.ConfigFor(patron).MollifyRestore {
			o.applyEffect(ctx, patron, effect, false, 0)
		}
	case patron == pantheon.Pakellas:
		// the block on magic regeneration outlasts worship
		o.narrate(ctx, patron, engine.NarrationGod, "You begin regenerating magic.")
		o.applyEffect(ctx, patron, pantheon.EffectMagicRegen, false, 0)
	}
}

// restorePassives gives back the passives stripped when penance began. Any
// the current rank no longer supports stay lost.
func (o *orchestrator) restorePassives(ctx context.Context, patron pantheon.Patron, snapshot []pantheon.Passive) {
	now := o.currentPassives()
	for _, p := range snapshot {
		if !now[p] {
			o.logger.Info("passive lost while indebted", "patron", patron.Key(), "passive", p)
			continue
		}
		if o.enjoyed[p] {
			continue
		}
		o.enjoyed[p] = true
		if msg, ok := passiveGained[p]; ok {
			o.narrate(ctx, patron, engine.NarrationGod, msg)
		}
		o.publish(ctx, rpgtoolkit.TopicPassiveChanged, patron, map[string]any{
			rpgtoolkit.KeyPassive:  string(p),
			rpgtoolkit.KeyEnabled:  true,
			rpgtoolkit.KeyRestored: true,
		})
	}
}

// retribution fires one act of wrath from patron
func (o *orchestrator) retribution(ctx context.Context, patron pantheon.Patron) {
	o.narrate(ctx, patron, engine.NarrationDanger, retributionMessage(patron))
	o.applyEffect(ctx, patron, pantheon.EffectRetribution, false, o.state.Penance[patron])

	o.logger.Info("divine retribution",
		"patron", patron.Key(),
		"penance", o.state.Penance[patron])
	o.publish(ctx, rpgtoolkit.TopicRetribution, patron, map[string]any{
		rpgtoolkit.KeyPenance: o.state.Penance[patron],
		rpgtoolkit.KeyOther:   o.state.ActivePatron.Key(),
	})
}

func retributionMessage(patron pantheon.Patron) string {
	switch {
	case pantheon.IsGood(patron):
		return " says: \"You will suffer for your transgressions!\""
	case patron == pantheon.Xom:
		return " is bored of you."
	default:
		return "'s wrath finds you!"
	}
}

// OnExperienceGained pays down experience debt and drives the penance of
// patrons whose wrath decays with experience
func (o *orchestrator) OnExperienceGained(ctx context.Context, input *ExperienceGainedInput) (*ExperienceGainedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.XP < 0 {
		return nil, errors.InvalidArgumentf("xp must not be negative, got %d", input.XP)
	}

	s := o.state
	out := &ExperienceGainedOutput{XPRetained: input.XP}
	for _, p := range pantheon.All() {
		debt := s.ExpDebt[p]
		if debt <= 0 || out.XPRetained == 0 {
			continue
		}
		paid := min(debt, out.XPRetained)
		out.XPRetained -= paid
		out.DebtPaid += paid
		s.ExpDebt[p] = debt - paid
		if s.ExpDebt[p] == 0 {
			delete(s.ExpDebt, p)
			o.narrate(ctx, p, engine.NarrationPlain, "You feel your debt to "+p.String()+" is settled.")
		}
	}

	if s.WrathXPTimeout == 0 && o.experiencePenancePending() {
		// cleared by a mollification elsewhere
		o.armWrathXP(ctx)
	}
	if s.WrathXPTimeout > 0 && input.XP > 0 {
		s.WrathXPTimeout -= input.XP
		if s.WrathXPTimeout <= 0 {
			s.WrathXPTimeout = 0
			for _, p := range pantheon.All() {
				if s.Penance[p] > 0 && pantheon.ConfigFor(p).Wrath == pantheon.WrathExperience {
					o.decPenance(ctx, p, 1)
					out.Decayed = append(out.Decayed, p)
				}
			}
			if o.anyPenance() {
				o.armWrathXP(ctx)
			}
		}
	}
	o.settle(ctx, s.ActivePatron)

	return out, nil
}

func (o *orchestrator) anyPenance() bool {
	for _, v := range o.state.Penance {
		if v > 0 {
			return true
		}
	}
	return false
}

func (o *orchestrator) experiencePenancePending() bool {
	for p, v := range o.state.Penance {
		if v > 0 && pantheon.ConfigFor(p).Wrath == pantheon.WrathExperience {
			return true
		}
	}
	return false
}
