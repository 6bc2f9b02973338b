package favor

import (
	"context"

	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
)

// OnTimePassed runs the periodic favor checks once per elapsed tick: wrath
// from angry patrons, then piety decay for the active one
func (o *orchestrator) OnTimePassed(ctx context.Context, input *TimePassedInput) (*TimePassedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Ticks < 0 {
		return nil, errors.InvalidArgumentf("ticks must not be negative, got %d", input.Ticks)
	}

	s := o.state
	out := &TimePassedOutput{}
	for i := 0; i < input.Ticks; i++ {
		if angry := o.angryPatrons(); len(angry) > 0 && o.rand.XChanceInY(len(angry), retributionOdds) {
			patron := angry[o.rand.Random2(len(angry))]
			o.retribution(ctx, patron)
			out.Retributions = append(out.Retributions, patron)
		}

		if o.ageSpellOffers(ctx) {
			out.OffersLapsed = true
		}

		patron := s.ActivePatron
		if patron == pantheon.None {
			continue
		}
		cfg := pantheon.ConfigFor(patron)
		if cfg.DecayOneIn <= 0 {
			continue
		}
		if o.rand.OneChanceIn(cfg.DecayOneIn) {
			before := s.Piety
			o.losePiety(ctx, 1)
			out.PietyLost += before - s.Piety
		}
		// checked every tick so piety lost elsewhere still costs the patron
		if s.Piety < 1 {
			o.leave(ctx, pantheon.None, false)
			out.Excommunicated = true
		}
	}
	o.settle(ctx, s.ActivePatron)

	return out, nil
}
