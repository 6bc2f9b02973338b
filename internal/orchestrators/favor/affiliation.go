package favor

import (
	"context"
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-pantheon/internal/engine"
	"github.com/KirkDiggler/rpg-pantheon/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
	"github.com/KirkDiggler/rpg-pantheon/internal/services/placement"
)

const (
	monkBonus        = 35
	firstChaosBonus  = 20
	maxChaosTimeout  = 40
	ancestorMemorial = " brings forth the memory of your ancestor!"
)

var refusalMessages = map[RefusalReason]string{
	RefusalGold:            " does not accept service from beggars like you!",
	RefusalLoveless:        " does not accept worship from the loveless!",
	RefusalNoArtifice:      " does not accept worship for those who cannot deal a hand of cards!",
	RefusalFelid:           " does not accept worship from the spawn of common housecats!",
	RefusalForm:            " says: How dare you come in such a loathsome form!",
	RefusalUnforgiven:      " refuses to forgive you so easily!",
	RefusalAlreadyFollower: " is already your patron.",
}

const defaultRefusal = " does not accept worship from those such as you!"

// forsakeMessages narrate a follower group turning on the player
var forsakeMessages = map[pantheon.FollowerGroup]string{
	pantheon.GroupUndeadServants: " reclaims all of your granted undead slaves!",
	pantheon.GroupDemonServants:  "Your demonic servants break free of their bonds.",
	pantheon.GroupBerserkers:     "Your berserker allies turn on you.",
	pantheon.GroupOrcFollowers:   "All of your followers decide to abandon you.",
	pantheon.GroupSlimes:         "All of your fellow slimes turn on you.",
	pantheon.GroupPlants:         "The plants of the dungeon turn on you.",
	pantheon.GroupAncestor:       "Your ancestor fades from memory.",
	pantheon.GroupHoly:           "The divine host forsakes you.",
	pantheon.GroupUnholy:         "Your unholy and evil allies forsake you.",
	pantheon.GroupSpellcasters:   "Your magic-using allies forsake you.",
	pantheon.GroupUnclean:        "Your unclean and chaotic allies forsake you.",
}

var farewells = map[pantheon.Patron]string{
	pantheon.Elyvilon:   "aid the meek",
	pantheon.ShiningOne: "vanquish evil",
	pantheon.Zin:        "enforce order",
}

// GozagServiceFee is the gold Gozag charges to join, given every piece of
// gold generated so far. Monks joining their first patron pay nothing.
func GozagServiceFee(goldGenerated int, monkWithoutPriorPatron bool) int {
	if monkWithoutPriorPatron || goldGenerated <= 0 {
		return 0
	}
	gold := float64(goldGenerated)
	return int(gold-gold/math.Log10(gold+10)) / 2
}

func (o *orchestrator) hadPatrons() bool {
	for _, ok := range o.state.Worshipped {
		if ok {
			return true
		}
	}
	return false
}

func (o *orchestrator) serviceFee(profile *engine.Profile) int {
	return GozagServiceFee(profile.GoldGenerated, profile.Class == engine.ClassMonk && !o.hadPatrons())
}

// eligibility applies the species, mutation, form and gold rules
func (o *orchestrator) eligibility(profile *engine.Profile, patron pantheon.Patron) (RefusalReason, int) {
	fee := 0
	if patron == pantheon.Gozag {
		fee = o.serviceFee(profile)
	}

	switch {
	case patron == o.state.ActivePatron:
		return RefusalAlreadyFollower, fee
	case profile.Demigod:
		return RefusalDemigod, fee
	case pantheon.IsGood(patron) && (profile.Undead || profile.Demonic):
		return RefusalUnholy, fee
	case patron == pantheon.Yredelemnul && profile.Artificial:
		return RefusalArtificial, fee
	case patron == pantheon.Beogh && !profile.Orc:
		return RefusalNotOrcish, fee
	case patron == pantheon.Hepliaklqana && profile.Felid:
		return RefusalFelid, fee
	case patron == pantheon.Fedhas && profile.Undead:
		return RefusalUndead, fee
	case patron == pantheon.Gozag && profile.Gold < fee:
		return RefusalGold, fee
	case profile.HasMutation(engine.MutationNoLove) &&
		(patron == pantheon.Beogh || patron == pantheon.Jiyva || patron == pantheon.Elyvilon || patron == pantheon.Hepliaklqana):
		return RefusalLoveless, fee
	case profile.HasMutation(engine.MutationNoArtifice) && patron == pantheon.Nemelex:
		return RefusalNoArtifice, fee
	case !formAllows(profile.Form, patron):
		return RefusalForm, fee
	case patron == pantheon.Lugonu && o.state.Penance[pantheon.Lugonu] > 0:
		return RefusalUnforgiven, fee
	}
	return RefusalNone, fee
}

// formAllows lists the patrons that reject a transformed player
func formAllows(form engine.Form, patron pantheon.Patron) bool {
	if patron == pantheon.Zin && form != engine.FormNone {
		return false
	}
	switch form {
	case engine.FormLich:
		return !pantheon.IsGood(patron) && patron != pantheon.Fedhas
	case engine.FormShadow:
		return !pantheon.IsGood(patron)
	case engine.FormStatue:
		return patron != pantheon.Yredelemnul
	default:
		return true
	}
}

// CheckEligibility reports whether the player may join patron right now
func (o *orchestrator) CheckEligibility(ctx context.Context, input *CheckEligibilityInput) (*CheckEligibilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePatron(input.Patron); err != nil {
		return nil, err
	}

	profile, err := o.profile(ctx)
	if err != nil {
		return nil, err
	}

	reason, fee := o.eligibility(profile, input.Patron)
	return &CheckEligibilityOutput{Eligible: reason == RefusalNone, Reason: reason, Fee: fee}, nil
}

// Join makes patron the active patron, leaving the current one first
func (o *orchestrator) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePatron(input.Patron); err != nil {
		return nil, err
	}

	profile, err := o.profile(ctx)
	if err != nil {
		return nil, err
	}

	patron := input.Patron
	s := o.state
	reason, fee := o.eligibility(profile, patron)
	if reason != RefusalNone {
		o.refuse(ctx, patron, reason, fee, profile.Gold)
		return &JoinOutput{Refusal: reason, Fee: fee, Former: s.ActivePatron, Piety: s.Piety}, nil
	}

	former := s.ActivePatron
	if former != pantheon.None {
		o.leave(ctx, patron, true)
	}
	firstPatron := !o.hadPatrons()

	s.ActivePatron = patron
	welcome := " welcomes you!"
	if s.Worshipped[patron] {
		welcome = " welcomes you back!"
	}
	o.narrate(ctx, patron, engine.NarrationGod, welcome)

	o.setInitialPiety(ctx, patron, profile, firstPatron)
	o.runJoinHooks(ctx, patron, fee)

	s.Worshipped[patron] = true
	o.checkGoodWrath(ctx, former)

	cfg := pantheon.ConfigFor(patron)
	if !cfg.GoldGatedPowers {
		for _, p := range cfg.PowersAt(0) {
			o.grantPower(ctx, patron, p)
		}
	}

	s.PreviousGoodPatron = pantheon.None
	s.SavedGoodPiety = 0

	o.logger.Info("patron joined",
		"patron", patron.Key(),
		"former", former.Key(),
		"piety", s.Piety)
	o.publish(ctx, rpgtoolkit.TopicJoined, patron, map[string]any{
		rpgtoolkit.KeyOther:  former.Key(),
		rpgtoolkit.KeyToRank: s.Rank(),
	})
	o.settle(ctx, patron)

	return &JoinOutput{Joined: true, Former: former, Fee: fee, Piety: s.Piety}, nil
}

func (o *orchestrator) refuse(ctx context.Context, patron pantheon.Patron, reason RefusalReason, fee, gold int) {
	msg, ok := refusalMessages[reason]
	if !ok {
		msg = defaultRefusal
	}
	o.narrate(ctx, patron, engine.NarrationRefusal, msg)

	if reason == RefusalGold {
		if gold == 0 {
			o.narrate(ctx, patron, engine.NarrationPlain,
				fmt.Sprintf("The service fee for joining is currently %d gold; you have none.", fee))
		} else {
			o.narrate(ctx, patron, engine.NarrationPlain,
				fmt.Sprintf("The service fee for joining is currently %d gold; you only have %d.", fee, gold))
		}
	}
	o.logger.Info("patron refused", "patron", patron.Key(), "reason", reason)
}

func (o *orchestrator) setInitialPiety(ctx context.Context, patron pantheon.Patron, profile *engine.Profile, firstPatron bool) {
	s := o.state
	cfg := pantheon.ConfigFor(patron)

	s.Piety = cfg.InitialPiety
	s.PietyHysteresis = 0
	s.GiftTimeout = 0
	if patron == pantheon.Xom {
		s.GiftTimeout = o.rand.Random2(maxChaosTimeout) + o.rand.Random2(maxChaosTimeout)
	}
	if s.PietyMax[patron] < s.Piety {
		s.PietyMax[patron] = s.Piety
	}

	if firstPatron && profile.Class == engine.ClassMonk {
		o.gainPiety(ctx, monkBonus, 1, false)
	}

	// good patrons credit piety banked from the previous good patron
	if !pantheon.IsGood(patron) {
		return
	}
	old := s.PreviousGoodPatron
	if !pantheon.IsGood(old) {
		return
	}
	if old != patron {
		o.narrate(ctx, old, engine.NarrationGod,
			fmt.Sprintf(" says: Farewell. Go and %s with %s.", farewells[old], patron))
	}
	if banked := s.SavedGoodPiety; banked > pantheon.Breakpoint(0) {
		o.gainPiety(ctx, banked-pantheon.Breakpoint(0), 2, false)
	}
}

func (o *orchestrator) runJoinHooks(ctx context.Context, patron pantheon.Patron, fee int) {
	s := o.state
	cfg := pantheon.ConfigFor(patron)

	for _, d := range cfg.JoinDirectives {
		o.reaffiliate(ctx, patron, d)
	}

	switch patron {
	case pantheon.Gozag:
		if fee > 0 && o.applyEffect(ctx, patron, pantheon.EffectGoldFee, false, fee) {
			o.narrate(ctx, patron, engine.NarrationGod, fmt.Sprintf("You pay a service fee of %d gold.", fee))
		} else {
			o.narrate(ctx, patron, engine.NarrationGod, " waives the service fee.")
		}
	case pantheon.Hepliaklqana:
		o.queue.Enqueue(&placement.Request{Patron: patron, Spec: engine.EntitySpec{
			Kind:  engine.EntityAncestor,
			Group: pantheon.GroupAncestor,
		}})
		o.queue.EnqueueBatchEnd("", "", nil)
		o.narrate(ctx, patron, engine.NarrationGod, ancestorMemorial)
	case pantheon.Jiyva:
		o.queue.Enqueue(&placement.Request{Patron: patron, Spec: engine.EntitySpec{
			Kind:  engine.EntityJelly,
			Group: pantheon.GroupSlimes,
		}})
		o.queue.EnqueueBatchEnd("", "", nil)
		o.narrate(ctx, patron, engine.NarrationGod, " grants you a jelly!")
	case pantheon.Trog:
		o.applyEffect(ctx, patron, pantheon.EffectStopMagicSkills, false, 0)
	case pantheon.Lugonu:
		if !s.Worshipped[pantheon.Lugonu] {
			o.gainPiety(ctx, firstChaosBonus, 1, false)
		}
	case pantheon.Cheibriados:
		o.narrate(ctx, patron, engine.NarrationGod, " begins to support your attributes as your movement slows.")
	case pantheon.Fedhas:
		o.narrate(ctx, patron, engine.NarrationPlain, "The plants of the dungeon cease their hostilities.")
	}
}

// checkGoodWrath warns when the new patron angers a good patron still owed
// penance
func (o *orchestrator) checkGoodWrath(ctx context.Context, former pantheon.Patron) {
	s := o.state
	for _, good := range []pantheon.Patron{pantheon.Elyvilon, pantheon.ShiningOne, pantheon.Zin} {
		if good == former || s.Penance[good] == 0 || !pantheon.Hates(good, s.ActivePatron) {
			continue
		}
		o.narrate(ctx, good, engine.NarrationGod, " says: "+goodWrathMessage(good, s.ActivePatron)+"!")
		o.armWrathXP(ctx)
	}
}

func goodWrathMessage(good, yours pantheon.Patron) string {
	switch good {
	case pantheon.Elyvilon:
		return "Your evil deeds will not go unpunished"
	case pantheon.ShiningOne:
		return "You will pay for your evil ways, mortal"
	default:
		if pantheon.IsChaotic(yours) {
			return "You will suffer for embracing such chaos"
		}
		return "You will suffer for embracing such evil"
	}
}

// Leave abandons the active patron without a successor
func (o *orchestrator) Leave(ctx context.Context, _ *LeaveInput) (*LeaveOutput, error) {
	former := o.state.ActivePatron
	if former == pantheon.None {
		return nil, errors.FailedPrecondition("no patron to leave")
	}
	o.leave(ctx, pantheon.None, true)
	o.settle(ctx, former)

	return &LeaveOutput{Former: former, Penance: o.state.Penance[former]}, nil
}

// leave tears down the active patron in favour of next. voluntary is false
// for excommunication.
func (o *orchestrator) leave(ctx context.Context, next pantheon.Patron, voluntary bool) {
	s := o.state
	old := s.ActivePatron
	errors.Assert(old != pantheon.None, "leaving with no patron")
	errors.Assert(old != next, "leaving %s for itself", old.Key())

	cfg := pantheon.ConfigFor(old)
	oldPiety := s.Piety

	s.Piety = 0
	s.PietyHysteresis = 0
	s.GiftTimeout = 0
	s.CurrentGifts[old] = 0
	if pantheon.IsGood(old) && voluntary {
		s.SavedGoodPiety = oldPiety
		s.PreviousGoodPatron = old
	} else {
		s.SavedGoodPiety = 0
		s.PreviousGoodPatron = pantheon.None
	}
	s.ActivePatron = pantheon.None
	if dropped := o.queue.Discard(old); dropped > 0 {
		o.logger.Info("pending placements dropped", "patron", old.Key(), "dropped", dropped)
	}

	o.narrate(ctx, old, engine.NarrationDanger, "You have lost your religion!")
	if pantheon.Hates(old, next) {
		o.narrate(ctx, old, engine.NarrationGod, " does not appreciate desertion"+desertionReaction(old, next)+"!")
	}

	for _, effect := range cfg.LeaveTeardown {
		o.applyEffect(ctx, old, effect, true, 0)
	}
	for _, d := range cfg.LeaveDirectives {
		o.reaffiliate(ctx, old, d)
	}
	switch {
	case old == pantheon.ShiningOne && pantheon.IsGood(next):
		o.reaffiliate(ctx, old, pantheon.Directive{Group: pantheon.GroupHoly, Disposition: pantheon.DispositionNeutral})
	case !pantheon.IsGood(next):
		o.reaffiliate(ctx, old, pantheon.Directive{Group: pantheon.GroupHoly, Disposition: pantheon.DispositionHostile})
	}

	if old == pantheon.Vehumet {
		s.SpellOffers = nil
		s.SpellOfferTimeout = 0
	}
	if cfg.ExpDebtOnLeave {
		if profile, err := o.profile(ctx); err != nil {
			o.logger.Warn("experience debt skipped", "patron", old.Key(), "error", err)
		} else {
			s.ExpDebt[old] = profile.XPToNextLevel
		}
	}

	s.Penance[old] = cfg.DesertionPenance
	delete(s.SuppressedPassives, old)
	o.armWrathXP(ctx)

	o.logger.Info("patron left",
		"patron", old.Key(),
		"next", next.Key(),
		"voluntary", voluntary,
		"penance", s.Penance[old])
	o.publish(ctx, rpgtoolkit.TopicLeft, old, map[string]any{
		rpgtoolkit.KeyOther:   next.Key(),
		rpgtoolkit.KeyPenance: s.Penance[old],
	})
}

func desertionReaction(old, next pantheon.Patron) string {
	if !pantheon.IsGood(old) {
		return ""
	}
	if old == pantheon.Zin && pantheon.IsChaotic(next) {
		return " for chaos"
	}
	if pantheon.IsEvil(next) {
		return " for evil"
	}
	return ""
}

// reaffiliate switches a follower group and narrates when anyone was
// affected
func (o *orchestrator) reaffiliate(ctx context.Context, patron pantheon.Patron, d pantheon.Directive) {
	out, err := o.world.BulkReaffiliate(ctx, &engine.BulkReaffiliateInput{Patron: patron, Directive: d})
	if err != nil {
		o.logger.Warn("reaffiliation failed",
			"patron", patron.Key(),
			"group", d.Group,
			"disposition", d.Disposition,
			"error", err)
		return
	}
	if out == nil || out.Affected == 0 || d.Disposition == pantheon.DispositionNeutral {
		return
	}
	if msg, ok := forsakeMessages[d.Group]; ok {
		o.narrate(ctx, patron, engine.NarrationDanger, msg)
	}
}
