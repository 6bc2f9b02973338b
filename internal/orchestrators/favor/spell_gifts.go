package favor

import (
	"context"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-pantheon/internal/clients/external"
	"github.com/KirkDiggler/rpg-pantheon/internal/engine"
	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
	"github.com/KirkDiggler/rpg-pantheon/internal/pkg/rng"
)

// Spell gift windows, indexed by the number of spell gifts given so far
var (
	spellGiftMinLevel = [...]int{1, 1, 2, 3, 3, 4, 4, 5, 5, 6, 6, 6, 8}
	spellGiftMaxLevel = [...]int{1, 2, 3, 4, 5, 7, 7, 7, 7, 7, 7, 7, 9}
)

// numSpellGifts is the number of spell gifts a patron ever offers
const numSpellGifts = len(spellGiftMinLevel)

const (
	spellBaseWeight     = 100
	maxSpellPreference  = 10
	finalGiftOfferCount = 3
)

func (o *orchestrator) spellGift(ctx context.Context, profile *engine.Profile, forced bool) *GrantGiftOutput {
	s := o.state
	p := s.Piety
	gifts := s.TotalGifts[pantheon.Vehumet]
	if !(forced || len(s.SpellOffers) == 0 &&
		(p >= pantheon.Breakpoint(0) && gifts == 0 ||
			p >= pantheon.Breakpoint(0)+o.rand.Random2(6)+18*gifts && gifts <= 5 ||
			p >= pantheon.Breakpoint(4) && gifts <= 11 && o.rand.OneChanceIn(20) ||
			p >= pantheon.Breakpoint(5) && gifts <= 12 && o.rand.OneChanceIn(20))) {
		return &GrantGiftOutput{}
	}

	offers := o.spellOffers(ctx, profile)
	if len(offers) == 0 {
		return &GrantGiftOutput{}
	}

	ids := make([]string, len(offers))
	names := make([]string, len(offers))
	for i, spell := range offers {
		ids[i] = spell.ID
		names[i] = spell.Name
		s.OldSpellGifts[spell.ID] = true
	}
	s.SpellOffers = ids
	s.SpellOfferTimeout = pantheon.SpellOfferTicks

	msg := " offers you knowledge of " + joinList(names) + "."
	if gifts >= numSpellGifts-1 {
		msg += " These spells will remain available as long as you worship Vehumet."
		s.SpellOfferTimeout = 0
	}
	if gifts >= 5 {
		o.incGiftTimeout(30 + o.rand.Random2Avg(30, 2))
	}
	o.countGift(pantheon.Vehumet)
	o.narrate(ctx, pantheon.Vehumet, engine.NarrationGift, msg)

	return &GrantGiftOutput{Granted: true, Kind: GiftSpells, Detail: strings.Join(ids, ",")}
}

// spellOffers draws up to three distinct spells; the final gift offers a
// choice of three
func (o *orchestrator) spellOffers(ctx context.Context, profile *engine.Profile) []*external.SpellData {
	want := 1
	if o.state.TotalGifts[pantheon.Vehumet] == numSpellGifts-1 {
		want = finalGiftOfferCount
	}

	var offers []*external.SpellData
	excluded := make(map[string]bool)
	for len(offers) < want {
		spell, ok := o.findSpellGift(ctx, profile, excluded)
		if !ok {
			break
		}
		offers = append(offers, spell)
		excluded[spell.ID] = true
	}
	return offers
}

func (o *orchestrator) findSpellGift(ctx context.Context, profile *engine.Profile, excluded map[string]bool) (*external.SpellData, bool) {
	res := rng.NewReservoir[*external.SpellData](o.rand)
	for _, spell := range o.eligibleSpells(ctx, profile, excluded) {
		res.Offer(spell, spellWeight(profile, spell))
	}
	return res.Pick()
}

func spellWeight(profile *engine.Profile, spell *external.SpellData) int {
	pref := profile.ElementPreference[spell.Element]
	pref = min(max(pref, -maxSpellPreference), maxSpellPreference)
	return spellBaseWeight + pref
}

// eligibleSpells returns the unseen spells inside the current level window.
// Once those run out the seen ones are used instead, and when even those are
// gone the gift is skipped and counted.
func (o *orchestrator) eligibleSpells(ctx context.Context, profile *engine.Profile, excluded map[string]bool) []*external.SpellData {
	s := o.state
	gifts := s.TotalGifts[pantheon.Vehumet]
	if gifts >= numSpellGifts {
		return nil
	}
	minLevel, maxLevel := spellGiftMinLevel[gifts], spellGiftMaxLevel[gifts]
	if minLevel > profile.XPLevel {
		return nil
	}

	var fresh, backup []*external.SpellData
	for level := minLevel; level <= maxLevel; level++ {
		spells, err := o.catalog.ListSpells(ctx, &external.ListSpellsInput{
			Level:  level,
			School: external.SchoolEvocation,
		})
		if err != nil {
			o.logger.Warn("spell catalog unavailable", "level", level, "error", err)
			continue
		}
		for _, spell := range spells {
			if spell == nil || excluded[spell.ID] || profile.KnowsSpell(spell.ID) {
				continue
			}
			if s.SpellsSeen[spell.ID] || s.OldSpellGifts[spell.ID] {
				backup = append(backup, spell)
			} else {
				fresh = append(fresh, spell)
			}
		}
	}

	if len(fresh) > 0 {
		sortSpells(fresh)
		return fresh
	}
	if len(backup) == 0 {
		o.countGift(pantheon.Vehumet)
	}
	sortSpells(backup)
	return backup
}

func sortSpells(spells []*external.SpellData) {
	sort.Slice(spells, func(i, j int) bool { return spells[i].ID < spells[j].ID })
}

// joinList renders "a", "a and b" or "a, b, and c"
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

// AcceptSpellGift memorises one of the outstanding offers
func (o *orchestrator) AcceptSpellGift(ctx context.Context, input *AcceptSpellGiftInput) (*AcceptSpellGiftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SpellID == "" {
		return nil, errors.InvalidArgument("spell ID is required")
	}

	s := o.state
	idx := -1
	for i, id := range s.SpellOffers {
		if id == input.SpellID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &AcceptSpellGiftOutput{}, nil
	}

	s.SpellOffers = append(s.SpellOffers[:idx:idx], s.SpellOffers[idx+1:]...)
	if len(s.SpellOffers) == 0 {
		s.SpellOfferTimeout = 0
	}
	s.SpellsSeen[input.SpellID] = true
	o.logger.Info("spell gift accepted", "spell", input.SpellID)

	return &AcceptSpellGiftOutput{Accepted: true}, nil
}

// ageSpellOffers counts an open offer down by one tick and withdraws it when
// the window closes
func (o *orchestrator) ageSpellOffers(ctx context.Context) bool {
	s := o.state
	if s.SpellOfferTimeout <= 0 {
		return false
	}
	s.SpellOfferTimeout--
	if s.SpellOfferTimeout > 0 {
		return false
	}

	o.logger.Info("spell offers lapsed", "offers", len(s.SpellOffers))
	s.SpellOffers = nil
	o.narrate(ctx, pantheon.Vehumet, engine.NarrationGod, "'s offer of knowledge lapses.")
	return true
}
