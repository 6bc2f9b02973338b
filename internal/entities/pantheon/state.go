package pantheon

import (
	"time"

	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
)

// State is the player's full relationship with the pantheon. It is persisted
// as a flat record and round-trips verbatim.
type State struct {
	SessionID       string `json:"session_id"`
	ActivePatron    Patron `json:"active_patron"`
	Piety           int    `json:"piety"`
	PietyHysteresis int    `json:"piety_hysteresis"`
	GiftTimeout     int    `json:"gift_timeout"`

	Penance        map[Patron]int `json:"penance"`
	WrathXPTimeout int            `json:"wrath_xp_timeout"`

	CurrentGifts map[Patron]int  `json:"current_gifts"`
	TotalGifts   map[Patron]int  `json:"total_gifts"`
	PietyMax     map[Patron]int  `json:"piety_max"`
	Worshipped   map[Patron]bool `json:"worshipped"`

	SuppressedPassives map[Patron][]Passive `json:"suppressed_passives"`
	ExpDebt            map[Patron]int       `json:"exp_debt"`

	// Piety banked when a good patron is abandoned voluntarily, credited to
	// the next good patron joined
	SavedGoodPiety     int    `json:"saved_good_piety"`
	PreviousGoodPatron Patron `json:"previous_good_patron"`

	// Spell gift bookkeeping. A zero SpellOfferTimeout with offers pending
	// means the offers never lapse.
	SpellOffers       []string        `json:"spell_offers"`
	SpellOfferTimeout int             `json:"spell_offer_timeout"`
	SpellsSeen        map[string]bool `json:"spells_seen"`
	OldSpellGifts     map[string]bool `json:"old_spell_gifts"`

	UpdatedAt time.Time `json:"updated_at"`
}

// NewState returns an empty state with no patron
func NewState(sessionID string) *State {
	s := &State{SessionID: sessionID}
	s.ensureMaps()
	return s
}

func (s *State) ensureMaps() {
	if s.Penance == nil {
		s.Penance = make(map[Patron]int)
	}
	if s.CurrentGifts == nil {
		s.CurrentGifts = make(map[Patron]int)
	}
	if s.TotalGifts == nil {
		s.TotalGifts = make(map[Patron]int)
	}
	if s.PietyMax == nil {
		s.PietyMax = make(map[Patron]int)
	}
	if s.Worshipped == nil {
		s.Worshipped = make(map[Patron]bool)
	}
	if s.SuppressedPassives == nil {
		s.SuppressedPassives = make(map[Patron][]Passive)
	}
	if s.ExpDebt == nil {
		s.ExpDebt = make(map[Patron]int)
	}
	if s.SpellsSeen == nil {
		s.SpellsSeen = make(map[string]bool)
	}
	if s.OldSpellGifts == nil {
		s.OldSpellGifts = make(map[string]bool)
	}
}

// Normalize fills nil maps, as left behind by decoding an older record
func (s *State) Normalize() {
	s.ensureMaps()
}

// Rank is the derived rank of the active patron
func (s *State) Rank() int {
	if s.ActivePatron == None {
		return 0
	}
	return Rank(s.ActivePatron, s.Piety)
}

// Clone returns a deep copy
func (s *State) Clone() *State {
	c := *s
	c.Penance = cloneMap(s.Penance)
	c.CurrentGifts = cloneMap(s.CurrentGifts)
	c.TotalGifts = cloneMap(s.TotalGifts)
	c.PietyMax = cloneMap(s.PietyMax)
	c.Worshipped = cloneMap(s.Worshipped)
	c.ExpDebt = cloneMap(s.ExpDebt)
	c.SpellsSeen = cloneMap(s.SpellsSeen)
	c.OldSpellGifts = cloneMap(s.OldSpellGifts)
	c.SpellOffers = append([]string(nil), s.SpellOffers...)
	c.SuppressedPassives = make(map[Patron][]Passive, len(s.SuppressedPassives))
	for k, v := range s.SuppressedPassives {
		c.SuppressedPassives[k] = append([]Passive(nil), v...)
	}
	return &c
}

func cloneMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Validate checks the bounds every persisted record must respect
func (s *State) Validate() error {
	vb := errors.NewValidationBuilder()
	if !s.ActivePatron.Valid() {
		vb.Fieldf("ActivePatron", "out of range: %d", int(s.ActivePatron))
	}
	vb.Range("Piety", s.Piety, 0, MaxPiety)
	if s.ActivePatron == None && s.Piety != 0 {
		vb.Fieldf("Piety", "must be 0 without a patron, got %d", s.Piety)
	}
	vb.Range("PietyHysteresis", s.PietyHysteresis, 0, HysteresisLimit).
		Range("GiftTimeout", s.GiftTimeout, 0, MaxGiftTimeout).
		Range("SpellOfferTimeout", s.SpellOfferTimeout, 0, SpellOfferTicks)
	if len(s.SpellOffers) == 0 && s.SpellOfferTimeout != 0 {
		vb.Fieldf("SpellOfferTimeout", "must be 0 without offers, got %d", s.SpellOfferTimeout)
	}
	for p, v := range s.Penance {
		vb.Range("Penance."+p.Key(), v, 0, MaxPenance)
	}
	return vb.Build()
}

// Clamp forces every bounded field back into range and reports whether
// anything changed. Used when repairing stored records.
func (s *State) Clamp() bool {
	s.ensureMaps()
	changed := false
	clampInt := func(v *int, lo, hi int) {
		if *v < lo {
			*v, changed = lo, true
		} else if *v > hi {
			*v, changed = hi, true
		}
	}

	if !s.ActivePatron.Valid() {
		s.ActivePatron, changed = None, true
	}
	clampInt(&s.Piety, 0, MaxPiety)
	if s.ActivePatron == None && s.Piety != 0 {
		s.Piety, changed = 0, true
	}
	clampInt(&s.PietyHysteresis, 0, HysteresisLimit)
	clampInt(&s.GiftTimeout, 0, MaxGiftTimeout)
	clampInt(&s.SpellOfferTimeout, 0, SpellOfferTicks)
	if len(s.SpellOffers) == 0 && s.SpellOfferTimeout != 0 {
		s.SpellOfferTimeout, changed = 0, true
	}
	for p, v := range s.Penance {
		clampInt(&v, 0, MaxPenance)
		if v == 0 {
			delete(s.Penance, p)
			continue
		}
		s.Penance[p] = v
	}
	return changed
}
