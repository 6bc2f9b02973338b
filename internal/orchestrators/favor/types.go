package favor

import (
	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
)

// GainPietyInput defines the request for raising piety
type GainPietyInput struct {
	Amount      int
	Denominator int
	// Scale applies the faith modifier before dividing
	Scale bool
}

// GainPietyOutput defines the response for raising piety
type GainPietyOutput struct {
	// Accepted is false when the active patron cannot gain piety
	Accepted bool
	Piety    int
	Rank     int
}

// LosePietyInput defines the request for lowering piety
type LosePietyInput struct {
	Amount int
}

// LosePietyOutput defines the response for lowering piety
type LosePietyOutput struct {
	Piety int
	Rank  int
}

// SetPietyInput defines the request for moving piety to an exact value
type SetPietyInput struct {
	Target int
}

// SetPietyOutput defines the response for moving piety to an exact value
type SetPietyOutput struct {
	Piety int
}

// DockPietyInput defines the request for punishing a transgression
type DockPietyInput struct {
	PietyLoss int
	Penance   int
}

// DockPietyOutput defines the response for punishing a transgression
type DockPietyOutput struct {
	Piety          int
	Penance        int
	Excommunicated bool
}

// IncurPenanceInput defines the request for adding penance
type IncurPenanceInput struct {
	Patron pantheon.Patron
	Amount int
}

// IncurPenanceOutput defines the response for adding penance
type IncurPenanceOutput struct {
	Penance int
}

// DecayPenanceInput defines the request for paying penance off
type DecayPenanceInput struct {
	Patron pantheon.Patron
	Amount int
}

// DecayPenanceOutput defines the response for paying penance off
type DecayPenanceOutput struct {
	Penance            int
	Mollified          bool
	PartiallyMollified bool
}

// ExperienceGainedInput defines the request for reporting experience
type ExperienceGainedInput struct {
	XP int
}

// ExperienceGainedOutput defines the response for reporting experience
type ExperienceGainedOutput struct {
	// XPRetained is what is left after outstanding experience debt is paid
	XPRetained int
	DebtPaid   int
	// Decayed lists the patrons whose penance decayed on this gain
	Decayed []pantheon.Patron
}

// GrantGiftInput defines the request for a gift attempt
type GrantGiftInput struct {
	// Forced bypasses the penance and timeout gates and the patron's odds
	Forced bool
}

// GiftKind classifies what a patron handed out
type GiftKind string

// Gift kinds
const (
	GiftItem     GiftKind = "item"
	GiftServants GiftKind = "servants"
	GiftMutation GiftKind = "mutation"
	GiftSpells   GiftKind = "spells"
)

// GrantGiftOutput defines the response for a gift attempt
type GrantGiftOutput struct {
	Granted bool
	Kind    GiftKind
	// Detail names the item, the servant or the offered spells
	Detail string
	// Deferred is set for allies that arrive at the end of the turn
	Deferred bool
}

// AcceptSpellGiftInput defines the request for accepting an offered spell
type AcceptSpellGiftInput struct {
	SpellID string
}

// AcceptSpellGiftOutput defines the response for accepting an offered spell
type AcceptSpellGiftOutput struct {
	Accepted bool
}

// RefusalReason explains why a patron turned the player away
type RefusalReason string

// Refusal reasons
const (
	RefusalNone            RefusalReason = ""
	RefusalAlreadyFollower RefusalReason = "already_follower"
	RefusalDemigod         RefusalReason = "demigod"
	RefusalUnholy          RefusalReason = "unholy"
	RefusalArtificial      RefusalReason = "artificial"
	RefusalNotOrcish       RefusalReason = "not_orcish"
	RefusalFelid           RefusalReason = "felid"
	RefusalUndead          RefusalReason = "undead"
	RefusalLoveless        RefusalReason = "loveless"
	RefusalNoArtifice      RefusalReason = "no_artifice"
	RefusalForm            RefusalReason = "form"
	RefusalGold            RefusalReason = "insufficient_gold"
	RefusalUnforgiven      RefusalReason = "unforgiven"
)

// CheckEligibilityInput defines the request for an eligibility check
type CheckEligibilityInput struct {
	Patron pantheon.Patron
}

// CheckEligibilityOutput defines the response for an eligibility check
type CheckEligibilityOutput struct {
	Eligible bool
	Reason   RefusalReason
	// Fee is the Gozag service fee, reported even when it is affordable
	Fee int
}

// JoinInput defines the request for joining a patron
type JoinInput struct {
	Patron pantheon.Patron
}

// JoinOutput defines the response for joining a patron
type JoinOutput struct {
	Joined  bool
	Refusal RefusalReason
	Former  pantheon.Patron
	Fee     int
	Piety   int
}

// LeaveInput defines the request for abandoning the active patron
type LeaveInput struct{}

// LeaveOutput defines the response for abandoning the active patron
type LeaveOutput struct {
	Former  pantheon.Patron
	Penance int
}

// TimePassedInput defines the request for advancing idle time
type TimePassedInput struct {
	Ticks int
}

// TimePassedOutput defines the response for advancing idle time
type TimePassedOutput struct {
	Retributions   []pantheon.Patron
	PietyLost      int
	Excommunicated bool
	OffersLapsed   bool
}

// TurnEndOutput defines the response for ending the player's turn
type TurnEndOutput struct {
	Attempted int
	Placed    int
	Messages  []string
}
