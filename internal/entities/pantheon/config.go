package pantheon

// WrathClass decides how a patron's penance behaves
type WrathClass int

const (
	// WrathActive patrons strike at the player while owed penance
	WrathActive WrathClass = iota
	// WrathExperience patrons never strike; penance decays as the player
	// gains experience
	WrathExperience
	// WrathInert patrons neither strike nor decay on their own
	WrathInert
)

// Taper controls how piety gain slows near the top of the scale
type Taper int

const (
	// TaperStandard converts points into gift attempts at max piety and,
	// with 1 in 3 chance each, above the fourth and sixth breakpoints
	TaperStandard Taper = iota
	// TaperGentle only tapers above the sixth breakpoint, 1 in 5
	TaperGentle
	// TaperCapped stops gaining at the sixth breakpoint and never gifts
	TaperCapped
)

// Config is the static record describing one patron
type Config struct {
	Patron    Patron
	Name      string
	Alignment Alignment
	Powers    []Power
	Passives  []PassiveRule

	UsesPiety    bool
	ChaosRanks   bool
	InitialPiety int
	PietyCap     int
	DecayOneIn   int
	Taper        Taper

	// GiftTimeoutSlowsGain suppresses three in four piety points while a
	// gift timeout is running
	GiftTimeoutSlowsGain bool
	GivesGifts           bool
	GoldGatedPowers      bool

	Wrath            WrathClass
	WrathThreshold   int
	DesertionPenance int
	ExpDebtOnLeave   bool

	PenanceTeardown []Effect
	MollifyRestore  []Effect
	LeaveTeardown   []Effect
	LeaveDirectives []Directive
	JoinDirectives  []Directive
}

const (
	defaultInitialPiety = 15
	defaultPenance      = 25
)

// ConfigFor returns the record for p. None gets an inert placeholder.
func ConfigFor(p Patron) *Config {
	if !p.Valid() {
		return configs[None]
	}
	return configs[p]
}

func hostile(groups ...FollowerGroup) []Directive {
	out := make([]Directive, len(groups))
	for i, g := range groups {
		out[i] = Directive{Group: g, Disposition: DispositionHostile}
	}
	return out
}

// base fills the fields most patrons share
func base(p Patron, name string, align Alignment) *Config {
	return &Config{
		Patron:               p,
		Name:                 name,
		Alignment:            align,
		UsesPiety:            true,
		InitialPiety:         defaultInitialPiety,
		PietyCap:             MaxPiety,
		GiftTimeoutSlowsGain: true,
		DesertionPenance:     defaultPenance,
	}
}

var configs = func() [NumPatrons]*Config {
	var t [NumPatrons]*Config

	t[None] = &Config{Patron: None, Name: "no patron", Wrath: WrathInert}

	c := base(Zin, "Zin", AlignGood)
	c.Powers = []Power{{0, "donate money to Zin"}, {1, "recite Zin's Axioms of Law"},
		{2, "call upon Zin for vitalisation"}, {3, "imprison the lawless"}, {5, "create a sanctuary"}}
	c.Passives = []PassiveRule{{PassiveMutationWard, 1}}
	c.DecayOneIn = 17
	c.PenanceTeardown = []Effect{EffectDivineStamina}
	c.LeaveTeardown = []Effect{EffectDivineStamina, EffectSanctuary}
	c.JoinDirectives = hostile(GroupUnclean, GroupUnholy)
	t[Zin] = c

	c = base(ShiningOne, "the Shining One", AlignGood)
	c.Powers = []Power{{1, "gain power from killing the unholy and evil"}, {2, "call for a divine shield"},
		{4, "channel blasts of cleansing flame"}, {5, "summon a divine warrior"}}
	c.Passives = []PassiveRule{{PassiveHalo, 1}}
	c.DecayOneIn = 35
	c.DesertionPenance = 30
	c.PenanceTeardown = []Effect{EffectDivineShield}
	c.LeaveTeardown = []Effect{EffectDivineShield}
	c.JoinDirectives = hostile(GroupUnholy)
	t[ShiningOne] = c

	c = base(Kikubaaqudgha, "Kikubaaqudgha", AlignEvil)
	c.Powers = []Power{{1, "receive cadavers"}, {5, "invoke torment by sacrificing a corpse"}}
	c.Passives = []PassiveRule{{PassiveMiscastProtection, 2}, {PassiveTormentResistance, 4}}
	c.DecayOneIn = 17
	c.GivesGifts = true
	c.DesertionPenance = 30
	c.LeaveTeardown = []Effect{EffectRotCorpses}
	t[Kikubaaqudgha] = c

	c = base(Yredelemnul, "Yredelemnul", AlignEvil)
	c.Powers = []Power{{1, "animate remains"}, {2, "recall your undead slaves"}, {2, "mirror injuries on your foes"},
		{3, "animate legions of the dead"}, {4, "drain ambient lifeforce"}, {5, "enslave living souls"}}
	c.Passives = []PassiveRule{{PassiveUmbra, 1}}
	c.DecayOneIn = 17
	c.GivesGifts = true
	c.DesertionPenance = 30
	c.LeaveTeardown = []Effect{EffectMirrorDamage}
	c.LeaveDirectives = []Directive{{GroupUndeadServants, DispositionRemoved}}
	t[Yredelemnul] = c

	c = base(Xom, "Xom", AlignChaotic)
	c.UsesPiety = false
	c.ChaosRanks = true
	c.InitialPiety = MaxPiety / 2
	c.DesertionPenance = 50
	t[Xom] = c

	c = base(Vehumet, "Vehumet", 0)
	c.Powers = []Power{{1, "gain magical power from killing"}}
	c.Passives = []PassiveRule{{PassiveSpellPower, 3}, {PassiveSpellRange, 4}}
	c.DecayOneIn = 17
	c.GivesGifts = true
	t[Vehumet] = c

	c = base(Okawaru, "Okawaru", 0)
	c.Powers = []Power{{1, "gain great but temporary skills"}, {5, "speed up your combat"}}
	c.DecayOneIn = 16
	c.GivesGifts = true
	c.DesertionPenance = 30
	t[Okawaru] = c

	c = base(Makhleb, "Makhleb", AlignEvil|AlignChaotic)
	c.Powers = []Power{{2, "harness Makhleb's destructive might"}, {3, "summon a lesser servant"},
		{4, "hurl Makhleb's greater destruction"}, {5, "summon a greater servant"}}
	c.Passives = []PassiveRule{{PassiveHealOnKill, 1}}
	c.DecayOneIn = 16
	c.LeaveDirectives = hostile(GroupDemonServants)
	t[Makhleb] = c

	c = base(SifMuna, "Sif Muna", 0)
	c.Powers = []Power{{1, "tap ambient magical fields"}, {4, "freely open your mind to new spells"}}
	c.Passives = []PassiveRule{{PassiveMiscastProtection, 2}}
	c.DecayOneIn = 100
	c.Taper = TaperGentle
	c.GivesGifts = true
	c.DesertionPenance = 50
	t[SifMuna] = c

	c = base(Trog, "Trog", 0)
	c.Powers = []Power{{0, "burn spellbooks"}, {1, "go berserk at will"},
		{2, "call upon Trog for regeneration"}, {4, "call in reinforcements"}}
	c.DecayOneIn = 16
	c.GivesGifts = true
	c.DesertionPenance = 50
	c.PenanceTeardown = []Effect{EffectTrogsHand}
	c.LeaveTeardown = []Effect{EffectTrogsHand}
	c.LeaveDirectives = hostile(GroupBerserkers)
	c.JoinDirectives = hostile(GroupSpellcasters)
	t[Trog] = c

	c = base(Nemelex, "Nemelex Xobeh", 0)
	c.Powers = []Power{{3, "choose one out of three cards"}, {4, "deal four cards at a time"},
		{5, "order the top five cards of a deck"}}
	c.DecayOneIn = 35
	c.GivesGifts = true
	c.GiftTimeoutSlowsGain = false
	c.WrathThreshold = 100
	c.DesertionPenance = 150
	c.LeaveTeardown = []Effect{EffectShuffleDecks}
	t[Nemelex] = c

	c = base(Elyvilon, "Elyvilon", AlignGood)
	c.Powers = []Power{{1, "provide lesser healing"}, {1, "call on Elyvilon to save your life"},
		{2, "heal and attempt to pacify others"}, {3, "purify yourself"}, {4, "provide greater healing"},
		{5, "call upon Elyvilon for divine vigour"}}
	c.DecayOneIn = 50
	c.DesertionPenance = 30
	c.PenanceTeardown = []Effect{EffectDivineVigour}
	c.LeaveTeardown = []Effect{EffectLifesaving, EffectDivineVigour}
	c.JoinDirectives = hostile(GroupUnholy)
	t[Elyvilon] = c

	c = base(Lugonu, "Lugonu", AlignEvil|AlignChaotic)
	c.Powers = []Power{{1, "depart the Abyss"}, {2, "bend space around yourself"}, {3, "banish your foes"},
		{4, "corrupt the fabric of space"}, {5, "gate yourself to the Abyss"}}
	c.DecayOneIn = 16
	c.DesertionPenance = 50
	t[Lugonu] = c

	c = base(Beogh, "Beogh", AlignEvil)
	c.Powers = []Power{{2, "smite your foes"}, {3, "gain orcish followers"},
		{4, "recall your orcish followers"}, {5, "give items to your followers"}}
	c.Passives = []PassiveRule{{PassiveArmourAid, 1}, {PassiveWaterWalk, 5}}
	c.DecayOneIn = 16
	c.DesertionPenance = 50
	c.LeaveDirectives = hostile(GroupOrcFollowers)
	t[Beogh] = c

	c = base(Jiyva, "Jiyva", AlignChaotic)
	c.Powers = []Power{{1, "request a jelly"}, {2, "halt your jellies' item consumption"},
		{4, "turn your foes to slime"}, {5, "remove your harmful mutations"}}
	c.DecayOneIn = 20
	c.GivesGifts = true
	c.GiftTimeoutSlowsGain = false
	c.DesertionPenance = 30
	c.PenanceTeardown = []Effect{EffectSlimify}
	c.MollifyRestore = []Effect{EffectSlimeAttempt}
	c.LeaveTeardown = []Effect{EffectSlimify}
	c.LeaveDirectives = hostile(GroupSlimes)
	t[Jiyva] = c

	c = base(Fedhas, "Fedhas", 0)
	c.Powers = []Power{{0, "speed up the decay of corpses"}, {1, "induce evolution"}, {2, "call sunshine"},
		{3, "grow a ring of plants"}, {4, "spawn explosive spores"}, {5, "control the weather"}}
	c.DesertionPenance = 30
	c.LeaveDirectives = hostile(GroupPlants)
	t[Fedhas] = c

	c = base(Cheibriados, "Cheibriados", 0)
	c.Powers = []Power{{0, "bend time to slow others"}, {3, "warp the flow of time"},
		{4, "inflict damage on the overly hasty"}, {5, "step out of the time flow"}}
	c.Passives = []PassiveRule{{PassiveSlowMetabolism, 1}, {PassiveStatBoost, 1}}
	t[Cheibriados] = c

	c = base(Ashenzari, "Ashenzari", 0)
	c.Powers = []Power{{0, "curse your items"}, {1, "scry through walls"}, {5, "transfer knowledge"}}
	c.Passives = []PassiveRule{{PassiveSeeInvisible, 3}, {PassiveClarity, 4}}
	c.DecayOneIn = 25
	c.Wrath = WrathExperience
	c.DesertionPenance = 50
	c.ExpDebtOnLeave = true
	c.LeaveTeardown = []Effect{EffectScrying}
	t[Ashenzari] = c

	c = base(Dithmenos, "Dithmenos", 0)
	c.Powers = []Power{{2, "step into the shadows"}, {5, "transform into a swirling mass of shadows"}}
	c.Passives = []PassiveRule{{PassiveUmbra, 1}, {PassiveSmokeBleed, 3}}
	c.DecayOneIn = 16
	c.LeaveTeardown = []Effect{EffectShadowForm}
	t[Dithmenos] = c

	c = base(Gozag, "Gozag", 0)
	c.Powers = []Power{{0, "petition Gozag for potion effects"}, {0, "fund merchants"}, {0, "bribe branches"}}
	c.UsesPiety = false
	c.GoldGatedPowers = true
	c.Wrath = WrathExperience
	c.DesertionPenance = 50
	c.ExpDebtOnLeave = true
	c.LeaveTeardown = []Effect{EffectGoldAura, EffectGozagShops}
	t[Gozag] = c

	c = base(Qazlal, "Qazlal", 0)
	c.Powers = []Power{{2, "upheaval"}, {3, "elemental force"}, {4, "disaster area"}}
	c.Passives = []PassiveRule{{PassiveStormShield, 1}}
	c.DecayOneIn = 16
	c.PenanceTeardown = []Effect{EffectQazlalStorm, EffectQazlalResists}
	c.MollifyRestore = []Effect{EffectQazlalStorm}
	c.LeaveTeardown = []Effect{EffectQazlalStorm, EffectQazlalResists}
	t[Qazlal] = c

	c = base(Ru, "Ru", 0)
	c.Powers = []Power{{1, "draw on your sacrifices"}, {3, "heal through sacrifice"}, {5, "apocalypse"}}
	c.InitialPiety = 10
	c.PietyCap = Breakpoint(5)
	c.Taper = TaperCapped
	c.Wrath = WrathInert
	t[Ru] = c

	c = base(Pakellas, "Pakellas", 0)
	c.Powers = []Power{{1, "quick charge"}, {3, "supercharge"}}
	c.DecayOneIn = 17
	c.GivesGifts = true
	c.GiftTimeoutSlowsGain = false
	c.PenanceTeardown = []Effect{EffectDeviceSurge}
	c.MollifyRestore = []Effect{EffectMagicRegen}
	c.LeaveTeardown = []Effect{EffectDeviceSurge}
	t[Pakellas] = c

	c = base(Hepliaklqana, "Hepliaklqana", 0)
	c.Powers = []Power{{1, "recall your ancestor"}, {3, "swap with your ancestor"}, {4, "idealise your ancestor"}}
	c.DecayOneIn = 50
	c.Wrath = WrathExperience
	c.DesertionPenance = 50
	c.ExpDebtOnLeave = true
	c.LeaveDirectives = []Directive{{GroupAncestor, DispositionRemoved}}
	t[Hepliaklqana] = c

	return t
}()
