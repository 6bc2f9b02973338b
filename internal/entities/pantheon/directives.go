package pantheon

// Effect names a world-side effect the favor engine asks the active-effects
// collaborator to apply or remove (a duration, a summon, a derived stat).
type Effect string

// Effects used by penance teardown, mollification and desertion
const (
	EffectTrogsHand       Effect = "trogs_hand"
	EffectDivineStamina   Effect = "divine_stamina"
	EffectDivineShield    Effect = "divine_shield"
	EffectDivineVigour    Effect = "divine_vigour"
	EffectLifesaving      Effect = "lifesaving"
	EffectSlimify         Effect = "slimify"
	EffectSlimeAttempt    Effect = "slime_vault_attempt"
	EffectQazlalStorm     Effect = "qazlal_storm"
	EffectQazlalResists   Effect = "qazlal_resistances"
	EffectDeviceSurge     Effect = "device_surge"
	EffectMagicRegen      Effect = "magic_regeneration"
	EffectSanctuary       Effect = "sanctuary"
	EffectMirrorDamage    Effect = "mirror_damage"
	EffectRotCorpses      Effect = "rot_corpses"
	EffectShuffleDecks    Effect = "shuffle_decks"
	EffectScrying         Effect = "scrying"
	EffectShadowForm      Effect = "shadow_form"
	EffectGoldAura        Effect = "gold_aura"
	EffectGozagShops      Effect = "gozag_shops"
	EffectRecite          Effect = "recite"
	EffectPietyPool       Effect = "piety_pool"
	EffectMutation        Effect = "mutation"
	EffectRetribution     Effect = "retribution"
	EffectStopMagicSkills Effect = "stop_magic_skills"
	EffectGoldFee         Effect = "gold_fee"
)

// FollowerGroup tags a fleet of entities the simulation can address in bulk
type FollowerGroup string

// Follower groups
const (
	GroupUndeadServants FollowerGroup = "undead_servants"
	GroupDemonServants  FollowerGroup = "demon_servants"
	GroupBerserkers     FollowerGroup = "berserker_allies"
	GroupOrcFollowers   FollowerGroup = "orc_followers"
	GroupSlimes         FollowerGroup = "fellow_slimes"
	GroupPlants         FollowerGroup = "plant_allies"
	GroupAncestor       FollowerGroup = "ancestor"
	GroupHoly           FollowerGroup = "holy_allies"
	GroupUnholy         FollowerGroup = "unholy_allies"
	GroupSpellcasters   FollowerGroup = "spellcaster_allies"
	GroupUnclean        FollowerGroup = "unclean_allies"
)

// Disposition is the attitude a follower group is switched to
type Disposition string

// Dispositions
const (
	DispositionHostile Disposition = "hostile"
	DispositionNeutral Disposition = "neutral"
	DispositionRemoved Disposition = "removed"
)

// Directive is one bulk reaffiliation order
type Directive struct {
	Group       FollowerGroup
	Disposition Disposition
}
