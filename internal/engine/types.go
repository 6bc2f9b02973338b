package engine

import (
	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
)

// EntityKind names what the simulation should spawn
type EntityKind string

// Entity kinds requested by gifts and join hooks
const (
	EntityUndeadServant EntityKind = "undead_servant"
	EntityAncestor      EntityKind = "ancestor"
	EntityJelly         EntityKind = "jelly"
)

// EntitySpec describes one entity to create
type EntitySpec struct {
	Kind  EntityKind
	Name  string
	Group pantheon.FollowerGroup
	// Tier is a patron-specific strength hint, e.g. the servant threshold
	Tier int
}

// CreateEntityInput asks the simulation to place an entity near the player
type CreateEntityInput struct {
	Patron pantheon.Patron
	Spec   EntitySpec
}

// CreateEntityOutput reports the placed entity. Placed is false when there was
// no valid location.
type CreateEntityOutput struct {
	Placed   bool
	EntityID string
}

// ItemCategory is a coarse item class handed to item generation
type ItemCategory string

// Item categories
const (
	ItemWeapon    ItemCategory = "weapon"
	ItemArmour    ItemCategory = "armour"
	ItemMissiles  ItemCategory = "missiles"
	ItemWand      ItemCategory = "wand"
	ItemMisc      ItemCategory = "miscellaneous"
	ItemRod       ItemCategory = "rod"
	ItemSpellbook ItemCategory = "spellbook"
	ItemDeck      ItemCategory = "deck"
)

// AcquireItemInput requests a generated item placed at the player's feet
type AcquireItemInput struct {
	Patron   pantheon.Patron
	Category ItemCategory
	// Subtype narrows the category (deck kind and rarity, book school)
	Subtype string
}

// AcquireItemOutput reports the generated item
type AcquireItemOutput struct {
	Acquired bool
	ItemID   string
	Name     string
}

// ApplyEffectInput applies or removes an effect on behalf of a patron
type ApplyEffectInput struct {
	Patron    pantheon.Patron
	Effect    pantheon.Effect
	Remove    bool
	Magnitude int
}

// ApplyEffectOutput reports whether the effect took hold
type ApplyEffectOutput struct {
	Applied bool
}

// BulkReaffiliateInput switches every entity in Group
type BulkReaffiliateInput struct {
	Patron    pantheon.Patron
	Directive pantheon.Directive
}

// BulkReaffiliateOutput counts the affected entities
type BulkReaffiliateOutput struct {
	Affected int
}

// Form is the player's current transformation
type Form string

// Forms that matter to eligibility
const (
	FormNone   Form = ""
	FormLich   Form = "lich"
	FormShadow Form = "shadow"
	FormStatue Form = "statue"
	FormDragon Form = "dragon"
)

// Mutation tags that lock patrons out
const (
	MutationNoLove     = "no_love"
	MutationNoArtifice = "no_artifice"
)

// ClassMonk gets a piety bonus on first joining any patron
const ClassMonk = "monk"

// Profile is the slice of the player the favor engine reads
type Profile struct {
	Species       string
	Class         string
	Form          Form
	XPLevel       int
	XPToNextLevel int
	Gold          int
	// GoldGenerated is every piece of gold the dungeon has produced so far
	GoldGenerated int
	Mutations     []string
	KnownSpells   []string
	// ElementPreference biases spell gifts toward elements the player
	// already favours, keyed by lower-cased element
	ElementPreference map[string]int

	Felid      bool
	Undead     bool
	Demonic    bool
	Artificial bool
	Orc        bool
	Demigod    bool

	CanSafelyMutate bool
	MissilesLow     bool
}

// Copy returns a deep copy
func (p *Profile) Copy() *Profile {
	c := *p
	c.Mutations = append([]string(nil), p.Mutations...)
	c.KnownSpells = append([]string(nil), p.KnownSpells...)
	if p.ElementPreference != nil {
		c.ElementPreference = make(map[string]int, len(p.ElementPreference))
		for k, v := range p.ElementPreference {
			c.ElementPreference[k] = v
		}
	}
	return &c
}

// KnowsSpell reports whether id is already memorised
func (p *Profile) KnowsSpell(id string) bool {
	for _, s := range p.KnownSpells {
		if s == id {
			return true
		}
	}
	return false
}

// HasMutation reports whether the profile carries tag
func (p *Profile) HasMutation(tag string) bool {
	for _, m := range p.Mutations {
		if m == tag {
			return true
		}
	}
	return false
}

// NarrationKind classifies a line of narration
type NarrationKind string

// Narration kinds
const (
	NarrationGod     NarrationKind = "god"
	NarrationPrayer  NarrationKind = "prayer"
	NarrationDanger  NarrationKind = "danger"
	NarrationRefusal NarrationKind = "refusal"
	NarrationGift    NarrationKind = "gift"
	NarrationPlain   NarrationKind = "plain"
)

// Narration is one message for the player
type Narration struct {
	Patron  pantheon.Patron
	Kind    NarrationKind
	Message string
}
