package external

import (
	"context"
	"strings"

	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
)

// StaticCatalog serves a fixed spell list. The simulator uses it when the
// D&D 5e API is not reachable.
type StaticCatalog struct {
	spells []*SpellData
}

// NewStaticCatalog copies spells into a catalog
func NewStaticCatalog(spells []*SpellData) *StaticCatalog {
	return &StaticCatalog{spells: append([]*SpellData(nil), spells...)}
}

// DefaultEvocations is a small evocation list covering every gift level
func DefaultEvocations() []*SpellData {
	return []*SpellData{
		{ID: "magic-missile", Name: "Magic Missile", Level: 1, School: SchoolEvocation, Element: "force"},
		{ID: "burning-hands", Name: "Burning Hands", Level: 1, School: SchoolEvocation, Element: "fire"},
		{ID: "shatter", Name: "Shatter", Level: 2, School: SchoolEvocation, Element: "thunder"},
		{ID: "scorching-ray", Name: "Scorching Ray", Level: 2, School: SchoolEvocation, Element: "fire"},
		{ID: "fireball", Name: "Fireball", Level: 3, School: SchoolEvocation, Element: "fire"},
		{ID: "lightning-bolt", Name: "Lightning Bolt", Level: 3, School: SchoolEvocation, Element: "lightning"},
		{ID: "ice-storm", Name: "Ice Storm", Level: 4, School: SchoolEvocation, Element: "cold"},
		{ID: "fire-shield", Name: "Fire Shield", Level: 4, School: SchoolEvocation, Element: "fire"},
		{ID: "cone-of-cold", Name: "Cone of Cold", Level: 5, School: SchoolEvocation, Element: "cold"},
		{ID: "flame-strike", Name: "Flame Strike", Level: 5, School: SchoolEvocation, Element: "fire"},
		{ID: "chain-lightning", Name: "Chain Lightning", Level: 6, School: SchoolEvocation, Element: "lightning"},
		{ID: "sunbeam", Name: "Sunbeam", Level: 6, School: SchoolEvocation, Element: "radiant"},
		{ID: "delayed-blast-fireball", Name: "Delayed Blast Fireball", Level: 7, School: SchoolEvocation, Element: "fire"},
		{ID: "sunburst", Name: "Sunburst", Level: 8, School: SchoolEvocation, Element: "radiant"},
		{ID: "meteor-swarm", Name: "Meteor Swarm", Level: 9, School: SchoolEvocation, Element: "fire"},
	}
}

// ListSpells filters the fixed list
func (c *StaticCatalog) ListSpells(_ context.Context, input *ListSpellsInput) ([]*SpellData, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out []*SpellData
	for _, s := range c.spells {
		if s.Level != input.Level {
			continue
		}
		if input.School != "" && !strings.EqualFold(s.School, input.School) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

var _ SpellCatalog = (*StaticCatalog)(nil)
