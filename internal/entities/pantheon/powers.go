package pantheon

// Power is an invocable or passive ability granted at a favor rank.
// Rank 0 powers are available as soon as the patron is joined.
type Power struct {
	Rank int
	Name string
}

// Passive names a binary capability a patron toggles on the player. They are
// re-evaluated at every rank boundary, suppressed while the patron is owed
// penance and restored on mollification.
type Passive string

// Passive capabilities
const (
	PassiveHalo              Passive = "halo"
	PassiveUmbra             Passive = "umbra"
	PassiveWaterWalk         Passive = "water_walk"
	PassiveStatBoost         Passive = "stat_boost"
	PassiveMiscastProtection Passive = "miscast_protection"
	PassiveTormentResistance Passive = "torment_resistance"
	PassiveSeeInvisible      Passive = "see_invisible"
	PassiveClarity           Passive = "clarity"
	PassiveSpellPower        Passive = "spell_power"
	PassiveSpellRange        Passive = "spell_range"
	PassiveArmourAid         Passive = "armour_aid"
	PassiveHealOnKill        Passive = "heal_on_kill"
	PassiveStormShield       Passive = "storm_shield"
	PassiveMutationWard      Passive = "mutation_ward"
	PassiveSlowMetabolism    Passive = "slow_metabolism"
	PassiveSmokeBleed        Passive = "smoke_bleed"
)

// PassiveRule enables a passive from MinRank upward
type PassiveRule struct {
	Passive Passive
	MinRank int
}

// PowersAt returns the powers configured at exactly rank
func (c *Config) PowersAt(rank int) []Power {
	var out []Power
	for _, p := range c.Powers {
		if p.Rank == rank {
			out = append(out, p)
		}
	}
	return out
}

// PassivesAt returns the passives enabled at rank
func (c *Config) PassivesAt(rank int) []Passive {
	var out []Passive
	for _, r := range c.Passives {
		if rank >= r.MinRank {
			out = append(out, r.Passive)
		}
	}
	return out
}
