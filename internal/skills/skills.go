// Package skills defines the fixed set of 27 skills and the small
// amount of arithmetic (XP tables, levels, combat level) that every
// other package in this module builds on.
package skills

import (
	"fmt"
	"sort"
	"strings"
)

// Skill is a bitmask over the 27 skills. A single skill is represented
// by exactly one set bit; a combination (as used by Choice/Tiered/Prismatic
// rewards, and by skill-requirement lists) is the union of several.
type Skill uint32

// None and All are the bottom and top of the Skill lattice.
const (
	None Skill = 0
)

// The 27 skills, one bit each, in the order the source catalog uses them.
const (
	Attack Skill = 1 << iota
	Strength
	Defence
	Ranged
	Prayer
	Magic
	Constitution
	Crafting
	Mining
	Smithing
	Fishing
	Cooking
	Firemaking
	Woodcutting
	Runecrafting
	Dungeoneering
	Fletching
	Agility
	Herblore
	Thieving
	Slayer
	Farming
	Construction
	Hunter
	Summoning
	Divination
	Archaeology

	numSkills = 27
)

// All is the union of every skill.
const All Skill = (1 << numSkills) - 1

// CombatSkills is the subset of skills that feed the combat level
// formula (§4.1), in declaration order.
var CombatSkills = []Skill{Attack, Strength, Defence, Ranged, Prayer, Magic, Constitution, Summoning}

// allSkills lists every skill in declaration order, used for iteration
// and parsing.
var allSkills = []struct {
	skill Skill
	name  string
}{
	{Attack, "Attack"},
	{Strength, "Strength"},
	{Defence, "Defence"},
	{Ranged, "Ranged"},
	{Prayer, "Prayer"},
	{Magic, "Magic"},
	{Constitution, "Constitution"},
	{Crafting, "Crafting"},
	{Mining, "Mining"},
	{Smithing, "Smithing"},
	{Fishing, "Fishing"},
	{Cooking, "Cooking"},
	{Firemaking, "Firemaking"},
	{Woodcutting, "Woodcutting"},
	{Runecrafting, "Runecrafting"},
	{Dungeoneering, "Dungeoneering"},
	{Fletching, "Fletching"},
	{Agility, "Agility"},
	{Herblore, "Herblore"},
	{Thieving, "Thieving"},
	{Slayer, "Slayer"},
	{Farming, "Farming"},
	{Construction, "Construction"},
	{Hunter, "Hunter"},
	{Summoning, "Summoning"},
	{Divination, "Divination"},
	{Archaeology, "Archaeology"},
}

// InitialLevel returns the level a fresh character starts at for this
// skill: 10 for Constitution, 1 for everything else.
func InitialLevel(s Skill) int {
	if s == Constitution {
		return 10
	}
	return 1
}

// String renders a single skill's name, or a comma-joined list for a
// combined mask (e.g. "Attack,Strength").
func (s Skill) String() string {
	if s == None {
		return "None"
	}
	var names []string
	for _, e := range allSkills {
		if s&e.skill != 0 {
			names = append(names, e.name)
		}
	}
	return strings.Join(names, ",")
}

// Has reports whether s contains every bit of other — the membership
// test used when checking a skill against a reward's skill mask.
func (s Skill) Has(other Skill) bool {
	return s&other == other
}

// Union returns s | other.
func (s Skill) Union(other Skill) Skill {
	return s | other
}

// Intersect returns s & other.
func (s Skill) Intersect(other Skill) Skill {
	return s & other
}

// Count returns the number of individual skills set in the mask.
func (s Skill) Count() int {
	n := 0
	for s != 0 {
		s &= s - 1
		n++
	}
	return n
}

// Skills enumerates the individual skills set in the mask, in a fixed
// deterministic order (declaration order, i.e. increasing bit value).
func (s Skill) Skills() []Skill {
	var out []Skill
	for _, e := range allSkills {
		if s&e.skill != 0 {
			out = append(out, e.skill)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Parse resolves a single case-insensitive skill name ("attack",
// "Attack", "ATTACK") to its Skill constant.
func Parse(name string) (Skill, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, e := range allSkills {
		if strings.ToUpper(e.name) == upper {
			return e.skill, nil
		}
	}
	return None, fmt.Errorf("skills: unknown skill %q", name)
}

// ParseMask parses a comma-separated list of skill names (as used by
// the catalog's `skills` field on a reward) into their union.
func ParseMask(csv string) (Skill, error) {
	mask := None
	for _, tok := range strings.Split(csv, ",") {
		s, err := Parse(tok)
		if err != nil {
			return None, err
		}
		mask |= s
	}
	return mask, nil
}
