// Package skillset implements SkillSet, a per-skill XP map with the
// additive/comparison/subtraction semantics spec.md §3 defines for it.
package skillset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AutumnsGrove/codequest/internal/skills"
)

// SkillSet maps a Skill to its accumulated XP. The zero value is not
// usable directly for player state (see New vs Empty below) but is
// fine as an accumulator for deltas.
type SkillSet map[skills.Skill]int64

// Empty returns a zero-filled SkillSet — every skill implicitly at 0
// XP. Used for route deltas and reward amounts, which are always
// zero-based regardless of a player's actual starting stats.
func Empty() SkillSet {
	return SkillSet{}
}

// New returns a SkillSet pre-populated with each skill's initial XP
// (0 for every skill except Constitution, which starts at the XP for
// level 10). This is the starting point for a fresh Player, not for
// deltas.
func New() SkillSet {
	s := SkillSet{}
	for _, sk := range skills.All.Skills() {
		s[sk] = skills.MustMinXPForLevel(skills.InitialLevel(sk))
	}
	return s
}

// Get returns the XP for a skill, defaulting to 0 if absent.
func (s SkillSet) Get(sk skills.Skill) int64 {
	return s[sk]
}

// Copy returns an independent copy of s.
func (s SkillSet) Copy() SkillSet {
	out := make(SkillSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Add returns the per-skill sum of s and other. Skills present in
// either operand appear in the result.
func (s SkillSet) Add(other SkillSet) SkillSet {
	out := s.Copy()
	for sk, xp := range other {
		out[sk] += xp
	}
	return out
}

// AddInPlace mutates s by adding other's entries into it — used by the
// planner when applying a reward or training step to live player state.
func (s SkillSet) AddInPlace(other SkillSet) {
	for sk, xp := range other {
		s[sk] += xp
	}
}

// Sub returns the per-skill saturating difference: max(0, s[k]-other[k])
// for every skill mentioned in either operand.
func (s SkillSet) Sub(other SkillSet) SkillSet {
	out := make(SkillSet)
	seen := make(map[skills.Skill]bool)
	for sk := range s {
		seen[sk] = true
	}
	for sk := range other {
		seen[sk] = true
	}
	for sk := range seen {
		v := s[sk] - other[sk]
		if v < 0 {
			v = 0
		}
		out[sk] = v
	}
	return out
}

// SubInPlace mutates s by saturating-subtracting other from it.
func (s SkillSet) SubInPlace(other SkillSet) {
	for sk, xp := range other {
		v := s[sk] - xp
		if v < 0 {
			v = 0
		}
		s[sk] = v
	}
}

// LessOrEqual implements the containment-style partial order of
// spec.md §3: s <= other iff, for every skill mentioned in other,
// s's XP for that skill is <= other's. Skills absent from other do
// not constrain the comparison.
func (s SkillSet) LessOrEqual(other SkillSet) bool {
	for sk, xp := range other {
		if s[sk] > xp {
			return false
		}
	}
	return true
}

// Less is the strict version of LessOrEqual.
func (s SkillSet) Less(other SkillSet) bool {
	for sk, xp := range other {
		if s[sk] >= xp {
			return false
		}
	}
	return true
}

// Positive returns the subset of s with strictly positive XP — used
// by the planner to find which skills in a gap still need closing.
func (s SkillSet) Positive() SkillSet {
	out := make(SkillSet)
	for sk, xp := range s {
		if xp > 0 {
			out[sk] = xp
		}
	}
	return out
}

// Total returns the sum of all XP values in s.
func (s SkillSet) Total() int64 {
	var total int64
	for _, xp := range s {
		total += xp
	}
	return total
}

// IsEmpty reports whether every entry in s is zero (or s has no
// entries) — used to detect "no gap remains".
func (s SkillSet) IsEmpty() bool {
	for _, xp := range s {
		if xp != 0 {
			return false
		}
	}
	return true
}

// Requirement is one entry of a skill-prerequisite list ({skill, level}
// in the catalog).
type Requirement struct {
	Skill skills.Skill
	Level int
}

// FromRequirements builds a SkillSet where each named skill maps to
// MinXPForLevel(level).
func FromRequirements(reqs []Requirement) (SkillSet, error) {
	out := Empty()
	for _, r := range reqs {
		xp, err := skills.MinXPForLevel(r.Level)
		if err != nil {
			return nil, fmt.Errorf("skillset: requirement for %s: %w", r.Skill, err)
		}
		out[r.Skill] = xp
	}
	return out, nil
}

// Levels converts s to a skills.Levels snapshot (level, not XP, per
// skill) for feeding into the combat-level formulas.
func (s SkillSet) Levels() skills.Levels {
	out := make(skills.Levels, len(s))
	for sk, xp := range s {
		out[sk] = skills.MustLevelForXP(xp)
	}
	return out
}

// String renders s as a deterministically-ordered, human-readable list
// of "Skill: xp" entries — used in training-note formatting and debug
// output.
func (s SkillSet) String() string {
	var entries []skills.Skill
	for sk := range s {
		entries = append(entries, sk)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i] < entries[j] })

	parts := make([]string, 0, len(entries))
	for _, sk := range entries {
		parts = append(parts, fmt.Sprintf("%s: %d", sk, s[sk]))
	}
	return strings.Join(parts, ", ")
}
