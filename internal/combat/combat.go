// Package combat implements the combat-training router of spec.md
// §4.4: given a target combat level and a current SkillSet, produce a
// minimal XP allocation that reaches it.
package combat

import (
	"errors"
	"fmt"
	"math"

	"github.com/AutumnsGrove/codequest/internal/skills"
	"github.com/AutumnsGrove/codequest/internal/skillset"
)

// ErrInvalidCombatGoal is returned when OptimalRoute is asked for a
// goal above 138.
var ErrInvalidCombatGoal = errors.New("combat: goal exceeds 138")

// attackStrengthPair and constitutionDefencePair: within each pair the
// router closes the level gap before splitting the remainder, per
// spec.md §4.4.
var attackStrengthPair = [2]skills.Skill{skills.Attack, skills.Strength}
var constitutionDefencePair = [2]skills.Skill{skills.Constitution, skills.Defence}

// OptimalRoute returns a SkillSet such that, starting from current,
// applying the returned delta raises the computed combat level to at
// least goal. The route is zero-based (skillset.Empty()-rooted): it
// never reflects current's own XP, only the additional XP to train.
// The one exception is goal == 3, which returns skillset.New().
func OptimalRoute(goal int, current skillset.SkillSet) (skillset.SkillSet, error) {
	route := skillset.Empty()
	if goal < 3 {
		return route, nil
	}
	if goal > 138 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCombatGoal, goal)
	}
	if goal == 3 {
		return skillset.New(), nil
	}

	if current == nil {
		current = skillset.New()
	}
	working := current.Copy()

	for skills.CalculateCombatLevel(working.Levels()) < goal {
		increments := skills.LevelsForCombatIncrease(working.Levels())

		trainingToLevels := make(map[skills.Skill]int64)
		handled := map[skills.Skill]bool{}

		for _, pair := range [][2]skills.Skill{constitutionDefencePair, attackStrengthPair} {
			if handled[pair[0]] {
				continue
			}
			req := increments[pair[0]]
			higher, lower := higherLower(working, pair[0], pair[1])
			lo, hi := advanceLevelsInStep(working, higher, req, lower)
			trainingToLevels[lower] = lo
			trainingToLevels[higher] = hi
			handled[pair[0]] = true
			handled[pair[1]] = true
		}

		for sk, levelReq := range increments {
			if handled[sk] || levelReq <= 0 {
				continue
			}
			targetLevel := skills.MustLevelForXP(working.Get(sk)) + levelReq
			if targetLevel > 99 {
				targetLevel = 99
			}
			if targetLevel < 1 {
				continue
			}
			trainingToLevels[sk] = skills.XPToLevel(targetLevel, working.Get(sk))
		}

		strategy := chooseTrainingStrategy(trainingToLevels)
		working.AddInPlace(strategy)
		route = route.Add(strategy)
	}

	return route, nil
}

// higherLower returns (higher, lower) ordered by current XP, as
// spec.md §4.4's __get_higher_and_lower_of_skills.
func higherLower(current skillset.SkillSet, first, second skills.Skill) (skills.Skill, skills.Skill) {
	if current.Get(first) >= current.Get(second) {
		return first, second
	}
	return second, first
}

// advanceLevelsInStep implements spec.md §4.4's paired-skill rule:
// close the level gap between higher and lower first, then split the
// remainder — half (rounded up) to the lower, half (rounded down) to
// the higher. The ceil(...) must wrap only `min(gap,Δ) + max(Δ-gap,0)/2`,
// not the whole expression re-divided — see spec.md §9's rounding note.
func advanceLevelsInStep(current skillset.SkillSet, higher skills.Skill, levelReq int, lower skills.Skill) (loXP, hiXP int64) {
	higherLevel := skills.MustLevelForXP(current.Get(higher))
	lowerLevel := skills.MustLevelForXP(current.Get(lower))
	levelGap := higherLevel - lowerLevel

	levelsToCloseGap := min(levelGap, levelReq)
	remainder := max(levelReq-levelGap, 0)

	lowerTarget := min(99, lowerLevel+ceilDiv2(levelsToCloseGap, remainder))
	higherTarget := min(99, higherLevel+remainder/2)

	if lowerTarget < 1 {
		lowerTarget = 1
	}
	if higherTarget < 1 {
		higherTarget = 1
	}

	loXP = skills.XPToLevel(lowerTarget, current.Get(lower))
	hiXP = skills.XPToLevel(higherTarget, current.Get(higher))
	return loXP, hiXP
}

// ceilDiv2 computes ceil(levelsToCloseGap + remainder/2.0) — the
// parenthesization from spec.md §9, where only the remainder term is
// halved before the ceiling is taken.
func ceilDiv2(levelsToCloseGap, remainder int) int {
	return int(math.Ceil(float64(levelsToCloseGap) + float64(remainder)/2))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// chooseTrainingStrategy picks the cheapest single skill (or paired
// skills) to train this iteration, per spec.md §4.4: a pair's cost is
// the sum of its two entries.
func chooseTrainingStrategy(xpRequirements map[skills.Skill]int64) skillset.SkillSet {
	pairCost := func(a, b skills.Skill) int64 { return xpRequirements[a] + xpRequirements[b] }

	costOf := func(sk skills.Skill) int64 {
		switch {
		case sk == skills.Attack || sk == skills.Strength:
			return pairCost(skills.Attack, skills.Strength)
		case sk == skills.Constitution || sk == skills.Defence:
			return pairCost(skills.Constitution, skills.Defence)
		default:
			return xpRequirements[sk]
		}
	}

	var chosen skills.Skill
	first := true
	var chosenCost int64
	for _, sk := range skills.CombatSkills {
		if _, ok := xpRequirements[sk]; !ok {
			continue
		}
		cost := costOf(sk)
		if first || cost < chosenCost {
			chosen, chosenCost, first = sk, cost, false
		}
	}

	result := skillset.Empty()
	switch {
	case chosen == skills.Attack || chosen == skills.Strength:
		result[skills.Attack] = xpRequirements[skills.Attack]
		result[skills.Strength] = xpRequirements[skills.Strength]
	case chosen == skills.Constitution || chosen == skills.Defence:
		result[skills.Constitution] = xpRequirements[skills.Constitution]
		result[skills.Defence] = xpRequirements[skills.Defence]
	default:
		result[chosen] = chosenCost
	}
	return result
}
