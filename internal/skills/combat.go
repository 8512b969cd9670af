package skills

import "math"

// Levels is a per-skill level snapshot, as consumed by the combat
// formulas below. Missing entries default via Get to 1, except
// Constitution which defaults to 10 — the same defaults the source
// catalog's combat-level table uses for an unspecified skill.
type Levels map[Skill]int

// Get returns the level for s, defaulting per InitialLevel if absent.
func (l Levels) Get(s Skill) int {
	if v, ok := l[s]; ok {
		return v
	}
	return InitialLevel(s)
}

func combatLevelUnfloored(levels Levels) float64 {
	dominant := 1.3 * math.Max(
		float64(levels.Get(Attack)+levels.Get(Strength)),
		math.Max(2*float64(levels.Get(Magic)), 2*float64(levels.Get(Ranged))),
	)
	return 0.25 * (dominant +
		float64(levels.Get(Defence)) +
		float64(levels.Get(Constitution)) +
		math.Floor(float64(levels.Get(Prayer))/2) +
		math.Floor(float64(levels.Get(Summoning))/2))
}

// CalculateCombatLevel implements spec §4.1: floor(0.25 * (D + def +
// con + floor(pray/2) + floor(summ/2))), D = 1.3*max(atk+str, 2*mag,
// 2*rng). Missing levels default per Levels.Get.
func CalculateCombatLevel(levels Levels) int {
	return int(math.Floor(combatLevelUnfloored(levels)))
}

// LevelsForCombatIncrease implements spec §4.1: for each of
// {Attack, Strength, Magic, Ranged, Defence, Constitution, Prayer,
// Summoning}, the additional levels in that skill alone that would
// raise the floored combat level by exactly one.
//
// Adapted from the RuneScape wiki's Module:Combat_level, following the
// source catalog's formulation verbatim, including its parenthesization.
func LevelsForCombatIncrease(levels Levels) map[Skill]int {
	result := map[Skill]int{
		Attack: 0, Strength: 0, Magic: 0, Ranged: 0,
		Defence: 0, Constitution: 0, Prayer: 0, Summoning: 0,
	}

	atkStr := levels.Get(Attack) + levels.Get(Strength)
	raw := combatLevelUnfloored(levels)
	frac := raw - math.Floor(raw)

	defConIncrement := int(math.Ceil((1 - frac) * 4))
	result[Constitution] = defConIncrement
	result[Defence] = defConIncrement
	result[Prayer] = defConIncrement*2 - levels.Get(Prayer)%2
	result[Summoning] = defConIncrement*2 - levels.Get(Summoning)%2

	mag := float64(levels.Get(Magic))
	rng := float64(levels.Get(Ranged))

	if float64(atkStr) >= 2*mag && float64(atkStr) >= 2*rng {
		asIncrement := int(math.Ceil((1 - frac) / 0.325))
		result[Attack] = asIncrement
		result[Strength] = asIncrement
		result[Magic] = int(math.Ceil(float64(atkStr)/2 - mag + (1-frac)/0.65))
		result[Ranged] = int(math.Ceil(float64(atkStr)/2 - rng + (1-frac)/0.65))
	} else {
		asIncrement := int(2*math.Max(mag, rng)) - atkStr + int(math.Ceil((1-frac)/0.325))
		result[Attack] = asIncrement
		result[Strength] = asIncrement
		result[Magic] = int(math.Ceil((1 - frac) / 0.65))
		if rng > mag {
			result[Ranged] = result[Magic]
			result[Magic] = int(rng-mag) + result[Ranged]
		} else {
			result[Ranged] = int(mag-rng) + result[Magic]
		}
	}

	return result
}
