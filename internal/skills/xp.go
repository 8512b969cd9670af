package skills

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel is returned when a level outside [1,120] is supplied
// to MinXPForLevel.
var ErrInvalidLevel = errors.New("skills: level out of range [1,120]")

// ErrInvalidXp is returned when a negative XP value is supplied to
// LevelForXP.
var ErrInvalidXp = errors.New("skills: xp cannot be negative")

// MaxLevel is the top of the level table.
const MaxLevel = 120

// xpTable[L] is the minimum XP required to reach level L, for
// L in [0,120]. xpTable[0] is an unused sentinel below the valid
// level-1 threshold, carried over from the source catalog's table so
// level_for_xp's boundary behaviour (level_for_xp(0) == 1) falls out
// naturally from the same scan used for every other level.
var xpTable = [MaxLevel + 1]int64{
	-1, 0, 83, 174, 276, 388, 512, 650, 801, 969, 1154, 1358, 1584, 1833, 2107, 2411, 2746, 3115, 3523, 3973,
	4470, 5018, 5624, 6291, 7028, 7842, 8740, 9730, 10824, 12031, 13363, 14833, 16456, 18247, 20224, 22406,
	24815, 27473, 30408, 33648, 37224, 41171, 45529, 50339, 55649, 61512, 67983, 75127, 83014, 91721, 101333,
	111945, 123660, 136594, 150872, 166636, 184040, 203254, 224466, 247866, 273742, 302288, 333804, 368599,
	407015, 449428, 496254, 547953, 605032, 668051, 737627, 814445, 899257, 992895, 1096278, 1210421, 1336443,
	1475581, 1629200, 1798808, 1986068, 2192818, 2421087, 2673114, 2951373, 3258594, 3597792, 3972294, 4385776,
	4842295, 5346332, 5902831, 6517253, 7195629, 7944614, 8771558, 9684577, 10692629, 11805606, 13034431,
	14391160, 15889109, 17542976, 19368992, 21385073, 23611006, 26068632, 26782069, 31777943, 35085654,
	38737661, 42769801, 47221641, 52136869, 57563718, 63555443, 70170840, 77474828, 85539082, 94442737,
	104273167,
}

// MinXPForLevel returns the minimum XP required for level L.
func MinXPForLevel(level int) (int64, error) {
	if level < 1 || level > MaxLevel {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	return xpTable[level], nil
}

// MustMinXPForLevel panics if level is invalid; it exists for call
// sites (catalog construction, defaults) where the level comes from a
// trusted constant rather than external input.
func MustMinXPForLevel(level int) int64 {
	xp, err := MinXPForLevel(level)
	if err != nil {
		panic(err)
	}
	return xp
}

// LevelForXP returns the largest level L such that MinXPForLevel(L) <= xp,
// clamped to [0,120].
func LevelForXP(xp int64) (int, error) {
	if xp < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidXp, xp)
	}
	level := 0
	for l := 1; l <= MaxLevel; l++ {
		if xpTable[l] <= xp {
			level = l
		} else {
			break
		}
	}
	return level, nil
}

// MustLevelForXP panics on a negative xp; see MustMinXPForLevel.
func MustLevelForXP(xp int64) int {
	level, err := LevelForXP(xp)
	if err != nil {
		panic(err)
	}
	return level
}

// XPToLevel returns the XP gap to reach targetLevel from currentXP:
// max(0, MinXPForLevel(targetLevel) - currentXP).
func XPToLevel(targetLevel int, currentXP int64) int64 {
	need := MustMinXPForLevel(targetLevel)
	gap := need - currentXP
	if gap < 0 {
		return 0
	}
	return gap
}
