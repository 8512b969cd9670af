// Package rewards implements the quest reward taxonomy of spec.md §4.2:
// Immediate, Choice, Claimable, ClaimableChoice, Tiered, and Prismatic
// rewards, tagged rather than subclassed per the re-architecture note
// in spec.md §9.
package rewards

import (
	"errors"
	"fmt"
	"math"

	"github.com/AutumnsGrove/codequest/internal/skills"
	"github.com/AutumnsGrove/codequest/internal/skillset"
)

// ErrUnknownRewardType is returned when a catalog entry names a reward
// type this package does not recognize.
var ErrUnknownRewardType = errors.New("rewards: unknown reward type")

// ErrInvalidChoice is returned when GetReward is called with a skill
// outside a Choice/Prismatic reward's skill mask.
var ErrInvalidChoice = errors.New("rewards: skill choice outside reward's skill mask")

// Type tags the reward variant.
type Type int

const (
	Immediate Type = iota
	Choice
	Claimable
	ClaimableChoice
	Tiered
	Prismatic
)

// Size is the Prismatic lamp size.
type Size int

const (
	Small Size = iota
	Medium
	Large
	Huge
)

func (sz Size) String() string {
	switch sz {
	case Small:
		return "Small"
	case Medium:
		return "Medium"
	case Large:
		return "Large"
	case Huge:
		return "Huge"
	default:
		return "Unknown"
	}
}

// prismaticFormula evaluates the size-specific polynomial in floored
// level L, verbatim from spec.md §4.2 (coefficients are load-bearing —
// the catalog's behaviour depends on this exact truncation).
var prismaticFormula = map[Size]func(l float64) int64{
	Small: func(l float64) int64 {
		return int64(math.Floor(-3e-6*pow(l, 5) + 6e-4*pow(l, 4) - 2.8e-2*pow(l, 3) + 0.5823*l*l + 9.3594*l + 45.49))
	},
	Medium: func(l float64) int64 {
		return int64(math.Floor(-5e-6*pow(l, 5) + 1.1e-3*pow(l, 4) - 0.0559*pow(l, 3) + 1.1645*l*l + 18.719*l + 90.981))
	},
	Large: func(l float64) int64 {
		return int64(math.Floor(-1e-5*pow(l, 5) + 2.3e-3*pow(l, 4) - 0.1118*pow(l, 3) + 2.329*l*l + 37.437*l + 181.96))
	},
	Huge: func(l float64) int64 {
		return int64(math.Floor(-2e-5*pow(l, 5) + 4.6e-3*pow(l, 4) - 0.2237*pow(l, 3) + 4.6581*l*l + 74.875*l + 363.92))
	},
}

func pow(x float64, n int) float64 {
	r := 1.0
	for i := 0; i < n; i++ {
		r *= x
	}
	return r
}

// Reward is a single catalog reward, tagged by Type with the fields
// relevant to that tag populated (the rest left zero).
type Reward struct {
	QuestID int
	Type    Type
	Skills  skills.Skill // single skill for Immediate/Claimable, a mask otherwise

	amount       int64 // constant amount, for every variant but Prismatic
	minimumXP    int64 // claimability threshold
	ClaimSource  string // required for Claimable/ClaimableChoice/Tiered
	PrismaticSz  Size
}

// NewImmediate constructs an Immediate reward.
func NewImmediate(questID int, skill skills.Skill, amount int64) Reward {
	return Reward{QuestID: questID, Type: Immediate, Skills: skill, amount: amount}
}

// NewChoice constructs a Choice reward.
func NewChoice(questID int, mask skills.Skill, amount int64, minimumLevel int) (Reward, error) {
	xp, err := skills.MinXPForLevel(minimumLevel)
	if err != nil {
		return Reward{}, err
	}
	return Reward{QuestID: questID, Type: Choice, Skills: mask, amount: amount, minimumXP: xp}, nil
}

// NewClaimable constructs a Claimable reward.
func NewClaimable(questID int, skill skills.Skill, amount int64, minimumLevel int, source string) (Reward, error) {
	xp, err := skills.MinXPForLevel(minimumLevel)
	if err != nil {
		return Reward{}, err
	}
	return Reward{QuestID: questID, Type: Claimable, Skills: skill, amount: amount, minimumXP: xp, ClaimSource: source}, nil
}

// NewClaimableChoice constructs a ClaimableChoice reward.
func NewClaimableChoice(questID int, mask skills.Skill, amount int64, minimumLevel int, source string) (Reward, error) {
	xp, err := skills.MinXPForLevel(minimumLevel)
	if err != nil {
		return Reward{}, err
	}
	return Reward{QuestID: questID, Type: ClaimableChoice, Skills: mask, amount: amount, minimumXP: xp, ClaimSource: source}, nil
}

// NewTiered constructs a Tiered reward: all skills in the mask must
// individually meet minimumLevel.
func NewTiered(questID int, mask skills.Skill, amount int64, minimumLevel int, source string) (Reward, error) {
	xp, err := skills.MinXPForLevel(minimumLevel)
	if err != nil {
		return Reward{}, err
	}
	return Reward{QuestID: questID, Type: Tiered, Skills: mask, amount: amount, minimumXP: xp, ClaimSource: source}, nil
}

// NewPrismatic constructs a Prismatic reward of the given size.
func NewPrismatic(questID int, mask skills.Skill, size Size, minimumLevel int) (Reward, error) {
	xp, err := skills.MinXPForLevel(minimumLevel)
	if err != nil {
		return Reward{}, err
	}
	return Reward{QuestID: questID, Type: Prismatic, Skills: mask, minimumXP: xp, PrismaticSz: size}, nil
}

// Amount returns the reward's XP amount. For every variant but
// Prismatic this is a constant; for Prismatic it is a polynomial in
// the chosen skill's current level (playerSkills/choice are ignored
// for non-Prismatic variants, and may be nil/None respectively there).
func (r Reward) Amount(playerSkills skillset.SkillSet, choice skills.Skill) int64 {
	if r.Type != Prismatic {
		return r.amount
	}
	level := skills.MustLevelForXP(playerSkills.Get(choice))
	return prismaticFormula[r.PrismaticSz](float64(level))
}

// IsClaimable reports whether the reward can be claimed given the
// player's current skills and (for Choice-shaped rewards) the skill
// under consideration.
func (r Reward) IsClaimable(playerSkills skillset.SkillSet, choice skills.Skill) bool {
	switch r.Type {
	case Immediate:
		return true
	case Claimable:
		return r.minimumXP <= playerSkills.Get(r.Skills)
	case Choice, ClaimableChoice, Prismatic:
		if !r.Skills.Has(choice) {
			return false
		}
		return r.minimumXP <= playerSkills.Get(choice)
	case Tiered:
		for _, sk := range r.Skills.Skills() {
			if playerSkills.Get(sk) < r.minimumXP {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// GetReward returns the SkillSet delta this reward grants once
// claimed. For Immediate/Claimable it is a fixed one-skill delta; for
// Choice/ClaimableChoice/Tiered/Prismatic, choice selects which skill
// in the mask receives the amount.
func (r Reward) GetReward(playerSkills skillset.SkillSet, choice skills.Skill) (skillset.SkillSet, error) {
	switch r.Type {
	case Immediate, Claimable:
		return skillset.SkillSet{r.Skills: r.amount}, nil
	case Choice, ClaimableChoice, Tiered, Prismatic:
		if !r.Skills.Has(choice) {
			return nil, fmt.Errorf("%w: %s not in %s", ErrInvalidChoice, choice, r.Skills)
		}
		return skillset.SkillSet{choice: r.Amount(playerSkills, choice)}, nil
	default:
		return nil, fmt.Errorf("rewards: unhandled reward type %d", r.Type)
	}
}

// prismaticRank orders Prismatic sizes for the tiebreak ordering below.
func (r Reward) prismaticRank() int { return int(r.PrismaticSz) }

// Less implements the reward ordering of spec.md §4.2: non-Prismatic
// rewards compare by Amount() ascending; any non-Prismatic is less
// than any Prismatic; two Prismatics compare by size.
//
// Amount() for a non-Prismatic reward never depends on player state,
// so playerSkills/choice may be skillset.Empty()/skills.None here —
// callers comparing live candidates should still pass the real values
// for correctness against future reward variants.
func (r Reward) Less(other Reward, playerSkills skillset.SkillSet, choice skills.Skill) bool {
	rPrismatic := r.Type == Prismatic
	oPrismatic := other.Type == Prismatic
	switch {
	case rPrismatic && oPrismatic:
		return r.prismaticRank() < other.prismaticRank()
	case rPrismatic && !oPrismatic:
		return false
	case !rPrismatic && oPrismatic:
		return true
	default:
		return r.Amount(playerSkills, choice) < other.Amount(playerSkills, choice)
	}
}

// String renders a human-readable description of the reward, in the
// spirit of the source catalog's per-variant __str__ methods.
func (r Reward) String() string {
	switch r.Type {
	case Immediate:
		return fmt.Sprintf("%d %s xp", r.amount, r.Skills)
	case Choice:
		return fmt.Sprintf("%d xp reward", r.amount)
	case Claimable:
		return fmt.Sprintf("%d %s xp from %s (quest %d)", r.amount, r.Skills, r.ClaimSource, r.QuestID)
	case ClaimableChoice:
		return fmt.Sprintf("%d xp reward from %s (quest %d)", r.amount, r.ClaimSource, r.QuestID)
	case Tiered:
		return fmt.Sprintf("%d xp tiered reward from %s (quest %d)", r.amount, r.ClaimSource, r.QuestID)
	case Prismatic:
		return fmt.Sprintf("%s xp lamp", r.PrismaticSz)
	default:
		return "unknown reward"
	}
}

// ClaimedChoice pairs a Choice-shaped reward with the skill it was
// applied to, for inclusion in a plan.
type ClaimedChoice struct {
	Reward Reward
	Skill  skills.Skill
}

func (c ClaimedChoice) String() string {
	return fmt.Sprintf("Use %s on %s", c.Reward, c.Skill)
}
