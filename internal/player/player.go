// Package player holds the mutable Player state the planner drives:
// accumulated skill XP, quest points, and completed quests
// (spec.md §3).
package player

import (
	"github.com/AutumnsGrove/codequest/internal/rewards"
	"github.com/AutumnsGrove/codequest/internal/skills"
	"github.com/AutumnsGrove/codequest/internal/skillset"
)

// Player is the planner's evolving view of the character being
// planned for.
type Player struct {
	skills              skillset.SkillSet
	questPoints         int
	completed           map[int]bool
	explicitCombatLevel int
}

// New creates a Player at its starting state: initial per-skill XP
// (skillset.New), 1 quest point, no completed quests, and an explicit
// combat floor of 1 (spec.md §3).
func New() *Player {
	return &Player{
		skills:              skillset.New(),
		questPoints:         1,
		completed:           make(map[int]bool),
		explicitCombatLevel: 1,
	}
}

// NewWithStats creates a Player seeded with caller-supplied starting
// XP (e.g. decoded from a save file or form input) instead of the
// default New() baseline; skillset.New()'s initial values are still
// layered under it so unmentioned skills keep their defaults.
func NewWithStats(initial skillset.SkillSet) *Player {
	p := New()
	for sk, xp := range initial {
		p.skills[sk] = xp
	}
	return p
}

// Restore rebuilds a Player from previously saved state, bypassing
// New()'s default baseline entirely.
func Restore(skills skillset.SkillSet, questPoints int, completed map[int]bool, explicitCombatLevel int) *Player {
	if completed == nil {
		completed = make(map[int]bool)
	}
	return &Player{
		skills:              skills.Copy(),
		questPoints:         questPoints,
		completed:           completed,
		explicitCombatLevel: explicitCombatLevel,
	}
}

// Skills returns the player's current SkillSet. Callers must not
// mutate the returned map directly; use AddSkills/SubSkills.
func (p *Player) Skills() skillset.SkillSet {
	return p.skills
}

// AddSkills adds delta to the player's skills in place.
func (p *Player) AddSkills(delta skillset.SkillSet) {
	p.skills.AddInPlace(delta)
}

// QuestPoints returns the player's current quest-point total.
func (p *Player) QuestPoints() int {
	return p.questPoints
}

// HasCompleted reports whether questID is in the completed set.
func (p *Player) HasCompleted(questID int) bool {
	return p.completed[questID]
}

// MarkCompleted adds questID to the completed set directly — used to
// apply a planner input's `initial_quests` (spec.md §6) before
// planning starts, without replaying that quest's rewards.
func (p *Player) MarkCompleted(questID int) {
	p.completed[questID] = true
}

// SetExplicitCombatLevel sets the floor CombatLevel never reports
// below.
func (p *Player) SetExplicitCombatLevel(level int) {
	p.explicitCombatLevel = level
}

// ExplicitCombatLevel returns the floor set by SetExplicitCombatLevel.
func (p *Player) ExplicitCombatLevel() int {
	return p.explicitCombatLevel
}

// CompletedQuests returns the ids of all quests marked completed.
func (p *Player) CompletedQuests() []int {
	out := make([]int, 0, len(p.completed))
	for id := range p.completed {
		out = append(out, id)
	}
	return out
}

// CombatLevel returns max(explicit floor, calculated combat level)
// from the player's Attack/Strength/Defence/Ranged/Magic/Constitution/
// Prayer/Summoning XP.
func (p *Player) CombatLevel() int {
	calculated := skills.CalculateCombatLevel(p.skills.Levels())
	if p.explicitCombatLevel > calculated {
		return p.explicitCombatLevel
	}
	return calculated
}

// CompleteQuest applies a completed quest's effects: quest points are
// added, questID is marked completed, and rewardList is partitioned
// into claimed and hoarded. Immediate rewards, and Claimable rewards
// whose threshold is already met, are claimed and applied to skills;
// every other reward is hoarded. It does not look
// at Quest directly so that this package need not import quest,
// avoiding an import cycle with quest's Requirements check.
func (p *Player) CompleteQuest(questID int, questPoints int, rewardList []rewards.Reward) (claimed, hoarded []rewards.Reward) {
	p.completed[questID] = true
	p.questPoints += questPoints

	for _, r := range rewardList {
		switch r.Type {
		case rewards.Immediate, rewards.Claimable:
			if r.IsClaimable(p.skills, skills.None) {
				delta, err := r.GetReward(p.skills, skills.None)
				if err == nil {
					p.skills.AddInPlace(delta)
				}
				claimed = append(claimed, r)
				continue
			}
		}
		hoarded = append(hoarded, r)
	}
	return claimed, hoarded
}
