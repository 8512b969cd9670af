// Package quest defines the Quest entity, its prerequisite predicate,
// and the ordering used to prioritize the planner's ready shell
// (spec.md §4.3).
package quest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AutumnsGrove/codequest/internal/player"
	"github.com/AutumnsGrove/codequest/internal/rewards"
	"github.com/AutumnsGrove/codequest/internal/skillset"
)

// ErrDuplicateQuestID is returned by a catalog loader when two quests
// share an id.
var ErrDuplicateQuestID = errors.New("quest: duplicate quest id")

// Difficulty is an ordered quest difficulty tier.
type Difficulty int

const (
	Novice Difficulty = iota + 1
	Intermediate
	Experienced
	Master
	Grandmaster
	Special
)

func (d Difficulty) String() string {
	switch d {
	case Novice:
		return "Novice"
	case Intermediate:
		return "Intermediate"
	case Experienced:
		return "Experienced"
	case Master:
		return "Master"
	case Grandmaster:
		return "Grandmaster"
	case Special:
		return "Special"
	default:
		return "Unknown"
	}
}

// ParseDifficulty resolves a case-insensitive difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NOVICE":
		return Novice, nil
	case "INTERMEDIATE":
		return Intermediate, nil
	case "EXPERIENCED":
		return Experienced, nil
	case "MASTER":
		return Master, nil
	case "GRANDMASTER":
		return Grandmaster, nil
	case "SPECIAL":
		return Special, nil
	default:
		return 0, fmt.Errorf("quest: unknown difficulty %q", s)
	}
}

// Quest is a single catalog entry: identity, prerequisites, and the
// rewards it grants on completion.
type Quest struct {
	ID         int
	Name       string
	Difficulty Difficulty

	CombatRequirement int
	QPRequirement     int
	QuestPrereqs      map[int]bool
	SkillPrereqs      skillset.SkillSet

	// CombatTrainingRequirement is the route (in XP) that would raise a
	// fresh character to CombatRequirement — derived once at
	// construction via the combat package, folded into the quest
	// ordering of spec.md §4.3's second sort key.
	CombatTrainingRequirement skillset.SkillSet

	QuestPoints int
	Rewards     []rewards.Reward
}

// New constructs a Quest. combatTrainingRequirement is supplied by the
// caller; the catalog loader derives it with combat.OptimalRoute, so
// quest itself does not import the combat package.
func New(id int, name string, difficulty Difficulty, combatRequirement, qpRequirement int,
	questPrereqs []int, skillPrereqs skillset.SkillSet, combatTrainingRequirement skillset.SkillSet,
	questPoints int, rewardList []rewards.Reward) *Quest {

	prereqs := make(map[int]bool, len(questPrereqs))
	for _, p := range questPrereqs {
		prereqs[p] = true
	}

	return &Quest{
		ID:                        id,
		Name:                      name,
		Difficulty:                difficulty,
		CombatRequirement:         combatRequirement,
		QPRequirement:             qpRequirement,
		QuestPrereqs:              prereqs,
		SkillPrereqs:              skillPrereqs,
		CombatTrainingRequirement: combatTrainingRequirement,
		QuestPoints:               questPoints,
		Rewards:                   rewardList,
	}
}

// SatisfiesRequirements implements spec.md §4.3's predicate.
func (q *Quest) SatisfiesRequirements(p *player.Player) bool {
	if p.HasCompleted(q.ID) {
		return false
	}
	if !q.SkillPrereqs.LessOrEqual(p.Skills()) {
		return false
	}
	if q.CombatRequirement > p.CombatLevel() {
		return false
	}
	if q.QPRequirement > p.QuestPoints() {
		return false
	}
	for prereq := range q.QuestPrereqs {
		if !p.HasCompleted(prereq) {
			return false
		}
	}
	return true
}

// orderingKey returns the SkillSet compared on, for the quest ordering
// of spec.md §4.3: skill_prereqs + combat_training_requirement.
func (q *Quest) orderingKey() skillset.SkillSet {
	return q.SkillPrereqs.Add(q.CombatTrainingRequirement)
}

// Less implements the quest ordering of spec.md §4.3: lexicographic on
// (difficulty, skill_prereqs+combat_training_requirement), where the
// second term's comparison is the SkillSet partial order. Because that
// order is partial, ties/incomparability fall through to a
// deterministic tiebreak on id. The planner sorts its ready shell with
// sort.SliceStable over Less.
func (q *Quest) Less(other *Quest) bool {
	if q.Difficulty != other.Difficulty {
		return q.Difficulty < other.Difficulty
	}
	a, b := q.orderingKey(), other.orderingKey()
	if a.Less(b) {
		return true
	}
	if b.Less(a) {
		return false
	}
	// Incomparable (or equal) under the partial order: break the tie
	// deterministically by id, per spec.
	return q.ID < other.ID
}
