// Package catalog loads the quest catalog JSON file described in
// spec.md §6 into the Quest set the planner operates on.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AutumnsGrove/codequest/internal/combat"
	"github.com/AutumnsGrove/codequest/internal/quest"
	"github.com/AutumnsGrove/codequest/internal/rewards"
	"github.com/AutumnsGrove/codequest/internal/skills"
	"github.com/AutumnsGrove/codequest/internal/skillset"
)

// skillRequirement is the wire shape of one skill_requirements entry.
type skillRequirement struct {
	Skill string `json:"skill"`
	Level int    `json:"level"`
}

// entry is the wire shape of one catalog array element.
type entry struct {
	ID                int                `json:"id"`
	Name              string             `json:"name"`
	Difficulty        string             `json:"difficulty"`
	CombatRequirement int                `json:"combat_requirement"`
	QPRequirement     int                `json:"qp_requirement"`
	QuestRequirements []int              `json:"quest_requirements"`
	SkillRequirements []skillRequirement `json:"skill_requirements"`
	QuestPoints       int                `json:"quest_points"`
	XPRewards         []rewards.Entry    `json:"xp_rewards"`
}

// Load reads and parses the quest catalog at path, returning the
// resulting quest set keyed by id.
func Load(path string) (map[int]*quest.Quest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()

	var entries []entry
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("catalog: decode %s: %w", path, err)
	}

	quests := make(map[int]*quest.Quest, len(entries))
	for _, e := range entries {
		if _, exists := quests[e.ID]; exists {
			return nil, fmt.Errorf("%w: %d", quest.ErrDuplicateQuestID, e.ID)
		}

		difficulty, err := quest.ParseDifficulty(e.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("catalog: quest %d: %w", e.ID, err)
		}

		requirements, err := toRequirements(e.SkillRequirements)
		if err != nil {
			return nil, fmt.Errorf("catalog: quest %d: %w", e.ID, err)
		}
		skillReqs, err := skillset.FromRequirements(requirements)
		if err != nil {
			return nil, fmt.Errorf("catalog: quest %d: %w", e.ID, err)
		}

		questRewards := make([]rewards.Reward, 0, len(e.XPRewards))
		for _, re := range e.XPRewards {
			r, err := rewards.FromEntry(re, e.ID)
			if err != nil {
				return nil, err
			}
			questRewards = append(questRewards, r)
		}

		combatTraining, err := combat.OptimalRoute(e.CombatRequirement, nil)
		if err != nil {
			return nil, fmt.Errorf("catalog: quest %d: %w", e.ID, err)
		}

		quests[e.ID] = quest.New(
			e.ID, e.Name, difficulty, e.CombatRequirement, e.QPRequirement,
			e.QuestRequirements, skillReqs, combatTraining, e.QuestPoints, questRewards,
		)
	}

	return quests, nil
}

func toRequirements(reqs []skillRequirement) ([]skillset.Requirement, error) {
	out := make([]skillset.Requirement, 0, len(reqs))
	for _, r := range reqs {
		sk, err := skills.Parse(r.Skill)
		if err != nil {
			return nil, err
		}
		out = append(out, skillset.Requirement{Skill: sk, Level: r.Level})
	}
	return out, nil
}
