package planner

import (
	"github.com/AutumnsGrove/codequest/internal/player"
	"github.com/AutumnsGrove/codequest/internal/skillset"
)

// SaveState is the serializable snapshot of a Player, persisted between
// runs so a plan can be resumed without replaying every reward.
type SaveState struct {
	Skills              skillset.SkillSet `json:"skills"`
	QuestPoints         int               `json:"quest_points"`
	Completed           map[int]bool      `json:"completed"`
	ExplicitCombatLevel int               `json:"explicit_combat_level"`
}

// Snapshot captures p's current state for persistence.
func Snapshot(p *player.Player) SaveState {
	completed := make(map[int]bool, len(p.CompletedQuests()))
	for _, id := range p.CompletedQuests() {
		completed[id] = true
	}
	return SaveState{
		Skills:              p.Skills().Copy(),
		QuestPoints:         p.QuestPoints(),
		Completed:           completed,
		ExplicitCombatLevel: p.ExplicitCombatLevel(),
	}
}

// Restore rebuilds a Player from a previously saved SaveState.
func Restore(s SaveState) *player.Player {
	return player.Restore(s.Skills, s.QuestPoints, s.Completed, s.ExplicitCombatLevel)
}

// PlanSnapshot is the serializable form of a QuestStrategy: enough to
// redisplay a previously computed plan without reconstructing live
// Reward/Quest objects.
type PlanSnapshot struct {
	Items []PlanItemSnapshot `json:"items"`
}

// PlanItemSnapshot is one quest's slot in a PlanSnapshot.
type PlanItemSnapshot struct {
	QuestID   int      `json:"quest_id"`
	QuestName string   `json:"quest_name"`
	Lines     []string `json:"lines"`
}

// Snapshot captures qs as a PlanSnapshot for persistence.
func (qs *QuestStrategy) Snapshot() PlanSnapshot {
	items := make([]PlanItemSnapshot, 0, qs.Len())
	for _, item := range qs.Items() {
		lines := make([]string, 0, len(item.Entries))
		for _, e := range item.Entries {
			lines = append(lines, e.String())
		}
		items = append(items, PlanItemSnapshot{
			QuestID:   item.Quest.ID,
			QuestName: item.Quest.Name,
			Lines:     lines,
		})
	}
	return PlanSnapshot{Items: items}
}
