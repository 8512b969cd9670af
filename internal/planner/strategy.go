package planner

import (
	"fmt"

	"github.com/AutumnsGrove/codequest/internal/quest"
	"github.com/AutumnsGrove/codequest/internal/rewards"
	"github.com/AutumnsGrove/codequest/internal/skills"
)

// Entry is one line of a StrategyItem's reward list: either a claimed
// reward (with the skill it was assigned to, for Choice-shaped
// variants) or a free-form training note (spec.md §6).
type Entry struct {
	Reward *rewards.Reward
	Choice skills.Skill
	Note   string
}

func (e Entry) String() string {
	if e.Reward == nil {
		return e.Note
	}
	if e.Choice != skills.None {
		return fmt.Sprintf("Use %s on %s", e.Reward, e.Choice)
	}
	return e.Reward.String()
}

// StrategyItem is a single quest's slot in the plan: the quest itself
// and the ordered list of rewards/notes attached to completing it.
type StrategyItem struct {
	Quest   *quest.Quest
	Entries []Entry
}

// AddEntry appends e to the item's reward list.
func (si *StrategyItem) AddEntry(e Entry) {
	si.Entries = append(si.Entries, e)
}

// PushEntry prepends e — used to back-attribute a deferred Choice
// reward to the quest that originated it.
func (si *StrategyItem) PushEntry(e Entry) {
	si.Entries = append([]Entry{e}, si.Entries...)
}

// QuestStrategy is the planner's output: an ordered, append-only
// mapping from quest id to StrategyItem (spec.md §3's Plan/QuestStrategy).
type QuestStrategy struct {
	order []int
	items map[int]*StrategyItem

	// pending holds entries recorded by AddReward/PushReward before any
	// quest has been completed yet (spec.md §4.5 Step 4-5 can run the
	// very first loop iteration, with no "current (last) plan item" to
	// append to). They're flushed onto the first item AddQuest creates.
	pending []Entry
}

// NewQuestStrategy returns an empty plan.
func NewQuestStrategy() *QuestStrategy {
	return &QuestStrategy{items: make(map[int]*StrategyItem)}
}

// AddQuest appends a new item for q, seeded with any entries recorded
// before q was completed followed by its just-claimed rewards, and
// makes it the new "last" item.
func (qs *QuestStrategy) AddQuest(q *quest.Quest, claimed []rewards.Reward) {
	entries := make([]Entry, 0, len(qs.pending)+len(claimed))
	entries = append(entries, qs.pending...)
	qs.pending = nil
	for i := range claimed {
		r := claimed[i]
		entries = append(entries, Entry{Reward: &r})
	}
	qs.items[q.ID] = &StrategyItem{Quest: q, Entries: entries}
	qs.order = append(qs.order, q.ID)
}

// last returns the most recently added quest id, and whether one exists.
func (qs *QuestStrategy) last() (int, bool) {
	if len(qs.order) == 0 {
		return 0, false
	}
	return qs.order[len(qs.order)-1], true
}

// AddReward appends e to the named item's reward list, defaulting to
// the last-added item when questID is omitted. If no quest has been
// completed yet, e is buffered in pending until the first AddQuest.
func (qs *QuestStrategy) AddReward(e Entry, questID ...int) {
	id, ok := qs.resolve(questID)
	if !ok {
		qs.pending = append(qs.pending, e)
		return
	}
	qs.items[id].AddEntry(e)
}

// PushReward prepends e into the named item's reward list — used to
// back-attribute a Choice reward to its originating quest. If no quest
// has been completed yet, e is buffered in pending until the first
// AddQuest.
func (qs *QuestStrategy) PushReward(e Entry, questID ...int) {
	id, ok := qs.resolve(questID)
	if !ok {
		qs.pending = append([]Entry{e}, qs.pending...)
		return
	}
	qs.items[id].PushEntry(e)
}

// AddNote appends a free-form training note to the named item,
// defaulting to the last-added item.
func (qs *QuestStrategy) AddNote(note string, questID ...int) {
	qs.AddReward(Entry{Note: note}, questID...)
}

// resolve returns the explicit questID if given, otherwise the
// last-added item's id; ok is false when neither is available.
func (qs *QuestStrategy) resolve(questID []int) (id int, ok bool) {
	if len(questID) > 0 {
		return questID[0], true
	}
	return qs.last()
}

// Items returns the plan's items in completion order.
func (qs *QuestStrategy) Items() []*StrategyItem {
	out := make([]*StrategyItem, 0, len(qs.order))
	for _, id := range qs.order {
		out = append(out, qs.items[id])
	}
	return out
}

// Len reports the number of quests in the plan.
func (qs *QuestStrategy) Len() int {
	return len(qs.order)
}
