package planner

import (
	"testing"

	"github.com/AutumnsGrove/codequest/internal/player"
	"github.com/AutumnsGrove/codequest/internal/quest"
	"github.com/AutumnsGrove/codequest/internal/rewards"
	"github.com/AutumnsGrove/codequest/internal/skills"
	"github.com/AutumnsGrove/codequest/internal/skillset"
)

func TestSearch_RespectsQuestPrerequisites(t *testing.T) {
	q1 := quest.New(1, "Cook's Assistant", quest.Novice, 0, 0, nil, skillset.Empty(), skillset.Empty(), 1, nil)
	q2 := quest.New(2, "Demon Slayer", quest.Experienced, 0, 0, []int{1}, skillset.Empty(), skillset.Empty(), 3, nil)

	quests := map[int]*quest.Quest{1: q1, 2: q2}
	p := player.New()

	strategy, err := Search(p, quests)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	items := strategy.Items()
	if len(items) != 2 {
		t.Fatalf("strategy has %d items, want 2", len(items))
	}
	if items[0].Quest.ID != 1 || items[1].Quest.ID != 2 {
		t.Errorf("order = [%d, %d], want [1, 2]", items[0].Quest.ID, items[1].Quest.ID)
	}
}

func TestSearch_ClaimsImmediateRewards(t *testing.T) {
	r := rewards.NewImmediate(1, skills.Cooking, 300)
	q1 := quest.New(1, "Cook's Assistant", quest.Novice, 0, 0, nil, skillset.Empty(), skillset.Empty(), 1, []rewards.Reward{r})

	quests := map[int]*quest.Quest{1: q1}
	p := player.New()

	strategy, err := Search(p, quests)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	items := strategy.Items()
	if len(items[0].Entries) != 1 {
		t.Fatalf("expected the Immediate reward claimed, got %d entries", len(items[0].Entries))
	}
	if p.Skills().Get(skills.Cooking) == 0 {
		t.Error("Immediate reward xp should be applied to the player")
	}
}

func TestSearch_HoardsClaimableUntilEligible(t *testing.T) {
	claimable, _ := rewards.NewClaimable(1, skills.Mining, 1000, 40, "Shilo Village")
	q1 := quest.New(1, "A", quest.Novice, 0, 0, nil, skillset.Empty(), skillset.Empty(), 1, []rewards.Reward{claimable})
	q2 := quest.New(2, "B", quest.Novice, 0, 0, []int{1}, skillset.Empty(), skillset.Empty(), 1, nil)

	quests := map[int]*quest.Quest{1: q1, 2: q2}
	p := player.New()

	strategy, err := Search(p, quests)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	// player never reaches Mining 40, so the lamp should never be claimed
	for _, item := range strategy.Items() {
		for _, e := range item.Entries {
			if e.Reward != nil && e.Reward.Type == rewards.Claimable {
				t.Error("an unreachable Claimable reward should remain hoarded, not appear in the plan")
			}
		}
	}
}

func TestSearch_TrainsCombatWhenRequired(t *testing.T) {
	q1 := quest.New(1, "Monkey Madness", quest.Master, 30, 0, nil, skillset.Empty(), skillset.Empty(), 1, nil)
	quests := map[int]*quest.Quest{1: q1}
	p := player.New()

	strategy, err := Search(p, quests)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if p.CombatLevel() < 30 {
		t.Errorf("player combat level = %d after search, want >= 30", p.CombatLevel())
	}
	if strategy.Len() != 1 {
		t.Fatalf("strategy should contain the one quest, got %d", strategy.Len())
	}
}

func TestSearch_SkillGapProducesTrainingNote(t *testing.T) {
	needXP, _ := skills.MinXPForLevel(20)
	q1 := quest.New(1, "Swept Away", quest.Intermediate, 0, 0, nil,
		skillset.SkillSet{skills.Crafting: needXP}, skillset.Empty(), 1, nil)
	quests := map[int]*quest.Quest{1: q1}
	p := player.New()

	strategy, err := Search(p, quests)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	foundNote := false
	for _, item := range strategy.Items() {
		for _, e := range item.Entries {
			if e.Note != "" {
				foundNote = true
			}
		}
	}
	if !foundNote {
		t.Error("expected a training note for the Crafting gap")
	}
	if p.Skills().Get(skills.Crafting) < needXP {
		t.Error("player's Crafting XP should have been raised to satisfy the prerequisite")
	}
}

func TestPlan_AppliesInitialQuests(t *testing.T) {
	q1 := quest.New(1, "A", quest.Novice, 0, 0, nil, skillset.Empty(), skillset.Empty(), 1, nil)
	q2 := quest.New(2, "B", quest.Novice, 0, 0, []int{1}, skillset.Empty(), skillset.Empty(), 1, nil)
	quests := map[int]*quest.Quest{1: q1, 2: q2}

	strategy, err := Plan(Input{InitialQuests: []int{1}}, quests)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	items := strategy.Items()
	if len(items) != 1 {
		t.Fatalf("strategy should only contain quest 2 (quest 1 marked pre-completed), got %d items", len(items))
	}
	if items[0].Quest.ID != 2 {
		t.Errorf("remaining quest = %d, want 2", items[0].Quest.ID)
	}
}

func TestPlan_AppliesInitialStats(t *testing.T) {
	prereqXP, _ := skills.MinXPForLevel(20)
	q1 := quest.New(1, "A", quest.Novice, 0, 0, nil,
		skillset.SkillSet{skills.Mining: prereqXP}, skillset.Empty(), 1, nil)
	quests := map[int]*quest.Quest{1: q1}

	startXP, _ := skills.MinXPForLevel(30)
	strategy, err := Plan(Input{InitialStats: skillset.SkillSet{skills.Mining: startXP}}, quests)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	items := strategy.Items()
	for _, e := range items[0].Entries {
		if e.Note != "" {
			t.Errorf("no training note expected: starting Mining level already exceeds the prerequisite, got %q", e.Note)
		}
	}
}
