package planner

import (
	"testing"

	"github.com/AutumnsGrove/codequest/internal/player"
	"github.com/AutumnsGrove/codequest/internal/skills"
)

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	p := player.New()
	p.AddSkills(map[skills.Skill]int64{skills.Attack: 1000})
	p.MarkCompleted(1)
	p.MarkCompleted(2)
	p.SetExplicitCombatLevel(20)

	state := Snapshot(p)
	if !state.Completed[1] || !state.Completed[2] {
		t.Error("Snapshot should record every completed quest")
	}
	if state.ExplicitCombatLevel != 20 {
		t.Errorf("Snapshot ExplicitCombatLevel = %d, want 20", state.ExplicitCombatLevel)
	}

	restored := Restore(state)
	if restored.QuestPoints() != p.QuestPoints() {
		t.Errorf("restored quest points = %d, want %d", restored.QuestPoints(), p.QuestPoints())
	}
	if !restored.HasCompleted(1) || !restored.HasCompleted(2) {
		t.Error("restored player should retain completed quests")
	}
	if restored.ExplicitCombatLevel() != 20 {
		t.Errorf("restored combat floor = %d, want 20", restored.ExplicitCombatLevel())
	}
	if restored.Skills().Get(skills.Attack) != p.Skills().Get(skills.Attack) {
		t.Error("restored player should retain skill XP")
	}
}

func TestQuestStrategy_Snapshot(t *testing.T) {
	qs := NewQuestStrategy()
	qs.AddQuest(newTestQuest(1, "Cook's Assistant"), nil)
	qs.AddNote("Train Cooking to level 5 (+388 xp)")

	snap := qs.Snapshot()
	if len(snap.Items) != 1 {
		t.Fatalf("Snapshot has %d items, want 1", len(snap.Items))
	}
	if snap.Items[0].QuestID != 1 || snap.Items[0].QuestName != "Cook's Assistant" {
		t.Errorf("Snapshot item = %+v", snap.Items[0])
	}
	if len(snap.Items[0].Lines) != 1 {
		t.Errorf("Snapshot lines = %d, want 1", len(snap.Items[0].Lines))
	}
}
