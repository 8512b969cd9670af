// Package integration provides end-to-end tests for CodeQuest that
// exercise the catalog loader and planner together, the way a real
// `codequest plan` invocation does.
package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/AutumnsGrove/codequest/internal/catalog"
	"github.com/AutumnsGrove/codequest/internal/planner"
	"github.com/AutumnsGrove/codequest/internal/player"
)

// writeCatalog serializes entries to a temp JSON file and returns its
// path, matching the on-disk shape catalog.Load expects.
func writeCatalog(t *testing.T, entries []map[string]any) string {
	t.Helper()

	data, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("marshaling test catalog: %v", err)
	}

	path := filepath.Join(t.TempDir(), "quests.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing test catalog: %v", err)
	}
	return path
}

// TestMVP_CatalogToPlan loads a small hand-written catalog and verifies
// the planner produces quests in prerequisite order with their
// Immediate rewards claimed.
func TestMVP_CatalogToPlan(t *testing.T) {
	path := writeCatalog(t, []map[string]any{
		{
			"id":                 1,
			"name":               "Cook's Assistant",
			"difficulty":         "Novice",
			"combat_requirement": 0,
			"qp_requirement":     0,
			"quest_requirements": []int{},
			"skill_requirements": []any{},
			"quest_points":       1,
			"xp_rewards": []map[string]any{
				{"type": "Immediate", "skills": "Cooking", "amount": 300},
			},
		},
		{
			"id":                 2,
			"name":               "Demon Slayer",
			"difficulty":         "Experienced",
			"combat_requirement": 0,
			"qp_requirement":     0,
			"quest_requirements": []int{1},
			"skill_requirements": []any{},
			"quest_points":       3,
			"xp_rewards":         []map[string]any{},
		},
	})

	quests, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("catalog.Load() failed: %v", err)
	}
	if len(quests) != 2 {
		t.Fatalf("catalog.Load() returned %d quests, want 2", len(quests))
	}

	p := player.New()
	strategy, err := planner.Search(p, quests)
	if err != nil {
		t.Fatalf("planner.Search() failed: %v", err)
	}

	items := strategy.Items()
	if len(items) != 2 {
		t.Fatalf("strategy has %d items, want 2", len(items))
	}
	if items[0].Quest.ID != 1 || items[1].Quest.ID != 2 {
		t.Errorf("plan order = [%d, %d], want [1, 2] (prerequisite order)",
			items[0].Quest.ID, items[1].Quest.ID)
	}
	if len(items[0].Entries) != 1 {
		t.Errorf("Cook's Assistant should have 1 claimed entry, got %d", len(items[0].Entries))
	}
	if p.QuestPoints() != 1+1+3 {
		t.Errorf("final quest points = %d, want %d", p.QuestPoints(), 1+1+3)
	}
}

// TestMVP_DuplicateQuestIDRejected verifies the catalog loader returns
// an error for a catalog that repeats a quest id.
func TestMVP_DuplicateQuestIDRejected(t *testing.T) {
	path := writeCatalog(t, []map[string]any{
		{"id": 1, "name": "A", "difficulty": "Novice", "quest_requirements": []int{}, "skill_requirements": []any{}, "xp_rewards": []map[string]any{}},
		{"id": 1, "name": "B", "difficulty": "Novice", "quest_requirements": []int{}, "skill_requirements": []any{}, "xp_rewards": []map[string]any{}},
	})

	if _, err := catalog.Load(path); err == nil {
		t.Error("catalog.Load() with duplicate ids should return an error")
	}
}
