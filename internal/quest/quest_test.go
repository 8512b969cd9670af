package quest

import (
	"testing"

	"github.com/AutumnsGrove/codequest/internal/player"
	"github.com/AutumnsGrove/codequest/internal/rewards"
	"github.com/AutumnsGrove/codequest/internal/skills"
	"github.com/AutumnsGrove/codequest/internal/skillset"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input string
		want  Difficulty
	}{
		{"novice", Novice},
		{"Experienced", Experienced},
		{"GRANDMASTER", Grandmaster},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.input)
		if err != nil {
			t.Fatalf("ParseDifficulty(%q) returned error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseDifficulty_Unknown(t *testing.T) {
	if _, err := ParseDifficulty("impossible"); err == nil {
		t.Error("ParseDifficulty should reject an unknown tier")
	}
}

func TestSatisfiesRequirements_AlreadyCompleted(t *testing.T) {
	q := New(1, "Cook's Assistant", Novice, 0, 0, nil, skillset.Empty(), skillset.Empty(), 1, nil)
	p := player.New()
	p.MarkCompleted(1)

	if q.SatisfiesRequirements(p) {
		t.Error("a completed quest should never satisfy requirements again")
	}
}

func TestSatisfiesRequirements_MissingSkillPrereq(t *testing.T) {
	prereqXP, _ := skills.MinXPForLevel(30)
	q := New(1, "Dragon Slayer", Experienced, 0, 0,
		nil, skillset.SkillSet{skills.Crafting: prereqXP}, skillset.Empty(), 2, nil)

	p := player.New()
	if q.SatisfiesRequirements(p) {
		t.Error("a fresh player should not satisfy a Crafting level-30 prereq")
	}
}

func TestSatisfiesRequirements_MissingQuestPrereq(t *testing.T) {
	q := New(2, "Demon Slayer", Experienced, 0, 0, []int{1}, skillset.Empty(), skillset.Empty(), 3, nil)
	p := player.New()

	if q.SatisfiesRequirements(p) {
		t.Error("quest 2 requires quest 1 to be completed first")
	}
	p.MarkCompleted(1)
	if !q.SatisfiesRequirements(p) {
		t.Error("quest 2 should be available once quest 1 is completed")
	}
}

func TestSatisfiesRequirements_CombatAndQP(t *testing.T) {
	q := New(3, "Monkey Madness", Master, 50, 10, nil, skillset.Empty(), skillset.Empty(), 3, nil)
	p := player.New()

	if q.SatisfiesRequirements(p) {
		t.Error("should require combat level 50 and 10 qp")
	}
	p.SetExplicitCombatLevel(50)
	if q.SatisfiesRequirements(p) {
		t.Error("combat level alone should not be enough; qp is still missing")
	}
}

func TestQuest_Less_ByDifficultyFirst(t *testing.T) {
	easy := New(1, "A", Novice, 0, 0, nil, skillset.Empty(), skillset.Empty(), 1, nil)
	hard := New(2, "B", Master, 0, 0, nil, skillset.Empty(), skillset.Empty(), 1, nil)

	if !easy.Less(hard) {
		t.Error("a lower difficulty should sort first regardless of other fields")
	}
	if hard.Less(easy) {
		t.Error("a higher difficulty should not sort before a lower one")
	}
}

func TestQuest_Less_TiebreaksOnID(t *testing.T) {
	a := New(1, "A", Novice, 0, 0, nil, skillset.Empty(), skillset.Empty(), 1, nil)
	b := New(2, "B", Novice, 0, 0, nil, skillset.Empty(), skillset.Empty(), 1, nil)

	if !a.Less(b) {
		t.Error("when ordering keys are equal/incomparable, lower id should sort first")
	}
}

func TestQuest_Less_BySkillPrereqMagnitude(t *testing.T) {
	lowXP, _ := skills.MinXPForLevel(10)
	highXP, _ := skills.MinXPForLevel(60)

	light := New(1, "Light", Intermediate, 0, 0, nil, skillset.SkillSet{skills.Mining: lowXP}, skillset.Empty(), 1, nil)
	heavy := New(2, "Heavy", Intermediate, 0, 0, nil, skillset.SkillSet{skills.Mining: highXP}, skillset.Empty(), 1, nil)

	if !light.Less(heavy) {
		t.Error("a smaller skill prereq should sort before a larger one at the same difficulty")
	}
}

func TestNew_RewardsCarried(t *testing.T) {
	r := rewards.NewImmediate(1, skills.Cooking, 300)
	q := New(1, "Cook's Assistant", Novice, 0, 0, nil, skillset.Empty(), skillset.Empty(), 1, []rewards.Reward{r})
	if len(q.Rewards) != 1 {
		t.Fatalf("expected 1 reward, got %d", len(q.Rewards))
	}
	if q.Rewards[0].Skills != skills.Cooking {
		t.Error("reward's skill should be carried through unchanged")
	}
}
