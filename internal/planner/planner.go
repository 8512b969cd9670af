// Package planner implements the core quest-ordering algorithm of
// spec.md §4.5: a Kahn-style topological walk over the quest
// dependency graph, extended with a greedy lamp-allocation subproblem
// for whichever candidate quest has the smallest remaining training
// gap once no quest is immediately completable.
package planner

import (
	"fmt"
	"sort"

	"github.com/AutumnsGrove/codequest/internal/combat"
	"github.com/AutumnsGrove/codequest/internal/player"
	"github.com/AutumnsGrove/codequest/internal/quest"
	"github.com/AutumnsGrove/codequest/internal/rewards"
	"github.com/AutumnsGrove/codequest/internal/skills"
	"github.com/AutumnsGrove/codequest/internal/skillset"
)

// Input bundles the planner's external inputs (spec.md §6): an
// optional starting SkillSet and a set of quests to mark completed
// without replaying their rewards.
type Input struct {
	InitialStats  skillset.SkillSet
	InitialQuests []int
}

// Plan constructs a fresh Player from input and runs the search over
// quests.
func Plan(input Input, quests map[int]*quest.Quest) (*QuestStrategy, error) {
	p := player.NewWithStats(input.InitialStats)
	for _, id := range input.InitialQuests {
		p.MarkCompleted(id)
	}
	return Search(p, quests)
}

// Search runs the optimal-search algorithm against an already-seeded
// player, returning the resulting plan. It mutates p in place.
func Search(p *player.Player, quests map[int]*quest.Quest) (*QuestStrategy, error) {
	strategy := NewQuestStrategy()

	var shell []int
	for id, q := range quests {
		if !p.HasCompleted(id) && allPrereqsCompleted(q, p) {
			shell = append(shell, id)
		}
	}
	sort.Ints(shell)

	postreqs := buildPostreqs(quests)
	var hoard []rewards.Reward

	for len(shell) > 0 {
		hoard = drainClaimables(p, hoard, strategy)

		sort.SliceStable(shell, func(i, j int) bool {
			return quests[shell[i]].Less(quests[shell[j]])
		})

		idx := chooseNextQuest(shell, p, quests)
		if idx >= 0 {
			questID := shell[idx]
			shell = append(shell[:idx], shell[idx+1:]...)
			q := quests[questID]

			claimed, hoarded := p.CompleteQuest(q.ID, q.QuestPoints, q.Rewards)
			strategy.AddQuest(q, claimed)
			hoard = append(hoard, hoarded...)

			for _, postID := range postreqs[q.ID] {
				if allPrereqsCompleted(quests[postID], p) {
					shell = append(shell, postID)
				}
			}
			delete(postreqs, q.ID)
			continue
		}

		// No quest is immediately completable: run the lamp-allocation
		// subproblem over every candidate and commit to the one with
		// the smallest residual training gap (spec.md §4.5 Step 4-5).
		prospects := computeProspects(shell, quests, p, hoard)
		choiceID := bestProspect(shell, prospects)
		chosen := prospects[choiceID]

		for _, use := range chosen.uses {
			hoard = removeReward(hoard, use.reward)
			delta, err := use.reward.GetReward(p.Skills(), use.skill)
			if err != nil {
				continue
			}
			p.AddSkills(delta)

			// Tiered is parsed as a ClaimableChoice for placement
			// purposes (spec.md §6); Prismatic is Choice-shaped and so
			// is back-attributed the same way.
			switch use.reward.Type {
			case rewards.Claimable, rewards.ClaimableChoice, rewards.Tiered:
				strategy.AddReward(Entry{Reward: &use.reward, Choice: use.skill})
			case rewards.Choice, rewards.Prismatic:
				strategy.PushReward(Entry{Reward: &use.reward, Choice: use.skill}, use.reward.QuestID)
			}
		}

		q := quests[choiceID]
		trainingGoal := q.SkillPrereqs.Sub(p.Skills()).Positive()
		if !trainingGoal.IsEmpty() {
			p.AddSkills(trainingGoal)
			for _, sk := range sortedSkills(trainingGoal) {
				lvl := skills.MustLevelForXP(q.SkillPrereqs.Get(sk))
				strategy.AddNote(trainingNote(sk, lvl, trainingGoal.Get(sk)))
			}
		}

		if p.CombatLevel() < q.CombatRequirement {
			route, err := combat.OptimalRoute(q.CombatRequirement, p.Skills())
			if err == nil && !route.IsEmpty() {
				p.AddSkills(route)
				for _, sk := range sortedSkills(route) {
					lvl := skills.MustLevelForXP(p.Skills().Get(sk))
					strategy.AddNote(trainingNote(sk, lvl, route.Get(sk)))
				}
			}
		}
		// Deliberately do not pop choiceID from shell: the next
		// iteration's Step 3 will find it completable now.
	}

	return strategy, nil
}

func trainingNote(sk skills.Skill, level int, xp int64) string {
	return fmt.Sprintf("Train %s to level %d (+%d xp)", sk, level, xp)
}

// drainClaimables implements spec.md §4.5 Step 1: claim any hoarded
// Claimable reward whose threshold the player now meets, applying its
// XP and appending it to the plan's last item.
func drainClaimables(p *player.Player, hoard []rewards.Reward, strategy *QuestStrategy) []rewards.Reward {
	if strategy.Len() == 0 {
		return hoard
	}
	var kept []rewards.Reward
	for _, r := range hoard {
		if r.Type == rewards.Claimable && r.IsClaimable(p.Skills(), skills.None) {
			delta, err := r.GetReward(p.Skills(), skills.None)
			if err == nil {
				p.AddSkills(delta)
			}
			reward := r
			strategy.AddReward(Entry{Reward: &reward})
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// chooseNextQuest returns the index in shell of the first quest that
// satisfies its requirements against p, or -1 if none does.
func chooseNextQuest(shell []int, p *player.Player, quests map[int]*quest.Quest) int {
	for i, id := range shell {
		if quests[id].SatisfiesRequirements(p) {
			return i
		}
	}
	return -1
}

// buildPostreqs inverts each quest's prerequisite list into a map from
// prerequisite quest id to the quests that name it.
func buildPostreqs(quests map[int]*quest.Quest) map[int][]int {
	res := make(map[int][]int)
	for id, q := range quests {
		for prereq := range q.QuestPrereqs {
			res[prereq] = append(res[prereq], id)
		}
	}
	for prereq := range res {
		sort.Ints(res[prereq])
	}
	return res
}

func allPrereqsCompleted(q *quest.Quest, p *player.Player) bool {
	for prereq := range q.QuestPrereqs {
		if !p.HasCompleted(prereq) {
			return false
		}
	}
	return true
}

// lampUse records one lamp applied against a candidate's gap during
// prospecting.
type lampUse struct {
	reward rewards.Reward
	skill  skills.Skill
}

type prospect struct {
	gap  skillset.SkillSet
	uses []lampUse
}

// computeProspects implements spec.md §4.5 Step 4: for every candidate
// quest still in shell, simulate draining hoard against its XP gap.
func computeProspects(shell []int, quests map[int]*quest.Quest, p *player.Player, hoard []rewards.Reward) map[int]*prospect {
	result := make(map[int]*prospect, len(shell))
	for _, questID := range shell {
		q := quests[questID]
		playerSkills := p.Skills().Copy()
		hoardCopy := append([]rewards.Reward(nil), hoard...)

		gap := q.SkillPrereqs.Add(q.CombatTrainingRequirement).Sub(playerSkills).Positive()
		var uses []lampUse

		for {
			positive := gap.Positive()
			if positive.IsEmpty() {
				break
			}
			order := sortedSkills(positive)

			applied := false
			for _, sk := range order {
				idx := bestLampIndex(playerSkills, gap, sk, hoardCopy)
				if idx < 0 {
					continue
				}
				lamp := hoardCopy[idx]
				hoardCopy = append(hoardCopy[:idx:idx], hoardCopy[idx+1:]...)

				delta, err := lamp.GetReward(playerSkills, sk)
				if err != nil {
					continue
				}
				playerSkills.AddInPlace(delta)
				gap = gap.Sub(delta)
				uses = append(uses, lampUse{reward: lamp, skill: sk})
				applied = true
				break
			}
			if !applied {
				break
			}
		}

		result[questID] = &prospect{gap: gap, uses: uses}
	}
	return result
}

// bestProspect picks the candidate with the smallest residual gap by
// total XP remaining (spec.md §4.5 Step 5).
func bestProspect(shell []int, prospects map[int]*prospect) int {
	best := shell[0]
	bestTotal := prospects[best].gap.Total()
	for _, id := range shell[1:] {
		total := prospects[id].gap.Total()
		if total < bestTotal {
			best, bestTotal = id, total
		}
	}
	return best
}

// bestLampIndex implements spec.md §4.5's "best lamp" rule: among
// claimable rewards in hoard, the one minimizing |amount - gap[skill]|,
// ties broken by the reward ordering of §4.2.
func bestLampIndex(playerSkills, gap skillset.SkillSet, sk skills.Skill, hoard []rewards.Reward) int {
	type candidate struct {
		idx int
		r   rewards.Reward
	}
	var candidates []candidate
	for i, r := range hoard {
		if r.IsClaimable(playerSkills, sk) {
			candidates = append(candidates, candidate{i, r})
		}
	}
	if len(candidates) == 0 {
		return -1
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].r.Less(candidates[j].r, playerSkills, sk)
	})

	target := gap.Get(sk)
	best := candidates[0].idx
	bestDiff := absInt64(candidates[0].r.Amount(playerSkills, sk) - target)
	for _, c := range candidates[1:] {
		diff := absInt64(c.r.Amount(playerSkills, sk) - target)
		if diff < bestDiff {
			best, bestDiff = c.idx, diff
		}
	}
	return best
}

// removeReward removes the first reward equal to target from hoard.
func removeReward(hoard []rewards.Reward, target rewards.Reward) []rewards.Reward {
	for i, r := range hoard {
		if r == target {
			return append(hoard[:i:i], hoard[i+1:]...)
		}
	}
	return hoard
}

// sortedSkills orders a SkillSet's keys by descending XP, ties broken
// by skill declaration order, matching the "sorted by remaining
// deficit descending" requirement of spec.md §4.5 deterministically.
func sortedSkills(s skillset.SkillSet) []skills.Skill {
	out := make([]skills.Skill, 0, len(s))
	for sk := range s {
		out = append(out, sk)
	}
	sort.Slice(out, func(i, j int) bool {
		if s[out[i]] != s[out[j]] {
			return s[out[i]] > s[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
