package rewards

import (
	"fmt"
	"strings"

	"github.com/AutumnsGrove/codequest/internal/skills"
)

// Entry is the wire shape of one `xp_rewards[]` element in the quest
// catalog (spec.md §6). Fields not relevant to Type are left zero.
type Entry struct {
	Type         string `json:"type"`
	Skills       string `json:"skills"`
	Amount       int64  `json:"amount"`
	MinimumLevel int    `json:"minimum_level"`
	Source       string `json:"source"`
	Size         string `json:"size"`
}

// FromEntry converts a catalog reward entry into a Reward, attributing
// it to questID. `Tiered` keeps its own Type rather than being
// collapsed to ClaimableChoice: the planner places the two identically,
// but Reward.IsClaimable branches on r.Type for Tiered's all-skills
// threshold.
func FromEntry(e Entry, questID int) (Reward, error) {
	minLevel := e.MinimumLevel
	if minLevel == 0 {
		minLevel = 1
	}

	mask, err := skills.ParseMask(e.Skills)
	if err != nil {
		return Reward{}, fmt.Errorf("rewards: quest %d: %w", questID, err)
	}

	switch e.Type {
	case "Immediate":
		if mask.Count() != 1 {
			return Reward{}, fmt.Errorf("rewards: quest %d: Immediate reward must name exactly one skill", questID)
		}
		return NewImmediate(questID, mask, e.Amount), nil
	case "Choice":
		if mask.Count() < 2 {
			return Reward{}, fmt.Errorf("rewards: quest %d: Choice reward must name at least two skills", questID)
		}
		return NewChoice(questID, mask, e.Amount, minLevel)
	case "Claimable":
		if mask.Count() != 1 {
			return Reward{}, fmt.Errorf("rewards: quest %d: Claimable reward must name exactly one skill", questID)
		}
		if e.Source == "" {
			return Reward{}, fmt.Errorf("rewards: quest %d: Claimable reward requires a source", questID)
		}
		return NewClaimable(questID, mask, e.Amount, minLevel, e.Source)
	case "ClaimableChoice":
		if e.Source == "" {
			return Reward{}, fmt.Errorf("rewards: quest %d: ClaimableChoice reward requires a source", questID)
		}
		return NewClaimableChoice(questID, mask, e.Amount, minLevel, e.Source)
	case "Tiered":
		if e.Source == "" {
			return Reward{}, fmt.Errorf("rewards: quest %d: Tiered reward requires a source", questID)
		}
		return NewTiered(questID, mask, e.Amount, minLevel, e.Source)
	case "Prismatic":
		if mask.Count() < 2 {
			return Reward{}, fmt.Errorf("rewards: quest %d: Prismatic reward must name at least two skills", questID)
		}
		size, err := parseSize(e.Size)
		if err != nil {
			return Reward{}, fmt.Errorf("rewards: quest %d: %w", questID, err)
		}
		return NewPrismatic(questID, mask, size, minLevel)
	default:
		return Reward{}, fmt.Errorf("%w: %q (quest %d)", ErrUnknownRewardType, e.Type, questID)
	}
}

func parseSize(s string) (Size, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SMALL":
		return Small, nil
	case "MEDIUM":
		return Medium, nil
	case "LARGE":
		return Large, nil
	case "HUGE":
		return Huge, nil
	default:
		return 0, fmt.Errorf("rewards: unknown prismatic size %q", s)
	}
}
