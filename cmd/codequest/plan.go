package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/AutumnsGrove/codequest/internal/catalog"
	"github.com/AutumnsGrove/codequest/internal/config"
	"github.com/AutumnsGrove/codequest/internal/planner"
	"github.com/AutumnsGrove/codequest/internal/player"
	"github.com/AutumnsGrove/codequest/internal/skills"
	"github.com/AutumnsGrove/codequest/internal/skillset"
	"github.com/AutumnsGrove/codequest/internal/storage"
	"github.com/AutumnsGrove/codequest/internal/ui"
)

var (
	interactive bool
	save        bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute and display the optimal quest plan",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "launch the terminal UI instead of printing plain text")
	planCmd.Flags().BoolVarP(&save, "save", "s", true, "persist the computed plan and player state via skate")
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Debug.Enabled {
		log.Printf("loaded config; catalog path %s", cfg.Catalog.Path)
	}

	catalogPath, err := config.ExpandPath(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("resolving catalog path: %w", err)
	}
	quests, err := catalog.Load(catalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	p, err := newPlayer(cfg)
	if err != nil {
		return fmt.Errorf("building initial player state: %w", err)
	}

	strategy, err := planner.Search(p, quests)
	if err != nil {
		return fmt.Errorf("computing plan: %w", err)
	}

	if save {
		persist(p, strategy)
	}

	if interactive {
		model := ui.NewModel(strategy, p, cfg.Keybinds.PlanViewerExpand, cfg.Keybinds.PlanViewerQuit)
		program := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("running terminal UI: %w", err)
		}
		return nil
	}

	printPlan(strategy)
	return nil
}

// newPlayer builds the Player the planner should search from: the
// default baseline, optionally overridden by the initial-stats file
// named in cfg.Player.StatsPath, with an explicit combat floor applied
// last.
func newPlayer(cfg *config.Config) (*player.Player, error) {
	initial := skillset.Empty()
	var completed []int

	if cfg.Player.StatsPath != "" {
		statsPath, err := config.ExpandPath(cfg.Player.StatsPath)
		if err != nil {
			return nil, err
		}
		loaded, completedQuests, err := loadStats(statsPath)
		if err != nil {
			return nil, err
		}
		initial = loaded
		completed = completedQuests
	}

	p := player.NewWithStats(initial)
	for _, id := range completed {
		p.MarkCompleted(id)
	}
	if cfg.Player.ExplicitCombatLevel > 0 {
		p.SetExplicitCombatLevel(cfg.Player.ExplicitCombatLevel)
	}
	return p, nil
}

// statsFile is the wire shape of a Player.StatsPath file: a starting
// skill set (by level, mirroring the catalog's skill_requirements
// shape) and quests already completed.
type statsFile struct {
	Skills []struct {
		Skill string `json:"skill"`
		Level int    `json:"level"`
	} `json:"skills"`
	CompletedQuests []int `json:"completed_quests"`
}

func loadStats(path string) (skillset.SkillSet, []int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening stats file: %w", err)
	}
	defer f.Close()

	var sf statsFile
	if err := json.NewDecoder(f).Decode(&sf); err != nil {
		return nil, nil, fmt.Errorf("decoding stats file: %w", err)
	}

	reqs := make([]skillset.Requirement, 0, len(sf.Skills))
	for _, s := range sf.Skills {
		sk, err := skills.Parse(s.Skill)
		if err != nil {
			return nil, nil, fmt.Errorf("stats file: %w", err)
		}
		reqs = append(reqs, skillset.Requirement{Skill: sk, Level: s.Level})
	}

	set, err := skillset.FromRequirements(reqs)
	if err != nil {
		return nil, nil, fmt.Errorf("stats file: %w", err)
	}
	return set, sf.CompletedQuests, nil
}

// persist saves the computed plan and the resulting player state via
// skate, logging a warning rather than failing the command if skate
// isn't installed.
func persist(p *player.Player, strategy *planner.QuestStrategy) {
	client, err := storage.NewSkateClient()
	if err != nil {
		log.Printf("skipping save: %v", err)
		return
	}
	if err := client.SavePlayer(planner.Snapshot(p)); err != nil {
		log.Printf("saving player state: %v", err)
	}
	if err := client.SavePlan(strategy.Snapshot()); err != nil {
		log.Printf("saving plan: %v", err)
	}
}

// printPlan renders the plan as plain text, one quest per line
// followed by its indented reward/training entries.
func printPlan(strategy *planner.QuestStrategy) {
	for i, item := range strategy.Items() {
		fmt.Printf("%3d. %s\n", i+1, item.Quest.Name)
		for _, e := range item.Entries {
			fmt.Printf("     - %s\n", e.String())
		}
	}
}
