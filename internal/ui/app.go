// Package ui handles the terminal user interface for CodeQuest: a
// single-screen Bubble Tea program that walks a computed plan.
package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AutumnsGrove/codequest/internal/planner"
	"github.com/AutumnsGrove/codequest/internal/player"
	"github.com/AutumnsGrove/codequest/internal/ui/components"
	"github.com/AutumnsGrove/codequest/internal/ui/screens"
)

// Model is the root Bubble Tea model for the plan viewer.
type Model struct {
	width  int
	height int
	ready  bool

	strategy *planner.QuestStrategy
	player   *player.Player
	keys     *KeyMap

	selected int
	expanded map[int]bool
}

// NewModel creates a UI model over a computed plan and the player it
// was computed for, using expandKey/quitKey from config.KeybindsConfig.
func NewModel(strategy *planner.QuestStrategy, p *player.Player, expandKey, quitKey string) Model {
	return Model{
		strategy: strategy,
		player:   p,
		keys:     NewKeyMap(expandKey, quitKey),
		expanded: make(map[int]bool),
	}
}

// Init satisfies tea.Model. The plan viewer needs no initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model, handling window resizes and the
// navigation/expand/quit key bindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.strategy != nil && m.selected > 0 {
				m.selected--
			}
		case key.Matches(msg, m.keys.Down):
			if m.strategy != nil && m.selected < m.strategy.Len()-1 {
				m.selected++
			}
		case key.Matches(msg, m.keys.Expand):
			m.toggleExpanded()
		}
	}

	return m, nil
}

// View satisfies tea.Model.
func (m Model) View() string {
	if !m.ready {
		return PlaceInCenter(m.width, m.height, MutedTextStyle.Render("Loading…"))
	}

	title := RenderTitle("CodeQuest", "⚔")
	header := components.RenderHeader("Plan", m.player, m.width)
	stats := components.RenderStatBar(m.player, m.width)
	plan := screens.RenderPlanViewer(m.strategy, m.selected, m.expanded, m.width, m.height)

	return JoinVertical(title, header, stats, "", BoxStyle.Width(m.width-4).Render(plan))
}

// toggleExpanded flips the expanded state of the currently selected
// StrategyItem.
func (m *Model) toggleExpanded() {
	if m.strategy == nil || m.strategy.Len() == 0 {
		return
	}
	items := m.strategy.Items()
	id := items[m.selected].Quest.ID
	m.expanded[id] = !m.expanded[id]
}
