// Package components provides reusable UI components for CodeQuest
// This file implements the stat bar component that displays the player's
// skill levels and progress.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AutumnsGrove/codequest/internal/player"
	"github.com/AutumnsGrove/codequest/internal/skills"
)

// Color constants (copied from the ui package to avoid an import
// cycle, matching header.go's convention).
var (
	statBarColorMuted     = lipgloss.Color("243")
	statBarColorPrimary   = lipgloss.Color("205")
	statBarColorLevel     = lipgloss.Color("93")
	statBarColorBright    = lipgloss.Color("15")
	statBarColorSecondary = lipgloss.Color("63")
	statBarColorDim       = lipgloss.Color("240")
	statBarColorError     = lipgloss.Color("196")
)

// StatBarConfig holds configuration options for the stat bar rendering
type StatBarConfig struct {
	Width      int  // Total width available for the stat bar
	ShowCombat bool // Whether to show the combat level line
	Compact    bool // If true, use a more compact layout
}

// DefaultStatBarConfig returns sensible defaults for stat bar configuration
func DefaultStatBarConfig() StatBarConfig {
	return StatBarConfig{
		Width:      80,
		ShowCombat: true,
		Compact:    false,
	}
}

// RenderStatBar renders the player's skill levels, combat level, and quest
// points. This is the main entry point for displaying player progress in
// the UI.
//
// Parameters:
//   - p: The player whose stats to display (nil-safe)
//   - width: The total width available for the stat bar (minimum 40 characters)
//
// Returns:
//   - string: The rendered stat bar as a formatted string
func RenderStatBar(p *player.Player, width int) string {
	if p == nil {
		return renderNilPlayerStatBar(width)
	}

	config := DefaultStatBarConfig()
	config.Width = width
	return RenderStatBarWithConfig(p, config)
}

// RenderStatBarWithConfig renders the stat bar with custom configuration.
func RenderStatBarWithConfig(p *player.Player, config StatBarConfig) string {
	if config.Width < 40 {
		config.Width = 40
	}

	var sections []string

	sections = append(sections, renderSkillGrid(p))

	if config.ShowCombat {
		sections = append(sections, renderCombatLine(p))
	}

	return strings.Join(sections, "\n")
}

// renderSkillGrid renders every skill's level as a grid of "Name: Lvl"
// entries, three per row.
func renderSkillGrid(p *player.Player) string {
	nameStyle := lipgloss.NewStyle().Foreground(statBarColorMuted)
	valueStyle := lipgloss.NewStyle().Foreground(statBarColorPrimary).Bold(true)

	levels := p.Skills().Levels()
	all := skills.All.Skills()

	entries := make([]string, 0, len(all))
	for _, sk := range all {
		entries = append(entries, fmt.Sprintf("%s %s",
			nameStyle.Render(sk.String()+":"),
			valueStyle.Render(fmt.Sprintf("%d", levels.Get(sk)))))
	}

	var rows []string
	for i := 0; i < len(entries); i += 3 {
		end := i + 3
		if end > len(entries) {
			end = len(entries)
		}
		rows = append(rows, strings.Join(entries[i:end], "   "))
	}

	return strings.Join(rows, "\n")
}

// renderCombatLine renders the combat level and quest point total.
func renderCombatLine(p *player.Player) string {
	labelStyle := lipgloss.NewStyle().Foreground(statBarColorMuted)
	valueStyle := lipgloss.NewStyle().Foreground(statBarColorLevel).Bold(true)

	return fmt.Sprintf("%s %s   %s %s",
		labelStyle.Render("Combat:"),
		valueStyle.Render(fmt.Sprintf("%d", p.CombatLevel())),
		labelStyle.Render("Quest Points:"),
		valueStyle.Render(fmt.Sprintf("%d", p.QuestPoints())))
}

// RenderStatBadge renders a small inline stat badge — combat level and
// quest points only. Useful for displaying in headers or alongside other
// content.
func RenderStatBadge(p *player.Player) string {
	if p == nil {
		noPlayerStyle := lipgloss.NewStyle().
			Foreground(statBarColorDim).
			Italic(true)
		return noPlayerStyle.Render("No plan loaded")
	}

	badgeStyle := lipgloss.NewStyle().
		Foreground(statBarColorBright).
		Background(statBarColorSecondary).
		Padding(0, 1).
		Bold(true)

	badge := fmt.Sprintf("Combat %d | %d QP", p.CombatLevel(), p.QuestPoints())
	return badgeStyle.Render(badge)
}

// renderNilPlayerStatBar renders a placeholder message when no player is
// loaded yet.
func renderNilPlayerStatBar(width int) string {
	errorStyle := lipgloss.NewStyle().
		Foreground(statBarColorError).
		Bold(true)

	hintStyle := lipgloss.NewStyle().
		Foreground(statBarColorDim).
		Italic(true)

	message := errorStyle.Render("⚠ No plan loaded")
	hint := hintStyle.Render("Run `codequest plan` first")

	if width > 50 {
		content := message + "\n" + hint
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(content)
	}

	return message
}
