// Package components provides reusable UI components for CodeQuest screens.
// This file implements the header component that appears at the top of every screen.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AutumnsGrove/codequest/internal/player"
)

// Color constants (copied from ui package to avoid import cycle)
var (
	colorPrimary = lipgloss.Color("205") // Pink/Magenta
	colorAccent  = lipgloss.Color("86")  // Cyan
	colorLevel   = lipgloss.Color("93")  // Purple
	colorBright  = lipgloss.Color("15")  // White
	colorDim     = lipgloss.Color("240") // Gray
)

// RenderHeader creates a consistent header for all screens.
// The header includes the CodeQuest title, current screen name, and the
// player's combat level and quest points.
//
// Layout:
//
//	┌────────────────────────────────────────────────┐
//	│ ⚔ CodeQuest          [Plan]     Combat 45 · 12 QP │
//	└────────────────────────────────────────────────┘
//
// Parameters:
//   - screenName: The name of the current screen (e.g., "Plan", "Detail")
//   - p: The player to display info for (can be nil)
//   - width: The total available width in characters
//
// Returns:
//   - string: The rendered header with proper width and styling
func RenderHeader(screenName string, p *player.Player, width int) string {
	if width < 40 {
		return renderMinimalHeader(screenName, width)
	}

	leftSection := renderLeftSection()
	centerSection := renderCenterSection(screenName)
	rightSection := renderRightSection(p)

	header := joinHeaderSections(leftSection, centerSection, rightSection, width)

	return wrapHeader(header, width)
}

// renderLeftSection creates the left part of the header with the CodeQuest branding.
func renderLeftSection() string {
	icon := "⚔"
	title := "CodeQuest"

	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPrimary)

	return style.Render(icon + " " + title)
}

// renderCenterSection creates the center part of the header with the screen name.
func renderCenterSection(screenName string) string {
	style := lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	return style.Render("[" + screenName + "]")
}

// renderRightSection creates the right part of the header with combat level
// and quest point info.
func renderRightSection(p *player.Player) string {
	if p == nil {
		style := lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)
		return style.Render("No plan loaded")
	}

	levelStyle := lipgloss.NewStyle().
		Foreground(colorLevel).
		Bold(true)

	qpStyle := lipgloss.NewStyle().
		Foreground(colorBright).
		Bold(true)

	combat := levelStyle.Render(fmt.Sprintf("Combat %d", p.CombatLevel()))
	qp := qpStyle.Render(fmt.Sprintf("%d QP", p.QuestPoints()))

	return combat + " · " + qp
}

// joinHeaderSections combines left, center, and right sections with proper spacing.
func joinHeaderSections(left, center, right string, width int) string {
	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	contentWidth := leftWidth + centerWidth + rightWidth

	if contentWidth >= width-4 {
		return left + " " + center + " " + right
	}

	totalSpacing := width - contentWidth - 4

	leftCenterSpacing := totalSpacing / 2
	centerRightSpacing := totalSpacing - leftCenterSpacing

	if leftCenterSpacing < 1 {
		leftCenterSpacing = 1
	}
	if centerRightSpacing < 1 {
		centerRightSpacing = 1
	}

	spacer1 := strings.Repeat(" ", leftCenterSpacing)
	spacer2 := strings.Repeat(" ", centerRightSpacing)

	return left + spacer1 + center + spacer2 + right
}

// wrapHeader wraps the header content in a styled box.
func wrapHeader(content string, width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), false, false, true, false).
		BorderForeground(colorAccent).
		Width(width - 4).
		Padding(0, 1).
		MarginBottom(1)

	return style.Render(content)
}

// renderMinimalHeader creates a compact header for very narrow terminals.
func renderMinimalHeader(screenName string, width int) string {
	style := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Border(lipgloss.RoundedBorder(), false, false, true, false).
		BorderForeground(colorAccent).
		Width(width - 4).
		Padding(0, 1).
		MarginBottom(1)

	return style.Render("⚔ CodeQuest - " + screenName)
}
