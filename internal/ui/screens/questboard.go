// Package screens implements the full-screen views composed by the
// terminal UI's Bubble Tea model.
package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AutumnsGrove/codequest/internal/planner"
)

// Color constants (copied from the ui package to avoid an import cycle,
// matching components/header.go's convention).
var (
	colorMuted   = lipgloss.Color("243")
	colorBright  = lipgloss.Color("15")
	colorAccent  = lipgloss.Color("86")
	colorDim     = lipgloss.Color("240")
	colorQuest   = lipgloss.Color("111")
	colorWarning = lipgloss.Color("214")
)

// RenderPlanViewer renders the computed plan as an ordered list of
// StrategyItems. The item at selectedIndex is highlighted; any item id
// present in expanded is rendered with its full reward/training list
// instead of a one-line summary. Every item is rendered: height is not
// used, and the list does not scroll.
func RenderPlanViewer(strategy *planner.QuestStrategy, selectedIndex int, expanded map[int]bool, width, height int) string {
	if strategy == nil || strategy.Len() == 0 {
		return renderEmptyPlan(width)
	}

	items := strategy.Items()
	var rendered []string
	for i, item := range items {
		selected := i == selectedIndex
		isExpanded := expanded[item.Quest.ID]
		rendered = append(rendered, renderPlanItem(item, i+1, selected, isExpanded, width))
	}

	list := strings.Join(rendered, "\n")
	return list + "\n\n" + renderPlanViewerFooter()
}

// renderPlanItem renders a single StrategyItem, one line when
// collapsed or the full entry list when expanded.
func renderPlanItem(item *planner.StrategyItem, position int, selected, expanded bool, width int) string {
	marker := "  "
	if selected {
		marker = "▶ "
	}

	numberStyle := lipgloss.NewStyle().Foreground(colorMuted)
	nameStyle := lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	if selected {
		nameStyle = nameStyle.Foreground(colorAccent)
	}

	header := fmt.Sprintf("%s%s %s", marker,
		numberStyle.Render(fmt.Sprintf("%3d.", position)),
		nameStyle.Render(item.Quest.Name))

	if !expanded {
		countStyle := lipgloss.NewStyle().Foreground(colorDim).Italic(true)
		suffix := countStyle.Render(fmt.Sprintf(" (%d entries)", len(item.Entries)))
		return header + suffix
	}

	entryStyle := lipgloss.NewStyle().Foreground(colorQuest).PaddingLeft(6)
	var lines []string
	lines = append(lines, header)
	if len(item.Entries) == 0 {
		lines = append(lines, entryStyle.Italic(true).Render("(nothing claimed or trained)"))
	}
	for _, e := range item.Entries {
		lines = append(lines, entryStyle.Render("- "+e.String()))
	}
	return strings.Join(lines, "\n")
}

// renderEmptyPlan renders a placeholder when no plan has been computed
// yet.
func renderEmptyPlan(width int) string {
	style := lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	hint := lipgloss.NewStyle().Foreground(colorDim).Italic(true)

	message := style.Render("No plan computed")
	tip := hint.Render("Run `codequest plan` to generate one")

	content := message + "\n" + tip
	if width > 50 {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(content)
	}
	return content
}

// renderPlanViewerFooter renders the keybind hint line shown at the
// bottom of the plan viewer.
func renderPlanViewerFooter() string {
	return renderKeybind("↑↓", "Navigate") + "  " +
		renderKeybind("Enter", "Expand/Collapse") + "  " +
		renderKeybind("q", "Quit")
}

// renderKeybind formats a single key/description hint. It is a local
// counterpart of the ui package's RenderKeybind (kept here to avoid an
// import cycle) that renders the key without brackets.
func renderKeybind(key, description string) string {
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted)
	return keyStyle.Render(key) + " " + descStyle.Render(description)
}
