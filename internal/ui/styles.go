// Package ui provides the terminal user interface styling for CodeQuest.
// This file defines the Lip Gloss styling shared by the plan viewer.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette, chosen for both light and dark terminal compatibility.
var (
	ColorPrimary   = lipgloss.Color("205") // Pink/Magenta - Main accent
	ColorSecondary = lipgloss.Color("63")  // Purple - Secondary accent
	ColorAccent    = lipgloss.Color("86")  // Cyan - Interactive elements

	ColorSuccess = lipgloss.Color("42")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red

	ColorDim    = lipgloss.Color("240") // Gray - dim/inactive text
	ColorBright = lipgloss.Color("15")  // White - bright text
	ColorMuted  = lipgloss.Color("243") // Light gray - secondary text
)

// Common text styles.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	MutedTextStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	ErrorTextStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)
)

// BoxStyle frames the plan viewer in a rounded border.
var BoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorAccent).
	Padding(0, 1)

// KeybindStyle and KeybindDescStyle render a single key hint, e.g. "[Q] Quit".
var (
	KeybindStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	KeybindDescStyle = lipgloss.NewStyle().
				Foreground(ColorBright)
)

// RenderTitle renders a styled title with an optional icon prefix.
func RenderTitle(text string, icon string) string {
	if icon != "" {
		return TitleStyle.Render(icon + " " + text)
	}
	return TitleStyle.Render(text)
}

// RenderKeybind formats a keybind hint, e.g. "[Q] Quit".
func RenderKeybind(key, description string) string {
	return KeybindStyle.Render("["+key+"]") + " " + KeybindDescStyle.Render(description)
}

// JoinVertical stacks rendered sections top-to-bottom, left-aligned.
func JoinVertical(strs ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, strs...)
}

// PlaceInCenter centers content within the given width and height.
func PlaceInCenter(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
