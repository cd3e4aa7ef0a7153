// Package ui handles terminal UI rendering.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("4")   // Blue
	ColorSecondary = lipgloss.Color("8")   // Gray
	ColorSuccess   = lipgloss.Color("2")   // Green
	ColorWarning   = lipgloss.Color("3")   // Yellow
	ColorDanger    = lipgloss.Color("1")   // Red
	ColorMuted     = lipgloss.Color("245") // Light gray
	ColorText      = lipgloss.Color("252") // Light text
	ColorCellDark  = lipgloss.Color("236")
	ColorCellLight = lipgloss.Color("254")
)

// Styles
var (
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ViewBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	DrawBadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// Unpainted cell background; see ApplyTheme.
	EmptyCellStyle = lipgloss.NewStyle().
			Background(ColorCellDark)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorPrimary).
			Bold(true)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	InputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Symbols
const (
	SymbolView    = "○"
	SymbolDraw    = "●"
	SymbolDivider = "─"
	SymbolTimes   = "×"
)

// ApplyTheme picks the unpainted cell background for "dark", "light" or
// "auto" (detected from the terminal).
func ApplyTheme(theme string) {
	dark := true
	switch theme {
	case "light":
		dark = false
	case "auto", "":
		dark = lipgloss.HasDarkBackground()
	}

	if dark {
		EmptyCellStyle = EmptyCellStyle.Background(ColorCellDark)
	} else {
		EmptyCellStyle = EmptyCellStyle.Background(ColorCellLight)
	}
}
