package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/henri123lemoine/etch/internal/grid"
)

// State constants (matching app.State)
const (
	StateView = iota
	StateDraw
	StatePrompt
)

// RenderParams contains all parameters needed for rendering.
type RenderParams struct {
	State     int
	Cells     []grid.Cell
	Columns   int
	CellWidth int
	Width     int
	Height    int
	Err       error

	PromptMessage  string
	PromptInput    string
	PromptDefault  string
	PromptAttempts int
	PromptRejected string

	Help string
}

// MinWidth is the absolute minimum terminal width we try to support.
const MinWidth = 30

// MinHeight is the absolute minimum terminal height we try to support.
const MinHeight = 8

// Render renders the full UI.
func Render(p RenderParams) string {
	if p.Width < MinWidth {
		p.Width = MinWidth
	}
	if p.Height < MinHeight {
		p.Height = MinHeight
	}
	if p.CellWidth < 1 {
		p.CellWidth = 1
	}

	if p.State == StatePrompt {
		return renderPrompt(p)
	}
	return renderGrid(p)
}

// renderGrid renders the header, the cells, the button and the footer.
// Line positions must stay in sync with NewLayout.
func renderGrid(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - BoxStyle.GetHorizontalFrameSize()

	b.WriteString(renderHeader(p, contentWidth) + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, max(contentWidth, 1))) + "\n")

	blank := strings.Repeat(" ", p.CellWidth)
	for row := 0; row < p.Columns; row++ {
		for col := 0; col < p.Columns; col++ {
			i := row*p.Columns + col
			if i >= len(p.Cells) {
				break
			}
			b.WriteString(cellStyle(p.Cells[i]).Render(blank))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ButtonStyle.Render(ButtonLabel))
	if p.Err != nil {
		b.WriteString("  " + ErrorStyle.Render("Error: "+p.Err.Error()))
	}

	if p.Help != "" {
		b.WriteString("\n" + DividerStyle.Render(strings.Repeat(SymbolDivider, max(contentWidth, 1))) + "\n")
		b.WriteString(p.Help)
	}

	return wrapInBox(b.String(), p.Width)
}

// renderHeader must stay on one line; the hint is dropped when it won't fit.
func renderHeader(p RenderParams, width int) string {
	size := fmt.Sprintf("%d%s%d", p.Columns, SymbolTimes, p.Columns)
	badge := ViewBadgeStyle.Render(SymbolView + " view")
	hint := "click the grid to draw"
	if p.State == StateDraw {
		badge = DrawBadgeStyle.Render(SymbolDraw + " draw")
		hint = "click the grid to stop"
	}
	header := TitleStyle.Render("ETCH") + "  " + MutedStyle.Render(size) + "  " + badge
	if withHint := header + "  " + MutedStyle.Render(hint); lipgloss.Width(withHint) <= width {
		return withHint
	}
	return header
}

func cellStyle(c grid.Cell) lipgloss.Style {
	if !c.Painted {
		return EmptyCellStyle
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Color.Hex()))
}

// renderPrompt renders the modal column count prompt.
func renderPrompt(p RenderParams) string {
	var b strings.Builder
	contentWidth := p.Width - BoxStyle.GetHorizontalFrameSize()

	b.WriteString(TitleStyle.Render("NEW GRID") + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, max(contentWidth, 1))) + "\n\n")
	b.WriteString(PromptStyle.Render(p.PromptMessage) + "\n\n")
	b.WriteString(InputStyle.Render(p.PromptInput) + "\n")

	if p.PromptAttempts > 0 {
		b.WriteString(WarningStyle.Render(fmt.Sprintf("%q is not a valid column count", p.PromptRejected)) + "\n")
	}

	b.WriteString("\n" + MutedStyle.Render(fmt.Sprintf("enter confirm • esc cancel (uses %s)", p.PromptDefault)))

	return wrapInBox(b.String(), p.Width)
}

func wrapInBox(content string, width int) string {
	boxWidth := width - BoxStyle.GetHorizontalBorderSize()
	if boxWidth < MinWidth-2 {
		boxWidth = MinWidth - 2
	}

	// Don't force height - let content determine size
	return BoxStyle.Width(boxWidth).Render(content)
}
