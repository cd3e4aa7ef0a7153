package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Rows rendered above the grid inside the box: header and divider.
const gridTopOffset = 2

// ButtonLabel is the text of the new grid button.
const ButtonLabel = " New grid "

// TargetKind identifies what lies under a screen coordinate.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetCell
	TargetButton
)

// Target is the result of a hit test. Index is set for TargetCell.
type Target struct {
	Kind  TargetKind
	Index int
}

// Layout is the screen geometry of the grid view.
type Layout struct {
	Columns   int
	CellWidth int

	GridX, GridY int

	ButtonX, ButtonY int
	ButtonWidth      int
}

// NewLayout computes where Render places the grid and the button.
func NewLayout(columns, cellWidth int) Layout {
	if cellWidth < 1 {
		cellWidth = 1
	}
	originX := BoxStyle.GetBorderLeftSize() + BoxStyle.GetPaddingLeft()
	originY := BoxStyle.GetBorderTopSize() + BoxStyle.GetPaddingTop()

	gridY := originY + gridTopOffset
	return Layout{
		Columns:     columns,
		CellWidth:   cellWidth,
		GridX:       originX,
		GridY:       gridY,
		ButtonX:     originX,
		ButtonY:     gridY + columns + 1,
		ButtonWidth: lipgloss.Width(ButtonStyle.Render(ButtonLabel)),
	}
}

// Scrolled returns the layout with its top lines cut off. Bubble Tea keeps
// only the last Height lines of a view that is taller than the terminal.
func (l Layout) Scrolled(lines int) Layout {
	if lines <= 0 {
		return l
	}
	l.GridY -= lines
	l.ButtonY -= lines
	return l
}

// HitTest maps a screen coordinate to a cell or the button.
func (l Layout) HitTest(x, y int) Target {
	if y == l.ButtonY && x >= l.ButtonX && x < l.ButtonX+l.ButtonWidth {
		return Target{Kind: TargetButton}
	}

	col := (x - l.GridX) / l.CellWidth
	row := y - l.GridY
	if x < l.GridX || row < 0 || col >= l.Columns || row >= l.Columns {
		return Target{Kind: TargetNone}
	}
	return Target{Kind: TargetCell, Index: row*l.Columns + col}
}

// FitCellWidth shrinks the preferred cell width until the grid fits a
// terminal of the given width. It never returns less than 1.
func FitCellWidth(termWidth, columns, preferred int) int {
	if columns <= 0 {
		return max(preferred, 1)
	}
	frame := BoxStyle.GetHorizontalFrameSize()
	cw := preferred
	for cw > 1 && columns*cw+frame > termWidth {
		cw--
	}
	return max(cw, 1)
}
