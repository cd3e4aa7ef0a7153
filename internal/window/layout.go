package window

// Pixel geometry of the window.
const (
	margin     = 16
	statusBand = 32
	buttonBand = 64
)

// Layout places a square grid of Columns cells inside the window.
type Layout struct {
	X, Y     int
	CellSize int
	Columns  int
}

// NewLayout fits the largest whole-pixel square cells into a window of
// the given size, centered horizontally below the status line.
func NewLayout(width, height, columns int) Layout {
	if columns <= 0 {
		return Layout{X: margin, Y: statusBand}
	}

	availW := width - 2*margin
	availH := height - statusBand - buttonBand
	size := min(availW, availH) / columns
	if size < 1 {
		size = 1
	}

	return Layout{
		X:        max((width-size*columns)/2, 0),
		Y:        statusBand,
		CellSize: size,
		Columns:  columns,
	}
}

// Side returns the grid's edge length in pixels.
func (l Layout) Side() int {
	return l.CellSize * l.Columns
}

// CellAt returns the index of the cell under (x, y).
func (l Layout) CellAt(x, y int) (int, bool) {
	if l.Columns == 0 || x < l.X || y < l.Y {
		return 0, false
	}
	col := (x - l.X) / l.CellSize
	row := (y - l.Y) / l.CellSize
	if col >= l.Columns || row >= l.Columns {
		return 0, false
	}
	return row*l.Columns + col, true
}

// CellRect returns the top-left corner of cell i.
func (l Layout) CellRect(i int) (x, y int) {
	row, col := i/l.Columns, i%l.Columns
	return l.X + col*l.CellSize, l.Y + row*l.CellSize
}
