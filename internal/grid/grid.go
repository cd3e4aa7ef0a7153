// Package grid builds and destroys the square cell layout etch draws on.
package grid

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/henri123lemoine/etch/internal/paint"
)

// Column count bounds.
const (
	MinColumns     = 1
	MaxColumns     = 32
	DefaultColumns = 16
)

var (
	// ErrInvalidColumns is returned when a column count is outside [MinColumns, MaxColumns].
	ErrInvalidColumns = errors.New("invalid column count")

	// ErrNotEmpty is returned when building into a container that still holds cells.
	ErrNotEmpty = errors.New("container is not empty")
)

// Cell is a single paintable unit. The zero value is unpainted.
type Cell struct {
	Color   paint.RGB
	Painted bool
}

// Style returns the cell's color directive, or "" for the default background.
func (c Cell) Style() string {
	if !c.Painted {
		return ""
	}
	return c.Color.CSS()
}

// Container owns the current cell list and its column layout.
// Len() is always Columns()².
type Container struct {
	columns int
	cells   []Cell
}

// Build lays out columns equal-width columns and appends columns² unpainted
// cells in row-major order. The container must be empty.
func (c *Container) Build(columns int) error {
	if columns < MinColumns || columns > MaxColumns {
		return fmt.Errorf("%w: %d (expected %d-%d)", ErrInvalidColumns, columns, MinColumns, MaxColumns)
	}
	if len(c.cells) > 0 {
		return fmt.Errorf("%w: %d cells remain", ErrNotEmpty, len(c.cells))
	}

	cells := make([]Cell, 0, columns*columns)
	for i := 0; i < columns*columns; i++ {
		cells = append(cells, Cell{})
	}

	c.columns = columns
	c.cells = cells
	return nil
}

// Destroy removes every cell, last to first, and clears the column layout.
func (c *Container) Destroy() {
	for i := len(c.cells) - 1; i >= 0; i-- {
		c.cells[i] = Cell{}
		c.cells = c.cells[:i]
	}
	c.cells = nil
	c.columns = 0
}

// Columns returns the current column count, 0 when empty.
func (c *Container) Columns() int {
	return c.columns
}

// Len returns the number of cells.
func (c *Container) Len() int {
	return len(c.cells)
}

// Empty reports whether the container holds no cells.
func (c *Container) Empty() bool {
	return len(c.cells) == 0
}

// Cell returns the cell at index i.
func (c *Container) Cell(i int) (Cell, bool) {
	if i < 0 || i >= len(c.cells) {
		return Cell{}, false
	}
	return c.cells[i], true
}

// Cells returns a row-major copy of all cells.
func (c *Container) Cells() []Cell {
	out := make([]Cell, len(c.cells))
	copy(out, c.cells)
	return out
}

// Index converts a row/column pair to a cell index.
func (c *Container) Index(row, col int) (int, bool) {
	if row < 0 || col < 0 || row >= c.columns || col >= c.columns {
		return 0, false
	}
	return row*c.columns + col, true
}

// Position converts a cell index to its row/column pair.
func (c *Container) Position(i int) (row, col int, ok bool) {
	if i < 0 || i >= len(c.cells) {
		return 0, 0, false
	}
	return i / c.columns, i % c.columns, true
}

// Paint sets the color of cell i. Structure is never changed.
func (c *Container) Paint(i int, color paint.RGB) bool {
	if i < 0 || i >= len(c.cells) {
		return false
	}
	c.cells[i] = Cell{Color: color, Painted: true}
	return true
}

// IsValid reports whether n is a finite integer in [MinColumns, MaxColumns].
func IsValid(n float64) bool {
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return false
	}
	if math.Trunc(n) != n {
		return false
	}
	return n >= MinColumns && n <= MaxColumns
}

// ParseColumns parses free-form prompt text into a column count.
// Non-numeric text is rejected before IsValid is consulted.
func ParseColumns(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(n) {
		return 0, false
	}
	if !IsValid(n) {
		return 0, false
	}
	return int(n), true
}
