// Package sketch holds the interaction state machine shared by every etch
// frontend: draw mode, the grid container and the reset prompt.
package sketch

import (
	"fmt"

	"github.com/henri123lemoine/etch/internal/debug"
	"github.com/henri123lemoine/etch/internal/grid"
	"github.com/henri123lemoine/etch/internal/paint"
)

// Mode is the interaction mode.
type Mode int

const (
	ViewMode Mode = iota
	DrawMode
)

func (m Mode) String() string {
	switch m {
	case DrawMode:
		return "draw"
	default:
		return "view"
	}
}

// PromptMessage is shown when asking for a new column count.
var PromptMessage = fmt.Sprintf("Enter the number of columns (between %d to %d)", grid.MinColumns, grid.MaxColumns)

// PromptSession describes an open reset prompt.
type PromptSession struct {
	Message      string
	Default      string
	Attempts     int
	LastRejected string
}

// Controller owns draw mode, the container and the prompt session.
// It is not safe for concurrent use; frontends call it from their event loop.
type Controller struct {
	container      grid.Container
	mode           Mode
	prompt         *PromptSession
	defaultColumns int
	src            paint.Source
}

// Option configures a Controller.
type Option func(*Controller)

// WithDefaultColumns sets the column count used on startup, as the prompt
// pre-fill and on cancel. Values outside the valid range are ignored.
func WithDefaultColumns(n int) Option {
	return func(c *Controller) {
		if grid.IsValid(float64(n)) {
			c.defaultColumns = n
		}
	}
}

// WithSource sets the random source used for paint colors.
func WithSource(src paint.Source) Option {
	return func(c *Controller) {
		if src != nil {
			c.src = src
		}
	}
}

// New creates a controller showing a default-size grid in view mode.
func New(opts ...Option) *Controller {
	c := &Controller{
		defaultColumns: grid.DefaultColumns,
		src:            paint.DefaultSource(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.build(c.defaultColumns)
	return c
}

// Mode returns the current interaction mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Drawing reports whether hovering currently paints cells.
func (c *Controller) Drawing() bool {
	return c.mode == DrawMode && c.prompt == nil
}

// Prompting reports whether the reset prompt is open.
func (c *Controller) Prompting() bool {
	return c.prompt != nil
}

// Prompt returns a copy of the open prompt session.
func (c *Controller) Prompt() (PromptSession, bool) {
	if c.prompt == nil {
		return PromptSession{}, false
	}
	return *c.prompt, true
}

// DefaultColumns returns the column count used for startup and cancel.
func (c *Controller) DefaultColumns() int {
	return c.defaultColumns
}

// Grid returns the container for reading. Callers must not mutate it.
func (c *Controller) Grid() *grid.Container {
	return &c.container
}

// ClickGrid toggles between view and draw mode. Ignored while prompting.
func (c *Controller) ClickGrid() {
	if c.prompt != nil {
		return
	}
	if c.mode == ViewMode {
		c.mode = DrawMode
	} else {
		c.mode = ViewMode
	}
	debug.Log("mode -> %s", c.mode)
}

// Hover handles the pointer entering cell i. It paints the cell with a new
// random color in draw mode and reports whether anything changed.
func (c *Controller) Hover(i int) bool {
	if !c.Drawing() {
		return false
	}
	return c.container.Paint(i, paint.Random(c.src))
}

// Reset destroys the grid, leaves draw mode and opens the column prompt.
// The new grid is built by SubmitPrompt or CancelPrompt.
func (c *Controller) Reset() {
	c.container.Destroy()
	c.mode = ViewMode
	c.prompt = &PromptSession{
		Message: PromptMessage,
		Default: fmt.Sprint(c.defaultColumns),
	}
	debug.Log("reset: grid destroyed, prompting")
}

// SubmitPrompt validates text as a column count. Invalid text keeps the
// prompt open for another attempt and returns false; valid text builds the
// grid and closes the prompt.
func (c *Controller) SubmitPrompt(text string) bool {
	if c.prompt == nil {
		return false
	}
	columns, ok := grid.ParseColumns(text)
	if !ok {
		c.prompt.Attempts++
		c.prompt.LastRejected = text
		debug.Log("prompt rejected %q (attempt %d)", text, c.prompt.Attempts)
		return false
	}
	c.prompt = nil
	c.build(columns)
	return true
}

// CancelPrompt closes the prompt and falls back to the default column count.
func (c *Controller) CancelPrompt() {
	if c.prompt == nil {
		return
	}
	c.prompt = nil
	debug.Log("prompt canceled, using default %d", c.defaultColumns)
	c.build(c.defaultColumns)
}

// build lays out a fresh grid in view mode. columns is already validated.
func (c *Controller) build(columns int) {
	defer debug.Timed(fmt.Sprintf("build %dx%d", columns, columns))()

	c.container.Destroy()
	c.mode = ViewMode
	if err := c.container.Build(columns); err != nil {
		// Unreachable with validated input; keep the invariant with the default.
		debug.Log("build %d failed: %v", columns, err)
		if err := c.container.Build(grid.DefaultColumns); err != nil {
			debug.Log("build default %d failed: %v", grid.DefaultColumns, err)
		}
	}
}
