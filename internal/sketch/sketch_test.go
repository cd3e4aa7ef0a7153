package sketch

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/henri123lemoine/etch/internal/debug"
	"github.com/henri123lemoine/etch/internal/grid"
)

func newTestController(opts ...Option) *Controller {
	opts = append([]Option{WithSource(rand.New(rand.NewPCG(7, 11)))}, opts...)
	return New(opts...)
}

func TestNewController(t *testing.T) {
	c := newTestController()

	if c.Mode() != ViewMode {
		t.Errorf("Expected initial ViewMode, got %s", c.Mode())
	}
	if c.Prompting() {
		t.Error("No prompt should be open on startup")
	}
	if c.Grid().Len() != 256 || c.Grid().Columns() != 16 {
		t.Errorf("Expected 16x16 grid, got %d cells / %d columns", c.Grid().Len(), c.Grid().Columns())
	}
}

func TestWithDefaultColumns(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"valid", 8, 8},
		{"too small", 0, 16},
		{"too large", 64, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(WithDefaultColumns(tt.n))
			if c.DefaultColumns() != tt.want {
				t.Errorf("DefaultColumns() = %d, want %d", c.DefaultColumns(), tt.want)
			}
			if c.Grid().Columns() != tt.want {
				t.Errorf("Startup grid has %d columns, want %d", c.Grid().Columns(), tt.want)
			}
		})
	}
}

func TestToggleRoundTrip(t *testing.T) {
	c := newTestController()

	c.ClickGrid()
	if c.Mode() != DrawMode || !c.Drawing() {
		t.Fatalf("Expected DrawMode after one click, got %s", c.Mode())
	}

	c.ClickGrid()
	if c.Mode() != ViewMode || c.Drawing() {
		t.Fatalf("Expected ViewMode after two clicks, got %s", c.Mode())
	}

	if c.Hover(0) {
		t.Error("Hover should not paint after toggling back to ViewMode")
	}
}

func TestHoverPaintsOnlyInDrawMode(t *testing.T) {
	c := newTestController()

	if c.Hover(5) {
		t.Error("Hover in ViewMode reported a change")
	}
	if cell, _ := c.Grid().Cell(5); cell.Painted {
		t.Error("Hover in ViewMode painted the cell")
	}

	c.ClickGrid()
	if !c.Hover(5) {
		t.Fatal("Hover in DrawMode reported no change")
	}
	cell, _ := c.Grid().Cell(5)
	if !cell.Painted {
		t.Error("Hover in DrawMode did not paint the cell")
	}
	for i, other := range c.Grid().Cells() {
		if i != 5 && other.Painted {
			t.Errorf("Cell %d painted by a hover on cell 5", i)
		}
	}

	if c.Hover(-1) || c.Hover(256) {
		t.Error("Out-of-range hover should report no change")
	}
}

func TestResetForcesViewMode(t *testing.T) {
	for _, startDrawing := range []bool{false, true} {
		c := newTestController()
		if startDrawing {
			c.ClickGrid()
		}

		c.Reset()

		if c.Mode() != ViewMode {
			t.Errorf("startDrawing=%v: expected ViewMode after reset, got %s", startDrawing, c.Mode())
		}
		if !c.Grid().Empty() {
			t.Errorf("startDrawing=%v: grid should be destroyed while prompting", startDrawing)
		}
		p, ok := c.Prompt()
		if !ok {
			t.Fatalf("startDrawing=%v: expected an open prompt", startDrawing)
		}
		if p.Message != "Enter the number of columns (between 1 to 32)" {
			t.Errorf("Unexpected prompt message %q", p.Message)
		}
		if p.Default != "16" {
			t.Errorf("Expected prompt default \"16\", got %q", p.Default)
		}

		if !c.SubmitPrompt("4") {
			t.Fatal("SubmitPrompt(\"4\") rejected valid input")
		}
		if c.Mode() != ViewMode {
			t.Errorf("startDrawing=%v: new grid should start in ViewMode", startDrawing)
		}
	}
}

func TestPromptModal(t *testing.T) {
	c := newTestController()
	c.Reset()

	c.ClickGrid()
	if c.Mode() != ViewMode {
		t.Error("ClickGrid should be ignored while prompting")
	}
	if c.Hover(0) {
		t.Error("Hover should be ignored while prompting")
	}
}

func TestPromptValidationLoop(t *testing.T) {
	c := newTestController()
	c.Reset()

	for i, text := range []string{"", "abc", "0", "33", "4.5", "Infinity", "-2"} {
		if c.SubmitPrompt(text) {
			t.Fatalf("SubmitPrompt(%q) accepted invalid input", text)
		}
		p, ok := c.Prompt()
		if !ok {
			t.Fatalf("Prompt closed after invalid input %q", text)
		}
		if p.Attempts != i+1 {
			t.Errorf("Expected %d attempts, got %d", i+1, p.Attempts)
		}
		if p.LastRejected != text {
			t.Errorf("LastRejected = %q, want %q", p.LastRejected, text)
		}
		if !c.Grid().Empty() {
			t.Fatal("Invalid input must not build a grid")
		}
	}

	if !c.SubmitPrompt("32") {
		t.Fatal("SubmitPrompt(\"32\") rejected valid input")
	}
	if c.Prompting() {
		t.Error("Prompt should close after valid input")
	}
	if c.Grid().Len() != 32*32 {
		t.Errorf("Expected 1024 cells, got %d", c.Grid().Len())
	}
}

func TestCancelUsesDefault(t *testing.T) {
	c := newTestController()
	c.Reset()
	c.SubmitPrompt("100")

	c.CancelPrompt()

	if c.Prompting() {
		t.Error("Cancel should close the prompt, not re-prompt")
	}
	if c.Grid().Len() != 256 {
		t.Errorf("Expected default 256 cells after cancel, got %d", c.Grid().Len())
	}
	if c.Mode() != ViewMode {
		t.Errorf("Expected ViewMode after cancel, got %s", c.Mode())
	}
}

func TestCancelUsesConfiguredDefault(t *testing.T) {
	c := newTestController(WithDefaultColumns(10))
	c.Reset()

	if p, _ := c.Prompt(); p.Default != "10" {
		t.Errorf("Expected prompt default \"10\", got %q", p.Default)
	}

	c.CancelPrompt()
	if c.Grid().Columns() != 10 {
		t.Errorf("Expected 10 columns after cancel, got %d", c.Grid().Columns())
	}
}

func TestPromptCallsWithoutPromptAreNoops(t *testing.T) {
	c := newTestController()

	if c.SubmitPrompt("4") {
		t.Error("SubmitPrompt without an open prompt should return false")
	}
	c.CancelPrompt()

	if c.Grid().Len() != 256 {
		t.Errorf("Grid changed without a prompt: %d cells", c.Grid().Len())
	}
}

func TestScenario(t *testing.T) {
	rgb := regexp.MustCompile(`^background-color: rgb\(\d{1,3}, \d{1,3}, \d{1,3}\)$`)
	c := newTestController()

	// startup
	if c.Grid().Len() != 256 {
		t.Fatalf("Expected 256 cells on startup, got %d", c.Grid().Len())
	}

	// click grid, hover cell 0
	c.ClickGrid()
	c.Hover(0)
	first, _ := c.Grid().Cell(0)
	if !rgb.MatchString(first.Style()) {
		t.Fatalf("Cell 0 style %q is not an rgb color", first.Style())
	}

	// click grid again, hover cell 0 again
	c.ClickGrid()
	c.Hover(0)
	again, _ := c.Grid().Cell(0)
	if again != first {
		t.Errorf("Cell 0 changed in ViewMode: %+v -> %+v", first, again)
	}

	// reset, enter "4"
	c.Reset()
	c.SubmitPrompt("4")
	if c.Grid().Len() != 16 || c.Mode() != ViewMode {
		t.Errorf("Expected 16 cells in ViewMode, got %d in %s", c.Grid().Len(), c.Mode())
	}

	// reset, enter "100", cancel
	c.Reset()
	c.SubmitPrompt("100")
	c.CancelPrompt()
	if c.Grid().Len() != 256 || c.Grid().Columns() != grid.DefaultColumns {
		t.Errorf("Expected default 16x16 grid, got %d cells", c.Grid().Len())
	}
}

func TestBuildFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := debug.Enable(path); err != nil {
		t.Fatalf("Enable() error: %v", err)
	}
	defer debug.Close()

	c := newTestController(WithDefaultColumns(8))
	c.ClickGrid()

	c.build(grid.MaxColumns + 1)
	if c.Grid().Columns() != grid.DefaultColumns || c.Grid().Len() != grid.DefaultColumns*grid.DefaultColumns {
		t.Errorf("Expected the %dx%d fallback grid, got %d columns / %d cells",
			grid.DefaultColumns, grid.DefaultColumns, c.Grid().Columns(), c.Grid().Len())
	}
	if c.Mode() != ViewMode {
		t.Errorf("Expected ViewMode after a fallback build, got %s", c.Mode())
	}

	debug.Close()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), "build 33 failed") {
		t.Errorf("Expected the rejected build in the log:\n%s", data)
	}
	if strings.Contains(string(data), "build default") {
		t.Errorf("Fallback build should succeed:\n%s", data)
	}
}
