// Package app contains the main application state and logic.
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/henri123lemoine/etch/internal/config"
	"github.com/henri123lemoine/etch/internal/debug"
	"github.com/henri123lemoine/etch/internal/grid"
	"github.com/henri123lemoine/etch/internal/sketch"
	"github.com/henri123lemoine/etch/internal/ui"
)

// State represents the current UI state.
type State int

const (
	StateView State = iota
	StateDraw
	StatePrompt
)

// noCell marks that the pointer is not over any cell.
const noCell = -1

// Model is the main application model.
type Model struct {
	config *config.Config
	ctrl   *sketch.Controller

	// Prompt
	promptInput textinput.Model

	// UI
	width   int
	height  int
	keys    KeyMap
	help    help.Model
	hovered int
	err     error

	shouldQuit bool
}

// New creates a new Model around ctrl.
func New(cfg *config.Config, ctrl *sketch.Controller) Model {
	promptInput := textinput.New()
	promptInput.Placeholder = fmt.Sprint(ctrl.DefaultColumns())
	promptInput.CharLimit = 16
	promptInput.Width = 16

	return Model{
		config:      cfg,
		ctrl:        ctrl,
		promptInput: promptInput,
		keys:        KeyMapFromConfig(&cfg.Keys),
		help:        help.New(),
		hovered:     noCell,
	}
}

// WithWarnings shows configuration warnings until the next input.
func (m Model) WithWarnings(warnings []string) Model {
	switch len(warnings) {
	case 0:
		m.err = nil
	case 1:
		m.err = fmt.Errorf("config: %s", warnings[0])
	default:
		m.err = fmt.Errorf("config: %s (and %d more)", warnings[0], len(warnings)-1)
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("etch")
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		m.err = nil

		if msg.Type == tea.KeyCtrlC {
			m.shouldQuit = true
			return m, tea.Quit
		}
		if m.ctrl.Prompting() {
			return m.handlePromptKeys(msg)
		}
		if key.Matches(msg, m.keys.Quit) {
			m.shouldQuit = true
			return m, tea.Quit
		}
		return m.handleGridKeys(msg)

	case tea.MouseMsg:
		// The prompt is modal.
		if m.ctrl.Prompting() {
			return m, nil
		}
		return m.handleMouse(msg)
	}

	return m, nil
}

// handleGridKeys handles key presses while the grid is shown.
func (m Model) handleGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.ctrl.ClickGrid()
	case key.Matches(msg, m.keys.Reset):
		return m.beginReset()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleMouse routes clicks and pointer motion. Motion paints through the
// controller's single hover handler, once per cell entered.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	target := m.layout().HitTest(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.err = nil
		switch target.Kind {
		case ui.TargetButton:
			return m.beginReset()
		case ui.TargetCell:
			m.ctrl.ClickGrid()
		}

	case tea.MouseActionMotion:
		if target.Kind != ui.TargetCell {
			m.hovered = noCell
			return m, nil
		}
		if target.Index != m.hovered {
			m.hovered = target.Index
			m.ctrl.Hover(target.Index)
		}
	}

	return m, nil
}

// beginReset destroys the grid and opens the column prompt.
func (m Model) beginReset() (tea.Model, tea.Cmd) {
	m.ctrl.Reset()
	m.hovered = noCell
	m.resetPromptInput()
	m.promptInput.Focus()
	return m, textinput.Blink
}

// handlePromptKeys handles key presses while the prompt is open.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.CancelPrompt()
		m.promptInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		if m.ctrl.SubmitPrompt(m.promptInput.Value()) {
			m.promptInput.Blur()
			debug.Log("new grid %dx%d", m.ctrl.Grid().Columns(), m.ctrl.Grid().Columns())
			return m, nil
		}
		// Rejected: ask again from the default.
		m.resetPromptInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(msg)
	return m, cmd
}

func (m *Model) resetPromptInput() {
	m.promptInput.SetValue(fmt.Sprint(m.ctrl.DefaultColumns()))
	m.promptInput.CursorEnd()
}

// state derives the UI state from the controller.
func (m Model) state() State {
	switch {
	case m.ctrl.Prompting():
		return StatePrompt
	case m.ctrl.Drawing():
		return StateDraw
	default:
		return StateView
	}
}

// cellWidth returns the configured cell width shrunk to fit the terminal.
func (m Model) cellWidth() int {
	cw := m.config.UI.CellWidth
	if m.width > 0 {
		cw = ui.FitCellWidth(m.width, m.ctrl.Grid().Columns(), cw)
	}
	return max(cw, 1)
}

// layout returns the hit-test geometry of the view as the terminal shows it.
func (m Model) layout() ui.Layout {
	l := ui.NewLayout(m.ctrl.Grid().Columns(), m.cellWidth())
	if m.height > 0 {
		l = l.Scrolled(lipgloss.Height(m.View()) - m.height)
	}
	return l
}

// View renders the UI. The help footer is dropped when it would push the
// view past the terminal height.
func (m Model) View() string {
	showHelp := m.config.UI.ShowHelp
	view := ui.Render(m.renderParams(showHelp))
	if showHelp && m.height > 0 && lipgloss.Height(view) > m.height {
		view = ui.Render(m.renderParams(false))
	}
	return view
}

func (m Model) renderParams(showHelp bool) ui.RenderParams {
	p := ui.RenderParams{
		State:  int(m.state()),
		Width:  m.width,
		Height: m.height,
		Err:    m.err,
	}

	if session, ok := m.ctrl.Prompt(); ok {
		p.PromptMessage = session.Message
		p.PromptInput = m.promptInput.View()
		p.PromptDefault = session.Default
		p.PromptAttempts = session.Attempts
		p.PromptRejected = session.LastRejected
	} else {
		p.Cells = m.ctrl.Grid().Cells()
		p.Columns = m.ctrl.Grid().Columns()
		p.CellWidth = m.cellWidth()
	}

	if showHelp {
		p.Help = m.help.View(m.keys)
	}
	return p
}

// Grid returns the current container for reading.
func (m Model) Grid() *grid.Container {
	return m.ctrl.Grid()
}

// ShouldQuit returns true if the app should quit.
func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}
