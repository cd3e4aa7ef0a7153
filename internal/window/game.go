package window

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/henri123lemoine/etch/internal/debug"
	"github.com/henri123lemoine/etch/internal/sketch"
)

var (
	colorBackground = color.RGBA{R: 0x18, G: 0x18, B: 0x1c, A: 0xff}
	colorEmptyCell  = color.RGBA{R: 0x30, G: 0x30, B: 0x36, A: 0xff}
	colorOutline    = color.RGBA{R: 0x60, G: 0x60, B: 0x6a, A: 0xff}
	colorDrawing    = color.RGBA{R: 0x4c, G: 0xc3, B: 0x6a, A: 0xff}
	colorText       = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorMuted      = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
	colorWarning    = color.RGBA{R: 0xe5, G: 0xc0, B: 0x4b, A: 0xff}
)

// Game implements ebiten.Game around a sketch.Controller.
type Game struct {
	ctrl    *sketch.Controller
	ui      *ebitenui.UI
	prompt  *Prompt
	face    text.Face
	width   int
	height  int
	hovered int
}

// New creates the window game. The reset button is wired to the controller.
func New(ctrl *sketch.Controller) *Game {
	g := &Game{
		ctrl:    ctrl,
		prompt:  NewPrompt(),
		face:    text.NewGoXFace(basicfont.Face7x13),
		hovered: -1,
	}
	g.ui = g.newUI()
	return g
}

// newUI builds the anchored "New grid" button.
func (g *Game) newUI() *ebitenui.UI {
	face := g.face

	btn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x55, B: 0x99, A: 0xff}),
			Hover:   image.NewNineSliceColor(color.NRGBA{R: 0x44, G: 0x66, B: 0xaa, A: 0xff}),
			Pressed: image.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x44, B: 0x88, A: 0xff}),
		}),
		widget.ButtonOpts.Text("New grid", &face, &widget.ButtonTextColor{Idle: colorText}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(140, 32),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.beginReset()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	panel.AddChild(btn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func (g *Game) layout() Layout {
	return NewLayout(g.width, g.height, g.ctrl.Grid().Columns())
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	// The prompt is modal.
	if g.prompt.Update() {
		return nil
	}

	g.ui.Update()
	if g.ctrl.Prompting() {
		// The button opened the prompt this frame.
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.beginReset()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.ctrl.ClickGrid()
	}

	x, y := ebiten.CursorPosition()
	g.handlePointer(x, y, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft), ebuiinput.UIHovered)
	return nil
}

// handlePointer toggles draw mode on grid clicks and hands cell entries to
// the controller's hover handler. Clicks over UI widgets never reach the grid.
func (g *Game) handlePointer(x, y int, clicked, overUI bool) {
	i, inGrid := g.layout().CellAt(x, y)

	if clicked && inGrid && !overUI {
		g.ctrl.ClickGrid()
	}

	if !inGrid {
		g.hovered = -1
		return
	}
	if i != g.hovered {
		g.hovered = i
		g.ctrl.Hover(i)
	}
}

// beginReset destroys the grid and opens the column prompt.
func (g *Game) beginReset() {
	g.ctrl.Reset()
	g.hovered = -1
	g.openPrompt()
}

// openPrompt shows the controller's prompt session. A rejected submission
// reopens it, pre-filled with the default again.
func (g *Game) openPrompt() {
	session, ok := g.ctrl.Prompt()
	if !ok {
		return
	}
	notice := ""
	if session.Attempts > 0 {
		notice = fmt.Sprintf("%q is not a valid column count", session.LastRejected)
	}
	g.prompt.Open(session.Message, notice, session.Default,
		func(input string) {
			if !g.ctrl.SubmitPrompt(input) {
				g.openPrompt()
				return
			}
			debug.Log("window: new grid %dx%d", g.ctrl.Grid().Columns(), g.ctrl.Grid().Columns())
		},
		g.ctrl.CancelPrompt,
	)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	l := g.layout()
	for i, cell := range g.ctrl.Grid().Cells() {
		x, y := l.CellRect(i)
		var clr color.Color = colorEmptyCell
		if cell.Painted {
			clr = cell.Color.Colorful()
		}
		vector.FillRect(screen, float32(x), float32(y), float32(l.CellSize), float32(l.CellSize), clr, false)
	}

	outline := colorOutline
	status := fmt.Sprintf("%dx%d  view  (click the grid to draw)", l.Columns, l.Columns)
	if g.ctrl.Drawing() {
		outline = colorDrawing
		status = fmt.Sprintf("%dx%d  draw  (click the grid to stop)", l.Columns, l.Columns)
	}
	if l.Columns > 0 {
		vector.StrokeRect(screen, float32(l.X)-1, float32(l.Y)-1, float32(l.Side())+2, float32(l.Side())+2, 1, outline, false)
	}
	drawText(screen, status, g.face, margin, 10, colorMuted)

	g.ui.Draw(screen)
	g.prompt.Draw(screen, g.face)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width = outsideWidth
	g.height = outsideHeight
	return outsideWidth, outsideHeight
}

func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
