package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Prompt is a modal text input. While open it captures typed characters;
// Enter hands the text to onEnter and Escape calls onCancel. Callbacks run
// after the prompt closes, so onEnter may reopen it to ask again.
type Prompt struct {
	open     bool
	label    string
	notice   string
	input    []rune
	chars    []rune
	onEnter  func(string)
	onCancel func()
}

func NewPrompt() *Prompt { return &Prompt{} }

func (p *Prompt) IsOpen() bool { return p.open }

// Open shows the prompt with the given label, notice line and initial input.
func (p *Prompt) Open(label, notice, initial string, onEnter func(string), onCancel func()) {
	p.label = label
	p.notice = notice
	p.input = []rune(initial)
	p.onEnter = onEnter
	p.onCancel = onCancel
	p.open = true
}

// Close hides the prompt without invoking any callback.
func (p *Prompt) Close() {
	p.open = false
	p.label = ""
	p.notice = ""
	p.input = p.input[:0]
	p.onEnter = nil
	p.onCancel = nil
}

// Input returns the current text.
func (p *Prompt) Input() string {
	return string(p.input)
}

// Type appends printable runes to the input.
func (p *Prompt) Type(runes []rune) {
	for _, r := range runes {
		if r == '\n' || r == '\r' {
			continue
		}
		p.input = append(p.input, r)
	}
}

// Backspace removes the last rune.
func (p *Prompt) Backspace() {
	if len(p.input) > 0 {
		p.input = p.input[:len(p.input)-1]
	}
}

// Submit closes the prompt and passes the text to onEnter.
func (p *Prompt) Submit() {
	cur := p.Input()
	onEnter := p.onEnter
	p.Close()
	if onEnter != nil {
		onEnter(cur)
	}
}

// Cancel closes the prompt and calls onCancel.
func (p *Prompt) Cancel() {
	onCancel := p.onCancel
	p.Close()
	if onCancel != nil {
		onCancel()
	}
}

// Update processes keyboard input. Returns true while the prompt is open
// so callers can skip all other input.
func (p *Prompt) Update() bool {
	if !p.open {
		return false
	}
	p.chars = ebiten.AppendInputChars(p.chars[:0])
	p.Type(p.chars)
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		p.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		p.Submit()
		return p.open
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.Cancel()
		return false
	}
	return true
}

// Draw renders the prompt overlay.
func (p *Prompt) Draw(screen *ebiten.Image, face text.Face) {
	if !p.open {
		return
	}
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()

	top := float32(sh/2 - 48)
	vector.FillRect(screen, 0, 0, float32(sw), float32(sh), color.RGBA{A: 0x88}, false)
	vector.FillRect(screen, 0, top, float32(sw), 96, color.RGBA{R: 0x22, G: 0x22, B: 0x2a, A: 0xf0}, false)

	drawText(screen, p.label, face, margin, float64(top)+12, colorText)
	drawText(screen, "> "+p.Input()+"_", face, margin, float64(top)+36, colorText)
	if p.notice != "" {
		drawText(screen, p.notice, face, margin, float64(top)+60, colorWarning)
	}
	drawText(screen, "enter confirm, esc cancel", face, margin, float64(top)+78, colorMuted)
}
