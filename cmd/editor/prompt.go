package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Prompt is a modal text input. While open it captures typed characters;
// Enter calls the callback and Escape closes without it.
type Prompt struct {
	open    bool
	label   string
	input   []rune
	onEnter func(string)
	back    *ebiten.Image
}

func NewPrompt() *Prompt { return &Prompt{} }

func (p *Prompt) IsOpen() bool { return p.open }

// Open shows the prompt with the given label, initial input, and callback.
func (p *Prompt) Open(label, initial string, onEnter func(string)) {
	p.label = label
	p.input = []rune(initial)
	p.onEnter = onEnter
	p.open = true
}

func (p *Prompt) Close() {
	p.open = false
	p.label = ""
	p.input = nil
	p.onEnter = nil
}

// Type appends printable runes to the input.
func (p *Prompt) Type(rs []rune) {
	for _, r := range rs {
		if r == '\n' || r == '\r' {
			continue
		}
		p.input = append(p.input, r)
	}
}

func (p *Prompt) Backspace() {
	if len(p.input) > 0 {
		p.input = p.input[:len(p.input)-1]
	}
}

// Submit closes the prompt and hands the input to the callback. The callback
// may reopen the prompt to chain another question.
func (p *Prompt) Submit() {
	cur, cb := string(p.input), p.onEnter
	p.Close()
	if cb != nil {
		cb(cur)
	}
}

// Update processes input for the prompt. It reports whether the prompt
// consumed the frame.
func (p *Prompt) Update() bool {
	if !p.open {
		return false
	}
	p.Type(ebiten.AppendInputChars(nil))
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		p.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		p.Submit()
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.Close()
	}
	return true
}

func (p *Prompt) Draw(screen *ebiten.Image) {
	if !p.open {
		return
	}
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	if p.back == nil || p.back.Bounds().Dx() != sw {
		p.back = ebiten.NewImage(sw, 48)
		p.back.Fill(color.RGBA{A: 0x88})
	}
	o := &ebiten.DrawImageOptions{}
	o.GeoM.Translate(0, float64(sh/2-24))
	screen.DrawImage(p.back, o)
	label := p.label
	if label == "" {
		label = "Input:"
	}
	ebitenutil.DebugPrintAt(screen, label+" "+string(p.input)+"_", 16, sh/2-8)
}
