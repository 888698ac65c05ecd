package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/RezixDev/map-editor/paint"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// palette tints tiles by id; there is no tileset in the core editor.
var palette = []color.RGBA{
	colornames.Steelblue,
	colornames.Darkseagreen,
	colornames.Goldenrod,
	colornames.Indianred,
	colornames.Mediumpurple,
	colornames.Sandybrown,
	colornames.Cadetblue,
	colornames.Olivedrab,
	colornames.Rosybrown,
	colornames.Slategray,
}

const helpText = `B brush  E erase  F fill  S select  X flip  1-9 tile
[ ] component  - = width  G generate  N new layer
PgUp/PgDn layer  V visibility  Alt+Up/Down move  Shift+Del remove
Ctrl+Z undo  Ctrl+Y redo  Ctrl+C/X/V clipboard  Del clear
Ctrl+G capture component  Ctrl+R rename  Ctrl+S save  Ctrl+O open
P drop a physics probe`

func tileColor(id int) color.RGBA {
	if id < 0 {
		id = -id
	}
	return palette[id%len(palette)]
}

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	if e.pixel == nil {
		e.pixel = ebiten.NewImage(1, 1)
		e.pixel.Fill(color.White)
	}

	m := e.session.Map
	cell := e.view.cellPixels()
	active := e.session.ActiveLayerID()
	for i := range m.Layers {
		l := &m.Layers[i]
		if !l.Visible {
			continue
		}
		alpha := float32(l.Opacity)
		if l.ID != active {
			alpha *= 0.6
		}
		for p, t := range l.Data {
			c := tileColor(t.TileID)
			if t.FlipX {
				c = darken(c)
			}
			e.drawCell(screen, p.X, p.Y, cell, c, alpha)
		}
	}

	x0, y0 := e.view.CellToScreen(0, 0)
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(float64(m.Width)*cell), float32(float64(m.Height)*cell), 1, colornames.Gray, false)

	if m.InBounds(e.hoverX, e.hoverY) {
		for _, p := range paint.Cells(e.session.Brush(), e.hoverX, e.hoverY, e.session.Flipped) {
			e.drawCell(screen, p.X, p.Y, cell, colornames.White, 0.3)
		}
	}
	if r := e.selection; r != nil {
		sx, sy := e.view.CellToScreen(r.X, r.Y)
		vector.StrokeRect(screen, float32(sx), float32(sy), float32(float64(r.W)*cell), float32(float64(r.H)*cell), 2, colornames.Yellow, false)
	}

	ebitenutil.DebugPrint(screen, e.statusLine())
	if e.showHelp {
		ebitenutil.DebugPrintAt(screen, helpText, 8, 48)
	}
	if e.statusLeft > 0 {
		ebitenutil.DebugPrintAt(screen, e.status, 8, e.screenH-20)
	}
	e.prompt.Draw(screen)
}

func (e *Editor) drawCell(screen *ebiten.Image, x, y int, cell float64, c color.RGBA, alpha float32) {
	sx, sy := e.view.CellToScreen(x, y)
	if sx+cell < 0 || sy+cell < 0 || sx > float64(e.screenW) || sy > float64(e.screenH) {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cell, cell)
	op.GeoM.Translate(sx, sy)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(e.pixel, op)
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R * 3 / 4, G: c.G * 3 / 4, B: c.B * 3 / 4, A: c.A}
}

func (e *Editor) statusLine() string {
	s := e.session
	l := s.ActiveLayer()
	b := s.Brush()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s | layer %d/%d %q", s.Tool, e.activeIndex()+1, len(s.Map.Layers), l.Name)
	if !l.Visible {
		sb.WriteString(" (hidden)")
	}
	fmt.Fprintf(&sb, " | brush %dx%d", b.Width, b.Height)
	if s.Flipped {
		sb.WriteString(" flipped")
	}
	fmt.Fprintf(&sb, " | cell %d,%d", e.hoverX, e.hoverY)
	if s.CanUndo() {
		sb.WriteString(" | undo")
	}
	if s.CanRedo() {
		sb.WriteString(" | redo")
	}
	sb.WriteString(" | F1 help")
	return sb.String()
}

// Layout tracks the window size so the canvas follows resizes.
func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.screenW, e.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

var _ ebiten.Game = (*Editor)(nil)
