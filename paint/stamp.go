// Package paint holds the direct mutations of a layer: brush stamps, the
// eraser, flood fill and selection tools. Callers checkpoint history first and
// do their own bounds checks for single-cell paint.
package paint

import "github.com/RezixDev/map-editor/levels"

// Stamp writes every cell of brush with its origin at (tx, ty). When flipped,
// offsets mirror around the brush width and each tile's FlipX is XOR-ed with
// the flip, so brushes with mixed flips stay consistent. It returns the
// number of cells written.
func Stamp(layer *levels.Layer, brush levels.CustomBrush, tx, ty int, flipped bool) int {
	n := 0
	for p, t := range brush.Data {
		dx := p.X
		if flipped {
			dx = brush.Width - 1 - p.X
		}
		t = t.Clone()
		t.FlipX = t.FlipX != flipped
		layer.Set(tx+dx, ty+p.Y, t)
		n++
	}
	return n
}

// PaintCell sets one cell. A nil tile erases it.
func PaintCell(layer *levels.Layer, x, y int, t *levels.Tile) {
	if t == nil {
		layer.Delete(x, y)
		return
	}
	layer.Set(x, y, t.Clone())
}

// Cells lists the target cells a stamp would touch, for bounds checks and
// previews.
func Cells(brush levels.CustomBrush, tx, ty int, flipped bool) []levels.Point {
	out := make([]levels.Point, 0, len(brush.Data))
	for p := range brush.Data {
		dx := p.X
		if flipped {
			dx = brush.Width - 1 - p.X
		}
		out = append(out, levels.Point{X: tx + dx, Y: ty + p.Y})
	}
	return out
}
