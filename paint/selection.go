package paint

import (
	"errors"

	"github.com/RezixDev/map-editor/levels"
)

// ErrSparseSelection is returned when a smart component is captured from a
// selection that has empty cells; columns can only hold tile ids.
var ErrSparseSelection = errors.New("paint: selection has empty cells")

// Capture samples the tiles inside rect into a brush anchored at the rect's
// top-left corner. Empty cells stay absent, so the brush may be
// non-rectangular.
func Capture(layer *levels.Layer, rect levels.SelectionRect) levels.CustomBrush {
	b := levels.CustomBrush{Width: rect.W, Height: rect.H, Data: map[levels.Point]levels.Tile{}}
	for y := 0; y < rect.H; y++ {
		for x := 0; x < rect.W; x++ {
			if t, ok := layer.Get(rect.X+x, rect.Y+y); ok {
				b.Data[levels.Point{X: x, Y: y}] = t.Clone()
			}
		}
	}
	return b
}

// Clear deletes every tile inside rect and reports how many were removed.
func Clear(layer *levels.Layer, rect levels.SelectionRect) int {
	n := 0
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			if layer.Occupied(x, y) {
				layer.Delete(x, y)
				n++
			}
		}
	}
	return n
}

// CaptureGroup turns a fully filled selection into a smart component: the
// first column becomes the left cap, the last the right cap and everything
// between the repeating middle. Flip flags are not kept.
func CaptureGroup(layer *levels.Layer, rect levels.SelectionRect, name string) (levels.TileGroup, error) {
	if rect.W < 1 || rect.H < 1 {
		return levels.TileGroup{}, ErrSparseSelection
	}
	cols := make([][]int, rect.W)
	for x := 0; x < rect.W; x++ {
		col := make([]int, rect.H)
		for y := 0; y < rect.H; y++ {
			t, ok := layer.Get(rect.X+x, rect.Y+y)
			if !ok {
				return levels.TileGroup{}, ErrSparseSelection
			}
			col[y] = t.TileID
		}
		cols[x] = col
	}

	g := levels.TileGroup{
		Name:              name,
		Height:            rect.H,
		PreviewWidth:      rect.W,
		Role:              levels.RoleTerrain,
		CanResize:         true,
		AllowInGeneration: true,
		Density:           5,
		Left:              cols[0],
		Right:             cols[rect.W-1],
		Single:            cols[0],
	}
	if rect.W > 2 {
		g.Middle = cols[1 : rect.W-1]
		g.Single = g.Middle[0]
	}
	return g.Clone(), nil
}
