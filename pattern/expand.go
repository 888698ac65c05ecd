// Package pattern stretches smart components (tile groups) to a target width.
package pattern

import "github.com/RezixDev/map-editor/levels"

// Expand lays out g at the given width. Column choice: width 1 uses Single;
// otherwise Left, then width-2 columns cycling through Middle, then Right.
// Rows wrap through shorter columns. Empty columns produce no tiles and a
// non-positive width produces an empty pattern. Every tile has FlipX false.
func Expand(width int, g levels.TileGroup) map[levels.Point]levels.Tile {
	out := map[levels.Point]levels.Tile{}
	if width <= 0 || g.Height <= 0 {
		return out
	}
	for x := 0; x < width; x++ {
		col := column(x, width, g)
		if len(col) == 0 {
			continue
		}
		for y := 0; y < g.Height; y++ {
			out[levels.Point{X: x, Y: y}] = levels.Tile{TileID: col[y%len(col)]}
		}
	}
	return out
}

func column(x, width int, g levels.TileGroup) []int {
	switch {
	case x == 0 && width == 1:
		return g.Single
	case x == 0:
		return g.Left
	case x == width-1:
		return g.Right
	case len(g.Middle) == 0:
		return g.Single
	default:
		return g.Middle[(x-1)%len(g.Middle)]
	}
}

// Mirror flips a pattern of the given width horizontally: dx maps to
// width-1-dx and every tile's own FlipX is inverted. Tile ids are untouched.
func Mirror(tiles map[levels.Point]levels.Tile, width int) map[levels.Point]levels.Tile {
	out := make(map[levels.Point]levels.Tile, len(tiles))
	for p, t := range tiles {
		t.FlipX = !t.FlipX
		out[levels.Point{X: width - 1 - p.X, Y: p.Y}] = t
	}
	return out
}

// NaturalWidth is the width a group was captured at: PreviewWidth when set,
// otherwise both caps plus one of each middle column, or 1 for a
// single-column group.
func NaturalWidth(g levels.TileGroup) int {
	if g.PreviewWidth > 0 {
		return g.PreviewWidth
	}
	if len(g.Left) == 0 && len(g.Right) == 0 && len(g.Middle) == 0 {
		return 1
	}
	return 2 + len(g.Middle)
}

// Brush wraps an expanded pattern as a stamp so it can be painted.
func Brush(width int, g levels.TileGroup) levels.CustomBrush {
	return levels.CustomBrush{Width: max(width, 0), Height: max(g.Height, 0), Data: Expand(width, g)}
}
