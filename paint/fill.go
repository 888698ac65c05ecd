package paint

import "github.com/RezixDev/map-editor/levels"

type cellID struct {
	id int
	ok bool
}

func idAt(layer *levels.Layer, x, y int) cellID {
	t, ok := layer.Get(x, y)
	return cellID{id: t.TileID, ok: ok}
}

// FloodFill replaces the 4-connected region around (sx, sy) whose cells match
// the start cell's tile id, within [0,width) x [0,height). An empty start cell
// only matches empty cells. Filling with the id already at the start is a
// no-op. Written tiles carry flipX. It returns the number of cells filled.
func FloodFill(layer *levels.Layer, sx, sy, fillID, width, height int, flipX bool) int {
	start := idAt(layer, sx, sy)
	if start.ok && start.id == fillID {
		return 0
	}

	visited := make(map[levels.Point]struct{})
	stack := []levels.Point{{X: sx, Y: sy}}
	filled := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := visited[p]; seen {
			continue
		}
		if p.X < 0 || p.Y < 0 || p.X >= width || p.Y >= height {
			continue
		}
		if idAt(layer, p.X, p.Y) != start {
			continue
		}
		visited[p] = struct{}{}
		layer.Set(p.X, p.Y, levels.Tile{TileID: fillID, FlipX: flipX})
		filled++

		// neighbours are validated when popped
		stack = append(stack,
			levels.Point{X: p.X + 1, Y: p.Y},
			levels.Point{X: p.X - 1, Y: p.Y},
			levels.Point{X: p.X, Y: p.Y + 1},
			levels.Point{X: p.X, Y: p.Y - 1},
		)
	}
	return filled
}
