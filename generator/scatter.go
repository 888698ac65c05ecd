package generator

import (
	"github.com/RezixDev/map-editor/common"
	"github.com/RezixDev/map-editor/levels"
)

// maxAttempts bounds the candidate positions tried per scattered instance.
const maxAttempts = 10

// scatter places decoration groups on the background layer, top-aligned groups
// in the upper half and bottom-aligned ones in the lower half. It returns the
// number of instances committed.
func (g *Generator) scatter(w *world, decorations []levels.TileGroup) int {
	var tops, bottoms []levels.TileGroup
	for _, d := range decorations {
		top, bottom := d.Aligned(levels.AlignTop), d.Aligned(levels.AlignBottom)
		if !top && !bottom {
			bottom = true
		}
		if top {
			tops = append(tops, d)
		}
		if bottom {
			bottoms = append(bottoms, d)
		}
	}
	half := w.height / 2
	n := g.scatterSet(w, tops, true, 0, max(half-1, 0))
	n += g.scatterSet(w, bottoms, false, half, w.height-1)
	return n
}

func (g *Generator) scatterSet(w *world, set []levels.TileGroup, top bool, lo, hi int) int {
	committed := 0
	for _, d := range set {
		if d.Height <= 0 {
			continue
		}
		density := d.ClampedDensity()
		count := g.policy.ScatterCount(w.width*w.height, density, top)
		spacing := g.policy.Spacing(density)

		var placed []levels.Point
		for n := 0; n < count; n++ {
			for attempt := 0; attempt < maxAttempts; attempt++ {
				x := g.rng.IntN(w.width)
				y := lo + g.rng.IntN(hi-lo+1)
				if tooClose(placed, x, y, spacing) {
					continue
				}
				tiles := g.instance(d)
				if w.fitsBackground(tiles, x, y) {
					for p, t := range tiles {
						w.background.Set(x+p.X, y+p.Y, t)
					}
					placed = append(placed, levels.Point{X: x, Y: y})
					committed++
				}
				// position accepted; a colliding instance is dropped whole
				break
			}
		}
	}
	return committed
}

func tooClose(placed []levels.Point, x, y int, spacing float64) bool {
	for _, p := range placed {
		if common.Dist(p.X, p.Y, x, y) < spacing {
			return true
		}
	}
	return false
}

// fitsBackground reports whether every cell of the instance is on the map and
// free in the background, terrain and collision layers.
func (w *world) fitsBackground(tiles map[levels.Point]levels.Tile, x, y int) bool {
	if len(tiles) == 0 {
		return false
	}
	for p := range tiles {
		cx, cy := x+p.X, y+p.Y
		if !w.inBounds(cx, cy) {
			return false
		}
		if w.background.Occupied(cx, cy) || w.terrain.Occupied(cx, cy) || w.collision.Occupied(cx, cy) {
			return false
		}
	}
	return true
}
