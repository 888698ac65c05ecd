// Package physics turns a collision layer into a chipmunk space so generated
// levels can be checked for walkable ground.
package physics

import (
	"github.com/RezixDev/map-editor/common"
	"github.com/RezixDev/map-editor/levels"
	"github.com/jakecoffman/cp"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeProbe
)

// Rect is a run of solid cells in tile units.
type Rect struct {
	X, Y, W, H int
}

// Merge covers the occupied cells of layer inside width x height with as few
// rectangles as the greedy scan finds, growing each one right and then down.
func Merge(layer *levels.Layer, width, height int) []Rect {
	if width <= 0 || height <= 0 {
		return nil
	}
	processed := make([]bool, width*height)
	solid := func(x, y int) bool {
		return !processed[y*width+x] && layer.Occupied(x, y)
	}

	var out []Rect
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !solid(x, y) {
				processed[y*width+x] = true
				continue
			}

			w := 1
			for x+w < width && solid(x+w, y) {
				w++
			}
			h := 1
		grow:
			for y+h < height {
				for xi := x; xi < x+w; xi++ {
					if !solid(xi, y+h) {
						break grow
					}
				}
				h++
			}

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*width+xx] = true
				}
			}
			out = append(out, Rect{X: x, Y: y, W: w, H: h})
		}
	}
	return out
}

type World struct {
	Space *cp.Space
	Rects []Rect

	width, height int
	shapes        int
}

// NewWorld builds static boxes for the collision layer plus segments on the
// map edges.
func NewWorld(collision *levels.Layer, width, height int) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})

	w := &World{Space: space, width: width, height: height}
	w.Rects = Merge(collision, width, height)
	for _, r := range w.Rects {
		x0 := float64(r.X * common.TileSize)
		y0 := float64(r.Y * common.TileSize)
		bb := cp.BB{L: x0, B: y0, R: x0 + float64(r.W*common.TileSize), T: y0 + float64(r.H*common.TileSize)}
		w.addStatic(cp.NewBox2(space.StaticBody, bb, 0))
	}
	w.addBounds()
	return w
}

func (w *World) addBounds() {
	worldW := float64(w.width * common.TileSize)
	worldH := float64(w.height * common.TileSize)
	if worldW <= 0 || worldH <= 0 {
		return
	}
	segments := [][2]cp.Vector{
		{{X: 0, Y: 0}, {X: worldW, Y: 0}},
		{{X: 0, Y: worldH}, {X: worldW, Y: worldH}},
		{{X: 0, Y: 0}, {X: 0, Y: worldH}},
		{{X: worldW, Y: 0}, {X: worldW, Y: worldH}},
	}
	for _, seg := range segments {
		w.addStatic(cp.NewSegment(w.Space.StaticBody, seg[0], seg[1], 1))
	}
}

func (w *World) addStatic(shape *cp.Shape) {
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeSolid)
	w.Space.AddShape(shape)
	w.shapes++
}

// ShapeCount is the number of static shapes, bounds included.
func (w *World) ShapeCount() int {
	return w.shapes
}

// AddProbe drops a dynamic box of the given pixel size centered at (x, y).
func (w *World) AddProbe(x, y, width, height float64) *cp.Body {
	mass := 1.0
	body := cp.NewBody(mass, cp.MomentForBox(mass, width, height))
	body.SetPosition(cp.Vector{X: x, Y: y})
	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeProbe)
	w.Space.AddBody(body)
	w.Space.AddShape(shape)
	return body
}

// Settle steps the space for seconds of simulated time at 60Hz.
func (w *World) Settle(seconds float64) {
	const dt = 1.0 / 60.0
	for t := 0.0; t < seconds; t += dt {
		w.Space.Step(dt)
	}
}

// SurfaceBelow returns the top row of the nearest solid cell at or under
// (x, y), in tile units.
func (w *World) SurfaceBelow(x, y int) (int, bool) {
	best, found := 0, false
	for _, r := range w.Rects {
		if x < r.X || x >= r.X+r.W || r.Y+r.H <= y {
			continue
		}
		top := max(r.Y, y)
		if !found || top < best {
			best, found = top, true
		}
	}
	return best, found
}
