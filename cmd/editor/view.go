package main

import (
	"math"

	"github.com/RezixDev/map-editor/common"
)

const (
	minZoom = 0.25
	maxZoom = 4.0
)

// View maps between screen pixels and map cells.
type View struct {
	CellSize int
	Zoom     float64
	PanX     float64
	PanY     float64
}

func (v View) cellPixels() float64 {
	z := v.Zoom
	if z == 0 {
		z = 1
	}
	return float64(v.CellSize) * z
}

func (v View) ScreenToCell(sx, sy int) (int, int) {
	c := v.cellPixels()
	return int(math.Floor((float64(sx) - v.PanX) / c)), int(math.Floor((float64(sy) - v.PanY) / c))
}

func (v View) CellToScreen(x, y int) (float64, float64) {
	c := v.cellPixels()
	return float64(x)*c + v.PanX, float64(y)*c + v.PanY
}

func (v *View) Pan(dx, dy int) {
	v.PanX += float64(dx)
	v.PanY += float64(dy)
}

// ZoomAt scales by factor, keeping the point under (sx, sy) fixed.
func (v *View) ZoomAt(sx, sy int, factor float64) {
	if v.Zoom == 0 {
		v.Zoom = 1
	}
	next := common.ClampF(v.Zoom*factor, minZoom, maxZoom)
	if next == v.Zoom {
		return
	}
	wx := (float64(sx) - v.PanX) / v.Zoom
	wy := (float64(sy) - v.PanY) / v.Zoom
	v.Zoom = next
	v.PanX = float64(sx) - wx*next
	v.PanY = float64(sy) - wy*next
}

// line returns the cells from (x0, y0) to (x1, y1) inclusive, so a fast drag
// paints without gaps.
func line(x0, y0, x1, y1 int) [][2]int {
	var pts [][2]int
	dx := common.Abs(x1 - x0)
	dy := -common.Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		pts = append(pts, [2]int{x0, y0})
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
	return pts
}
