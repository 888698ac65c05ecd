package common

import "math"

// TileSize is the pixel size of one grid cell when a level is turned into
// world space (physics, editor canvas).
const TileSize = 32

// Gravity used by level probes, in pixels per second squared.
const Gravity = 900.0

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Dist is the Euclidean distance between two grid cells.
func Dist(x0, y0, x1, y1 int) float64 {
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	return math.Sqrt(dx*dx + dy*dy)
}
