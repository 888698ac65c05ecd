package generator

import (
	"github.com/RezixDev/map-editor/common"
	"github.com/RezixDev/map-editor/levels"
	"github.com/RezixDev/map-editor/pattern"
)

const (
	// verticalMargin keeps unrestricted walkers off the top and bottom rows.
	verticalMargin   = 4
	minPlatformWidth = 3
	maxPlatformWidth = 8
	// walkerStopMargin ends the walk this many columns before the right edge.
	walkerStopMargin = 5
)

// verticalRange is the band a group's platforms may start in.
func verticalRange(grp levels.TileGroup, height int) (lo, hi int) {
	top := grp.Aligned(levels.AlignTop)
	bottom := grp.Aligned(levels.AlignBottom)
	switch {
	case top && !bottom:
		lo, hi = 0, height/2-1
	case bottom && !top:
		lo, hi = height/2, height-1
	default:
		lo, hi = verticalMargin, height-1-verticalMargin
	}
	// keep the whole platform on the map when possible
	hi = min(hi, height-max(grp.Height, 1))
	lo = max(lo, 0)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// walkTerrain runs one walker for one terrain group. Cells already taken by an
// earlier group are left alone.
func (g *Generator) walkTerrain(w *world, grp levels.TileGroup, decorations []levels.TileGroup) {
	if grp.Height <= 0 {
		return
	}
	lo, hi := verticalRange(grp, w.height)
	y := (lo + hi) / 2
	minGap, maxGap := g.policy.Gaps(grp.ClampedDensity())
	drift := g.newDrift(lo, hi)

	for x := 0; x < w.width-walkerStopMargin; {
		pw := minPlatformWidth + g.rng.IntN(maxPlatformWidth-minPlatformWidth+1)
		for p, t := range pattern.Expand(pw, grp) {
			cx, cy := x+p.X, y+p.Y
			if !w.inBounds(cx, cy) || w.terrain.Occupied(cx, cy) {
				continue
			}
			w.terrain.Set(cx, cy, t)
			w.collision.Set(cx, cy, levels.Tile{TileID: SolidTileID})
		}
		if len(decorations) > 0 {
			g.decoratePlatform(w, decorations, x, y, pw)
		}

		x += pw + minGap + g.rng.IntN(maxGap-minGap+1)
		y = common.Clamp(drift.next(y), lo, hi)
	}
}

// decoratePlatform rolls, per platform column, for a terrain decoration whose
// bottom row sits directly above the platform at row y.
func (g *Generator) decoratePlatform(w *world, decorations []levels.TileGroup, x, y, pw int) {
	for i := 0; i < pw; i++ {
		d := decorations[g.rng.IntN(len(decorations))]
		if g.rng.Float64() >= g.policy.AttachChance(d.ClampedDensity()) {
			continue
		}
		if d.Height <= 0 {
			continue
		}
		tiles := g.instance(d)
		ox, oy := x+i, y-d.Height
		for p, t := range tiles {
			cx, cy := ox+p.X, oy+p.Y
			if !w.inBounds(cx, cy) || w.terrain.Occupied(cx, cy) {
				continue
			}
			w.terrain.Set(cx, cy, t)
		}
	}
}

// instanceWidth is the natural width for fixed groups and 2..4 for resizable
// ones.
func (g *Generator) instanceWidth(d levels.TileGroup) int {
	if !d.CanResize {
		return pattern.NaturalWidth(d)
	}
	return 2 + g.rng.IntN(3)
}

// instance expands d at a chosen width, randomly mirrored when d allows it.
func (g *Generator) instance(d levels.TileGroup) map[levels.Point]levels.Tile {
	width := g.instanceWidth(d)
	tiles := pattern.Expand(width, d)
	if d.CanFlip && g.rng.IntN(2) == 0 {
		tiles = pattern.Mirror(tiles, width)
	}
	return tiles
}
