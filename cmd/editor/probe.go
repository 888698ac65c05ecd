package main

import (
	"github.com/RezixDev/map-editor/common"
	"github.com/RezixDev/map-editor/levels"
	"github.com/RezixDev/map-editor/physics"
)

const probeSize = 16

func (e *Editor) collisionLayer() *levels.Layer {
	for i := range e.session.Map.Layers {
		if e.session.Map.Layers[i].Name == "Collision" {
			return &e.session.Map.Layers[i]
		}
	}
	return nil
}

// probe drops a small body from the center of cell (x, y) onto the
// collision layer and returns the row it settles in.
func (e *Editor) probe(x, y int) (int, bool) {
	m := e.session.Map
	col := e.collisionLayer()
	if col == nil || !m.InBounds(x, y) {
		e.setStatus("probe needs a Collision layer")
		return 0, false
	}
	w := physics.NewWorld(col, m.Width, m.Height)
	half := float64(common.TileSize) / 2
	body := w.AddProbe(float64(x*common.TileSize)+half, float64(y*common.TileSize)+half, probeSize, probeSize)
	w.Settle(3)

	row := int(body.Position().Y) / common.TileSize
	if surface, ok := w.SurfaceBelow(x, y); ok {
		e.setStatus("probe landed in row %d (surface at %d)", row, surface)
	} else {
		e.setStatus("probe fell to row %d, no ground below", row)
	}
	return row, true
}
