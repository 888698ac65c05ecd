package levels

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Layer is one sparse plane of tiles. Absent keys are empty cells.
type Layer struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Visible bool           `json:"visible"`
	Opacity float64        `json:"opacity"`
	Data    map[Point]Tile `json:"data"`
}

// NewLayer returns an empty, visible, opaque layer with a fresh id.
func NewLayer(name string) Layer {
	return Layer{
		ID:      uuid.NewString(),
		Name:    name,
		Visible: true,
		Opacity: 1,
		Data:    map[Point]Tile{},
	}
}

// UnmarshalJSON defaults a missing visible or opacity key to a shown,
// opaque layer.
func (l *Layer) UnmarshalJSON(b []byte) error {
	type plain Layer
	p := plain{Visible: true, Opacity: 1}
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*l = Layer(p)
	return nil
}

func (l *Layer) Get(x, y int) (Tile, bool) {
	t, ok := l.Data[Point{X: x, Y: y}]
	return t, ok
}

func (l *Layer) Set(x, y int, t Tile) {
	if l.Data == nil {
		l.Data = map[Point]Tile{}
	}
	l.Data[Point{X: x, Y: y}] = t
}

func (l *Layer) Delete(x, y int) {
	delete(l.Data, Point{X: x, Y: y})
}

func (l *Layer) Occupied(x, y int) bool {
	_, ok := l.Data[Point{X: x, Y: y}]
	return ok
}

func (l *Layer) Len() int {
	return len(l.Data)
}

// Clone deep-copies the layer, tile properties included.
func (l Layer) Clone() Layer {
	out := l
	out.Data = make(map[Point]Tile, len(l.Data))
	for k, t := range l.Data {
		out.Data[k] = t.Clone()
	}
	return out
}

// Equal compares everything but pointer identity.
func (l Layer) Equal(o Layer) bool {
	if l.ID != o.ID || l.Name != o.Name || l.Visible != o.Visible || l.Opacity != o.Opacity {
		return false
	}
	if len(l.Data) != len(o.Data) {
		return false
	}
	for k, t := range l.Data {
		ot, ok := o.Data[k]
		if !ok || !t.Equal(ot) {
			return false
		}
	}
	return true
}

// CloneLayers deep-copies a layer sequence.
func CloneLayers(src []Layer) []Layer {
	if src == nil {
		return nil
	}
	out := make([]Layer, len(src))
	for i := range src {
		out[i] = src[i].Clone()
	}
	return out
}

// LayersEqual reports structural equality of two layer sequences.
func LayersEqual(a, b []Layer) bool {
	return slices.EqualFunc(a, b, Layer.Equal)
}

// Map is the ordered layer stack, bottom first, plus the tile bounds used to
// clip generation and fill.
type Map struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Layers []Layer `json:"layers"`
}

// NewMap returns a map with one empty layer, so the "at least one layer"
// invariant holds from the start.
func NewMap(width, height int) *Map {
	return &Map{Width: width, Height: height, Layers: []Layer{NewLayer("Layer 1")}}
}

func (m *Map) Clone() *Map {
	return &Map{Width: m.Width, Height: m.Height, Layers: CloneLayers(m.Layers)}
}

func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

func (m *Map) LayerIndex(id string) int {
	return slices.IndexFunc(m.Layers, func(l Layer) bool { return l.ID == id })
}

// LayerByID returns a pointer into m.Layers, or nil. The pointer is invalidated
// by any operation that reorders or resizes the stack.
func (m *Map) LayerByID(id string) *Layer {
	if i := m.LayerIndex(id); i >= 0 {
		return &m.Layers[i]
	}
	return nil
}

// AddLayer appends a new empty layer on top. Name collisions are suffixed.
func (m *Map) AddLayer(name string) *Layer {
	if name == "" {
		name = fmt.Sprintf("Layer %d", len(m.Layers)+1)
	}
	l := NewLayer(m.uniqueName(name, ""))
	m.Layers = append(m.Layers, l)
	return &m.Layers[len(m.Layers)-1]
}

// RemoveLayer deletes the layer with id. Removing the last remaining layer is
// refused.
func (m *Map) RemoveLayer(id string) bool {
	if len(m.Layers) <= 1 {
		return false
	}
	i := m.LayerIndex(id)
	if i < 0 {
		return false
	}
	m.Layers = slices.Delete(m.Layers, i, i+1)
	return true
}

// MoveLayer moves the layer with id to position to (clamped to the stack).
func (m *Map) MoveLayer(id string, to int) bool {
	from := m.LayerIndex(id)
	if from < 0 {
		return false
	}
	to = max(0, min(to, len(m.Layers)-1))
	if from == to {
		return false
	}
	l := m.Layers[from]
	m.Layers = slices.Delete(m.Layers, from, from+1)
	m.Layers = slices.Insert(m.Layers, to, l)
	return true
}

// RenameLayer renames the layer, disambiguating against siblings with a
// " (n)" suffix. It returns the name actually applied.
func (m *Map) RenameLayer(id, name string) (string, bool) {
	l := m.LayerByID(id)
	if l == nil || name == "" {
		return "", false
	}
	l.Name = m.uniqueName(name, id)
	return l.Name, true
}

func (m *Map) SetVisible(id string, visible bool) bool {
	l := m.LayerByID(id)
	if l == nil {
		return false
	}
	l.Visible = visible
	return true
}

// SetOpacity clamps opacity into [0,1].
func (m *Map) SetOpacity(id string, opacity float64) bool {
	l := m.LayerByID(id)
	if l == nil {
		return false
	}
	l.Opacity = max(0, min(opacity, 1))
	return true
}

func (m *Map) uniqueName(name, selfID string) string {
	taken := func(candidate string) bool {
		for _, l := range m.Layers {
			if l.ID != selfID && l.Name == candidate {
				return true
			}
		}
		return false
	}
	if !taken(name) {
		return name
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s (%d)", name, n)
		if !taken(candidate) {
			return candidate
		}
	}
}
