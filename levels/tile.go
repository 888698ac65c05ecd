package levels

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"strconv"
	"strings"
)

// Point is a tile-space coordinate. It doubles as the sparse map key and is
// persisted as "x,y".
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

func (p Point) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Point) UnmarshalText(b []byte) error {
	pt, err := ParsePoint(string(b))
	if err != nil {
		return err
	}
	*p = pt
	return nil
}

// ParsePoint parses an "x,y" key. Coordinates may be negative.
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("levels: bad coordinate key %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, fmt.Errorf("levels: bad coordinate key %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, fmt.Errorf("levels: bad coordinate key %q: %w", s, err)
	}
	return Point{X: x, Y: y}, nil
}

// Tile is the content of one cell. An empty cell has no Tile at all.
type Tile struct {
	TileID     int            `json:"tileId"`
	FlipX      bool           `json:"flipX"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Clone returns a copy that shares no mutable state with t.
func (t Tile) Clone() Tile {
	if t.Properties != nil {
		t.Properties = maps.Clone(t.Properties)
	}
	return t
}

// Equal reports structural equality, including properties.
func (t Tile) Equal(o Tile) bool {
	if t.TileID != o.TileID || t.FlipX != o.FlipX || len(t.Properties) != len(o.Properties) {
		return false
	}
	for k, v := range t.Properties {
		ov, ok := o.Properties[k]
		if !ok || !reflect.DeepEqual(ov, v) {
			return false
		}
	}
	return true
}

// ErrPropertyType is returned for a tile property that is not a string,
// number, boolean or null.
var ErrPropertyType = errors.New("levels: unsupported property type")

func (t Tile) validate() error {
	for k, v := range t.Properties {
		switch v.(type) {
		case nil, string, float64, bool:
		default:
			return fmt.Errorf("%w: %q is %T", ErrPropertyType, k, v)
		}
	}
	return nil
}

func validateTiles(data map[Point]Tile) error {
	for p, t := range data {
		if err := t.validate(); err != nil {
			return fmt.Errorf("tile %s: %w", p, err)
		}
	}
	return nil
}

// SelectionRect is an inclusive-origin tile rectangle of W x H cells.
type SelectionRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Normalize builds a rect from two corner cells in any order.
func Normalize(x0, y0, x1, y1 int) SelectionRect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return SelectionRect{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1}
}

func (r SelectionRect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// CustomBrush is an arbitrary stamp. Keys are 0-based offsets inside
// [0,Width) x [0,Height).
type CustomBrush struct {
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Data   map[Point]Tile `json:"data"`
}

// SingleTileBrush is the 1x1 brush used by the plain pencil tool.
func SingleTileBrush(id int) CustomBrush {
	return CustomBrush{Width: 1, Height: 1, Data: map[Point]Tile{{}: {TileID: id}}}
}

func (b CustomBrush) Clone() CustomBrush {
	out := CustomBrush{Width: b.Width, Height: b.Height, Data: make(map[Point]Tile, len(b.Data))}
	for k, t := range b.Data {
		out.Data[k] = t.Clone()
	}
	return out
}

func (b CustomBrush) Equal(o CustomBrush) bool {
	if b.Width != o.Width || b.Height != o.Height || len(b.Data) != len(o.Data) {
		return false
	}
	for k, t := range b.Data {
		ot, ok := o.Data[k]
		if !ok || !t.Equal(ot) {
			return false
		}
	}
	return true
}
