package levels

import "slices"

// GroupRole selects which generator pass consumes a TileGroup.
type GroupRole string

const (
	RoleTerrain           GroupRole = "terrain"
	RoleDecoration        GroupRole = "decoration"
	RoleTerrainDecoration GroupRole = "terrain-decoration"
)

type Alignment string

const (
	AlignTop    Alignment = "top"
	AlignBottom Alignment = "bottom"
)

// TileGroup is a stretchable "smart component": a left cap, a repeating run of
// middle columns and a right cap, plus a single column used at width 1.
// Columns list tile ids top to bottom and wrap when shorter than Height.
type TileGroup struct {
	Name               string      `json:"name" yaml:"name"`
	Left               []int       `json:"left" yaml:"left"`
	Right              []int       `json:"right" yaml:"right"`
	Middle             [][]int     `json:"middle" yaml:"middle"`
	Single             []int       `json:"single" yaml:"single"`
	Height             int         `json:"height" yaml:"height"`
	PreviewWidth       int         `json:"previewWidth,omitempty" yaml:"preview_width,omitempty"`
	Role               GroupRole   `json:"role" yaml:"role"`
	CanResize          bool        `json:"canResize" yaml:"can_resize"`
	CanFlip            bool        `json:"canFlip" yaml:"can_flip"`
	AllowInGeneration  bool        `json:"allowInGeneration" yaml:"allow_in_generation"`
	VerticalAlignments []Alignment `json:"verticalAlignments,omitempty" yaml:"vertical_alignments,omitempty"`
	// VerticalAlignment is the single-value field older documents carry.
	VerticalAlignment Alignment `json:"verticalAlignment,omitempty" yaml:"vertical_alignment,omitempty"`
	Density           int       `json:"density" yaml:"density"`
}

// Aligned reports whether a is among the group's alignments, falling back to
// the legacy single value when the list is empty.
func (g TileGroup) Aligned(a Alignment) bool {
	if len(g.VerticalAlignments) > 0 {
		return slices.Contains(g.VerticalAlignments, a)
	}
	return g.VerticalAlignment == a
}

// ClampedDensity keeps density within 1..10.
func (g TileGroup) ClampedDensity() int {
	switch {
	case g.Density < 1:
		return 1
	case g.Density > 10:
		return 10
	}
	return g.Density
}

func (g TileGroup) Clone() TileGroup {
	out := g
	out.Left = slices.Clone(g.Left)
	out.Right = slices.Clone(g.Right)
	out.Single = slices.Clone(g.Single)
	out.VerticalAlignments = slices.Clone(g.VerticalAlignments)
	if g.Middle != nil {
		out.Middle = make([][]int, len(g.Middle))
		for i, col := range g.Middle {
			out.Middle[i] = slices.Clone(col)
		}
	}
	return out
}
