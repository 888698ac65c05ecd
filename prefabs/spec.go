package prefabs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/RezixDev/map-editor/levels"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// TileGroupSpec is the YAML form of a smart component.
type TileGroupSpec struct {
	Name               string   `yaml:"name"`
	Role               string   `yaml:"role"`
	Height             int      `yaml:"height"`
	PreviewWidth       int      `yaml:"preview_width"`
	Left               []int    `yaml:"left"`
	Right              []int    `yaml:"right"`
	Middle             [][]int  `yaml:"middle"`
	Single             []int    `yaml:"single"`
	CanResize          bool     `yaml:"can_resize"`
	CanFlip            bool     `yaml:"can_flip"`
	AllowInGeneration  *bool    `yaml:"allow_in_generation"`
	VerticalAlignments []string `yaml:"vertical_alignments"`
	VerticalAlignment  string   `yaml:"vertical_alignment"`
	Density            int      `yaml:"density"`
}

// ToGroup validates the spec and fills defaults: density 5, allowed in
// generation, height from the tallest column.
func (s TileGroupSpec) ToGroup() (levels.TileGroup, error) {
	role := levels.GroupRole(strings.ToLower(strings.TrimSpace(s.Role)))
	switch role {
	case levels.RoleTerrain, levels.RoleDecoration, levels.RoleTerrainDecoration:
	case "":
		role = levels.RoleTerrain
	default:
		return levels.TileGroup{}, fmt.Errorf("prefabs: group %q: unknown role %q", s.Name, s.Role)
	}

	g := levels.TileGroup{
		Name:              s.Name,
		Role:              role,
		Height:            s.Height,
		PreviewWidth:      s.PreviewWidth,
		Left:              s.Left,
		Right:             s.Right,
		Middle:            s.Middle,
		Single:            s.Single,
		CanResize:         s.CanResize,
		CanFlip:           s.CanFlip && !s.CanResize,
		AllowInGeneration: s.AllowInGeneration == nil || *s.AllowInGeneration,
		VerticalAlignment: levels.Alignment(strings.ToLower(s.VerticalAlignment)),
		Density:           s.Density,
	}
	for _, a := range s.VerticalAlignments {
		al := levels.Alignment(strings.ToLower(strings.TrimSpace(a)))
		if al != levels.AlignTop && al != levels.AlignBottom {
			return levels.TileGroup{}, fmt.Errorf("prefabs: group %q: unknown alignment %q", s.Name, a)
		}
		if !slices.Contains(g.VerticalAlignments, al) {
			g.VerticalAlignments = append(g.VerticalAlignments, al)
		}
	}
	if g.Density == 0 {
		g.Density = 5
	}
	g.Density = g.ClampedDensity()
	if g.Height <= 0 {
		g.Height = tallest(s)
	}
	if g.Height <= 0 {
		return levels.TileGroup{}, fmt.Errorf("prefabs: group %q has no tiles", s.Name)
	}
	return g, nil
}

func tallest(s TileGroupSpec) int {
	h := max(len(s.Left), len(s.Right), len(s.Single))
	for _, col := range s.Middle {
		h = max(h, len(col))
	}
	return h
}

// LoadGroups loads every smart component spec, ordered by file name.
func LoadGroups() ([]levels.TileGroup, error) {
	names, err := SpecNames()
	if err != nil {
		return nil, err
	}
	groups := make([]levels.TileGroup, 0, len(names))
	for _, name := range names {
		spec, err := LoadSpec[TileGroupSpec](name)
		if err != nil {
			return nil, err
		}
		if spec.Name == "" {
			spec.Name = strings.TrimSuffix(name, ".yaml")
		}
		g, err := spec.ToGroup()
		if err != nil {
			return nil, fmt.Errorf("prefabs: %s: %w", name, err)
		}
		groups = append(groups, g)
	}
	return groups, nil
}
