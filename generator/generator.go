// Package generator builds whole levels out of smart components: a terrain
// walker lays platforms left to right, terrain decorations sit on top of them,
// and a scatter pass fills the background while avoiding everything placed.
package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/RezixDev/map-editor/levels"
	"github.com/RezixDev/map-editor/logger"
	"go.uber.org/zap"
)

var (
	// ErrNoTerrainGroups means no eligible terrain group was supplied. Callers
	// treat it as "nothing to do".
	ErrNoTerrainGroups = errors.New("generator: no terrain groups")
	ErrEmptyMap        = errors.New("generator: map size must be positive")
)

// Output layer positions.
const (
	BackgroundLayer = iota
	CollisionLayer
	TerrainLayer
)

// SolidTileID marks a cell in the collision layer.
const SolidTileID = 1

// Options configures a Generator. Zero values pick defaults.
type Options struct {
	// Rand drives every random decision. A fixed seed gives identical levels.
	Rand   *rand.Rand
	Policy Policy
	Drift  DriftMode
}

type Generator struct {
	rng    *rand.Rand
	policy Policy
	drift  DriftMode
}

func New(opts Options) *Generator {
	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	policy := opts.Policy
	if policy == nil {
		policy = DefaultPolicy{}
	}
	drift := opts.Drift
	if drift == "" {
		drift = DriftRandom
	}
	return &Generator{rng: rng, policy: sanitized{policy}, drift: drift}
}

// NewSeeded is New with a PCG source seeded from seed.
func NewSeeded(seed uint64, opts Options) *Generator {
	opts.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return New(opts)
}

// Configure builds a generator from plain settings: a zero seed is time
// based and an empty script name keeps DefaultPolicy.
func Configure(seed uint64, drift, script string) (*Generator, error) {
	opts := Options{Drift: DriftMode(drift)}
	switch opts.Drift {
	case "", DriftRandom, DriftPerlin:
	default:
		return nil, fmt.Errorf("generator: unknown drift mode %q", drift)
	}
	if script != "" {
		p, err := LoadScriptPolicy(script)
		if err != nil {
			return nil, err
		}
		opts.Policy = p
	}
	if seed == 0 {
		return New(opts), nil
	}
	return NewSeeded(seed, opts), nil
}

// Eligible drops groups that opted out of generation.
func Eligible(groups []levels.TileGroup) []levels.TileGroup {
	out := make([]levels.TileGroup, 0, len(groups))
	for _, g := range groups {
		if g.AllowInGeneration {
			out = append(out, g)
		}
	}
	return out
}

type roles struct {
	terrain           []levels.TileGroup
	decoration        []levels.TileGroup
	terrainDecoration []levels.TileGroup
}

func partition(groups []levels.TileGroup) roles {
	var r roles
	for _, g := range groups {
		switch g.Role {
		case levels.RoleTerrain:
			r.terrain = append(r.terrain, g)
		case levels.RoleDecoration:
			r.decoration = append(r.decoration, g)
		case levels.RoleTerrainDecoration:
			r.terrainDecoration = append(r.terrainDecoration, g)
		}
	}
	return r
}

// world is the level under construction.
type world struct {
	width, height int
	background    levels.Layer
	collision     levels.Layer
	terrain       levels.Layer
}

func (w *world) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < w.width && y < w.height
}

// Generate builds [background, collision, terrain] for a width x height map.
// Groups are used as given; filter with Eligible first.
func (g *Generator) Generate(width, height int, groups []levels.TileGroup) ([]levels.Layer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyMap
	}
	r := partition(groups)
	if len(r.terrain) == 0 {
		return nil, ErrNoTerrainGroups
	}

	w := &world{
		width:      width,
		height:     height,
		background: levels.NewLayer("Background"),
		collision:  levels.NewLayer("Collision"),
		terrain:    levels.NewLayer("Terrain"),
	}
	w.collision.Visible = false

	for _, tg := range r.terrain {
		g.walkTerrain(w, tg, r.terrainDecoration)
	}
	placed := g.scatter(w, r.decoration)

	logger.Debug("level generated",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("terrain_groups", len(r.terrain)),
		zap.Int("terrain_cells", w.terrain.Len()),
		zap.Int("collision_cells", w.collision.Len()),
		zap.Int("scattered", placed),
	)
	return []levels.Layer{w.background, w.collision, w.terrain}, nil
}
