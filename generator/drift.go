package generator

import (
	"math"
	"math/rand/v2"

	"github.com/RezixDev/map-editor/common"
	"github.com/aquilax/go-perlin"
)

// DriftMode selects how the terrain walker moves vertically between platforms.
type DriftMode string

const (
	DriftRandom DriftMode = "random"
	DriftPerlin DriftMode = "perlin"
)

// maxDrift bounds the vertical step between consecutive platforms.
const maxDrift = 2

type drifter interface {
	next(y int) int
}

type randomDrift struct {
	rng *rand.Rand
}

func (d randomDrift) next(y int) int {
	return y + d.rng.IntN(2*maxDrift+1) - maxDrift
}

// perlinDrift steers towards a smooth noise curve across the band, still
// moving at most maxDrift per platform.
type perlinDrift struct {
	noise  *perlin.Perlin
	step   int
	lo, hi float64
}

func newPerlinDrift(rng *rand.Rand, lo, hi int) *perlinDrift {
	return &perlinDrift{
		noise: perlin.NewPerlin(2, 2, 3, rng.Int64()),
		lo:    float64(lo),
		hi:    float64(hi),
	}
}

func (d *perlinDrift) next(y int) int {
	d.step++
	t := common.ClampF(0.5+d.noise.Noise1D(float64(d.step)*0.35), 0, 1)
	target := int(math.Round(common.Lerp(d.lo, d.hi, t)))
	delta := max(-maxDrift, min(target-y, maxDrift))
	return y + delta
}

func (g *Generator) newDrift(lo, hi int) drifter {
	if g.drift == DriftPerlin {
		return newPerlinDrift(g.rng, lo, hi)
	}
	return randomDrift{rng: g.rng}
}
