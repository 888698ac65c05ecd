package generator

import "math"

// Policy turns a group's density (1..10) into spacing and frequency numbers.
// Higher density must never mean sparser output; beyond that the numbers are
// tuning, not contract.
type Policy interface {
	// Gaps is the horizontal gap range between terrain platforms.
	Gaps(density int) (minGap, maxGap int)
	// AttachChance is the per-column chance of a terrain decoration.
	AttachChance(density int) float64
	// Spacing is the minimum distance between scattered instances of one group.
	Spacing(density int) float64
	// ScatterCount is how many scattered instances a group targets.
	ScatterCount(area, density int, top bool) int
}

// DefaultPolicy carries the stock formulas.
type DefaultPolicy struct {
	TopDivisor    float64
	BottomDivisor float64
}

const (
	defaultTopDivisor    = 400
	defaultBottomDivisor = 200
)

func (p DefaultPolicy) Gaps(density int) (int, int) {
	minGap := max(1, 7-int(math.Ceil(float64(density)/1.5)))
	maxGap := max(minGap+1, 12-density)
	return minGap, maxGap
}

func (p DefaultPolicy) AttachChance(density int) float64 {
	return float64(density) / 5 * 0.3
}

func (p DefaultPolicy) Spacing(density int) float64 {
	return float64(max(3, 15-density))
}

func (p DefaultPolicy) ScatterCount(area, density int, top bool) int {
	return scatterCount(area, density, top, p.TopDivisor, p.BottomDivisor)
}

func scatterCount(area, density int, top bool, topDiv, bottomDiv float64) int {
	div := bottomDiv
	if top {
		div = topDiv
	}
	if div <= 0 {
		div = defaultBottomDivisor
		if top {
			div = defaultTopDivisor
		}
	}
	return int(float64(area) * (float64(density) / 5) / div)
}

// sanitized wraps a policy and enforces the invariants the walker and the
// scatter pass rely on, whatever the underlying policy returns.
type sanitized struct {
	Policy
}

func (s sanitized) Gaps(density int) (int, int) {
	minGap, maxGap := s.Policy.Gaps(density)
	minGap = max(1, minGap)
	if maxGap <= minGap {
		maxGap = minGap + 1
	}
	return minGap, maxGap
}

func (s sanitized) AttachChance(density int) float64 {
	c := s.Policy.AttachChance(density)
	if math.IsNaN(c) {
		return 0
	}
	return max(0, min(c, 1))
}

func (s sanitized) Spacing(density int) float64 {
	d := s.Policy.Spacing(density)
	if math.IsNaN(d) {
		return 0
	}
	return max(0, d)
}

func (s sanitized) ScatterCount(area, density int, top bool) int {
	return max(0, s.Policy.ScatterCount(area, density, top))
}
