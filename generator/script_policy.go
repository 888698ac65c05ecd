package generator

import (
	"fmt"

	"github.com/RezixDev/map-editor/logger"
	"github.com/RezixDev/map-editor/prefabs"
	"github.com/d5/tengo/v2"
	"go.uber.org/zap"
)

// ScriptPolicy reads density tuning from a tengo script. The script gets a
// global `density` and may define min_gap, max_gap, attach_chance, spacing,
// top_divisor and bottom_divisor. Anything it leaves out falls back to
// DefaultPolicy.
type ScriptPolicy struct {
	name     string
	compiled *tengo.Compiled
	fallback DefaultPolicy
	cache    map[int]scriptValues
}

type scriptValues struct {
	minGap, maxGap int
	attach         float64
	spacing        float64
	topDiv         float64
	bottomDiv      float64
}

// NewScriptPolicy compiles src once; values are evaluated lazily per density.
func NewScriptPolicy(name string, src []byte) (*ScriptPolicy, error) {
	script := tengo.NewScript(src)
	if err := script.Add("density", 5); err != nil {
		return nil, err
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("generator: compile policy %s: %w", name, err)
	}
	return &ScriptPolicy{name: name, compiled: compiled, cache: map[int]scriptValues{}}, nil
}

// LoadScriptPolicy loads a policy script from the prefab scripts.
func LoadScriptPolicy(name string) (*ScriptPolicy, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("generator: load policy %s: %w", name, err)
	}
	return NewScriptPolicy(name, src)
}

func (p *ScriptPolicy) values(density int) scriptValues {
	if v, ok := p.cache[density]; ok {
		return v
	}
	v := scriptValues{
		attach:    p.fallback.AttachChance(density),
		spacing:   p.fallback.Spacing(density),
		topDiv:    defaultTopDivisor,
		bottomDiv: defaultBottomDivisor,
	}
	v.minGap, v.maxGap = p.fallback.Gaps(density)

	if err := p.run(density); err != nil {
		logger.Warn("policy script failed, using defaults", zap.String("script", p.name), zap.Int("density", density), zap.Error(err))
		p.cache[density] = v
		return v
	}
	c := p.compiled
	if c.IsDefined("min_gap") {
		v.minGap = c.Get("min_gap").Int()
	}
	if c.IsDefined("max_gap") {
		v.maxGap = c.Get("max_gap").Int()
	}
	if c.IsDefined("attach_chance") {
		v.attach = c.Get("attach_chance").Float()
	}
	if c.IsDefined("spacing") {
		v.spacing = c.Get("spacing").Float()
	}
	if c.IsDefined("top_divisor") {
		v.topDiv = c.Get("top_divisor").Float()
	}
	if c.IsDefined("bottom_divisor") {
		v.bottomDiv = c.Get("bottom_divisor").Float()
	}
	p.cache[density] = v
	return v
}

func (p *ScriptPolicy) run(density int) error {
	if err := p.compiled.Set("density", density); err != nil {
		return err
	}
	return p.compiled.Run()
}

func (p *ScriptPolicy) Gaps(density int) (int, int) {
	v := p.values(density)
	return v.minGap, v.maxGap
}

func (p *ScriptPolicy) AttachChance(density int) float64 {
	return p.values(density).attach
}

func (p *ScriptPolicy) Spacing(density int) float64 {
	return p.values(density).spacing
}

func (p *ScriptPolicy) ScatterCount(area, density int, top bool) int {
	v := p.values(density)
	return scatterCount(area, density, top, v.topDiv, v.bottomDiv)
}
