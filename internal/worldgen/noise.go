package worldgen

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Basis names the coherent 2D noise primitive behind a NoiseField.
type Basis string

const (
	BasisSimplex Basis = "simplex"
	BasisPerlin  Basis = "perlin"
)

// NoiseParams configures one noise channel.
type NoiseParams struct {
	Offset            [2]float64 `yaml:"offset,flow"`
	StartFrequency    float64    `yaml:"start_frequency"`
	Persistence       float64    `yaml:"persistence"`
	FrequencyModifier float64    `yaml:"frequency_modifier"`
	Octaves           int        `yaml:"octaves"`
	RangeMin          float64    `yaml:"range_min"`
	RangeMax          float64    `yaml:"range_max"`
}

// NoiseSet holds the five independent channels used by the generator.
type NoiseSet struct {
	Height NoiseParams `yaml:"height"`
	Stone  NoiseParams `yaml:"stone"`
	Cave   NoiseParams `yaml:"cave"`
	Ore    NoiseParams `yaml:"ore"`
	Tunnel NoiseParams `yaml:"tunnel"`
}

// DefaultNoiseParams mirrors the stock channel settings.
func DefaultNoiseParams() NoiseParams {
	return NoiseParams{
		StartFrequency:    0.02,
		Persistence:       0.5,
		FrequencyModifier: 2,
		Octaves:           4,
		RangeMin:          10,
		RangeMax:          30,
	}
}

// DefaultNoiseSet returns per-channel defaults.
func DefaultNoiseSet() NoiseSet {
	cave := DefaultNoiseParams()
	cave.StartFrequency = 0.06
	ore := DefaultNoiseParams()
	ore.StartFrequency = 0.1
	tunnel := DefaultNoiseParams()
	tunnel.StartFrequency = 0.05
	stone := DefaultNoiseParams()
	stone.StartFrequency = 0.08
	return NoiseSet{
		Height: DefaultNoiseParams(),
		Stone:  stone,
		Cave:   cave,
		Ore:    ore,
		Tunnel: tunnel,
	}
}

// channel salts keep the five channels decorrelated under one world seed.
const (
	saltHeight int64 = 11
	saltStone  int64 = 23
	saltCave   int64 = 37
	saltOre    int64 = 41
	saltTunnel int64 = 53
)

type primitive interface {
	Eval2(x, y float64) float64
}

// perlinPrimitive maps go-perlin's signed output into [0,1].
type perlinPrimitive struct {
	p *perlin.Perlin
}

func (pp perlinPrimitive) Eval2(x, y float64) float64 {
	v := (pp.p.Noise2D(x, y) + 1) / 2
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func newPrimitive(seed int64, basis Basis) primitive {
	if basis == BasisPerlin {
		return perlinPrimitive{p: perlin.NewPerlin(2, 2, 1, seed)}
	}
	return opensimplex.NewNormalized(seed)
}

// NoiseField is a deterministic multi-octave sampler. Sample is pure.
type NoiseField struct {
	params NoiseParams
	prim   primitive
}

// NewNoiseField builds a sampler for params over the chosen basis.
func NewNoiseField(seed int64, params NoiseParams, basis Basis) *NoiseField {
	return &NoiseField{params: params, prim: newPrimitive(seed, basis)}
}

// Params returns the channel parameters.
func (n *NoiseField) Params() NoiseParams { return n.params }

// Sample returns the normalized octave sum at (x, y), in [0, 1].
func (n *NoiseField) Sample(x, y float64) float64 {
	p := n.params
	x += p.Offset[0]
	y += p.Offset[1]

	amplitude := 1.0
	frequency := p.StartFrequency
	var sum, amplitudeSum float64
	for i := 0; i < p.Octaves; i++ {
		sum += amplitude * n.prim.Eval2(x*frequency, y*frequency)
		amplitudeSum += amplitude
		amplitude *= p.Persistence
		frequency *= p.FrequencyModifier
	}
	if amplitudeSum == 0 {
		return 0
	}
	v := sum / amplitudeSum
	// guard against rounding drift at the edges
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RangeMap linearly maps v from [inMin, inMax] to [outMin, outMax].
func RangeMap(v, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// noiseFields bundles the instantiated channels for one seed.
type noiseFields struct {
	height, stone, cave, ore, tunnel *NoiseField
}

func newNoiseFields(seed int64, set NoiseSet, basis Basis) noiseFields {
	return noiseFields{
		height: NewNoiseField(seed+saltHeight, set.Height, basis),
		stone:  NewNoiseField(seed+saltStone, set.Stone, basis),
		cave:   NewNoiseField(seed+saltCave, set.Cave, basis),
		ore:    NewNoiseField(seed+saltOre, set.Ore, basis),
		tunnel: NewNoiseField(seed+saltTunnel, set.Tunnel, basis),
	}
}
