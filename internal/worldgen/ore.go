package worldgen

import (
	"math"

	"mad-terrain/internal/core"
)

// OreDefinition describes one resource band. Rarity must be positive; higher
// is rarer.
type OreDefinition struct {
	Primary   core.Tile
	Alternate core.Tile
	MinDepth  int
	MaxDepth  int
	PeakDepth float64
	Rarity    float64
}

// Contains reports whether y lies within the definition's depth band.
func (o OreDefinition) Contains(y int) bool {
	return y >= o.MinDepth && y <= o.MaxDepth
}

// depthProbability is the noise-free selection probability at y.
func (o OreDefinition) depthProbability(y int) float64 {
	depthFactor := 1 - math.Abs(float64(y)-o.PeakDepth)/float64(o.MaxDepth-o.MinDepth)
	return depthFactor / o.Rarity
}

// DefaultOres returns the stock ore table, most common first.
func DefaultOres() []OreDefinition {
	return []OreDefinition{
		{Primary: StoneCoal, Alternate: StoneCoalAlt, MinDepth: 5, MaxDepth: 80, PeakDepth: 20, Rarity: 2},
		{Primary: StoneIron, Alternate: StoneIronAlt, MinDepth: 10, MaxDepth: 70, PeakDepth: 30, Rarity: 3},
		{Primary: StoneSilver, Alternate: StoneSilverAlt, MinDepth: 20, MaxDepth: 60, PeakDepth: 40, Rarity: 5},
		{Primary: StoneGold, Alternate: StoneGoldAlt, MinDepth: 30, MaxDepth: 90, PeakDepth: 60, Rarity: 7},
		{Primary: StoneDiamond, Alternate: StoneDiamondAlt, MinDepth: 50, MaxDepth: 95, PeakDepth: 70, Rarity: 9},
		{Primary: StoneRuby, Alternate: StoneRubyAlt, MinDepth: 40, MaxDepth: 100, PeakDepth: 80, Rarity: 10},
	}
}

// OreTable resolves resource tiles with a linear first-match scan. Reordering
// the definitions changes output.
type OreTable struct {
	defs  []OreDefinition
	noise *NoiseField
}

// NewOreTable binds definitions to the ore noise channel.
func NewOreTable(defs []OreDefinition, noise *NoiseField) *OreTable {
	return &OreTable{defs: append([]OreDefinition(nil), defs...), noise: noise}
}

// Definitions returns a copy of the configured definitions.
func (t *OreTable) Definitions() []OreDefinition {
	return append([]OreDefinition(nil), t.defs...)
}

// Probability returns the selection probability of definition i at (x, y),
// or 0 when y is outside its band.
func (t *OreTable) Probability(i, x, y int) float64 {
	if i < 0 || i >= len(t.defs) || !t.defs[i].Contains(y) {
		return 0
	}
	return t.defs[i].depthProbability(y) * t.noise.Sample(float64(x), float64(y)) * 2
}

// Resolve decides whether cell (x, y) holds ore. Each matching band gets one
// draw in table order; the first success picks its primary or alternate tile
// with equal chance.
func (t *OreTable) Resolve(x, y int, rng core.Random) (core.Tile, bool) {
	for i, def := range t.defs {
		if !def.Contains(y) {
			continue
		}
		if rng.Float64() < t.Probability(i, x, y) {
			if rng.Float64() < 0.5 {
				return def.Primary, true
			}
			return def.Alternate, true
		}
	}
	return core.None, false
}
