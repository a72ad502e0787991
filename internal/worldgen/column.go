package worldgen

import (
	"math"

	"mad-terrain/internal/core"
)

// ColumnGenerator fills chunks column by column.
type ColumnGenerator struct {
	cfg    Config
	height *NoiseField
	stone  *NoiseField
	ores   *OreTable
	caves  *CaveCarver
}

// NewColumnGenerator wires the column rules to their collaborators.
func NewColumnGenerator(cfg Config, height, stone *NoiseField, ores *OreTable, caves *CaveCarver) *ColumnGenerator {
	return &ColumnGenerator{cfg: cfg, height: height, stone: stone, ores: ores, caves: caves}
}

// SurfaceHeight returns the biome-adjusted surface row of column x.
func (g *ColumnGenerator) SurfaceHeight(x int, biome Biome) int {
	p := g.height.Params()
	v := g.height.Sample(float64(x), 1)
	raw := int(math.Floor(RangeMap(v, 0, 1, p.RangeMin, p.RangeMax)))
	return PolicyFor(biome).AdjustHeight(raw, g.cfg.OceanLevel)
}

// GenerateChunk writes columns [startX, endX) and returns their surface
// heights. Heights are computed for the whole chunk before any column is
// filled.
func (g *ColumnGenerator) GenerateChunk(startX, endX int, biome Biome, rng core.Random, sink core.Sink) []int {
	if endX <= startX {
		return nil
	}
	surfaces := make([]int, endX-startX)
	for x := startX; x < endX; x++ {
		surfaces[x-startX] = g.SurfaceHeight(x, biome)
	}
	policy := PolicyFor(biome)
	for x := startX; x < endX; x++ {
		surface := surfaces[x-startX]
		g.fillColumn(x, surface, policy, rng, sink)
		if policy.Trees && rng.Float64() < treeChance {
			plantTree(sink, x, surface+1, rng)
		}
	}
	return surfaces
}

func (g *ColumnGenerator) fillColumn(x, surface int, policy BiomePolicy, rng core.Random, sink core.Sink) {
	cfg := g.cfg
	for y := 0; y < cfg.MapDepth; y++ {
		sink.SetBackground(x, y, policy.BackgroundAt(y, surface))
		if g.caves.IsShallowCave(x, y, surface) {
			if y > cfg.LavaStartDepth && rng.Float64() < cfg.LavaChance {
				sink.SetForeground(x, y, Lava)
			}
			continue
		}

		var fg core.Tile
		switch {
		case y == surface:
			fg = policy.Surface
		case y < surface && surface-y <= subsurfaceRows:
			fg = policy.Subsurface
		case y < surface:
			fg = g.undergroundTile(x, y, surface, policy, rng)
		case policy.ForceOceanLevel && y <= surface+cfg.OceanDepth:
			fg = Water
		case y == surface+1:
			fg = policy.decoration(rng)
		}
		if fg != core.None {
			sink.SetForeground(x, y, fg)
		}
	}
}

func (g *ColumnGenerator) undergroundTile(x, y, surface int, policy BiomePolicy, rng core.Random) core.Tile {
	if t, ok := g.ores.Resolve(x, y, rng); ok {
		return t
	}
	if y > g.cfg.LavaStartDepth && rng.Float64() < g.cfg.LavaChance {
		return Lava
	}
	if surface-y <= subsurfaceRows+stoneBlendRows && g.stone.Sample(float64(x), float64(y)) > g.cfg.StoneBlendThreshold {
		return policy.StoneVariant
	}
	return Stone
}

// plantTree stamps a trunk rooted at (x, y) topped by a small leaf crown.
func plantTree(sink core.Sink, x, y int, rng core.Random) {
	trunk := rng.IntRange(treeTrunkMin, treeTrunkMax)
	sink.SetForeground(x, y, TrunkBottom)
	for i := 1; i < trunk-1; i++ {
		sink.SetForeground(x, y+i, TrunkMid)
	}
	for lx := -treeCrownWidth / 2; lx <= treeCrownWidth/2; lx++ {
		for ly := 0; ly < treeCrownHeight; ly++ {
			if lx == 0 && ly == 0 {
				continue
			}
			sink.SetForeground(x+lx, y+trunk-1+ly, Leaves)
		}
	}
}
