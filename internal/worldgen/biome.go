package worldgen

import "mad-terrain/internal/core"

// Biome enumerates the terrain categories chosen once per chunk.
type Biome uint8

const (
	Plains Biome = iota
	Desert
	Snow
	Ocean
)

var biomeNames = [...]string{
	Plains: "plains",
	Desert: "desert",
	Snow:   "snow",
	Ocean:  "ocean",
}

func (b Biome) String() string {
	if int(b) < len(biomeNames) {
		return biomeNames[b]
	}
	return "unknown"
}

// ParseBiome resolves a biome name.
func ParseBiome(s string) (Biome, bool) {
	for i, name := range biomeNames {
		if name == s {
			return Biome(i), true
		}
	}
	return 0, false
}

// Classify maps a draw in [0,1) to a biome: the first threshold exceeding the
// draw wins and Ocean catches everything else.
func Classify(thresholds [4]float64, draw float64) Biome {
	for i, t := range thresholds {
		if draw < t {
			return Biome(i)
		}
	}
	return Ocean
}

// BiomePolicy holds the per-biome tile and height rules.
type BiomePolicy struct {
	HeightAdjust    int
	ForceOceanLevel bool
	Surface         core.Tile
	Subsurface      core.Tile
	Background      core.Tile
	StoneVariant    core.Tile
	Decorate        bool
	Trees           bool
}

var biomePolicies = map[Biome]BiomePolicy{
	Plains: {Surface: DirtGrass, Subsurface: Dirt, Background: DirtDark, StoneVariant: StoneGrass, Decorate: true, Trees: true},
	Desert: {HeightAdjust: -2, Surface: DirtSand, Subsurface: Sand, Background: SandDark, StoneVariant: StoneSand},
	Snow:   {HeightAdjust: 3, Surface: DirtSnow, Subsurface: Dirt, Background: DirtDark, StoneVariant: StoneSnow},
	Ocean:  {ForceOceanLevel: true, Surface: Sand, Subsurface: Sand, Background: DirtDark, StoneVariant: StoneSand},
}

// PolicyFor returns the rules for b. Unknown biomes fall back to Plains.
func PolicyFor(b Biome) BiomePolicy {
	if p, ok := biomePolicies[b]; ok {
		return p
	}
	return biomePolicies[Plains]
}

// AdjustHeight applies the biome height rule to a raw surface height.
func (p BiomePolicy) AdjustHeight(raw, oceanLevel int) int {
	if p.ForceOceanLevel {
		return oceanLevel
	}
	return raw + p.HeightAdjust
}

// BackgroundAt returns the background tile at row y of a column whose surface
// is at surface. Above the surface there is no background.
func (p BiomePolicy) BackgroundAt(y, surface int) core.Tile {
	switch {
	case y < surface-subsurfaceRows:
		return StoneDark
	case y <= surface:
		return p.Background
	default:
		return core.None
	}
}

const (
	subsurfaceRows  = 3
	stoneBlendRows  = 4
	grassChance     = 0.15
	rockChance      = 0.05
	treeChance      = 0.05
	treeTrunkMin    = 3
	treeTrunkMax    = 6
	treeCrownWidth  = 3
	treeCrownHeight = 3
)

// decoration rolls the surface decoration above a Plains surface. Grass is
// checked first, then rock.
func (p BiomePolicy) decoration(rng core.Random) core.Tile {
	if !p.Decorate {
		return core.None
	}
	if rng.Float64() < grassChance {
		return grassVariants[rng.IntRange(1, 5)-1]
	}
	if rng.Float64() < rockChance {
		return Rock
	}
	return core.None
}
