package worldgen

import "mad-terrain/internal/core"

// Tile catalog. Values are stable: snapshots and stores persist them.
const (
	DirtGrass core.Tile = iota + 1
	Dirt
	StoneGrass
	Stone
	DirtSand
	StoneSand
	DirtSnow
	StoneSnow
	StoneSilver
	StoneSilverAlt
	StoneIron
	StoneIronAlt
	StoneGold
	StoneGoldAlt
	StoneDiamond
	StoneDiamondAlt
	StoneCoal
	StoneCoalAlt
	StoneRuby
	StoneRubyAlt
	Sand
	SandDark
	SnowBlock
	Ice
	Lava
	Water
	TrunkBottom
	TrunkMid
	Leaves
	Rock
	Grass1
	Grass2
	Grass3
	Grass4
	StoneDark
	DirtDark

	tileCount
)

var tileNames = [...]string{
	core.None:       "none",
	DirtGrass:       "dirt_grass",
	Dirt:            "dirt",
	StoneGrass:      "stone_grass",
	Stone:           "stone",
	DirtSand:        "dirt_sand",
	StoneSand:       "stone_sand",
	DirtSnow:        "dirt_snow",
	StoneSnow:       "stone_snow",
	StoneSilver:     "stone_silver",
	StoneSilverAlt:  "stone_silver_alt",
	StoneIron:       "stone_iron",
	StoneIronAlt:    "stone_iron_alt",
	StoneGold:       "stone_gold",
	StoneGoldAlt:    "stone_gold_alt",
	StoneDiamond:    "stone_diamond",
	StoneDiamondAlt: "stone_diamond_alt",
	StoneCoal:       "stone_coal",
	StoneCoalAlt:    "stone_coal_alt",
	StoneRuby:       "stone_ruby",
	StoneRubyAlt:    "stone_ruby_alt",
	Sand:            "sand",
	SandDark:        "sand_dark",
	SnowBlock:       "snow",
	Ice:             "ice",
	Lava:            "lava",
	Water:           "water",
	TrunkBottom:     "trunk_bottom",
	TrunkMid:        "trunk_mid",
	Leaves:          "leaves",
	Rock:            "rock",
	Grass1:          "grass_1",
	Grass2:          "grass_2",
	Grass3:          "grass_3",
	Grass4:          "grass_4",
	StoneDark:       "stone_dark",
	DirtDark:        "dirt_dark",
}

var tilesByName = func() map[string]core.Tile {
	m := make(map[string]core.Tile, len(tileNames))
	for i, name := range tileNames {
		m[name] = core.Tile(i)
	}
	return m
}()

// TileCount is the number of catalog entries including None.
const TileCount = int(tileCount)

// TileName returns the catalog name for t.
func TileName(t core.Tile) string {
	if int(t) < len(tileNames) {
		return tileNames[t]
	}
	return "unknown"
}

// TileByName resolves a catalog name.
func TileByName(name string) (core.Tile, bool) {
	t, ok := tilesByName[name]
	return t, ok
}

var grassVariants = [...]core.Tile{Grass1, Grass2, Grass3, Grass4}

// IsOre reports whether t is one of the ore tiles.
func IsOre(t core.Tile) bool {
	return t >= StoneSilver && t <= StoneRubyAlt
}

// IsStone reports whether t is plain stone or a biome stone variant.
func IsStone(t core.Tile) bool {
	switch t {
	case Stone, StoneGrass, StoneSand, StoneSnow:
		return true
	}
	return false
}
