package worldgen

import (
	"testing"

	"mad-terrain/internal/core"
)

func TestTileCatalogNamesRoundTrip(t *testing.T) {
	seen := map[string]bool{}
	for i := 1; i < TileCount; i++ {
		tile := core.Tile(i)
		name := TileName(tile)
		if name == "" || name == "unknown" {
			t.Fatalf("tile %d has no name", i)
		}
		if seen[name] {
			t.Fatalf("name %q used twice", name)
		}
		seen[name] = true
		if got, ok := TileByName(name); !ok || got != tile {
			t.Fatalf("TileByName(%q) = %d,%v want %d", name, got, ok, tile)
		}
	}
}

func TestSnowTileAndBiomeAreDistinct(t *testing.T) {
	if got, ok := TileByName("snow"); !ok || got != SnowBlock {
		t.Fatalf("TileByName(snow) = %d,%v want %d", got, ok, SnowBlock)
	}
	if b, ok := ParseBiome("snow"); !ok || b != Snow {
		t.Fatalf("ParseBiome(snow) = %v,%v", b, ok)
	}
	if Palette()[SnowBlock] == Palette()[Stone] {
		t.Fatal("snow tile should not share the stone colour")
	}
	if PolicyFor(Snow).Surface != DirtSnow {
		t.Fatalf("snow biome surface = %s", TileName(PolicyFor(Snow).Surface))
	}
}
