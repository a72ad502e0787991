package worldgen

import (
	"testing"

	"mad-terrain/internal/core"
)

func isDecoration(t core.Tile) bool {
	switch t {
	case Grass1, Grass2, Grass3, Grass4, Rock, TrunkBottom, TrunkMid, Leaves:
		return true
	}
	return false
}

func TestPlainsDecorationRates(t *testing.T) {
	cfg := smallConfig()
	cfg.MapWidth = 2000
	cfg.CaveThreshold = 2
	cfg.CaveConnectivity = 0
	w := mustGenerate(t, mustGenerator(t, cfg), 19)

	var grass, rock, trunks int
	variants := map[core.Tile]int{}
	for x := cfg.MinX(); x < cfg.MinX()+cfg.MapWidth; x++ {
		surface, _ := w.SurfaceAt(x)
		for y := 0; y < cfg.MapDepth; y++ {
			tile := w.Grid.Foreground(x, y)
			switch tile {
			case Grass1, Grass2, Grass3, Grass4:
				if y != surface+1 {
					t.Fatalf("grass at (%d,%d), surface is %d", x, y, surface)
				}
				grass++
				variants[tile]++
			case Rock:
				if y != surface+1 {
					t.Fatalf("rock at (%d,%d), surface is %d", x, y, surface)
				}
				rock++
			case TrunkBottom:
				if y != surface+1 {
					t.Fatalf("tree rooted at (%d,%d), surface is %d", x, y, surface)
				}
				trunks++
			}
		}
	}

	// 2000 columns: grass ~15%, rock ~5% of the rest, trees ~5%.
	if grass < 200 || grass > 400 {
		t.Fatalf("grass on %d of 2000 columns, want about 300", grass)
	}
	if len(variants) != len(grassVariants) {
		t.Fatalf("saw %d grass variants, want %d", len(variants), len(grassVariants))
	}
	if rock < 40 || rock > 140 {
		t.Fatalf("rock on %d of 2000 columns, want about 85", rock)
	}
	if trunks < 50 || trunks > 160 {
		t.Fatalf("%d trees on 2000 columns, want about 100", trunks)
	}
}

func TestOnlyPlainsIsDecorated(t *testing.T) {
	cases := map[Biome][4]float64{
		Desert: {0, 1, 1, 1},
		Snow:   {0, 0, 1, 1},
		Ocean:  {0, 0, 0, 1},
	}
	for biome, thresholds := range cases {
		cfg := smallConfig()
		cfg.MapWidth = 1000
		cfg.BiomeThresholds = thresholds
		w := mustGenerate(t, mustGenerator(t, cfg), 23)
		for _, ch := range w.Chunks {
			if ch.Biome != biome {
				t.Fatalf("chunk %d biome = %s, want %s", ch.Index, ch.Biome, biome)
			}
		}
		for x := cfg.MinX(); x < cfg.MinX()+cfg.MapWidth; x++ {
			for y := 0; y < cfg.MapDepth; y++ {
				if tile := w.Grid.Foreground(x, y); isDecoration(tile) {
					t.Fatalf("%s: %s at (%d,%d)", biome, TileName(tile), x, y)
				}
			}
		}
	}
}

func TestLavaOnlyAboveStartDepth(t *testing.T) {
	cfg := smallConfig()
	cfg.MapWidth = 400
	cfg.MapDepth = 100
	cfg.LavaStartDepth = 20
	cfg.LavaChance = 0.3
	cfg.CaveThreshold = 0.35
	cfg.CaveConnectivity = 0
	noise := DefaultNoiseSet()
	noise.Height.RangeMin = 40
	noise.Height.RangeMax = 60
	gen, err := NewGenerator(cfg, noise, DefaultOres())
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	const seed = 11
	w := mustGenerate(t, gen, seed)
	caves := gen.pipeline(seed).caves

	var solidLava, caveLava int
	for x := cfg.MinX(); x < cfg.MinX()+cfg.MapWidth; x++ {
		surface, _ := w.SurfaceAt(x)
		for y := 0; y < cfg.MapDepth; y++ {
			tile := w.Grid.Foreground(x, y)
			inCave := caves.IsShallowCave(x, y, surface)
			if tile == Lava && y <= cfg.LavaStartDepth {
				t.Fatalf("lava at (%d,%d), start depth %d", x, y, cfg.LavaStartDepth)
			}
			if inCave && tile != core.None && tile != Lava {
				t.Fatalf("cave cell (%d,%d) holds %s", x, y, TileName(tile))
			}
			if tile != Lava {
				continue
			}
			if inCave {
				caveLava++
			} else {
				solidLava++
			}
		}
	}
	if solidLava == 0 {
		t.Fatal("expected lava in solid rock above the start depth")
	}
	if caveLava == 0 {
		t.Fatal("expected lava in caves above the start depth")
	}
}
