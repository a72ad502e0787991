package worldgen

import (
	"testing"

	"mad-terrain/internal/core"
)

func TestShallowCaveNeverNearSurface(t *testing.T) {
	cfg := DefaultConfig()
	caves := NewCaveCarver(cfg, constField(1))
	for _, surface := range []int{-5, 0, 12, 30} {
		for x := -200; x < 200; x += 7 {
			for y := surface - cfg.MinCaveDepth + 1; y < surface+20; y++ {
				if caves.IsShallowCave(x, y, surface) {
					t.Fatalf("cave at (%d,%d) within %d of surface %d", x, y, cfg.MinCaveDepth, surface)
				}
			}
		}
	}
	if !caves.IsShallowCave(0, 30-cfg.MinCaveDepth, 30) {
		t.Fatal("saturated cave noise should carve at the cave depth limit")
	}
}

func TestShallowCaveThresholdRisesWithDepth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CaveThreshold = 0.45
	caves := NewCaveCarver(cfg, constField(0.5))
	if !caves.IsShallowCave(0, 0, 100) {
		t.Fatal("at y=0 the threshold is 0.45, noise 0.5 should carve")
	}
	if caves.IsShallowCave(0, 30, 100) {
		t.Fatal("at y=30 the threshold is 0.55, noise 0.5 should not carve")
	}
}

func TestDeepCaveThresholdFallsWithDepth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CaveThreshold = 0.45
	caves := NewCaveCarver(cfg, constField(0.4))
	if caves.IsDeepCave(0, -1) {
		t.Fatal("near y=0 the threshold is about 0.45, noise 0.4 should not carve")
	}
	if !caves.IsDeepCave(0, -50) {
		t.Fatal("at y=-50 the threshold is 0.35, noise 0.4 should carve")
	}
}

func TestTunnelNoOrphans(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MapWidth = 60
	cfg.ChunkSize = 60
	cfg.MapDepth = 60
	cfg.CaveConnectivity = 1
	caves := NewCaveCarver(cfg, constField(0))
	tunnels := NewTunnelCarver(cfg, constField(1), caves)
	grid := core.NewTileGrid(core.Bounds{MinX: cfg.MinX(), MinY: 0, W: cfg.MapWidth, H: cfg.MapDepth})
	for i := range grid.ForegroundCells() {
		grid.ForegroundCells()[i] = Stone
	}
	if n := tunnels.Carve(grid, core.NewRNG(4)); n != 0 {
		t.Fatalf("carved %d tunnels with no caves in range", n)
	}
	for i, tile := range grid.ForegroundCells() {
		if tile != Stone {
			t.Fatalf("cell %d changed to %s without a nearby cave", i, TileName(tile))
		}
	}
}

func TestTunnelCarvesNearCaves(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MapWidth = 40
	cfg.ChunkSize = 40
	cfg.MapDepth = 40
	cfg.CaveConnectivity = 1
	caves := NewCaveCarver(cfg, constField(1))
	tunnels := NewTunnelCarver(cfg, constField(1), caves)
	grid := core.NewTileGrid(core.Bounds{MinX: cfg.MinX(), MinY: 0, W: cfg.MapWidth, H: cfg.MapDepth})
	if n := tunnels.Carve(grid, core.NewRNG(4)); n == 0 {
		t.Fatal("expected tunnels when every cell qualifies")
	}
	carved := 0
	for i, bg := range grid.BackgroundCells() {
		if bg == StoneDark {
			if grid.ForegroundCells()[i] != 0 {
				t.Fatalf("carved cell %d should have an air foreground", i)
			}
			carved++
		}
	}
	if carved == 0 {
		t.Fatal("expected carved cells")
	}
}

func TestStampCarvesDisc(t *testing.T) {
	grid := core.NewTileGrid(core.Bounds{MinX: -10, MinY: -10, W: 20, H: 20})
	for i := range grid.ForegroundCells() {
		grid.ForegroundCells()[i] = Stone
	}
	Stamp(grid, 0, 0, 1, TunnelDirections[0], core.NewRNG(1))
	if grid.Foreground(0, 0) != 0 || grid.Background(0, 0) != StoneDark {
		t.Fatal("tunnel origin should be air over dark stone")
	}
	if grid.Foreground(3, 0) != Stone {
		t.Fatal("radius is below 3, (3,0) must be untouched")
	}
	// stepping off the grid is silently ignored
	Stamp(grid, 9, 9, 10, TunnelDirections[2], core.NewRNG(1))
}
