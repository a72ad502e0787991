package worldgen

import (
	"testing"

	"mad-terrain/internal/core"
)

func TestMeasureMatchesGrid(t *testing.T) {
	cfg := smallConfig()
	cfg.MapWidth = 200
	cfg.ChunkSize = 50
	cfg.BiomeThresholds = DefaultConfig().BiomeThresholds
	w := mustGenerate(t, mustGenerator(t, cfg), 2024)
	s := Measure(w)

	if s.Cells != cfg.MapWidth*(cfg.MapDepth+cfg.BaseDepth) {
		t.Fatalf("cells = %d", s.Cells)
	}
	solid, water := 0, 0
	for _, tile := range w.Grid.ForegroundCells() {
		if tile != core.None {
			solid++
		}
		if tile == Water {
			water++
		}
	}
	if s.Solid != solid || s.Water != water {
		t.Fatalf("solid/water = %d/%d, want %d/%d", s.Solid, s.Water, solid, water)
	}
	total := 0
	for _, n := range s.Biomes {
		total += n
	}
	if total != cfg.Chunks() {
		t.Fatalf("biome counts sum to %d, want %d", total, cfg.Chunks())
	}
	if s.MinSurface > s.MaxSurface {
		t.Fatalf("min surface %d above max %d", s.MinSurface, s.MaxSurface)
	}
	if s.Tunnels != w.Tunnels {
		t.Fatal("tunnel count not carried over")
	}
}

func TestTunerSetters(t *testing.T) {
	tn := NewTuner(smallConfig(), DefaultNoiseSet(), DefaultOres(), 1)
	if !tn.Dirty() {
		t.Fatal("new tuner should be dirty")
	}
	if _, err := tn.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if tn.Dirty() {
		t.Fatal("generate should clear the dirty flag")
	}

	if !tn.SetFloatParameter("cave_threshold", 1.7) || tn.Config.CaveThreshold != 1 {
		t.Fatalf("cave threshold should clamp to 1, got %g", tn.Config.CaveThreshold)
	}
	if !tn.Dirty() {
		t.Fatal("setter should mark the tuner dirty")
	}
	if !tn.SetIntParameter("min_cave_depth", -4) || tn.Config.MinCaveDepth != 0 {
		t.Fatalf("min cave depth should clamp to 0, got %d", tn.Config.MinCaveDepth)
	}
	if !tn.SetFloatParameter("height_range_min", 99) || tn.Noise.Height.RangeMin != tn.Noise.Height.RangeMax {
		t.Fatal("height min should not pass height max")
	}
	if tn.SetFloatParameter("nope", 1) || tn.SetIntParameter("nope", 1) {
		t.Fatal("unknown keys must be rejected")
	}

	for _, ctrl := range tn.ParameterControls() {
		if _, ok := tn.Parameters().Lookup(ctrl.Key); !ok {
			t.Fatalf("control %q has no matching parameter", ctrl.Key)
		}
	}
}
