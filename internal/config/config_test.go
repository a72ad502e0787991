package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"mad-terrain/internal/worldgen"
)

func TestParseEmptyUsesDefaults(t *testing.T) {
	f, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	def := Default()
	if f.World != def.World || f.Noise != def.Noise || !slices.Equal(f.Ores, def.Ores) {
		t.Fatalf("empty document should equal the defaults: %+v", f)
	}
}

func TestParseOverridesKeepOtherDefaults(t *testing.T) {
	doc := `
seed: 9
world:
  map_width: 200
  chunk_size: 50
  basis: perlin
noise:
  cave:
    octaves: 2
ores:
  - {primary: stone_gold, min_depth: 10, max_depth: 30, rarity: 4}
`
	f, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Seed != 9 || f.World.MapWidth != 200 || f.World.ChunkSize != 50 || f.World.Basis != worldgen.BasisPerlin {
		t.Fatalf("overrides not applied: %+v", f.World)
	}
	if f.World.MapDepth != worldgen.DefaultConfig().MapDepth {
		t.Fatalf("map_depth should keep its default, got %d", f.World.MapDepth)
	}
	if f.Noise.Cave.Octaves != 2 || f.Noise.Cave.StartFrequency != worldgen.DefaultNoiseSet().Cave.StartFrequency {
		t.Fatalf("cave channel not merged: %+v", f.Noise.Cave)
	}
	want := worldgen.OreDefinition{
		Primary:   worldgen.StoneGold,
		Alternate: worldgen.StoneGold,
		MinDepth:  10,
		MaxDepth:  30,
		PeakDepth: 20,
		Rarity:    4,
	}
	if len(f.Ores) != 1 || f.Ores[0] != want {
		t.Fatalf("ores = %+v, want %+v", f.Ores, want)
	}
}

func TestParseRejectsBadDocuments(t *testing.T) {
	cases := map[string]string{
		"threshold above one": "world:\n  biome_thresholds: [0.5, 0.7, 1.5, 1]\n",
		"unknown key":         "world:\n  map_widht: 100\n",
		"unknown basis":       "world:\n  basis: worley\n",
		"fractional width":    "world:\n  map_width: 10.5\n",
		"zero rarity":         "ores:\n  - {primary: stone_coal, min_depth: 1, max_depth: 5, rarity: 0}\n",
		"missing depth":       "ores:\n  - {primary: stone_coal, min_depth: 1, rarity: 2}\n",
		"zero octaves":        "noise:\n  ore:\n    octaves: 0\n",
		"not a mapping":       "- 1\n- 2\n",
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}

	if _, err := Parse([]byte("ores:\n  - {primary: mithril, min_depth: 1, max_depth: 5, rarity: 2}\n")); err == nil || !strings.Contains(err.Error(), "mithril") {
		t.Fatalf("unknown tile should be named in the error, got %v", err)
	}
}

func TestParseAppliesGeneratorRules(t *testing.T) {
	cases := []string{
		"world:\n  biome_thresholds: [0.9, 0.5, 0.95, 1]\n",
		"world:\n  map_width: 150\n  chunk_size: 100\n",
		"ores:\n  - {primary: stone_coal, min_depth: 10, max_depth: 5, rarity: 2}\n",
	}
	for _, doc := range cases {
		_, err := Parse([]byte(doc))
		if !errors.Is(err, worldgen.ErrInvalidConfig) {
			t.Fatalf("%q: expected ErrInvalidConfig, got %v", doc, err)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	f := Default()
	f.Seed = 5
	f.World.Workers = 3
	raw, err := Marshal(f)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v\n%s", err, raw)
	}
	if got.Seed != f.Seed || got.World != f.World || got.Noise != f.Noise || !slices.Equal(got.Ores, f.Ores) {
		t.Fatalf("round trip changed the document:\n%s", raw)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	if err := os.WriteFile(path, []byte("world:\n  lava_chance: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.HasPrefix(err.Error(), "world.yaml: ") {
		t.Fatalf("expected a world.yaml error, got %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}

	f, err := Load(filepath.Join("..", "..", "configs", "world.yaml"))
	if err != nil {
		t.Fatalf("shipped config: %v", err)
	}
	if f.Seed != 1337 || len(f.Ores) != 6 {
		t.Fatalf("shipped config decoded unexpectedly: seed %d, %d ores", f.Seed, len(f.Ores))
	}
	if _, err := f.Generator(); err != nil {
		t.Fatalf("shipped config rejected by the generator: %v", err)
	}
}
